package cli

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mcoot/blackjack/internal/factory"
	"github.com/mcoot/blackjack/internal/storage/file"
	redisstorage "github.com/mcoot/blackjack/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	SaveFile    string
	Storage     string
	RedisURL    string
	PostgresDSN string
	Slot        string
	Output      string
	Verbose     bool
	NoDelay     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		SaveFile:    getEnvOrDefault("BLACKJACK_SAVE_FILE", file.DefaultPath),
		Storage:     getEnvOrDefault("BLACKJACK_STORAGE", factory.StorageTypeFile),
		RedisURL:    getEnvOrDefault("BLACKJACK_REDIS_URL", redisstorage.DefaultConfig().URL),
		PostgresDSN: os.Getenv("BLACKJACK_POSTGRES_DSN"),
		Slot:        getEnvOrDefault("BLACKJACK_SLOT", "default"),
		Output:      "text",
		Verbose:     false,
		NoDelay:     getEnvBool("BLACKJACK_NO_DELAY"),
	}
}

// LoadEnvFile loads variables from a .env file without overriding the
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// FactoryConfig maps the CLI configuration onto the application factory
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.Storage,
		SavePath:    c.SaveFile,
		PostgresDSN: c.PostgresDSN,
		Slot:        c.Slot,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// Logger builds the CLI logger. Logs go to stderr so they never mix with
// the game screen; only errors are shown unless verbose is set.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelError
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string) bool {
	val, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && val
}
