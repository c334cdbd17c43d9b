package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/storage/file"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	saveFile   string
	workDir    string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "blackjack-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/blackjack")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	workDir := t.TempDir()
	return &cliRunner{
		binaryPath: binaryPath,
		saveFile:   filepath.Join(workDir, file.DefaultPath),
		workDir:    workDir,
	}
}

func (r *cliRunner) run(stdin string, args ...string) (string, int) {
	cmd := exec.Command(r.binaryPath, args...)
	cmd.Dir = r.workDir
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = append(os.Environ(),
		"BLACKJACK_SAVE_FILE="+r.saveFile,
		"BLACKJACK_STORAGE=file",
		"BLACKJACK_NO_DELAY=true",
	)
	output, err := cmd.CombinedOutput()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return string(output), exitErr.ExitCode()
	}
	if err != nil {
		return string(output), -1
	}
	return string(output), 0
}

// lockedBuffer collects output written by a running process
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// interrupt starts the binary with a stdin that stays open, sends SIGINT
// once the main menu is shown and returns the exit code
func (r *cliRunner) interrupt(t *testing.T) (string, int) {
	t.Helper()

	cmd := exec.Command(r.binaryPath)
	cmd.Dir = r.workDir
	cmd.Env = append(os.Environ(),
		"BLACKJACK_SAVE_FILE="+r.saveFile,
		"BLACKJACK_STORAGE=file",
		"BLACKJACK_NO_DELAY=true",
	)
	stdin, err := cmd.StdinPipe()
	require.NoError(t, err)
	defer func() { _ = stdin.Close() }()

	var out lockedBuffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	require.NoError(t, cmd.Start())

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "3. Exit")
	}, 5*time.Second, 20*time.Millisecond, "menu never appeared")
	require.NoError(t, cmd.Process.Signal(os.Interrupt))

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		if exitErr, ok := err.(*exec.ExitError); ok {
			return out.String(), exitErr.ExitCode()
		}
		require.NoError(t, err)
		return out.String(), 0
	case <-time.After(3 * time.Second):
		_ = cmd.Process.Kill()
		t.Fatal("still running after SIGINT")
		return "", -1
	}
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

func TestCLI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	r := newCLIRunner(t)
	ctx := context.Background()

	t.Run("exit from menu", func(t *testing.T) {
		out, code := r.run("3\n")
		assert.Equal(t, 0, code, out)
		assert.Contains(t, out, "Main menu")
	})

	t.Run("new game is saved with starting wealth", func(t *testing.T) {
		out, code := r.run("1\n")
		assert.Equal(t, 0, code, out)
		assert.Contains(t, out, "Created new save as")

		saved, err := file.New(r.saveFile).LoadPlayer(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.StartingWealth, saved.Wealth)
	})

	t.Run("overbet is rejected without changing wealth", func(t *testing.T) {
		require.NoError(t, file.New(r.saveFile).SavePlayer(ctx, &model.Player{Name: "Ann", Wealth: 10}))

		out, code := r.run("2\n50\n")
		assert.Equal(t, 0, code, out)
		assert.Contains(t, out, "You don't have that much money")

		saved, err := file.New(r.saveFile).LoadPlayer(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.Wealth(10), saved.Wealth)
	})

	t.Run("ledger commands", func(t *testing.T) {
		out, code := r.run("", "ledger", "reset", "--name", "Ann")
		require.Equal(t, 0, code, out)

		out, code = r.run("", "ledger", "show", "-o", "json")
		require.Equal(t, 0, code, out)

		var ledger struct {
			Name   string `json:"name"`
			Wealth uint16 `json:"wealth"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &ledger))
		assert.Equal(t, "Ann", ledger.Name)
		assert.Equal(t, uint16(10), ledger.Wealth)
	})

	t.Run("autoplay plays from the saved ledger", func(t *testing.T) {
		out, code := r.run("", "autoplay", "--rounds", "5", "--strategy", "random")
		assert.Equal(t, 0, code, out)
		assert.Contains(t, out, "Strategy: random")
	})

	t.Run("interrupt at the menu exits", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("SIGINT cannot be sent to a process on windows")
		}
		out, code := r.interrupt(t)
		assert.Equal(t, 0, code, out)
	})

	t.Run("missing save on continue", func(t *testing.T) {
		require.NoError(t, os.Remove(r.saveFile))

		out, code := r.run("2\n3\n")
		assert.Equal(t, 0, code, out)
		assert.Contains(t, out, "Couldn't find save file")
	})
}
