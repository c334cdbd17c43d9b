package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/storage"
	"github.com/mcoot/blackjack/internal/storage/snapshot"
)

// DefaultPath is the save file used when none is configured
const DefaultPath = "save.blackjack"

// Storage keeps the ledger as a snapshot blob in a single file
type Storage struct {
	path string
}

// New creates a file storage writing to path
func New(path string) *Storage {
	if path == "" {
		path = DefaultPath
	}
	return &Storage{path: path}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Path returns the save file location
func (s *Storage) Path() string {
	return s.path
}

// SavePlayer writes the snapshot to a temporary file in the same directory
// and renames it over the save, so a reader never sees a partial write
func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := snapshot.Encode(player)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create save directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close save: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

func (s *Storage) LoadPlayer(ctx context.Context) (*model.Player, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.ErrSaveNotFound
		}
		return nil, fmt.Errorf("read save: %w", err)
	}
	return snapshot.Decode(data)
}

func (s *Storage) Close() error {
	return nil
}
