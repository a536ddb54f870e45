package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/username/assistant-bot/internal/contacts"
	"go.uber.org/zap"
)

// FileRepository keeps the address book in a single JSON or YAML file
type FileRepository struct {
	path   string
	format Format
	logger *zap.Logger
}

var _ Repository = (*FileRepository)(nil)

// NewFileRepository creates a file repository. An empty format is derived
// from the file extension.
func NewFileRepository(path string, format Format, logger *zap.Logger) *FileRepository {
	if format == "" {
		format = FormatForPath(path)
	}
	return &FileRepository{
		path:   path,
		format: format,
		logger: logger,
	}
}

// Path returns the backing file path
func (fr *FileRepository) Path() string {
	return fr.path
}

// Load reads the address book from file
func (fr *FileRepository) Load() (*contacts.AddressBook, error) {
	data, err := os.ReadFile(fr.path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist yet - will be created on first save
			fr.logger.Info("Address book file not found, starting empty",
				zap.String("file", fr.path))
			return contacts.NewAddressBook(), nil
		}
		return nil, fmt.Errorf("failed to read address book file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return contacts.NewAddressBook(), nil
	}

	snapshot, err := decode(fr.format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse address book file: %w", err)
	}

	book, err := snapshot.AddressBook()
	if err != nil {
		return nil, fmt.Errorf("invalid address book file %s: %w", fr.path, err)
	}

	fr.logger.Info("Address book loaded",
		zap.String("file", fr.path),
		zap.String("format", string(fr.format)),
		zap.Int("contacts", book.Len()))

	return book, nil
}

// Save writes the address book to a temp file next to the target and renames
// it over the target
func (fr *FileRepository) Save(book *contacts.AddressBook) error {
	data, err := encode(fr.format, NewSnapshot(book))
	if err != nil {
		return fmt.Errorf("failed to marshal address book: %w", err)
	}

	dir := filepath.Dir(fr.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create address book directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(fr.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write address book file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write address book file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fr.path); err != nil {
		return fmt.Errorf("failed to replace address book file: %w", err)
	}

	fr.logger.Info("Address book saved",
		zap.String("file", fr.path),
		zap.Int("contacts", book.Len()))

	return nil
}
