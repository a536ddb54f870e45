package storage

import (
	"github.com/username/assistant-bot/internal/contacts"
)

// MemoryRepository keeps an encoded snapshot in memory. Saved books are
// copied, so later mutations of the caller's book are not visible to Load.
type MemoryRepository struct {
	data  []byte
	saves int
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Load decodes the last saved snapshot
func (mr *MemoryRepository) Load() (*contacts.AddressBook, error) {
	if mr.data == nil {
		return contacts.NewAddressBook(), nil
	}
	snapshot, err := decode(FormatJSON, mr.data)
	if err != nil {
		return nil, err
	}
	return snapshot.AddressBook()
}

// Save encodes book and keeps the result
func (mr *MemoryRepository) Save(book *contacts.AddressBook) error {
	data, err := encode(FormatJSON, NewSnapshot(book))
	if err != nil {
		return err
	}
	mr.data = data
	mr.saves++
	return nil
}

// Saves returns how many times Save succeeded
func (mr *MemoryRepository) Saves() int {
	return mr.saves
}
