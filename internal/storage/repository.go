// Package storage persists an address book between runs.
package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/username/assistant-bot/internal/contacts"
	"gopkg.in/yaml.v3"
)

// Repository loads and saves a whole address book
type Repository interface {
	// Load returns the stored address book, or an empty one when nothing
	// has been saved yet
	Load() (*contacts.AddressBook, error)

	// Save replaces the stored address book
	Save(book *contacts.AddressBook) error
}

// Format is the on-disk encoding of a snapshot
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension; anything that is
// not .yaml or .yml is JSON
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Snapshot is the serialized form of an address book
type Snapshot struct {
	Contacts []ContactEntry `json:"contacts" yaml:"contacts"`
}

// ContactEntry is one record inside a snapshot
type ContactEntry struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

// NewSnapshot captures the book in insertion order
func NewSnapshot(book *contacts.AddressBook) Snapshot {
	snapshot := Snapshot{Contacts: []ContactEntry{}}
	for _, record := range book.Records() {
		entry := ContactEntry{
			Name:   record.Name(),
			Phones: []string{},
		}
		for _, p := range record.Phones() {
			entry.Phones = append(entry.Phones, p.String())
		}
		if birthday, ok := record.Birthday(); ok {
			entry.Birthday = birthday.String()
		}
		snapshot.Contacts = append(snapshot.Contacts, entry)
	}
	return snapshot
}

// AddressBook rebuilds an address book, validating every field again
func (s Snapshot) AddressBook() (*contacts.AddressBook, error) {
	book := contacts.NewAddressBook()
	for i, entry := range s.Contacts {
		record, err := contacts.NewRecord(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("contact #%d: %w", i+1, err)
		}
		for _, phone := range entry.Phones {
			if err := record.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("contact %q: %w", entry.Name, err)
			}
		}
		if entry.Birthday != "" {
			if err := record.AddBirthday(entry.Birthday); err != nil {
				return nil, fmt.Errorf("contact %q: %w", entry.Name, err)
			}
		}
		book.AddRecord(record)
	}
	return book, nil
}

func encode(format Format, snapshot Snapshot) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(snapshot, "", "  ")
	case FormatYAML:
		return yaml.Marshal(snapshot)
	default:
		return nil, fmt.Errorf("unknown storage format: %s", format)
	}
}

func decode(format Format, data []byte) (Snapshot, error) {
	var snapshot Snapshot
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &snapshot)
	case FormatYAML:
		err = yaml.Unmarshal(data, &snapshot)
	default:
		err = fmt.Errorf("unknown storage format: %s", format)
	}
	return snapshot, err
}
