package contacts

import "slices"

// AddressBook maps contact names to records and remembers insertion order
type AddressBook struct {
	index   map[string]int
	records []*Record
}

// NewAddressBook creates an empty address book
func NewAddressBook() *AddressBook {
	return &AddressBook{index: make(map[string]int)}
}

// AddRecord stores r under its name. An existing record with the same name is
// replaced as a whole and keeps its listing position.
func (b *AddressBook) AddRecord(r *Record) {
	name := r.Name()
	if i, ok := b.index[name]; ok {
		b.records[i] = r
		return
	}
	b.index[name] = len(b.records)
	b.records = append(b.records, r)
}

// Find looks a record up by exact name
func (b *AddressBook) Find(name string) (*Record, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.records[i], true
}

// Delete removes the record with the given name, if any
func (b *AddressBook) Delete(name string) {
	i, ok := b.index[name]
	if !ok {
		return
	}
	delete(b.index, name)
	b.records = slices.Delete(b.records, i, i+1)
	for j := i; j < len(b.records); j++ {
		b.index[b.records[j].Name()] = j
	}
}

// Records returns all records in insertion order
func (b *AddressBook) Records() []*Record {
	return slices.Clone(b.records)
}

// Len returns the number of records
func (b *AddressBook) Len() int {
	return len(b.records)
}
