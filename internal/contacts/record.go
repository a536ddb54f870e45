package contacts

import (
	"fmt"
	"strings"
)

// Record is a single contact: a name, its phones and an optional birthday
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with no phones and no birthday
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns a copy of the phones in insertion order
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// Birthday returns the birthday and whether one is set
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it. Duplicates are allowed.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone drops every phone equal to raw
func (r *Record) RemovePhone(raw string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != raw {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// RemoveAllPhones clears the phone list
func (r *Record) RemoveAllPhones() {
	r.phones = nil
}

// EditPhone replaces every phone equal to oldPhone with newPhone, keeping
// positions. newPhone is validated first; on failure the phones are left
// untouched and the ValidationError is returned. The count of replaced
// entries is returned on success.
func (r *Record) EditPhone(oldPhone, newPhone string) (int, error) {
	phone, err := NewPhone(newPhone)
	if err != nil {
		return 0, err
	}

	replaced := 0
	for i := range r.phones {
		if r.phones[i].value == oldPhone {
			r.phones[i] = phone
			replaced++
		}
	}
	return replaced, nil
}

// FindPhone returns the first phone equal to raw
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, p := range r.phones {
		if p.value == raw {
			return p, true
		}
	}
	return Phone{}, false
}

// AddBirthday validates raw and sets it, replacing any previous birthday
func (r *Record) AddBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.value
	}

	birthday := "N/A"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}

	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}
