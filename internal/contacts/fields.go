// Package contacts holds the address book model: validated fields, records
// and the ordered directory that owns them.
package contacts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/username/assistant-bot/pkg/dateutil"
)

// ErrValidation is the sentinel every ValidationError unwraps to.
var ErrValidation = errors.New("validation failed")

// Validation failure reasons
const (
	ReasonEmptyName   = "empty name"
	ReasonNotDigits   = "not all digits"
	ReasonWrongLength = "wrong length"
	ReasonDateFormat  = "invalid date format"
)

// PhoneLength is the exact number of digits a phone must have
const PhoneLength = 10

// ValidationError reports a malformed field value
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Name is a non-empty contact identifier
type Name struct {
	value string
}

// NewName validates raw as a contact name. Whitespace-only names are rejected.
func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, &ValidationError{Field: "name", Value: raw, Reason: ReasonEmptyName}
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }

// Phone is a string of exactly ten decimal digits
type Phone struct {
	value string
}

// NewPhone validates raw as a phone number. The digit check runs before the
// length check, so "12ab" reports ReasonNotDigits.
func NewPhone(raw string) (Phone, error) {
	if !isDigits(raw) {
		return Phone{}, &ValidationError{Field: "phone", Value: raw, Reason: ReasonNotDigits}
	}
	if len(raw) != PhoneLength {
		return Phone{}, &ValidationError{Field: "phone", Value: raw, Reason: ReasonWrongLength}
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Birthday is a calendar date read from DD.MM.YYYY
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw in strict DD.MM.YYYY format
func NewBirthday(raw string) (Birthday, error) {
	date, err := dateutil.ParseDay(raw)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Value: raw, Reason: ReasonDateFormat}
	}
	return Birthday{date: date}, nil
}

// Date returns the birthday as a UTC midnight time
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) String() string { return dateutil.FormatDay(b.date) }
