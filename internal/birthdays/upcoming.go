// Package birthdays computes upcoming birthday reminders for an address book.
package birthdays

import (
	"fmt"
	"time"

	"github.com/username/assistant-bot/internal/contacts"
	"github.com/username/assistant-bot/pkg/dateutil"
)

// DefaultWindow is the default lookahead in days
const DefaultWindow = 7

// Reminder is one contact whose birthday is observed within the window.
// Observed is Date formatted as DD.MM.YYYY.
type Reminder struct {
	Name     string    `json:"Contact"`
	Date     time.Time `json:"-"`
	Observed string    `json:"upcoming birthday"`
}

func (r Reminder) String() string {
	return fmt.Sprintf("Contact: %s, upcoming birthday: %s", r.Name, r.Observed)
}

// Upcoming returns reminders for birthdays falling between today and
// today+windowDays inclusive, in address book order. A birthday landing on a
// weekend is observed on the following Monday.
func Upcoming(book *contacts.AddressBook, windowDays int, today time.Time) []Reminder {
	today = dateutil.StartOfDay(today)
	reminders := []Reminder{}

	for _, record := range book.Records() {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}

		next := dateutil.WithYear(birthday.Date(), today.Year(), today.Location())
		if next.Before(today) {
			next = dateutil.WithYear(birthday.Date(), today.Year()+1, today.Location())
		}

		delta := dateutil.DaysBetween(today, next)
		if delta < 0 || delta > windowDays {
			continue
		}

		if dateutil.IsWeekend(next) {
			next = dateutil.NextWeekday(next, time.Monday)
		}

		reminders = append(reminders, Reminder{
			Name:     record.Name(),
			Date:     next,
			Observed: dateutil.FormatDay(next),
		})
	}

	return reminders
}
