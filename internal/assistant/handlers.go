package assistant

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/username/assistant-bot/internal/birthdays"
	"github.com/username/assistant-bot/internal/contacts"
	"go.uber.org/zap"
)

// ErrMissingArgument is returned by handlers called with too few arguments
var ErrMissingArgument = errors.New("missing command argument")

// Replies for user input problems
const (
	MsgMissingArgument = "Enter the argument for the command"
	MsgIncorrectValue  = "Incorrect value."
)

type handlerFunc func(b *Bot, args []string) (string, error)

// inputError turns user input errors into fixed replies so the loop never
// stops on bad input
func inputError(command string, h handlerFunc) handlerFunc {
	return func(b *Bot, args []string) (string, error) {
		reply, err := h(b, args)
		if err == nil {
			return reply, nil
		}

		var verr *contacts.ValidationError
		switch {
		case errors.Is(err, ErrMissingArgument):
			b.logger.Debug("Missing argument",
				zap.String("command", command),
				zap.Int("args", len(args)))
			return MsgMissingArgument, nil
		case errors.As(err, &verr):
			b.logger.Debug("Validation failed",
				zap.String("command", command),
				zap.String("field", verr.Field),
				zap.String("reason", verr.Reason))
			return fmt.Sprintf("Incorrect value: %s %s.", verr.Field, verr.Reason), nil
		case errors.Is(err, strconv.ErrSyntax), errors.Is(err, strconv.ErrRange):
			return MsgIncorrectValue, nil
		default:
			return "", err
		}
	}
}

func requireArgs(args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("%w: want %d, got %d", ErrMissingArgument, n, len(args))
	}
	return nil
}

func hello(_ *Bot, _ []string) (string, error) {
	return "How can I help you?", nil
}

func addContact(b *Bot, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	record, ok := b.book.Find(name)
	if ok {
		if err := record.AddPhone(phone); err != nil {
			return "", err
		}
		return "Contact updated.", nil
	}

	record, err := contacts.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	b.book.AddRecord(record)
	b.logger.Info("Contact added", zap.String("name", name))
	return "Contact added.", nil
}

func changeContact(b *Bot, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	record, ok := b.book.Find(name)
	if !ok {
		return "Contact not found.", nil
	}
	if _, err := contacts.NewPhone(phone); err != nil {
		return "", err
	}
	record.RemoveAllPhones()
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	return "Contact changed.", nil
}

func showPhone(b *Bot, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}

	record, ok := b.book.Find(args[0])
	if !ok {
		return "Contact not found!", nil
	}
	return record.String(), nil
}

func showAll(b *Bot, _ []string) (string, error) {
	records := b.book.Records()
	if len(records) == 0 {
		return "No contacts saved.", nil
	}

	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func addBirthday(b *Bot, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, date := args[0], args[1]

	record, ok := b.book.Find(name)
	if ok {
		if err := record.AddBirthday(date); err != nil {
			return "", err
		}
		return "Contact birthday updated.", nil
	}

	record, err := contacts.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := record.AddBirthday(date); err != nil {
		return "", err
	}
	b.book.AddRecord(record)
	b.logger.Info("Contact added", zap.String("name", name))
	return "Contact added. Birthday updated.", nil
}

func showBirthday(b *Bot, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}

	record, ok := b.book.Find(args[0])
	if !ok {
		return "Contact not found!", nil
	}
	birthday, ok := record.Birthday()
	if !ok {
		return "Birthday not set.", nil
	}
	return birthday.String(), nil
}

func upcomingBirthdays(b *Bot, args []string) (string, error) {
	window := b.window
	if len(args) > 0 {
		days, err := strconv.Atoi(args[0])
		if err != nil {
			return "", err
		}
		if days < 0 {
			return MsgIncorrectValue, nil
		}
		window = days
	}

	reminders := birthdays.Upcoming(b.book, window, b.now())
	b.logger.Debug("Upcoming birthdays computed",
		zap.Int("window_days", window),
		zap.Int("found", len(reminders)))

	if len(reminders) == 0 {
		return "No upcoming birthdays.", nil
	}

	lines := make([]string, len(reminders))
	for i, r := range reminders {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func deleteContact(b *Bot, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}

	if _, ok := b.book.Find(args[0]); !ok {
		return "Contact not found.", nil
	}
	b.book.Delete(args[0])
	b.logger.Info("Contact deleted", zap.String("name", args[0]))
	return "Contact deleted.", nil
}

func removePhone(b *Bot, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}

	record, ok := b.book.Find(args[0])
	if !ok {
		return "Contact not found.", nil
	}
	if _, ok := record.FindPhone(args[1]); !ok {
		return "Phone not found.", nil
	}
	record.RemovePhone(args[1])
	return "Phone removed.", nil
}

func editPhone(b *Bot, args []string) (string, error) {
	if err := requireArgs(args, 3); err != nil {
		return "", err
	}

	record, ok := b.book.Find(args[0])
	if !ok {
		return "Contact not found.", nil
	}
	replaced, err := record.EditPhone(args[1], args[2])
	if err != nil {
		return "", err
	}
	if replaced == 0 {
		return "Phone not found.", nil
	}
	return "Phone updated.", nil
}

func help(_ *Bot, _ []string) (string, error) {
	return strings.Join([]string{
		"Commands:",
		"  hello",
		"  add <name> <phone>",
		"  change <name> <phone>",
		"  phone <name>",
		"  all",
		"  add-birthday <name> <DD.MM.YYYY>",
		"  show-birthday <name>",
		"  birthdays [days]",
		"  delete <name>",
		"  remove-phone <name> <phone>",
		"  edit-phone <name> <old phone> <new phone>",
		"  close | exit",
	}, "\n"), nil
}
