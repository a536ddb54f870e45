// Package assistant implements the command surface and the interactive loop
// on top of an address book.
package assistant

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/username/assistant-bot/internal/birthdays"
	"github.com/username/assistant-bot/internal/contacts"
	"github.com/username/assistant-bot/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	Greeting = "Welcome to the assistant bot!"
	Prompt   = "Enter a command: "
	Farewell = "Good bye!"
)

// Bot dispatches text commands against one address book
type Bot struct {
	book     *contacts.AddressBook
	window   int
	now      func() time.Time
	logger   *zap.Logger
	handlers map[string]handlerFunc
}

// Option configures a Bot
type Option func(*Bot)

// WithWindow sets the default lookahead for the birthdays command
func WithWindow(days int) Option {
	return func(b *Bot) {
		b.window = days
	}
}

// WithClock overrides the source of "today"
func WithClock(now func() time.Time) Option {
	return func(b *Bot) {
		b.now = now
	}
}

// NewBot creates a bot operating on book
func NewBot(book *contacts.AddressBook, logger *zap.Logger, opts ...Option) *Bot {
	b := &Bot{
		book:   book,
		window: birthdays.DefaultWindow,
		now:    dateutil.Today,
		logger: logger,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.handlers = map[string]handlerFunc{
		"hello":         hello,
		"add":           addContact,
		"change":        changeContact,
		"phone":         showPhone,
		"all":           showAll,
		"add-birthday":  addBirthday,
		"show-birthday": showBirthday,
		"birthdays":     upcomingBirthdays,
		"delete":        deleteContact,
		"remove-phone":  removePhone,
		"edit-phone":    editPhone,
		"help":          help,
	}
	for name, h := range b.handlers {
		b.handlers[name] = inputError(name, h)
	}

	return b
}

// Book returns the address book the bot operates on
func (b *Bot) Book() *contacts.AddressBook {
	return b.book
}

// ParseInput splits a line into a lower-cased command and its arguments
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// IsQuit reports whether command ends the session
func IsQuit(command string) bool {
	return command == "close" || command == "exit"
}

// Execute runs a single command and returns its reply. User input problems
// are reported in the reply; only unexpected failures return an error.
func (b *Bot) Execute(command string, args []string) (string, error) {
	h, ok := b.handlers[command]
	if !ok {
		b.logger.Debug("Invalid command", zap.String("command", command))
		return "Invalid command.", nil
	}
	return h(b, args)
}

// MaxLineLength is the longest command line accepted; longer lines are
// answered with "Invalid command." and otherwise ignored
const MaxLineLength = 64 * 1024

// readLine reads one line without its line ending. A line longer than
// MaxLineLength is consumed to its end and reported as tooLong.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong && len(buf)+len(chunk) <= MaxLineLength {
			buf = append(buf, chunk...)
		} else {
			tooLong = true
			buf = nil
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// Run reads commands from in until close/exit or end of input, writing
// replies to out. It does not persist anything; the caller saves the book
// once Run returns, including when Run fails.
func (b *Bot) Run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, Greeting)

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, Prompt)
		line, tooLong, err := readLine(reader)
		if err == io.EOF {
			// end of input: finish the prompt line
			fmt.Fprintln(out)
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if tooLong {
			b.logger.Warn("Input line too long", zap.Int("max_length", MaxLineLength))
			fmt.Fprintln(out, "Invalid command.")
			continue
		}

		command, args := ParseInput(line)
		if command == "" {
			continue
		}

		if IsQuit(command) {
			break
		}

		reply, err := b.Execute(command, args)
		if err != nil {
			return fmt.Errorf("command %s failed: %w", command, err)
		}
		fmt.Fprintln(out, reply)
	}

	fmt.Fprintln(out, Farewell)
	b.logger.Info("Session finished", zap.Int("contacts", b.book.Len()))
	return nil
}
