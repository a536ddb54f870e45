package assistant

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/assistant-bot/internal/contacts"
	"go.uber.org/zap"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()
	monday := time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)
	return NewBot(contacts.NewAddressBook(), zap.NewNop(),
		WithClock(func() time.Time { return monday }))
}

func run(t *testing.T, b *Bot, line string) string {
	t.Helper()
	command, args := ParseInput(line)
	reply, err := b.Execute(command, args)
	require.NoError(t, err)
	return reply
}

func TestParseInput(t *testing.T) {
	command, args := ParseInput("  ADD  John   1234567890 ")
	assert.Equal(t, "add", command)
	assert.Equal(t, []string{"John", "1234567890"}, args)

	command, args = ParseInput("   ")
	assert.Equal(t, "", command)
	assert.Empty(t, args)
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"hello", []string{"hello"}, "How can I help you?"},
		{"add new contact", []string{"add John 1234567890"}, "Contact added."},
		{"add phone to existing contact", []string{"add John 1234567890", "add John 5555555555"}, "Contact updated."},
		{"add invalid phone", []string{"add John 12345"}, "Incorrect value: phone wrong length."},
		{"add non digit phone", []string{"add John 12345abcde"}, "Incorrect value: phone not all digits."},
		{"add missing phone", []string{"add John"}, MsgMissingArgument},
		{"add missing everything", []string{"add"}, MsgMissingArgument},
		{"change unknown contact", []string{"change John 1234567890"}, "Contact not found."},
		{"change contact", []string{"add John 1234567890", "change John 5555555555"}, "Contact changed."},
		{"phone unknown contact", []string{"phone John"}, "Contact not found!"},
		{"phone shows record", []string{"add John 1234567890", "add John 5555555555", "phone John"},
			"Contact name: John, phones: 1234567890; 5555555555, birthday: N/A"},
		{"all empty", []string{"all"}, "No contacts saved."},
		{"all lists in order", []string{"add Zed 1111111111", "add Amy 2222222222", "all"},
			"Contact name: Zed, phones: 1111111111, birthday: N/A\nContact name: Amy, phones: 2222222222, birthday: N/A"},
		{"add birthday creates contact", []string{"add-birthday John 15.06.1990"}, "Contact added. Birthday updated."},
		{"add birthday to existing contact", []string{"add John 1234567890", "add-birthday John 15.06.1990"}, "Contact birthday updated."},
		{"add invalid birthday", []string{"add-birthday John 1990-06-15"}, "Incorrect value: birthday invalid date format."},
		{"show birthday", []string{"add-birthday John 15.06.1990", "show-birthday John"}, "15.06.1990"},
		{"show birthday not set", []string{"add John 1234567890", "show-birthday John"}, "Birthday not set."},
		{"show birthday unknown contact", []string{"show-birthday John"}, "Contact not found!"},
		{"birthdays none", []string{"birthdays"}, "No upcoming birthdays."},
		{"birthdays weekend adjusted", []string{"add-birthday John 15.06.1990", "add-birthday Ann 12.06.1985", "birthdays"},
			"Contact: John, upcoming birthday: 17.06.2024\nContact: Ann, upcoming birthday: 12.06.2024"},
		{"birthdays custom window", []string{"add-birthday John 15.06.1990", "add-birthday Ann 12.06.1985", "birthdays 3"},
			"Contact: Ann, upcoming birthday: 12.06.2024"},
		{"birthdays bad window", []string{"birthdays soon"}, MsgIncorrectValue},
		{"birthdays negative window", []string{"birthdays -1"}, MsgIncorrectValue},
		{"delete contact", []string{"add John 1234567890", "delete John"}, "Contact deleted."},
		{"delete unknown contact", []string{"delete John"}, "Contact not found."},
		{"remove phone", []string{"add John 1234567890", "remove-phone John 1234567890"}, "Phone removed."},
		{"remove unknown phone", []string{"add John 1234567890", "remove-phone John 5555555555"}, "Phone not found."},
		{"edit phone", []string{"add John 1234567890", "edit-phone John 1234567890 5555555555"}, "Phone updated."},
		{"edit unknown phone", []string{"add John 1234567890", "edit-phone John 1111111111 5555555555"}, "Phone not found."},
		{"edit phone invalid", []string{"add John 1234567890", "edit-phone John 1234567890 555"}, "Incorrect value: phone wrong length."},
		{"edit phone missing arguments", []string{"edit-phone John 1234567890"}, MsgMissingArgument},
		{"unknown command", []string{"dance"}, "Invalid command."},
		{"commands are case insensitive", []string{"HeLLo"}, "How can I help you?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBot(t)

			var reply string
			for _, line := range tt.lines {
				reply = run(t, b, line)
			}

			assert.Equal(t, tt.want, reply)
		})
	}
}

func TestAddInvalidPhoneDoesNotStoreContact(t *testing.T) {
	b := newTestBot(t)

	run(t, b, "add John 12345")

	_, ok := b.Book().Find("John")
	assert.False(t, ok)
}

func TestChangeInvalidPhoneKeepsPhones(t *testing.T) {
	b := newTestBot(t)
	run(t, b, "add John 1234567890")

	assert.Equal(t, "Incorrect value: phone wrong length.", run(t, b, "change John 123"))
	assert.Equal(t, "Contact name: John, phones: 1234567890, birthday: N/A", run(t, b, "phone John"))
}

func TestChangeReplacesAllPhones(t *testing.T) {
	b := newTestBot(t)
	run(t, b, "add John 1234567890")
	run(t, b, "add John 5555555555")

	run(t, b, "change John 7777777777")

	assert.Equal(t, "Contact name: John, phones: 7777777777, birthday: N/A", run(t, b, "phone John"))
}

func TestWithWindow(t *testing.T) {
	monday := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	b := NewBot(contacts.NewAddressBook(), zap.NewNop(),
		WithWindow(1),
		WithClock(func() time.Time { return monday }))
	run(t, b, "add-birthday John 12.06.1990")

	assert.Equal(t, "No upcoming birthdays.", run(t, b, "birthdays"))
	assert.Equal(t, "Contact: John, upcoming birthday: 12.06.2024", run(t, b, "birthdays 2"))
}

func TestRunSession(t *testing.T) {
	b := newTestBot(t)
	input := strings.Join([]string{
		"hello",
		"",
		"add John 1234567890",
		"add John bad",
		"phone John",
		"exit",
		"add Ignored 1111111111",
	}, "\n")
	var out bytes.Buffer

	require.NoError(t, b.Run(strings.NewReader(input), &out))

	want := strings.Join([]string{
		Greeting,
		Prompt + "How can I help you?",
		Prompt + Prompt + "Contact added.",
		Prompt + "Incorrect value: phone not all digits.",
		Prompt + "Contact name: John, phones: 1234567890, birthday: N/A",
		Prompt + Farewell,
		"",
	}, "\n")
	assert.Equal(t, want, out.String())

	_, ok := b.Book().Find("Ignored")
	assert.False(t, ok, "commands after exit must not run")
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	b := newTestBot(t)
	var out bytes.Buffer

	require.NoError(t, b.Run(strings.NewReader("add-birthday Ann 01.01.1990\n"), &out))

	assert.True(t, strings.HasSuffix(out.String(), Prompt+"\n"+Farewell+"\n"))
	assert.Equal(t, 1, b.Book().Len())
}

func TestCloseIsQuit(t *testing.T) {
	assert.True(t, IsQuit("close"))
	assert.True(t, IsQuit("exit"))
	assert.False(t, IsQuit("quit"))
}

func TestRunSurvivesOverlongLine(t *testing.T) {
	b := newTestBot(t)
	input := "add John 1234567890\nphone " + strings.Repeat("x", 70000) + "\nall\nexit\n"
	var out bytes.Buffer

	require.NoError(t, b.Run(strings.NewReader(input), &out))

	want := strings.Join([]string{
		Greeting,
		Prompt + "Contact added.",
		Prompt + "Invalid command.",
		Prompt + "Contact name: John, phones: 1234567890, birthday: N/A",
		Prompt + Farewell,
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestRunAcceptsLineAtLimit(t *testing.T) {
	b := newTestBot(t)
	name := strings.Repeat("n", MaxLineLength-len("add  1234567890"))
	var out bytes.Buffer

	require.NoError(t, b.Run(strings.NewReader("add "+name+" 1234567890\r\n"), &out))

	_, ok := b.Book().Find(name)
	assert.True(t, ok)
}
