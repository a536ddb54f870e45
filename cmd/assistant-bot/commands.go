package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/username/assistant-bot/internal/assistant"
	"go.uber.org/zap"
)

// oneShotCmds mirrors the interactive commands as subcommands: each one loads
// the book, runs a single command and saves the book again
func oneShotCmds() []*cobra.Command {
	cmds := []*cobra.Command{
		oneShotCmd("add", "add NAME PHONE", "Add a contact or append a phone", cobra.ExactArgs(2), true),
		oneShotCmd("change", "change NAME PHONE", "Replace all phones of a contact", cobra.ExactArgs(2), true),
		oneShotCmd("phone", "phone NAME", "Show a contact", cobra.ExactArgs(1), false),
		oneShotCmd("all", "all", "List all contacts", cobra.NoArgs, false),
		oneShotCmd("add-birthday", "add-birthday NAME DD.MM.YYYY", "Set a contact's birthday", cobra.ExactArgs(2), true),
		oneShotCmd("show-birthday", "show-birthday NAME", "Show a contact's birthday", cobra.ExactArgs(1), false),
		oneShotCmd("delete", "delete NAME", "Delete a contact", cobra.ExactArgs(1), true),
		oneShotCmd("remove-phone", "remove-phone NAME PHONE", "Remove a phone from a contact", cobra.ExactArgs(2), true),
		oneShotCmd("edit-phone", "edit-phone NAME OLD NEW", "Replace a phone of a contact", cobra.ExactArgs(3), true),
		birthdaysCmd(),
	}
	return cmds
}

func oneShotCmd(command, use, short string, args cobra.PositionalArgs, mutates bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, command, args, mutates)
		},
	}
}

func birthdaysCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "List birthdays in the coming days",
		Long:  "List contacts whose birthday falls within the window; weekend birthdays are moved to Monday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cmdArgs []string
			if cmd.Flags().Changed("days") {
				cmdArgs = []string{strconv.Itoa(days)}
			}
			return runOnce(cmd, "birthdays", cmdArgs, false)
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 0, "Lookahead window in days; when omitted birthdays.window_days from config is used")

	return cmd
}

func runOnce(cmd *cobra.Command, command string, args []string, mutates bool) error {
	repo := newRepository()
	book, err := repo.Load()
	if err != nil {
		return fmt.Errorf("failed to load address book: %w", err)
	}

	bot := assistant.NewBot(book, logger, assistant.WithWindow(cfg.Birthdays.WindowDays))
	reply, err := bot.Execute(command, args)
	if err != nil {
		return fmt.Errorf("command %s failed: %w", command, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), reply)

	if !mutates {
		return nil
	}

	logger.Debug("Saving after command", zap.String("command", command))
	if err := saveTarget(repo).Save(book); err != nil {
		return fmt.Errorf("failed to save address book: %w", err)
	}
	return nil
}
