package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/assistant-bot/internal/assistant"
	"github.com/username/assistant-bot/internal/config"
	"github.com/username/assistant-bot/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	bookFile   string
	dryRun     bool
	cfg        *config.Config
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "assistant-bot",
		Short:         "Contact book with birthday reminders",
		Long:          "Store names, phone numbers and birthdays, and list birthdays coming up in the next days",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.ExpandEnvVars()
			if bookFile != "" {
				cfg.Storage.File = bookFile
			}

			if cfg.Log.File != "" {
				logger = initFileLogger(cfg.Log.File, cfg.Log.GetLevel())
			} else {
				logger = initLogger(cfg.Log.GetLevel())
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&bookFile, "file", "f", "", "Address book file (overrides storage.file)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without writing the address book")

	for _, cmd := range oneShotCmds() {
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}

func newRepository() *storage.FileRepository {
	return storage.NewFileRepository(cfg.Storage.File, storage.Format(cfg.Storage.Format), logger)
}

// saveTarget returns where the book is written back: the file repository, or
// a throwaway in-memory one in dry-run mode
func saveTarget(repo storage.Repository) storage.Repository {
	if dryRun {
		logger.Info("[DRY RUN] address book will not be written", zap.String("file", cfg.Storage.File))
		return storage.NewMemoryRepository()
	}
	return repo
}

// runInteractive loads the book, runs the command loop and saves on exit
func runInteractive(in io.Reader, out io.Writer) error {
	repo := newRepository()
	book, err := repo.Load()
	if err != nil {
		return fmt.Errorf("failed to load address book: %w", err)
	}

	logger.Info("Starting interactive session",
		zap.String("file", repo.Path()),
		zap.Int("contacts", book.Len()))

	bot := assistant.NewBot(book, logger, assistant.WithWindow(cfg.Birthdays.WindowDays))
	runErr := bot.Run(in, out)
	if runErr != nil {
		logger.Error("Interactive session failed, saving entered changes", zap.Error(runErr))
	}

	if err := saveTarget(repo).Save(book); err != nil {
		return errors.Join(runErr, fmt.Errorf("failed to save address book: %w", err))
	}
	return runErr
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.WarnLevel
	}
	return zapLevel
}

func initLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return l
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,   // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}
