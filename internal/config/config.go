package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. ASSISTANT_STORAGE_FILE
const EnvPrefix = "ASSISTANT"

// Config represents application configuration
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Birthdays BirthdaysConfig `mapstructure:"birthdays"`
	Log       LogConfig       `mapstructure:"log"`
}

// StorageConfig represents address book persistence settings
type StorageConfig struct {
	File   string `mapstructure:"file" validate:"required"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json yaml"` // empty: by file extension
}

// BirthdaysConfig represents reminder settings
type BirthdaysConfig struct {
	WindowDays int `mapstructure:"window_days" validate:"gte=0,lte=366"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // empty: log to console
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.file", "addressbook.json")
	v.SetDefault("storage.format", "")
	v.SetDefault("birthdays.window_days", 7)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")
}

// Load loads configuration from file and environment. A missing config file
// is not an error: defaults and environment variables are used instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.assistant-bot")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// GetLevel returns the log level, defaulting to warn
func (c *LogConfig) GetLevel() string {
	if c.Level == "" {
		return "warn"
	}
	return c.Level
}

// ExpandEnvVars expands environment variables in path settings
func (c *Config) ExpandEnvVars() {
	c.Storage.File = os.ExpandEnv(c.Storage.File)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
