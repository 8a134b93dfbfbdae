// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Identity struct {
		OrganisationID     string `mapstructure:"organisation_id" yaml:"organisation_id"`
		DivisionID         string `mapstructure:"division_id" yaml:"division_id"`
		BankID             string `mapstructure:"bank_id" yaml:"bank_id"`
		FinancialInstitute string `mapstructure:"financial_institute" yaml:"financial_institute"`
	} `mapstructure:"identity" yaml:"identity"`

	Directories struct {
		Pending string `mapstructure:"pending" yaml:"pending"`
		Archive string `mapstructure:"archive" yaml:"archive"`
		Error   string `mapstructure:"error" yaml:"error"`
		Output  string `mapstructure:"output" yaml:"output"`
	} `mapstructure:"directories" yaml:"directories"`

	Database struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"database" yaml:"database"`

	Validation struct {
		SchemaPath string `mapstructure:"schema_path" yaml:"schema_path"`
	} `mapstructure:"validation" yaml:"validation"`

	Encryption struct {
		Enabled   bool   `mapstructure:"enabled" yaml:"enabled"`
		MasterKey string `mapstructure:"master_key" yaml:"-"` // Never serialize the key
	} `mapstructure:"encryption" yaml:"encryption"`

	BAI struct {
		MappingPath         string   `mapstructure:"mapping_path" yaml:"mapping_path"`
		CheckIntegrity      bool     `mapstructure:"check_integrity" yaml:"check_integrity"`
		IgnoredSummaryCodes []string `mapstructure:"ignored_summary_codes" yaml:"ignored_summary_codes"`
		LineLength          int      `mapstructure:"line_length" yaml:"line_length"`
	} `mapstructure:"bai" yaml:"bai"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then the config file, then environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-loader")
	v.AddConfigPath(".statement-loader")
	v.AddConfigPath(".")

	v.SetEnvPrefix("LOADER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Missing config file is fine, defaults and env vars cover it.
	}

	// The master key only ever comes from the environment.
	if err := v.BindEnv("encryption.master_key", "LOADER_MASTER_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind LOADER_MASTER_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("directories.pending", "data/pending")
	v.SetDefault("directories.archive", "data/archive")
	v.SetDefault("directories.error", "data/error")
	v.SetDefault("directories.output", "data/output")

	v.SetDefault("database.path", "data/loader.db")

	v.SetDefault("validation.schema_path", "")

	v.SetDefault("encryption.enabled", false)

	v.SetDefault("bai.mapping_path", "")
	v.SetDefault("bai.check_integrity", true)
	v.SetDefault("bai.ignored_summary_codes", []string{})
	v.SetDefault("bai.line_length", 80)

	v.SetDefault("csv.delimiter", ",")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Encryption.Enabled && config.Encryption.MasterKey == "" {
		return fmt.Errorf("LOADER_MASTER_KEY required when encryption is enabled")
	}

	if config.BAI.LineLength < 30 {
		return fmt.Errorf("bai.line_length must be at least 30, got: %d", config.BAI.LineLength)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
