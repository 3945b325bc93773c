// Package config loads application configuration: environment variables
// with the INVOICEFLOW prefix layered over an optional config file
// layered over defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Database DatabaseConfig
	Output   OutputConfig
}

type DatabaseConfig struct {
	// Path is the SQLite database file.
	Path string
}

type OutputConfig struct {
	// Format is the default CLI output format ("text" or "json").
	Format string
	// Locale is the BCP 47 tag used for money/number formatting.
	Locale string
}

// Load reads configuration from defaults, an optional invoiceflow.yaml
// (current directory or ~/.config/invoiceflow), and INVOICEFLOW_*
// environment variables, in increasing precedence. A missing config
// file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("database.path", "invoiceflow.db")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.locale", "en")

	v.SetConfigName("invoiceflow")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/invoiceflow")

	v.SetEnvPrefix("INVOICEFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Output: OutputConfig{
			Format: v.GetString("output.format"),
			Locale: v.GetString("output.locale"),
		},
	}
	return cfg, nil
}
