package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API      APIConfig
	UI       UIConfig
	Export   ExportConfig
	Database DatabaseConfig
}

// APIConfig holds remote endpoint settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat     string `mapstructure:"date_format"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
	PageLimit      int    `mapstructure:"page_limit"`
}

// ExportConfig holds report output settings.
type ExportConfig struct {
	Dir string
}

// DatabaseConfig holds the offline snapshot location.
type DatabaseConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix EXPENSETRACK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.page_limit", 20)
	v.SetDefault("export.dir", ".")
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "expensetrack", "snapshot.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("EXPENSETRACK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "expensetrack"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("EXPENSETRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("EXPENSETRACK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "expensetrack", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.page_limit", cfg.UI.PageLimit)
	v.Set("export.dir", cfg.Export.Dir)
	v.Set("database.path", cfg.Database.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
