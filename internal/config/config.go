// Package config manages the CETools configuration file and its
// environment overrides. Settings live in a TOML file under the user's
// config directory and are addressed as "section.key".
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	cerrors "github.com/lgw4/cetools/internal/errors"
)

// Config holds all CETools settings.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Character CharacterConfig `toml:"character"`
	Dice      DiceConfig      `toml:"dice"`
	Storage   StorageConfig   `toml:"storage"`
}

// GeneralConfig holds output defaults.
type GeneralConfig struct {
	ExportFormat string `toml:"export_format"`
	OutputFormat string `toml:"output_format"`
}

// CharacterConfig holds character generation defaults.
type CharacterConfig struct {
	DefaultTemplate string `toml:"default_template"`
}

// DiceConfig holds dice engine defaults.
type DiceConfig struct {
	// D66Unordered composes D66 rolls high-die-first when the
	// expression has no explicit ordering marker
	D66Unordered bool `toml:"d66_unordered"`
}

// StorageConfig selects the character store backend.
type StorageConfig struct {
	// RedisURL switches character storage to Redis; empty uses the
	// file store
	RedisURL string `toml:"redis_url"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			ExportFormat: "json",
			OutputFormat: "text",
		},
		Character: CharacterConfig{
			DefaultTemplate: "traveller",
		},
		Dice: DiceConfig{
			D66Unordered: false,
		},
		Storage: StorageConfig{
			RedisURL: "",
		},
	}
}

// Dir returns the CETools configuration directory, honoring
// XDG_CONFIG_HOME.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cetools"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", cerrors.Wrap(err, "cannot locate home directory")
	}
	return filepath.Join(home, ".config", "cetools"), nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration file, creating it with defaults when
// missing. A corrupt file falls back to defaults rather than failing.
// Environment overrides (CETOOLS_*) are applied last.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg := Default()

	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		if saveErr := cfg.Save(); saveErr != nil {
			return nil, saveErr
		}
	} else if _, decodeErr := toml.DecodeFile(path, cfg); decodeErr != nil {
		log.Printf("Error loading configuration: %v", decodeErr)
		cfg = Default()
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save writes the configuration file, creating the directory as needed.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return cerrors.Wrap(err, "cannot create config directory")
	}

	path := filepath.Join(dir, "config.toml")
	f, err := os.Create(path)
	if err != nil {
		return cerrors.Wrapf(err, "cannot write config file %s", path)
	}
	defer f.Close() //nolint:errcheck

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return cerrors.Wrap(err, "cannot encode configuration")
	}
	return nil
}

// applyEnv lets CETOOLS_* environment variables override file settings.
func (c *Config) applyEnv() {
	c.General.ExportFormat = getEnvOrDefault("CETOOLS_EXPORT_FORMAT", c.General.ExportFormat)
	c.General.OutputFormat = getEnvOrDefault("CETOOLS_OUTPUT_FORMAT", c.General.OutputFormat)
	c.Character.DefaultTemplate = getEnvOrDefault("CETOOLS_DEFAULT_TEMPLATE", c.Character.DefaultTemplate)
	c.Storage.RedisURL = getEnvOrDefault("CETOOLS_REDIS_URL", c.Storage.RedisURL)

	if v := os.Getenv("CETOOLS_D66_UNORDERED"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Dice.D66Unordered = parsed
		}
	}
}

// Keys lists the addressable settings in display order.
func Keys() []string {
	return []string{
		"general.export_format",
		"general.output_format",
		"character.default_template",
		"dice.d66_unordered",
		"storage.redis_url",
	}
}

// Get returns the value of a "section.key" setting as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "general.export_format":
		return c.General.ExportFormat, nil
	case "general.output_format":
		return c.General.OutputFormat, nil
	case "character.default_template":
		return c.Character.DefaultTemplate, nil
	case "dice.d66_unordered":
		return strconv.FormatBool(c.Dice.D66Unordered), nil
	case "storage.redis_url":
		return c.Storage.RedisURL, nil
	default:
		return "", cerrors.NotFoundf("unknown configuration key: %s", key)
	}
}

// Set updates a "section.key" setting from its string form. The caller
// saves when persistence is wanted.
func (c *Config) Set(key, value string) error {
	switch key {
	case "general.export_format":
		c.General.ExportFormat = value
	case "general.output_format":
		c.General.OutputFormat = value
	case "character.default_template":
		c.Character.DefaultTemplate = value
	case "dice.d66_unordered":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return cerrors.InvalidArgumentf("dice.d66_unordered must be a boolean, got %q", value)
		}
		c.Dice.D66Unordered = parsed
	case "storage.redis_url":
		c.Storage.RedisURL = value
	default:
		return cerrors.NotFoundf("unknown configuration key: %s", key)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
