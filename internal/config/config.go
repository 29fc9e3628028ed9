// Package config holds the immutable display configuration consumed by the
// listing core, and the YAML defaults file that seeds it.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultWidth is the output width used when neither the config file nor a
// flag sets one.
const DefaultWidth = 80

// Config is a snapshot of every display-affecting option.
// It is built once by the command layer and only read afterwards.
type Config struct {
	// ShowAll includes dotfiles and the synthesized "." and ".." entries
	ShowAll bool `yaml:"show_all"`

	// ShowAlmostAll includes dotfiles but not "." and ".."
	ShowAlmostAll bool `yaml:"show_almost_all"`

	// DirectoryOnly lists directory arguments as plain entries
	DirectoryOnly bool `yaml:"directory_only"`

	// Recursive descends into subdirectories, each listed as its own block
	Recursive bool `yaml:"recursive"`

	// Classify appends a one-character type indicator to each name
	Classify bool `yaml:"classify"`

	// QuoteNames forces double-quote quoting of every name
	QuoteNames bool `yaml:"quote_names"`

	// Width is the target output width in cells (0 = unlimited)
	Width int `yaml:"width"`

	// OnePerLine forces one name per output line
	OnePerLine bool `yaml:"one_per_line"`

	// NullSeparated terminates each name with a NUL byte instead of laying out columns
	NullSeparated bool `yaml:"null_separated"`

	// Long selects the metadata listing instead of the column layout
	Long bool `yaml:"long"`

	// NoOwner hides the owner column of the long listing
	NoOwner bool `yaml:"no_owner"`

	// NoGroup hides the group column of the long listing
	NoGroup bool `yaml:"no_group"`

	// HumanReadable prints long-listing sizes with unit suffixes
	HumanReadable bool `yaml:"human_readable"`

	// ContinueOnError reports unreadable directories and keeps going
	// instead of aborting the run
	ContinueOnError bool `yaml:"continue_on_error"`

	// LogLevel sets diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		LogLevel: "warn",
	}
}

// LoadConfig loads configuration from the specified file path.
// A missing file yields the defaults without error; a malformed one is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Decoding over the defaults keeps them for absent keys,
	// and an explicit "width: 0" still means unlimited.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultConfig().LogLevel
	}

	return cfg, nil
}

// Flags carries command-line overrides. Nil fields leave the loaded value alone.
type Flags struct {
	ShowAll         *bool
	ShowAlmostAll   *bool
	DirectoryOnly   *bool
	Recursive       *bool
	Classify        *bool
	QuoteNames      *bool
	Width           *int
	OnePerLine      *bool
	NullSeparated   *bool
	Long            *bool
	NoOwner         *bool
	NoGroup         *bool
	HumanReadable   *bool
	ContinueOnError *bool
	LogLevel        *string
}

// MergeWithFlags applies non-nil flag values over the configuration.
// CLI flags take precedence over config file settings.
func (c *Config) MergeWithFlags(f Flags) {
	mergeBool(&c.ShowAll, f.ShowAll)
	mergeBool(&c.ShowAlmostAll, f.ShowAlmostAll)
	mergeBool(&c.DirectoryOnly, f.DirectoryOnly)
	mergeBool(&c.Recursive, f.Recursive)
	mergeBool(&c.Classify, f.Classify)
	mergeBool(&c.QuoteNames, f.QuoteNames)
	mergeBool(&c.OnePerLine, f.OnePerLine)
	mergeBool(&c.NullSeparated, f.NullSeparated)
	mergeBool(&c.Long, f.Long)
	mergeBool(&c.NoOwner, f.NoOwner)
	mergeBool(&c.NoGroup, f.NoGroup)
	mergeBool(&c.HumanReadable, f.HumanReadable)
	mergeBool(&c.ContinueOnError, f.ContinueOnError)
	if f.Width != nil {
		c.Width = *f.Width
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}

	// -g and -o imply the long listing
	if c.NoOwner || c.NoGroup {
		c.Long = true
	}
}

func mergeBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.ShowAll && c.ShowAlmostAll {
		return fmt.Errorf("show_all and show_almost_all are mutually exclusive")
	}

	if c.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", c.Width)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// ShowHidden reports whether dotfiles are admitted.
func (c *Config) ShowHidden() bool {
	return c.ShowAll || c.ShowAlmostAll
}
