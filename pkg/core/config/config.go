// ============================================================================
// humanfmt - Human-readable timestamp and number formatting
// ============================================================================
//
// Package:     config
// Description: Typed application configuration loaded from TOML or YAML
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	fconfig "github.com/msto63/humanfmt/foundation/core/config"
	hferror "github.com/msto63/humanfmt/foundation/core/error"
	hflog "github.com/msto63/humanfmt/foundation/core/log"
	"github.com/msto63/humanfmt/foundation/utils/mapx"
	"github.com/msto63/humanfmt/foundation/utils/timex"
)

// Environment variables that override file values
const (
	EnvConfig         = "HUMANFMT_CONFIG"
	EnvLogLevel       = "HUMANFMT_LOG_LEVEL"
	EnvLogFormat      = "HUMANFMT_LOG_FORMAT"
	EnvDefaultFormat  = "HUMANFMT_DEFAULT_FORMAT"
	EnvNaiveLocation  = "HUMANFMT_NAIVE_LOCATION"
	DefaultTableStyle = "rounded"
)

// TableStyles lists the accepted values of number.table_style
var TableStyles = []string{"rounded", "normal", "ascii", "markdown"}

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general" json:"general"`
	Timestamp TimestampConfig `toml:"timestamp" yaml:"timestamp" json:"timestamp"`
	Number    NumberConfig    `toml:"number" yaml:"number" json:"number"`

	path        string
	unknownKeys []string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format" json:"log_format"`
}

// TimestampConfig holds timestamp conversion settings
type TimestampConfig struct {
	DefaultFormat string            `toml:"default_format" yaml:"default_format" json:"default_format"`
	NaiveLocation string            `toml:"naive_location" yaml:"naive_location" json:"naive_location"`
	Presets       map[string]string `toml:"presets" yaml:"presets" json:"presets"`
}

// NumberConfig holds number formatting settings
type NumberConfig struct {
	TableStyle string `toml:"table_style" yaml:"table_style" json:"table_style"`
	PairsFile  string `toml:"pairs_file" yaml:"pairs_file" json:"pairs_file"`
}

// DefaultPresets returns the presets shipped with humanfmt
func DefaultPresets() map[string]string {
	return map[string]string{
		"iso_offset":    "YYYY-MM-DDTHH:MI:SSoffset",
		"iso_utc_nanos": "YYYY-MM-DDTHH:MI:SS.nnnnnnnnnZ",
		"iso_naive":     "YYYY-MM-DDTHH:MI:SS",
		"date":          "YYYY-MM-DD",
		"time":          "HH:MI:SS",
	}
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, hferror.New("config file not found: "+path).
			WithCode(hferror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg := &Config{path: path}

	if fconfig.DetectFormat(path) == fconfig.FormatTOML {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, hferror.Wrap(err, "failed to parse config").
				WithCode(hferror.CodeInvalidConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		for _, key := range md.Undecoded() {
			cfg.unknownKeys = append(cfg.unknownKeys, key.String())
		}
	} else if _, err := fconfig.LoadFile(path, cfg); err != nil {
		return nil, hferror.Wrap(err, "failed to parse config").
			WithOperation("config.Load")
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Discover loads the configuration at explicit, then at $HUMANFMT_CONFIG,
// then the first of ./humanfmt.{toml,yaml,yml} and
// $HOME/.config/humanfmt/config.{toml,yaml,yml}. Without any file it returns
// Default().
func Discover(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}

	path, err := fconfig.FindConfigFile(DiscoveryOptions())
	if err != nil {
		cfg := Default()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return Load(path)
}

// DiscoveryOptions returns the search locations used by Discover
func DiscoveryOptions() fconfig.DiscoveryOptions {
	return fconfig.DiscoveryOptions{
		Paths:      []string{".", "$HOME/.config/humanfmt"},
		Filenames:  []string{"humanfmt", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv(EnvDefaultFormat); v != "" {
		c.Timestamp.DefaultFormat = v
	}
	if v := os.Getenv(EnvNaiveLocation); v != "" {
		c.Timestamp.NaiveLocation = v
	}
}

// applyDefaults sets default values for missing configuration.
// Shipped presets are kept unless the file redefines them.
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Timestamp.DefaultFormat == "" {
		c.Timestamp.DefaultFormat = "iso_offset"
	}
	if c.Timestamp.NaiveLocation == "" {
		c.Timestamp.NaiveLocation = "UTC"
	}

	c.Timestamp.Presets = mapx.Merge(DefaultPresets(), c.Timestamp.Presets)

	if c.Number.TableStyle == "" {
		c.Number.TableStyle = DefaultTableStyle
	}
	c.Number.PairsFile = os.ExpandEnv(c.Number.PairsFile)
}

// Validate checks every value that has a closed set of valid inputs
func (c *Config) Validate() error {
	invalid := func(key, value, reason string) error {
		return hferror.New("invalid "+key+": "+reason).
			WithCode(hferror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key).
			WithDetail("value", value)
	}

	if _, err := hflog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := hflog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err.Error())
	}
	if _, err := timex.LoadLocation(c.Timestamp.NaiveLocation); err != nil {
		return invalid("timestamp.naive_location", c.Timestamp.NaiveLocation, err.Error())
	}
	for name, template := range c.Timestamp.Presets {
		if strings.TrimSpace(name) == "" || template == "" {
			return invalid("timestamp.presets", name, "preset names and templates must not be empty")
		}
	}
	if !isTableStyle(c.Number.TableStyle) {
		return invalid("number.table_style", c.Number.TableStyle,
			"expected one of "+strings.Join(TableStyles, ", "))
	}

	return nil
}

// Location returns the location naive timestamps are read in
func (c *Config) Location() (*time.Location, error) {
	loc, err := timex.LoadLocation(c.Timestamp.NaiveLocation)
	if err != nil {
		return nil, hferror.Wrap(err, "failed to load naive_location").
			WithCode(hferror.CodeInvalidConfig).
			WithOperation("config.Location").
			WithDetail("value", c.Timestamp.NaiveLocation)
	}
	return loc, nil
}

// Converter builds a timestamp converter carrying the configured presets and
// naive location; opts are applied after them
func (c *Config) Converter(opts ...timex.Option) (*timex.Converter, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	opts = append([]timex.Option{
		timex.WithLocation(loc),
		timex.WithPresets(c.Timestamp.Presets),
		timex.WithNamedFormat(timex.FormatRelative, timex.RelativeFormat(time.Now)),
	}, opts...)
	return timex.NewConverter(opts...), nil
}

// PresetNames returns the configured preset names in sorted order
func (c *Config) PresetNames() []string {
	return mapx.SortedKeys(c.Timestamp.Presets)
}

// Path returns the file the configuration was loaded from, or "" for defaults
func (c *Config) Path() string {
	return c.path
}

// UnknownKeys returns TOML keys present in the file but not understood
func (c *Config) UnknownKeys() []string {
	return c.unknownKeys
}

func isTableStyle(style string) bool {
	for _, s := range TableStyles {
		if s == style {
			return true
		}
	}
	return false
}
