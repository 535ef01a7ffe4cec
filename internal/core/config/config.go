// Package config handles configuration loading and validation for rtm2ics.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/rtm2ics/internal/core/convert"
	"github.com/colonyops/rtm2ics/internal/core/filter"
	"github.com/colonyops/rtm2ics/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Output   OutputConfig `yaml:"output"`
	Filters  FilterConfig `yaml:"filters"`
	Timezone string       `yaml:"timezone"` // IANA zone name; empty = local system zone
	Theme    string       `yaml:"theme"`
}

// OutputConfig controls where and how calendars are written.
type OutputConfig struct {
	Dir          string `yaml:"dir"`           // empty = directory of the input file
	Mode         string `yaml:"mode"`          // per-list or single
	CalendarName string `yaml:"calendar_name"` // calendar name in single mode
}

// FilterConfig holds the default filter clauses. CLI flags override them.
type FilterConfig struct {
	Lists               []string `yaml:"lists"`
	ExcludeLists        []string `yaml:"exclude_lists"`
	IncompleteOnly      bool     `yaml:"incomplete_only"`
	SkipCompletedBefore string   `yaml:"skip_completed_before"` // YYYY-MM-DD
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Mode:         string(convert.ModePerList),
			CalendarName: convert.DefaultCalendarName,
		},
		Theme: styles.DefaultTheme,
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Output.Mode == "" {
		c.Output.Mode = defaults.Output.Mode
	}
	if c.Output.CalendarName == "" {
		c.Output.CalendarName = defaults.Output.CalendarName
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("output.mode", c.Output.Mode, validMode),
		criterio.Run("output.calendar_name", c.Output.CalendarName, required),
		criterio.Run("filters.skip_completed_before", c.Filters.SkipCompletedBefore, validDate),
		criterio.Run("timezone", c.Timezone, validTimezone),
		criterio.Run("theme", c.Theme, validTheme),
	)
}

// Location returns the zone timestamps are rendered in.
func (c *Config) Location() (*time.Location, error) {
	return LoadLocation(c.Timezone)
}

// FilterOptions converts the configured filter defaults.
func (c *Config) FilterOptions() (filter.Options, error) {
	loc, err := c.Location()
	if err != nil {
		return filter.Options{}, err
	}

	opts := filter.Options{
		Lists:          c.Filters.Lists,
		ExcludeLists:   c.Filters.ExcludeLists,
		IncompleteOnly: c.Filters.IncompleteOnly,
		Location:       loc,
	}

	if c.Filters.SkipCompletedBefore != "" {
		cutoff, err := filter.ParseDate(c.Filters.SkipCompletedBefore, loc)
		if err != nil {
			return filter.Options{}, err
		}
		opts.CompletedBefore = cutoff
	}

	return opts, nil
}

// LoadLocation resolves a zone name. Empty and "Local" mean the local system
// zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

func validMode(s string) error {
	_, err := convert.ParseMode(s)
	return err
}

func required(s string) error {
	if s == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

func validDate(s string) error {
	if s == "" {
		return nil
	}
	_, err := filter.ParseDate(s, time.UTC)
	return err
}

func validTimezone(s string) error {
	_, err := LoadLocation(s)
	return err
}

func validTheme(s string) error {
	if _, ok := styles.GetPalette(s); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", s, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}
