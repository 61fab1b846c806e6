// Package config loads picker settings from a YAML file, a .env file and the
// environment, in increasing order of precedence.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	cerrors "cloudeng.io/errors"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/lululau/rangecal/internal/calendar"
)

// EnvPrefix prefixes every environment override, e.g. RANGECAL_FIRST_WEEKDAY.
const EnvPrefix = "RANGECAL_"

// Config captures all runtime options.
type Config struct {
	FirstWeekday string `yaml:"first_weekday"`
	TitleLayout  string `yaml:"title_layout"`
	MaxDate      string `yaml:"max_date"`
	HolidaysFile string `yaml:"holidays_file"`
	Lunar        bool   `yaml:"lunar"`
	NoColor      bool   `yaml:"no_color"`
	LogLevel     string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		FirstWeekday: "sunday",
		TitleLayout:  calendar.DefaultTitleLayout,
		LogLevel:     "warn",
	}
}

// Default returns the built-in settings.
func Default() Config {
	return defaultConfig()
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	normalizeConfig(&cfg)
	return cfg, nil
}

// LoadEnv loads envFile (if it exists) into the process environment and
// applies RANGECAL_* overrides. A missing .env file is not an error.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return errors.Wrapf(err, "load %s", envFile)
		}
	}
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"FIRST_WEEKDAY": &c.FirstWeekday,
		"TITLE_LAYOUT":  &c.TitleLayout,
		"MAX_DATE":      &c.MaxDate,
		"HOLIDAYS_FILE": &c.HolidaysFile,
		"LOG_LEVEL":     &c.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	bools := map[string]*bool{
		"LUNAR":    &c.Lunar,
		"NO_COLOR": &c.NoColor,
	}
	errs := &cerrors.M{}
	for key, dst := range bools {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs.Append(errors.Errorf("%s%s: %q is not a boolean", EnvPrefix, key, v))
			continue
		}
		*dst = b
	}
	normalizeConfig(c)
	return errs.Err()
}

func normalizeConfig(cfg *Config) {
	cfg.FirstWeekday = strings.ToLower(strings.TrimSpace(cfg.FirstWeekday))
	cfg.MaxDate = strings.TrimSpace(cfg.MaxDate)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.TitleLayout == "" {
		cfg.TitleLayout = calendar.DefaultTitleLayout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	errs := &cerrors.M{}
	if _, err := c.Weekday(); err != nil {
		errs.Append(err)
	}
	if _, _, err := c.Limit(); err != nil {
		errs.Append(err)
	}
	if _, err := c.Level(); err != nil {
		errs.Append(err)
	}
	return errs.Err()
}

// Weekday returns the configured first day of the week.
func (c Config) Weekday() (time.Weekday, error) {
	wd, err := calendar.ParseWeekday(c.FirstWeekday)
	if err != nil {
		return time.Sunday, errors.Wrap(err, "first_weekday")
	}
	return wd, nil
}

// Convention returns the calendar convention for the configured weekday.
func (c Config) Convention() (calendar.Convention, error) {
	wd, err := c.Weekday()
	if err != nil {
		return calendar.Convention{}, err
	}
	return calendar.Gregorian(wd), nil
}

// Limit returns the configured max selectable date, if any.
func (c Config) Limit() (calendar.Date, bool, error) {
	if c.MaxDate == "" {
		return calendar.Date{}, false, nil
	}
	d, err := calendar.ParseDate(c.MaxDate)
	if err != nil {
		return calendar.Date{}, false, errors.Wrap(err, "max_date")
	}
	return d, true, nil
}

// Level returns the zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel, errors.Wrap(err, "log_level")
	}
	return lvl, nil
}
