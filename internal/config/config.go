// Package config reads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

var (
	envs       = []string{EnvDevelopment, EnvStaging, EnvProduction}
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Config is the service configuration. Each field maps to one
// environment variable, named in the comment.
type Config struct {
	Port         int    // PORT
	Env          string // ENV
	DatabasePath string // DATABASE_PATH
	APIKey       string // API_KEY; guards custom-day writes
	LogLevel     string // LOG_LEVEL
	LogFormat    string // LOG_FORMAT

	// Diaspora selects the default holiday and parasha rules when a
	// request does not pass ?diaspora.
	Diaspora bool // DIASPORA

	// Timezone is the IANA zone whose calendar date is "today".
	Timezone string // TIMEZONE

	// parseErrs holds variables that were set but could not be parsed.
	parseErrs []error
}

// Load reads a .env file when one exists, then the process environment,
// and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := fromEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// fromEnv builds a Config from lookup. Unset values take their defaults.
// Unparsable values also take their defaults and are reported by Validate.
func fromEnv(lookup func(string) (string, bool)) *Config {
	e := &env{lookup: lookup}
	cfg := &Config{
		Port:         e.getInt("PORT", 8080),
		Env:          e.get("ENV", EnvDevelopment),
		DatabasePath: e.get("DATABASE_PATH", "./data/hdate.db"),
		APIKey:       e.get("API_KEY", ""),
		LogLevel:     e.get("LOG_LEVEL", "info"),
		LogFormat:    e.get("LOG_FORMAT", "text"),
		Diaspora:     e.getBool("DIASPORA", false),
		Timezone:     e.get("TIMEZONE", "UTC"),
	}
	cfg.parseErrs = e.errs
	return cfg
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	errs := append([]error(nil), c.parseErrs...)

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if err := oneOf("ENV", c.Env, envs); err != nil {
		errs = append(errs, err)
	}
	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}
	if c.IsProduction() && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}
	if err := oneOf("LOG_LEVEL", c.LogLevel, logLevels); err != nil {
		errs = append(errs, err)
	}
	if err := oneOf("LOG_FORMAT", c.LogFormat, logFormats); err != nil {
		errs = append(errs, err)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE %q is not a known time zone: %w", c.Timezone, err))
	}

	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool { return c.Env == EnvDevelopment }

func (c *Config) IsProduction() bool { return c.Env == EnvProduction }

// Location returns the configured zone, or UTC if it cannot be loaded.
func (c *Config) Location() *time.Location {
	if loc, err := time.LoadLocation(c.Timezone); err == nil {
		return loc
	}
	return time.UTC
}

func oneOf(name, got string, allowed []string) error {
	if slices.Contains(allowed, got) {
		return nil
	}
	return fmt.Errorf("%s must be one of %v, got %q", name, allowed, got)
}

type env struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (e *env) get(key, def string) string {
	if v, ok := e.lookup(key); ok && v != "" {
		return v
	}
	return def
}

func (e *env) getInt(key string, def int) int {
	v := e.get(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s must be an integer, got %q", key, v))
		return def
	}
	return n
}

func (e *env) getBool(key string, def bool) bool {
	v := e.get(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s must be true or false, got %q", key, v))
		return def
	}
	return b
}
