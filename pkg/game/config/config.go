// Package config loads the game's settings from the environment, an optional
// .env file and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"dungeonescape/pkg/game/locale"
	"dungeonescape/pkg/game/telemetry"
)

// Environment variable names
const (
	EnvSeed        = "DUNGEON_SEED"
	EnvLogLevel    = "DUNGEON_LOG_LEVEL"
	EnvLogFormat   = "DUNGEON_LOG_FORMAT"
	EnvNoColor     = "DUNGEON_NO_COLOR"
	EnvLanguage    = "DUNGEON_LANG"
	EnvEnvironment = "DUNGEON_ENV"
)

// Config holds the application configuration
type Config struct {
	// Seed for the event generator; 0 picks a time-based seed
	Seed        int64
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	NoColor     bool
	Lang        string `validate:"required,alpha"`
	Environment string `validate:"oneof=dev prod test"`

	// TelemetryEnabled is true when an OTLP endpoint is configured
	TelemetryEnabled bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the configuration from the environment and then applies the
// command line flags in args (normally os.Args[1:]).
func Load(args []string) (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if err := cfg.ParseFlags(args); err != nil {
		return nil, err
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FromEnv builds a configuration from environment variables and defaults
func FromEnv() (*Config, error) {
	cfg := &Config{
		LogLevel:         getEnv(EnvLogLevel, "warn"),
		LogFormat:        getEnv(EnvLogFormat, "text"),
		Lang:             getEnv(EnvLanguage, "en"),
		Environment:      getEnv(EnvEnvironment, "prod"),
		TelemetryEnabled: getEnv(telemetry.EndpointEnv, "") != "",
	}

	seed, err := strconv.ParseInt(getEnv(EnvSeed, "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvSeed, err)
	}
	cfg.Seed = seed

	noColor, err := getEnvBool(EnvNoColor, false)
	if err != nil {
		return nil, err
	}
	cfg.NoColor = noColor

	return cfg, nil
}

// ParseFlags overrides the configuration with command line flags
func (c *Config) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("dungeon-escape", flag.ContinueOnError)

	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random events (0 = time based)")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "disable coloured output")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	return nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid configuration: %s=%q fails %q", fe.Field(), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if langs := locale.Languages(); !slices.Contains(langs, c.Lang) {
		return fmt.Errorf("invalid configuration: no messages for language %q (have %s)", c.Lang, strings.Join(langs, ", "))
	}
	return nil
}

// normalize lower-cases the values that are matched case-insensitively
func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)
	c.Lang = strings.ToLower(c.Lang)
	c.Environment = strings.ToLower(c.Environment)
}

// IsDevelopment returns true in the dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev"
}

// getEnv retrieves an environment variable or returns a default value.
// A variable set to the empty string counts as unset.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return b, nil
}
