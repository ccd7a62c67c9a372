// Package config reads the simulator settings from the environment.
//
// A .env file in the working directory is loaded first, if any. Variables
// already set in the environment take precedence over the file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvPortfolioFile = "PSS_PORTFOLIO_FILE"
	EnvSeed          = "PSS_SEED"
	EnvLogLevel      = "PSS_LOG_LEVEL"
	EnvLogPretty     = "PSS_LOG_PRETTY"
	EnvAdvisorModel  = "PSS_ADVISOR_MODEL"
)

// DefaultPortfolioFile is where the portfolio document lives unless configured otherwise.
const DefaultPortfolioFile = "./data/portfolio.json"

// Config holds application configuration
type Config struct {
	PortfolioFile string
	Seed          uint64 // 0 draws a random seed
	LogLevel      string
	LogPretty     bool
	AdvisorModel  string
}

// Load reads configuration from environment variables, after loading the
// given .env files (".env" when none is given).
func Load(filenames ...string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(filenames...)

	seed, err := getEnvAsUint64(EnvSeed, 0)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		PortfolioFile: getEnv(EnvPortfolioFile, DefaultPortfolioFile),
		Seed:          seed,
		LogLevel:      getEnv(EnvLogLevel, "info"),
		LogPretty:     getEnvAsBool(EnvLogPretty, true),
		AdvisorModel:  getEnv(EnvAdvisorModel, "gemini-2.5-flash"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.PortfolioFile == "" {
		return fmt.Errorf("%s is required", EnvPortfolioFile)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return v, nil
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
