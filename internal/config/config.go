package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all sentinel configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Engine  EngineConfig  `toml:"engine"`
	Display DisplayConfig `toml:"display"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `toml:"port"`
}

// EngineConfig holds the configured constants the derivation functions need.
// IncomeAssumption is deliberately a configured figure rather than a value
// derived from recorded income transactions; the two would diverge and the
// configured one is authoritative.
type EngineConfig struct {
	IncomeAssumption float64 `toml:"income_assumption"`
	PaycheckAmount   float64 `toml:"paycheck_amount"`
	DefaultDailyBurn float64 `toml:"default_daily_burn"`
	ForecastDays     int     `toml:"forecast_days"`
}

// DisplayConfig holds presentation-contract settings.
type DisplayConfig struct {
	// PrivacyMode masks every rendered amount; stored values are unaffected.
	PrivacyMode bool `toml:"privacy_mode"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			// 8111 avoids conflicts with other projects (not 8080).
			Port: "8111",
		},
		Engine: EngineConfig{
			IncomeAssumption: 5000,
			PaycheckAmount:   2000,
			DefaultDailyBurn: 50,
			ForecastDays:     30,
		},
	}
}

// Load reads the config file at path, returning defaults if it doesn't exist.
// An empty path checks the SENTINEL_CONFIG env var and falls back to defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("SENTINEL_CONFIG")
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Port returns the listen port from the PORT env var or config, in that order.
func (c Config) Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return c.Server.Port
}
