package configs

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	Simulation SimulationConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// StoreConfig holds key-value store configuration
type StoreConfig struct {
	Path string
}

// SimulationConfig holds trading simulation configuration
type SimulationConfig struct {
	Username            string
	StartingBalance     float64
	SettlementDelaySec  int
	QuoteRefreshSeconds int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("GO_ENV", "development"),
		},
		Store: StoreConfig{
			Path: getEnv("DATA_PATH", "flashtrade.db"),
		},
		Simulation: SimulationConfig{
			Username:            getEnv("TRADER_NAME", "Trader"),
			StartingBalance:     getEnvFloat("STARTING_BALANCE", 10000),
			SettlementDelaySec:  getEnvInt("SETTLEMENT_DELAY_SECONDS", 2),
			QuoteRefreshSeconds: getEnvInt("QUOTE_REFRESH_SECONDS", 30),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
