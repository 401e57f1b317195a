package config

import (
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds the server configuration
type Config struct {
	Port        string `toml:"port"`
	DBPath      string `toml:"db_path"`
	DemoSeed    bool   `toml:"demo_seed"`    // seed demo data when the store is empty
	HeatmapSeed int64  `toml:"heatmap_seed"` // 0 = unseeded gap fill
	RateLimit   int    `toml:"rate_limit"`   // requests per minute per IP
}

// Load builds the configuration from defaults, an optional TOML file named
// by CONFIG_PATH, and environment variable overrides, in that order.
func Load() *Config {
	cfg := &Config{
		Port:      ":8080",
		DBPath:    "./data/explorer.db",
		DemoSeed:  true,
		RateLimit: 120,
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			log.Printf("Warning: could not read config file %s: %v", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if seed := os.Getenv("DEMO_SEED"); seed != "" {
		cfg.DemoSeed = seed == "1" || seed == "true"
	}
	if seed := os.Getenv("HEATMAP_SEED"); seed != "" {
		if v, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.HeatmapSeed = v
		}
	}

	return cfg
}
