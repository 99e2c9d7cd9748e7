// Package config loads the optional YAML configuration file. Flags override
// anything set here; with no file present every field falls back to its
// default.
//
// File locations (priority order):
//  1. path passed on the command line
//  2. $CAMPUSFOUND_CONFIG
//  3. ./campusfound.yaml
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration.
type Config struct {
	Addr     string        `yaml:"addr"`
	DBPath   string        `yaml:"db_path"`
	LogPath  string        `yaml:"log_path"`
	TokenTTL time.Duration `yaml:"token_ttl"`

	// SeedDemo controls first-run insertion of the demo items and claims.
	// Unset means enabled; the seed admin is always ensured regardless.
	SeedDemo *bool `yaml:"seed_demo"`
}

// Load finds and loads the config file, or returns defaults if none found.
func Load(path string) (*Config, error) {
	if path == "" {
		path = findConfigPath()
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// SeedEnabled reports whether demo data seeding is on.
func (c *Config) SeedEnabled() bool {
	return c.SeedDemo == nil || *c.SeedDemo
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.DBPath == "" {
		c.DBPath = "campusfound.sqlite3"
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = 7 * 24 * time.Hour
	}
}

func findConfigPath() string {
	if path := os.Getenv("CAMPUSFOUND_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("campusfound.yaml"); err == nil {
		return "campusfound.yaml"
	}
	return ""
}
