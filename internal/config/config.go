// Package config loads runtime settings from the environment, an optional
// .env file and an optional pricing YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/taskora/internal/pricing"
	"github.com/joho/godotenv"
)

type Config struct {
	DBPath      string
	UserID      string
	PricingFile string
	LogLevel    string
	LogUseCases bool
	HTTPAddr    string

	Pricing pricing.Policy
}

// DefaultConfig returns settings for a local single-user install.
func DefaultConfig() Config {
	dbPath := "taskora.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".taskora", "taskora.db")
	}
	return Config{
		DBPath:   dbPath,
		UserID:   "local",
		LogLevel: "info",
		HTTPAddr: "127.0.0.1:8080",
		Pricing:  pricing.DefaultPolicy(),
	}
}

// Load reads a .env file in the working directory if one exists, then applies
// TASKORA_* environment variables over the defaults. Variables already set in
// the environment win over the .env file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv("TASKORA_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("TASKORA_USER"); v != "" {
		cfg.UserID = v
	}
	if v := getenv("TASKORA_PRICING_FILE"); v != "" {
		cfg.PricingFile = v
	}
	if v := getenv("TASKORA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := getenv("TASKORA_LOG_USE_CASES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("TASKORA_LOG_USE_CASES: %w", err)
		}
		cfg.LogUseCases = b
	}
	if v := getenv("TASKORA_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := getenv("TASKORA_LIFETIME_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return Config{}, fmt.Errorf("TASKORA_LIFETIME_THRESHOLD must be a non-negative number, got %q", v)
		}
		cfg.Pricing.LifetimeThreshold = f
	}
	if v := getenv("TASKORA_FEATURED_TIERS"); v != "" {
		cfg.Pricing.FeaturedTiers = splitList(v)
	}
	return cfg, nil
}

// Catalog returns the product catalog and policy in effect: the shipped
// defaults, overridden by PricingFile when set.
func (c Config) Catalog() (*pricing.Catalog, pricing.Policy, error) {
	if c.PricingFile == "" {
		return pricing.DefaultCatalog(), c.Pricing, nil
	}
	return pricing.LoadFile(c.PricingFile, pricing.DefaultCatalog(), c.Pricing)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
