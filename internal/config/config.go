// Package config loads server settings from defaults, an optional YAML file and
// SECURIWISE_WEB_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"securiwisetraining.co.uk/web/internal/coverage"
	"securiwisetraining.co.uk/web/internal/filter"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "SECURIWISE_WEB_"

// minKeyLen is the shortest accepted session key.
const minKeyLen = 32

// Config holds every runtime setting of the web server.
type Config struct {
	Addr         string `yaml:"addr" koanf:"addr"`
	Env          string `yaml:"env" koanf:"env"`
	Dev          bool   `yaml:"dev" koanf:"dev"`
	LogLevel     string `yaml:"log_level" koanf:"log_level"`
	BaseURL      string `yaml:"base_url" koanf:"base_url"`
	TemplatesDir string `yaml:"templates_dir" koanf:"templates_dir"`
	PublicDir    string `yaml:"public_dir" koanf:"public_dir"`
	LocalesDir   string `yaml:"locales_dir" koanf:"locales_dir"`
	CatalogFile  string `yaml:"catalog_file" koanf:"catalog_file"`

	SessionHashKey  string `yaml:"session_hash_key" koanf:"session_hash_key"`
	SessionBlockKey string `yaml:"session_block_key" koanf:"session_block_key"`

	EnquiryTo        string `yaml:"enquiry_to" koanf:"enquiry_to"`
	CoveragePrefixes string `yaml:"coverage_prefixes" koanf:"coverage_prefixes"`
	TagMatch         string `yaml:"tag_match" koanf:"tag_match"`

	GA4MeasurementID string `yaml:"ga4_measurement_id" koanf:"ga4_measurement_id"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:             "",
		Env:              "dev",
		LogLevel:         "info",
		BaseURL:          "https://securiwisetraining.co.uk",
		TemplatesDir:     "templates",
		PublicDir:        "public",
		LocalesDir:       "locales",
		EnquiryTo:        "info@securiwisetraining.co.uk",
		CoveragePrefixes: strings.Join(coverage.DefaultPrefixes, ","),
		TagMatch:         "exact",
	}
}

// Load reads path (a missing file is fine) and overlays environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.Addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		cfg.Addr = ":" + port
	}
	return cfg, nil
}

// IsProd reports whether the server runs in production.
func (c *Config) IsProd() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "prod")
}

// Validate checks values that would otherwise fail at request time.
func (c *Config) Validate() error {
	var errs []error
	if _, err := filter.MatcherByName(c.TagMatch); err != nil {
		errs = append(errs, fmt.Errorf("config: tag_match: %w", err))
	}
	if strings.TrimSpace(c.EnquiryTo) == "" {
		errs = append(errs, errors.New("config: enquiry_to is required"))
	}
	if c.IsProd() && len(c.SessionHashKey) < minKeyLen {
		errs = append(errs, fmt.Errorf("config: session_hash_key must be at least %d bytes in prod", minKeyLen))
	}
	if c.SessionHashKey != "" && len(c.SessionHashKey) < minKeyLen {
		errs = append(errs, fmt.Errorf("config: session_hash_key must be at least %d bytes", minKeyLen))
	}
	switch len(c.SessionBlockKey) {
	case 0, 16, 24, 32:
	default:
		errs = append(errs, errors.New("config: session_block_key must be 16, 24 or 32 bytes"))
	}
	if len(coverage.ParsePrefixes(c.CoveragePrefixes)) == 0 {
		errs = append(errs, errors.New("config: coverage_prefixes must list at least one prefix"))
	}
	return errors.Join(errs...)
}
