// Package config loads runtime configuration for the fraudlens TUI from an
// optional YAML file and FRAUDLENS_* environment variables.
package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"fraudlens/internal/catalog"
)

// Variant names for Config.Variant.
const (
	VariantLanding = "landing"
	VariantPremium = "premium"
)

// Config is the resolved runtime configuration.
type Config struct {
	Variant          string        // starting landing variant
	Region           string        // starting statistics region
	CatalogPath      string        // "" uses the built-in catalog
	RotationInterval time.Duration // testimonial carousel period
	LogFile          string        // "" disables logging
	LogLevel         string
}

// Load resolves configuration with precedence env > file > defaults.
// path may be empty, in which case only env and defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("variant", VariantLanding)
	v.SetDefault("region", "global")
	v.SetDefault("catalog_path", "")
	v.SetDefault("rotation_interval", "5s")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("FRAUDLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Variant:          v.GetString("variant"),
		Region:           v.GetString("region"),
		CatalogPath:      v.GetString("catalog_path"),
		RotationInterval: v.GetDuration("rotation_interval"),
		LogFile:          v.GetString("log_file"),
		LogLevel:         v.GetString("log_level"),
	}

	if cfg.Variant != VariantLanding && cfg.Variant != VariantPremium {
		return nil, fmt.Errorf("unknown variant %q (want %q or %q)", cfg.Variant, VariantLanding, VariantPremium)
	}
	if !slices.Contains(catalog.Regions(), catalog.Region(cfg.Region)) {
		names := make([]string, 0, len(catalog.Regions()))
		for _, r := range catalog.Regions() {
			names = append(names, string(r))
		}
		return nil, fmt.Errorf("unknown region %q (want one of %s)", cfg.Region, strings.Join(names, ", "))
	}
	if cfg.RotationInterval <= 0 {
		return nil, fmt.Errorf("rotation_interval must be positive, got %s", cfg.RotationInterval)
	}
	return cfg, nil
}
