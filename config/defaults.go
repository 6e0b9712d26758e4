package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/sigil/tier"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Lexicon defaults: builtin table only.
	v.SetDefault("lexicon.paths", []string{})

	// Conversion defaults
	v.SetDefault("convert.workers", 4)
	v.SetDefault("convert.default_tier", "") // auto-classify
	v.SetDefault("convert.domain", "")       // infer per document
	v.SetDefault("convert.confidence_threshold", 0.5)

	// Log defaults
	v.SetDefault("log.theme", "everforest")
}

// DefaultTier resolves the configured default tier. Returns nil when
// the tier should be auto-classified per document.
func (c *Config) DefaultTier() (*tier.Tier, error) {
	if c.Convert.DefaultTier == "" {
		return nil, nil
	}
	t, err := tier.Parse(c.Convert.DefaultTier)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetWorkers returns the batch worker count with the default applied.
func (c *Config) GetWorkers() int {
	if c.Convert.Workers <= 0 {
		return 4
	}
	return c.Convert.Workers
}

// GetLogTheme returns the log theme (default: everforest).
func (c *Config) GetLogTheme() string {
	if c.Log.Theme == "" {
		return "everforest"
	}
	return c.Log.Theme
}
