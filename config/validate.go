package config

import "github.com/teranos/sigil/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Batch workers: 0 = use default, negative = invalid
	if c.Convert.Workers < 0 {
		return errors.Newf("convert.workers must be >= 0, got %d", c.Convert.Workers)
	}

	// DefaultTier is optional; when set it must parse
	if c.Convert.DefaultTier != "" {
		if _, err := c.DefaultTier(); err != nil {
			return errors.Wrapf(err, "convert.default_tier %q is not a known tier", c.Convert.DefaultTier)
		}
	}

	if c.Convert.ConfidenceThreshold < 0 || c.Convert.ConfidenceThreshold > 1 {
		return errors.Newf("convert.confidence_threshold must be in [0,1], got %f", c.Convert.ConfidenceThreshold)
	}

	return nil
}
