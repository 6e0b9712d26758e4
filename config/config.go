// Package config loads and persists the sigil configuration: lexicon
// overlay paths, conversion defaults, and output preferences. Files are
// TOML (sigil.toml), merged from system, user, and project scopes with
// SIGIL_ environment variables taking final precedence.
package config

// Config represents the core sigil configuration.
type Config struct {
	Lexicon LexiconConfig `mapstructure:"lexicon"`
	Convert ConvertConfig `mapstructure:"convert"`
	Log     LogConfig     `mapstructure:"log"`
}

// LexiconConfig configures additional symbol mappings layered over the
// builtin table at startup. Overlays participate in one-time table
// construction; they are not runtime table edits.
type LexiconConfig struct {
	Paths []string `mapstructure:"paths"` // overlay files (.toml, .yaml, .yml), applied in order
}

// ConvertConfig configures conversion defaults.
type ConvertConfig struct {
	Workers             int     `mapstructure:"workers"`              // batch conversion workers (default: 4)
	DefaultTier         string  `mapstructure:"default_tier"`         // "" = auto-classify, else minimal/standard/full
	Domain              string  `mapstructure:"domain"`               // "" = infer per document
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"` // warn below this confidence (default: 0.5)
}

// LogConfig configures console log rendering.
type LogConfig struct {
	Theme string `mapstructure:"theme"` // color theme: gruvbox, everforest
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // standard file permissions (rw-r--r--)
)
