package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/teranos/sigil/tier"
)

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if len(cfg.Lexicon.Paths) != 0 {
		t.Errorf("expected no default overlay paths, got %v", cfg.Lexicon.Paths)
	}

	if cfg.Convert.Workers != 4 {
		t.Errorf("expected default workers 4, got %d", cfg.Convert.Workers)
	}

	if cfg.Convert.DefaultTier != "" {
		t.Errorf("expected auto-classify default tier, got %q", cfg.Convert.DefaultTier)
	}

	if cfg.Convert.ConfidenceThreshold != 0.5 {
		t.Errorf("expected default confidence threshold 0.5, got %f", cfg.Convert.ConfidenceThreshold)
	}

	if cfg.Log.Theme != "everforest" {
		t.Errorf("expected default log theme 'everforest', got %q", cfg.Log.Theme)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "zero values are valid (defaults apply)",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "negative workers is invalid",
			config: Config{
				Convert: ConvertConfig{Workers: -1},
			},
			wantErr: true,
		},
		{
			name: "known default tier is valid",
			config: Config{
				Convert: ConvertConfig{DefaultTier: "full", ConfidenceThreshold: 0.5},
			},
			wantErr: false,
		},
		{
			name: "unknown default tier is invalid",
			config: Config{
				Convert: ConvertConfig{DefaultTier: "platinum"},
			},
			wantErr: true,
		},
		{
			name: "confidence threshold above 1 is invalid",
			config: Config{
				Convert: ConvertConfig{ConfidenceThreshold: 1.5},
			},
			wantErr: true,
		},
		{
			name: "negative confidence threshold is invalid",
			config: Config{
				Convert: ConvertConfig{ConfidenceThreshold: -0.1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultTier(t *testing.T) {
	cfg := Config{}
	dt, err := cfg.DefaultTier()
	if err != nil {
		t.Fatalf("DefaultTier() failed: %v", err)
	}
	if dt != nil {
		t.Errorf("expected nil tier for auto-classify, got %v", *dt)
	}

	cfg.Convert.DefaultTier = "standard"
	dt, err = cfg.DefaultTier()
	if err != nil {
		t.Fatalf("DefaultTier() failed: %v", err)
	}
	if dt == nil || *dt != tier.Standard {
		t.Errorf("expected standard tier, got %v", dt)
	}

	cfg.Convert.DefaultTier = "bogus"
	if _, err := cfg.DefaultTier(); err == nil {
		t.Error("expected error for unknown tier")
	}
}

func TestGetWorkers(t *testing.T) {
	cfg := Config{}
	if got := cfg.GetWorkers(); got != 4 {
		t.Errorf("expected worker floor 4, got %d", got)
	}

	cfg.Convert.Workers = 8
	if got := cfg.GetWorkers(); got != 8 {
		t.Errorf("expected configured workers 8, got %d", got)
	}
}

func TestGetLogTheme(t *testing.T) {
	cfg := Config{}
	if got := cfg.GetLogTheme(); got != "everforest" {
		t.Errorf("expected default theme 'everforest', got %q", got)
	}

	cfg.Log.Theme = "gruvbox"
	if got := cfg.GetLogTheme(); got != "gruvbox" {
		t.Errorf("expected configured theme 'gruvbox', got %q", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sigil.toml")

	content := `
[convert]
workers = 2
default_tier = "minimal"

[lexicon]
paths = ["overlay.toml"]

[log]
theme = "gruvbox"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Convert.Workers != 2 {
		t.Errorf("expected workers 2, got %d", cfg.Convert.Workers)
	}
	if cfg.Convert.DefaultTier != "minimal" {
		t.Errorf("expected default tier 'minimal', got %q", cfg.Convert.DefaultTier)
	}
	if len(cfg.Lexicon.Paths) != 1 || cfg.Lexicon.Paths[0] != "overlay.toml" {
		t.Errorf("expected one overlay path, got %v", cfg.Lexicon.Paths)
	}
	if cfg.Log.Theme != "gruvbox" {
		t.Errorf("expected theme 'gruvbox', got %q", cfg.Log.Theme)
	}

	// Defaults still fill unset keys.
	if cfg.Convert.ConfidenceThreshold != 0.5 {
		t.Errorf("expected default confidence threshold, got %f", cfg.Convert.ConfidenceThreshold)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/sigil.toml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadWithViper_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("convert.workers", 16)
	v.Set("log.theme", "gruvbox")

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Convert.Workers != 16 {
		t.Errorf("expected workers 16, got %d", cfg.Convert.Workers)
	}
	if cfg.Log.Theme != "gruvbox" {
		t.Errorf("expected theme 'gruvbox', got %q", cfg.Log.Theme)
	}
}
