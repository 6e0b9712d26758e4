package logger

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

func TestMinimalEncoderBatchStats(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "doc.runner",
		Message:    "Batch completed",
	}

	fields := []zapcore.Field{
		zap.String(FieldRunID, "run_123"),
		zap.Int("converted", 42),
		zap.Int("failed", 1),
		zap.Int64(FieldDurationMS, 87),
	}

	buf, err := encoder.EncodeEntry(entry, fields)
	if err != nil {
		t.Fatalf("Failed to encode entry: %v", err)
	}

	cleanOutput := stripANSI(buf.String())

	for _, required := range []string{
		"run_123",
		"(42 converted, 1 failed)",
		"87ms",
		"Batch completed",
		"d.runner",
	} {
		if !strings.Contains(cleanOutput, required) {
			t.Errorf("Expected %q in output, got: %s", required, cleanOutput)
		}
	}
}

func TestMinimalEncoderLevelMarkers(t *testing.T) {
	encoder := newMinimalEncoder()

	infoBuf, err := encoder.EncodeEntry(zapcore.Entry{
		Level:   zapcore.InfoLevel,
		Time:    time.Now(),
		Message: "all fine",
	}, nil)
	if err != nil {
		t.Fatalf("Failed to encode info entry: %v", err)
	}
	if strings.Contains(stripANSI(infoBuf.String()), "INFO") {
		t.Errorf("Info entries should not carry a level marker, got: %s", infoBuf.String())
	}

	warnBuf, err := encoder.EncodeEntry(zapcore.Entry{
		Level:   zapcore.WarnLevel,
		Time:    time.Now(),
		Message: "ambiguous symbol",
	}, nil)
	if err != nil {
		t.Fatalf("Failed to encode warn entry: %v", err)
	}
	if !strings.Contains(stripANSI(warnBuf.String()), "WARN") {
		t.Errorf("Warn entries should carry a WARN marker, got: %s", warnBuf.String())
	}
}

func TestMinimalEncoderBracketColorization(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "doc.runner",
		Message:    "[run:abc123] [compose] Document composed",
	}

	buf, err := encoder.EncodeEntry(entry, nil)
	if err != nil {
		t.Fatalf("Failed to encode bracketed entry: %v", err)
	}

	cleanOutput := stripANSI(buf.String())
	if !strings.Contains(cleanOutput, "[run:abc123]") {
		t.Errorf("Run ID bracket lost in colorization: %s", cleanOutput)
	}
	if !strings.Contains(cleanOutput, "[compose]") {
		t.Errorf("Stage bracket lost in colorization: %s", cleanOutput)
	}
}

func TestAbbreviateName(t *testing.T) {
	cases := map[string]string{
		"doc.runner":  "d.runner",
		"sym.table":   "s.table",
		"runner":      "runner",
		"mcp.server":  "m.server",
		"doc.watcher": "d.watcher",
	}
	for input, want := range cases {
		if got := abbreviateName(input); got != want {
			t.Errorf("abbreviateName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	original := currentTheme
	defer func() { currentTheme = original }()

	SetTheme("gruvbox")
	if currentTheme != "gruvbox" {
		t.Errorf("SetTheme(gruvbox) not applied, theme is %q", currentTheme)
	}

	SetTheme("solarized")
	if currentTheme != "gruvbox" {
		t.Errorf("Unknown theme should be ignored, theme is %q", currentTheme)
	}

	SetTheme("everforest")
	if currentTheme != "everforest" {
		t.Errorf("SetTheme(everforest) not applied, theme is %q", currentTheme)
	}
}

func TestColorizeSymbolsPreservesText(t *testing.T) {
	colored := colorizeSymbols("⇀ converted 3 files", everforest.greenBright)
	if !strings.Contains(stripANSI(colored), "⇀ converted 3 files") {
		t.Errorf("Glyph colorization mangled text: %q", colored)
	}
}
