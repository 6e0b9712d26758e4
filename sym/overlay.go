package sym

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/sigil/errors"
	"github.com/teranos/sigil/logger"
)

// overlayFile is the on-disk shape of a lexicon overlay. Both YAML and
// TOML overlays share it:
//
//	[[entries]]
//	symbol = "⚑"
//	patterns = ["flagged", "marked"]
//	category = "special"
type overlayFile struct {
	Entries []Entry `yaml:"entries" toml:"entries"`
}

// LoadOverlay reads additional mapping entries from a lexicon overlay
// file. The format is chosen by extension: .toml, or .yaml/.yml.
// The entries are returned unvalidated; New applies the table invariants
// when the overlay is combined with a base table.
func LoadOverlay(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("lexicon overlay %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read lexicon overlay %s", path)
	}

	var overlay overlayFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &overlay); err != nil {
			return nil, errors.Wrapf(err, "failed to parse TOML overlay %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return nil, errors.Wrapf(err, "failed to parse YAML overlay %s", path)
		}
	default:
		return nil, errors.NewInvalidRequestError("overlay %s: unsupported extension %q (want .toml, .yaml, or .yml)", path, filepath.Ext(path))
	}

	return overlay.Entries, nil
}

// NewWithOverlays builds a table from the builtin entries plus the
// entries of each overlay file, in order. Overlay entries obey the same
// invariants as builtin ones: a pattern already owned by a builtin entry
// is a construction error, not a silent shadow.
func NewWithOverlays(paths ...string) (*Table, error) {
	entries := make([]Entry, len(Builtin))
	copy(entries, Builtin)

	for _, path := range paths {
		overlay, err := LoadOverlay(path)
		if err != nil {
			return nil, err
		}
		logger.Debugw("Loaded lexicon overlay",
			logger.FieldFile, path,
			logger.FieldCount, len(overlay))
		entries = append(entries, overlay...)
	}

	return New(entries)
}
