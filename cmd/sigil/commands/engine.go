package commands

import (
	"io"
	"os"

	"github.com/teranos/sigil/config"
	"github.com/teranos/sigil/convert"
	"github.com/teranos/sigil/errors"
	"github.com/teranos/sigil/sym"
)

// loadEngine builds a conversion engine from the configured lexicon.
// Without overlay paths this is the builtin table.
func loadEngine() (*convert.Engine, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config")
	}

	if len(cfg.Lexicon.Paths) == 0 {
		return convert.Default(), cfg, nil
	}

	table, err := sym.NewWithOverlays(cfg.Lexicon.Paths...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load lexicon overlays")
	}
	return convert.New(table), cfg, nil
}

// readInput reads the named file, or stdin when arg is "-".
func readInput(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", arg)
	}
	return string(data), nil
}
