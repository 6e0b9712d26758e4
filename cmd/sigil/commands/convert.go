package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/sigil/config"
	"github.com/teranos/sigil/display"
	"github.com/teranos/sigil/doc"
	"github.com/teranos/sigil/errors"
	"github.com/teranos/sigil/logger"
	"github.com/teranos/sigil/tier"
)

var (
	convertTier    string
	convertDomain  string
	convertWatch   bool
	convertWorkers int
)

// ConvertCmd represents the convert command
var ConvertCmd = &cobra.Command{
	Use:   "convert [FILE|DIR|-]",
	Short: "⇀ Convert prose to symbolic notation",
	Long: `⇀ convert — Convert English prose to symbolic notation

Reads prose from a file, a directory, or stdin ("-") and emits a
composed symbolic document. The tier is classified from the prose
unless forced with --tier.

Directory arguments convert every .txt and .md file inside through a
worker pool, writing a sibling .sigil file next to each source.

Examples:
  sigil convert spec.txt               # Convert one file to stdout
  sigil convert - < spec.txt           # Convert stdin
  sigil convert docs/                  # Batch convert a directory
  sigil convert docs/ --watch          # Re-convert files as they change
  sigil convert spec.txt --tier full   # Force the full document tier`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	ConvertCmd.Flags().StringVarP(&convertTier, "tier", "t", "", "Force conversion tier (minimal/standard/full)")
	ConvertCmd.Flags().StringVarP(&convertDomain, "domain", "d", "", "Domain tag for document headers (inferred when empty)")
	ConvertCmd.Flags().BoolVarP(&convertWatch, "watch", "w", false, "Watch for changes and re-convert")
	ConvertCmd.Flags().IntVar(&convertWorkers, "workers", 0, "Batch conversion workers (0 = from config)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}

	opts, err := composeOptions(cfg)
	if err != nil {
		return err
	}

	composer := doc.NewComposer(engine)
	target := args[0]

	if target != "-" {
		if info, statErr := os.Stat(target); statErr == nil && info.IsDir() {
			return runConvertDir(cmd, composer, cfg, target, opts)
		}
	}

	if convertWatch {
		return errors.New("--watch requires a directory argument")
	}

	prose, err := readInput(target)
	if err != nil {
		return err
	}

	result := composer.Compose(prose, opts)

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(result)
	}

	fmt.Println(result.Output)
	if len(result.Unmapped) > 0 {
		pterm.Printf("%s %s\n", pterm.Yellow("Unmapped:"), strings.Join(result.Unmapped, ", "))
	}
	pterm.Printf("%s %s  %s %.2f  %s %.2fx\n",
		pterm.Gray("tier:"), result.Tier,
		pterm.Gray("confidence:"), result.Confidence,
		pterm.Gray("compression:"), result.Stats.Ratio)
	return nil
}

// composeOptions folds flag and config defaults into document options
func composeOptions(cfg *config.Config) (doc.Options, error) {
	opts := doc.Options{Domain: convertDomain}
	if opts.Domain == "" {
		opts.Domain = cfg.Convert.Domain
	}

	if convertTier != "" {
		t, err := tier.Parse(convertTier)
		if err != nil {
			return opts, err
		}
		opts.Tier = &t
		return opts, nil
	}

	defaultTier, err := cfg.DefaultTier()
	if err != nil {
		return opts, err
	}
	opts.Tier = defaultTier
	return opts, nil
}

func runConvertDir(cmd *cobra.Command, composer *doc.Composer, cfg *config.Config, dir string, opts doc.Options) error {
	workers := convertWorkers
	if workers <= 0 {
		workers = cfg.GetWorkers()
	}
	runner := doc.NewRunner(composer, doc.RunnerConfig{Workers: workers}, nil)

	convertAll := func(ctx context.Context) error {
		paths, err := proseFiles(dir)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			pterm.Info.Printf("No prose files found in %s\n", dir)
			return nil
		}

		report := runner.Run(ctx, paths, opts)
		if writeErr := writeBatchOutputs(report); writeErr != nil {
			return writeErr
		}

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(report)
		}
		printBatchReport(report)
		return nil
	}

	if err := convertAll(cmd.Context()); err != nil {
		return err
	}

	if !convertWatch {
		return nil
	}

	watcher, err := doc.NewWatcher(logger.ComponentLogger("doc.watcher"), dir)
	if err != nil {
		return errors.Wrap(err, "failed to start watcher")
	}
	defer watcher.Stop()

	watcher.OnChange(func(path string) {
		if !isProseFile(path) {
			return
		}
		result := composer.Compose(mustRead(path), opts)
		if err := os.WriteFile(outputPath(path), []byte(result.Output), config.DefaultFilePermissions); err != nil {
			logger.Errorw("Failed to write converted file", logger.FieldFile, path, logger.FieldError, err)
			return
		}
		logger.WatchInfow("Re-converted changed file",
			logger.FieldFile, path,
			logger.FieldTier, result.Tier.String())
	})
	watcher.Start()

	pterm.Info.Printf("Watching %s for changes (Ctrl+C to stop)\n", dir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	return nil
}

// proseFiles collects .txt and .md files directly under dir
func proseFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if isProseFile(path) {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func isProseFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".txt" || ext == ".md"
}

// outputPath swaps the prose extension for .sigil
func outputPath(prosePath string) string {
	return strings.TrimSuffix(prosePath, filepath.Ext(prosePath)) + ".sigil"
}

func mustRead(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

func writeBatchOutputs(report doc.BatchReport) error {
	for _, res := range report.Results {
		if res.Err != nil {
			continue
		}
		if err := os.WriteFile(outputPath(res.Path), []byte(res.Result.Output), config.DefaultFilePermissions); err != nil {
			return errors.Wrapf(err, "failed to write %s", outputPath(res.Path))
		}
	}
	return nil
}

func printBatchReport(report doc.BatchReport) {
	for _, res := range report.Results {
		if res.Err != nil {
			pterm.Printf("  %s %s: %s\n", pterm.Red("✗"), res.Path, res.Error)
			continue
		}
		pterm.Printf("  %s %s %s %s\n",
			pterm.LightGreen("✓"),
			res.Path,
			pterm.Gray("→"),
			outputPath(res.Path))
	}
	pterm.Success.Printf("Converted %d files (%d failed) in %dms\n",
		report.Converted, report.Failed, report.Duration.Milliseconds())
}
