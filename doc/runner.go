package doc

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/sigil/errors"
	"github.com/teranos/sigil/logger"
)

// RunnerConfig configures batch conversion.
type RunnerConfig struct {
	// Workers is the number of concurrent conversion workers.
	// Values <= 0 default to 1.
	Workers int
}

// FileResult is the outcome of converting one prose file. Err is set
// when the file could not be read; conversion itself never fails.
type FileResult struct {
	Path   string `json:"path"`
	Result Result `json:"result"`
	Err    error  `json:"-"`
	Error  string `json:"error,omitempty"`
}

// BatchReport summarizes one batch run.
type BatchReport struct {
	RunID     string        `json:"run_id"`
	Converted int           `json:"converted"`
	Failed    int           `json:"failed"`
	Results   []FileResult  `json:"results"`
	Duration  time.Duration `json:"duration_ns"`
}

// Runner converts many prose files concurrently through a bounded
// worker pool. Per-file failures are collected in the report; they
// never abort the run.
type Runner struct {
	composer *Composer
	workers  int
	log      *zap.SugaredLogger
}

// NewRunner returns a runner over the given composer. A nil log falls
// back to the global logger.
func NewRunner(composer *Composer, cfg RunnerConfig, log *zap.SugaredLogger) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if log == nil {
		log = logger.ComponentLogger("doc.runner")
	}
	return &Runner{composer: composer, workers: cfg.Workers, log: log}
}

// Run converts every path with the shared options and returns the
// report. Cancelling the context stops dispatching new files; files
// already in flight finish.
func (r *Runner) Run(ctx context.Context, paths []string, opts Options) BatchReport {
	runID := uuid.New().String()
	start := time.Now()

	runLog := r.log.With(logger.FieldRunID, runID)
	runLog.Infow("Batch conversion started",
		logger.FieldCount, len(paths),
		"workers", r.workers)

	jobs := make(chan string)
	results := make(chan FileResult)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- r.convertFile(path, opts, runLog)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	report := BatchReport{RunID: runID}
	for res := range results {
		if res.Err != nil {
			report.Failed++
		} else {
			report.Converted++
		}
		report.Results = append(report.Results, res)
	}
	report.Duration = time.Since(start)

	runLog.Infow("Batch conversion finished",
		"converted", report.Converted,
		"failed", report.Failed,
		logger.FieldDurationMS, report.Duration.Milliseconds())

	return report
}

func (r *Runner) convertFile(path string, opts Options, runLog *zap.SugaredLogger) FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		wrapped := errors.Wrapf(err, "failed to read prose file %s", path)
		runLog.Warnw("Skipping unreadable file",
			logger.FieldFile, path,
			logger.FieldError, err)
		return FileResult{Path: path, Err: wrapped, Error: wrapped.Error()}
	}

	result := r.composer.Compose(string(data), opts)
	runLog.Debugw("Converted file",
		logger.FieldFile, path,
		logger.FieldTier, result.Tier.String(),
		"confidence", result.Confidence)
	return FileResult{Path: path, Result: result}
}
