package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - User-facing output only: results, errors with hints, final status
//	1 (-v)      - + Progress, startup info, watch events, operation summaries
//	2 (-vv)     - + Match details, timing, config loaded, table stats
//	3 (-vvv)    - + Per-pattern matcher passes, lexicon loads, internal flow
//	4 (-vvvv)   - + Full document and data structure dumps

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults    OutputCategory = iota // Conversion results, command output
	OutputErrors                           // Errors with hints and resolution steps
	OutputUserStatus                       // Final success/failure status

	// Level 1 (-v) - Informational
	OutputBatchProgress // Progress indicators (e.g., "Converted 50/100 files")
	OutputStartup       // Startup banners, config summary
	OutputWatchEvents   // File watcher change notifications
	OutputOperationInfo // High-level operation summaries

	// Level 2 (-vv) - Detailed
	OutputMatchDetails // Pattern match and replacement details
	OutputTiming       // Operation timing (e.g., "conversion took 42ms")
	OutputConfig       // Config values loaded/applied
	OutputTableStats   // Mapping table statistics (entry counts, ambiguity)

	// Level 3 (-vvv) - Debug
	OutputMatcherPasses // Individual matcher passes over the working text
	OutputLexiconLoads  // Lexicon overlay file parsing details
	OutputInternalOp    // Internal operation flow (function entry/exit)

	// Level 4 (-vvvv) - Full dump
	OutputDocumentBody // Full composed document bodies
	OutputDataDump     // Full data structure contents
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	// Level 0 - Always shown
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputUserStatus: VerbosityUser,

	// Level 1 - Informational
	OutputBatchProgress: VerbosityInfo,
	OutputStartup:       VerbosityInfo,
	OutputWatchEvents:   VerbosityInfo,
	OutputOperationInfo: VerbosityInfo,

	// Level 2 - Detailed
	OutputMatchDetails: VerbosityDebug,
	OutputTiming:       VerbosityDebug,
	OutputConfig:       VerbosityDebug,
	OutputTableStats:   VerbosityDebug,

	// Level 3 - Debug
	OutputMatcherPasses: VerbosityTrace,
	OutputLexiconLoads:  VerbosityTrace,
	OutputInternalOp:    VerbosityTrace,

	// Level 4 - Full dump
	OutputDocumentBody: VerbosityAll,
	OutputDataDump:     VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:       "results",
	OutputErrors:        "errors",
	OutputUserStatus:    "status",
	OutputBatchProgress: "batch-progress",
	OutputStartup:       "startup",
	OutputWatchEvents:   "watch-events",
	OutputOperationInfo: "operation-info",
	OutputMatchDetails:  "match-details",
	OutputTiming:        "timing",
	OutputConfig:        "config",
	OutputTableStats:    "table-stats",
	OutputMatcherPasses: "matcher-passes",
	OutputLexiconLoads:  "lexicon-loads",
	OutputInternalOp:    "internal",
	OutputDocumentBody:  "document-body",
	OutputDataDump:      "data-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// EnabledCategories returns all output categories enabled at the given verbosity
func EnabledCategories(verbosity int) []OutputCategory {
	var enabled []OutputCategory
	for cat, minLevel := range categoryLevels {
		if verbosity >= minLevel {
			enabled = append(enabled, cat)
		}
	}
	return enabled
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "results and errors only"
	case VerbosityInfo:
		return "results, errors, progress, and watch events"
	case VerbosityDebug:
		return "above + match details, timing, config"
	case VerbosityTrace:
		return "above + matcher passes, lexicon loads"
	case VerbosityAll:
		return "full output including document dumps"
	default:
		if verbosity > VerbosityAll {
			return "maximum verbosity"
		}
		return "unknown verbosity level"
	}
}
