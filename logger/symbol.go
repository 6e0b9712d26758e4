package logger

import "go.uber.org/zap"

// Symbol-aware logging helpers.
// These functions log with the glyph as a structured field, not in the message.
//
// Usage:
//
//	// Instead of:
//	logger.Infow("⇀ Conversion complete", "file", path)
//
//	// Use:
//	logger.ConvertInfow("Conversion complete", "file", path)
//
// This makes logs queryable by glyph and keeps messages clean.
//
// The glyphs are defined locally so the logger stays import-free of the
// mapping table packages it serves.
const (
	glyphConvert = "⇀" // prose to notation
	glyphExpand  = "↽" // notation to prose
	glyphDoc     = "𝔸" // composed documents
	glyphWatch   = "∿" // file watcher
	glyphLexicon = "Σ" // mapping table and overlays
)

// ConvertInfow logs an info message with the conversion glyph (⇀)
func ConvertInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, glyphConvert}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// ConvertDebugw logs a debug message with the conversion glyph (⇀)
func ConvertDebugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, glyphConvert}, keysAndValues...)
		Logger.Debugw(msg, fields...)
	}
}

// ConvertWarnw logs a warning message with the conversion glyph (⇀)
func ConvertWarnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, glyphConvert}, keysAndValues...)
		Logger.Warnw(msg, fields...)
	}
}

// ConvertErrorw logs an error message with the conversion glyph (⇀)
func ConvertErrorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, glyphConvert}, keysAndValues...)
		Logger.Errorw(msg, fields...)
	}
}

// ExpandInfow logs an info message with the expansion glyph (↽)
// Used for notation-to-prose operations
func ExpandInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, glyphExpand}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// ExpandDebugw logs a debug message with the expansion glyph (↽)
func ExpandDebugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, glyphExpand}, keysAndValues...)
		Logger.Debugw(msg, fields...)
	}
}

// DocInfow logs an info message with the document glyph (𝔸)
// Used for document composition and validation
func DocInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, glyphDoc}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// DocDebugw logs a debug message with the document glyph (𝔸)
func DocDebugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, glyphDoc}, keysAndValues...)
		Logger.Debugw(msg, fields...)
	}
}

// WatchInfow logs an info message with the watcher glyph (∿)
// Used for file watch events
func WatchInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, glyphWatch}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// LexiconInfow logs an info message with the lexicon glyph (Σ)
// Used for mapping table and overlay operations
func LexiconInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, glyphLexicon}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// LexiconDebugw logs a debug message with the lexicon glyph (Σ)
func LexiconDebugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, glyphLexicon}, keysAndValues...)
		Logger.Debugw(msg, fields...)
	}
}

// WithSymbol returns a logger with the given glyph as a field.
// For ad-hoc glyph usage not covered by the helpers above.
//
// Example:
//
//	symbolLogger := logger.WithSymbol("Ω")
//	symbolLogger.Infow("Meta block composed", "domain", domain)
func WithSymbol(symbol string) *zap.SugaredLogger {
	return Logger.With(FieldSymbol, symbol)
}

// SymbolInfow logs with any glyph - for dynamic glyph usage
func SymbolInfow(symbol, msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, symbol}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// ============================================================================
// Instance logger wrappers
// ============================================================================
// These functions wrap any logger with a glyph field, useful when you have
// an instance logger (e.g., r.logger, w.logger) rather than using the global
// Logger.
//
// Usage:
//
//	// At initialization:
//	type Watcher struct {
//	    watchLog *zap.SugaredLogger
//	}
//	w.watchLog = logger.AddWatchSymbol(baseLogger)

// AddConvertSymbol wraps a logger with the conversion glyph (⇀)
func AddConvertSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, glyphConvert)
}

// AddExpandSymbol wraps a logger with the expansion glyph (↽)
func AddExpandSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, glyphExpand)
}

// AddDocSymbol wraps a logger with the document glyph (𝔸)
func AddDocSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, glyphDoc)
}

// AddWatchSymbol wraps a logger with the watcher glyph (∿)
func AddWatchSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, glyphWatch)
}

// AddLexiconSymbol wraps a logger with the lexicon glyph (Σ)
func AddLexiconSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, glyphLexicon)
}
