package logging

// logger is a global reference to a shared Logger (created/initialized with the
// analyzer, but separated for general usage)
var logger = NewLogger(LogLevelVerbose)

// ParseLogLevel converts a log level name to its log level.  Unknown names
// (including the empty string) map to verbose.
func ParseLogLevel(loglevelname string) int {
	switch loglevelname {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warning":
		return LogLevelWarning
	default:
		return LogLevelVerbose
	}
}

// LogLevelNames lists the accepted log level names in ascending order.
var LogLevelNames = []string{"silent", "error", "warning", "verbose"}

// Initialize initializes the global logger with the provided log level
func Initialize(loglevelname string) {
	logger = NewLogger(ParseLogLevel(loglevelname))
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// LogCompileMessage logs an error or warning produced by analysis.
func LogCompileMessage(lctx *LogContext, cm *CompileMessage) {
	cm.Context = lctx
	logger.handleMsg(cm)
}

// LogAnalysisResult logs every error and warning of one analysis run.
func LogAnalysisResult(lctx *LogContext, errs, warnings []*CompileMessage) {
	for _, e := range errs {
		LogCompileMessage(lctx, e)
	}

	for _, w := range warnings {
		LogCompileMessage(lctx, w)
	}
}

// LogConfigError logs an error related to project or analyzer configuration
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigError{Kind: kind, Message: message})
}

// LogConfigWarning logs a configuration problem that does not prevent
// analysis.
func LogConfigWarning(kind, message string) {
	if logger.LogLevel >= LogLevelWarning {
		PrintWarningMessage(kind+" Warning", message)
	}
}

// LogInfo prints an informational message if the log level is verbose.
func LogInfo(tag, msg string) {
	if logger.LogLevel == LogLevelVerbose {
		PrintInfoMessage(tag, msg)
	}
}

// LogHeader displays the analyzer header (verbose only).
func LogHeader(target string) {
	if logger.LogLevel == LogLevelVerbose {
		displayHeader(target)
	}
}

// LogBeginPhase begins a named phase of analysis (verbose only).
func LogBeginPhase(phase string) {
	if logger.LogLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// LogEndPhase ends the current phase of analysis.
func LogEndPhase() {
	if logger.LogLevel == LogLevelVerbose {
		displayEndPhase(logger.ErrorCount() == 0)
	}
}

// LogFinished flushes pending warnings and displays the closing summary.
func LogFinished() {
	logger.flushWarnings()

	if logger.LogLevel > LogLevelSilent {
		errorCount := logger.ErrorCount()
		displayFinished(errorCount == 0, errorCount, logger.WarningCount())
	}
}
