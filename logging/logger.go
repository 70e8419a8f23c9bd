package logging

import "sync"

// Logger is responsible for displaying the output of the analyzer.  Its
// methods can be called from multiple goroutines.
type Logger struct {
	errorCount   int // Total encountered errors
	warningCount int
	LogLevel     int

	// warnings is a list of all warnings to be displayed at the end of analysis
	warnings []LogMessage

	// m is the mutex used to synchonize the printing of messages
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and closing notification (success/fail)
	LogLevelWarning        // errors, warnings, and closing message
	LogLevelVerbose        // errors, warnings, version, phase progress, closing message (DEFAULT)
)

// NewLogger creates a new logger at the given log level.
func NewLogger(loglevel int) *Logger {
	return &Logger{
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// handleMsg prompts the logger to process a message.  Errors are displayed
// immediately; warnings are held until the closing summary.
func (l *Logger) handleMsg(lm LogMessage) {
	l.m.Lock()
	defer l.m.Unlock()

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			displayEndPhase(false)
			lm.display()
		}
	} else {
		l.warningCount++
		l.warnings = append(l.warnings, lm)
	}
}

// ErrorCount returns the number of errors handled so far.
func (l *Logger) ErrorCount() int {
	l.m.Lock()
	defer l.m.Unlock()

	return l.errorCount
}

// WarningCount returns the number of warnings handled so far.
func (l *Logger) WarningCount() int {
	l.m.Lock()
	defer l.m.Unlock()

	return l.warningCount
}

// flushWarnings displays all held warnings if the log level permits.
func (l *Logger) flushWarnings() {
	l.m.Lock()
	defer l.m.Unlock()

	if l.LogLevel >= LogLevelWarning {
		for _, w := range l.warnings {
			w.display()
		}
	}

	l.warnings = nil
}
