package logging

import "fmt"

// LogMessage is a message the logger knows how to display.
type LogMessage interface {
	isError() bool
	display()
}

// LogContext identifies the source being analyzed.  Source may be empty,
// in which case no code selection is printed beneath messages.
type LogContext struct {
	FilePath string
	Source   string
}

// CompileMessage is a semantic error or warning produced by analysis.  It is
// both the record handed to downstream tooling and the thing the logger
// displays.
type CompileMessage struct {
	// Kind is the category of the problem.
	Kind ErrorKind

	// Position is where the problem occurs.  It may be nil for problems that
	// are not tied to any source location.
	Position *TextPosition

	// Message is the human-readable explanation.
	Message string

	// Suggestion is an optional suggested fix; empty when there is none.
	Suggestion string

	// IsError is false for warnings.
	IsError bool

	// Context is attached by the logger when the message is displayed.
	Context *LogContext
}

// Line returns the source line of the message (0 when unknown).
func (cm *CompileMessage) Line() int {
	if cm.Position == nil {
		return 0
	}

	return cm.Position.StartLn
}

// Column returns the source column of the message (0 when unknown).
func (cm *CompileMessage) Column() int {
	if cm.Position == nil {
		return 0
	}

	return cm.Position.StartCol
}

// Suggest attaches a suggested fix to the message and returns it.
func (cm *CompileMessage) Suggest(format string, args ...interface{}) *CompileMessage {
	cm.Suggestion = fmt.Sprintf(format, args...)
	return cm
}

func (cm *CompileMessage) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", cm.Line(), cm.Column(), cm.Kind, cm.Message)
}

func (cm *CompileMessage) isError() bool {
	return cm.IsError
}

// ConfigError is an error in the analyzer's configuration.
type ConfigError struct {
	Kind    string
	Message string
}

func (ce *ConfigError) isError() bool {
	return true
}
