package logging

import (
	"fmt"
	"sort"
)

// ErrorList accumulates the messages of one analysis run in the order they
// are detected.  It is not synchronized: each run owns its own list.
type ErrorList struct {
	errors   []*CompileMessage
	warnings []*CompileMessage
}

// Add records an error of the given kind and returns it so a suggestion can
// be attached.
func (el *ErrorList) Add(kind ErrorKind, pos *TextPosition, format string, args ...interface{}) *CompileMessage {
	cm := &CompileMessage{
		Kind:     kind,
		Position: pos,
		Message:  fmt.Sprintf(format, args...),
		IsError:  true,
	}

	el.errors = append(el.errors, cm)
	return cm
}

// Warn records a warning of the given kind.
func (el *ErrorList) Warn(kind ErrorKind, pos *TextPosition, format string, args ...interface{}) *CompileMessage {
	cm := &CompileMessage{
		Kind:     kind,
		Position: pos,
		Message:  fmt.Sprintf(format, args...),
	}

	el.warnings = append(el.warnings, cm)
	return cm
}

// Merge appends all the messages of another list to this one.
func (el *ErrorList) Merge(other *ErrorList) {
	el.errors = append(el.errors, other.errors...)
	el.warnings = append(el.warnings, other.warnings...)
}

// Errors returns the recorded errors in detection order.
func (el *ErrorList) Errors() []*CompileMessage {
	return el.errors
}

// Warnings returns the recorded warnings in detection order.
func (el *ErrorList) Warnings() []*CompileMessage {
	return el.warnings
}

// Len returns the number of recorded errors.
func (el *ErrorList) Len() int {
	return len(el.errors)
}

// SortByPosition orders errors and warnings by source position.  The sort is
// stable so messages at the same position keep their detection order.
func (el *ErrorList) SortByPosition() {
	sortMessages(el.errors)
	sortMessages(el.warnings)
}

func sortMessages(msgs []*CompileMessage) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Position.Before(msgs[j].Position)
	})
}
