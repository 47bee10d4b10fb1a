// Package errors is the translator's diagnostics sink. Warnings are
// deduplicated by message text and survive translation; errors are fatal for
// the current file.
package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"fable/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
)

// CompilerError represents a structured diagnostic with a stable code
type CompilerError struct {
	Level    ErrorLevel
	Code     string // Diagnostic code like T1002
	Message  string // Primary message
	Position ast.Position
}

// Error makes CompilerError usable as a Go error value.
func (e *CompilerError) Error() string {
	if e.Position.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Position.File, e.Position.Line, e.Position.Column, e.Message)
	}
	return e.Message
}

// Reporter collects and formats diagnostics for one source file. Warnings
// are deduplicated by message text for the lifetime of the reporter.
type Reporter struct {
	filename string
	out      io.Writer
	seen     map[string]bool
	warnings []CompilerError
}

// NewReporter creates a reporter for a file. A nil writer collects warnings
// without printing them.
func NewReporter(filename string, out io.Writer) *Reporter {
	return &Reporter{
		filename: filename,
		out:      out,
		seen:     make(map[string]bool),
	}
}

// ReportWarningOnce records a warning unless the same message was already
// reported for this file.
func (r *Reporter) ReportWarningOnce(code, message string, pos ast.Position) {
	if r.seen[message] {
		return
	}
	r.seen[message] = true
	warn := CompilerError{Level: Warning, Code: code, Message: message, Position: pos}
	r.warnings = append(r.warnings, warn)
	if r.out != nil {
		fmt.Fprint(r.out, r.FormatError(warn))
	}
}

// Warnings returns every warning reported so far, in order.
func (r *Reporter) Warnings() []CompilerError {
	return r.warnings
}

// NewError builds the fatal diagnostic for an untranslatable source shape.
// The caller aborts the file; there is no partial-output mode.
func (r *Reporter) NewError(code, message string, pos ast.Position) *CompilerError {
	if pos.File == "" {
		pos.File = r.filename
	}
	return &CompilerError{Level: Error, Code: code, Message: message, Position: pos}
}

// format renders a diagnostic with severity coloring
func (er CompilerError) format(filename string) string {
	var result strings.Builder

	levelColor := getLevelColor(er.Level)
	dim := color.New(color.Faint).SprintFunc()

	if er.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(er.Level)), er.Code, er.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(er.Level)), er.Message))
	}

	file := er.Position.File
	if file == "" {
		file = filename
	}
	if file != "" {
		result.WriteString(fmt.Sprintf("  %s %s:%d:%d\n",
			dim("-->"), file, er.Position.Line, er.Position.Column))
	}
	return result.String()
}

// FormatError formats a diagnostic using the reporter's file name as the
// fallback location.
func (r *Reporter) FormatError(err CompilerError) string {
	return err.format(r.filename)
}

// getLevelColor returns the appropriate color function for a severity
func getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}
