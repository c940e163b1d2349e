package sshcfg

import (
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrParse     = NewError("parse error")
	ErrReadInput = NewError("failed to read input")
	ErrCoerce    = NewError("numeric field coercion failed")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	err   error
	msg   string
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is a sentinel created from the same message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// ParseError reports that input text failed to match the grammar. It carries
// the position of the farthest point the matcher reached and the terminals
// it expected there.
type ParseError struct {
	// Source is the full input text, used to render a snippet.
	Source string
	// Expected lists the terminal names that could have matched at the
	// failure position.
	Expected []string
	// Offset is the byte offset of the failure within Source.
	Offset int
	// Line and Column are the 1-based position of the failure.
	Line   int
	Column int
}

// newParseError builds a ParseError from matcher failure state, deriving
// line and column from the byte offset.
func newParseError(source string, offset int, expected []string) *ParseError {
	line, col := 1, 1

	for _, r := range source[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return &ParseError{
		Source:   source,
		Expected: expected,
		Offset:   offset,
		Line:     line,
		Column:   col,
	}
}

// Error implements the error interface, formatting the failure position, a
// source snippet with a caret marker, and the expected tokens.
func (e *ParseError) Error() string {
	var buf strings.Builder

	buf.WriteString("parse error at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Column))
	buf.WriteString(":\n")

	lines := strings.Split(e.Source, "\n")
	if e.Line > 0 && e.Line <= len(lines) {
		line := lines[e.Line-1]

		buf.WriteString("  ")
		buf.WriteString(strconv.Itoa(e.Line))
		buf.WriteString(" | ")
		buf.WriteString(line)
		buf.WriteByte('\n')

		// Marker under the failing column. +5 accounts for the two leading
		// spaces and " | " separator.
		padding := len(strconv.Itoa(e.Line)) + 5
		if e.Column > 0 {
			padding += e.Column - 1
		}

		buf.WriteString(strings.Repeat(" ", padding))
		buf.WriteString("^\n")
	}

	expected := make([]string, 0, len(e.Expected))
	for _, name := range e.Expected {
		expected = append(expected, strconv.Quote(name))
	}

	slices.Sort(expected)

	buf.WriteString("\texpected: ")
	buf.WriteString(strings.Join(expected, ", "))

	return buf.String()
}

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("offset", e.Offset),
		slog.Int("line", e.Line),
		slog.Int("column", e.Column),
		slog.String("expected", strings.Join(e.Expected, ", ")),
	)
}
