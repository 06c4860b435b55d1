package lang

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Predefined errors (sentinel values).
//
// Syntax errors are raised by the scanner and parser before any value is
// built. Evaluation errors are raised by the builder or the expression
// evaluator; they carry structured attributes identifying the offending
// token, operator, or operand kinds.
var (
	ErrSyntax                 = NewError("syntax error")
	ErrReadInput              = NewError("failed to read input")
	ErrUnknownConstant        = NewError("unknown constant")
	ErrReservedWord           = NewError("reserved word")
	ErrInsufficientOperands   = NewError("insufficient operands")
	ErrMalformedExpression    = NewError("malformed expression")
	ErrDivisionByZero         = NewError("division by zero")
	ErrNegativeOperand        = NewError("square root of negative operand")
	ErrUnsupportedLenTarget   = NewError("unsupported len target")
	ErrUnsupportedOperandType = NewError("unsupported operand type")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
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

	msg := strings.Join(part, ": ")

	if detail := formatAttrs(e.attrs); detail != "" {
		msg += " (" + detail + ")"
	}

	return msg
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether e matches target, comparing sentinel messages so that
// derived errors created with With or Wrap still match their sentinel.
func (e *Error) Is(target error) bool {
	te := &Error{}
	if !errors.As(target, &te) {
		return false
	}

	return e.msg == te.msg
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

// WithPosition adds source position attributes to the error.
func (e *Error) WithPosition(pos Position) *Error {
	return e.With(
		slog.Int("line", pos.Line),
		slog.Int("column", pos.Column),
	)
}

// formatAttrs renders attributes as "k=v k=v" for human-readable messages.
// The same attributes remain available in structured form via LogValue.
func formatAttrs(attrs []slog.Attr) string {
	if len(attrs) == 0 {
		return ""
	}

	part := make([]string, 0, len(attrs))
	for _, a := range attrs {
		part = append(part, a.Key+"="+a.Value.String())
	}

	return strings.Join(part, " ")
}

// unknownConstant builds an ErrUnknownConstant for name, attaching a
// "did you mean" suggestion when a declared constant fuzzy-matches it.
func unknownConstant(name string, declared []string) *Error {
	err := ErrUnknownConstant.With(slog.String("name", name))

	if matches := fuzzy.Find(name, declared); len(matches) > 0 {
		err = err.With(slog.String("suggestion", matches[0].Str))
	}

	return err
}
