package ot

import "fmt"

// Kind classifies the failure an OpError reports: TypeError, ParseError,
// LengthMismatch, or Internal.
type Kind string

const (
	// KindType marks a builder call with a wrong-kind argument.
	KindType Kind = "type_error"
	// KindParse marks a FromSequence element that cannot be classified.
	KindParse Kind = "parse_error"
	// KindLengthMismatch marks an Apply/Compose/Transform precondition
	// violation, or an Apply that overruns the input string.
	KindLengthMismatch Kind = "length_mismatch"
	// KindInternal marks an unreachable branch in Compose/Transform.
	KindInternal Kind = "internal"
)

// OpError is the error type returned by every fallible operation in this
// package. Message states the expected relationship that was violated so a
// caller higher up the stack can diagnose a protocol bug.
type OpError struct {
	Kind    Kind
	Message string
}

func (e *OpError) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...any) *OpError {
	return &OpError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is supports errors.Is(err, ot.ErrLengthMismatch) style matching on Kind.
func (e *OpError) Is(target error) bool {
	other, ok := target.(*OpError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel values for errors.Is comparisons against a specific kind, without
// needing to match the (varying) message text.
var (
	ErrTypeError      = &OpError{Kind: KindType}
	ErrParseError     = &OpError{Kind: KindParse}
	ErrLengthMismatch = &OpError{Kind: KindLengthMismatch}
	ErrInternal       = &OpError{Kind: KindInternal}
)
