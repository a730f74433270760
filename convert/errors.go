package convert

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind rather than matching error strings.
// Use errors.As to extract *Error for the offending input and context.
type Kind string

const (
	KindMalformedHex     Kind = "MalformedHex"
	KindOddLengthHex     Kind = "OddLengthHex"
	KindInvalidHexLength Kind = "InvalidHexLength"
	KindOutOfRange       Kind = "OutOfRange"
	KindUnalignedLength  Kind = "UnalignedLength"
)

// Error is the codec's structured error type.
//
// Context is the caller-supplied label passed to ValidateHexString (empty for
// the other conversions). Input is the offending value rendered as text.
type Error struct {
	Kind    Kind
	Context string
	Input   string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Context != "" {
		return e.Context + ": " + e.Message
	}
	return e.Message
}

func newError(kind Kind, input, msg string) error {
	return &Error{Kind: kind, Input: input, Message: msg}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// KindOf returns the Kind of a structured error, or "" if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}
