package apperr

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies a failure.
type Kind int

const (
	Unknown Kind = iota
	MissingArgument
	TooManyArguments
	ArgumentParse
	Input
	DateRange
)

var kindNames = map[Kind]string{
	Unknown:          "Unknown",
	MissingArgument:  "MissingArgument",
	TooManyArguments: "TooManyArguments",
	ArgumentParse:    "ArgumentParseError",
	Input:            "InputError",
	DateRange:        "DateRangeError",
}

var kindMessages = map[Kind]string{
	Unknown:          "unexpected failure",
	MissingArgument:  "missing argument",
	TooManyArguments: "too many arguments",
	ArgumentParse:    "invalid argument",
	Input:            "failed to read input",
	DateRange:        "date out of range",
}

// String returns the kind's name, e.g. "TooManyArguments".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Message returns a short human-readable description of the kind.
func (k Kind) Message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return kindMessages[Unknown]
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrMissingArgument  = &Error{Kind: MissingArgument}
	ErrTooManyArguments = &Error{Kind: TooManyArguments}
	ErrArgumentParse    = &Error{Kind: ArgumentParse}
	ErrInput            = &Error{Kind: Input}
	ErrDateRange        = &Error{Kind: DateRange}
)

// Error is a failure of a known kind. Option names the command-line option
// the failure belongs to and is empty when there is none.
type Error struct {
	Kind   Kind
	Option string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.Message()
	if e.Option != "" {
		msg = e.Option + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. When target names
// an option, the option must match too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Option == "" || t.Option == e.Option
}

// New returns an *Error of the given kind whose cause is built from format.
func New(kind Kind, option, format string, args ...any) error {
	return &Error{Kind: kind, Option: option, Err: pkgerrors.Errorf(format, args...)}
}

// Wrap returns an *Error of the given kind around err. A nil err yields nil.
func Wrap(kind Kind, option string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Option: option, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Format renders err as the one-line message shown to the user.
func Format(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return "error: " + err.Error()
	}
	if e.Kind == DateRange {
		return "calendar error: " + e.Error()
	}
	return "configuration error: " + e.Error()
}
