package machineid

import (
	"errors"
	"fmt"
	"strconv"
)

// Code is the outcome of a Generate call. CodeNone and CodeFallback mean the
// output buffer was written; every other defined code means it was not.
type Code int

const (
	CodeNone              Code = 0
	CodeRNG               Code = 1
	CodeNullOutputBuffer  Code = 2
	CodeFallback          Code = 3
	CodeHashFailure       Code = 4
	CodeShortOutputBuffer Code = 5

	codeUnknown Code = -1
)

var codeNames = [...]string{
	CodeNone:              "MACHINEID_ERROR_NONE",
	CodeRNG:               "MACHINEID_ERROR_RNG",
	CodeNullOutputBuffer:  "MACHINEID_ERROR_NULL_OUTPUT_BUFFER",
	CodeFallback:          "MACHINEID_ERROR_FALLBACK",
	CodeHashFailure:       "MACHINEID_ERROR_HASH_FAILURE",
	CodeShortOutputBuffer: "MACHINEID_ERROR_SHORT_OUTPUT_BUFFER",
}

// ErrorToString returns the display name of code. The second result is false
// for values outside the defined set.
func ErrorToString(code Code) (string, bool) {
	if code < 0 || int(code) >= len(codeNames) {
		return "", false
	}
	return codeNames[code], true
}

func (c Code) String() string {
	if s, ok := ErrorToString(c); ok {
		return s
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// Succeeded reports whether the output buffer holds a usable identifier.
func (c Code) Succeeded() bool {
	return c == CodeNone || c == CodeFallback
}

// Stable reports whether the identifier is expected to repeat across runs.
func (c Code) Stable() bool {
	return c == CodeNone
}

var (
	ErrNullOutputBuffer  = &Error{Op: "validate", Code: CodeNullOutputBuffer}
	ErrShortOutputBuffer = &Error{Op: "validate", Code: CodeShortOutputBuffer}
)

// Error is returned for every fatal outcome. The output buffer is untouched.
type Error struct {
	Op   string
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("machineid %s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("machineid %s: %s: %v", e.Op, e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code, so errors.Is works against
// the sentinels regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// CodeOf extracts the outcome code from err. A nil error maps to CodeNone;
// errors that did not come from this package map to an undefined code.
func CodeOf(err error) Code {
	if err == nil {
		return CodeNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return codeUnknown
}
