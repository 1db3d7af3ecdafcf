// Package status provides the tagged result value returned throughout the
// engine in place of panics or exceptions: either Ok, or one of a small set
// of named error kinds carrying a message.
//
// Ok is the zero value — no heap allocation, nothing to free. An error
// Status owns a message string (and, for IOError, may wrap an underlying
// cause via github.com/cockroachdb/errors so callers can unwrap down to the
// environment-level I/O failure). Status is a plain struct: copying it
// copies the message, Go's GC handles the rest, so there is no explicit
// move/self-assign hazard to guard against the way there would be in a
// language without a garbage collector.
package status

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Code names the kind of error a non-Ok Status carries.
type Code uint8

const (
	// codeOK is never stored explicitly; the zero Status is Ok.
	codeOK Code = iota
	CodeNotFound
	CodeCorruption
	CodeNotSupported
	CodeInvalidArgument
	CodeIOError
)

// String returns the human-readable kind name used by to_string rendering.
func (c Code) String() string {
	switch c {
	case codeOK:
		return "OK"
	case CodeNotFound:
		return "NotFound"
	case CodeCorruption:
		return "Corruption"
	case CodeNotSupported:
		return "NotSupported"
	case CodeInvalidArgument:
		return "InvalidArgument"
	case CodeIOError:
		return "IOError"
	default:
		return "Unknown"
	}
}

// Status is Ok when code == codeOK (the zero value); otherwise it carries a
// message and, optionally, a wrapped cause.
type Status struct {
	code Code
	msg  string
	err  error // non-nil only for wrapped causes (e.g. IOError)
}

// OK is the zero-allocation success value. It is also the Status zero value,
// so a freshly declared `var s Status` is already Ok.
var OK = Status{}

// IsOK reports whether the status represents success.
func (s Status) IsOK() bool { return s.code == codeOK }

// Code returns the status's error kind. Calling this on an Ok status
// returns the zero Code, which is distinct from every named error kind.
func (s Status) Code() Code { return s.code }

// newStatus builds a single-fragment error status.
func newStatus(code Code, msg string) Status {
	return Status{code: code, msg: msg}
}

// newTwo builds a two-fragment error status, joined with ": ".
func newTwo(code Code, msg, msg2 string) Status {
	if msg2 == "" {
		return newStatus(code, msg)
	}
	return Status{code: code, msg: msg + ": " + msg2}
}

// NotFound constructs a NotFound status.
func NotFound(msg string, msg2 ...string) Status {
	return newTwo(CodeNotFound, msg, firstOr(msg2, ""))
}

// Corruption constructs a Corruption status.
func Corruption(msg string, msg2 ...string) Status {
	return newTwo(CodeCorruption, msg, firstOr(msg2, ""))
}

// NotSupported constructs a NotSupported status.
func NotSupported(msg string, msg2 ...string) Status {
	return newTwo(CodeNotSupported, msg, firstOr(msg2, ""))
}

// InvalidArgument constructs an InvalidArgument status.
func InvalidArgument(msg string, msg2 ...string) Status {
	return newTwo(CodeInvalidArgument, msg, firstOr(msg2, ""))
}

// IOError constructs an IOError status, optionally wrapping an underlying
// cause (typically a lower-level *os.PathError from the environment).
func IOError(msg string, cause error) Status {
	s := newStatus(CodeIOError, msg)
	if cause != nil {
		s.err = errors.Wrap(cause, msg)
	}
	return s
}

func firstOr(vals []string, def string) string {
	if len(vals) > 0 {
		return vals[0]
	}
	return def
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (s Status) Unwrap() error { return s.err }

// String renders "<Kind>: <message>", or "OK" for the Ok status.
func (s Status) String() string {
	if s.IsOK() {
		return "OK"
	}
	if s.msg == "" {
		return s.code.String()
	}
	return fmt.Sprintf("%s: %s", s.code, s.msg)
}

// Error implements the error interface so a Status can be returned and
// compared anywhere idiomatic Go code expects an error. A nil-ness check
// doesn't apply to a value type; use IsOK (or ToError, which maps Ok to a
// literal nil) to test success.
func (s Status) Error() string { return s.String() }

// ToError returns nil for Ok and the Status itself (as an error) otherwise,
// for call sites that want idiomatic `if err := ...; err != nil`.
func (s Status) ToError() error {
	if s.IsOK() {
		return nil
	}
	return s
}

// Kind predicates, one per error code.
func (s Status) IsNotFound() bool        { return s.code == CodeNotFound }
func (s Status) IsCorruption() bool      { return s.code == CodeCorruption }
func (s Status) IsNotSupported() bool    { return s.code == CodeNotSupported }
func (s Status) IsInvalidArgument() bool { return s.code == CodeInvalidArgument }
func (s Status) IsIOError() bool         { return s.code == CodeIOError }
