// Package errors provides the structured error type shared by adapters, services and transport
// import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
)

// Error carries a code for the wire, a message for humans and an optional cause
// field names the offending input, op tags the failing step for logs
type Error struct {
	code  ErrorCode
	msg   string
	field string
	op    string
	orig  error
}

// Wire is the JSON form of an Error inside the response envelope
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig == nil {
		return e.msg
	}
	return e.msg + ": " + e.orig.Error()
}

func (e *Error) Unwrap() error { return e.orig }

// Code returns the error class
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending input name, if any
func (e *Error) Field() string { return e.field }

// Op returns the step label, if any
func (e *Error) Op() string { return e.op }

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of the first *Error in the chain, Unknown otherwise
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err's code is code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus maps any error to a response status
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WireFrom renders err for the envelope; foreign errors become Unknown
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root returns the innermost cause
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// WithField returns a copy of err with field set; foreign errors pass through
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// WithOp returns a copy of err with op set; foreign errors pass through
func WithOp(err error, op string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.op = op
	return &c
}

// New returns an Error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with formatting
func Newf(code ErrorCode, format string, a ...any) error {
	return New(code, fmt.Sprintf(format, a...))
}

// Wrap attaches code and msg to orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf is Wrap with formatting
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return Wrap(orig, code, fmt.Sprintf(format, a...))
}

// Shorthand constructors for the codes handlers use most

func NotFoundf(format string, a ...any) error     { return Newf(ErrorCodeNotFound, format, a...) }
func InvalidArgf(format string, a ...any) error   { return Newf(ErrorCodeInvalidArgument, format, a...) }
func JSONErrf(format string, a ...any) error      { return Newf(ErrorCodeJSON, format, a...) }
func PanicErrf(format string, a ...any) error     { return Newf(ErrorCodePanic, format, a...) }
func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }
func Unavailablef(format string, a ...any) error  { return Newf(ErrorCodeUnavailable, format, a...) }
func Internalf(format string, a ...any) error     { return Newf(ErrorCodeUnknown, format, a...) }
