package apperr

import (
	"errors"   // errors.As for conversion
	"fmt"      // Message formatting
	"net/http" // HTTP status codes
)

// Code classifies an application error
type Code int

const (
	CodeInternal        Code = iota // Unexpected failure, storage faults
	CodeInvalidArgument             // Missing or empty required input
	CodeNotFound                    // Unknown account, category
	CodeAlreadyExists               // Duplicate username
	CodeUnauthenticated             // Login mismatch
)

var codeNames = map[Code]string{
	CodeInternal:        "internal error",
	CodeInvalidArgument: "invalid argument",
	CodeNotFound:        "not found",
	CodeAlreadyExists:   "already exists",
	CodeUnauthenticated: "unauthenticated",
}

var code2http = map[Code]int{
	CodeInternal:        http.StatusInternalServerError,
	CodeInvalidArgument: http.StatusBadRequest,
	CodeNotFound:        http.StatusNotFound,
	CodeAlreadyExists:   http.StatusConflict,
	CodeUnauthenticated: http.StatusUnauthorized,
}

// String returns a readable name for the code
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Error is an error carrying a Code and a caller-safe message
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	err     error
}

// New creates an Error. The message defaults to the code name.
func New(code Code, opts ...Option) *Error {
	e := &Error{
		Code:    code,
		Message: code.String(),
	}

	for _, opt := range opts {
		opt.apply(e)
	}

	return e
}

func (e *Error) Error() string {
	s := fmt.Sprintf("code: %s, message: %s", e.Code, e.Message)
	if e.err != nil {
		s += fmt.Sprintf(", err: %s", e.err)
	}

	return s
}

func (e *Error) Unwrap() error {
	return e.err
}

// HTTPStatusCode maps the code onto an HTTP status
func (e *Error) HTTPStatusCode() int {
	if c, ok := code2http[e.Code]; ok {
		return c
	}

	return http.StatusInternalServerError
}

// Convert returns err as an *Error, wrapping anything else as Internal
func Convert(err error) *Error {
	var e *Error
	if !errors.As(err, &e) {
		return Internal(err)
	}

	return e
}

// Internal wraps err as an internal error
func Internal(err error) *Error {
	return New(CodeInternal, WithCause(err))
}

// Is reports whether err is an *Error with the given code
func Is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

type Option interface {
	apply(*Error)
}

type optionFunc func(*Error)

func (f optionFunc) apply(e *Error) {
	f(e)
}

func WithCause(err error) Option {
	return optionFunc(func(e *Error) {
		e.err = err
	})
}

func WithMessage(msg string) Option {
	return optionFunc(func(e *Error) {
		e.Message = msg
	})
}

func WithMessagef(format string, args ...any) Option {
	return optionFunc(func(e *Error) {
		e.Message = fmt.Sprintf(format, args...)
	})
}
