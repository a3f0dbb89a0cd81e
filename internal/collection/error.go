package collection

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrCodeInvalidInput    = ErrorCode("ERR_INVALID_INPUT")
	ErrCodeEmptyCollection = ErrorCode("ERR_EMPTY_COLLECTION")
	ErrCodeIndexOutOfRange = ErrorCode("ERR_INDEX_OUT_OF_RANGE")
	ErrCodeValueNotFound   = ErrorCode("ERR_VALUE_NOT_FOUND")
)

// Code-only errors for use with errors.Is.
// Any Error carrying the same Code matches them, whatever its Message.
var (
	ErrInvalidInput    = Error{Code: ErrCodeInvalidInput}
	ErrEmptyCollection = Error{Code: ErrCodeEmptyCollection}
	ErrIndexOutOfRange = Error{Code: ErrCodeIndexOutOfRange}
	ErrValueNotFound   = Error{Code: ErrCodeValueNotFound}
)

type Error struct {
	Code    ErrorCode
	Message string
}

func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}

func IsCollectionError(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return Error{}, false
}

func InvalidInputErrorf(format string, args ...any) error {
	return Error{ErrCodeInvalidInput, fmt.Sprintf(format, args...)}
}

func EmptyCollectionErrorf(format string, args ...any) error {
	return Error{ErrCodeEmptyCollection, fmt.Sprintf(format, args...)}
}

func IndexOutOfRangeErrorf(format string, args ...any) error {
	return Error{ErrCodeIndexOutOfRange, fmt.Sprintf(format, args...)}
}

func ValueNotFoundErrorf(format string, args ...any) error {
	return Error{ErrCodeValueNotFound, fmt.Sprintf(format, args...)}
}
