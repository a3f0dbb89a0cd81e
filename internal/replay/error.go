package replay

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrCodeBadFormat   = ErrorCode("ERR_BAD_FORMAT")
	ErrCodeUnknownKind = ErrorCode("ERR_UNKNOWN_KIND")
)

// ErrSkip is returned by the Decoder for lines that carry no command.
var ErrSkip = errors.New("nothing to decode")

type Error struct {
	Code    ErrorCode
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

func IsReplayError(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return Error{}, false
}

func BadFormatErrorf(format string, args ...any) error {
	return Error{ErrCodeBadFormat, fmt.Sprintf(format, args...)}
}

func UnknownKindErrorf(format string, args ...any) error {
	return Error{ErrCodeUnknownKind, fmt.Sprintf(format, args...)}
}
