package ua

import "errors"

// Error wraps an OPC UA StatusCode with a human-readable message.
// Security-policy and channel failures return *Error so callers can
// recover the wire status with errors.As. An *Error wraps no other error,
// so errors.Is does not match it against the sentinels below; the decoder
// and the generic codec return those sentinels directly.
type Error struct {
	Code StatusCode
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return e.Msg + ": " + e.Code.String()
}

// NewError constructs an *Error for the given status code and message.
func NewError(code StatusCode, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

var (
	// ErrInsufficientBuffer is returned by Encode when the destination
	// writer rejects a partial write (e.g. a bounded buffer is full).
	ErrInsufficientBuffer = errors.New("opcua: insufficient buffer")

	// ErrEncodingLimitsExceeded is returned when a configured decoder
	// limit (array length, string length, message size, nesting depth)
	// would be exceeded.
	ErrEncodingLimitsExceeded = errors.New("opcua: encoding limits exceeded")

	// ErrInvalidEncoding is returned when the wire bytes are structurally
	// malformed (bad discriminant byte, negative non-null length, etc).
	ErrInvalidEncoding = errors.New("opcua: invalid encoding")

	// ErrInvalidArgument is returned for caller-supplied values that
	// cannot be encoded (e.g. mismatched variant array dimensions).
	ErrInvalidArgument = errors.New("opcua: invalid argument")
)
