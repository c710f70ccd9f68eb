package codec

import "errors"

var (
	// ErrUnknownType is returned when a value's Go type has no registered
	// descriptor and is not itself a built-in type kernel value.
	ErrUnknownType = errors.New("codec: no descriptor registered for type")

	// ErrNotAddressable is returned by Decode-family functions when asked
	// to decode into a value that cannot be set.
	ErrNotAddressable = errors.New("codec: decode target is not addressable")
)
