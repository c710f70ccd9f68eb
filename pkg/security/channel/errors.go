package channel

import "errors"

var (
	// ErrKeysNotInstalled describes a crypto operation attempted while
	// the channel is Fresh or Closed. Context's crypto methods do not
	// return it: they return a *ua.Error with BadSecurityChecksFailed.
	ErrKeysNotInstalled = errors.New("channel: symmetric keys not installed")

	// ErrAlreadyClosed is returned by operations attempted on a Closed
	// channel context.
	ErrAlreadyClosed = errors.New("channel: context is closed")
)
