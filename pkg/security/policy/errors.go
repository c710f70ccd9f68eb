package policy

import "errors"

var (
	// ErrNoPrivateKey is returned by operations that need the local
	// private key before one has been installed.
	ErrNoPrivateKey = errors.New("policy: no local private key installed")

	// ErrUnknownPolicy is returned when a security policy URI does not
	// match any registered policy.
	ErrUnknownPolicy = errors.New("policy: unknown security policy uri")

	// ErrInvalidKeyType is returned when the local private key is not an
	// RSA key, the only key type every policy in this catalogue supports.
	ErrInvalidKeyType = errors.New("policy: local private key is not RSA")

	// ErrCiphertextNotBlockAligned is returned by symmetric decrypt when
	// the input length is not a multiple of the block size.
	ErrCiphertextNotBlockAligned = errors.New("policy: ciphertext is not a multiple of the block size")
)
