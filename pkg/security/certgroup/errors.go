package certgroup

import "errors"

var (
	// ErrTrustListFull is returned by AddTrusted/AddIssuer when the
	// configured maxTrustListSize would be exceeded.
	ErrTrustListFull = errors.New("certgroup: trust list is full")

	// ErrNotFound is returned when removing a certificate that is not
	// present in the trust list.
	ErrNotFound = errors.New("certgroup: certificate not found")
)
