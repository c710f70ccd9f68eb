package policy

import "crypto/sha1"

// makeSHA1Thumbprint computes the SHA-1 digest of a DER certificate. Every
// policy in this catalogue, including None, uses the same thumbprint
// algorithm -- it is a certificate property, not a cipher-suite choice.
func makeSHA1Thumbprint(certDER []byte) [20]byte {
	return sha1.Sum(certDER)
}

// compareThumbprint reports whether thumbprint matches local's thumbprint.
func compareThumbprint(thumbprint, local [20]byte) bool {
	return thumbprint == local
}
