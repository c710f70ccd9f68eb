package policy

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"hash"
)

// pSHA expands secret and seed into outLen bytes following the TLS 1.0/1.1
// P_hash construction (RFC 5246 §5): A(0) = seed, A(i) = HMAC(secret,
// A(i-1)), output = HMAC(secret, A(1)||seed) || HMAC(secret, A(2)||seed) ||
// ..., truncated to outLen bytes. OPC UA's P_SHA1/P_SHA256 key derivation
// (Part 6 §6.2.2) reuses this construction directly.
func pSHA(newHash func() hash.Hash, secret, seed []byte, outLen int) []byte {
	out := make([]byte, 0, outLen+newHash().Size())

	a := seed
	for len(out) < outLen {
		mac := hmac.New(newHash, secret)
		mac.Write(a)
		a = mac.Sum(nil)

		mac = hmac.New(newHash, secret)
		mac.Write(a)
		mac.Write(seed)
		out = append(out, mac.Sum(nil)...)
	}
	return out[:outLen]
}

func pSHA1(secret, seed []byte, outLen int) []byte {
	return pSHA(sha1.New, secret, seed, outLen)
}

func pSHA256(secret, seed []byte, outLen int) []byte {
	return pSHA(sha256.New, secret, seed, outLen)
}
