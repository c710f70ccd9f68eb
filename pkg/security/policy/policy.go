package policy

import (
	"crypto/rsa"
	"crypto/x509"

	"github.com/marmos91/uacore/pkg/ua"
)

// URI constants for the six policies this engine implements, matching the
// OPC UA Part 7 SecurityPolicy profile identifiers.
const (
	URINone                 = "http://opcfoundation.org/UA/SecurityPolicy#None"
	URIBasic128Rsa15        = "http://opcfoundation.org/UA/SecurityPolicy#Basic128Rsa15"
	URIBasic256             = "http://opcfoundation.org/UA/SecurityPolicy#Basic256"
	URIBasic256Sha256       = "http://opcfoundation.org/UA/SecurityPolicy#Basic256Sha256"
	URIAes128Sha256RsaOaep  = "http://opcfoundation.org/UA/SecurityPolicy#Aes128Sha256RsaOaep"
	URIAes256Sha256RsaPss   = "http://opcfoundation.org/UA/SecurityPolicy#Aes256Sha256RsaPss"
)

// KeyDerivationAlgorithm selects the pseudo-random function used to expand
// a shared secret and seed into channel key material.
type KeyDerivationAlgorithm int

const (
	KeyDerivationNone KeyDerivationAlgorithm = iota
	KeyDerivationPSHA1
	KeyDerivationPSHA256
)

// Policy is the capability vector every security policy implements.
// Implementations are stateless with respect to any one channel; the
// per-channel symmetric key material lives in pkg/security/channel.
type Policy interface {
	// URI identifies this policy on the wire.
	URI() string

	// AsymSign produces a signature over message using localKey. Returns
	// nil, nil for the None policy.
	AsymSign(message []byte, localKey *rsa.PrivateKey) ([]byte, error)
	// AsymVerify checks signature over message against remoteCert's public
	// key. Returns *ua.Error{Code: ua.BadSecurityChecksFailed} on mismatch.
	AsymVerify(message []byte, remoteCert *x509.Certificate, signature []byte) error
	// AsymEncrypt encrypts plaintext for remoteCert's public key,
	// chunking across multiple blocks as needed.
	AsymEncrypt(plaintext []byte, remoteCert *x509.Certificate) ([]byte, error)
	// AsymDecrypt decrypts ciphertext with localKey, chunking across
	// multiple blocks, processing back-to-front to preserve in-place
	// aliasing.
	AsymDecrypt(ciphertext []byte, localKey *rsa.PrivateKey) ([]byte, error)

	// SymSign computes an HMAC of this policy's defined length.
	SymSign(message, key []byte) ([]byte, error)
	// SymVerify checks an HMAC produced by SymSign.
	SymVerify(message, key, mac []byte) error
	// SymEncrypt performs CBC-mode encryption; len(data) must be a
	// multiple of the block size.
	SymEncrypt(data, key, iv []byte) ([]byte, error)
	// SymDecrypt performs CBC-mode decryption; len(data) must be a
	// multiple of the block size.
	SymDecrypt(data, key, iv []byte) ([]byte, error)

	// MakeThumbprint returns the SHA-1 digest of a DER certificate.
	MakeThumbprint(certDER []byte) [20]byte

	// GenerateNonce returns this policy's defined number of
	// cryptographically random bytes.
	GenerateNonce() ([]byte, error)
	// DeriveKeys expands secret and seed into outLen bytes of key
	// material using this policy's key-derivation algorithm.
	DeriveKeys(secret, seed []byte, outLen int) ([]byte, error)

	// AsymmetricSignatureSize is the fixed length of AsymSign's output.
	AsymmetricSignatureSize(keyBits int) int
	// SymmetricSignatureSize is the fixed length of SymSign's output.
	SymmetricSignatureSize() int
	// SymmetricKeySize is the key length SymEncrypt/SymDecrypt expect.
	SymmetricKeySize() int
	// SymmetricBlockSize is the cipher block size SymEncrypt/SymDecrypt
	// operate on.
	SymmetricBlockSize() int
	// NonceLength is the length GenerateNonce produces.
	NonceLength() int
}

// ByURI returns the Policy implementation for uri, or ErrUnknownPolicy.
func ByURI(uri string) (Policy, error) {
	switch uri {
	case URINone, "":
		return nonePolicy{}, nil
	case URIBasic128Rsa15:
		return basic128Rsa15Policy{}, nil
	case URIBasic256:
		return basic256Policy{}, nil
	case URIBasic256Sha256:
		return basic256Sha256Policy{}, nil
	case URIAes128Sha256RsaOaep:
		return aes128Sha256RsaOaepPolicy{}, nil
	case URIAes256Sha256RsaPss:
		return aes256Sha256RsaPssPolicy{}, nil
	default:
		return nil, ErrUnknownPolicy
	}
}

// securityChecksFailed wraps the canonical failure status for signature,
// decryption and padding errors.
func securityChecksFailed(msg string) error {
	return ua.NewError(ua.BadSecurityChecksFailed, msg)
}
