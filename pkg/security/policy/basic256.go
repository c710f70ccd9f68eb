package policy

import (
	"crypto/rsa"
	"crypto/x509"
)

// basic256Policy: RSA-PKCS1v15+SHA1 signatures, RSA-OAEP-SHA1 (42 byte
// padding) asymmetric encryption, HMAC-SHA1 symmetric signing,
// AES-256-CBC symmetric encryption, P_SHA1 key derivation, 32-byte nonces.
type basic256Policy struct{}

func (basic256Policy) URI() string { return URIBasic256 }

func (basic256Policy) AsymSign(message []byte, key *rsa.PrivateKey) ([]byte, error) {
	return rsaPKCS1v15SHA1Sign(message, key)
}
func (basic256Policy) AsymVerify(message []byte, cert *x509.Certificate, sig []byte) error {
	return rsaPKCS1v15SHA1Verify(cert, message, sig)
}
func (basic256Policy) AsymEncrypt(plaintext []byte, cert *x509.Certificate) ([]byte, error) {
	return asymEncryptChunked(plaintext, cert, 42, rsaOAEPSHA1EncryptOne)
}
func (basic256Policy) AsymDecrypt(ciphertext []byte, key *rsa.PrivateKey) ([]byte, error) {
	return asymDecryptChunked(ciphertext, key, rsaOAEPSHA1DecryptOne)
}

func (basic256Policy) SymSign(message, key []byte) ([]byte, error)      { return hmacSHA1Sign(message, key) }
func (basic256Policy) SymVerify(message, key, mac []byte) error         { return hmacSHA1Verify(message, key, mac) }
func (basic256Policy) SymEncrypt(data, key, iv []byte) ([]byte, error) { return cbcEncrypt(data, key, iv) }
func (basic256Policy) SymDecrypt(data, key, iv []byte) ([]byte, error) { return cbcDecrypt(data, key, iv) }

func (basic256Policy) MakeThumbprint(certDER []byte) [20]byte { return makeSHA1Thumbprint(certDER) }

func (basic256Policy) GenerateNonce() ([]byte, error) { return randomBytes(32) }
func (basic256Policy) DeriveKeys(secret, seed []byte, outLen int) ([]byte, error) {
	return pSHA1(secret, seed, outLen), nil
}

func (basic256Policy) AsymmetricSignatureSize(keyBits int) int { return keyBits / 8 }
func (basic256Policy) SymmetricSignatureSize() int             { return 20 }
func (basic256Policy) SymmetricKeySize() int                   { return 32 }
func (basic256Policy) SymmetricBlockSize() int                 { return 16 }
func (basic256Policy) NonceLength() int                        { return 32 }
