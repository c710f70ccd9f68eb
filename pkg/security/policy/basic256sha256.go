package policy

import (
	"crypto/rsa"
	"crypto/x509"
)

// basic256Sha256Policy: RSA-PKCS1v15+SHA256 signatures, RSA-OAEP-SHA1 (42
// byte padding) asymmetric encryption, HMAC-SHA256 symmetric signing,
// AES-256-CBC symmetric encryption, P_SHA256 key derivation, 32-byte
// nonces.
type basic256Sha256Policy struct{}

func (basic256Sha256Policy) URI() string { return URIBasic256Sha256 }

func (basic256Sha256Policy) AsymSign(message []byte, key *rsa.PrivateKey) ([]byte, error) {
	return rsaPKCS1v15SHA256Sign(message, key)
}
func (basic256Sha256Policy) AsymVerify(message []byte, cert *x509.Certificate, sig []byte) error {
	return rsaPKCS1v15SHA256Verify(cert, message, sig)
}
func (basic256Sha256Policy) AsymEncrypt(plaintext []byte, cert *x509.Certificate) ([]byte, error) {
	return asymEncryptChunked(plaintext, cert, 42, rsaOAEPSHA1EncryptOne)
}
func (basic256Sha256Policy) AsymDecrypt(ciphertext []byte, key *rsa.PrivateKey) ([]byte, error) {
	return asymDecryptChunked(ciphertext, key, rsaOAEPSHA1DecryptOne)
}

func (basic256Sha256Policy) SymSign(message, key []byte) ([]byte, error) {
	return hmacSHA256Sign(message, key)
}
func (basic256Sha256Policy) SymVerify(message, key, mac []byte) error {
	return hmacSHA256Verify(message, key, mac)
}
func (basic256Sha256Policy) SymEncrypt(data, key, iv []byte) ([]byte, error) { return cbcEncrypt(data, key, iv) }
func (basic256Sha256Policy) SymDecrypt(data, key, iv []byte) ([]byte, error) { return cbcDecrypt(data, key, iv) }

func (basic256Sha256Policy) MakeThumbprint(certDER []byte) [20]byte { return makeSHA1Thumbprint(certDER) }

func (basic256Sha256Policy) GenerateNonce() ([]byte, error) { return randomBytes(32) }
func (basic256Sha256Policy) DeriveKeys(secret, seed []byte, outLen int) ([]byte, error) {
	return pSHA256(secret, seed, outLen), nil
}

func (basic256Sha256Policy) AsymmetricSignatureSize(keyBits int) int { return keyBits / 8 }
func (basic256Sha256Policy) SymmetricSignatureSize() int             { return 32 }
func (basic256Sha256Policy) SymmetricKeySize() int                   { return 32 }
func (basic256Sha256Policy) SymmetricBlockSize() int                 { return 16 }
func (basic256Sha256Policy) NonceLength() int                        { return 32 }
