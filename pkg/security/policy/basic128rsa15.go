package policy

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
)

// basic128Rsa15Policy: RSA-PKCS1v15+SHA1 signatures, RSA-PKCS1v15 (11 byte
// padding) asymmetric encryption, HMAC-SHA1 symmetric signing, AES-128-CBC
// symmetric encryption, P_SHA1 key derivation, 16-byte nonces.
type basic128Rsa15Policy struct{}

func (basic128Rsa15Policy) URI() string { return URIBasic128Rsa15 }

func (basic128Rsa15Policy) AsymSign(message []byte, key *rsa.PrivateKey) ([]byte, error) {
	return rsaPKCS1v15SHA1Sign(message, key)
}
func (basic128Rsa15Policy) AsymVerify(message []byte, cert *x509.Certificate, sig []byte) error {
	return rsaPKCS1v15SHA1Verify(cert, message, sig)
}
func (basic128Rsa15Policy) AsymEncrypt(plaintext []byte, cert *x509.Certificate) ([]byte, error) {
	return asymEncryptChunked(plaintext, cert, 11, rsaPKCS1v15EncryptOne)
}
func (basic128Rsa15Policy) AsymDecrypt(ciphertext []byte, key *rsa.PrivateKey) ([]byte, error) {
	return asymDecryptChunked(ciphertext, key, rsaPKCS1v15DecryptOne)
}

func (basic128Rsa15Policy) SymSign(message, key []byte) ([]byte, error) { return hmacSHA1Sign(message, key) }
func (basic128Rsa15Policy) SymVerify(message, key, mac []byte) error    { return hmacSHA1Verify(message, key, mac) }
func (basic128Rsa15Policy) SymEncrypt(data, key, iv []byte) ([]byte, error) { return cbcEncrypt(data, key, iv) }
func (basic128Rsa15Policy) SymDecrypt(data, key, iv []byte) ([]byte, error) { return cbcDecrypt(data, key, iv) }

func (basic128Rsa15Policy) MakeThumbprint(certDER []byte) [20]byte { return makeSHA1Thumbprint(certDER) }

func (basic128Rsa15Policy) GenerateNonce() ([]byte, error) {
	return randomBytes(16)
}
func (basic128Rsa15Policy) DeriveKeys(secret, seed []byte, outLen int) ([]byte, error) {
	return pSHA1(secret, seed, outLen), nil
}

func (basic128Rsa15Policy) AsymmetricSignatureSize(keyBits int) int { return keyBits / 8 }
func (basic128Rsa15Policy) SymmetricSignatureSize() int             { return 20 }
func (basic128Rsa15Policy) SymmetricKeySize() int                   { return 16 }
func (basic128Rsa15Policy) SymmetricBlockSize() int                 { return 16 }
func (basic128Rsa15Policy) NonceLength() int                        { return 16 }

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
