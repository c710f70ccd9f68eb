package policy

import (
	"crypto/rsa"
	"crypto/x509"
)

// aes128Sha256RsaOaepPolicy: RSA-PKCS1v15+SHA256 signatures, RSA-OAEP-SHA1
// (42 byte padding) asymmetric encryption, HMAC-SHA256 symmetric signing,
// AES-128-CBC symmetric encryption, P_SHA256 key derivation, 32-byte
// nonces.
type aes128Sha256RsaOaepPolicy struct{}

func (aes128Sha256RsaOaepPolicy) URI() string { return URIAes128Sha256RsaOaep }

func (aes128Sha256RsaOaepPolicy) AsymSign(message []byte, key *rsa.PrivateKey) ([]byte, error) {
	return rsaPKCS1v15SHA256Sign(message, key)
}
func (aes128Sha256RsaOaepPolicy) AsymVerify(message []byte, cert *x509.Certificate, sig []byte) error {
	return rsaPKCS1v15SHA256Verify(cert, message, sig)
}
func (aes128Sha256RsaOaepPolicy) AsymEncrypt(plaintext []byte, cert *x509.Certificate) ([]byte, error) {
	return asymEncryptChunked(plaintext, cert, 42, rsaOAEPSHA1EncryptOne)
}
func (aes128Sha256RsaOaepPolicy) AsymDecrypt(ciphertext []byte, key *rsa.PrivateKey) ([]byte, error) {
	return asymDecryptChunked(ciphertext, key, rsaOAEPSHA1DecryptOne)
}

func (aes128Sha256RsaOaepPolicy) SymSign(message, key []byte) ([]byte, error) {
	return hmacSHA256Sign(message, key)
}
func (aes128Sha256RsaOaepPolicy) SymVerify(message, key, mac []byte) error {
	return hmacSHA256Verify(message, key, mac)
}
func (aes128Sha256RsaOaepPolicy) SymEncrypt(data, key, iv []byte) ([]byte, error) { return cbcEncrypt(data, key, iv) }
func (aes128Sha256RsaOaepPolicy) SymDecrypt(data, key, iv []byte) ([]byte, error) { return cbcDecrypt(data, key, iv) }

func (aes128Sha256RsaOaepPolicy) MakeThumbprint(certDER []byte) [20]byte {
	return makeSHA1Thumbprint(certDER)
}

func (aes128Sha256RsaOaepPolicy) GenerateNonce() ([]byte, error) { return randomBytes(32) }
func (aes128Sha256RsaOaepPolicy) DeriveKeys(secret, seed []byte, outLen int) ([]byte, error) {
	return pSHA256(secret, seed, outLen), nil
}

func (aes128Sha256RsaOaepPolicy) AsymmetricSignatureSize(keyBits int) int { return keyBits / 8 }
func (aes128Sha256RsaOaepPolicy) SymmetricSignatureSize() int             { return 32 }
func (aes128Sha256RsaOaepPolicy) SymmetricKeySize() int                   { return 16 }
func (aes128Sha256RsaOaepPolicy) SymmetricBlockSize() int                 { return 16 }
func (aes128Sha256RsaOaepPolicy) NonceLength() int                        { return 32 }
