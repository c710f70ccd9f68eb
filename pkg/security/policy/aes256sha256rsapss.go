package policy

import (
	"crypto/rsa"
	"crypto/x509"
)

// aes256Sha256RsaPssPolicy: RSA-PSS+SHA256 signatures, RSA-OAEP-SHA256 (66
// byte padding) asymmetric encryption, HMAC-SHA256 symmetric signing,
// AES-256-CBC symmetric encryption, P_SHA256 key derivation, 32-byte
// nonces.
type aes256Sha256RsaPssPolicy struct{}

func (aes256Sha256RsaPssPolicy) URI() string { return URIAes256Sha256RsaPss }

func (aes256Sha256RsaPssPolicy) AsymSign(message []byte, key *rsa.PrivateKey) ([]byte, error) {
	return rsaPSSSHA256Sign(message, key)
}
func (aes256Sha256RsaPssPolicy) AsymVerify(message []byte, cert *x509.Certificate, sig []byte) error {
	return rsaPSSSHA256Verify(cert, message, sig)
}
func (aes256Sha256RsaPssPolicy) AsymEncrypt(plaintext []byte, cert *x509.Certificate) ([]byte, error) {
	return asymEncryptChunked(plaintext, cert, 66, rsaOAEPSHA256EncryptOne)
}
func (aes256Sha256RsaPssPolicy) AsymDecrypt(ciphertext []byte, key *rsa.PrivateKey) ([]byte, error) {
	return asymDecryptChunked(ciphertext, key, rsaOAEPSHA256DecryptOne)
}

func (aes256Sha256RsaPssPolicy) SymSign(message, key []byte) ([]byte, error) {
	return hmacSHA256Sign(message, key)
}
func (aes256Sha256RsaPssPolicy) SymVerify(message, key, mac []byte) error {
	return hmacSHA256Verify(message, key, mac)
}
func (aes256Sha256RsaPssPolicy) SymEncrypt(data, key, iv []byte) ([]byte, error) { return cbcEncrypt(data, key, iv) }
func (aes256Sha256RsaPssPolicy) SymDecrypt(data, key, iv []byte) ([]byte, error) { return cbcDecrypt(data, key, iv) }

func (aes256Sha256RsaPssPolicy) MakeThumbprint(certDER []byte) [20]byte {
	return makeSHA1Thumbprint(certDER)
}

func (aes256Sha256RsaPssPolicy) GenerateNonce() ([]byte, error) { return randomBytes(32) }
func (aes256Sha256RsaPssPolicy) DeriveKeys(secret, seed []byte, outLen int) ([]byte, error) {
	return pSHA256(secret, seed, outLen), nil
}

func (aes256Sha256RsaPssPolicy) AsymmetricSignatureSize(keyBits int) int { return keyBits / 8 }
func (aes256Sha256RsaPssPolicy) SymmetricSignatureSize() int             { return 32 }
func (aes256Sha256RsaPssPolicy) SymmetricKeySize() int                   { return 32 }
func (aes256Sha256RsaPssPolicy) SymmetricBlockSize() int                 { return 16 }
func (aes256Sha256RsaPssPolicy) NonceLength() int                        { return 32 }
