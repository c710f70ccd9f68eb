package policy

import (
	"crypto/rsa"
	"crypto/x509"
)

// nonePolicy is the no-security policy: every crypto operation is a no-op
// or trivially succeeds, used for unencrypted/unsigned channels.
type nonePolicy struct{}

func (nonePolicy) URI() string { return URINone }

func (nonePolicy) AsymSign([]byte, *rsa.PrivateKey) ([]byte, error) { return nil, nil }
func (nonePolicy) AsymVerify([]byte, *x509.Certificate, []byte) error { return nil }
func (nonePolicy) AsymEncrypt(plaintext []byte, _ *x509.Certificate) ([]byte, error) {
	return plaintext, nil
}
func (nonePolicy) AsymDecrypt(ciphertext []byte, _ *rsa.PrivateKey) ([]byte, error) {
	return ciphertext, nil
}

func (nonePolicy) SymSign([]byte, []byte) ([]byte, error)     { return nil, nil }
func (nonePolicy) SymVerify([]byte, []byte, []byte) error     { return nil }
func (nonePolicy) SymEncrypt(data []byte, _, _ []byte) ([]byte, error) { return data, nil }
func (nonePolicy) SymDecrypt(data []byte, _, _ []byte) ([]byte, error) { return data, nil }

func (nonePolicy) MakeThumbprint(certDER []byte) [20]byte { return makeSHA1Thumbprint(certDER) }

func (nonePolicy) GenerateNonce() ([]byte, error) { return nil, nil }
func (nonePolicy) DeriveKeys(_, _ []byte, outLen int) ([]byte, error) {
	return make([]byte, outLen), nil
}

func (nonePolicy) AsymmetricSignatureSize(int) int { return 0 }
func (nonePolicy) SymmetricSignatureSize() int     { return 0 }
func (nonePolicy) SymmetricKeySize() int           { return 0 }
func (nonePolicy) SymmetricBlockSize() int         { return 1 }
func (nonePolicy) NonceLength() int                { return 0 }
