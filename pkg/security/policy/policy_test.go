package policy

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"
)

// TestPSHA256Scenario is Scenario D: secret and seed are 32 zero bytes,
// out length 64. The expected output is computed independently here
// from the RFC 5246 P_hash definition rather than copied from pSHA, so
// this test would actually catch a broken implementation.
func TestPSHA256Scenario(t *testing.T) {
	secret := make([]byte, 32)
	seed := make([]byte, 32)

	a1 := hmacOnce(secret, seed)
	a2 := hmacOnce(secret, a1)

	want := append(hmacOnce(secret, append(append([]byte{}, a1...), seed...)),
		hmacOnce(secret, append(append([]byte{}, a2...), seed...))...)

	got := pSHA256(secret, seed, 64)
	if !bytes.Equal(got, want) {
		t.Fatalf("pSHA256 = %x, want %x", got, want)
	}
}

func hmacOnce(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

func TestNonePolicyIsNoOp(t *testing.T) {
	p := nonePolicy{}
	if p.URI() != URINone {
		t.Fatalf("URI = %q", p.URI())
	}
	sig, err := p.AsymSign([]byte("msg"), nil)
	if err != nil || sig != nil {
		t.Fatalf("AsymSign = %v, %v", sig, err)
	}
	if err := p.AsymVerify([]byte("msg"), nil, nil); err != nil {
		t.Fatalf("AsymVerify = %v", err)
	}
	ct, err := p.AsymEncrypt([]byte("plain"), nil)
	if err != nil || string(ct) != "plain" {
		t.Fatalf("AsymEncrypt = %v, %v", ct, err)
	}
	if p.SymmetricKeySize() != 0 || p.NonceLength() != 0 {
		t.Fatalf("none policy should report zero key/nonce sizes")
	}
}

func testRSAKeyAndCert(t *testing.T, uri string) (*rsa.PrivateKey, *x509.Certificate) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "test " + uri},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}
	return key, cert
}

// TestPolicyCapabilityTable exercises every named policy's full
// capability vector against a freshly generated RSA key/cert pair:
// asymmetric sign/verify, asymmetric encrypt/decrypt (including
// multi-block chunking), symmetric sign/verify, symmetric encrypt/
// decrypt, thumbprint, nonce, and key derivation.
func TestPolicyCapabilityTable(t *testing.T) {
	uris := []string{
		URINone,
		URIBasic128Rsa15,
		URIBasic256,
		URIBasic256Sha256,
		URIAes128Sha256RsaOaep,
		URIAes256Sha256RsaPss,
	}

	for _, uri := range uris {
		uri := uri
		t.Run(uri, func(t *testing.T) {
			p, err := ByURI(uri)
			if err != nil {
				t.Fatalf("ByURI: %v", err)
			}
			key, cert := testRSAKeyAndCert(t, uri)

			message := []byte("the quick brown fox jumps over the lazy dog")
			sig, err := p.AsymSign(message, key)
			if err != nil {
				t.Fatalf("AsymSign: %v", err)
			}
			if err := p.AsymVerify(message, cert, sig); err != nil {
				t.Fatalf("AsymVerify: %v", err)
			}
			if uri != URINone {
				tampered := append([]byte{}, message...)
				tampered[0] ^= 0xFF
				if err := p.AsymVerify(tampered, cert, sig); err == nil {
					t.Fatalf("AsymVerify accepted tampered message")
				}
			}

			plaintext := bytes.Repeat([]byte("0123456789abcdef"), 20) // 320 bytes, spans multiple RSA blocks
			ct, err := p.AsymEncrypt(plaintext, cert)
			if err != nil {
				t.Fatalf("AsymEncrypt: %v", err)
			}
			pt, err := p.AsymDecrypt(ct, key)
			if err != nil {
				t.Fatalf("AsymDecrypt: %v", err)
			}
			if !bytes.Equal(pt, plaintext) {
				t.Fatalf("AsymDecrypt round-trip mismatch")
			}

			symKey := make([]byte, max(p.SymmetricKeySize(), 1))
			mac, err := p.SymSign(message, symKey)
			if err != nil {
				t.Fatalf("SymSign: %v", err)
			}
			if err := p.SymVerify(message, symKey, mac); err != nil {
				t.Fatalf("SymVerify: %v", err)
			}

			blockSize := p.SymmetricBlockSize()
			data := make([]byte, blockSize*3)
			iv := make([]byte, blockSize)
			enc, err := p.SymEncrypt(data, symKey, iv)
			if err != nil {
				t.Fatalf("SymEncrypt: %v", err)
			}
			dec, err := p.SymDecrypt(enc, symKey, iv)
			if err != nil {
				t.Fatalf("SymDecrypt: %v", err)
			}
			if !bytes.Equal(dec, data) {
				t.Fatalf("SymDecrypt round-trip mismatch")
			}

			tp := p.MakeThumbprint(cert.Raw)
			if tp != makeSHA1Thumbprint(cert.Raw) {
				t.Fatalf("MakeThumbprint mismatch")
			}

			nonce, err := p.GenerateNonce()
			if err != nil {
				t.Fatalf("GenerateNonce: %v", err)
			}
			if len(nonce) != p.NonceLength() {
				t.Fatalf("nonce length = %d, want %d", len(nonce), p.NonceLength())
			}

			derived, err := p.DeriveKeys(symKey, nonce, 64)
			if err != nil {
				t.Fatalf("DeriveKeys: %v", err)
			}
			if len(derived) != 64 {
				t.Fatalf("derived key length = %d, want 64", len(derived))
			}
		})
	}
}

func TestByURIUnknown(t *testing.T) {
	if _, err := ByURI("http://example.com/unknown"); err != ErrUnknownPolicy {
		t.Fatalf("ByURI = %v, want ErrUnknownPolicy", err)
	}
}

func TestContextCreateAndUpdate(t *testing.T) {
	p := basic256Sha256Policy{}
	key1, cert1 := testRSAKeyAndCert(t, "ctx-1")
	ctx, err := Create(p, cert1.Raw, key1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ctx.Thumbprint() != p.MakeThumbprint(cert1.Raw) {
		t.Fatalf("thumbprint mismatch after Create")
	}

	key2, cert2 := testRSAKeyAndCert(t, "ctx-2")
	if err := ctx.UpdateCertificateAndPrivateKey(cert2.Raw, key2); err != nil {
		t.Fatalf("UpdateCertificateAndPrivateKey: %v", err)
	}
	if ctx.Thumbprint() != p.MakeThumbprint(cert2.Raw) {
		t.Fatalf("thumbprint not recomputed after update")
	}
	if ctx.PrivateKey() != key2 {
		t.Fatalf("private key not replaced")
	}

	ctx.Clear()
	if ctx.PrivateKey() != nil {
		t.Fatalf("private key not cleared")
	}
}
