package channel

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"

	"github.com/marmos91/uacore/pkg/security/policy"
)

func testContext(t *testing.T) (*Context, *policy.Context) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "local"},
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

	pol, err := policy.ByURI(policy.URIBasic256Sha256)
	if err != nil {
		t.Fatalf("ByURI: %v", err)
	}
	pctx, err := policy.Create(pol, der, key)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return NewContext(pctx, cert), pctx
}

func TestFreshChannelRejectsCrypto(t *testing.T) {
	ch, _ := testContext(t)
	if ch.State() != Fresh {
		t.Fatalf("state = %v, want Fresh", ch.State())
	}
	if _, err := ch.Sign([]byte("msg")); err == nil {
		t.Fatalf("Sign succeeded on Fresh channel")
	}
	if _, err := ch.Encrypt([]byte("msg")); err == nil {
		t.Fatalf("Encrypt succeeded on Fresh channel")
	}
}

func TestInstallThenSignVerify(t *testing.T) {
	ch, _ := testContext(t)
	keySize := ch.KeySize()
	blockSize := ch.BlockSize()
	key := bytes.Repeat([]byte{0x11}, keySize)
	iv := bytes.Repeat([]byte{0x22}, blockSize)

	ch.Install(key, key, key, key, iv, iv)
	if ch.State() != KeysInstalled {
		t.Fatalf("state = %v, want KeysInstalled", ch.State())
	}

	msg := []byte("a message that gets signed")
	mac, err := ch.Sign(msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := ch.Verify(msg, mac); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	data := make([]byte, blockSize*2)
	ct, err := ch.Encrypt(data)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt, err := ch.Decrypt(ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, data) {
		t.Fatalf("Decrypt round trip mismatch")
	}
}

func TestRekeyPreservesInstalledState(t *testing.T) {
	ch, _ := testContext(t)
	keySize := ch.KeySize()
	blockSize := ch.BlockSize()
	key1 := bytes.Repeat([]byte{0x01}, keySize)
	iv1 := bytes.Repeat([]byte{0x02}, blockSize)
	ch.Install(key1, key1, key1, key1, iv1, iv1)

	key2 := bytes.Repeat([]byte{0x03}, keySize)
	iv2 := bytes.Repeat([]byte{0x04}, blockSize)
	if err := ch.Rekey(key2, key2, key2, key2, iv2, iv2); err != nil {
		t.Fatalf("Rekey: %v", err)
	}
	if ch.State() != KeysInstalled {
		t.Fatalf("state after rekey = %v, want KeysInstalled", ch.State())
	}

	msg := []byte("post rekey message")
	mac, err := ch.Sign(msg)
	if err != nil {
		t.Fatalf("Sign after rekey: %v", err)
	}
	if err := ch.Verify(msg, mac); err != nil {
		t.Fatalf("Verify after rekey: %v", err)
	}
}

func TestClosedChannelRejectsCrypto(t *testing.T) {
	ch, _ := testContext(t)
	keySize := ch.KeySize()
	blockSize := ch.BlockSize()
	key := bytes.Repeat([]byte{0x11}, keySize)
	iv := bytes.Repeat([]byte{0x22}, blockSize)
	ch.Install(key, key, key, key, iv, iv)

	ch.Close()
	if ch.State() != Closed {
		t.Fatalf("state = %v, want Closed", ch.State())
	}
	if _, err := ch.Sign([]byte("msg")); err == nil {
		t.Fatalf("Sign succeeded on Closed channel")
	}
	if err := ch.Rekey(key, key, key, key, iv, iv); err != ErrAlreadyClosed {
		t.Fatalf("Rekey on closed channel = %v, want ErrAlreadyClosed", err)
	}
}

func TestCompareCertificate(t *testing.T) {
	ch, pctx := testContext(t)
	if !ch.CompareCertificate(pctx.Certificate()) {
		t.Fatalf("CompareCertificate should match the channel's own remote cert")
	}
}
