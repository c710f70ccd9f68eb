package commands

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSelfSignedCert(t *testing.T, path, cn string) []byte {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	if err := os.WriteFile(path, der, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return der
}

func TestTrustAddListRemove(t *testing.T) {
	dir := t.TempDir()
	trustDir = filepath.Join(dir, "trust")

	certPath := filepath.Join(dir, "peer.der")
	writeSelfSignedCert(t, certPath, "peer-one")

	if err := runTrustAdd(trustAddCmd, []string{certPath}); err != nil {
		t.Fatalf("runTrustAdd: %v", err)
	}

	var buf bytes.Buffer
	trustListCmd.SetOut(&buf)
	if err := runTrustList(trustListCmd, nil); err != nil {
		t.Fatalf("runTrustList: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("peer-one")) {
		t.Fatalf("listing did not show added certificate, got: %s", buf.String())
	}

	if err := runTrustRemove(trustRemoveCmd, []string{certPath}); err != nil {
		t.Fatalf("runTrustRemove: %v", err)
	}

	buf.Reset()
	trustListCmd.SetOut(&buf)
	if err := runTrustList(trustListCmd, nil); err != nil {
		t.Fatalf("runTrustList after remove: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("peer-one")) {
		t.Fatalf("certificate still listed after remove")
	}
}

func TestTrustAddRejectsNonCertificateFile(t *testing.T) {
	dir := t.TempDir()
	trustDir = filepath.Join(dir, "trust")

	badPath := filepath.Join(dir, "not-a-cert.txt")
	if err := os.WriteFile(badPath, []byte("hello"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := runTrustAdd(trustAddCmd, []string{badPath}); err == nil {
		t.Fatal("expected an error adding a non-certificate file")
	}
}
