package commands

import (
	"crypto/x509"
	"os"
	"path/filepath"
	"testing"
)

func TestCSRCreateGeneratesKeyWhenNoneGiven(t *testing.T) {
	dir := t.TempDir()
	csrSubject = "CN=generated,O=Acme,C=US"
	csrKeyPath = ""
	csrCertPath = ""
	csrOutPath = filepath.Join(dir, "request.csr")
	csrKeyBits = 2048

	if err := runCSRCreate(csrCreateCmd, nil); err != nil {
		t.Fatalf("runCSRCreate: %v", err)
	}

	der, err := os.ReadFile(csrOutPath)
	if err != nil {
		t.Fatalf("reading generated CSR: %v", err)
	}
	if _, err := x509.ParseCertificateRequest(der); err != nil {
		t.Fatalf("generated CSR does not parse: %v", err)
	}

	if _, err := os.Stat(csrOutPath + ".key.pem"); err != nil {
		t.Fatalf("expected generated key file: %v", err)
	}
}

func TestCSRCreateUsesExistingKey(t *testing.T) {
	dir := t.TempDir()

	csrSubject = "CN=pregenerated,O=Acme,C=US"
	csrKeyPath = ""
	csrCertPath = ""
	csrOutPath = filepath.Join(dir, "first.csr")
	csrKeyBits = 2048
	if err := runCSRCreate(csrCreateCmd, nil); err != nil {
		t.Fatalf("runCSRCreate (first): %v", err)
	}
	keyPath := csrOutPath + ".key.pem"

	csrSubject = "CN=reused-key,O=Acme,C=US"
	csrKeyPath = keyPath
	csrCertPath = ""
	csrOutPath = filepath.Join(dir, "second.csr")
	if err := runCSRCreate(csrCreateCmd, nil); err != nil {
		t.Fatalf("runCSRCreate (second): %v", err)
	}

	der, err := os.ReadFile(csrOutPath)
	if err != nil {
		t.Fatalf("reading second CSR: %v", err)
	}
	req, err := x509.ParseCertificateRequest(der)
	if err != nil {
		t.Fatalf("second CSR does not parse: %v", err)
	}
	if req.Subject.CommonName != "reused-key" {
		t.Fatalf("unexpected subject CN: %s", req.Subject.CommonName)
	}
}
