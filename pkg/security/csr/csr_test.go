package csr

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net/url"
	"testing"
	"time"
)

// TestCSRRoundTrip is Scenario G: with a fresh local certificate and
// key, a CSR created with subject=nil must reproduce the certificate's
// subject, SAN, and public key, and must verify against the key's
// public half.
func TestCSRRoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	sanURI, err := url.Parse("urn:example:node")
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "uacore node", Organization: []string{"Example Org"}},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		URIs:         []*url.URL{sanURI},
		DNSNames:     []string{"node.example.com"},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}

	csrDER, err := Create(cert, key, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	csr, err := x509.ParseCertificateRequest(csrDER)
	if err != nil {
		t.Fatalf("ParseCertificateRequest: %v", err)
	}
	if err := csr.CheckSignature(); err != nil {
		t.Fatalf("CheckSignature: %v", err)
	}

	if csr.Subject.CommonName != cert.Subject.CommonName {
		t.Fatalf("subject CN = %q, want %q", csr.Subject.CommonName, cert.Subject.CommonName)
	}
	if len(csr.URIs) != 1 || csr.URIs[0].String() != sanURI.String() {
		t.Fatalf("SAN URIs = %v, want [%v]", csr.URIs, sanURI)
	}
	if len(csr.DNSNames) != 1 || csr.DNSNames[0] != "node.example.com" {
		t.Fatalf("SAN DNS names = %v", csr.DNSNames)
	}

	csrPub, ok := csr.PublicKey.(*rsa.PublicKey)
	if !ok {
		t.Fatalf("CSR public key is not RSA")
	}
	if csrPub.N.Cmp(key.PublicKey.N) != 0 || csrPub.E != key.PublicKey.E {
		t.Fatalf("CSR public key does not match the certificate's key")
	}
}

func TestCSRSubjectFromExplicitString(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	csrDER, err := Create(nil, key, "CN=override,O=Acme,C=US")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	csr, err := x509.ParseCertificateRequest(csrDER)
	if err != nil {
		t.Fatalf("ParseCertificateRequest: %v", err)
	}
	if csr.Subject.CommonName != "override" {
		t.Fatalf("CN = %q, want override", csr.Subject.CommonName)
	}
	if len(csr.Subject.Organization) != 1 || csr.Subject.Organization[0] != "Acme" {
		t.Fatalf("O = %v, want [Acme]", csr.Subject.Organization)
	}
	if len(csr.Subject.Country) != 1 || csr.Subject.Country[0] != "US" {
		t.Fatalf("C = %v, want [US]", csr.Subject.Country)
	}
}

func TestCSRSubjectFromSlashSeparatedString(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	csrDER, err := Create(nil, key, "CN=slash-style/O=Acme")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	csr, err := x509.ParseCertificateRequest(csrDER)
	if err != nil {
		t.Fatalf("ParseCertificateRequest: %v", err)
	}
	if csr.Subject.CommonName != "slash-style" {
		t.Fatalf("CN = %q, want slash-style", csr.Subject.CommonName)
	}
}

func TestCSRNoSubjectSourceErrors(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	if _, err := Create(nil, key, ""); err != ErrNoSubjectSource {
		t.Fatalf("Create = %v, want ErrNoSubjectSource", err)
	}
}

func TestCSRKeyUsageExtensionPresent(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	csrDER, err := Create(nil, key, "CN=x")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	csr, err := x509.ParseCertificateRequest(csrDER)
	if err != nil {
		t.Fatalf("ParseCertificateRequest: %v", err)
	}
	found := false
	for _, ext := range csr.Extensions {
		if ext.Id.Equal(oidKeyUsage) {
			found = true
			if len(ext.Value) == 0 {
				t.Fatalf("key usage extension value is empty")
			}
		}
	}
	if !found {
		t.Fatalf("key usage extension not present in CSR")
	}
}
