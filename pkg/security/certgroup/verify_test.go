package certgroup

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net/url"
	"testing"
	"time"

	"github.com/marmos91/uacore/pkg/ua"
)

func selfSignedCert(t *testing.T, cn string, uris []*url.URL) []byte {
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
		URIs:         uris,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	return der
}

// TestEmptyTrustListAcceptsWithWarning is Scenario E.
func TestEmptyTrustListAcceptsWithWarning(t *testing.T) {
	g := NewGroup(0, 0)
	peer := selfSignedCert(t, "peer", nil)

	code := g.Verify(peer)
	if code != ua.Good {
		t.Fatalf("Verify on empty trust list = %v, want Good", code)
	}
	if g.RejectedCount() != 0 {
		t.Fatalf("empty-trust-list accept must not reject")
	}
}

func TestEmptyTrustListRejectsWhenConfigured(t *testing.T) {
	g := NewGroup(0, 0)
	g.RejectEmptyTrustList = true
	peer := selfSignedCert(t, "peer", nil)

	code := g.Verify(peer)
	if code != ua.BadCertificateUntrusted {
		t.Fatalf("Verify = %v, want BadCertificateUntrusted", code)
	}
	if g.RejectedCount() != 1 {
		t.Fatalf("rejected count = %d, want 1", g.RejectedCount())
	}
}

// TestApplicationURIMismatch is Scenario F.
func TestApplicationURIMismatch(t *testing.T) {
	fooURI, err := url.Parse("urn:example:Foo")
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	der := selfSignedCert(t, "peer", []*url.URL{fooURI})
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}

	g := NewGroup(0, 0)
	code := g.VerifyApplicationURI(cert, "urn:example:Bar")
	if code != ua.BadCertificateUriInvalid {
		t.Fatalf("VerifyApplicationURI = %v, want BadCertificateUriInvalid", code)
	}
}

func TestApplicationURIMatchSubstring(t *testing.T) {
	barURI, err := url.Parse("urn:example:Bar")
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	der := selfSignedCert(t, "peer", []*url.URL{barURI})
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}

	g := NewGroup(0, 0)
	if code := g.VerifyApplicationURI(cert, "urn:example:Bar"); code != ua.Good {
		t.Fatalf("VerifyApplicationURI = %v, want Good", code)
	}
}

func TestApplicationURIMismatchDowngradedToWarning(t *testing.T) {
	fooURI, err := url.Parse("urn:example:Foo")
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	der := selfSignedCert(t, "peer", []*url.URL{fooURI})
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}

	g := NewGroup(0, 0)
	g.RequireApplicationURIMatch = false
	if code := g.VerifyApplicationURI(cert, "urn:example:Bar"); code != ua.Good {
		t.Fatalf("VerifyApplicationURI = %v, want Good (downgraded)", code)
	}
}

func TestTrustedLeafIsAccepted(t *testing.T) {
	der := selfSignedCert(t, "trusted-peer", nil)
	g := NewGroup(0, 0)
	if err := g.AddTrusted(der); err != nil {
		t.Fatalf("AddTrusted: %v", err)
	}
	if code := g.Verify(der); code != ua.Good {
		t.Fatalf("Verify of directly trusted self-signed cert = %v, want Good", code)
	}
}

func TestUntrustedLeafIsRejected(t *testing.T) {
	trusted := selfSignedCert(t, "trusted", nil)
	untrusted := selfSignedCert(t, "untrusted", nil)

	g := NewGroup(0, 0)
	if err := g.AddTrusted(trusted); err != nil {
		t.Fatalf("AddTrusted: %v", err)
	}
	code := g.Verify(untrusted)
	if code == ua.Good {
		t.Fatalf("Verify of untrusted cert returned Good")
	}
	if g.RejectedCount() != 1 {
		t.Fatalf("rejected count = %d, want 1", g.RejectedCount())
	}
}

func TestCAPresentedAsLeafRejected(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "ca-as-leaf"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}

	g := NewGroup(0, 0)
	if err := g.AddTrusted(der); err != nil {
		t.Fatalf("AddTrusted: %v", err)
	}
	if code := g.Verify(der); code != ua.BadCertificateUseNotAllowed {
		t.Fatalf("Verify of CA-as-leaf = %v, want BadCertificateUseNotAllowed", code)
	}
}

func TestRejectedListDedupesByByteIdentity(t *testing.T) {
	untrusted := selfSignedCert(t, "untrusted", nil)
	g := NewGroup(0, 0)
	g.RejectEmptyTrustList = true
	_ = g.AddTrusted(selfSignedCert(t, "other-trusted", nil))

	g.Verify(untrusted)
	g.Verify(untrusted)
	if g.RejectedCount() != 1 {
		t.Fatalf("rejected count = %d, want 1 (deduped)", g.RejectedCount())
	}
}

func TestRejectedListEvictsOldestWhenFull(t *testing.T) {
	g := NewGroup(0, 2)
	g.RejectEmptyTrustList = true
	_ = g.AddTrusted(selfSignedCert(t, "trusted", nil))

	first := selfSignedCert(t, "r1", nil)
	second := selfSignedCert(t, "r2", nil)
	third := selfSignedCert(t, "r3", nil)

	g.Verify(first)
	g.Verify(second)
	g.Verify(third)

	if g.RejectedCount() != 2 {
		t.Fatalf("rejected count = %d, want 2", g.RejectedCount())
	}
	for _, der := range g.RejectedCertificates() {
		if bytesEqual(der, first) {
			t.Fatalf("oldest rejected entry should have been evicted")
		}
	}
}
