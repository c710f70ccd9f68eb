package certgroup

import "crypto/x509"

// trustList holds the raw DER trust material plus its lazily parsed
// form. Parsing happens on the next Verify call after a mutation, not
// on the mutation itself, per the "reload required" flag design.
type trustList struct {
	trustedDER [][]byte
	issuerDER  [][]byte
	crlDER     [][]byte

	trustedCerts []*x509.Certificate
	issuerCerts  []*x509.Certificate
	crls         []*x509.RevocationList

	reloadRequired bool
}

func newTrustList() *trustList {
	return &trustList{}
}

func (t *trustList) empty() bool {
	return len(t.trustedDER) == 0 && len(t.issuerDER) == 0 && len(t.crlDER) == 0
}

func (t *trustList) addTrusted(der []byte) {
	t.trustedDER = append(t.trustedDER, der)
	t.reloadRequired = true
}

func (t *trustList) addIssuer(der []byte) {
	t.issuerDER = append(t.issuerDER, der)
	t.reloadRequired = true
}

func (t *trustList) addCRL(der []byte) {
	t.crlDER = append(t.crlDER, der)
	t.reloadRequired = true
}

func (t *trustList) removeTrusted(der []byte) bool {
	for i, d := range t.trustedDER {
		if bytesEqual(d, der) {
			t.trustedDER = append(t.trustedDER[:i], t.trustedDER[i+1:]...)
			t.reloadRequired = true
			return true
		}
	}
	return false
}

func (t *trustList) removeIssuer(der []byte) bool {
	for i, d := range t.issuerDER {
		if bytesEqual(d, der) {
			t.issuerDER = append(t.issuerDER[:i], t.issuerDER[i+1:]...)
			t.reloadRequired = true
			return true
		}
	}
	return false
}

// reloadIfRequired reparses trustedDER/issuerDER/crlDER into their
// x509 forms if the reload-required flag is set, then clears the flag.
// Certificates that fail to parse are skipped rather than failing the
// whole reload, since a single corrupt trust-list entry should not
// take down verification for every peer. Reports whether a reload
// actually happened.
func (t *trustList) reloadIfRequired() bool {
	if !t.reloadRequired {
		return false
	}
	t.trustedCerts = parseAllCerts(t.trustedDER)
	t.issuerCerts = parseAllCerts(t.issuerDER)
	t.crls = parseAllCRLs(t.crlDER)
	t.reloadRequired = false
	return true
}

func parseAllCerts(ders [][]byte) []*x509.Certificate {
	out := make([]*x509.Certificate, 0, len(ders))
	for _, der := range ders {
		if cert, err := x509.ParseCertificate(der); err == nil {
			out = append(out, cert)
		}
	}
	return out
}

func parseAllCRLs(ders [][]byte) []*x509.RevocationList {
	out := make([]*x509.RevocationList, 0, len(ders))
	for _, der := range ders {
		if crl, err := x509.ParseRevocationList(der); err == nil {
			out = append(out, crl)
		}
	}
	return out
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
