// Package csr generates PKCS#10 certificate signing requests from an
// already-installed application instance certificate and private key.
package csr

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"strings"
)

// ErrNoSubjectSource is returned when subject is empty and existingCert
// is nil, leaving nothing to derive a subject from.
var ErrNoSubjectSource = errors.New("csr: subject is empty and no existing certificate was given")

// oidKeyUsage is the RFC 5280 §4.2.1.3 key usage extension OID.
var oidKeyUsage = asn1.ObjectIdentifier{2, 5, 29, 15}

// requestedKeyUsage is the fixed key usage bit set every generated CSR
// requests: digitalSignature, nonRepudiation, keyEncipherment,
// dataEncipherment.
const requestedKeyUsage = x509.KeyUsageDigitalSignature |
	x509.KeyUsageContentCommitment |
	x509.KeyUsageKeyEncipherment |
	x509.KeyUsageDataEncipherment

// Create builds a DER-encoded PKCS#10 CSR signed with SHA-256 using
// key. If subject is non-empty it is parsed as a comma-or-slash
// separated list of RDN attr=value pairs (CN=, O=, C=, ST=, L=);
// otherwise the subject is copied from existingCert. The request carries
// key's public key (no check is made that it matches existingCert's),
// the subject-alternative-name extension is copied verbatim from
// existingCert when one is given, and the request always carries a
// fixed KeyUsage extension.
func Create(existingCert *x509.Certificate, key *rsa.PrivateKey, subject string) ([]byte, error) {
	var name pkix.Name
	if subject != "" {
		name = parseSubject(subject)
	} else if existingCert != nil {
		name = existingCert.Subject
	} else {
		return nil, ErrNoSubjectSource
	}

	keyUsageExt, err := encodeKeyUsageExtension(requestedKeyUsage)
	if err != nil {
		return nil, err
	}

	tmpl := &x509.CertificateRequest{
		Subject:            name,
		SignatureAlgorithm: x509.SHA256WithRSA,
		ExtraExtensions:    []pkix.Extension{keyUsageExt},
	}
	if existingCert != nil {
		for _, ext := range existingCert.Extensions {
			if ext.Id.Equal(asn1.ObjectIdentifier{2, 5, 29, 17}) {
				tmpl.ExtraExtensions = append(tmpl.ExtraExtensions, ext)
			}
		}
	}

	return x509.CreateCertificateRequest(rand.Reader, tmpl, key)
}

// encodeKeyUsageExtension ASN.1-encodes a KeyUsage bit string extension
// the way x509.CreateCertificate does internally for a full
// certificate, reused here because CertificateRequest has no built-in
// KeyUsage field.
func encodeKeyUsageExtension(usage x509.KeyUsage) (pkix.Extension, error) {
	var bits int
	for i := 0; i < 9; i++ {
		if usage&(1<<uint(i)) != 0 {
			bits = i + 1
		}
	}
	bitString := make([]byte, (bits+7)/8)
	for i := 0; i < bits; i++ {
		if usage&(1<<uint(i)) != 0 {
			bitString[i/8] |= 0x80 >> uint(i%8)
		}
	}

	value, err := asn1.Marshal(asn1.BitString{Bytes: bitString, BitLength: bits})
	if err != nil {
		return pkix.Extension{}, err
	}
	return pkix.Extension{Id: oidKeyUsage, Critical: true, Value: value}, nil
}

// parseSubject parses a comma-or-slash separated list of attr=value
// RDN pairs (CN=, O=, C=, ST=, L=) into a pkix.Name, the subject-string
// format OPC UA stack implementations commonly accept for CSR creation
// requests.
func parseSubject(subject string) pkix.Name {
	var name pkix.Name
	for _, part := range splitSubject(subject) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.ToUpper(strings.TrimSpace(kv[0]))
		value := strings.TrimSpace(kv[1])
		switch key {
		case "CN":
			name.CommonName = value
		case "O":
			name.Organization = append(name.Organization, value)
		case "C":
			name.Country = append(name.Country, value)
		case "ST":
			name.Province = append(name.Province, value)
		case "L":
			name.Locality = append(name.Locality, value)
		}
	}
	return name
}

// splitSubject splits on comma or slash, whichever the subject string
// uses -- OPC UA stacks accept either "CN=x,O=y" or "CN=x/O=y".
func splitSubject(subject string) []string {
	if strings.Contains(subject, "/") && !strings.Contains(subject, ",") {
		return strings.Split(subject, "/")
	}
	return strings.Split(subject, ",")
}
