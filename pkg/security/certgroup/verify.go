package certgroup

import (
	"bytes"
	"crypto/x509"
	"math/big"
	"strings"
	"time"

	"github.com/marmos91/uacore/internal/logger"
	"github.com/marmos91/uacore/pkg/ua"
)

// Verify checks a peer certificate (DER-encoded) against this group's
// trust list and returns the OPC UA status code describing the
// outcome. Any outcome other than ua.Good also appends peerDER to the
// rejected list, unless it is already present.
func (g *Group) Verify(peerDER []byte) ua.StatusCode {
	g.mu.Lock()
	defer g.mu.Unlock()

	code := g.verifyLocked(peerDER)
	if g.metrics != nil {
		g.metrics.RecordVerification(code.String())
	}
	return code
}

func (g *Group) verifyLocked(peerDER []byte) ua.StatusCode {
	// Step 1: empty trust list accepts with a warning, unless the
	// deployment has opted into failing closed.
	if g.trust.empty() {
		if g.RejectEmptyTrustList {
			logger.Warn("certificate rejected: trust list is empty and RejectEmptyTrustList is set")
			g.reject(peerDER)
			return ua.BadCertificateUntrusted
		}
		logger.Warn("certificate accepted with warning: trust list is empty")
		return ua.Good
	}

	// Step 2: lazily reload the parsed x509 stacks.
	if g.trust.reloadIfRequired() && g.metrics != nil {
		g.metrics.RecordTrustListReload()
	}

	peer, err := x509.ParseCertificate(peerDER)
	if err != nil {
		g.reject(peerDER)
		return ua.BadCertificateInvalid
	}

	// Step 4: a CA presented as an end-entity peer certificate is
	// always rejected, regardless of trust.
	if isCAKeyUsage(peer) {
		g.reject(peerDER)
		return ua.BadCertificateUseNotAllowed
	}

	// Step 3: build verification pools and check the chain.
	roots := x509.NewCertPool()
	intermediates := x509.NewCertPool()
	for _, c := range g.trust.trustedCerts {
		roots.AddCert(c)
	}
	for _, c := range g.trust.issuerCerts {
		intermediates.AddCert(c)
		roots.AddCert(c)
	}

	opts := x509.VerifyOptions{
		Roots:         roots,
		Intermediates: intermediates,
		CurrentTime:   time.Now(),
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	}

	chains, verifyErr := peer.Verify(opts)
	if verifyErr == nil {
		code, ok := g.checkRevocation(chains)
		if !ok || code != ua.Good {
			g.reject(peerDER)
		}
		return code
	}

	// Step 5: self-signed-in-chain, but SKI matches a trusted
	// certificate -- accept for interoperability (explicit-trust-of-
	// leaf rule).
	if isSelfSigned(peer) && g.skiMatchesTrusted(peer) {
		logger.Info("certificate accepted via self-signed SKI match", logger.KeyThumbprint, hexSKI(peer))
		return ua.Good
	}

	// Step 6: map the low-level verification error to an OPC UA code.
	code := mapVerifyError(verifyErr)
	g.reject(peerDER)
	return code
}

// reject appends peerDER to the rejected list and updates its size
// metric.
func (g *Group) reject(peerDER []byte) {
	g.rejected.add(peerDER)
	if g.metrics != nil {
		g.metrics.SetRejectedListSize(g.rejected.len())
	}
}

// checkRevocation walks each candidate chain's issuer/CRL pairs. It
// returns (Good, true) if at least one chain clears revocation
// checking outright, or the most specific failure code and false
// otherwise. Step 7: when a chain's leaf is self-issued and an issuer
// in it has no CRL on file, it returns
// (BadCertificateIssuerRevocationUnknown, true): nothing in the chain is
// known to be revoked, and Verify reports that code.
func (g *Group) checkRevocation(chains [][]*x509.Certificate) (ua.StatusCode, bool) {
	var bestFailure ua.StatusCode
	for _, chain := range chains {
		ok := true
		unknown := false
		for i := 0; i < len(chain)-1; i++ {
			cert, issuer := chain[i], chain[i+1]
			crl := g.crlFor(issuer)
			if crl == nil {
				unknown = true
				continue
			}
			if revoked(crl, cert.SerialNumber) {
				ok = false
				bestFailure = ua.BadCertificateRevoked
				break
			}
		}
		if !ok {
			continue
		}
		if unknown {
			if isSelfSigned(chain[0]) {
				return ua.BadCertificateIssuerRevocationUnknown, true
			}
			bestFailure = ua.BadCertificateRevocationUnknown
			continue
		}
		return ua.Good, true
	}
	if bestFailure == 0 {
		bestFailure = ua.BadCertificateChainIncomplete
	}
	return bestFailure, false
}

func (g *Group) crlFor(issuer *x509.Certificate) *x509.RevocationList {
	for _, crl := range g.trust.crls {
		if bytes.Equal(crl.RawIssuer, issuer.RawSubject) {
			return crl
		}
	}
	return nil
}

func revoked(crl *x509.RevocationList, serial *big.Int) bool {
	for _, entry := range crl.RevokedCertificateEntries {
		if entry.SerialNumber.Cmp(serial) == 0 {
			return true
		}
	}
	return false
}

func isCAKeyUsage(cert *x509.Certificate) bool {
	return cert.IsCA &&
		cert.KeyUsage&x509.KeyUsageCertSign != 0 &&
		cert.KeyUsage&x509.KeyUsageCRLSign != 0
}

func isSelfSigned(cert *x509.Certificate) bool {
	return bytes.Equal(cert.RawIssuer, cert.RawSubject)
}

func (g *Group) skiMatchesTrusted(cert *x509.Certificate) bool {
	if len(cert.SubjectKeyId) == 0 {
		return false
	}
	for _, trusted := range g.trust.trustedCerts {
		if bytes.Equal(trusted.SubjectKeyId, cert.SubjectKeyId) {
			return true
		}
	}
	return false
}

func hexSKI(cert *x509.Certificate) string {
	const hexDigits = "0123456789abcdef"
	var b strings.Builder
	for _, c := range cert.SubjectKeyId {
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xF])
	}
	return b.String()
}

func mapVerifyError(err error) ua.StatusCode {
	switch e := err.(type) {
	case x509.CertificateInvalidError:
		switch e.Reason {
		case x509.Expired:
			return ua.BadCertificateTimeInvalid
		case x509.IncompatibleUsage, x509.NotAuthorizedToSign:
			return ua.BadCertificateUseNotAllowed
		default:
			return ua.BadCertificateInvalid
		}
	case x509.UnknownAuthorityError:
		return ua.BadCertificateUntrusted
	case x509.HostnameError:
		return ua.BadCertificateUriInvalid
	default:
		if strings.Contains(err.Error(), "signature") {
			return ua.BadSecurityChecksFailed
		}
		return ua.BadCertificateChainIncomplete
	}
}

// VerifyApplicationURI checks that at least one of peer's Subject
// Alternative Name URIs contains expectedURI as a substring. Failure
// returns BadCertificateUriInvalid, downgraded to a warning (ua.Good)
// when RequireApplicationURIMatch is false.
func (g *Group) VerifyApplicationURI(peer *x509.Certificate, expectedURI string) ua.StatusCode {
	for _, uri := range peer.URIs {
		if strings.Contains(uri.String(), expectedURI) {
			return ua.Good
		}
	}
	if !g.RequireApplicationURIMatch {
		logger.Warn("application URI mismatch downgraded to warning", logger.KeyStatusCode, uint32(ua.BadCertificateUriInvalid))
		return ua.Good
	}
	return ua.BadCertificateUriInvalid
}
