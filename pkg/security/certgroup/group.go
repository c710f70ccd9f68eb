package certgroup

import (
	"sync"

	"github.com/marmos91/uacore/internal/logger"
	"github.com/marmos91/uacore/pkg/metrics"
)

const (
	// DefaultMaxTrustListSize is the default cap on the combined number
	// of trusted + issuer certificates, per spec.
	DefaultMaxTrustListSize = 65535
	// DefaultMaxRejectedListSize is the default cap on the rejected
	// list's FIFO length.
	DefaultMaxRejectedListSize = 100
)

// Group owns a trust list, a rejected list, and the verification
// algorithm that checks peer certificates against them. All mutators
// and Verify are serialised by a single mutex; a mutation sets a
// reload-required flag that the next Verify call drains under the same
// lock, mirroring this codebase's registry locking pattern.
type Group struct {
	mu sync.Mutex

	trust    *trustList
	rejected *rejectedList

	maxTrustListSize int

	// RejectEmptyTrustList flips the default "accept with warning"
	// behaviour for an empty trust list to an outright rejection, for
	// deployments that would rather fail closed. Off by default.
	RejectEmptyTrustList bool

	// RequireApplicationURIMatch downgrades an application-URI mismatch
	// from a hard failure to a warning when false.
	RequireApplicationURIMatch bool

	metrics metrics.SecurityMetrics
}

// NewGroup creates an empty Certificate Group with the given capacity
// limits. A zero value for either falls back to its default.
func NewGroup(maxTrustListSize, maxRejectedListSize int) *Group {
	if maxTrustListSize <= 0 {
		maxTrustListSize = DefaultMaxTrustListSize
	}
	if maxRejectedListSize <= 0 {
		maxRejectedListSize = DefaultMaxRejectedListSize
	}
	return &Group{
		trust:                      newTrustList(),
		rejected:                   newRejectedList(maxRejectedListSize),
		maxTrustListSize:           maxTrustListSize,
		RequireApplicationURIMatch: true,
		metrics:                    metrics.NewSecurityMetrics(),
	}
}

// SetMetrics installs a metrics recorder, replacing whatever
// NewGroup picked up from the process-wide registry at construction
// time. Passing nil disables metrics for this group.
func (g *Group) SetMetrics(m metrics.SecurityMetrics) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.metrics = m
}

func (g *Group) trustListSize() int {
	return len(g.trust.trustedDER) + len(g.trust.issuerDER)
}

// AddTrusted adds a trusted end-entity or CA certificate to the trust
// list.
func (g *Group) AddTrusted(der []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.trustListSize() >= g.maxTrustListSize {
		return ErrTrustListFull
	}
	g.trust.addTrusted(der)
	logger.Debug("certificate added to trust list", logger.KeyTrustedCount, g.trustListSize())
	return nil
}

// AddIssuer adds an issuer (CA) certificate used to build chains but
// not itself directly trusted as a peer identity.
func (g *Group) AddIssuer(der []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.trustListSize() >= g.maxTrustListSize {
		return ErrTrustListFull
	}
	g.trust.addIssuer(der)
	return nil
}

// AddCRL adds a certificate revocation list in DER form.
func (g *Group) AddCRL(der []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.trust.addCRL(der)
}

// RemoveTrusted removes a certificate from the trusted set by byte
// identity.
func (g *Group) RemoveTrusted(der []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.trust.removeTrusted(der) {
		return ErrNotFound
	}
	return nil
}

// RemoveIssuer removes a certificate from the issuer set by byte
// identity.
func (g *Group) RemoveIssuer(der []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.trust.removeIssuer(der) {
		return ErrNotFound
	}
	return nil
}

// TrustedCount returns the number of trusted end-entity/CA certificates
// currently held.
func (g *Group) TrustedCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.trust.trustedDER)
}

// IssuerCount returns the number of issuer-only certificates currently
// held.
func (g *Group) IssuerCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.trust.issuerDER)
}

// RejectedCertificates returns a snapshot of the rejected list.
func (g *Group) RejectedCertificates() [][]byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rejected.all()
}

// RejectedCount returns the current length of the rejected list.
func (g *Group) RejectedCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rejected.len()
}
