package policy

import (
	"crypto/rsa"
	"crypto/x509"
	"sync"

	"github.com/marmos91/uacore/internal/logger"
)

// Context owns a node's local application instance certificate and
// private key for the lifetime of that installation. It is shared by
// every channel.Context opened against this application; updating the
// certificate/key pair does not disturb channels already running with
// previously derived symmetric keys.
type Context struct {
	mu sync.RWMutex

	policy     Policy
	certDER    []byte
	cert       *x509.Certificate
	privateKey *rsa.PrivateKey
	thumbprint [20]byte
}

// Create builds a Context for policy, parsing localCertDER and
// localPrivateKey and caching the certificate's thumbprint. It fails if
// the key is nil or the certificate does not parse.
func Create(policy Policy, localCertDER []byte, localPrivateKey *rsa.PrivateKey) (*Context, error) {
	if localPrivateKey == nil {
		return nil, ErrNoPrivateKey
	}
	cert, err := x509.ParseCertificate(localCertDER)
	if err != nil {
		return nil, err
	}

	c := &Context{
		policy:     policy,
		certDER:    localCertDER,
		cert:       cert,
		privateKey: localPrivateKey,
		thumbprint: policy.MakeThumbprint(localCertDER),
	}
	logger.Debug("security policy context created", logger.KeyPolicyURI, policy.URI())
	return c, nil
}

// Policy returns the Policy this context was created against.
func (c *Context) Policy() Policy { return c.policy }

// Certificate returns the currently installed local certificate.
func (c *Context) Certificate() *x509.Certificate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cert
}

// CertificateDER returns the currently installed local certificate in
// DER form.
func (c *Context) CertificateDER() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.certDER
}

// PrivateKey returns the currently installed local private key.
func (c *Context) PrivateKey() *rsa.PrivateKey {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.privateKey
}

// Thumbprint returns the SHA-1 thumbprint of the currently installed
// local certificate.
func (c *Context) Thumbprint() [20]byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.thumbprint
}

// UpdateCertificateAndPrivateKey atomically replaces the local
// certificate and private key, recomputing the thumbprint. Channels
// already open keep using their previously derived symmetric keys
// until their next rekey; callers must externally serialise this
// against concurrent use of the same channel.
func (c *Context) UpdateCertificateAndPrivateKey(newCertDER []byte, newPrivateKey *rsa.PrivateKey) error {
	if newPrivateKey == nil {
		return ErrNoPrivateKey
	}
	cert, err := x509.ParseCertificate(newCertDER)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.certDER = newCertDER
	c.cert = cert
	c.privateKey = newPrivateKey
	c.thumbprint = c.policy.MakeThumbprint(newCertDER)
	logger.Info("security policy context certificate rotated", logger.KeyPolicyURI, c.policy.URI())
	return nil
}

// Clear releases the installed private key. A cleared Context cannot
// sign or decrypt until UpdateCertificateAndPrivateKey installs a new
// key.
func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.privateKey = nil
	c.cert = nil
	c.certDER = nil
	c.thumbprint = [20]byte{}
}
