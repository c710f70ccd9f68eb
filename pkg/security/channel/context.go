package channel

import (
	"crypto/x509"
	"sync"

	"github.com/google/uuid"

	"github.com/marmos91/uacore/internal/logger"
	"github.com/marmos91/uacore/pkg/security/policy"
	"github.com/marmos91/uacore/pkg/ua"
)

// Context holds one secure channel's symmetric key material: local and
// remote signing keys, encryption keys, and IVs, all sized by the
// policy this channel was opened with. It references the shared
// policy.Context that owns the local private key, and tracks the
// channel's position in the Fresh -> KeysInstalled -> (Rekey ->
// KeysInstalled)* -> Closed state machine. A ChannelID (random v4 UUID)
// exists purely for log correlation.
type Context struct {
	mu sync.RWMutex

	policyCtx *policy.Context
	pol       policy.Policy

	remoteCert *x509.Certificate

	state State

	localSigningKey, remoteSigningKey     []byte
	localEncryptingKey, remoteEncryptingKey []byte
	localIV, remoteIV                     []byte

	channelID string
}

// NewContext creates a Fresh channel context for remoteCert, backed by
// policyCtx. No crypto operation succeeds until Install (or Rekey)
// populates the key material.
func NewContext(policyCtx *policy.Context, remoteCert *x509.Certificate) *Context {
	c := &Context{
		policyCtx:  policyCtx,
		pol:        policyCtx.Policy(),
		remoteCert: remoteCert,
		state:      Fresh,
		channelID:  uuid.NewString(),
	}
	logger.Debug("channel context created", logger.KeyChannelID, c.channelID, logger.KeyPolicyURI, c.pol.URI())
	return c
}

// ChannelID returns the random correlation id assigned at creation.
func (c *Context) ChannelID() string { return c.channelID }

// State returns the channel's current key-lifecycle state.
func (c *Context) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// RemoteCertificate returns the peer certificate this channel was
// opened against.
func (c *Context) RemoteCertificate() *x509.Certificate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.remoteCert
}

// CompareCertificate reports whether peerCert is byte-identical to the
// certificate this channel was opened against.
func (c *Context) CompareCertificate(peerCert *x509.Certificate) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.remoteCert == nil || peerCert == nil {
		return c.remoteCert == peerCert
	}
	return string(c.remoteCert.Raw) == string(peerCert.Raw)
}

// Install sets the four symmetric key buffers and both IVs in one
// linearised step and transitions Fresh -> KeysInstalled. Calling it
// again on an already-installed channel is a rekey: see Rekey.
func (c *Context) Install(localSigningKey, remoteSigningKey, localEncryptingKey, remoteEncryptingKey, localIV, remoteIV []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.localSigningKey = localSigningKey
	c.remoteSigningKey = remoteSigningKey
	c.localEncryptingKey = localEncryptingKey
	c.remoteEncryptingKey = remoteEncryptingKey
	c.localIV = localIV
	c.remoteIV = remoteIV
	c.state = KeysInstalled
	logger.Debug("channel keys installed", logger.KeyChannelID, c.channelID, logger.KeyChannelState, c.state.String())
}

// Rekey atomically replaces the symmetric key material of a channel
// already in KeysInstalled state with a new set derived from a fresh
// nonce exchange; the state remains KeysInstalled throughout.
func (c *Context) Rekey(localSigningKey, remoteSigningKey, localEncryptingKey, remoteEncryptingKey, localIV, remoteIV []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Closed {
		return ErrAlreadyClosed
	}
	c.localSigningKey = localSigningKey
	c.remoteSigningKey = remoteSigningKey
	c.localEncryptingKey = localEncryptingKey
	c.remoteEncryptingKey = remoteEncryptingKey
	c.localIV = localIV
	c.remoteIV = remoteIV
	c.state = KeysInstalled
	logger.Info("channel rekeyed", logger.KeyChannelID, c.channelID)
	return nil
}

// Close releases the channel's key material and transitions to Closed.
// Subsequent crypto operations fail with BadSecurityChecksFailed.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	zero(c.localSigningKey)
	zero(c.remoteSigningKey)
	zero(c.localEncryptingKey)
	zero(c.remoteEncryptingKey)
	zero(c.localIV)
	zero(c.remoteIV)
	c.state = Closed
	logger.Debug("channel context closed", logger.KeyChannelID, c.channelID)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func (c *Context) requireKeysInstalled() error {
	if c.state != KeysInstalled {
		return ua.NewError(ua.BadSecurityChecksFailed, "channel: crypto operation attempted in state "+c.state.String())
	}
	return nil
}

// Sign computes the local symmetric signature over message.
func (c *Context) Sign(message []byte) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.requireKeysInstalled(); err != nil {
		return nil, err
	}
	return c.pol.SymSign(message, c.localSigningKey)
}

// Verify checks mac over message against the remote symmetric signing
// key.
func (c *Context) Verify(message, mac []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.requireKeysInstalled(); err != nil {
		return err
	}
	return c.pol.SymVerify(message, c.remoteSigningKey, mac)
}

// Encrypt encrypts data with the local encrypting key and IV.
func (c *Context) Encrypt(data []byte) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.requireKeysInstalled(); err != nil {
		return nil, err
	}
	return c.pol.SymEncrypt(data, c.localEncryptingKey, c.localIV)
}

// Decrypt decrypts data with the remote encrypting key and IV.
func (c *Context) Decrypt(data []byte) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.requireKeysInstalled(); err != nil {
		return nil, err
	}
	return c.pol.SymDecrypt(data, c.remoteEncryptingKey, c.remoteIV)
}

// LocalSignatureSize returns the byte length of a signature produced
// by Sign.
func (c *Context) LocalSignatureSize() int { return c.pol.SymmetricSignatureSize() }

// KeySize returns the symmetric key length this channel's policy
// requires.
func (c *Context) KeySize() int { return c.pol.SymmetricKeySize() }

// BlockSize returns the cipher block size this channel's policy
// requires.
func (c *Context) BlockSize() int { return c.pol.SymmetricBlockSize() }

// PlaintextBlockSize returns the largest chunk of plaintext that
// encrypts to one asymmetric ciphertext block under the remote
// certificate's RSA key size, used when encrypting the OpenSecureChannel
// handshake body asymmetrically rather than symmetrically.
func (c *Context) PlaintextBlockSize(paddingOverhead int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.remoteCert == nil {
		return 0
	}
	pub, ok := c.remoteCert.PublicKey.(interface{ Size() int })
	if !ok {
		return 0
	}
	return pub.Size() - paddingOverhead
}
