// Package policy implements the OPC UA security policy engine: six named
// policies, each exposing a fixed capability vector of asymmetric and
// symmetric sign/verify/encrypt/decrypt operations, certificate
// thumbprinting, nonce generation and key derivation, plus the
// process-lifetime Context that owns a local certificate and
// private key.
package policy
