// Package certgroup implements a Certificate Group: a trust list of
// peer and issuer certificates and CRLs, a bounded rejected-certificate
// list, and the peer certificate verification algorithm that accepts
// or rejects against them.
package certgroup
