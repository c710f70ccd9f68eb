// Package channel holds the per-secure-channel symmetric key state
// machine: Fresh, through KeysInstalled, through any number of Rekey
// cycles, to Closed. All signing and encryption on a channel routes
// through a Context so that key lifecycle and capability sizing stay
// in one place.
package channel
