// Package codec implements the generic, descriptor-driven encoder and
// decoder: a pair of functions that walk a type descriptor's member list
// via reflection to encode any registered structure to, or decode it from,
// an OPC UA Binary byte stream.
package codec
