// Package types implements the type descriptor registry: a process-wide,
// NodeId-keyed table of reflective type descriptors that the generic codec
// walks to encode and decode structured values without per-type generated
// code.
package types

import (
	"reflect"

	"github.com/marmos91/uacore/pkg/ua"
)

// Kind classifies how a descriptor's members are laid out on the wire.
type Kind int

const (
	// Primitive descriptors have no members; the codec delegates directly
	// to the built-in type kernel.
	Primitive Kind = iota
	// Enum descriptors wrap a signed 32-bit integer.
	Enum
	// Structure descriptors encode every member in declared order.
	Structure
	// StructureWithOptional descriptors begin with a u32 encoding mask
	// before the members; only non-optional members and present optional
	// members are visited.
	StructureWithOptional
	// Union descriptors begin with a 1-based u32 selector (0 = none)
	// before the single selected member.
	Union
)

func (k Kind) String() string {
	switch k {
	case Primitive:
		return "Primitive"
	case Enum:
		return "Enum"
	case Structure:
		return "Structure"
	case StructureWithOptional:
		return "StructureWithOptional"
	case Union:
		return "Union"
	default:
		return "Unknown"
	}
}

// Member describes one field of a Structure, StructureWithOptional or
// Union descriptor. FieldName names the Go struct field the codec reaches
// via reflect.Value.FieldByName -- there are no raw memory offsets in this
// implementation, unlike the C source this registry is modeled on.
type Member struct {
	Name       string // wire/service name, e.g. "RequestHeader"
	FieldName  string // Go struct field name, usually identical to Name
	TypeNodeID ua.NodeId
	IsArray    bool
	IsOptional bool
}

// Descriptor is the immutable, process-lifetime description of one OPC UA
// data type: its identity (NodeId plus the NodeId of its binary encoding),
// its Go representation, and, for structured kinds, its ordered members.
type Descriptor struct {
	NodeID           ua.NodeId
	BinaryEncodingID ua.NodeId
	Name             string
	Kind             Kind
	GoType           reflect.Type
	Members          []Member
}

// IsStructured reports whether this descriptor has members the codec must
// walk, as opposed to a Primitive or Enum leaf.
func (d *Descriptor) IsStructured() bool {
	return d.Kind == Structure || d.Kind == StructureWithOptional || d.Kind == Union
}
