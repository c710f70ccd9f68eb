package ua

// IdentifierKind discriminates the four NodeId identifier encodings.
type IdentifierKind byte

const (
	IdentifierNumeric IdentifierKind = iota
	IdentifierString
	IdentifierGuid
	IdentifierOpaque
)

// NodeId identifies a node by namespace index plus one of four identifier
// encodings. Unlike the wire form, which picks among six encoding bytes to
// compact small namespace/numeric combinations, the Go representation
// always carries the full NamespaceIndex and lets Encode choose the
// compact form.
type NodeId struct {
	NamespaceIndex uint16
	Kind           IdentifierKind
	Numeric        uint32
	Str            string
	Guid           Guid
	Opaque         []byte
}

// NewNumericNodeId constructs a numeric NodeId.
func NewNumericNodeId(ns uint16, id uint32) NodeId {
	return NodeId{NamespaceIndex: ns, Kind: IdentifierNumeric, Numeric: id}
}

// NewStringNodeId constructs a string NodeId.
func NewStringNodeId(ns uint16, id string) NodeId {
	return NodeId{NamespaceIndex: ns, Kind: IdentifierString, Str: id}
}

// NewGuidNodeId constructs a Guid NodeId.
func NewGuidNodeId(ns uint16, id Guid) NodeId {
	return NodeId{NamespaceIndex: ns, Kind: IdentifierGuid, Guid: id}
}

// NewOpaqueNodeId constructs an opaque (ByteString) NodeId.
func NewOpaqueNodeId(ns uint16, id []byte) NodeId {
	return NodeId{NamespaceIndex: ns, Kind: IdentifierOpaque, Opaque: id}
}

// NullNodeId is the well-known null NodeId: namespace 0, numeric 0.
var NullNodeId = NewNumericNodeId(0, 0)

// IsNull reports whether this is the null NodeId.
func (n NodeId) IsNull() bool {
	return n.NamespaceIndex == 0 && n.Kind == IdentifierNumeric && n.Numeric == 0
}

// wire encoding-byte values for NodeId, Part 6 §5.2.2.9.
const (
	nodeIdTwoByte    = 0x00
	nodeIdFourByte   = 0x01
	nodeIdNumeric    = 0x02
	nodeIdString     = 0x03
	nodeIdGuid       = 0x04
	nodeIdByteString = 0x05
)

// EncodedSize returns the compact wire size for this NodeId.
func (n NodeId) EncodedSize() int {
	switch n.Kind {
	case IdentifierNumeric:
		switch {
		case n.NamespaceIndex == 0 && n.Numeric <= 0xFF:
			return 2
		case n.NamespaceIndex <= 0xFF && n.Numeric <= 0xFFFF:
			return 4
		default:
			return 7
		}
	case IdentifierString:
		return 1 + 2 + String{Valid: true, Value: n.Str}.EncodedSize()
	case IdentifierGuid:
		return 1 + 2 + 16
	case IdentifierOpaque:
		return 1 + 2 + ByteString{Valid: true, Value: n.Opaque}.EncodedSize()
	default:
		return 0
	}
}

// Encode writes the NodeId choosing the most compact applicable wire form.
func (n NodeId) Encode(e *Encoder) error {
	switch n.Kind {
	case IdentifierNumeric:
		switch {
		case n.NamespaceIndex == 0 && n.Numeric <= 0xFF:
			if err := e.WriteByte(nodeIdTwoByte); err != nil {
				return err
			}
			return e.WriteByte(byte(n.Numeric))
		case n.NamespaceIndex <= 0xFF && n.Numeric <= 0xFFFF:
			if err := e.WriteByte(nodeIdFourByte); err != nil {
				return err
			}
			if err := e.WriteByte(byte(n.NamespaceIndex)); err != nil {
				return err
			}
			return e.WriteUint16(uint16(n.Numeric))
		default:
			if err := e.WriteByte(nodeIdNumeric); err != nil {
				return err
			}
			if err := e.WriteUint16(n.NamespaceIndex); err != nil {
				return err
			}
			return e.WriteUint32(n.Numeric)
		}
	case IdentifierString:
		if err := e.WriteByte(nodeIdString); err != nil {
			return err
		}
		if err := e.WriteUint16(n.NamespaceIndex); err != nil {
			return err
		}
		return NewString(n.Str).Encode(e)
	case IdentifierGuid:
		if err := e.WriteByte(nodeIdGuid); err != nil {
			return err
		}
		if err := e.WriteUint16(n.NamespaceIndex); err != nil {
			return err
		}
		return n.Guid.Encode(e)
	case IdentifierOpaque:
		if err := e.WriteByte(nodeIdByteString); err != nil {
			return err
		}
		if err := e.WriteUint16(n.NamespaceIndex); err != nil {
			return err
		}
		return NewByteString(n.Opaque).Encode(e)
	default:
		return ErrInvalidArgument
	}
}

// DecodeNodeId reads a NodeId, dispatching on the leading encoding byte.
func DecodeNodeId(d *Decoder) (NodeId, error) {
	b, err := d.ReadByte()
	if err != nil {
		return NodeId{}, err
	}
	switch b {
	case nodeIdTwoByte:
		id, err := d.ReadByte()
		if err != nil {
			return NodeId{}, err
		}
		return NewNumericNodeId(0, uint32(id)), nil
	case nodeIdFourByte:
		ns, err := d.ReadByte()
		if err != nil {
			return NodeId{}, err
		}
		id, err := d.ReadUint16()
		if err != nil {
			return NodeId{}, err
		}
		return NewNumericNodeId(uint16(ns), uint32(id)), nil
	case nodeIdNumeric:
		ns, err := d.ReadUint16()
		if err != nil {
			return NodeId{}, err
		}
		id, err := d.ReadUint32()
		if err != nil {
			return NodeId{}, err
		}
		return NewNumericNodeId(ns, id), nil
	case nodeIdString:
		ns, err := d.ReadUint16()
		if err != nil {
			return NodeId{}, err
		}
		s, err := DecodeString(d)
		if err != nil {
			return NodeId{}, err
		}
		return NewStringNodeId(ns, s.Value), nil
	case nodeIdGuid:
		ns, err := d.ReadUint16()
		if err != nil {
			return NodeId{}, err
		}
		g, err := DecodeGuid(d)
		if err != nil {
			return NodeId{}, err
		}
		return NewGuidNodeId(ns, g), nil
	case nodeIdByteString:
		ns, err := d.ReadUint16()
		if err != nil {
			return NodeId{}, err
		}
		bs, err := DecodeByteString(d)
		if err != nil {
			return NodeId{}, err
		}
		return NewOpaqueNodeId(ns, bs.Value), nil
	default:
		return NodeId{}, ErrInvalidEncoding
	}
}

// Equal reports whether two NodeIds identify the same node.
func (n NodeId) Equal(o NodeId) bool {
	if n.NamespaceIndex != o.NamespaceIndex || n.Kind != o.Kind {
		return false
	}
	switch n.Kind {
	case IdentifierNumeric:
		return n.Numeric == o.Numeric
	case IdentifierString:
		return n.Str == o.Str
	case IdentifierGuid:
		return n.Guid.Equal(o.Guid)
	case IdentifierOpaque:
		return ByteString{Valid: true, Value: n.Opaque}.Equal(ByteString{Valid: true, Value: o.Opaque})
	default:
		return false
	}
}

// Less imposes a total order over NodeIds: first by identifier kind, then
// by namespace index, then by the identifier itself. It exists so NodeIds
// can key sorted structures and produce deterministic iteration order.
func (n NodeId) Less(o NodeId) bool {
	if n.Kind != o.Kind {
		return n.Kind < o.Kind
	}
	if n.NamespaceIndex != o.NamespaceIndex {
		return n.NamespaceIndex < o.NamespaceIndex
	}
	switch n.Kind {
	case IdentifierNumeric:
		return n.Numeric < o.Numeric
	case IdentifierString:
		return n.Str < o.Str
	case IdentifierGuid:
		return n.Guid.String() < o.Guid.String()
	case IdentifierOpaque:
		return string(n.Opaque) < string(o.Opaque)
	default:
		return false
	}
}
