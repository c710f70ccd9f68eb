package ua

// expanded NodeId encoding-byte flag bits layered on top of the base
// NodeId encoding byte, Part 6 §5.2.2.10.
const (
	flagNamespaceUri = 0x80
	flagServerIndex  = 0x40
	encodingMask     = 0x3F
)

// ExpandedNodeId augments a NodeId with an optional namespace URI (used
// instead of NamespaceIndex when the namespace table differs between
// communicating parties) and a server index for NodeIds from another
// server in an aggregating address space.
type ExpandedNodeId struct {
	NodeId
	NamespaceUri String
	ServerIndex  uint32
}

// EncodedSize returns the wire size including the optional trailing fields.
func (e ExpandedNodeId) EncodedSize() int {
	n := e.NodeId.EncodedSize()
	if e.NamespaceUri.Valid {
		n += e.NamespaceUri.EncodedSize()
	}
	if e.ServerIndex != 0 {
		n += 4
	}
	return n
}

// Encode writes the base NodeId encoding byte with the namespace-URI and
// server-index flag bits set as applicable, followed by the base NodeId
// body and the optional trailing fields.
func (e ExpandedNodeId) Encode(enc *Encoder) error {
	if err := e.NodeId.encodeWithFlags(enc, e.NamespaceUri.Valid, e.ServerIndex != 0); err != nil {
		return err
	}
	if e.NamespaceUri.Valid {
		if err := e.NamespaceUri.Encode(enc); err != nil {
			return err
		}
	}
	if e.ServerIndex != 0 {
		if err := enc.WriteUint32(e.ServerIndex); err != nil {
			return err
		}
	}
	return nil
}

// encodeWithFlags is NodeId.Encode with the two high flag bits of the
// leading encoding byte OR'd in.
func (n NodeId) encodeWithFlags(e *Encoder, hasNamespaceUri, hasServerIndex bool) error {
	var flags byte
	if hasNamespaceUri {
		flags |= flagNamespaceUri
	}
	if hasServerIndex {
		flags |= flagServerIndex
	}
	if flags == 0 {
		return n.Encode(e)
	}
	// Re-derive the base encoding byte by encoding into a throwaway buffer
	// is wasteful; instead encode the body directly per kind with the
	// flagged leading byte.
	switch n.Kind {
	case IdentifierNumeric:
		switch {
		case n.NamespaceIndex == 0 && n.Numeric <= 0xFF:
			if err := e.WriteByte(nodeIdTwoByte | flags); err != nil {
				return err
			}
			return e.WriteByte(byte(n.Numeric))
		case n.NamespaceIndex <= 0xFF && n.Numeric <= 0xFFFF:
			if err := e.WriteByte(nodeIdFourByte | flags); err != nil {
				return err
			}
			if err := e.WriteByte(byte(n.NamespaceIndex)); err != nil {
				return err
			}
			return e.WriteUint16(uint16(n.Numeric))
		default:
			if err := e.WriteByte(nodeIdNumeric | flags); err != nil {
				return err
			}
			if err := e.WriteUint16(n.NamespaceIndex); err != nil {
				return err
			}
			return e.WriteUint32(n.Numeric)
		}
	case IdentifierString:
		if err := e.WriteByte(nodeIdString | flags); err != nil {
			return err
		}
		if err := e.WriteUint16(n.NamespaceIndex); err != nil {
			return err
		}
		return NewString(n.Str).Encode(e)
	case IdentifierGuid:
		if err := e.WriteByte(nodeIdGuid | flags); err != nil {
			return err
		}
		if err := e.WriteUint16(n.NamespaceIndex); err != nil {
			return err
		}
		return n.Guid.Encode(e)
	case IdentifierOpaque:
		if err := e.WriteByte(nodeIdByteString | flags); err != nil {
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

// DecodeExpandedNodeId reads an ExpandedNodeId, peeling the namespace-URI
// and server-index flag bits off the leading encoding byte before
// decoding the base NodeId body.
func DecodeExpandedNodeId(d *Decoder) (ExpandedNodeId, error) {
	lead, err := d.ReadByte()
	if err != nil {
		return ExpandedNodeId{}, err
	}
	hasURI := lead&flagNamespaceUri != 0
	hasIdx := lead&flagServerIndex != 0
	base := lead & encodingMask

	nodeID, err := decodeNodeIdBody(d, base)
	if err != nil {
		return ExpandedNodeId{}, err
	}
	out := ExpandedNodeId{NodeId: nodeID}
	if hasURI {
		uri, err := DecodeString(d)
		if err != nil {
			return ExpandedNodeId{}, err
		}
		out.NamespaceUri = uri
	}
	if hasIdx {
		idx, err := d.ReadUint32()
		if err != nil {
			return ExpandedNodeId{}, err
		}
		out.ServerIndex = idx
	}
	return out, nil
}

// decodeNodeIdBody decodes the identifier body for a known encoding-byte
// base value (flag bits already stripped).
func decodeNodeIdBody(d *Decoder, base byte) (NodeId, error) {
	switch base {
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

// Equal compares NodeId identity plus the expanded fields.
func (e ExpandedNodeId) Equal(o ExpandedNodeId) bool {
	return e.NodeId.Equal(o.NodeId) && e.NamespaceUri.Equal(o.NamespaceUri) && e.ServerIndex == o.ServerIndex
}
