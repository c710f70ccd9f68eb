package ua

// ExtensionObjectEncoding discriminates how an ExtensionObject's body is
// carried on the wire.
type ExtensionObjectEncoding byte

const (
	// ExtensionObjectNone carries no body; TypeId is the null NodeId.
	ExtensionObjectNone ExtensionObjectEncoding = 0x00
	// ExtensionObjectBinary carries a ByteString of the type's binary
	// encoding.
	ExtensionObjectBinary ExtensionObjectEncoding = 0x01
	// ExtensionObjectXML carries an XmlElement body.
	ExtensionObjectXML ExtensionObjectEncoding = 0x02
)

// ExtensionObject wraps an opaque or structured value behind a NodeId that
// identifies its binary (or XML) encoding. TypeId must reference the
// binary-encoding NodeId of the payload type, not the type's own data-type
// NodeId -- conflating the two is the most common interop bug this type
// guards against.
type ExtensionObject struct {
	TypeId   ExpandedNodeId
	Encoding ExtensionObjectEncoding
	Body     ByteString // used when Encoding == ExtensionObjectBinary or ExtensionObjectXML
}

// NullExtensionObject is the empty ExtensionObject: null TypeId, no body.
var NullExtensionObject = ExtensionObject{Encoding: ExtensionObjectNone}

// EncodedSize returns the wire size.
func (x ExtensionObject) EncodedSize() int {
	n := x.TypeId.EncodedSize() + 1
	if x.Encoding != ExtensionObjectNone {
		n += x.Body.EncodedSize()
	}
	return n
}

// Encode writes TypeId, the encoding byte, and the body when present.
func (x ExtensionObject) Encode(e *Encoder) error {
	if err := x.TypeId.Encode(e); err != nil {
		return err
	}
	if err := e.WriteByte(byte(x.Encoding)); err != nil {
		return err
	}
	if x.Encoding != ExtensionObjectNone {
		return x.Body.Encode(e)
	}
	return nil
}

// DecodeExtensionObject reads an ExtensionObject. Decoding recurses through
// the nesting-depth guard since an ExtensionObject's binary body may itself
// contain further ExtensionObjects once unwrapped by the generic codec.
func DecodeExtensionObject(d *Decoder) (ExtensionObject, error) {
	if err := d.EnterNesting(); err != nil {
		return ExtensionObject{}, err
	}
	defer d.ExitNesting()

	typeID, err := DecodeExpandedNodeId(d)
	if err != nil {
		return ExtensionObject{}, err
	}
	encByte, err := d.ReadByte()
	if err != nil {
		return ExtensionObject{}, err
	}
	enc := ExtensionObjectEncoding(encByte)
	out := ExtensionObject{TypeId: typeID, Encoding: enc}
	if enc != ExtensionObjectNone {
		body, err := DecodeByteString(d)
		if err != nil {
			return ExtensionObject{}, err
		}
		out.Body = body
	}
	return out, nil
}

// Equal compares two ExtensionObjects by TypeId, encoding and raw body.
func (x ExtensionObject) Equal(o ExtensionObject) bool {
	return x.TypeId.Equal(o.TypeId) && x.Encoding == o.Encoding && x.Body.Equal(o.Body)
}
