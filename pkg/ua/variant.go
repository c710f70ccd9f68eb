package ua

// BuiltinTypeID identifies the dynamic type carried by a Variant. Values
// 1..25 match the OPC UA Part 6 built-in type table; 0 is reserved for the
// empty Variant.
type BuiltinTypeID byte

const (
	TypeIDBoolean         BuiltinTypeID = 1
	TypeIDSByte           BuiltinTypeID = 2
	TypeIDByte            BuiltinTypeID = 3
	TypeIDInt16           BuiltinTypeID = 4
	TypeIDUInt16          BuiltinTypeID = 5
	TypeIDInt32           BuiltinTypeID = 6
	TypeIDUInt32          BuiltinTypeID = 7
	TypeIDInt64           BuiltinTypeID = 8
	TypeIDUInt64          BuiltinTypeID = 9
	TypeIDFloat           BuiltinTypeID = 10
	TypeIDDouble          BuiltinTypeID = 11
	TypeIDString          BuiltinTypeID = 12
	TypeIDDateTime        BuiltinTypeID = 13
	TypeIDGuid            BuiltinTypeID = 14
	TypeIDByteString      BuiltinTypeID = 15
	TypeIDXmlElement      BuiltinTypeID = 16
	TypeIDNodeId          BuiltinTypeID = 17
	TypeIDExpandedNodeId  BuiltinTypeID = 18
	TypeIDStatusCode      BuiltinTypeID = 19
	TypeIDQualifiedName   BuiltinTypeID = 20
	TypeIDLocalizedText   BuiltinTypeID = 21
	TypeIDExtensionObject BuiltinTypeID = 22
	TypeIDDataValue       BuiltinTypeID = 23
	TypeIDVariant         BuiltinTypeID = 24
	TypeIDDiagnosticInfo  BuiltinTypeID = 25
)

const (
	variantArrayMask = 0x80
	variantDimsMask  = 0x40
	variantTypeMask  = 0x3F
)

// Variant is a dynamically typed value: a built-in type id, a scalar-vs-
// array flag, an optional set of array dimensions for multidimensional
// arrays, and the payload itself. Value holds a scalar Go value matching
// TypeID when !IsArray, or a slice of such values when IsArray.
//
// Invariant: when ArrayDimensions is non-nil, the product of its entries
// equals len(Value.([]any)) -- the flat array length.
type Variant struct {
	TypeID          BuiltinTypeID
	IsArray         bool
	ArrayDimensions []int32
	Value           any // scalar of the Go type matching TypeID, or []any when IsArray
}

// NullVariant is the empty Variant: type id 0, no value.
var NullVariant = Variant{}

// IsNull reports whether this is the empty Variant.
func (v Variant) IsNull() bool { return v.TypeID == 0 && !v.IsArray && v.Value == nil }

func scalarEncodedSize(id BuiltinTypeID, v any) int {
	switch id {
	case TypeIDBoolean:
		return 1
	case TypeIDSByte, TypeIDByte:
		return 1
	case TypeIDInt16, TypeIDUInt16:
		return 2
	case TypeIDInt32, TypeIDUInt32, TypeIDFloat, TypeIDStatusCode:
		return 4
	case TypeIDInt64, TypeIDUInt64, TypeIDDouble, TypeIDDateTime:
		return 8
	case TypeIDGuid:
		return 16
	case TypeIDString:
		return v.(String).EncodedSize()
	case TypeIDByteString, TypeIDXmlElement:
		return v.(ByteString).EncodedSize()
	case TypeIDNodeId:
		return v.(NodeId).EncodedSize()
	case TypeIDExpandedNodeId:
		return v.(ExpandedNodeId).EncodedSize()
	case TypeIDQualifiedName:
		return v.(QualifiedName).EncodedSize()
	case TypeIDLocalizedText:
		return v.(LocalizedText).EncodedSize()
	case TypeIDExtensionObject:
		return v.(ExtensionObject).EncodedSize()
	default:
		return 0
	}
}

func encodeScalar(e *Encoder, id BuiltinTypeID, v any) error {
	switch id {
	case TypeIDBoolean:
		return e.WriteBool(v.(bool))
	case TypeIDSByte:
		return e.WriteByte(byte(v.(int8)))
	case TypeIDByte:
		return e.WriteByte(v.(byte))
	case TypeIDInt16:
		return e.WriteInt16(v.(int16))
	case TypeIDUInt16:
		return e.WriteUint16(v.(uint16))
	case TypeIDInt32:
		return e.WriteInt32(v.(int32))
	case TypeIDUInt32:
		return e.WriteUint32(v.(uint32))
	case TypeIDInt64:
		return e.WriteInt64(v.(int64))
	case TypeIDUInt64:
		return e.WriteUint64(v.(uint64))
	case TypeIDFloat:
		return e.WriteFloat32(v.(float32))
	case TypeIDDouble:
		return e.WriteFloat64(v.(float64))
	case TypeIDString:
		return v.(String).Encode(e)
	case TypeIDDateTime:
		return v.(DateTime).Encode(e)
	case TypeIDGuid:
		return v.(Guid).Encode(e)
	case TypeIDByteString, TypeIDXmlElement:
		return v.(ByteString).Encode(e)
	case TypeIDNodeId:
		return v.(NodeId).Encode(e)
	case TypeIDExpandedNodeId:
		return v.(ExpandedNodeId).Encode(e)
	case TypeIDStatusCode:
		return v.(StatusCode).Encode(e)
	case TypeIDQualifiedName:
		return v.(QualifiedName).Encode(e)
	case TypeIDLocalizedText:
		return v.(LocalizedText).Encode(e)
	case TypeIDExtensionObject:
		return v.(ExtensionObject).Encode(e)
	default:
		return ErrInvalidArgument
	}
}

func decodeScalar(d *Decoder, id BuiltinTypeID) (any, error) {
	switch id {
	case TypeIDBoolean:
		return d.ReadBool()
	case TypeIDSByte:
		b, err := d.ReadByte()
		return int8(b), err
	case TypeIDByte:
		return d.ReadByte()
	case TypeIDInt16:
		return d.ReadInt16()
	case TypeIDUInt16:
		return d.ReadUint16()
	case TypeIDInt32:
		return d.ReadInt32()
	case TypeIDUInt32:
		return d.ReadUint32()
	case TypeIDInt64:
		return d.ReadInt64()
	case TypeIDUInt64:
		return d.ReadUint64()
	case TypeIDFloat:
		return d.ReadFloat32()
	case TypeIDDouble:
		return d.ReadFloat64()
	case TypeIDString:
		return DecodeString(d)
	case TypeIDDateTime:
		return DecodeDateTime(d)
	case TypeIDGuid:
		return DecodeGuid(d)
	case TypeIDByteString, TypeIDXmlElement:
		return DecodeByteString(d)
	case TypeIDNodeId:
		return DecodeNodeId(d)
	case TypeIDExpandedNodeId:
		return DecodeExpandedNodeId(d)
	case TypeIDStatusCode:
		return DecodeStatusCode(d)
	case TypeIDQualifiedName:
		return DecodeQualifiedName(d)
	case TypeIDLocalizedText:
		return DecodeLocalizedText(d)
	case TypeIDExtensionObject:
		return DecodeExtensionObject(d)
	default:
		return nil, ErrInvalidEncoding
	}
}

// EncodedSize returns the wire size of the Variant.
func (v Variant) EncodedSize() int {
	if v.IsNull() {
		return 1
	}
	n := 1
	if v.IsArray {
		elems := v.Value.([]any)
		n += 4
		for _, el := range elems {
			n += scalarEncodedSize(v.TypeID, el)
		}
		if v.ArrayDimensions != nil {
			n += 4 + 4*len(v.ArrayDimensions)
		}
	} else {
		n += scalarEncodedSize(v.TypeID, v.Value)
	}
	return n
}

// Encode writes the mask byte, the array length and elements (if an
// array), the optional dimensions array, and the scalar payload.
func (v Variant) Encode(e *Encoder) error {
	if v.IsNull() {
		return e.WriteByte(0)
	}
	mask := byte(v.TypeID) & variantTypeMask
	if v.IsArray {
		mask |= variantArrayMask
		if v.ArrayDimensions != nil {
			mask |= variantDimsMask
		}
	}
	if err := e.WriteByte(mask); err != nil {
		return err
	}
	if v.IsArray {
		elems := v.Value.([]any)
		if err := e.WriteInt32(int32(len(elems))); err != nil {
			return err
		}
		for _, el := range elems {
			if err := encodeScalar(e, v.TypeID, el); err != nil {
				return err
			}
		}
		if v.ArrayDimensions != nil {
			if err := e.WriteInt32(int32(len(v.ArrayDimensions))); err != nil {
				return err
			}
			for _, dim := range v.ArrayDimensions {
				if err := e.WriteInt32(dim); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return encodeScalar(e, v.TypeID, v.Value)
}

// DecodeVariant reads a Variant, validating the array-dimensions-product
// invariant when dimensions are present.
func DecodeVariant(d *Decoder) (Variant, error) {
	mask, err := d.ReadByte()
	if err != nil {
		return Variant{}, err
	}
	if mask == 0 {
		return Variant{}, nil
	}
	id := BuiltinTypeID(mask & variantTypeMask)
	isArray := mask&variantArrayMask != 0
	hasDims := mask&variantDimsMask != 0

	out := Variant{TypeID: id, IsArray: isArray}
	if !isArray {
		v, err := decodeScalar(d, id)
		if err != nil {
			return Variant{}, err
		}
		out.Value = v
		return out, nil
	}

	n, err := d.ReadInt32()
	if err != nil {
		return Variant{}, err
	}
	if n < 0 {
		out.Value = []any(nil)
	} else {
		if d.limits.MaxArrayLength > 0 && n > d.limits.MaxArrayLength {
			return Variant{}, ErrEncodingLimitsExceeded
		}
		elems := make([]any, n)
		for i := range elems {
			v, err := decodeScalar(d, id)
			if err != nil {
				return Variant{}, err
			}
			elems[i] = v
		}
		out.Value = elems
	}

	if hasDims {
		dn, err := d.ReadInt32()
		if err != nil {
			return Variant{}, err
		}
		if d.limits.MaxArrayLength > 0 && dn > d.limits.MaxArrayLength {
			return Variant{}, ErrEncodingLimitsExceeded
		}
		dims := make([]int32, dn)
		product := int64(1)
		for i := range dims {
			dv, err := d.ReadInt32()
			if err != nil {
				return Variant{}, err
			}
			dims[i] = dv
			product *= int64(dv)
		}
		if elems, ok := out.Value.([]any); ok && product != int64(len(elems)) {
			return Variant{}, ErrInvalidEncoding
		}
		out.ArrayDimensions = dims
	}
	return out, nil
}
