package ua

// String is the OPC UA Binary String: a UTF-8 byte sequence that
// distinguishes "null" from "empty", which a Go string cannot. Valid is
// false for the null string; Value is meaningless when Valid is false.
type String struct {
	Valid bool
	Value string
}

// NewString wraps s as a non-null String.
func NewString(s string) String { return String{Valid: true, Value: s} }

// NullString is the null String value.
var NullString = String{}

// IsNull reports whether this is the null String (length -1 on the wire).
func (s String) IsNull() bool { return !s.Valid }

// EncodedSize returns the wire size: 4 bytes for the length prefix plus the
// UTF-8 byte length when non-null.
func (s String) EncodedSize() int {
	if !s.Valid {
		return 4
	}
	return 4 + len(s.Value)
}

// Encode writes the length-prefixed UTF-8 bytes, or -1 for null.
func (s String) Encode(e *Encoder) error {
	if !s.Valid {
		return e.WriteInt32(-1)
	}
	if err := e.WriteInt32(int32(len(s.Value))); err != nil {
		return err
	}
	return e.WriteBytesRaw([]byte(s.Value))
}

// DecodeString reads a length-prefixed String, honoring MaxStringLength.
func DecodeString(d *Decoder) (String, error) {
	n, err := d.ReadInt32()
	if err != nil {
		return String{}, err
	}
	if n < 0 {
		return String{}, nil
	}
	if n == 0 {
		return NewString(""), nil
	}
	if d.limits.MaxStringLength > 0 && n > d.limits.MaxStringLength {
		return String{}, ErrEncodingLimitsExceeded
	}
	raw, err := d.ReadBytesRaw(int(n))
	if err != nil {
		return String{}, err
	}
	return NewString(string(raw)), nil
}

// Equal compares two Strings, treating null and null as equal and null as
// distinct from empty.
func (s String) Equal(o String) bool {
	if s.Valid != o.Valid {
		return false
	}
	return !s.Valid || s.Value == o.Value
}

// ByteString is the OPC UA Binary ByteString: like String but holding raw
// bytes rather than required-valid UTF-8.
type ByteString struct {
	Valid bool
	Value []byte
}

// NewByteString wraps b as a non-null ByteString. The slice is not copied.
func NewByteString(b []byte) ByteString { return ByteString{Valid: true, Value: b} }

// NullByteString is the null ByteString value.
var NullByteString = ByteString{}

// IsNull reports whether this is the null ByteString.
func (b ByteString) IsNull() bool { return !b.Valid }

// EncodedSize returns the wire size.
func (b ByteString) EncodedSize() int {
	if !b.Valid {
		return 4
	}
	return 4 + len(b.Value)
}

// Encode writes the length-prefixed raw bytes, or -1 for null.
func (b ByteString) Encode(e *Encoder) error {
	if !b.Valid {
		return e.WriteInt32(-1)
	}
	if err := e.WriteInt32(int32(len(b.Value))); err != nil {
		return err
	}
	return e.WriteBytesRaw(b.Value)
}

// DecodeByteString reads a length-prefixed ByteString, honoring
// MaxByteStringLength.
func DecodeByteString(d *Decoder) (ByteString, error) {
	n, err := d.ReadInt32()
	if err != nil {
		return ByteString{}, err
	}
	if n < 0 {
		return ByteString{}, nil
	}
	if n == 0 {
		return NewByteString([]byte{}), nil
	}
	if d.limits.MaxByteStringLength > 0 && n > d.limits.MaxByteStringLength {
		return ByteString{}, ErrEncodingLimitsExceeded
	}
	raw, err := d.ReadBytesRaw(int(n))
	if err != nil {
		return ByteString{}, err
	}
	return NewByteString(raw), nil
}

// Equal compares two ByteStrings byte for byte.
func (b ByteString) Equal(o ByteString) bool {
	if b.Valid != o.Valid {
		return false
	}
	if !b.Valid {
		return true
	}
	if len(b.Value) != len(o.Value) {
		return false
	}
	for i := range b.Value {
		if b.Value[i] != o.Value[i] {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the ByteString.
func (b ByteString) Copy() ByteString {
	if !b.Valid {
		return ByteString{}
	}
	out := make([]byte, len(b.Value))
	copy(out, b.Value)
	return ByteString{Valid: true, Value: out}
}

// XmlElement is encoded identically to ByteString: a fragment of XML held
// as raw (already-serialized) bytes.
type XmlElement = ByteString
