package ua

import (
	"encoding/hex"
	"fmt"
)

// Guid is the OPC UA Binary Guid: a 128-bit identifier encoded as
// Data1 (uint32), Data2 (uint16), Data3 (uint16), Data4 (8 raw bytes),
// each field little-endian except Data4 which is a raw byte sequence.
type Guid struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// EncodedSize of a Guid is always 16 bytes.
func (Guid) EncodedSize() int { return 16 }

// Encode writes the four Guid fields in wire order.
func (g Guid) Encode(e *Encoder) error {
	if err := e.WriteUint32(g.Data1); err != nil {
		return err
	}
	if err := e.WriteUint16(g.Data2); err != nil {
		return err
	}
	if err := e.WriteUint16(g.Data3); err != nil {
		return err
	}
	return e.WriteBytesRaw(g.Data4[:])
}

// DecodeGuid reads a Guid.
func DecodeGuid(d *Decoder) (Guid, error) {
	var g Guid
	var err error
	if g.Data1, err = d.ReadUint32(); err != nil {
		return Guid{}, err
	}
	if g.Data2, err = d.ReadUint16(); err != nil {
		return Guid{}, err
	}
	if g.Data3, err = d.ReadUint16(); err != nil {
		return Guid{}, err
	}
	raw, err := d.ReadBytesRaw(8)
	if err != nil {
		return Guid{}, err
	}
	copy(g.Data4[:], raw)
	return g, nil
}

// Equal compares two Guids field by field.
func (g Guid) Equal(o Guid) bool {
	return g.Data1 == o.Data1 && g.Data2 == o.Data2 && g.Data3 == o.Data3 && g.Data4 == o.Data4
}

// String renders the Guid in the canonical
// 8-4-4-4-12 hyphenated hex form.
func (g Guid) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// ParseGuid parses the canonical 8-4-4-4-12 hyphenated hex form back into a
// Guid.
func ParseGuid(s string) (Guid, error) {
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return Guid{}, ErrInvalidArgument
	}
	var g Guid
	b, err := hex.DecodeString(s[0:8])
	if err != nil {
		return Guid{}, ErrInvalidArgument
	}
	g.Data1 = uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	b, err = hex.DecodeString(s[9:13])
	if err != nil {
		return Guid{}, ErrInvalidArgument
	}
	g.Data2 = uint16(b[0])<<8 | uint16(b[1])

	b, err = hex.DecodeString(s[14:18])
	if err != nil {
		return Guid{}, ErrInvalidArgument
	}
	g.Data3 = uint16(b[0])<<8 | uint16(b[1])

	b, err = hex.DecodeString(s[19:23] + s[24:36])
	if err != nil {
		return Guid{}, ErrInvalidArgument
	}
	copy(g.Data4[:], b)
	return g, nil
}
