package ua

const (
	dataValueValueMask             = 0x01
	dataValueStatusMask            = 0x02
	dataValueSourceTimestampMask   = 0x04
	dataValueServerTimestampMask   = 0x08
	dataValueSourcePicosecondsMask = 0x10
	dataValueServerPicosecondsMask = 0x20
)

// DataValue bundles a Variant with its quality and timing metadata, every
// field independently optional. A leading mask byte on the wire records
// which of the six fields are present.
type DataValue struct {
	Value             *Variant
	Status            *StatusCode
	SourceTimestamp    *DateTime
	SourcePicoseconds  *uint16
	ServerTimestamp    *DateTime
	ServerPicoseconds  *uint16
}

// EncodedSize returns the wire size including the leading mask byte.
func (dv DataValue) EncodedSize() int {
	n := 1
	if dv.Value != nil {
		n += dv.Value.EncodedSize()
	}
	if dv.Status != nil {
		n += 4
	}
	if dv.SourceTimestamp != nil {
		n += 8
	}
	if dv.SourcePicoseconds != nil {
		n += 2
	}
	if dv.ServerTimestamp != nil {
		n += 8
	}
	if dv.ServerPicoseconds != nil {
		n += 2
	}
	return n
}

// Encode writes the mask byte followed by whichever fields are present, in
// declared field order.
func (dv DataValue) Encode(e *Encoder) error {
	var mask byte
	if dv.Value != nil {
		mask |= dataValueValueMask
	}
	if dv.Status != nil {
		mask |= dataValueStatusMask
	}
	if dv.SourceTimestamp != nil {
		mask |= dataValueSourceTimestampMask
	}
	if dv.ServerTimestamp != nil {
		mask |= dataValueServerTimestampMask
	}
	if dv.SourcePicoseconds != nil {
		mask |= dataValueSourcePicosecondsMask
	}
	if dv.ServerPicoseconds != nil {
		mask |= dataValueServerPicosecondsMask
	}
	if err := e.WriteByte(mask); err != nil {
		return err
	}
	if dv.Value != nil {
		if err := dv.Value.Encode(e); err != nil {
			return err
		}
	}
	if dv.Status != nil {
		if err := (*dv.Status).Encode(e); err != nil {
			return err
		}
	}
	if dv.SourceTimestamp != nil {
		if err := (*dv.SourceTimestamp).Encode(e); err != nil {
			return err
		}
	}
	if dv.SourcePicoseconds != nil {
		if err := e.WriteUint16(*dv.SourcePicoseconds); err != nil {
			return err
		}
	}
	if dv.ServerTimestamp != nil {
		if err := (*dv.ServerTimestamp).Encode(e); err != nil {
			return err
		}
	}
	if dv.ServerPicoseconds != nil {
		if err := e.WriteUint16(*dv.ServerPicoseconds); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDataValue reads a DataValue.
func DecodeDataValue(d *Decoder) (DataValue, error) {
	mask, err := d.ReadByte()
	if err != nil {
		return DataValue{}, err
	}
	var dv DataValue
	if mask&dataValueValueMask != 0 {
		v, err := DecodeVariant(d)
		if err != nil {
			return DataValue{}, err
		}
		dv.Value = &v
	}
	if mask&dataValueStatusMask != 0 {
		s, err := DecodeStatusCode(d)
		if err != nil {
			return DataValue{}, err
		}
		dv.Status = &s
	}
	if mask&dataValueSourceTimestampMask != 0 {
		t, err := DecodeDateTime(d)
		if err != nil {
			return DataValue{}, err
		}
		dv.SourceTimestamp = &t
	}
	if mask&dataValueSourcePicosecondsMask != 0 {
		p, err := d.ReadUint16()
		if err != nil {
			return DataValue{}, err
		}
		dv.SourcePicoseconds = &p
	}
	if mask&dataValueServerTimestampMask != 0 {
		t, err := DecodeDateTime(d)
		if err != nil {
			return DataValue{}, err
		}
		dv.ServerTimestamp = &t
	}
	if mask&dataValueServerPicosecondsMask != 0 {
		p, err := d.ReadUint16()
		if err != nil {
			return DataValue{}, err
		}
		dv.ServerPicoseconds = &p
	}
	return dv, nil
}
