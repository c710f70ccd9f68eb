package ua

const (
	diagSymbolicIdMask          = 0x01
	diagNamespaceUriMask        = 0x02
	diagLocalizedTextMask       = 0x04
	diagLocaleMask              = 0x08
	diagAdditionalInfoMask      = 0x10
	diagInnerStatusCodeMask     = 0x20
	diagInnerDiagnosticInfoMask = 0x40
)

// DiagnosticInfo carries extended diagnostic context for a StatusCode: a
// set of indices into a caller-maintained string table, a free-text
// additional-info string, an inner status code, and an optional inner
// DiagnosticInfo describing the cause below it. The inner chain is
// self-referential, so decode enforces the decoder's nesting-depth limit.
type DiagnosticInfo struct {
	SymbolicId        *int32
	NamespaceUri      *int32
	LocalizedText     *int32
	Locale            *int32
	AdditionalInfo    *String
	InnerStatusCode   *StatusCode
	InnerDiagnosticInfo *DiagnosticInfo
}

// EncodedSize returns the wire size including the leading mask byte.
func (di DiagnosticInfo) EncodedSize() int {
	n := 1
	if di.SymbolicId != nil {
		n += 4
	}
	if di.NamespaceUri != nil {
		n += 4
	}
	if di.LocalizedText != nil {
		n += 4
	}
	if di.Locale != nil {
		n += 4
	}
	if di.AdditionalInfo != nil {
		n += di.AdditionalInfo.EncodedSize()
	}
	if di.InnerStatusCode != nil {
		n += 4
	}
	if di.InnerDiagnosticInfo != nil {
		n += di.InnerDiagnosticInfo.EncodedSize()
	}
	return n
}

// Encode writes the mask byte followed by whichever fields are present, in
// declared field order.
func (di DiagnosticInfo) Encode(e *Encoder) error {
	var mask byte
	if di.SymbolicId != nil {
		mask |= diagSymbolicIdMask
	}
	if di.NamespaceUri != nil {
		mask |= diagNamespaceUriMask
	}
	if di.LocalizedText != nil {
		mask |= diagLocalizedTextMask
	}
	if di.Locale != nil {
		mask |= diagLocaleMask
	}
	if di.AdditionalInfo != nil {
		mask |= diagAdditionalInfoMask
	}
	if di.InnerStatusCode != nil {
		mask |= diagInnerStatusCodeMask
	}
	if di.InnerDiagnosticInfo != nil {
		mask |= diagInnerDiagnosticInfoMask
	}
	if err := e.WriteByte(mask); err != nil {
		return err
	}
	if di.SymbolicId != nil {
		if err := e.WriteInt32(*di.SymbolicId); err != nil {
			return err
		}
	}
	if di.NamespaceUri != nil {
		if err := e.WriteInt32(*di.NamespaceUri); err != nil {
			return err
		}
	}
	if di.LocalizedText != nil {
		if err := e.WriteInt32(*di.LocalizedText); err != nil {
			return err
		}
	}
	if di.Locale != nil {
		if err := e.WriteInt32(*di.Locale); err != nil {
			return err
		}
	}
	if di.AdditionalInfo != nil {
		if err := di.AdditionalInfo.Encode(e); err != nil {
			return err
		}
	}
	if di.InnerStatusCode != nil {
		if err := (*di.InnerStatusCode).Encode(e); err != nil {
			return err
		}
	}
	if di.InnerDiagnosticInfo != nil {
		if err := di.InnerDiagnosticInfo.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDiagnosticInfo reads a DiagnosticInfo, recursing into the inner
// DiagnosticInfo (if present) under the decoder's nesting-depth guard.
func DecodeDiagnosticInfo(d *Decoder) (DiagnosticInfo, error) {
	if err := d.EnterNesting(); err != nil {
		return DiagnosticInfo{}, err
	}
	defer d.ExitNesting()

	mask, err := d.ReadByte()
	if err != nil {
		return DiagnosticInfo{}, err
	}
	var di DiagnosticInfo
	if mask&diagSymbolicIdMask != 0 {
		v, err := d.ReadInt32()
		if err != nil {
			return DiagnosticInfo{}, err
		}
		di.SymbolicId = &v
	}
	if mask&diagNamespaceUriMask != 0 {
		v, err := d.ReadInt32()
		if err != nil {
			return DiagnosticInfo{}, err
		}
		di.NamespaceUri = &v
	}
	if mask&diagLocalizedTextMask != 0 {
		v, err := d.ReadInt32()
		if err != nil {
			return DiagnosticInfo{}, err
		}
		di.LocalizedText = &v
	}
	if mask&diagLocaleMask != 0 {
		v, err := d.ReadInt32()
		if err != nil {
			return DiagnosticInfo{}, err
		}
		di.Locale = &v
	}
	if mask&diagAdditionalInfoMask != 0 {
		s, err := DecodeString(d)
		if err != nil {
			return DiagnosticInfo{}, err
		}
		di.AdditionalInfo = &s
	}
	if mask&diagInnerStatusCodeMask != 0 {
		s, err := DecodeStatusCode(d)
		if err != nil {
			return DiagnosticInfo{}, err
		}
		di.InnerStatusCode = &s
	}
	if mask&diagInnerDiagnosticInfoMask != 0 {
		inner, err := DecodeDiagnosticInfo(d)
		if err != nil {
			return DiagnosticInfo{}, err
		}
		di.InnerDiagnosticInfo = &inner
	}
	return di, nil
}
