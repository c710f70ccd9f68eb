package ua

// StatusCode is the OPC UA Binary unsigned 32-bit result code. The high two
// bits classify severity (Good 00, Uncertain 01, Bad 10); the remainder of
// the top 16 bits identifies the specific code.
type StatusCode uint32

// Good is the canonical success code; its value is always zero so that a
// zero-valued StatusCode field decodes/encodes as "no error" without any
// special casing.
const Good StatusCode = 0

// Status codes referenced directly by this module's error taxonomy
// (spec §7). Values match the OPC UA Part 6 status code table.
const (
	BadSecurityChecksFailed             StatusCode = 0x80130000
	BadCertificateInvalid                StatusCode = 0x80120000
	BadCertificateTimeInvalid             StatusCode = 0x80140000
	BadCertificateRevoked                 StatusCode = 0x801D0000
	BadCertificateRevocationUnknown       StatusCode = 0x801B0000
	BadCertificateIssuerRevocationUnknown StatusCode = 0x801C0000
	BadCertificateUntrusted               StatusCode = 0x801A0000
	BadCertificateUseNotAllowed           StatusCode = 0x80180000
	BadCertificateUriInvalid              StatusCode = 0x80170000
	BadCertificateChainIncomplete         StatusCode = 0x810D0000
	BadInvalidArgument                    StatusCode = 0x80AB0000
	BadOutOfMemory                        StatusCode = 0x80030000
	BadDecodingError                      StatusCode = 0x80070000
	BadEncodingError                      StatusCode = 0x80060000
	BadEncodingLimitsExceeded             StatusCode = 0x80080000
)

// IsGood reports whether the top two bits of the code are 00 (success).
func (s StatusCode) IsGood() bool { return s&0xC0000000 == 0 }

// IsBad reports whether the top two bits of the code are 10 (failure).
func (s StatusCode) IsBad() bool { return s&0xC0000000 == 0x80000000 }

// IsUncertain reports whether the top two bits of the code are 01.
func (s StatusCode) IsUncertain() bool { return s&0xC0000000 == 0x40000000 }

func (s StatusCode) String() string {
	switch s {
	case Good:
		return "Good"
	case BadSecurityChecksFailed:
		return "BadSecurityChecksFailed"
	case BadCertificateInvalid:
		return "BadCertificateInvalid"
	case BadCertificateTimeInvalid:
		return "BadCertificateTimeInvalid"
	case BadCertificateRevoked:
		return "BadCertificateRevoked"
	case BadCertificateRevocationUnknown:
		return "BadCertificateRevocationUnknown"
	case BadCertificateIssuerRevocationUnknown:
		return "BadCertificateIssuerRevocationUnknown"
	case BadCertificateUntrusted:
		return "BadCertificateUntrusted"
	case BadCertificateUseNotAllowed:
		return "BadCertificateUseNotAllowed"
	case BadCertificateUriInvalid:
		return "BadCertificateUriInvalid"
	case BadCertificateChainIncomplete:
		return "BadCertificateChainIncomplete"
	case BadInvalidArgument:
		return "BadInvalidArgument"
	case BadOutOfMemory:
		return "BadOutOfMemory"
	case BadDecodingError:
		return "BadDecodingError"
	case BadEncodingError:
		return "BadEncodingError"
	case BadEncodingLimitsExceeded:
		return "BadEncodingLimitsExceeded"
	default:
		return "Unknown"
	}
}

// EncodedSize of a StatusCode is always 4 bytes.
func (StatusCode) EncodedSize() int { return 4 }

// Encode writes the status code as an unsigned 32-bit little-endian value.
func (s StatusCode) Encode(e *Encoder) error { return e.WriteUint32(uint32(s)) }

// DecodeStatusCode reads an unsigned 32-bit little-endian status code.
func DecodeStatusCode(d *Decoder) (StatusCode, error) {
	v, err := d.ReadUint32()
	if err != nil {
		return 0, err
	}
	return StatusCode(v), nil
}
