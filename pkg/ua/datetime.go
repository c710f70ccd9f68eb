package ua

import "time"

// epoch is 1601-01-01T00:00:00Z, the OPC UA / Windows FILETIME epoch.
var epoch = time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateTime is a count of 100-nanosecond intervals ("ticks") since the
// 1601-01-01 epoch, matching Windows FILETIME. Zero is a sentinel meaning
// "unspecified" per Part 6; it is not 1601-01-01 in practice, so callers
// should treat IsZero as "no value" rather than a real timestamp.
type DateTime int64

// NewDateTime converts a time.Time to DateTime ticks.
func NewDateTime(t time.Time) DateTime {
	return DateTime(t.UTC().Sub(epoch).Nanoseconds() / 100)
}

// Time converts DateTime ticks back to a time.Time in UTC.
func (d DateTime) Time() time.Time {
	return epoch.Add(time.Duration(d) * 100)
}

// IsZero reports whether this is the zero/unspecified sentinel.
func (d DateTime) IsZero() bool { return d == 0 }

// EncodedSize of a DateTime is always 8 bytes.
func (DateTime) EncodedSize() int { return 8 }

// Encode writes the tick count as a signed 64-bit little-endian integer.
func (d DateTime) Encode(e *Encoder) error { return e.WriteInt64(int64(d)) }

// DecodeDateTime reads a DateTime tick count.
func DecodeDateTime(d *Decoder) (DateTime, error) {
	v, err := d.ReadInt64()
	if err != nil {
		return 0, err
	}
	return DateTime(v), nil
}
