package ua

import (
	"encoding/binary"
	"io"
	"math"
)

// DefaultLimits returns the decoder limits a channel uses when the host
// application has not configured anything more restrictive. These mirror
// the defaults most OPC UA stacks ship with.
func DefaultLimits() Limits {
	return Limits{
		MaxArrayLength:      65535,
		MaxStringLength:      1 << 20, // 1 MiB
		MaxByteStringLength:  1 << 20,
		MaxMessageSize:       1 << 22, // 4 MiB
		MaxNestingDepth:      100,
	}
}

// Limits bounds what a Decoder will allocate for before failing with
// ErrEncodingLimitsExceeded. Zero fields are treated as "unbounded" only
// when explicitly constructed that way -- DefaultLimits should be the
// normal starting point.
type Limits struct {
	MaxArrayLength      int32
	MaxStringLength      int32
	MaxByteStringLength  int32
	MaxMessageSize       int32
	MaxNestingDepth      int32
}

// Encoder writes OPC UA Binary primitives to an io.Writer. Encode never
// retains the writer after the call returns, and never holds a pointer into
// caller-owned memory.
type Encoder struct {
	w io.Writer
	n int
}

// NewEncoder wraps w for OPC UA Binary encoding.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// Written returns the number of bytes written so far through this encoder.
func (e *Encoder) Written() int { return e.n }

func (e *Encoder) write(p []byte) error {
	n, err := e.w.Write(p)
	e.n += n
	if err != nil {
		return err
	}
	if n != len(p) {
		return ErrInsufficientBuffer
	}
	return nil
}

// WriteByte writes a single raw byte.
func (e *Encoder) WriteByte(b byte) error { return e.write([]byte{b}) }

// WriteBool writes a Boolean as a single byte, 0 or 1.
func (e *Encoder) WriteBool(v bool) error {
	if v {
		return e.WriteByte(1)
	}
	return e.WriteByte(0)
}

// WriteInt16 writes a signed 16-bit little-endian integer.
func (e *Encoder) WriteInt16(v int16) error { return e.WriteUint16(uint16(v)) }

// WriteUint16 writes an unsigned 16-bit little-endian integer.
func (e *Encoder) WriteUint16(v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return e.write(buf[:])
}

// WriteInt32 writes a signed 32-bit little-endian integer.
func (e *Encoder) WriteInt32(v int32) error { return e.WriteUint32(uint32(v)) }

// WriteUint32 writes an unsigned 32-bit little-endian integer.
func (e *Encoder) WriteUint32(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return e.write(buf[:])
}

// WriteInt64 writes a signed 64-bit little-endian integer.
func (e *Encoder) WriteInt64(v int64) error { return e.WriteUint64(uint64(v)) }

// WriteUint64 writes an unsigned 64-bit little-endian integer.
func (e *Encoder) WriteUint64(v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return e.write(buf[:])
}

// WriteFloat32 writes an IEEE-754 single-precision little-endian float.
func (e *Encoder) WriteFloat32(v float32) error {
	return e.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes an IEEE-754 double-precision little-endian float.
func (e *Encoder) WriteFloat64(v float64) error {
	return e.WriteUint64(math.Float64bits(v))
}

// WriteBytesRaw writes raw bytes with no length prefix.
func (e *Encoder) WriteBytesRaw(p []byte) error { return e.write(p) }

// Decoder reads OPC UA Binary primitives from an io.Reader, enforcing
// configured Limits and tracking nesting depth for recursive types
// (DiagnosticInfo, ExtensionObject).
type Decoder struct {
	r      io.Reader
	limits Limits
	read   int
	depth  int32
}

// NewDecoder wraps r for OPC UA Binary decoding under the given limits.
func NewDecoder(r io.Reader, limits Limits) *Decoder {
	return &Decoder{r: r, limits: limits}
}

// Limits returns the limits this decoder enforces.
func (d *Decoder) Limits() Limits { return d.limits }

// Read returns the number of bytes consumed so far.
func (d *Decoder) Read() int { return d.read }

func (d *Decoder) readFull(p []byte) error {
	if d.limits.MaxMessageSize > 0 && d.read+len(p) > int(d.limits.MaxMessageSize) {
		return ErrEncodingLimitsExceeded
	}
	n, err := io.ReadFull(d.r, p)
	d.read += n
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrInvalidEncoding
		}
		return err
	}
	return nil
}

// ReadByte reads a single raw byte.
func (d *Decoder) ReadByte() (byte, error) {
	var buf [1]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadBool reads a Boolean: any nonzero byte is true.
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadInt16 reads a signed 16-bit little-endian integer.
func (d *Decoder) ReadInt16() (int16, error) {
	v, err := d.ReadUint16()
	return int16(v), err
}

// ReadUint16 reads an unsigned 16-bit little-endian integer.
func (d *Decoder) ReadUint16() (uint16, error) {
	var buf [2]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// ReadInt32 reads a signed 32-bit little-endian integer.
func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.ReadUint32()
	return int32(v), err
}

// ReadUint32 reads an unsigned 32-bit little-endian integer.
func (d *Decoder) ReadUint32() (uint32, error) {
	var buf [4]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadInt64 reads a signed 64-bit little-endian integer.
func (d *Decoder) ReadInt64() (int64, error) {
	v, err := d.ReadUint64()
	return int64(v), err
}

// ReadUint64 reads an unsigned 64-bit little-endian integer.
func (d *Decoder) ReadUint64() (uint64, error) {
	var buf [8]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ReadFloat32 reads an IEEE-754 single-precision little-endian float.
func (d *Decoder) ReadFloat32() (float32, error) {
	v, err := d.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads an IEEE-754 double-precision little-endian float.
func (d *Decoder) ReadFloat64() (float64, error) {
	v, err := d.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBytesRaw reads exactly n raw bytes with no length prefix.
func (d *Decoder) ReadBytesRaw(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := d.readFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// EnterNesting increments the recursion depth and fails once the configured
// MaxNestingDepth is exceeded, protecting DiagnosticInfo and ExtensionObject
// recursion per spec §7. Every EnterNesting must be paired with ExitNesting.
func (d *Decoder) EnterNesting() error {
	d.depth++
	if d.limits.MaxNestingDepth > 0 && d.depth > d.limits.MaxNestingDepth {
		return ErrEncodingLimitsExceeded
	}
	return nil
}

// ExitNesting decrements the recursion depth.
func (d *Decoder) ExitNesting() { d.depth-- }

// countWriter is an io.Writer that only counts bytes. Nothing in this
// package uses it.
type countWriter struct{ n int }

func (c *countWriter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}
