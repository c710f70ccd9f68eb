package codec

import (
	"bytes"
	"errors"
	"io"
	"reflect"

	"github.com/marmos91/uacore/pkg/metrics"
	"github.com/marmos91/uacore/pkg/types"
	"github.com/marmos91/uacore/pkg/ua"
)

// encodable is implemented by every built-in type kernel value. The codec
// prefers this interface over reflect.Kind dispatch whenever a field's Go
// type satisfies it, so BTK types always use their own bit-exact encoding.
type encodable interface {
	EncodedSize() int
	Encode(e *ua.Encoder) error
}

var encodableType = reflect.TypeOf((*encodable)(nil)).Elem()

// Encode writes v (a value of a Go type registered in reg, or a built-in
// type kernel value) to w as OPC UA Binary.
func Encode(reg *types.Registry, v any, w io.Writer) error {
	enc := ua.NewEncoder(w)
	err := encodeReflect(reg, reflect.ValueOf(v), enc)
	if err != nil {
		if m := metrics.NewSecurityMetrics(); m != nil {
			m.RecordEncodeError(errKind(err))
		}
	}
	return err
}

// EncodedSize returns the exact number of bytes Encode would write for v.
// It encodes into a scratch buffer and returns its length, so this can
// never disagree with Encode's actual output.
func EncodedSize(reg *types.Registry, v any) (int, error) {
	var buf bytes.Buffer
	if err := Encode(reg, v, &buf); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

// Decode reads a value of the named registered type from r.
func Decode(reg *types.Registry, r io.Reader, typeName string, limits ua.Limits) (any, error) {
	d := reg.FindByName(typeName)
	if d == nil {
		if m := metrics.NewSecurityMetrics(); m != nil {
			m.RecordDecodeError("unknown_type")
		}
		return nil, ErrUnknownType
	}
	dec := ua.NewDecoder(r, limits)
	out := reflect.New(d.GoType)
	if err := decodeStruct(reg, dec, out.Elem(), d); err != nil {
		if m := metrics.NewSecurityMetrics(); m != nil {
			m.RecordDecodeError(errKind(err))
		}
		return nil, err
	}
	return out.Interface(), nil
}

// errKind maps a decode/encode error to a short, low-cardinality label
// suitable for a Prometheus counter vector.
func errKind(err error) string {
	switch {
	case errors.Is(err, ua.ErrEncodingLimitsExceeded):
		return "encoding_limits_exceeded"
	case errors.Is(err, ua.ErrInvalidEncoding):
		return "invalid_encoding"
	case errors.Is(err, ua.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ua.ErrInsufficientBuffer):
		return "insufficient_buffer"
	case errors.Is(err, ErrUnknownType):
		return "unknown_type"
	case errors.Is(err, ErrNotAddressable):
		return "not_addressable"
	default:
		return "other"
	}
}

func encodeReflect(reg *types.Registry, v reflect.Value, enc *ua.Encoder) error {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ua.ErrInvalidArgument
		}
		v = v.Elem()
	}

	if v.Type().Implements(encodableType) {
		return v.Interface().(encodable).Encode(enc)
	}

	switch v.Kind() {
	case reflect.Bool:
		return enc.WriteBool(v.Bool())
	case reflect.Uint8:
		return enc.WriteByte(byte(v.Uint()))
	case reflect.Int8:
		return enc.WriteByte(byte(int8(v.Int())))
	case reflect.Int16:
		return enc.WriteInt16(int16(v.Int()))
	case reflect.Uint16:
		return enc.WriteUint16(uint16(v.Uint()))
	case reflect.Int32:
		return enc.WriteInt32(int32(v.Int()))
	case reflect.Uint32:
		return enc.WriteUint32(uint32(v.Uint()))
	case reflect.Int64:
		return enc.WriteInt64(v.Int())
	case reflect.Uint64:
		return enc.WriteUint64(v.Uint())
	case reflect.Float32:
		return enc.WriteFloat32(float32(v.Float()))
	case reflect.Float64:
		return enc.WriteFloat64(v.Float())
	case reflect.Slice:
		if v.IsNil() {
			return enc.WriteInt32(-1)
		}
		n := v.Len()
		if err := enc.WriteInt32(int32(n)); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := encodeReflect(reg, v.Index(i), enc); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
		return encodeStruct(reg, v, enc)
	default:
		return ErrUnknownType
	}
}

func encodeStruct(reg *types.Registry, v reflect.Value, enc *ua.Encoder) error {
	d := reg.FindByName(v.Type().Name())
	if d == nil {
		return ErrUnknownType
	}

	switch d.Kind {
	case types.Union:
		selector := 0
		var selected reflect.Value
		for i, m := range d.Members {
			f := v.FieldByName(m.FieldName)
			if !f.IsZero() {
				selector = i + 1
				selected = f
				break
			}
		}
		if err := enc.WriteUint32(uint32(selector)); err != nil {
			return err
		}
		if selector == 0 {
			return nil
		}
		return encodeReflect(reg, selected, enc)

	case types.StructureWithOptional:
		var mask uint32
		for i, m := range d.Members {
			if !m.IsOptional {
				continue
			}
			f := v.FieldByName(m.FieldName)
			if !f.IsZero() {
				mask |= 1 << uint(i)
			}
		}
		if err := enc.WriteUint32(mask); err != nil {
			return err
		}
		for i, m := range d.Members {
			f := v.FieldByName(m.FieldName)
			if m.IsOptional {
				if mask&(1<<uint(i)) == 0 {
					continue
				}
			}
			if err := encodeReflect(reg, f, enc); err != nil {
				return err
			}
		}
		return nil

	default: // Structure, Enum, Primitive fall through to plain member walk
		for _, m := range d.Members {
			f := v.FieldByName(m.FieldName)
			if err := encodeReflect(reg, f, enc); err != nil {
				return err
			}
		}
		return nil
	}
}

func decodeStruct(reg *types.Registry, dec *ua.Decoder, v reflect.Value, d *types.Descriptor) error {
	if !v.CanSet() {
		return ErrNotAddressable
	}

	switch d.Kind {
	case types.Union:
		selector, err := dec.ReadUint32()
		if err != nil {
			return err
		}
		if selector == 0 {
			return nil
		}
		if int(selector) > len(d.Members) {
			return ua.ErrInvalidEncoding
		}
		m := d.Members[selector-1]
		f := v.FieldByName(m.FieldName)
		return decodeReflect(reg, dec, f)

	case types.StructureWithOptional:
		mask, err := dec.ReadUint32()
		if err != nil {
			return err
		}
		for i, m := range d.Members {
			if m.IsOptional && mask&(1<<uint(i)) == 0 {
				continue
			}
			f := v.FieldByName(m.FieldName)
			if err := decodeReflect(reg, dec, f); err != nil {
				return err
			}
		}
		return nil

	default:
		for _, m := range d.Members {
			f := v.FieldByName(m.FieldName)
			if err := decodeReflect(reg, dec, f); err != nil {
				return err
			}
		}
		return nil
	}
}

// builtinDecoders maps a Go type to the package-level Decode function for
// that built-in type kernel type. Built-in decode functions construct a
// fresh value rather than filling one in place, so they are registered by
// reflect.Type rather than satisfied through an interface.
var builtinDecoders = map[reflect.Type]func(*ua.Decoder) (any, error){
	reflect.TypeOf(ua.String{}):          func(d *ua.Decoder) (any, error) { return ua.DecodeString(d) },
	reflect.TypeOf(ua.ByteString{}):       func(d *ua.Decoder) (any, error) { return ua.DecodeByteString(d) },
	reflect.TypeOf(ua.NodeId{}):          func(d *ua.Decoder) (any, error) { return ua.DecodeNodeId(d) },
	reflect.TypeOf(ua.ExpandedNodeId{}):  func(d *ua.Decoder) (any, error) { return ua.DecodeExpandedNodeId(d) },
	reflect.TypeOf(ua.QualifiedName{}):   func(d *ua.Decoder) (any, error) { return ua.DecodeQualifiedName(d) },
	reflect.TypeOf(ua.LocalizedText{}):   func(d *ua.Decoder) (any, error) { return ua.DecodeLocalizedText(d) },
	reflect.TypeOf(ua.ExtensionObject{}): func(d *ua.Decoder) (any, error) { return ua.DecodeExtensionObject(d) },
	reflect.TypeOf(ua.StatusCode(0)):     func(d *ua.Decoder) (any, error) { return ua.DecodeStatusCode(d) },
	reflect.TypeOf(ua.DateTime(0)):       func(d *ua.Decoder) (any, error) { return ua.DecodeDateTime(d) },
	reflect.TypeOf(ua.Guid{}):            func(d *ua.Decoder) (any, error) { return ua.DecodeGuid(d) },
	reflect.TypeOf(ua.Variant{}):         func(d *ua.Decoder) (any, error) { return ua.DecodeVariant(d) },
	reflect.TypeOf(ua.DataValue{}):       func(d *ua.Decoder) (any, error) { return ua.DecodeDataValue(d) },
	reflect.TypeOf(ua.DiagnosticInfo{}):  func(d *ua.Decoder) (any, error) { return ua.DecodeDiagnosticInfo(d) },
}

func decodeReflect(reg *types.Registry, dec *ua.Decoder, v reflect.Value) error {
	if fn, ok := builtinDecoders[v.Type()]; ok {
		val, err := fn(dec)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(val))
		return nil
	}

	switch v.Kind() {
	case reflect.Bool:
		b, err := dec.ReadBool()
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil
	case reflect.Uint8:
		b, err := dec.ReadByte()
		if err != nil {
			return err
		}
		v.SetUint(uint64(b))
		return nil
	case reflect.Int8:
		b, err := dec.ReadByte()
		if err != nil {
			return err
		}
		v.SetInt(int64(int8(b)))
		return nil
	case reflect.Int16:
		n, err := dec.ReadInt16()
		if err != nil {
			return err
		}
		v.SetInt(int64(n))
		return nil
	case reflect.Uint16:
		n, err := dec.ReadUint16()
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))
		return nil
	case reflect.Int32:
		n, err := dec.ReadInt32()
		if err != nil {
			return err
		}
		v.SetInt(int64(n))
		return nil
	case reflect.Uint32:
		n, err := dec.ReadUint32()
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))
		return nil
	case reflect.Int64:
		n, err := dec.ReadInt64()
		if err != nil {
			return err
		}
		v.SetInt(n)
		return nil
	case reflect.Uint64:
		n, err := dec.ReadUint64()
		if err != nil {
			return err
		}
		v.SetUint(n)
		return nil
	case reflect.Float32:
		f, err := dec.ReadFloat32()
		if err != nil {
			return err
		}
		v.SetFloat(float64(f))
		return nil
	case reflect.Float64:
		f, err := dec.ReadFloat64()
		if err != nil {
			return err
		}
		v.SetFloat(f)
		return nil
	case reflect.Slice:
		n, err := dec.ReadInt32()
		if err != nil {
			return err
		}
		if n < 0 {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		limits := dec.Limits()
		if limits.MaxArrayLength > 0 && n > limits.MaxArrayLength {
			return ua.ErrEncodingLimitsExceeded
		}
		slice := reflect.MakeSlice(v.Type(), int(n), int(n))
		for i := 0; i < int(n); i++ {
			if err := decodeReflect(reg, dec, slice.Index(i)); err != nil {
				return err
			}
		}
		v.Set(slice)
		return nil
	case reflect.Struct:
		d := reg.FindByName(v.Type().Name())
		if d == nil {
			return ErrUnknownType
		}
		return decodeStruct(reg, dec, v, d)
	default:
		return ErrUnknownType
	}
}
