package ua

import (
	"bytes"
	"testing"
)

func TestVariantInt32ArrayExactBytes(t *testing.T) {
	v := Variant{
		TypeID:  TypeIDInt32,
		IsArray: true,
		Value:   []any{int32(1), int32(-2), int32(3)},
	}

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := v.Encode(enc); err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := []byte{0x86, 0x03, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0xFE, 0xFF, 0xFF, 0xFF, 0x03, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", buf.Bytes(), want)
	}
	if v.EncodedSize() != len(want) {
		t.Fatalf("EncodedSize() = %d, want %d", v.EncodedSize(), len(want))
	}

	dec := NewDecoder(bytes.NewReader(buf.Bytes()), DefaultLimits())
	got, err := DecodeVariant(dec)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	elems := got.Value.([]any)
	if len(elems) != 3 || elems[0].(int32) != 1 || elems[1].(int32) != -2 || elems[2].(int32) != 3 {
		t.Fatalf("round trip mismatch: %#v", elems)
	}
}

func TestVariantNullStringExactBytes(t *testing.T) {
	v := Variant{TypeID: TypeIDString, Value: NullString}

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := v.Encode(enc); err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := []byte{0x0C, 0xFF, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % X, want % X", buf.Bytes(), want)
	}

	dec := NewDecoder(bytes.NewReader(buf.Bytes()), DefaultLimits())
	got, err := DecodeVariant(dec)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Value.(String).Valid {
		t.Fatalf("expected null string, got %#v", got.Value)
	}
}

func TestVariantArrayDimensionsProductInvariant(t *testing.T) {
	v := Variant{
		TypeID:          TypeIDInt32,
		IsArray:         true,
		ArrayDimensions: []int32{2, 2},
		Value:           []any{int32(1), int32(2), int32(3), int32(4)},
	}
	var buf bytes.Buffer
	if err := v.Encode(NewEncoder(&buf)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	dec := NewDecoder(bytes.NewReader(buf.Bytes()), DefaultLimits())
	got, err := DecodeVariant(dec)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.ArrayDimensions) != 2 || got.ArrayDimensions[0] != 2 || got.ArrayDimensions[1] != 2 {
		t.Fatalf("dims mismatch: %#v", got.ArrayDimensions)
	}
}

func TestVariantNull(t *testing.T) {
	v := NullVariant
	if !v.IsNull() {
		t.Fatal("NullVariant.IsNull() = false")
	}
	var buf bytes.Buffer
	if err := v.Encode(NewEncoder(&buf)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x00}) {
		t.Fatalf("got % X, want [00]", buf.Bytes())
	}
}
