package ua

import (
	"bytes"
	"testing"
)

func roundTrip[T any](t *testing.T, encode func(*Encoder) error, decode func(*Decoder) (T, error)) T {
	t.Helper()
	var buf bytes.Buffer
	if err := encode(NewEncoder(&buf)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	dec := NewDecoder(bytes.NewReader(buf.Bytes()), DefaultLimits())
	v, err := decode(dec)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestStringNullVsEmpty(t *testing.T) {
	null := NullString
	empty := NewString("")

	if null.Equal(empty) {
		t.Fatal("null string must not equal empty string")
	}
	if null.EncodedSize() != 4 || empty.EncodedSize() != 4 {
		t.Fatalf("unexpected sizes: null=%d empty=%d", null.EncodedSize(), empty.EncodedSize())
	}

	got := roundTrip(t, null.Encode, DecodeString)
	if got.Valid {
		t.Fatal("expected null string after round trip")
	}
	got = roundTrip(t, empty.Encode, DecodeString)
	if !got.Valid || got.Value != "" {
		t.Fatalf("expected empty non-null string, got %#v", got)
	}
}

func TestStatusCodeSeverityBits(t *testing.T) {
	if !Good.IsGood() {
		t.Fatal("Good should be good")
	}
	if !BadCertificateInvalid.IsBad() {
		t.Fatal("BadCertificateInvalid should be bad")
	}
	got := roundTrip(t, BadSecurityChecksFailed.Encode, DecodeStatusCode)
	if got != BadSecurityChecksFailed {
		t.Fatalf("got %v, want BadSecurityChecksFailed", got)
	}
}

func TestNodeIdCompactEncoding(t *testing.T) {
	cases := []struct {
		name string
		id   NodeId
		size int
	}{
		{"two-byte", NewNumericNodeId(0, 42), 2},
		{"four-byte", NewNumericNodeId(10, 500), 4},
		{"numeric", NewNumericNodeId(10, 100000), 7},
		{"string", NewStringNodeId(1, "hello"), 1 + 2 + 4 + 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.id.EncodedSize() != c.size {
				t.Fatalf("EncodedSize() = %d, want %d", c.id.EncodedSize(), c.size)
			}
			got := roundTrip(t, c.id.Encode, DecodeNodeId)
			if !got.Equal(c.id) {
				t.Fatalf("round trip mismatch: got %#v, want %#v", got, c.id)
			}
		})
	}
}

func TestNodeIdOrdering(t *testing.T) {
	a := NewNumericNodeId(0, 1)
	b := NewNumericNodeId(0, 2)
	c := NewNumericNodeId(1, 0)
	if !a.Less(b) {
		t.Fatal("expected a < b")
	}
	if !b.Less(c) {
		t.Fatal("expected namespace to dominate identifier value")
	}
}

// TestNodeIdOrderingAcrossKind exercises the cross-Kind comparison:
// identifier kind must dominate namespace index, so a numeric NodeId
// in a higher namespace still sorts before a string NodeId in a lower
// namespace.
func TestNodeIdOrderingAcrossKind(t *testing.T) {
	numericHighNS := NewNumericNodeId(5, 100)
	stringLowNS := NewStringNodeId(0, "a")
	if !numericHighNS.Less(stringLowNS) {
		t.Fatal("expected identifier kind to dominate namespace index")
	}
	if stringLowNS.Less(numericHighNS) {
		t.Fatal("ordering must not be symmetric here")
	}
}

func TestGuidRoundTripAndString(t *testing.T) {
	g := Guid{Data1: 0x12345678, Data2: 0x1234, Data3: 0x5678, Data4: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}}
	got := roundTrip(t, g.Encode, DecodeGuid)
	if !got.Equal(g) {
		t.Fatalf("round trip mismatch: %#v", got)
	}
	parsed, err := ParseGuid(g.String())
	if err != nil {
		t.Fatalf("ParseGuid: %v", err)
	}
	if !parsed.Equal(g) {
		t.Fatalf("parse mismatch: %#v", parsed)
	}
}

func TestLocalizedTextOptionalFields(t *testing.T) {
	l := LocalizedText{Text: NewString("hello")}
	got := roundTrip(t, l.Encode, DecodeLocalizedText)
	if got.Locale.Valid || !got.Text.Valid || got.Text.Value != "hello" {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestExtensionObjectNoneHasNullBody(t *testing.T) {
	x := NullExtensionObject
	got := roundTrip(t, x.Encode, DecodeExtensionObject)
	if got.Encoding != ExtensionObjectNone {
		t.Fatalf("expected ExtensionObjectNone, got %v", got.Encoding)
	}
}

func TestExtensionObjectBinaryRoundTrip(t *testing.T) {
	x := ExtensionObject{
		TypeId:   ExpandedNodeId{NodeId: NewNumericNodeId(0, 15)},
		Encoding: ExtensionObjectBinary,
		Body:     NewByteString([]byte{1, 2, 3, 4}),
	}
	got := roundTrip(t, x.Encode, DecodeExtensionObject)
	if !got.Equal(x) {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestDataValueMaskRoundTrip(t *testing.T) {
	v := Variant{TypeID: TypeIDInt32, Value: int32(7)}
	status := BadCertificateRevoked
	dv := DataValue{Value: &v, Status: &status}
	got := roundTrip(t, dv.Encode, DecodeDataValue)
	if got.Value == nil || got.Value.Value.(int32) != 7 {
		t.Fatalf("value mismatch: %#v", got.Value)
	}
	if got.Status == nil || *got.Status != BadCertificateRevoked {
		t.Fatalf("status mismatch: %#v", got.Status)
	}
	if got.SourceTimestamp != nil || got.ServerTimestamp != nil {
		t.Fatalf("expected absent timestamps, got %#v", got)
	}
}

func TestDiagnosticInfoRecursion(t *testing.T) {
	inner := DiagnosticInfo{AdditionalInfo: &[]String{NewString("inner")}[0]}
	outer := DiagnosticInfo{InnerDiagnosticInfo: &inner}
	got := roundTrip(t, outer.Encode, DecodeDiagnosticInfo)
	if got.InnerDiagnosticInfo == nil || got.InnerDiagnosticInfo.AdditionalInfo == nil {
		t.Fatal("expected inner diagnostic info with additional info to survive round trip")
	}
	if got.InnerDiagnosticInfo.AdditionalInfo.Value != "inner" {
		t.Fatalf("got %q", got.InnerDiagnosticInfo.AdditionalInfo.Value)
	}
}

func TestDiagnosticInfoDepthLimit(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	di := DiagnosticInfo{}
	for i := 0; i < 5; i++ {
		child := di
		di = DiagnosticInfo{InnerDiagnosticInfo: &child}
	}
	if err := di.Encode(enc); err != nil {
		t.Fatalf("encode: %v", err)
	}
	limits := DefaultLimits()
	limits.MaxNestingDepth = 2
	dec := NewDecoder(bytes.NewReader(buf.Bytes()), limits)
	if _, err := DecodeDiagnosticInfo(dec); err != ErrEncodingLimitsExceeded {
		t.Fatalf("expected ErrEncodingLimitsExceeded, got %v", err)
	}
}

func TestEncodedSizeMatchesEncodeOutput(t *testing.T) {
	v := Variant{TypeID: TypeIDString, Value: NewString("sixteen bytes!!")}
	var buf bytes.Buffer
	if err := v.Encode(NewEncoder(&buf)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.Len() != v.EncodedSize() {
		t.Fatalf("EncodedSize() = %d, actual encoded bytes = %d", v.EncodedSize(), buf.Len())
	}
}
