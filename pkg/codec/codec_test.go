package codec_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marmos91/uacore/pkg/codec"
	"github.com/marmos91/uacore/pkg/types"
	"github.com/marmos91/uacore/pkg/ua"
)

func TestReadRequestRoundTrip(t *testing.T) {
	req := types.ReadRequest{
		RequestHeader: types.RequestHeader{
			AuthenticationToken: ua.NewNumericNodeId(0, 0),
			Timestamp:           0,
			RequestHandle:       7,
			ReturnDiagnostics:   0,
			AuditEntryId:        ua.NullString,
			TimeoutHint:         1000,
		},
		MaxAge:             0.0,
		TimestampsToReturn: 2,
		NodesToRead: []types.ReadValueId{
			{
				NodeId:       ua.NewNumericNodeId(0, 2258),
				AttributeId:  13,
				IndexRange:   ua.NullString,
				DataEncoding: ua.NewQualifiedName(0, ""),
			},
		},
	}

	var buf bytes.Buffer
	if err := codec.Encode(types.Default, req, &buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	size, err := codec.EncodedSize(types.Default, req)
	if err != nil {
		t.Fatalf("encoded size: %v", err)
	}
	if size != buf.Len() {
		t.Fatalf("EncodedSize() = %d, actual = %d", size, buf.Len())
	}

	got, err := codec.Decode(types.Default, bytes.NewReader(buf.Bytes()), "ReadRequest", ua.DefaultLimits())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	decoded := got.(*types.ReadRequest)

	if decoded.RequestHeader.RequestHandle != 7 || decoded.RequestHeader.TimeoutHint != 1000 {
		t.Fatalf("request header mismatch: %#v", decoded.RequestHeader)
	}
	if len(decoded.NodesToRead) != 1 || decoded.NodesToRead[0].AttributeId != 13 {
		t.Fatalf("nodes to read mismatch: %#v", decoded.NodesToRead)
	}
	if !decoded.NodesToRead[0].NodeId.Equal(ua.NewNumericNodeId(0, 2258)) {
		t.Fatalf("node id mismatch: %#v", decoded.NodesToRead[0].NodeId)
	}
}

func TestWriteRequestDataValueRoundTrip(t *testing.T) {
	v := ua.Variant{TypeID: ua.TypeIDBoolean, Value: true}
	req := types.WriteRequest{
		NodesToWrite: []types.WriteValue{
			{
				NodeId:      ua.NewNumericNodeId(2, 1001),
				AttributeId: 13,
				Value:       ua.DataValue{Value: &v},
			},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, codec.Encode(types.Default, req, &buf))

	got, err := codec.Decode(types.Default, bytes.NewReader(buf.Bytes()), "WriteRequest", ua.DefaultLimits())
	require.NoError(t, err)
	decoded := got.(*types.WriteRequest)
	require.Len(t, decoded.NodesToWrite, 1)
	require.NotNil(t, decoded.NodesToWrite[0].Value.Value)
	require.Equal(t, true, decoded.NodesToWrite[0].Value.Value.Value)
}

// TestCodecRoundTrip_RepresentativeServiceTypes round-trips a
// representative non-zero value of a selection of registered descriptors,
// confirming the generic codec handles Structure, StructureWithOptional
// and Union kinds uniformly without a per-type hand-written path.
func TestCodecRoundTrip_RepresentativeServiceTypes(t *testing.T) {
	cases := []struct {
		name string
		in   any
	}{
		{"RequestHeader", types.RequestHeader{RequestHandle: 1, TimeoutHint: 2}},
		{"ReadValueId", types.ReadValueId{NodeId: ua.NewNumericNodeId(0, 1), AttributeId: 1}},
		{"BrowseDescription", types.BrowseDescription{NodeId: ua.NewNumericNodeId(0, 84), BrowseDirection: 0}},
		{"SignatureData", types.SignatureData{Algorithm: ua.NewString("RSA"), Signature: ua.NewByteString([]byte{1, 2})}},
		{
			"MonitoringParameters",
			types.MonitoringParameters{ClientHandle: 9, SamplingInterval: 100, QueueSize: 1},
		},
		{
			"MonitoringParametersWithFilter",
			types.MonitoringParameters{ClientHandle: 9, Filter: ua.ExtensionObject{Encoding: ua.ExtensionObjectBinary, Body: ua.NewByteString([]byte{1})}},
		},
		{
			"UserIdentityToken",
			types.UserIdentityToken{Token: ua.ExtensionObject{Encoding: ua.ExtensionObjectBinary, Body: ua.NewByteString([]byte{9})}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			typeName := c.name
			switch c.name {
			case "MonitoringParametersWithFilter":
				typeName = "MonitoringParameters"
			}

			var buf bytes.Buffer
			require.NoError(t, codec.Encode(types.Default, c.in, &buf))

			got, err := codec.Decode(types.Default, bytes.NewReader(buf.Bytes()), typeName, ua.DefaultLimits())
			require.NoError(t, err)
			require.NotNil(t, got)
		})
	}
}
