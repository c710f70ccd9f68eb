package logger

import (
	"log/slog"
)

// Standard field keys for structured logging across the codec and security
// layers. Use these keys consistently so downstream log aggregation and
// querying stays uniform.
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for request correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID for operation tracking

	// ========================================================================
	// Codec
	// ========================================================================
	KeyTypeName  = "type_name"  // Registered type descriptor name
	KeyNodeID    = "node_id"    // NodeId (string form) of a descriptor or value
	KeyByteCount = "byte_count" // Bytes encoded/decoded
	KeyDepth     = "nesting_depth"
	KeyLimit     = "limit_name" // Which configured limit was hit

	// ========================================================================
	// Security / Channel
	// ========================================================================
	KeyPolicyURI     = "policy_uri"
	KeyChannelID     = "channel_id"
	KeyChannelState  = "channel_state"
	KeyThumbprint    = "thumbprint"
	KeyStatusCode    = "status_code"
	KeyRejectedCount = "rejected_count"
	KeyTrustedCount  = "trusted_count"

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyDurationMs = "duration_ms"
	KeyError      = "error"
	KeyOperation  = "operation"
)

// TraceID returns a slog.Attr for OpenTelemetry trace ID.
func TraceID(id string) slog.Attr { return slog.String(KeyTraceID, id) }

// SpanID returns a slog.Attr for OpenTelemetry span ID.
func SpanID(id string) slog.Attr { return slog.String(KeySpanID, id) }

// TypeName returns a slog.Attr for a registered type descriptor's name.
func TypeName(name string) slog.Attr { return slog.String(KeyTypeName, name) }

// NodeID returns a slog.Attr for a NodeId in its string form.
func NodeID(id string) slog.Attr { return slog.String(KeyNodeID, id) }

// ByteCount returns a slog.Attr for the number of bytes encoded/decoded.
func ByteCount(n int) slog.Attr { return slog.Int(KeyByteCount, n) }

// Depth returns a slog.Attr for the current nesting depth.
func Depth(n int) slog.Attr { return slog.Int(KeyDepth, n) }

// LimitName returns a slog.Attr naming the configured limit that was hit.
func LimitName(name string) slog.Attr { return slog.String(KeyLimit, name) }

// PolicyURI returns a slog.Attr for a security policy URI.
func PolicyURI(uri string) slog.Attr { return slog.String(KeyPolicyURI, uri) }

// ChannelID returns a slog.Attr for a secure channel's correlation id.
func ChannelID(id string) slog.Attr { return slog.String(KeyChannelID, id) }

// ChannelState returns a slog.Attr for a channel's key-lifecycle state.
func ChannelState(state string) slog.Attr { return slog.String(KeyChannelState, state) }

// Thumbprint returns a slog.Attr for a certificate thumbprint in hex.
func Thumbprint(hex string) slog.Attr { return slog.String(KeyThumbprint, hex) }

// StatusCode returns a slog.Attr for an OPC UA StatusCode.
func StatusCode(code uint32) slog.Attr { return slog.Uint64(KeyStatusCode, uint64(code)) }

// RejectedCount returns a slog.Attr for the size of the rejected-certificate list.
func RejectedCount(n int) slog.Attr { return slog.Int(KeyRejectedCount, n) }

// TrustedCount returns a slog.Attr for the size of the trusted-certificate set.
func TrustedCount(n int) slog.Attr { return slog.Int(KeyTrustedCount, n) }

// DurationMs returns a slog.Attr for duration in milliseconds.
func DurationMs(ms float64) slog.Attr { return slog.Float64(KeyDurationMs, ms) }

// Err returns a slog.Attr for an error, or a zero Attr if err is nil.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Operation returns a slog.Attr for a sub-operation name.
func Operation(op string) slog.Attr { return slog.String(KeyOperation, op) }
