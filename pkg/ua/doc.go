// Package ua implements the OPC UA Binary built-in type kernel: the 25
// built-in scalar types plus NodeId, ExpandedNodeId, QualifiedName,
// LocalizedText, ExtensionObject, Variant, DataValue and DiagnosticInfo,
// along with bit-exact little-endian binary encode/decode. Equal is
// provided on String, ByteString, Guid, NodeId, ExpandedNodeId,
// QualifiedName, LocalizedText and ExtensionObject; Less orders NodeIds;
// Copy exists only on ByteString. There are no Init or Clear operations.
//
// Every multi-byte integer and float is little-endian. Strings and byte
// strings are a signed 32-bit length prefix (-1 means null, 0 means empty)
// followed by that many raw bytes; there is no trailing padding, unlike
// RFC 4506 XDR.
package ua
