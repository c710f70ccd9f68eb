package types

import "github.com/marmos91/uacore/pkg/ua"

// The structs below are the Go representations of the representative,
// transitively-closed subset of OPC UA service-layer structures this
// registry describes. Every exported field is reachable by name through
// reflect.Value.FieldByName from the Member.FieldName the matching
// Descriptor declares; field order here must match declaration order in
// the matching Descriptor.Members slice.

// RequestHeader is common to every service request.
type RequestHeader struct {
	AuthenticationToken ua.NodeId
	Timestamp           ua.DateTime
	RequestHandle       uint32
	ReturnDiagnostics   uint32
	AuditEntryId        ua.String
	TimeoutHint         uint32
	AdditionalHeader    ua.ExtensionObject
}

// ResponseHeader is common to every service response.
type ResponseHeader struct {
	Timestamp          ua.DateTime
	RequestHandle      uint32
	ServiceResult      ua.StatusCode
	ServiceDiagnostics ua.DiagnosticInfo
	StringTable        []ua.String
	AdditionalHeader   ua.ExtensionObject
}

// ReadValueId identifies one attribute of one node to read or write.
type ReadValueId struct {
	NodeId       ua.NodeId
	AttributeId  uint32
	IndexRange   ua.String
	DataEncoding ua.QualifiedName
}

// ReadRequest reads one or more attributes of one or more nodes.
type ReadRequest struct {
	RequestHeader      RequestHeader
	MaxAge             float64
	TimestampsToReturn uint32
	NodesToRead        []ReadValueId
}

// ReadResponse carries the results of a ReadRequest.
type ReadResponse struct {
	ResponseHeader  ResponseHeader
	Results         []ua.DataValue
	DiagnosticInfos []ua.DiagnosticInfo
}

// WriteValue pairs a ReadValueId target with the value to write.
type WriteValue struct {
	NodeId      ua.NodeId
	AttributeId uint32
	IndexRange  ua.String
	Value       ua.DataValue
}

// WriteRequest writes one or more attributes of one or more nodes.
type WriteRequest struct {
	RequestHeader RequestHeader
	NodesToWrite  []WriteValue
}

// WriteResponse carries the results of a WriteRequest.
type WriteResponse struct {
	ResponseHeader  ResponseHeader
	Results         []ua.StatusCode
	DiagnosticInfos []ua.DiagnosticInfo
}

// BrowseDescription specifies one browse operation's starting node and
// filter criteria.
type BrowseDescription struct {
	NodeId          ua.NodeId
	BrowseDirection uint32
	ReferenceTypeId ua.NodeId
	IncludeSubtypes bool
	NodeClassMask   uint32
	ResultMask      uint32
}

// ReferenceDescription describes one reference found during a browse.
type ReferenceDescription struct {
	ReferenceTypeId ua.NodeId
	IsForward       bool
	NodeId          ua.ExpandedNodeId
	BrowseName      ua.QualifiedName
	DisplayName     ua.LocalizedText
	NodeClass       uint32
	TypeDefinition  ua.ExpandedNodeId
}

// BrowseResult carries the references found by one BrowseDescription.
type BrowseResult struct {
	StatusCode        ua.StatusCode
	ContinuationPoint ua.ByteString
	References        []ReferenceDescription
}

// BrowseRequest browses the address space starting from one or more nodes.
type BrowseRequest struct {
	RequestHeader                RequestHeader
	View                         ua.ExtensionObject
	RequestedMaxReferencesPerNode uint32
	NodesToBrowse                []BrowseDescription
}

// BrowseResponse carries the results of a BrowseRequest.
type BrowseResponse struct {
	ResponseHeader  ResponseHeader
	Results         []BrowseResult
	DiagnosticInfos []ua.DiagnosticInfo
}

// UserTokenPolicy describes one authentication mechanism an endpoint
// accepts. IssuedTokenType is optional: it is only meaningful when
// TokenType is an issued token, and is null otherwise.
type UserTokenPolicy struct {
	PolicyId         ua.String
	TokenType        uint32
	IssuedTokenType  ua.String
	IssuerEndpointUrl ua.String
	SecurityPolicyUri ua.String
}

// ApplicationDescription identifies an OPC UA application instance.
type ApplicationDescription struct {
	ApplicationUri      ua.String
	ProductUri          ua.String
	ApplicationName     ua.LocalizedText
	ApplicationType     uint32
	GatewayServerUri    ua.String
	DiscoveryProfileUri ua.String
	DiscoveryUrls       []ua.String
}

// EndpointDescription describes one endpoint a server exposes, including
// its required security policy and accepted user token policies.
// TransportProfileUri is optional: servers that only ever expose the
// single binary transport profile this core implements may leave it
// null.
type EndpointDescription struct {
	EndpointUrl         ua.String
	Server              ApplicationDescription
	ServerCertificate   ua.ByteString
	SecurityMode        uint32
	SecurityPolicyUri   ua.String
	UserIdentityTokens  []UserTokenPolicy
	TransportProfileUri ua.String
	SecurityLevel       byte
}

// SignatureData is an asymmetric signature together with the algorithm
// that produced it.
type SignatureData struct {
	Algorithm ua.String
	Signature ua.ByteString
}

// CreateSessionRequest opens a new session with a server.
type CreateSessionRequest struct {
	RequestHeader            RequestHeader
	ClientDescription        ApplicationDescription
	ServerUri                ua.String
	EndpointUrl              ua.String
	SessionName              ua.String
	ClientNonce              ua.ByteString
	ClientCertificate        ua.ByteString
	RequestedSessionTimeout  float64
	MaxResponseMessageSize   uint32
}

// CreateSessionResponse carries the session identity and server
// credentials agreed at session creation.
type CreateSessionResponse struct {
	ResponseHeader             ResponseHeader
	SessionId                  ua.NodeId
	AuthenticationToken        ua.NodeId
	RevisedSessionTimeout      float64
	ServerNonce                ua.ByteString
	ServerCertificate          ua.ByteString
	ServerEndpoints            []EndpointDescription
	ServerSoftwareCertificates []ua.ExtensionObject
	ServerSignature            SignatureData
	MaxRequestMessageSize      uint32
}

// AnonymousIdentityToken authenticates a session with no credentials.
type AnonymousIdentityToken struct {
	PolicyId ua.String
}

// UserNameIdentityToken authenticates a session with a username and an
// (optionally policy-encrypted) password.
type UserNameIdentityToken struct {
	PolicyId            ua.String
	UserName            ua.String
	Password            ua.ByteString
	EncryptionAlgorithm ua.String
}

// X509IdentityToken authenticates a session with a user certificate.
type X509IdentityToken struct {
	PolicyId    ua.String
	CertificateData ua.ByteString
}

// UserIdentityToken is a union over the three concrete identity token
// kinds, carried as an ExtensionObject whose TypeId selects which one.
type UserIdentityToken struct {
	Token ua.ExtensionObject
}

// ActivateSessionRequest binds a user identity to a previously created
// session.
type ActivateSessionRequest struct {
	RequestHeader           RequestHeader
	ClientSignature         SignatureData
	ClientSoftwareCertificates []ua.ExtensionObject
	LocaleIds               []ua.String
	UserIdentityToken        UserIdentityToken
	UserTokenSignature       SignatureData
}

// ActivateSessionResponse confirms session activation.
type ActivateSessionResponse struct {
	ResponseHeader  ResponseHeader
	ServerNonce     ua.ByteString
	Results         []ua.StatusCode
	DiagnosticInfos []ua.DiagnosticInfo
}

// MonitoringParameters configures one monitored item's sampling and
// queuing behavior.
type MonitoringParameters struct {
	ClientHandle     uint32
	SamplingInterval float64
	Filter           ua.ExtensionObject
	QueueSize        uint32
	DiscardOldest    bool
}

// MonitoredItemCreateRequest requests the creation of one monitored item.
type MonitoredItemCreateRequest struct {
	ItemToMonitor     ReadValueId
	MonitoringMode    uint32
	RequestedParameters MonitoringParameters
}

// MonitoredItemCreateResult carries the server-assigned state of one
// created monitored item.
type MonitoredItemCreateResult struct {
	StatusCode              ua.StatusCode
	MonitoredItemId         uint32
	RevisedSamplingInterval float64
	RevisedQueueSize        uint32
	FilterResult            ua.ExtensionObject
}

// CreateMonitoredItemsRequest creates one or more monitored items on a
// subscription.
type CreateMonitoredItemsRequest struct {
	RequestHeader      RequestHeader
	SubscriptionId     uint32
	TimestampsToReturn uint32
	ItemsToCreate      []MonitoredItemCreateRequest
}

// CreateMonitoredItemsResponse carries the results of a
// CreateMonitoredItemsRequest.
type CreateMonitoredItemsResponse struct {
	ResponseHeader  ResponseHeader
	Results         []MonitoredItemCreateResult
	DiagnosticInfos []ua.DiagnosticInfo
}

// MonitoredItemNotification carries one reported value change.
type MonitoredItemNotification struct {
	ClientHandle uint32
	Value        ua.DataValue
}

// DataChangeNotification batches monitored-item notifications for one
// publish cycle.
type DataChangeNotification struct {
	MonitoredItems  []MonitoredItemNotification
	DiagnosticInfos []ua.DiagnosticInfo
}

// NotificationMessage is one subscription's delivered set of notifications.
type NotificationMessage struct {
	SequenceNumber uint32
	PublishTime    ua.DateTime
	NotificationData []ua.ExtensionObject
}

// SubscriptionAcknowledgement confirms receipt of one sequence number on
// one subscription, allowing the server to free retransmission queue
// space.
type SubscriptionAcknowledgement struct {
	SubscriptionId uint32
	SequenceNumber uint32
}

// PublishRequest polls the server for queued subscription notifications.
type PublishRequest struct {
	RequestHeader            RequestHeader
	SubscriptionAcknowledgements []SubscriptionAcknowledgement
}

// PublishResponse carries one subscription's notifications.
type PublishResponse struct {
	ResponseHeader           ResponseHeader
	SubscriptionId           uint32
	AvailableSequenceNumbers []uint32
	MoreNotifications        bool
	NotificationMessage      NotificationMessage
	Results                  []ua.StatusCode
	DiagnosticInfos          []ua.DiagnosticInfo
}
