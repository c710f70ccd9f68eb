package types

import (
	"reflect"

	"github.com/marmos91/uacore/pkg/ua"
)

// Default is the process-wide registry populated by this package's init
// function. NodeSet loading is out of scope, so the numeric identifiers
// assigned here are representative/synthetic rather than the official
// OPC UA Part 6 numeric ids -- callers that need wire compatibility with
// a real server's namespace must re-register descriptors with the real
// ids before sealing their own Registry.
var Default = NewRegistry()

// nextID hands out a dense, deterministic run of namespace-0 numeric
// NodeIds at init time.
var nextID uint32 = 10000

func register(name string, kind Kind, v any, optional map[string]bool) {
	t := reflect.TypeOf(v)
	id := nextID
	nextID++
	binID := nextID
	nextID++

	d := &Descriptor{
		NodeID:           ua.NewNumericNodeId(0, id),
		BinaryEncodingID: ua.NewNumericNodeId(0, binID),
		Name:             name,
		Kind:             kind,
		GoType:           t,
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		d.Members = append(d.Members, Member{
			Name:       f.Name,
			FieldName:  f.Name,
			IsArray:    f.Type.Kind() == reflect.Slice,
			IsOptional: optional[f.Name],
		})
	}

	if err := Default.Register(d); err != nil {
		panic("types: " + err.Error())
	}
}

func init() {
	register("RequestHeader", Structure, RequestHeader{}, nil)
	register("ResponseHeader", Structure, ResponseHeader{}, nil)
	register("ReadValueId", Structure, ReadValueId{}, nil)
	register("ReadRequest", Structure, ReadRequest{}, nil)
	register("ReadResponse", Structure, ReadResponse{}, nil)
	register("WriteValue", Structure, WriteValue{}, nil)
	register("WriteRequest", Structure, WriteRequest{}, nil)
	register("WriteResponse", Structure, WriteResponse{}, nil)
	register("BrowseDescription", Structure, BrowseDescription{}, nil)
	register("ReferenceDescription", Structure, ReferenceDescription{}, nil)
	register("BrowseResult", Structure, BrowseResult{}, nil)
	register("BrowseRequest", Structure, BrowseRequest{}, nil)
	register("BrowseResponse", Structure, BrowseResponse{}, nil)
	register("UserTokenPolicy", StructureWithOptional, UserTokenPolicy{}, map[string]bool{"IssuedTokenType": true})
	register("ApplicationDescription", Structure, ApplicationDescription{}, nil)
	register("EndpointDescription", StructureWithOptional, EndpointDescription{}, map[string]bool{"TransportProfileUri": true})
	register("SignatureData", Structure, SignatureData{}, nil)
	register("CreateSessionRequest", Structure, CreateSessionRequest{}, nil)
	register("CreateSessionResponse", Structure, CreateSessionResponse{}, nil)
	register("AnonymousIdentityToken", Structure, AnonymousIdentityToken{}, nil)
	register("UserNameIdentityToken", Structure, UserNameIdentityToken{}, nil)
	register("X509IdentityToken", Structure, X509IdentityToken{}, nil)
	register("UserIdentityToken", Union, UserIdentityToken{}, nil)
	register("ActivateSessionRequest", Structure, ActivateSessionRequest{}, nil)
	register("ActivateSessionResponse", Structure, ActivateSessionResponse{}, nil)
	register("MonitoringParameters", StructureWithOptional, MonitoringParameters{}, map[string]bool{"Filter": true})
	register("MonitoredItemCreateRequest", Structure, MonitoredItemCreateRequest{}, nil)
	register("MonitoredItemCreateResult", StructureWithOptional, MonitoredItemCreateResult{}, map[string]bool{"FilterResult": true})
	register("CreateMonitoredItemsRequest", Structure, CreateMonitoredItemsRequest{}, nil)
	register("CreateMonitoredItemsResponse", Structure, CreateMonitoredItemsResponse{}, nil)
	register("MonitoredItemNotification", Structure, MonitoredItemNotification{}, nil)
	register("DataChangeNotification", Structure, DataChangeNotification{}, nil)
	register("NotificationMessage", Structure, NotificationMessage{}, nil)
	register("SubscriptionAcknowledgement", Structure, SubscriptionAcknowledgement{}, nil)
	register("PublishRequest", Structure, PublishRequest{}, nil)
	register("PublishResponse", Structure, PublishResponse{}, nil)

	Default.Seal()
}
