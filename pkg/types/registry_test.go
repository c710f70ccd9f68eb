package types

import (
	"testing"

	"github.com/marmos91/uacore/pkg/ua"
)

func TestDefaultRegistryIsSealed(t *testing.T) {
	if !Default.Sealed() {
		t.Fatal("expected Default registry to be sealed after init")
	}
	if err := Default.Register(&Descriptor{NodeID: ua.NewNumericNodeId(0, 99999), Name: "anything"}); err == nil {
		t.Fatal("expected registration on sealed registry to fail")
	}
}

func TestFindByNameAndNodeID(t *testing.T) {
	d := Default.FindByName("ReadRequest")
	if d == nil {
		t.Fatal("expected ReadRequest to be registered")
	}
	if got := Default.FindByNodeID(d.NodeID); got != d {
		t.Fatalf("FindByNodeID did not return the same descriptor")
	}
}

func TestReadRequestMembersMatchFieldOrder(t *testing.T) {
	d := Default.FindByName("ReadRequest")
	if d == nil {
		t.Fatal("ReadRequest not registered")
	}
	want := []string{"RequestHeader", "MaxAge", "TimestampsToReturn", "NodesToRead"}
	if len(d.Members) != len(want) {
		t.Fatalf("got %d members, want %d", len(d.Members), len(want))
	}
	for i, name := range want {
		if d.Members[i].FieldName != name {
			t.Fatalf("member %d = %q, want %q", i, d.Members[i].FieldName, name)
		}
	}
	if !d.Members[3].IsArray {
		t.Fatal("expected NodesToRead to be marked as an array member")
	}
}

func TestUserIdentityTokenIsUnion(t *testing.T) {
	d := Default.FindByName("UserIdentityToken")
	if d == nil {
		t.Fatal("UserIdentityToken not registered")
	}
	if d.Kind != Union {
		t.Fatalf("got kind %v, want Union", d.Kind)
	}
}

func TestStructureWithOptionalMarksDeclaredOptionals(t *testing.T) {
	d := Default.FindByName("MonitoringParameters")
	if d == nil {
		t.Fatal("MonitoringParameters not registered")
	}
	if d.Kind != StructureWithOptional {
		t.Fatalf("got kind %v, want StructureWithOptional", d.Kind)
	}
	found := false
	for _, m := range d.Members {
		if m.FieldName == "Filter" {
			found = true
			if !m.IsOptional {
				t.Fatal("expected Filter to be optional")
			}
		}
	}
	if !found {
		t.Fatal("Filter member not found")
	}
}

func TestAllIsSortedByName(t *testing.T) {
	all := Default.All()
	for i := 1; i < len(all); i++ {
		if all[i-1].Name >= all[i].Name {
			t.Fatalf("descriptors not sorted: %q >= %q", all[i-1].Name, all[i].Name)
		}
	}
}
