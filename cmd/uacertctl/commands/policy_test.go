package commands

import (
	"bytes"
	"testing"
)

func TestPolicyCapabilitiesListsAllSixPolicies(t *testing.T) {
	var buf bytes.Buffer
	policyCapabilitiesCmd.SetOut(&buf)

	if err := runPolicyCapabilities(policyCapabilitiesCmd, nil); err != nil {
		t.Fatalf("runPolicyCapabilities: %v", err)
	}

	out := buf.String()
	for _, uri := range allPolicyURIs {
		if !bytes.Contains([]byte(out), []byte(uri)) {
			t.Fatalf("output missing policy %q, got:\n%s", uri, out)
		}
	}
}
