package commands

import (
	"fmt"

	"github.com/marmos91/uacore/internal/cli/output"
	"github.com/marmos91/uacore/pkg/security/policy"
	"github.com/spf13/cobra"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Inspect security policy capabilities",
}

var policyCapabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "Print the symmetric/nonce sizing every built-in security policy uses",
	RunE:  runPolicyCapabilities,
}

func init() {
	policyCmd.AddCommand(policyCapabilitiesCmd)
}

// allPolicyURIs lists the six policy URIs in the same order the policy
// package defines them.
var allPolicyURIs = []string{
	policy.URINone,
	policy.URIBasic128Rsa15,
	policy.URIBasic256,
	policy.URIBasic256Sha256,
	policy.URIAes128Sha256RsaOaep,
	policy.URIAes256Sha256RsaPss,
}

func runPolicyCapabilities(cmd *cobra.Command, args []string) error {
	table := output.NewTableData("POLICY", "SYM KEY", "SYM BLOCK", "SYM SIGNATURE", "NONCE")
	for _, uri := range allPolicyURIs {
		p, err := policy.ByURI(uri)
		if err != nil {
			continue
		}
		table.AddRow(
			uri,
			fmt.Sprintf("%d", p.SymmetricKeySize()),
			fmt.Sprintf("%d", p.SymmetricBlockSize()),
			fmt.Sprintf("%d", p.SymmetricSignatureSize()),
			fmt.Sprintf("%d", p.NonceLength()),
		)
	}
	output.PrintTable(cmd.OutOrStdout(), table)
	return nil
}
