package commands

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/marmos91/uacore/internal/cli/prompt"
	"github.com/marmos91/uacore/pkg/security/csr"
	"github.com/marmos91/uacore/pkg/security/policy"
	"github.com/spf13/cobra"
)

var (
	csrSubject  string
	csrKeyPath  string
	csrCertPath string
	csrOutPath  string
	csrKeyBits  int
)

var csrCmd = &cobra.Command{
	Use:   "csr",
	Short: "Generate a certificate signing request",
}

var csrCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a PKCS#10 CSR from a private key and optional existing certificate",
	RunE:  runCSRCreate,
}

func init() {
	csrCmd.AddCommand(csrCreateCmd)

	csrCreateCmd.Flags().StringVar(&csrSubject, "subject", "", `subject RDN string, e.g. "CN=node,O=Acme,C=US" (prompted for if omitted and --cert is not given)`)
	csrCreateCmd.Flags().StringVar(&csrKeyPath, "key", "", "path to an existing RSA private key (PEM or DER); a new 2048-bit key is generated if omitted")
	csrCreateCmd.Flags().StringVar(&csrCertPath, "cert", "", "path to an existing certificate to copy subject and SAN from")
	csrCreateCmd.Flags().StringVar(&csrOutPath, "out", "request.csr", "output path for the DER-encoded CSR")
	csrCreateCmd.Flags().IntVar(&csrKeyBits, "bits", 2048, "RSA key size when generating a new key")
}

func runCSRCreate(cmd *cobra.Command, args []string) error {
	key, err := loadOrGenerateKey()
	if err != nil {
		return err
	}

	var existingCert *x509.Certificate
	if csrCertPath != "" {
		data, err := os.ReadFile(csrCertPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", csrCertPath, err)
		}
		existingCert, _, err = policy.ParseCertificate(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", csrCertPath, err)
		}
	}

	subject := csrSubject
	if subject == "" && existingCert == nil {
		subject, err = prompt.InputRequired("Subject (e.g. CN=node,O=Acme,C=US)")
		if err != nil {
			return err
		}
	}

	der, err := csr.Create(existingCert, key, subject)
	if err != nil {
		return fmt.Errorf("creating CSR: %w", err)
	}

	if err := os.WriteFile(csrOutPath, der, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", csrOutPath, err)
	}

	cmd.Printf("CSR written to %s\n", csrOutPath)
	return nil
}

// loadOrGenerateKey reads the RSA private key at csrKeyPath, or
// generates and saves a new one next to the CSR output when no key
// path was given.
func loadOrGenerateKey() (*rsa.PrivateKey, error) {
	if csrKeyPath != "" {
		data, err := os.ReadFile(csrKeyPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", csrKeyPath, err)
		}
		key, err := policy.ParsePrivateKey(data, nil)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", csrKeyPath, err)
		}
		return key, nil
	}

	key, err := rsa.GenerateKey(rand.Reader, csrKeyBits)
	if err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	keyOut := csrOutPath + ".key.pem"
	der := x509.MarshalPKCS1PrivateKey(key)
	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: der}
	if err := os.WriteFile(keyOut, pem.EncodeToMemory(block), 0600); err != nil {
		return nil, fmt.Errorf("writing %s: %w", keyOut, err)
	}
	fmt.Printf("generated private key written to %s\n", keyOut)
	return key, nil
}
