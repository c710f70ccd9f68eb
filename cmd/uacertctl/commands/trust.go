package commands

import (
	"crypto/sha1"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marmos91/uacore/internal/cli/output"
	"github.com/marmos91/uacore/pkg/security/policy"
	"github.com/spf13/cobra"
)

var trustDir string

var trustCmd = &cobra.Command{
	Use:   "trust",
	Short: "Manage a directory of trusted/issuer certificates",
}

var trustListCmd = &cobra.Command{
	Use:   "list",
	Short: "List certificates in a trust directory",
	RunE:  runTrustList,
}

var trustAddCmd = &cobra.Command{
	Use:   "add <certificate-file>",
	Short: "Copy a certificate into a trust directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrustAdd,
}

var trustRemoveCmd = &cobra.Command{
	Use:   "remove <certificate-file>",
	Short: "Remove a certificate from a trust directory by thumbprint match",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrustRemove,
}

func init() {
	trustCmd.PersistentFlags().StringVar(&trustDir, "dir", "", "trust directory (required)")
	trustCmd.AddCommand(trustListCmd)
	trustCmd.AddCommand(trustAddCmd)
	trustCmd.AddCommand(trustRemoveCmd)
}

func runTrustList(cmd *cobra.Command, args []string) error {
	if trustDir == "" {
		return fmt.Errorf("--dir is required")
	}
	entries, err := os.ReadDir(trustDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", trustDir, err)
	}

	table := output.NewTableData("FILE", "SUBJECT", "THUMBPRINT", "NOT AFTER")
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(trustDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cert, _, err := policy.ParseCertificate(data)
		if err != nil {
			continue
		}
		table.AddRow(entry.Name(), cert.Subject.CommonName, thumbprintHex(cert), cert.NotAfter.Format("2006-01-02"))
	}
	output.PrintTable(cmd.OutOrStdout(), table)
	return nil
}

func runTrustAdd(cmd *cobra.Command, args []string) error {
	if trustDir == "" {
		return fmt.Errorf("--dir is required")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	if _, _, err := policy.ParseCertificate(data); err != nil {
		return fmt.Errorf("%s does not contain a valid certificate: %w", args[0], err)
	}
	if err := os.MkdirAll(trustDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", trustDir, err)
	}

	dest := filepath.Join(trustDir, filepath.Base(args[0]))
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	cmd.Printf("added %s\n", dest)
	return nil
}

func runTrustRemove(cmd *cobra.Command, args []string) error {
	if trustDir == "" {
		return fmt.Errorf("--dir is required")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	target, _, err := policy.ParseCertificate(data)
	if err != nil {
		return fmt.Errorf("%s does not contain a valid certificate: %w", args[0], err)
	}
	targetThumbprint := thumbprintHex(target)

	entries, err := os.ReadDir(trustDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", trustDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(trustDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cert, _, err := policy.ParseCertificate(data)
		if err != nil {
			continue
		}
		if thumbprintHex(cert) == targetThumbprint {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("removing %s: %w", path, err)
			}
			cmd.Printf("removed %s\n", path)
			return nil
		}
	}
	return fmt.Errorf("no matching certificate found in %s", trustDir)
}

func thumbprintHex(cert *x509.Certificate) string {
	sum := sha1.Sum(cert.Raw)
	const hexDigits = "0123456789abcdef"
	buf := make([]byte, 0, len(sum)*2)
	for _, b := range sum {
		buf = append(buf, hexDigits[b>>4], hexDigits[b&0xF])
	}
	return string(buf)
}
