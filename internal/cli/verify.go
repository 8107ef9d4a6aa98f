package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/audit"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

func newVerifyIntegrityCmd() *cobra.Command {
	var inFile string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the integrity hash of an advanced container",
		Long: "Recompute the SHA-256 over the container body and compare it against the\n" +
			"stored hash. Works without any secret. A mismatch exits with code 10.",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			s, err := getService()
			if err != nil {
				return err
			}

			if inFile == "" {
				return fmt.Errorf("--in is required")
			}
			raw, err := os.ReadFile(inFile)
			if err != nil {
				return fmt.Errorf("read container: %w", err)
			}
			encoded := strings.TrimSpace(string(raw))

			report, err := s.VerifyIntegrity(encoded)
			if err != nil {
				auditLog(audit.OpVerifyIntegrity, inFile, "", "", "", false, err.Error())
				return err
			}

			auditLog(audit.OpVerifyIntegrity, inFile, "", report.ExpectedHash, "advanced", report.Valid, report.Message)

			if printer.Mode == OutputJSON {
				if err := printer.JSON(report); err != nil {
					return err
				}
			} else if report.Valid {
				printer.Human("Integrity: OK")
				printer.Human("SHA-256:   %s", report.ActualHash)
			} else {
				printer.Human("Integrity: MISMATCH")
				printer.Human("Expected:  %s", report.ExpectedHash)
				printer.Human("Actual:    %s", report.ActualHash)
			}

			if !report.Valid {
				return fmt.Errorf("%w: %s", util.ErrIntegrityMismatch, inFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inFile, "in", "", "input container file (required)")

	return cmd
}
