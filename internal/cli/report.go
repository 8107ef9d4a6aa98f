package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/audit"
)

func newReportCmd() *cobra.Command {
	var (
		inFile  string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export an integrity report for an advanced container",
		Long: "Write a human-readable verification record (hash, size, KDF, integrity\n" +
			"status) for archiving alongside the encrypted file.",
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

			report, err := s.ExportIntegrityReport(encoded, time.Now())
			if err != nil {
				auditLog(audit.OpVerifyIntegrity, inFile, outFile, "", "", false, err.Error())
				return err
			}

			auditLog(audit.OpVerifyIntegrity, inFile, outFile, "", "advanced", true, "")

			if outFile != "" {
				if err := os.WriteFile(outFile, []byte(report), 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				printer.Human("Report written: %s", outFile)
				return nil
			}
			fmt.Fprint(printer.Writer, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&inFile, "in", "", "input container file (required)")
	cmd.Flags().StringVar(&outFile, "out", "", "write the report to this file instead of stdout")

	return cmd
}
