package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/audit"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

func newInspectCmd() *cobra.Command {
	var inFile string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show container details without decrypting",
		Long: "Decode a container and print its format, KDF parameters, integrity hash,\n" +
			"and embedded wallet metadata. No secret is required; the seed phrase stays\n" +
			"encrypted.",
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

			info, err := s.IntegrityInfo(encoded)
			if err != nil && !errors.Is(err, util.ErrNoIntegrityBlock) {
				auditLog(audit.OpInspect, inFile, "", "", "", false, err.Error())
				return err
			}

			format := "advanced"
			if info == nil {
				format = "standard"
			}

			meta, metaErr := s.WalletMetadata(encoded)
			if metaErr != nil {
				auditLog(audit.OpInspect, inFile, "", "", format, false, metaErr.Error())
				return metaErr
			}
			fileInfo := s.ParseWalletFilename(filepath.Base(inFile))

			hash := ""
			if info != nil {
				hash = info.SHA256Hash
			}
			auditLog(audit.OpInspect, inFile, "", hash, format, true, "")

			if printer.Mode == OutputJSON {
				out := map[string]any{
					"file":   inFile,
					"format": format,
				}
				if info != nil {
					out["integrity_info"] = info
				}
				if meta != nil {
					out["wallet_metadata"] = meta
				}
				if fileInfo.IsWalletFile {
					out["filename_info"] = fileInfo
				}
				return printer.JSON(out)
			}

			printer.Human("File:   %s", inFile)
			printer.Human("Format: %s", format)
			if info != nil {
				printer.Human("SHA-256:        %s", info.SHA256Hash)
				printer.Human("Size:           %d bytes", info.FileSize)
				printer.Human("Encryption:     %s", info.EncryptionMethod)
				printer.Human("Key derivation: %s", info.KeyDerivation)
			}
			if meta != nil {
				printer.Human("Wallet label:   %s", meta.Label)
				printer.Human("Wallet type:    %s", meta.WalletType)
				if meta.SeedWordCount > 0 {
					printer.Human("Seed words:     %d", meta.SeedWordCount)
				}
				printer.Human("Created:        %s", meta.CreatedAt.Format("2006-01-02 15:04:05 UTC"))
			} else if fileInfo.IsWalletFile {
				printer.Human("Wallet label (from filename): %s", fileInfo.Label)
				printer.Human("Wallet type (from filename):  %s", fileInfo.WalletType)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inFile, "in", "", "input container file (required)")

	return cmd
}
