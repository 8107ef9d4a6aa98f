package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/audit"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/crypto"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

func newHashCmd() *cobra.Command {
	var (
		inFile string
		algo   string
	)

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute a hash digest for a file",
		Long:  "Compute a cryptographic hash (e.g. SHA-256) of the input file, for manually checking a stored container against an integrity report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)

			if inFile == "" {
				return fmt.Errorf("--in is required")
			}
			if !crypto.SupportedHashAlgo(algo) {
				return fmt.Errorf("%w: hash algorithm %q", util.ErrValidation, algo)
			}

			f, err := os.Open(inFile)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("stat input file: %w", err)
			}

			digest, err := crypto.HashReader(f, algo)
			if err != nil {
				auditLog(audit.OpHash, inFile, "", "", "", false, err.Error())
				return fmt.Errorf("hash: %w", err)
			}
			digestHex := fmt.Sprintf("%x", digest)

			auditLog(audit.OpHash, inFile, "", digestHex, "", true, "")

			switch printer.Mode {
			case OutputJSON:
				return printer.JSON(map[string]any{
					"file":       inFile,
					"algo":       algo,
					"digest_hex": digestHex,
					"size":       info.Size(),
				})
			default:
				printer.Human("File:   %s", inFile)
				printer.Human("Algo:   %s", algo)
				printer.Human("Digest: %s", digestHex)
				printer.Human("Size:   %d bytes", info.Size())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inFile, "in", "", "input file to hash (required)")
	cmd.Flags().StringVar(&algo, "algo", "sha256", "hash algorithm (default: sha256)")

	return cmd
}
