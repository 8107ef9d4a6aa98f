package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/audit"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/crypto"
)

func newDecryptCmd() *cobra.Command {
	var (
		inFile     string
		outFile    string
		passphrase string
		password   string
	)

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a seed phrase container",
		Long: "Read a base64 container, derive the key from the passphrase (and optional\n" +
			"password), and recover the seed phrase. The container format is detected\n" +
			"automatically; advanced containers have their integrity hash checked first.",
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
			containerHash, _ := crypto.SumHex([]byte(encoded), "sha256")

			passphrase, err = promptSecret("Diceware passphrase", passphrase)
			if err != nil {
				return err
			}

			seed, err := s.Decrypt(encoded, passphrase, password)
			if err != nil {
				auditLog(audit.OpDecrypt, inFile, outFile, containerHash, "", false, err.Error())
				return err
			}

			auditLog(audit.OpDecrypt, inFile, outFile, containerHash, "", true, "")

			if outFile != "" {
				if err := os.WriteFile(outFile, []byte(seed), 0o600); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				printer.Human("Decrypted: %s", inFile)
				printer.Human("Output:    %s", outFile)
				return nil
			}

			switch printer.Mode {
			case OutputJSON:
				return printer.JSON(map[string]any{
					"seed_phrase": seed,
					"word_count":  len(strings.Fields(seed)),
				})
			default:
				printer.Human("%s", seed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inFile, "in", "", "input container file (required)")
	cmd.Flags().StringVar(&outFile, "out", "", "write the seed phrase to this file instead of stdout")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Diceware passphrase (prompts when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "optional extra password")

	return cmd
}
