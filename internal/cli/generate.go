package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/audit"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/config"
)

func newGenerateCmd() *cobra.Command {
	var words int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Diceware passphrase",
		Long: "Draw a fresh passphrase from the EFF large wordlist using the system CSPRNG.\n" +
			"Each word contributes about 12.9 bits of entropy.",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			s, err := getService()
			if err != nil {
				return err
			}

			if words == 0 {
				if cfg := config.Get(); cfg != nil {
					words = cfg.PassphraseWords
				}
			}

			p, err := s.GeneratePassphrase(words)
			if err != nil {
				auditLog(audit.OpGenerate, "", "", "", "", false, err.Error())
				return err
			}
			n := len(strings.Fields(p))
			entropy := s.PassphraseEntropy(n)

			// The passphrase itself never reaches the audit log.
			auditLog(audit.OpGenerate, "", "", "", "", true, "")

			switch printer.Mode {
			case OutputJSON:
				return printer.JSON(map[string]any{
					"passphrase":   p,
					"word_count":   n,
					"entropy_bits": entropy,
				})
			default:
				printer.Human("%s", p)
				printer.Human("Words:   %d", n)
				printer.Human("Entropy: %.1f bits", entropy)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&words, "words", 0, "number of words (3-20, default 6)")

	return cmd
}
