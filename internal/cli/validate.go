package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/audit"
)

func newValidateCmd() *cobra.Command {
	var (
		inFile  string
		suggest string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "validate [seed phrase]",
		Short: "Validate a BIP39 seed phrase",
		Long: "Check word count, wordlist membership, and the BIP39 checksum of a seed\n" +
			"phrase. All invalid words are reported at once. With --suggest, print\n" +
			"wordlist completions for a prefix instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			s, err := getService()
			if err != nil {
				return err
			}

			if suggest != "" {
				words := s.SuggestWords(suggest, limit)
				if printer.Mode == OutputJSON {
					return printer.JSON(map[string]any{"prefix": suggest, "suggestions": words})
				}
				for _, w := range words {
					printer.Human("%s", w)
				}
				return nil
			}

			var seed string
			switch {
			case inFile != "":
				raw, err := os.ReadFile(inFile)
				if err != nil {
					return fmt.Errorf("read seed phrase file: %w", err)
				}
				seed = strings.TrimSpace(string(raw))
			case len(args) > 0:
				seed = strings.Join(args, " ")
			default:
				seed, err = promptSeedPhrase("")
				if err != nil {
					return err
				}
			}

			res := s.ValidateSeedPhrase(s.FormatSeedPhrase(seed))
			auditLog(audit.OpValidate, inFile, "", "", "", res.IsValid, "")

			if printer.Mode == OutputJSON {
				return printer.JSON(res)
			}
			if res.IsValid {
				printer.Human("Valid %d-word seed phrase.", res.WordCount)
				return nil
			}
			printer.Human("Invalid seed phrase:")
			for _, e := range res.Errors {
				printer.Human("  - %s", e)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inFile, "in", "", "file containing the seed phrase")
	cmd.Flags().StringVar(&suggest, "suggest", "", "print BIP39 words starting with this prefix")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of suggestions")

	return cmd
}

func newValidatePassphraseCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "validate-passphrase",
		Short: "Validate a Diceware passphrase",
		Long: "Check that a passphrase has 3-20 words, all from the EFF large wordlist.\n" +
			"Repeated words are reported as a note, not an error.",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			s, err := getService()
			if err != nil {
				return err
			}

			if passphrase == "" && len(args) > 0 {
				passphrase = strings.Join(args, " ")
			}
			passphrase, err = promptSecret("Diceware passphrase", passphrase)
			if err != nil {
				return err
			}

			res := s.ValidatePassphrase(passphrase)
			auditLog(audit.OpValidate, "", "", "", "", res.IsValid, "")

			if printer.Mode == OutputJSON {
				return printer.JSON(res)
			}
			if res.IsValid {
				printer.Human("Valid %d-word passphrase (%.1f bits of entropy).",
					len(res.ValidWords), s.PassphraseEntropy(len(res.ValidWords)))
			} else {
				printer.Human("Invalid passphrase:")
				for _, e := range res.Errors {
					printer.Human("  - %s", e)
				}
			}
			for _, n := range res.Notes {
				printer.Human("Note: %s", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&passphrase, "passphrase", "", "passphrase to validate (prompts when omitted)")

	return cmd
}
