package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/audit"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/config"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/crypto"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/vault"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/wallet"
)

func newEncryptCmd() *cobra.Command {
	var (
		inFile     string
		outFile    string
		passphrase string
		password   string
		advanced   bool
		kdfName    string
		iterations uint32
		label      string
		walletType string
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a seed phrase into a container file",
		Long: "Validate a BIP39 seed phrase and encrypt it into a base64 container.\n" +
			"The standard format uses PBKDF2-SHA256 at the default iteration count; --advanced\n" +
			"(or any of --kdf, --iterations, --label, --wallet-type) selects the advanced format\n" +
			"with explicit KDF parameters and an integrity hash.",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			s, err := getService()
			if err != nil {
				return err
			}

			var seed string
			if inFile != "" {
				raw, err := os.ReadFile(inFile)
				if err != nil {
					return fmt.Errorf("read seed phrase file: %w", err)
				}
				seed = strings.TrimSpace(string(raw))
			} else {
				seed, err = promptSeedPhrase("")
				if err != nil {
					return err
				}
			}

			passphrase, err = promptSecret("Diceware passphrase", passphrase)
			if err != nil {
				return err
			}

			cfg := config.Get()
			if kdfName == "" && cfg != nil {
				kdfName = cfg.KDF
			}
			if iterations == 0 && cfg != nil {
				iterations = cfg.Iterations
			}
			opts := vault.AdvancedOptions{KDFMethod: kdfName, Iterations: iterations}
			useAdvanced := advanced || cmd.Flags().Changed("kdf") || cmd.Flags().Changed("iterations")

			var (
				encoded       string
				containerHash string
				format        string
				suggested     string
			)

			switch {
			case label != "" || walletType != "":
				meta := &wallet.Metadata{Label: label, WalletType: walletType}
				res, err := s.EncryptWithWalletMetadata(seed, passphrase, password, meta, opts)
				if err != nil {
					auditLog(audit.OpEncrypt, inFile, "", "", "advanced", false, err.Error())
					return err
				}
				encoded = res.EncryptedContent
				containerHash = res.Integrity.SHA256Hash
				format = "advanced"
				suggested = res.SuggestedFilename

			case useAdvanced:
				res, err := s.EncryptAdvanced(seed, passphrase, password, opts)
				if err != nil {
					auditLog(audit.OpEncrypt, inFile, "", "", "advanced", false, err.Error())
					return err
				}
				encoded = res.EncryptedContent
				containerHash = res.Integrity.SHA256Hash
				format = "advanced"
				suggested = wallet.DefaultFilename(time.Now())

			default:
				encoded, err = s.EncryptSeedPhrase(seed, passphrase, password)
				if err != nil {
					auditLog(audit.OpEncrypt, inFile, "", "", "standard", false, err.Error())
					return err
				}
				containerHash, _ = crypto.SumHex([]byte(encoded), "sha256")
				format = "standard"
				suggested = wallet.DefaultFilename(time.Now())
			}

			if outFile == "" {
				dir := "."
				if cfg != nil && cfg.OutputDir != "" {
					dir = cfg.OutputDir
				}
				outFile = filepath.Join(dir, suggested)
			}
			if err := os.WriteFile(outFile, []byte(encoded), 0o600); err != nil {
				auditLog(audit.OpEncrypt, inFile, outFile, containerHash, format, false, err.Error())
				return fmt.Errorf("write container: %w", err)
			}

			auditLog(audit.OpEncrypt, inFile, outFile, containerHash, format, true, "")

			switch printer.Mode {
			case OutputJSON:
				return printer.JSON(map[string]any{
					"output":         outFile,
					"format":         format,
					"container_hash": containerHash,
				})
			default:
				printer.Human("Encrypted: %s", outFile)
				printer.Human("Format:    %s", format)
				printer.Human("SHA-256:   %s", containerHash)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inFile, "in", "", "file containing the seed phrase (prompts when omitted)")
	cmd.Flags().StringVar(&outFile, "out", "", "output container path (default: suggested name in output_dir)")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Diceware passphrase (prompts when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "optional extra password")
	cmd.Flags().BoolVar(&advanced, "advanced", false, "use the advanced container format")
	cmd.Flags().StringVar(&kdfName, "kdf", "", "key derivation method: pbkdf2-sha256, argon2id, scrypt")
	cmd.Flags().Uint32Var(&iterations, "iterations", 0, "KDF iteration count (default: 100000)")
	cmd.Flags().StringVar(&label, "label", "", "wallet label to embed (implies advanced format)")
	cmd.Flags().StringVar(&walletType, "wallet-type", "", "wallet type to embed (implies advanced format)")

	return cmd
}
