package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration and precedence",
		Long: "Show the effective configuration used by seedvault (from config file and profile).\n\n" +
			"Precedence (highest wins):\n" +
			"  1. CLI flags (e.g. --audit-log, --kdf)\n" +
			"  2. Environment variables (e.g. SEEDVAULT_AUDIT_LOG)\n" +
			"  3. Config file (from --config, SEEDVAULT_CONFIG, or ~/.seedvault.yaml / ./.seedvault.yaml)\n" +
			"  4. Profile overrides (from --profile or SEEDVAULT_PROFILE)\n" +
			"  5. Built-in defaults\n\n" +
			"Config file keys: audit_log, kdf, iterations, output_dir, passphrase_words.\n" +
			"Profiles can override any of these under the 'profiles' key (e.g. profiles.paranoid.kdf).",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			cfg := config.Get()
			if cfg == nil {
				cfg = &config.EffectiveConfig{}
				*cfg = config.DefaultEffective()
			}

			switch printer.Mode {
			case OutputJSON:
				out, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, string(out))
			default:
				printer.Human("Effective configuration:")
				printer.Human("  audit_log:        %q", cfg.AuditLog)
				printer.Human("  kdf:              %s", cfg.KDF)
				printer.Human("  iterations:       %d", cfg.Iterations)
				printer.Human("  output_dir:       %q", cfg.OutputDir)
				printer.Human("  passphrase_words: %d", cfg.PassphraseWords)
			}
			return nil
		},
	}
	return cmd
}
