package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/config"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Global flag values shared across all commands.
var (
	flagJSON     bool
	flagQuiet    bool
	flagVerbose  bool
	flagAuditLog string
	flagConfig   string
	flagProfile  string
)

// effectiveAuditLogPath is resolved in PersistentPreRun: CLI flag > env > config file.
var effectiveAuditLogPath string

// NewRootCmd creates the top-level cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "seedvault",
		Short:   "Encrypt BIP39 seed phrases into portable containers",
		Long:    "Seedvault validates BIP39 seed phrases and encrypts them with AES-256-GCM into self-describing base64 containers, protected by a Diceware passphrase and an optional password.",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure zerolog level based on --verbose / --quiet.
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if flagVerbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			if flagQuiet {
				zerolog.SetGlobalLevel(zerolog.ErrorLevel)
			}

			// Config file is optional; a load failure falls back to defaults.
			cfg, err := config.Load(flagConfig, flagProfile)
			if err != nil {
				cfg = nil
			}

			effectiveAuditLogPath = flagAuditLog
			if effectiveAuditLogPath == "" {
				effectiveAuditLogPath = os.Getenv("SEEDVAULT_AUDIT_LOG")
			}
			if effectiveAuditLogPath == "" && cfg != nil {
				effectiveAuditLogPath = cfg.AuditLog
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags available to every subcommand.
	pf := root.PersistentFlags()
	pf.BoolVar(&flagJSON, "json", false, "output results as JSON")
	pf.BoolVar(&flagQuiet, "quiet", false, "minimal output (errors only)")
	pf.BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	pf.StringVar(&flagAuditLog, "audit-log", "", "Append-only audit log file (or SEEDVAULT_AUDIT_LOG env)")
	pf.StringVar(&flagConfig, "config", "", "config file path (or SEEDVAULT_CONFIG env)")
	pf.StringVar(&flagProfile, "profile", "", "config profile name (or SEEDVAULT_PROFILE env)")

	// Register subcommands.
	root.AddCommand(newEncryptCmd())
	root.AddCommand(newDecryptCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newValidatePassphraseCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newVerifyIntegrityCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newHashCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newMenuCmd())

	return root
}

// Execute runs the root command and exits with the code mapped from the error.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("command failed")
		code := util.ExitCodeForError(err)
		if code == util.ExitSuccess {
			code = util.ExitGenericError
		}
		os.Exit(code)
	}
}
