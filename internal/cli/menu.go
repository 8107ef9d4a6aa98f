package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/audit"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/wallet"
)

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive mode — guided workflow",
		Long:  "Launch an interactive menu to walk through seedvault operations step by step.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var action string

			err := huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Encrypt a seed phrase", "encrypt"),
					huh.NewOption("Decrypt a container", "decrypt"),
					huh.NewOption("Generate a Diceware passphrase", "generate"),
					huh.NewOption("Validate a seed phrase", "validate"),
					huh.NewOption("Inspect a container", "inspect"),
					huh.NewOption("Verify container integrity", "verify"),
					huh.NewOption("Exit", "exit"),
				).
				Value(&action).
				Run()
			if err != nil {
				return err
			}

			auditLog(audit.OpMenu, "", "", "", "", true, "")

			switch action {
			case "encrypt":
				return runEncryptMenu()
			case "decrypt":
				return runDecryptMenu()
			case "generate":
				return runGenerateMenu()
			case "validate":
				return runValidateMenu()
			case "inspect":
				return runInspectMenu()
			case "verify":
				return runVerifyMenu()
			case "exit":
				fmt.Println("Goodbye.")
				return nil
			}
			return nil
		},
	}
	return cmd
}

func runEncryptMenu() error {
	var (
		inFile     string
		outFile    string
		passphrase string
		password   string
		mode       string
		kdfAlg     string
		label      string
		walletType string
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Seed phrase file (leave blank to type it in)").
				Placeholder("/path/to/seed.txt").
				Value(&inFile),
			huh.NewInput().
				Title("Output container path (leave blank for suggested name)").
				Placeholder("wallet.bin").
				Value(&outFile),
			huh.NewSelect[string]().
				Title("Container format").
				Options(
					huh.NewOption("Standard (PBKDF2, compact)", "standard"),
					huh.NewOption("Advanced (choice of KDF + integrity hash)", "advanced"),
					huh.NewOption("Advanced with wallet metadata", "wallet"),
				).
				Value(&mode),
		),
	).Run()
	if err != nil {
		return err
	}

	if mode == "advanced" || mode == "wallet" {
		err = huh.NewSelect[string]().
			Title("Key derivation function").
			Options(
				huh.NewOption("PBKDF2-SHA256 (default)", "pbkdf2-sha256"),
				huh.NewOption("Argon2id (memory-hard)", "argon2id"),
				huh.NewOption("scrypt", "scrypt"),
			).
			Value(&kdfAlg).
			Run()
		if err != nil {
			return err
		}
	}

	if mode == "wallet" {
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Wallet label").
					Placeholder("Savings").
					Value(&label),
				huh.NewSelect[string]().
					Title("Wallet type").
					Options(walletTypeOptions()...).
					Value(&walletType),
			),
		).Run()
		if err != nil {
			return err
		}
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Diceware passphrase").
				EchoMode(huh.EchoModePassword).
				Value(&passphrase),
			huh.NewInput().
				Title("Extra password (optional)").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	).Run()
	if err != nil {
		return err
	}

	args := []string{"encrypt", "--passphrase", passphrase}
	if inFile != "" {
		args = append(args, "--in", inFile)
	}
	if outFile != "" {
		args = append(args, "--out", outFile)
	}
	if password != "" {
		args = append(args, "--password", password)
	}
	switch mode {
	case "advanced":
		args = append(args, "--advanced", "--kdf", kdfAlg)
	case "wallet":
		args = append(args, "--kdf", kdfAlg, "--label", label, "--wallet-type", walletType)
	}

	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func walletTypeOptions() []huh.Option[string] {
	labels := wallet.PresetLabels()
	opts := make([]huh.Option[string], 0, len(labels))
	for _, l := range labels {
		opts = append(opts, huh.NewOption(l, l))
	}
	return opts
}

func runDecryptMenu() error {
	var (
		inFile     string
		passphrase string
		password   string
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Input container file").
				Placeholder("/path/to/wallet.bin").
				Value(&inFile),
			huh.NewInput().
				Title("Diceware passphrase").
				EchoMode(huh.EchoModePassword).
				Value(&passphrase),
			huh.NewInput().
				Title("Extra password (leave blank if none)").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	).Run()
	if err != nil {
		return err
	}

	args := []string{"decrypt", "--in", inFile, "--passphrase", passphrase}
	if password != "" {
		args = append(args, "--password", password)
	}

	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func runGenerateMenu() error {
	var words string

	err := huh.NewInput().
		Title("Number of words (3-20)").
		Placeholder("6").
		Value(&words).
		Run()
	if err != nil {
		return err
	}

	args := []string{"generate"}
	if n, err := strconv.Atoi(words); err == nil && n > 0 {
		args = append(args, "--words", words)
	}

	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func runValidateMenu() error {
	var inFile string

	err := huh.NewInput().
		Title("Seed phrase file (leave blank to type it in)").
		Placeholder("/path/to/seed.txt").
		Value(&inFile).
		Run()
	if err != nil {
		return err
	}

	args := []string{"validate"}
	if inFile != "" {
		args = append(args, "--in", inFile)
	}

	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func runInspectMenu() error {
	var (
		inFile  string
		useJSON bool
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Input container file").
				Placeholder("/path/to/wallet.bin").
				Value(&inFile),
			huh.NewConfirm().
				Title("Output as JSON?").
				Value(&useJSON),
		),
	).Run()
	if err != nil {
		return err
	}

	args := []string{"inspect", "--in", inFile}
	if useJSON {
		args = append(args, "--json")
	}

	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func runVerifyMenu() error {
	var inFile string

	err := huh.NewInput().
		Title("Input container file").
		Placeholder("/path/to/wallet.bin").
		Value(&inFile).
		Run()
	if err != nil {
		return err
	}

	root := NewRootCmd()
	root.SetArgs([]string{"verify", "--in", inFile})
	return root.Execute()
}
