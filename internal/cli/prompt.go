package cli

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// promptSecret asks for a hidden value when the flag was not given.
func promptSecret(title, current string) (string, error) {
	if current != "" {
		return current, nil
	}
	var value string
	err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&value).
		Run()
	if err != nil {
		return "", err
	}
	return value, nil
}

// promptSeedPhrase asks for the seed phrase when no input file was given.
// The input echoes: users need to see the words they type.
func promptSeedPhrase(current string) (string, error) {
	if strings.TrimSpace(current) != "" {
		return current, nil
	}
	var value string
	err := huh.NewText().
		Title("Seed phrase").
		Description("12, 15, 18, 21, or 24 BIP39 words").
		Value(&value).
		Run()
	if err != nil {
		return "", err
	}
	return value, nil
}
