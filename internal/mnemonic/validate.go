// Package mnemonic validates BIP39 seed phrases and generates and validates
// EFF-wordlist Diceware passphrases. All operations are pure functions over
// wordlists loaded up front; nothing here performs I/O or logs secrets.
package mnemonic

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/wordlist"
)

// ValidWordCounts are the seed phrase lengths BIP39 defines.
var ValidWordCounts = []int{12, 15, 18, 21, 24}

// ValidWordCount reports whether n is an allowed BIP39 word count.
func ValidWordCount(n int) bool {
	for _, c := range ValidWordCounts {
		if n == c {
			return true
		}
	}
	return false
}

// ValidationResult is the structured outcome of seed phrase validation.
type ValidationResult struct {
	IsValid       bool     `json:"is_valid"`
	WordCount     int      `json:"word_count"`
	InvalidWords  []string `json:"invalid_words,omitempty"`
	ChecksumValid bool     `json:"checksum_valid"`
	Errors        []string `json:"errors,omitempty"`
}

// Message returns a single human-readable summary of the result.
func (r ValidationResult) Message() string {
	if r.IsValid {
		return fmt.Sprintf("valid %d-word seed phrase", r.WordCount)
	}
	return strings.Join(r.Errors, "; ")
}

// Validator checks seed phrases against a loaded BIP39 wordlist.
type Validator struct {
	list *wordlist.List
}

// NewValidator wraps an already-loaded BIP39 list.
func NewValidator(list *wordlist.List) (*Validator, error) {
	if list == nil || list.Len() == 0 {
		return nil, fmt.Errorf("%w: bip39", util.ErrEmptyWordlist)
	}
	return &Validator{list: list}, nil
}

// Validate checks a seed phrase in three stages: word count first (failing
// fast with the actual count), then every word against the BIP39 list
// (collecting all misses, not just the first), then the BIP39 checksum.
func (v *Validator) Validate(phrase string) ValidationResult {
	words := strings.Fields(strings.TrimSpace(phrase))
	res := ValidationResult{WordCount: len(words)}

	if len(words) == 0 {
		res.Errors = append(res.Errors, "empty seed phrase")
		return res
	}

	if !ValidWordCount(len(words)) {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"invalid word count: expected 12, 15, 18, 21, or 24 words, got %d", len(words)))
		return res
	}

	for _, w := range words {
		if !v.list.Contains(w) {
			res.InvalidWords = append(res.InvalidWords, w)
		}
	}
	if len(res.InvalidWords) > 0 {
		res.Errors = append(res.Errors, fmt.Sprintf(
			"words not in the BIP39 wordlist: %s", strings.Join(res.InvalidWords, ", ")))
		return res
	}

	if !bip39.IsMnemonicValid(strings.ToLower(strings.Join(words, " "))) {
		res.Errors = append(res.Errors, "BIP39 checksum validation failed")
		return res
	}

	res.ChecksumValid = true
	res.IsValid = true
	return res
}

// IsWord reports whether a single word is in the BIP39 list.
func (v *Validator) IsWord(word string) bool {
	return v.list.Contains(word)
}

// Suggest returns up to limit BIP39 words starting with prefix.
func (v *Validator) Suggest(prefix string, limit int) []string {
	if limit <= 0 {
		limit = 8
	}
	return v.list.WithPrefix(prefix, limit)
}
