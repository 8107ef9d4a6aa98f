package mnemonic

import (
	"fmt"
	"math"
	"strings"

	"github.com/sethvargo/go-diceware/diceware"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/wordlist"
)

// Passphrase word count bounds. Six words from the EFF large list carry about
// 77 bits of entropy, the recommended default for protecting a seed phrase.
const (
	DefaultPassphraseWords = 6
	MinPassphraseWords     = 3
	MaxPassphraseWords     = 20
)

// PassphraseResult is the structured outcome of passphrase validation.
type PassphraseResult struct {
	IsValid      bool     `json:"is_valid"`
	ValidWords   []string `json:"valid_words,omitempty"`
	InvalidWords []string `json:"invalid_words,omitempty"`
	Errors       []string `json:"errors,omitempty"`
	// Notes are non-fatal observations, e.g. repeated words.
	Notes []string `json:"notes,omitempty"`
}

// PassphraseGenerator generates and validates Diceware passphrases drawn from
// the EFF Large Wordlist.
type PassphraseGenerator struct {
	list *wordlist.List
	gen  *diceware.Generator
}

// NewPassphraseGenerator wraps an already-loaded EFF list.
func NewPassphraseGenerator(list *wordlist.List) (*PassphraseGenerator, error) {
	if list == nil || list.Len() == 0 {
		return nil, fmt.Errorf("%w: eff", util.ErrEmptyWordlist)
	}
	gen, err := diceware.NewGenerator(&diceware.GeneratorInput{
		WordList: diceware.WordListEffLarge(),
	})
	if err != nil {
		return nil, fmt.Errorf("diceware generator: %w", err)
	}
	return &PassphraseGenerator{list: list, gen: gen}, nil
}

// Generate draws wordCount words uniformly at random, each draw independent
// and with replacement, per standard Diceware methodology. A wordCount of 0
// selects the default of 6. Failure of the underlying CSPRNG is fatal: there
// is no fallback to weaker randomness.
func (g *PassphraseGenerator) Generate(wordCount int) (string, error) {
	if wordCount == 0 {
		wordCount = DefaultPassphraseWords
	}
	if wordCount < MinPassphraseWords || wordCount > MaxPassphraseWords {
		return "", fmt.Errorf("%w: passphrase word count must be between %d and %d, got %d",
			util.ErrValidation, MinPassphraseWords, MaxPassphraseWords, wordCount)
	}
	words, err := g.gen.Generate(wordCount)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrRandomnessUnavailable, err)
	}
	return strings.Join(words, " "), nil
}

// Validate checks a user-supplied passphrase: 3..20 words, every word in the
// EFF list. Repeated words are reported as a note, not an error; Diceware
// draws with replacement, so a generated passphrase may legitimately repeat.
func (g *PassphraseGenerator) Validate(phrase string) PassphraseResult {
	words := strings.Fields(strings.TrimSpace(phrase))
	var res PassphraseResult

	if len(words) == 0 {
		res.Errors = append(res.Errors, "passphrase is empty")
		return res
	}
	if len(words) < MinPassphraseWords {
		res.Errors = append(res.Errors,
			fmt.Sprintf("passphrase must contain at least %d words", MinPassphraseWords))
	}
	if len(words) > MaxPassphraseWords {
		res.Errors = append(res.Errors,
			fmt.Sprintf("passphrase must not exceed %d words", MaxPassphraseWords))
	}

	seen := make(map[string]bool, len(words))
	dup := false
	for _, w := range words {
		lw := strings.ToLower(w)
		if g.list.Contains(lw) {
			res.ValidWords = append(res.ValidWords, w)
		} else {
			res.InvalidWords = append(res.InvalidWords, w)
			res.Errors = append(res.Errors, fmt.Sprintf("%q is not in the EFF wordlist", w))
		}
		if seen[lw] {
			dup = true
		}
		seen[lw] = true
	}
	if dup {
		res.Notes = append(res.Notes, "passphrase contains repeated words")
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

// Entropy estimates the bits of entropy of a wordCount-word passphrase drawn
// from this list.
func (g *PassphraseGenerator) Entropy(wordCount int) float64 {
	if wordCount <= 0 || g.list.Len() == 0 {
		return 0
	}
	return float64(wordCount) * math.Log2(float64(g.list.Len()))
}
