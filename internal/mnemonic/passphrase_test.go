package mnemonic

import (
	"strings"
	"testing"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/wordlist"
)

func newTestGenerator(t *testing.T) (*PassphraseGenerator, *wordlist.List) {
	t.Helper()
	list, err := wordlist.EFFLarge()
	if err != nil {
		t.Fatalf("load eff list: %v", err)
	}
	g, err := NewPassphraseGenerator(list)
	if err != nil {
		t.Fatalf("NewPassphraseGenerator: %v", err)
	}
	return g, list
}

func TestGenerate_DefaultCount(t *testing.T) {
	g, list := newTestGenerator(t)
	phrase, err := g.Generate(0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	words := strings.Fields(phrase)
	if len(words) != DefaultPassphraseWords {
		t.Fatalf("got %d words, want %d", len(words), DefaultPassphraseWords)
	}
	for _, w := range words {
		if strings.Contains(w, " ") {
			t.Errorf("word %q contains a space", w)
		}
		if !list.Contains(w) {
			t.Errorf("word %q not in EFF list", w)
		}
	}
}

func TestGenerate_ConsecutiveCallsDiffer(t *testing.T) {
	g, _ := newTestGenerator(t)
	a, err := g.Generate(6)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := g.Generate(6)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// 7776^6 possibilities; a collision here means the RNG is broken.
	if a == b {
		t.Errorf("two consecutive passphrases identical: %q", a)
	}
}

func TestGenerate_BoundsEnforced(t *testing.T) {
	g, _ := newTestGenerator(t)
	for _, n := range []int{-1, 1, 2, 21, 100} {
		if _, err := g.Generate(n); err == nil {
			t.Errorf("Generate(%d) succeeded, want error", n)
		}
	}
}

func TestValidatePassphrase(t *testing.T) {
	g, list := newTestGenerator(t)

	// Build a known-good passphrase from the list itself.
	words := list.Words()
	good := strings.Join([]string{words[0], words[100], words[5000]}, " ")

	res := g.Validate(good)
	if !res.IsValid {
		t.Fatalf("expected valid, errors: %v", res.Errors)
	}
	if len(res.ValidWords) != 3 {
		t.Errorf("ValidWords = %v", res.ValidWords)
	}

	res = g.Validate(good + " qqqqqqq")
	if res.IsValid {
		t.Fatal("passphrase with unknown word reported valid")
	}
	if len(res.InvalidWords) != 1 || res.InvalidWords[0] != "qqqqqqq" {
		t.Errorf("InvalidWords = %v", res.InvalidWords)
	}

	res = g.Validate(words[0] + " " + words[1])
	if res.IsValid {
		t.Error("two-word passphrase reported valid")
	}

	res = g.Validate("")
	if res.IsValid {
		t.Error("empty passphrase reported valid")
	}
}

func TestValidatePassphrase_DuplicatesAreNote(t *testing.T) {
	g, list := newTestGenerator(t)
	w := list.Words()
	phrase := strings.Join([]string{w[10], w[10], w[20]}, " ")

	res := g.Validate(phrase)
	if !res.IsValid {
		t.Fatalf("duplicate words must not invalidate, errors: %v", res.Errors)
	}
	if len(res.Notes) == 0 {
		t.Error("expected a note about repeated words")
	}
}

func TestEntropy(t *testing.T) {
	g, _ := newTestGenerator(t)
	e := g.Entropy(6)
	// 6 * log2(7776) ≈ 77.5 bits.
	if e < 77 || e > 78 {
		t.Errorf("Entropy(6) = %f, want ~77.5", e)
	}
	if g.Entropy(0) != 0 {
		t.Error("Entropy(0) should be 0")
	}
}
