// Package wordlist provides the loaded, immutable wordlists the rest of the
// application validates against: the canonical BIP39 English list and the EFF
// Large Wordlist used for Diceware passphrases. Lists are loaded once and are
// safe for concurrent read access.
package wordlist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sethvargo/go-diceware/diceware"
	"github.com/tyler-smith/go-bip39/wordlists"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

// List is an immutable word list with O(1) membership checks.
type List struct {
	name  string
	words []string
	set   map[string]struct{}
}

// New builds a List from the given words. The words are lowercased and
// deduplicated; an empty input is an error rather than a silently useless list.
func New(name string, words []string) (*List, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", util.ErrEmptyWordlist, name)
	}
	l := &List{
		name: name,
		set:  make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := l.set[w]; ok {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if len(l.words) == 0 {
		return nil, fmt.Errorf("%w: %s", util.ErrEmptyWordlist, name)
	}
	sort.Strings(l.words)
	return l, nil
}

// Name returns the list's display name.
func (l *List) Name() string { return l.name }

// Len returns the number of words in the list.
func (l *List) Len() int { return len(l.words) }

// Contains reports whether word (case-insensitive) is in the list.
func (l *List) Contains(word string) bool {
	_, ok := l.set[strings.ToLower(word)]
	return ok
}

// Words returns the sorted words. Callers must treat the slice as read-only.
func (l *List) Words() []string { return l.words }

// WithPrefix returns up to limit words starting with prefix, in sorted order.
func (l *List) WithPrefix(prefix string, limit int) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" || limit <= 0 {
		return nil
	}
	i := sort.SearchStrings(l.words, prefix)
	var out []string
	for ; i < len(l.words) && len(out) < limit; i++ {
		if !strings.HasPrefix(l.words[i], prefix) {
			break
		}
		out = append(out, l.words[i])
	}
	return out
}

// BIP39English loads the canonical 2048-word BIP39 English list.
func BIP39English() (*List, error) {
	return New("bip39-english", wordlists.English)
}

// EFFLarge loads the EFF Large Wordlist (7776 words) by enumerating every
// dice roll of the embedded Diceware list.
func EFFLarge() (*List, error) {
	wl := diceware.WordListEffLarge()
	digits := wl.Digits()
	total := 1
	for i := 0; i < digits; i++ {
		total *= 6
	}

	words := make([]string, 0, total)
	for i := 0; i < total; i++ {
		// Map i to a dice roll: least-significant die first, faces 1..6.
		roll, mult, x := 0, 1, i
		for j := 0; j < digits; j++ {
			roll += ((x % 6) + 1) * mult
			x /= 6
			mult *= 10
		}
		if w := wl.WordAt(roll); w != "" {
			words = append(words, w)
		}
	}
	return New("eff-large", words)
}
