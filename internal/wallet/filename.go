package wallet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Extension is the fixed suggested extension for encrypted containers.
const Extension = ".bin"

const dateLayout = "2006-01-02"

var wordCountToken = regexp.MustCompile(`^(\d+)w$`)

// Sanitize maps arbitrary Unicode to the filesystem-safe charset
// [A-Za-z0-9-]: every other rune becomes '_', runs of '_' collapse, and
// leading/trailing '_' are trimmed. It never fails.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastUnderscore := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// BuildFilename derives the suggested filename for a wallet-labeled
// container:
//
//	<label>_<wallettype>[_<N>w]_<YYYY-MM-DD>.bin
//
// Label keeps its case; wallet type is lowercased. Deterministic for
// identical metadata on the same day, and total on arbitrary Unicode input.
func BuildFilename(m *Metadata) string {
	label := Sanitize(m.Label)
	if label == "" {
		label = "wallet"
	}
	walletType := strings.ToLower(Sanitize(m.WalletType))
	if walletType == "" {
		walletType = "wallet"
	}

	parts := []string{label, walletType}
	if m.SeedWordCount > 0 {
		parts = append(parts, fmt.Sprintf("%dw", m.SeedWordCount))
	}

	created := m.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	parts = append(parts, created.UTC().Format(dateLayout))

	return strings.Join(parts, "_") + Extension
}

// DefaultFilename is the suggested name when no wallet metadata was supplied.
func DefaultFilename(now time.Time) string {
	return "seed_phrase_" + now.UTC().Format("20060102_150405") + Extension
}

// FilenameInfo is the result of parsing a filename for wallet metadata.
type FilenameInfo struct {
	IsWalletFile  bool      `json:"is_wallet_file"`
	Label         string    `json:"label,omitempty"`
	WalletType    string    `json:"wallet_type,omitempty"`
	SeedWordCount int       `json:"seed_word_count,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	Original      string    `json:"original_filename"`
}

// ParseFilename recovers wallet info from a filename produced by
// BuildFilename. Non-conforming names report IsWalletFile=false; parsing
// never fails. Labels containing '_' cannot be reconstructed exactly: the
// first token is taken as the label and the remainder before the optional
// word count as the wallet type, matching how BuildFilename lays fields out.
func ParseFilename(name string) *FilenameInfo {
	info := &FilenameInfo{Original: name}

	base := strings.TrimSuffix(name, Extension)
	if base == name {
		base = strings.TrimSuffix(name, ".txt")
	}
	parts := strings.Split(base, "_")
	if len(parts) < 3 {
		return info
	}

	created, err := time.ParseInLocation(dateLayout, parts[len(parts)-1], time.UTC)
	if err != nil {
		return info
	}
	parts = parts[:len(parts)-1]

	wordCount := 0
	if m := wordCountToken.FindStringSubmatch(parts[len(parts)-1]); m != nil {
		wordCount, _ = strconv.Atoi(m[1])
		parts = parts[:len(parts)-1]
	}
	if len(parts) < 2 {
		return info
	}

	label := parts[0]
	walletType := strings.Join(parts[1:], "_")
	if label == "" || walletType == "" {
		return info
	}

	info.IsWalletFile = true
	info.Label = label
	info.WalletType = walletType
	info.SeedWordCount = wordCount
	info.CreatedAt = created
	return info
}
