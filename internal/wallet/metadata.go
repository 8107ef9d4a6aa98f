// Package wallet carries the optional wallet metadata block embedded in
// advanced containers and derives filesystem-safe suggested filenames from
// it. Metadata is display-only: decryption never requires it.
package wallet

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

// MaxLabelLen bounds the user-chosen label.
const MaxLabelLen = 50

// Preset wallet type names offered by callers; any other string is treated as
// a custom type.
const (
	TypeMain = "Main Wallet"
	TypeCold = "Cold Wallet"
	TypeHot  = "Hot Wallet"
	TypeTest = "Test Wallet"
)

// PresetLabels are the suggested wallet labels surfaced to callers.
func PresetLabels() []string {
	return []string{
		TypeMain,
		TypeCold,
		TypeHot,
		TypeTest,
		"Hardware Wallet",
		"Backup Wallet",
		"Multi-sig Wallet",
	}
}

// Metadata is the structured record optionally embedded in an advanced
// container and echoed back for display.
type Metadata struct {
	Label         string    `json:"label"`
	WalletType    string    `json:"wallet_type"`
	CreatedAt     time.Time `json:"created_at"`
	SeedWordCount int       `json:"seed_word_count,omitempty"`
}

// Normalize trims and bounds the free-form fields and stamps CreatedAt when
// unset. Arbitrary Unicode input is accepted; sanitizing happens only at
// filename time.
func (m *Metadata) Normalize(now time.Time) {
	m.Label = strings.TrimSpace(m.Label)
	if r := []rune(m.Label); len(r) > MaxLabelLen {
		m.Label = string(r[:MaxLabelLen])
	}
	m.WalletType = strings.TrimSpace(m.WalletType)
	if m.WalletType == "" {
		m.WalletType = TypeMain
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now.UTC()
	} else {
		m.CreatedAt = m.CreatedAt.UTC()
	}
}

// Encode serializes the metadata block for embedding in a container.
func Encode(m *Metadata) ([]byte, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal wallet metadata: %v", util.ErrEncoding, err)
	}
	return raw, nil
}

// Decode parses a metadata block. An empty block means the container was
// written without wallet metadata; that is a nil result, not an error.
func Decode(raw []byte) (*Metadata, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: wallet metadata block: %v", util.ErrTruncatedContainer, err)
	}
	return &m, nil
}
