package container

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

// IntegrityReport is the outcome of recomputing an advanced container's
// SHA-256 against its stored hash. The check needs no secrets and is far
// cheaper than an AEAD decryption, so it serves as a quick corruption check.
type IntegrityReport struct {
	Valid        bool   `json:"is_valid"`
	ExpectedHash string `json:"expected_hash"`
	ActualHash   string `json:"actual_hash"`
	Message      string `json:"message"`
}

// VerifyIntegrity recomputes the integrity hash of a base64 advanced
// container. Standard containers carry no integrity block and yield
// ErrNoIntegrityBlock; their AEAD tag is the sole integrity guarantee.
func VerifyIntegrity(encoded string) (*IntegrityReport, error) {
	data, err := util.B64Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMalformedBase64, err)
	}
	if !bytes.HasPrefix(data, []byte(Magic)) {
		return nil, util.ErrNoIntegrityBlock
	}
	if len(data) < minAdvancedSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d",
			util.ErrTruncatedContainer, len(data), minAdvancedSize)
	}

	hashStart := len(data) - integrityHashSize
	expected := data[hashStart:]
	actual := sha256.Sum256(data[:hashStart])

	report := &IntegrityReport{
		ExpectedHash: hex.EncodeToString(expected),
		ActualHash:   hex.EncodeToString(actual[:]),
	}
	if bytes.Equal(expected, actual[:]) {
		report.Valid = true
		report.Message = "integrity verified"
	} else {
		report.Message = "integrity hash mismatch: container may be corrupted or tampered with"
	}
	return report, nil
}
