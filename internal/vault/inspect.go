package vault

import (
	"fmt"
	"strings"
	"time"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/container"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/wallet"
)

// decodeAdvancedOnly decodes a container and returns its advanced form, or
// nil if the container is in the standard format.
func decodeAdvancedOnly(encoded string) (*container.Advanced, error) {
	c, err := container.Decode(encoded)
	if err != nil {
		return nil, err
	}
	if c.Format != container.FormatAdvanced {
		return nil, nil
	}
	return c.Advanced, nil
}

// IntegrityInfo describes an advanced container from its header and trailer
// alone. Standard containers carry no integrity block and are rejected.
func (s *Service) IntegrityInfo(encoded string) (*IntegrityInfo, error) {
	adv, err := decodeAdvancedOnly(encoded)
	if err != nil {
		return nil, err
	}
	if adv == nil {
		return nil, util.ErrNoIntegrityBlock
	}

	raw, err := util.B64Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMalformedBase64, err)
	}

	info := &IntegrityInfo{
		SHA256Hash:       fmt.Sprintf("%x", adv.IntegrityHash),
		FileSize:         int64(len(raw)),
		EncryptionMethod: EncryptionMethod,
		KeyDerivation:    adv.KDF.Describe(),
	}
	if meta, err := wallet.Decode(adv.MetadataRaw); err == nil && meta != nil {
		info.CreatedAt = meta.CreatedAt
	}
	return info, nil
}

// VerifyIntegrity recomputes the integrity hash of an advanced container and
// compares it against the stored one. Standard containers are rejected with
// ErrNoIntegrityBlock.
func (s *Service) VerifyIntegrity(encoded string) (*container.IntegrityReport, error) {
	return container.VerifyIntegrity(encoded)
}

// ExportIntegrityReport renders a human-readable verification record for an
// advanced container, suitable for storing alongside the encrypted file.
func (s *Service) ExportIntegrityReport(encoded string, now time.Time) (string, error) {
	info, err := s.IntegrityInfo(encoded)
	if err != nil {
		return "", err
	}
	report, err := container.VerifyIntegrity(encoded)
	if err != nil {
		return "", err
	}

	status := "VERIFIED"
	if !report.Valid {
		status = "MISMATCH"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Seed Phrase Container Integrity Report\n")
	fmt.Fprintf(&b, "Generated:      %s\n\n", now.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "SHA-256:        %s\n", info.SHA256Hash)
	fmt.Fprintf(&b, "File size:      %d bytes\n", info.FileSize)
	fmt.Fprintf(&b, "Encryption:     %s\n", info.EncryptionMethod)
	fmt.Fprintf(&b, "Key derivation: %s\n", info.KeyDerivation)
	if !info.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Created:        %s\n", info.CreatedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(&b, "Integrity:      %s\n", status)
	return b.String(), nil
}
