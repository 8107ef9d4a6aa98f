package vault

import (
	"time"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/wallet"
)

// WalletEncryptResult extends the advanced encryption result with the
// embedded wallet metadata and a suggested output filename.
type WalletEncryptResult struct {
	AdvancedResult
	Metadata          *wallet.Metadata `json:"wallet_metadata,omitempty"`
	SuggestedFilename string           `json:"suggested_filename"`
}

// EncryptWithWalletMetadata encrypts a seed phrase into an advanced container
// with the wallet metadata block embedded. The metadata is normalized and
// stamped with the validated seed word count before embedding; a nil metadata
// produces a plain advanced container with a timestamp-based filename.
func (s *Service) EncryptWithWalletMetadata(seedPhrase, passphrase, password string, meta *wallet.Metadata, opts AdvancedOptions) (*WalletEncryptResult, error) {
	now := time.Now().UTC()

	if meta == nil {
		res, err := s.encryptAdvanced(seedPhrase, passphrase, password, opts, nil)
		if err != nil {
			return nil, err
		}
		return &WalletEncryptResult{
			AdvancedResult:    *res,
			SuggestedFilename: wallet.DefaultFilename(now),
		}, nil
	}

	meta.Normalize(now)
	if v := s.validator.Validate(seedPhrase); v.IsValid {
		meta.SeedWordCount = v.WordCount
	}

	raw, err := wallet.Encode(meta)
	if err != nil {
		return nil, err
	}
	res, err := s.encryptAdvanced(seedPhrase, passphrase, password, opts, raw)
	if err != nil {
		return nil, err
	}
	res.Integrity.CreatedAt = meta.CreatedAt

	return &WalletEncryptResult{
		AdvancedResult:    *res,
		Metadata:          meta,
		SuggestedFilename: wallet.BuildFilename(meta),
	}, nil
}

// WalletMetadata extracts the embedded metadata block from an advanced
// container without decrypting it. Standard containers and advanced
// containers written without metadata report nil.
func (s *Service) WalletMetadata(encoded string) (*wallet.Metadata, error) {
	c, err := decodeAdvancedOnly(encoded)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return wallet.Decode(c.MetadataRaw)
}

// ParseWalletFilename recovers wallet info from a suggested filename.
func (s *Service) ParseWalletFilename(name string) *wallet.FilenameInfo {
	return wallet.ParseFilename(name)
}

// PresetWalletLabels returns the suggested wallet labels for pickers.
func (s *Service) PresetWalletLabels() []string {
	return wallet.PresetLabels()
}
