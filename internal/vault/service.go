// Package vault is the collaborator-facing core: every operation the
// presentation layer consumes lives on Service. All operations are pure
// data-in/data-out transformations, safe for concurrent use, and never log
// or embed secret material (mnemonics, passphrases, passwords, derived keys)
// in any result or error.
package vault

import (
	"fmt"
	"strings"
	"time"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/container"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/crypto"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/mnemonic"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/wordlist"
)

// EncryptionMethod is the fixed AEAD used by both container formats.
const EncryptionMethod = "AES-256-GCM"

// Service exposes the seed phrase encryption operations. The wordlists are
// loaded once at construction and shared read-only across calls; Service
// holds no other state.
type Service struct {
	validator *mnemonic.Validator
	passgen   *mnemonic.PassphraseGenerator
}

// New loads the embedded BIP39 and EFF wordlists and builds a Service.
func New() (*Service, error) {
	bip, err := wordlist.BIP39English()
	if err != nil {
		return nil, err
	}
	eff, err := wordlist.EFFLarge()
	if err != nil {
		return nil, err
	}
	return NewWithWordlists(bip, eff)
}

// NewWithWordlists builds a Service from already-loaded lists. It fails
// fast on an empty list rather than silently disabling validation.
func NewWithWordlists(bip, eff *wordlist.List) (*Service, error) {
	validator, err := mnemonic.NewValidator(bip)
	if err != nil {
		return nil, err
	}
	passgen, err := mnemonic.NewPassphraseGenerator(eff)
	if err != nil {
		return nil, err
	}
	return &Service{validator: validator, passgen: passgen}, nil
}

// checkInputs runs the shared pre-encryption validation: a structurally
// valid mnemonic and a non-empty passphrase. EFF membership of the
// passphrase is advisory (see ValidatePassphrase) so that any passphrase
// used to encrypt can also decrypt.
func (s *Service) checkInputs(seedPhrase, passphrase string) error {
	res := s.validator.Validate(seedPhrase)
	if !res.IsValid {
		return fmt.Errorf("%w: %s", util.ErrValidation, res.Message())
	}
	if strings.TrimSpace(passphrase) == "" {
		return fmt.Errorf("%w: passphrase is required", util.ErrValidation)
	}
	return nil
}

// EncryptSeedPhrase encrypts a validated seed phrase into the standard
// container format (implicit PBKDF2-HMAC-SHA256 at the default iteration
// count) and returns it as base64.
func (s *Service) EncryptSeedPhrase(seedPhrase, passphrase, password string) (string, error) {
	if err := s.checkInputs(seedPhrase, passphrase); err != nil {
		return "", err
	}

	params, err := crypto.NewParams(crypto.KDFPBKDF2SHA256, crypto.DefaultIterations)
	if err != nil {
		return "", err
	}
	key, err := crypto.DeriveKey(passphrase, password, params)
	if err != nil {
		return "", err
	}
	enc, err := crypto.EncryptAESGCM([]byte(seedPhrase), key, nil)
	if err != nil {
		return "", err
	}

	return container.EncodeStandard(&container.Standard{
		Salt:       params.Salt,
		Nonce:      enc.Nonce,
		Ciphertext: enc.Ciphertext,
		Tag:        enc.Tag,
	})
}

// AdvancedOptions selects the derivation method and iteration count for
// advanced-format encryption. Zero values mean defaults.
type AdvancedOptions struct {
	KDFMethod  string
	Iterations uint32
}

// IntegrityInfo describes an advanced container without requiring any
// secret.
type IntegrityInfo struct {
	SHA256Hash       string    `json:"sha256_hash"`
	FileSize         int64     `json:"file_size"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
	EncryptionMethod string    `json:"encryption_method"`
	KeyDerivation    string    `json:"key_derivation"`
}

// AdvancedResult is the outcome of advanced-format encryption.
type AdvancedResult struct {
	EncryptedContent string        `json:"encrypted_content"`
	Integrity        IntegrityInfo `json:"integrity_info"`
	SaltB64          string        `json:"salt"`
	NonceB64         string        `json:"nonce"`
}

// EncryptAdvanced encrypts a seed phrase into the advanced container format:
// explicit KDF parameters and a SHA-256 integrity hash, no wallet metadata.
func (s *Service) EncryptAdvanced(seedPhrase, passphrase, password string, opts AdvancedOptions) (*AdvancedResult, error) {
	return s.encryptAdvanced(seedPhrase, passphrase, password, opts, nil)
}

func (s *Service) encryptAdvanced(seedPhrase, passphrase, password string, opts AdvancedOptions, metadataRaw []byte) (*AdvancedResult, error) {
	if err := s.checkInputs(seedPhrase, passphrase); err != nil {
		return nil, err
	}

	params, err := crypto.NewParams(opts.KDFMethod, opts.Iterations)
	if err != nil {
		return nil, err
	}
	key, err := crypto.DeriveKey(passphrase, password, params)
	if err != nil {
		return nil, err
	}
	enc, err := crypto.EncryptAESGCM([]byte(seedPhrase), key, nil)
	if err != nil {
		return nil, err
	}

	adv := &container.Advanced{
		KDF:         params,
		Nonce:       enc.Nonce,
		MetadataRaw: metadataRaw,
		Ciphertext:  enc.Ciphertext,
		Tag:         enc.Tag,
	}
	encoded, err := container.EncodeAdvanced(adv)
	if err != nil {
		return nil, err
	}

	raw, err := util.B64Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrEncoding, err)
	}

	return &AdvancedResult{
		EncryptedContent: encoded,
		Integrity: IntegrityInfo{
			SHA256Hash:       fmt.Sprintf("%x", adv.IntegrityHash),
			FileSize:         int64(len(raw)),
			CreatedAt:        time.Now().UTC(),
			EncryptionMethod: EncryptionMethod,
			KeyDerivation:    params.Describe(),
		},
		SaltB64:  util.B64Encode(params.Salt),
		NonceB64: util.B64Encode(enc.Nonce),
	}, nil
}

// Decrypt reverses either container format. The format is sniffed from the
// magic token; an advanced container has its integrity hash checked before
// any key derivation. Wrong secrets and corrupted ciphertext are both
// reported as the single generic decryption failure.
func (s *Service) Decrypt(encoded, passphrase, password string) (string, error) {
	if strings.TrimSpace(passphrase) == "" {
		return "", fmt.Errorf("%w: passphrase is required", util.ErrValidation)
	}

	c, err := container.Decode(encoded)
	if err != nil {
		return "", err
	}

	var params crypto.Params
	var nonce, ciphertext, tag []byte

	switch c.Format {
	case container.FormatStandard:
		params = c.Standard.KDFParams()
		nonce, ciphertext, tag = c.Standard.Nonce, c.Standard.Ciphertext, c.Standard.Tag
	case container.FormatAdvanced:
		report, err := container.VerifyIntegrity(encoded)
		if err != nil {
			return "", err
		}
		if !report.Valid {
			return "", fmt.Errorf("%w: %s", util.ErrIntegrityMismatch, report.Message)
		}
		params = c.Advanced.KDF
		nonce, ciphertext, tag = c.Advanced.Nonce, c.Advanced.Ciphertext, c.Advanced.Tag
	default:
		return "", util.ErrUnknownMagic
	}

	key, err := crypto.DeriveKey(passphrase, password, params)
	if err != nil {
		return "", err
	}
	plaintext, err := crypto.DecryptAESGCM(ciphertext, key, nonce, tag, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// DecryptAdvanced is Decrypt restricted to the advanced format; a standard
// container is a format error here.
func (s *Service) DecryptAdvanced(encoded, passphrase, password string) (string, error) {
	c, err := container.Decode(encoded)
	if err != nil {
		return "", err
	}
	if c.Format != container.FormatAdvanced {
		return "", fmt.Errorf("%w: advanced container required", util.ErrUnknownMagic)
	}
	return s.Decrypt(encoded, passphrase, password)
}

// GeneratePassphrase draws a fresh Diceware passphrase from the EFF large
// wordlist. A wordCount of 0 selects the default of 6.
func (s *Service) GeneratePassphrase(wordCount int) (string, error) {
	return s.passgen.Generate(wordCount)
}

// PassphraseEntropy estimates the bits of entropy of a wordCount-word EFF
// passphrase.
func (s *Service) PassphraseEntropy(wordCount int) float64 {
	return s.passgen.Entropy(wordCount)
}

// ValidateSeedPhrase reports the structured validation result for a seed
// phrase.
func (s *Service) ValidateSeedPhrase(seedPhrase string) mnemonic.ValidationResult {
	return s.validator.Validate(seedPhrase)
}

// ValidatePassphrase reports the structured validation result for an EFF
// passphrase.
func (s *Service) ValidatePassphrase(passphrase string) mnemonic.PassphraseResult {
	return s.passgen.Validate(passphrase)
}

// FormatSeedPhrase normalizes raw seed phrase input.
func (s *Service) FormatSeedPhrase(raw string) string {
	return mnemonic.Format(raw)
}

// SuggestWords returns up to limit BIP39 words starting with prefix.
func (s *Service) SuggestWords(prefix string, limit int) []string {
	return s.validator.Suggest(prefix, limit)
}

// IsSeedWord reports whether a single word is in the BIP39 list.
func (s *Service) IsSeedWord(word string) bool {
	return s.validator.IsWord(word)
}
