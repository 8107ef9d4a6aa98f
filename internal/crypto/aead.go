package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

const (
	// GCMNonceSize is the standard nonce size for AES-GCM.
	GCMNonceSize = 12
	// GCMTagSize is the standard authentication tag size for AES-GCM.
	GCMTagSize = 16
)

// EncryptResult holds the output of an AEAD encryption operation.
type EncryptResult struct {
	Ciphertext []byte // ciphertext without the tag
	Nonce      []byte
	Tag        []byte
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("aes-256-gcm: key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// EncryptAESGCM encrypts plaintext using AES-256-GCM with the given key.
// A fresh random nonce is generated internally and must never be reused with
// the same key. Optional AAD can be provided.
func EncryptAESGCM(plaintext, key, aad []byte) (*EncryptResult, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce, err := GenerateNonce()
	if err != nil {
		return nil, err
	}

	// Seal appends the tag to the ciphertext.
	sealed := aead.Seal(nil, nonce, plaintext, aad)
	tagStart := len(sealed) - GCMTagSize

	return &EncryptResult{
		Ciphertext: sealed[:tagStart],
		Nonce:      nonce,
		Tag:        sealed[tagStart:],
	}, nil
}

// DecryptAESGCM decrypts ciphertext using AES-256-GCM. The tag is provided
// separately. Any authentication failure is reported as the single generic
// ErrDecryptFailed; whether ciphertext or tag was corrupted is not revealed.
func DecryptAESGCM(ciphertext, key, nonce, tag, aad []byte) ([]byte, error) {
	if len(nonce) != GCMNonceSize {
		return nil, fmt.Errorf("%w: invalid nonce length %d", util.ErrDecryptFailed, len(nonce))
	}
	if len(tag) != GCMTagSize {
		return nil, fmt.Errorf("%w: invalid tag length %d", util.ErrDecryptFailed, len(tag))
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// Open expects ciphertext with tag appended.
	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, util.ErrDecryptFailed
	}
	return plaintext, nil
}
