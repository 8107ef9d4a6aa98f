package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

// randomBytes fills a fresh buffer from the OS CSPRNG. Exhaustion is fatal;
// there is no fallback source.
func randomBytes(size int, what string) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: generate %s: %v", util.ErrRandomnessUnavailable, what, err)
	}
	return buf, nil
}

// GenerateSalt generates a random 16-byte KDF salt.
func GenerateSalt() ([]byte, error) {
	return randomBytes(SaltSize, "salt")
}

// GenerateNonce generates a random 12-byte GCM nonce.
func GenerateNonce() ([]byte, error) {
	return randomBytes(GCMNonceSize, "nonce")
}
