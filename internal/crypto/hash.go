package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	lblake3 "lukechampine.com/blake3"
)

// SupportedHashAlgos is the list of supported hash algorithm names, in
// presentation order. The container integrity block is always sha256; the
// other algorithms back the standalone hash command.
var SupportedHashAlgos = []string{
	"sha256",
	"sha512",
	"sha3-256",
	"blake2b-256",
	"blake3",
}

// SupportedHashAlgo checks whether the given algorithm name is supported.
func SupportedHashAlgo(algo string) bool {
	switch algo {
	case "sha256", "sha512", "sha3-256", "blake2b-256", "blake3":
		return true
	default:
		return false
	}
}

// newHash returns a hash.Hash for the named algorithm.
func newHash(algo string) (hash.Hash, error) {
	switch algo {
	case "sha256":
		return sha256.New(), nil
	case "sha512":
		return sha512.New(), nil
	case "sha3-256":
		return sha3.New256(), nil
	case "blake2b-256":
		h, err := blake2b.New256(nil)
		if err != nil {
			return nil, fmt.Errorf("blake2b-256: %w", err)
		}
		return h, nil
	case "blake3":
		return lblake3.New(32, nil), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm %q", algo)
	}
}

// HashReader computes a digest over r using the named algorithm and returns
// the raw digest bytes.
func HashReader(r io.Reader, algo string) ([]byte, error) {
	h, err := newHash(algo)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("hash %s: %w", algo, err)
	}
	return h.Sum(nil), nil
}

// SumHex computes the named digest over data and returns it hex-encoded.
func SumHex(data []byte, algo string) (string, error) {
	h, err := newHash(algo)
	if err != nil {
		return "", err
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
