// Package container serializes and deserializes the on-disk encrypted seed
// phrase formats. Two formats coexist:
//
//	standard: salt(16) || nonce(12) || ciphertext || tag(16)
//	advanced: magic "AESADV01"(8) || version(1) || kdfMethod(1) ||
//	          iterations(4) || salt(16) || nonce(12) || metadataLen(2) ||
//	          metadata || ciphertext || tag(16) || integrityHash(32)
//
// Both are carried as standard base64 text. All multi-byte integers are
// big-endian. The standard format stores no KDF parameters; its iteration
// count is fixed at the documented PBKDF2 default. The format is sniffed by
// base64-decoding and checking for the magic token; no magic means standard.
package container

import (
	"fmt"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/crypto"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

// Magic is the 8-byte ASCII token that opens every advanced container.
const Magic = "AESADV01"

// Version is the current advanced format version.
const Version byte = 1

// Advanced format field sizes.
const (
	magicSize      = 8
	versionSize    = 1
	methodTagSize  = 1
	iterationsSize = 4
	metaLenSize    = 2

	headerSize = magicSize + versionSize + methodTagSize + iterationsSize +
		crypto.SaltSize + crypto.GCMNonceSize + metaLenSize // 44

	integrityHashSize = 32

	// minAdvancedSize is an advanced container with empty metadata and empty
	// ciphertext: header + tag + integrity hash.
	minAdvancedSize = headerSize + crypto.GCMTagSize + integrityHashSize

	// minStandardSize is a standard container with empty ciphertext.
	minStandardSize = crypto.SaltSize + crypto.GCMNonceSize + crypto.GCMTagSize

	// MaxMetadataSize is the largest wallet metadata block the 2-byte length
	// field can carry.
	MaxMetadataSize = 1<<16 - 1
)

// KDF method wire tags for the advanced format.
const (
	methodTagPBKDF2   byte = 0x01
	methodTagArgon2id byte = 0x02
	methodTagScrypt   byte = 0x03
)

func methodTag(method string) (byte, error) {
	switch method {
	case crypto.KDFPBKDF2SHA256:
		return methodTagPBKDF2, nil
	case crypto.KDFArgon2id:
		return methodTagArgon2id, nil
	case crypto.KDFScrypt:
		return methodTagScrypt, nil
	default:
		return 0, fmt.Errorf("%w: %q", util.ErrUnsupportedKDF, method)
	}
}

func methodFromTag(tag byte) (string, error) {
	switch tag {
	case methodTagPBKDF2:
		return crypto.KDFPBKDF2SHA256, nil
	case methodTagArgon2id:
		return crypto.KDFArgon2id, nil
	case methodTagScrypt:
		return crypto.KDFScrypt, nil
	default:
		return "", fmt.Errorf("%w: tag 0x%02x", util.ErrUnsupportedKDF, tag)
	}
}

// Format identifies which of the two container layouts was produced or
// parsed.
type Format int

const (
	FormatStandard Format = iota
	FormatAdvanced
)

func (f Format) String() string {
	switch f {
	case FormatStandard:
		return "standard"
	case FormatAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// Standard is the minimal legacy container: fixed PBKDF2 parameters, no
// metadata, no integrity block. The AEAD tag is its sole integrity guarantee.
type Standard struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// KDFParams returns the implicit derivation parameters of the standard
// format.
func (s *Standard) KDFParams() crypto.Params {
	return crypto.Params{
		Method:     crypto.KDFPBKDF2SHA256,
		Salt:       s.Salt,
		Iterations: crypto.DefaultIterations,
	}
}

// Advanced is the self-describing container: explicit KDF parameters, an
// optional wallet metadata block, and a SHA-256 integrity hash over every
// preceding byte.
type Advanced struct {
	Version       byte
	KDF           crypto.Params
	Nonce         []byte
	MetadataRaw   []byte // JSON wallet metadata; empty when absent
	Ciphertext    []byte
	Tag           []byte
	IntegrityHash []byte // set by EncodeAdvanced, verified separately
}

// Container is the tagged union produced by Decode. Exactly one of Standard
// and Advanced is non-nil, matching Format.
type Container struct {
	Format   Format
	Standard *Standard
	Advanced *Advanced
}
