package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

// KDF method names.
const (
	KDFPBKDF2SHA256 = "pbkdf2-sha256"
	KDFArgon2id     = "argon2id"
	KDFScrypt       = "scrypt"
)

// SupportedKDFs is the list of supported KDF names in presentation order.
var SupportedKDFs = []string{
	KDFPBKDF2SHA256,
	KDFArgon2id,
	KDFScrypt,
}

// SupportedKDF checks whether the given KDF name is supported.
func SupportedKDF(name string) bool {
	for _, k := range SupportedKDFs {
		if k == name {
			return true
		}
	}
	return false
}

const (
	// KeySize is the derived key size; all methods yield 32 bytes for AES-256.
	KeySize = 32
	// SaltSize is the size of the random KDF salt.
	SaltSize = 16

	// DefaultIterations is the PBKDF2 iteration count when none is given.
	DefaultIterations uint32 = 100000
	// MinIterations is the PBKDF2 floor; requests below it are rejected so a
	// caller cannot accidentally weaken derivation.
	MinIterations uint32 = 10000

	// Argon2id fixed parameters. The container's iterations field carries the
	// time cost when it is in [1,16]; any other value selects the default.
	argon2Memory      uint32 = 64 * 1024 // KiB
	argon2Threads     uint8  = 4
	argon2DefaultTime uint32 = 3
	argon2MaxTime     uint32 = 16

	// scrypt fixed parameters. The iterations field carries N when it is a
	// power of two in [1024, 1<<20]; any other value selects the default.
	scryptDefaultN        = 32768
	scryptMinN            = 1024
	scryptMaxN            = 1 << 20
	scryptR               = 8
	scryptP               = 1
)

// Params holds everything needed to re-derive a key from the two secrets.
// Salt and iterations are stored in the clear inside the container.
type Params struct {
	Method     string `json:"method"`
	Salt       []byte `json:"-"`
	Iterations uint32 `json:"iterations"`
}

// NewParams generates fresh derivation parameters for an encryption call: a
// random 16-byte salt and a validated method/iteration pair. A zero
// iterations selects the default. Iterations below the PBKDF2 floor are an
// error, never silently raised.
func NewParams(method string, iterations uint32) (Params, error) {
	if method == "" {
		method = KDFPBKDF2SHA256
	}
	if !SupportedKDF(method) {
		return Params{}, fmt.Errorf("%w: %q", util.ErrUnsupportedKDF, method)
	}
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if method == KDFPBKDF2SHA256 && iterations < MinIterations {
		return Params{}, fmt.Errorf("%w: pbkdf2 iterations %d below floor %d",
			util.ErrValidation, iterations, MinIterations)
	}
	salt, err := GenerateSalt()
	if err != nil {
		return Params{}, err
	}
	return Params{Method: method, Salt: salt, Iterations: iterations}, nil
}

// Describe returns the "method-iterations" tag recorded in integrity reports,
// e.g. "pbkdf2-sha256-100000".
func (p Params) Describe() string {
	return fmt.Sprintf("%s-%d", p.Method, p.Iterations)
}

// CombineSecrets produces the KDF input from the two secrets. The rule is
// fixed: the passphrase bytes alone when the password is empty, otherwise
// passphrase, a ':' separator, then the password. Changing this rule breaks
// every previously encrypted container.
func CombineSecrets(passphrase, password string) []byte {
	if password == "" {
		return []byte(passphrase)
	}
	return []byte(passphrase + ":" + password)
}

// DeriveKey stretches the combined secrets into a 32-byte key using the
// method and parameters in p.
func DeriveKey(passphrase, password string, p Params) ([]byte, error) {
	if len(p.Salt) < SaltSize {
		return nil, fmt.Errorf("%w: kdf salt too short (%d bytes)", util.ErrValidation, len(p.Salt))
	}
	secret := CombineSecrets(passphrase, password)

	switch p.Method {
	case KDFPBKDF2SHA256:
		if p.Iterations < MinIterations {
			return nil, fmt.Errorf("%w: pbkdf2 iterations %d below floor %d",
				util.ErrValidation, p.Iterations, MinIterations)
		}
		return pbkdf2.Key(secret, p.Salt, int(p.Iterations), KeySize, sha256.New), nil

	case KDFArgon2id:
		return argon2.IDKey(secret, p.Salt, argon2Time(p.Iterations), argon2Memory, argon2Threads, KeySize), nil

	case KDFScrypt:
		key, err := scrypt.Key(secret, p.Salt, scryptN(p.Iterations), scryptR, scryptP, KeySize)
		if err != nil {
			return nil, fmt.Errorf("scrypt: %w", err)
		}
		return key, nil

	default:
		return nil, fmt.Errorf("%w: %q", util.ErrUnsupportedKDF, p.Method)
	}
}

func argon2Time(iterations uint32) uint32 {
	if iterations >= 1 && iterations <= argon2MaxTime {
		return iterations
	}
	return argon2DefaultTime
}

func scryptN(iterations uint32) int {
	n := int(iterations)
	if n >= scryptMinN && n <= scryptMaxN && n&(n-1) == 0 {
		return n
	}
	return scryptDefaultN
}
