package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

func TestSupportedKDF(t *testing.T) {
	for _, name := range SupportedKDFs {
		if !SupportedKDF(name) {
			t.Errorf("%s should be supported", name)
		}
	}
	if SupportedKDF("bcrypt") {
		t.Error("bcrypt should not be supported")
	}
}

func TestNewParams(t *testing.T) {
	p, err := NewParams("", 0)
	if err != nil {
		t.Fatalf("NewParams defaults: %v", err)
	}
	if p.Method != KDFPBKDF2SHA256 {
		t.Errorf("default method = %s", p.Method)
	}
	if p.Iterations != DefaultIterations {
		t.Errorf("default iterations = %d", p.Iterations)
	}
	if len(p.Salt) != SaltSize {
		t.Errorf("salt size = %d, want %d", len(p.Salt), SaltSize)
	}

	p2, err := NewParams("", 0)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}
	if bytes.Equal(p.Salt, p2.Salt) {
		t.Error("two calls produced the same salt")
	}

	if _, err := NewParams("md5crypt", 0); !errors.Is(err, util.ErrUnsupportedKDF) {
		t.Errorf("unknown method: got %v", err)
	}
	if _, err := NewParams(KDFPBKDF2SHA256, 500); !errors.Is(err, util.ErrValidation) {
		t.Errorf("iterations below floor: got %v", err)
	}
}

func TestDeriveKey_AllMethods(t *testing.T) {
	salt := []byte("0123456789abcdef")
	for _, method := range SupportedKDFs {
		t.Run(method, func(t *testing.T) {
			p := Params{Method: method, Salt: salt, Iterations: testIterations(method)}
			key, err := DeriveKey("correct horse battery staple", "hunter2", p)
			if err != nil {
				t.Fatalf("DeriveKey: %v", err)
			}
			if len(key) != KeySize {
				t.Errorf("key length = %d, want %d", len(key), KeySize)
			}
			key2, err := DeriveKey("correct horse battery staple", "hunter2", p)
			if err != nil {
				t.Fatalf("DeriveKey (2nd call): %v", err)
			}
			if !bytes.Equal(key, key2) {
				t.Error("same inputs produced different keys")
			}
		})
	}
}

// testIterations keeps slow KDFs fast in tests while staying above floors.
func testIterations(method string) uint32 {
	switch method {
	case KDFArgon2id:
		return 1
	case KDFScrypt:
		return 1024
	default:
		return MinIterations
	}
}

func TestDeriveKey_SecretsMatter(t *testing.T) {
	salt := []byte("0123456789abcdef")
	p := Params{Method: KDFPBKDF2SHA256, Salt: salt, Iterations: MinIterations}

	base, _ := DeriveKey("pass phrase words", "pw", p)
	otherPhrase, _ := DeriveKey("pass phrase sword", "pw", p)
	otherPw, _ := DeriveKey("pass phrase words", "pw2", p)
	noPw, _ := DeriveKey("pass phrase words", "", p)

	for name, k := range map[string][]byte{
		"different passphrase": otherPhrase,
		"different password":   otherPw,
		"missing password":     noPw,
	} {
		if bytes.Equal(base, k) {
			t.Errorf("%s produced the same key", name)
		}
	}

	otherSalt := Params{Method: KDFPBKDF2SHA256, Salt: []byte("fedcba9876543210"), Iterations: MinIterations}
	k, _ := DeriveKey("pass phrase words", "pw", otherSalt)
	if bytes.Equal(base, k) {
		t.Error("different salt produced the same key")
	}
}

func TestCombineSecrets_FixedRule(t *testing.T) {
	if got := string(CombineSecrets("alpha bravo", "")); got != "alpha bravo" {
		t.Errorf("empty password: got %q", got)
	}
	if got := string(CombineSecrets("alpha bravo", "pw")); got != "alpha bravo:pw" {
		t.Errorf("with password: got %q", got)
	}
}

func TestDeriveKey_Errors(t *testing.T) {
	p := Params{Method: "whirlpool", Salt: bytes.Repeat([]byte{1}, SaltSize), Iterations: DefaultIterations}
	if _, err := DeriveKey("a b c", "", p); !errors.Is(err, util.ErrUnsupportedKDF) {
		t.Errorf("unknown method: got %v", err)
	}

	short := Params{Method: KDFPBKDF2SHA256, Salt: []byte("tiny"), Iterations: DefaultIterations}
	if _, err := DeriveKey("a b c", "", short); !errors.Is(err, util.ErrValidation) {
		t.Errorf("short salt: got %v", err)
	}

	weak := Params{Method: KDFPBKDF2SHA256, Salt: bytes.Repeat([]byte{1}, SaltSize), Iterations: 1}
	if _, err := DeriveKey("a b c", "", weak); !errors.Is(err, util.ErrValidation) {
		t.Errorf("weak iterations: got %v", err)
	}
}

func TestArgon2AndScryptParamMapping(t *testing.T) {
	if argon2Time(0) != argon2DefaultTime {
		t.Error("argon2Time(0) should fall back to default")
	}
	if argon2Time(4) != 4 {
		t.Error("argon2Time(4) should pass through")
	}
	if argon2Time(100000) != argon2DefaultTime {
		t.Error("argon2Time(100000) should fall back to default")
	}
	if scryptN(32768) != 32768 {
		t.Error("scryptN(32768) should pass through")
	}
	if scryptN(100000) != scryptDefaultN {
		t.Error("scryptN(100000) is not a power of two, should fall back")
	}
	if scryptN(2) != scryptDefaultN {
		t.Error("scryptN(2) below minimum, should fall back")
	}
}
