package container

import (
	"bytes"
	"errors"
	"testing"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/crypto"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

func testStandard() *Standard {
	return &Standard{
		Salt:       bytes.Repeat([]byte{0x11}, crypto.SaltSize),
		Nonce:      bytes.Repeat([]byte{0x22}, crypto.GCMNonceSize),
		Ciphertext: []byte("opaque ciphertext bytes"),
		Tag:        bytes.Repeat([]byte{0x33}, crypto.GCMTagSize),
	}
}

func testAdvanced(meta []byte) *Advanced {
	return &Advanced{
		KDF: crypto.Params{
			Method:     crypto.KDFPBKDF2SHA256,
			Salt:       bytes.Repeat([]byte{0x44}, crypto.SaltSize),
			Iterations: 100000,
		},
		Nonce:       bytes.Repeat([]byte{0x55}, crypto.GCMNonceSize),
		MetadataRaw: meta,
		Ciphertext:  []byte("advanced ciphertext payload"),
		Tag:         bytes.Repeat([]byte{0x66}, crypto.GCMTagSize),
	}
}

func TestStandardRoundTrip(t *testing.T) {
	s := testStandard()
	encoded, err := EncodeStandard(s)
	if err != nil {
		t.Fatalf("EncodeStandard: %v", err)
	}

	c, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.Format != FormatStandard || c.Standard == nil || c.Advanced != nil {
		t.Fatalf("format = %v, want standard", c.Format)
	}

	got := c.Standard
	if !bytes.Equal(got.Salt, s.Salt) ||
		!bytes.Equal(got.Nonce, s.Nonce) ||
		!bytes.Equal(got.Ciphertext, s.Ciphertext) ||
		!bytes.Equal(got.Tag, s.Tag) {
		t.Error("standard fields do not round-trip")
	}

	p := got.KDFParams()
	if p.Method != crypto.KDFPBKDF2SHA256 || p.Iterations != crypto.DefaultIterations {
		t.Errorf("implicit KDF params = %+v", p)
	}
}

func TestAdvancedRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name string
		meta []byte
	}{
		{"no metadata", nil},
		{"with metadata", []byte(`{"label":"main","wallet_type":"cold"}`)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			a := testAdvanced(tt.meta)
			encoded, err := EncodeAdvanced(a)
			if err != nil {
				t.Fatalf("EncodeAdvanced: %v", err)
			}
			if len(a.IntegrityHash) != 32 {
				t.Fatalf("integrity hash = %d bytes", len(a.IntegrityHash))
			}

			c, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if c.Format != FormatAdvanced || c.Advanced == nil || c.Standard != nil {
				t.Fatalf("format = %v, want advanced", c.Format)
			}

			got := c.Advanced
			if got.Version != Version {
				t.Errorf("version = %d", got.Version)
			}
			if got.KDF.Method != a.KDF.Method || got.KDF.Iterations != a.KDF.Iterations {
				t.Errorf("kdf = %+v, want %+v", got.KDF, a.KDF)
			}
			if !bytes.Equal(got.KDF.Salt, a.KDF.Salt) ||
				!bytes.Equal(got.Nonce, a.Nonce) ||
				!bytes.Equal(got.MetadataRaw, a.MetadataRaw) ||
				!bytes.Equal(got.Ciphertext, a.Ciphertext) ||
				!bytes.Equal(got.Tag, a.Tag) ||
				!bytes.Equal(got.IntegrityHash, a.IntegrityHash) {
				t.Error("advanced fields do not round-trip")
			}
		})
	}
}

func TestDecodeMagicPrefix(t *testing.T) {
	a := testAdvanced(nil)
	encoded, err := EncodeAdvanced(a)
	if err != nil {
		t.Fatalf("EncodeAdvanced: %v", err)
	}
	raw, err := util.B64Decode(encoded)
	if err != nil {
		t.Fatalf("B64Decode: %v", err)
	}
	if string(raw[:8]) != Magic {
		t.Errorf("container starts with %q, want %q", raw[:8], Magic)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("malformed base64", func(t *testing.T) {
		_, err := Decode("!!!not-base64!!!")
		if !errors.Is(err, util.ErrMalformedBase64) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("truncated standard", func(t *testing.T) {
		_, err := Decode(util.B64Encode([]byte("short")))
		if !errors.Is(err, util.ErrTruncatedContainer) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("truncated advanced", func(t *testing.T) {
		_, err := Decode(util.B64Encode([]byte(Magic + "trunc")))
		if !errors.Is(err, util.ErrTruncatedContainer) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		a := testAdvanced(nil)
		encoded, _ := EncodeAdvanced(a)
		raw, _ := util.B64Decode(encoded)
		raw[8] = 0x09 // version byte
		_, err := Decode(util.B64Encode(raw))
		if !errors.Is(err, util.ErrUnsupportedVersion) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("unsupported kdf tag", func(t *testing.T) {
		a := testAdvanced(nil)
		encoded, _ := EncodeAdvanced(a)
		raw, _ := util.B64Decode(encoded)
		raw[9] = 0x7F // kdf method byte
		_, err := Decode(util.B64Encode(raw))
		if !errors.Is(err, util.ErrUnsupportedKDF) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("metadata length past end", func(t *testing.T) {
		a := testAdvanced(nil)
		encoded, _ := EncodeAdvanced(a)
		raw, _ := util.B64Decode(encoded)
		raw[42], raw[43] = 0xFF, 0xFF // metadataLen field
		_, err := Decode(util.B64Encode(raw))
		if !errors.Is(err, util.ErrTruncatedContainer) {
			t.Errorf("got %v", err)
		}
	})
}

func TestEncodeErrors(t *testing.T) {
	t.Run("bad salt size", func(t *testing.T) {
		s := testStandard()
		s.Salt = s.Salt[:4]
		if _, err := EncodeStandard(s); !errors.Is(err, util.ErrEncoding) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("unknown kdf method", func(t *testing.T) {
		a := testAdvanced(nil)
		a.KDF.Method = "bcrypt"
		if _, err := EncodeAdvanced(a); !errors.Is(err, util.ErrUnsupportedKDF) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("oversized metadata", func(t *testing.T) {
		a := testAdvanced(bytes.Repeat([]byte{'x'}, MaxMetadataSize+1))
		if _, err := EncodeAdvanced(a); !errors.Is(err, util.ErrEncoding) {
			t.Errorf("got %v", err)
		}
	})
}

func TestVerifyIntegrity(t *testing.T) {
	a := testAdvanced([]byte(`{"label":"main"}`))
	encoded, err := EncodeAdvanced(a)
	if err != nil {
		t.Fatalf("EncodeAdvanced: %v", err)
	}

	t.Run("intact", func(t *testing.T) {
		report, err := VerifyIntegrity(encoded)
		if err != nil {
			t.Fatalf("VerifyIntegrity: %v", err)
		}
		if !report.Valid {
			t.Errorf("intact container reported invalid: %+v", report)
		}
		if report.ExpectedHash != report.ActualHash {
			t.Error("hashes differ on intact container")
		}
	})

	t.Run("corrupted ciphertext byte", func(t *testing.T) {
		raw, _ := util.B64Decode(encoded)
		raw[headerSize+len(a.MetadataRaw)+2] ^= 0x01
		report, err := VerifyIntegrity(util.B64Encode(raw))
		if err != nil {
			t.Fatalf("VerifyIntegrity: %v", err)
		}
		if report.Valid {
			t.Error("corrupted container reported valid")
		}
		if report.ExpectedHash == report.ActualHash {
			t.Error("hashes match after corruption")
		}
	})

	t.Run("standard has no integrity block", func(t *testing.T) {
		encodedStd, _ := EncodeStandard(testStandard())
		_, err := VerifyIntegrity(encodedStd)
		if !errors.Is(err, util.ErrNoIntegrityBlock) {
			t.Errorf("got %v", err)
		}
	})
}
