package wallet

import (
	"strings"
	"testing"
	"time"
)

var testCreated = time.Date(2026, 8, 23, 10, 15, 0, 0, time.UTC)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"clean", "Main-Wallet1", "Main-Wallet1"},
		{"spaces", "Main Wallet", "Main_Wallet"},
		{"path separators", "a/b\\c:d", "a_b_c_d"},
		{"unicode", "钱包 wallet", "wallet"},
		{"emoji runs collapse", "w🔥🔥w", "w_w"},
		{"all junk", "///", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildFilename(t *testing.T) {
	m := &Metadata{
		Label:         "Savings",
		WalletType:    TypeCold,
		CreatedAt:     testCreated,
		SeedWordCount: 24,
	}
	got := BuildFilename(m)
	want := "Savings_cold_wallet_24w_2026-08-23.bin"
	if got != want {
		t.Errorf("BuildFilename = %q, want %q", got, want)
	}

	// Deterministic for identical metadata on the same day.
	if again := BuildFilename(m); again != got {
		t.Errorf("not deterministic: %q vs %q", again, got)
	}
}

func TestBuildFilename_UnicodeNeverPanics(t *testing.T) {
	m := &Metadata{Label: "我的钱包🔥", WalletType: "寒い", CreatedAt: testCreated}
	got := BuildFilename(m)
	if !strings.HasSuffix(got, "_2026-08-23.bin") {
		t.Errorf("unexpected filename %q", got)
	}
	if got != "wallet_wallet_2026-08-23.bin" {
		t.Errorf("all-unicode fields should fall back to placeholders, got %q", got)
	}
}

func TestParseFilename_RoundTrip(t *testing.T) {
	m := &Metadata{
		Label:         "Savings",
		WalletType:    "Cold Wallet",
		CreatedAt:     testCreated,
		SeedWordCount: 12,
	}
	info := ParseFilename(BuildFilename(m))
	if !info.IsWalletFile {
		t.Fatal("round-tripped filename not recognized as wallet file")
	}
	if info.Label != "Savings" {
		t.Errorf("Label = %q", info.Label)
	}
	if info.WalletType != "cold_wallet" {
		t.Errorf("WalletType = %q", info.WalletType)
	}
	if info.SeedWordCount != 12 {
		t.Errorf("SeedWordCount = %d", info.SeedWordCount)
	}
	if !info.CreatedAt.Equal(time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("CreatedAt = %v", info.CreatedAt)
	}
}

func TestParseFilename_NoWordCount(t *testing.T) {
	info := ParseFilename("Main_hot_2026-01-02.bin")
	if !info.IsWalletFile || info.SeedWordCount != 0 {
		t.Errorf("got %+v", info)
	}
}

func TestParseFilename_Rejections(t *testing.T) {
	for _, name := range []string{
		"",
		"random.bin",
		"seed_phrase_20260823_101500.bin", // default name, trailing token not a date
		"two_parts.bin",
		"label_2026-01-02.bin", // no wallet type
	} {
		t.Run(name, func(t *testing.T) {
			if info := ParseFilename(name); info.IsWalletFile {
				t.Errorf("ParseFilename(%q).IsWalletFile = true", name)
			}
		})
	}
}

func TestDefaultFilename(t *testing.T) {
	got := DefaultFilename(testCreated)
	if got != "seed_phrase_20260823_101500.bin" {
		t.Errorf("DefaultFilename = %q", got)
	}
}

func TestMetadataEncodeDecode(t *testing.T) {
	m := &Metadata{Label: "Main", WalletType: TypeMain, CreatedAt: testCreated, SeedWordCount: 12}
	raw, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Label != m.Label || back.WalletType != m.WalletType ||
		!back.CreatedAt.Equal(m.CreatedAt) || back.SeedWordCount != m.SeedWordCount {
		t.Errorf("round trip mismatch: %+v vs %+v", back, m)
	}
}

func TestMetadataDecode_Empty(t *testing.T) {
	m, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil): %v", err)
	}
	if m != nil {
		t.Errorf("expected no metadata, got %+v", m)
	}
}

func TestMetadataDecode_Garbage(t *testing.T) {
	if _, err := Decode([]byte("{not json")); err == nil {
		t.Error("expected error for garbage metadata block")
	}
}

func TestNormalize(t *testing.T) {
	m := &Metadata{Label: "  " + strings.Repeat("x", 60) + "  "}
	m.Normalize(testCreated)
	if len(m.Label) != MaxLabelLen {
		t.Errorf("label not truncated: %d chars", len(m.Label))
	}
	if m.WalletType != TypeMain {
		t.Errorf("empty wallet type should default, got %q", m.WalletType)
	}
	if !m.CreatedAt.Equal(testCreated) {
		t.Errorf("CreatedAt = %v", m.CreatedAt)
	}
}
