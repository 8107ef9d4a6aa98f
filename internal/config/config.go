package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// EnvConfigPath is the environment variable for config file path.
	EnvConfigPath = "SEEDVAULT_CONFIG"
	// EnvProfile is the environment variable for profile name.
	EnvProfile = "SEEDVAULT_PROFILE"
)

// EffectiveConfig holds the merged configuration (defaults + config file + profile).
type EffectiveConfig struct {
	AuditLog        string `mapstructure:"audit_log" json:"audit_log"`
	KDF             string `mapstructure:"kdf" json:"kdf"`
	Iterations      uint32 `mapstructure:"iterations" json:"iterations"`
	OutputDir       string `mapstructure:"output_dir" json:"output_dir"`
	PassphraseWords int    `mapstructure:"passphrase_words" json:"passphrase_words"`
}

// Profile holds profile-specific overrides.
type Profile struct {
	AuditLog        string `mapstructure:"audit_log"`
	KDF             string `mapstructure:"kdf"`
	Iterations      uint32 `mapstructure:"iterations"`
	OutputDir       string `mapstructure:"output_dir"`
	PassphraseWords int    `mapstructure:"passphrase_words"`
}

// ConfigFile represents the root config file structure (optional base + profiles).
type ConfigFile struct {
	AuditLog        string             `mapstructure:"audit_log"`
	KDF             string             `mapstructure:"kdf"`
	Iterations      uint32             `mapstructure:"iterations"`
	OutputDir       string             `mapstructure:"output_dir"`
	PassphraseWords int                `mapstructure:"passphrase_words"`
	Profiles        map[string]Profile `mapstructure:"profiles"`
}

// DefaultEffective returns the built-in default effective config.
func DefaultEffective() EffectiveConfig {
	return EffectiveConfig{
		KDF:             "pbkdf2-sha256",
		Iterations:      100000,
		OutputDir:       ".",
		PassphraseWords: 6,
	}
}

var (
	// loaded is the config loaded in the current process (set by Load).
	loaded *EffectiveConfig
)

// Load reads config from the given path (or discovers it), applies the given profile, and stores the result.
// Config path: if path is non-empty it is used; else SEEDVAULT_CONFIG; else ~/.seedvault.yaml, ./.seedvault.yaml (first found).
// Profile: if profile is non-empty it is used; else SEEDVAULT_PROFILE; else no profile.
// Precedence for final values: caller will layer CLI flags on top; this returns file-based effective config.
func Load(configPath, profile string) (*EffectiveConfig, error) {
	base := DefaultEffective()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigPath)
	}
	if profile == "" {
		profile = os.Getenv(EnvProfile)
	}

	if configPath != "" {
		// Single explicit file.
		if err := readAndMerge(configPath, profile, &base); err != nil {
			return nil, err
		}
	} else {
		// Search default locations.
		home, _ := os.UserHomeDir()
		candidates := []string{}
		if home != "" {
			candidates = append(candidates, filepath.Join(home, ".seedvault.yaml"), filepath.Join(home, ".seedvault.yml"))
		}
		wd, _ := os.Getwd()
		if wd != "" {
			candidates = append(candidates, filepath.Join(wd, ".seedvault.yaml"), filepath.Join(wd, ".seedvault.yml"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				if err := readAndMerge(p, profile, &base); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	loaded = &base
	return loaded, nil
}

// readAndMerge reads one config file and merges it (and optional profile) into base.
func readAndMerge(path, profile string, base *EffectiveConfig) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		// Config file optional: missing file is not an error (viper may return *fs.PathError when using SetConfigFile).
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && errors.Is(pathErr.Err, fs.ErrNotExist) {
			return nil
		}
		if errors.As(err, new(viper.ConfigFileNotFoundError)) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	// Unmarshal base (root) keys.
	if v.IsSet("audit_log") {
		base.AuditLog = v.GetString("audit_log")
	}
	if v.IsSet("kdf") {
		base.KDF = v.GetString("kdf")
	}
	if v.IsSet("iterations") {
		base.Iterations = v.GetUint32("iterations")
	}
	if v.IsSet("output_dir") {
		base.OutputDir = v.GetString("output_dir")
	}
	if v.IsSet("passphrase_words") {
		base.PassphraseWords = v.GetInt("passphrase_words")
	}

	// Apply profile overrides.
	if profile != "" && v.IsSet("profiles") {
		profiles := v.GetStringMap("profiles")
		if p, ok := profiles[profile].(map[string]interface{}); ok {
			if s, ok := p["audit_log"].(string); ok && s != "" {
				base.AuditLog = s
			}
			if s, ok := p["kdf"].(string); ok && s != "" {
				base.KDF = s
			}
			if n, ok := p["iterations"].(int); ok && n > 0 {
				base.Iterations = uint32(n)
			}
			if s, ok := p["output_dir"].(string); ok && s != "" {
				base.OutputDir = s
			}
			if n, ok := p["passphrase_words"].(int); ok && n > 0 {
				base.PassphraseWords = n
			}
		}
	}

	return nil
}

// Get returns the loaded effective config, or nil if Load was never called or failed.
func Get() *EffectiveConfig {
	return loaded
}

// SetLoaded sets the effective config (for tests).
func SetLoaded(c *EffectiveConfig) {
	loaded = c
}
