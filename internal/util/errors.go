package util

import "errors"

// Exit codes for automation-friendly CLI usage.
const (
	ExitSuccess           = 0
	ExitGenericError      = 1
	ExitInvalidArgs       = 2
	ExitIntegrityMismatch = 10
	ExitDecryptFailed     = 11
	ExitUnsupportedFormat = 12
)

// Sentinel errors used across the application.
var (
	// Container format errors. Each is distinct and safe to show to a user:
	// no raw bytes, no stack traces.
	ErrMalformedBase64    = errors.New("malformed base64 container")
	ErrUnknownMagic       = errors.New("unknown container magic")
	ErrTruncatedContainer = errors.New("container is truncated or incomplete")
	ErrUnsupportedVersion = errors.New("unsupported container version")
	ErrUnsupportedKDF     = errors.New("unsupported key derivation method")
	ErrEncoding           = errors.New("container encoding failed")

	// ErrDecryptFailed covers every AEAD authentication failure. It is
	// deliberately generic: whether the passphrase, the password, or the
	// ciphertext was wrong must not be distinguishable from the outside.
	ErrDecryptFailed = errors.New("decryption failed")

	// ErrIntegrityMismatch is the stored SHA-256 not matching the container
	// body. Checkable without any secret, so it is reported separately from
	// ErrDecryptFailed.
	ErrIntegrityMismatch = errors.New("integrity hash mismatch")

	// ErrNoIntegrityBlock is returned when integrity info is requested from a
	// standard-format container, which carries none.
	ErrNoIntegrityBlock = errors.New("container has no integrity block")

	ErrValidation            = errors.New("validation failed")
	ErrEmptyWordlist         = errors.New("wordlist is empty")
	ErrRandomnessUnavailable = errors.New("secure randomness unavailable")
)

// ExitCodeForError maps a sentinel error to its CLI exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIntegrityMismatch):
		return ExitIntegrityMismatch
	case errors.Is(err, ErrDecryptFailed):
		return ExitDecryptFailed
	case errors.Is(err, ErrMalformedBase64),
		errors.Is(err, ErrUnknownMagic),
		errors.Is(err, ErrTruncatedContainer),
		errors.Is(err, ErrUnsupportedVersion),
		errors.Is(err, ErrUnsupportedKDF):
		return ExitUnsupportedFormat
	case errors.Is(err, ErrValidation):
		return ExitInvalidArgs
	default:
		return ExitGenericError
	}
}
