package util

import (
	"fmt"
	"testing"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"integrity mismatch", ErrIntegrityMismatch, ExitIntegrityMismatch},
		{"decrypt failed", ErrDecryptFailed, ExitDecryptFailed},
		{"malformed base64", ErrMalformedBase64, ExitUnsupportedFormat},
		{"unknown magic", ErrUnknownMagic, ExitUnsupportedFormat},
		{"truncated", ErrTruncatedContainer, ExitUnsupportedFormat},
		{"unsupported version", ErrUnsupportedVersion, ExitUnsupportedFormat},
		{"unsupported kdf", ErrUnsupportedKDF, ExitUnsupportedFormat},
		{"validation", ErrValidation, ExitInvalidArgs},
		{"wrapped decrypt", fmt.Errorf("context: %w", ErrDecryptFailed), ExitDecryptFailed},
		{"generic", fmt.Errorf("something went wrong"), ExitGenericError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
