package container

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/crypto"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

func checkFixedFields(salt, nonce, tag []byte) error {
	if len(salt) != crypto.SaltSize {
		return fmt.Errorf("%w: salt is %d bytes, want %d", util.ErrEncoding, len(salt), crypto.SaltSize)
	}
	if len(nonce) != crypto.GCMNonceSize {
		return fmt.Errorf("%w: nonce is %d bytes, want %d", util.ErrEncoding, len(nonce), crypto.GCMNonceSize)
	}
	if len(tag) != crypto.GCMTagSize {
		return fmt.Errorf("%w: tag is %d bytes, want %d", util.ErrEncoding, len(tag), crypto.GCMTagSize)
	}
	return nil
}

// EncodeStandard assembles a standard container and returns it as base64.
func EncodeStandard(s *Standard) (string, error) {
	if err := checkFixedFields(s.Salt, s.Nonce, s.Tag); err != nil {
		return "", err
	}

	buf := make([]byte, 0, minStandardSize+len(s.Ciphertext))
	buf = append(buf, s.Salt...)
	buf = append(buf, s.Nonce...)
	buf = append(buf, s.Ciphertext...)
	buf = append(buf, s.Tag...)

	return util.B64Encode(buf), nil
}

// EncodeAdvanced assembles an advanced container and returns it as base64.
// The integrity hash is computed here over every byte preceding it and also
// stored back into a.IntegrityHash. A zero a.Version selects the current
// version.
func EncodeAdvanced(a *Advanced) (string, error) {
	if a.Version == 0 {
		a.Version = Version
	}
	if a.Version != Version {
		return "", fmt.Errorf("%w: version %d", util.ErrUnsupportedVersion, a.Version)
	}
	tag, err := methodTag(a.KDF.Method)
	if err != nil {
		return "", err
	}
	if err := checkFixedFields(a.KDF.Salt, a.Nonce, a.Tag); err != nil {
		return "", err
	}
	if len(a.MetadataRaw) > MaxMetadataSize {
		return "", fmt.Errorf("%w: metadata block is %d bytes, limit %d",
			util.ErrEncoding, len(a.MetadataRaw), MaxMetadataSize)
	}

	buf := make([]byte, 0, minAdvancedSize+len(a.MetadataRaw)+len(a.Ciphertext))
	buf = append(buf, Magic...)
	buf = append(buf, a.Version, tag)
	buf = binary.BigEndian.AppendUint32(buf, a.KDF.Iterations)
	buf = append(buf, a.KDF.Salt...)
	buf = append(buf, a.Nonce...)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(a.MetadataRaw)))
	buf = append(buf, a.MetadataRaw...)
	buf = append(buf, a.Ciphertext...)
	buf = append(buf, a.Tag...)

	sum := sha256.Sum256(buf)
	a.IntegrityHash = sum[:]
	buf = append(buf, a.IntegrityHash...)

	return util.B64Encode(buf), nil
}
