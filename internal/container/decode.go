package container

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/crypto"
	"github.com/byteblox-io/btc-mnemonic-encryptor/internal/util"
)

// Decode parses a base64 container of either format. The sniff is
// deterministic and side-effect-free: base64-decode, then check the first
// eight bytes for the magic token; anything without the token is parsed as
// the standard layout.
func Decode(encoded string) (*Container, error) {
	data, err := util.B64Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMalformedBase64, err)
	}

	if bytes.HasPrefix(data, []byte(Magic)) {
		adv, err := decodeAdvanced(data)
		if err != nil {
			return nil, err
		}
		return &Container{Format: FormatAdvanced, Advanced: adv}, nil
	}

	std, err := decodeStandard(data)
	if err != nil {
		return nil, err
	}
	return &Container{Format: FormatStandard, Standard: std}, nil
}

func decodeStandard(data []byte) (*Standard, error) {
	if len(data) < minStandardSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d",
			util.ErrTruncatedContainer, len(data), minStandardSize)
	}

	saltEnd := crypto.SaltSize
	nonceEnd := saltEnd + crypto.GCMNonceSize
	tagStart := len(data) - crypto.GCMTagSize

	return &Standard{
		Salt:       bytes.Clone(data[:saltEnd]),
		Nonce:      bytes.Clone(data[saltEnd:nonceEnd]),
		Ciphertext: bytes.Clone(data[nonceEnd:tagStart]),
		Tag:        bytes.Clone(data[tagStart:]),
	}, nil
}

func decodeAdvanced(data []byte) (*Advanced, error) {
	if len(data) < minAdvancedSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d",
			util.ErrTruncatedContainer, len(data), minAdvancedSize)
	}

	off := magicSize
	version := data[off]
	off++
	if version != Version {
		return nil, fmt.Errorf("%w: version %d", util.ErrUnsupportedVersion, version)
	}

	method, err := methodFromTag(data[off])
	if err != nil {
		return nil, err
	}
	off++

	iterations := binary.BigEndian.Uint32(data[off : off+iterationsSize])
	off += iterationsSize

	salt := bytes.Clone(data[off : off+crypto.SaltSize])
	off += crypto.SaltSize

	nonce := bytes.Clone(data[off : off+crypto.GCMNonceSize])
	off += crypto.GCMNonceSize

	metaLen := int(binary.BigEndian.Uint16(data[off : off+metaLenSize]))
	off += metaLenSize

	if len(data) < off+metaLen+crypto.GCMTagSize+integrityHashSize {
		return nil, fmt.Errorf("%w: metadata length %d exceeds container",
			util.ErrTruncatedContainer, metaLen)
	}

	var metadata []byte
	if metaLen > 0 {
		metadata = bytes.Clone(data[off : off+metaLen])
	}
	off += metaLen

	hashStart := len(data) - integrityHashSize
	tagStart := hashStart - crypto.GCMTagSize

	return &Advanced{
		Version:       version,
		KDF:           crypto.Params{Method: method, Salt: salt, Iterations: iterations},
		Nonce:         nonce,
		MetadataRaw:   metadata,
		Ciphertext:    bytes.Clone(data[off:tagStart]),
		Tag:           bytes.Clone(data[tagStart:hashStart]),
		IntegrityHash: bytes.Clone(data[hashStart:]),
	}, nil
}
