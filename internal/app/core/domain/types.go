package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
)

// PublicKey identifies one account. It is the verified signer identity
// handed to the core by the transport layer; the core never checks
// signatures itself.
type PublicKey [32]byte

// Hash is a transaction identifier. It doubles as the escrow ticket id of a
// pending transfer and as the entry type of account history logs.
type Hash [32]byte

func (pk PublicKey) String() string {
	return hex.EncodeToString(pk[:])
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// ParsePublicKey decodes a hex-encoded public key.
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	if err := decodeHex32(s, pk[:]); err != nil {
		return PublicKey{}, errors.Wrap(err, "parse public key")
	}
	return pk, nil
}

// ParseHash decodes a hex-encoded transaction hash.
func ParseHash(s string) (Hash, error) {
	var h Hash
	if err := decodeHex32(s, h[:]); err != nil {
		return Hash{}, errors.Wrap(err, "parse hash")
	}
	return h, nil
}

func decodeHex32(s string, dst []byte) error {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(raw) != len(dst) {
		return errors.Errorf("expected %d bytes, got %d", len(dst), len(raw))
	}
	copy(dst, raw)
	return nil
}

func (pk PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(pk.String())
}

func (pk *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePublicKey(s)
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseHash(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// HashBytes returns the sha256 digest of buf.
func HashBytes(buf []byte) Hash {
	return sha256.Sum256(buf)
}
