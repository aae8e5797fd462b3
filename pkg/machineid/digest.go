package machineid

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Digester computes the fixed-size digest of the resolved identifier bytes.
// A non-empty key turns the digest into a keyed one.
type Digester interface {
	Sum(key, data []byte, out *[HashSize]byte) error
}

// DigestSHA256 is the default digester. With a key it computes HMAC-SHA256.
var DigestSHA256 Digester = sha256Digester{}

// DigestBLAKE2b computes BLAKE2b-256, natively keyed.
var DigestBLAKE2b Digester = blake2bDigester{}

// DigesterByName maps a configuration name onto a Digester.
func DigesterByName(name string) (Digester, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sha256", "sha-256":
		return DigestSHA256, nil
	case "blake2b", "blake2b-256":
		return DigestBLAKE2b, nil
	default:
		return nil, fmt.Errorf("unknown digest %q", name)
	}
}

type sha256Digester struct{}

func (sha256Digester) Sum(key, data []byte, out *[HashSize]byte) error {
	if len(key) == 0 {
		*out = sha256.Sum256(data)
		return nil
	}
	return sumInto(hmac.New(sha256.New, key), data, out)
}

type blake2bDigester struct{}

func (blake2bDigester) Sum(key, data []byte, out *[HashSize]byte) error {
	h, err := blake2b.New256(key)
	if err != nil {
		return fmt.Errorf("blake2b: %w", err)
	}
	return sumInto(h, data, out)
}

func sumInto(h hash.Hash, data []byte, out *[HashSize]byte) error {
	if _, err := h.Write(data); err != nil {
		return err
	}
	if h.Size() != HashSize {
		return fmt.Errorf("digest size %d, want %d", h.Size(), HashSize)
	}
	h.Sum(out[:0])
	return nil
}
