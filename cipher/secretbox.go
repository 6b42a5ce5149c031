package cipher

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/arloliu/linecode/errs"
)

const (
	KeySize   = 32
	NonceSize = 24
	// Overhead is the number of bytes SecretBox adds to a message.
	Overhead = NonceSize + secretbox.Overhead
)

// SecretBox seals messages with XSalsa20-Poly1305.
//
// Ciphertext layout: 24-byte random nonce followed by the sealed box.
type SecretBox struct {
	key  [KeySize]byte
	rand io.Reader
}

var _ Transform = (*SecretBox)(nil)

// NewSecretBox creates a SecretBox with a raw 32-byte key.
func NewSecretBox(key [KeySize]byte) *SecretBox {
	return &SecretBox{key: key, rand: rand.Reader}
}

// NewSecretBoxFromString creates a SecretBox from a configuration value.
//
// A 64-character hex string is used as the raw key; any other non-empty
// string is treated as a passphrase and hashed with BLAKE2b-256.
//
// Returns:
//   - *SecretBox: Configured transform
//   - error: errs.ErrInvalidKey if key is empty
func NewSecretBoxFromString(key string) (*SecretBox, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: secretbox requires a key", errs.ErrInvalidKey)
	}

	var k [KeySize]byte
	if raw, err := hex.DecodeString(key); err == nil && len(raw) == KeySize {
		copy(k[:], raw)
	} else {
		k = blake2b.Sum256([]byte(key))
	}

	return NewSecretBox(k), nil
}

func (s *SecretBox) Encrypt(plaintext []byte) ([]byte, error) {
	var nonce [NonceSize]byte
	if _, err := io.ReadFull(s.rand, nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, NonceSize, Overhead+len(plaintext))
	copy(out, nonce[:])

	return secretbox.Seal(out, plaintext, &nonce, &s.key), nil
}

func (s *SecretBox) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < Overhead {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrCiphertextTooShort, len(ciphertext))
	}

	var nonce [NonceSize]byte
	copy(nonce[:], ciphertext[:NonceSize])

	out, ok := secretbox.Open(nil, ciphertext[NonceSize:], &nonce, &s.key)
	if !ok {
		return nil, errs.ErrDecryptFailed
	}

	return out, nil
}
