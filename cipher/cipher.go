package cipher

import (
	"fmt"
	"strings"

	"github.com/arloliu/linecode/errs"
)

// Transform is a reversible byte transform.
//
// Decrypt(Encrypt(msg)) must return msg. Implementations must be safe for
// concurrent use.
type Transform interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// Kind identifies a Transform implementation.
type Kind uint8

const (
	KindIdentity  Kind = 0x1
	KindCaesar    Kind = 0x2
	KindSecretBox Kind = 0x3
)

func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindCaesar:
		return "caesar"
	case KindSecretBox:
		return "secretbox"
	default:
		return "unknown"
	}
}

// ParseKind maps a configuration value to a Kind.
//
// "", "none" and "identity" select KindIdentity.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "identity":
		return KindIdentity, nil
	case "caesar":
		return KindCaesar, nil
	case "secretbox", "nacl":
		return KindSecretBox, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCipher, s)
	}
}

// New creates the Transform for kind.
//
// Parameters:
//   - kind: Cipher kind name accepted by ParseKind
//   - key: Secret for secretbox, ignored otherwise
//   - shift: Byte shift for caesar, ignored otherwise
//
// Returns:
//   - Transform: Configured transform
//   - error: errs.ErrInvalidCipher or errs.ErrInvalidKey
func New(kind string, key string, shift int) (Transform, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}

	switch k {
	case KindCaesar:
		return NewCaesar(shift), nil
	case KindSecretBox:
		return NewSecretBoxFromString(key)
	default:
		return Identity{}, nil
	}
}

// Identity returns its input unchanged.
type Identity struct{}

var _ Transform = Identity{}

func (Identity) Encrypt(plaintext []byte) ([]byte, error) {
	return append([]byte(nil), plaintext...), nil
}

func (Identity) Decrypt(ciphertext []byte) ([]byte, error) {
	return append([]byte(nil), ciphertext...), nil
}

// Caesar adds a fixed shift to every byte, modulo 256.
type Caesar struct {
	shift byte
}

var _ Transform = Caesar{}

// NewCaesar creates a Caesar transform. Any int is accepted and reduced modulo 256.
func NewCaesar(shift int) Caesar {
	return Caesar{shift: byte(((shift % 256) + 256) % 256)}
}

// Shift returns the normalized shift in [0, 255].
func (c Caesar) Shift() int {
	return int(c.shift)
}

func (c Caesar) Encrypt(plaintext []byte) ([]byte, error) {
	out := make([]byte, len(plaintext))
	for i, b := range plaintext {
		out[i] = b + c.shift
	}

	return out, nil
}

func (c Caesar) Decrypt(ciphertext []byte) ([]byte, error) {
	out := make([]byte, len(ciphertext))
	for i, b := range ciphertext {
		out[i] = b - c.shift
	}

	return out, nil
}
