package cipher

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linecode/errs"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"", KindIdentity},
		{"none", KindIdentity},
		{"Identity", KindIdentity},
		{"caesar", KindCaesar},
		{" SecretBox ", KindSecretBox},
		{"nacl", KindSecretBox},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKind("rot13")
	require.ErrorIs(t, err, errs.ErrInvalidCipher)
	require.Equal(t, "unknown", Kind(0).String())
}

func TestNew(t *testing.T) {
	tr, err := New("", "", 0)
	require.NoError(t, err)
	require.IsType(t, Identity{}, tr)

	tr, err = New("caesar", "", -3)
	require.NoError(t, err)
	require.Equal(t, 253, tr.(Caesar).Shift())

	tr, err = New("secretbox", "passphrase", 0)
	require.NoError(t, err)
	require.IsType(t, &SecretBox{}, tr)

	_, err = New("secretbox", "", 0)
	require.ErrorIs(t, err, errs.ErrInvalidKey)

	_, err = New("enigma", "", 0)
	require.ErrorIs(t, err, errs.ErrInvalidCipher)
}

func TestTransforms_RoundTrip(t *testing.T) {
	box, err := NewSecretBoxFromString("correct horse battery staple")
	require.NoError(t, err)

	transforms := map[string]Transform{
		"identity":  Identity{},
		"caesar":    NewCaesar(3),
		"caesar-wr": NewCaesar(511),
		"secretbox": box,
	}
	messages := [][]byte{
		{},
		[]byte("hi"),
		[]byte("Olá, mundo"),
		{0x00, 0xff, 0x80, 0x7f},
		bytes.Repeat([]byte("abc"), 1000),
	}

	for name, tr := range transforms {
		t.Run(name, func(t *testing.T) {
			for _, msg := range messages {
				enc, err := tr.Encrypt(msg)
				require.NoError(t, err)

				dec, err := tr.Decrypt(enc)
				require.NoError(t, err)
				require.Equal(t, len(msg), len(dec))
				require.True(t, bytes.Equal(msg, dec))
			}
		})
	}
}

func TestIdentity_Copies(t *testing.T) {
	msg := []byte("abc")
	out, err := Identity{}.Encrypt(msg)
	require.NoError(t, err)

	out[0] = 'x'
	require.Equal(t, []byte("abc"), msg)
}

func TestCaesar(t *testing.T) {
	out, err := NewCaesar(1).Encrypt([]byte{'a', 0xff})
	require.NoError(t, err)
	require.Equal(t, []byte{'b', 0x00}, out)

	out, err = NewCaesar(-1).Encrypt([]byte("b"))
	require.NoError(t, err)
	require.Equal(t, []byte("a"), out)

	require.Equal(t, 0, NewCaesar(256).Shift())
}

func TestSecretBox(t *testing.T) {
	hexKey := strings.Repeat("0f", KeySize)
	box, err := NewSecretBoxFromString(hexKey)
	require.NoError(t, err)
	require.Equal(t, byte(0x0f), box.key[0])

	msg := []byte("attack at dawn")

	t.Run("overhead and nonce", func(t *testing.T) {
		a, err := box.Encrypt(msg)
		require.NoError(t, err)
		require.Len(t, a, len(msg)+Overhead)

		b, err := box.Encrypt(msg)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := box.Decrypt(make([]byte, Overhead-1))
		require.ErrorIs(t, err, errs.ErrCiphertextTooShort)
	})

	t.Run("tampered", func(t *testing.T) {
		ct, err := box.Encrypt(msg)
		require.NoError(t, err)
		ct[len(ct)-1] ^= 0x01

		_, err = box.Decrypt(ct)
		require.ErrorIs(t, err, errs.ErrDecryptFailed)
	})

	t.Run("wrong key", func(t *testing.T) {
		ct, err := box.Encrypt(msg)
		require.NoError(t, err)

		other, err := NewSecretBoxFromString("another key")
		require.NoError(t, err)
		_, err = other.Decrypt(ct)
		require.ErrorIs(t, err, errs.ErrDecryptFailed)
	})

	t.Run("deterministic nonce source", func(t *testing.T) {
		seeded := NewSecretBox(box.key)
		seeded.rand = bytes.NewReader(make([]byte, NonceSize))

		ct, err := seeded.Encrypt(msg)
		require.NoError(t, err)
		require.Equal(t, make([]byte, NonceSize), ct[:NonceSize])

		_, err = seeded.Encrypt(msg)
		require.Error(t, err)
	})
}
