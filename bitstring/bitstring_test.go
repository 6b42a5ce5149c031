package bitstring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linecode/errs"
)

func TestFromBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"letter", []byte("A"), "01000001"},
		{"two", []byte("hi"), "0110100001101001"},
		{"high byte", []byte{0xe9}, "11101001"},
		{"zero", []byte{0x00}, "00000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FromBytes(tt.in))
		})
	}
}

func TestToBytes(t *testing.T) {
	got, err := ToBytes("0110100001101001")
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), got)

	got, err = ToBytes("")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = ToBytes("0101")
	require.ErrorIs(t, err, errs.ErrInvalidBitLength)

	_, err = ToBytes("0110x001")
	require.ErrorIs(t, err, errs.ErrInvalidBit)
	require.Contains(t, err.Error(), "offset 4")
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	data := make([]byte, 512)
	rng.Read(data)

	bits := FromBytes(data)
	require.Len(t, bits, len(data)*BitsPerByte)

	got, err := ToBytes(bits)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestGroup(t *testing.T) {
	require.Equal(t, "01101000 01101001", Group("0110100001101001", 8))
	require.Equal(t, "0110 1", Group("01101", 4))
	require.Equal(t, "0110", Group("0110", 8))
	require.Equal(t, "0110", Group("0110", 0))
	require.Equal(t, "", Group("", 8))
}

func TestStrip(t *testing.T) {
	require.Equal(t, "0110100001101001", Strip(Group("0110100001101001", 8)))
	require.Equal(t, "01", Strip(" 0 \n1 "))
}
