package hash

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"nil", nil, 0xef46db3751d8e999},
		{"empty", []byte{}, 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
		{"long", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.sum, Checksum(tt.data))
			require.True(t, Verify(tt.data, tt.sum))
		})
	}
}

func TestVerify_Mismatch(t *testing.T) {
	data := []byte{0x00, 0x00, 0x80, 0x3f}
	sum := Checksum(data)

	data[3] ^= 0x01
	require.False(t, Verify(data, sum))
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 4096)
	rand.New(rand.NewSource(1)).Read(data)

	b.SetBytes(int64(len(data)))
	for b.Loop() {
		Checksum(data)
	}
}
