package frame

import (
	"math/rand"
	"testing"

	"github.com/arloliu/linecode/bipolar"
	"github.com/arloliu/linecode/format"
)

func BenchmarkEncoder_Encode(b *testing.B) {
	sig := bipolar.Encode(randomBits(rand.New(rand.NewSource(1)), 8192))

	for _, comp := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		enc, err := NewEncoder(WithSampleEncoding(format.TypePacked), WithCompression(comp))
		if err != nil {
			b.Fatal(err)
		}

		b.Run(comp.String(), func(b *testing.B) {
			for b.Loop() {
				if _, err := enc.Encode(sig); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	sig := bipolar.Encode(randomBits(rand.New(rand.NewSource(1)), 8192))
	enc, err := NewEncoder(WithCompression(format.CompressionS2))
	if err != nil {
		b.Fatal(err)
	}
	data, err := enc.Encode(sig)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, err := Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
