package bipolar

import (
	"math/rand/v2"
	"testing"
)

func benchmarkBits(size int) string {
	rng := rand.New(rand.NewPCG(11, 13))
	return randomBits(rng, size, 0.3)
}

func BenchmarkEncode(b *testing.B) {
	bits := benchmarkBits(8 * 1024)

	b.ReportAllocs()
	b.SetBytes(int64(len(bits)))
	for b.Loop() {
		_ = Encode(bits)
	}
}

func BenchmarkDecode(b *testing.B) {
	sig := Encode(benchmarkBits(8 * 1024))

	b.ReportAllocs()
	b.SetBytes(int64(len(sig)))
	for b.Loop() {
		_ = Decode(sig)
	}
}
