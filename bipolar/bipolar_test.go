package bipolar

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	p = LevelPositive
	n = LevelNegative
	z = LevelZero
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		bits string
		want Signal
	}{
		{"empty", "", Signal{}},
		{"single mark", "1", Signal{p}},
		{"alternating marks", "111", Signal{p, n, p}},
		{"short zero run", "1000", Signal{p, z, z, z}},
		{"B00V without prior marks", "0000", Signal{p, z, z, p}},
		{"000V after odd marks", "10000", Signal{p, z, z, z, p}},
		{"B00V after even marks", "110000", Signal{p, n, p, z, z, p}},
		{"mark after 000V", "100001", Signal{p, z, z, z, p, n}},
		{"consecutive groups", "00000000", Signal{p, z, z, p, n, z, z, n}},
		{"isolated mark after three zeros", "10001", Signal{p, z, z, z, n}},
		{"trailing partial run", "1000000", Signal{p, z, z, z, p, z, z}},
		{"parity resets after substitution", "1000010000", Signal{p, z, z, z, p, n, z, z, z, n}},
		{"non-binary treated as zero", "abcd", Signal{p, z, z, p}},
		{"mixed non-binary", "1x1", Signal{p, z, n}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Encode(tt.bits))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		signal Signal
		want   string
	}{
		{"nil", nil, ""},
		{"empty", Signal{}, ""},
		{"single mark", Signal{p}, "1"},
		{"000V uses polarity history", Signal{p, z, z, z, p}, "10000"},
		{"B00V uses lookahead", Signal{p, z, z, p}, "0000"},
		{"B00V after marks", Signal{p, n, p, z, z, p}, "110000"},
		{"isolated mark after three zeros", Signal{p, z, z, z, n}, "10001"},
		{"lone marks", Signal{p, z, p}, "101"},
		{"zeros only", Signal{z, z, z}, "000"},
		{"violation without history", Signal{z, z, z, p}, "0001"},
		{"consecutive groups", Signal{p, z, z, p, n, z, z, n}, "00000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Decode(tt.signal))
		})
	}
}

func TestRoundTrip_Exhaustive(t *testing.T) {
	for length := 0; length <= 12; length++ {
		for v := 0; v < 1<<length; v++ {
			bits := bitString(v, length)
			sig := Encode(bits)
			require.Equal(t, bits, Decode(sig), "bits=%q signal=%v", bits, sig)
		}
	}
}

func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for range 200 {
		bits := randomBits(rng, rng.IntN(4096), rng.Float64())
		require.Equal(t, bits, Decode(Encode(bits)))
	}
}

func TestEncode_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 500 {
		bits := randomBits(rng, rng.IntN(512), rng.Float64())
		sig := Encode(bits)

		require.Len(t, sig, len(bits))
		require.NoError(t, ValidateSignal(sig))
		require.LessOrEqual(t, Stats(sig).LongestZeroRun, window, "bits=%q", bits)
		requireAlternatingMarks(t, bits, sig)
	}
}

func TestEncode_ZeroRunsCarryViolation(t *testing.T) {
	for groups := 1; groups <= 6; groups++ {
		sig := Encode(strings.Repeat("0", substitutionRun*groups))
		for g := range groups {
			group := sig[g*substitutionRun : (g+1)*substitutionRun]
			require.NotEqual(t, LevelZero, group[window], "group %d must end with a violation", g)
		}
	}
}

func TestDecode_ArbitraryInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	values := []float32{n, z, p, 0.5, -2, float32(math.NaN()), float32(math.Inf(1))}

	for range 2000 {
		sig := make(Signal, rng.IntN(64))
		for i := range sig {
			sig[i] = values[rng.IntN(len(values))]
		}

		var bits string
		require.NotPanics(t, func() { bits = Decode(sig) })
		require.Len(t, bits, len(sig))
		require.NoError(t, ValidateBits(bits))
	}
}

func TestPolarity(t *testing.T) {
	require.Equal(t, Positive, initialPolarity.Flip())
	require.Equal(t, Negative, Positive.Flip())
	require.Equal(t, LevelPositive, Positive.Level())
	require.Equal(t, LevelNegative, Negative.Level())
	require.Equal(t, "+", Positive.String())
	require.Equal(t, "-", Negative.String())
}

func TestParity(t *testing.T) {
	require.Equal(t, Odd, Even.Toggle())
	require.Equal(t, Even, Odd.Toggle())
	require.Equal(t, "Even", Even.String())
	require.Equal(t, "Odd", Odd.String())
}

func TestIsLevel(t *testing.T) {
	require.True(t, IsLevel(-1))
	require.True(t, IsLevel(0))
	require.True(t, IsLevel(1))
	require.True(t, IsLevel(float32(math.Copysign(0, -1))))
	require.False(t, IsLevel(0.5))
	require.False(t, IsLevel(float32(math.NaN())))
}

func bitString(v, length int) string {
	var sb strings.Builder
	for i := length - 1; i >= 0; i-- {
		if v&(1<<i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

func randomBits(rng *rand.Rand, length int, density float64) string {
	b := make([]byte, length)
	for i := range b {
		if rng.Float64() < density {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}

	return string(b)
}

// requireAlternatingMarks checks that marks alternate in sign once the
// violation samples of substitution groups are removed.
func requireAlternatingMarks(t *testing.T, bits string, sig Signal) {
	t.Helper()

	var last float32
	run := 0
	for i := range len(bits) {
		if bits[i] == '0' {
			run++
			if run < substitutionRun {
				continue
			}
			run = 0

			if b := sig[i-window]; b != LevelZero {
				// B00V: the leading sample alternates, the trailing one repeats it.
				require.NotEqual(t, last, b, "bits=%q at %d", bits, i-window)
				last = b
			}

			continue
		}
		run = 0

		require.NotEqual(t, last, sig[i], "bits=%q at %d", bits, i)
		last = sig[i]
	}
}
