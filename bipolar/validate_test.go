package bipolar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linecode/errs"
)

func TestValidateBits(t *testing.T) {
	require.NoError(t, ValidateBits(""))
	require.NoError(t, ValidateBits("0110"))

	err := ValidateBits("01 0")
	require.ErrorIs(t, err, errs.ErrInvalidBit)
	require.Contains(t, err.Error(), "offset 2")
}

func TestEncodeStrict(t *testing.T) {
	sig, err := EncodeStrict("10000")
	require.NoError(t, err)
	require.Equal(t, Signal{p, z, z, z, p}, sig)

	sig, err = EncodeStrict("10x00")
	require.ErrorIs(t, err, errs.ErrInvalidBit)
	require.Nil(t, sig)
}

func TestValidateSignal(t *testing.T) {
	require.NoError(t, ValidateSignal(Signal{p, z, n}))
	require.ErrorIs(t, ValidateSignal(Signal{p, 0.5}), errs.ErrInvalidLevel)
	require.ErrorIs(t, ValidateSignal(Signal{float32(math.NaN())}), errs.ErrInvalidLevel)
}

func TestVerify(t *testing.T) {
	t.Run("encoder output", func(t *testing.T) {
		for _, bits := range []string{"", "1", "0000", "10000", "110000", "1000010000", "0101000011"} {
			require.NoError(t, Verify(Encode(bits)), "bits=%q", bits)
		}
	})

	t.Run("plain zero run", func(t *testing.T) {
		require.ErrorIs(t, Verify(Signal{z, z, z, z}), errs.ErrNotEncoderOutput)
	})

	t.Run("wrong first polarity", func(t *testing.T) {
		require.ErrorIs(t, Verify(Signal{n}), errs.ErrNotEncoderOutput)
	})

	t.Run("repeated violation", func(t *testing.T) {
		// After a 000V group the parity is even, so the next group must be B00V.
		err := Verify(Signal{p, z, z, z, p, z, z, z, p})
		require.ErrorIs(t, err, errs.ErrNotEncoderOutput)
		require.Contains(t, err.Error(), "sample 5")
	})

	t.Run("invalid level", func(t *testing.T) {
		require.ErrorIs(t, Verify(Signal{p, 2}), errs.ErrInvalidLevel)
	})
}

func TestStats(t *testing.T) {
	t.Run("B00V", func(t *testing.T) {
		stats := Stats(Encode("110000"))
		require.Equal(t, SignalStats{
			Samples:        6,
			Positive:       3,
			Negative:       1,
			Zeros:          2,
			LongestZeroRun: 2,
			DCBalance:      2,
			B00V:           1,
		}, stats)
		require.Equal(t, 4, stats.Marks())
	})

	t.Run("000V", func(t *testing.T) {
		stats := Stats(Encode("10000"))
		require.Equal(t, 2, stats.Positive)
		require.Equal(t, 3, stats.Zeros)
		require.Equal(t, 3, stats.LongestZeroRun)
		require.Equal(t, 1, stats.V000)
		require.Equal(t, 0, stats.B00V)
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, SignalStats{}, Stats(nil))
	})
}
