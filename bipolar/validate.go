package bipolar

import (
	"fmt"

	"github.com/arloliu/linecode/errs"
)

// ValidateBits checks that bits contains only '0' and '1'.
//
// Returns:
//   - error: errs.ErrInvalidBit wrapped with the offending position, or nil
func ValidateBits(bits string) error {
	for i, c := range bits {
		if c != '0' && c != '1' {
			return fmt.Errorf("%w: %q at offset %d", errs.ErrInvalidBit, c, i)
		}
	}

	return nil
}

// EncodeStrict encodes bits after rejecting any non-binary character.
func EncodeStrict(bits string) (Signal, error) {
	if err := ValidateBits(bits); err != nil {
		return nil, err
	}

	return Encode(bits), nil
}

// ValidateSignal checks that every sample is exactly -1, 0 or +1.
func ValidateSignal(sig Signal) error {
	for i, v := range sig {
		if !IsLevel(v) {
			return fmt.Errorf("%w: %v at sample %d", errs.ErrInvalidLevel, v, i)
		}
	}

	return nil
}

// Verify checks that sig is a signal Encode could have produced.
//
// The signal is decoded, re-encoded and compared sample by sample.
//
// Returns:
//   - error: errs.ErrInvalidLevel or errs.ErrNotEncoderOutput (wrapped with the
//     first mismatching sample), or nil
func Verify(sig Signal) error {
	if err := ValidateSignal(sig); err != nil {
		return err
	}

	reencoded := Encode(Decode(sig))
	for i := range sig {
		if reencoded[i] != sig[i] {
			return fmt.Errorf("%w: sample %d is %v, expected %v", errs.ErrNotEncoderOutput, i, sig[i], reencoded[i])
		}
	}

	return nil
}

// SignalStats summarizes a signal.
type SignalStats struct {
	Samples        int     // total samples
	Positive       int     // samples at +1
	Negative       int     // samples at -1
	Zeros          int     // samples at 0
	LongestZeroRun int     // longest run of consecutive zero samples
	DCBalance      float64 // sum of all samples
	B00V           int     // B00V groups recognized by the decoder
	V000           int     // 000V groups recognized by the decoder
}

// Marks returns the number of nonzero samples.
func (s SignalStats) Marks() int {
	return s.Positive + s.Negative
}

// Stats computes SignalStats for sig. Samples outside the three levels are
// counted as marks by sign.
func Stats(sig Signal) SignalStats {
	stats := SignalStats{Samples: len(sig)}

	run := 0
	for _, v := range sig {
		switch {
		case v == LevelZero:
			stats.Zeros++
			run++
			stats.LongestZeroRun = max(stats.LongestZeroRun, run)

			continue
		case v > 0:
			stats.Positive++
		default:
			stats.Negative++
		}
		run = 0
		stats.DCBalance += float64(v)
	}

	_, counts := decodeBits(sig)
	stats.B00V = counts.b00v
	stats.V000 = counts.v000

	return stats
}
