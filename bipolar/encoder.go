package bipolar

import "unicode/utf8"

const (
	// substitutionRun is the number of consecutive zero bits replaced by a substitution group.
	substitutionRun = 4
	// window is the number of already emitted samples a substitution may rewrite,
	// and the number of samples the decoder looks ahead of a mark.
	window = substitutionRun - 1
)

// encodeAction is the output produced by one encoder transition.
type encodeAction uint8

const (
	actEmitMark encodeAction = iota
	actEmitZero
	actSubstituteB00V
	actSubstitute000V
)

// encoderState is the run state of a single Encode call.
type encoderState struct {
	polarity Polarity // polarity of the most recent mark
	parity   Parity   // marks since the last substitution
	zeroRun  int      // consecutive zero bits since the last mark or substitution
}

func newEncoderState() encoderState {
	return encoderState{polarity: initialPolarity, parity: Even}
}

// step advances the state by one input character and returns the action to apply.
//
// Transition table:
//
//	'1'                          -> flip polarity, toggle parity, zeroRun=0, actEmitMark
//	other, zeroRun+1 < 4         -> zeroRun++, actEmitZero
//	other, zeroRun+1 == 4, Even  -> flip polarity, reset, actSubstituteB00V
//	other, zeroRun+1 == 4, Odd   -> reset, actSubstitute000V
func (s *encoderState) step(bit rune) encodeAction {
	if bit == '1' {
		s.polarity = s.polarity.Flip()
		s.parity = s.parity.Toggle()
		s.zeroRun = 0

		return actEmitMark
	}

	s.zeroRun++
	if s.zeroRun < substitutionRun {
		return actEmitZero
	}

	action := actSubstitute000V
	if s.parity == Even {
		s.polarity = s.polarity.Flip()
		action = actSubstituteB00V
	}
	s.zeroRun = 0
	s.parity = Even

	return action
}

// Encode maps a bit sequence to its line signal.
//
// The output has exactly one sample per input character. Characters other
// than '1' are encoded as '0'. An empty input yields an empty signal.
//
// Parameters:
//   - bits: Bit sequence, conventionally over {'0','1'}
//
// Returns:
//   - Signal: Samples in {-1, 0, +1}
func Encode(bits string) Signal {
	out := make(Signal, 0, utf8.RuneCountInString(bits))
	state := newEncoderState()

	for _, bit := range bits {
		switch state.step(bit) {
		case actEmitMark:
			out = append(out, state.polarity.Level())
		case actEmitZero:
			out = append(out, LevelZero)
		case actSubstituteB00V:
			v := state.polarity.Level()
			rewriteTail(out, v, LevelZero, LevelZero)
			out = append(out, v)
		case actSubstitute000V:
			rewriteTail(out, LevelZero, LevelZero, LevelZero)
			out = append(out, state.polarity.Level())
		}
	}

	return out
}

// rewriteTail overwrites the last window samples of out.
//
// A substitution only fires after window zero samples were appended, so out
// always holds at least window samples here.
func rewriteTail(out Signal, a, b, c float32) {
	if len(out) < window {
		panic("bipolar: substitution window exceeds emitted samples")
	}

	tail := out[len(out)-window:]
	tail[0], tail[1], tail[2] = a, b, c
}
