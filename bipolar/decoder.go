package bipolar

// decodeAction is the interpretation of the sample at the decoder cursor.
type decodeAction uint8

const (
	actZero decodeAction = iota // zero-level sample
	actB00V                     // [P,0,0,P] group starting at the cursor
	act000V                     // violation closing a [0,0,0,P] group
	actMark                     // ordinary mark
)

// decoderState is the run state of a single Decode call.
type decoderState struct {
	lastMark float32 // value of the most recent mark
	hasMark  bool    // lastMark is unset until the first mark
	zeroRun  int     // zero samples emitted as '0' since the last mark
}

// classify selects the action for sig[i] without mutating the state.
//
// The B00V lookahead is tried before the 000V rule.
func (s *decoderState) classify(sig Signal, i int) decodeAction {
	v := sig[i]
	if v == LevelZero {
		return actZero
	}

	if i+window < len(sig) && sig[i+1] == LevelZero && sig[i+2] == LevelZero && sig[i+3] == v {
		return actB00V
	}

	if s.zeroRun == window && s.hasMark && v == s.lastMark {
		return act000V
	}

	return actMark
}

// decodeCounts records how many groups of each shape a decode pass recognized.
type decodeCounts struct {
	b00v int
	v000 int
}

// decodeBits runs the decoder over sig and returns the bits as bytes.
func decodeBits(sig Signal) ([]byte, decodeCounts) {
	out := make([]byte, 0, len(sig))
	state := decoderState{}
	counts := decodeCounts{}

	for i := 0; i < len(sig); {
		switch state.classify(sig, i) {
		case actZero:
			out = append(out, '0')
			state.zeroRun++
			i++
		case actB00V:
			out = append(out, "0000"...)
			state.lastMark = sig[i]
			state.hasMark = true
			state.zeroRun = 0
			counts.b00v++
			i += substitutionRun
		case act000V:
			out = append(trimTail(out), "0000"...)
			state.zeroRun = 0
			counts.v000++
			i++
		case actMark:
			out = append(out, '1')
			state.lastMark = sig[i]
			state.hasMark = true
			state.zeroRun = 0
			i++
		}
	}

	return out, counts
}

// trimTail drops the window provisional '0' characters emitted for the zero
// samples of a 000V group.
func trimTail(out []byte) []byte {
	if len(out) < window {
		panic("bipolar: violation window exceeds decoded bits")
	}

	return out[:len(out)-window]
}

// Decode reconstructs the bit sequence carried by a line signal.
//
// Decode is the exact inverse of Encode for any signal Encode produced. For
// any other signal it still returns a bit sequence with one bit per sample
// and never panics; any nonzero sample value is treated as a mark.
//
// Parameters:
//   - signal: Line samples
//
// Returns:
//   - string: Bit sequence over {'0','1'}
func Decode(signal Signal) string {
	out, _ := decodeBits(signal)
	return string(out)
}
