package bipolar

// Signal is an ordered sequence of line levels, one sample per encoded bit.
//
// Samples are float32 to match the wire representation (4 bytes per sample).
type Signal []float32

// Line levels.
const (
	LevelNegative float32 = -1
	LevelZero     float32 = 0
	LevelPositive float32 = 1
)

// IsLevel reports whether v is exactly one of the three line levels.
func IsLevel(v float32) bool {
	return v == LevelNegative || v == LevelZero || v == LevelPositive
}

// Polarity is the sign of a mark.
type Polarity int8

const (
	Negative Polarity = -1
	Positive Polarity = 1
)

// initialPolarity seeds the encoder so the first mark is positive.
const initialPolarity = Negative

// Flip returns the opposite polarity.
func (p Polarity) Flip() Polarity {
	return -p
}

// Level returns the sample value for a mark of this polarity.
func (p Polarity) Level() float32 {
	if p == Positive {
		return LevelPositive
	}

	return LevelNegative
}

func (p Polarity) String() string {
	if p == Positive {
		return "+"
	}

	return "-"
}

// Parity is the parity of the number of marks emitted since the last substitution.
type Parity uint8

const (
	Even Parity = iota
	Odd
)

// Toggle returns the parity after one more mark.
func (p Parity) Toggle() Parity {
	if p == Even {
		return Odd
	}

	return Even
}

func (p Parity) String() string {
	if p == Even {
		return "Even"
	}

	return "Odd"
}
