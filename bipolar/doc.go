// Package bipolar implements a three-level alternate-mark-inversion line code
// with zero-run substitution.
//
// A bit sequence over {'0','1'} maps to a Signal whose samples are exactly
// -1, 0 or +1, one sample per bit. Every '1' bit emits a mark whose polarity
// is the inverse of the previous mark. A '0' bit emits a zero-level sample,
// except that every fourth consecutive zero triggers a substitution of the
// whole four-sample group:
//
//   - B00V: when an even number of marks was emitted since the previous
//     substitution, the polarity is inverted and the group becomes [P,0,0,P].
//   - 000V: when the count is odd, the group becomes [0,0,0,P] where P
//     repeats the polarity of the preceding mark (a bipolar violation).
//
// The parity of the mark count selects the substitution shape; it is tracked
// as an explicit Parity value rather than a counter.
//
// # Basic Usage
//
//	signal := bipolar.Encode("10000")   // [+1 0 0 0 +1]
//	bits := bipolar.Decode(signal)      // "10000"
//
// # Decoding
//
// The decoder inverts the substitution rule with a bounded window: a B00V group
// is recognized by looking ahead three samples, a 000V group by remembering the
// polarity of the last real mark and that exactly three zero samples preceded
// the current one. Decode is the exact left inverse of Encode for every signal
// Encode can produce. Other signals still decode to some bit sequence of the
// same length; callers needing strict validation use Verify.
//
// # Non-binary Input
//
// Encode treats any character other than '1' as '0'. Callers that must reject
// such input use ValidateBits or EncodeStrict.
//
// # Thread Safety
//
// Encode and Decode allocate their run state per call and share nothing, so
// they are safe for concurrent use.
package bipolar
