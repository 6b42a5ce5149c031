// Package encoding serializes line signals into sample payloads.
//
// A payload is the byte representation of a signal's samples with no header.
// Two representations are provided:
//
//   - SampleRawEncoder/SampleRawDecoder: 4-byte IEEE-754 float32 per sample in a
//     configurable byte order. This is the reference wire form: a little-endian
//     raw payload is byte-identical to a numpy float32 buffer.
//   - SamplePackedEncoder/SamplePackedDecoder: 2 bits per sample, four samples
//     per byte, first sample in the most significant bits. Codes are 00 for 0,
//     01 for +1 and 10 for -1; 11 is invalid. Packing only applies to the three
//     line levels.
//
// Raw payloads preserve sample values bit for bit, including values outside
// the three line levels; no rounding is ever applied.
//
// # Usage
//
//	engine := endian.GetLittleEndianEngine()
//	encoder := encoding.NewSampleRawEncoder(engine)
//	defer encoder.Finish()
//
//	encoder.WriteSlice(signal)
//	payload := bytes.Clone(encoder.Bytes())
//
//	samples, err := encoding.NewSampleRawDecoder(engine).Decode(payload, len(signal))
//
// # Thread Safety
//
// Encoders are not thread-safe; use one encoder per goroutine. Decoders are
// stateless values and safe for concurrent use.
package encoding
