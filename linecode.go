// Package linecode transmits binary data as a three-level line signal.
//
// The line code is bipolar AMI with a zero-substitution rule: marks ('1' bits)
// alternate between +1 and -1, spaces ('0' bits) are 0, and every run of four
// zeros is replaced by a B00V or 000V group so the signal never stays at zero
// for more than three samples. The codec itself lives in package bipolar.
//
// # Core Features
//
//   - Stateless, allocation-light Encode and Decode with exact round trip
//   - Message pipeline: transform (cipher) → 8-bit text mapping → line code
//   - Self-describing frames with raw or 2-bit packed samples
//   - Optional compression (None, Zstd, S2, LZ4) and xxHash64 checksums
//   - Compatibility with headerless little-endian float32 sample buffers
//
// # Basic Usage
//
// Encoding a message:
//
//	sig, _ := linecode.EncodeMessage([]byte("hi"), cipher.Identity{})
//	data, _ := linecode.Marshal(sig, frame.WithCompression(format.CompressionZstd))
//
// Decoding a message:
//
//	sig, _ := linecode.Unmarshal(data)
//	msg, _ := linecode.DecodeMessage(sig, cipher.Identity{})
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the bipolar,
// bitstring, cipher and frame packages. Use those packages directly for
// strict validation, statistics, or custom frame layouts.
package linecode

import (
	"bytes"
	"fmt"

	"github.com/arloliu/linecode/bipolar"
	"github.com/arloliu/linecode/bitstring"
	"github.com/arloliu/linecode/cipher"
	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/endian"
	"github.com/arloliu/linecode/frame"
)

// Encode converts a bit sequence into a line signal. See bipolar.Encode.
func Encode(bits string) bipolar.Signal {
	return bipolar.Encode(bits)
}

// Decode converts a line signal back into a bit sequence. See bipolar.Decode.
func Decode(sig bipolar.Signal) string {
	return bipolar.Decode(sig)
}

// EncodeMessage transforms msg, maps every byte to 8 bits and line encodes the result.
//
// Parameters:
//   - msg: Message bytes; text should be passed as UTF-8
//   - t: Message transform, nil means cipher.Identity
//
// Returns:
//   - bipolar.Signal: Line signal with 8 samples per transformed byte
//   - error: Transform error
func EncodeMessage(msg []byte, t cipher.Transform) (bipolar.Signal, error) {
	if t == nil {
		t = cipher.Identity{}
	}

	ciphertext, err := t.Encrypt(msg)
	if err != nil {
		return nil, fmt.Errorf("encrypt message: %w", err)
	}

	return bipolar.Encode(bitstring.FromBytes(ciphertext)), nil
}

// DecodeMessage reverses EncodeMessage.
//
// Returns:
//   - []byte: Original message
//   - error: errs.ErrInvalidBitLength if the signal length is not a multiple
//     of 8, or a transform error
func DecodeMessage(sig bipolar.Signal, t cipher.Transform) ([]byte, error) {
	if t == nil {
		t = cipher.Identity{}
	}

	ciphertext, err := bitstring.ToBytes(bipolar.Decode(sig))
	if err != nil {
		return nil, err
	}

	msg, err := t.Decrypt(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypt message: %w", err)
	}

	return msg, nil
}

// Marshal serializes sig into a frame.
//
// Parameters:
//   - sig: Signal to serialize
//   - opts: Frame encoder options; defaults are raw little-endian uncompressed
func Marshal(sig bipolar.Signal, opts ...frame.EncoderOption) ([]byte, error) {
	enc, err := frame.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(sig)
}

// MarshalRaw serializes sig as headerless little-endian float32 samples.
func MarshalRaw(sig bipolar.Signal) []byte {
	enc := encoding.NewSampleRawEncoder(endian.GetLittleEndianEngine())
	defer enc.Finish()

	enc.WriteSlice(sig)

	return bytes.Clone(enc.Bytes())
}

// Unmarshal parses either a frame or a headerless little-endian float32 buffer.
//
// Returns:
//   - bipolar.Signal: Decoded samples
//   - error: Frame validation errors, or errs.ErrInvalidPayloadSize for a
//     headerless buffer whose length is not a multiple of 4
func Unmarshal(data []byte) (bipolar.Signal, error) {
	if frame.IsFramed(data) {
		f, err := frame.Decode(data)
		if err != nil {
			return nil, err
		}

		return f.Signal(), nil
	}

	count, err := encoding.SampleCount(len(data))
	if err != nil {
		return nil, err
	}

	samples, err := encoding.NewSampleRawDecoder(endian.GetLittleEndianEngine()).Decode(data, count)
	if err != nil {
		return nil, err
	}

	return bipolar.Signal(samples), nil
}
