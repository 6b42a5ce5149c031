package frame

import (
	"bytes"
	"fmt"
	"math"

	"github.com/arloliu/linecode/bipolar"
	"github.com/arloliu/linecode/compress"
	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/internal/hash"
	"github.com/arloliu/linecode/internal/options"
	"github.com/arloliu/linecode/internal/pool"
	"github.com/arloliu/linecode/section"
)

// Encoder serializes signals into frames.
//
// An Encoder holds only immutable configuration, so a single instance can be
// shared by concurrent goroutines.
type Encoder struct {
	config *EncoderConfig
}

// NewEncoder creates a frame encoder.
//
// Parameters:
//   - opts: Optional encoding configuration (byte order, sample encoding, compression)
//
// Returns:
//   - *Encoder: Encoder with raw little-endian uncompressed defaults unless overridden
//   - error: Option validation error or unknown compression codec
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := newEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(config.flag.Compression())
	if err != nil {
		return nil, err
	}
	config.codec = codec

	return &Encoder{config: config}, nil
}

// Flag returns the header flag this encoder writes.
func (e *Encoder) Flag() section.FrameFlag {
	return e.config.Flag()
}

// Encode serializes sig into a new frame.
//
// Parameters:
//   - sig: Signal whose samples are line levels (-1, 0, +1); raw encoding
//     accepts any float32 and stores it bit-exactly
//
// Returns:
//   - []byte: Header followed by the (compressed) payload
//   - error: errs.ErrInvalidLevel for packed encoding of non-level samples,
//     errs.ErrInvalidPayloadSize if the signal does not fit a frame, or a compression error
func (e *Encoder) Encode(sig bipolar.Signal) ([]byte, error) {
	if uint64(len(sig)) > section.MaxSampleCount {
		return nil, fmt.Errorf("%w: %d samples exceed frame limit", errs.ErrInvalidPayloadSize, len(sig))
	}

	payload, err := e.encodeSamples(sig)
	if err != nil {
		return nil, err
	}

	header := section.FrameHeader{
		Flag:        e.config.flag,
		SampleCount: uint32(len(sig)),
		Checksum:    hash.Checksum(payload),
	}

	compressed, err := e.config.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	if uint64(len(compressed)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: compressed payload of %d bytes", errs.ErrInvalidPayloadSize, len(compressed))
	}
	header.PayloadSize = uint32(len(compressed))

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.Grow(section.HeaderSize + len(compressed))
	buf.B = header.AppendTo(buf.B)
	buf.B = append(buf.B, compressed...)

	return bytes.Clone(buf.Bytes()), nil
}

// encodeSamples returns an owned copy of the uncompressed payload.
func (e *Encoder) encodeSamples(sig bipolar.Signal) ([]byte, error) {
	switch e.config.flag.SampleEncoding() {
	case format.TypePacked:
		enc := encoding.NewSamplePackedEncoder()
		defer enc.Finish()

		enc.WriteSlice(sig)
		if err := enc.Err(); err != nil {
			return nil, err
		}

		return bytes.Clone(enc.Bytes()), nil
	default:
		enc := encoding.NewSampleRawEncoder(e.config.engine)
		defer enc.Finish()

		enc.WriteSlice(sig)

		return bytes.Clone(enc.Bytes()), nil
	}
}
