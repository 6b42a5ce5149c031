package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/internal/pool"
)

const (
	samplesPerByte = 4
	codeZero       = 0b00
	codePositive   = 0b01
	codeNegative   = 0b10
	codeInvalid    = 0b11
)

// PackedSize returns the payload size in bytes of count packed samples.
func PackedSize(count int) int {
	return (count + samplesPerByte - 1) / samplesPerByte
}

// SamplePackedEncoder packs line levels into 2-bit codes.
//
// Writing a value other than -1, 0 or +1 records errs.ErrInvalidLevel, which
// is reported by Err; the offending sample is packed as zero.
type SamplePackedEncoder struct {
	buf   *pool.ByteBuffer
	count int
	err   error
}

var _ ColumnarEncoder[float32] = (*SamplePackedEncoder)(nil)

// NewSamplePackedEncoder creates a packed sample encoder.
func NewSamplePackedEncoder() *SamplePackedEncoder {
	return &SamplePackedEncoder{buf: pool.GetSampleBuffer()}
}

// Write packs a single sample into the next 2-bit slot, most significant
// slot first. A new byte is started every four samples.
func (e *SamplePackedEncoder) Write(val float32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	code, ok := levelCode(val)
	if !ok && e.err == nil {
		e.err = fmt.Errorf("%w: %v at sample %d", errs.ErrInvalidLevel, val, e.count)
	}

	slot := e.count % samplesPerByte
	if slot == 0 {
		e.buf.B = append(e.buf.B, 0)
	}
	e.buf.B[len(e.buf.B)-1] |= code << (6 - 2*slot)
	e.count++
}

// WriteSlice packs samples with a single buffer growth.
//
// Invalid levels are handled as in Write; only the first is kept in Err.
func (e *SamplePackedEncoder) WriteSlice(values []float32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.buf.Grow(PackedSize(e.count+len(values)) - e.buf.Len())
	for _, v := range values {
		e.Write(v)
	}
}

// Err returns the first invalid level written, if any.
func (e *SamplePackedEncoder) Err() error {
	return e.err
}

// Bytes returns the packed payload. The final byte is zero padded when the
// sample count is not a multiple of four.
//
// The slice aliases the pooled buffer and is only valid until Finish.
func (e *SamplePackedEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of samples written.
func (e *SamplePackedEncoder) Len() int {
	return e.count
}

// Size returns the packed payload size in bytes, PackedSize(Len()).
func (e *SamplePackedEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Finish returns the buffer to the pool and clears any recorded error.
// The encoder is unusable afterwards.
func (e *SamplePackedEncoder) Finish() {
	if e.buf != nil {
		pool.PutSampleBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
	e.err = nil
}

func levelCode(v float32) (byte, bool) {
	switch v {
	case 0:
		return codeZero, true
	case 1:
		return codePositive, true
	case -1:
		return codeNegative, true
	default:
		return codeZero, false
	}
}

func codeLevel(code byte) (float32, bool) {
	switch code {
	case codeZero:
		return 0, true
	case codePositive:
		return 1, true
	case codeNegative:
		return -1, true
	default:
		return 0, false
	}
}

// SamplePackedDecoder decodes payloads produced by SamplePackedEncoder.
type SamplePackedDecoder struct{}

var _ ColumnarDecoder[float32] = SamplePackedDecoder{}

// NewSamplePackedDecoder creates a packed sample decoder.
//
// Packed payloads are byte oriented, so unlike NewSampleRawDecoder it takes no
// endian engine.
func NewSamplePackedDecoder() SamplePackedDecoder {
	return SamplePackedDecoder{}
}

func (d SamplePackedDecoder) code(data []byte, index int) byte {
	return (data[index/samplesPerByte] >> (6 - 2*(index%samplesPerByte))) & codeInvalid
}

// All yields samples until count is reached or an invalid code is found.
func (d SamplePackedDecoder) All(data []byte, count int) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		if len(data) < PackedSize(count) {
			return
		}

		for i := range count {
			v, ok := codeLevel(d.code(data, i))
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// At returns the sample at index without decoding the rest of data.
// It returns false if index is out of range or the slot holds the invalid code.
func (d SamplePackedDecoder) At(data []byte, index int, count int) (float32, bool) {
	if index < 0 || index >= count || index/samplesPerByte >= len(data) {
		return 0, false
	}

	return codeLevel(d.code(data, index))
}

// Decode returns all count samples in data.
//
// Returns:
//   - []float32: Decoded samples
//   - error: errs.ErrInvalidPayloadSize if len(data) != PackedSize(count),
//     errs.ErrInvalidLevel if a code is 11
func (d SamplePackedDecoder) Decode(data []byte, count int) ([]float32, error) {
	if count < 0 || len(data) != PackedSize(count) {
		return nil, fmt.Errorf("%w: %d bytes for %d packed samples", errs.ErrInvalidPayloadSize, len(data), count)
	}

	out := make([]float32, count)
	for i := range out {
		v, ok := codeLevel(d.code(data, i))
		if !ok {
			return nil, fmt.Errorf("%w: code 0b11 at sample %d", errs.ErrInvalidLevel, i)
		}
		out[i] = v
	}

	return out, nil
}
