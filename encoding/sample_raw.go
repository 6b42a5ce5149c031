package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/linecode/endian"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/internal/pool"
)

// SampleRawSize is the encoded size of one raw sample in bytes.
const SampleRawSize = 4

// SampleRawEncoder encodes float32 samples in their IEEE-754 representation.
type SampleRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[float32] = (*SampleRawEncoder)(nil)

// NewSampleRawEncoder creates a raw sample encoder using the specified endian engine.
//
// Parameters:
//   - engine: Endian engine for byte order
//
// Returns:
//   - *SampleRawEncoder: A new encoder backed by a pooled buffer
func NewSampleRawEncoder(engine endian.EndianEngine) *SampleRawEncoder {
	return &SampleRawEncoder{
		engine: engine,
		buf:    pool.GetSampleBuffer(),
	}
}

// Write encodes a single sample.
func (e *SampleRawEncoder) Write(val float32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.B = endian.AppendFloat32(e.engine, e.buf.B, val)
}

// WriteSlice encodes samples with a single buffer growth.
func (e *SampleRawEncoder) WriteSlice(values []float32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(values) == 0 {
		return
	}
	e.count += len(values)

	start := e.buf.Len()
	e.buf.ExtendOrGrow(len(values) * SampleRawSize)

	for i, v := range values {
		offset := start + i*SampleRawSize
		endian.PutFloat32(e.engine, e.buf.Slice(offset, offset+SampleRawSize), v)
	}
}

func (e *SampleRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

func (e *SampleRawEncoder) Len() int {
	return e.count
}

func (e *SampleRawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Finish returns the buffer to the pool. The encoder is unusable afterwards.
func (e *SampleRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutSampleBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// SampleRawDecoder decodes payloads produced by SampleRawEncoder.
//
// The decoder is immutable and stateless.
type SampleRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float32] = SampleRawDecoder{}

// NewSampleRawDecoder creates a raw sample decoder.
//
// Parameters:
//   - engine: Endian engine for byte order (must match the encoder's engine)
func NewSampleRawDecoder(engine endian.EndianEngine) SampleRawDecoder {
	return SampleRawDecoder{engine: engine}
}

// SampleCount returns the number of raw samples in a payload of n bytes.
//
// Returns:
//   - int: Sample count
//   - error: errs.ErrInvalidPayloadSize if n is not a multiple of SampleRawSize
func SampleCount(n int) (int, error) {
	if n%SampleRawSize != 0 {
		return 0, fmt.Errorf("%w: %d bytes is not a multiple of %d", errs.ErrInvalidPayloadSize, n, SampleRawSize)
	}

	return n / SampleRawSize, nil
}

func (d SampleRawDecoder) All(data []byte, count int) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		if len(data) < count*SampleRawSize {
			return
		}

		for i := range count {
			start := i * SampleRawSize
			if !yield(endian.Float32(d.engine, data[start:start+SampleRawSize])) {
				return
			}
		}
	}
}

func (d SampleRawDecoder) At(data []byte, index int, count int) (float32, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	start := index * SampleRawSize
	if start+SampleRawSize > len(data) {
		return 0, false
	}

	return endian.Float32(d.engine, data[start:start+SampleRawSize]), true
}

// Decode returns all count samples in data.
//
// Returns:
//   - []float32: Decoded samples
//   - error: errs.ErrInvalidPayloadSize if len(data) != count*SampleRawSize
func (d SampleRawDecoder) Decode(data []byte, count int) ([]float32, error) {
	if count < 0 || len(data) != count*SampleRawSize {
		return nil, fmt.Errorf("%w: %d bytes for %d raw samples", errs.ErrInvalidPayloadSize, len(data), count)
	}

	out := make([]float32, count)
	for i := range out {
		start := i * SampleRawSize
		out[i] = endian.Float32(d.engine, data[start:start+SampleRawSize])
	}

	return out, nil
}
