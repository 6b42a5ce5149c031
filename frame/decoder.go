package frame

import (
	"errors"
	"fmt"

	"github.com/arloliu/linecode/bipolar"
	"github.com/arloliu/linecode/compress"
	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/internal/hash"
	"github.com/arloliu/linecode/section"
)

// IsFramed reports whether data starts with a frame header magic number.
//
// Headerless float32 buffers never match: their first two bytes are the low
// mantissa bytes of a line level, which are always zero.
func IsFramed(data []byte) bool {
	return section.HasFrameMagic(data)
}

// Decode parses and validates a frame.
//
// The header is validated first, then the payload length. The payload is
// decompressed into at most the size the header's sample count calls for, so
// a small frame cannot expand past what it describes. The checksum of the
// decompressed payload is checked last, followed by the exact payload size.
//
// Parameters:
//   - data: Complete frame bytes; data is not retained
//
// Returns:
//   - Frame: Decoded frame
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber,
//     errs.ErrPayloadTruncated, errs.ErrInvalidPayloadSize,
//     errs.ErrChecksumMismatch, errs.ErrSampleCountMismatch (wrapping
//     errs.ErrDecompressLimit when the payload expands past it), errs.ErrInvalidLevel,
//     or a decompression error
func Decode(data []byte) (Frame, error) {
	header, err := section.ParseFrameHeader(data)
	if err != nil {
		return Frame{}, err
	}

	body := data[section.HeaderSize:]
	switch {
	case uint64(len(body)) < uint64(header.PayloadSize):
		return Frame{}, fmt.Errorf("%w: have %d of %d payload bytes", errs.ErrPayloadTruncated, len(body), header.PayloadSize)
	case uint64(len(body)) > uint64(header.PayloadSize):
		return Frame{}, fmt.Errorf("%w: %d trailing bytes after payload", errs.ErrInvalidPayloadSize, uint64(len(body))-uint64(header.PayloadSize))
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return Frame{}, err
	}

	want := payloadSize(header)
	payload, err := codec.DecompressLimit(body, want)
	if errors.Is(err, errs.ErrDecompressLimit) {
		return Frame{}, fmt.Errorf("%w: %d samples need %d bytes: %w",
			errs.ErrSampleCountMismatch, header.SampleCount, want, err)
	}
	if err != nil {
		return Frame{}, fmt.Errorf("decompress payload: %w", err)
	}

	if !hash.Verify(payload, header.Checksum) {
		return Frame{}, errs.ErrChecksumMismatch
	}

	sig, err := decodeSamples(header, payload, want)
	if err != nil {
		return Frame{}, err
	}

	return Frame{header: header, signal: sig}, nil
}

// payloadSize returns the uncompressed payload size of header's samples.
func payloadSize(header section.FrameHeader) int {
	count := int(header.SampleCount)
	if header.Flag.SampleEncoding() == format.TypePacked {
		return encoding.PackedSize(count)
	}

	return count * encoding.SampleRawSize
}

func decodeSamples(header section.FrameHeader, payload []byte, want int) (bipolar.Signal, error) {
	count := int(header.SampleCount)

	var dec encoding.ColumnarDecoder[float32]
	switch header.Flag.SampleEncoding() {
	case format.TypePacked:
		dec = encoding.NewSamplePackedDecoder()
	default:
		dec = encoding.NewSampleRawDecoder(header.Flag.GetEndianEngine())
	}

	if len(payload) != want {
		return nil, fmt.Errorf("%w: %d samples need %d bytes, payload has %d",
			errs.ErrSampleCountMismatch, count, want, len(payload))
	}

	samples, err := dec.Decode(payload, count)
	if err != nil {
		return nil, err
	}

	return bipolar.Signal(samples), nil
}
