package section

import (
	"encoding/binary"

	"github.com/arloliu/linecode/errs"
)

// FrameHeader is the fixed-size header at the start of a signal frame.
//
// Layout (multi-byte fields use the byte order flagged in Options, except
// Options itself which is always little-endian):
//
//	0-1   Options (endianness, magic number)
//	2     EncodingType
//	3     CompressionType
//	4-7   SampleCount
//	8-11  PayloadSize
//	12-19 Checksum
//	20-23 reserved, zero
type FrameHeader struct {
	// Flag is a packed field for options and magic number.
	Flag FrameFlag // byte offset 0-3
	// SampleCount is the number of samples in the signal.
	SampleCount uint32 // byte offset 4-7
	// PayloadSize is the number of payload bytes following the header, after compression.
	PayloadSize uint32 // byte offset 8-11
	// Checksum is the xxHash64 of the encoded payload before compression.
	Checksum uint64 // byte offset 12-19
}

// NewFrameHeader creates a header with default flags.
// Counts, size and checksum are filled in by the frame encoder.
func NewFrameHeader() *FrameHeader {
	return &FrameHeader{Flag: NewFrameFlag()}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidReserved or flag validation errors
func (h *FrameHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[optionsOffset:encodingOffset])
	h.Flag.EncodingType = data[encodingOffset]
	h.Flag.CompressionType = data[compressionOffset]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.SampleCount = engine.Uint32(data[sampleCountOffset:payloadSizeOffset])
	h.PayloadSize = engine.Uint32(data[payloadSizeOffset:checksumOffset])
	h.Checksum = engine.Uint64(data[checksumOffset:reservedOffset])

	if engine.Uint32(data[reservedOffset:HeaderSize]) != 0 {
		return errs.ErrInvalidReserved
	}

	return nil
}

// Bytes serializes the header into a new byte slice.
func (h *FrameHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to buf.
func (h *FrameHeader) AppendTo(buf []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	buf = binary.LittleEndian.AppendUint16(buf, h.Flag.Options)
	buf = append(buf, h.Flag.EncodingType, h.Flag.CompressionType)
	buf = engine.AppendUint32(buf, h.SampleCount)
	buf = engine.AppendUint32(buf, h.PayloadSize)
	buf = engine.AppendUint64(buf, h.Checksum)

	return engine.AppendUint32(buf, 0)
}

// ParseFrameHeader parses a FrameHeader from the start of data.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least HeaderSize bytes)
//
// Returns:
//   - FrameHeader: Parsed header
//   - error: errs.ErrInvalidHeaderSize or validation errors
func ParseFrameHeader(data []byte) (FrameHeader, error) {
	if len(data) < HeaderSize {
		return FrameHeader{}, errs.ErrInvalidHeaderSize
	}

	h := FrameHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return FrameHeader{}, err
	}

	return h, nil
}

// HasFrameMagic reports whether data starts with the frame magic number.
func HasFrameMagic(data []byte) bool {
	if len(data) < HeaderSize {
		return false
	}

	return binary.LittleEndian.Uint16(data[optionsOffset:encodingOffset])&MagicNumberMask == MagicFrameV1Opt
}
