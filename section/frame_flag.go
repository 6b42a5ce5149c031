package section

import (
	"fmt"

	"github.com/arloliu/linecode/endian"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
)

// FrameFlag represents the packed flag fields at the start of a frame header.
type FrameFlag struct {
	// Options is a packed field.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved and must be 0.
	// Bits 4-15 hold the magic number 0xB41 (MagicFrameV1Opt).
	Options uint16

	// EncodingType is the sample encoding of the payload.
	EncodingType uint8
	// CompressionType is the compression applied to the encoded payload.
	CompressionType uint8
}

// NewFrameFlag creates a flag for a little-endian, raw, uncompressed frame.
func NewFrameFlag() FrameFlag {
	return FrameFlag{
		Options:         MagicFrameV1Opt,
		EncodingType:    uint8(format.TypeRaw),
		CompressionType: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the payload is little-endian.
func (f FrameFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the payload is big-endian.
func (f FrameFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

func (f *FrameFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

func (f *FrameFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// WithEngine sets the byte order matching engine.
func (f *FrameFlag) WithEngine(engine endian.EndianEngine) {
	if engine == endian.GetBigEndianEngine() {
		f.WithBigEndian()
	} else {
		f.WithLittleEndian()
	}
}

// GetEndianEngine returns the engine for the flagged byte order.
func (f FrameFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetMagicNumber returns the magic number from the Options field.
func (f FrameFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber reports whether the magic number identifies a v1 frame.
func (f FrameFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicFrameV1Opt
}

func (f FrameFlag) SampleEncoding() format.EncodingType {
	return format.EncodingType(f.EncodingType)
}

func (f *FrameFlag) SetSampleEncoding(enc format.EncodingType) {
	f.EncodingType = uint8(enc)
}

func (f FrameFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

func (f *FrameFlag) SetCompression(comp format.CompressionType) {
	f.CompressionType = uint8(comp)
}

// Validate checks the magic number, reserved bits, encoding and compression.
func (f FrameFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidReserved
	}

	switch f.SampleEncoding() {
	case format.TypeRaw, format.TypePacked:
	default:
		return fmt.Errorf("%w: 0x%x", errs.ErrInvalidEncoding, f.EncodingType)
	}

	switch f.Compression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return fmt.Errorf("%w: 0x%x", errs.ErrInvalidCompression, f.CompressionType)
	}

	return nil
}
