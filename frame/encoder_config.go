package frame

import (
	"fmt"

	"github.com/arloliu/linecode/compress"
	"github.com/arloliu/linecode/endian"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/internal/options"
	"github.com/arloliu/linecode/section"
)

// EncoderConfig holds the header template and codec of an Encoder.
type EncoderConfig struct {
	flag   section.FrameFlag
	engine endian.EndianEngine
	codec  compress.Codec
}

func newEncoderConfig() *EncoderConfig {
	flag := section.NewFrameFlag()

	return &EncoderConfig{
		flag:   flag,
		engine: flag.GetEndianEngine(),
	}
}

func (c *EncoderConfig) setSampleEncoding(enc format.EncodingType) error {
	switch enc {
	case format.TypeRaw, format.TypePacked:
		c.flag.SetSampleEncoding(enc)
		return nil
	default:
		return fmt.Errorf("invalid sample encoding: %v", enc)
	}
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.flag.SetCompression(comp)
		return nil
	default:
		return fmt.Errorf("invalid compression: %v", comp)
	}
}

func (c *EncoderConfig) setEngine(engine endian.EndianEngine) {
	c.flag.WithEngine(engine)
	c.engine = c.flag.GetEndianEngine()
}

// Flag returns the flag written into every frame header.
func (c *EncoderConfig) Flag() section.FrameFlag {
	return c.flag
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithLittleEndian writes multi-byte header fields and raw samples little-endian.
// This is the default and matches the headerless wire format.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEngine(endian.GetLittleEndianEngine())
	})
}

// WithBigEndian writes multi-byte header fields and raw samples big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEngine(endian.GetBigEndianEngine())
	})
}

// WithByteOrder selects the byte order from an endian engine.
func WithByteOrder(engine endian.EndianEngine) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if engine == nil {
			return fmt.Errorf("nil endian engine")
		}
		c.setEngine(engine)

		return nil
	})
}

// WithSampleEncoding selects how samples are laid out in the payload.
func WithSampleEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setSampleEncoding(enc)
	})
}

// WithCompression selects the payload compression.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}
