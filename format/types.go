package format

import (
	"fmt"
	"strings"
)

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeRaw    EncodingType = 0x1 // TypeRaw represents 4-byte IEEE-754 float32 samples.
	TypePacked EncodingType = 0x2 // TypePacked represents 2-bit packed ternary samples.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypePacked:
		return "Packed"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseEncodingType parses a case-insensitive encoding name such as "raw" or "packed".
func ParseEncodingType(s string) (EncodingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return TypeRaw, nil
	case "packed":
		return TypePacked, nil
	default:
		return 0, fmt.Errorf("unknown sample encoding: %q", s)
	}
}

// ParseCompressionType parses a case-insensitive compression name such as "none" or "zstd".
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression: %q", s)
	}
}
