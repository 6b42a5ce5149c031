package compress

import (
	"fmt"

	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
)

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The input slice is not modified. Implementations may return the input
	// slice itself when no transformation is applied.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
type Decompressor interface {
	// Decompress returns the original data.
	//
	// It returns an error if data is corrupted or was produced by a
	// different algorithm.
	Decompress(data []byte) ([]byte, error)

	// DecompressLimit is Decompress with an upper bound on the output size.
	//
	// It returns errs.ErrDecompressLimit without allocating the output when
	// data declares more than limit bytes, and stops decoding as soon as the
	// output would exceed limit.
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

func decompressLimitErr(size, limit int) error {
	return fmt.Errorf("%w: %d bytes, limit %d", errs.ErrDecompressLimit, size, limit)
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns:
//   - Codec: Shared codec instance
//   - error: errs.ErrInvalidCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%x)", errs.ErrInvalidCompression, compressionType, uint8(compressionType))
}
