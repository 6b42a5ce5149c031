package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; they keep a hash table between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

const (
	lz4ModeStored     = 0x0 // block could not be compressed, payload follows verbatim
	lz4ModeCompressed = 0x1
	lz4PrefixSize     = 5 // mode byte + uint32 original length
	lz4MaxSize        = 1 << 30
)

var errLZ4Corrupted = errors.New("lz4 block is corrupted")

// LZ4Compressor compresses with the LZ4 block format.
//
// The LZ4 block format does not record the original size, so each block is
// prefixed with a mode byte and the little-endian uint32 original length.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using a pooled lz4.Compressor.
//
// Returns:
//   - []byte: Prefixed block (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) > lz4MaxSize {
		return nil, fmt.Errorf("lz4: input of %d bytes exceeds %d", len(data), lz4MaxSize)
	}

	dst := make([]byte, lz4PrefixSize+lz4.CompressBlockBound(len(data)))
	binary.LittleEndian.PutUint32(dst[1:lz4PrefixSize], uint32(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[lz4PrefixSize:])
	if err != nil {
		return nil, err
	}

	if n == 0 || n >= len(data) {
		dst[0] = lz4ModeStored
		return append(dst[:lz4PrefixSize], data...), nil
	}

	dst[0] = lz4ModeCompressed

	return dst[:lz4PrefixSize+n], nil
}

// Decompress decompresses a block produced by Compress.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, lz4MaxSize)
}

// DecompressLimit decompresses a block whose prefixed original length is at
// most limit. The length is checked before the output buffer is allocated.
func (c LZ4Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < lz4PrefixSize {
		return nil, errLZ4Corrupted
	}

	size := int(binary.LittleEndian.Uint32(data[1:lz4PrefixSize]))
	if size > lz4MaxSize {
		return nil, errLZ4Corrupted
	}
	if size > limit {
		return nil, decompressLimitErr(size, limit)
	}
	body := data[lz4PrefixSize:]

	switch data[0] {
	case lz4ModeStored:
		if len(body) != size {
			return nil, errLZ4Corrupted
		}

		return append([]byte(nil), body...), nil
	case lz4ModeCompressed:
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
		if n != size {
			return nil, errLZ4Corrupted
		}

		return out, nil
	default:
		return nil, errLZ4Corrupted
	}
}
