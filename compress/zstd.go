package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/linecode/errs"
)

// ZstdCompressor provides Zstandard compression.
//
// It gives the best ratio of the built-in codecs and suits bandwidth-limited
// transfers of long signals.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// zstdContentSize returns the content size declared by the first frame
// header of data. ok is false when the frame does not declare one.
func zstdContentSize(data []byte, limit int) (size int, ok bool, err error) {
	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return 0, false, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if !header.HasFCS {
		return 0, false, nil
	}
	if header.FrameContentSize > uint64(limit) {
		return 0, false, fmt.Errorf("%w: frame declares %d bytes, limit %d",
			errs.ErrDecompressLimit, header.FrameContentSize, limit)
	}

	return int(header.FrameContentSize), true, nil
}

// readLimited drains r into a buffer, failing once it yields more than limit bytes.
func readLimited(r io.Reader, sizeHint, limit int) ([]byte, error) {
	out := bytes.NewBuffer(make([]byte, 0, sizeHint))
	if _, err := io.Copy(out, io.LimitReader(r, int64(limit)+1)); err != nil {
		return nil, zstdDecodeErr(err, limit)
	}
	if out.Len() > limit {
		return nil, fmt.Errorf("%w: limit %d", errs.ErrDecompressLimit, limit)
	}

	return out.Bytes(), nil
}

// zstdDecodeErr maps the decoder's size and window limit errors to
// errs.ErrDecompressLimit.
func zstdDecodeErr(err error, limit int) error {
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return fmt.Errorf("%w: limit %d: %w", errs.ErrDecompressLimit, limit, err)
	}

	return fmt.Errorf("zstd decompression failed: %w", err)
}
