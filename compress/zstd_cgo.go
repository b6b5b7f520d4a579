//go:build gozstd && cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/goalog/errs"
)

// Compress compresses data with libzstd at the default level.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, gozstd.DefaultCompressionLevel), nil
}

// Decompress decodes Zstandard frames with libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if len(out) > MaxDecompressedSize {
		return nil, fmt.Errorf("%w: decompressed record exceeds %d bytes", errs.ErrTooLarge, MaxDecompressedSize)
	}

	return out, nil
}
