package compress

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arloliu/goalog/errs"
	"github.com/arloliu/goalog/format"
)

// MaxDecompressedSize is the largest record a codec will produce.
const MaxDecompressedSize = 16 * 1024 * 1024

// Compressor compresses a raw dive record.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a raw dive record.
type Decompressor interface {
	// Decompress returns the original data. It fails on corrupted input or when the
	// output would exceed MaxDecompressedSize.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
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

// GetCodec returns the built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
}

// ParseCompressionType parses a compression name such as "zstd" or "lz4".
// The empty string selects format.CompressionNone.
func ParseCompressionType(name string) (format.CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return format.CompressionNone, nil
	case "zstd", "zst":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownCompression, name)
	}
}

// DetectCompression infers the compression of a dump file from its extension.
// Unknown extensions are treated as uncompressed.
func DetectCompression(filename string) format.CompressionType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zst", ".zstd":
		return format.CompressionZstd
	case ".s2", ".sz":
		return format.CompressionS2
	case ".lz4":
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

// readAllLimited reads r up to MaxDecompressedSize bytes.
func readAllLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDecompressedSize+1))
	if err != nil {
		return nil, err
	}

	if len(data) > MaxDecompressedSize {
		return nil, fmt.Errorf("%w: decompressed record exceeds %d bytes", errs.ErrTooLarge, MaxDecompressedSize)
	}

	return data, nil
}
