package compress

// ZstdCompressor reads and writes Zstandard frames.
//
// The pure Go implementation is used by default. Building with the `gozstd` tag and
// cgo enabled switches to the libzstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
