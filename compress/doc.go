// Package compress provides the codecs used to load compressed dive dumps.
//
// Download tools commonly store raw dive records compressed. This package turns such
// dumps back into the raw record bytes the parser expects. All codecs use the stream
// (framed) format written by the matching command line tools, so a record compressed
// with `zstd`, `s2c` or `lz4` can be read directly:
//
//	codec, err := compress.GetCodec(compress.DetectCompression("dive-0042.bin.zst"))
//	if err != nil {
//	    return err
//	}
//	data, err := codec.Decompress(raw)
//
// Supported algorithms:
//   - None: data is passed through unchanged
//   - Zstd: klauspost/compress/zstd, or valyala/gozstd with the `gozstd` build tag and cgo
//   - S2: klauspost/compress/s2 stream format
//   - LZ4: pierrec/lz4 frame format
//
// Decompressed output is capped at MaxDecompressedSize to protect hosts from
// malicious input.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use.
package compress
