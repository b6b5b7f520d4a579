// Package goalog decodes dive records downloaded from Cressi Goa family dive computers
// (Goa, Cartesio, Leonardo 2.0, Donatello, Michelangelo).
//
// A dive record is a small binary buffer holding a device identifier, a logbook block,
// a mode-specific block of summary fields and a stream of packed samples. The parser
// exposes the summary fields through typed accessors and replays the samples as a
// sequence of time, depth, temperature and gas mix events.
//
// # Basic Usage
//
// Decoding a record:
//
//	p, err := goalog.NewParser(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	maxDepth, _ := p.MaxDepth()
//	fmt.Printf("max depth: %.1f m\n", maxDepth)
//
//	for typ, v := range p.Samples() {
//	    if typ == format.SampleDepth {
//	        fmt.Printf("%.1f m\n", v.Depth)
//	    }
//	}
//
// Loading a compressed dump:
//
//	data, err := goalog.LoadFile("dive-0042.bin.zst")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the parser, section and
// compress packages. For fine-grained control, use those packages directly.
package goalog

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/goalog/compress"
	"github.com/arloliu/goalog/errs"
	"github.com/arloliu/goalog/format"
	"github.com/arloliu/goalog/parser"
)

// NewParser creates a parser for a single dive record.
//
// Parameters:
//   - data: the raw record bytes, borrowed read-only
//   - opts: optional configuration (see parser.Option)
//
// Returns:
//   - *parser.Parser: the created parser
//   - error: a header decoding error or ErrInvalidArgs for invalid options
//
// Example:
//
//	p, err := goalog.NewParser(data,
//	    parser.WithLogger(logrus.StandardLogger()),
//	    parser.WithGasMixEvents(false),
//	)
func NewParser(data []byte, opts ...parser.Option) (*parser.Parser, error) {
	return parser.New(data, opts...)
}

// Fingerprint returns the identity of the dive stored in data.
//
// Two downloads of the same dive produce the same fingerprint, so hosts can use it
// to skip dives they already imported.
func Fingerprint(data []byte) (uint64, error) {
	p, err := parser.New(data)
	if err != nil {
		return 0, err
	}

	return p.Fingerprint(), nil
}

// LoadRecord reads a dive record from r and decompresses it with the codec for ct.
//
// The input is read up to compress.MaxDecompressedSize bytes. The returned buffer is
// owned by the caller.
func LoadRecord(r io.Reader, ct format.CompressionType) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", errs.ErrInvalidArgs)
	}

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(io.LimitReader(r, compress.MaxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read dive record: %w", err)
	}

	if len(raw) > compress.MaxDecompressedSize {
		return nil, fmt.Errorf("%w: dump exceeds %d bytes", errs.ErrTooLarge, compress.MaxDecompressedSize)
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress dive record: %w", err)
	}

	return data, nil
}

// LoadFile reads a dive record from path. The compression is detected from the file
// extension, see compress.DetectCompression.
func LoadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadRecord(f, compress.DetectCompression(path))
}
