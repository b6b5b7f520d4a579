package section

import (
	"fmt"

	"github.com/arloliu/goalog/errs"
	"github.com/arloliu/goalog/format"
)

// Context is the decoding context derived once from a raw dive record.
//
// A record starts with two single-byte block lengths, followed by the identifier block,
// the logbook block, the mode-specific fixed region described by Layout, and finally the
// sample words:
//
//	┌──────────────────────────────────────────────┐
//	│ id_len (1) │ logbook_len (1)                 │
//	├──────────────────────────────────────────────┤
//	│ Identifier block (id_len bytes, >= 9)        │
//	├──────────────────────────────────────────────┤
//	│ Logbook block (logbook_len bytes, >= 23)     │
//	│  - byte 2: dive mode                         │
//	├──────────────────────────────────────────────┤  <- HeaderSize
//	│ Fixed region (Layout.HeaderSize bytes)       │
//	├──────────────────────────────────────────────┤  <- SampleOffset()
//	│ Sample words (uint16 LE, until end)          │
//	└──────────────────────────────────────────────┘
//
// Context is immutable after ParseHeader returns.
type Context struct {
	// Layout is a copy of the layout table entry for Mode.
	Layout Layout
	// HeaderSize is the byte offset where the mode-specific region begins.
	HeaderSize uint32
	// Mode is the raw dive mode read from the logbook block.
	Mode format.Mode
	// Version is the layout table revision used to decode the record.
	Version uint8

	idLen      uint32
	logbookLen uint32
}

// ParseHeader validates a raw dive record and derives its decoding context.
//
// No partial context is returned on failure. The function has no side effects and
// returns the same result for the same input.
//
// Parameters:
//   - data: complete dive record
//
// Returns:
//   - Context: decoding context
//   - error: ErrInvalidLength, ErrInvalidHeader or ErrInvalidMode
func ParseHeader(data []byte) (Context, error) {
	size := uint32(len(data)) //nolint:gosec
	if size < PrefixSize {
		return Context{}, fmt.Errorf("%w (%d)", errs.ErrInvalidLength, size)
	}

	idLen := uint32(data[0])
	logbookLen := uint32(data[1])
	if idLen < MinIdentifierLen || logbookLen < MinLogbookLen {
		return Context{}, fmt.Errorf("%w (%d %d)", errs.ErrInvalidHeader, idLen, logbookLen)
	}

	headerSize := PrefixSize + idLen + logbookLen
	if size < headerSize {
		return Context{}, fmt.Errorf("%w (%d)", errs.ErrInvalidLength, size)
	}

	mode := format.Mode(data[PrefixSize+idLen+LogbookModeIndex])
	layout, err := LayoutFor(mode)
	if err != nil {
		return Context{}, err
	}

	if size < headerSize+layout.HeaderSize {
		return Context{}, fmt.Errorf("%w (%d)", errs.ErrInvalidLength, size)
	}

	return Context{
		Layout:     layout,
		HeaderSize: headerSize,
		Mode:       mode,
		Version:    LayoutVersion,
		idLen:      idLen,
		logbookLen: logbookLen,
	}, nil
}

// Identifier returns the identifier block of data.
func (c Context) Identifier(data []byte) []byte {
	return data[PrefixSize : PrefixSize+c.idLen]
}

// Logbook returns the logbook block of data.
func (c Context) Logbook(data []byte) []byte {
	start := PrefixSize + c.idLen
	return data[start : start+c.logbookLen]
}

// Region returns the mode-specific data, starting at the fixed region and running to
// the end of the record.
func (c Context) Region(data []byte) []byte {
	return data[c.HeaderSize:]
}

// SampleOffset returns the absolute offset of the first sample word.
func (c Context) SampleOffset() uint32 {
	return c.HeaderSize + c.Layout.HeaderSize
}

// SampleInterval returns the sampling interval of the dive in seconds.
func (c Context) SampleInterval() uint32 {
	if c.Mode == format.ModeFreedive {
		return FreediveInterval
	}

	return DefaultInterval
}
