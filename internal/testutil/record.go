// Package testutil builds synthetic Goa dive records for tests.
package testutil

import (
	"encoding/binary"

	"github.com/arloliu/goalog/format"
)

// fixedSizes mirrors the fixed region size of each dive mode.
var fixedSizes = map[format.Mode]int{
	format.ModeScuba:    92,
	format.ModeNitrox:   92,
	format.ModeFreedive: 38,
	format.ModeGauge:    40,
}

// Record is a dive record under construction.
type Record struct {
	ID      []byte
	Logbook []byte
	Fixed   []byte
	Samples []byte
}

// NewRecord returns a record with minimum-size identifier and logbook blocks and a zeroed
// fixed region sized for mode. Unknown modes get an empty fixed region.
func NewRecord(mode format.Mode) *Record {
	r := &Record{
		ID:      make([]byte, 9),
		Logbook: make([]byte, 23),
		Fixed:   make([]byte, fixedSizes[mode]),
	}
	copy(r.ID, "GOA000001")
	r.Logbook[2] = byte(mode)

	return r
}

// WithBlockLengths resizes the identifier and logbook blocks, keeping the mode byte.
func (r *Record) WithBlockLengths(idLen, logbookLen int) *Record {
	mode := r.Logbook[2]
	r.ID = make([]byte, idLen)
	r.Logbook = make([]byte, logbookLen)
	if logbookLen > 2 {
		r.Logbook[2] = mode
	}

	return r
}

// PutByte stores v at offset of the fixed region.
func (r *Record) PutByte(offset int, v byte) *Record {
	r.Fixed[offset] = v
	return r
}

// PutUint16 stores v little-endian at offset of the fixed region.
func (r *Record) PutUint16(offset int, v uint16) *Record {
	binary.LittleEndian.PutUint16(r.Fixed[offset:], v)
	return r
}

// PutDatetime stores a datetime at offset of the fixed region.
func (r *Record) PutDatetime(offset int, year uint16, month, day, hour, minute byte) *Record {
	r.PutUint16(offset, year)
	copy(r.Fixed[offset+2:], []byte{month, day, hour, minute})

	return r
}

// Depth appends a depth word. depth is in 1/10 m, gasmix is 0 or 1.
func (r *Record) Depth(depth, gasmix uint16) *Record {
	return r.word(0, depth&0x07FF|(gasmix&1)<<11)
}

// DepthAlt appends a depth word using the alternate type code.
func (r *Record) DepthAlt(depth, gasmix uint16) *Record {
	return r.word(1, depth&0x07FF|(gasmix&1)<<11)
}

// Time appends a surface time word. seconds is the surface duration.
func (r *Record) Time(seconds uint16) *Record {
	return r.word(2, seconds)
}

// Temperature appends a temperature word in 1/10 °C.
func (r *Record) Temperature(temp uint16) *Record {
	return r.word(3, temp)
}

// Raw appends raw bytes to the sample region.
func (r *Record) Raw(b ...byte) *Record {
	r.Samples = append(r.Samples, b...)
	return r
}

// Word encodes a sample word.
func Word(typ, payload uint16) uint16 {
	return payload<<2 | typ&0x3
}

func (r *Record) word(typ, payload uint16) *Record {
	r.Samples = binary.LittleEndian.AppendUint16(r.Samples, Word(typ, payload))
	return r
}

// Bytes assembles the record.
func (r *Record) Bytes() []byte {
	out := make([]byte, 0, 2+len(r.ID)+len(r.Logbook)+len(r.Fixed)+len(r.Samples))
	out = append(out, byte(len(r.ID)), byte(len(r.Logbook)))
	out = append(out, r.ID...)
	out = append(out, r.Logbook...)
	out = append(out, r.Fixed...)
	out = append(out, r.Samples...)

	return out
}
