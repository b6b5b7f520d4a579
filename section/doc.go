// Package section defines the binary layout of Cressi Goa dive records.
//
// This package holds the per-mode layout table and the header decoder that turns a raw
// record into a decoding Context. Higher-level field and sample decoding lives in the
// parser package; most users should start there.
//
// # Record Structure
//
// A record is a sequence of variable-length blocks followed by packed samples:
//
//	Bytes          | Field            | Description
//	---------------|------------------|------------------------------------------
//	0              | id_len           | identifier block length (>= 9)
//	1              | logbook_len      | logbook block length (>= 23)
//	2..            | identifier       | device identifier block
//	..             | logbook          | logbook block, dive mode at byte 2
//	HeaderSize..   | fixed region     | mode-specific fields, see Layout
//	SampleOffset.. | samples          | 16-bit little-endian sample words
//
// # Layouts
//
// Field offsets inside the fixed region depend on the dive mode:
//
//	Mode     | Size | Datetime | DiveTime | GasMix | Atm | MaxDepth | AvgDepth | Temp
//	---------|------|----------|----------|--------|-----|----------|----------|-----
//	Scuba    |  92  |    12    |    20    |   26   |  30 |    73    |    75    |  77
//	Nitrox   |  92  |    12    |    20    |   26   |  30 |    73    |    75    |  77
//	Freedive |  38  |    12    |    20    |   -    |  -  |    23    |    -     |  25
//	Gauge    |  40  |    12    |    20    |   -    |  22 |    24    |    26    |  28
//
// A dash is the Undefined sentinel: the field does not exist in that mode.
//
// # Sample Words
//
// Each sample word packs a 2-bit type and a 14-bit payload:
//
//	Bits   | Field
//	-------|-------------------------------------------
//	0-1    | type: 0=depth, 1=depth (alt), 2=time, 3=temperature
//	2-15   | payload
//
// For depth words the payload holds the depth in 1/10 m (bits 0-10) and the gas mix
// index (bit 11).
//
// # Thread Safety
//
// The layout table is initialized once and never modified. Context values are immutable
// and safe for concurrent use.
package section
