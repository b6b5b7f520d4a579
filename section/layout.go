package section

import (
	"fmt"

	"github.com/arloliu/goalog/errs"
	"github.com/arloliu/goalog/format"
)

// Layout describes where each dive field lives inside the mode-specific data region.
//
// Offsets are relative to the end of the logbook block. An offset equal to Undefined
// means the field is not recorded in that dive mode.
type Layout struct {
	HeaderSize  uint32 // size of the fixed region preceding the samples
	Datetime    uint32
	DiveTime    uint32
	GasMix      uint32
	Atmospheric uint32
	MaxDepth    uint32
	AvgDepth    uint32
	Temperature uint32
}

var layouts = [...]Layout{
	format.ModeScuba: {
		HeaderSize:  92,
		Datetime:    12,
		DiveTime:    20,
		GasMix:      26,
		Atmospheric: 30,
		MaxDepth:    73,
		AvgDepth:    75,
		Temperature: 77,
	},
	format.ModeNitrox: {
		HeaderSize:  92,
		Datetime:    12,
		DiveTime:    20,
		GasMix:      26,
		Atmospheric: 30,
		MaxDepth:    73,
		AvgDepth:    75,
		Temperature: 77,
	},
	format.ModeFreedive: {
		HeaderSize:  38,
		Datetime:    12,
		DiveTime:    20,
		GasMix:      Undefined,
		Atmospheric: Undefined,
		MaxDepth:    23,
		AvgDepth:    Undefined,
		Temperature: 25,
	},
	format.ModeGauge: {
		HeaderSize:  40,
		Datetime:    12,
		DiveTime:    20,
		GasMix:      Undefined,
		Atmospheric: 22,
		MaxDepth:    24,
		AvgDepth:    26,
		Temperature: 28,
	},
}

// NumLayouts is the number of known dive modes.
const NumLayouts = len(layouts)

// LayoutFor returns the layout of the given raw dive mode.
//
// The table itself is never handed out; callers receive a copy of the entry.
//
// Returns:
//   - Layout: layout for the mode
//   - error: ErrInvalidMode if mode is not a known dive mode
func LayoutFor(mode format.Mode) (Layout, error) {
	if int(mode) >= NumLayouts {
		return Layout{}, fmt.Errorf("%w (%d)", errs.ErrInvalidMode, mode)
	}

	return layouts[mode], nil
}

// Has reports whether offset refers to a recorded field.
func Has(offset uint32) bool {
	return offset != Undefined
}
