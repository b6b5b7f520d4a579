package parser

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/goalog/errs"
	"github.com/arloliu/goalog/format"
	"github.com/arloliu/goalog/section"
)

// GasMix is a breathing gas composition as fractions in [0, 1].
type GasMix struct {
	Oxygen   float64
	Nitrogen float64
	Helium   float64
	Usage    format.Usage
}

// Datetime returns the dive start time. Seconds are always zero and the timezone
// is unknown.
func (p *Parser) Datetime() (Datetime, error) {
	b, err := p.fieldBytes(p.ctx.Layout.Datetime, 6)
	if err != nil {
		return Datetime{}, err
	}

	return Datetime{
		Year:     int(binary.LittleEndian.Uint16(b)),
		Month:    int(b[2]),
		Day:      int(b[3]),
		Hour:     int(b[4]),
		Minute:   int(b[5]),
		Second:   0,
		Timezone: TimezoneNone,
	}, nil
}

// DiveTime returns the dive duration in seconds.
func (p *Parser) DiveTime() (uint32, error) {
	v, err := p.uint16At(p.ctx.Layout.DiveTime)
	if err != nil {
		return 0, err
	}

	return uint32(v), nil
}

// MaxDepth returns the maximum depth in meters.
func (p *Parser) MaxDepth() (float64, error) {
	return p.scaled(p.ctx.Layout.MaxDepth, 10.0)
}

// AvgDepth returns the average depth in meters.
func (p *Parser) AvgDepth() (float64, error) {
	return p.scaled(p.ctx.Layout.AvgDepth, 10.0)
}

// MinTemperature returns the minimum water temperature in degrees Celsius.
func (p *Parser) MinTemperature() (float64, error) {
	return p.scaled(p.ctx.Layout.Temperature, 10.0)
}

// AtmosphericPressure returns the surface pressure in bar.
func (p *Parser) AtmosphericPressure() (float64, error) {
	return p.scaled(p.ctx.Layout.Atmospheric, 1000.0)
}

// GasMixCount returns the number of gas mixes used in the dive.
//
// Slots are read in order and counting stops at the first slot without oxygen.
// Modes without a gas table report 0.
func (p *Parser) GasMixCount() int {
	offset := p.ctx.Layout.GasMix
	if !section.Has(offset) {
		return 0
	}

	region := p.ctx.Region(p.data)
	count := 0
	for i := range section.NumGasMixes {
		if region[offset+uint32(i)*section.GasMixSlotSize+section.GasMixO2Index] == 0 { //nolint:gosec
			break
		}
		count++
	}

	return count
}

// GasMix returns the gas mix at index.
//
// Returns:
//   - GasMix: oxygen from the slot, no helium, nitrogen as the remainder
//   - error: ErrUnsupported if the mode has no gas table, ErrInvalidGasMixIndex if index
//     is outside [0, GasMixCount())
func (p *Parser) GasMix(index int) (GasMix, error) {
	offset := p.ctx.Layout.GasMix
	if !section.Has(offset) {
		return GasMix{}, fmt.Errorf("%w: %s in %s mode", errs.ErrUnsupported, format.FieldGasMix, p.ctx.Mode)
	}

	if count := p.GasMixCount(); index < 0 || index >= count {
		return GasMix{}, fmt.Errorf("%w: %d (count %d)", errs.ErrInvalidGasMixIndex, index, count)
	}

	region := p.ctx.Region(p.data)
	o2 := region[offset+uint32(index)*section.GasMixSlotSize+section.GasMixO2Index] //nolint:gosec

	mix := GasMix{
		Oxygen: float64(o2) / 100.0,
		Helium: 0.0,
		Usage:  format.UsageNone,
	}
	mix.Nitrogen = 1.0 - mix.Oxygen - mix.Helium

	return mix, nil
}

// DiveMode returns the dive mode reported to the host.
func (p *Parser) DiveMode() (format.DiveMode, error) {
	switch p.ctx.Mode {
	case format.ModeScuba, format.ModeNitrox:
		return format.DiveModeOpenCircuit, nil
	case format.ModeGauge:
		return format.DiveModeGauge, nil
	case format.ModeFreedive:
		return format.DiveModeFreedive, nil
	default:
		return 0, fmt.Errorf("%w (%d)", errs.ErrInvalidMode, p.ctx.Mode)
	}
}

// Field returns the value of ft. index is only used by format.FieldGasMix.
//
// Value types by field:
//   - FieldDatetime: Datetime
//   - FieldDiveTime: uint32 (seconds)
//   - FieldMaxDepth, FieldAvgDepth: float64 (meters)
//   - FieldMinTemperature: float64 (°C)
//   - FieldAtmosphericPressure: float64 (bar)
//   - FieldGasMixCount: int
//   - FieldGasMix: GasMix
//   - FieldDiveMode: format.DiveMode
//
// Unknown field types and fields absent from the dive mode return ErrUnsupported.
func (p *Parser) Field(ft format.FieldType, index int) (any, error) {
	switch ft {
	case format.FieldDatetime:
		return unwrap(p.Datetime())
	case format.FieldDiveTime:
		return unwrap(p.DiveTime())
	case format.FieldMaxDepth:
		return unwrap(p.MaxDepth())
	case format.FieldAvgDepth:
		return unwrap(p.AvgDepth())
	case format.FieldMinTemperature:
		return unwrap(p.MinTemperature())
	case format.FieldAtmosphericPressure:
		return unwrap(p.AtmosphericPressure())
	case format.FieldGasMixCount:
		return p.GasMixCount(), nil
	case format.FieldGasMix:
		return unwrap(p.GasMix(index))
	case format.FieldDiveMode:
		return unwrap(p.DiveMode())
	default:
		return nil, fmt.Errorf("%w: field type %d", errs.ErrUnsupported, ft)
	}
}

// unwrap erases the value type and drops the value on error.
func unwrap[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (p *Parser) fieldBytes(offset uint32, n uint32) ([]byte, error) {
	if !section.Has(offset) {
		return nil, fmt.Errorf("%w in %s mode", errs.ErrUnsupported, p.ctx.Mode)
	}

	// ParseHeader guarantees the fixed region is present.
	region := p.ctx.Region(p.data)

	return region[offset : offset+n], nil
}

func (p *Parser) uint16At(offset uint32) (uint16, error) {
	b, err := p.fieldBytes(offset, 2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

func (p *Parser) scaled(offset uint32, divisor float64) (float64, error) {
	v, err := p.uint16At(offset)
	if err != nil {
		return 0, err
	}

	return float64(v) / divisor, nil
}
