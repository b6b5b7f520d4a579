package parser

import (
	"github.com/arloliu/goalog/errs"
	"github.com/arloliu/goalog/format"
)

// Family identifies the device family a Decoder handles.
type Family string

// FamilyCressiGoa is the Cressi Goa family (Goa, Cartesio, Leonardo 2.0, Donatello, Michelangelo).
const FamilyCressiGoa Family = "cressi_goa"

// Decoder is the operation set a host framework dispatches to a device-specific decoder.
//
// Operations a device cannot perform return errs.ErrNotImplemented.
type Decoder interface {
	// Family returns the device family.
	Family() Family

	// SetClock provides a device/system clock pair used to correct dive timestamps.
	SetClock(devtime uint32, systime int64) error

	// SetAtmospheric sets the surface atmospheric pressure in bar.
	SetAtmospheric(pressure float64) error

	// SetDensity sets the water density in kg/m³.
	SetDensity(density float64) error

	// Datetime returns the dive start time.
	Datetime() (Datetime, error)

	// Field returns the value of a dive field. index selects the entry of repeatable
	// fields such as format.FieldGasMix and is ignored otherwise.
	Field(ft format.FieldType, index int) (any, error)

	// SamplesForeach walks the sample stream and passes every event to cb.
	SamplesForeach(cb SampleCallback) error
}

// SetClock is not implemented: Goa records carry an absolute start time.
func (p *Parser) SetClock(uint32, int64) error {
	return errs.ErrNotImplemented
}

// SetAtmospheric is not implemented: depths are stored already converted.
func (p *Parser) SetAtmospheric(float64) error {
	return errs.ErrNotImplemented
}

// SetDensity is not implemented: depths are stored already converted.
func (p *Parser) SetDensity(float64) error {
	return errs.ErrNotImplemented
}
