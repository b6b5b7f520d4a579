package parser

import "github.com/arloliu/goalog/format"

// SampleValue carries the value of one sample event. Only the field matching the
// event's format.SampleType is set.
type SampleValue struct {
	// Time is the elapsed dive time in milliseconds.
	Time int64
	// Depth is in meters.
	Depth float64
	// Temperature is in degrees Celsius.
	Temperature float64
	// GasMix is the index of the active gas mix.
	GasMix int
}

// SampleCallback receives sample events in emission order.
type SampleCallback func(typ format.SampleType, value SampleValue)
