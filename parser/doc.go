// Package parser decodes Cressi Goa dive records into dive fields and sample events.
//
// # Overview
//
// A Parser is created from a complete dive record. Construction validates the record
// header (see package section) and fails without a parser if the record is malformed.
// Afterwards fields can be queried in any order and the sample stream walked any
// number of times:
//
//	p, err := parser.New(data)
//	if err != nil {
//	    return err // errors.Is(err, errs.ErrDataFormat)
//	}
//
//	maxDepth, _ := p.MaxDepth()
//	if avg, err := p.AvgDepth(); errors.Is(err, errs.ErrUnsupported) {
//	    // freedive records have no average depth
//	}
//
//	for typ, v := range p.Samples() {
//	    // format.SampleTime, SampleTemperature, SampleDepth, SampleGasMix
//	}
//
// # Units
//
//	Field / event        | Unit
//	---------------------|-------------------------------
//	DiveTime             | seconds
//	MaxDepth, AvgDepth   | meters (stored as 1/10 m)
//	MinTemperature       | °C (stored as 1/10 °C)
//	AtmosphericPressure  | bar (stored as mbar)
//	SampleTime           | milliseconds since dive start
//	SampleDepth          | meters
//	SampleTemperature    | °C
//
// # Host Integration
//
// Parser implements Decoder, the operation set of a generic dive-log framework.
// Operations the device does not support return errs.ErrNotImplemented.
package parser
