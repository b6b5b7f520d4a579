// Package errs defines the sentinel errors returned by goalog packages.
//
// Errors carry details by wrapping one of these sentinels with fmt.Errorf("%w: ...").
// Callers should compare with errors.Is rather than string matching:
//
//	p, err := parser.New(data)
//	if errors.Is(err, errs.ErrDataFormat) {
//	    // corrupted or truncated record
//	}
//
//	depth, err := p.AvgDepth()
//	if errors.Is(err, errs.ErrUnsupported) {
//	    // the field does not exist for this dive mode
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrDataFormat is the parent of every malformed-record error.
var ErrDataFormat = errors.New("invalid data format")

// Record decoding errors. All of them satisfy errors.Is(err, ErrDataFormat).
var (
	// ErrInvalidLength is returned when the buffer is too short for a declared or fixed-size section.
	ErrInvalidLength = fmt.Errorf("%w: invalid dive length", ErrDataFormat)
	// ErrInvalidHeader is returned when a length-prefix field is below its minimum.
	ErrInvalidHeader = fmt.Errorf("%w: invalid id or logbook length", ErrDataFormat)
	// ErrInvalidMode is returned when the dive-mode byte is outside the known set.
	ErrInvalidMode = fmt.Errorf("%w: invalid dive mode", ErrDataFormat)
)

var (
	// ErrUnsupported signals that the requested field does not exist for the dive mode.
	// It is not a decoding failure.
	ErrUnsupported = errors.New("unsupported field")
	// ErrNotImplemented is returned by dispatch operations the device does not implement.
	ErrNotImplemented = errors.New("operation not implemented")
	// ErrInvalidGasMixIndex is returned when a gas mix index is outside [0, count).
	ErrInvalidGasMixIndex = errors.New("invalid gas mix index")
	// ErrInvalidArgs is returned for invalid option or argument values.
	ErrInvalidArgs = errors.New("invalid arguments")
	// ErrUnknownCompression is returned for an unknown compression type.
	ErrUnknownCompression = errors.New("unknown compression type")
	// ErrTooLarge is returned when a dump or its decompressed output exceeds the load limit.
	// It is a host-side limit, not a malformed record.
	ErrTooLarge = errors.New("input too large")
)
