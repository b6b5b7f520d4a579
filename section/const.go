package section

// Undefined marks a layout offset for a field the dive mode does not record.
const Undefined = 0xFFFFFFFF

// LayoutVersion identifies the revision of the layout table in this package.
const LayoutVersion = 1

// Record prefix and logbook block constraints.
const (
	PrefixSize       = 2  // two single-byte block lengths: identifier, logbook
	MinIdentifierLen = 9  // minimum identifier block length
	MinLogbookLen    = 23 // minimum logbook block length
	LogbookModeIndex = 2  // byte offset of the dive mode inside the logbook block
)

// Gas mix table geometry.
const (
	NumGasMixes    = 2 // maximum number of gas mix slots
	GasMixSlotSize = 2 // bytes per gas mix slot
	GasMixO2Index  = 1 // byte inside a slot holding the oxygen percentage
)

// Sample words are 16-bit little-endian: bits 0-1 type, bits 2-15 payload.
const (
	SampleWordSize  = 2
	SampleTypeMask  = 0x0003
	SampleValueMask = 0xFFFC
	SampleValueBits = 2

	// Depth payload: bits 0-10 depth in 1/10 m, bit 11 gas mix index.
	DepthMask      = 0x07FF
	GasMixMask     = 0x0800
	GasMixBitShift = 11
)

// Sample word types.
const (
	SampleDepth       = 0
	SampleDepthAlt    = 1
	SampleTime        = 2
	SampleTemperature = 3
)

// Sampling intervals in seconds.
const (
	FreediveInterval = 2
	DefaultInterval  = 5
)
