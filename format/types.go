package format

type (
	Mode            uint8
	DiveMode        uint8
	FieldType       uint8
	SampleType      uint8
	Usage           uint8
	CompressionType uint8
)

// Raw dive modes as stored in the logbook block. The value indexes the layout table.
const (
	ModeScuba    Mode = 0x0 // ModeScuba represents open-circuit air diving.
	ModeNitrox   Mode = 0x1 // ModeNitrox represents open-circuit nitrox diving.
	ModeFreedive Mode = 0x2 // ModeFreedive represents breath-hold diving.
	ModeGauge    Mode = 0x3 // ModeGauge represents bottom-timer mode without decompression.
)

// Dive modes reported to the host.
const (
	DiveModeOpenCircuit DiveMode = 0x1 // DiveModeOpenCircuit covers scuba and nitrox.
	DiveModeGauge       DiveMode = 0x2 // DiveModeGauge represents gauge mode.
	DiveModeFreedive    DiveMode = 0x3 // DiveModeFreedive represents freediving.
)

// Queryable dive fields.
const (
	FieldDatetime            FieldType = 0x1
	FieldDiveTime            FieldType = 0x2
	FieldMaxDepth            FieldType = 0x3
	FieldAvgDepth            FieldType = 0x4
	FieldMinTemperature      FieldType = 0x5
	FieldAtmosphericPressure FieldType = 0x6
	FieldGasMixCount         FieldType = 0x7
	FieldGasMix              FieldType = 0x8
	FieldDiveMode            FieldType = 0x9
)

// Sample event kinds emitted by the sample walk.
const (
	SampleTime        SampleType = 0x1 // SampleTime carries elapsed milliseconds.
	SampleDepth       SampleType = 0x2 // SampleDepth carries depth in meters.
	SampleTemperature SampleType = 0x3 // SampleTemperature carries temperature in degrees Celsius.
	SampleGasMix      SampleType = 0x4 // SampleGasMix carries the active gas mix index.
)

// UsageNone is the only gas usage this format can express.
const UsageNone Usage = 0x0

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m Mode) String() string {
	switch m {
	case ModeScuba:
		return "Scuba"
	case ModeNitrox:
		return "Nitrox"
	case ModeFreedive:
		return "Freedive"
	case ModeGauge:
		return "Gauge"
	default:
		return "Unknown"
	}
}

// IsOpenCircuit reports whether gas mixes are tracked for the mode.
func (m Mode) IsOpenCircuit() bool {
	return m == ModeScuba || m == ModeNitrox
}

func (d DiveMode) String() string {
	switch d {
	case DiveModeOpenCircuit:
		return "OpenCircuit"
	case DiveModeGauge:
		return "Gauge"
	case DiveModeFreedive:
		return "Freedive"
	default:
		return "Unknown"
	}
}

func (f FieldType) String() string {
	switch f {
	case FieldDatetime:
		return "Datetime"
	case FieldDiveTime:
		return "DiveTime"
	case FieldMaxDepth:
		return "MaxDepth"
	case FieldAvgDepth:
		return "AvgDepth"
	case FieldMinTemperature:
		return "MinTemperature"
	case FieldAtmosphericPressure:
		return "AtmosphericPressure"
	case FieldGasMixCount:
		return "GasMixCount"
	case FieldGasMix:
		return "GasMix"
	case FieldDiveMode:
		return "DiveMode"
	default:
		return "Unknown"
	}
}

func (s SampleType) String() string {
	switch s {
	case SampleTime:
		return "Time"
	case SampleDepth:
		return "Depth"
	case SampleTemperature:
		return "Temperature"
	case SampleGasMix:
		return "GasMix"
	default:
		return "Unknown"
	}
}

func (u Usage) String() string {
	if u == UsageNone {
		return "None"
	}

	return "Unknown"
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
