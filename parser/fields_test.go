package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/goalog/errs"
	"github.com/arloliu/goalog/format"
	"github.com/arloliu/goalog/internal/testutil"
)

// scubaRecord returns a scuba record with every header field populated.
func scubaRecord(mode format.Mode) *testutil.Record {
	return testutil.NewRecord(mode).
		PutDatetime(12, 2023, 7, 14, 9, 30).
		PutUint16(20, 3125).
		PutByte(27, 32).
		PutByte(29, 21).
		PutUint16(30, 1013).
		PutUint16(73, 305).
		PutUint16(75, 152).
		PutUint16(77, 184)
}

func TestParser_ScubaFields(t *testing.T) {
	for _, mode := range []format.Mode{format.ModeScuba, format.ModeNitrox} {
		t.Run(mode.String(), func(t *testing.T) {
			p, err := New(scubaRecord(mode).Bytes())
			require.NoError(t, err)

			dt, err := p.Datetime()
			require.NoError(t, err)
			require.Equal(t, Datetime{Year: 2023, Month: 7, Day: 14, Hour: 9, Minute: 30, Timezone: TimezoneNone}, dt)
			require.False(t, dt.HasTimezone())

			divetime, err := p.DiveTime()
			require.NoError(t, err)
			require.Equal(t, uint32(3125), divetime)

			maxDepth, err := p.MaxDepth()
			require.NoError(t, err)
			require.InDelta(t, 30.5, maxDepth, 1e-9)

			avgDepth, err := p.AvgDepth()
			require.NoError(t, err)
			require.InDelta(t, 15.2, avgDepth, 1e-9)

			temp, err := p.MinTemperature()
			require.NoError(t, err)
			require.InDelta(t, 18.4, temp, 1e-9)

			atm, err := p.AtmosphericPressure()
			require.NoError(t, err)
			require.InDelta(t, 1.013, atm, 1e-9)

			diveMode, err := p.DiveMode()
			require.NoError(t, err)
			require.Equal(t, format.DiveModeOpenCircuit, diveMode)
		})
	}
}

func TestParser_GasMixes(t *testing.T) {
	t.Run("TwoMixes", func(t *testing.T) {
		p, err := New(scubaRecord(format.ModeNitrox).Bytes())
		require.NoError(t, err)
		require.Equal(t, 2, p.GasMixCount())

		mix, err := p.GasMix(0)
		require.NoError(t, err)
		require.InDelta(t, 0.32, mix.Oxygen, 1e-9)
		require.InDelta(t, 0.68, mix.Nitrogen, 1e-9)
		require.Zero(t, mix.Helium)
		require.Equal(t, format.UsageNone, mix.Usage)

		mix, err = p.GasMix(1)
		require.NoError(t, err)
		require.InDelta(t, 0.21, mix.Oxygen, 1e-9)
		require.InDelta(t, 0.79, mix.Nitrogen, 1e-9)
	})

	tests := []struct {
		name  string
		slot0 byte
		slot1 byte
		count int
	}{
		{"NoMixes", 0, 0, 0},
		{"FirstOnly", 21, 0, 1},
		{"StopsAtFirstEmptySlot", 0, 32, 0},
		{"Pure oxygen", 100, 50, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecord(format.ModeScuba).PutByte(27, tt.slot0).PutByte(29, tt.slot1)
			p, err := New(rec.Bytes())
			require.NoError(t, err)
			require.Equal(t, tt.count, p.GasMixCount())

			for i := range tt.count {
				_, err := p.GasMix(i)
				require.NoError(t, err)
			}
			_, err = p.GasMix(tt.count)
			require.ErrorIs(t, err, errs.ErrInvalidGasMixIndex)
			_, err = p.GasMix(-1)
			require.ErrorIs(t, err, errs.ErrInvalidGasMixIndex)
		})
	}

	t.Run("FirstSlotByteIgnored", func(t *testing.T) {
		rec := testutil.NewRecord(format.ModeScuba).PutByte(26, 0xFF).PutByte(28, 0xFF)
		p, err := New(rec.Bytes())
		require.NoError(t, err)
		require.Equal(t, 0, p.GasMixCount())
	})
}

func TestParser_FreediveFields(t *testing.T) {
	rec := testutil.NewRecord(format.ModeFreedive).
		PutDatetime(12, 2024, 2, 29, 23, 59).
		PutUint16(20, 95).
		PutUint16(23, 212).
		PutUint16(25, 261)
	p, err := New(rec.Bytes())
	require.NoError(t, err)

	dt, err := p.Datetime()
	require.NoError(t, err)
	require.Equal(t, 2024, dt.Year)
	require.Equal(t, 29, dt.Day)
	require.Equal(t, 59, dt.Minute)
	require.Zero(t, dt.Second)

	divetime, err := p.DiveTime()
	require.NoError(t, err)
	require.Equal(t, uint32(95), divetime)

	maxDepth, err := p.MaxDepth()
	require.NoError(t, err)
	require.InDelta(t, 21.2, maxDepth, 1e-9)

	temp, err := p.MinTemperature()
	require.NoError(t, err)
	require.InDelta(t, 26.1, temp, 1e-9)

	mode, err := p.DiveMode()
	require.NoError(t, err)
	require.Equal(t, format.DiveModeFreedive, mode)

	require.Equal(t, 0, p.GasMixCount())
}

func TestParser_UnsupportedFields(t *testing.T) {
	tests := []struct {
		mode   format.Mode
		fields []format.FieldType
	}{
		{format.ModeFreedive, []format.FieldType{format.FieldAvgDepth, format.FieldAtmosphericPressure, format.FieldGasMix}},
		{format.ModeGauge, []format.FieldType{format.FieldGasMix}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			// Buffer contents must not matter.
			rec := testutil.NewRecord(tt.mode)
			for i := range rec.Fixed {
				rec.Fixed[i] = 0xFF
			}
			p, err := New(rec.Bytes())
			require.NoError(t, err)

			for _, ft := range tt.fields {
				for _, index := range []int{0, 1} {
					v, err := p.Field(ft, index)
					require.Nil(t, v, ft.String())
					require.ErrorIs(t, err, errs.ErrUnsupported, ft.String())
					require.NotErrorIs(t, err, errs.ErrDataFormat)
				}
			}
		})
	}
}

func TestParser_GaugeFields(t *testing.T) {
	rec := testutil.NewRecord(format.ModeGauge).
		PutUint16(22, 1013).
		PutUint16(24, 305).
		PutUint16(26, 120).
		PutUint16(28, 95)
	p, err := New(rec.Bytes())
	require.NoError(t, err)

	atm, err := p.AtmosphericPressure()
	require.NoError(t, err)
	require.InDelta(t, 1.013, atm, 1e-9)

	avg, err := p.AvgDepth()
	require.NoError(t, err)
	require.InDelta(t, 12.0, avg, 1e-9)

	temp, err := p.MinTemperature()
	require.NoError(t, err)
	require.InDelta(t, 9.5, temp, 1e-9)

	mode, err := p.DiveMode()
	require.NoError(t, err)
	require.Equal(t, format.DiveModeGauge, mode)
}

func TestParser_Field(t *testing.T) {
	p, err := New(scubaRecord(format.ModeScuba).Bytes())
	require.NoError(t, err)

	t.Run("ValueTypes", func(t *testing.T) {
		v, err := p.Field(format.FieldDatetime, 0)
		require.NoError(t, err)
		require.IsType(t, Datetime{}, v)

		v, err = p.Field(format.FieldDiveTime, 0)
		require.NoError(t, err)
		require.Equal(t, uint32(3125), v)

		v, err = p.Field(format.FieldMaxDepth, 0)
		require.NoError(t, err)
		require.InDelta(t, 30.5, v.(float64), 1e-9)

		v, err = p.Field(format.FieldAvgDepth, 0)
		require.NoError(t, err)
		require.InDelta(t, 15.2, v.(float64), 1e-9)

		v, err = p.Field(format.FieldMinTemperature, 0)
		require.NoError(t, err)
		require.InDelta(t, 18.4, v.(float64), 1e-9)

		v, err = p.Field(format.FieldAtmosphericPressure, 0)
		require.NoError(t, err)
		require.InDelta(t, 1.013, v.(float64), 1e-9)

		v, err = p.Field(format.FieldGasMixCount, 0)
		require.NoError(t, err)
		require.Equal(t, 2, v)

		v, err = p.Field(format.FieldGasMix, 1)
		require.NoError(t, err)
		require.InDelta(t, 0.21, v.(GasMix).Oxygen, 1e-9)

		v, err = p.Field(format.FieldDiveMode, 0)
		require.NoError(t, err)
		require.Equal(t, format.DiveModeOpenCircuit, v)
	})

	t.Run("UnknownField", func(t *testing.T) {
		v, err := p.Field(format.FieldType(0xEE), 0)
		require.Nil(t, v)
		require.ErrorIs(t, err, errs.ErrUnsupported)
	})

	t.Run("GasMixIndexError", func(t *testing.T) {
		v, err := p.Field(format.FieldGasMix, 2)
		require.Nil(t, v)
		require.ErrorIs(t, err, errs.ErrInvalidGasMixIndex)
	})

	t.Run("FailuresAreLocal", func(t *testing.T) {
		_, err := p.Field(format.FieldGasMix, 5)
		require.Error(t, err)

		depth, err := p.MaxDepth()
		require.NoError(t, err)
		require.InDelta(t, 30.5, depth, 1e-9)
	})
}

func TestDatetime_Time(t *testing.T) {
	dt := Datetime{Year: 2023, Month: 7, Day: 14, Hour: 9, Minute: 30, Timezone: TimezoneNone}

	require.Equal(t, time.Date(2023, time.July, 14, 9, 30, 0, 0, time.UTC), dt.Time(nil))

	loc := time.FixedZone("CET", 3600)
	require.Equal(t, time.Date(2023, time.July, 14, 9, 30, 0, 0, loc), dt.Time(loc))

	dt.Timezone = 7200
	require.True(t, dt.HasTimezone())
	require.Equal(t, time.Date(2023, time.July, 14, 7, 30, 0, 0, time.UTC).Unix(), dt.Time(loc).Unix())
}
