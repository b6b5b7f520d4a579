package parser

import (
	"encoding/binary"
	"iter"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/goalog/format"
	"github.com/arloliu/goalog/section"
)

// noGasMix is the previous gas mix before any gas mix event was emitted.
const noGasMix = math.MaxUint32

// sampleState is carried from word to word during a sample walk.
type sampleState struct {
	time        uint64 // elapsed seconds
	depth       uint32 // 1/10 m
	gasmix      uint32
	prevGasMix  uint32
	temperature uint32 // 1/10 °C
	hasTemp     bool
	complete    bool
}

// Samples returns an iterator over the sample events of the dive, as
// (event kind, value) pairs.
//
// Every completed record yields, in order: a time event, a temperature event if a
// temperature word preceded it, a depth event, and for open-circuit dives a gas mix
// event when the active mix changed. A temperature word not followed by a depth or
// time word before the end of data is dropped, and a trailing odd byte is ignored.
//
// Each call starts a new walk over the record. Use iter.Pull for pull-style access.
//
// Example:
//
//	for typ, v := range p.Samples() {
//	    switch typ {
//	    case format.SampleTime:
//	        fmt.Printf("t=%dms ", v.Time)
//	    case format.SampleDepth:
//	        fmt.Printf("depth=%.1fm\n", v.Depth)
//	    }
//	}
func (p *Parser) Samples() iter.Seq2[format.SampleType, SampleValue] {
	return func(yield func(format.SampleType, SampleValue) bool) {
		p.walkSamples(yield)
	}
}

// SamplesForeach passes every sample event to cb in emission order.
// A nil callback walks the samples without delivering events.
func (p *Parser) SamplesForeach(cb SampleCallback) error {
	for typ, v := range p.Samples() {
		if cb != nil {
			cb(typ, v)
		}
	}

	return nil
}

func (p *Parser) walkSamples(yield func(format.SampleType, SampleValue) bool) {
	data := p.ctx.Region(p.data)
	size := uint32(len(data)) //nolint:gosec
	interval := uint64(p.ctx.SampleInterval())
	gasChanges := p.cfg.gasMixEvents && p.ctx.Mode.IsOpenCircuit()

	records := 0
	emitTime := func(seconds uint64) bool {
		if p.cfg.maxRecords > 0 && records >= p.cfg.maxRecords {
			return false
		}
		records++

		return yield(format.SampleTime, SampleValue{Time: int64(seconds) * 1000}) //nolint:gosec
	}

	st := sampleState{prevGasMix: noGasMix}

	offset := p.ctx.Layout.HeaderSize
	for ; offset+section.SampleWordSize <= size; offset += section.SampleWordSize {
		raw := uint32(binary.LittleEndian.Uint16(data[offset:]))
		typ := raw & section.SampleTypeMask
		value := (raw & section.SampleValueMask) >> section.SampleValueBits

		switch typ {
		case section.SampleDepth, section.SampleDepthAlt:
			st.depth = value & section.DepthMask
			st.gasmix = (value & section.GasMixMask) >> section.GasMixBitShift
			st.time += interval
			st.complete = true
		case section.SampleTemperature:
			st.temperature = value
			st.hasTemp = true
		case section.SampleTime:
			surftime := uint64(value)
			if surftime > interval {
				// Ascent to the surface before the surface interval.
				if !emitTime(st.time) || !yield(format.SampleDepth, SampleValue{Depth: 0}) {
					return
				}
				surftime -= interval
				st.time += interval
			}
			st.time += surftime
			st.depth = 0
			st.complete = true
		}

		if !st.complete {
			continue
		}

		if !emitTime(st.time) {
			return
		}

		if st.hasTemp {
			st.hasTemp = false
			if !yield(format.SampleTemperature, SampleValue{Temperature: float64(st.temperature) / 10.0}) {
				return
			}
		}

		if !yield(format.SampleDepth, SampleValue{Depth: float64(st.depth) / 10.0}) {
			return
		}

		if gasChanges && st.gasmix != st.prevGasMix {
			st.prevGasMix = st.gasmix
			if !yield(format.SampleGasMix, SampleValue{GasMix: int(st.gasmix)}) {
				return
			}
		}

		st.complete = false
	}

	if st.hasTemp || offset < size {
		p.cfg.logger.WithFields(logrus.Fields{
			"pending_temperature": st.hasTemp,
			"trailing_bytes":      size - offset,
		}).Debug("sample data ended with an incomplete record")
	}
}
