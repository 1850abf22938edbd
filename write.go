package daqmx

import (
	"fmt"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/waveform"
)

// AutoStart selects whether a write starts the task implicitly.
type AutoStart int

const (
	// AutoStartUnset starts the task only for a single sample per channel.
	AutoStartUnset AutoStart = iota
	AutoStartTrue
	AutoStartFalse
)

func (a AutoStart) resolve(perChan int) bool {
	switch a {
	case AutoStartTrue:
		return true
	case AutoStartFalse:
		return false
	}
	return perChan == 1
}

// shape is data laid out group-by-channel.
type shape[T any] struct {
	flat    []T
	perChan int
	scalar  bool
}

// layout accepts a single value (one channel), a slice (one channel's
// samples, or one sample per channel for several channels) or a slice of
// per-channel slices. ok is false when data holds another element type.
func layout[T any](data any, chans int) (s shape[T], ok bool, err error) {
	switch v := data.(type) {
	case T:
		if chans != 1 {
			return s, true, &daqerr.MismatchedArraySizesError{What: "channels in data", Want: chans, Got: 1}
		}
		return shape[T]{flat: []T{v}, perChan: 1, scalar: true}, true, nil
	case []T:
		if chans == 1 {
			return shape[T]{flat: v, perChan: len(v)}, true, nil
		}
		if len(v) != chans {
			return s, true, &daqerr.MismatchedArraySizesError{What: "channels in data", Want: chans, Got: len(v)}
		}
		return shape[T]{flat: v, perChan: 1}, true, nil
	case [][]T:
		if len(v) != chans {
			return s, true, &daqerr.MismatchedArraySizesError{What: "channels in data", Want: chans, Got: len(v)}
		}
		if chans == 0 {
			return s, true, nil
		}
		n := len(v[0])
		flat := make([]T, 0, n*chans)
		for c, row := range v {
			if len(row) != n {
				return s, true, &daqerr.MismatchedArraySizesError{What: fmt.Sprintf("samples in channel %d", c), Want: n, Got: len(row)}
			}
			flat = append(flat, row...)
		}
		return shape[T]{flat: flat, perChan: n}, true, nil
	}
	return s, false, nil
}

// writePlan is what a write needs to know about the task.
type writePlan struct {
	h     interpreter.TaskHandle
	chans int
	kind  constants.ChannelType
	// lines is the bytes per channel of a digital line write.
	lines int
}

func (t *Task) planWrite() (writePlan, error) {
	c := t.core
	h, err := c.handle()
	if err != nil {
		return writePlan{}, err
	}
	names, err := getNames(c, attributes.TaskChannels)
	if err != nil {
		return writePlan{}, err
	}
	if len(names) == 0 {
		return writePlan{}, fmt.Errorf("task %s has no channels to write: %w", c.name, daqerr.ErrInvalidArgument)
	}
	kind, err := getEnum[constants.ChannelType](newChannel(c, names[0], 0), attributes.ChanType)
	if err != nil {
		return writePlan{}, err
	}
	p := writePlan{h: h, chans: len(names), kind: kind}
	if kind == constants.DigitalOutput {
		lines, err := t.OutStream.DigitalLinesBytesPerChan()
		if err != nil {
			return writePlan{}, err
		}
		p.lines = int(lines)
	}
	return p, nil
}

// Write writes samples to every channel of an output task and returns the
// samples per channel written. Accepted data by channel type:
//
//	analog output:  float64, []float64, [][]float64, []*waveform.Analog
//	digital output: bool, uint8, uint16, uint32 (as value, slice or slice
//	                of per-channel slices), []*waveform.Digital
//	counter output: CtrFreq, CtrTime, CtrTick (as value, slice or slice of
//	                per-channel slices)
//
// A flat slice for a multi-channel task holds one sample per channel.
func (t *Task) Write(data any, autoStart AutoStart, timeout float64) (int, error) {
	p, err := t.planWrite()
	if err != nil {
		return 0, err
	}
	n, err := t.write(p, data, autoStart, timeout)
	return n, daqerr.WithContext(err, t.core.name, "")
}

func (t *Task) write(p writePlan, data any, autoStart AutoStart, timeout float64) (int, error) {
	switch p.kind {
	case constants.AnalogOutput:
		if wfs, ok := data.([]*waveform.Analog); ok {
			return t.writeAnalogWaveforms(p, wfs, autoStart, timeout)
		}
		return writeAnalog(t.core.interp, p, data, autoStart, timeout)
	case constants.DigitalOutput:
		if wfs, ok := data.([]*waveform.Digital); ok {
			return t.writeDigitalWaveforms(p, wfs, autoStart, timeout)
		}
		return writeDigital(t.core.interp, p, data, autoStart, timeout)
	case constants.CounterOutput:
		return writeCounter(t.core.interp, p, data, autoStart, timeout)
	}
	return 0, fmt.Errorf("cannot write to a task of %s channels: %w", p.kind, daqerr.ErrInvalidArgument)
}

// one reports a scalar write as one sample per channel written.
func one(err error) (int, error) {
	if err != nil {
		return 0, err
	}
	return 1, nil
}

func invalidType(data any, kind constants.ChannelType) error {
	return fmt.Errorf("cannot write %T to %s channels: %w", data, kind, daqerr.ErrInvalidType)
}

func writeAnalog(i interpreter.Interpreter, p writePlan, data any, autoStart AutoStart, timeout float64) (int, error) {
	s, ok, err := layout[float64](data, p.chans)
	if !ok {
		return 0, invalidType(data, p.kind)
	}
	if err != nil {
		return 0, err
	}
	start := autoStart.resolve(s.perChan)
	if s.scalar {
		return one(i.WriteAnalogScalarF64(p.h, start, timeout, s.flat[0]))
	}
	return i.WriteAnalogF64(p.h, s.perChan, start, timeout, constants.GroupByChannel, s.flat)
}

func writeDigital(i interpreter.Interpreter, p writePlan, data any, autoStart AutoStart, timeout float64) (int, error) {
	if s, ok, err := layout[bool](data, p.chans); ok {
		if err != nil {
			return 0, err
		}
		if p.lines != 1 {
			return 0, fmt.Errorf("cannot write bool samples to channels of %d lines, write port values instead: %w", p.lines, daqerr.ErrInvalidType)
		}
		return i.WriteDigitalLines(p.h, s.perChan, autoStart.resolve(s.perChan), timeout, constants.GroupByChannel, lineBytes(s.flat))
	}
	if s, ok, err := layout[uint8](data, p.chans); ok {
		if err != nil {
			return 0, err
		}
		return i.WriteDigitalU8(p.h, s.perChan, autoStart.resolve(s.perChan), timeout, constants.GroupByChannel, s.flat)
	}
	if s, ok, err := layout[uint16](data, p.chans); ok {
		if err != nil {
			return 0, err
		}
		return i.WriteDigitalU16(p.h, s.perChan, autoStart.resolve(s.perChan), timeout, constants.GroupByChannel, s.flat)
	}
	s, ok, err := layout[uint32](data, p.chans)
	if !ok {
		return 0, invalidType(data, p.kind)
	}
	if err != nil {
		return 0, err
	}
	start := autoStart.resolve(s.perChan)
	if s.scalar {
		return one(i.WriteDigitalScalarU32(p.h, start, timeout, s.flat[0]))
	}
	return i.WriteDigitalU32(p.h, s.perChan, start, timeout, constants.GroupByChannel, s.flat)
}

func writeCounter(i interpreter.Interpreter, p writePlan, data any, autoStart AutoStart, timeout float64) (int, error) {
	if s, ok, err := layout[CtrFreq](data, p.chans); ok {
		if err != nil {
			return 0, err
		}
		start := autoStart.resolve(s.perChan)
		if s.scalar {
			return one(i.WriteCtrFreqScalar(p.h, start, timeout, s.flat[0]))
		}
		freq, duty := make([]float64, len(s.flat)), make([]float64, len(s.flat))
		for n, v := range s.flat {
			freq[n], duty[n] = v.Freq, v.DutyCycle
		}
		return i.WriteCtrFreq(p.h, s.perChan, start, timeout, constants.GroupByChannel, freq, duty)
	}
	if s, ok, err := layout[CtrTime](data, p.chans); ok {
		if err != nil {
			return 0, err
		}
		start := autoStart.resolve(s.perChan)
		if s.scalar {
			return one(i.WriteCtrTimeScalar(p.h, start, timeout, s.flat[0]))
		}
		high, low := make([]float64, len(s.flat)), make([]float64, len(s.flat))
		for n, v := range s.flat {
			high[n], low[n] = v.HighTime, v.LowTime
		}
		return i.WriteCtrTime(p.h, s.perChan, start, timeout, constants.GroupByChannel, high, low)
	}
	s, ok, err := layout[CtrTick](data, p.chans)
	if !ok {
		return 0, invalidType(data, p.kind)
	}
	if err != nil {
		return 0, err
	}
	start := autoStart.resolve(s.perChan)
	if s.scalar {
		return one(i.WriteCtrTicksScalar(p.h, start, timeout, s.flat[0]))
	}
	high, low := make([]uint32, len(s.flat)), make([]uint32, len(s.flat))
	for n, v := range s.flat {
		high[n], low[n] = v.HighTick, v.LowTick
	}
	return i.WriteCtrTicks(p.h, s.perChan, start, timeout, constants.GroupByChannel, high, low)
}

func (t *Task) writeAnalogWaveforms(p writePlan, wfs []*waveform.Analog, autoStart AutoStart, timeout float64) (int, error) {
	if len(wfs) != p.chans {
		return 0, &daqerr.MismatchedArraySizesError{What: "waveforms per channel", Want: p.chans, Got: len(wfs)}
	}
	n, err := waveform.EqualLength(wfs)
	if err != nil {
		return 0, err
	}
	return t.core.interp.WriteAnalogWaveforms(p.h, autoStart.resolve(n), timeout, wfs)
}

func (t *Task) writeDigitalWaveforms(p writePlan, wfs []*waveform.Digital, autoStart AutoStart, timeout float64) (int, error) {
	if len(wfs) != p.chans {
		return 0, &daqerr.MismatchedArraySizesError{What: "waveforms per channel", Want: p.chans, Got: len(wfs)}
	}
	n, err := waveform.EqualLength(wfs)
	if err != nil {
		return 0, err
	}
	return t.core.interp.WriteDigitalWaveforms(p.h, autoStart.resolve(n), timeout, wfs)
}

// WriteWaveforms writes one analog waveform per channel. Every waveform
// must have the same number of samples.
func (t *Task) WriteWaveforms(wfs []*waveform.Analog, autoStart AutoStart, timeout float64) (int, error) {
	p, err := t.planWrite()
	if err != nil {
		return 0, err
	}
	if p.kind != constants.AnalogOutput {
		return 0, invalidType(wfs, p.kind)
	}
	n, err := t.writeAnalogWaveforms(p, wfs, autoStart, timeout)
	return n, daqerr.WithContext(err, t.core.name, "")
}

// WriteDigitalWaveforms writes one digital waveform per channel.
func (t *Task) WriteDigitalWaveforms(wfs []*waveform.Digital, autoStart AutoStart, timeout float64) (int, error) {
	p, err := t.planWrite()
	if err != nil {
		return 0, err
	}
	if p.kind != constants.DigitalOutput {
		return 0, invalidType(wfs, p.kind)
	}
	n, err := t.writeDigitalWaveforms(p, wfs, autoStart, timeout)
	return n, daqerr.WithContext(err, t.core.name, "")
}
