package daqmx

import (
	"fmt"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/waveform"
)

// ReadData holds the samples of one Task.Read, grouped by channel: channel
// c's samples are at [c*Samples, (c+1)*Samples) of the one slice that is
// set for the task's channel type.
type ReadData struct {
	Channels []string
	// Samples is the number of samples read per channel.
	Samples int

	Float64 []float64
	Uint32  []uint32
	Bool    []bool
	CtrFreq []CtrFreq
	CtrTime []CtrTime
	CtrTick []CtrTick
}

// PerChannel splits one of d's sample slices into one slice per channel.
func PerChannel[T any](d *ReadData, samples []T) [][]T {
	out := make([][]T, len(d.Channels))
	for c := range out {
		out[c] = samples[c*d.Samples : (c+1)*d.Samples : (c+1)*d.Samples]
	}
	return out
}

// readPlan is what a read needs to know about the task.
type readPlan struct {
	h     interpreter.TaskHandle
	chans []string
	kind  constants.ChannelType
	n     int
}

func (t *Task) planRead(n int) (readPlan, error) {
	c := t.core
	h, err := c.handle()
	if err != nil {
		return readPlan{}, err
	}
	in := scoped{c, attributes.ScopeRead}
	chans, err := getNames(in, attributes.ReadChannelsToRead)
	if err != nil {
		return readPlan{}, err
	}
	if len(chans) == 0 {
		return readPlan{}, fmt.Errorf("task %s has no channels to read: %w", c.name, daqerr.ErrInvalidArgument)
	}
	kind, err := getEnum[constants.ChannelType](newChannel(c, chans[0], 0), attributes.ChanType)
	if err != nil {
		return readPlan{}, err
	}
	n, err = t.InStream.samples(n)
	if err != nil {
		return readPlan{}, err
	}
	return readPlan{h: h, chans: chans, kind: kind, n: n}, nil
}

// samples turns ReadAllAvailable into a count. A finite task reads its
// configured total unless ReadAllAvailSamp is set; everything else reads
// what is in the buffer now.
func (s *InStream) samples(n int) (int, error) {
	if n != ReadAllAvailable {
		if n < 0 {
			return 0, fmt.Errorf("sample count %d: %w", n, daqerr.ErrInvalidArgument)
		}
		return n, nil
	}
	timing := &Timing{scoped{s.core, attributes.ScopeTiming}}
	mode, err := timing.SampQuantSampMode()
	if err != nil {
		return 0, err
	}
	if mode == constants.Finite {
		all, err := s.ReadAllAvailSamp()
		if err != nil {
			return 0, err
		}
		if !all {
			total, err := timing.SampQuantSampPerChan()
			return int(total), err
		}
	}
	avail, err := s.AvailSampPerChan()
	return int(avail), err
}

// Read reads n samples per channel from the channels in
// InStream.ChannelsToRead. n may be ReadAllAvailable. The sample type
// follows the channel type: analog and most counter measurements are
// float64, edge counts and multi-line digital channels uint32, single-line
// digital channels bool and pulse measurements counter structs.
func (t *Task) Read(n int, timeout float64) (*ReadData, error) {
	p, err := t.planRead(n)
	if err != nil {
		return nil, err
	}
	data, err := t.read(p, timeout)
	if err != nil {
		return nil, daqerr.WithContext(err, t.core.name, "")
	}
	return data, nil
}

func (t *Task) read(p readPlan, timeout float64) (*ReadData, error) {
	i := t.core.interp
	nc := len(p.chans)
	d := &ReadData{Channels: p.chans}
	switch p.kind {
	case constants.AnalogInput:
		if p.n == 1 && nc == 1 {
			v, err := i.ReadAnalogScalarF64(p.h, timeout)
			if err != nil {
				return nil, err
			}
			d.Float64, d.Samples = []float64{v}, 1
			return d, nil
		}
		buf := make([]float64, nc*p.n)
		k, err := i.ReadAnalogF64(p.h, p.n, timeout, constants.GroupByChannel, buf)
		d.Float64, d.Samples = compact(buf, nc, p.n, k), k
		return d, err

	case constants.DigitalInput:
		width, err := t.InStream.DigitalLinesBytesPerChan()
		if err != nil {
			return nil, err
		}
		if width == 1 {
			buf := make([]uint8, nc*p.n)
			k, _, err := i.ReadDigitalLines(p.h, p.n, timeout, constants.GroupByChannel, buf)
			lines := compact(buf, nc, p.n, k)
			d.Bool, d.Samples = make([]bool, len(lines)), k
			for n, v := range lines {
				d.Bool[n] = v != 0
			}
			return d, err
		}
		if p.n == 1 && nc == 1 {
			v, err := i.ReadDigitalScalarU32(p.h, timeout)
			if err != nil {
				return nil, err
			}
			d.Uint32, d.Samples = []uint32{v}, 1
			return d, nil
		}
		buf := make([]uint32, nc*p.n)
		k, err := i.ReadDigitalU32(p.h, p.n, timeout, constants.GroupByChannel, buf)
		d.Uint32, d.Samples = compact(buf, nc, p.n, k), k
		return d, err

	case constants.CounterInput:
		meas, err := getEnum[constants.UsageTypeCI](newChannel(t.core, p.chans[0], p.kind), attributes.CIMeasType)
		if err != nil {
			return nil, err
		}
		return t.readCounter(p, meas, timeout, d)
	}
	return nil, fmt.Errorf("cannot read from a task of %s channels: %w", p.kind, daqerr.ErrInvalidArgument)
}

func (t *Task) readCounter(p readPlan, meas constants.UsageTypeCI, timeout float64, d *ReadData) (*ReadData, error) {
	i := t.core.interp
	nc := len(p.chans)
	scalar := p.n == 1 && nc == 1
	switch meas {
	case constants.CIPulseFrequency:
		if scalar {
			v, err := i.ReadCtrFreqScalar(p.h, timeout)
			d.CtrFreq, d.Samples = []CtrFreq{v}, 1
			return d, err
		}
		a, b := make([]float64, nc*p.n), make([]float64, nc*p.n)
		k, err := i.ReadCtrFreq(p.h, p.n, timeout, constants.GroupByChannel, a, b)
		a, b = compact(a, nc, p.n, k), compact(b, nc, p.n, k)
		d.CtrFreq, d.Samples = make([]CtrFreq, len(a)), k
		for n := range a {
			d.CtrFreq[n] = CtrFreq{Freq: a[n], DutyCycle: b[n]}
		}
		return d, err
	case constants.CIPulseTime:
		if scalar {
			v, err := i.ReadCtrTimeScalar(p.h, timeout)
			d.CtrTime, d.Samples = []CtrTime{v}, 1
			return d, err
		}
		a, b := make([]float64, nc*p.n), make([]float64, nc*p.n)
		k, err := i.ReadCtrTime(p.h, p.n, timeout, constants.GroupByChannel, a, b)
		a, b = compact(a, nc, p.n, k), compact(b, nc, p.n, k)
		d.CtrTime, d.Samples = make([]CtrTime, len(a)), k
		for n := range a {
			d.CtrTime[n] = CtrTime{HighTime: a[n], LowTime: b[n]}
		}
		return d, err
	case constants.CIPulseTicks:
		if scalar {
			v, err := i.ReadCtrTicksScalar(p.h, timeout)
			d.CtrTick, d.Samples = []CtrTick{v}, 1
			return d, err
		}
		a, b := make([]uint32, nc*p.n), make([]uint32, nc*p.n)
		k, err := i.ReadCtrTicks(p.h, p.n, timeout, constants.GroupByChannel, a, b)
		a, b = compact(a, nc, p.n, k), compact(b, nc, p.n, k)
		d.CtrTick, d.Samples = make([]CtrTick, len(a)), k
		for n := range a {
			d.CtrTick[n] = CtrTick{HighTick: a[n], LowTick: b[n]}
		}
		return d, err
	case constants.CICountEdges:
		if scalar {
			v, err := i.ReadCounterScalarU32(p.h, timeout)
			d.Uint32, d.Samples = []uint32{v}, 1
			return d, err
		}
		buf := make([]uint32, nc*p.n)
		k, err := i.ReadCounterU32(p.h, p.n, timeout, constants.GroupByChannel, buf)
		d.Uint32, d.Samples = compact(buf, nc, p.n, k), k
		return d, err
	}
	if scalar {
		v, err := i.ReadCounterScalarF64(p.h, timeout)
		d.Float64, d.Samples = []float64{v}, 1
		return d, err
	}
	buf := make([]float64, nc*p.n)
	k, err := i.ReadCounterF64(p.h, p.n, timeout, constants.GroupByChannel, buf)
	d.Float64, d.Samples = compact(buf, nc, p.n, k), k
	return d, err
}

// compact closes the gaps a short group-by-channel read leaves between
// channels: chans regions of n samples of which the first k are valid.
func compact[T any](buf []T, chans, n, k int) []T {
	if k == n {
		return buf
	}
	for c := 1; c < chans; c++ {
		copy(buf[c*k:(c+1)*k], buf[c*n:c*n+k])
	}
	return buf[:chans*k]
}

// ReadWaveforms reads n samples per channel of an analog input task into
// one waveform per channel, with timing when the task provides it.
func (t *Task) ReadWaveforms(n int, timeout float64) ([]*waveform.Analog, error) {
	p, err := t.planRead(n)
	if err != nil {
		return nil, err
	}
	if p.kind != constants.AnalogInput {
		return nil, fmt.Errorf("analog waveforms from %s channels: %w", p.kind, daqerr.ErrInvalidArgument)
	}
	wfs := make([]*waveform.Analog, len(p.chans))
	for c := range wfs {
		wfs[c] = waveform.NewAnalog(p.n)
		wfs[c].Channel = p.chans[c]
	}
	if _, err := t.core.interp.ReadAnalogWaveforms(p.h, p.n, timeout, wfs, waveform.ToGrow); err != nil {
		return wfs, daqerr.WithContext(err, t.core.name, "")
	}
	return wfs, nil
}

// ReadDigitalWaveforms reads n samples per channel of a digital input task
// into one waveform per channel.
func (t *Task) ReadDigitalWaveforms(n int, timeout float64) ([]*waveform.Digital, error) {
	p, err := t.planRead(n)
	if err != nil {
		return nil, err
	}
	if p.kind != constants.DigitalInput {
		return nil, fmt.Errorf("digital waveforms from %s channels: %w", p.kind, daqerr.ErrInvalidArgument)
	}
	lines, err := t.InStream.DigitalLinesBytesPerChan()
	if err != nil {
		return nil, err
	}
	wfs := make([]*waveform.Digital, len(p.chans))
	for c := range wfs {
		wfs[c] = waveform.NewDigital(p.n, int(lines))
		wfs[c].Channel = p.chans[c]
	}
	if _, err := t.core.interp.ReadDigitalWaveforms(p.h, p.n, timeout, wfs, waveform.ToGrow); err != nil {
		return wfs, daqerr.WithContext(err, t.core.name, "")
	}
	return wfs, nil
}
