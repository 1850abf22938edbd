package daqmx

import (
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
)

// streamReader reads into caller-owned buffers. Multi-channel buffers are
// laid out per Layout; with GroupByChannel channel c of an n-sample read
// occupies [c*n, (c+1)*n). Positions past the samples actually read keep
// their previous contents.
type streamReader struct {
	in *InStream
	// VerifyArrayShape checks the buffer against the number of channels to
	// read before every read. Turning it off saves an attribute query per
	// read.
	VerifyArrayShape bool
	// Layout orders multi-channel buffers.
	Layout constants.FillMode
}

func newStreamReader(in *InStream) streamReader {
	return streamReader{in: in, VerifyArrayShape: true}
}

func (r *streamReader) handle() (interpreter.Interpreter, interpreter.TaskHandle, error) {
	h, err := r.in.core.handle()
	return r.in.core.interp, h, err
}

// single prepares a one-channel read of n samples into a buffer of size.
func (r *streamReader) single(n, size int) (interpreter.Interpreter, interpreter.TaskHandle, int, error) {
	n, err := r.in.samples(n)
	if err != nil {
		return nil, interpreter.TaskHandle{}, 0, err
	}
	if r.VerifyArrayShape {
		if err := r.verifyChans(1); err != nil {
			return nil, interpreter.TaskHandle{}, 0, err
		}
		if size < n {
			return nil, interpreter.TaskHandle{}, 0, &daqerr.MismatchedArraySizesError{What: "buffer samples", Want: n, Got: size}
		}
	}
	i, h, err := r.handle()
	return i, h, n, err
}

// multi prepares an n-sample read of every channel to read into a buffer of
// size elements.
func (r *streamReader) multi(n, size int) (interpreter.Interpreter, interpreter.TaskHandle, int, error) {
	n, err := r.in.samples(n)
	if err != nil {
		return nil, interpreter.TaskHandle{}, 0, err
	}
	if r.VerifyArrayShape {
		chans, err := r.in.NumChans()
		if err != nil {
			return nil, interpreter.TaskHandle{}, 0, err
		}
		if want := int(chans) * n; size < want {
			return nil, interpreter.TaskHandle{}, 0, &daqerr.MismatchedArraySizesError{What: "buffer samples across all channels", Want: want, Got: size}
		}
	}
	i, h, err := r.handle()
	return i, h, n, err
}

// perSample prepares a one-sample read of every channel into a buffer of
// size elements.
func (r *streamReader) perSample(size int) (interpreter.Interpreter, interpreter.TaskHandle, error) {
	if r.VerifyArrayShape {
		chans, err := r.in.NumChans()
		if err != nil {
			return nil, interpreter.TaskHandle{}, err
		}
		if size < int(chans) {
			return nil, interpreter.TaskHandle{}, &daqerr.MismatchedArraySizesError{What: "buffer channels", Want: int(chans), Got: size}
		}
	}
	return r.handle()
}

func (r *streamReader) verifyChans(want int) error {
	chans, err := r.in.NumChans()
	if err != nil {
		return err
	}
	if int(chans) != want {
		return &daqerr.MismatchedArraySizesError{What: "channels to read", Want: want, Got: int(chans)}
	}
	return nil
}

func (r *streamReader) wrap(err error) error {
	return daqerr.WithContext(err, r.in.core.name, "")
}

// AnalogSingleChannelReader reads scaled samples from one analog input
// channel.
type AnalogSingleChannelReader struct{ streamReader }

func NewAnalogSingleChannelReader(in *InStream) *AnalogSingleChannelReader {
	return &AnalogSingleChannelReader{newStreamReader(in)}
}

// ReadManySample reads up to n samples into buf and returns the count read.
func (r *AnalogSingleChannelReader) ReadManySample(buf []float64, n int, timeout float64) (int, error) {
	i, h, n, err := r.single(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadAnalogF64(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

func (r *AnalogSingleChannelReader) ReadOneSample(timeout float64) (float64, error) {
	if r.VerifyArrayShape {
		if err := r.verifyChans(1); err != nil {
			return 0, err
		}
	}
	i, h, err := r.handle()
	if err != nil {
		return 0, err
	}
	v, err := i.ReadAnalogScalarF64(h, timeout)
	return v, r.wrap(err)
}

// AnalogMultiChannelReader reads scaled samples from several analog input
// channels.
type AnalogMultiChannelReader struct{ streamReader }

func NewAnalogMultiChannelReader(in *InStream) *AnalogMultiChannelReader {
	return &AnalogMultiChannelReader{newStreamReader(in)}
}

func (r *AnalogMultiChannelReader) ReadManySample(buf []float64, n int, timeout float64) (int, error) {
	i, h, n, err := r.multi(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadAnalogF64(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

// ReadOneSample reads one sample per channel into buf.
func (r *AnalogMultiChannelReader) ReadOneSample(buf []float64, timeout float64) error {
	i, h, err := r.perSample(len(buf))
	if err != nil {
		return err
	}
	_, err = i.ReadAnalogF64(h, 1, timeout, r.Layout, buf)
	return r.wrap(err)
}

// AnalogUnscaledReader reads raw ADC codes from analog input channels.
type AnalogUnscaledReader struct{ streamReader }

func NewAnalogUnscaledReader(in *InStream) *AnalogUnscaledReader {
	return &AnalogUnscaledReader{newStreamReader(in)}
}

func (r *AnalogUnscaledReader) ReadInt16(buf []int16, n int, timeout float64) (int, error) {
	i, h, n, err := r.multi(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadBinaryI16(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

func (r *AnalogUnscaledReader) ReadInt32(buf []int32, n int, timeout float64) (int, error) {
	i, h, n, err := r.multi(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadBinaryI32(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

func (r *AnalogUnscaledReader) ReadUint16(buf []uint16, n int, timeout float64) (int, error) {
	i, h, n, err := r.multi(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadBinaryU16(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

func (r *AnalogUnscaledReader) ReadUint32(buf []uint32, n int, timeout float64) (int, error) {
	i, h, n, err := r.multi(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadBinaryU32(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

// CounterReader reads from one counter input channel.
type CounterReader struct{ streamReader }

func NewCounterReader(in *InStream) *CounterReader {
	return &CounterReader{newStreamReader(in)}
}

func (r *CounterReader) ReadManySampleDouble(buf []float64, n int, timeout float64) (int, error) {
	i, h, n, err := r.single(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadCounterF64(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

func (r *CounterReader) ReadManySampleUint32(buf []uint32, n int, timeout float64) (int, error) {
	i, h, n, err := r.single(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadCounterU32(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

// ReadManySamplePulseFrequency reads pulse measurements as frequency and
// duty cycle pairs.
func (r *CounterReader) ReadManySamplePulseFrequency(freq, duty []float64, n int, timeout float64) (int, error) {
	i, h, n, err := r.pair(n, len(freq), len(duty))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadCtrFreq(h, n, timeout, r.Layout, freq, duty)
	return k, r.wrap(err)
}

func (r *CounterReader) ReadManySamplePulseTime(high, low []float64, n int, timeout float64) (int, error) {
	i, h, n, err := r.pair(n, len(high), len(low))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadCtrTime(h, n, timeout, r.Layout, high, low)
	return k, r.wrap(err)
}

func (r *CounterReader) ReadManySamplePulseTicks(high, low []uint32, n int, timeout float64) (int, error) {
	i, h, n, err := r.pair(n, len(high), len(low))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadCtrTicks(h, n, timeout, r.Layout, high, low)
	return k, r.wrap(err)
}

func (r *CounterReader) pair(n, a, b int) (interpreter.Interpreter, interpreter.TaskHandle, int, error) {
	if a != b {
		return nil, interpreter.TaskHandle{}, 0, &daqerr.MismatchedArraySizesError{What: "second buffer samples", Want: a, Got: b}
	}
	return r.single(n, a)
}

func (r *CounterReader) scalar() (interpreter.Interpreter, interpreter.TaskHandle, error) {
	if r.VerifyArrayShape {
		if err := r.verifyChans(1); err != nil {
			return nil, interpreter.TaskHandle{}, err
		}
	}
	return r.handle()
}

func (r *CounterReader) ReadOneSampleDouble(timeout float64) (float64, error) {
	i, h, err := r.scalar()
	if err != nil {
		return 0, err
	}
	v, err := i.ReadCounterScalarF64(h, timeout)
	return v, r.wrap(err)
}

func (r *CounterReader) ReadOneSampleUint32(timeout float64) (uint32, error) {
	i, h, err := r.scalar()
	if err != nil {
		return 0, err
	}
	v, err := i.ReadCounterScalarU32(h, timeout)
	return v, r.wrap(err)
}

func (r *CounterReader) ReadOneSamplePulseFrequency(timeout float64) (CtrFreq, error) {
	i, h, err := r.scalar()
	if err != nil {
		return CtrFreq{}, err
	}
	v, err := i.ReadCtrFreqScalar(h, timeout)
	return v, r.wrap(err)
}

func (r *CounterReader) ReadOneSamplePulseTime(timeout float64) (CtrTime, error) {
	i, h, err := r.scalar()
	if err != nil {
		return CtrTime{}, err
	}
	v, err := i.ReadCtrTimeScalar(h, timeout)
	return v, r.wrap(err)
}

func (r *CounterReader) ReadOneSamplePulseTicks(timeout float64) (CtrTick, error) {
	i, h, err := r.scalar()
	if err != nil {
		return CtrTick{}, err
	}
	v, err := i.ReadCtrTicksScalar(h, timeout)
	return v, r.wrap(err)
}

// DigitalSingleChannelReader reads from one digital input channel, as
// port values or as individual lines.
type DigitalSingleChannelReader struct{ streamReader }

func NewDigitalSingleChannelReader(in *InStream) *DigitalSingleChannelReader {
	return &DigitalSingleChannelReader{newStreamReader(in)}
}

// ReadOneSampleOneLine reads the state of a single-line channel.
func (r *DigitalSingleChannelReader) ReadOneSampleOneLine(timeout float64) (bool, error) {
	var line [1]bool
	if err := r.ReadOneSampleMultiLine(line[:], timeout); err != nil {
		return false, err
	}
	return line[0], nil
}

// ReadOneSampleMultiLine reads one sample of every line of the channel
// into lines.
func (r *DigitalSingleChannelReader) ReadOneSampleMultiLine(lines []bool, timeout float64) error {
	if r.VerifyArrayShape {
		if err := r.verifyChans(1); err != nil {
			return err
		}
	}
	i, h, err := r.handle()
	if err != nil {
		return err
	}
	raw := make([]uint8, len(lines))
	k, _, err := i.ReadDigitalLines(h, 1, timeout, r.Layout, raw)
	if err != nil {
		return r.wrap(err)
	}
	if k > 0 {
		for n, v := range raw {
			lines[n] = v != 0
		}
	}
	return nil
}

func (r *DigitalSingleChannelReader) ReadOneSamplePortUint32(timeout float64) (uint32, error) {
	if r.VerifyArrayShape {
		if err := r.verifyChans(1); err != nil {
			return 0, err
		}
	}
	i, h, err := r.handle()
	if err != nil {
		return 0, err
	}
	v, err := i.ReadDigitalScalarU32(h, timeout)
	return v, r.wrap(err)
}

func (r *DigitalSingleChannelReader) ReadManySamplePortUint8(buf []uint8, n int, timeout float64) (int, error) {
	i, h, n, err := r.single(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadDigitalU8(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

func (r *DigitalSingleChannelReader) ReadManySamplePortUint16(buf []uint16, n int, timeout float64) (int, error) {
	i, h, n, err := r.single(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadDigitalU16(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

func (r *DigitalSingleChannelReader) ReadManySamplePortUint32(buf []uint32, n int, timeout float64) (int, error) {
	i, h, n, err := r.single(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadDigitalU32(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

// DigitalMultiChannelReader reads from several digital input channels.
type DigitalMultiChannelReader struct{ streamReader }

func NewDigitalMultiChannelReader(in *InStream) *DigitalMultiChannelReader {
	return &DigitalMultiChannelReader{newStreamReader(in)}
}

// ReadOneSampleOneLine reads one sample of every single-line channel into
// buf, one element per channel.
func (r *DigitalMultiChannelReader) ReadOneSampleOneLine(buf []bool, timeout float64) error {
	i, h, err := r.perSample(len(buf))
	if err != nil {
		return err
	}
	raw := make([]uint8, len(buf))
	k, _, err := i.ReadDigitalLines(h, 1, timeout, r.Layout, raw)
	if err != nil {
		return r.wrap(err)
	}
	if k > 0 {
		for n, v := range raw {
			buf[n] = v != 0
		}
	}
	return nil
}

func (r *DigitalMultiChannelReader) ReadOneSamplePortUint32(buf []uint32, timeout float64) error {
	i, h, err := r.perSample(len(buf))
	if err != nil {
		return err
	}
	_, err = i.ReadDigitalU32(h, 1, timeout, r.Layout, buf)
	return r.wrap(err)
}

func (r *DigitalMultiChannelReader) ReadManySamplePortUint8(buf []uint8, n int, timeout float64) (int, error) {
	i, h, n, err := r.multi(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadDigitalU8(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

func (r *DigitalMultiChannelReader) ReadManySamplePortUint16(buf []uint16, n int, timeout float64) (int, error) {
	i, h, n, err := r.multi(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadDigitalU16(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}

func (r *DigitalMultiChannelReader) ReadManySamplePortUint32(buf []uint32, n int, timeout float64) (int, error) {
	i, h, n, err := r.multi(n, len(buf))
	if err != nil {
		return 0, err
	}
	k, err := i.ReadDigitalU32(h, n, timeout, r.Layout, buf)
	return k, r.wrap(err)
}
