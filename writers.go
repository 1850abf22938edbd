package daqmx

import (
	"fmt"

	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
)

// streamWriter writes from caller-owned buffers laid out per Layout.
type streamWriter struct {
	out *OutStream
	// AutoStart starts the task implicitly on every write.
	AutoStart bool
	// VerifyArrayShape checks buffers against the number of channels before
	// every write.
	VerifyArrayShape bool
	Layout           constants.FillMode
}

func newStreamWriter(out *OutStream, autoStart bool) streamWriter {
	return streamWriter{out: out, AutoStart: autoStart, VerifyArrayShape: true}
}

func (w *streamWriter) handle() (interpreter.Interpreter, interpreter.TaskHandle, error) {
	h, err := w.out.core.handle()
	return w.out.core.interp, h, err
}

func (w *streamWriter) verifyChans(want int) error {
	chans, err := w.out.NumChans()
	if err != nil {
		return err
	}
	if int(chans) != want {
		return &daqerr.MismatchedArraySizesError{What: "channels to write", Want: want, Got: int(chans)}
	}
	return nil
}

// single prepares a one-channel write.
func (w *streamWriter) single() (interpreter.Interpreter, interpreter.TaskHandle, error) {
	if w.VerifyArrayShape {
		if err := w.verifyChans(1); err != nil {
			return nil, interpreter.TaskHandle{}, err
		}
	}
	return w.handle()
}

// multi prepares a write of size elements across every channel and returns
// the samples per channel.
func (w *streamWriter) multi(size int) (interpreter.Interpreter, interpreter.TaskHandle, int, error) {
	chans, err := w.out.NumChans()
	if err != nil {
		return nil, interpreter.TaskHandle{}, 0, err
	}
	if chans == 0 {
		return nil, interpreter.TaskHandle{}, 0, &daqerr.MismatchedArraySizesError{What: "channels to write", Want: 1, Got: 0}
	}
	if w.VerifyArrayShape && size%int(chans) != 0 {
		return nil, interpreter.TaskHandle{}, 0, &daqerr.MismatchedArraySizesError{What: "buffer samples across all channels", Want: size - size%int(chans), Got: size}
	}
	i, h, err := w.handle()
	return i, h, size / int(chans), err
}

func (w *streamWriter) wrap(err error) error {
	return daqerr.WithContext(err, w.out.core.name, "")
}

// AnalogSingleChannelWriter writes to one analog output channel.
type AnalogSingleChannelWriter struct{ streamWriter }

func NewAnalogSingleChannelWriter(out *OutStream, autoStart bool) *AnalogSingleChannelWriter {
	return &AnalogSingleChannelWriter{newStreamWriter(out, autoStart)}
}

// WriteManySample writes every sample in data and returns the count the
// device accepted.
func (w *AnalogSingleChannelWriter) WriteManySample(data []float64, timeout float64) (int, error) {
	i, h, err := w.single()
	if err != nil {
		return 0, err
	}
	n, err := i.WriteAnalogF64(h, len(data), w.AutoStart, timeout, w.Layout, data)
	return n, w.wrap(err)
}

func (w *AnalogSingleChannelWriter) WriteOneSample(v float64, timeout float64) error {
	i, h, err := w.single()
	if err != nil {
		return err
	}
	return w.wrap(i.WriteAnalogScalarF64(h, w.AutoStart, timeout, v))
}

// AnalogMultiChannelWriter writes to several analog output channels.
type AnalogMultiChannelWriter struct{ streamWriter }

func NewAnalogMultiChannelWriter(out *OutStream, autoStart bool) *AnalogMultiChannelWriter {
	return &AnalogMultiChannelWriter{newStreamWriter(out, autoStart)}
}

// WriteManySample writes data holding the same number of samples for every
// channel.
func (w *AnalogMultiChannelWriter) WriteManySample(data []float64, timeout float64) (int, error) {
	i, h, n, err := w.multi(len(data))
	if err != nil {
		return 0, err
	}
	k, err := i.WriteAnalogF64(h, n, w.AutoStart, timeout, w.Layout, data)
	return k, w.wrap(err)
}

// WriteOneSample writes one sample per channel.
func (w *AnalogMultiChannelWriter) WriteOneSample(data []float64, timeout float64) error {
	if w.VerifyArrayShape {
		if err := w.verifyChans(len(data)); err != nil {
			return err
		}
	}
	i, h, err := w.handle()
	if err != nil {
		return err
	}
	_, err = i.WriteAnalogF64(h, 1, w.AutoStart, timeout, w.Layout, data)
	return w.wrap(err)
}

// AnalogUnscaledWriter writes raw DAC codes to analog output channels.
type AnalogUnscaledWriter struct{ streamWriter }

func NewAnalogUnscaledWriter(out *OutStream, autoStart bool) *AnalogUnscaledWriter {
	return &AnalogUnscaledWriter{newStreamWriter(out, autoStart)}
}

func (w *AnalogUnscaledWriter) WriteInt16(data []int16, timeout float64) (int, error) {
	i, h, n, err := w.multi(len(data))
	if err != nil {
		return 0, err
	}
	k, err := i.WriteBinaryI16(h, n, w.AutoStart, timeout, w.Layout, data)
	return k, w.wrap(err)
}

func (w *AnalogUnscaledWriter) WriteInt32(data []int32, timeout float64) (int, error) {
	i, h, n, err := w.multi(len(data))
	if err != nil {
		return 0, err
	}
	k, err := i.WriteBinaryI32(h, n, w.AutoStart, timeout, w.Layout, data)
	return k, w.wrap(err)
}

func (w *AnalogUnscaledWriter) WriteUint16(data []uint16, timeout float64) (int, error) {
	i, h, n, err := w.multi(len(data))
	if err != nil {
		return 0, err
	}
	k, err := i.WriteBinaryU16(h, n, w.AutoStart, timeout, w.Layout, data)
	return k, w.wrap(err)
}

func (w *AnalogUnscaledWriter) WriteUint32(data []uint32, timeout float64) (int, error) {
	i, h, n, err := w.multi(len(data))
	if err != nil {
		return 0, err
	}
	k, err := i.WriteBinaryU32(h, n, w.AutoStart, timeout, w.Layout, data)
	return k, w.wrap(err)
}

// CounterWriter writes pulse specifications to one counter output channel.
type CounterWriter struct{ streamWriter }

func NewCounterWriter(out *OutStream, autoStart bool) *CounterWriter {
	return &CounterWriter{newStreamWriter(out, autoStart)}
}

func (w *CounterWriter) pair(a, b int) (interpreter.Interpreter, interpreter.TaskHandle, error) {
	if a != b {
		return nil, interpreter.TaskHandle{}, &daqerr.MismatchedArraySizesError{What: "second buffer samples", Want: a, Got: b}
	}
	return w.single()
}

func (w *CounterWriter) WriteManySamplePulseFrequency(freq, duty []float64, timeout float64) (int, error) {
	i, h, err := w.pair(len(freq), len(duty))
	if err != nil {
		return 0, err
	}
	n, err := i.WriteCtrFreq(h, len(freq), w.AutoStart, timeout, w.Layout, freq, duty)
	return n, w.wrap(err)
}

func (w *CounterWriter) WriteManySamplePulseTime(high, low []float64, timeout float64) (int, error) {
	i, h, err := w.pair(len(high), len(low))
	if err != nil {
		return 0, err
	}
	n, err := i.WriteCtrTime(h, len(high), w.AutoStart, timeout, w.Layout, high, low)
	return n, w.wrap(err)
}

func (w *CounterWriter) WriteManySamplePulseTicks(high, low []uint32, timeout float64) (int, error) {
	i, h, err := w.pair(len(high), len(low))
	if err != nil {
		return 0, err
	}
	n, err := i.WriteCtrTicks(h, len(high), w.AutoStart, timeout, w.Layout, high, low)
	return n, w.wrap(err)
}

func (w *CounterWriter) WriteOneSamplePulseFrequency(v CtrFreq, timeout float64) error {
	i, h, err := w.single()
	if err != nil {
		return err
	}
	return w.wrap(i.WriteCtrFreqScalar(h, w.AutoStart, timeout, v))
}

func (w *CounterWriter) WriteOneSamplePulseTime(v CtrTime, timeout float64) error {
	i, h, err := w.single()
	if err != nil {
		return err
	}
	return w.wrap(i.WriteCtrTimeScalar(h, w.AutoStart, timeout, v))
}

func (w *CounterWriter) WriteOneSamplePulseTicks(v CtrTick, timeout float64) error {
	i, h, err := w.single()
	if err != nil {
		return err
	}
	return w.wrap(i.WriteCtrTicksScalar(h, w.AutoStart, timeout, v))
}

// DigitalSingleChannelWriter writes to one digital output channel.
type DigitalSingleChannelWriter struct{ streamWriter }

func NewDigitalSingleChannelWriter(out *OutStream, autoStart bool) *DigitalSingleChannelWriter {
	return &DigitalSingleChannelWriter{newStreamWriter(out, autoStart)}
}

// WriteOneSampleOneLine sets the state of a single-line channel.
func (w *DigitalSingleChannelWriter) WriteOneSampleOneLine(v bool, timeout float64) error {
	if w.VerifyArrayShape {
		if err := w.verifyChans(1); err != nil {
			return err
		}
	}
	return w.writeLines([][]bool{{v}}, false, timeout)
}

// WriteOneSampleMultiLine sets every line of the channel. With
// VerifyArrayShape set, lines must hold one element per line.
func (w *DigitalSingleChannelWriter) WriteOneSampleMultiLine(lines []bool, timeout float64) error {
	if w.VerifyArrayShape {
		if err := w.verifyChans(1); err != nil {
			return err
		}
	}
	return w.writeLines([][]bool{lines}, w.VerifyArrayShape, timeout)
}

func (w *DigitalSingleChannelWriter) WriteOneSamplePort(v uint32, timeout float64) error {
	i, h, err := w.single()
	if err != nil {
		return err
	}
	return w.wrap(i.WriteDigitalScalarU32(h, w.AutoStart, timeout, v))
}

func (w *DigitalSingleChannelWriter) WriteManySamplePortUint8(data []uint8, timeout float64) (int, error) {
	i, h, err := w.single()
	if err != nil {
		return 0, err
	}
	n, err := i.WriteDigitalU8(h, len(data), w.AutoStart, timeout, w.Layout, data)
	return n, w.wrap(err)
}

func (w *DigitalSingleChannelWriter) WriteManySamplePortUint16(data []uint16, timeout float64) (int, error) {
	i, h, err := w.single()
	if err != nil {
		return 0, err
	}
	n, err := i.WriteDigitalU16(h, len(data), w.AutoStart, timeout, w.Layout, data)
	return n, w.wrap(err)
}

func (w *DigitalSingleChannelWriter) WriteManySamplePortUint32(data []uint32, timeout float64) (int, error) {
	i, h, err := w.single()
	if err != nil {
		return 0, err
	}
	n, err := i.WriteDigitalU32(h, len(data), w.AutoStart, timeout, w.Layout, data)
	return n, w.wrap(err)
}

// DigitalMultiChannelWriter writes to several digital output channels.
type DigitalMultiChannelWriter struct{ streamWriter }

func NewDigitalMultiChannelWriter(out *OutStream, autoStart bool) *DigitalMultiChannelWriter {
	return &DigitalMultiChannelWriter{newStreamWriter(out, autoStart)}
}

// WriteOneSampleOneLine sets every single-line channel, one element per
// channel.
func (w *DigitalMultiChannelWriter) WriteOneSampleOneLine(lines []bool, timeout float64) error {
	if w.VerifyArrayShape {
		if err := w.verifyChans(len(lines)); err != nil {
			return err
		}
	}
	rows := make([][]bool, len(lines))
	for c, v := range lines {
		rows[c] = []bool{v}
	}
	return w.writeLines(rows, false, timeout)
}

// WriteOneSampleMultiLine sets every line of every channel, one row per
// channel.
func (w *DigitalMultiChannelWriter) WriteOneSampleMultiLine(lines [][]bool, timeout float64) error {
	if w.VerifyArrayShape {
		if err := w.verifyChans(len(lines)); err != nil {
			return err
		}
	}
	return w.writeLines(lines, w.VerifyArrayShape, timeout)
}

func (w *DigitalMultiChannelWriter) WriteOneSamplePort(data []uint32, timeout float64) error {
	if w.VerifyArrayShape {
		if err := w.verifyChans(len(data)); err != nil {
			return err
		}
	}
	i, h, err := w.handle()
	if err != nil {
		return err
	}
	_, err = i.WriteDigitalU32(h, 1, w.AutoStart, timeout, w.Layout, data)
	return w.wrap(err)
}

func (w *DigitalMultiChannelWriter) WriteManySamplePortUint8(data []uint8, timeout float64) (int, error) {
	i, h, n, err := w.multi(len(data))
	if err != nil {
		return 0, err
	}
	k, err := i.WriteDigitalU8(h, n, w.AutoStart, timeout, w.Layout, data)
	return k, w.wrap(err)
}

func (w *DigitalMultiChannelWriter) WriteManySamplePortUint16(data []uint16, timeout float64) (int, error) {
	i, h, n, err := w.multi(len(data))
	if err != nil {
		return 0, err
	}
	k, err := i.WriteDigitalU16(h, n, w.AutoStart, timeout, w.Layout, data)
	return k, w.wrap(err)
}

func (w *DigitalMultiChannelWriter) WriteManySamplePortUint32(data []uint32, timeout float64) (int, error) {
	i, h, n, err := w.multi(len(data))
	if err != nil {
		return 0, err
	}
	k, err := i.WriteDigitalU32(h, n, w.AutoStart, timeout, w.Layout, data)
	return k, w.wrap(err)
}

func lineBytes(lines []bool) []uint8 {
	out := make([]uint8, len(lines))
	for n, v := range lines {
		if v {
			out[n] = 1
		}
	}
	return out
}

// writeLines writes one sample of lines per channel. Each row is padded to
// the task's bytes per channel; exact requires rows of that length.
func (w *streamWriter) writeLines(rows [][]bool, exact bool, timeout float64) error {
	per, err := w.out.DigitalLinesBytesPerChan()
	if err != nil {
		return err
	}
	width := int(per)
	buf := make([]uint8, len(rows)*width)
	for c, row := range rows {
		if len(row) > width || (exact && len(row) != width) {
			return &daqerr.MismatchedArraySizesError{What: fmt.Sprintf("lines in channel %d", c), Want: width, Got: len(row)}
		}
		copy(buf[c*width:], lineBytes(row))
	}
	i, h, err := w.handle()
	if err != nil {
		return err
	}
	_, err = i.WriteDigitalLines(h, 1, w.AutoStart, timeout, w.Layout, buf)
	return w.wrap(err)
}
