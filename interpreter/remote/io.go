package remote

import (
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/internal/wire"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/waveform"
)

// The server returns every read array at the requested size. Only the
// positions holding samples are copied into the caller's buffer: the first k
// samples of each channel's region for group-by-channel, the first k scans
// for group-by-scan-number. width is the number of elements per sample.
func copyValid[S, D any](dst []D, src []S, n, k int, fill constants.FillMode, width int, conv func(S) D) {
	put := func(lo, hi int) {
		hi = min(hi, len(dst), len(src))
		for j := lo; j < hi; j++ {
			dst[j] = conv(src[j])
		}
	}
	if n <= 0 || k >= n {
		put(0, len(src))
		return
	}
	stride := n * width
	chans := len(dst) / stride
	if fill == constants.GroupByChannel {
		for c := 0; c < chans; c++ {
			put(c*stride, c*stride+k*width)
		}
		return
	}
	put(0, k*width*chans)
}

type integer interface {
	~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
}

func as[D, S integer](s S) D { return D(s) }

func same[T any](v T) T { return v }

func widen[D, S integer](xs []S) []D {
	out := make([]D, len(xs))
	for i, x := range xs {
		out[i] = D(x)
	}
	return out
}

func readRequest(h TaskHandle, n int, timeout float64, fill constants.FillMode, size int) func(wire.Message) {
	return func(req wire.Message) {
		req.SetSession("task", h.Session).
			Set("num_samps_per_chan", int32(n)).
			Set("timeout", timeout).
			Set("fill_mode_raw", int32(fill)).
			Set("array_size_in_samps", uint32(size))
	}
}

// readArray reads into buf and returns the samples per channel read, which
// is meaningful even when err reports a timeout.
func readArray[S, D any](i *Interpreter, method string, h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []D, get func(wire.Message) []S, conv func(S) D) (int, error) {
	resp, err := i.call(method, readRequest(h, n, timeout, fill, len(buf)))
	if resp.Message == nil {
		return 0, err
	}
	k := int(resp.Int32("samps_per_chan_read"))
	copyValid(buf, get(resp), n, k, fill, 1, conv)
	return k, err
}

func readArrayField(name string) func(wire.Message) []float64 {
	return func(m wire.Message) []float64 { return m.Float64s(name) }
}

func readUint32Field(name string) func(wire.Message) []uint32 {
	return func(m wire.Message) []uint32 { return m.Uint32s(name) }
}

func int32s(m wire.Message) []int32 { return m.Int32s("read_array") }

func scalar[T any](i *Interpreter, method string, h TaskHandle, timeout float64, get func(wire.Message) T) (T, error) {
	var zero T
	resp, err := i.call(method, func(req wire.Message) {
		req.SetSession("task", h.Session).Set("timeout", timeout)
	})
	if err != nil {
		return zero, err
	}
	return get(resp), nil
}

func (i *Interpreter) ReadAnalogF64(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []float64) (int, error) {
	return readArray(i, "ReadAnalogF64", h, n, timeout, fill, buf, readArrayField("read_array"), same[float64])
}

func (i *Interpreter) ReadAnalogScalarF64(h TaskHandle, timeout float64) (float64, error) {
	return scalar(i, "ReadAnalogScalarF64", h, timeout, func(m wire.Message) float64 { return m.Float64("value") })
}

func (i *Interpreter) ReadBinaryI16(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []int16) (int, error) {
	return readArray(i, "ReadBinaryI16", h, n, timeout, fill, buf, int32s, as[int16, int32])
}

func (i *Interpreter) ReadBinaryI32(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []int32) (int, error) {
	return readArray(i, "ReadBinaryI32", h, n, timeout, fill, buf, int32s, same[int32])
}

func (i *Interpreter) ReadBinaryU16(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint16) (int, error) {
	return readArray(i, "ReadBinaryU16", h, n, timeout, fill, buf, readUint32Field("read_array"), as[uint16, uint32])
}

func (i *Interpreter) ReadBinaryU32(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint32) (int, error) {
	return readArray(i, "ReadBinaryU32", h, n, timeout, fill, buf, readUint32Field("read_array"), same[uint32])
}

func (i *Interpreter) ReadCounterF64(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []float64) (int, error) {
	return readArray(i, "ReadCounterF64Ex", h, n, timeout, fill, buf, readArrayField("read_array"), same[float64])
}

func (i *Interpreter) ReadCounterU32(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint32) (int, error) {
	return readArray(i, "ReadCounterU32Ex", h, n, timeout, fill, buf, readUint32Field("read_array"), same[uint32])
}

func (i *Interpreter) ReadCounterScalarF64(h TaskHandle, timeout float64) (float64, error) {
	return scalar(i, "ReadCounterScalarF64", h, timeout, func(m wire.Message) float64 { return m.Float64("value") })
}

func (i *Interpreter) ReadCounterScalarU32(h TaskHandle, timeout float64) (uint32, error) {
	return scalar(i, "ReadCounterScalarU32", h, timeout, func(m wire.Message) uint32 { return m.Uint32("value") })
}

// readPair reads a counter pulse stream into two parallel buffers.
func readPair[T any](i *Interpreter, method string, h TaskHandle, n int, timeout float64, fill constants.FillMode, a, b []T, get func(wire.Message) ([]T, []T)) (int, error) {
	size := min(len(a), len(b))
	resp, err := i.call(method, func(req wire.Message) {
		req.SetSession("task", h.Session).
			Set("num_samps_per_chan", int32(n)).
			Set("timeout", timeout).
			Set("interleaved_raw", int32(fill)).
			Set("array_size_in_samps", uint32(size))
	})
	if resp.Message == nil {
		return 0, err
	}
	k := int(resp.Int32("samps_per_chan_read"))
	ra, rb := get(resp)
	copyValid(a[:size], ra, n, k, fill, 1, same[T])
	copyValid(b[:size], rb, n, k, fill, 1, same[T])
	return k, err
}

func (i *Interpreter) ReadCtrFreq(h TaskHandle, n int, timeout float64, fill constants.FillMode, freq, duty []float64) (int, error) {
	return readPair(i, "ReadCtrFreq", h, n, timeout, fill, freq, duty, func(m wire.Message) ([]float64, []float64) {
		return m.Float64s("read_array_frequency"), m.Float64s("read_array_duty_cycle")
	})
}

func (i *Interpreter) ReadCtrTime(h TaskHandle, n int, timeout float64, fill constants.FillMode, high, low []float64) (int, error) {
	return readPair(i, "ReadCtrTime", h, n, timeout, fill, high, low, func(m wire.Message) ([]float64, []float64) {
		return m.Float64s("read_array_high_time"), m.Float64s("read_array_low_time")
	})
}

func (i *Interpreter) ReadCtrTicks(h TaskHandle, n int, timeout float64, fill constants.FillMode, high, low []uint32) (int, error) {
	return readPair(i, "ReadCtrTicks", h, n, timeout, fill, high, low, func(m wire.Message) ([]uint32, []uint32) {
		return m.Uint32s("read_array_high_ticks"), m.Uint32s("read_array_low_ticks")
	})
}

func (i *Interpreter) ReadCtrFreqScalar(h TaskHandle, timeout float64) (interpreter.CtrFreq, error) {
	return scalar(i, "ReadCtrFreqScalar", h, timeout, func(m wire.Message) interpreter.CtrFreq {
		return interpreter.CtrFreq{Freq: m.Float64("frequency"), DutyCycle: m.Float64("duty_cycle")}
	})
}

func (i *Interpreter) ReadCtrTimeScalar(h TaskHandle, timeout float64) (interpreter.CtrTime, error) {
	return scalar(i, "ReadCtrTimeScalar", h, timeout, func(m wire.Message) interpreter.CtrTime {
		return interpreter.CtrTime{HighTime: m.Float64("high_time"), LowTime: m.Float64("low_time")}
	})
}

func (i *Interpreter) ReadCtrTicksScalar(h TaskHandle, timeout float64) (interpreter.CtrTick, error) {
	return scalar(i, "ReadCtrTicksScalar", h, timeout, func(m wire.Message) interpreter.CtrTick {
		return interpreter.CtrTick{HighTick: m.Uint32("high_ticks"), LowTick: m.Uint32("low_ticks")}
	})
}

func (i *Interpreter) ReadDigitalLines(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint8) (int, int, error) {
	resp, err := i.call("ReadDigitalLines", func(req wire.Message) {
		req.SetSession("task", h.Session).
			Set("num_samps_per_chan", int32(n)).
			Set("timeout", timeout).
			Set("fill_mode_raw", int32(fill)).
			Set("array_size_in_bytes", uint32(len(buf)))
	})
	if resp.Message == nil {
		return 0, 0, err
	}
	k := int(resp.Int32("samps_per_chan_read"))
	width := max(int(resp.Int32("num_bytes_per_samp")), 1)
	copyValid(buf, resp.Bytes("read_array"), n, k, fill, width, same[uint8])
	return k, width, err
}

func (i *Interpreter) ReadDigitalU8(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint8) (int, error) {
	return readArray(i, "ReadDigitalU8", h, n, timeout, fill, buf, func(m wire.Message) []byte { return m.Bytes("read_array") }, same[uint8])
}

func (i *Interpreter) ReadDigitalU16(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint16) (int, error) {
	return readArray(i, "ReadDigitalU16", h, n, timeout, fill, buf, readUint32Field("read_array"), as[uint16, uint32])
}

func (i *Interpreter) ReadDigitalU32(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint32) (int, error) {
	return readArray(i, "ReadDigitalU32", h, n, timeout, fill, buf, readUint32Field("read_array"), same[uint32])
}

func (i *Interpreter) ReadDigitalScalarU32(h TaskHandle, timeout float64) (uint32, error) {
	return scalar(i, "ReadDigitalScalarU32", h, timeout, func(m wire.Message) uint32 { return m.Uint32("value") })
}

func (i *Interpreter) ReadRaw(h TaskHandle, n int, timeout float64, buf []byte) (int, int, error) {
	resp, err := i.call("ReadRaw", func(req wire.Message) {
		req.SetSession("task", h.Session).
			Set("num_samps_per_chan", int32(n)).
			Set("timeout", timeout).
			Set("array_size_in_bytes", uint32(len(buf)))
	})
	if resp.Message == nil {
		return 0, 0, err
	}
	copy(buf, resp.Bytes("read_array"))
	return int(resp.Int32("samps_read")), int(resp.Int32("num_bytes_per_samp")), err
}

func (i *Interpreter) ReadAnalogWaveforms(TaskHandle, int, float64, []*waveform.Analog, waveform.ReallocationPolicy) (int, error) {
	return 0, interpreter.NotSupported("analog waveform reads", "gRPC")
}

func (i *Interpreter) ReadDigitalWaveforms(TaskHandle, int, float64, []*waveform.Digital, waveform.ReallocationPolicy) (int, error) {
	return 0, interpreter.NotSupported("digital waveform reads", "gRPC")
}

// Writes.

func (i *Interpreter) write(method, writtenField string, h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data func(wire.Message)) (int, error) {
	resp, err := i.call(method, func(req wire.Message) {
		req.SetSession("task", h.Session).
			Set("num_samps_per_chan", int32(n)).
			Set("auto_start", autoStart).
			Set("timeout", timeout).
			Set("data_layout_raw", int32(fill))
		data(req)
	})
	if resp.Message == nil {
		return 0, err
	}
	return int(resp.Int32(writtenField)), err
}

func writeArray(v any) func(wire.Message) {
	return func(req wire.Message) { req.Set("write_array", v) }
}

func (i *Interpreter) WriteAnalogF64(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []float64) (int, error) {
	return i.write("WriteAnalogF64", "samps_per_chan_written", h, n, autoStart, timeout, fill, writeArray(data))
}

func (i *Interpreter) WriteAnalogScalarF64(h TaskHandle, autoStart bool, timeout float64, v float64) error {
	return i.writeScalar("WriteAnalogScalarF64", h, autoStart, timeout, func(req wire.Message) { req.Set("value", v) })
}

func (i *Interpreter) WriteBinaryI16(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []int16) (int, error) {
	return i.write("WriteBinaryI16", "samps_per_chan_written", h, n, autoStart, timeout, fill, writeArray(widen[int32](data)))
}

func (i *Interpreter) WriteBinaryI32(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []int32) (int, error) {
	return i.write("WriteBinaryI32", "samps_per_chan_written", h, n, autoStart, timeout, fill, writeArray(data))
}

func (i *Interpreter) WriteBinaryU16(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint16) (int, error) {
	return i.write("WriteBinaryU16", "samps_per_chan_written", h, n, autoStart, timeout, fill, writeArray(widen[uint32](data)))
}

func (i *Interpreter) WriteBinaryU32(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint32) (int, error) {
	return i.write("WriteBinaryU32", "samps_per_chan_written", h, n, autoStart, timeout, fill, writeArray(data))
}

func (i *Interpreter) WriteCtrFreq(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, freq, duty []float64) (int, error) {
	return i.write("WriteCtrFreq", "num_samps_per_chan_written", h, n, autoStart, timeout, fill, func(req wire.Message) {
		req.Set("frequency", freq).Set("duty_cycle", duty)
	})
}

func (i *Interpreter) WriteCtrTime(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, high, low []float64) (int, error) {
	return i.write("WriteCtrTime", "num_samps_per_chan_written", h, n, autoStart, timeout, fill, func(req wire.Message) {
		req.Set("high_time", high).Set("low_time", low)
	})
}

func (i *Interpreter) WriteCtrTicks(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, high, low []uint32) (int, error) {
	return i.write("WriteCtrTicks", "num_samps_per_chan_written", h, n, autoStart, timeout, fill, func(req wire.Message) {
		req.Set("high_ticks", high).Set("low_ticks", low)
	})
}

func (i *Interpreter) writeScalar(method string, h TaskHandle, autoStart bool, timeout float64, value func(wire.Message)) error {
	_, err := i.call(method, func(req wire.Message) {
		req.SetSession("task", h.Session).Set("auto_start", autoStart).Set("timeout", timeout)
		value(req)
	})
	return err
}

func (i *Interpreter) WriteCtrFreqScalar(h TaskHandle, autoStart bool, timeout float64, v interpreter.CtrFreq) error {
	return i.writeScalar("WriteCtrFreqScalar", h, autoStart, timeout, func(req wire.Message) {
		req.Set("frequency", v.Freq).Set("duty_cycle", v.DutyCycle)
	})
}

func (i *Interpreter) WriteCtrTimeScalar(h TaskHandle, autoStart bool, timeout float64, v interpreter.CtrTime) error {
	return i.writeScalar("WriteCtrTimeScalar", h, autoStart, timeout, func(req wire.Message) {
		req.Set("high_time", v.HighTime).Set("low_time", v.LowTime)
	})
}

func (i *Interpreter) WriteCtrTicksScalar(h TaskHandle, autoStart bool, timeout float64, v interpreter.CtrTick) error {
	return i.writeScalar("WriteCtrTicksScalar", h, autoStart, timeout, func(req wire.Message) {
		req.Set("high_ticks", v.HighTick).Set("low_ticks", v.LowTick)
	})
}

func (i *Interpreter) WriteDigitalLines(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint8) (int, error) {
	return i.write("WriteDigitalLines", "samps_per_chan_written", h, n, autoStart, timeout, fill, writeArray(data))
}

func (i *Interpreter) WriteDigitalU8(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint8) (int, error) {
	return i.write("WriteDigitalU8", "samps_per_chan_written", h, n, autoStart, timeout, fill, writeArray(data))
}

func (i *Interpreter) WriteDigitalU16(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint16) (int, error) {
	return i.write("WriteDigitalU16", "samps_per_chan_written", h, n, autoStart, timeout, fill, writeArray(widen[uint32](data)))
}

func (i *Interpreter) WriteDigitalU32(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint32) (int, error) {
	return i.write("WriteDigitalU32", "samps_per_chan_written", h, n, autoStart, timeout, fill, writeArray(data))
}

func (i *Interpreter) WriteDigitalScalarU32(h TaskHandle, autoStart bool, timeout float64, v uint32) error {
	return i.writeScalar("WriteDigitalScalarU32", h, autoStart, timeout, func(req wire.Message) { req.Set("value", v) })
}

func (i *Interpreter) WriteRaw(h TaskHandle, n int, autoStart bool, timeout float64, data []byte) (int, error) {
	resp, err := i.call("WriteRaw", func(req wire.Message) {
		req.SetSession("task", h.Session).
			Set("num_samps", int32(n)).
			Set("auto_start", autoStart).
			Set("timeout", timeout).
			Set("write_array", data)
	})
	if resp.Message == nil {
		return 0, err
	}
	return int(resp.Int32("samps_per_chan_written")), err
}

func (i *Interpreter) WriteAnalogWaveforms(TaskHandle, bool, float64, []*waveform.Analog) (int, error) {
	return 0, interpreter.NotSupported("analog waveform writes", "gRPC")
}

func (i *Interpreter) WriteDigitalWaveforms(TaskHandle, bool, float64, []*waveform.Digital) (int, error) {
	return 0, interpreter.NotSupported("digital waveform writes", "gRPC")
}
