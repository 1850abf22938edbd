package native

import (
	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
)

// Multi-sample reads return the samples per channel read even when the
// driver reports an error, so a timeout still surfaces partial data.

func readArray[T any](i *Interpreter, p *proc[func(uintptr, int32, float64, uint32, *T, uint32, *int32, *uint32) int32], h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []T) (int, error) {
	f, err := p.get(i.lib)
	if err != nil {
		return 0, err
	}
	var read int32
	status := f(h.Ptr, int32(n), timeout, uint32(fill), first(buf), uint32(len(buf)), &read, nil)
	return int(read), i.check(status)
}

// fits rejects a buffer shorter than n samples per channel of width elements
// each, the amount the driver reads from it.
func fits(what string, n, chans, width int, lens ...int) error {
	want := n * chans * width
	for _, got := range lens {
		if got < want {
			return &daqerr.MismatchedArraySizesError{What: what, Want: want, Got: got}
		}
	}
	return nil
}

func (i *Interpreter) writeChans(h TaskHandle) (int, error) {
	chans, err := i.GetUint32Attribute(interpreter.TaskTarget(attributes.ScopeWrite, h), attributes.WriteNumChans)
	return int(chans), err
}

// writeFits checks the buffers of a write of n samples per channel.
func (i *Interpreter) writeFits(h TaskHandle, n, width int, lens ...int) error {
	chans, err := i.writeChans(h)
	if err != nil {
		return err
	}
	return fits("elements to write", n, chans, width, lens...)
}

func writeArray[T any](i *Interpreter, p *proc[func(uintptr, int32, uint32, float64, uint32, *T, *int32, *uint32) int32], h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []T) (int, error) {
	f, err := p.get(i.lib)
	if err != nil {
		return 0, err
	}
	if err := i.writeFits(h, n, 1, len(data)); err != nil {
		return 0, err
	}
	var written int32
	status := f(h.Ptr, int32(n), bool32(autoStart), timeout, uint32(fill), first(data), &written, nil)
	return int(written), i.check(status)
}

func readScalar[T any](i *Interpreter, p *proc[func(uintptr, float64, *T, *uint32) int32], h TaskHandle, timeout float64) (T, error) {
	var v T
	f, err := p.get(i.lib)
	if err != nil {
		return v, err
	}
	return v, i.check(f(h.Ptr, timeout, &v, nil))
}

func (i *Interpreter) ReadAnalogF64(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []float64) (int, error) {
	return readArray(i, procReadAnalogF64, h, n, timeout, fill, buf)
}

func (i *Interpreter) ReadAnalogScalarF64(h TaskHandle, timeout float64) (float64, error) {
	return readScalar(i, procReadAnalogScalarF64, h, timeout)
}

func (i *Interpreter) ReadBinaryI16(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []int16) (int, error) {
	return readArray(i, procReadBinaryI16, h, n, timeout, fill, buf)
}

func (i *Interpreter) ReadBinaryI32(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []int32) (int, error) {
	return readArray(i, procReadBinaryI32, h, n, timeout, fill, buf)
}

func (i *Interpreter) ReadBinaryU16(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint16) (int, error) {
	return readArray(i, procReadBinaryU16, h, n, timeout, fill, buf)
}

func (i *Interpreter) ReadBinaryU32(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint32) (int, error) {
	return readArray(i, procReadBinaryU32, h, n, timeout, fill, buf)
}

func (i *Interpreter) ReadCounterF64(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []float64) (int, error) {
	return readArray(i, procReadCounterF64, h, n, timeout, fill, buf)
}

func (i *Interpreter) ReadCounterU32(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint32) (int, error) {
	return readArray(i, procReadCounterU32, h, n, timeout, fill, buf)
}

func (i *Interpreter) ReadCounterScalarF64(h TaskHandle, timeout float64) (float64, error) {
	return readScalar(i, procReadCounterScalarF64, h, timeout)
}

func (i *Interpreter) ReadCounterScalarU32(h TaskHandle, timeout float64) (uint32, error) {
	return readScalar(i, procReadCounterScalarU32, h, timeout)
}

func (i *Interpreter) ReadCtrFreq(h TaskHandle, n int, timeout float64, fill constants.FillMode, freq, duty []float64) (int, error) {
	f, err := procReadCtrFreq.get(i.lib)
	if err != nil {
		return 0, err
	}
	var read int32
	status := f(h.Ptr, int32(n), timeout, uint32(fill), first(freq), first(duty), uint32(min(len(freq), len(duty))), &read, nil)
	return int(read), i.check(status)
}

func (i *Interpreter) ReadCtrTime(h TaskHandle, n int, timeout float64, fill constants.FillMode, high, low []float64) (int, error) {
	f, err := procReadCtrTime.get(i.lib)
	if err != nil {
		return 0, err
	}
	var read int32
	status := f(h.Ptr, int32(n), timeout, uint32(fill), first(high), first(low), uint32(min(len(high), len(low))), &read, nil)
	return int(read), i.check(status)
}

func (i *Interpreter) ReadCtrTicks(h TaskHandle, n int, timeout float64, fill constants.FillMode, high, low []uint32) (int, error) {
	f, err := procReadCtrTicks.get(i.lib)
	if err != nil {
		return 0, err
	}
	var read int32
	status := f(h.Ptr, int32(n), timeout, uint32(fill), first(high), first(low), uint32(min(len(high), len(low))), &read, nil)
	return int(read), i.check(status)
}

func (i *Interpreter) ReadCtrFreqScalar(h TaskHandle, timeout float64) (interpreter.CtrFreq, error) {
	f, err := procReadCtrFreqScalar.get(i.lib)
	if err != nil {
		return interpreter.CtrFreq{}, err
	}
	var v interpreter.CtrFreq
	return v, i.check(f(h.Ptr, timeout, &v.Freq, &v.DutyCycle, nil))
}

func (i *Interpreter) ReadCtrTimeScalar(h TaskHandle, timeout float64) (interpreter.CtrTime, error) {
	f, err := procReadCtrTimeScalar.get(i.lib)
	if err != nil {
		return interpreter.CtrTime{}, err
	}
	var v interpreter.CtrTime
	return v, i.check(f(h.Ptr, timeout, &v.HighTime, &v.LowTime, nil))
}

func (i *Interpreter) ReadCtrTicksScalar(h TaskHandle, timeout float64) (interpreter.CtrTick, error) {
	f, err := procReadCtrTicksScalar.get(i.lib)
	if err != nil {
		return interpreter.CtrTick{}, err
	}
	var v interpreter.CtrTick
	return v, i.check(f(h.Ptr, timeout, &v.HighTick, &v.LowTick, nil))
}

func (i *Interpreter) ReadDigitalLines(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint8) (int, int, error) {
	f, err := procReadDigitalLines.get(i.lib)
	if err != nil {
		return 0, 0, err
	}
	var read, bytesPerSamp int32
	status := f(h.Ptr, int32(n), timeout, uint32(fill), first(buf), uint32(len(buf)), &read, &bytesPerSamp, nil)
	return int(read), int(bytesPerSamp), i.check(status)
}

func (i *Interpreter) ReadDigitalU8(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint8) (int, error) {
	return readArray(i, procReadDigitalU8, h, n, timeout, fill, buf)
}

func (i *Interpreter) ReadDigitalU16(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint16) (int, error) {
	return readArray(i, procReadDigitalU16, h, n, timeout, fill, buf)
}

func (i *Interpreter) ReadDigitalU32(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint32) (int, error) {
	return readArray(i, procReadDigitalU32, h, n, timeout, fill, buf)
}

func (i *Interpreter) ReadDigitalScalarU32(h TaskHandle, timeout float64) (uint32, error) {
	return readScalar(i, procReadDigitalScalarU32, h, timeout)
}

func (i *Interpreter) ReadRaw(h TaskHandle, n int, timeout float64, buf []byte) (int, int, error) {
	f, err := procReadRaw.get(i.lib)
	if err != nil {
		return 0, 0, err
	}
	var read, bytesPerSamp int32
	status := f(h.Ptr, int32(n), timeout, first(buf), uint32(len(buf)), &read, &bytesPerSamp, nil)
	return int(read), int(bytesPerSamp), i.check(status)
}

func (i *Interpreter) WriteAnalogF64(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []float64) (int, error) {
	return writeArray(i, procWriteAnalogF64, h, n, autoStart, timeout, fill, data)
}

func (i *Interpreter) WriteAnalogScalarF64(h TaskHandle, autoStart bool, timeout float64, v float64) error {
	f, err := procWriteAnalogScalarF64.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, bool32(autoStart), timeout, v, nil))
}

func (i *Interpreter) WriteBinaryI16(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []int16) (int, error) {
	return writeArray(i, procWriteBinaryI16, h, n, autoStart, timeout, fill, data)
}

func (i *Interpreter) WriteBinaryI32(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []int32) (int, error) {
	return writeArray(i, procWriteBinaryI32, h, n, autoStart, timeout, fill, data)
}

func (i *Interpreter) WriteBinaryU16(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint16) (int, error) {
	return writeArray(i, procWriteBinaryU16, h, n, autoStart, timeout, fill, data)
}

func (i *Interpreter) WriteBinaryU32(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint32) (int, error) {
	return writeArray(i, procWriteBinaryU32, h, n, autoStart, timeout, fill, data)
}

func (i *Interpreter) WriteCtrFreq(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, freq, duty []float64) (int, error) {
	f, err := procWriteCtrFreq.get(i.lib)
	if err != nil {
		return 0, err
	}
	if err := i.writeFits(h, n, 1, len(freq), len(duty)); err != nil {
		return 0, err
	}
	var written int32
	status := f(h.Ptr, int32(n), bool32(autoStart), timeout, uint32(fill), first(freq), first(duty), &written, nil)
	return int(written), i.check(status)
}

func (i *Interpreter) WriteCtrTime(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, high, low []float64) (int, error) {
	f, err := procWriteCtrTime.get(i.lib)
	if err != nil {
		return 0, err
	}
	if err := i.writeFits(h, n, 1, len(high), len(low)); err != nil {
		return 0, err
	}
	var written int32
	status := f(h.Ptr, int32(n), bool32(autoStart), timeout, uint32(fill), first(high), first(low), &written, nil)
	return int(written), i.check(status)
}

func (i *Interpreter) WriteCtrTicks(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, high, low []uint32) (int, error) {
	f, err := procWriteCtrTicks.get(i.lib)
	if err != nil {
		return 0, err
	}
	if err := i.writeFits(h, n, 1, len(high), len(low)); err != nil {
		return 0, err
	}
	var written int32
	status := f(h.Ptr, int32(n), bool32(autoStart), timeout, uint32(fill), first(high), first(low), &written, nil)
	return int(written), i.check(status)
}

func (i *Interpreter) WriteCtrFreqScalar(h TaskHandle, autoStart bool, timeout float64, v interpreter.CtrFreq) error {
	f, err := procWriteCtrFreqScalar.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, bool32(autoStart), timeout, v.Freq, v.DutyCycle, nil))
}

func (i *Interpreter) WriteCtrTimeScalar(h TaskHandle, autoStart bool, timeout float64, v interpreter.CtrTime) error {
	f, err := procWriteCtrTimeScalar.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, bool32(autoStart), timeout, v.HighTime, v.LowTime, nil))
}

func (i *Interpreter) WriteCtrTicksScalar(h TaskHandle, autoStart bool, timeout float64, v interpreter.CtrTick) error {
	f, err := procWriteCtrTicksScalar.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, bool32(autoStart), timeout, v.HighTick, v.LowTick, nil))
}

func (i *Interpreter) WriteDigitalLines(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint8) (int, error) {
	f, err := procWriteDigitalLines.get(i.lib)
	if err != nil {
		return 0, err
	}
	lines, err := i.GetUint32Attribute(interpreter.TaskTarget(attributes.ScopeWrite, h), attributes.WriteDigitalLinesBytesPerChan)
	if err != nil {
		return 0, err
	}
	if err := i.writeFits(h, n, int(lines), len(data)); err != nil {
		return 0, err
	}
	var written int32
	status := f(h.Ptr, int32(n), bool32(autoStart), timeout, uint32(fill), first(data), &written, nil)
	return int(written), i.check(status)
}

func (i *Interpreter) WriteDigitalU8(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint8) (int, error) {
	return writeArray(i, procWriteDigitalU8, h, n, autoStart, timeout, fill, data)
}

func (i *Interpreter) WriteDigitalU16(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint16) (int, error) {
	return writeArray(i, procWriteDigitalU16, h, n, autoStart, timeout, fill, data)
}

func (i *Interpreter) WriteDigitalU32(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint32) (int, error) {
	return writeArray(i, procWriteDigitalU32, h, n, autoStart, timeout, fill, data)
}

func (i *Interpreter) WriteDigitalScalarU32(h TaskHandle, autoStart bool, timeout float64, v uint32) error {
	f, err := procWriteDigitalScalarU32.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, bool32(autoStart), timeout, v, nil))
}

func (i *Interpreter) WriteRaw(h TaskHandle, n int, autoStart bool, timeout float64, data []byte) (int, error) {
	f, err := procWriteRaw.get(i.lib)
	if err != nil {
		return 0, err
	}
	var written int32
	status := f(h.Ptr, int32(n), bool32(autoStart), timeout, first(data), &written, nil)
	return int(written), i.check(status)
}
