package daqmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
)

func TestSingleChannelReaderVerifiesChannels(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogInput, "ai0", "ai1")

	r := NewAnalogSingleChannelReader(task.InStream)
	_, err := r.ReadManySample(make([]float64, 10), 10, 1)
	var mismatch *daqerr.MismatchedArraySizesError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "channels to read", mismatch.What)
	assert.Zero(t, f.called("read f64"))

	r.VerifyArrayShape = false
	_, err = r.ReadManySample(make([]float64, 20), 10, 1)
	require.NoError(t, err)
}

func TestReaderLeavesTailUntouched(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogInput, "ai0", "ai1")
	f.readK = 2

	buf := []float64{-1, -1, -1, -1, -1, -1, -1, -1}
	r := NewAnalogMultiChannelReader(task.InStream)
	k, err := r.ReadManySample(buf, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, []float64{0, 1, -1, -1, 100, 101, -1, -1}, buf)
}

func TestMultiChannelReaderBufferSize(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogInput, "ai0", "ai1", "ai2")

	r := NewAnalogUnscaledReader(task.InStream)
	_, err := r.ReadInt32(make([]int32, 8), 3, 1)
	var mismatch *daqerr.MismatchedArraySizesError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 9, mismatch.Want)

	k, err := r.ReadInt32(make([]int32, 9), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, k)
}

func TestDigitalReaderLines(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.DigitalInput, "line0", "line1")

	lines := make([]bool, 2)
	require.NoError(t, NewDigitalMultiChannelReader(task.InStream).ReadOneSampleOneLine(lines, 1))
	assert.Equal(t, []bool{false, false}, lines)

	_, err := NewDigitalSingleChannelReader(task.InStream).ReadOneSampleOneLine(1)
	var mismatch *daqerr.MismatchedArraySizesError
	assert.ErrorAs(t, err, &mismatch)
}

func TestCounterReaderPairs(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.CounterInput, "ctr0")

	r := NewCounterReader(task.InStream)
	_, err := r.ReadManySamplePulseFrequency(make([]float64, 4), make([]float64, 3), 3, 1)
	var mismatch *daqerr.MismatchedArraySizesError
	require.ErrorAs(t, err, &mismatch)

	freq, duty := make([]float64, 4), make([]float64, 4)
	k, err := r.ReadManySamplePulseFrequency(freq, duty, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, k)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, duty)

	v, err := r.ReadOneSampleUint32(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)
}

func TestMultiChannelWriter(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogOutput, "ao0", "ao1")

	w := NewAnalogMultiChannelWriter(task.OutStream, false)
	_, err := w.WriteManySample([]float64{1, 2, 3}, 1)
	var mismatch *daqerr.MismatchedArraySizesError
	require.ErrorAs(t, err, &mismatch)

	n, err := w.WriteManySample([]float64{1, 2, 3, 4}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, f.called("write f64 2 false"))

	assert.ErrorAs(t, w.WriteOneSample([]float64{1}, 1), &mismatch)

	_, err = NewAnalogSingleChannelWriter(task.OutStream, true).WriteManySample([]float64{1}, 1)
	assert.ErrorAs(t, err, &mismatch)
}

func TestUnscaledWriterUnverified(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogOutput, "ao0")

	w := NewAnalogUnscaledWriter(task.OutStream, true)
	w.VerifyArrayShape = false
	n, err := w.WriteInt16([]int16{1, 2, 3}, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int16{1, 2, 3}, f.written[0])
}

func TestDigitalWriters(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.DigitalOutput, "port0")
	f.put(attributes.ScopeWrite, "", attributes.WriteDigitalLinesBytesPerChan, uint32(3))

	w := NewDigitalSingleChannelWriter(task.OutStream, true)
	require.NoError(t, w.WriteOneSampleMultiLine([]bool{true, false, true}, 1))
	assert.Equal(t, []uint8{1, 0, 1}, f.written[0])

	_, err := w.WriteManySamplePortUint32([]uint32{1, 2}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, f.called("write u32 2 true"))
}

func TestDigitalLineWritersPadToBytesPerChan(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.DigitalOutput, "port0")
	f.put(attributes.ScopeWrite, "", attributes.WriteDigitalLinesBytesPerChan, uint32(8))

	w := NewDigitalSingleChannelWriter(task.OutStream, false)
	err := w.WriteOneSampleMultiLine([]bool{true, false, true}, 1)
	var mismatch *daqerr.MismatchedArraySizesError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 8, mismatch.Want)
	assert.Equal(t, 0, f.called("write lines"))

	w.VerifyArrayShape = false
	require.NoError(t, w.WriteOneSampleMultiLine([]bool{true, false, true}, 1))
	assert.Equal(t, []uint8{1, 0, 1, 0, 0, 0, 0, 0}, f.written[0])
	assert.Equal(t, 1, f.called("write lines 1 false"))

	err = w.WriteOneSampleMultiLine(make([]bool, 9), 1)
	assert.ErrorAs(t, err, &mismatch)

	require.NoError(t, w.WriteOneSampleOneLine(true, 1))
	assert.Equal(t, []uint8{1, 0, 0, 0, 0, 0, 0, 0}, f.written[1])
}

func TestDigitalMultiChannelLineWriters(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.DigitalOutput, "port0", "port1")
	f.put(attributes.ScopeWrite, "", attributes.WriteDigitalLinesBytesPerChan, uint32(2))

	w := NewDigitalMultiChannelWriter(task.OutStream, false)
	require.NoError(t, w.WriteOneSampleMultiLine([][]bool{{true, false}, {false, true}}, 1))
	assert.Equal(t, []uint8{1, 0, 0, 1}, f.written[0])

	require.NoError(t, w.WriteOneSampleOneLine([]bool{true, true}, 1))
	assert.Equal(t, []uint8{1, 0, 1, 0}, f.written[1])

	err := w.WriteOneSampleMultiLine([][]bool{{true}}, 1)
	var mismatch *daqerr.MismatchedArraySizesError
	assert.ErrorAs(t, err, &mismatch)
}
