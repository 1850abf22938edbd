package daqmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/waveform"
)

func TestLayout(t *testing.T) {
	s, ok, err := layout[float64](1.5, 1)
	require.True(t, ok)
	require.NoError(t, err)
	assert.True(t, s.scalar)
	assert.Equal(t, 1, s.perChan)

	s, ok, err = layout[float64]([]float64{1, 2, 3}, 1)
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, 3, s.perChan)

	s, ok, err = layout[float64]([]float64{1, 2}, 2)
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, 1, s.perChan, "a flat slice holds one sample per channel")

	s, ok, err = layout[float64]([][]float64{{1, 2}, {3, 4}}, 2)
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, s.flat)
	assert.Equal(t, 2, s.perChan)

	_, ok, _ = layout[float64]([]int{1}, 1)
	assert.False(t, ok)
}

func TestLayoutMismatch(t *testing.T) {
	var mismatch *daqerr.MismatchedArraySizesError

	_, _, err := layout[float64](1.0, 2)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Want)

	_, _, err = layout[float64]([]float64{1, 2, 3}, 2)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.Got)

	_, _, err = layout[float64]([][]float64{{1, 2}}, 2)
	assert.ErrorAs(t, err, &mismatch)

	_, _, err = layout[float64]([][]float64{{1, 2}, {3}}, 2)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "samples in channel 1", mismatch.What)
}

func TestAutoStartResolve(t *testing.T) {
	assert.True(t, AutoStartUnset.resolve(1))
	assert.False(t, AutoStartUnset.resolve(10))
	assert.True(t, AutoStartTrue.resolve(10))
	assert.False(t, AutoStartFalse.resolve(1))
}

func TestWriteAnalog(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogOutput, "ao0", "ao1")

	n, err := task.Write([][]float64{{1, 2, 3}, {4, 5, 6}}, AutoStartUnset, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, f.called("write f64 3 false"))
	assert.Equal(t, []any{[]float64{1, 2, 3, 4, 5, 6}}, f.written)

	_, err = task.Write([]float64{1, 2}, AutoStartUnset, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, f.called("write f64 1 true"))

	_, err = task.Write([]int{1, 2}, AutoStartUnset, 1)
	assert.ErrorIs(t, err, daqerr.ErrInvalidType)

	_, err = task.Write([][]float64{{1}, {2, 3}}, AutoStartUnset, 1)
	var mismatch *daqerr.MismatchedArraySizesError
	assert.ErrorAs(t, err, &mismatch)
}

func TestWriteAnalogScalar(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogOutput, "ao0")

	n, err := task.Write(2.5, AutoStartFalse, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, f.called("write scalar f64 false"))
}

func TestWriteDigital(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.DigitalOutput, "line0", "line1")

	_, err := task.Write([]bool{true, false}, AutoStartUnset, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 0}, f.written[0])

	_, err = task.Write([][]uint16{{1, 2}, {3, 4}}, AutoStartTrue, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, f.called("write u16 2 true"))

	_, err = task.Write([]float64{1, 2}, AutoStartUnset, 1)
	assert.ErrorIs(t, err, daqerr.ErrInvalidType)
}

func TestWriteBoolsToMultiLineChannel(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.DigitalOutput, "port0")
	f.put(attributes.ScopeWrite, "", attributes.WriteDigitalLinesBytesPerChan, uint32(8))

	n, err := task.Write([]bool{true, false, true}, AutoStartFalse, 1)
	assert.ErrorIs(t, err, daqerr.ErrInvalidType)
	assert.Zero(t, n)
	assert.Equal(t, 0, f.called("write lines"))

	n, err = task.Write([]uint32{5}, AutoStartFalse, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, f.called("write u32 1 false"))
}

func TestWriteCounter(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.CounterOutput, "ctr0")

	n, err := task.Write([]CtrFreq{{Freq: 10, DutyCycle: 0.5}, {Freq: 20, DutyCycle: 0.25}}, AutoStartUnset, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, [2][]float64{{10, 20}, {0.5, 0.25}}, f.written[0])
}

func TestWriteInputTask(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogInput, "ai0")

	_, err := task.Write(1.0, AutoStartUnset, 1)
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)
}

func TestWriteWaveformsChecksShape(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogOutput, "ao0", "ao1")

	var mismatch *daqerr.MismatchedArraySizesError
	_, err := task.WriteWaveforms([]*waveform.Analog{waveform.NewAnalog(4)}, AutoStartUnset, 1)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Want)

	_, err = task.WriteDigitalWaveforms(nil, AutoStartUnset, 1)
	assert.ErrorIs(t, err, daqerr.ErrInvalidType)
}
