package daqmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
)

func TestCompact(t *testing.T) {
	buf := []int{0, 1, 9, 9, 10, 11, 9, 9, 20, 21, 9, 9}
	assert.Equal(t, []int{0, 1, 10, 11, 20, 21}, compact(buf, 3, 4, 2))

	full := []int{1, 2, 3, 4}
	assert.Equal(t, full, compact(full, 2, 2, 2))
	assert.Empty(t, compact([]int{9, 9}, 2, 1, 0))
}

func TestReadAnalogShortRead(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogInput, "ai0", "ai1")
	f.readK = 3

	data, err := task.Read(5, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, data.Samples)
	assert.Equal(t, []string{"ai0", "ai1"}, data.Channels)
	assert.Equal(t, []float64{0, 1, 2, 100, 101, 102}, data.Float64)
	assert.Equal(t, [][]float64{{0, 1, 2}, {100, 101, 102}}, PerChannel(data, data.Float64))
}

func TestReadAnalogScalar(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogInput, "ai0")

	data, err := task.Read(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4.5}, data.Float64)
	assert.Equal(t, 1, f.called("read scalar f64"))
}

func TestReadAllAvailable(t *testing.T) {
	cases := []struct {
		name    string
		mode    constants.AcquisitionType
		readAll bool
		want    string
	}{
		{"finite waits for the configured total", constants.Finite, false, "read f64 50"},
		{"finite with read all available", constants.Finite, true, "read f64 7"},
		{"continuous reads what is buffered", constants.Continuous, false, "read f64 7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFake()
			task := newFakeTask(t, f)
			f.addChannels(constants.AnalogInput, "ai0", "ai1")
			require.NoError(t, task.Timing.CfgSampClkTiming(1000, "", constants.Rising, tc.mode, 50))
			f.put(attributes.ScopeRead, "", attributes.ReadReadAllAvailSamp, tc.readAll)
			f.put(attributes.ScopeRead, "", attributes.ReadAvailSampPerChan, uint32(7))

			_, err := task.Read(ReadAllAvailable, 1)
			require.NoError(t, err)
			assert.Equal(t, 1, f.called(tc.want))
		})
	}
}

func TestReadRejectsNegativeCount(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogInput, "ai0")

	_, err := task.Read(-2, 1)
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)
}

func TestReadDigitalLines(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.DigitalInput, "line0", "line1")
	f.put(attributes.ScopeRead, "", attributes.ReadDigitalLinesBytesPerChan, uint32(1))

	data, err := task.Read(2, 1)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, data.Bool)
}

func TestReadDigitalPort(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.DigitalInput, "port0")
	f.put(attributes.ScopeRead, "", attributes.ReadDigitalLinesBytesPerChan, uint32(8))

	data, err := task.Read(3, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, data.Uint32)
}

func TestReadCounterByMeasurement(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.CounterInput, "ctr0")

	f.put(attributes.ScopeChannel, "ctr0", attributes.CIMeasType, int32(constants.CICountEdges))
	data, err := task.Read(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint32{42}, data.Uint32)

	f.put(attributes.ScopeChannel, "ctr0", attributes.CIMeasType, int32(constants.CIPulseFrequency))
	data, err = task.Read(2, 1)
	require.NoError(t, err)
	assert.Equal(t, []CtrFreq{{Freq: 0, DutyCycle: 0.5}, {Freq: 1, DutyCycle: 0.5}}, data.CtrFreq)
}

func TestReadFromOutputTask(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogOutput, "ao0")

	_, err := task.Read(1, 1)
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)

	_, err = task.ReadWaveforms(1, 1)
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)
}
