package daqmx

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
)

func TestChannelIdentity(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	other := newFakeTask(t, f)

	a := newChannel(task.core, "ai0:2", constants.AnalogInput)
	b := newChannel(task.core, "ai2,ai0,ai1", constants.AnalogInput)

	assert.True(t, a.Equal(b), "order does not matter")
	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a.Equal(newChannel(other.core, "ai0:2", constants.AnalogInput)), "different tasks")
	assert.False(t, a.Equal(newChannel(task.core, "ai0:1", constants.AnalogInput)))

	seen := map[ChannelKey]bool{a.Key(): true}
	assert.True(t, seen[b.Key()])
}

func TestChannelMembers(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	c := newChannel(task.core, "ai0:3", constants.AnalogInput)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"ai0", "ai1", "ai2", "ai3"}, c.Names())

	second, err := c.At(1)
	require.NoError(t, err)
	assert.Equal(t, "ai1", second.Name())
	assert.Equal(t, constants.AnalogInput, second.Kind())

	_, err = c.At(4)
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)

	assert.Equal(t, []string{"ai3", "ai2", "ai1", "ai0"}, c.Reversed().Names())

	assert.True(t, c.Contains(second))
	assert.False(t, second.Contains(c))
	assert.Equal(t, "Channel(name=ai0:3)", c.String())
}

func TestChannelUnion(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	other := newFakeTask(t, f)

	ai := newChannel(task.core, "ai0", constants.AnalogInput)
	ai2 := newChannel(task.core, "ai1", constants.AnalogInput)
	ao := newChannel(task.core, "ao0", constants.AnalogOutput)

	u, err := ai.Union(ai2)
	require.NoError(t, err)
	assert.Equal(t, "ai0:1", u.Name())
	assert.Equal(t, constants.AnalogInput, u.Kind())

	mixed, err := ai.Union(ao)
	require.NoError(t, err)
	assert.Equal(t, constants.ChannelType(0), mixed.Kind())

	_, err = ai.Union(newChannel(other.core, "ai1", constants.AnalogInput))
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)
}

func TestChannelOutlivesTask(t *testing.T) {
	f := newFake()
	core := &taskCore{taskShared: &taskShared{interp: f, h: interpreter.TaskHandle{Ptr: 9}, name: "gone"}}
	c := newChannel(core, "ai0", constants.AnalogInput)

	_, err := c.Descr()
	assert.Error(t, err)

	core = nil
	runtime.GC()

	_, err = c.Descr()
	assert.ErrorIs(t, err, daqerr.ErrTaskReleased)
	assert.Equal(t, "", c.taskName())
}

func TestVirtualName(t *testing.T) {
	cases := []struct {
		physical, name, want string
	}{
		{"Dev1/ai0", "", "Dev1/ai0"},
		{"Dev1/ai0:3", "", "Dev1/ai0:3"},
		{"Dev1/ai0", "Pressure", "Pressure"},
		{"Dev1/ai0:3", "Pressure", "Pressure0:3"},
		{"Dev1/ai0,Dev1/ai4", "Temp", "Temp0:1"},
	}
	for _, tc := range cases {
		got, err := virtualName(tc.physical, tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s as %q", tc.physical, tc.name)
	}
}

func TestCollectionsFilterByType(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogInput, "ai0", "ai1")
	f.addChannels(constants.AnalogOutput, "ao0")

	names, err := task.AIChannels.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"ai0", "ai1"}, names)

	n, err := task.AOChannels.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := task.AIChannels.All()
	require.NoError(t, err)
	assert.Equal(t, "ai0:1", all.Name())

	first, err := task.AIChannels.At(0)
	require.NoError(t, err)
	assert.Equal(t, "ai0", first.Name())

	_, err = task.AIChannels.ByName("ao0")
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)

	byName, err := task.AIChannels.ByName("ai1")
	require.NoError(t, err)
	assert.Equal(t, constants.AnalogInput, byName.Kind())
}

func TestAddChannelNames(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)

	ai, err := task.AIChannels.AddVoltageChan(AIVoltageChan{PhysicalChannel: "Dev1/ai0:1", Name: "V"})
	require.NoError(t, err)
	assert.Equal(t, "V0:1", ai.Name())
	assert.Equal(t, 1, f.called("ai voltage Dev1/ai0:1"))

	do, err := task.DOChannels.AddChan(DigitalChan{Lines: "Dev1/port0/line0:7", Grouping: constants.ChanForAllLines})
	require.NoError(t, err)
	assert.Equal(t, "Dev1/port0/line0:7", do.Name())
}

func TestChannelAttributes(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogInput, "ai0")
	ai, err := task.AIChannels.At(0)
	require.NoError(t, err)

	require.NoError(t, ai.SetMax(5))
	v, err := ai.Max()
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	require.NoError(t, ai.ResetMax())
	assert.Equal(t, 1, f.called("reset AI_Max"))

	kind, err := ai.Type()
	require.NoError(t, err)
	assert.Equal(t, constants.AnalogInput, kind)

	_, err = ai.Descr()
	var de *daqerr.DriverError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "T1", de.TaskName)
	assert.Equal(t, "ai0", de.ChannelName)
}
