package daqmx

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
)

func TestNewTaskNames(t *testing.T) {
	f := newFake()

	named := newFakeTask(t, f)
	assert.Equal(t, "T1", named.Name())
	assert.Equal(t, "Task(name=T1)", named.String())

	unnamed, err := NewTask("", WithInterpreter(f))
	require.NoError(t, err)
	defer unnamed.Close()
	assert.Equal(t, "_unnamedTask<0>", unnamed.Name())

	loaded, err := LoadTask("saved", WithInterpreter(f))
	require.NoError(t, err)
	defer loaded.Close()
	assert.Equal(t, "saved", loaded.Name())
	assert.Equal(t, 1, f.called("load saved"))
}

func TestTransportOptions(t *testing.T) {
	f := newFake()

	_, err := NewTask("x", WithInterpreter(f), WithLibrary(LibraryOptions{}))
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)

	_, err = NewTask("x", WithGrpc(GrpcSessionOptions{}))
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)

	_, err = LocalSystem(WithGrpc(GrpcSessionOptions{}), WithInterpreter(f))
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)
}

func TestCloseTwice(t *testing.T) {
	f := newFake()
	task, err := NewTask("T1", WithInterpreter(f))
	require.NoError(t, err)

	require.NoError(t, task.Close())
	require.NoError(t, task.Close())
	assert.Equal(t, 1, f.cleared)

	assert.ErrorIs(t, task.Start(), daqerr.ErrTaskClosed)
	_, err = task.ChannelNames()
	assert.ErrorIs(t, err, daqerr.ErrTaskClosed)
	_, err = task.Read(1, 1)
	assert.ErrorIs(t, err, daqerr.ErrTaskClosed)
}

func TestStateFollowsControl(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	assert.Equal(t, StateUnverified, task.State())

	_, err := task.AIChannels.AddVoltageChan(AIVoltageChan{PhysicalChannel: "Dev1/ai0"})
	require.NoError(t, err)
	assert.Equal(t, StateUnverified, task.State())

	require.NoError(t, task.Control(constants.TaskCommit))
	assert.Equal(t, StateCommitted, task.State())

	require.NoError(t, task.Start())
	assert.Equal(t, StateRunning, task.State())
	require.NoError(t, task.Stop())
	assert.Equal(t, StateCommitted, task.State(), "stop returns to the state the task started from")

	require.NoError(t, task.Start())
	require.NoError(t, task.WaitUntilDone(1))
	assert.Equal(t, StateDone, task.State())

	require.NoError(t, task.Start())
	require.NoError(t, task.Stop())
	assert.Equal(t, StateCommitted, task.State())

	require.NoError(t, task.Control(constants.TaskUnreserve))
	assert.Equal(t, StateVerified, task.State())
}

func TestStartFromUnverifiedStopsAtVerified(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)

	require.NoError(t, task.Start())
	require.NoError(t, task.Stop())
	assert.Equal(t, StateVerified, task.State())

	require.NoError(t, task.Timing.CfgSampClkTiming(1000, "", constants.Rising, constants.Finite, 100))
	assert.Equal(t, StateUnverified, task.State(), "configuration invalidates verification")

	require.NoError(t, task.Control(constants.TaskVerify))
	assert.Equal(t, StateVerified, task.State())
	require.NoError(t, task.Control(constants.TaskReserve))
	assert.Equal(t, StateReserved, task.State())
	require.NoError(t, task.Control(constants.TaskVerify))
	assert.Equal(t, StateReserved, task.State(), "verify does not release resources")
}

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		from, to TaskState
		ok       bool
	}{
		{StateUnverified, StateRunning, true},
		{StateRunning, StateDone, true},
		{StateDone, StateRunning, true},
		{StateRunning, StateUnverified, false},
		{StateDone, StateUnverified, false},
		{StateUnverified, StateDone, false},
	}
	for _, tc := range cases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			err := ValidateTransition(tc.from, tc.to)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
	assert.Error(t, ValidateTransition(TaskState(42), StateRunning))
	assert.Equal(t, "UNKNOWN", TaskState(42).String())
}

func TestChannelsOfTask(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogInput, "Voltage0", "Voltage1")

	names, err := task.ChannelNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Voltage0", "Voltage1"}, names)

	all, err := task.Channels()
	require.NoError(t, err)
	assert.Equal(t, 2, all.Len())
	assert.Equal(t, "Voltage0:1", all.Name())
}

// openReader returns a reader and a channel of a task nothing else references.
func openReader(t *testing.T, f *fakeInterp) (*AnalogMultiChannelReader, Channel) {
	t.Helper()
	task, err := NewTask("T1", WithInterpreter(f))
	require.NoError(t, err)
	f.addChannels(constants.AnalogInput, "ai0", "ai1")
	return NewAnalogMultiChannelReader(task.InStream), newChannel(task.core, "ai0", constants.AnalogInput)
}

func TestReaderKeepsTaskAlive(t *testing.T) {
	f := newFake()
	r, ch := openReader(t, f)
	for range 3 {
		runtime.GC()
	}

	k, err := r.ReadManySample(make([]float64, 8), 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, k)
	assert.Zero(t, f.called("clear"))
	_, err = ch.Descr()
	assert.NotErrorIs(t, err, daqerr.ErrTaskReleased)

	r = nil
	runtime.GC()
	_, err = ch.Descr()
	assert.ErrorIs(t, err, daqerr.ErrTaskReleased, "the task goes once its last reader does")
}

func TestStreamKeepsTaskAlive(t *testing.T) {
	f := newFake()
	in := func() *InStream {
		task, err := NewTask("T1", WithInterpreter(f))
		require.NoError(t, err)
		return task.InStream
	}()
	runtime.GC()
	runtime.GC()

	f.put(attributes.ScopeRead, "", attributes.ReadAvailSampPerChan, uint32(7))
	n, err := in.AvailSampPerChan()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), n)
}
