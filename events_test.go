package daqmx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/daqerr"
)

func TestRegisterReplacesHandler(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)

	var first, second int
	require.NoError(t, task.RegisterEveryNSamplesAcquiredIntoBufferEvent(100, func(EveryNSamplesEvent) { first++ }))
	require.NoError(t, task.RegisterEveryNSamplesAcquiredIntoBufferEvent(100, func(EveryNSamplesEvent) { second++ }))
	assert.Equal(t, 1, f.detached["every_n"], "the first registration is dropped")

	f.fireEveryN(EveryNSamplesEvent{Samples: 100})
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	require.NoError(t, task.RegisterEveryNSamplesAcquiredIntoBufferEvent(0, nil))
	assert.Equal(t, 2, f.detached["every_n"])
	assert.Equal(t, 2, f.called("register every n"), "a nil handler does not register")
}

func TestHandlerUnregistersItself(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)

	calls := 0
	require.NoError(t, task.RegisterEveryNSamplesAcquiredIntoBufferEvent(10, func(EveryNSamplesEvent) {
		calls++
		assert.NoError(t, task.RegisterEveryNSamplesAcquiredIntoBufferEvent(0, nil))
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.fireEveryN(EveryNSamplesEvent{Samples: 10})
		f.fireEveryN(EveryNSamplesEvent{Samples: 10})
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler deadlocked unregistering itself")
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, f.detached["every_n"])
}

func TestEventsStream(t *testing.T) {
	f := newFake()
	task, err := NewTask("T1", WithInterpreter(f))
	require.NoError(t, err)

	events, cancel := task.Events()
	defer cancel()

	require.NoError(t, task.RegisterDoneEvent(func(DoneEvent) {}))
	require.NoError(t, task.Start())

	boom := errors.New("boom")
	f.fireDone(DoneEvent{Status: boom})
	assert.Equal(t, StateDone, task.State())

	select {
	case ev := <-events:
		assert.Equal(t, EventDone, ev.Kind)
		assert.ErrorIs(t, ev.Done.Status, boom)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}

	require.NoError(t, task.Close())
	assert.Equal(t, 1, f.detached["done"])

	select {
	case _, open := <-events:
		assert.False(t, open, "close ends the stream")
	case <-time.After(time.Second):
		t.Fatal("event stream not closed")
	}

	assert.ErrorIs(t, task.RegisterDoneEvent(func(DoneEvent) {}), daqerr.ErrTaskClosed)
}

func TestEventsCancel(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)

	events, cancel := task.Events()
	cancel()
	_, open := <-events
	assert.False(t, open)
	cancel()
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "EVERY_N_SAMPLES", EventEveryNSamples.String())
	assert.Equal(t, "DONE", EventDone.String())
	assert.Equal(t, "SIGNAL", EventSignal.String())
}
