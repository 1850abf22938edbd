package interpreter

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRegistrationDrainsInFlight(t *testing.T) {
	reg := NewEventRegistration(nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	var finished bool
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		reg.Dispatch(func() {
			close(entered)
			<-release
			finished = true
		})
	}()
	<-entered

	done := make(chan struct{})
	go func() {
		require.NoError(t, reg.Unregister())
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("unregister returned while a callback was running")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("unregister did not return after the callback finished")
	}
	wg.Wait()
	assert.True(t, finished)
	assert.False(t, reg.Active())
	assert.False(t, reg.Dispatch(func() { t.Fatal("dispatched after unregister") }))
}

func TestEventRegistrationDetachOnce(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	reg := NewEventRegistration(func() error {
		calls++
		return boom
	})
	assert.ErrorIs(t, reg.Unregister(), boom)
	assert.ErrorIs(t, reg.Unregister(), boom)
	assert.Equal(t, 1, calls)
	assert.NotEqual(t, reg.ID().String(), NewEventRegistration(nil).ID().String())
}

func TestEventRegistrationUnregisterFromCallback(t *testing.T) {
	detached := 0
	reg := NewEventRegistration(func() error {
		detached++
		return nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		reg.Dispatch(func() {
			assert.True(t, reg.InDispatch())
			assert.NoError(t, reg.Unregister())
		})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("unregister from the callback blocked")
	}
	assert.Equal(t, 1, detached)
	assert.False(t, reg.InDispatch())
	assert.False(t, reg.Dispatch(func() { t.Fatal("dispatched after unregister") }))
}
