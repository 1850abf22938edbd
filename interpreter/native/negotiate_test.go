package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/daqerr"
)

// fakeString simulates a driver string getter whose value may change
// between the sizing call and the data call.
type fakeString struct {
	values []string
	calls  int
}

func (f *fakeString) call(buf []byte) int32 {
	v := f.values[min(f.calls/2, len(f.values)-1)]
	f.calls++
	need := int32(len(v) + 1)
	if buf == nil {
		return need
	}
	if int32(len(buf)) < need {
		return int32(daqerr.BufferTooSmallForString)
	}
	copy(buf, v)
	buf[len(v)] = 0
	return 0
}

func TestTwoCallString(t *testing.T) {
	f := &fakeString{values: []string{"Dev1"}}
	s, status, err := twoCallString(f.call)
	require.NoError(t, err)
	assert.Equal(t, int32(0), status)
	assert.Equal(t, "Dev1", s)
	assert.Equal(t, 2, f.calls)
}

func TestTwoCallStringRetriesWhenValueGrows(t *testing.T) {
	// The first data call sees the grown value and reports a short buffer.
	grow := &growingString{sizes: []string{"Dev1", "Dev1,Dev2"}}
	s, _, err := twoCallString(grow.call)
	require.NoError(t, err)
	assert.Equal(t, "Dev1,Dev2", s)
	assert.Equal(t, 4, grow.calls)
}

// growingString reports the value at index calls/2 for sizing, and the
// next value for the data call, until the values run out.
type growingString struct {
	sizes []string
	calls int
}

func (g *growingString) call(buf []byte) int32 {
	idx := g.calls / 2
	if buf != nil {
		idx++
	}
	g.calls++
	v := g.sizes[min(idx, len(g.sizes)-1)]
	need := int32(len(v) + 1)
	if buf == nil {
		return need
	}
	if int32(len(buf)) < need {
		return int32(daqerr.BufferTooSmallForString)
	}
	copy(buf, v)
	return 0
}

func TestTwoCallGivesUpAfterBoundedRetries(t *testing.T) {
	calls := 0
	_, _, err := twoCall(func(buf []float64) int32 {
		calls++
		if buf == nil {
			return int32(calls)
		}
		return int32(daqerr.ReadBufferTooSmall)
	})
	assert.ErrorIs(t, err, daqerr.ErrSizeNegotiation)
	assert.Equal(t, 2*maxSizeAttempts, calls)
}

func TestTwoCallPassesErrorsAndEmptyValues(t *testing.T) {
	_, status, err := twoCall(func([]int32) int32 { return int32(daqerr.InvalidTask) })
	require.NoError(t, err)
	assert.Equal(t, int32(daqerr.InvalidTask), status)

	v, status, err := twoCall(func([]uint32) int32 { return 0 })
	require.NoError(t, err)
	assert.Equal(t, int32(0), status)
	assert.Empty(t, v)
}
