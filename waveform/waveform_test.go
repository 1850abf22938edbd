package waveform

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/daqerr"
)

func TestAnalogBackingPolicy(t *testing.T) {
	w := NewAnalog(4)
	buf, err := w.Backing(4, Disallow)
	require.NoError(t, err)
	assert.Len(t, buf, 4)

	_, err = w.Backing(5, Disallow)
	assert.True(t, errors.Is(err, daqerr.ReadBufferTooSmall))

	buf, err = w.Backing(8, ToGrow)
	require.NoError(t, err)
	assert.Len(t, buf, 8)
	assert.Equal(t, 8, w.Capacity())
}

func TestShareBlockToGrow(t *testing.T) {
	group := []*Analog{NewAnalog(0), NewAnalog(0)}
	block, finish, err := ShareBlock(group, 3, ToGrow)
	require.NoError(t, err)
	copy(block, []float64{1, 2, 3, 10, 20, 30})
	finish(2)

	assert.Equal(t, []float64{1, 2}, group[0].Samples())
	assert.Equal(t, []float64{10, 20}, group[1].Samples())
}

func TestShareBlockDisallow(t *testing.T) {
	a, b := NewAnalog(3), NewAnalog(3)
	orig := a.Samples()[:0:3]

	block, finish, err := ShareBlock([]*Analog{a, b}, 3, Disallow)
	require.NoError(t, err)
	copy(block, []float64{1, 2, 3, 4, 5, 6})
	finish(3)

	assert.Equal(t, []float64{1, 2, 3}, a.Samples())
	assert.Equal(t, []float64{4, 5, 6}, b.Samples())
	assert.Same(t, &orig[:1][0], &a.Samples()[0], "storage must not be replaced")

	_, _, err = ShareBlock([]*Analog{a, NewAnalog(1)}, 3, Disallow)
	assert.Equal(t, daqerr.KindReadBufferTooSmall, daqerr.KindOf(err))
}

func TestEqualLength(t *testing.T) {
	n, err := EqualLength([]*Analog{AnalogFrom([]float64{1, 2}), AnalogFrom([]float64{3, 4})})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = EqualLength([]*Analog{AnalogFrom([]float64{1, 2}), AnalogFrom([]float64{3})})
	var me *daqerr.MismatchedArraySizesError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 2, me.Want)
	assert.Equal(t, 1, me.Got)
}

func TestGroupByChannel(t *testing.T) {
	block, n, err := GroupByChannel([]*Analog{AnalogFrom([]float64{1, 2}), AnalogFrom([]float64{3, 4})})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{1, 2, 3, 4}, block)
}

func TestDigital(t *testing.T) {
	w, err := DigitalFrom([]uint8{1, 0, 0, 1, 1, 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, w.Len())
	assert.True(t, w.Line(1, 1))
	assert.False(t, w.Line(0, 1))

	_, err = DigitalFrom([]uint8{1, 0, 0}, 2)
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)

	group := []*Digital{NewDigital(0, 0), NewDigital(0, 0)}
	block, finish, err := ShareDigitalBlock(group, 2, 2, ToGrow)
	require.NoError(t, err)
	copy(block, []uint8{1, 0, 1, 1, 0, 0, 0, 1})
	finish(1)
	assert.Equal(t, []uint8{1, 0}, group[0].Data())
	assert.Equal(t, []uint8{0, 0}, group[1].Data())

	packed, n, lines, err := DigitalGroupByChannel(group)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, lines)
	assert.Equal(t, []uint8{1, 0, 0, 0}, packed)
}

func TestSampleTime(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm := Timing{T0: t0, Dt: time.Millisecond}
	assert.Equal(t, t0.Add(5*time.Millisecond), tm.SampleTime(5))
}
