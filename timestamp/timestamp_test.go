package timestamp

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpochConversion(t *testing.T) {
	a := AbsTime{MSB: 0xB856AC80, LSB: 0}

	got := a.Std()
	assert.True(t, got.Equal(time.Date(2002, 1, 1, 0, 0, 0, 0, time.UTC)), "got %s", got)
	assert.Equal(t, a, a.Time().AbsTime())
	assert.Equal(t, a, FromStd(got).AbsTime())
}

func TestSubSecondPrecision(t *testing.T) {
	hp := Date(2002, time.January, 1, 0, 0, 0, 500000)

	a := hp.AbsTime()
	assert.Equal(t, int64(0xB856AC80), a.MSB)
	assert.Equal(t, uint64(0x8000000000000000), a.LSB)
	assert.Equal(t, hp, a.Time())
}

func TestBefore1970(t *testing.T) {
	std := time.Date(1950, 6, 15, 12, 30, 0, 250_000_000, time.UTC)
	hp := FromStd(std)

	w := hp.WireTime()
	assert.Less(t, w.Seconds, int64(0))
	assert.Equal(t, int32(250_000_000), w.Nanos)
	assert.Equal(t, hp, w.Time())
	assert.True(t, hp.AbsTime().Std().Equal(std))
}

func TestBefore1904(t *testing.T) {
	std := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	a := FromStd(std).AbsTime()
	assert.Less(t, a.MSB, int64(0))
	assert.True(t, a.Std().Equal(std))
}

func TestAbsRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := AbsTime{MSB: r.Int63n(1 << 40), LSB: r.Uint64()}
		assert.Equal(t, a, a.Time().AbsTime())
	}
}

func TestHighPrecisionRoundTripWithinResolution(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		hp := Time{
			Sec:         r.Int63n(1<<33) - 1<<32,
			Microsecond: uint32(r.Intn(1_000_000)),
			Femtosecond: uint32(r.Intn(1_000_000_000)),
			Yoctosecond: uint32(r.Intn(1_000_000_000)),
		}
		back := hp.AbsTime().Time()
		require.Equal(t, hp.Sec, back.Sec)
		diff := yoctoDiff(hp, back)
		// 2^-64 s is about 54211 ys; half of it bounds the rounding error.
		assert.LessOrEqual(t, diff, int64(54211), "%s vs %s", hp, back)
	}
}

func TestWireRoundTripNanosecondAligned(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		w := WireTime{Seconds: r.Int63n(1<<34) - 1<<33, Nanos: int32(r.Intn(1_000_000_000))}
		assert.Equal(t, w, w.Time().WireTime())
	}
}

func TestWireRoundsHalfUp(t *testing.T) {
	hp := Time{Sec: 10, Microsecond: 999999, Femtosecond: 999_500_000}
	assert.Equal(t, WireTime{Seconds: 11, Nanos: 0}, hp.WireTime())

	hp = Time{Sec: 10, Femtosecond: 499_999}
	assert.Equal(t, WireTime{Seconds: 10, Nanos: 0}, hp.WireTime())
}

func TestWireNanosCarry(t *testing.T) {
	tests := []struct {
		in, want WireTime
	}{
		{WireTime{Seconds: 10, Nanos: -1}, WireTime{Seconds: 9, Nanos: 999_999_999}},
		{WireTime{Seconds: 1, Nanos: 1_500_000_000}, WireTime{Seconds: 2, Nanos: 500_000_000}},
		{WireTime{Seconds: 0, Nanos: -2_000_000_001}, WireTime{Seconds: -3, Nanos: 999_999_999}},
	}
	for _, tt := range tests {
		got := tt.in.Time()
		assert.Equal(t, tt.want.Time(), got)
		require.NoError(t, got.Validate())
		assert.True(t, tt.in.Std().Equal(got.Std()))
	}
}

func TestOrdering(t *testing.T) {
	a := AbsTime{MSB: 1, LSB: 5}
	b := AbsTime{MSB: 1, LSB: 6}
	c := AbsTime{MSB: 2, LSB: 0}
	assert.True(t, a.Before(b))
	assert.True(t, c.After(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, AbsTime{MSB: -1, LSB: 1<<63 + 1}.Before(AbsTime{MSB: 0}))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Time{Microsecond: 999999}.Validate())
	assert.Error(t, Time{Microsecond: 1_000_000}.Validate())
}

func yoctoDiff(a, b Time) int64 {
	x := a.yocto()
	x.Sub(x, b.yocto())
	if x.Sign() < 0 {
		x.Neg(x)
	}
	return x.Int64()
}

func ExampleAbsTime_Time() {
	a := AbsTime{MSB: 0xB856AC80, LSB: 1 << 63}
	fmt.Println(a.Time())
	// Output: 2002-01-01T00:00:00.500000000000000000000000Z
}
