package channelnames

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/daqerr"
)

func TestUnflatten(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Dev1/ai0:3, Dev1/ai5", []string{"Dev1/ai0", "Dev1/ai1", "Dev1/ai2", "Dev1/ai3", "Dev1/ai5"}},
		{"Dev1/ai3:1", []string{"Dev1/ai3", "Dev1/ai2", "Dev1/ai1"}},
		{"Dev1/ai00:03", []string{"Dev1/ai00", "Dev1/ai01", "Dev1/ai02", "Dev1/ai03"}},
		{"Dev1/ai0:Dev1/ai2", []string{"Dev1/ai0", "Dev1/ai1", "Dev1/ai2"}},
		{"  Dev1/port0/line0  ,,Dev1/ctr0", []string{"Dev1/port0/line0", "Dev1/ctr0"}},
		{"Dev1/ai10:09", []string{"Dev1/ai10", "Dev1/ai09"}},
		{"Voltage", []string{"Voltage"}},
		{"", nil},
	}
	for _, c := range cases {
		got, err := Unflatten(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestUnflattenInvalidRange(t *testing.T) {
	for _, in := range []string{"Dev1/ai0:Dev2/ai3", "Dev1/ai:3", "Dev1/ai0:", "Dev1/ai0:x"} {
		_, err := Unflatten(in)
		assert.True(t, errors.Is(err, daqerr.InvalidRangeOfObjectsSyntaxInString), in)
	}
}

func TestRangeLimit(t *testing.T) {
	names, err := Unflatten("Dev1/ai0:14999")
	require.NoError(t, err)
	assert.Len(t, names, MaxRangeElements)

	_, err = Unflatten("Dev1/ai0:15000")
	assert.True(t, errors.Is(err, daqerr.RangeSyntaxNumberTooBig))

	_, err = Unflatten("Dev1/ai15000:0")
	assert.True(t, errors.Is(err, daqerr.RangeSyntaxNumberTooBig))
}

func TestFlatten(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{[]string{"Dev1/ai0", "Dev1/ai1", "Dev1/ai2", "Dev1/ai3", "Dev1/ai5"}, "Dev1/ai0:3,Dev1/ai5"},
		{[]string{"Dev1/ai3", "Dev1/ai2", "Dev1/ai1"}, "Dev1/ai3:1"},
		{[]string{"Dev1/ai00", "Dev1/ai01", "Dev1/ai02"}, "Dev1/ai00:02"},
		{[]string{"Dev1/ai0", "Dev1/ai1", "Dev1/ai0"}, "Dev1/ai0:1,Dev1/ai0"},
		{[]string{"Dev1/ai1", "Dev1/ai2", "Dev1/ai1", "Dev1/ai0"}, "Dev1/ai1:2,Dev1/ai1:0"},
		{[]string{"Dev1/ai9", "Dev1/ai10"}, "Dev1/ai9:10"},
		{[]string{"Dev1/ai00", "Dev1/ai1"}, "Dev1/ai00,Dev1/ai1"},
		{[]string{"Dev1/ai0", "Dev2/ai1"}, "Dev1/ai0,Dev2/ai1"},
		{[]string{"Voltage", "Dev1/ai0"}, "Voltage,Dev1/ai0"},
		{[]string{"Dev1/ai0:1", "Dev1/ai2"}, "Dev1/ai0:2"},
		{nil, ""},
	}
	for _, c := range cases {
		got, err := Flatten(c.in...)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%v", c.in)
	}
}

func TestRoundTrip(t *testing.T) {
	lists := [][]string{
		{"Dev1/ai0", "Dev1/ai1", "Dev1/ai2", "Dev1/ai3", "Dev1/ai5"},
		{"Dev1/ai10", "Dev1/ai09", "Dev1/ai08"},
		{"Dev1/ai100", "Dev1/ai99", "Dev1/ai098"},
		{"Dev1/ai1", "Dev1/ai02", "Dev1/ai03"},
		{"Dev1/port0/line7", "Dev1/port0/line6", "Dev1/ctr0", "Dev1/ctr1"},
		{"a", "b", "c1", "c2", "c2"},
	}
	for _, l := range lists {
		s, err := Flatten(l...)
		require.NoError(t, err)
		back, err := Unflatten(s)
		require.NoError(t, err)
		assert.Equal(t, l, back, s)

		again, err := Flatten(back...)
		require.NoError(t, err)
		assert.Equal(t, s, again)
	}
}

func ExampleFlatten() {
	names, _ := Unflatten("Dev1/ai0:3, Dev1/ai5")
	fmt.Println(names)
	fmt.Println(MustFlatten(names...))
	// Output:
	// [Dev1/ai0 Dev1/ai1 Dev1/ai2 Dev1/ai3 Dev1/ai5]
	// Dev1/ai0:3,Dev1/ai5
}
