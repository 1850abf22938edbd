package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/config"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/waveform"
)

func TestNewWithoutDriver(t *testing.T) {
	_, err := New(WithLibraryPath("/nonexistent/libnidaqmx.so"), WithConfig(&config.Config{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, daqerr.LibraryNotPresent)
}

func TestPrefixFor(t *testing.T) {
	h := interpreter.TaskHandle{Ptr: 0x42}
	tests := []struct {
		scope  attributes.Scope
		target interpreter.Target
		want   prefix
	}{
		{attributes.ScopeSystem, interpreter.SystemTarget(), prefix{kind: prefixNone}},
		{attributes.ScopeTiming, interpreter.TaskTarget(attributes.ScopeTiming, h), prefix{kind: prefixTask, task: 0x42}},
		{attributes.ScopeChannel, interpreter.ChannelTarget(h, "Dev1/ai0"), prefix{kind: prefixTaskName, task: 0x42, name: "Dev1/ai0"}},
		{attributes.ScopeDevice, interpreter.NamedTarget(attributes.ScopeDevice, "Dev1"), prefix{kind: prefixName, name: "Dev1"}},
		{attributes.ScopePersistedScale, interpreter.NamedTarget(attributes.ScopePersistedScale, "s"), prefix{kind: prefixName, name: "s"}},
	}
	for _, tt := range tests {
		t.Run(tt.scope.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, prefixFor(tt.scope, tt.target))
		})
	}
}

func TestEntryRejectsCategoryMismatch(t *testing.T) {
	i := &Interpreter{cfg: &config.Config{}}
	_, _, err := i.entry(interpreter.ChannelTarget(interpreter.TaskHandle{Ptr: 1}, "ai0"), attributes.AIMax, attributes.String, attributes.OpGet)
	assert.ErrorIs(t, err, daqerr.ErrAttributeCategory)

	_, _, err = i.entry(interpreter.TaskTarget(attributes.ScopeTask, interpreter.TaskHandle{Ptr: 1}), attributes.TaskName, attributes.String, attributes.OpSet)
	assert.ErrorIs(t, err, daqerr.ErrAttributeReadOnly)

	_, _, err = i.entry(interpreter.TaskTarget(attributes.ScopeTask, interpreter.TaskHandle{Ptr: 1}), attributes.TaskName, 0, attributes.OpReset)
	assert.ErrorIs(t, err, daqerr.ErrAttributeNotResettable)

	_, _, err = i.entry(interpreter.SystemTarget(), attributes.ID(0x7FFFFFF0), attributes.Bool, attributes.OpGet)
	assert.ErrorIs(t, err, daqerr.ErrUnknownAttribute)
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)
}

func TestWaveformsRequireFeature(t *testing.T) {
	i := &Interpreter{cfg: &config.Config{}}
	_, err := i.ReadAnalogWaveforms(interpreter.TaskHandle{Ptr: 1}, 10, 1, []*waveform.Analog{waveform.NewAnalog(10)}, waveform.ToGrow)
	assert.Equal(t, daqerr.KindFeatureNotSupported, daqerr.KindOf(err))

	_, err = i.WriteDigitalWaveforms(interpreter.TaskHandle{Ptr: 1}, false, 1, nil)
	assert.Equal(t, daqerr.KindFeatureNotSupported, daqerr.KindOf(err))

	i = &Interpreter{cfg: &config.Config{EnableIncompleteFeatures: true}}
	_, err = i.ReadAnalogWaveforms(interpreter.TaskHandle{Ptr: 1}, -1, 1, []*waveform.Analog{waveform.NewAnalog(1)}, waveform.ToGrow)
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)
}

func TestFitsRejectsShortBuffers(t *testing.T) {
	require.NoError(t, fits("elements to write", 4, 2, 1, 8))
	require.NoError(t, fits("elements to write", 1, 1, 8, 8, 9))

	err := fits("elements to write", 1, 1, 8, 3)
	var mismatch *daqerr.MismatchedArraySizesError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 8, mismatch.Want)
	assert.Equal(t, 3, mismatch.Got)

	err = fits("elements to write", 3, 2, 1, 6, 5)
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 5, mismatch.Got)
}
