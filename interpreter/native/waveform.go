package native

import (
	"fmt"
	"time"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/channelnames"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/config"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/waveform"
)

// ReadAnalogWaveforms reads n samples per channel directly into the
// waveforms' storage, one waveform per channel, and stamps their timing.
func (i *Interpreter) ReadAnalogWaveforms(h TaskHandle, n int, timeout float64, wfs []*waveform.Analog, policy waveform.ReallocationPolicy) (int, error) {
	if err := i.cfg.Require(config.FeatureWaveforms); err != nil {
		return 0, err
	}
	if n < 0 || len(wfs) == 0 {
		return 0, fmt.Errorf("waveform read of %d samples into %d waveforms: %w", n, len(wfs), daqerr.ErrInvalidArgument)
	}
	block, finish, err := waveform.ShareBlock(wfs, n, policy)
	if err != nil {
		return 0, err
	}
	k, err := i.ReadAnalogF64(h, n, timeout, constants.GroupByChannel, block)
	finish(k)
	if err != nil {
		return k, err
	}
	timing := i.waveformTiming(h)
	names := i.channelsToRead(h, len(wfs))
	for c, w := range wfs {
		w.Timing = timing
		if names != nil {
			w.Channel = names[c]
		}
	}
	return k, nil
}

// ReadDigitalWaveforms reads n samples per channel as packed line states.
// The line count per channel comes from the task.
func (i *Interpreter) ReadDigitalWaveforms(h TaskHandle, n int, timeout float64, wfs []*waveform.Digital, policy waveform.ReallocationPolicy) (int, error) {
	if err := i.cfg.Require(config.FeatureWaveforms); err != nil {
		return 0, err
	}
	if n < 0 || len(wfs) == 0 {
		return 0, fmt.Errorf("waveform read of %d samples into %d waveforms: %w", n, len(wfs), daqerr.ErrInvalidArgument)
	}
	lines, err := i.GetUint32Attribute(interpreter.TaskTarget(attributes.ScopeRead, h), attributes.ReadDigitalLinesBytesPerChan)
	if err != nil {
		return 0, err
	}
	block, finish, err := waveform.ShareDigitalBlock(wfs, n, int(lines), policy)
	if err != nil {
		return 0, err
	}
	k, _, err := i.ReadDigitalLines(h, n, timeout, constants.GroupByChannel, block)
	finish(k)
	if err != nil {
		return k, err
	}
	timing := i.waveformTiming(h)
	names := i.channelsToRead(h, len(wfs))
	for c, w := range wfs {
		w.Timing = timing
		if names != nil {
			w.Channel = names[c]
		}
	}
	return k, nil
}

func (i *Interpreter) WriteAnalogWaveforms(h TaskHandle, autoStart bool, timeout float64, wfs []*waveform.Analog) (int, error) {
	if err := i.cfg.Require(config.FeatureWaveforms); err != nil {
		return 0, err
	}
	block, n, err := waveform.GroupByChannel(wfs)
	if err != nil {
		return 0, err
	}
	return i.WriteAnalogF64(h, n, autoStart, timeout, constants.GroupByChannel, block)
}

func (i *Interpreter) WriteDigitalWaveforms(h TaskHandle, autoStart bool, timeout float64, wfs []*waveform.Digital) (int, error) {
	if err := i.cfg.Require(config.FeatureWaveforms); err != nil {
		return 0, err
	}
	block, n, _, err := waveform.DigitalGroupByChannel(wfs)
	if err != nil {
		return 0, err
	}
	return i.WriteDigitalLines(h, n, autoStart, timeout, constants.GroupByChannel, block)
}

// waveformTiming derives dt from the sample clock and t0 from the first
// sample timestamp. Either stays zero when the task does not provide it.
func (i *Interpreter) waveformTiming(h TaskHandle) waveform.Timing {
	var t waveform.Timing
	target := interpreter.TaskTarget(attributes.ScopeTiming, h)
	if rate, err := i.GetFloat64Attribute(target, attributes.SampClkRate); err == nil && rate > 0 {
		t.Dt = time.Duration(float64(time.Second) / rate)
	}
	if on, err := i.GetBoolAttribute(target, attributes.FirstSampTimestampEnable); err == nil && on {
		if ts, err := i.GetTimestampAttribute(target, attributes.FirstSampTimestampVal); err == nil {
			t.T0 = ts.Std()
		}
	}
	return t
}

func (i *Interpreter) channelsToRead(h TaskHandle, want int) []string {
	s, err := i.GetStringAttribute(interpreter.TaskTarget(attributes.ScopeRead, h), attributes.ReadChannelsToRead)
	if err != nil {
		return nil
	}
	names, err := channelnames.Unflatten(s)
	if err != nil || len(names) != want {
		return nil
	}
	return names
}
