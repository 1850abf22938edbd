package daqmx

import (
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/interpreter"
)

// Timing configures how samples are clocked. Configuration returns a
// verified task to the unverified state.
type Timing struct{ scoped }

func (s scoped) taskName() string { return s.core.name }

// configure runs a configuration call against the task handle.
func (s scoped) configure(fn func(interpreter.Interpreter, interpreter.TaskHandle) error) error {
	h, err := s.core.handle()
	if err != nil {
		return err
	}
	if err := fn(s.core.interp, h); err != nil {
		return err
	}
	s.core.invalidate()
	return nil
}

// CfgSampClkTiming clocks samples from source at rate. An empty source uses
// the device's onboard clock. For finite tasks sampsPerChan is the number of
// samples to acquire or generate; for continuous tasks it sizes the buffer.
func (t *Timing) CfgSampClkTiming(rate float64, source string, edge constants.Edge, mode constants.AcquisitionType, sampsPerChan uint64) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgSampClkTiming(h, source, rate, edge, mode, sampsPerChan)
	})
}

// CfgImplicitTiming lets the signal define the sample timing, as for
// counter pulse trains and buffered period measurements.
func (t *Timing) CfgImplicitTiming(mode constants.AcquisitionType, sampsPerChan uint64) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgImplicitTiming(h, mode, sampsPerChan)
	})
}

// CfgChangeDetectionTiming samples digital lines whenever one of the rising
// or falling lines changes.
func (t *Timing) CfgChangeDetectionTiming(risingEdgeChan, fallingEdgeChan string, mode constants.AcquisitionType, sampsPerChan uint64) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgChangeDetectionTiming(h, risingEdgeChan, fallingEdgeChan, mode, sampsPerChan)
	})
}

func (t *Timing) CfgHandshakingTiming(mode constants.AcquisitionType, sampsPerChan uint64) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgHandshakingTiming(h, mode, sampsPerChan)
	})
}

func (t *Timing) CfgBurstHandshakingTimingImportClock(p BurstImportClock) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgBurstHandshakingTimingImportClock(h, p)
	})
}

func (t *Timing) CfgBurstHandshakingTimingExportClock(p BurstExportClock) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgBurstHandshakingTimingExportClock(h, p)
	})
}
