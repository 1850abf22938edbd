package remote

import (
	"github.com/KevinKickass/daqmx/channelnames"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/internal/wire"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/timestamp"
)

func (i *Interpreter) task(method string, h TaskHandle, build func(req wire.Message)) error {
	_, err := i.call(method, func(req wire.Message) {
		req.SetSession("task", h.Session)
		build(req)
	})
	return err
}

func (i *Interpreter) CfgSampClkTiming(h TaskHandle, source string, rate float64, edge constants.Edge, mode constants.AcquisitionType, sampsPerChan uint64) error {
	return i.task("CfgSampClkTiming", h, func(req wire.Message) {
		req.Set("source", source).
			Set("rate", rate).
			Set("active_edge_raw", int32(edge)).
			Set("sample_mode_raw", int32(mode)).
			Set("samps_per_chan", sampsPerChan)
	})
}

func (i *Interpreter) CfgImplicitTiming(h TaskHandle, mode constants.AcquisitionType, sampsPerChan uint64) error {
	return i.task("CfgImplicitTiming", h, func(req wire.Message) {
		req.Set("sample_mode_raw", int32(mode)).Set("samps_per_chan", sampsPerChan)
	})
}

func (i *Interpreter) CfgChangeDetectionTiming(h TaskHandle, rising, falling string, mode constants.AcquisitionType, sampsPerChan uint64) error {
	return i.task("CfgChangeDetectionTiming", h, func(req wire.Message) {
		req.Set("rising_edge_chan", rising).
			Set("falling_edge_chan", falling).
			Set("sample_mode_raw", int32(mode)).
			Set("samps_per_chan", sampsPerChan)
	})
}

func (i *Interpreter) CfgHandshakingTiming(h TaskHandle, mode constants.AcquisitionType, sampsPerChan uint64) error {
	return i.task("CfgHandshakingTiming", h, func(req wire.Message) {
		req.Set("sample_mode_raw", int32(mode)).Set("samps_per_chan", sampsPerChan)
	})
}

func (i *Interpreter) CfgBurstHandshakingTimingImportClock(h TaskHandle, p interpreter.BurstImportClock) error {
	return i.task("CfgBurstHandshakingTimingImportClock", h, func(req wire.Message) {
		req.Set("sample_mode_raw", int32(p.SampleMode)).
			Set("samps_per_chan", p.SampsPerChan).
			Set("sample_clk_rate", p.SampleClockRate).
			Set("sample_clk_src", p.SampleClockSource).
			Set("sample_clk_active_edge_raw", int32(p.SampleClockEdge)).
			Set("pause_when_raw", int32(p.PauseWhen)).
			Set("ready_event_active_level_raw", int32(p.ReadyEventActiveLvl))
	})
}

func (i *Interpreter) CfgBurstHandshakingTimingExportClock(h TaskHandle, p interpreter.BurstExportClock) error {
	return i.task("CfgBurstHandshakingTimingExportClock", h, func(req wire.Message) {
		req.Set("sample_mode_raw", int32(p.SampleMode)).
			Set("samps_per_chan", p.SampsPerChan).
			Set("sample_clk_rate", p.SampleClockRate).
			Set("sample_clk_outp_term", p.SampleClockOutTerm).
			Set("sample_clk_pulse_polarity_raw", int32(p.SampleClockPolarity)).
			Set("pause_when_raw", int32(p.PauseWhen)).
			Set("ready_event_active_level_raw", int32(p.ReadyEventActiveLvl))
	})
}

// Triggers.

func (i *Interpreter) CfgDigEdgeStartTrig(h TaskHandle, source string, edge constants.Edge) error {
	return i.task("CfgDigEdgeStartTrig", h, func(req wire.Message) {
		req.Set("trigger_source", source).Set("trigger_edge_raw", int32(edge))
	})
}

func (i *Interpreter) CfgAnlgEdgeStartTrig(h TaskHandle, source string, slope constants.Slope, level float64) error {
	return i.task("CfgAnlgEdgeStartTrig", h, func(req wire.Message) {
		req.Set("trigger_source", source).
			Set("trigger_slope_raw", int32(slope)).
			Set("trigger_level", level)
	})
}

func (i *Interpreter) CfgAnlgWindowStartTrig(h TaskHandle, source string, when constants.WindowTriggerCondition, top, bottom float64) error {
	return i.task("CfgAnlgWindowStartTrig", h, func(req wire.Message) {
		req.Set("trigger_source", source).
			Set("trigger_when_raw", int32(when)).
			Set("window_top", top).
			Set("window_bottom", bottom)
	})
}

func (i *Interpreter) CfgDigPatternStartTrig(h TaskHandle, source, pattern string, when constants.DigitalPatternCondition) error {
	return i.task("CfgDigPatternStartTrig", h, func(req wire.Message) {
		req.Set("trigger_source", source).
			Set("trigger_pattern", pattern).
			Set("trigger_when_raw", int32(when))
	})
}

func (i *Interpreter) CfgTimeStartTrig(h TaskHandle, when timestamp.Time, timescale constants.Timescale) error {
	return i.task("CfgTimeStartTrig", h, func(req wire.Message) {
		req.Set("when", when.WireTime()).Set("timescale_raw", int32(timescale))
	})
}

func (i *Interpreter) CfgAnlgMultiEdgeStartTrig(h TaskHandle, edges []interpreter.AnalogMultiEdge) error {
	sources := make([]string, len(edges))
	slopes := make([]int32, len(edges))
	levels := make([]float64, len(edges))
	hysteresis := make([]float64, len(edges))
	couplings := make([]int32, len(edges))
	for j, e := range edges {
		sources[j] = e.Source
		slopes[j] = int32(e.Slope)
		levels[j] = e.Level
		hysteresis[j] = e.Hysteresis
		couplings[j] = int32(e.Coupling)
	}
	flat, err := channelnames.Flatten(sources...)
	if err != nil {
		return err
	}
	return i.task("CfgAnlgMultiEdgeStartTrig", h, func(req wire.Message) {
		req.Set("trigger_sources", flat).
			Set("trigger_slope_array", slopes).
			Set("trigger_level_array", levels).
			Set("trigger_hysteresis_array", hysteresis).
			Set("trigger_coupling_array", couplings)
	})
}

func (i *Interpreter) DisableStartTrig(h TaskHandle) error {
	_, err := i.call("DisableStartTrig", session(h))
	return err
}

func (i *Interpreter) CfgDigEdgeRefTrig(h TaskHandle, source string, edge constants.Edge, pretrigger uint32) error {
	return i.task("CfgDigEdgeRefTrig", h, func(req wire.Message) {
		req.Set("trigger_source", source).
			Set("trigger_edge_raw", int32(edge)).
			Set("pretrigger_samples", pretrigger)
	})
}

func (i *Interpreter) CfgAnlgEdgeRefTrig(h TaskHandle, source string, slope constants.Slope, level float64, pretrigger uint32) error {
	return i.task("CfgAnlgEdgeRefTrig", h, func(req wire.Message) {
		req.Set("trigger_source", source).
			Set("trigger_slope_raw", int32(slope)).
			Set("trigger_level", level).
			Set("pretrigger_samples", pretrigger)
	})
}

func (i *Interpreter) CfgAnlgWindowRefTrig(h TaskHandle, source string, when constants.WindowTriggerCondition, top, bottom float64, pretrigger uint32) error {
	return i.task("CfgAnlgWindowRefTrig", h, func(req wire.Message) {
		req.Set("trigger_source", source).
			Set("trigger_when_raw", int32(when)).
			Set("window_top", top).
			Set("window_bottom", bottom).
			Set("pretrigger_samples", pretrigger)
	})
}

func (i *Interpreter) CfgDigPatternRefTrig(h TaskHandle, source, pattern string, when constants.DigitalPatternCondition, pretrigger uint32) error {
	return i.task("CfgDigPatternRefTrig", h, func(req wire.Message) {
		req.Set("trigger_source", source).
			Set("trigger_pattern", pattern).
			Set("trigger_when_raw", int32(when)).
			Set("pretrigger_samples", pretrigger)
	})
}

func (i *Interpreter) DisableRefTrig(h TaskHandle) error {
	_, err := i.call("DisableRefTrig", session(h))
	return err
}

func (i *Interpreter) SendSoftwareTrigger(h TaskHandle, trigger constants.Signal) error {
	return i.task("SendSoftwareTrigger", h, func(req wire.Message) {
		req.Set("trigger_id_raw", int32(trigger))
	})
}

func (i *Interpreter) WaitForNextSampleClock(h TaskHandle, timeout float64) (bool, error) {
	resp, err := i.call("WaitForNextSampleClock", func(req wire.Message) {
		req.SetSession("task", h.Session).Set("timeout", timeout)
	})
	if err != nil {
		return false, err
	}
	return resp.Bool("is_late"), nil
}

func (i *Interpreter) WaitForValidTimestamp(h TaskHandle, event constants.TimestampEvent, timeout float64) (timestamp.Time, error) {
	resp, err := i.call("WaitForValidTimestamp", func(req wire.Message) {
		req.SetSession("task", h.Session).
			Set("timestamp_event_raw", int32(event)).
			Set("timeout", timeout)
	})
	if err != nil {
		return timestamp.Time{}, err
	}
	return timestamp.FromWire(resp.Timestamp("timestamp")), nil
}
