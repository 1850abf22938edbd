package native

import (
	"fmt"

	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/timestamp"
)

func (i *Interpreter) CfgSampClkTiming(h TaskHandle, source string, rate float64, edge constants.Edge, mode constants.AcquisitionType, sampsPerChan uint64) error {
	f, err := procCfgSampClkTiming.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, source, rate, int32(edge), int32(mode), sampsPerChan))
}

func (i *Interpreter) CfgImplicitTiming(h TaskHandle, mode constants.AcquisitionType, sampsPerChan uint64) error {
	f, err := procCfgImplicitTiming.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, int32(mode), sampsPerChan))
}

func (i *Interpreter) CfgChangeDetectionTiming(h TaskHandle, rising, falling string, mode constants.AcquisitionType, sampsPerChan uint64) error {
	f, err := procCfgChangeDetectionTiming.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, rising, falling, int32(mode), sampsPerChan))
}

func (i *Interpreter) CfgHandshakingTiming(h TaskHandle, mode constants.AcquisitionType, sampsPerChan uint64) error {
	f, err := procCfgHandshakingTiming.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, int32(mode), sampsPerChan))
}

func (i *Interpreter) CfgBurstHandshakingTimingImportClock(h TaskHandle, p interpreter.BurstImportClock) error {
	f, err := procCfgBurstImportClock.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, int32(p.SampleMode), p.SampsPerChan, p.SampleClockRate, p.SampleClockSource,
		int32(p.SampleClockEdge), int32(p.PauseWhen), int32(p.ReadyEventActiveLvl)))
}

func (i *Interpreter) CfgBurstHandshakingTimingExportClock(h TaskHandle, p interpreter.BurstExportClock) error {
	f, err := procCfgBurstExportClock.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, int32(p.SampleMode), p.SampsPerChan, p.SampleClockRate, p.SampleClockOutTerm,
		int32(p.SampleClockPolarity), int32(p.PauseWhen), int32(p.ReadyEventActiveLvl)))
}

func (i *Interpreter) CfgDigEdgeStartTrig(h TaskHandle, source string, edge constants.Edge) error {
	f, err := procCfgDigEdgeStartTrig.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, source, int32(edge)))
}

func (i *Interpreter) CfgAnlgEdgeStartTrig(h TaskHandle, source string, slope constants.Slope, level float64) error {
	f, err := procCfgAnlgEdgeStartTrig.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, source, int32(slope), level))
}

func (i *Interpreter) CfgAnlgWindowStartTrig(h TaskHandle, source string, when constants.WindowTriggerCondition, top, bottom float64) error {
	f, err := procCfgAnlgWindowStartTrig.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, source, int32(when), top, bottom))
}

func (i *Interpreter) CfgDigPatternStartTrig(h TaskHandle, source, pattern string, when constants.DigitalPatternCondition) error {
	f, err := procCfgDigPatternStartTrig.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, source, pattern, int32(when)))
}

func (i *Interpreter) CfgTimeStartTrig(h TaskHandle, when timestamp.Time, timescale constants.Timescale) error {
	f, err := procCfgTimeStartTrig.get(i.lib)
	if err != nil {
		return err
	}
	a := when.AbsTime()
	return i.check(f(h.Ptr, absTime{LSB: a.LSB, MSB: a.MSB}, int32(timescale)))
}

func (i *Interpreter) CfgAnlgMultiEdgeStartTrig(h TaskHandle, edges []interpreter.AnalogMultiEdge) error {
	f, err := procCfgAnlgMultiEdgeStartTrig.get(i.lib)
	if err != nil {
		return err
	}
	if len(edges) == 0 {
		return fmt.Errorf("multi-edge trigger needs at least one source: %w", daqerr.ErrInvalidArgument)
	}
	sources := make([]string, len(edges))
	slopes := make([]int32, len(edges))
	levels := make([]float64, len(edges))
	hysts := make([]float64, len(edges))
	couplings := make([]int32, len(edges))
	for n, e := range edges {
		sources[n] = e.Source
		slopes[n] = int32(e.Slope)
		levels[n] = e.Level
		hysts[n] = e.Hysteresis
		couplings[n] = int32(e.Coupling)
	}
	return i.check(f(h.Ptr, joinNames(sources), first(slopes), first(levels), first(hysts), first(couplings), uint32(len(edges))))
}

func (i *Interpreter) DisableStartTrig(h TaskHandle) error {
	f, err := procDisableStartTrig.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr))
}

func (i *Interpreter) CfgDigEdgeRefTrig(h TaskHandle, source string, edge constants.Edge, pretrigger uint32) error {
	f, err := procCfgDigEdgeRefTrig.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, source, int32(edge), pretrigger))
}

func (i *Interpreter) CfgAnlgEdgeRefTrig(h TaskHandle, source string, slope constants.Slope, level float64, pretrigger uint32) error {
	f, err := procCfgAnlgEdgeRefTrig.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, source, int32(slope), level, pretrigger))
}

func (i *Interpreter) CfgAnlgWindowRefTrig(h TaskHandle, source string, when constants.WindowTriggerCondition, top, bottom float64, pretrigger uint32) error {
	f, err := procCfgAnlgWindowRefTrig.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, source, int32(when), top, bottom, pretrigger))
}

func (i *Interpreter) CfgDigPatternRefTrig(h TaskHandle, source, pattern string, when constants.DigitalPatternCondition, pretrigger uint32) error {
	f, err := procCfgDigPatternRefTrig.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, source, pattern, int32(when), pretrigger))
}

func (i *Interpreter) DisableRefTrig(h TaskHandle) error {
	f, err := procDisableRefTrig.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr))
}

func (i *Interpreter) SendSoftwareTrigger(h TaskHandle, trigger constants.Signal) error {
	f, err := procSendSoftwareTrigger.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, int32(trigger)))
}

func (i *Interpreter) WaitForNextSampleClock(h TaskHandle, timeout float64) (bool, error) {
	f, err := procWaitForNextSampleClock.get(i.lib)
	if err != nil {
		return false, err
	}
	var late uint32
	if err := i.check(f(h.Ptr, timeout, &late)); err != nil {
		return false, err
	}
	return late != 0, nil
}

func (i *Interpreter) WaitForValidTimestamp(h TaskHandle, event constants.TimestampEvent, timeout float64) (timestamp.Time, error) {
	f, err := procWaitForValidTimestamp.get(i.lib)
	if err != nil {
		return timestamp.Time{}, err
	}
	var ts absTime
	if err := i.check(f(h.Ptr, int32(event), timeout, &ts)); err != nil {
		return timestamp.Time{}, err
	}
	return timestamp.FromAbs(timestamp.AbsTime{MSB: ts.MSB, LSB: ts.LSB}), nil
}
