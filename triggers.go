package daqmx

import (
	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/timestamp"
)

// Triggers groups the task's trigger configuration.
type Triggers struct {
	scoped

	StartTrigger     *StartTrigger
	ReferenceTrigger *ReferenceTrigger
	ArmStartTrigger  *ArmStartTrigger
	PauseTrigger     *PauseTrigger
	HandshakeTrigger *HandshakeTrigger
}

type (
	StartTrigger     struct{ scoped }
	ReferenceTrigger struct{ scoped }
	ArmStartTrigger  struct{ scoped }
	PauseTrigger     struct{ scoped }
	HandshakeTrigger struct{ scoped }
)

func newTriggers(core *taskCore) *Triggers {
	s := scoped{core, attributes.ScopeTrigger}
	return &Triggers{
		scoped:           s,
		StartTrigger:     &StartTrigger{s},
		ReferenceTrigger: &ReferenceTrigger{s},
		ArmStartTrigger:  &ArmStartTrigger{s},
		PauseTrigger:     &PauseTrigger{s},
		HandshakeTrigger: &HandshakeTrigger{s},
	}
}

// SendSoftwareTrigger fires a software trigger configured on the task.
func (t *Triggers) SendSoftwareTrigger(trigger constants.Signal) error {
	h, err := t.core.handle()
	if err != nil {
		return err
	}
	return t.core.interp.SendSoftwareTrigger(h, trigger)
}

func (t *StartTrigger) CfgDigEdge(source string, edge constants.Edge) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgDigEdgeStartTrig(h, source, edge)
	})
}

func (t *StartTrigger) CfgAnlgEdge(source string, slope constants.Slope, level float64) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgAnlgEdgeStartTrig(h, source, slope, level)
	})
}

func (t *StartTrigger) CfgAnlgWindow(source string, when constants.WindowTriggerCondition, top, bottom float64) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgAnlgWindowStartTrig(h, source, when, top, bottom)
	})
}

func (t *StartTrigger) CfgDigPattern(source, pattern string, when constants.DigitalPatternCondition) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgDigPatternStartTrig(h, source, pattern, when)
	})
}

// CfgTime starts the task at an absolute time on the given timescale.
func (t *StartTrigger) CfgTime(when timestamp.Time, timescale constants.Timescale) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgTimeStartTrig(h, when, timescale)
	})
}

// CfgAnlgMultiEdge starts the task when any of the edges occurs.
func (t *StartTrigger) CfgAnlgMultiEdge(edges ...AnalogMultiEdge) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgAnlgMultiEdgeStartTrig(h, edges)
	})
}

func (t *StartTrigger) Disable() error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.DisableStartTrig(h)
	})
}

// CfgDigEdge stops a finite acquisition pretrigger samples before the edge
// and acquires the rest after it.
func (t *ReferenceTrigger) CfgDigEdge(source string, edge constants.Edge, pretrigger uint32) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgDigEdgeRefTrig(h, source, edge, pretrigger)
	})
}

func (t *ReferenceTrigger) CfgAnlgEdge(source string, slope constants.Slope, level float64, pretrigger uint32) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgAnlgEdgeRefTrig(h, source, slope, level, pretrigger)
	})
}

func (t *ReferenceTrigger) CfgAnlgWindow(source string, when constants.WindowTriggerCondition, top, bottom float64, pretrigger uint32) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgAnlgWindowRefTrig(h, source, when, top, bottom, pretrigger)
	})
}

func (t *ReferenceTrigger) CfgDigPattern(source, pattern string, when constants.DigitalPatternCondition, pretrigger uint32) error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CfgDigPatternRefTrig(h, source, pattern, when, pretrigger)
	})
}

func (t *ReferenceTrigger) Disable() error {
	return t.configure(func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.DisableRefTrig(h)
	})
}
