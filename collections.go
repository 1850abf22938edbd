package daqmx

import (
	"fmt"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/channelnames"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
)

// collection is the per-type channel container shared by the typed
// collections on Task.
type collection[C any] struct {
	core *taskCore
	kind constants.ChannelType
	wrap func(Channel) C
}

func newCollection[C any](core *taskCore, kind constants.ChannelType, wrap func(Channel) C) collection[C] {
	return collection[C]{core: core, kind: kind, wrap: wrap}
}

// Names lists the task's virtual channels of this collection's type.
func (c collection[C]) Names() ([]string, error) {
	all, err := getNames(c.core, attributes.TaskChannels)
	if err != nil {
		return nil, err
	}
	h, err := c.core.handle()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, name := range all {
		kind, err := c.core.interp.GetInt32Attribute(interpreter.ChannelTarget(h, name), attributes.ChanType)
		if err != nil {
			return nil, daqerr.WithContext(err, c.core.name, name)
		}
		if constants.ChannelType(kind) == c.kind {
			out = append(out, name)
		}
	}
	return out, nil
}

func (c collection[C]) Len() (int, error) {
	names, err := c.Names()
	return len(names), err
}

// All returns every channel of this type as one channel.
func (c collection[C]) All() (C, error) {
	names, err := c.Names()
	if err != nil {
		var zero C
		return zero, err
	}
	return c.wrap(newChannel(c.core, channelnames.MustFlatten(names...), c.kind)), nil
}

func (c collection[C]) At(i int) (C, error) {
	names, err := c.Names()
	if err != nil {
		var zero C
		return zero, err
	}
	if i < 0 || i >= len(names) {
		var zero C
		return zero, fmt.Errorf("channel index %d out of range [0, %d): %w", i, len(names), daqerr.ErrInvalidArgument)
	}
	return c.wrap(newChannel(c.core, names[i], c.kind)), nil
}

// ByName returns the named channels. name may be a flattened list; every
// member must belong to this collection.
func (c collection[C]) ByName(name string) (C, error) {
	var zero C
	want, err := channelnames.Unflatten(name)
	if err != nil {
		return zero, err
	}
	names, err := c.Names()
	if err != nil {
		return zero, err
	}
	for _, n := range want {
		if !slices.Contains(names, n) {
			return zero, fmt.Errorf("no %s channel named %s in task %s: %w", c.kind, n, c.core.name, daqerr.ErrInvalidArgument)
		}
	}
	return c.wrap(newChannel(c.core, channelnames.MustFlatten(want...), c.kind)), nil
}

// add creates channels through create and returns them under the virtual
// name the driver assigns.
func (c collection[C]) add(physical, name string, create func(interpreter.Interpreter, interpreter.TaskHandle) error) (C, error) {
	var zero C
	virtual, err := virtualName(physical, name)
	if err != nil {
		return zero, err
	}
	h, err := c.core.handle()
	if err != nil {
		return zero, err
	}
	if err := create(c.core.interp, h); err != nil {
		return zero, daqerr.WithContext(err, c.core.name, virtual)
	}
	c.core.invalidate()
	c.core.log.Debug("Channel added", zap.String("channel", virtual), zap.Stringer("type", c.kind))
	return c.wrap(newChannel(c.core, virtual, c.kind)), nil
}

// virtualName predicts the names the driver gives new channels. A name
// assigned to several physical channels is numbered from zero.
func virtualName(physical, name string) (string, error) {
	if name == "" {
		return physical, nil
	}
	names, err := channelnames.Unflatten(physical)
	if err != nil {
		return "", err
	}
	if len(names) > 1 {
		return name + "0:" + strconv.Itoa(len(names)-1), nil
	}
	return name, nil
}

type AIChannelCollection struct{ collection[AIChannel] }

func (c *AIChannelCollection) AddVoltageChan(p AIVoltageChan) (AIChannel, error) {
	return c.add(p.PhysicalChannel, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateAIVoltageChan(h, p)
	})
}

func (c *AIChannelCollection) AddCurrentChan(p AICurrentChan) (AIChannel, error) {
	return c.add(p.PhysicalChannel, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateAICurrentChan(h, p)
	})
}

func (c *AIChannelCollection) AddThrmcplChan(p AIThrmcplChan) (AIChannel, error) {
	return c.add(p.PhysicalChannel, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateAIThrmcplChan(h, p)
	})
}

func (c *AIChannelCollection) AddRTDChan(p AIRTDChan) (AIChannel, error) {
	return c.add(p.PhysicalChannel, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateAIRTDChan(h, p)
	})
}

func (c *AIChannelCollection) AddAccelChan(p AIAccelChan) (AIChannel, error) {
	return c.add(p.PhysicalChannel, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateAIAccelChan(h, p)
	})
}

func (c *AIChannelCollection) AddStrainGageChan(p AIStrainGageChan) (AIChannel, error) {
	return c.add(p.PhysicalChannel, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateAIStrainGageChan(h, p)
	})
}

func (c *AIChannelCollection) AddResistanceChan(p AIResistanceChan) (AIChannel, error) {
	return c.add(p.PhysicalChannel, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateAIResistanceChan(h, p)
	})
}

type AOChannelCollection struct{ collection[AOChannel] }

func (c *AOChannelCollection) AddVoltageChan(p AOVoltageChan) (AOChannel, error) {
	return c.add(p.PhysicalChannel, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateAOVoltageChan(h, p)
	})
}

func (c *AOChannelCollection) AddCurrentChan(p AOCurrentChan) (AOChannel, error) {
	return c.add(p.PhysicalChannel, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateAOCurrentChan(h, p)
	})
}

func (c *AOChannelCollection) AddFuncGenChan(p AOFuncGenChan) (AOChannel, error) {
	return c.add(p.PhysicalChannel, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateAOFuncGenChan(h, p)
	})
}

type CIChannelCollection struct{ collection[CIChannel] }

func (c *CIChannelCollection) AddCountEdgesChan(p CICountEdgesChan) (CIChannel, error) {
	return c.add(p.Counter, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateCICountEdgesChan(h, p)
	})
}

func (c *CIChannelCollection) AddFreqChan(p CIFreqChan) (CIChannel, error) {
	return c.add(p.Counter, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateCIFreqChan(h, p)
	})
}

// AddPeriodChan takes time units in p.Units.
func (c *CIChannelCollection) AddPeriodChan(p CIFreqChan) (CIChannel, error) {
	return c.add(p.Counter, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateCIPeriodChan(h, p)
	})
}

func (c *CIChannelCollection) AddPulseWidthChan(p CIPulseWidthChan) (CIChannel, error) {
	return c.add(p.Counter, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateCIPulseWidthChan(h, p)
	})
}

func (c *CIChannelCollection) AddLinEncoderChan(p CILinEncoderChan) (CIChannel, error) {
	return c.add(p.Counter, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateCILinEncoderChan(h, p)
	})
}

func (c *CIChannelCollection) AddAngEncoderChan(p CIAngEncoderChan) (CIChannel, error) {
	return c.add(p.Counter, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateCIAngEncoderChan(h, p)
	})
}

func (c *CIChannelCollection) AddPulseChanFreq(p CIPulseChanFreq) (CIChannel, error) {
	return c.add(p.Counter, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateCIPulseChanFreq(h, p)
	})
}

type COChannelCollection struct{ collection[COChannel] }

func (c *COChannelCollection) AddPulseChanFreq(p COPulseChanFreq) (COChannel, error) {
	return c.add(p.Counter, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateCOPulseChanFreq(h, p)
	})
}

func (c *COChannelCollection) AddPulseChanTime(p COPulseChanTime) (COChannel, error) {
	return c.add(p.Counter, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateCOPulseChanTime(h, p)
	})
}

func (c *COChannelCollection) AddPulseChanTicks(p COPulseChanTicks) (COChannel, error) {
	return c.add(p.Counter, p.Name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateCOPulseChanTicks(h, p)
	})
}

// digitalName is the virtual name of new digital channels. One channel for
// all lines keeps the assigned name as is.
func digitalName(p DigitalChan) (string, string) {
	if p.Grouping == constants.ChanForAllLines && p.Name != "" {
		return p.Name, ""
	}
	return p.Lines, p.Name
}

type DIChannelCollection struct{ collection[DIChannel] }

func (c *DIChannelCollection) AddChan(p DigitalChan) (DIChannel, error) {
	physical, name := digitalName(p)
	return c.add(physical, name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateDIChan(h, p)
	})
}

type DOChannelCollection struct{ collection[DOChannel] }

func (c *DOChannelCollection) AddChan(p DigitalChan) (DOChannel, error) {
	physical, name := digitalName(p)
	return c.add(physical, name, func(i interpreter.Interpreter, h interpreter.TaskHandle) error {
		return i.CreateDOChan(h, p)
	})
}
