// Package daqmx exposes the NI-DAQmx driver through tasks, channels, streams
// and system objects. Every object talks to the driver through an
// interpreter: the native one calls the DAQmx C library in-process, the
// remote one calls an NI gRPC device server. Both behave the same; the
// transport is chosen when a task or system object is created.
//
//	task, err := daqmx.NewTask("")
//	if err != nil {
//		return err
//	}
//	defer task.Close()
//	if _, err := task.AIChannels.AddVoltageChan(daqmx.AIVoltageChan{
//		PhysicalChannel: "Dev1/ai0:3",
//		TerminalConfig:  constants.TermDefault,
//		Min:             -10,
//		Max:             10,
//		Units:           constants.Volts,
//	}); err != nil {
//		return err
//	}
//	data, err := task.Read(100, 10)
package daqmx

import (
	"go.uber.org/zap"

	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/internal/logging"
	"github.com/KevinKickass/daqmx/interpreter"
)

const (
	// ReadAllAvailable as a sample count reads the configured total of a
	// finite task, or whatever is in the buffer for a continuous task or
	// when the in-stream has ReadAllAvailSamp set.
	ReadAllAvailable = constants.ReadAllAvailable
	// WaitInfinitely as a timeout blocks without limit.
	WaitInfinitely = constants.WaitInfinitely
)

// SetLogger replaces the process-wide logger. The default discards
// everything unless DAQMX_LOG_LEVEL is set.
func SetLogger(l *zap.Logger) { logging.Set(l) }

// Channel creation parameters.
type (
	AIVoltageChan    = interpreter.AIVoltageChan
	AICurrentChan    = interpreter.AICurrentChan
	AIThrmcplChan    = interpreter.AIThrmcplChan
	AIRTDChan        = interpreter.AIRTDChan
	AIAccelChan      = interpreter.AIAccelChan
	AIStrainGageChan = interpreter.AIStrainGageChan
	AIResistanceChan = interpreter.AIResistanceChan
	AOVoltageChan    = interpreter.AOVoltageChan
	AOCurrentChan    = interpreter.AOCurrentChan
	AOFuncGenChan    = interpreter.AOFuncGenChan
	CICountEdgesChan = interpreter.CICountEdgesChan
	CIFreqChan       = interpreter.CIFreqChan
	CIPulseWidthChan = interpreter.CIPulseWidthChan
	CILinEncoderChan = interpreter.CILinEncoderChan
	CIAngEncoderChan = interpreter.CIAngEncoderChan
	CIPulseChanFreq  = interpreter.CIPulseChanFreq
	COPulseChanFreq  = interpreter.COPulseChanFreq
	COPulseChanTime  = interpreter.COPulseChanTime
	COPulseChanTicks = interpreter.COPulseChanTicks
	DigitalChan      = interpreter.DigitalChan
)

// Sample and event types shared with the interpreters.
type (
	CtrFreq            = interpreter.CtrFreq
	CtrTime            = interpreter.CtrTime
	CtrTick            = interpreter.CtrTick
	AnalogPowerUpState = interpreter.AnalogPowerUpState
	AnalogMultiEdge    = interpreter.AnalogMultiEdge
	BurstImportClock   = interpreter.BurstImportClock
	BurstExportClock   = interpreter.BurstExportClock
	EveryNSamplesEvent = interpreter.EveryNSamplesEvent
	DoneEvent          = interpreter.DoneEvent
	SignalEvent        = interpreter.SignalEvent
)
