// Package interpreter defines the transport-neutral operation surface that
// every Task, channel and system object talks to. Two implementations exist:
// native, which calls the DAQmx C library in-process, and remote, which calls
// the NI gRPC device server.
//
// Timeouts are in seconds; constants.WaitInfinitely blocks without limit.
// Multi-sample reads and writes take an explicit sample layout and return the
// number of samples per channel actually transferred. A successful read of k
// samples fills only the first k positions of each channel's region of the
// buffer.
package interpreter

import (
	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/timestamp"
	"github.com/KevinKickass/daqmx/waveform"
)

type Interpreter interface {
	Lifecycle
	ChannelFactory
	AttributeAccess
	TimingAndTriggers
	Reader
	Writer
	Events
	System
}

type Lifecycle interface {
	CreateTask(name string) (TaskHandle, error)
	LoadTask(name string) (TaskHandle, error)
	ClearTask(h TaskHandle) error
	StartTask(h TaskHandle) error
	StopTask(h TaskHandle) error
	WaitUntilTaskDone(h TaskHandle, timeout float64) error
	IsTaskDone(h TaskHandle) (bool, error)
	TaskControl(h TaskHandle, action constants.TaskMode) error
	AddGlobalChansToTask(h TaskHandle, channels string) error

	SaveTask(h TaskHandle, saveAs, author string, opts constants.SaveOptions) error
	SaveGlobalChan(h TaskHandle, channel, saveAs, author string, opts constants.SaveOptions) error
	SaveScale(scale, saveAs, author string, opts constants.SaveOptions) error
	DeleteSavedTask(name string) error
	DeleteSavedGlobalChan(name string) error
	DeleteSavedScale(name string) error
}

type ChannelFactory interface {
	CreateAIVoltageChan(h TaskHandle, p AIVoltageChan) error
	CreateAICurrentChan(h TaskHandle, p AICurrentChan) error
	CreateAIThrmcplChan(h TaskHandle, p AIThrmcplChan) error
	CreateAIRTDChan(h TaskHandle, p AIRTDChan) error
	CreateAIAccelChan(h TaskHandle, p AIAccelChan) error
	CreateAIStrainGageChan(h TaskHandle, p AIStrainGageChan) error
	CreateAIResistanceChan(h TaskHandle, p AIResistanceChan) error
	CreateAOVoltageChan(h TaskHandle, p AOVoltageChan) error
	CreateAOCurrentChan(h TaskHandle, p AOCurrentChan) error
	CreateAOFuncGenChan(h TaskHandle, p AOFuncGenChan) error
	CreateCICountEdgesChan(h TaskHandle, p CICountEdgesChan) error
	CreateCIFreqChan(h TaskHandle, p CIFreqChan) error
	CreateCIPeriodChan(h TaskHandle, p CIFreqChan) error
	CreateCIPulseWidthChan(h TaskHandle, p CIPulseWidthChan) error
	CreateCILinEncoderChan(h TaskHandle, p CILinEncoderChan) error
	CreateCIAngEncoderChan(h TaskHandle, p CIAngEncoderChan) error
	CreateCIPulseChanFreq(h TaskHandle, p CIPulseChanFreq) error
	CreateCOPulseChanFreq(h TaskHandle, p COPulseChanFreq) error
	CreateCOPulseChanTime(h TaskHandle, p COPulseChanTime) error
	CreateCOPulseChanTicks(h TaskHandle, p COPulseChanTicks) error
	CreateDIChan(h TaskHandle, p DigitalChan) error
	CreateDOChan(h TaskHandle, p DigitalChan) error
}

// AttributeAccess gets, sets and resets attributes by ID. The category in the
// method name must match the attribute's category.
type AttributeAccess interface {
	GetBoolAttribute(t Target, id attributes.ID) (bool, error)
	SetBoolAttribute(t Target, id attributes.ID, v bool) error
	GetInt32Attribute(t Target, id attributes.ID) (int32, error)
	SetInt32Attribute(t Target, id attributes.ID, v int32) error
	GetUint32Attribute(t Target, id attributes.ID) (uint32, error)
	SetUint32Attribute(t Target, id attributes.ID, v uint32) error
	GetUint64Attribute(t Target, id attributes.ID) (uint64, error)
	SetUint64Attribute(t Target, id attributes.ID, v uint64) error
	GetFloat64Attribute(t Target, id attributes.ID) (float64, error)
	SetFloat64Attribute(t Target, id attributes.ID, v float64) error
	GetStringAttribute(t Target, id attributes.ID) (string, error)
	SetStringAttribute(t Target, id attributes.ID, v string) error
	GetFloat64ArrayAttribute(t Target, id attributes.ID) ([]float64, error)
	SetFloat64ArrayAttribute(t Target, id attributes.ID, v []float64) error
	GetInt32ArrayAttribute(t Target, id attributes.ID) ([]int32, error)
	SetInt32ArrayAttribute(t Target, id attributes.ID, v []int32) error
	GetUint32ArrayAttribute(t Target, id attributes.ID) ([]uint32, error)
	SetUint32ArrayAttribute(t Target, id attributes.ID, v []uint32) error
	GetBytesAttribute(t Target, id attributes.ID) ([]byte, error)
	SetBytesAttribute(t Target, id attributes.ID, v []byte) error
	GetTimestampAttribute(t Target, id attributes.ID) (timestamp.Time, error)
	SetTimestampAttribute(t Target, id attributes.ID, v timestamp.Time) error
	ResetAttribute(t Target, id attributes.ID) error
}

type TimingAndTriggers interface {
	CfgSampClkTiming(h TaskHandle, source string, rate float64, edge constants.Edge, mode constants.AcquisitionType, sampsPerChan uint64) error
	CfgImplicitTiming(h TaskHandle, mode constants.AcquisitionType, sampsPerChan uint64) error
	CfgChangeDetectionTiming(h TaskHandle, rising, falling string, mode constants.AcquisitionType, sampsPerChan uint64) error
	CfgHandshakingTiming(h TaskHandle, mode constants.AcquisitionType, sampsPerChan uint64) error
	CfgBurstHandshakingTimingImportClock(h TaskHandle, p BurstImportClock) error
	CfgBurstHandshakingTimingExportClock(h TaskHandle, p BurstExportClock) error

	CfgDigEdgeStartTrig(h TaskHandle, source string, edge constants.Edge) error
	CfgAnlgEdgeStartTrig(h TaskHandle, source string, slope constants.Slope, level float64) error
	CfgAnlgWindowStartTrig(h TaskHandle, source string, when constants.WindowTriggerCondition, top, bottom float64) error
	CfgDigPatternStartTrig(h TaskHandle, source, pattern string, when constants.DigitalPatternCondition) error
	CfgTimeStartTrig(h TaskHandle, when timestamp.Time, timescale constants.Timescale) error
	CfgAnlgMultiEdgeStartTrig(h TaskHandle, edges []AnalogMultiEdge) error
	DisableStartTrig(h TaskHandle) error
	CfgDigEdgeRefTrig(h TaskHandle, source string, edge constants.Edge, pretrigger uint32) error
	CfgAnlgEdgeRefTrig(h TaskHandle, source string, slope constants.Slope, level float64, pretrigger uint32) error
	CfgAnlgWindowRefTrig(h TaskHandle, source string, when constants.WindowTriggerCondition, top, bottom float64, pretrigger uint32) error
	CfgDigPatternRefTrig(h TaskHandle, source, pattern string, when constants.DigitalPatternCondition, pretrigger uint32) error
	DisableRefTrig(h TaskHandle) error
	SendSoftwareTrigger(h TaskHandle, trigger constants.Signal) error

	WaitForNextSampleClock(h TaskHandle, timeout float64) (late bool, err error)
	WaitForValidTimestamp(h TaskHandle, event constants.TimestampEvent, timeout float64) (timestamp.Time, error)
}

type Reader interface {
	ReadAnalogF64(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []float64) (int, error)
	ReadAnalogScalarF64(h TaskHandle, timeout float64) (float64, error)
	ReadBinaryI16(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []int16) (int, error)
	ReadBinaryI32(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []int32) (int, error)
	ReadBinaryU16(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint16) (int, error)
	ReadBinaryU32(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint32) (int, error)
	ReadCounterF64(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []float64) (int, error)
	ReadCounterU32(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint32) (int, error)
	ReadCounterScalarF64(h TaskHandle, timeout float64) (float64, error)
	ReadCounterScalarU32(h TaskHandle, timeout float64) (uint32, error)
	ReadCtrFreq(h TaskHandle, n int, timeout float64, fill constants.FillMode, freq, duty []float64) (int, error)
	ReadCtrTime(h TaskHandle, n int, timeout float64, fill constants.FillMode, high, low []float64) (int, error)
	ReadCtrTicks(h TaskHandle, n int, timeout float64, fill constants.FillMode, high, low []uint32) (int, error)
	ReadCtrFreqScalar(h TaskHandle, timeout float64) (CtrFreq, error)
	ReadCtrTimeScalar(h TaskHandle, timeout float64) (CtrTime, error)
	ReadCtrTicksScalar(h TaskHandle, timeout float64) (CtrTick, error)
	// ReadDigitalLines returns samples per channel read and bytes per sample.
	ReadDigitalLines(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint8) (int, int, error)
	ReadDigitalU8(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint8) (int, error)
	ReadDigitalU16(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint16) (int, error)
	ReadDigitalU32(h TaskHandle, n int, timeout float64, fill constants.FillMode, buf []uint32) (int, error)
	ReadDigitalScalarU32(h TaskHandle, timeout float64) (uint32, error)
	// ReadRaw returns samples read and bytes per sample.
	ReadRaw(h TaskHandle, n int, timeout float64, buf []byte) (int, int, error)
	ReadAnalogWaveforms(h TaskHandle, n int, timeout float64, wfs []*waveform.Analog, policy waveform.ReallocationPolicy) (int, error)
	ReadDigitalWaveforms(h TaskHandle, n int, timeout float64, wfs []*waveform.Digital, policy waveform.ReallocationPolicy) (int, error)
}

type Writer interface {
	WriteAnalogF64(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []float64) (int, error)
	WriteAnalogScalarF64(h TaskHandle, autoStart bool, timeout float64, v float64) error
	WriteBinaryI16(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []int16) (int, error)
	WriteBinaryI32(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []int32) (int, error)
	WriteBinaryU16(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint16) (int, error)
	WriteBinaryU32(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint32) (int, error)
	WriteCtrFreq(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, freq, duty []float64) (int, error)
	WriteCtrTime(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, high, low []float64) (int, error)
	WriteCtrTicks(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, high, low []uint32) (int, error)
	WriteCtrFreqScalar(h TaskHandle, autoStart bool, timeout float64, v CtrFreq) error
	WriteCtrTimeScalar(h TaskHandle, autoStart bool, timeout float64, v CtrTime) error
	WriteCtrTicksScalar(h TaskHandle, autoStart bool, timeout float64, v CtrTick) error
	WriteDigitalLines(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint8) (int, error)
	WriteDigitalU8(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint8) (int, error)
	WriteDigitalU16(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint16) (int, error)
	WriteDigitalU32(h TaskHandle, n int, autoStart bool, timeout float64, fill constants.FillMode, data []uint32) (int, error)
	WriteDigitalScalarU32(h TaskHandle, autoStart bool, timeout float64, v uint32) error
	WriteRaw(h TaskHandle, n int, autoStart bool, timeout float64, data []byte) (int, error)
	WriteAnalogWaveforms(h TaskHandle, autoStart bool, timeout float64, wfs []*waveform.Analog) (int, error)
	WriteDigitalWaveforms(h TaskHandle, autoStart bool, timeout float64, wfs []*waveform.Digital) (int, error)
}

type Events interface {
	RegisterEveryNSamplesEvent(h TaskHandle, typ constants.EveryNSamplesEventType, n uint32, cb func(EveryNSamplesEvent)) (Registration, error)
	RegisterDoneEvent(h TaskHandle, cb func(DoneEvent)) (Registration, error)
	RegisterSignalEvent(h TaskHandle, signal constants.Signal, cb func(SignalEvent)) (Registration, error)
}

type System interface {
	GetErrorString(code daqerr.Code) (string, error)
	GetExtendedErrorInfo() (string, error)
	SetAnalogPowerUpStates(states []AnalogPowerUpState) error
	GetAnalogPowerUpStates(channels []string) ([]AnalogPowerUpState, error)
	ResetDevice(device string) error
	SelfTestDevice(device string) error
	ConnectTerms(source, destination string, invert bool) error
	DisconnectTerms(source, destination string) error
	CreateLinScale(name string, slope, yIntercept float64, pre constants.UnitsPreScaled, scaledUnits string) error
	CreateMapScale(name string, preMin, preMax, scaledMin, scaledMax float64, pre constants.UnitsPreScaled, scaledUnits string) error
	CreatePolynomialScale(name string, forward, reverse []float64, pre constants.UnitsPreScaled, scaledUnits string) error
	CreateTableScale(name string, prescaled, scaled []float64, pre constants.UnitsPreScaled, scaledUnits string) error
}

// NotSupported is the uniform error for operations a transport lacks.
func NotSupported(feature, transport string) error {
	return &daqerr.FeatureNotSupportedError{Feature: feature, Reason: "not available over the " + transport + " transport"}
}

// InvertPolarity is the signal modifier for ConnectTerms.
const InvertPolarity = 1
