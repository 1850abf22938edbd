package interpreter

import "github.com/KevinKickass/daqmx/constants"

// Channel creation parameters, one struct per channel kind. PhysicalChannel
// may be a flattened list; Name assigns virtual channel names and may be
// empty to use the physical names.

type AIVoltageChan struct {
	PhysicalChannel string
	Name            string
	TerminalConfig  constants.TerminalConfiguration
	Min, Max        float64
	Units           constants.VoltageUnits
	CustomScale     string
}

type AICurrentChan struct {
	PhysicalChannel  string
	Name             string
	TerminalConfig   constants.TerminalConfiguration
	Min, Max         float64
	Units            constants.CurrentUnits
	ShuntLocation    constants.CurrentShuntResistorLocation
	ExtShuntResistor float64
	CustomScale      string
}

type AIThrmcplChan struct {
	PhysicalChannel string
	Name            string
	Min, Max        float64
	Units           constants.TemperatureUnits
	Type            constants.ThermocoupleType
	CJCSource       constants.CJCSource
	CJCValue        float64
	CJCChannel      string
}

type AIRTDChan struct {
	PhysicalChannel  string
	Name             string
	Min, Max         float64
	Units            constants.TemperatureUnits
	Type             constants.RTDType
	ResistanceConfig constants.ResistanceConfiguration
	ExcitationSource constants.ExcitationSource
	ExcitationValue  float64
	R0               float64
}

type AIAccelChan struct {
	PhysicalChannel  string
	Name             string
	TerminalConfig   constants.TerminalConfiguration
	Min, Max         float64
	Units            constants.AccelUnits
	Sensitivity      float64
	SensitivityUnits constants.AccelSensitivityUnits
	ExcitationSource constants.ExcitationSource
	ExcitationValue  float64
	CustomScale      string
}

type AIStrainGageChan struct {
	PhysicalChannel       string
	Name                  string
	Min, Max              float64
	Units                 constants.StrainUnits
	BridgeConfig          constants.StrainGageBridgeType
	ExcitationSource      constants.ExcitationSource
	ExcitationValue       float64
	GageFactor            float64
	InitialBridgeVoltage  float64
	NominalGageResistance float64
	PoissonRatio          float64
	LeadWireResistance    float64
	CustomScale           string
}

type AIResistanceChan struct {
	PhysicalChannel  string
	Name             string
	Min, Max         float64
	Units            constants.ResistanceUnits
	ResistanceConfig constants.ResistanceConfiguration
	ExcitationSource constants.ExcitationSource
	ExcitationValue  float64
	CustomScale      string
}

type AOVoltageChan struct {
	PhysicalChannel string
	Name            string
	Min, Max        float64
	Units           constants.VoltageUnits
	CustomScale     string
}

type AOCurrentChan struct {
	PhysicalChannel string
	Name            string
	Min, Max        float64
	Units           constants.CurrentUnits
	CustomScale     string
}

type AOFuncGenChan struct {
	PhysicalChannel string
	Name            string
	Type            constants.FuncGenType
	Freq            float64
	Amplitude       float64
	Offset          float64
}

type CICountEdgesChan struct {
	Counter      string
	Name         string
	Edge         constants.Edge
	InitialCount uint32
	Direction    constants.CountDirection
}

// CIFreqChan also configures period channels; Units is then a time unit.
type CIFreqChan struct {
	Counter     string
	Name        string
	Min, Max    float64
	Units       int32
	Edge        constants.Edge
	Method      constants.CounterFrequencyMethod
	MeasTime    float64
	Divisor     uint32
	CustomScale string
}

type CIPulseWidthChan struct {
	Counter      string
	Name         string
	Min, Max     float64
	Units        constants.TimeUnits
	StartingEdge constants.Edge
	CustomScale  string
}

type CILinEncoderChan struct {
	Counter      string
	Name         string
	DecodingType constants.EncoderType
	ZIndexEnable bool
	ZIndexValue  float64
	ZIndexPhase  constants.EncoderZIndexPhase
	Units        constants.LengthUnits
	DistPerPulse float64
	InitialPos   float64
	CustomScale  string
}

type CIAngEncoderChan struct {
	Counter      string
	Name         string
	DecodingType constants.EncoderType
	ZIndexEnable bool
	ZIndexValue  float64
	ZIndexPhase  constants.EncoderZIndexPhase
	Units        constants.AngleUnits
	PulsesPerRev uint32
	InitialAngle float64
	CustomScale  string
}

type CIPulseChanFreq struct {
	Counter  string
	Name     string
	Min, Max float64
	Units    constants.FrequencyUnits
}

type COPulseChanFreq struct {
	Counter      string
	Name         string
	Units        constants.FrequencyUnits
	IdleState    constants.Level
	InitialDelay float64
	Freq         float64
	DutyCycle    float64
}

type COPulseChanTime struct {
	Counter      string
	Name         string
	Units        constants.TimeUnits
	IdleState    constants.Level
	InitialDelay float64
	LowTime      float64
	HighTime     float64
}

type COPulseChanTicks struct {
	Counter        string
	Name           string
	SourceTerminal string
	IdleState      constants.Level
	InitialDelay   int32
	LowTicks       int32
	HighTicks      int32
}

type DigitalChan struct {
	Lines    string
	Name     string
	Grouping constants.LineGrouping
}
