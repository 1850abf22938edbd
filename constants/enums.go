package constants

// AcquisitionType is the sample mode of a timed task.
type AcquisitionType int32

const (
	Finite             AcquisitionType = 10178
	Continuous         AcquisitionType = 10123
	HWTimedSinglePoint AcquisitionType = 12522
)

var acquisitionTypeNames = map[AcquisitionType]string{
	Finite:             "Finite",
	Continuous:         "Continuous",
	HWTimedSinglePoint: "HWTimedSinglePoint",
}

func (v AcquisitionType) String() string { return enumName(acquisitionTypeNames, v) }

// Edge is the active edge of a clock or trigger.
type Edge int32

const (
	Rising  Edge = 10280
	Falling Edge = 10171
)

var edgeNames = map[Edge]string{
	Rising:  "Rising",
	Falling: "Falling",
}

func (v Edge) String() string { return enumName(edgeNames, v) }

// Slope is the slope of an analog trigger.
type Slope int32

const (
	SlopeRising  Slope = 10280
	SlopeFalling Slope = 10171
)

var slopeNames = map[Slope]string{
	SlopeRising:  "SlopeRising",
	SlopeFalling: "SlopeFalling",
}

func (v Slope) String() string { return enumName(slopeNames, v) }

// TerminalConfiguration is the input terminal configuration.
type TerminalConfiguration int32

const (
	TermDefault        TerminalConfiguration = -1
	RSE                TerminalConfiguration = 10083
	NRSE               TerminalConfiguration = 10078
	Differential       TerminalConfiguration = 10106
	PseudoDifferential TerminalConfiguration = 12529
)

var terminalConfigurationNames = map[TerminalConfiguration]string{
	TermDefault:        "TermDefault",
	RSE:                "RSE",
	NRSE:               "NRSE",
	Differential:       "Differential",
	PseudoDifferential: "PseudoDifferential",
}

func (v TerminalConfiguration) String() string { return enumName(terminalConfigurationNames, v) }

type VoltageUnits int32

const (
	Volts                VoltageUnits = 10348
	VoltsFromCustomScale VoltageUnits = 10065
)

var voltageUnitsNames = map[VoltageUnits]string{
	Volts:                "Volts",
	VoltsFromCustomScale: "VoltsFromCustomScale",
}

func (v VoltageUnits) String() string { return enumName(voltageUnitsNames, v) }

type CurrentUnits int32

const (
	Amps                CurrentUnits = 10342
	AmpsFromCustomScale CurrentUnits = 10065
)

var currentUnitsNames = map[CurrentUnits]string{
	Amps:                "Amps",
	AmpsFromCustomScale: "AmpsFromCustomScale",
}

func (v CurrentUnits) String() string { return enumName(currentUnitsNames, v) }

type TemperatureUnits int32

const (
	DegC    TemperatureUnits = 10143
	DegF    TemperatureUnits = 10144
	Kelvins TemperatureUnits = 10325
	DegR    TemperatureUnits = 10145
)

var temperatureUnitsNames = map[TemperatureUnits]string{
	DegC:    "DegC",
	DegF:    "DegF",
	Kelvins: "Kelvins",
	DegR:    "DegR",
}

func (v TemperatureUnits) String() string { return enumName(temperatureUnitsNames, v) }

type ThermocoupleType int32

const (
	ThermocoupleB ThermocoupleType = 10047
	ThermocoupleE ThermocoupleType = 10055
	ThermocoupleJ ThermocoupleType = 10072
	ThermocoupleK ThermocoupleType = 10073
	ThermocoupleN ThermocoupleType = 10077
	ThermocoupleR ThermocoupleType = 10082
	ThermocoupleS ThermocoupleType = 10085
	ThermocoupleT ThermocoupleType = 10086
)

var thermocoupleTypeNames = map[ThermocoupleType]string{
	ThermocoupleB: "ThermocoupleB",
	ThermocoupleE: "ThermocoupleE",
	ThermocoupleJ: "ThermocoupleJ",
	ThermocoupleK: "ThermocoupleK",
	ThermocoupleN: "ThermocoupleN",
	ThermocoupleR: "ThermocoupleR",
	ThermocoupleS: "ThermocoupleS",
	ThermocoupleT: "ThermocoupleT",
}

func (v ThermocoupleType) String() string { return enumName(thermocoupleTypeNames, v) }

// CJCSource is the cold-junction compensation source.
type CJCSource int32

const (
	CJCBuiltIn           CJCSource = 10200
	CJCConstantUserValue CJCSource = 10116
	CJCScannableChannel  CJCSource = 10113
)

var cJCSourceNames = map[CJCSource]string{
	CJCBuiltIn:           "CJCBuiltIn",
	CJCConstantUserValue: "CJCConstantUserValue",
	CJCScannableChannel:  "CJCScannableChannel",
}

func (v CJCSource) String() string { return enumName(cJCSourceNames, v) }

type RTDType int32

const (
	Pt3750    RTDType = 12481
	Pt3851    RTDType = 10071
	Pt3911    RTDType = 12482
	Pt3916    RTDType = 10069
	Pt3920    RTDType = 10053
	Pt3928    RTDType = 12483
	RTDCustom RTDType = 10137
)

var rTDTypeNames = map[RTDType]string{
	Pt3750:    "Pt3750",
	Pt3851:    "Pt3851",
	Pt3911:    "Pt3911",
	Pt3916:    "Pt3916",
	Pt3920:    "Pt3920",
	Pt3928:    "Pt3928",
	RTDCustom: "RTDCustom",
}

func (v RTDType) String() string { return enumName(rTDTypeNames, v) }

type ResistanceConfiguration int32

const (
	TwoWire   ResistanceConfiguration = 2
	ThreeWire ResistanceConfiguration = 3
	FourWire  ResistanceConfiguration = 4
)

var resistanceConfigurationNames = map[ResistanceConfiguration]string{
	TwoWire:   "TwoWire",
	ThreeWire: "ThreeWire",
	FourWire:  "FourWire",
}

func (v ResistanceConfiguration) String() string { return enumName(resistanceConfigurationNames, v) }

type ExcitationSource int32

const (
	ExcitationInternal ExcitationSource = 10200
	ExcitationExternal ExcitationSource = 10167
	ExcitationNone     ExcitationSource = 10230
)

var excitationSourceNames = map[ExcitationSource]string{
	ExcitationInternal: "ExcitationInternal",
	ExcitationExternal: "ExcitationExternal",
	ExcitationNone:     "ExcitationNone",
}

func (v ExcitationSource) String() string { return enumName(excitationSourceNames, v) }

type CurrentShuntResistorLocation int32

const (
	ShuntLetDriverChoose CurrentShuntResistorLocation = -1
	ShuntInternal        CurrentShuntResistorLocation = 10200
	ShuntExternal        CurrentShuntResistorLocation = 10167
)

var currentShuntResistorLocationNames = map[CurrentShuntResistorLocation]string{
	ShuntLetDriverChoose: "ShuntLetDriverChoose",
	ShuntInternal:        "ShuntInternal",
	ShuntExternal:        "ShuntExternal",
}

func (v CurrentShuntResistorLocation) String() string {
	return enumName(currentShuntResistorLocationNames, v)
}

type ResistanceUnits int32

const (
	Ohms                ResistanceUnits = 10384
	OhmsFromCustomScale ResistanceUnits = 10065
)

var resistanceUnitsNames = map[ResistanceUnits]string{
	Ohms:                "Ohms",
	OhmsFromCustomScale: "OhmsFromCustomScale",
}

func (v ResistanceUnits) String() string { return enumName(resistanceUnitsNames, v) }

type AccelUnits int32

const (
	G                      AccelUnits = 10186
	MetersPerSecondSquared AccelUnits = 12470
	InchesPerSecondSquared AccelUnits = 12471
	AccelFromCustomScale   AccelUnits = 10065
)

var accelUnitsNames = map[AccelUnits]string{
	G:                      "G",
	MetersPerSecondSquared: "MetersPerSecondSquared",
	InchesPerSecondSquared: "InchesPerSecondSquared",
	AccelFromCustomScale:   "AccelFromCustomScale",
}

func (v AccelUnits) String() string { return enumName(accelUnitsNames, v) }

type AccelSensitivityUnits int32

const (
	MilliVoltsPerG AccelSensitivityUnits = 12509
	VoltsPerG      AccelSensitivityUnits = 12510
)

var accelSensitivityUnitsNames = map[AccelSensitivityUnits]string{
	MilliVoltsPerG: "MilliVoltsPerG",
	VoltsPerG:      "VoltsPerG",
}

func (v AccelSensitivityUnits) String() string { return enumName(accelSensitivityUnitsNames, v) }

type StrainUnits int32

const (
	Strain                StrainUnits = 10299
	StrainFromCustomScale StrainUnits = 10065
)

var strainUnitsNames = map[StrainUnits]string{
	Strain:                "Strain",
	StrainFromCustomScale: "StrainFromCustomScale",
}

func (v StrainUnits) String() string { return enumName(strainUnitsNames, v) }

type StrainGageBridgeType int32

const (
	FullBridgeI     StrainGageBridgeType = 10183
	FullBridgeII    StrainGageBridgeType = 10184
	FullBridgeIII   StrainGageBridgeType = 10185
	HalfBridgeI     StrainGageBridgeType = 10188
	HalfBridgeII    StrainGageBridgeType = 10189
	QuarterBridgeI  StrainGageBridgeType = 10271
	QuarterBridgeII StrainGageBridgeType = 10272
)

var strainGageBridgeTypeNames = map[StrainGageBridgeType]string{
	FullBridgeI:     "FullBridgeI",
	FullBridgeII:    "FullBridgeII",
	FullBridgeIII:   "FullBridgeIII",
	HalfBridgeI:     "HalfBridgeI",
	HalfBridgeII:    "HalfBridgeII",
	QuarterBridgeI:  "QuarterBridgeI",
	QuarterBridgeII: "QuarterBridgeII",
}

func (v StrainGageBridgeType) String() string { return enumName(strainGageBridgeTypeNames, v) }

type Coupling int32

const (
	CouplingAC  Coupling = 10045
	CouplingDC  Coupling = 10050
	CouplingGND Coupling = 10066
)

var couplingNames = map[Coupling]string{
	CouplingAC:  "CouplingAC",
	CouplingDC:  "CouplingDC",
	CouplingGND: "CouplingGND",
}

func (v Coupling) String() string { return enumName(couplingNames, v) }

type CountDirection int32

const (
	CountUp              CountDirection = 10128
	CountDown            CountDirection = 10124
	ExternallyControlled CountDirection = 10326
)

var countDirectionNames = map[CountDirection]string{
	CountUp:              "CountUp",
	CountDown:            "CountDown",
	ExternallyControlled: "ExternallyControlled",
}

func (v CountDirection) String() string { return enumName(countDirectionNames, v) }

type FrequencyUnits int32

const (
	Hz                       FrequencyUnits = 10373
	FrequencyTicks           FrequencyUnits = 10304
	FrequencyFromCustomScale FrequencyUnits = 10065
)

var frequencyUnitsNames = map[FrequencyUnits]string{
	Hz:                       "Hz",
	FrequencyTicks:           "FrequencyTicks",
	FrequencyFromCustomScale: "FrequencyFromCustomScale",
}

func (v FrequencyUnits) String() string { return enumName(frequencyUnitsNames, v) }

type TimeUnits int32

const (
	Seconds             TimeUnits = 10364
	TimeTicks           TimeUnits = 10304
	TimeFromCustomScale TimeUnits = 10065
)

var timeUnitsNames = map[TimeUnits]string{
	Seconds:             "Seconds",
	TimeTicks:           "TimeTicks",
	TimeFromCustomScale: "TimeFromCustomScale",
}

func (v TimeUnits) String() string { return enumName(timeUnitsNames, v) }

type CounterFrequencyMethod int32

const (
	LowFreq1Ctr    CounterFrequencyMethod = 10105
	HighFreq2Ctr   CounterFrequencyMethod = 10157
	LargeRange2Ctr CounterFrequencyMethod = 10205
	DynamicAvg     CounterFrequencyMethod = 16065
)

var counterFrequencyMethodNames = map[CounterFrequencyMethod]string{
	LowFreq1Ctr:    "LowFreq1Ctr",
	HighFreq2Ctr:   "HighFreq2Ctr",
	LargeRange2Ctr: "LargeRange2Ctr",
	DynamicAvg:     "DynamicAvg",
}

func (v CounterFrequencyMethod) String() string { return enumName(counterFrequencyMethodNames, v) }

type Level int32

const (
	Low  Level = 10214
	High Level = 10192
)

var levelNames = map[Level]string{
	Low:  "Low",
	High: "High",
}

func (v Level) String() string { return enumName(levelNames, v) }

type EncoderType int32

const (
	X1               EncoderType = 10090
	X2               EncoderType = 10091
	X4               EncoderType = 10092
	TwoPulseCounting EncoderType = 10313
)

var encoderTypeNames = map[EncoderType]string{
	X1:               "X1",
	X2:               "X2",
	X4:               "X4",
	TwoPulseCounting: "TwoPulseCounting",
}

func (v EncoderType) String() string { return enumName(encoderTypeNames, v) }

type EncoderZIndexPhase int32

const (
	AHighBHigh EncoderZIndexPhase = 10040
	AHighBLow  EncoderZIndexPhase = 10041
	ALowBHigh  EncoderZIndexPhase = 10042
	ALowBLow   EncoderZIndexPhase = 10043
)

var encoderZIndexPhaseNames = map[EncoderZIndexPhase]string{
	AHighBHigh: "AHighBHigh",
	AHighBLow:  "AHighBLow",
	ALowBHigh:  "ALowBHigh",
	ALowBLow:   "ALowBLow",
}

func (v EncoderZIndexPhase) String() string { return enumName(encoderZIndexPhaseNames, v) }

type AngleUnits int32

const (
	Degrees              AngleUnits = 10146
	Radians              AngleUnits = 10273
	AngleTicks           AngleUnits = 10304
	AngleFromCustomScale AngleUnits = 10065
)

var angleUnitsNames = map[AngleUnits]string{
	Degrees:              "Degrees",
	Radians:              "Radians",
	AngleTicks:           "AngleTicks",
	AngleFromCustomScale: "AngleFromCustomScale",
}

func (v AngleUnits) String() string { return enumName(angleUnitsNames, v) }

type LengthUnits int32

const (
	Meters                LengthUnits = 10219
	Inches                LengthUnits = 10379
	LengthTicks           LengthUnits = 10304
	LengthFromCustomScale LengthUnits = 10065
)

var lengthUnitsNames = map[LengthUnits]string{
	Meters:                "Meters",
	Inches:                "Inches",
	LengthTicks:           "LengthTicks",
	LengthFromCustomScale: "LengthFromCustomScale",
}

func (v LengthUnits) String() string { return enumName(lengthUnitsNames, v) }

// LineGrouping is the how digital lines map to virtual channels.
type LineGrouping int32

const (
	ChanPerLine     LineGrouping = 0
	ChanForAllLines LineGrouping = 1
)

var lineGroupingNames = map[LineGrouping]string{
	ChanPerLine:     "ChanPerLine",
	ChanForAllLines: "ChanForAllLines",
}

func (v LineGrouping) String() string { return enumName(lineGroupingNames, v) }

// TaskMode is the actions accepted by task control.
type TaskMode int32

const (
	TaskStart     TaskMode = 0
	TaskStop      TaskMode = 1
	TaskVerify    TaskMode = 2
	TaskCommit    TaskMode = 3
	TaskReserve   TaskMode = 4
	TaskUnreserve TaskMode = 5
	TaskAbort     TaskMode = 6
)

var taskModeNames = map[TaskMode]string{
	TaskStart:     "TaskStart",
	TaskStop:      "TaskStop",
	TaskVerify:    "TaskVerify",
	TaskCommit:    "TaskCommit",
	TaskReserve:   "TaskReserve",
	TaskUnreserve: "TaskUnreserve",
	TaskAbort:     "TaskAbort",
}

func (v TaskMode) String() string { return enumName(taskModeNames, v) }

type SampleTimingType int32

const (
	SampleClock          SampleTimingType = 10388
	Handshake            SampleTimingType = 10389
	Implicit             SampleTimingType = 10451
	OnDemand             SampleTimingType = 10390
	ChangeDetection      SampleTimingType = 12504
	BurstHandshake       SampleTimingType = 12548
	PipelinedSampleClock SampleTimingType = 14668
)

var sampleTimingTypeNames = map[SampleTimingType]string{
	SampleClock:          "SampleClock",
	Handshake:            "Handshake",
	Implicit:             "Implicit",
	OnDemand:             "OnDemand",
	ChangeDetection:      "ChangeDetection",
	BurstHandshake:       "BurstHandshake",
	PipelinedSampleClock: "PipelinedSampleClock",
}

func (v SampleTimingType) String() string { return enumName(sampleTimingTypeNames, v) }

type TriggerType int32

const (
	TriggerAnalogEdge      TriggerType = 10099
	TriggerAnalogMultiEdge TriggerType = 16108
	TriggerAnalogWindow    TriggerType = 10103
	TriggerAnalogLevel     TriggerType = 10101
	TriggerDigitalEdge     TriggerType = 10150
	TriggerDigitalLevel    TriggerType = 10152
	TriggerDigitalPattern  TriggerType = 10398
	TriggerTime            TriggerType = 15996
	TriggerInterlocked     TriggerType = 12549
	TriggerNone            TriggerType = 10230
)

var triggerTypeNames = map[TriggerType]string{
	TriggerAnalogEdge:      "TriggerAnalogEdge",
	TriggerAnalogMultiEdge: "TriggerAnalogMultiEdge",
	TriggerAnalogWindow:    "TriggerAnalogWindow",
	TriggerAnalogLevel:     "TriggerAnalogLevel",
	TriggerDigitalEdge:     "TriggerDigitalEdge",
	TriggerDigitalLevel:    "TriggerDigitalLevel",
	TriggerDigitalPattern:  "TriggerDigitalPattern",
	TriggerTime:            "TriggerTime",
	TriggerInterlocked:     "TriggerInterlocked",
	TriggerNone:            "TriggerNone",
}

func (v TriggerType) String() string { return enumName(triggerTypeNames, v) }

type WindowTriggerCondition int32

const (
	EnteringWindow WindowTriggerCondition = 10163
	LeavingWindow  WindowTriggerCondition = 10208
)

var windowTriggerConditionNames = map[WindowTriggerCondition]string{
	EnteringWindow: "EnteringWindow",
	LeavingWindow:  "LeavingWindow",
}

func (v WindowTriggerCondition) String() string { return enumName(windowTriggerConditionNames, v) }

// WindowTriggerCondition2 is the window pause trigger condition.
type WindowTriggerCondition2 int32

const (
	InsideWindow  WindowTriggerCondition2 = 10199
	OutsideWindow WindowTriggerCondition2 = 10251
)

var windowTriggerCondition2Names = map[WindowTriggerCondition2]string{
	InsideWindow:  "InsideWindow",
	OutsideWindow: "OutsideWindow",
}

func (v WindowTriggerCondition2) String() string { return enumName(windowTriggerCondition2Names, v) }

type DigitalPatternCondition int32

const (
	PatternMatches      DigitalPatternCondition = 10254
	PatternDoesNotMatch DigitalPatternCondition = 10253
)

var digitalPatternConditionNames = map[DigitalPatternCondition]string{
	PatternMatches:      "PatternMatches",
	PatternDoesNotMatch: "PatternDoesNotMatch",
}

func (v DigitalPatternCondition) String() string { return enumName(digitalPatternConditionNames, v) }

// ActiveLevel is the analog level pause trigger condition.
type ActiveLevel int32

const (
	AboveLevel ActiveLevel = 10093
	BelowLevel ActiveLevel = 10107
)

var activeLevelNames = map[ActiveLevel]string{
	AboveLevel: "AboveLevel",
	BelowLevel: "BelowLevel",
}

func (v ActiveLevel) String() string { return enumName(activeLevelNames, v) }

// ChannelType is the direction and kind of a virtual channel.
type ChannelType int32

const (
	AnalogInput   ChannelType = 10100
	AnalogOutput  ChannelType = 10102
	DigitalInput  ChannelType = 10151
	DigitalOutput ChannelType = 10153
	CounterInput  ChannelType = 10131
	CounterOutput ChannelType = 10132
)

var channelTypeNames = map[ChannelType]string{
	AnalogInput:   "AnalogInput",
	AnalogOutput:  "AnalogOutput",
	DigitalInput:  "DigitalInput",
	DigitalOutput: "DigitalOutput",
	CounterInput:  "CounterInput",
	CounterOutput: "CounterOutput",
}

func (v ChannelType) String() string { return enumName(channelTypeNames, v) }

// UsageTypeAI is the measurement type of an analog input channel.
type UsageTypeAI int32

const (
	AIVoltage                 UsageTypeAI = 10322
	AICurrent                 UsageTypeAI = 10134
	AITemperatureThermocouple UsageTypeAI = 10303
	AITemperatureRTD          UsageTypeAI = 10301
	AIAccelerometer           UsageTypeAI = 10356
	AIStrainGage              UsageTypeAI = 10300
	AIResistance              UsageTypeAI = 10278
	AIFrequencyVoltage        UsageTypeAI = 10181
)

var usageTypeAINames = map[UsageTypeAI]string{
	AIVoltage:                 "AIVoltage",
	AICurrent:                 "AICurrent",
	AITemperatureThermocouple: "AITemperatureThermocouple",
	AITemperatureRTD:          "AITemperatureRTD",
	AIAccelerometer:           "AIAccelerometer",
	AIStrainGage:              "AIStrainGage",
	AIResistance:              "AIResistance",
	AIFrequencyVoltage:        "AIFrequencyVoltage",
}

func (v UsageTypeAI) String() string { return enumName(usageTypeAINames, v) }

// UsageTypeAO is the output type of an analog output channel.
type UsageTypeAO int32

const (
	AOVoltage            UsageTypeAO = 10322
	AOCurrent            UsageTypeAO = 10134
	AOFunctionGeneration UsageTypeAO = 14750
)

var usageTypeAONames = map[UsageTypeAO]string{
	AOVoltage:            "AOVoltage",
	AOCurrent:            "AOCurrent",
	AOFunctionGeneration: "AOFunctionGeneration",
}

func (v UsageTypeAO) String() string { return enumName(usageTypeAONames, v) }

// UsageTypeCI is the measurement type of a counter input channel.
type UsageTypeCI int32

const (
	CICountEdges        UsageTypeCI = 10125
	CIFrequency         UsageTypeCI = 10179
	CIPeriod            UsageTypeCI = 10256
	CIPulseWidth        UsageTypeCI = 10359
	CISemiPeriod        UsageTypeCI = 10289
	CIPulseFrequency    UsageTypeCI = 15864
	CIPulseTime         UsageTypeCI = 15865
	CIPulseTicks        UsageTypeCI = 15866
	CIAngularEncoder    UsageTypeCI = 10360
	CILinearEncoder     UsageTypeCI = 10361
	CITwoEdgeSeparation UsageTypeCI = 10267
)

var usageTypeCINames = map[UsageTypeCI]string{
	CICountEdges:        "CICountEdges",
	CIFrequency:         "CIFrequency",
	CIPeriod:            "CIPeriod",
	CIPulseWidth:        "CIPulseWidth",
	CISemiPeriod:        "CISemiPeriod",
	CIPulseFrequency:    "CIPulseFrequency",
	CIPulseTime:         "CIPulseTime",
	CIPulseTicks:        "CIPulseTicks",
	CIAngularEncoder:    "CIAngularEncoder",
	CILinearEncoder:     "CILinearEncoder",
	CITwoEdgeSeparation: "CITwoEdgeSeparation",
}

func (v UsageTypeCI) String() string { return enumName(usageTypeCINames, v) }

// UsageTypeCO is the output type of a counter output channel.
type UsageTypeCO int32

const (
	COPulseTime      UsageTypeCO = 10269
	COPulseFrequency UsageTypeCO = 10119
	COPulseTicks     UsageTypeCO = 10268
)

var usageTypeCONames = map[UsageTypeCO]string{
	COPulseTime:      "COPulseTime",
	COPulseFrequency: "COPulseFrequency",
	COPulseTicks:     "COPulseTicks",
}

func (v UsageTypeCO) String() string { return enumName(usageTypeCONames, v) }

// FillMode is the sample layout of a multi-channel read or write.
type FillMode int32

const (
	GroupByChannel    FillMode = 0
	GroupByScanNumber FillMode = 1
)

var fillModeNames = map[FillMode]string{
	GroupByChannel:    "GroupByChannel",
	GroupByScanNumber: "GroupByScanNumber",
}

func (v FillMode) String() string { return enumName(fillModeNames, v) }

type EveryNSamplesEventType int32

const (
	AcquiredIntoBuffer    EveryNSamplesEventType = 1
	TransferredFromBuffer EveryNSamplesEventType = 2
)

var everyNSamplesEventTypeNames = map[EveryNSamplesEventType]string{
	AcquiredIntoBuffer:    "AcquiredIntoBuffer",
	TransferredFromBuffer: "TransferredFromBuffer",
}

func (v EveryNSamplesEventType) String() string { return enumName(everyNSamplesEventTypeNames, v) }

// Signal is the signals that can raise events or be exported.
type Signal int32

const (
	SignalSampleClock          Signal = 12487
	SignalSampleCompleteEvent  Signal = 12530
	SignalCounterOutputEvent   Signal = 12494
	SignalChangeDetectionEvent Signal = 12511
	SignalStartTrigger         Signal = 12491
	SignalReferenceTrigger     Signal = 12490
	SignalAIConvertClock       Signal = 12484
	SignalTwentyMHzTimebase    Signal = 12486
	SignalAdvanceTrigger       Signal = 12488
	SignalSampleClockTimebase  Signal = 12489
	SignalTenMHzRefClock       Signal = 12536
)

var signalNames = map[Signal]string{
	SignalSampleClock:          "SignalSampleClock",
	SignalSampleCompleteEvent:  "SignalSampleCompleteEvent",
	SignalCounterOutputEvent:   "SignalCounterOutputEvent",
	SignalChangeDetectionEvent: "SignalChangeDetectionEvent",
	SignalStartTrigger:         "SignalStartTrigger",
	SignalReferenceTrigger:     "SignalReferenceTrigger",
	SignalAIConvertClock:       "SignalAIConvertClock",
	SignalTwentyMHzTimebase:    "SignalTwentyMHzTimebase",
	SignalAdvanceTrigger:       "SignalAdvanceTrigger",
	SignalSampleClockTimebase:  "SignalSampleClockTimebase",
	SignalTenMHzRefClock:       "SignalTenMHzRefClock",
}

func (v Signal) String() string { return enumName(signalNames, v) }

type RegenerationMode int32

const (
	AllowRegeneration      RegenerationMode = 10097
	DoNotAllowRegeneration RegenerationMode = 10158
)

var regenerationModeNames = map[RegenerationMode]string{
	AllowRegeneration:      "AllowRegeneration",
	DoNotAllowRegeneration: "DoNotAllowRegeneration",
}

func (v RegenerationMode) String() string { return enumName(regenerationModeNames, v) }

type ReadRelativeTo int32

const (
	ReadFromFirstSample           ReadRelativeTo = 10424
	ReadFromCurrentPosition       ReadRelativeTo = 10425
	ReadFromReferenceTrigger      ReadRelativeTo = 10426
	ReadFromFirstPretriggerSample ReadRelativeTo = 10427
	ReadFromMostRecentSample      ReadRelativeTo = 10428
)

var readRelativeToNames = map[ReadRelativeTo]string{
	ReadFromFirstSample:           "ReadFromFirstSample",
	ReadFromCurrentPosition:       "ReadFromCurrentPosition",
	ReadFromReferenceTrigger:      "ReadFromReferenceTrigger",
	ReadFromFirstPretriggerSample: "ReadFromFirstPretriggerSample",
	ReadFromMostRecentSample:      "ReadFromMostRecentSample",
}

func (v ReadRelativeTo) String() string { return enumName(readRelativeToNames, v) }

type WriteRelativeTo int32

const (
	WriteFromFirstSample     WriteRelativeTo = 10424
	WriteFromCurrentPosition WriteRelativeTo = 10430
)

var writeRelativeToNames = map[WriteRelativeTo]string{
	WriteFromFirstSample:     "WriteFromFirstSample",
	WriteFromCurrentPosition: "WriteFromCurrentPosition",
}

func (v WriteRelativeTo) String() string { return enumName(writeRelativeToNames, v) }

type OverwriteMode int32

const (
	OverwriteUnreadSamples      OverwriteMode = 10252
	DoNotOverwriteUnreadSamples OverwriteMode = 10159
)

var overwriteModeNames = map[OverwriteMode]string{
	OverwriteUnreadSamples:      "OverwriteUnreadSamples",
	DoNotOverwriteUnreadSamples: "DoNotOverwriteUnreadSamples",
}

func (v OverwriteMode) String() string { return enumName(overwriteModeNames, v) }

type WaitMode int32

const (
	WaitForInterrupt WaitMode = 12523
	Poll             WaitMode = 12524
	Yield            WaitMode = 12525
	Sleep            WaitMode = 12547
)

var waitModeNames = map[WaitMode]string{
	WaitForInterrupt: "WaitForInterrupt",
	Poll:             "Poll",
	Yield:            "Yield",
	Sleep:            "Sleep",
}

func (v WaitMode) String() string { return enumName(waitModeNames, v) }

// PowerUpOutputType is the analog output power-up state type.
type PowerUpOutputType int32

const (
	PowerUpVoltage       PowerUpOutputType = 10322
	PowerUpCurrent       PowerUpOutputType = 10134
	PowerUpHighImpedance PowerUpOutputType = 12527
)

var powerUpOutputTypeNames = map[PowerUpOutputType]string{
	PowerUpVoltage:       "PowerUpVoltage",
	PowerUpCurrent:       "PowerUpCurrent",
	PowerUpHighImpedance: "PowerUpHighImpedance",
}

func (v PowerUpOutputType) String() string { return enumName(powerUpOutputTypeNames, v) }

type FuncGenType int32

const (
	Sine     FuncGenType = 14751
	Triangle FuncGenType = 14752
	Square   FuncGenType = 14753
	Sawtooth FuncGenType = 14754
)

var funcGenTypeNames = map[FuncGenType]string{
	Sine:     "Sine",
	Triangle: "Triangle",
	Square:   "Square",
	Sawtooth: "Sawtooth",
}

func (v FuncGenType) String() string { return enumName(funcGenTypeNames, v) }

type Timescale int32

const (
	HostTime     Timescale = 16126
	IODeviceTime Timescale = 16127
)

var timescaleNames = map[Timescale]string{
	HostTime:     "HostTime",
	IODeviceTime: "IODeviceTime",
}

func (v Timescale) String() string { return enumName(timescaleNames, v) }

// TimestampEvent is the events whose time can be waited on.
type TimestampEvent int32

const (
	TimestampStartTrigger     TimestampEvent = 12491
	TimestampReferenceTrigger TimestampEvent = 12490
	TimestampArmStartTrigger  TimestampEvent = 14641
	TimestampFirstSample      TimestampEvent = 16130
)

var timestampEventNames = map[TimestampEvent]string{
	TimestampStartTrigger:     "TimestampStartTrigger",
	TimestampReferenceTrigger: "TimestampReferenceTrigger",
	TimestampArmStartTrigger:  "TimestampArmStartTrigger",
	TimestampFirstSample:      "TimestampFirstSample",
}

func (v TimestampEvent) String() string { return enumName(timestampEventNames, v) }

type ScaleType int32

const (
	ScaleLinear     ScaleType = 10447
	ScaleMapRanges  ScaleType = 10448
	ScalePolynomial ScaleType = 10449
	ScaleTable      ScaleType = 10450
)

var scaleTypeNames = map[ScaleType]string{
	ScaleLinear:     "ScaleLinear",
	ScaleMapRanges:  "ScaleMapRanges",
	ScalePolynomial: "ScalePolynomial",
	ScaleTable:      "ScaleTable",
}

func (v ScaleType) String() string { return enumName(scaleTypeNames, v) }

// UnitsPreScaled is the units of the value a scale takes as input.
type UnitsPreScaled int32

const (
	PreScaledVolts   UnitsPreScaled = 10348
	PreScaledAmps    UnitsPreScaled = 10342
	PreScaledDegF    UnitsPreScaled = 10144
	PreScaledDegC    UnitsPreScaled = 10143
	PreScaledDegR    UnitsPreScaled = 10145
	PreScaledKelvins UnitsPreScaled = 10325
	PreScaledStrain  UnitsPreScaled = 10299
	PreScaledOhms    UnitsPreScaled = 10384
	PreScaledHz      UnitsPreScaled = 10373
	PreScaledSeconds UnitsPreScaled = 10364
	PreScaledMeters  UnitsPreScaled = 10219
	PreScaledInches  UnitsPreScaled = 10379
	PreScaledDegrees UnitsPreScaled = 10146
	PreScaledRadians UnitsPreScaled = 10273
	PreScaledTicks   UnitsPreScaled = 10304
	PreScaledG       UnitsPreScaled = 10186
)

var unitsPreScaledNames = map[UnitsPreScaled]string{
	PreScaledVolts:   "PreScaledVolts",
	PreScaledAmps:    "PreScaledAmps",
	PreScaledDegF:    "PreScaledDegF",
	PreScaledDegC:    "PreScaledDegC",
	PreScaledDegR:    "PreScaledDegR",
	PreScaledKelvins: "PreScaledKelvins",
	PreScaledStrain:  "PreScaledStrain",
	PreScaledOhms:    "PreScaledOhms",
	PreScaledHz:      "PreScaledHz",
	PreScaledSeconds: "PreScaledSeconds",
	PreScaledMeters:  "PreScaledMeters",
	PreScaledInches:  "PreScaledInches",
	PreScaledDegrees: "PreScaledDegrees",
	PreScaledRadians: "PreScaledRadians",
	PreScaledTicks:   "PreScaledTicks",
	PreScaledG:       "PreScaledG",
}

func (v UnitsPreScaled) String() string { return enumName(unitsPreScaledNames, v) }

type ProductCategory int32

const (
	MSeriesDAQ               ProductCategory = 14643
	XSeriesDAQ               ProductCategory = 15858
	ESeriesDAQ               ProductCategory = 14642
	SSeriesDAQ               ProductCategory = 14644
	BSeriesDAQ               ProductCategory = 14662
	SCSeriesDAQ              ProductCategory = 14645
	USBDAQ                   ProductCategory = 14646
	AOSeries                 ProductCategory = 14647
	DigitalIO                ProductCategory = 14648
	TIOSeries                ProductCategory = 14661
	DynamicSignalAcquisition ProductCategory = 14649
	Switches                 ProductCategory = 14650
	CompactDAQChassis        ProductCategory = 14658
	CompactRIOChassis        ProductCategory = 16144
	CSeriesModule            ProductCategory = 14659
	SCXIModule               ProductCategory = 14660
	SCCConnectorBlock        ProductCategory = 14704
	SCCModule                ProductCategory = 14705
	NIELVIS                  ProductCategory = 14755
	NetworkDAQ               ProductCategory = 14829
	SCExpress                ProductCategory = 15886
	FieldDAQ                 ProductCategory = 16151
	UnknownProductCategory   ProductCategory = 12588
)

var productCategoryNames = map[ProductCategory]string{
	MSeriesDAQ:               "MSeriesDAQ",
	XSeriesDAQ:               "XSeriesDAQ",
	ESeriesDAQ:               "ESeriesDAQ",
	SSeriesDAQ:               "SSeriesDAQ",
	BSeriesDAQ:               "BSeriesDAQ",
	SCSeriesDAQ:              "SCSeriesDAQ",
	USBDAQ:                   "USBDAQ",
	AOSeries:                 "AOSeries",
	DigitalIO:                "DigitalIO",
	TIOSeries:                "TIOSeries",
	DynamicSignalAcquisition: "DynamicSignalAcquisition",
	Switches:                 "Switches",
	CompactDAQChassis:        "CompactDAQChassis",
	CompactRIOChassis:        "CompactRIOChassis",
	CSeriesModule:            "CSeriesModule",
	SCXIModule:               "SCXIModule",
	SCCConnectorBlock:        "SCCConnectorBlock",
	SCCModule:                "SCCModule",
	NIELVIS:                  "NIELVIS",
	NetworkDAQ:               "NetworkDAQ",
	SCExpress:                "SCExpress",
	FieldDAQ:                 "FieldDAQ",
	UnknownProductCategory:   "UnknownProductCategory",
}

func (v ProductCategory) String() string { return enumName(productCategoryNames, v) }

type BusType int32

const (
	BusPCI         BusType = 12582
	BusPCIe        BusType = 13612
	BusPXI         BusType = 12583
	BusPXIe        BusType = 14706
	BusSCXI        BusType = 12584
	BusSCC         BusType = 14707
	BusPCCard      BusType = 12585
	BusUSB         BusType = 12586
	BusCompactDAQ  BusType = 14637
	BusCompactRIO  BusType = 16143
	BusTCPIP       BusType = 14828
	BusUnknown     BusType = 12588
	BusSwitchBlock BusType = 15870
)

var busTypeNames = map[BusType]string{
	BusPCI:         "BusPCI",
	BusPCIe:        "BusPCIe",
	BusPXI:         "BusPXI",
	BusPXIe:        "BusPXIe",
	BusSCXI:        "BusSCXI",
	BusSCC:         "BusSCC",
	BusPCCard:      "BusPCCard",
	BusUSB:         "BusUSB",
	BusCompactDAQ:  "BusCompactDAQ",
	BusCompactRIO:  "BusCompactRIO",
	BusTCPIP:       "BusTCPIP",
	BusUnknown:     "BusUnknown",
	BusSwitchBlock: "BusSwitchBlock",
}

func (v BusType) String() string { return enumName(busTypeNames, v) }

type DataTransferMechanism int32

const (
	DMA          DataTransferMechanism = 10054
	Interrupts   DataTransferMechanism = 10204
	ProgrammedIO DataTransferMechanism = 10264
	USBBulk      DataTransferMechanism = 12590
)

var dataTransferMechanismNames = map[DataTransferMechanism]string{
	DMA:          "DMA",
	Interrupts:   "Interrupts",
	ProgrammedIO: "ProgrammedIO",
	USBBulk:      "USBBulk",
}

func (v DataTransferMechanism) String() string { return enumName(dataTransferMechanismNames, v) }

// IdleOutputBehavior is the analog output idle behavior.
type IdleOutputBehavior int32

const (
	ZeroVolts             IdleOutputBehavior = 12526
	IdleHighImpedance     IdleOutputBehavior = 12527
	MaintainExistingValue IdleOutputBehavior = 12528
)

var idleOutputBehaviorNames = map[IdleOutputBehavior]string{
	ZeroVolts:             "ZeroVolts",
	IdleHighImpedance:     "IdleHighImpedance",
	MaintainExistingValue: "MaintainExistingValue",
}

func (v IdleOutputBehavior) String() string { return enumName(idleOutputBehaviorNames, v) }

type DigitalDriveType int32

const (
	ActiveDrive   DigitalDriveType = 12573
	OpenCollector DigitalDriveType = 12574
)

var digitalDriveTypeNames = map[DigitalDriveType]string{
	ActiveDrive:   "ActiveDrive",
	OpenCollector: "OpenCollector",
}

func (v DigitalDriveType) String() string { return enumName(digitalDriveTypeNames, v) }

// DigitalWidthUnits is the units of trigger delays and pulse widths.
type DigitalWidthUnits int32

const (
	SampleClockPeriods DigitalWidthUnits = 10286
	WidthSeconds       DigitalWidthUnits = 10364
	WidthTicks         DigitalWidthUnits = 10304
)

var digitalWidthUnitsNames = map[DigitalWidthUnits]string{
	SampleClockPeriods: "SampleClockPeriods",
	WidthSeconds:       "WidthSeconds",
	WidthTicks:         "WidthTicks",
}

func (v DigitalWidthUnits) String() string { return enumName(digitalWidthUnitsNames, v) }

// ExportAction is the output behavior of an exported signal.
type ExportAction int32

const (
	ExportPulse  ExportAction = 10265
	ExportToggle ExportAction = 10307
	ExportLevel  ExportAction = 10210
)

var exportActionNames = map[ExportAction]string{
	ExportPulse:  "ExportPulse",
	ExportToggle: "ExportToggle",
	ExportLevel:  "ExportLevel",
}

func (v ExportAction) String() string { return enumName(exportActionNames, v) }

type Polarity int32

const (
	ActiveHigh Polarity = 10095
	ActiveLow  Polarity = 10096
)

var polarityNames = map[Polarity]string{
	ActiveHigh: "ActiveHigh",
	ActiveLow:  "ActiveLow",
}

func (v Polarity) String() string { return enumName(polarityNames, v) }

type ResolutionType int32

const (
	Bits ResolutionType = 10109
)

var resolutionTypeNames = map[ResolutionType]string{
	Bits: "Bits",
}

func (v ResolutionType) String() string { return enumName(resolutionTypeNames, v) }

type AutoZeroType int32

const (
	AutoZeroNone        AutoZeroType = 10230
	AutoZeroOnce        AutoZeroType = 10244
	AutoZeroEverySample AutoZeroType = 10164
)

var autoZeroTypeNames = map[AutoZeroType]string{
	AutoZeroNone:        "AutoZeroNone",
	AutoZeroOnce:        "AutoZeroOnce",
	AutoZeroEverySample: "AutoZeroEverySample",
}

func (v AutoZeroType) String() string { return enumName(autoZeroTypeNames, v) }

// SaveOptions is the bit flags for saving persisted objects.
type SaveOptions int32

const (
	SaveOverwrite                SaveOptions = 1
	SaveAllowInteractiveEditing  SaveOptions = 2
	SaveAllowInteractiveDeletion SaveOptions = 4
)

var saveOptionsNames = map[SaveOptions]string{
	SaveOverwrite:                "SaveOverwrite",
	SaveAllowInteractiveEditing:  "SaveAllowInteractiveEditing",
	SaveAllowInteractiveDeletion: "SaveAllowInteractiveDeletion",
}

func (v SaveOptions) String() string { return enumName(saveOptionsNames, v) }

type SyncType int32

const (
	SyncNone   SyncType = 10230
	SyncMaster SyncType = 15888
	SyncSlave  SyncType = 15889
)

var syncTypeNames = map[SyncType]string{
	SyncNone:   "SyncNone",
	SyncMaster: "SyncMaster",
	SyncSlave:  "SyncSlave",
}

func (v SyncType) String() string { return enumName(syncTypeNames, v) }

type UnderflowBehavior int32

const (
	HaltOutputAndError      UnderflowBehavior = 14615
	PauseUntilDataAvailable UnderflowBehavior = 14616
)

var underflowBehaviorNames = map[UnderflowBehavior]string{
	HaltOutputAndError:      "HaltOutputAndError",
	PauseUntilDataAvailable: "PauseUntilDataAvailable",
}

func (v UnderflowBehavior) String() string { return enumName(underflowBehaviorNames, v) }
