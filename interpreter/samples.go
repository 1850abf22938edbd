package interpreter

import "github.com/KevinKickass/daqmx/constants"

// CtrFreq is a pulse specified by frequency and duty cycle.
type CtrFreq struct {
	Freq      float64
	DutyCycle float64
}

// CtrTime is a pulse specified by high and low time in seconds.
type CtrTime struct {
	HighTime float64
	LowTime  float64
}

// CtrTick is a pulse specified by high and low timebase ticks.
type CtrTick struct {
	HighTick uint32
	LowTick  uint32
}

// AnalogPowerUpState is the state a physical channel takes at power up.
type AnalogPowerUpState struct {
	PhysicalChannel string
	State           float64
	OutputType      constants.PowerUpOutputType
}

// BurstImportClock configures burst handshaking with an imported sample clock.
type BurstImportClock struct {
	SampleMode          constants.AcquisitionType
	SampsPerChan        uint64
	SampleClockRate     float64
	SampleClockSource   string
	SampleClockEdge     constants.Edge
	PauseWhen           constants.Level
	ReadyEventActiveLvl constants.Polarity
}

// BurstExportClock configures burst handshaking with an exported sample clock.
type BurstExportClock struct {
	SampleClockRate     float64
	SampleMode          constants.AcquisitionType
	SampsPerChan        uint64
	SampleClockOutTerm  string
	SampleClockPolarity constants.Polarity
	PauseWhen           constants.Level
	ReadyEventActiveLvl constants.Polarity
}

// AnalogMultiEdge is one source of a multi-edge start trigger.
type AnalogMultiEdge struct {
	Source     string
	Slope      constants.Slope
	Level      float64
	Hysteresis float64
	Coupling   constants.Coupling
}
