package native

// Fixed driver entry points. bool32 arguments are uint32 and every reserved
// pointer is passed as nil.

// absTime is the driver's CVIAbsoluteTime.
type absTime struct {
	LSB uint64
	MSB int64
}

type (
	readF64Fn = func(uintptr, int32, float64, uint32, *float64, uint32, *int32, *uint32) int32
	readI16Fn = func(uintptr, int32, float64, uint32, *int16, uint32, *int32, *uint32) int32
	readI32Fn = func(uintptr, int32, float64, uint32, *int32, uint32, *int32, *uint32) int32
	readU8Fn  = func(uintptr, int32, float64, uint32, *uint8, uint32, *int32, *uint32) int32
	readU16Fn = func(uintptr, int32, float64, uint32, *uint16, uint32, *int32, *uint32) int32
	readU32Fn = func(uintptr, int32, float64, uint32, *uint32, uint32, *int32, *uint32) int32

	writeF64Fn = func(uintptr, int32, uint32, float64, uint32, *float64, *int32, *uint32) int32
	writeI16Fn = func(uintptr, int32, uint32, float64, uint32, *int16, *int32, *uint32) int32
	writeI32Fn = func(uintptr, int32, uint32, float64, uint32, *int32, *int32, *uint32) int32
	writeU8Fn  = func(uintptr, int32, uint32, float64, uint32, *uint8, *int32, *uint32) int32
	writeU16Fn = func(uintptr, int32, uint32, float64, uint32, *uint16, *int32, *uint32) int32
	writeU32Fn = func(uintptr, int32, uint32, float64, uint32, *uint32, *int32, *uint32) int32

	chanPulseFn = func(uintptr, string, string, int32, int32, float64, float64, float64) int32
	burstFn     = func(uintptr, int32, uint64, float64, string, int32, int32, int32) int32
	scaleArrFn  = func(string, *float64, uint32, *float64, uint32, int32, string) int32
)

// Task lifecycle and persistence.
var (
	procCreateTask            = newProc[func(string, *uintptr) int32]("DAQmxCreateTask")
	procLoadTask              = newProc[func(string, *uintptr) int32]("DAQmxLoadTask")
	procClearTask             = newProc[func(uintptr) int32]("DAQmxClearTask")
	procStartTask             = newProc[func(uintptr) int32]("DAQmxStartTask")
	procStopTask              = newProc[func(uintptr) int32]("DAQmxStopTask")
	procWaitUntilTaskDone     = newProc[func(uintptr, float64) int32]("DAQmxWaitUntilTaskDone")
	procIsTaskDone            = newProc[func(uintptr, *uint32) int32]("DAQmxIsTaskDone")
	procTaskControl           = newProc[func(uintptr, int32) int32]("DAQmxTaskControl")
	procAddGlobalChansToTask  = newProc[func(uintptr, string) int32]("DAQmxAddGlobalChansToTask")
	procSaveTask              = newProc[func(uintptr, string, string, uint32) int32]("DAQmxSaveTask")
	procSaveGlobalChan        = newProc[func(uintptr, string, string, string, uint32) int32]("DAQmxSaveGlobalChan")
	procSaveScale             = newProc[func(string, string, string, uint32) int32]("DAQmxSaveScale")
	procDeleteSavedTask       = newProc[func(string) int32]("DAQmxDeleteSavedTask")
	procDeleteSavedGlobalChan = newProc[func(string) int32]("DAQmxDeleteSavedGlobalChan")
	procDeleteSavedScale      = newProc[func(string) int32]("DAQmxDeleteSavedScale")
)

// Channel creation.
var (
	procCreateAIVoltageChan    = newProc[func(uintptr, string, string, int32, float64, float64, int32, string) int32]("DAQmxCreateAIVoltageChan")
	procCreateAICurrentChan    = newProc[func(uintptr, string, string, int32, float64, float64, int32, int32, float64, string) int32]("DAQmxCreateAICurrentChan")
	procCreateAIThrmcplChan    = newProc[func(uintptr, string, string, float64, float64, int32, int32, int32, float64, string) int32]("DAQmxCreateAIThrmcplChan")
	procCreateAIRTDChan        = newProc[func(uintptr, string, string, float64, float64, int32, int32, int32, int32, float64, float64) int32]("DAQmxCreateAIRTDChan")
	procCreateAIAccelChan      = newProc[func(uintptr, string, string, int32, float64, float64, int32, float64, int32, int32, float64, string) int32]("DAQmxCreateAIAccelChan")
	procCreateAIStrainGageChan = newProc[func(uintptr, string, string, float64, float64, int32, int32, int32, float64, float64, float64, float64, float64, float64, string) int32]("DAQmxCreateAIStrainGageChan")
	procCreateAIResistanceChan = newProc[func(uintptr, string, string, float64, float64, int32, int32, int32, float64, string) int32]("DAQmxCreateAIResistanceChan")
	procCreateAOVoltageChan    = newProc[func(uintptr, string, string, float64, float64, int32, string) int32]("DAQmxCreateAOVoltageChan")
	procCreateAOCurrentChan    = newProc[func(uintptr, string, string, float64, float64, int32, string) int32]("DAQmxCreateAOCurrentChan")
	procCreateAOFuncGenChan    = newProc[func(uintptr, string, string, int32, float64, float64, float64) int32]("DAQmxCreateAOFuncGenChan")
	procCreateCICountEdgesChan = newProc[func(uintptr, string, string, int32, uint32, int32) int32]("DAQmxCreateCICountEdgesChan")
	procCreateCIFreqChan       = newProc[func(uintptr, string, string, float64, float64, int32, int32, int32, float64, uint32, string) int32]("DAQmxCreateCIFreqChan")
	procCreateCIPeriodChan     = newProc[func(uintptr, string, string, float64, float64, int32, int32, int32, float64, uint32, string) int32]("DAQmxCreateCIPeriodChan")
	procCreateCIPulseWidthChan = newProc[func(uintptr, string, string, float64, float64, int32, int32, string) int32]("DAQmxCreateCIPulseWidthChan")
	procCreateCILinEncoderChan = newProc[func(uintptr, string, string, int32, uint32, float64, int32, int32, float64, float64, string) int32]("DAQmxCreateCILinEncoderChan")
	procCreateCIAngEncoderChan = newProc[func(uintptr, string, string, int32, uint32, float64, int32, int32, uint32, float64, string) int32]("DAQmxCreateCIAngEncoderChan")
	procCreateCIPulseChanFreq  = newProc[func(uintptr, string, string, float64, float64, int32) int32]("DAQmxCreateCIPulseChanFreq")
	procCreateCOPulseChanFreq  = newProc[chanPulseFn]("DAQmxCreateCOPulseChanFreq")
	procCreateCOPulseChanTime  = newProc[chanPulseFn]("DAQmxCreateCOPulseChanTime")
	procCreateCOPulseChanTicks = newProc[func(uintptr, string, string, string, int32, int32, int32, int32) int32]("DAQmxCreateCOPulseChanTicks")
	procCreateDIChan           = newProc[func(uintptr, string, string, int32) int32]("DAQmxCreateDIChan")
	procCreateDOChan           = newProc[func(uintptr, string, string, int32) int32]("DAQmxCreateDOChan")
)

// Timing and triggering.
var (
	procCfgSampClkTiming         = newProc[func(uintptr, string, float64, int32, int32, uint64) int32]("DAQmxCfgSampClkTiming")
	procCfgImplicitTiming        = newProc[func(uintptr, int32, uint64) int32]("DAQmxCfgImplicitTiming")
	procCfgChangeDetectionTiming = newProc[func(uintptr, string, string, int32, uint64) int32]("DAQmxCfgChangeDetectionTiming")
	procCfgHandshakingTiming     = newProc[func(uintptr, int32, uint64) int32]("DAQmxCfgHandshakingTiming")
	procCfgBurstImportClock      = newProc[burstFn]("DAQmxCfgBurstHandshakingTimingImportClock")
	procCfgBurstExportClock      = newProc[burstFn]("DAQmxCfgBurstHandshakingTimingExportClock")

	procCfgDigEdgeStartTrig       = newProc[func(uintptr, string, int32) int32]("DAQmxCfgDigEdgeStartTrig")
	procCfgAnlgEdgeStartTrig      = newProc[func(uintptr, string, int32, float64) int32]("DAQmxCfgAnlgEdgeStartTrig")
	procCfgAnlgWindowStartTrig    = newProc[func(uintptr, string, int32, float64, float64) int32]("DAQmxCfgAnlgWindowStartTrig")
	procCfgDigPatternStartTrig    = newProc[func(uintptr, string, string, int32) int32]("DAQmxCfgDigPatternStartTrig")
	procCfgTimeStartTrig          = newProc[func(uintptr, absTime, int32) int32]("DAQmxCfgTimeStartTrig")
	procCfgAnlgMultiEdgeStartTrig = newProc[func(uintptr, string, *int32, *float64, *float64, *int32, uint32) int32]("DAQmxCfgAnlgMultiEdgeStartTrig")
	procDisableStartTrig          = newProc[func(uintptr) int32]("DAQmxDisableStartTrig")
	procCfgDigEdgeRefTrig         = newProc[func(uintptr, string, int32, uint32) int32]("DAQmxCfgDigEdgeRefTrig")
	procCfgAnlgEdgeRefTrig        = newProc[func(uintptr, string, int32, float64, uint32) int32]("DAQmxCfgAnlgEdgeRefTrig")
	procCfgAnlgWindowRefTrig      = newProc[func(uintptr, string, int32, float64, float64, uint32) int32]("DAQmxCfgAnlgWindowRefTrig")
	procCfgDigPatternRefTrig      = newProc[func(uintptr, string, string, int32, uint32) int32]("DAQmxCfgDigPatternRefTrig")
	procDisableRefTrig            = newProc[func(uintptr) int32]("DAQmxDisableRefTrig")
	procSendSoftwareTrigger       = newProc[func(uintptr, int32) int32]("DAQmxSendSoftwareTrigger")

	procWaitForNextSampleClock = newProc[func(uintptr, float64, *uint32) int32]("DAQmxWaitForNextSampleClock")
	procWaitForValidTimestamp  = newProc[func(uintptr, int32, float64, *absTime) int32]("DAQmxWaitForValidTimestamp")
)

// Reads.
var (
	procReadAnalogF64        = newProc[readF64Fn]("DAQmxReadAnalogF64")
	procReadAnalogScalarF64  = newProc[func(uintptr, float64, *float64, *uint32) int32]("DAQmxReadAnalogScalarF64")
	procReadBinaryI16        = newProc[readI16Fn]("DAQmxReadBinaryI16")
	procReadBinaryI32        = newProc[readI32Fn]("DAQmxReadBinaryI32")
	procReadBinaryU16        = newProc[readU16Fn]("DAQmxReadBinaryU16")
	procReadBinaryU32        = newProc[readU32Fn]("DAQmxReadBinaryU32")
	procReadCounterF64       = newProc[readF64Fn]("DAQmxReadCounterF64Ex")
	procReadCounterU32       = newProc[readU32Fn]("DAQmxReadCounterU32Ex")
	procReadCounterScalarF64 = newProc[func(uintptr, float64, *float64, *uint32) int32]("DAQmxReadCounterScalarF64")
	procReadCounterScalarU32 = newProc[func(uintptr, float64, *uint32, *uint32) int32]("DAQmxReadCounterScalarU32")
	procReadCtrFreq          = newProc[func(uintptr, int32, float64, uint32, *float64, *float64, uint32, *int32, *uint32) int32]("DAQmxReadCtrFreq")
	procReadCtrTime          = newProc[func(uintptr, int32, float64, uint32, *float64, *float64, uint32, *int32, *uint32) int32]("DAQmxReadCtrTime")
	procReadCtrTicks         = newProc[func(uintptr, int32, float64, uint32, *uint32, *uint32, uint32, *int32, *uint32) int32]("DAQmxReadCtrTicks")
	procReadCtrFreqScalar    = newProc[func(uintptr, float64, *float64, *float64, *uint32) int32]("DAQmxReadCtrFreqScalar")
	procReadCtrTimeScalar    = newProc[func(uintptr, float64, *float64, *float64, *uint32) int32]("DAQmxReadCtrTimeScalar")
	procReadCtrTicksScalar   = newProc[func(uintptr, float64, *uint32, *uint32, *uint32) int32]("DAQmxReadCtrTicksScalar")
	procReadDigitalLines     = newProc[func(uintptr, int32, float64, uint32, *uint8, uint32, *int32, *int32, *uint32) int32]("DAQmxReadDigitalLines")
	procReadDigitalU8        = newProc[readU8Fn]("DAQmxReadDigitalU8")
	procReadDigitalU16       = newProc[readU16Fn]("DAQmxReadDigitalU16")
	procReadDigitalU32       = newProc[readU32Fn]("DAQmxReadDigitalU32")
	procReadDigitalScalarU32 = newProc[func(uintptr, float64, *uint32, *uint32) int32]("DAQmxReadDigitalScalarU32")
	procReadRaw              = newProc[func(uintptr, int32, float64, *byte, uint32, *int32, *int32, *uint32) int32]("DAQmxReadRaw")
)

// Writes.
var (
	procWriteAnalogF64        = newProc[writeF64Fn]("DAQmxWriteAnalogF64")
	procWriteAnalogScalarF64  = newProc[func(uintptr, uint32, float64, float64, *uint32) int32]("DAQmxWriteAnalogScalarF64")
	procWriteBinaryI16        = newProc[writeI16Fn]("DAQmxWriteBinaryI16")
	procWriteBinaryI32        = newProc[writeI32Fn]("DAQmxWriteBinaryI32")
	procWriteBinaryU16        = newProc[writeU16Fn]("DAQmxWriteBinaryU16")
	procWriteBinaryU32        = newProc[writeU32Fn]("DAQmxWriteBinaryU32")
	procWriteCtrFreq          = newProc[func(uintptr, int32, uint32, float64, uint32, *float64, *float64, *int32, *uint32) int32]("DAQmxWriteCtrFreq")
	procWriteCtrTime          = newProc[func(uintptr, int32, uint32, float64, uint32, *float64, *float64, *int32, *uint32) int32]("DAQmxWriteCtrTime")
	procWriteCtrTicks         = newProc[func(uintptr, int32, uint32, float64, uint32, *uint32, *uint32, *int32, *uint32) int32]("DAQmxWriteCtrTicks")
	procWriteCtrFreqScalar    = newProc[func(uintptr, uint32, float64, float64, float64, *uint32) int32]("DAQmxWriteCtrFreqScalar")
	procWriteCtrTimeScalar    = newProc[func(uintptr, uint32, float64, float64, float64, *uint32) int32]("DAQmxWriteCtrTimeScalar")
	procWriteCtrTicksScalar   = newProc[func(uintptr, uint32, float64, uint32, uint32, *uint32) int32]("DAQmxWriteCtrTicksScalar")
	procWriteDigitalLines     = newProc[writeU8Fn]("DAQmxWriteDigitalLines")
	procWriteDigitalU8        = newProc[writeU8Fn]("DAQmxWriteDigitalU8")
	procWriteDigitalU16       = newProc[writeU16Fn]("DAQmxWriteDigitalU16")
	procWriteDigitalU32       = newProc[writeU32Fn]("DAQmxWriteDigitalU32")
	procWriteDigitalScalarU32 = newProc[func(uintptr, uint32, float64, uint32, *uint32) int32]("DAQmxWriteDigitalScalarU32")
	procWriteRaw              = newProc[func(uintptr, int32, uint32, float64, *byte, *int32, *uint32) int32]("DAQmxWriteRaw")
)

// Events.
var (
	procRegisterEveryNSamplesEvent = newProc[func(uintptr, int32, uint32, uint32, uintptr, uintptr) int32]("DAQmxRegisterEveryNSamplesEvent")
	procRegisterDoneEvent          = newProc[func(uintptr, uint32, uintptr, uintptr) int32]("DAQmxRegisterDoneEvent")
	procRegisterSignalEvent        = newProc[func(uintptr, int32, uint32, uintptr, uintptr) int32]("DAQmxRegisterSignalEvent")
)

// System, devices and scales.
var (
	procGetErrorString         = newProc[func(int32, *byte, uint32) int32]("DAQmxGetErrorString")
	procGetExtendedErrorInfo   = newProc[func(*byte, uint32) int32]("DAQmxGetExtendedErrorInfo")
	procSetAnalogPowerUpStates = newProc[func(string, *float64, *int32, uint32) int32]("DAQmxSetAnalogPowerUpStatesWithOutputType")
	procGetAnalogPowerUpStates = newProc[func(string, *float64, *int32, *uint32) int32]("DAQmxGetAnalogPowerUpStatesWithOutputType")
	procResetDevice            = newProc[func(string) int32]("DAQmxResetDevice")
	procSelfTestDevice         = newProc[func(string) int32]("DAQmxSelfTestDevice")
	procConnectTerms           = newProc[func(string, string, int32) int32]("DAQmxConnectTerms")
	procDisconnectTerms        = newProc[func(string, string) int32]("DAQmxDisconnectTerms")
	procCreateLinScale         = newProc[func(string, float64, float64, int32, string) int32]("DAQmxCreateLinScale")
	procCreateMapScale         = newProc[func(string, float64, float64, float64, float64, int32, string) int32]("DAQmxCreateMapScale")
	procCreatePolynomialScale  = newProc[scaleArrFn]("DAQmxCreatePolynomialScale")
	procCreateTableScale       = newProc[scaleArrFn]("DAQmxCreateTableScale")
)

func first[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func bool32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
