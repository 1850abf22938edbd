package attributes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var declaredIDs = []struct {
	id   ID
	name string
}{
	{ChanType, "ChanType"},
	{PhysicalChanName, "PhysicalChanName"},
	{ChanDescr, "ChanDescr"},
	{ChanIsGlobal, "ChanIsGlobal"},
	{AIMax, "AIMax"},
	{AIMin, "AIMin"},
	{AICustomScaleName, "AICustomScaleName"},
	{AIMeasType, "AIMeasType"},
	{AIVoltageUnits, "AIVoltageUnits"},
	{AICurrentUnits, "AICurrentUnits"},
	{AITempUnits, "AITempUnits"},
	{AIThrmcplType, "AIThrmcplType"},
	{AIThrmcplCJCSrc, "AIThrmcplCJCSrc"},
	{AIThrmcplCJCVal, "AIThrmcplCJCVal"},
	{AIThrmcplCJCChan, "AIThrmcplCJCChan"},
	{AIRTDType, "AIRTDType"},
	{AIRTDR0, "AIRTDR0"},
	{AIRTDA, "AIRTDA"},
	{AIRTDB, "AIRTDB"},
	{AIRTDC, "AIRTDC"},
	{AIResistanceUnits, "AIResistanceUnits"},
	{AIResistanceCfg, "AIResistanceCfg"},
	{AIExcitSrc, "AIExcitSrc"},
	{AIExcitVal, "AIExcitVal"},
	{AIAccelUnits, "AIAccelUnits"},
	{AIAccelSensitivity, "AIAccelSensitivity"},
	{AIAccelSensitivityUnits, "AIAccelSensitivityUnits"},
	{AIStrainUnits, "AIStrainUnits"},
	{AIStrainGageGageFactor, "AIStrainGageGageFactor"},
	{AIStrainGagePoissonRatio, "AIStrainGagePoissonRatio"},
	{AIStrainGageCfg, "AIStrainGageCfg"},
	{AIBridgeNomResistance, "AIBridgeNomResistance"},
	{AIBridgeInitialVoltage, "AIBridgeInitialVoltage"},
	{AILowpassEnable, "AILowpassEnable"},
	{AILowpassCutoffFreq, "AILowpassCutoffFreq"},
	{AICoupling, "AICoupling"},
	{AITermCfg, "AITermCfg"},
	{AIRngHigh, "AIRngHigh"},
	{AIRngLow, "AIRngLow"},
	{AIGain, "AIGain"},
	{AIResolution, "AIResolution"},
	{AIDataXferMech, "AIDataXferMech"},
	{AIAutoZeroMode, "AIAutoZeroMode"},
	{AICurrentShuntLoc, "AICurrentShuntLoc"},
	{AICurrentShuntResistance, "AICurrentShuntResistance"},
	{AIDevScalingCoeff, "AIDevScalingCoeff"},
	{AIEnhancedAliasRejectionEnable, "AIEnhancedAliasRejectionEnable"},
	{AIIsTEDS, "AIIsTEDS"},
	{AIDitherEnable, "AIDitherEnable"},
	{AOMax, "AOMax"},
	{AOMin, "AOMin"},
	{AOCustomScaleName, "AOCustomScaleName"},
	{AOOutputType, "AOOutputType"},
	{AOVoltageUnits, "AOVoltageUnits"},
	{AOCurrentUnits, "AOCurrentUnits"},
	{AOTermCfg, "AOTermCfg"},
	{AOIdleOutputBehavior, "AOIdleOutputBehavior"},
	{AODataXferMech, "AODataXferMech"},
	{AOResolution, "AOResolution"},
	{AODACRngHigh, "AODACRngHigh"},
	{AODACRngLow, "AODACRngLow"},
	{AOUseOnlyOnBrdMem, "AOUseOnlyOnBrdMem"},
	{AOFuncGenType, "AOFuncGenType"},
	{AOFuncGenFreq, "AOFuncGenFreq"},
	{AOFuncGenAmplitude, "AOFuncGenAmplitude"},
	{AOFuncGenOffset, "AOFuncGenOffset"},
	{AOFuncGenSquareDutyCycle, "AOFuncGenSquareDutyCycle"},
	{CIMax, "CIMax"},
	{CIMin, "CIMin"},
	{CICustomScaleName, "CICustomScaleName"},
	{CIMeasType, "CIMeasType"},
	{CIFreqUnits, "CIFreqUnits"},
	{CIFreqTerm, "CIFreqTerm"},
	{CIFreqStartingEdge, "CIFreqStartingEdge"},
	{CIFreqMeasMeth, "CIFreqMeasMeth"},
	{CIFreqMeasTime, "CIFreqMeasTime"},
	{CIFreqDiv, "CIFreqDiv"},
	{CIPeriodUnits, "CIPeriodUnits"},
	{CIPeriodTerm, "CIPeriodTerm"},
	{CIPeriodStartingEdge, "CIPeriodStartingEdge"},
	{CIPeriodMeasMeth, "CIPeriodMeasMeth"},
	{CIPeriodMeasTime, "CIPeriodMeasTime"},
	{CIPeriodDiv, "CIPeriodDiv"},
	{CICountEdgesTerm, "CICountEdgesTerm"},
	{CICountEdgesDir, "CICountEdgesDir"},
	{CICountEdgesDirTerm, "CICountEdgesDirTerm"},
	{CICountEdgesInitialCnt, "CICountEdgesInitialCnt"},
	{CICountEdgesActiveEdge, "CICountEdgesActiveEdge"},
	{CIPulseWidthUnits, "CIPulseWidthUnits"},
	{CIPulseWidthTerm, "CIPulseWidthTerm"},
	{CIPulseWidthStartingEdge, "CIPulseWidthStartingEdge"},
	{CIEncoderDecodingType, "CIEncoderDecodingType"},
	{CIEncoderAInputTerm, "CIEncoderAInputTerm"},
	{CIEncoderBInputTerm, "CIEncoderBInputTerm"},
	{CIEncoderZInputTerm, "CIEncoderZInputTerm"},
	{CIEncoderZIndexEnable, "CIEncoderZIndexEnable"},
	{CIEncoderZIndexVal, "CIEncoderZIndexVal"},
	{CIEncoderZIndexPhase, "CIEncoderZIndexPhase"},
	{CIAngEncoderUnits, "CIAngEncoderUnits"},
	{CIAngEncoderPulsesPerRev, "CIAngEncoderPulsesPerRev"},
	{CIAngEncoderInitialAngle, "CIAngEncoderInitialAngle"},
	{CILinEncoderUnits, "CILinEncoderUnits"},
	{CILinEncoderDistPerPulse, "CILinEncoderDistPerPulse"},
	{CILinEncoderInitialPos, "CILinEncoderInitialPos"},
	{CIPulseFreqUnits, "CIPulseFreqUnits"},
	{CIPulseFreqTerm, "CIPulseFreqTerm"},
	{CIPulseTimeUnits, "CIPulseTimeUnits"},
	{CICount, "CICount"},
	{CIOutputState, "CIOutputState"},
	{CITCReached, "CITCReached"},
	{CICtrTimebaseSrc, "CICtrTimebaseSrc"},
	{CICtrTimebaseRate, "CICtrTimebaseRate"},
	{CIDataXferMech, "CIDataXferMech"},
	{CIPrescaler, "CIPrescaler"},
	{CIDupCountPrevention, "CIDupCountPrevention"},
	{COOutputType, "COOutputType"},
	{COPulseIdleState, "COPulseIdleState"},
	{COPulseTerm, "COPulseTerm"},
	{COPulseTimeUnits, "COPulseTimeUnits"},
	{COPulseHighTime, "COPulseHighTime"},
	{COPulseLowTime, "COPulseLowTime"},
	{COPulseTimeInitialDelay, "COPulseTimeInitialDelay"},
	{COPulseDutyCyc, "COPulseDutyCyc"},
	{COPulseFreqUnits, "COPulseFreqUnits"},
	{COPulseFreq, "COPulseFreq"},
	{COPulseFreqInitialDelay, "COPulseFreqInitialDelay"},
	{COPulseHighTicks, "COPulseHighTicks"},
	{COPulseLowTicks, "COPulseLowTicks"},
	{COPulseTicksInitialDelay, "COPulseTicksInitialDelay"},
	{COCtrTimebaseSrc, "COCtrTimebaseSrc"},
	{COCtrTimebaseRate, "COCtrTimebaseRate"},
	{COCount, "COCount"},
	{COOutputState, "COOutputState"},
	{COPulseDone, "COPulseDone"},
	{COEnableInitialDelayOnRetrigger, "COEnableInitialDelayOnRetrigger"},
	{COPrescaler, "COPrescaler"},
	{COAutoIncrCnt, "COAutoIncrCnt"},
	{DIInvertLines, "DIInvertLines"},
	{DINumLines, "DINumLines"},
	{DIDigFltrEnable, "DIDigFltrEnable"},
	{DIDigFltrMinPulseWidth, "DIDigFltrMinPulseWidth"},
	{DITristate, "DITristate"},
	{DIDataXferMech, "DIDataXferMech"},
	{DOInvertLines, "DOInvertLines"},
	{DONumLines, "DONumLines"},
	{DOTristate, "DOTristate"},
	{DOOutputDriveType, "DOOutputDriveType"},
	{DOLineStatesStartState, "DOLineStatesStartState"},
	{DOLineStatesPausedState, "DOLineStatesPausedState"},
	{DOLineStatesDoneState, "DOLineStatesDoneState"},
	{DODataXferMech, "DODataXferMech"},
	{TaskName, "TaskName"},
	{TaskChannels, "TaskChannels"},
	{TaskNumChans, "TaskNumChans"},
	{TaskDevices, "TaskDevices"},
	{TaskNumDevices, "TaskNumDevices"},
	{TaskComplete, "TaskComplete"},
	{SampQuantSampMode, "SampQuantSampMode"},
	{SampQuantSampPerChan, "SampQuantSampPerChan"},
	{SampTimingType, "SampTimingType"},
	{SampClkRate, "SampClkRate"},
	{SampClkMaxRate, "SampClkMaxRate"},
	{SampClkSrc, "SampClkSrc"},
	{SampClkActiveEdge, "SampClkActiveEdge"},
	{SampClkTerm, "SampClkTerm"},
	{SampClkTimebaseSrc, "SampClkTimebaseSrc"},
	{SampClkTimebaseRate, "SampClkTimebaseRate"},
	{SampClkDigFltrEnable, "SampClkDigFltrEnable"},
	{SampClkUnderflowBehavior, "SampClkUnderflowBehavior"},
	{AIConvRate, "AIConvRate"},
	{AIConvMaxRate, "AIConvMaxRate"},
	{AIConvSrc, "AIConvSrc"},
	{MasterTimebaseSrc, "MasterTimebaseSrc"},
	{MasterTimebaseRate, "MasterTimebaseRate"},
	{RefClkSrc, "RefClkSrc"},
	{RefClkRate, "RefClkRate"},
	{SyncPulseSrc, "SyncPulseSrc"},
	{ChangeDetectDIRisingEdgePhysicalChans, "ChangeDetectDIRisingEdgePhysicalChans"},
	{ChangeDetectDIFallingEdgePhysicalChans, "ChangeDetectDIFallingEdgePhysicalChans"},
	{DelayFromSampClkDelay, "DelayFromSampClkDelay"},
	{DelayFromSampClkDelayUnits, "DelayFromSampClkDelayUnits"},
	{FirstSampTimestampEnable, "FirstSampTimestampEnable"},
	{FirstSampTimestampVal, "FirstSampTimestampVal"},
	{FirstSampTimestampTimescale, "FirstSampTimestampTimescale"},
	{FirstSampClkWhen, "FirstSampClkWhen"},
	{FirstSampClkTimescale, "FirstSampClkTimescale"},
	{SyncPulseTimeWhen, "SyncPulseTimeWhen"},
	{TriggerSyncType, "TriggerSyncType"},
	{StartTrigType, "StartTrigType"},
	{StartTrigTerm, "StartTrigTerm"},
	{StartTrigDelay, "StartTrigDelay"},
	{StartTrigDelayUnits, "StartTrigDelayUnits"},
	{StartTrigRetriggerable, "StartTrigRetriggerable"},
	{StartTrigTrigWhen, "StartTrigTrigWhen"},
	{StartTrigTimescale, "StartTrigTimescale"},
	{StartTrigTimestampEnable, "StartTrigTimestampEnable"},
	{StartTrigTimestampVal, "StartTrigTimestampVal"},
	{DigEdgeStartTrigSrc, "DigEdgeStartTrigSrc"},
	{DigEdgeStartTrigEdge, "DigEdgeStartTrigEdge"},
	{DigEdgeStartTrigDigFltrEnable, "DigEdgeStartTrigDigFltrEnable"},
	{AnlgEdgeStartTrigSrc, "AnlgEdgeStartTrigSrc"},
	{AnlgEdgeStartTrigSlope, "AnlgEdgeStartTrigSlope"},
	{AnlgEdgeStartTrigLvl, "AnlgEdgeStartTrigLvl"},
	{AnlgEdgeStartTrigHyst, "AnlgEdgeStartTrigHyst"},
	{AnlgEdgeStartTrigCoupling, "AnlgEdgeStartTrigCoupling"},
	{AnlgWinStartTrigSrc, "AnlgWinStartTrigSrc"},
	{AnlgWinStartTrigWhen, "AnlgWinStartTrigWhen"},
	{AnlgWinStartTrigTop, "AnlgWinStartTrigTop"},
	{AnlgWinStartTrigBtm, "AnlgWinStartTrigBtm"},
	{DigPatternStartTrigSrc, "DigPatternStartTrigSrc"},
	{DigPatternStartTrigPattern, "DigPatternStartTrigPattern"},
	{DigPatternStartTrigWhen, "DigPatternStartTrigWhen"},
	{AnlgMultiEdgeStartTrigSrcs, "AnlgMultiEdgeStartTrigSrcs"},
	{AnlgMultiEdgeStartTrigSlopes, "AnlgMultiEdgeStartTrigSlopes"},
	{AnlgMultiEdgeStartTrigLvls, "AnlgMultiEdgeStartTrigLvls"},
	{AnlgMultiEdgeStartTrigHysts, "AnlgMultiEdgeStartTrigHysts"},
	{AnlgMultiEdgeStartTrigCouplings, "AnlgMultiEdgeStartTrigCouplings"},
	{RefTrigType, "RefTrigType"},
	{RefTrigPretrigSamples, "RefTrigPretrigSamples"},
	{RefTrigTerm, "RefTrigTerm"},
	{RefTrigAutoTrigEnable, "RefTrigAutoTrigEnable"},
	{RefTrigDelay, "RefTrigDelay"},
	{RefTrigRetriggerable, "RefTrigRetriggerable"},
	{RefTrigTimestampEnable, "RefTrigTimestampEnable"},
	{RefTrigTimestampVal, "RefTrigTimestampVal"},
	{DigEdgeRefTrigSrc, "DigEdgeRefTrigSrc"},
	{DigEdgeRefTrigEdge, "DigEdgeRefTrigEdge"},
	{AnlgEdgeRefTrigSrc, "AnlgEdgeRefTrigSrc"},
	{AnlgEdgeRefTrigSlope, "AnlgEdgeRefTrigSlope"},
	{AnlgEdgeRefTrigLvl, "AnlgEdgeRefTrigLvl"},
	{AnlgEdgeRefTrigHyst, "AnlgEdgeRefTrigHyst"},
	{AnlgWinRefTrigSrc, "AnlgWinRefTrigSrc"},
	{AnlgWinRefTrigWhen, "AnlgWinRefTrigWhen"},
	{AnlgWinRefTrigTop, "AnlgWinRefTrigTop"},
	{AnlgWinRefTrigBtm, "AnlgWinRefTrigBtm"},
	{DigPatternRefTrigSrc, "DigPatternRefTrigSrc"},
	{DigPatternRefTrigPattern, "DigPatternRefTrigPattern"},
	{DigPatternRefTrigWhen, "DigPatternRefTrigWhen"},
	{ArmStartTrigType, "ArmStartTrigType"},
	{ArmStartTerm, "ArmStartTerm"},
	{DigEdgeArmStartTrigSrc, "DigEdgeArmStartTrigSrc"},
	{DigEdgeArmStartTrigEdge, "DigEdgeArmStartTrigEdge"},
	{ArmStartTrigTrigWhen, "ArmStartTrigTrigWhen"},
	{ArmStartTrigTimescale, "ArmStartTrigTimescale"},
	{ArmStartTrigTimestampEnable, "ArmStartTrigTimestampEnable"},
	{ArmStartTrigTimestampVal, "ArmStartTrigTimestampVal"},
	{PauseTrigType, "PauseTrigType"},
	{PauseTrigTerm, "PauseTrigTerm"},
	{DigLvlPauseTrigSrc, "DigLvlPauseTrigSrc"},
	{DigLvlPauseTrigWhen, "DigLvlPauseTrigWhen"},
	{AnlgLvlPauseTrigSrc, "AnlgLvlPauseTrigSrc"},
	{AnlgLvlPauseTrigWhen, "AnlgLvlPauseTrigWhen"},
	{AnlgLvlPauseTrigLvl, "AnlgLvlPauseTrigLvl"},
	{AnlgLvlPauseTrigHyst, "AnlgLvlPauseTrigHyst"},
	{AnlgWinPauseTrigSrc, "AnlgWinPauseTrigSrc"},
	{AnlgWinPauseTrigWhen, "AnlgWinPauseTrigWhen"},
	{AnlgWinPauseTrigTop, "AnlgWinPauseTrigTop"},
	{AnlgWinPauseTrigBtm, "AnlgWinPauseTrigBtm"},
	{DigPatternPauseTrigSrc, "DigPatternPauseTrigSrc"},
	{DigPatternPauseTrigPattern, "DigPatternPauseTrigPattern"},
	{DigPatternPauseTrigWhen, "DigPatternPauseTrigWhen"},
	{HshkTrigType, "HshkTrigType"},
	{InterlockedHshkTrigSrc, "InterlockedHshkTrigSrc"},
	{InterlockedHshkTrigAssertedLvl, "InterlockedHshkTrigAssertedLvl"},
	{ReadRelativeTo, "ReadRelativeTo"},
	{ReadOffset, "ReadOffset"},
	{ReadChannelsToRead, "ReadChannelsToRead"},
	{ReadReadAllAvailSamp, "ReadReadAllAvailSamp"},
	{ReadAutoStart, "ReadAutoStart"},
	{ReadOverWrite, "ReadOverWrite"},
	{ReadCurrReadPos, "ReadCurrReadPos"},
	{ReadAvailSampPerChan, "ReadAvailSampPerChan"},
	{ReadTotalSampPerChanAcquired, "ReadTotalSampPerChanAcquired"},
	{ReadNumChans, "ReadNumChans"},
	{ReadRawDataWidth, "ReadRawDataWidth"},
	{ReadDigitalLinesBytesPerChan, "ReadDigitalLinesBytesPerChan"},
	{ReadWaitMode, "ReadWaitMode"},
	{ReadSleepTime, "ReadSleepTime"},
	{ReadOverloadedChansExist, "ReadOverloadedChansExist"},
	{ReadOverloadedChans, "ReadOverloadedChans"},
	{ReadOpenChansExist, "ReadOpenChansExist"},
	{ReadAccessoryInsertionOrRemovalDetected, "ReadAccessoryInsertionOrRemovalDetected"},
	{ReadDevsWithInsertedOrRemovedAccessories, "ReadDevsWithInsertedOrRemovedAccessories"},
	{ReadChangeDetectHasOverflowed, "ReadChangeDetectHasOverflowed"},
	{WriteRelativeTo, "WriteRelativeTo"},
	{WriteOffset, "WriteOffset"},
	{WriteRegenMode, "WriteRegenMode"},
	{WriteCurrWritePos, "WriteCurrWritePos"},
	{WriteSpaceAvail, "WriteSpaceAvail"},
	{WriteTotalSampPerChanGenerated, "WriteTotalSampPerChanGenerated"},
	{WriteRawDataWidth, "WriteRawDataWidth"},
	{WriteNumChans, "WriteNumChans"},
	{WriteWaitMode, "WriteWaitMode"},
	{WriteSleepTime, "WriteSleepTime"},
	{WriteNextWriteIsLast, "WriteNextWriteIsLast"},
	{WriteDigitalLinesBytesPerChan, "WriteDigitalLinesBytesPerChan"},
	{WriteOvercurrentChansExist, "WriteOvercurrentChansExist"},
	{WriteOpenCurrentLoopChansExist, "WriteOpenCurrentLoopChansExist"},
	{WritePowerSupplyFaultChansExist, "WritePowerSupplyFaultChansExist"},
	{BufInputBufSize, "BufInputBufSize"},
	{BufInputOnbrdBufSize, "BufInputOnbrdBufSize"},
	{BufOutputBufSize, "BufOutputBufSize"},
	{BufOutputOnbrdBufSize, "BufOutputOnbrdBufSize"},
	{ExportedAIConvClkOutputTerm, "ExportedAIConvClkOutputTerm"},
	{ExportedSampClkOutputTerm, "ExportedSampClkOutputTerm"},
	{ExportedSampClkOutputBehavior, "ExportedSampClkOutputBehavior"},
	{ExportedSampClkPulsePolarity, "ExportedSampClkPulsePolarity"},
	{ExportedSampClkTimebaseOutputTerm, "ExportedSampClkTimebaseOutputTerm"},
	{ExportedStartTrigOutputTerm, "ExportedStartTrigOutputTerm"},
	{ExportedStartTrigPulsePolarity, "ExportedStartTrigPulsePolarity"},
	{ExportedRefTrigOutputTerm, "ExportedRefTrigOutputTerm"},
	{ExportedRefTrigPulsePolarity, "ExportedRefTrigPulsePolarity"},
	{ExportedPauseTrigOutputTerm, "ExportedPauseTrigOutputTerm"},
	{ExportedAdvTrigOutputTerm, "ExportedAdvTrigOutputTerm"},
	{ExportedCtrOutEventOutputTerm, "ExportedCtrOutEventOutputTerm"},
	{ExportedCtrOutEventOutputBehavior, "ExportedCtrOutEventOutputBehavior"},
	{ExportedCtrOutEventPulsePolarity, "ExportedCtrOutEventPulsePolarity"},
	{ExportedCtrOutEventToggleIdleState, "ExportedCtrOutEventToggleIdleState"},
	{ExportedChangeDetectEventOutputTerm, "ExportedChangeDetectEventOutputTerm"},
	{ExportedDataActiveEventOutputTerm, "ExportedDataActiveEventOutputTerm"},
	{Exported20MHzTimebaseOutputTerm, "Exported20MHzTimebaseOutputTerm"},
	{Exported10MHzRefClkOutputTerm, "Exported10MHzRefClkOutputTerm"},
	{ExportedSyncPulseEventOutputTerm, "ExportedSyncPulseEventOutputTerm"},
	{SysGlobalChans, "SysGlobalChans"},
	{SysScales, "SysScales"},
	{SysTasks, "SysTasks"},
	{SysDevNames, "SysDevNames"},
	{SysNIDAQMajorVersion, "SysNIDAQMajorVersion"},
	{SysNIDAQMinorVersion, "SysNIDAQMinorVersion"},
	{SysNIDAQUpdateVersion, "SysNIDAQUpdateVersion"},
	{ScaleDescr, "ScaleDescr"},
	{ScaleScaledUnits, "ScaleScaledUnits"},
	{ScalePreScaledUnits, "ScalePreScaledUnits"},
	{ScaleType, "ScaleType"},
	{ScaleLinSlope, "ScaleLinSlope"},
	{ScaleLinYIntercept, "ScaleLinYIntercept"},
	{ScaleMapScaledMax, "ScaleMapScaledMax"},
	{ScaleMapPreScaledMax, "ScaleMapPreScaledMax"},
	{ScaleMapScaledMin, "ScaleMapScaledMin"},
	{ScaleMapPreScaledMin, "ScaleMapPreScaledMin"},
	{ScalePolyForwardCoeff, "ScalePolyForwardCoeff"},
	{ScalePolyReverseCoeff, "ScalePolyReverseCoeff"},
	{ScaleTableScaledVals, "ScaleTableScaledVals"},
	{ScaleTablePreScaledVals, "ScaleTablePreScaledVals"},
	{DevIsSimulated, "DevIsSimulated"},
	{DevProductCategory, "DevProductCategory"},
	{DevProductType, "DevProductType"},
	{DevProductNum, "DevProductNum"},
	{DevSerialNum, "DevSerialNum"},
	{DevAccessoryProductTypes, "DevAccessoryProductTypes"},
	{DevChassisModuleDevNames, "DevChassisModuleDevNames"},
	{DevAnlgTrigSupported, "DevAnlgTrigSupported"},
	{DevDigTrigSupported, "DevDigTrigSupported"},
	{DevTimeTrigSupported, "DevTimeTrigSupported"},
	{DevAIPhysicalChans, "DevAIPhysicalChans"},
	{DevAISupportedMeasTypes, "DevAISupportedMeasTypes"},
	{DevAIMaxSingleChanRate, "DevAIMaxSingleChanRate"},
	{DevAIMaxMultiChanRate, "DevAIMaxMultiChanRate"},
	{DevAIMinRate, "DevAIMinRate"},
	{DevAISimultaneousSamplingSupported, "DevAISimultaneousSamplingSupported"},
	{DevAIVoltageRngs, "DevAIVoltageRngs"},
	{DevAICurrentRngs, "DevAICurrentRngs"},
	{DevAICouplings, "DevAICouplings"},
	{DevAOPhysicalChans, "DevAOPhysicalChans"},
	{DevAOSupportedOutputTypes, "DevAOSupportedOutputTypes"},
	{DevAOMaxRate, "DevAOMaxRate"},
	{DevAOMinRate, "DevAOMinRate"},
	{DevAOVoltageRngs, "DevAOVoltageRngs"},
	{DevAOCurrentRngs, "DevAOCurrentRngs"},
	{DevDILines, "DevDILines"},
	{DevDIPorts, "DevDIPorts"},
	{DevDIMaxRate, "DevDIMaxRate"},
	{DevDOLines, "DevDOLines"},
	{DevDOPorts, "DevDOPorts"},
	{DevDOMaxRate, "DevDOMaxRate"},
	{DevCIPhysicalChans, "DevCIPhysicalChans"},
	{DevCISupportedMeasTypes, "DevCISupportedMeasTypes"},
	{DevCIMaxSize, "DevCIMaxSize"},
	{DevCIMaxTimebase, "DevCIMaxTimebase"},
	{DevCOPhysicalChans, "DevCOPhysicalChans"},
	{DevCOSupportedOutputTypes, "DevCOSupportedOutputTypes"},
	{DevCOMaxSize, "DevCOMaxSize"},
	{DevCOMaxTimebase, "DevCOMaxTimebase"},
	{DevBusType, "DevBusType"},
	{DevPCIBusNum, "DevPCIBusNum"},
	{DevPCIDevNum, "DevPCIDevNum"},
	{DevPXIChassisNum, "DevPXIChassisNum"},
	{DevPXISlotNum, "DevPXISlotNum"},
	{DevCompactDAQChassisDevName, "DevCompactDAQChassisDevName"},
	{DevCompactDAQSlotNum, "DevCompactDAQSlotNum"},
	{DevTCPIPHostname, "DevTCPIPHostname"},
	{DevTCPIPEthernetIP, "DevTCPIPEthernetIP"},
	{DevTerminals, "DevTerminals"},
	{DevNumDMAChans, "DevNumDMAChans"},
	{PhysicalChanAISupportedMeasTypes, "PhysicalChanAISupportedMeasTypes"},
	{PhysicalChanAITermCfgs, "PhysicalChanAITermCfgs"},
	{PhysicalChanAOSupportedOutputTypes, "PhysicalChanAOSupportedOutputTypes"},
	{PhysicalChanAOTermCfgs, "PhysicalChanAOTermCfgs"},
	{PhysicalChanAOManualControlEnable, "PhysicalChanAOManualControlEnable"},
	{PhysicalChanAOManualControlAmplitude, "PhysicalChanAOManualControlAmplitude"},
	{PhysicalChanAOManualControlFreq, "PhysicalChanAOManualControlFreq"},
	{PhysicalChanDIPortWidth, "PhysicalChanDIPortWidth"},
	{PhysicalChanDISampClkSupported, "PhysicalChanDISampClkSupported"},
	{PhysicalChanDIChangeDetectSupported, "PhysicalChanDIChangeDetectSupported"},
	{PhysicalChanDOPortWidth, "PhysicalChanDOPortWidth"},
	{PhysicalChanDOSampClkSupported, "PhysicalChanDOSampClkSupported"},
	{PhysicalChanCISupportedMeasTypes, "PhysicalChanCISupportedMeasTypes"},
	{PhysicalChanCOSupportedOutputTypes, "PhysicalChanCOSupportedOutputTypes"},
	{PhysicalChanTEDSMfgID, "PhysicalChanTEDSMfgID"},
	{PhysicalChanTEDSModelNum, "PhysicalChanTEDSModelNum"},
	{PhysicalChanTEDSSerialNum, "PhysicalChanTEDSSerialNum"},
	{PhysicalChanTEDSVersionNum, "PhysicalChanTEDSVersionNum"},
	{PhysicalChanTEDSVersionLetter, "PhysicalChanTEDSVersionLetter"},
	{PhysicalChanTEDSBitStream, "PhysicalChanTEDSBitStream"},
	{PhysicalChanTEDSTemplateIDs, "PhysicalChanTEDSTemplateIDs"},
	{PersistedTaskAuthor, "PersistedTaskAuthor"},
	{PersistedTaskAllowInteractiveEditing, "PersistedTaskAllowInteractiveEditing"},
	{PersistedTaskAllowInteractiveDeletion, "PersistedTaskAllowInteractiveDeletion"},
	{PersistedChanAuthor, "PersistedChanAuthor"},
	{PersistedChanAllowInteractiveEditing, "PersistedChanAllowInteractiveEditing"},
	{PersistedChanAllowInteractiveDeletion, "PersistedChanAllowInteractiveDeletion"},
	{PersistedScaleAuthor, "PersistedScaleAuthor"},
	{PersistedScaleAllowInteractiveEditing, "PersistedScaleAllowInteractiveEditing"},
	{PersistedScaleAllowInteractiveDeletion, "PersistedScaleAllowInteractiveDeletion"},
}

func TestDeclaredIDsMatchMetadata(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, len(declaredIDs), reg.Len())

	for _, d := range declaredIDs {
		a, ok := reg.Lookup(d.id)
		if assert.True(t, ok, d.name) {
			assert.Equal(t, d.name, a.Symbol())
		}
	}
}
