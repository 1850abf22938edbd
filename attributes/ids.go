package attributes

// Attribute IDs. Each name is the metadata name with underscores removed.
const (
	// channel (common)
	ChanType         ID = 0x187F
	PhysicalChanName ID = 0x18F5
	ChanDescr        ID = 0x1926
	ChanIsGlobal     ID = 0x2304

	// AI
	AIMax                          ID = 0x17DD
	AIMin                          ID = 0x17DE
	AICustomScaleName              ID = 0x17E0
	AIMeasType                     ID = 0x0695
	AIVoltageUnits                 ID = 0x1094
	AICurrentUnits                 ID = 0x0701
	AITempUnits                    ID = 0x1033
	AIThrmcplType                  ID = 0x1050
	AIThrmcplCJCSrc                ID = 0x1035
	AIThrmcplCJCVal                ID = 0x1036
	AIThrmcplCJCChan               ID = 0x1034
	AIRTDType                      ID = 0x1032
	AIRTDR0                        ID = 0x1030
	AIRTDA                         ID = 0x1010
	AIRTDB                         ID = 0x1011
	AIRTDC                         ID = 0x1013
	AIResistanceUnits              ID = 0x0955
	AIResistanceCfg                ID = 0x1881
	AIExcitSrc                     ID = 0x17F4
	AIExcitVal                     ID = 0x17F5
	AIAccelUnits                   ID = 0x0673
	AIAccelSensitivity             ID = 0x0692
	AIAccelSensitivityUnits        ID = 0x219C
	AIStrainUnits                  ID = 0x0981
	AIStrainGageGageFactor         ID = 0x0994
	AIStrainGagePoissonRatio       ID = 0x0998
	AIStrainGageCfg                ID = 0x0982
	AIBridgeNomResistance          ID = 0x17EC
	AIBridgeInitialVoltage         ID = 0x17ED
	AILowpassEnable                ID = 0x1802
	AILowpassCutoffFreq            ID = 0x1803
	AICoupling                     ID = 0x0064
	AITermCfg                      ID = 0x1097
	AIRngHigh                      ID = 0x1815
	AIRngLow                       ID = 0x1816
	AIGain                         ID = 0x1818
	AIResolution                   ID = 0x1765
	AIDataXferMech                 ID = 0x1821
	AIAutoZeroMode                 ID = 0x1760
	AICurrentShuntLoc              ID = 0x17F2
	AICurrentShuntResistance       ID = 0x17F3
	AIDevScalingCoeff              ID = 0x1930
	AIEnhancedAliasRejectionEnable ID = 0x2294
	AIIsTEDS                       ID = 0x2983
	AIDitherEnable                 ID = 0x0068

	// AO
	AOMax                    ID = 0x1186
	AOMin                    ID = 0x1187
	AOCustomScaleName        ID = 0x1188
	AOOutputType             ID = 0x1108
	AOVoltageUnits           ID = 0x1184
	AOCurrentUnits           ID = 0x1109
	AOTermCfg                ID = 0x188E
	AOIdleOutputBehavior     ID = 0x2240
	AODataXferMech           ID = 0x0134
	AOResolution             ID = 0x182C
	AODACRngHigh             ID = 0x182E
	AODACRngLow              ID = 0x182D
	AOUseOnlyOnBrdMem        ID = 0x183A
	AOFuncGenType            ID = 0x2A18
	AOFuncGenFreq            ID = 0x2A19
	AOFuncGenAmplitude       ID = 0x2A1A
	AOFuncGenOffset          ID = 0x2A1B
	AOFuncGenSquareDutyCycle ID = 0x2A1C

	// CI
	CIMax                    ID = 0x189C
	CIMin                    ID = 0x189D
	CICustomScaleName        ID = 0x189E
	CIMeasType               ID = 0x18A0
	CIFreqUnits              ID = 0x18A1
	CIFreqTerm               ID = 0x18A2
	CIFreqStartingEdge       ID = 0x0799
	CIFreqMeasMeth           ID = 0x0144
	CIFreqMeasTime           ID = 0x0145
	CIFreqDiv                ID = 0x0147
	CIPeriodUnits            ID = 0x18A3
	CIPeriodTerm             ID = 0x18A4
	CIPeriodStartingEdge     ID = 0x0852
	CIPeriodMeasMeth         ID = 0x192C
	CIPeriodMeasTime         ID = 0x192D
	CIPeriodDiv              ID = 0x192E
	CICountEdgesTerm         ID = 0x18C7
	CICountEdgesDir          ID = 0x0696
	CICountEdgesDirTerm      ID = 0x21E1
	CICountEdgesInitialCnt   ID = 0x0698
	CICountEdgesActiveEdge   ID = 0x0697
	CIPulseWidthUnits        ID = 0x0823
	CIPulseWidthTerm         ID = 0x18AA
	CIPulseWidthStartingEdge ID = 0x0825
	CIEncoderDecodingType    ID = 0x21E6
	CIEncoderAInputTerm      ID = 0x219D
	CIEncoderBInputTerm      ID = 0x219E
	CIEncoderZInputTerm      ID = 0x219F
	CIEncoderZIndexEnable    ID = 0x0890
	CIEncoderZIndexVal       ID = 0x0888
	CIEncoderZIndexPhase     ID = 0x0889
	CIAngEncoderUnits        ID = 0x18A6
	CIAngEncoderPulsesPerRev ID = 0x0875
	CIAngEncoderInitialAngle ID = 0x0881
	CILinEncoderUnits        ID = 0x18A9
	CILinEncoderDistPerPulse ID = 0x0911
	CILinEncoderInitialPos   ID = 0x0915
	CIPulseFreqUnits         ID = 0x2F0B
	CIPulseFreqTerm          ID = 0x2F04
	CIPulseTimeUnits         ID = 0x2F13
	CICount                  ID = 0x0148
	CIOutputState            ID = 0x0149
	CITCReached              ID = 0x0150
	CICtrTimebaseSrc         ID = 0x0143
	CICtrTimebaseRate        ID = 0x18B2
	CIDataXferMech           ID = 0x0200
	CIPrescaler              ID = 0x2239
	CIDupCountPrevention     ID = 0x21AC

	// CO
	COOutputType                    ID = 0x18B5
	COPulseIdleState                ID = 0x1170
	COPulseTerm                     ID = 0x18E1
	COPulseTimeUnits                ID = 0x18D6
	COPulseHighTime                 ID = 0x18BA
	COPulseLowTime                  ID = 0x18BB
	COPulseTimeInitialDelay         ID = 0x18BC
	COPulseDutyCyc                  ID = 0x1176
	COPulseFreqUnits                ID = 0x18D5
	COPulseFreq                     ID = 0x1178
	COPulseFreqInitialDelay         ID = 0x0299
	COPulseHighTicks                ID = 0x1169
	COPulseLowTicks                 ID = 0x1171
	COPulseTicksInitialDelay        ID = 0x0298
	COCtrTimebaseSrc                ID = 0x0339
	COCtrTimebaseRate               ID = 0x18C2
	COCount                         ID = 0x0293
	COOutputState                   ID = 0x0294
	COPulseDone                     ID = 0x190E
	COEnableInitialDelayOnRetrigger ID = 0x2EC9
	COPrescaler                     ID = 0x226D
	COAutoIncrCnt                   ID = 0x0295

	// DI / DO
	DIInvertLines           ID = 0x0793
	DINumLines              ID = 0x2178
	DIDigFltrEnable         ID = 0x21D6
	DIDigFltrMinPulseWidth  ID = 0x21D7
	DITristate              ID = 0x1890
	DIDataXferMech          ID = 0x2263
	DOInvertLines           ID = 0x1133
	DONumLines              ID = 0x2179
	DOTristate              ID = 0x18F3
	DOOutputDriveType       ID = 0x1137
	DOLineStatesStartState  ID = 0x2972
	DOLineStatesPausedState ID = 0x2967
	DOLineStatesDoneState   ID = 0x2968
	DODataXferMech          ID = 0x2266

	// task
	TaskName       ID = 0x1276
	TaskChannels   ID = 0x1273
	TaskNumChans   ID = 0x2181
	TaskDevices    ID = 0x230E
	TaskNumDevices ID = 0x29BA
	TaskComplete   ID = 0x1274

	// timing
	SampQuantSampMode                      ID = 0x1300
	SampQuantSampPerChan                   ID = 0x1310
	SampTimingType                         ID = 0x1347
	SampClkRate                            ID = 0x1344
	SampClkMaxRate                         ID = 0x22C8
	SampClkSrc                             ID = 0x1852
	SampClkActiveEdge                      ID = 0x1301
	SampClkTerm                            ID = 0x2F1B
	SampClkTimebaseSrc                     ID = 0x1308
	SampClkTimebaseRate                    ID = 0x1303
	SampClkDigFltrEnable                   ID = 0x221E
	SampClkUnderflowBehavior               ID = 0x2961
	AIConvRate                             ID = 0x1848
	AIConvMaxRate                          ID = 0x22C9
	AIConvSrc                              ID = 0x1502
	MasterTimebaseSrc                      ID = 0x1343
	MasterTimebaseRate                     ID = 0x1495
	RefClkSrc                              ID = 0x1316
	RefClkRate                             ID = 0x1315
	SyncPulseSrc                           ID = 0x223D
	ChangeDetectDIRisingEdgePhysicalChans  ID = 0x2195
	ChangeDetectDIFallingEdgePhysicalChans ID = 0x2196
	DelayFromSampClkDelay                  ID = 0x1317
	DelayFromSampClkDelayUnits             ID = 0x1304
	FirstSampTimestampEnable               ID = 0x3139
	FirstSampTimestampVal                  ID = 0x313A
	FirstSampTimestampTimescale            ID = 0x313B
	FirstSampClkWhen                       ID = 0x3182
	FirstSampClkTimescale                  ID = 0x3183
	SyncPulseTimeWhen                      ID = 0x3137

	// triggers
	TriggerSyncType                 ID = 0x2F80
	StartTrigType                   ID = 0x1393
	StartTrigTerm                   ID = 0x2F1E
	StartTrigDelay                  ID = 0x1856
	StartTrigDelayUnits             ID = 0x18C8
	StartTrigRetriggerable          ID = 0x190F
	StartTrigTrigWhen               ID = 0x304D
	StartTrigTimescale              ID = 0x3036
	StartTrigTimestampEnable        ID = 0x314A
	StartTrigTimestampVal           ID = 0x314B
	DigEdgeStartTrigSrc             ID = 0x1407
	DigEdgeStartTrigEdge            ID = 0x1404
	DigEdgeStartTrigDigFltrEnable   ID = 0x2223
	AnlgEdgeStartTrigSrc            ID = 0x1398
	AnlgEdgeStartTrigSlope          ID = 0x1397
	AnlgEdgeStartTrigLvl            ID = 0x1396
	AnlgEdgeStartTrigHyst           ID = 0x1395
	AnlgEdgeStartTrigCoupling       ID = 0x2233
	AnlgWinStartTrigSrc             ID = 0x1400
	AnlgWinStartTrigWhen            ID = 0x1401
	AnlgWinStartTrigTop             ID = 0x1403
	AnlgWinStartTrigBtm             ID = 0x1402
	DigPatternStartTrigSrc          ID = 0x1410
	DigPatternStartTrigPattern      ID = 0x2186
	DigPatternStartTrigWhen         ID = 0x1411
	AnlgMultiEdgeStartTrigSrcs      ID = 0x3121
	AnlgMultiEdgeStartTrigSlopes    ID = 0x3122
	AnlgMultiEdgeStartTrigLvls      ID = 0x3123
	AnlgMultiEdgeStartTrigHysts     ID = 0x3124
	AnlgMultiEdgeStartTrigCouplings ID = 0x3125
	RefTrigType                     ID = 0x1419
	RefTrigPretrigSamples           ID = 0x1445
	RefTrigTerm                     ID = 0x2F1F
	RefTrigAutoTrigEnable           ID = 0x2EC1
	RefTrigDelay                    ID = 0x1483
	RefTrigRetriggerable            ID = 0x311D
	RefTrigTimestampEnable          ID = 0x312E
	RefTrigTimestampVal             ID = 0x312F
	DigEdgeRefTrigSrc               ID = 0x1434
	DigEdgeRefTrigEdge              ID = 0x1430
	AnlgEdgeRefTrigSrc              ID = 0x1424
	AnlgEdgeRefTrigSlope            ID = 0x1423
	AnlgEdgeRefTrigLvl              ID = 0x1422
	AnlgEdgeRefTrigHyst             ID = 0x1421
	AnlgWinRefTrigSrc               ID = 0x1426
	AnlgWinRefTrigWhen              ID = 0x1427
	AnlgWinRefTrigTop               ID = 0x1429
	AnlgWinRefTrigBtm               ID = 0x1428
	DigPatternRefTrigSrc            ID = 0x1437
	DigPatternRefTrigPattern        ID = 0x2187
	DigPatternRefTrigWhen           ID = 0x1438
	ArmStartTrigType                ID = 0x1414
	ArmStartTerm                    ID = 0x2F7F
	DigEdgeArmStartTrigSrc          ID = 0x1417
	DigEdgeArmStartTrigEdge         ID = 0x1415
	ArmStartTrigTrigWhen            ID = 0x3131
	ArmStartTrigTimescale           ID = 0x3132
	ArmStartTrigTimestampEnable     ID = 0x3133
	ArmStartTrigTimestampVal        ID = 0x3134
	PauseTrigType                   ID = 0x1366
	PauseTrigTerm                   ID = 0x2F20
	DigLvlPauseTrigSrc              ID = 0x1379
	DigLvlPauseTrigWhen             ID = 0x1380
	AnlgLvlPauseTrigSrc             ID = 0x1370
	AnlgLvlPauseTrigWhen            ID = 0x1371
	AnlgLvlPauseTrigLvl             ID = 0x1369
	AnlgLvlPauseTrigHyst            ID = 0x1368
	AnlgWinPauseTrigSrc             ID = 0x1373
	AnlgWinPauseTrigWhen            ID = 0x1374
	AnlgWinPauseTrigTop             ID = 0x1376
	AnlgWinPauseTrigBtm             ID = 0x1375
	DigPatternPauseTrigSrc          ID = 0x216F
	DigPatternPauseTrigPattern      ID = 0x2188
	DigPatternPauseTrigWhen         ID = 0x2170
	HshkTrigType                    ID = 0x22B7
	InterlockedHshkTrigSrc          ID = 0x22B8
	InterlockedHshkTrigAssertedLvl  ID = 0x22B9

	// read
	ReadRelativeTo                           ID = 0x190A
	ReadOffset                               ID = 0x190B
	ReadChannelsToRead                       ID = 0x1823
	ReadReadAllAvailSamp                     ID = 0x1215
	ReadAutoStart                            ID = 0x1826
	ReadOverWrite                            ID = 0x1211
	ReadCurrReadPos                          ID = 0x1221
	ReadAvailSampPerChan                     ID = 0x1223
	ReadTotalSampPerChanAcquired             ID = 0x192A
	ReadNumChans                             ID = 0x217B
	ReadRawDataWidth                         ID = 0x217A
	ReadDigitalLinesBytesPerChan             ID = 0x217C
	ReadWaitMode                             ID = 0x2232
	ReadSleepTime                            ID = 0x22B0
	ReadOverloadedChansExist                 ID = 0x2174
	ReadOverloadedChans                      ID = 0x2175
	ReadOpenChansExist                       ID = 0x3100
	ReadAccessoryInsertionOrRemovalDetected  ID = 0x2F70
	ReadDevsWithInsertedOrRemovedAccessories ID = 0x2F71
	ReadChangeDetectHasOverflowed            ID = 0x2194

	// write
	WriteRelativeTo                 ID = 0x190C
	WriteOffset                     ID = 0x190D
	WriteRegenMode                  ID = 0x1453
	WriteCurrWritePos               ID = 0x1458
	WriteSpaceAvail                 ID = 0x1460
	WriteTotalSampPerChanGenerated  ID = 0x192B
	WriteRawDataWidth               ID = 0x217D
	WriteNumChans                   ID = 0x217E
	WriteWaitMode                   ID = 0x22B1
	WriteSleepTime                  ID = 0x22B2
	WriteNextWriteIsLast            ID = 0x296C
	WriteDigitalLinesBytesPerChan   ID = 0x217F
	WriteOvercurrentChansExist      ID = 0x29E8
	WriteOpenCurrentLoopChansExist  ID = 0x29EA
	WritePowerSupplyFaultChansExist ID = 0x29EC

	// buffer
	BufInputBufSize       ID = 0x186C
	BufInputOnbrdBufSize  ID = 0x230A
	BufOutputBufSize      ID = 0x186D
	BufOutputOnbrdBufSize ID = 0x230B

	// export
	ExportedAIConvClkOutputTerm         ID = 0x1687
	ExportedSampClkOutputTerm           ID = 0x1663
	ExportedSampClkOutputBehavior       ID = 0x186B
	ExportedSampClkPulsePolarity        ID = 0x1664
	ExportedSampClkTimebaseOutputTerm   ID = 0x18F9
	ExportedStartTrigOutputTerm         ID = 0x0584
	ExportedStartTrigPulsePolarity      ID = 0x0585
	ExportedRefTrigOutputTerm           ID = 0x0590
	ExportedRefTrigPulsePolarity        ID = 0x0591
	ExportedPauseTrigOutputTerm         ID = 0x1615
	ExportedAdvTrigOutputTerm           ID = 0x1645
	ExportedCtrOutEventOutputTerm       ID = 0x1717
	ExportedCtrOutEventOutputBehavior   ID = 0x174F
	ExportedCtrOutEventPulsePolarity    ID = 0x1718
	ExportedCtrOutEventToggleIdleState  ID = 0x186A
	ExportedChangeDetectEventOutputTerm ID = 0x2197
	ExportedDataActiveEventOutputTerm   ID = 0x1633
	Exported20MHzTimebaseOutputTerm     ID = 0x1657
	Exported10MHzRefClkOutputTerm       ID = 0x226E
	ExportedSyncPulseEventOutputTerm    ID = 0x223C

	// system
	SysGlobalChans        ID = 0x1265
	SysScales             ID = 0x1266
	SysTasks              ID = 0x1267
	SysDevNames           ID = 0x193B
	SysNIDAQMajorVersion  ID = 0x1272
	SysNIDAQMinorVersion  ID = 0x1923
	SysNIDAQUpdateVersion ID = 0x2F22

	// scale
	ScaleDescr              ID = 0x1226
	ScaleScaledUnits        ID = 0x191B
	ScalePreScaledUnits     ID = 0x18F7
	ScaleType               ID = 0x1929
	ScaleLinSlope           ID = 0x1227
	ScaleLinYIntercept      ID = 0x1228
	ScaleMapScaledMax       ID = 0x1229
	ScaleMapPreScaledMax    ID = 0x1231
	ScaleMapScaledMin       ID = 0x1230
	ScaleMapPreScaledMin    ID = 0x1232
	ScalePolyForwardCoeff   ID = 0x1234
	ScalePolyReverseCoeff   ID = 0x1235
	ScaleTableScaledVals    ID = 0x1236
	ScaleTablePreScaledVals ID = 0x1237

	// device
	DevIsSimulated                     ID = 0x22CA
	DevProductCategory                 ID = 0x29A9
	DevProductType                     ID = 0x0631
	DevProductNum                      ID = 0x231D
	DevSerialNum                       ID = 0x0632
	DevAccessoryProductTypes           ID = 0x2F6D
	DevChassisModuleDevNames           ID = 0x29B6
	DevAnlgTrigSupported               ID = 0x2984
	DevDigTrigSupported                ID = 0x2985
	DevTimeTrigSupported               ID = 0x301F
	DevAIPhysicalChans                 ID = 0x231E
	DevAISupportedMeasTypes            ID = 0x2FD2
	DevAIMaxSingleChanRate             ID = 0x298C
	DevAIMaxMultiChanRate              ID = 0x298D
	DevAIMinRate                       ID = 0x298E
	DevAISimultaneousSamplingSupported ID = 0x298F
	DevAIVoltageRngs                   ID = 0x2990
	DevAICurrentRngs                   ID = 0x2991
	DevAICouplings                     ID = 0x2994
	DevAOPhysicalChans                 ID = 0x231F
	DevAOSupportedOutputTypes          ID = 0x2FD3
	DevAOMaxRate                       ID = 0x2997
	DevAOMinRate                       ID = 0x2998
	DevAOVoltageRngs                   ID = 0x299B
	DevAOCurrentRngs                   ID = 0x299C
	DevDILines                         ID = 0x2320
	DevDIPorts                         ID = 0x2321
	DevDIMaxRate                       ID = 0x2999
	DevDOLines                         ID = 0x2322
	DevDOPorts                         ID = 0x2323
	DevDOMaxRate                       ID = 0x299A
	DevCIPhysicalChans                 ID = 0x2324
	DevCISupportedMeasTypes            ID = 0x2FD4
	DevCIMaxSize                       ID = 0x299F
	DevCIMaxTimebase                   ID = 0x29A0
	DevCOPhysicalChans                 ID = 0x2325
	DevCOSupportedOutputTypes          ID = 0x2FD5
	DevCOMaxSize                       ID = 0x29A1
	DevCOMaxTimebase                   ID = 0x29A2
	DevBusType                         ID = 0x2326
	DevPCIBusNum                       ID = 0x2327
	DevPCIDevNum                       ID = 0x2328
	DevPXIChassisNum                   ID = 0x2329
	DevPXISlotNum                      ID = 0x232A
	DevCompactDAQChassisDevName        ID = 0x29B7
	DevCompactDAQSlotNum               ID = 0x29B8
	DevTCPIPHostname                   ID = 0x2A8B
	DevTCPIPEthernetIP                 ID = 0x2A8C
	DevTerminals                       ID = 0x2A40
	DevNumDMAChans                     ID = 0x233C

	// physical channel
	PhysicalChanAISupportedMeasTypes     ID = 0x2FD7
	PhysicalChanAITermCfgs               ID = 0x2342
	PhysicalChanAOSupportedOutputTypes   ID = 0x2FD9
	PhysicalChanAOTermCfgs               ID = 0x29A3
	PhysicalChanAOManualControlEnable    ID = 0x2A1E
	PhysicalChanAOManualControlAmplitude ID = 0x2A1F
	PhysicalChanAOManualControlFreq      ID = 0x2A20
	PhysicalChanDIPortWidth              ID = 0x29A4
	PhysicalChanDISampClkSupported       ID = 0x29A5
	PhysicalChanDIChangeDetectSupported  ID = 0x29A6
	PhysicalChanDOPortWidth              ID = 0x29A7
	PhysicalChanDOSampClkSupported       ID = 0x29A8
	PhysicalChanCISupportedMeasTypes     ID = 0x2FDA
	PhysicalChanCOSupportedOutputTypes   ID = 0x2FDB
	PhysicalChanTEDSMfgID                ID = 0x21DA
	PhysicalChanTEDSModelNum             ID = 0x21DB
	PhysicalChanTEDSSerialNum            ID = 0x21DC
	PhysicalChanTEDSVersionNum           ID = 0x21DD
	PhysicalChanTEDSVersionLetter        ID = 0x21DE
	PhysicalChanTEDSBitStream            ID = 0x21DF
	PhysicalChanTEDSTemplateIDs          ID = 0x228F

	// persisted
	PersistedTaskAuthor                    ID = 0x22CC
	PersistedTaskAllowInteractiveEditing   ID = 0x22CD
	PersistedTaskAllowInteractiveDeletion  ID = 0x22CE
	PersistedChanAuthor                    ID = 0x22D0
	PersistedChanAllowInteractiveEditing   ID = 0x22D1
	PersistedChanAllowInteractiveDeletion  ID = 0x22D2
	PersistedScaleAuthor                   ID = 0x22D4
	PersistedScaleAllowInteractiveEditing  ID = 0x22D5
	PersistedScaleAllowInteractiveDeletion ID = 0x22D6
)
