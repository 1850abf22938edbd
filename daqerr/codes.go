package daqerr

import "strconv"

// Code is a DAQmx status code. Negative codes are errors, positive codes are
// warnings and zero is success. A Code is itself an error so it can be used
// as a target for errors.Is.
type Code int32

const Success Code = 0

// Error codes.
const (
	DuplicateTask                       Code = -200089
	InvalidTask                         Code = -200088
	InvalidAttributeValue               Code = -200077
	AttributeNotSupportedInTaskContext  Code = -200452
	IDPinNoEEPROM                       Code = -201386
	TEDSSensorDataError                 Code = -200721
	BufferTooSmallForString             Code = -200228
	ReadBufferTooSmall                  Code = -200229
	WriteBufferTooSmall                 Code = -200230
	WriteNumChansMismatch               Code = -200524
	MismatchedInputArraySizes           Code = -200525
	InvalidRangeOfObjectsSyntaxInString Code = -200498
	RangeSyntaxNumberTooBig             Code = -200605
	SamplesNotYetAvailable              Code = -200284
	WaitUntilDoneDoesNotIndicateDone    Code = -200560
	InvalidAttributeName                Code = -200208
	LibraryNotPresent                   Code = -201000
	Unknown                             Code = -1
)

// Warning codes.
const (
	TimestampCounterRolledOver     Code = 200003
	StoppedBeforeDone              Code = 200010
	ReadNotCompleteBeforeSampClk   Code = 209800
	WriteNotCompleteBeforeSampClk  Code = 209801
	PALValueConflict               Code = 50000
	DeviceMayShutDownDueToHighTemp Code = 209806
)

var codeNames = map[Code]string{
	DuplicateTask:                       "DuplicateTask",
	InvalidTask:                         "InvalidTask",
	InvalidAttributeValue:               "InvalidAttributeValue",
	AttributeNotSupportedInTaskContext:  "AttributeNotSupportedInTaskContext",
	IDPinNoEEPROM:                       "IDPinNoEEPROM",
	TEDSSensorDataError:                 "TEDSSensorDataError",
	BufferTooSmallForString:             "BufferTooSmallForString",
	ReadBufferTooSmall:                  "ReadBufferTooSmall",
	WriteBufferTooSmall:                 "WriteBufferTooSmall",
	WriteNumChansMismatch:               "WriteNumChansMismatch",
	MismatchedInputArraySizes:           "MismatchedInputArraySizes",
	InvalidRangeOfObjectsSyntaxInString: "InvalidRangeOfObjectsSyntaxInString",
	RangeSyntaxNumberTooBig:             "RangeSyntaxNumberTooBig",
	SamplesNotYetAvailable:              "SamplesNotYetAvailable",
	WaitUntilDoneDoesNotIndicateDone:    "WaitUntilDoneDoesNotIndicateDone",
	InvalidAttributeName:                "InvalidAttributeName",
	LibraryNotPresent:                   "LibraryNotPresent",
	TimestampCounterRolledOver:          "TimestampCounterRolledOver",
	StoppedBeforeDone:                   "StoppedBeforeDone",
	ReadNotCompleteBeforeSampClk:        "ReadNotCompleteBeforeSampClk",
	WriteNotCompleteBeforeSampClk:       "WriteNotCompleteBeforeSampClk",
	PALValueConflict:                    "PALValueConflict",
	DeviceMayShutDownDueToHighTemp:      "DeviceMayShutDownDueToHighTemp",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

func (c Code) Error() string {
	return "daqmx status " + strconv.Itoa(int(c)) + " (" + c.String() + ")"
}

// IsError reports whether c is in the error range.
func (c Code) IsError() bool { return c < 0 }

// IsWarning reports whether c is in the warning range.
func (c Code) IsWarning() bool { return c > 0 }

// Kind classifies errors into the fixed set callers branch on.
type Kind int

const (
	KindNone Kind = iota
	KindDriver
	KindDuplicateTask
	KindInvalidAttributeValue
	KindAttributeNotSupportedInTaskContext
	KindIDPinNoEEPROM
	KindTEDSSensorDataError
	KindWriteBufferTooSmall
	KindReadBufferTooSmall
	KindMismatchedInputArraySizes
	KindFeatureNotSupported
	KindTransportFailure
)

var kindNames = map[Kind]string{
	KindNone:                               "none",
	KindDriver:                             "driver",
	KindDuplicateTask:                      "duplicate-task",
	KindInvalidAttributeValue:              "invalid-attribute-value",
	KindAttributeNotSupportedInTaskContext: "attribute-not-supported-in-task-context",
	KindIDPinNoEEPROM:                      "id-pin-no-eeprom",
	KindTEDSSensorDataError:                "teds-sensor-data-error",
	KindWriteBufferTooSmall:                "write-buffer-too-small",
	KindReadBufferTooSmall:                 "read-buffer-too-small",
	KindMismatchedInputArraySizes:          "mismatched-input-array-sizes",
	KindFeatureNotSupported:                "feature-not-supported",
	KindTransportFailure:                   "transport-failure",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

var codeKinds = map[Code]Kind{
	DuplicateTask:                      KindDuplicateTask,
	InvalidAttributeValue:              KindInvalidAttributeValue,
	AttributeNotSupportedInTaskContext: KindAttributeNotSupportedInTaskContext,
	IDPinNoEEPROM:                      KindIDPinNoEEPROM,
	TEDSSensorDataError:                KindTEDSSensorDataError,
	WriteBufferTooSmall:                KindWriteBufferTooSmall,
	ReadBufferTooSmall:                 KindReadBufferTooSmall,
	MismatchedInputArraySizes:          KindMismatchedInputArraySizes,
	WriteNumChansMismatch:              KindMismatchedInputArraySizes,
}
