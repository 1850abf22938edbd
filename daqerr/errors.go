package daqerr

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
)

// Caller contract violations.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidType     = errors.New("invalid type")
	ErrTaskClosed      = errors.New("task is closed")
	ErrTaskReleased    = errors.New("task no longer exists")

	ErrUnknownAttribute       = fmt.Errorf("unknown attribute: %w", ErrInvalidArgument)
	ErrAttributeCategory      = errors.New("attribute category mismatch")
	ErrAttributeReadOnly      = errors.New("attribute is read-only")
	ErrAttributeNotResettable = errors.New("attribute is not resettable")

	// ErrSizeNegotiation is returned when a variable-length value kept
	// changing size across repeated sizing calls.
	ErrSizeNegotiation = errors.New("size of returned value kept changing")
)

// DriverError is a negative status returned by the driver or device server.
type DriverError struct {
	Code        Code
	Message     string
	TaskName    string
	ChannelName string
	DeviceName  string
}

func (e *DriverError) Error() string {
	var b strings.Builder
	msg := e.Message
	if msg == "" {
		msg = "DAQmx error"
	}
	b.WriteString(msg)
	fmt.Fprintf(&b, "\nStatus Code: %d", int32(e.Code))
	if e.TaskName != "" {
		fmt.Fprintf(&b, "\nTask Name: %s", e.TaskName)
	}
	if e.ChannelName != "" {
		fmt.Fprintf(&b, "\nChannel Name: %s", e.ChannelName)
	}
	if e.DeviceName != "" {
		fmt.Fprintf(&b, "\nDevice: %s", e.DeviceName)
	}
	return b.String()
}

// Is matches a Code target so errors.Is(err, daqerr.DuplicateTask) works.
func (e *DriverError) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.Code
}

// Kind returns the classification of the error code.
func (e *DriverError) Kind() Kind {
	if k, ok := codeKinds[e.Code]; ok {
		return k
	}
	return KindDriver
}

// TransportError is a failure of the remote transport itself, distinct from a
// driver status carried by a successful RPC.
type TransportError struct {
	Code    codes.Code
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure (%s): %s", e.Code, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FeatureNotSupportedError reports an operation the selected transport or
// configuration does not offer.
type FeatureNotSupportedError struct {
	Feature string
	Reason  string
}

func (e *FeatureNotSupportedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is not supported", e.Feature)
	}
	return fmt.Sprintf("%s is not supported: %s", e.Feature, e.Reason)
}

// MismatchedArraySizesError reports data whose shape does not match the
// task's channels or whose channels disagree on sample count.
type MismatchedArraySizesError struct {
	What string
	Want int
	Got  int
}

func (e *MismatchedArraySizesError) Error() string {
	return fmt.Sprintf("mismatched array sizes: %s: expected %d, got %d", e.What, e.Want, e.Got)
}

// New builds a DriverError for a negative code.
func New(code Code, message string) *DriverError {
	return &DriverError{Code: code, Message: message}
}

// KindOf classifies err. Wrapped errors are unwrapped.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var de *DriverError
	if errors.As(err, &de) {
		return de.Kind()
	}
	var te *TransportError
	if errors.As(err, &te) {
		return KindTransportFailure
	}
	var fe *FeatureNotSupportedError
	if errors.As(err, &fe) {
		return KindFeatureNotSupported
	}
	var me *MismatchedArraySizesError
	if errors.As(err, &me) {
		return KindMismatchedInputArraySizes
	}
	var c Code
	if errors.As(err, &c) {
		if k, ok := codeKinds[c]; ok {
			return k
		}
		return KindDriver
	}
	return KindNone
}

// CodeOf extracts the driver status code from err, or Success when err
// carries none.
func CodeOf(err error) Code {
	var de *DriverError
	if errors.As(err, &de) {
		return de.Code
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return Success
}

// WithContext fills in task and channel names on a DriverError if they are
// unset. Other errors are returned unchanged.
func WithContext(err error, task, channel string) error {
	var de *DriverError
	if !errors.As(err, &de) {
		return err
	}
	if de.TaskName == "" {
		de.TaskName = task
	}
	if de.ChannelName == "" {
		de.ChannelName = channel
	}
	return err
}
