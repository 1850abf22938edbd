package daqmx

import (
	"fmt"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
)

// System is the driver installation reached through one transport.
type System struct {
	interp interpreter.Interpreter
}

// LocalSystem returns the system of the selected transport: the local
// driver by default, or the device server behind a gRPC connection.
func LocalSystem(opts ...Option) (*System, error) {
	i, err := selectInterpreter(opts)
	if err != nil {
		return nil, err
	}
	return &System{interp: i}, nil
}

func (s *System) bind() (interpreter.Interpreter, interpreter.Target, error) {
	return s.interp, interpreter.SystemTarget(), nil
}

// DriverVersion is the installed NI-DAQmx version.
type DriverVersion struct {
	Major, Minor, Update uint32
}

func (v DriverVersion) String() string { return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Update) }

func (s *System) DriverVersion() (DriverVersion, error) {
	var v DriverVersion
	var err error
	if v.Major, err = get(s, uint32Attr, attributes.SysNIDAQMajorVersion); err != nil {
		return v, err
	}
	if v.Minor, err = get(s, uint32Attr, attributes.SysNIDAQMinorVersion); err != nil {
		return v, err
	}
	if v.Update, err = get(s, uint32Attr, attributes.SysNIDAQUpdateVersion); err != nil {
		return v, err
	}
	return v, nil
}

// Devices lists every device known to the driver.
func (s *System) Devices() ([]*Device, error) {
	return getObjects(s, attributes.SysDevNames, newDevice)
}

// Device returns the named device without checking that it exists.
func (s *System) Device(name string) *Device { return newDevice(s.interp, name) }

// Tasks lists the tasks saved in the configuration store.
func (s *System) Tasks() ([]*PersistedTask, error) {
	return getObjects(s, attributes.SysTasks, newPersistedTask)
}

// GlobalChannels lists the global channels saved in the configuration store.
func (s *System) GlobalChannels() ([]*PersistedChannel, error) {
	return getObjects(s, attributes.SysGlobalChans, newPersistedChannel)
}

// Scales lists the custom scales saved in the configuration store.
func (s *System) Scales() ([]*PersistedScale, error) {
	return getObjects(s, attributes.SysScales, newPersistedScale)
}

// ConnectTerms routes source to destination, optionally inverting the
// signal, until DisconnectTerms or a device reset.
func (s *System) ConnectTerms(source, destination string, invert bool) error {
	return s.interp.ConnectTerms(source, destination, invert)
}

func (s *System) DisconnectTerms(source, destination string) error {
	return s.interp.DisconnectTerms(source, destination)
}

// SetAnalogPowerUpStates stores the states analog outputs take at power up.
func (s *System) SetAnalogPowerUpStates(states ...AnalogPowerUpState) error {
	if len(states) == 0 {
		return fmt.Errorf("no power up states given: %w", daqerr.ErrInvalidArgument)
	}
	return s.interp.SetAnalogPowerUpStates(states)
}

func (s *System) GetAnalogPowerUpStates(channels ...string) ([]AnalogPowerUpState, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("no physical channels given: %w", daqerr.ErrInvalidArgument)
	}
	return s.interp.GetAnalogPowerUpStates(channels)
}

// ErrorString returns the driver's description of a status code.
func (s *System) ErrorString(code daqerr.Code) (string, error) {
	return s.interp.GetErrorString(code)
}
