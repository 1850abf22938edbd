package native

import (
	"fmt"
	"strings"

	"github.com/KevinKickass/daqmx/channelnames"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
)

func joinNames(names []string) string {
	s, err := channelnames.Flatten(names...)
	if err != nil {
		return strings.Join(names, ",")
	}
	return s
}

// GetErrorString does not route its own status through check, which would
// recurse.
func (i *Interpreter) GetErrorString(code daqerr.Code) (string, error) {
	f, err := procGetErrorString.get(i.lib)
	if err != nil {
		return "", err
	}
	s, status, err := twoCallString(func(buf []byte) int32 {
		return f(int32(code), first(buf), uint32(len(buf)))
	})
	if err != nil {
		return "", err
	}
	if status < 0 {
		return "", daqerr.New(daqerr.Code(status), fmt.Sprintf("failed to get the message for status %d", code))
	}
	return s, nil
}

func (i *Interpreter) GetExtendedErrorInfo() (string, error) {
	f, err := procGetExtendedErrorInfo.get(i.lib)
	if err != nil {
		return "", err
	}
	s, status, err := twoCallString(func(buf []byte) int32 {
		return f(first(buf), uint32(len(buf)))
	})
	if err != nil {
		return "", err
	}
	if status < 0 {
		return "", daqerr.New(daqerr.Code(status), "failed to get extended error information")
	}
	return s, nil
}

func (i *Interpreter) SetAnalogPowerUpStates(states []interpreter.AnalogPowerUpState) error {
	f, err := procSetAnalogPowerUpStates.get(i.lib)
	if err != nil {
		return err
	}
	names := make([]string, len(states))
	values := make([]float64, len(states))
	types := make([]int32, len(states))
	for n, s := range states {
		names[n] = s.PhysicalChannel
		values[n] = s.State
		types[n] = int32(s.OutputType)
	}
	return i.check(f(strings.Join(names, ","), first(values), first(types), uint32(len(states))))
}

func (i *Interpreter) GetAnalogPowerUpStates(channels []string) ([]interpreter.AnalogPowerUpState, error) {
	f, err := procGetAnalogPowerUpStates.get(i.lib)
	if err != nil {
		return nil, err
	}
	names := strings.Join(channels, ",")
	values := make([]float64, len(channels))
	types := make([]int32, len(channels))
	size := uint32(len(channels))
	if err := i.check(f(names, first(values), first(types), &size)); err != nil {
		return nil, err
	}
	out := make([]interpreter.AnalogPowerUpState, min(int(size), len(channels)))
	for n := range out {
		out[n] = interpreter.AnalogPowerUpState{
			PhysicalChannel: channels[n],
			State:           values[n],
			OutputType:      constants.PowerUpOutputType(types[n]),
		}
	}
	return out, nil
}

func (i *Interpreter) ResetDevice(device string) error {
	f, err := procResetDevice.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(device))
}

func (i *Interpreter) SelfTestDevice(device string) error {
	f, err := procSelfTestDevice.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(device))
}

func (i *Interpreter) ConnectTerms(source, destination string, invert bool) error {
	f, err := procConnectTerms.get(i.lib)
	if err != nil {
		return err
	}
	var mod int32
	if invert {
		mod = interpreter.InvertPolarity
	}
	return i.check(f(source, destination, mod))
}

func (i *Interpreter) DisconnectTerms(source, destination string) error {
	f, err := procDisconnectTerms.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(source, destination))
}

func (i *Interpreter) CreateLinScale(name string, slope, yIntercept float64, pre constants.UnitsPreScaled, scaledUnits string) error {
	f, err := procCreateLinScale.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(name, slope, yIntercept, int32(pre), scaledUnits))
}

func (i *Interpreter) CreateMapScale(name string, preMin, preMax, scaledMin, scaledMax float64, pre constants.UnitsPreScaled, scaledUnits string) error {
	f, err := procCreateMapScale.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(name, preMin, preMax, scaledMin, scaledMax, int32(pre), scaledUnits))
}

func (i *Interpreter) CreatePolynomialScale(name string, forward, reverse []float64, pre constants.UnitsPreScaled, scaledUnits string) error {
	f, err := procCreatePolynomialScale.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(name, first(forward), uint32(len(forward)), first(reverse), uint32(len(reverse)), int32(pre), scaledUnits))
}

func (i *Interpreter) CreateTableScale(name string, prescaled, scaled []float64, pre constants.UnitsPreScaled, scaledUnits string) error {
	f, err := procCreateTableScale.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(name, first(prescaled), uint32(len(prescaled)), first(scaled), uint32(len(scaled)), int32(pre), scaledUnits))
}
