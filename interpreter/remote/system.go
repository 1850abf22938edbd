package remote

import (
	"fmt"
	"strings"

	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/wire"
	"github.com/KevinKickass/daqmx/interpreter"
)

func (i *Interpreter) GetErrorString(code daqerr.Code) (string, error) {
	resp, err := i.invoke("GetErrorString", func(req wire.Message) {
		req.Set("error_code", int32(code))
	})
	if err != nil {
		return "", err
	}
	if status := resp.Int32("status"); status < 0 {
		return "", daqerr.New(daqerr.Code(status), fmt.Sprintf("failed to get the message for status %d", code))
	}
	return resp.Str("error_string"), nil
}

func (i *Interpreter) GetExtendedErrorInfo() (string, error) {
	resp, err := i.invoke("GetExtendedErrorInfo", nil)
	if err != nil {
		return "", err
	}
	if status := resp.Int32("status"); status < 0 {
		return "", daqerr.New(daqerr.Code(status), "failed to get extended error information")
	}
	return resp.Str("error_string"), nil
}

func (i *Interpreter) SetAnalogPowerUpStates(states []interpreter.AnalogPowerUpState) error {
	names := make([]string, len(states))
	values := make([]float64, len(states))
	types := make([]int32, len(states))
	for n, s := range states {
		names[n] = s.PhysicalChannel
		values[n] = s.State
		types[n] = int32(s.OutputType)
	}
	_, err := i.call("SetAnalogPowerUpStatesWithOutputType", func(req wire.Message) {
		req.Set("channel_names", strings.Join(names, ",")).
			Set("state_array", values).
			Set("channel_type_array", types)
	})
	return err
}

func (i *Interpreter) GetAnalogPowerUpStates(channels []string) ([]interpreter.AnalogPowerUpState, error) {
	resp, err := i.call("GetAnalogPowerUpStatesWithOutputType", func(req wire.Message) {
		req.Set("channel_names", strings.Join(channels, ",")).
			Set("array_size", uint32(len(channels)))
	})
	if err != nil {
		return nil, err
	}
	values := resp.Float64s("state_array")
	types := resp.Int32s("channel_type_array")
	out := make([]interpreter.AnalogPowerUpState, min(len(values), len(types), len(channels)))
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
	_, err := i.call("ResetDevice", func(req wire.Message) { req.Set("device_name", device) })
	return err
}

func (i *Interpreter) SelfTestDevice(device string) error {
	_, err := i.call("SelfTestDevice", func(req wire.Message) { req.Set("device_name", device) })
	return err
}

func (i *Interpreter) ConnectTerms(source, destination string, invert bool) error {
	var mod int32
	if invert {
		mod = interpreter.InvertPolarity
	}
	_, err := i.call("ConnectTerms", func(req wire.Message) {
		req.Set("source_terminal", source).
			Set("destination_terminal", destination).
			Set("signal_modifiers_raw", mod)
	})
	return err
}

func (i *Interpreter) DisconnectTerms(source, destination string) error {
	_, err := i.call("DisconnectTerms", func(req wire.Message) {
		req.Set("source_terminal", source).Set("destination_terminal", destination)
	})
	return err
}

// Scales.

func (i *Interpreter) CreateLinScale(name string, slope, yIntercept float64, pre constants.UnitsPreScaled, scaledUnits string) error {
	_, err := i.call("CreateLinScale", func(req wire.Message) {
		req.Set("name", name).
			Set("slope", slope).
			Set("y_intercept", yIntercept).
			Set("pre_scaled_units_raw", int32(pre)).
			Set("scaled_units", scaledUnits)
	})
	return err
}

func (i *Interpreter) CreateMapScale(name string, preMin, preMax, scaledMin, scaledMax float64, pre constants.UnitsPreScaled, scaledUnits string) error {
	_, err := i.call("CreateMapScale", func(req wire.Message) {
		req.Set("name", name).
			Set("prescaled_min", preMin).
			Set("prescaled_max", preMax).
			Set("scaled_min", scaledMin).
			Set("scaled_max", scaledMax).
			Set("pre_scaled_units_raw", int32(pre)).
			Set("scaled_units", scaledUnits)
	})
	return err
}

func (i *Interpreter) CreatePolynomialScale(name string, forward, reverse []float64, pre constants.UnitsPreScaled, scaledUnits string) error {
	_, err := i.call("CreatePolynomialScale", func(req wire.Message) {
		req.Set("name", name).
			Set("forward_coeffs", forward).
			Set("reverse_coeffs", reverse).
			Set("pre_scaled_units_raw", int32(pre)).
			Set("scaled_units", scaledUnits)
	})
	return err
}

func (i *Interpreter) CreateTableScale(name string, prescaled, scaled []float64, pre constants.UnitsPreScaled, scaledUnits string) error {
	_, err := i.call("CreateTableScale", func(req wire.Message) {
		req.Set("name", name).
			Set("prescaled_vals", prescaled).
			Set("scaled_vals", scaled).
			Set("pre_scaled_units_raw", int32(pre)).
			Set("scaled_units", scaledUnits)
	})
	return err
}
