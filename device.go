package daqmx

import (
	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/interpreter"
)

// Device is a DAQ device, addressed by name.
type Device struct {
	interp interpreter.Interpreter
	name   string
}

func newDevice(i interpreter.Interpreter, name string) *Device {
	return &Device{interp: i, name: name}
}

func devices(i interpreter.Interpreter, names []string) []*Device {
	out := make([]*Device, len(names))
	for n, name := range names {
		out[n] = newDevice(i, name)
	}
	return out
}

func (d *Device) bind() (interpreter.Interpreter, interpreter.Target, error) {
	return d.interp, interpreter.NamedTarget(attributes.ScopeDevice, d.name), nil
}

func (d *Device) Name() string { return d.name }

// Reset aborts every task on the device and returns it to its initial
// state.
func (d *Device) Reset() error { return d.interp.ResetDevice(d.name) }

// SelfTest runs the device's built-in self test.
func (d *Device) SelfTest() error { return d.interp.SelfTestDevice(d.name) }

func (d *Device) String() string { return "Device(name=" + d.name + ")" }

// PhysicalChannel is a terminal or line on a device.
type PhysicalChannel struct {
	interp interpreter.Interpreter
	name   string
}

func newPhysicalChannel(i interpreter.Interpreter, name string) *PhysicalChannel {
	return &PhysicalChannel{interp: i, name: name}
}

func (p *PhysicalChannel) bind() (interpreter.Interpreter, interpreter.Target, error) {
	return p.interp, interpreter.NamedTarget(attributes.ScopePhysicalChannel, p.name), nil
}

func (p *PhysicalChannel) Name() string { return p.name }

func (p *PhysicalChannel) String() string { return "PhysicalChannel(name=" + p.name + ")" }
