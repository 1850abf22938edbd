package daqmx

import (
	"fmt"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/interpreter"
)

// PersistedTask is a task saved in the configuration store.
type PersistedTask struct {
	interp interpreter.Interpreter
	name   string
}

func newPersistedTask(i interpreter.Interpreter, name string) *PersistedTask {
	return &PersistedTask{interp: i, name: name}
}

func (p *PersistedTask) bind() (interpreter.Interpreter, interpreter.Target, error) {
	return p.interp, interpreter.NamedTarget(attributes.ScopePersistedTask, p.name), nil
}

func (p *PersistedTask) Name() string { return p.name }

// Load opens the saved task through the same transport.
func (p *PersistedTask) Load() (*Task, error) {
	return LoadTask(p.name, WithInterpreter(p.interp))
}

// Delete removes the task from the configuration store.
func (p *PersistedTask) Delete() error {
	if err := p.interp.DeleteSavedTask(p.name); err != nil {
		return fmt.Errorf("failed to delete saved task %s: %w", p.name, err)
	}
	return nil
}

// PersistedChannel is a global channel saved in the configuration store.
type PersistedChannel struct {
	interp interpreter.Interpreter
	name   string
}

func newPersistedChannel(i interpreter.Interpreter, name string) *PersistedChannel {
	return &PersistedChannel{interp: i, name: name}
}

func (p *PersistedChannel) bind() (interpreter.Interpreter, interpreter.Target, error) {
	return p.interp, interpreter.NamedTarget(attributes.ScopePersistedChannel, p.name), nil
}

func (p *PersistedChannel) Name() string { return p.name }

func (p *PersistedChannel) Delete() error {
	if err := p.interp.DeleteSavedGlobalChan(p.name); err != nil {
		return fmt.Errorf("failed to delete global channel %s: %w", p.name, err)
	}
	return nil
}

// PersistedScale is a custom scale saved in the configuration store.
type PersistedScale struct {
	interp interpreter.Interpreter
	name   string
}

func newPersistedScale(i interpreter.Interpreter, name string) *PersistedScale {
	return &PersistedScale{interp: i, name: name}
}

func (p *PersistedScale) bind() (interpreter.Interpreter, interpreter.Target, error) {
	return p.interp, interpreter.NamedTarget(attributes.ScopePersistedScale, p.name), nil
}

func (p *PersistedScale) Name() string { return p.name }

// Load returns the saved scale for use in channel creation.
func (p *PersistedScale) Load() *Scale { return newScale(p.interp, p.name) }

func (p *PersistedScale) Delete() error {
	if err := p.interp.DeleteSavedScale(p.name); err != nil {
		return fmt.Errorf("failed to delete saved scale %s: %w", p.name, err)
	}
	return nil
}
