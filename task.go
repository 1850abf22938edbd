package daqmx

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/channelnames"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/logging"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/timestamp"
)

// taskCore is what the objects of a task hold. Its owner pointer keeps the
// Task reachable for as long as a stream, reader, writer or collection is in
// use. Channels reach it through weak pointers and do not.
type taskCore struct {
	*taskShared
	owner *Task
}

// taskShared is the state released when the Task is collected. It must not
// reference the Task or its core.
type taskShared struct {
	interp interpreter.Interpreter
	h      interpreter.TaskHandle
	name   string
	log    *zap.Logger

	mu     sync.RWMutex
	closed bool
	state  TaskState
	resume TaskState

	regMu  sync.Mutex
	regs   map[string]interpreter.Registration
	events *eventStreamer
}

func (c *taskShared) handle() (interpreter.TaskHandle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return interpreter.TaskHandle{}, fmt.Errorf("task %s: %w", c.name, daqerr.ErrTaskClosed)
	}
	return c.h, nil
}

func (c *taskShared) bind() (interpreter.Interpreter, interpreter.Target, error) {
	h, err := c.handle()
	if err != nil {
		return nil, interpreter.Target{}, err
	}
	return c.interp, interpreter.TaskTarget(attributes.ScopeTask, h), nil
}

// scoped binds attribute access on the task to one task-bound scope.
type scoped struct {
	core  *taskCore
	scope attributes.Scope
}

func (s scoped) bind() (interpreter.Interpreter, interpreter.Target, error) {
	h, err := s.core.handle()
	if err != nil {
		return nil, interpreter.Target{}, err
	}
	return s.core.interp, interpreter.TaskTarget(s.scope, h), nil
}

func (c *taskShared) transition(to TaskState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	from := c.state
	if from == to {
		return
	}
	if err := ValidateTransition(from, to); err != nil {
		c.log.Debug("Task state resynchronized", zap.String("task", c.name), zap.Error(err))
	}
	if to == StateRunning {
		c.resume = max(from, StateVerified)
		if from == StateDone || from == StateRunning {
			c.resume = StateCommitted
		}
	}
	c.state = to
}

// invalidate records a configuration change. Only idle tasks return to
// unverified; the driver rejects changes that a running task cannot take.
func (c *taskShared) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateVerified, StateReserved, StateCommitted:
		c.state = StateUnverified
	}
}

// Task is a set of virtual channels with shared timing, triggering and
// buffering. Close it when done: a task left to the garbage collector warns
// (native transport) or clears its server session (remote transport).
type Task struct {
	core *taskCore

	AIChannels *AIChannelCollection
	AOChannels *AOChannelCollection
	CIChannels *CIChannelCollection
	COChannels *COChannelCollection
	DIChannels *DIChannelCollection
	DOChannels *DOChannelCollection

	Timing        *Timing
	Triggers      *Triggers
	ExportSignals *ExportSignals
	InStream      *InStream
	OutStream     *OutStream
}

// NewTask creates a task. An empty name lets the driver or server pick a
// unique one. Without a transport option the native library is used.
func NewTask(name string, opts ...Option) (*Task, error) {
	i, err := selectInterpreter(opts)
	if err != nil {
		return nil, err
	}
	h, err := i.CreateTask(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create task %q: %w", name, err)
	}
	return newTask(i, h, name)
}

// LoadTask loads a task saved in the driver's configuration store.
func LoadTask(name string, opts ...Option) (*Task, error) {
	i, err := selectInterpreter(opts)
	if err != nil {
		return nil, err
	}
	h, err := i.LoadTask(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load task %q: %w", name, err)
	}
	return newTask(i, h, name)
}

func newTask(i interpreter.Interpreter, h interpreter.TaskHandle, name string) (*Task, error) {
	if name == "" {
		var err error
		name, err = i.GetStringAttribute(interpreter.TaskTarget(attributes.ScopeTask, h), attributes.TaskName)
		if err != nil {
			return nil, errors.Join(err, daqerr.Suppress(func() error { return i.ClearTask(h) }))
		}
	}
	core := &taskCore{taskShared: &taskShared{
		interp: i,
		h:      h,
		name:   name,
		log:    logging.L().With(zap.String("task", name)),
		regs:   make(map[string]interpreter.Registration),
		events: newEventStreamer(),
	}}
	t := &Task{
		core:       core,
		AIChannels: &AIChannelCollection{newCollection(core, constants.AnalogInput, wrapAI)},
		AOChannels: &AOChannelCollection{newCollection(core, constants.AnalogOutput, wrapAO)},
		CIChannels: &CIChannelCollection{newCollection(core, constants.CounterInput, wrapCI)},
		COChannels: &COChannelCollection{newCollection(core, constants.CounterOutput, wrapCO)},
		DIChannels: &DIChannelCollection{newCollection(core, constants.DigitalInput, wrapDI)},
		DOChannels: &DOChannelCollection{newCollection(core, constants.DigitalOutput, wrapDO)},

		Timing:        &Timing{scoped{core, attributes.ScopeTiming}},
		Triggers:      newTriggers(core),
		ExportSignals: &ExportSignals{scoped{core, attributes.ScopeExport}},
		InStream:      &InStream{scoped{core, attributes.ScopeRead}},
		OutStream:     &OutStream{scoped{core, attributes.ScopeWrite}},
	}
	core.owner = t
	runtime.AddCleanup(t, release, core.taskShared)
	core.log.Debug("Task opened", zap.Bool("attached", h.Attached))
	return t, nil
}

// release runs when a Task is collected without Close.
func release(c *taskShared) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	h := c.h
	c.mu.Unlock()

	c.unregisterAll()
	c.events.closeAll()

	if h.Session == "" {
		if err := daqerr.Warn(&daqerr.ResourceWarning{TaskName: c.name}); err != nil {
			c.log.Warn("Task was not closed", zap.Error(err))
		}
		return
	}
	if h.Attached {
		return
	}
	if err := daqerr.Suppress(func() error { return c.interp.ClearTask(h) }); err != nil {
		c.log.Debug("Failed to clear abandoned session", zap.Error(err))
	}
}

// Name is the task name, generated by the driver when the task was created
// without one.
func (t *Task) Name() string { return t.core.name }

// State is the client's view of the task state.
func (t *Task) State() TaskState {
	t.core.mu.RLock()
	defer t.core.mu.RUnlock()
	return t.core.state
}

// Close stops event delivery, waits for running callbacks and clears the
// task. Attached remote sessions are detached, not destroyed. Close is valid
// in every state; warnings are suppressed and errors returned. Closing twice
// is a no-op.
func (t *Task) Close() error {
	c := t.core
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.log.Debug("Task already closed")
		return nil
	}
	c.closed = true
	h := c.h
	c.mu.Unlock()

	regErr := c.unregisterAll()
	c.events.closeAll()
	err := daqerr.Suppress(func() error { return c.interp.ClearTask(h) })
	if err != nil {
		err = fmt.Errorf("failed to clear task %s: %w", c.name, err)
	}
	c.log.Debug("Task closed")
	return errors.Join(regErr, err)
}

func (t *Task) Start() error {
	h, err := t.core.handle()
	if err != nil {
		return err
	}
	if err := t.core.interp.StartTask(h); err != nil {
		return err
	}
	t.core.transition(StateRunning)
	return nil
}

// Stop returns the task to the state it was started from. It also unblocks
// pending reads and writes.
func (t *Task) Stop() error {
	h, err := t.core.handle()
	if err != nil {
		return err
	}
	if err := t.core.interp.StopTask(h); err != nil {
		return err
	}
	t.core.mu.RLock()
	resume, state := t.core.resume, t.core.state
	t.core.mu.RUnlock()
	if state == StateRunning || state == StateDone {
		t.core.transition(resume)
	}
	return nil
}

// Control moves the task through the driver state machine.
func (t *Task) Control(action constants.TaskMode) error {
	switch action {
	case constants.TaskStart:
		return t.Start()
	case constants.TaskStop:
		return t.Stop()
	}
	h, err := t.core.handle()
	if err != nil {
		return err
	}
	if err := t.core.interp.TaskControl(h, action); err != nil {
		return err
	}
	switch action {
	case constants.TaskVerify:
		if t.State() < StateVerified {
			t.core.transition(StateVerified)
		}
	case constants.TaskReserve:
		t.core.transition(StateReserved)
	case constants.TaskCommit:
		t.core.transition(StateCommitted)
	case constants.TaskUnreserve, constants.TaskAbort:
		t.core.transition(StateVerified)
	}
	return nil
}

// WaitUntilDone blocks until a finite task finishes or timeout seconds pass.
func (t *Task) WaitUntilDone(timeout float64) error {
	h, err := t.core.handle()
	if err != nil {
		return err
	}
	if err := t.core.interp.WaitUntilTaskDone(h, timeout); err != nil {
		return err
	}
	t.core.markDone()
	return nil
}

func (t *Task) IsDone() (bool, error) {
	h, err := t.core.handle()
	if err != nil {
		return false, err
	}
	done, err := t.core.interp.IsTaskDone(h)
	if err != nil {
		return false, err
	}
	if done {
		t.core.markDone()
	}
	return done, nil
}

func (c *taskShared) markDone() {
	c.mu.RLock()
	running := c.state == StateRunning
	c.mu.RUnlock()
	if running {
		c.transition(StateDone)
	}
}

// Channels returns every virtual channel in the task.
func (t *Task) Channels() (Channel, error) {
	names, err := get(t.core, stringAttr, attributes.TaskChannels)
	if err != nil {
		return Channel{}, err
	}
	return newChannel(t.core, names, 0), nil
}

// ChannelNames returns the names of every virtual channel in the task.
func (t *Task) ChannelNames() ([]string, error) {
	return getNames(t.core, attributes.TaskChannels)
}

func (t *Task) NumChans() (uint32, error) {
	return get(t.core, uint32Attr, attributes.TaskNumChans)
}

// Devices returns the devices the task's channels use.
func (t *Task) Devices() ([]*Device, error) {
	names, err := getNames(t.core, attributes.TaskDevices)
	if err != nil {
		return nil, err
	}
	return devices(t.core.interp, names), nil
}

func (t *Task) NumDevices() (uint32, error) {
	return get(t.core, uint32Attr, attributes.TaskNumDevices)
}

// AddGlobalChannels adds saved global channels to the task.
func (t *Task) AddGlobalChannels(channels ...*PersistedChannel) error {
	names := make([]string, len(channels))
	for n, c := range channels {
		names[n] = c.Name()
	}
	flat, err := channelnames.Flatten(names...)
	if err != nil {
		return err
	}
	h, err := t.core.handle()
	if err != nil {
		return err
	}
	if err := t.core.interp.AddGlobalChansToTask(h, flat); err != nil {
		return err
	}
	t.core.invalidate()
	return nil
}

// Save stores the task in the driver's configuration store. An empty saveAs
// keeps the task name.
func (t *Task) Save(saveAs, author string, opts constants.SaveOptions) error {
	h, err := t.core.handle()
	if err != nil {
		return err
	}
	return t.core.interp.SaveTask(h, saveAs, author, opts)
}

// WaitForNextSampleClock waits for the next sample clock pulse of a
// hardware-timed single-point task and reports whether the wait started
// too late to catch it.
func (t *Task) WaitForNextSampleClock(timeout float64) (bool, error) {
	h, err := t.core.handle()
	if err != nil {
		return false, err
	}
	return t.core.interp.WaitForNextSampleClock(h, timeout)
}

// WaitForValidTimestamp waits until the timestamp of event is available and
// returns it.
func (t *Task) WaitForValidTimestamp(event constants.TimestampEvent, timeout float64) (timestamp.Time, error) {
	h, err := t.core.handle()
	if err != nil {
		return timestamp.Time{}, err
	}
	return t.core.interp.WaitForValidTimestamp(h, event, timeout)
}

func (t *Task) String() string { return fmt.Sprintf("Task(name=%s)", t.core.name) }
