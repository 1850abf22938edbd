package daqmx

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/interpreter"
)

type EventKind int

const (
	EventEveryNSamples EventKind = iota + 1
	EventDone
	EventSignal
)

func (k EventKind) String() string {
	switch k {
	case EventEveryNSamples:
		return "EVERY_N_SAMPLES"
	case EventDone:
		return "DONE"
	case EventSignal:
		return "SIGNAL"
	default:
		return "UNKNOWN"
	}
}

// Event is one delivery on the stream returned by Task.Events. Only the
// field matching Kind is set.
type Event struct {
	Kind          EventKind
	EveryNSamples EveryNSamplesEvent
	Done          DoneEvent
	Signal        SignalEvent
}

// eventStreamer fans events out to pull-style subscribers. Slow subscribers
// lose events rather than block the driver's callback thread.
type eventStreamer struct {
	mu          sync.RWMutex
	closed      bool
	subscribers map[uuid.UUID]chan Event
}

func newEventStreamer() *eventStreamer {
	return &eventStreamer{
		subscribers: make(map[uuid.UUID]chan Event),
	}
}

func (s *eventStreamer) subscribe() (uuid.UUID, <-chan Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	ch := make(chan Event, 100)
	if s.closed {
		close(ch)
		return id, ch
	}
	s.subscribers[id] = ch
	return id, ch
}

func (s *eventStreamer) unsubscribe(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.subscribers[id]; ok {
		delete(s.subscribers, id)
		close(ch)
	}
}

func (s *eventStreamer) broadcast(ev Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
			// Skip if channel is full
		}
	}
}

func (s *eventStreamer) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}

// register replaces the registration stored under key. With remove set the
// old registration is only dropped.
func (c *taskShared) register(key string, remove bool, attach func(interpreter.Interpreter, interpreter.TaskHandle) (interpreter.Registration, error)) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	if err := c.drop(key); err != nil || remove {
		return err
	}
	reg, err := attach(c.interp, h)
	if err != nil {
		return err
	}

	c.regMu.Lock()
	prev, ok := c.regs[key]
	c.regs[key] = reg
	c.regMu.Unlock()
	c.log.Debug("Event registered", zap.String("event", key), zap.Stringer("id", reg.ID()))
	if ok {
		return prev.Unregister()
	}
	return nil
}

// drop removes the registration stored under key. The drain runs without
// regMu so a handler may unregister events, its own included.
func (c *taskShared) drop(key string) error {
	c.regMu.Lock()
	old, ok := c.regs[key]
	delete(c.regs, key)
	c.regMu.Unlock()
	if !ok {
		return nil
	}
	if err := old.Unregister(); err != nil {
		return err
	}
	c.log.Debug("Event unregistered", zap.String("event", key), zap.Stringer("id", old.ID()))
	return nil
}

// unregisterAll drops every registration and waits for running callbacks.
func (c *taskShared) unregisterAll() error {
	c.regMu.Lock()
	regs := c.regs
	c.regs = make(map[string]interpreter.Registration)
	c.regMu.Unlock()

	var errs []error
	for _, reg := range regs {
		errs = append(errs, reg.Unregister())
	}
	return errors.Join(errs...)
}

func (t *Task) registerEveryNSamples(key string, typ constants.EveryNSamplesEventType, n uint32, handler func(EveryNSamplesEvent)) error {
	c := t.core.taskShared
	return c.register(key, handler == nil, func(i interpreter.Interpreter, h interpreter.TaskHandle) (interpreter.Registration, error) {
		return i.RegisterEveryNSamplesEvent(h, typ, n, func(e EveryNSamplesEvent) {
			handler(e)
			c.events.broadcast(Event{Kind: EventEveryNSamples, EveryNSamples: e})
		})
	})
}

// RegisterEveryNSamplesAcquiredIntoBufferEvent calls handler every time n
// samples are acquired into the buffer. A nil handler unregisters. Handlers
// run on a driver or transport goroutine and must not close the task.
func (t *Task) RegisterEveryNSamplesAcquiredIntoBufferEvent(n uint32, handler func(EveryNSamplesEvent)) error {
	return t.registerEveryNSamples("every_n_samples_acquired", constants.AcquiredIntoBuffer, n, handler)
}

// RegisterEveryNSamplesTransferredFromBufferEvent calls handler every time n
// samples are transferred from the buffer to the device.
func (t *Task) RegisterEveryNSamplesTransferredFromBufferEvent(n uint32, handler func(EveryNSamplesEvent)) error {
	return t.registerEveryNSamples("every_n_samples_transferred", constants.TransferredFromBuffer, n, handler)
}

// RegisterDoneEvent calls handler when the task stops, with the error that
// stopped it if any.
func (t *Task) RegisterDoneEvent(handler func(DoneEvent)) error {
	c := t.core.taskShared
	return c.register("done", handler == nil, func(i interpreter.Interpreter, h interpreter.TaskHandle) (interpreter.Registration, error) {
		return i.RegisterDoneEvent(h, func(e DoneEvent) {
			c.markDone()
			handler(e)
			c.events.broadcast(Event{Kind: EventDone, Done: e})
		})
	})
}

// RegisterSignalEvent calls handler whenever signal fires.
func (t *Task) RegisterSignalEvent(signal constants.Signal, handler func(SignalEvent)) error {
	c := t.core.taskShared
	return c.register("signal", handler == nil, func(i interpreter.Interpreter, h interpreter.TaskHandle) (interpreter.Registration, error) {
		return i.RegisterSignalEvent(h, signal, func(e SignalEvent) {
			handler(e)
			c.events.broadcast(Event{Kind: EventSignal, Signal: e})
		})
	})
}

// Events streams every event delivered to a registered handler. The channel
// is closed by cancel or when the task closes. Events are dropped when the
// channel buffer is full.
func (t *Task) Events() (<-chan Event, func()) {
	s := t.core.events
	id, ch := s.subscribe()
	return ch, func() { s.unsubscribe(id) }
}
