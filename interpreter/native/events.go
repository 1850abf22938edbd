package native

import (
	"sync"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/interpreter"
)

// The driver calls back through three process-wide trampolines. The
// callbackData argument is a key into handlers, so no Go pointer is ever
// handed to the driver.

type handler struct {
	reg *interpreter.EventRegistration
	fn  func(a, b uintptr)
}

var (
	handlersMu sync.RWMutex
	handlers   = map[uintptr]*handler{}
	nextKey    uintptr

	trampolineOnce   sync.Once
	everyNTrampoline uintptr
	statusTrampoline uintptr
)

func trampolines() (everyN, status uintptr) {
	trampolineOnce.Do(func() {
		everyNTrampoline = purego.NewCallback(func(task, typ, n, key uintptr) uintptr {
			dispatch(key, typ, n)
			return 0
		})
		statusTrampoline = purego.NewCallback(func(task, value, key uintptr) uintptr {
			dispatch(key, value, 0)
			return 0
		})
	})
	return everyNTrampoline, statusTrampoline
}

func dispatch(key, a, b uintptr) {
	handlersMu.RLock()
	h := handlers[key]
	handlersMu.RUnlock()
	if h == nil {
		return
	}
	h.reg.Dispatch(func() { h.fn(a, b) })
}

func addHandler(h *handler) uintptr {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	nextKey++
	handlers[nextKey] = h
	return nextKey
}

func removeHandler(key uintptr) {
	handlersMu.Lock()
	delete(handlers, key)
	handlersMu.Unlock()
}

// register installs a handler, calls attach with its key, and returns a
// registration whose Unregister calls detach and then drains.
func (i *Interpreter) register(kind string, fn func(a, b uintptr), attach func(key uintptr) int32, detach func() int32) (interpreter.Registration, error) {
	h := &handler{fn: fn}
	var key uintptr
	h.reg = interpreter.NewEventRegistration(func() error {
		defer removeHandler(key)
		err := i.check(detach())
		i.log.Debug("Event unregistered", zap.String("event", kind), zap.Error(err))
		return err
	})
	key = addHandler(h)
	if err := i.check(attach(key)); err != nil {
		removeHandler(key)
		return nil, err
	}
	i.log.Debug("Event registered", zap.String("event", kind), zap.String("id", h.reg.ID().String()))
	return h.reg, nil
}

func (i *Interpreter) RegisterEveryNSamplesEvent(h TaskHandle, typ constants.EveryNSamplesEventType, n uint32, cb func(interpreter.EveryNSamplesEvent)) (interpreter.Registration, error) {
	f, err := procRegisterEveryNSamplesEvent.get(i.lib)
	if err != nil {
		return nil, err
	}
	everyN, _ := trampolines()
	return i.register("every_n_samples",
		func(a, b uintptr) {
			cb(interpreter.EveryNSamplesEvent{Type: constants.EveryNSamplesEventType(int32(a)), Samples: uint32(b)})
		},
		func(key uintptr) int32 { return f(h.Ptr, int32(typ), n, 0, everyN, key) },
		func() int32 { return f(h.Ptr, int32(typ), n, 0, 0, 0) })
}

func (i *Interpreter) RegisterDoneEvent(h TaskHandle, cb func(interpreter.DoneEvent)) (interpreter.Registration, error) {
	f, err := procRegisterDoneEvent.get(i.lib)
	if err != nil {
		return nil, err
	}
	_, status := trampolines()
	return i.register("done",
		func(a, _ uintptr) {
			cb(interpreter.DoneEvent{Status: i.check(int32(a))})
		},
		func(key uintptr) int32 { return f(h.Ptr, 0, status, key) },
		func() int32 { return f(h.Ptr, 0, 0, 0) })
}

func (i *Interpreter) RegisterSignalEvent(h TaskHandle, signal constants.Signal, cb func(interpreter.SignalEvent)) (interpreter.Registration, error) {
	f, err := procRegisterSignalEvent.get(i.lib)
	if err != nil {
		return nil, err
	}
	_, status := trampolines()
	return i.register("signal",
		func(a, _ uintptr) {
			cb(interpreter.SignalEvent{Signal: constants.Signal(int32(a))})
		},
		func(key uintptr) int32 { return f(h.Ptr, int32(signal), 0, status, key) },
		func() int32 { return f(h.Ptr, int32(signal), 0, 0, 0) })
}
