package interpreter

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/KevinKickass/daqmx/constants"
)

// EveryNSamplesEvent is delivered each time N samples are acquired into or
// transferred from the buffer.
type EveryNSamplesEvent struct {
	Type    constants.EveryNSamplesEventType
	Samples uint32
}

// DoneEvent is delivered when a task stops. Status is nil on a clean stop.
type DoneEvent struct {
	Status error
}

// SignalEvent is delivered when the registered hardware signal fires.
type SignalEvent struct {
	Signal constants.Signal
}

// Registration is a live event subscription.
type Registration interface {
	ID() uuid.UUID
	// Unregister detaches the callback and returns after every in-flight
	// invocation has returned. Called from the callback itself it does not
	// wait for that invocation.
	Unregister() error
}

// EventRegistration tracks in-flight callbacks so Unregister can drain them.
// Transports call Dispatch for every event and supply a detach function that
// stops delivery at the source.
type EventRegistration struct {
	id       uuid.UUID
	mu       sync.Mutex
	idle     *sync.Cond
	closed   bool
	inflight int
	running  map[uint64]int
	detach   func() error
	once     sync.Once
	err      error
}

func NewEventRegistration(detach func() error) *EventRegistration {
	r := &EventRegistration{id: uuid.New(), detach: detach, running: make(map[uint64]int)}
	r.idle = sync.NewCond(&r.mu)
	return r
}

func (r *EventRegistration) ID() uuid.UUID { return r.id }

// Dispatch runs fn unless the registration has been closed. It reports
// whether fn ran.
func (r *EventRegistration) Dispatch(fn func()) bool {
	g := goid()
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return false
	}
	r.inflight++
	r.running[g]++
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.inflight--
		if r.running[g]--; r.running[g] == 0 {
			delete(r.running, g)
		}
		r.idle.Broadcast()
		r.mu.Unlock()
	}()
	fn()
	return true
}

// Active reports whether events are still delivered.
func (r *EventRegistration) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.closed
}

// InDispatch reports whether the calling goroutine is running a callback of
// this registration.
func (r *EventRegistration) InDispatch() bool {
	g := goid()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running[g] > 0
}

func (r *EventRegistration) Unregister() error {
	r.once.Do(func() {
		r.mu.Lock()
		r.closed = true
		r.mu.Unlock()
		if r.detach != nil {
			r.err = r.detach()
		}
	})

	g := goid()
	r.mu.Lock()
	for r.inflight > r.running[g] {
		r.idle.Wait()
	}
	r.mu.Unlock()
	return r.err
}

// goid is the calling goroutine's number, read from its stack header.
func goid() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseUint(string(b), 10, 64)
	return id
}
