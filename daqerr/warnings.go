package daqerr

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/KevinKickass/daqmx/internal/logging"
)

// Warning is a non-fatal condition. It implements error so a promoted
// warning can be returned directly.
type Warning interface {
	error
	warning()
}

// DriverWarning is a positive status returned by the driver or device server.
type DriverWarning struct {
	Code    Code
	Message string
}

func (w *DriverWarning) Error() string {
	msg := w.Message
	if msg == "" {
		msg = "DAQmx warning"
	}
	return fmt.Sprintf("%s\nStatus Code: %d", msg, int32(w.Code))
}

func (w *DriverWarning) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == w.Code
}

func (*DriverWarning) warning() {}

// ResourceWarning is emitted when a task with an open native handle is
// collected without Close.
type ResourceWarning struct {
	TaskName string
}

func (w *ResourceWarning) Error() string {
	return fmt.Sprintf("task %q was not explicitly closed before it was garbage collected", w.TaskName)
}

func (*ResourceWarning) warning() {}

// Action decides what happens to a warning that matches a filter.
type Action int

const (
	// ActionDefault delivers the warning to the handler.
	ActionDefault Action = iota
	// ActionIgnore drops the warning.
	ActionIgnore
	// ActionError promotes the warning to an error returned by the call.
	ActionError
	// ActionOnce delivers the first occurrence of each warning code.
	ActionOnce
)

var actionNames = map[Action]string{
	ActionDefault: "default",
	ActionIgnore:  "ignore",
	ActionError:   "error",
	ActionOnce:    "once",
}

var actionValues = map[string]Action{
	"default": ActionDefault,
	"ignore":  ActionIgnore,
	"error":   ActionError,
	"once":    ActionOnce,
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// ParseAction parses the textual form used in configuration.
func ParseAction(s string) (Action, error) {
	if a, ok := actionValues[s]; ok {
		return a, nil
	}
	return ActionDefault, fmt.Errorf("unknown warning action %q: %w", s, ErrInvalidArgument)
}

// Filter selects warnings. A nil Match selects every warning.
type Filter struct {
	Action Action
	Match  func(Warning) bool
}

// MatchCode selects driver warnings with the given code.
func MatchCode(c Code) func(Warning) bool {
	return func(w Warning) bool {
		dw, ok := w.(*DriverWarning)
		return ok && dw.Code == c
	}
}

// MatchResource selects resource warnings.
func MatchResource(w Warning) bool {
	_, ok := w.(*ResourceWarning)
	return ok
}

type registry struct {
	mu      sync.Mutex
	filters []*Filter
	base    Action
	handler func(Warning)
	seen    map[string]struct{}
}

var (
	regOnce sync.Once
	reg     *registry
)

func warnings() *registry {
	regOnce.Do(func() {
		reg = &registry{base: ActionDefault, handler: logWarning, seen: map[string]struct{}{}}
	})
	return reg
}

func logWarning(w Warning) {
	logging.L().Warn("DAQmx warning", zap.Error(w))
}

// AddFilter inserts f ahead of existing filters. The most recently added
// matching filter wins.
func AddFilter(f Filter) {
	addFilter(&f)
}

func addFilter(f *Filter) {
	r := warnings()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append([]*Filter{f}, r.filters...)
}

// SetDefaultAction sets the action for warnings no filter matches.
func SetDefaultAction(a Action) {
	r := warnings()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.base = a
}

// ResetFilters removes all filters and restores the default action and handler.
func ResetFilters() {
	r := warnings()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = nil
	r.base = ActionDefault
	r.handler = logWarning
	r.seen = map[string]struct{}{}
}

// SetHandler replaces the function that receives delivered warnings. A nil
// handler restores logging.
func SetHandler(h func(Warning)) {
	r := warnings()
	r.mu.Lock()
	defer r.mu.Unlock()
	if h == nil {
		h = logWarning
	}
	r.handler = h
}

// Warn routes w through the filters. It returns w as an error only when a
// filter promotes it.
func Warn(w Warning) error {
	r := warnings()
	r.mu.Lock()
	action := r.base
	for _, f := range r.filters {
		if f.Match == nil || f.Match(w) {
			action = f.Action
			break
		}
	}
	handler := r.handler
	if action == ActionOnce {
		key := w.Error()
		if _, dup := r.seen[key]; dup {
			action = ActionIgnore
		} else {
			r.seen[key] = struct{}{}
		}
	}
	r.mu.Unlock()

	switch action {
	case ActionIgnore:
		return nil
	case ActionError:
		return w
	default:
		handler(w)
		return nil
	}
}

// Suppress runs fn with every warning ignored on the calling path and
// returns fn's error. Warnings raised by other goroutines meanwhile are also
// suppressed.
func Suppress(fn func() error) error {
	f := &Filter{Action: ActionIgnore}
	addFilter(f)
	defer removeFilter(f)
	return fn()
}

func removeFilter(target *Filter) {
	r := warnings()
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.filters {
		if f == target {
			r.filters = append(r.filters[:i:i], r.filters[i+1:]...)
			return
		}
	}
}
