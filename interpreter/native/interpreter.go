// Package native implements the interpreter contract by calling the NI-DAQmx
// C library in-process. The library is located and loaded on first use and
// each entry point is resolved once per process.
package native

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/config"
	"github.com/KevinKickass/daqmx/internal/logging"
	"github.com/KevinKickass/daqmx/interpreter"
)

// TaskHandle is re-exported for brevity inside the package.
type TaskHandle = interpreter.TaskHandle

var _ interpreter.Interpreter = (*Interpreter)(nil)

type Interpreter struct {
	lib *library
	cfg *config.Config
	log *zap.Logger
}

type Option func(*options)

type options struct {
	path string
	cfg  *config.Config
	log  *zap.Logger
}

// WithLibraryPath loads the driver from path instead of the platform default.
func WithLibraryPath(path string) Option {
	return func(o *options) { o.path = path }
}

func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// New loads the driver library and returns an interpreter bound to it.
func New(opts ...Option) (*Interpreter, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg == nil {
		o.cfg = config.Get()
	}
	if o.log == nil {
		o.log = logging.L()
	}
	if o.path == "" {
		o.path = o.cfg.LibraryPath
	}
	l, err := loadLibrary(o.path)
	if err != nil {
		return nil, err
	}
	return &Interpreter{lib: l, cfg: o.cfg, log: o.log.With(zap.String("transport", "library"))}, nil
}

// check converts a status into an error at the library boundary.
func (i *Interpreter) check(status int32) error {
	return daqerr.Check(daqerr.Code(status), i.message)
}

func (i *Interpreter) message(code daqerr.Code) string {
	if code < 0 {
		if s, err := i.GetExtendedErrorInfo(); err == nil && s != "" {
			return s
		}
	}
	s, err := i.GetErrorString(code)
	if err != nil {
		return ""
	}
	return s
}

func cString(b []byte) string {
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	return string(b)
}

// Task lifecycle.

func (i *Interpreter) CreateTask(name string) (TaskHandle, error) {
	f, err := procCreateTask.get(i.lib)
	if err != nil {
		return TaskHandle{}, err
	}
	var h uintptr
	if err := i.check(f(name, &h)); err != nil {
		return TaskHandle{}, err
	}
	i.log.Debug("Task created", zap.String("name", name), zap.Uintptr("handle", h))
	return TaskHandle{Ptr: h}, nil
}

func (i *Interpreter) LoadTask(name string) (TaskHandle, error) {
	f, err := procLoadTask.get(i.lib)
	if err != nil {
		return TaskHandle{}, err
	}
	var h uintptr
	if err := i.check(f(name, &h)); err != nil {
		return TaskHandle{}, err
	}
	i.log.Debug("Task loaded", zap.String("name", name), zap.Uintptr("handle", h))
	return TaskHandle{Ptr: h}, nil
}

func (i *Interpreter) ClearTask(h TaskHandle) error {
	f, err := procClearTask.get(i.lib)
	if err != nil {
		return err
	}
	if err := i.check(f(h.Ptr)); err != nil {
		return err
	}
	i.log.Debug("Task cleared", zap.Uintptr("handle", h.Ptr))
	return nil
}

func (i *Interpreter) StartTask(h TaskHandle) error {
	f, err := procStartTask.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr))
}

func (i *Interpreter) StopTask(h TaskHandle) error {
	f, err := procStopTask.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr))
}

func (i *Interpreter) WaitUntilTaskDone(h TaskHandle, timeout float64) error {
	f, err := procWaitUntilTaskDone.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, timeout))
}

func (i *Interpreter) IsTaskDone(h TaskHandle) (bool, error) {
	f, err := procIsTaskDone.get(i.lib)
	if err != nil {
		return false, err
	}
	var done uint32
	if err := i.check(f(h.Ptr, &done)); err != nil {
		return false, err
	}
	return done != 0, nil
}

func (i *Interpreter) TaskControl(h TaskHandle, action constants.TaskMode) error {
	f, err := procTaskControl.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, int32(action)))
}

func (i *Interpreter) AddGlobalChansToTask(h TaskHandle, channels string) error {
	f, err := procAddGlobalChansToTask.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, channels))
}

func (i *Interpreter) SaveTask(h TaskHandle, saveAs, author string, opts constants.SaveOptions) error {
	f, err := procSaveTask.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, saveAs, author, uint32(opts)))
}

func (i *Interpreter) SaveGlobalChan(h TaskHandle, channel, saveAs, author string, opts constants.SaveOptions) error {
	f, err := procSaveGlobalChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, channel, saveAs, author, uint32(opts)))
}

func (i *Interpreter) SaveScale(scale, saveAs, author string, opts constants.SaveOptions) error {
	f, err := procSaveScale.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(scale, saveAs, author, uint32(opts)))
}

func (i *Interpreter) DeleteSavedTask(name string) error {
	f, err := procDeleteSavedTask.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(name))
}

func (i *Interpreter) DeleteSavedGlobalChan(name string) error {
	f, err := procDeleteSavedGlobalChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(name))
}

func (i *Interpreter) DeleteSavedScale(name string) error {
	f, err := procDeleteSavedScale.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(name))
}
