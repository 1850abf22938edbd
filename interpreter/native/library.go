package native

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/logging"
)

// library is the loaded driver. It is process-wide: the first successful
// load fixes the path for the rest of the process.
type library struct {
	path   string
	handle uintptr
}

var (
	libOnce sync.Once
	lib     *library
	libErr  error

	// symbols caches resolved entry point addresses by name.
	symbols sync.Map
	// funcs caches installed Go functions by address and signature.
	funcs sync.Map
)

func loadLibrary(path string) (*library, error) {
	libOnce.Do(func() {
		candidates := defaultLibraryNames
		if path != "" {
			candidates = []string{path}
		}
		var errs []error
		for _, name := range candidates {
			h, err := openLibrary(name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			lib = &library{path: name, handle: h}
			logging.L().Info("Loaded DAQmx library", zap.String("path", name))
			return
		}
		libErr = &daqerr.DriverError{
			Code:    daqerr.LibraryNotPresent,
			Message: fmt.Sprintf("could not find an installation of NI-DAQmx (tried %v): %v", candidates, errs),
		}
	})
	if libErr != nil {
		return nil, libErr
	}
	if path != "" && path != lib.path {
		logging.L().Warn("DAQmx library already loaded from a different path",
			zap.String("loaded", lib.path), zap.String("requested", path))
	}
	return lib, nil
}

// symbol resolves name once and publishes the address.
func (l *library) symbol(name string) (uintptr, error) {
	if addr, ok := symbols.Load(name); ok {
		return addr.(uintptr), nil
	}
	addr, err := lookupSymbol(l.handle, name)
	if err != nil {
		return 0, &daqerr.FeatureNotSupportedError{
			Feature: name,
			Reason:  fmt.Sprintf("entry point not exported by %s: %v", l.path, err),
		}
	}
	actual, _ := symbols.LoadOrStore(name, addr)
	return actual.(uintptr), nil
}

type funcKey struct {
	addr uintptr
	sig  reflect.Type
}

// bind returns addr as a Go function of type F, installing it on first use.
// Concurrent first use may install twice; only one result is published.
func bind[F any](addr uintptr) F {
	key := funcKey{addr: addr, sig: reflect.TypeFor[F]()}
	if f, ok := funcs.Load(key); ok {
		return f.(F)
	}
	var f F
	purego.RegisterFunc(&f, addr)
	actual, _ := funcs.LoadOrStore(key, f)
	return actual.(F)
}

// proc is a fixed entry point with a known signature.
type proc[F any] struct {
	name string
	once sync.Once
	fn   F
	err  error
}

func newProc[F any](name string) *proc[F] { return &proc[F]{name: name} }

func (p *proc[F]) get(l *library) (F, error) {
	p.once.Do(func() {
		addr, err := l.symbol(p.name)
		if err != nil {
			p.err = err
			return
		}
		p.fn = bind[F](addr)
	})
	return p.fn, p.err
}
