//go:build windows

package native

import (
	"sync"

	"golang.org/x/sys/windows"
)

var defaultLibraryNames = []string{"nicaiu.dll"}

var (
	dllMu sync.Mutex
	dlls  = map[uintptr]*windows.LazyDLL{}
)

func openLibrary(name string) (uintptr, error) {
	dll := windows.NewLazyDLL(name)
	if err := dll.Load(); err != nil {
		return 0, err
	}
	h := dll.Handle()
	dllMu.Lock()
	dlls[h] = dll
	dllMu.Unlock()
	return h, nil
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	dllMu.Lock()
	dll := dlls[handle]
	dllMu.Unlock()
	p := dll.NewProc(name)
	if err := p.Find(); err != nil {
		return 0, err
	}
	return p.Addr(), nil
}
