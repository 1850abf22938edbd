//go:build !windows

package native

import "github.com/ebitengine/purego"

var defaultLibraryNames = []string{"libnidaqmx.so.1", "libnidaqmx.so"}

func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}
