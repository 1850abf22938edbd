// Package constants holds the driver's enumerated values. Every enum is an
// int32 carrying the numeric value the driver and the device server use on
// the wire.
package constants

import "fmt"

// Sentinel numeric values shared by several operations.
const (
	// WaitInfinitely is the timeout value that blocks without limit.
	WaitInfinitely = -1.0
	// ReadAllAvailable requests every sample available or configured.
	ReadAllAvailable = -1
	// AutoSize lets the driver choose a size, for example a buffer.
	AutoSize = -1
)

func enumName[T ~int32](names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("%T(%d)", v, int32(v))
}
