package native

import "github.com/KevinKickass/daqmx/daqerr"

// maxSizeAttempts bounds how often a variable-length value is re-sized
// before giving up with daqerr.ErrSizeNegotiation.
const maxSizeAttempts = 3

// twoCall retrieves a variable-length value. call is first invoked with a
// nil buffer and returns the required element count or a negative status.
// The second invocation fills a buffer of that size. If the value grew in
// between, the driver reports a too-small buffer and the sequence restarts.
//
// The returned status is the final driver status; err is only set when the
// attempts are exhausted.
func twoCall[T any](call func(buf []T) int32) ([]T, int32, error) {
	for range maxSizeAttempts {
		size := call(nil)
		if size < 0 {
			return nil, size, nil
		}
		if size == 0 {
			return []T{}, 0, nil
		}
		buf := make([]T, size)
		status := call(buf)
		if grew(status) {
			continue
		}
		return buf, status, nil
	}
	return nil, 0, daqerr.ErrSizeNegotiation
}

func grew(status int32) bool {
	switch daqerr.Code(status) {
	case daqerr.BufferTooSmallForString, daqerr.ReadBufferTooSmall:
		return true
	}
	return false
}

// twoCallString is twoCall for null-terminated strings.
func twoCallString(call func(buf []byte) int32) (string, int32, error) {
	buf, status, err := twoCall(call)
	if err != nil || status < 0 {
		return "", status, err
	}
	return cString(buf), status, nil
}
