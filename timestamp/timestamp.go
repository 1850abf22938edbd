// Package timestamp converts between the driver's 128-bit fixed-point time,
// the wire format used by the device server and a high-precision time with
// sub-nanosecond fields.
package timestamp

import (
	"fmt"
	"math/big"
	"time"
)

// EpochBias is the number of seconds from 1904-01-01 to 1970-01-01.
const EpochBias = 2082844800

const (
	yoctoPerSecond = "1000000000000000000000000"
	yoctoPerMicro  = 1_000_000_000_000_000_000
	yoctoPerFemto  = 1_000_000_000
	yoctoPerNano   = 1_000_000_000_000_000
)

var (
	two64   = new(big.Int).Lsh(big.NewInt(1), 64)
	perSec  = mustBig(yoctoPerSecond)
	halfSec = new(big.Int).Rsh(perSec, 1)
	half64  = new(big.Int).Lsh(big.NewInt(1), 63)
)

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("timestamp: bad constant " + s)
	}
	return v
}

// AbsTime is whole seconds since 1904-01-01T00:00:00Z in MSB (two's complement
// before 1904) plus the positive fraction LSB/2^64 of a second.
type AbsTime struct {
	MSB int64
	LSB uint64
}

// Compare orders AbsTime values by (MSB, LSB).
func (a AbsTime) Compare(b AbsTime) int {
	switch {
	case a.MSB < b.MSB:
		return -1
	case a.MSB > b.MSB:
		return 1
	case a.LSB < b.LSB:
		return -1
	case a.LSB > b.LSB:
		return 1
	}
	return 0
}

func (a AbsTime) Before(b AbsTime) bool { return a.Compare(b) < 0 }
func (a AbsTime) After(b AbsTime) bool  { return a.Compare(b) > 0 }

// Time converts a to the high-precision representation.
func (a AbsTime) Time() Time {
	// yocto = round(LSB * 10^24 / 2^64), half up.
	y := new(big.Int).SetUint64(a.LSB)
	y.Mul(y, perSec)
	y.Add(y, half64)
	y.Rsh(y, 64)

	sec := a.MSB - EpochBias
	if y.Cmp(perSec) >= 0 {
		y.Sub(y, perSec)
		sec++
	}
	return fromYocto(sec, y)
}

// Std converts a to a time.Time, rounding to the nearest nanosecond.
func (a AbsTime) Std() time.Time { return a.Time().Std() }

// WireTime is seconds and nanoseconds since 1970-01-01T00:00:00Z. Nanos
// outside [0, 1e9) is carried into Seconds on conversion.
type WireTime struct {
	Seconds int64
	Nanos   int32
}

// Time converts w to the high-precision representation. It is exact.
func (w WireTime) Time() Time {
	sec, nanos := w.Seconds+int64(w.Nanos)/1e9, int64(w.Nanos)%1e9
	if nanos < 0 {
		sec--
		nanos += 1e9
	}
	n := uint32(nanos)
	return Time{
		Sec:         sec,
		Microsecond: n / 1000,
		Femtosecond: n % 1000 * 1_000_000,
	}
}

// Std converts w to a time.Time.
func (w WireTime) Std() time.Time { return time.Unix(w.Seconds, int64(w.Nanos)).UTC() }

// Time is a UTC instant with yoctosecond resolution. Sec is whole seconds
// since 1970 (floor) and the sub-second fields are non-negative.
type Time struct {
	Sec         int64
	Microsecond uint32 // [0, 1e6)
	Femtosecond uint32 // [0, 1e9)
	Yoctosecond uint32 // [0, 1e9)
}

// FromStd converts a time.Time.
func FromStd(t time.Time) Time {
	sec := t.Unix()
	ns := uint64(t.Nanosecond())
	return Time{
		Sec:         sec,
		Microsecond: uint32(ns / 1000),
		Femtosecond: uint32(ns % 1000 * 1_000_000),
	}
}

// Date builds a Time from calendar fields in UTC.
func Date(year int, month time.Month, day, hour, minute, sec, microsecond int) Time {
	t := FromStd(time.Date(year, month, day, hour, minute, sec, 0, time.UTC))
	t.Microsecond = uint32(microsecond)
	return t
}

// Validate reports sub-second fields outside their ranges.
func (t Time) Validate() error {
	if t.Microsecond >= 1_000_000 || t.Femtosecond >= 1_000_000_000 || t.Yoctosecond >= 1_000_000_000 {
		return fmt.Errorf("sub-second field out of range: %d us, %d fs, %d ys", t.Microsecond, t.Femtosecond, t.Yoctosecond)
	}
	return nil
}

func (t Time) yocto() *big.Int {
	y := new(big.Int).SetUint64(uint64(t.Microsecond))
	y.Mul(y, big.NewInt(yoctoPerMicro))
	y.Add(y, new(big.Int).Mul(big.NewInt(int64(t.Femtosecond)), big.NewInt(yoctoPerFemto)))
	y.Add(y, big.NewInt(int64(t.Yoctosecond)))
	return y
}

func fromYocto(sec int64, y *big.Int) Time {
	q, r := new(big.Int).QuoRem(y, big.NewInt(yoctoPerMicro), new(big.Int))
	f, ys := new(big.Int).QuoRem(r, big.NewInt(yoctoPerFemto), new(big.Int))
	return Time{
		Sec:         sec,
		Microsecond: uint32(q.Uint64()),
		Femtosecond: uint32(f.Uint64()),
		Yoctosecond: uint32(ys.Uint64()),
	}
}

// AbsTime converts t to the driver representation, rounding the fraction half
// up to the nearest 2^-64 s.
func (t Time) AbsTime() AbsTime {
	l := t.yocto()
	l.Lsh(l, 64)
	l.Add(l, halfSec)
	l.Quo(l, perSec)

	msb := t.Sec + EpochBias
	if l.Cmp(two64) >= 0 {
		l.Sub(l, two64)
		msb++
	}
	return AbsTime{MSB: msb, LSB: l.Uint64()}
}

// WireTime converts t to seconds and nanoseconds, rounding half up.
func (t Time) WireTime() WireTime {
	y := t.yocto()
	y.Add(y, big.NewInt(yoctoPerNano/2))
	y.Quo(y, big.NewInt(yoctoPerNano))
	n := y.Int64()
	sec := t.Sec
	if n >= 1_000_000_000 {
		n -= 1_000_000_000
		sec++
	}
	return WireTime{Seconds: sec, Nanos: int32(n)}
}

// Std converts t to a time.Time, rounding half up to the nearest nanosecond.
func (t Time) Std() time.Time { return t.WireTime().Std() }

// Compare orders two Time values.
func (t Time) Compare(u Time) int {
	switch {
	case t.Sec != u.Sec:
		if t.Sec < u.Sec {
			return -1
		}
		return 1
	default:
		return t.yocto().Cmp(u.yocto())
	}
}

// Equal reports whether t and u are the same instant.
func (t Time) Equal(u Time) bool { return t.Compare(u) == 0 }

func (t Time) String() string {
	return fmt.Sprintf("%s.%06d%09d%09dZ", time.Unix(t.Sec, 0).UTC().Format("2006-01-02T15:04:05"),
		t.Microsecond, t.Femtosecond, t.Yoctosecond)
}

func FromAbs(a AbsTime) Time   { return a.Time() }
func FromWire(w WireTime) Time { return w.Time() }
