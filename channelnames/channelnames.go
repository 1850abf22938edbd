// Package channelnames expands and collapses DAQmx channel-name lists such as
// "Dev1/ai0:3,Dev1/ai5".
package channelnames

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KevinKickass/daqmx/daqerr"
)

// MaxRangeElements is the largest number of names one range may expand to.
const MaxRangeElements = 15000

// Unflatten expands a flattened channel string into individual names.
// Surrounding whitespace on each item is ignored.
func Unflatten(s string) ([]string, error) {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		colon := strings.IndexByte(item, ':')
		if colon < 0 {
			out = append(out, item)
			continue
		}
		names, err := expand(item[:colon], item[colon+1:])
		if err != nil {
			return nil, err
		}
		out = append(out, names...)
	}
	return out, nil
}

func expand(first, second string) ([]string, error) {
	base, lo := splitIndex(strings.TrimSpace(first))
	base2, hi := splitIndex(strings.TrimSpace(second))
	if lo == "" || hi == "" || (base2 != "" && base2 != base) {
		return nil, rangeSyntaxError(first + ":" + second)
	}
	start, err := strconv.Atoi(lo)
	if err != nil {
		return nil, rangeSyntaxError(first + ":" + second)
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return nil, rangeSyntaxError(first + ":" + second)
	}

	count := end - start
	step := 1
	if count < 0 {
		count, step = -count, -1
	}
	count++
	if count > MaxRangeElements {
		return nil, &daqerr.DriverError{
			Code:    daqerr.RangeSyntaxNumberTooBig,
			Message: fmt.Sprintf("range %s:%s expands to %d channels, more than %d", first, second, count, MaxRangeElements),
		}
	}

	width := 0
	switch {
	case padded(lo):
		width = len(lo)
	case padded(hi):
		width = len(hi)
	}
	names := make([]string, 0, count)
	for i, n := 0, start; i < count; i, n = i+1, n+step {
		names = append(names, base+pad(n, width))
	}
	return names, nil
}

func rangeSyntaxError(item string) error {
	return &daqerr.DriverError{
		Code: daqerr.InvalidRangeOfObjectsSyntaxInString,
		Message: "Syntax for a range of objects in the input string is invalid.\n\n" +
			"For ranges of objects, specify a number immediately before and after the colon. " +
			"Both numbers must share the same base name. Item: " + item,
	}
}

// splitIndex splits a trailing run of digits off name.
func splitIndex(name string) (base, digits string) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	return name[:i], name[i:]
}

func padded(digits string) bool { return len(digits) > 1 && digits[0] == '0' }

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// run is a maximal sequence of names sharing a base with consecutive indices.
type run struct {
	base       string
	first      string
	last       string
	start, end int
	width      int
	uniform    bool // every index so far has len(first) digits
}

func (r *run) String() string {
	if r.first == r.last {
		return r.base + r.first
	}
	return r.base + r.first + ":" + r.last
}

func (r *run) extends(base, digits string, n int) bool {
	if base != r.base || !compatible(r, digits) {
		return false
	}
	switch {
	case r.start == r.end:
		return n == r.end+1 || n == r.end-1
	case r.end > r.start:
		return n == r.end+1
	default:
		return n == r.end-1
	}
}

func compatible(r *run, digits string) bool {
	switch {
	case r.width > 0:
		return len(digits) == r.width
	case padded(digits):
		return r.uniform && len(digits) == len(r.first)
	}
	return true
}

// Flatten collapses names into the shortest flattened string, preserving
// order and the direction of each range. Each element may itself be a
// flattened string.
func Flatten(names ...string) (string, error) {
	var expanded []string
	for _, n := range names {
		parts, err := Unflatten(n)
		if err != nil {
			return "", err
		}
		expanded = append(expanded, parts...)
	}

	var items []string
	var cur *run
	for _, name := range expanded {
		base, digits := splitIndex(name)
		n, err := strconv.Atoi(digits)
		if digits == "" || err != nil {
			if cur != nil {
				items = append(items, cur.String())
				cur = nil
			}
			items = append(items, name)
			continue
		}
		if cur != nil && cur.extends(base, digits, n) {
			cur.end, cur.last = n, digits
			cur.uniform = cur.uniform && len(digits) == len(cur.first)
			if padded(digits) {
				cur.width = len(digits)
			}
			continue
		}
		if cur != nil {
			items = append(items, cur.String())
		}
		cur = &run{base: base, first: digits, last: digits, start: n, end: n, uniform: true}
		if padded(digits) {
			cur.width = len(digits)
		}
	}
	if cur != nil {
		items = append(items, cur.String())
	}
	return strings.Join(items, ","), nil
}

// MustFlatten is Flatten for names already known to be valid.
func MustFlatten(names ...string) string {
	s, err := Flatten(names...)
	if err != nil {
		panic(err)
	}
	return s
}
