// Package waveform holds sample arrays with timing information for
// waveform reads and writes.
package waveform

import (
	"fmt"
	"time"

	"github.com/KevinKickass/daqmx/daqerr"
)

// ReallocationPolicy controls whether a read may grow a waveform.
type ReallocationPolicy int

const (
	// ToGrow lets a read replace the backing store with a larger one.
	ToGrow ReallocationPolicy = iota
	// Disallow fails a read that needs more capacity than the waveform has.
	Disallow
)

func (p ReallocationPolicy) String() string {
	switch p {
	case ToGrow:
		return "TO_GROW"
	case Disallow:
		return "DISALLOW"
	default:
		return "UNKNOWN"
	}
}

// Timing is the time of the first sample and the sample interval.
type Timing struct {
	T0 time.Time
	Dt time.Duration
}

// SampleTime returns the time of sample i.
func (t Timing) SampleTime(i int) time.Time {
	return t.T0.Add(time.Duration(i) * t.Dt)
}

// Analog is a waveform of scaled 64-bit samples.
type Analog struct {
	Channel    string
	Timing     Timing
	Attributes map[string]string

	data []float64 // len is the sample count, cap the capacity
}

// NewAnalog allocates a waveform with the given capacity and no samples.
func NewAnalog(capacity int) *Analog {
	return &Analog{data: make([]float64, 0, capacity)}
}

// AnalogFrom wraps samples. The waveform keeps the slice.
func AnalogFrom(samples []float64) *Analog {
	return &Analog{data: samples}
}

func (w *Analog) Len() int           { return len(w.data) }
func (w *Analog) Capacity() int      { return cap(w.data) }
func (w *Analog) Samples() []float64 { return w.data }

// Backing returns n samples of storage for a read to fill, growing the
// waveform if policy allows.
func (w *Analog) Backing(n int, policy ReallocationPolicy) ([]float64, error) {
	if n > cap(w.data) {
		if policy == Disallow {
			return nil, capacityError(w.Channel, n, cap(w.data))
		}
		w.data = make([]float64, 0, n)
	}
	return w.data[:n], nil
}

// Rebind points the waveform at externally owned storage, typically a slice
// of a block shared with other waveforms.
func (w *Analog) Rebind(buf []float64) { w.data = buf }

// SetLen sets the sample count after a read.
func (w *Analog) SetLen(n int) { w.data = w.data[:n] }

// Digital is a waveform of line states. Sample i of line j is at
// Data()[i*Lines()+j].
type Digital struct {
	Channel    string
	Timing     Timing
	Attributes map[string]string

	lines int
	data  []uint8
}

// NewDigital allocates a waveform for the given capacity and line count.
func NewDigital(capacity, lines int) *Digital {
	return &Digital{lines: lines, data: make([]uint8, 0, capacity*lines)}
}

// DigitalFrom wraps packed line states, one byte per line per sample.
func DigitalFrom(data []uint8, lines int) (*Digital, error) {
	if lines <= 0 || len(data)%lines != 0 {
		return nil, fmt.Errorf("%d bytes do not divide into %d lines: %w", len(data), lines, daqerr.ErrInvalidArgument)
	}
	return &Digital{lines: lines, data: data}, nil
}

func (w *Digital) Lines() int    { return w.lines }
func (w *Digital) Data() []uint8 { return w.data }

func (w *Digital) Len() int {
	if w.lines == 0 {
		return 0
	}
	return len(w.data) / w.lines
}

func (w *Digital) Capacity() int {
	if w.lines == 0 {
		return 0
	}
	return cap(w.data) / w.lines
}

// Line returns the state of line j at sample i.
func (w *Digital) Line(i, j int) bool { return w.data[i*w.lines+j] != 0 }

// Backing returns storage for n samples of lines lines.
func (w *Digital) Backing(n, lines int, policy ReallocationPolicy) ([]uint8, error) {
	if lines != w.lines {
		if policy == Disallow && w.lines != 0 {
			return nil, fmt.Errorf("waveform has %d lines, read has %d: %w", w.lines, lines, daqerr.ErrInvalidArgument)
		}
		w.lines = lines
	}
	need := n * lines
	if need > cap(w.data) {
		if policy == Disallow {
			return nil, capacityError(w.Channel, n, w.Capacity())
		}
		w.data = make([]uint8, 0, need)
	}
	return w.data[:need], nil
}

// Rebind points the waveform at externally owned storage.
func (w *Digital) Rebind(buf []uint8, lines int) { w.data, w.lines = buf, lines }

// SetLen sets the sample count after a read.
func (w *Digital) SetLen(n int) { w.data = w.data[:n*w.lines] }

func capacityError(channel string, need, have int) error {
	return &daqerr.DriverError{
		Code:        daqerr.ReadBufferTooSmall,
		Message:     fmt.Sprintf("waveform capacity %d is smaller than the %d samples requested and reallocation is disallowed", have, need),
		ChannelName: channel,
	}
}

// EqualLength checks that every waveform in a group has the same sample
// count and returns it.
func EqualLength[W interface{ Len() int }](group []W) (int, error) {
	if len(group) == 0 {
		return 0, nil
	}
	n := group[0].Len()
	for _, w := range group[1:] {
		if w.Len() != n {
			return 0, &daqerr.MismatchedArraySizesError{What: "waveform sample counts", Want: n, Got: w.Len()}
		}
	}
	return n, nil
}

// GroupByChannel copies the samples of equal-length waveforms into one
// block, one channel after another.
func GroupByChannel(group []*Analog) ([]float64, int, error) {
	n, err := EqualLength(group)
	if err != nil {
		return nil, 0, err
	}
	block := make([]float64, 0, n*len(group))
	for _, w := range group {
		block = append(block, w.data...)
	}
	return block, n, nil
}

// ShareBlock prepares one contiguous group-by-channel block of n samples
// per channel for a read that fills every waveform in group. finish sets
// each waveform to the k samples actually read. With ToGrow the waveforms
// are rebound to windows of the block; with Disallow the block is scratch
// space copied back into the existing storage.
func ShareBlock(group []*Analog, n int, policy ReallocationPolicy) (block []float64, finish func(k int), err error) {
	if len(group) == 1 {
		w := group[0]
		buf, err := w.Backing(n, policy)
		if err != nil {
			return nil, nil, err
		}
		return buf, w.SetLen, nil
	}
	if policy == Disallow {
		for _, w := range group {
			if w.Capacity() < n {
				return nil, nil, capacityError(w.Channel, n, w.Capacity())
			}
		}
		block = make([]float64, n*len(group))
		return block, func(k int) {
			for i, w := range group {
				w.data = w.data[:k]
				copy(w.data, block[i*n:i*n+k])
			}
		}, nil
	}
	block = make([]float64, n*len(group))
	for i, w := range group {
		w.Rebind(block[i*n : (i+1)*n : (i+1)*n])
	}
	return block, func(k int) {
		for _, w := range group {
			w.SetLen(k)
		}
	}, nil
}

// ShareDigitalBlock is ShareBlock for digital waveforms with lines lines per
// channel.
func ShareDigitalBlock(group []*Digital, n, lines int, policy ReallocationPolicy) (block []uint8, finish func(k int), err error) {
	if len(group) == 1 {
		w := group[0]
		buf, err := w.Backing(n, lines, policy)
		if err != nil {
			return nil, nil, err
		}
		return buf, w.SetLen, nil
	}
	stride := n * lines
	if policy == Disallow {
		for _, w := range group {
			if w.lines != lines && w.lines != 0 {
				return nil, nil, fmt.Errorf("waveform has %d lines, read has %d: %w", w.lines, lines, daqerr.ErrInvalidArgument)
			}
			if cap(w.data) < stride {
				return nil, nil, capacityError(w.Channel, n, w.Capacity())
			}
		}
		block = make([]uint8, stride*len(group))
		return block, func(k int) {
			for i, w := range group {
				w.lines = lines
				w.data = w.data[:k*lines]
				copy(w.data, block[i*stride:i*stride+k*lines])
			}
		}, nil
	}
	block = make([]uint8, stride*len(group))
	for i, w := range group {
		w.Rebind(block[i*stride:(i+1)*stride:(i+1)*stride], lines)
	}
	return block, func(k int) {
		for _, w := range group {
			w.SetLen(k)
		}
	}, nil
}

// DigitalGroupByChannel copies equal-length digital waveforms into one block.
func DigitalGroupByChannel(group []*Digital) ([]uint8, int, int, error) {
	n, err := EqualLength(group)
	if err != nil {
		return nil, 0, 0, err
	}
	if len(group) == 0 {
		return nil, 0, 0, nil
	}
	lines := group[0].lines
	block := make([]uint8, 0, n*lines*len(group))
	for _, w := range group {
		if w.lines != lines {
			return nil, 0, 0, &daqerr.MismatchedArraySizesError{What: "waveform line counts", Want: lines, Got: w.lines}
		}
		block = append(block, w.data...)
	}
	return block, n, lines, nil
}
