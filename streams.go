package daqmx

import (
	"fmt"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/daqerr"
)

// InStream exposes the read position, buffer and status of an input task.
type InStream struct{ scoped }

// OutStream exposes the write position, buffer and status of an output task.
type OutStream struct{ scoped }

// ExportSignals routes internal timing and trigger signals to terminals.
type ExportSignals struct{ scoped }

func (s scoped) buffer() scoped { return scoped{s.core, attributes.ScopeBuffer} }

// channels resolves a channel-list attribute to a Channel of the task.
func (s scoped) channels(id attributes.ID) (Channel, error) {
	name, err := get(s, stringAttr, id)
	if err != nil {
		return Channel{}, err
	}
	return newChannel(s.core, name, 0), nil
}

// ChannelsToRead is the subset of channels read by Read. It defaults to
// every channel in the task.
func (s *InStream) ChannelsToRead() (Channel, error) {
	return s.channels(attributes.ReadChannelsToRead)
}

func (s *InStream) SetChannelsToRead(c Channel) error {
	return set(s, stringAttr, attributes.ReadChannelsToRead, c.Name())
}

func (s *InStream) ResetChannelsToRead() error {
	return reset(s, attributes.ReadChannelsToRead)
}

// OverloadedChannels lists channels with an overload detected since the
// attribute was last read.
func (s *InStream) OverloadedChannels() ([]string, error) {
	return getNames(s, attributes.ReadOverloadedChans)
}

// ReadInto reads raw samples of every channel into buf, interleaved, in
// the device's native format. n of ReadAllAvailable reads as many samples
// as fit into buf. It returns samples per channel read and bytes per sample.
func (s *InStream) ReadInto(buf []byte, n int, timeout float64) (int, int, error) {
	if n != ReadAllAvailable && n < 0 {
		return 0, 0, fmt.Errorf("sample count %d: %w", n, daqerr.ErrInvalidArgument)
	}
	if n == ReadAllAvailable {
		width, err := get(s, uint32Attr, attributes.ReadRawDataWidth)
		if err != nil {
			return 0, 0, err
		}
		chans, err := get(s, uint32Attr, attributes.ReadNumChans)
		if err != nil {
			return 0, 0, err
		}
		if width == 0 || chans == 0 {
			return 0, 0, nil
		}
		n = len(buf) / int(width*chans)
	}
	h, err := s.core.handle()
	if err != nil {
		return 0, 0, err
	}
	read, size, err := s.core.interp.ReadRaw(h, n, timeout, buf)
	return read, size, daqerr.WithContext(err, s.core.name, "")
}

// Write writes raw, interleaved samples in the device's native format and
// returns the samples per channel written. The sample count is derived
// from the raw data width and number of channels.
func (s *OutStream) Write(data []byte, autoStart bool, timeout float64) (int, error) {
	width, err := get(s, uint32Attr, attributes.WriteRawDataWidth)
	if err != nil {
		return 0, err
	}
	chans, err := get(s, uint32Attr, attributes.WriteNumChans)
	if err != nil {
		return 0, err
	}
	frame := int(width * chans)
	if frame == 0 || len(data)%frame != 0 {
		return 0, &daqerr.MismatchedArraySizesError{What: "raw bytes per sample across all channels", Want: frame, Got: len(data)}
	}
	h, err := s.core.handle()
	if err != nil {
		return 0, err
	}
	written, err := s.core.interp.WriteRaw(h, len(data)/frame, autoStart, timeout, data)
	return written, daqerr.WithContext(err, s.core.name, "")
}
