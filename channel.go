package daqmx

import (
	"fmt"
	"slices"
	"strings"
	"weak"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/channelnames"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
)

// Channel is a view onto one or more virtual channels of a task. It does not
// keep the task alive: once the task is garbage collected every attribute
// access fails with daqerr.ErrTaskReleased.
type Channel struct {
	task weak.Pointer[taskCore]
	h    interpreter.TaskHandle
	name string
	kind constants.ChannelType
}

// ChannelKey is a comparable identity for a Channel. Channels with the same
// task and the same set of member names have the same key.
type ChannelKey struct {
	Task  interpreter.TaskHandle
	Names string
}

func newChannel(core *taskCore, name string, kind constants.ChannelType) Channel {
	return Channel{task: weak.Make(core), h: core.h, name: name, kind: kind}
}

func (c Channel) core() (*taskCore, error) {
	core := c.task.Value()
	if core == nil {
		return nil, fmt.Errorf("channel %s: %w", c.name, daqerr.ErrTaskReleased)
	}
	return core, nil
}

func (c Channel) bind() (interpreter.Interpreter, interpreter.Target, error) {
	core, err := c.core()
	if err != nil {
		return nil, interpreter.Target{}, err
	}
	h, err := core.handle()
	if err != nil {
		return nil, interpreter.Target{}, err
	}
	return core.interp, interpreter.ChannelTarget(h, c.name), nil
}

func (c Channel) taskName() string {
	if core := c.task.Value(); core != nil {
		return core.name
	}
	return ""
}

// Name is the flattened name of every member channel.
func (c Channel) Name() string { return c.name }

// Kind is the channel type shared by every member, or zero for a mix.
func (c Channel) Kind() constants.ChannelType { return c.kind }

// Names lists the member channel names.
func (c Channel) Names() []string {
	names, err := channelnames.Unflatten(c.name)
	if err != nil {
		return []string{c.name}
	}
	return names
}

func (c Channel) Len() int { return len(c.Names()) }

// At returns the i-th member as its own channel.
func (c Channel) At(i int) (Channel, error) {
	names := c.Names()
	if i < 0 || i >= len(names) {
		return Channel{}, fmt.Errorf("channel index %d out of range [0, %d): %w", i, len(names), daqerr.ErrInvalidArgument)
	}
	return c.with(names[i]), nil
}

// Reversed returns the members in reverse order.
func (c Channel) Reversed() Channel {
	names := c.Names()
	slices.Reverse(names)
	return c.with(channelnames.MustFlatten(names...))
}

// Union concatenates channels of the same task.
func (c Channel) Union(others ...Channel) (Channel, error) {
	names := c.Names()
	kind := c.kind
	for _, o := range others {
		if o.h != c.h {
			return Channel{}, fmt.Errorf("cannot combine channels %s and %s of different tasks: %w", c.name, o.name, daqerr.ErrInvalidArgument)
		}
		if o.kind != kind {
			kind = 0
		}
		names = append(names, o.Names()...)
	}
	flat, err := channelnames.Flatten(names...)
	if err != nil {
		return Channel{}, err
	}
	u := c.with(flat)
	u.kind = kind
	return u, nil
}

// Contains reports whether every member of o is a member of c.
func (c Channel) Contains(o Channel) bool {
	if o.h != c.h {
		return false
	}
	names := c.Names()
	for _, n := range o.Names() {
		if !slices.Contains(names, n) {
			return false
		}
	}
	return true
}

// Equal reports whether both channels belong to the same task and have the
// same set of members, regardless of order.
func (c Channel) Equal(o Channel) bool { return c.Key() == o.Key() }

func (c Channel) Key() ChannelKey {
	names := slices.Clone(c.Names())
	slices.Sort(names)
	return ChannelKey{Task: c.h, Names: strings.Join(slices.Compact(names), ",")}
}

// Save stores the channel as a global channel. An empty saveAs keeps the
// channel name.
func (c Channel) Save(saveAs, author string, opts constants.SaveOptions) error {
	core, err := c.core()
	if err != nil {
		return err
	}
	h, err := core.handle()
	if err != nil {
		return err
	}
	return daqerr.WithContext(core.interp.SaveGlobalChan(h, c.name, saveAs, author, opts), core.name, c.name)
}

// channels resolves a channel-name attribute to a channel of the same task.
func (c Channel) channels(id attributes.ID) (Channel, error) {
	name, err := get(c, stringAttr, id)
	if err != nil {
		return Channel{}, err
	}
	return c.with(name), nil
}

func (c Channel) String() string { return fmt.Sprintf("Channel(name=%s)", c.name) }

func (c Channel) with(name string) Channel {
	return Channel{task: c.task, h: c.h, name: name, kind: c.kind}
}

// Typed channels. Each exposes the attributes of its channel type on top of
// the common Channel surface.
type (
	AIChannel struct{ Channel }
	AOChannel struct{ Channel }
	CIChannel struct{ Channel }
	COChannel struct{ Channel }
	DIChannel struct{ Channel }
	DOChannel struct{ Channel }
)

func wrapAI(c Channel) AIChannel { return AIChannel{c} }
func wrapAO(c Channel) AOChannel { return AOChannel{c} }
func wrapCI(c Channel) CIChannel { return CIChannel{c} }
func wrapCO(c Channel) COChannel { return COChannel{c} }
func wrapDI(c Channel) DIChannel { return DIChannel{c} }
func wrapDO(c Channel) DOChannel { return DOChannel{c} }
