package interpreter

import "github.com/KevinKickass/daqmx/attributes"

// TaskHandle identifies a task to a transport. Ptr is the native driver
// handle. Session is the remote session name and Attached marks a session
// that existed before this client opened it.
type TaskHandle struct {
	Ptr      uintptr
	Session  string
	Attached bool
}

// Valid reports whether h refers to a task.
func (h TaskHandle) Valid() bool { return h.Ptr != 0 || h.Session != "" }

// Target addresses an attribute: its scope, the task for task-bound scopes,
// and the name key for named scopes (channel, device, physical channel,
// scale, persisted object).
type Target struct {
	Scope attributes.Scope
	Task  TaskHandle
	Name  string
}

func TaskTarget(scope attributes.Scope, h TaskHandle) Target {
	return Target{Scope: scope, Task: h}
}

func ChannelTarget(h TaskHandle, channel string) Target {
	return Target{Scope: attributes.ScopeChannel, Task: h, Name: channel}
}

func NamedTarget(scope attributes.Scope, name string) Target {
	return Target{Scope: scope, Name: name}
}

func SystemTarget() Target {
	return Target{Scope: attributes.ScopeSystem}
}
