// Package attributes describes every driver attribute the library exposes:
// its numeric ID, scope, value category and access mode. The description is
// loaded from an embedded metadata document and is authoritative for the
// property surface and for both transports.
package attributes

import (
	"fmt"
	"strings"
)

// ID is a 32-bit attribute identifier.
type ID int32

func (id ID) String() string {
	if a, ok := Lookup(id); ok {
		return a.Name
	}
	return fmt.Sprintf("0x%04X", int32(id))
}

// Scope is the kind of object an attribute belongs to.
type Scope int

const (
	ScopeChannel Scope = iota
	ScopeTask
	ScopeSystem
	ScopeScale
	ScopeDevice
	ScopePersistedTask
	ScopePersistedChannel
	ScopePersistedScale
	ScopePhysicalChannel
	ScopeRead
	ScopeWrite
	ScopeTiming
	ScopeTrigger
	ScopeExport
	ScopeBuffer
)

var scopeToString = map[Scope]string{
	ScopeChannel:          "channel",
	ScopeTask:             "task",
	ScopeSystem:           "system",
	ScopeScale:            "scale",
	ScopeDevice:           "device",
	ScopePersistedTask:    "persisted_task",
	ScopePersistedChannel: "persisted_channel",
	ScopePersistedScale:   "persisted_scale",
	ScopePhysicalChannel:  "physical_channel",
	ScopeRead:             "read",
	ScopeWrite:            "write",
	ScopeTiming:           "timing",
	ScopeTrigger:          "trigger",
	ScopeExport:           "export",
	ScopeBuffer:           "buffer",
}

var stringToScope = invert(scopeToString)

func (s Scope) String() string {
	if v, ok := scopeToString[s]; ok {
		return v
	}
	return "unknown"
}

func (s *Scope) UnmarshalText(b []byte) error {
	v, ok := stringToScope[string(b)]
	if !ok {
		return fmt.Errorf("unknown scope %q", b)
	}
	*s = v
	return nil
}

// TaskBound reports whether the scope is addressed through a task handle.
func (s Scope) TaskBound() bool {
	switch s {
	case ScopeChannel, ScopeTask, ScopeRead, ScopeWrite, ScopeTiming, ScopeTrigger, ScopeExport, ScopeBuffer:
		return true
	}
	return false
}

// Named reports whether the scope is addressed by a name. Channel scope is
// both task bound and named.
func (s Scope) Named() bool {
	switch s {
	case ScopeChannel, ScopeScale, ScopeDevice, ScopePhysicalChannel,
		ScopePersistedTask, ScopePersistedChannel, ScopePersistedScale:
		return true
	}
	return false
}

// Category is the value type of an attribute. Enum-valued attributes are
// Int32 (or Int32Array) and carry an enum type name.
type Category int

const (
	Bool Category = iota
	Int32
	Uint32
	Uint64
	Float64
	String
	Float64Array
	Int32Array
	Uint32Array
	Bytes
	Timestamp
)

var categoryToString = map[Category]string{
	Bool:         "bool",
	Int32:        "int32",
	Uint32:       "uint32",
	Uint64:       "uint64",
	Float64:      "double",
	String:       "string",
	Float64Array: "double_array",
	Int32Array:   "int32_array",
	Uint32Array:  "uint32_array",
	Bytes:        "bytes",
	Timestamp:    "timestamp",
}

var stringToCategory = invert(categoryToString)

func (c Category) String() string {
	if v, ok := categoryToString[c]; ok {
		return v
	}
	return "unknown"
}

func (c *Category) UnmarshalText(b []byte) error {
	v, ok := stringToCategory[string(b)]
	if !ok {
		return fmt.Errorf("unknown attribute type %q", b)
	}
	*c = v
	return nil
}

// IsArray reports whether values of the category are variable length.
func (c Category) IsArray() bool {
	switch c {
	case String, Float64Array, Int32Array, Uint32Array, Bytes:
		return true
	}
	return false
}

// Access is the access mode of an attribute.
type Access int

const (
	Read Access = iota
	ReadWrite
)

var accessToString = map[Access]string{
	Read:      "read",
	ReadWrite: "read-write",
}

var stringToAccess = invert(accessToString)

func (a Access) String() string {
	if v, ok := accessToString[a]; ok {
		return v
	}
	return "unknown"
}

func (a *Access) UnmarshalText(b []byte) error {
	v, ok := stringToAccess[string(b)]
	if !ok {
		return fmt.Errorf("unknown access mode %q", b)
	}
	*a = v
	return nil
}

// Attribute is one metadata entry.
type Attribute struct {
	ID         ID       `yaml:"id"`
	Name       string   `yaml:"name"`
	Scope      Scope    `yaml:"scope"`
	Category   Category `yaml:"type"`
	Access     Access   `yaml:"access"`
	Resettable bool     `yaml:"resettable"`
	Enum       string   `yaml:"enum"`
	Object     string   `yaml:"object"`
}

// Symbol is the suffix of the attribute's C entry points.
func (a *Attribute) Symbol() string { return strings.ReplaceAll(a.Name, "_", "") }

// Writable reports whether the attribute can be set.
func (a *Attribute) Writable() bool { return a.Access == ReadWrite }

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
