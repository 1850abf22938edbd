package remote

import (
	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/wire"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/timestamp"
)

// Attribute RPCs are named <Verb><Scope>Attribute<Category>, with Reset
// carrying no category. Int32 values travel in the value_raw member of the
// typed value oneof. IDs missing from the metadata use the target's scope
// and are passed to the server as-is.

var scopeRPC = map[attributes.Scope]string{
	attributes.ScopeChannel:          "Chan",
	attributes.ScopeTask:             "Task",
	attributes.ScopeSystem:           "SystemInfo",
	attributes.ScopeScale:            "Scale",
	attributes.ScopeDevice:           "Device",
	attributes.ScopePersistedTask:    "PersistedTask",
	attributes.ScopePersistedChannel: "PersistedChan",
	attributes.ScopePersistedScale:   "PersistedScale",
	attributes.ScopePhysicalChannel:  "PhysicalChan",
	attributes.ScopeRead:             "Read",
	attributes.ScopeWrite:            "Write",
	attributes.ScopeTiming:           "Timing",
	attributes.ScopeTrigger:          "Trig",
	attributes.ScopeExport:           "ExportedSignal",
	attributes.ScopeBuffer:           "Buffer",
}

var categoryRPC = map[attributes.Category]string{
	attributes.Bool:         "Bool",
	attributes.Int32:        "Int32",
	attributes.Uint32:       "UInt32",
	attributes.Uint64:       "UInt64",
	attributes.Float64:      "Double",
	attributes.String:       "String",
	attributes.Float64Array: "DoubleArray",
	attributes.Int32Array:   "Int32Array",
	attributes.Uint32Array:  "UInt32Array",
	attributes.Bytes:        "Bytes",
	attributes.Timestamp:    "Timestamp",
}

var verbs = map[attributes.Op]string{
	attributes.OpGet:   "Get",
	attributes.OpSet:   "Set",
	attributes.OpReset: "Reset",
}

func attributeMethod(scope attributes.Scope, cat attributes.Category, op attributes.Op) string {
	name := verbs[op] + scopeRPC[scope] + "Attribute"
	if op != attributes.OpReset {
		name += categoryRPC[cat]
	}
	return name
}

// keyField is the request field that names the object of a named scope.
var keyField = map[attributes.Scope]string{
	attributes.ScopeScale:            "scale_name",
	attributes.ScopeDevice:           "device_name",
	attributes.ScopePersistedTask:    "task_name",
	attributes.ScopePersistedChannel: "channel",
	attributes.ScopePersistedScale:   "scale_name",
	attributes.ScopePhysicalChannel:  "physical_channel",
}

// attribute issues one attribute RPC. value sets the request's value field
// and may be nil.
func (i *Interpreter) attribute(t interpreter.Target, id attributes.ID, cat attributes.Category, op attributes.Op, value func(req wire.Message)) (wire.Message, error) {
	if err := attributes.Check(id, cat, op); err != nil {
		return wire.Message{}, err
	}
	a, _ := attributes.Lookup(id)
	scope := a.Scope
	method := attributeMethod(scope, cat, op)
	resp, err := i.call(method, func(req wire.Message) {
		switch {
		case scope == attributes.ScopeChannel:
			req.SetSession("task", t.Task.Session).Set("channel", t.Name)
		case scope.TaskBound():
			req.SetSession("task", t.Task.Session)
		case scope != attributes.ScopeSystem:
			req.Set(keyField[scope], t.Name)
		}
		req.Set("attribute_raw", int32(id))
		if value != nil {
			value(req)
		}
	})
	if err != nil && scope == attributes.ScopeChannel {
		err = daqerr.WithContext(err, "", t.Name)
	}
	return resp, err
}

func (i *Interpreter) get(t interpreter.Target, id attributes.ID, cat attributes.Category) (wire.Message, error) {
	return i.attribute(t, id, cat, attributes.OpGet, nil)
}

func (i *Interpreter) set(t interpreter.Target, id attributes.ID, cat attributes.Category, v any) error {
	_, err := i.attribute(t, id, cat, attributes.OpSet, func(req wire.Message) { req.Set("value", v) })
	return err
}

func (i *Interpreter) GetBoolAttribute(t interpreter.Target, id attributes.ID) (bool, error) {
	resp, err := i.get(t, id, attributes.Bool)
	if err != nil {
		return false, err
	}
	return resp.Bool("value"), nil
}

func (i *Interpreter) SetBoolAttribute(t interpreter.Target, id attributes.ID, v bool) error {
	return i.set(t, id, attributes.Bool, v)
}

func (i *Interpreter) GetInt32Attribute(t interpreter.Target, id attributes.ID) (int32, error) {
	resp, err := i.get(t, id, attributes.Int32)
	if err != nil {
		return 0, err
	}
	return resp.Int32("value_raw"), nil
}

func (i *Interpreter) SetInt32Attribute(t interpreter.Target, id attributes.ID, v int32) error {
	_, err := i.attribute(t, id, attributes.Int32, attributes.OpSet, func(req wire.Message) { req.Set("value_raw", v) })
	return err
}

func (i *Interpreter) GetUint32Attribute(t interpreter.Target, id attributes.ID) (uint32, error) {
	resp, err := i.get(t, id, attributes.Uint32)
	if err != nil {
		return 0, err
	}
	return resp.Uint32("value"), nil
}

func (i *Interpreter) SetUint32Attribute(t interpreter.Target, id attributes.ID, v uint32) error {
	return i.set(t, id, attributes.Uint32, v)
}

func (i *Interpreter) GetUint64Attribute(t interpreter.Target, id attributes.ID) (uint64, error) {
	resp, err := i.get(t, id, attributes.Uint64)
	if err != nil {
		return 0, err
	}
	return resp.Uint64("value"), nil
}

func (i *Interpreter) SetUint64Attribute(t interpreter.Target, id attributes.ID, v uint64) error {
	return i.set(t, id, attributes.Uint64, v)
}

func (i *Interpreter) GetFloat64Attribute(t interpreter.Target, id attributes.ID) (float64, error) {
	resp, err := i.get(t, id, attributes.Float64)
	if err != nil {
		return 0, err
	}
	return resp.Float64("value"), nil
}

func (i *Interpreter) SetFloat64Attribute(t interpreter.Target, id attributes.ID, v float64) error {
	return i.set(t, id, attributes.Float64, v)
}

func (i *Interpreter) GetStringAttribute(t interpreter.Target, id attributes.ID) (string, error) {
	resp, err := i.get(t, id, attributes.String)
	if err != nil {
		return "", err
	}
	return resp.Str("value"), nil
}

func (i *Interpreter) SetStringAttribute(t interpreter.Target, id attributes.ID, v string) error {
	return i.set(t, id, attributes.String, v)
}

func (i *Interpreter) GetFloat64ArrayAttribute(t interpreter.Target, id attributes.ID) ([]float64, error) {
	resp, err := i.get(t, id, attributes.Float64Array)
	if err != nil {
		return nil, err
	}
	return resp.Float64s("value"), nil
}

func (i *Interpreter) SetFloat64ArrayAttribute(t interpreter.Target, id attributes.ID, v []float64) error {
	return i.set(t, id, attributes.Float64Array, v)
}

func (i *Interpreter) GetInt32ArrayAttribute(t interpreter.Target, id attributes.ID) ([]int32, error) {
	resp, err := i.get(t, id, attributes.Int32Array)
	if err != nil {
		return nil, err
	}
	return resp.Int32s("value_raw"), nil
}

func (i *Interpreter) SetInt32ArrayAttribute(t interpreter.Target, id attributes.ID, v []int32) error {
	return i.set(t, id, attributes.Int32Array, v)
}

func (i *Interpreter) GetUint32ArrayAttribute(t interpreter.Target, id attributes.ID) ([]uint32, error) {
	resp, err := i.get(t, id, attributes.Uint32Array)
	if err != nil {
		return nil, err
	}
	return resp.Uint32s("value"), nil
}

func (i *Interpreter) SetUint32ArrayAttribute(t interpreter.Target, id attributes.ID, v []uint32) error {
	return i.set(t, id, attributes.Uint32Array, v)
}

func (i *Interpreter) GetBytesAttribute(t interpreter.Target, id attributes.ID) ([]byte, error) {
	resp, err := i.get(t, id, attributes.Bytes)
	if err != nil {
		return nil, err
	}
	return resp.Bytes("value"), nil
}

func (i *Interpreter) SetBytesAttribute(t interpreter.Target, id attributes.ID, v []byte) error {
	return i.set(t, id, attributes.Bytes, v)
}

func (i *Interpreter) GetTimestampAttribute(t interpreter.Target, id attributes.ID) (timestamp.Time, error) {
	resp, err := i.get(t, id, attributes.Timestamp)
	if err != nil {
		return timestamp.Time{}, err
	}
	return timestamp.FromWire(resp.Timestamp("value")), nil
}

func (i *Interpreter) SetTimestampAttribute(t interpreter.Target, id attributes.ID, v timestamp.Time) error {
	return i.set(t, id, attributes.Timestamp, v.WireTime())
}

func (i *Interpreter) ResetAttribute(t interpreter.Target, id attributes.ID) error {
	_, err := i.attribute(t, id, 0, attributes.OpReset, nil)
	return err
}
