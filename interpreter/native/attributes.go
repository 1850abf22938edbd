package native

import (
	"fmt"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/timestamp"
)

// Attribute entry points are named DAQmx<Verb><Symbol> and take leading
// arguments that depend on the scope: nothing for the system, the task
// handle for task-bound scopes, the task handle and channel name for
// channels, and the object name for named scopes.

type prefixKind int

const (
	prefixNone prefixKind = iota
	prefixTask
	prefixTaskName
	prefixName
)

type prefix struct {
	kind prefixKind
	task uintptr
	name string
}

func prefixFor(scope attributes.Scope, t interpreter.Target) prefix {
	switch {
	case scope == attributes.ScopeSystem:
		return prefix{kind: prefixNone}
	case scope == attributes.ScopeChannel:
		return prefix{kind: prefixTaskName, task: t.Task.Ptr, name: t.Name}
	case scope.TaskBound():
		return prefix{kind: prefixTask, task: t.Task.Ptr}
	default:
		return prefix{kind: prefixName, name: t.Name}
	}
}

var verbs = map[attributes.Op]string{
	attributes.OpGet:   "Get",
	attributes.OpSet:   "Set",
	attributes.OpReset: "Reset",
}

// entry validates op against the metadata and resolves its entry point.
func (i *Interpreter) entry(t interpreter.Target, id attributes.ID, cat attributes.Category, op attributes.Op) (uintptr, prefix, error) {
	if err := attributes.Check(id, cat, op); err != nil {
		return 0, prefix{}, err
	}
	a, _ := attributes.Lookup(id)
	addr, err := i.lib.symbol("DAQmx" + verbs[op] + a.Symbol())
	if err != nil {
		return 0, prefix{}, err
	}
	return addr, prefixFor(a.Scope, t), nil
}

func call0(addr uintptr, p prefix) int32 {
	switch p.kind {
	case prefixNone:
		return bind[func() int32](addr)()
	case prefixTask:
		return bind[func(uintptr) int32](addr)(p.task)
	case prefixTaskName:
		return bind[func(uintptr, string) int32](addr)(p.task, p.name)
	default:
		return bind[func(string) int32](addr)(p.name)
	}
}

func call1[V any](addr uintptr, p prefix, v V) int32 {
	switch p.kind {
	case prefixNone:
		return bind[func(V) int32](addr)(v)
	case prefixTask:
		return bind[func(uintptr, V) int32](addr)(p.task, v)
	case prefixTaskName:
		return bind[func(uintptr, string, V) int32](addr)(p.task, p.name, v)
	default:
		return bind[func(string, V) int32](addr)(p.name, v)
	}
}

func call2[V1, V2 any](addr uintptr, p prefix, v1 V1, v2 V2) int32 {
	switch p.kind {
	case prefixNone:
		return bind[func(V1, V2) int32](addr)(v1, v2)
	case prefixTask:
		return bind[func(uintptr, V1, V2) int32](addr)(p.task, v1, v2)
	case prefixTaskName:
		return bind[func(uintptr, string, V1, V2) int32](addr)(p.task, p.name, v1, v2)
	default:
		return bind[func(string, V1, V2) int32](addr)(p.name, v1, v2)
	}
}

func getScalar[V any](i *Interpreter, t interpreter.Target, id attributes.ID, cat attributes.Category) (V, error) {
	var v V
	addr, p, err := i.entry(t, id, cat, attributes.OpGet)
	if err != nil {
		return v, err
	}
	return v, i.checkAt(t, call1(addr, p, &v))
}

func setScalar[V any](i *Interpreter, t interpreter.Target, id attributes.ID, cat attributes.Category, v V) error {
	addr, p, err := i.entry(t, id, cat, attributes.OpSet)
	if err != nil {
		return err
	}
	return i.checkAt(t, call1(addr, p, v))
}

func getArray[V any](i *Interpreter, t interpreter.Target, id attributes.ID, cat attributes.Category) ([]V, error) {
	addr, p, err := i.entry(t, id, cat, attributes.OpGet)
	if err != nil {
		return nil, err
	}
	v, status, err := twoCall(func(buf []V) int32 {
		return call2(addr, p, first(buf), uint32(len(buf)))
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", id, err)
	}
	if err := i.checkAt(t, status); err != nil {
		return nil, err
	}
	return v, nil
}

func setArray[V any](i *Interpreter, t interpreter.Target, id attributes.ID, cat attributes.Category, v []V) error {
	addr, p, err := i.entry(t, id, cat, attributes.OpSet)
	if err != nil {
		return err
	}
	return i.checkAt(t, call2(addr, p, first(v), uint32(len(v))))
}

// checkAt adds the channel or object name to driver errors.
func (i *Interpreter) checkAt(t interpreter.Target, status int32) error {
	err := i.check(status)
	if err == nil || t.Name == "" {
		return err
	}
	if t.Scope == attributes.ScopeChannel {
		return daqerr.WithContext(err, "", t.Name)
	}
	return err
}

func (i *Interpreter) GetBoolAttribute(t interpreter.Target, id attributes.ID) (bool, error) {
	v, err := getScalar[uint32](i, t, id, attributes.Bool)
	return v != 0, err
}

func (i *Interpreter) SetBoolAttribute(t interpreter.Target, id attributes.ID, v bool) error {
	return setScalar(i, t, id, attributes.Bool, bool32(v))
}

func (i *Interpreter) GetInt32Attribute(t interpreter.Target, id attributes.ID) (int32, error) {
	return getScalar[int32](i, t, id, attributes.Int32)
}

func (i *Interpreter) SetInt32Attribute(t interpreter.Target, id attributes.ID, v int32) error {
	return setScalar(i, t, id, attributes.Int32, v)
}

func (i *Interpreter) GetUint32Attribute(t interpreter.Target, id attributes.ID) (uint32, error) {
	return getScalar[uint32](i, t, id, attributes.Uint32)
}

func (i *Interpreter) SetUint32Attribute(t interpreter.Target, id attributes.ID, v uint32) error {
	return setScalar(i, t, id, attributes.Uint32, v)
}

func (i *Interpreter) GetUint64Attribute(t interpreter.Target, id attributes.ID) (uint64, error) {
	return getScalar[uint64](i, t, id, attributes.Uint64)
}

func (i *Interpreter) SetUint64Attribute(t interpreter.Target, id attributes.ID, v uint64) error {
	return setScalar(i, t, id, attributes.Uint64, v)
}

func (i *Interpreter) GetFloat64Attribute(t interpreter.Target, id attributes.ID) (float64, error) {
	return getScalar[float64](i, t, id, attributes.Float64)
}

func (i *Interpreter) SetFloat64Attribute(t interpreter.Target, id attributes.ID, v float64) error {
	return setScalar(i, t, id, attributes.Float64, v)
}

func (i *Interpreter) GetStringAttribute(t interpreter.Target, id attributes.ID) (string, error) {
	b, err := getArray[byte](i, t, id, attributes.String)
	if err != nil {
		return "", err
	}
	return cString(b), nil
}

func (i *Interpreter) SetStringAttribute(t interpreter.Target, id attributes.ID, v string) error {
	addr, p, err := i.entry(t, id, attributes.String, attributes.OpSet)
	if err != nil {
		return err
	}
	return i.checkAt(t, call1(addr, p, v))
}

func (i *Interpreter) GetFloat64ArrayAttribute(t interpreter.Target, id attributes.ID) ([]float64, error) {
	return getArray[float64](i, t, id, attributes.Float64Array)
}

func (i *Interpreter) SetFloat64ArrayAttribute(t interpreter.Target, id attributes.ID, v []float64) error {
	return setArray(i, t, id, attributes.Float64Array, v)
}

func (i *Interpreter) GetInt32ArrayAttribute(t interpreter.Target, id attributes.ID) ([]int32, error) {
	return getArray[int32](i, t, id, attributes.Int32Array)
}

func (i *Interpreter) SetInt32ArrayAttribute(t interpreter.Target, id attributes.ID, v []int32) error {
	return setArray(i, t, id, attributes.Int32Array, v)
}

func (i *Interpreter) GetUint32ArrayAttribute(t interpreter.Target, id attributes.ID) ([]uint32, error) {
	return getArray[uint32](i, t, id, attributes.Uint32Array)
}

func (i *Interpreter) SetUint32ArrayAttribute(t interpreter.Target, id attributes.ID, v []uint32) error {
	return setArray(i, t, id, attributes.Uint32Array, v)
}

func (i *Interpreter) GetBytesAttribute(t interpreter.Target, id attributes.ID) ([]byte, error) {
	return getArray[byte](i, t, id, attributes.Bytes)
}

func (i *Interpreter) SetBytesAttribute(t interpreter.Target, id attributes.ID, v []byte) error {
	return setArray(i, t, id, attributes.Bytes, v)
}

func (i *Interpreter) GetTimestampAttribute(t interpreter.Target, id attributes.ID) (timestamp.Time, error) {
	v, err := getScalar[absTime](i, t, id, attributes.Timestamp)
	if err != nil {
		return timestamp.Time{}, err
	}
	return timestamp.FromAbs(timestamp.AbsTime{MSB: v.MSB, LSB: v.LSB}), nil
}

func (i *Interpreter) SetTimestampAttribute(t interpreter.Target, id attributes.ID, v timestamp.Time) error {
	a := v.AbsTime()
	return setScalar(i, t, id, attributes.Timestamp, absTime{LSB: a.LSB, MSB: a.MSB})
}

func (i *Interpreter) ResetAttribute(t interpreter.Target, id attributes.ID) error {
	addr, p, err := i.entry(t, id, 0, attributes.OpReset)
	if err != nil {
		return err
	}
	return i.checkAt(t, call0(addr, p))
}
