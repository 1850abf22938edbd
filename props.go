package daqmx

//go:generate go run ./internal/cmd/propgen

import (
	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/channelnames"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/timestamp"
)

// binder resolves the interpreter and attribute target of a property owner.
type binder interface {
	bind() (interpreter.Interpreter, interpreter.Target, error)
}

// accessor pairs an attribute category with its interpreter entry points.
type accessor[T any] struct {
	cat attributes.Category
	get func(interpreter.Interpreter, interpreter.Target, attributes.ID) (T, error)
	set func(interpreter.Interpreter, interpreter.Target, attributes.ID, T) error
}

var (
	boolAttr         = accessor[bool]{attributes.Bool, interpreter.Interpreter.GetBoolAttribute, interpreter.Interpreter.SetBoolAttribute}
	int32Attr        = accessor[int32]{attributes.Int32, interpreter.Interpreter.GetInt32Attribute, interpreter.Interpreter.SetInt32Attribute}
	uint32Attr       = accessor[uint32]{attributes.Uint32, interpreter.Interpreter.GetUint32Attribute, interpreter.Interpreter.SetUint32Attribute}
	uint64Attr       = accessor[uint64]{attributes.Uint64, interpreter.Interpreter.GetUint64Attribute, interpreter.Interpreter.SetUint64Attribute}
	float64Attr      = accessor[float64]{attributes.Float64, interpreter.Interpreter.GetFloat64Attribute, interpreter.Interpreter.SetFloat64Attribute}
	stringAttr       = accessor[string]{attributes.String, interpreter.Interpreter.GetStringAttribute, interpreter.Interpreter.SetStringAttribute}
	float64ArrayAttr = accessor[[]float64]{attributes.Float64Array, interpreter.Interpreter.GetFloat64ArrayAttribute, interpreter.Interpreter.SetFloat64ArrayAttribute}
	int32ArrayAttr   = accessor[[]int32]{attributes.Int32Array, interpreter.Interpreter.GetInt32ArrayAttribute, interpreter.Interpreter.SetInt32ArrayAttribute}
	uint32ArrayAttr  = accessor[[]uint32]{attributes.Uint32Array, interpreter.Interpreter.GetUint32ArrayAttribute, interpreter.Interpreter.SetUint32ArrayAttribute}
	bytesAttr        = accessor[[]byte]{attributes.Bytes, interpreter.Interpreter.GetBytesAttribute, interpreter.Interpreter.SetBytesAttribute}
	timestampAttr    = accessor[timestamp.Time]{attributes.Timestamp, interpreter.Interpreter.GetTimestampAttribute, interpreter.Interpreter.SetTimestampAttribute}
)

// annotate adds the owning task and channel names to driver errors.
func annotate(b binder, t interpreter.Target, err error) error {
	if err == nil {
		return nil
	}
	if n, ok := b.(interface{ taskName() string }); ok {
		return daqerr.WithContext(err, n.taskName(), t.Name)
	}
	return err
}

func get[T any](b binder, a accessor[T], id attributes.ID) (T, error) {
	var zero T
	if err := attributes.Check(id, a.cat, attributes.OpGet); err != nil {
		return zero, err
	}
	i, t, err := b.bind()
	if err != nil {
		return zero, err
	}
	v, err := a.get(i, t, id)
	if err != nil {
		return zero, annotate(b, t, err)
	}
	return v, nil
}

func set[T any](b binder, a accessor[T], id attributes.ID, v T) error {
	if err := attributes.Check(id, a.cat, attributes.OpSet); err != nil {
		return err
	}
	i, t, err := b.bind()
	if err != nil {
		return err
	}
	return annotate(b, t, a.set(i, t, id, v))
}

func reset(b binder, id attributes.ID) error {
	if err := attributes.Check(id, 0, attributes.OpReset); err != nil {
		return err
	}
	i, t, err := b.bind()
	if err != nil {
		return err
	}
	return annotate(b, t, i.ResetAttribute(t, id))
}

func getEnum[E ~int32](b binder, id attributes.ID) (E, error) {
	v, err := get(b, int32Attr, id)
	return E(v), err
}

func setEnum[E ~int32](b binder, id attributes.ID, v E) error {
	return set(b, int32Attr, id, int32(v))
}

func getEnums[E ~int32](b binder, id attributes.ID) ([]E, error) {
	vs, err := get(b, int32ArrayAttr, id)
	if err != nil {
		return nil, err
	}
	out := make([]E, len(vs))
	for n, v := range vs {
		out[n] = E(v)
	}
	return out, nil
}

func setEnums[E ~int32](b binder, id attributes.ID, vs []E) error {
	raw := make([]int32, len(vs))
	for n, v := range vs {
		raw[n] = int32(v)
	}
	return set(b, int32ArrayAttr, id, raw)
}

// getNames reads a flattened name list attribute and expands it.
func getNames(b binder, id attributes.ID) ([]string, error) {
	s, err := get(b, stringAttr, id)
	if err != nil {
		return nil, err
	}
	return channelnames.Unflatten(s)
}

func setNames(b binder, id attributes.ID, names []string) error {
	s, err := channelnames.Flatten(names...)
	if err != nil {
		return err
	}
	return set(b, stringAttr, id, s)
}

// getObject reads a name attribute and wraps it with the owner's
// interpreter. An empty name yields the zero value.
func getObject[T any](b binder, id attributes.ID, wrap func(interpreter.Interpreter, string) T) (T, error) {
	var zero T
	s, err := get(b, stringAttr, id)
	if err != nil || s == "" {
		return zero, err
	}
	i, _, err := b.bind()
	if err != nil {
		return zero, err
	}
	return wrap(i, s), nil
}

// getObjects reads a flattened name list attribute and wraps each name.
func getObjects[T any](b binder, id attributes.ID, wrap func(interpreter.Interpreter, string) T) ([]T, error) {
	names, err := getNames(b, id)
	if err != nil {
		return nil, err
	}
	i, _, err := b.bind()
	if err != nil {
		return nil, err
	}
	out := make([]T, len(names))
	for n, name := range names {
		out[n] = wrap(i, name)
	}
	return out, nil
}

// setScale stores a custom scale reference; nil clears it.
func setScale(b binder, id attributes.ID, s *Scale) error {
	name := ""
	if s != nil {
		name = s.name
	}
	return set(b, stringAttr, id, name)
}
