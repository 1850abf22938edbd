package wire

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/KevinKickass/daqmx/timestamp"
)

// Message is a dynamic message addressed by field name. Naming a field the
// message does not declare is a programming error and panics, as dynamicpb
// does for mismatched descriptors.
type Message struct {
	*dynamicpb.Message
}

func New(md protoreflect.MessageDescriptor) Message {
	return Message{dynamicpb.NewMessage(md)}
}

// Request returns an empty request for the named RPC.
func Request(method string) (Message, protoreflect.MethodDescriptor, error) {
	md, err := Method(method)
	if err != nil {
		return Message{}, nil, err
	}
	return New(md.Input()), md, nil
}

func (m Message) field(name string) protoreflect.FieldDescriptor {
	fd := m.Descriptor().Fields().ByName(protoreflect.Name(name))
	if fd == nil {
		panic(fmt.Sprintf("wire: %s has no field %q", m.Descriptor().FullName(), name))
	}
	return fd
}

// Has reports whether the message declares the field.
func (m Message) Has(name string) bool {
	return m.Descriptor().Fields().ByName(protoreflect.Name(name)) != nil
}

// Set assigns a scalar, slice or nested message to the named field and
// returns m for chaining.
func (m Message) Set(name string, v any) Message {
	fd := m.field(name)
	switch x := v.(type) {
	case Message:
		m.Message.Set(fd, protoreflect.ValueOfMessage(x.Message))
	case bool:
		m.Message.Set(fd, protoreflect.ValueOfBool(x))
	case int32:
		if fd.Kind() == protoreflect.EnumKind {
			m.Message.Set(fd, protoreflect.ValueOfEnum(protoreflect.EnumNumber(x)))
		} else {
			m.Message.Set(fd, protoreflect.ValueOfInt32(x))
		}
	case uint32:
		m.Message.Set(fd, protoreflect.ValueOfUint32(x))
	case uint64:
		m.Message.Set(fd, protoreflect.ValueOfUint64(x))
	case float64:
		m.Message.Set(fd, protoreflect.ValueOfFloat64(x))
	case string:
		m.Message.Set(fd, protoreflect.ValueOfString(x))
	case []byte:
		m.Message.Set(fd, protoreflect.ValueOfBytes(x))
	case []float64:
		setList(m, fd, x, protoreflect.ValueOfFloat64)
	case []int32:
		setList(m, fd, x, protoreflect.ValueOfInt32)
	case []uint32:
		setList(m, fd, x, protoreflect.ValueOfUint32)
	case timestamp.WireTime:
		ts := New(fd.Message()).Set("seconds", x.Seconds).Set("nanos", x.Nanos)
		m.Message.Set(fd, protoreflect.ValueOfMessage(ts.Message))
	case int64:
		m.Message.Set(fd, protoreflect.ValueOfInt64(x))
	default:
		panic(fmt.Sprintf("wire: unsupported value %T for %s", v, fd.FullName()))
	}
	return m
}

func setList[T any](m Message, fd protoreflect.FieldDescriptor, xs []T, conv func(T) protoreflect.Value) {
	list := m.Message.NewField(fd).List()
	for _, x := range xs {
		list.Append(conv(x))
	}
	m.Message.Set(fd, protoreflect.ValueOfList(list))
}

// SetSession sets a session field to the named session.
func (m Message) SetSession(name, session string) Message {
	fd := m.field(name)
	s := New(fd.Message()).Set("name", session)
	m.Message.Set(fd, protoreflect.ValueOfMessage(s.Message))
	return m
}

func (m Message) get(name string) protoreflect.Value { return m.Message.Get(m.field(name)) }

func (m Message) Bool(name string) bool     { return m.get(name).Bool() }
func (m Message) Int32(name string) int32   { return int32(m.get(name).Int()) }
func (m Message) Int64(name string) int64   { return m.get(name).Int() }
func (m Message) Uint32(name string) uint32 { return uint32(m.get(name).Uint()) }
func (m Message) Uint64(name string) uint64 { return m.get(name).Uint() }
func (m Message) Float64(name string) float64 {
	return m.get(name).Float()
}
func (m Message) Str(name string) string   { return m.get(name).String() }
func (m Message) Bytes(name string) []byte { return m.get(name).Bytes() }

// Enum returns an enum field's number.
func (m Message) Enum(name string) int32 { return int32(m.get(name).Enum()) }

func (m Message) Float64s(name string) []float64 {
	return listOf(m.get(name).List(), func(v protoreflect.Value) float64 { return v.Float() })
}

func (m Message) Int32s(name string) []int32 {
	return listOf(m.get(name).List(), func(v protoreflect.Value) int32 { return int32(v.Int()) })
}

func (m Message) Uint32s(name string) []uint32 {
	return listOf(m.get(name).List(), func(v protoreflect.Value) uint32 { return uint32(v.Uint()) })
}

func listOf[T any](l protoreflect.List, conv func(protoreflect.Value) T) []T {
	out := make([]T, l.Len())
	for i := range out {
		out[i] = conv(l.Get(i))
	}
	return out
}

// Session returns the name held by a session field.
func (m Message) Session(name string) string {
	return m.Sub(name).Str("name")
}

// Sub returns a nested message field.
func (m Message) Sub(name string) Message {
	fd := m.field(name)
	if !m.Message.Has(fd) {
		return New(fd.Message())
	}
	v := m.Message.Get(fd).Message()
	if dm, ok := v.(*dynamicpb.Message); ok {
		return Message{dm}
	}
	out := New(fd.Message())
	proto.Merge(out.Message, v.Interface())
	return out
}

// Timestamp returns a google.protobuf.Timestamp field.
func (m Message) Timestamp(name string) timestamp.WireTime {
	ts := m.Sub(name)
	return timestamp.WireTime{Seconds: ts.Int64("seconds"), Nanos: ts.Int32("nanos")}
}
