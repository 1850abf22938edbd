package daqmx

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/channelnames"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
)

type attrKey struct {
	scope attributes.Scope
	name  string
	id    attributes.ID
}

// fakeInterp records calls and serves attributes from a map. Methods it does
// not override panic through the nil embedded interface.
type fakeInterp struct {
	interpreter.Interpreter

	mu      sync.Mutex
	attrs   map[attrKey]any
	calls   []string
	cleared int
	handles uintptr

	// readK is the number of samples reads report; zero reports n.
	readK int
	// chans is the channel count multi-channel reads fill.
	chans   int
	written []any

	everyN   func(interpreter.EveryNSamplesEvent)
	done     func(interpreter.DoneEvent)
	detached map[string]int
}

func newFake() *fakeInterp {
	return &fakeInterp{attrs: make(map[attrKey]any), chans: 1, detached: make(map[string]int)}
}

func (f *fakeInterp) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeInterp) called(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeInterp) put(scope attributes.Scope, name string, id attributes.ID, v any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attrs[attrKey{scope, name, id}] = v
}

// addChannels declares the task's channels, all of one type, and makes them
// the channels to read.
func (f *fakeInterp) addChannels(kind constants.ChannelType, names ...string) {
	var all []string
	if v, ok := f.attrs[attrKey{attributes.ScopeTask, "", attributes.TaskChannels}]; ok {
		all, _ = channelnames.Unflatten(v.(string))
	}
	all = append(all, names...)
	flat := channelnames.MustFlatten(all...)
	f.put(attributes.ScopeTask, "", attributes.TaskChannels, flat)
	f.put(attributes.ScopeRead, "", attributes.ReadChannelsToRead, flat)
	f.put(attributes.ScopeRead, "", attributes.ReadNumChans, uint32(len(all)))
	f.put(attributes.ScopeWrite, "", attributes.WriteNumChans, uint32(len(all)))
	for _, n := range names {
		f.put(attributes.ScopeChannel, n, attributes.ChanType, int32(kind))
	}
	if kind == constants.DigitalOutput {
		f.put(attributes.ScopeWrite, "", attributes.WriteDigitalLinesBytesPerChan, uint32(1))
	}
	f.chans = len(all)
}

func lookup[T any](f *fakeInterp, t interpreter.Target, id attributes.ID) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	v, ok := f.attrs[attrKey{t.Scope, t.Name, id}]
	if !ok {
		return zero, daqerr.New(daqerr.InvalidAttributeValue, fmt.Sprintf("%s not set on %q", id, t.Name))
	}
	return v.(T), nil
}

func store[T any](f *fakeInterp, t interpreter.Target, id attributes.ID, v T) error {
	f.put(t.Scope, t.Name, id, v)
	f.record("set %s", id)
	return nil
}

func (f *fakeInterp) GetBoolAttribute(t interpreter.Target, id attributes.ID) (bool, error) {
	return lookup[bool](f, t, id)
}

func (f *fakeInterp) SetBoolAttribute(t interpreter.Target, id attributes.ID, v bool) error {
	return store(f, t, id, v)
}

func (f *fakeInterp) GetInt32Attribute(t interpreter.Target, id attributes.ID) (int32, error) {
	return lookup[int32](f, t, id)
}

func (f *fakeInterp) SetInt32Attribute(t interpreter.Target, id attributes.ID, v int32) error {
	return store(f, t, id, v)
}

func (f *fakeInterp) GetUint32Attribute(t interpreter.Target, id attributes.ID) (uint32, error) {
	return lookup[uint32](f, t, id)
}

func (f *fakeInterp) GetUint64Attribute(t interpreter.Target, id attributes.ID) (uint64, error) {
	return lookup[uint64](f, t, id)
}

func (f *fakeInterp) GetFloat64Attribute(t interpreter.Target, id attributes.ID) (float64, error) {
	return lookup[float64](f, t, id)
}

func (f *fakeInterp) SetFloat64Attribute(t interpreter.Target, id attributes.ID, v float64) error {
	return store(f, t, id, v)
}

func (f *fakeInterp) GetStringAttribute(t interpreter.Target, id attributes.ID) (string, error) {
	return lookup[string](f, t, id)
}

func (f *fakeInterp) SetStringAttribute(t interpreter.Target, id attributes.ID, v string) error {
	return store(f, t, id, v)
}

func (f *fakeInterp) ResetAttribute(t interpreter.Target, id attributes.ID) error {
	f.mu.Lock()
	delete(f.attrs, attrKey{t.Scope, t.Name, id})
	f.mu.Unlock()
	f.record("reset %s", id)
	return nil
}

func (f *fakeInterp) handle() interpreter.TaskHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handles++
	return interpreter.TaskHandle{Ptr: f.handles}
}

func (f *fakeInterp) CreateTask(name string) (interpreter.TaskHandle, error) {
	f.record("create %s", name)
	if name == "" {
		f.put(attributes.ScopeTask, "", attributes.TaskName, "_unnamedTask<0>")
	}
	return f.handle(), nil
}

func (f *fakeInterp) LoadTask(name string) (interpreter.TaskHandle, error) {
	f.record("load %s", name)
	return f.handle(), nil
}

func (f *fakeInterp) ClearTask(interpreter.TaskHandle) error {
	f.mu.Lock()
	f.cleared++
	f.mu.Unlock()
	f.record("clear")
	return nil
}

func (f *fakeInterp) StartTask(interpreter.TaskHandle) error {
	f.record("start")
	return nil
}

func (f *fakeInterp) StopTask(interpreter.TaskHandle) error {
	f.record("stop")
	return nil
}

func (f *fakeInterp) TaskControl(_ interpreter.TaskHandle, action constants.TaskMode) error {
	f.record("control %d", action)
	return nil
}

func (f *fakeInterp) WaitUntilTaskDone(interpreter.TaskHandle, float64) error {
	f.record("wait")
	return nil
}

func (f *fakeInterp) CreateAIVoltageChan(_ interpreter.TaskHandle, p interpreter.AIVoltageChan) error {
	f.record("ai voltage %s", p.PhysicalChannel)
	return nil
}

func (f *fakeInterp) CreateDOChan(_ interpreter.TaskHandle, p interpreter.DigitalChan) error {
	f.record("do %s", p.Lines)
	return nil
}

func (f *fakeInterp) CfgSampClkTiming(_ interpreter.TaskHandle, source string, rate float64, _ constants.Edge, mode constants.AcquisitionType, samps uint64) error {
	f.record("samp clk %g", rate)
	f.put(attributes.ScopeTiming, "", attributes.SampQuantSampMode, int32(mode))
	f.put(attributes.ScopeTiming, "", attributes.SampQuantSampPerChan, samps)
	return nil
}

// fill writes k samples of every channel at stride n: channel c sample s
// is c*100+s.
func fill[T int32 | uint8 | uint32 | float64](f *fakeInterp, n int, buf []T) int {
	k := n
	if f.readK > 0 && f.readK < n {
		k = f.readK
	}
	for c := 0; c < f.chans; c++ {
		for s := 0; s < k && c*n+s < len(buf); s++ {
			buf[c*n+s] = T(c*100 + s)
		}
	}
	return k
}

func (f *fakeInterp) ReadAnalogF64(_ interpreter.TaskHandle, n int, _ float64, _ constants.FillMode, buf []float64) (int, error) {
	f.record("read f64 %d", n)
	return fill(f, n, buf), nil
}

func (f *fakeInterp) ReadAnalogScalarF64(interpreter.TaskHandle, float64) (float64, error) {
	f.record("read scalar f64")
	return 4.5, nil
}

func (f *fakeInterp) ReadBinaryI32(_ interpreter.TaskHandle, n int, _ float64, _ constants.FillMode, buf []int32) (int, error) {
	f.record("read i32 %d", n)
	return fill(f, n, buf), nil
}

func (f *fakeInterp) ReadDigitalLines(_ interpreter.TaskHandle, n int, _ float64, _ constants.FillMode, buf []uint8) (int, int, error) {
	f.record("read lines %d", n)
	k := fill(f, n, buf)
	for i := range buf {
		buf[i] %= 2
	}
	return k, 1, nil
}

func (f *fakeInterp) ReadDigitalU32(_ interpreter.TaskHandle, n int, _ float64, _ constants.FillMode, buf []uint32) (int, error) {
	f.record("read u32 %d", n)
	return fill(f, n, buf), nil
}

func (f *fakeInterp) ReadCtrFreq(_ interpreter.TaskHandle, n int, _ float64, _ constants.FillMode, freq, duty []float64) (int, error) {
	f.record("read ctr freq %d", n)
	k := fill(f, n, freq)
	for i := range duty[:k] {
		duty[i] = 0.5
	}
	return k, nil
}

func (f *fakeInterp) ReadCounterScalarU32(interpreter.TaskHandle, float64) (uint32, error) {
	f.record("read scalar ctr u32")
	return 42, nil
}

func (f *fakeInterp) wrote(v any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.written = append(f.written, v)
}

func (f *fakeInterp) WriteAnalogF64(_ interpreter.TaskHandle, n int, autoStart bool, _ float64, _ constants.FillMode, data []float64) (int, error) {
	f.record("write f64 %d %t", n, autoStart)
	f.wrote(append([]float64(nil), data...))
	return n, nil
}

func (f *fakeInterp) WriteAnalogScalarF64(_ interpreter.TaskHandle, autoStart bool, _ float64, v float64) error {
	f.record("write scalar f64 %t", autoStart)
	f.wrote(v)
	return nil
}

func (f *fakeInterp) WriteDigitalLines(_ interpreter.TaskHandle, n int, autoStart bool, _ float64, _ constants.FillMode, data []uint8) (int, error) {
	f.record("write lines %d %t", n, autoStart)
	f.wrote(append([]uint8(nil), data...))
	return n, nil
}

func (f *fakeInterp) WriteDigitalU16(_ interpreter.TaskHandle, n int, autoStart bool, _ float64, _ constants.FillMode, data []uint16) (int, error) {
	f.record("write u16 %d %t", n, autoStart)
	f.wrote(append([]uint16(nil), data...))
	return n, nil
}

func (f *fakeInterp) WriteDigitalU32(_ interpreter.TaskHandle, n int, autoStart bool, _ float64, _ constants.FillMode, data []uint32) (int, error) {
	f.record("write u32 %d %t", n, autoStart)
	f.wrote(append([]uint32(nil), data...))
	return n, nil
}

func (f *fakeInterp) WriteCtrFreq(_ interpreter.TaskHandle, n int, autoStart bool, _ float64, _ constants.FillMode, freq, duty []float64) (int, error) {
	f.record("write ctr freq %d %t", n, autoStart)
	f.wrote([2][]float64{append([]float64(nil), freq...), append([]float64(nil), duty...)})
	return n, nil
}

func (f *fakeInterp) WriteBinaryI16(_ interpreter.TaskHandle, n int, autoStart bool, _ float64, _ constants.FillMode, data []int16) (int, error) {
	f.record("write i16 %d %t", n, autoStart)
	f.wrote(append([]int16(nil), data...))
	return n, nil
}

func (f *fakeInterp) detach(kind string) func() error {
	return func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.detached[kind]++
		return nil
	}
}

func (f *fakeInterp) RegisterEveryNSamplesEvent(_ interpreter.TaskHandle, typ constants.EveryNSamplesEventType, n uint32, cb func(interpreter.EveryNSamplesEvent)) (interpreter.Registration, error) {
	f.record("register every n %d", n)
	reg := interpreter.NewEventRegistration(f.detach("every_n"))
	f.mu.Lock()
	f.everyN = func(e interpreter.EveryNSamplesEvent) { reg.Dispatch(func() { cb(e) }) }
	f.mu.Unlock()
	return reg, nil
}

func (f *fakeInterp) RegisterDoneEvent(_ interpreter.TaskHandle, cb func(interpreter.DoneEvent)) (interpreter.Registration, error) {
	f.record("register done")
	reg := interpreter.NewEventRegistration(f.detach("done"))
	f.mu.Lock()
	f.done = func(e interpreter.DoneEvent) { reg.Dispatch(func() { cb(e) }) }
	f.mu.Unlock()
	return reg, nil
}

func (f *fakeInterp) fireEveryN(e interpreter.EveryNSamplesEvent) {
	f.mu.Lock()
	fn := f.everyN
	f.mu.Unlock()
	fn(e)
}

func (f *fakeInterp) fireDone(e interpreter.DoneEvent) {
	f.mu.Lock()
	fn := f.done
	f.mu.Unlock()
	fn(e)
}

func (f *fakeInterp) ConnectTerms(source, destination string, invert bool) error {
	f.record("connect %s %s %t", source, destination, invert)
	return nil
}

func (f *fakeInterp) CreateTableScale(name string, prescaled, scaled []float64, _ constants.UnitsPreScaled, _ string) error {
	f.record("table scale %s %d", name, len(prescaled))
	return nil
}

func (f *fakeInterp) CreatePolynomialScale(name string, forward, reverse []float64, _ constants.UnitsPreScaled, _ string) error {
	f.record("poly scale %s %d %d", name, len(forward), len(reverse))
	return nil
}

func (f *fakeInterp) ResetDevice(device string) error {
	f.record("reset device %s", device)
	return nil
}

func newFakeTask(t *testing.T, f *fakeInterp) *Task {
	t.Helper()
	task, err := NewTask("T1", WithInterpreter(f))
	require.NoError(t, err)
	t.Cleanup(func() { _ = task.Close() })
	return task
}
