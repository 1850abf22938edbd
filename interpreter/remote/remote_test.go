package remote

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/wire"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/timestamp"
)

// niError makes the fake server fail an RPC with a driver status trailer.
type niError struct {
	code int32
	msg  string
}

func (e niError) Error() string { return e.msg }

type unaryHandler func(req, resp wire.Message) error

type streamHandler func(ctx context.Context, req wire.Message, send func(wire.Message) error, newResp func() wire.Message) error

// fakeServer answers the device server contract with dynamic messages.
type fakeServer struct {
	mu       sync.Mutex
	sessions map[string]bool
	cleared  []string
	apiKeys  []string
	calls    []string
	unary    map[string]unaryHandler
	streams  map[string]streamHandler
}

func newFakeServer() *fakeServer {
	f := &fakeServer{
		sessions: map[string]bool{},
		unary:    map[string]unaryHandler{},
		streams:  map[string]streamHandler{},
	}
	f.unary["CreateTask"] = f.createTask
	f.unary["ClearTask"] = func(req, resp wire.Message) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		name := req.Session("task")
		delete(f.sessions, name)
		f.cleared = append(f.cleared, name)
		return nil
	}
	f.unary["GetErrorString"] = func(req, resp wire.Message) error {
		resp.Set("error_string", "status "+strconv.Itoa(int(req.Int32("error_code"))))
		return nil
	}
	return f
}

func (f *fakeServer) createTask(req, resp wire.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := req.Str("session_name")
	exists := f.sessions[name]
	switch InitializationBehavior(req.Enum("initialization_behavior")) {
	case InitInitializeServerSession:
		if exists {
			return status.Errorf(codes.AlreadyExists, "session %q already exists", name)
		}
	case InitAttachToServerSession:
		if !exists {
			return status.Errorf(codes.NotFound, "session %q not found", name)
		}
	}
	f.sessions[name] = true
	resp.SetSession("task", name).Set("new_session_initialized", !exists)
	return nil
}

func (f *fakeServer) called(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == method {
			n++
		}
	}
	return n
}

func (f *fakeServer) handle(_ any, stream grpc.ServerStream) error {
	full, ok := grpc.MethodFromServerStream(stream)
	if !ok {
		return status.Error(codes.Internal, "no method")
	}
	name := full[strings.LastIndex(full, "/")+1:]
	md, err := wire.Method(name)
	if err != nil {
		return status.Error(codes.Unimplemented, name)
	}

	f.mu.Lock()
	f.calls = append(f.calls, name)
	if in, ok := metadata.FromIncomingContext(stream.Context()); ok {
		f.apiKeys = append(f.apiKeys, in.Get(APIKeyHeader)...)
	}
	unary, streaming := f.unary[name], f.streams[name]
	f.mu.Unlock()

	req := wire.New(md.Input())
	if err := stream.RecvMsg(req.Message); err != nil {
		return err
	}
	newResp := func() wire.Message { return wire.New(md.Output()) }

	if md.IsStreamingServer() {
		if streaming == nil {
			return status.Error(codes.Unimplemented, name)
		}
		return streaming(stream.Context(), req, func(m wire.Message) error { return stream.SendMsg(m.Message) }, newResp)
	}
	if unary == nil {
		return status.Error(codes.Unimplemented, name)
	}
	resp := newResp()
	if err := unary(req, resp); err != nil {
		var ne niError
		if errors.As(err, &ne) {
			stream.SetTrailer(metadata.Pairs(NIErrorTrailer, strconv.Itoa(int(ne.code))))
			return status.Error(codes.Unknown, ne.msg)
		}
		return err
	}
	return stream.SendMsg(resp.Message)
}

func dialer(lis *bufconn.Listener) grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

func serve(t *testing.T, f *fakeServer) *bufconn.Listener {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnknownServiceHandler(f.handle))
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)
	return lis
}

func connect(t *testing.T, f *fakeServer, opts ...Option) *Interpreter {
	t.Helper()
	lis := serve(t, f)
	conn, err := grpc.NewClient("passthrough:///bufnet", dialer(lis),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return New(conn, opts...)
}

func TestCreateTaskAutoAttaches(t *testing.T) {
	f := newFakeServer()
	i := connect(t, f)

	first, err := i.CreateTask("T1")
	require.NoError(t, err)
	second, err := i.CreateTask("T1")
	require.NoError(t, err)

	assert.Equal(t, "T1", first.Session)
	assert.Equal(t, "T1", second.Session)
	assert.False(t, first.Attached)
	assert.True(t, second.Attached)

	require.NoError(t, i.ClearTask(second))
	assert.Zero(t, f.called("ClearTask"), "attached sessions are not cleared")

	require.NoError(t, i.ClearTask(first))
	assert.Equal(t, []string{"T1"}, f.cleared)
}

func TestCreateTaskInitializeRejectsDuplicate(t *testing.T) {
	f := newFakeServer()
	i := connect(t, f, WithInitializationBehavior(InitInitializeServerSession))

	_, err := i.CreateTask("T1")
	require.NoError(t, err)
	_, err = i.CreateTask("T1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, daqerr.DuplicateTask))
	assert.Equal(t, daqerr.KindDuplicateTask, daqerr.KindOf(err))
}

func TestAttachToMissingSession(t *testing.T) {
	f := newFakeServer()
	i := connect(t, f, WithInitializationBehavior(InitAttachToServerSession))

	_, err := i.CreateTask("missing")
	assert.Equal(t, daqerr.InvalidTask, daqerr.CodeOf(err))
}

func TestSessionNameDefault(t *testing.T) {
	f := newFakeServer()
	i := connect(t, f, WithSessionName("bench"))

	h, err := i.CreateTask("")
	require.NoError(t, err)
	assert.Equal(t, "bench", h.Session)
}

func TestAPIKeyMetadata(t *testing.T) {
	f := newFakeServer()
	i := connect(t, f, WithAPIKey("secret"))

	_, err := i.CreateTask("T1")
	require.NoError(t, err)
	assert.Contains(t, f.apiKeys, "secret")
}

func TestErrorMapping(t *testing.T) {
	f := newFakeServer()
	f.unary["StartTask"] = func(req, resp wire.Message) error {
		resp.Set("status", int32(daqerr.InvalidTask))
		return nil
	}
	f.unary["StopTask"] = func(req, resp wire.Message) error {
		return niError{code: -200279, msg: "buffer overflow"}
	}
	f.unary["IsTaskDone"] = func(req, resp wire.Message) error {
		return status.Error(codes.Unavailable, "server shutting down")
	}
	i := connect(t, f)
	h := TaskHandle{Session: "T1"}

	t.Run("response status", func(t *testing.T) {
		err := i.StartTask(h)
		var de *daqerr.DriverError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, daqerr.InvalidTask, de.Code)
		assert.Equal(t, "status -200088", de.Message)
	})

	t.Run("trailer", func(t *testing.T) {
		err := i.StopTask(h)
		var de *daqerr.DriverError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, daqerr.Code(-200279), de.Code)
		assert.Equal(t, "buffer overflow", de.Message)
	})

	t.Run("transport", func(t *testing.T) {
		_, err := i.IsTaskDone(h)
		var te *daqerr.TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, codes.Unavailable, te.Code)
		assert.Equal(t, daqerr.KindTransportFailure, daqerr.KindOf(err))
	})

	t.Run("unimplemented", func(t *testing.T) {
		err := i.ResetDevice("Dev1")
		assert.Equal(t, daqerr.KindFeatureNotSupported, daqerr.KindOf(err))
	})
}

func TestReadCopiesOnlyValidSamples(t *testing.T) {
	f := newFakeServer()
	f.unary["ReadAnalogF64"] = func(req, resp wire.Message) error {
		full := make([]float64, req.Uint32("array_size_in_samps"))
		for j := range full {
			full[j] = float64(j)
		}
		resp.Set("read_array", full).Set("samps_per_chan_read", int32(2))
		return nil
	}
	i := connect(t, f)
	h := TaskHandle{Session: "T1"}

	fresh := func() []float64 {
		buf := make([]float64, 8)
		for j := range buf {
			buf[j] = -1
		}
		return buf
	}

	buf := fresh()
	k, err := i.ReadAnalogF64(h, 4, 1, constants.GroupByChannel, buf)
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, []float64{0, 1, -1, -1, 4, 5, -1, -1}, buf)

	buf = fresh()
	k, err = i.ReadAnalogF64(h, 4, 1, constants.GroupByScanNumber, buf)
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, []float64{0, 1, 2, 3, -1, -1, -1, -1}, buf)
}

func TestReadBinaryNarrowsWireValues(t *testing.T) {
	f := newFakeServer()
	f.unary["ReadBinaryI16"] = func(req, resp wire.Message) error {
		resp.Set("read_array", []int32{-3, 7}).Set("samps_per_chan_read", int32(2))
		return nil
	}
	i := connect(t, f)

	buf := make([]int16, 2)
	k, err := i.ReadBinaryI16(TaskHandle{Session: "T1"}, 2, 1, constants.GroupByChannel, buf)
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, []int16{-3, 7}, buf)
}

func TestWriteSendsLayout(t *testing.T) {
	f := newFakeServer()
	var got []float64
	var layout int32
	f.unary["WriteAnalogF64"] = func(req, resp wire.Message) error {
		got = req.Float64s("write_array")
		layout = req.Int32("data_layout_raw")
		resp.Set("samps_per_chan_written", req.Int32("num_samps_per_chan"))
		return nil
	}
	i := connect(t, f)

	n, err := i.WriteAnalogF64(TaskHandle{Session: "T1"}, 3, true, 10, constants.GroupByScanNumber, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []float64{1, 2, 3}, got)
	assert.Equal(t, int32(constants.GroupByScanNumber), layout)
}

func TestAttributeRouting(t *testing.T) {
	f := newFakeServer()
	f.unary["GetChanAttributeDouble"] = func(req, resp wire.Message) error {
		if req.Session("task") != "T1" || req.Str("channel") != "Dev1/ai0" || req.Int32("attribute_raw") != int32(attributes.AIMax) {
			return status.Error(codes.InvalidArgument, "bad key")
		}
		resp.Set("value", 10.0)
		return nil
	}
	var stamp timestamp.WireTime
	f.unary["SetTimingAttributeTimestamp"] = func(req, resp wire.Message) error {
		stamp = req.Timestamp("value")
		return nil
	}
	f.unary["GetDeviceAttributeDouble"] = func(req, resp wire.Message) error {
		if req.Str("device_name") != "Dev1" {
			return status.Error(codes.InvalidArgument, "bad device")
		}
		resp.Set("value", 250000.0)
		return nil
	}
	i := connect(t, f)
	h := TaskHandle{Session: "T1"}

	v, err := i.GetFloat64Attribute(interpreter.ChannelTarget(h, "Dev1/ai0"), attributes.AIMax)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	rate, err := i.GetFloat64Attribute(interpreter.NamedTarget(attributes.ScopeDevice, "Dev1"), attributes.DevAIMaxSingleChanRate)
	require.NoError(t, err)
	assert.Equal(t, 250000.0, rate)

	when := timestamp.FromWire(timestamp.WireTime{Seconds: 1700000000, Nanos: 5})
	err = i.SetTimestampAttribute(interpreter.TaskTarget(attributes.ScopeTiming, h), attributes.FirstSampTimestampVal, when)
	assert.ErrorIs(t, err, daqerr.ErrAttributeReadOnly)
	assert.Zero(t, stamp.Seconds)

	_, err = i.GetInt32Attribute(interpreter.ChannelTarget(h, "Dev1/ai0"), attributes.AIMax)
	assert.ErrorIs(t, err, daqerr.ErrAttributeCategory)
}

func TestInt32AttributesUseRawMember(t *testing.T) {
	f := newFakeServer()
	f.unary["GetChanAttributeInt32"] = func(req, resp wire.Message) error {
		resp.Set("value_raw", int32(constants.RSE))
		return nil
	}
	var sent int32
	f.unary["SetChanAttributeInt32"] = func(req, resp wire.Message) error {
		sent = req.Int32("value_raw")
		return nil
	}
	i := connect(t, f)
	target := interpreter.ChannelTarget(TaskHandle{Session: "T1"}, "Dev1/ai0")

	v, err := i.GetInt32Attribute(target, attributes.AITermCfg)
	require.NoError(t, err)
	assert.Equal(t, int32(constants.RSE), v)

	require.NoError(t, i.SetInt32Attribute(target, attributes.AITermCfg, int32(constants.Differential)))
	assert.Equal(t, int32(constants.Differential), sent)
}

func TestAttributeMethodNames(t *testing.T) {
	tests := []struct {
		scope attributes.Scope
		cat   attributes.Category
		op    attributes.Op
		want  string
	}{
		{attributes.ScopeChannel, attributes.Float64, attributes.OpGet, "GetChanAttributeDouble"},
		{attributes.ScopeTask, attributes.String, attributes.OpGet, "GetTaskAttributeString"},
		{attributes.ScopeSystem, attributes.Uint32, attributes.OpGet, "GetSystemInfoAttributeUInt32"},
		{attributes.ScopeTrigger, attributes.Timestamp, attributes.OpSet, "SetTrigAttributeTimestamp"},
		{attributes.ScopeExport, attributes.Int32, attributes.OpSet, "SetExportedSignalAttributeInt32"},
		{attributes.ScopePhysicalChannel, attributes.Bytes, attributes.OpGet, "GetPhysicalChanAttributeBytes"},
		{attributes.ScopeBuffer, attributes.Uint32, attributes.OpReset, "ResetBufferAttribute"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := attributeMethod(tt.scope, tt.cat, tt.op)
			assert.Equal(t, tt.want, got)
			_, err := wire.Method(got)
			assert.NoError(t, err)
		})
	}
}

func TestWaveformsNotSupported(t *testing.T) {
	i := New(nil)
	_, err := i.ReadAnalogWaveforms(TaskHandle{Session: "T1"}, 10, 1, nil, 0)
	assert.Equal(t, daqerr.KindFeatureNotSupported, daqerr.KindOf(err))
	_, err = i.WriteDigitalWaveforms(TaskHandle{Session: "T1"}, false, 1, nil)
	assert.Equal(t, daqerr.KindFeatureNotSupported, daqerr.KindOf(err))
}

func TestEveryNSamplesEvent(t *testing.T) {
	f := newFakeServer()
	f.streams["RegisterEveryNSamplesEvent"] = func(ctx context.Context, req wire.Message, send func(wire.Message) error, newResp func() wire.Message) error {
		if err := send(newResp()); err != nil {
			return err
		}
		for j := 0; j < 3; j++ {
			ev := newResp().
				Set("every_n_samples_event_type_raw", req.Int32("every_n_samples_event_type_raw")).
				Set("n_samples", req.Uint32("n_samples"))
			if err := send(ev); err != nil {
				return err
			}
		}
		<-ctx.Done()
		return nil
	}
	i := connect(t, f)

	var mu sync.Mutex
	var got []interpreter.EveryNSamplesEvent
	reg, err := i.RegisterEveryNSamplesEvent(TaskHandle{Session: "T1"}, constants.AcquiredIntoBuffer, 100, func(ev interpreter.EveryNSamplesEvent) {
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 3
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, reg.Unregister())
	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, got, 3)
	for _, ev := range got {
		assert.Equal(t, constants.AcquiredIntoBuffer, ev.Type)
		assert.Equal(t, uint32(100), ev.Samples)
	}
}

func TestRegisterEventRejected(t *testing.T) {
	f := newFakeServer()
	f.streams["RegisterDoneEvent"] = func(ctx context.Context, req wire.Message, send func(wire.Message) error, newResp func() wire.Message) error {
		return send(newResp().Set("status", int32(daqerr.InvalidTask)))
	}
	i := connect(t, f)

	_, err := i.RegisterDoneEvent(TaskHandle{Session: "T1"}, func(interpreter.DoneEvent) {})
	assert.Equal(t, daqerr.InvalidTask, daqerr.CodeOf(err))
}

func TestCopyValid(t *testing.T) {
	src := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]uint8, 8)
	// Two channels, two bytes per sample, two samples requested, one read.
	copyValid(dst, src, 2, 1, constants.GroupByChannel, 2, same[uint8])
	assert.Equal(t, []uint8{1, 2, 0, 0, 5, 6, 0, 0}, dst)
}

func TestDial(t *testing.T) {
	lis := serve(t, newFakeServer())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := Dial(ctx, "passthrough:///bufnet", dialer(lis), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	h, err := New(conn).CreateTask("T1")
	require.NoError(t, err)
	assert.Equal(t, "T1", h.Session)
}
