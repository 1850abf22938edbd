// Package remote implements the interpreter contract against the NI gRPC
// device server. Requests and responses are dynamic messages built from the
// embedded service contract, so the package carries no generated code.
package remote

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/logging"
	"github.com/KevinKickass/daqmx/internal/wire"
	"github.com/KevinKickass/daqmx/interpreter"
)

type TaskHandle = interpreter.TaskHandle

var _ interpreter.Interpreter = (*Interpreter)(nil)

// InitializationBehavior selects whether CreateTask and LoadTask create a new
// server session, attach to an existing one, or do whichever applies.
type InitializationBehavior int32

const (
	InitAuto InitializationBehavior = iota
	InitInitializeServerSession
	InitAttachToServerSession
)

var behaviorToString = map[InitializationBehavior]string{
	InitAuto:                    "auto",
	InitInitializeServerSession: "initialize",
	InitAttachToServerSession:   "attach",
}

func (b InitializationBehavior) String() string {
	if s, ok := behaviorToString[b]; ok {
		return s
	}
	return "unknown"
}

// NIErrorTrailer is the trailer key the server uses to carry a driver status
// alongside a failed RPC.
const NIErrorTrailer = "ni-error"

// APIKeyHeader is the metadata key for the server's API key.
const APIKeyHeader = "x-api-key"

type Interpreter struct {
	conn        grpc.ClientConnInterface
	sessionName string
	apiKey      string
	behavior    InitializationBehavior
	log         *zap.Logger
}

type Option func(*Interpreter)

// WithSessionName names task sessions created without an explicit name.
func WithSessionName(name string) Option {
	return func(i *Interpreter) { i.sessionName = name }
}

func WithAPIKey(key string) Option {
	return func(i *Interpreter) { i.apiKey = key }
}

func WithInitializationBehavior(b InitializationBehavior) Option {
	return func(i *Interpreter) { i.behavior = b }
}

func WithLogger(l *zap.Logger) Option {
	return func(i *Interpreter) { i.log = l }
}

// New returns an interpreter that issues calls over conn. The connection is
// shared and owned by the caller.
func New(conn grpc.ClientConnInterface, opts ...Option) *Interpreter {
	i := &Interpreter{conn: conn}
	for _, opt := range opts {
		opt(i)
	}
	if i.log == nil {
		i.log = logging.L()
	}
	i.log = i.log.With(zap.String("transport", "grpc"))
	return i
}

func (i *Interpreter) ctx() context.Context {
	ctx := context.Background()
	if i.apiKey != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, APIKeyHeader, i.apiKey)
	}
	return ctx
}

// call issues a unary RPC. build fills the request and may be nil. The
// response is returned even on error so partial results can be recovered.
func (i *Interpreter) call(method string, build func(req wire.Message)) (wire.Message, error) {
	resp, err := i.invoke(method, build)
	if err != nil {
		return resp, err
	}
	return resp, i.check(resp.Int32("status"))
}

func (i *Interpreter) invoke(method string, build func(req wire.Message)) (wire.Message, error) {
	req, md, err := wire.Request(method)
	if err != nil {
		return wire.Message{}, interpreter.NotSupported(method, "gRPC")
	}
	if build != nil {
		build(req)
	}
	resp := wire.New(md.Output())
	var trailer metadata.MD
	if err := i.conn.Invoke(i.ctx(), wire.FullMethod(method), req.Message, resp.Message, grpc.Trailer(&trailer)); err != nil {
		return resp, i.rpcError(method, err, trailer)
	}
	return resp, nil
}

// check converts a response status. Messages for nonzero codes are fetched
// from the server.
func (i *Interpreter) check(code int32) error {
	return daqerr.Check(daqerr.Code(code), i.message)
}

func (i *Interpreter) message(code daqerr.Code) string {
	resp, err := i.invoke("GetErrorString", func(req wire.Message) {
		req.Set("error_code", int32(code))
	})
	if err != nil || resp.Int32("status") < 0 {
		return ""
	}
	return resp.Str("error_string")
}

// rpcError maps a failed RPC into the error taxonomy. A driver status in the
// trailer takes precedence over the gRPC code.
func (i *Interpreter) rpcError(method string, err error, trailer metadata.MD) error {
	st, ok := status.FromError(err)
	if !ok {
		return &daqerr.TransportError{Code: codes.Unknown, Message: err.Error(), Err: err}
	}
	if vals := trailer.Get(NIErrorTrailer); len(vals) > 0 {
		if code, perr := strconv.ParseInt(vals[0], 10, 32); perr == nil && code != 0 {
			msg := st.Message()
			return daqerr.Check(daqerr.Code(code), func(daqerr.Code) string { return msg })
		}
	}
	switch st.Code() {
	case codes.AlreadyExists:
		return daqerr.New(daqerr.DuplicateTask, st.Message())
	case codes.NotFound:
		return daqerr.New(daqerr.InvalidTask, st.Message())
	case codes.Unimplemented:
		return &daqerr.FeatureNotSupportedError{Feature: method, Reason: st.Message()}
	default:
		i.log.Debug("RPC failed", zap.String("method", method), zap.Stringer("code", st.Code()), zap.String("message", st.Message()))
		return &daqerr.TransportError{Code: st.Code(), Message: st.Message(), Err: err}
	}
}

func session(h TaskHandle) func(wire.Message) {
	return func(req wire.Message) { req.SetSession("task", h.Session) }
}

// Task lifecycle.

func (i *Interpreter) CreateTask(name string) (TaskHandle, error) {
	return i.openSession("CreateTask", name)
}

func (i *Interpreter) LoadTask(name string) (TaskHandle, error) {
	return i.openSession("LoadTask", name)
}

func (i *Interpreter) openSession(method, name string) (TaskHandle, error) {
	if name == "" {
		name = i.sessionName
	}
	resp, err := i.call(method, func(req wire.Message) {
		req.Set("session_name", name).Set("initialization_behavior", int32(i.behavior))
	})
	if err != nil {
		return TaskHandle{}, err
	}
	h := TaskHandle{Session: resp.Session("task"), Attached: !resp.Bool("new_session_initialized")}
	if h.Attached {
		i.log.Info("Attached to task session", zap.String("session", h.Session))
	} else {
		i.log.Debug("Task session created", zap.String("session", h.Session), zap.String("method", method))
	}
	return h, nil
}

// ClearTask releases a session this client created. Sessions it attached to
// belong to another client and are left on the server.
func (i *Interpreter) ClearTask(h TaskHandle) error {
	if h.Attached {
		i.log.Debug("Detached from task session", zap.String("session", h.Session))
		return nil
	}
	if _, err := i.call("ClearTask", session(h)); err != nil {
		return err
	}
	i.log.Debug("Task session cleared", zap.String("session", h.Session))
	return nil
}

func (i *Interpreter) StartTask(h TaskHandle) error {
	_, err := i.call("StartTask", session(h))
	return err
}

func (i *Interpreter) StopTask(h TaskHandle) error {
	_, err := i.call("StopTask", session(h))
	return err
}

func (i *Interpreter) WaitUntilTaskDone(h TaskHandle, timeout float64) error {
	_, err := i.call("WaitUntilTaskDone", func(req wire.Message) {
		req.SetSession("task", h.Session).Set("time_to_wait", timeout)
	})
	return err
}

func (i *Interpreter) IsTaskDone(h TaskHandle) (bool, error) {
	resp, err := i.call("IsTaskDone", session(h))
	if err != nil {
		return false, err
	}
	return resp.Bool("is_task_done"), nil
}

func (i *Interpreter) TaskControl(h TaskHandle, action constants.TaskMode) error {
	_, err := i.call("TaskControl", func(req wire.Message) {
		req.SetSession("task", h.Session).Set("action_raw", int32(action))
	})
	return err
}

func (i *Interpreter) AddGlobalChansToTask(h TaskHandle, channels string) error {
	_, err := i.call("AddGlobalChansToTask", func(req wire.Message) {
		req.SetSession("task", h.Session).Set("channel_names", channels)
	})
	return err
}

func (i *Interpreter) SaveTask(h TaskHandle, saveAs, author string, opts constants.SaveOptions) error {
	_, err := i.call("SaveTask", func(req wire.Message) {
		req.SetSession("task", h.Session).
			Set("save_as", saveAs).
			Set("author", author).
			Set("options_raw", uint32(opts))
	})
	return err
}

func (i *Interpreter) SaveGlobalChan(h TaskHandle, channel, saveAs, author string, opts constants.SaveOptions) error {
	_, err := i.call("SaveGlobalChan", func(req wire.Message) {
		req.SetSession("task", h.Session).
			Set("channel_name", channel).
			Set("save_as", saveAs).
			Set("author", author).
			Set("options_raw", uint32(opts))
	})
	return err
}

func (i *Interpreter) SaveScale(scale, saveAs, author string, opts constants.SaveOptions) error {
	_, err := i.call("SaveScale", func(req wire.Message) {
		req.Set("scale_name", scale).
			Set("save_as", saveAs).
			Set("author", author).
			Set("options_raw", uint32(opts))
	})
	return err
}

func (i *Interpreter) DeleteSavedTask(name string) error {
	_, err := i.call("DeleteSavedTask", func(req wire.Message) { req.Set("task_name", name) })
	return err
}

func (i *Interpreter) DeleteSavedGlobalChan(name string) error {
	_, err := i.call("DeleteSavedGlobalChan", func(req wire.Message) { req.Set("channel_name", name) })
	return err
}

func (i *Interpreter) DeleteSavedScale(name string) error {
	_, err := i.call("DeleteSavedScale", func(req wire.Message) { req.Set("scale_name", name) })
	return err
}
