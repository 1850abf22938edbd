package remote

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/internal/wire"
	"github.com/KevinKickass/daqmx/interpreter"
)

// Events arrive on server-streaming RPCs. The first response confirms the
// registration; every later one is an event, delivered in order on a single
// goroutine owned by the registration.

var eventStream = &grpc.StreamDesc{ServerStreams: true}

func (i *Interpreter) subscribe(kind, method string, build func(req wire.Message), deliver func(resp wire.Message)) (interpreter.Registration, error) {
	req, md, err := wire.Request(method)
	if err != nil {
		return nil, interpreter.NotSupported(method, "gRPC")
	}
	build(req)

	ctx, cancel := context.WithCancel(i.ctx())
	stream, err := i.conn.NewStream(ctx, eventStream, wire.FullMethod(method))
	if err != nil {
		cancel()
		return nil, i.rpcError(method, err, nil)
	}
	// A failed send surfaces its status on the first receive.
	if err := stream.SendMsg(req.Message); err == nil {
		stream.CloseSend()
	} else if !errors.Is(err, io.EOF) {
		cancel()
		return nil, i.rpcError(method, err, nil)
	}

	first := wire.New(md.Output())
	if err := stream.RecvMsg(first.Message); err != nil {
		cancel()
		return nil, i.rpcError(method, err, stream.Trailer())
	}
	if err := i.check(first.Int32("status")); err != nil {
		cancel()
		return nil, err
	}

	done := make(chan struct{})
	var reg *interpreter.EventRegistration
	reg = interpreter.NewEventRegistration(func() error {
		cancel()
		// The receive loop is the caller when a callback unregisters itself.
		if !reg.InDispatch() {
			<-done
		}
		i.log.Debug("Event unregistered", zap.String("event", kind))
		return nil
	})
	go func() {
		defer close(done)
		for {
			resp := wire.New(md.Output())
			if err := stream.RecvMsg(resp.Message); err != nil {
				if !errors.Is(err, io.EOF) && status.Code(err) != codes.Canceled {
					i.log.Warn("Event stream ended", zap.String("event", kind), zap.Error(i.rpcError(method, err, stream.Trailer())))
				}
				return
			}
			reg.Dispatch(func() { deliver(resp) })
		}
	}()
	i.log.Debug("Event registered", zap.String("event", kind), zap.String("id", reg.ID().String()))
	return reg, nil
}

func (i *Interpreter) RegisterEveryNSamplesEvent(h TaskHandle, typ constants.EveryNSamplesEventType, n uint32, cb func(interpreter.EveryNSamplesEvent)) (interpreter.Registration, error) {
	return i.subscribe("every_n_samples", "RegisterEveryNSamplesEvent",
		func(req wire.Message) {
			req.SetSession("task", h.Session).
				Set("every_n_samples_event_type_raw", int32(typ)).
				Set("n_samples", n)
		},
		func(resp wire.Message) {
			cb(interpreter.EveryNSamplesEvent{
				Type:    constants.EveryNSamplesEventType(resp.Int32("every_n_samples_event_type_raw")),
				Samples: resp.Uint32("n_samples"),
			})
		})
}

func (i *Interpreter) RegisterDoneEvent(h TaskHandle, cb func(interpreter.DoneEvent)) (interpreter.Registration, error) {
	return i.subscribe("done", "RegisterDoneEvent", session(h), func(resp wire.Message) {
		cb(interpreter.DoneEvent{Status: i.check(resp.Int32("status"))})
	})
}

func (i *Interpreter) RegisterSignalEvent(h TaskHandle, signal constants.Signal, cb func(interpreter.SignalEvent)) (interpreter.Registration, error) {
	return i.subscribe("signal", "RegisterSignalEvent",
		func(req wire.Message) {
			req.SetSession("task", h.Session).Set("signal_id_raw", int32(signal))
		},
		func(resp wire.Message) {
			cb(interpreter.SignalEvent{Signal: constants.Signal(resp.Int32("signal_id"))})
		})
}
