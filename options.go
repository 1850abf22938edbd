package daqmx

import (
	"fmt"
	"sync"

	"google.golang.org/grpc"

	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/interpreter"
	"github.com/KevinKickass/daqmx/interpreter/native"
	"github.com/KevinKickass/daqmx/interpreter/remote"
)

// SessionInitializationBehavior selects whether a remote task creates a new
// server session, attaches to an existing one, or either.
type SessionInitializationBehavior = remote.InitializationBehavior

const (
	InitAuto                    = remote.InitAuto
	InitInitializeServerSession = remote.InitInitializeServerSession
	InitAttachToServerSession   = remote.InitAttachToServerSession
)

// GrpcSessionOptions selects the remote transport. Conn is shared by every
// object created with these options; the caller owns and closes it.
type GrpcSessionOptions struct {
	Conn grpc.ClientConnInterface
	// SessionName names the server session when a task is created without
	// a name.
	SessionName            string
	APIKey                 string
	InitializationBehavior SessionInitializationBehavior
}

// LibraryOptions selects the native transport. An empty Path uses the
// configured or platform default library.
type LibraryOptions struct {
	Path string
}

type Option func(*options)

type options struct {
	grpc    *GrpcSessionOptions
	library *LibraryOptions
	interp  interpreter.Interpreter
	chosen  int
}

func WithGrpc(o GrpcSessionOptions) Option {
	return func(opts *options) {
		opts.grpc = &o
		opts.chosen++
	}
}

func WithLibrary(o LibraryOptions) Option {
	return func(opts *options) {
		opts.library = &o
		opts.chosen++
	}
}

// WithInterpreter uses i directly. It is meant for tests and for sharing
// one interpreter between objects.
func WithInterpreter(i interpreter.Interpreter) Option {
	return func(opts *options) {
		opts.interp = i
		opts.chosen++
	}
}

// libraries caches one native interpreter per library path.
var libraries sync.Map

func selectInterpreter(opts []Option) (interpreter.Interpreter, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.chosen > 1 {
		return nil, fmt.Errorf("only one transport option may be given: %w", daqerr.ErrInvalidArgument)
	}

	switch {
	case o.interp != nil:
		return o.interp, nil
	case o.grpc != nil:
		if o.grpc.Conn == nil {
			return nil, fmt.Errorf("grpc session options need a connection: %w", daqerr.ErrInvalidArgument)
		}
		return remote.New(o.grpc.Conn,
			remote.WithSessionName(o.grpc.SessionName),
			remote.WithAPIKey(o.grpc.APIKey),
			remote.WithInitializationBehavior(o.grpc.InitializationBehavior),
		), nil
	default:
		var path string
		if o.library != nil {
			path = o.library.Path
		}
		return libraryInterpreter(path)
	}
}

func libraryInterpreter(path string) (interpreter.Interpreter, error) {
	if i, ok := libraries.Load(path); ok {
		return i.(*native.Interpreter), nil
	}
	i, err := native.New(native.WithLibraryPath(path))
	if err != nil {
		return nil, err
	}
	actual, _ := libraries.LoadOrStore(path, i)
	return actual.(*native.Interpreter), nil
}
