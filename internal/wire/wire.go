// Package wire holds the device server's gRPC contract. The .proto sources
// are embedded and compiled once at first use; requests and responses are
// dynamic messages built from the compiled descriptors.
package wire

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/reflect/protoreflect"
)

const (
	ServiceName = "nidaqmx_grpc.NiDAQmx"
	mainFile    = "nidaqmx.proto"
)

//go:embed proto/*.proto
var protoFS embed.FS

// ErrUnknownMethod is returned for RPCs the contract does not declare.
var ErrUnknownMethod = errors.New("method not declared by the device server contract")

var (
	once    sync.Once
	service protoreflect.ServiceDescriptor
	loadErr error
)

func compile() (protoreflect.ServiceDescriptor, error) {
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			Accessor: func(path string) (io.ReadCloser, error) {
				return protoFS.Open("proto/" + path)
			},
		}),
	}
	files, err := compiler.Compile(context.Background(), mainFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", mainFile, err)
	}
	fd := files.FindFileByPath(mainFile)
	if fd == nil {
		return nil, fmt.Errorf("compiled contract is missing %s", mainFile)
	}
	svc := fd.Services().ByName(protoreflect.Name("NiDAQmx"))
	if svc == nil {
		return nil, fmt.Errorf("%s does not declare %s", mainFile, ServiceName)
	}
	return svc, nil
}

// Service returns the compiled service descriptor.
func Service() (protoreflect.ServiceDescriptor, error) {
	once.Do(func() {
		service, loadErr = compile()
	})
	return service, loadErr
}

// Method looks up an RPC by its short name.
func Method(name string) (protoreflect.MethodDescriptor, error) {
	svc, err := Service()
	if err != nil {
		return nil, err
	}
	md := svc.Methods().ByName(protoreflect.Name(name))
	if md == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownMethod)
	}
	return md, nil
}

// FullMethod is the gRPC path of an RPC.
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}
