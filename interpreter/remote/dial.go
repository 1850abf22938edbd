package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/config"
	"github.com/KevinKickass/daqmx/internal/logging"
)

// Dial opens a client connection to a device server and waits until it is
// ready, backing off between state checks. The wait is bounded by ctx and by
// the configured dial timeout. Without options the connection is insecure.
func Dial(ctx context.Context, target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", target, err)
	}
	conn.Connect()

	op := func() error {
		state := conn.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if state == connectivity.TransientFailure || state == connectivity.Idle {
			conn.Connect()
		}
		wait, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()
		conn.WaitForStateChange(wait, state)
		if state = conn.GetState(); state == connectivity.Ready {
			return nil
		}
		return fmt.Errorf("connection to %s is %s", target, state)
	}

	b := &backoff.ExponentialBackOff{
		InitialInterval:     25 * time.Millisecond,
		RandomizationFactor: 0.,
		Multiplier:          2.,
		MaxInterval:         1 * time.Second,
		MaxElapsedTime:      config.Get().GRPCDialTimeout,
		Clock:               backoff.SystemClock}
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		conn.Close()
		return nil, &daqerr.TransportError{Code: codes.Unavailable, Message: err.Error(), Err: err}
	}
	logging.L().Debug("Connected to device server", zap.String("target", target))
	return conn, nil
}
