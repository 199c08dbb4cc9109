// Package grpc provides a small client connection pool: one connection per
// target, safe for concurrent use.
package grpc

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

type Pool struct {
	conns       sync.Map // map[string]*grpc.ClientConn
	mu          sync.Mutex
	interceptor grpc.UnaryClientInterceptor
}

type PoolOption func(*Pool)

// WithInterceptor installs a global unary interceptor on every connection
// the pool creates (logging, metrics, auth token injection).
func WithInterceptor(interceptor grpc.UnaryClientInterceptor) PoolOption {
	return func(p *Pool) {
		p.interceptor = interceptor
	}
}

func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetConnection returns the pooled connection for target, creating it on
// first use or after a shutdown.
func (p *Pool) GetConnection(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	if v, ok := p.conns.Load(target); ok {
		conn := v.(*grpc.ClientConn)
		if conn.GetState() != connectivity.Shutdown {
			return conn, nil
		}
		p.conns.Delete(target)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Re-check: another goroutine may have created the connection while we
	// waited for the lock.
	if v, ok := p.conns.Load(target); ok {
		conn := v.(*grpc.ClientConn)
		if conn.GetState() != connectivity.Shutdown {
			return conn, nil
		}
		p.conns.Delete(target)
	}

	defaultOpts := []grpc.DialOption{
		// Plaintext: the service talks inside the cluster network.
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             time.Second,
			PermitWithoutStream: true,
		}),
	}
	if p.interceptor != nil {
		defaultOpts = append(defaultOpts, grpc.WithUnaryInterceptor(p.interceptor))
	}
	finalOpts := append(defaultOpts, opts...)

	// grpc.NewClient connects lazily; the first RPC dials.
	conn, err := grpc.NewClient(target, finalOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "create grpc client for %s", target)
	}

	p.conns.Store(target, conn)
	return conn, nil
}

// Close closes every pooled connection and reports the first error.
func (p *Pool) Close() error {
	var firstErr error
	p.conns.Range(func(key, value any) bool {
		conn := value.(*grpc.ClientConn)
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		p.conns.Delete(key)
		return true
	})
	return firstErr
}
