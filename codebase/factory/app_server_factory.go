package factory

import "context"

// AppServerFactory factory for server abstraction
type AppServerFactory interface {
	// Serve block until server stopped, error returned only on unexpected stop
	Serve() error
	Shutdown(ctx context.Context) error
	Name() string
}
