// Package delivery holds the entry points that drive the engine: the HTTP
// API, the push worker and the background sweeps.
package delivery

import "context"

// Delivery is a long-running entry point started by main and stopped through fx.Lifecycle
type Delivery interface {
	Serve(ctx context.Context) error
}
