// Package delivery contains the transports that expose the gateway.
package delivery

import "context"

// Delivery is a long-running transport started by the application root.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
