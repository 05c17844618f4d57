// Package delivery defines the contract served by every transport layer.
package delivery

import "context"

// Delivery is implemented by each server the process exposes.
type Delivery interface {
	// Serve blocks, serving requests until the process shuts down.
	Serve(ctx context.Context) error
}
