// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP today). Implementations
// are collected by the Fx "deliveries" group and started together.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
