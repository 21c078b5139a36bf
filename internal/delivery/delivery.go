// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started by the fx app.
type Delivery interface {
	// Serve blocks, accepting requests until the process shuts down.
	Serve(ctx context.Context) error
}
