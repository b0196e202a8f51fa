// Package delivery defines the contract shared by every server the
// application can run: the HTTP API and the background reminder worker.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
