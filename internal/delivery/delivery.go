// Package delivery defines the contract every transport front-end
// (API server, worker push server) satisfies so the composition root can
// start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
