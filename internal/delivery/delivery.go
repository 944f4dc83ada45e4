// Package delivery contains the transports that expose the storefront core.
package delivery

import "context"

// Delivery is a transport started by the process after the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
