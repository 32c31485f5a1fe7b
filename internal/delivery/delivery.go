// Package delivery holds the transports that expose the QR code services.
package delivery

import "context"

// Delivery is a long running transport started by a binary.
type Delivery interface {
	// Serve blocks until the transport stops or fails
	Serve(ctx context.Context) error
}
