// Package delivery defines the entry points through which the outside
// world reaches the application, such as HTTP servers and push workers.
package delivery

import "context"

// Delivery is a long-running delivery mechanism, typically a server.
// Implementations block inside Serve until the context is cancelled or a
// fatal error occurs.
type Delivery interface {
	Serve(ctx context.Context) error
}
