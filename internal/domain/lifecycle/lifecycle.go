// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations
// (DB ping, HTTP server drain) registered through fx lifecycle hooks.
const DefaultTimeout = 15 * time.Second
