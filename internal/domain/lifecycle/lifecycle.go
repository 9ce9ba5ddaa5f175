// Package lifecycle holds shared lifecycle constants for the delivery layer.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown work during fx OnStop hooks.
const DefaultTimeout = 10 * time.Second
