// Package lifecycle holds timing defaults shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as DB pings and publisher shutdown.
const DefaultTimeout = 10 * time.Second
