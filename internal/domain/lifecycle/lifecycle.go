// Package lifecycle holds shared settings for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single start or stop hook may take.
const DefaultTimeout = 10 * time.Second
