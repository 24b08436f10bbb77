// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers, database pools and
// queue clients.
const DefaultTimeout = 10 * time.Second
