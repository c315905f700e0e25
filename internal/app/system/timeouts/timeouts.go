// Package timeouts provides centralized timeout values for handler
// operations.
//
// Handlers wrap every repository call in context.WithTimeout using these
// values so a slow database cannot pin a request indefinitely.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and writes
//   - Medium: list queries and aggregations
package timeouts

import "time"

const (
	// Ping is the timeout for health checks.
	Ping = 2 * time.Second
	// Short is the timeout for single-document operations.
	Short = 5 * time.Second
	// Medium is the timeout for listings and aggregations.
	Medium = 10 * time.Second
)
