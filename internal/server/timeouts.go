package server

import "time"

const (
	readTimeout = 10 * time.Second
	// Write timeout stays generous: /state/stream holds its connection
	// open and sets per-message deadlines itself.
	writeTimeout = 0
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
