package core

import "github.com/google/uuid"

// NewSessionID generates a unique identifier for one program invocation.
// It is attached to every structured log entry so that interleaved log files
// from repeated sessions can be told apart.
func NewSessionID() string {
	return uuid.NewString()
}
