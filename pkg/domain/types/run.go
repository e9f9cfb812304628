package types

import "github.com/google/uuid"

// NewRunID returns a new identifier for one process invocation
func NewRunID() RunID {
	return RunID(uuid.NewString())
}
