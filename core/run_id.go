package core

import (
	"fmt"
	"time"
)

// RunID identifies one processing attempt for a prompt. It is derived from
// wall-clock seconds at the moment the prompt's processing begins, so two
// attempts for the same prompt within the same second would collide. That is
// accepted: the ID only namespaces an output directory, and an operator-paced
// loop cannot realistically start two runs of one prompt inside a second.
type RunID int64

// NewRunID derives a run identifier from the given moment.
func NewRunID(now time.Time) RunID {
	return RunID(now.Unix())
}

// DirName returns the run directory name for this identifier, e.g. "run_1735689600".
func (id RunID) DirName() string {
	return fmt.Sprintf("run_%d", id)
}
