package pipeline

import "github.com/google/uuid"

// NewRunID returns a fresh opaque identifier for correlating one
// MergeResults invocation across log lines. It carries no weight inside
// the algorithm itself — a caller that never generates one still gets a
// fully deterministic pipeline — it exists purely for callers (the CLI,
// an embedding service) that want to tie their own log output to a
// specific run, the same way session/manager.go stamps each recording
// session with a uuid for its own log lines.
func NewRunID() string {
	return uuid.NewString()
}
