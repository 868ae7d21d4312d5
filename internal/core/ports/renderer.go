package ports

import "time"

// Renderer presents task runs to the user.
// It decouples telemetry collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnRunStart is called when a task run begins.
	// spanID: unique identifier for this run
	// name: task name
	// startTime: when the run started
	OnRunStart(spanID, name string, startTime time.Time)

	// OnRunComplete is called when a task run finishes.
	// summary: outcome counts of the run
	// err: nil if every file succeeded, error otherwise
	OnRunComplete(spanID string, endTime time.Time, summary string, err error)
}
