package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Span attribute keys shared by the tracer, the pipeline and the bridge.
const (
	// AttrSpanKind distinguishes task-run spans from per-file spans.
	AttrSpanKind = "glaze.span"
	// AttrTaskKind holds the task kind of a run span.
	AttrTaskKind = "glaze.task.kind"
	// AttrTrigger holds the run trigger.
	AttrTrigger = "glaze.trigger"
	// AttrSummary holds the run summary, set just before the span ends.
	AttrSummary = "glaze.summary"
	// AttrOutcome holds the outcome of a per-file span.
	AttrOutcome = "glaze.outcome"
)

// Span kinds.
const (
	SpanKindRun  = "run"
	SpanKindFile = "file"
)

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Attributes are attached to the span when it starts.
	Attributes map[string]string
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithAttribute sets a string attribute on the span at start time.
func WithAttribute(key, value string) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]string)
		}
		c.Attributes[key] = value
	}
}
