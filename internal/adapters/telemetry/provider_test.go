package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/glaze/internal/adapters/telemetry"
	"go.trai.ch/glaze/internal/core/ports"
)

func newRecordedTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	return telemetry.NewOTelTracer("test").WithProvider(tp, "test"), sr
}

func attrMap(attrs []attribute.KeyValue) map[string]string {
	out := make(map[string]string, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value.Emit()
	}
	return out
}

func TestOTelTracer_StartAttributes(t *testing.T) {
	tracer, sr := newRecordedTracer(t)

	_, span := tracer.Start(t.Context(), "styles",
		ports.WithAttribute(ports.AttrSpanKind, ports.SpanKindRun),
		ports.WithAttribute(ports.AttrTrigger, "change"),
	)
	span.SetAttribute(ports.AttrSummary, "2 written")
	span.SetAttribute("files", 2)
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "styles", ended[0].Name())

	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, ports.SpanKindRun, attrs[ports.AttrSpanKind])
	assert.Equal(t, "change", attrs[ports.AttrTrigger])
	assert.Equal(t, "2 written", attrs[ports.AttrSummary])
	assert.Equal(t, "2", attrs["files"])
}

func TestOTelTracer_ChildSpans(t *testing.T) {
	tracer, sr := newRecordedTracer(t)

	ctx, run := tracer.Start(t.Context(), "scripts")
	_, file := tracer.Start(ctx, "_a.js")
	file.End()
	run.End()

	ended := sr.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, sr := newRecordedTracer(t)

	_, span := tracer.Start(t.Context(), "styles")
	span.RecordError(nil)
	span.RecordError(errors.New("compile failed"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "compile failed", ended[0].Status().Description)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(t.Context(), "styles", ports.WithAttribute(ports.AttrSpanKind, ports.SpanKindRun))
	assert.Equal(t, t.Context(), ctx)

	span.SetAttribute(ports.AttrSummary, "no files")
	span.RecordError(errors.New("ignored"))
	span.End()
}
