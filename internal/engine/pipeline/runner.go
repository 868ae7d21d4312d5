// Package pipeline runs transform tasks: resolve inputs, transform each
// file and write the outputs.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"go.trai.ch/glaze/internal/core/domain"
	"go.trai.ch/glaze/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner executes one TransformTask over its whole PatternSet.
type Runner struct {
	resolver ports.InputResolver
	fs       ports.FileSystem
	styles   ports.StyleCompiler
	scripts  ports.ScriptMinifier
	tracer   ports.Tracer
	logger   ports.Logger

	limit int
	now   func() time.Time
}

// NewRunner creates a new Runner with the given dependencies.
func NewRunner(
	resolver ports.InputResolver,
	fs ports.FileSystem,
	styles ports.StyleCompiler,
	scripts ports.ScriptMinifier,
	tracer ports.Tracer,
	logger ports.Logger,
) *Runner {
	return &Runner{
		resolver: resolver,
		fs:       fs,
		styles:   styles,
		scripts:  scripts,
		tracer:   tracer,
		logger:   logger,
		limit:    runtime.NumCPU(),
		now:      time.Now,
	}
}

// WithTracer returns a copy of the runner reporting to tracer.
func (r *Runner) WithTracer(tracer ports.Tracer) *Runner {
	cp := *r
	cp.tracer = tracer
	return &cp
}

// Run resolves the task's patterns against root and processes every match.
// A failed file is recorded in the report and never stops the others. The
// returned error is only set when the inputs could not be resolved.
func (r *Runner) Run(
	ctx context.Context,
	root string,
	task *domain.TransformTask,
	trigger domain.Trigger,
) (*domain.RunReport, error) {
	report := &domain.RunReport{
		Task:    task.Name,
		Trigger: trigger,
		Started: r.now(),
	}

	ctx, span := r.tracer.Start(ctx, task.Name,
		ports.WithAttribute(ports.AttrSpanKind, ports.SpanKindRun),
		ports.WithAttribute(ports.AttrTaskKind, string(task.Kind)),
		ports.WithAttribute(ports.AttrTrigger, string(trigger)),
	)
	defer span.End()

	matches, err := r.resolver.Resolve(task.Patterns, root)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrInputResolutionFailed.Error()), "task", task.Name)
		report.Finished = r.now()
		span.SetAttribute(ports.AttrSummary, "inputs unresolved")
		span.RecordError(err)
		return report, err
	}

	r.logger.Debug(fmt.Sprintf("%s: %d input(s) matched", task.Name, len(matches)))

	dest := task.Dest
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(root, dest)
	}

	// Each goroutine owns one slot, so results keep the resolver's order.
	report.Results = make([]domain.FileResult, len(matches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for i, match := range matches {
		g.Go(func() error {
			report.Results[i] = r.processFile(gctx, task, dest, match)
			return nil
		})
	}
	_ = g.Wait()

	report.Finished = r.now()
	span.SetAttribute(ports.AttrSummary, report.Summary())
	if runErr := report.Err(); runErr != nil {
		span.RecordError(runErr)
	}

	return report, nil
}

func (r *Runner) processFile(
	ctx context.Context,
	task *domain.TransformTask,
	dest string,
	match domain.Match,
) domain.FileResult {
	ctx, span := r.tracer.Start(ctx, filepath.Base(match.Path),
		ports.WithAttribute(ports.AttrSpanKind, ports.SpanKindFile),
	)
	defer span.End()

	result := r.transform(ctx, task, dest, match)
	span.SetAttribute(ports.AttrOutcome, string(result.Outcome))

	switch result.Outcome {
	case domain.OutcomeFailed:
		result.Err = zerr.With(zerr.With(zerr.Wrap(result.Err, "failed to process file"), "task", task.Name), "file", match.Path)
		span.RecordError(result.Err)
		r.logger.Error(result.Err)
	case domain.OutcomeSkipped:
		r.logger.Debug(fmt.Sprintf("%s: skipped partial %s", task.Name, match.Path))
	default:
		r.logger.Debug(fmt.Sprintf("%s: %s %s", task.Name, result.Outcome, result.Output))
	}

	return result
}

func (r *Runner) transform(
	ctx context.Context,
	task *domain.TransformTask,
	dest string,
	match domain.Match,
) domain.FileResult {
	result := domain.FileResult{Source: match.Path}
	file := &domain.File{Path: match.Path, Base: match.Base}

	// Style partials are only reachable through imports.
	if task.Kind == domain.KindStyles && file.IsPartial() {
		result.Outcome = domain.OutcomeSkipped
		return result
	}

	contents, err := r.fs.ReadFile(match.Path)
	if err != nil {
		result.Outcome, result.Err = domain.OutcomeFailed, err
		return result
	}
	file.Contents = contents
	result.InputSize = len(contents)

	var (
		out []byte
		rel string
	)

	switch task.Kind {
	case domain.KindStyles:
		rel = task.Rename.Apply(domain.ReplaceExt(file.Relative(), domain.StyleExt))
		if len(bytes.TrimSpace(contents)) > 0 {
			out, err = r.styles.Compile(ctx, file)
		}
	case domain.KindScripts:
		rel = task.Rename.Apply(file.Relative())
		out, err = r.scripts.Minify(ctx, file)
	default:
		err = zerr.With(domain.ErrInvalidTaskKind, "kind", string(task.Kind))
	}
	if err != nil {
		result.Outcome, result.Err = domain.OutcomeFailed, err
		return result
	}

	result.Output = filepath.Join(dest, rel)
	result.OutputSize = len(out)

	outcome, err := r.fs.WriteFile(result.Output, out, ports.WriteOptions{Precompress: task.Precompress})
	if err != nil {
		result.Outcome, result.Err = domain.OutcomeFailed, err
		return result
	}
	result.Outcome = outcome

	return result
}
