// Package app implements the application layer for glaze.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/glaze/internal/adapters/telemetry"
	"go.trai.ch/glaze/internal/core/domain"
	"go.trai.ch/glaze/internal/core/ports"
	"go.trai.ch/glaze/internal/engine/pipeline"
	"go.trai.ch/glaze/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// LogConfigurer is implemented by loggers whose format and level can be
// switched at startup.
type LogConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       *pipeline.Runner
	scheduler    *scheduler.Scheduler
	renderer     ports.Renderer
	logger       ports.Logger
	getwd        func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	runner *pipeline.Runner,
	sched *scheduler.Scheduler,
	renderer ports.Renderer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		scheduler:    sched,
		renderer:     renderer,
		logger:       log,
		getwd:        os.Getwd,
	}
}

// WithWorkingDir pins the directory configuration discovery starts from.
// This is primarily used for testing.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// Options are the global flags shared by every command.
type Options struct {
	// ConfigPath is an explicit config file; empty means discovery.
	ConfigPath string
	// JSON switches logs to JSON and replaces the run renderer with log lines.
	JSON bool
	// Verbose enables debug logs.
	Verbose bool
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Options
	// Delay overrides the configured debounce window when positive.
	Delay time.Duration
	// NoInitial skips the startup run of every task.
	NoInitial bool
}

// ConfigureLogging applies the output flags to the logger.
func (a *App) ConfigureLogging(opts Options) {
	if lc, ok := a.logger.(LogConfigurer); ok {
		lc.SetJSON(opts.JSON)
		lc.SetVerbose(opts.Verbose)
	}
}

// Watch runs every task once (unless disabled) and then re-runs a task each
// time one of its inputs is created or modified. It blocks until ctx is
// cancelled and the in-flight runs have finished.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	p, err := a.loadPipeline(opts.ConfigPath)
	if err != nil {
		return err
	}

	delay := p.Delay
	if opts.Delay > 0 {
		delay = opts.Delay
	}

	runner, shutdown := a.instrument(opts.JSON)
	defer a.shutdownTelemetry(shutdown)

	return a.scheduler.WithRunner(runner).Watch(ctx, p, scheduler.Options{
		Delay:     delay,
		Immediate: !opts.NoInitial,
		Report:    a.reporter(opts.JSON),
	})
}

// Build runs every task once, concurrently, and returns ErrBuildFailed when
// any task could not run or any file failed.
func (a *App) Build(ctx context.Context, opts Options) error {
	p, err := a.loadPipeline(opts.ConfigPath)
	if err != nil {
		return err
	}
	if len(p.Tasks) == 0 {
		return domain.ErrNoTasks
	}

	runner, shutdown := a.instrument(opts.JSON)
	defer a.shutdownTelemetry(shutdown)

	report := a.reporter(opts.JSON)
	errs := make([]error, len(p.Tasks))

	var g errgroup.Group
	for i, task := range p.Tasks {
		g.Go(func() error {
			r, err := runner.Run(ctx, p.Root, task, domain.TriggerBuild)
			if err != nil {
				// File failures are logged by the runner; a run that could
				// not start is logged here.
				a.logger.Error(err)
				errs[i] = err
				return nil
			}
			if report != nil {
				report(r)
			}
			if runErr := r.Err(); runErr != nil {
				errs[i] = zerr.With(zerr.Wrap(runErr, "task failed"), "task", task.Name)
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}
	return nil
}

// loadPipeline loads the explicit config file or discovers one from the
// working directory.
func (a *App) loadPipeline(configPath string) (*domain.Pipeline, error) {
	if configPath != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", configPath)
		}
		p, err := a.configLoader.LoadFile(abs)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		return p, nil
	}

	cwd, err := a.getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}
	p, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return p, nil
}

// instrument returns the runner to use and the telemetry shutdown hook.
// In JSON mode spans are not rendered; runs are reported as log lines.
func (a *App) instrument(jsonMode bool) (*pipeline.Runner, func(context.Context) error) {
	if jsonMode || a.renderer == nil {
		return a.runner.WithTracer(telemetry.NewNoOpTracer()), nil
	}
	// Spans started by the runner's tracer reach the renderer through the
	// bridge installed on the global provider.
	return a.runner, telemetry.Setup(a.renderer)
}

func (a *App) shutdownTelemetry(shutdown func(context.Context) error) {
	if shutdown == nil {
		return
	}
	// The run context may already be cancelled; flushing must still happen.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to shut down telemetry"))
	}
}

// reporter returns the per-run hook. Only JSON mode needs one; otherwise the
// renderer already prints every run.
func (a *App) reporter(jsonMode bool) func(*domain.RunReport) {
	if !jsonMode {
		return nil
	}
	return func(r *domain.RunReport) {
		msg := fmt.Sprintf("%s %s run finished in %s: %s",
			r.Task, r.Trigger, r.Duration().Round(time.Millisecond), r.Summary())
		if len(r.Failed()) > 0 {
			a.logger.Warn(msg)
			return
		}
		a.logger.Info(msg)
	}
}
