// Package scheduler drives task runs from file system events.
package scheduler

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.trai.ch/glaze/internal/core/domain"
	"go.trai.ch/glaze/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TaskRunner runs one task over its whole pattern set.
type TaskRunner interface {
	Run(ctx context.Context, root string, task *domain.TransformTask, trigger domain.Trigger) (*domain.RunReport, error)
}

// Options configures a watch session.
type Options struct {
	// Delay is the debounce window applied per task.
	Delay time.Duration
	// Immediate runs every task once before events are handled.
	Immediate bool
	// Report, when set, receives every finished run.
	Report func(*domain.RunReport)
}

// Scheduler owns the registration table of a watch session and serializes
// runs per task.
type Scheduler struct {
	runner   TaskRunner
	watcher  ports.Watcher
	resolver ports.InputResolver
	logger   ports.Logger
}

// WithRunner returns a copy of the scheduler that runs tasks with runner.
func (s *Scheduler) WithRunner(runner TaskRunner) *Scheduler {
	cp := *s
	cp.runner = runner
	return &cp
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(
	runner TaskRunner,
	watcher ports.Watcher,
	resolver ports.InputResolver,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		runner:   runner,
		watcher:  watcher,
		resolver: resolver,
		logger:   logger,
	}
}

// registration is the runtime state of one WatchRegistration.
type registration struct {
	domain.WatchRegistration

	debouncer *Debouncer

	mu      sync.Mutex
	running bool
	queued  bool
}

// session is one Watch call.
type session struct {
	s      *Scheduler
	root   string
	opts   Options
	runCtx context.Context
	regs   []*registration

	mu       sync.Mutex
	closed   bool
	inFlight sync.WaitGroup
}

// Watch registers every task of p, runs the immediate ones, then re-runs a
// task whenever a file its patterns select is created or written. It returns
// nil once ctx is cancelled and every in-flight run has finished.
func (s *Scheduler) Watch(ctx context.Context, p *domain.Pipeline, opts Options) error {
	if len(p.Tasks) == 0 {
		return domain.ErrNoTasks
	}

	sess := &session{
		s:    s,
		root: p.Root,
		opts: opts,
		// Runs are never cancelled; shutdown waits for them instead.
		runCtx: context.WithoutCancel(ctx),
	}

	for _, task := range p.Tasks {
		reg := &registration{
			WatchRegistration: domain.WatchRegistration{Task: task, Immediate: opts.Immediate},
		}
		reg.debouncer = NewDebouncer(opts.Delay, func(paths []string) {
			sess.trigger(reg, paths)
		})
		sess.regs = append(sess.regs, reg)
	}

	roots := sess.watchRoots()
	if err := s.watcher.Start(ctx, roots); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "root", p.Root)
	}
	defer func() {
		if err := s.watcher.Stop(); err != nil {
			s.logger.Error(zerr.Wrap(err, "failed to stop file watcher"))
		}
	}()

	sess.runInitial()

	s.logger.Info(fmt.Sprintf("watching %d task(s) in %s", len(sess.regs), p.Root))

	for event := range s.watcher.Events() {
		if ctx.Err() != nil {
			break
		}
		sess.handle(event)
	}

	sess.shutdown()

	return nil
}

// shutdown drops pending triggers and waits for in-flight runs.
func (sess *session) shutdown() {
	for _, reg := range sess.regs {
		reg.debouncer.Stop()
	}

	sess.mu.Lock()
	sess.closed = true
	sess.mu.Unlock()

	sess.inFlight.Wait()
}

// watchRoots collects the watch roots of every registration.
func (sess *session) watchRoots() []string {
	var roots []string
	for _, reg := range sess.regs {
		roots = append(roots, sess.s.resolver.WatchRoots(reg.Task.Patterns, sess.root)...)
	}
	slices.Sort(roots)
	return slices.Compact(roots)
}

// runInitial runs every immediate registration once, concurrently, and
// returns when all of them are done.
func (sess *session) runInitial() {
	var g errgroup.Group
	for _, reg := range sess.regs {
		if !reg.Immediate {
			continue
		}
		g.Go(func() error {
			sess.run(reg, domain.TriggerInitial)
			return nil
		})
	}
	_ = g.Wait()
}

// handle routes a create or write event to the debouncer of every
// registration whose patterns select the path.
func (sess *session) handle(event ports.WatchEvent) {
	if event.Operation != ports.OpCreate && event.Operation != ports.OpWrite {
		return
	}

	path := filepath.Clean(event.Path)
	for _, reg := range sess.regs {
		if sess.s.resolver.Matches(reg.Task.Patterns, sess.root, path) {
			reg.debouncer.Add(path)
		}
	}
}

// trigger starts a run of reg, or queues one follow-up run when reg is
// already running. Triggers arriving while a follow-up is queued fold into it.
func (sess *session) trigger(reg *registration, paths []string) {
	sess.s.logger.Debug(fmt.Sprintf("%s: %s", reg.Task.Name, describeChange(paths)))

	reg.mu.Lock()
	if reg.running {
		reg.queued = true
		reg.mu.Unlock()
		return
	}
	reg.running = true
	reg.mu.Unlock()

	sess.mu.Lock()
	if sess.closed {
		sess.mu.Unlock()
		return
	}
	sess.inFlight.Add(1)
	sess.mu.Unlock()

	go func() {
		defer sess.inFlight.Done()
		for {
			sess.run(reg, domain.TriggerChange)

			reg.mu.Lock()
			if !reg.queued {
				reg.running = false
				reg.mu.Unlock()
				return
			}
			reg.queued = false
			reg.mu.Unlock()
		}
	}()
}

// run executes one task run and reports it. Failures are logged, never returned.
func (sess *session) run(reg *registration, trigger domain.Trigger) {
	report, err := sess.s.runner.Run(sess.runCtx, sess.root, reg.Task, trigger)
	if err != nil {
		sess.s.logger.Error(err)
	}
	if report != nil && sess.opts.Report != nil {
		sess.opts.Report(report)
	}
}

func describeChange(paths []string) string {
	if len(paths) == 0 {
		return "changed"
	}
	msg := "changed " + filepath.Base(paths[0])
	if len(paths) > 1 {
		msg += fmt.Sprintf(" (+%d more)", len(paths)-1)
	}
	return msg
}
