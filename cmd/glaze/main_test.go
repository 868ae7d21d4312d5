package main

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/glaze/internal/adapters/telemetry"
	"go.trai.ch/glaze/internal/app"
	"go.trai.ch/glaze/internal/core/domain"
	"go.trai.ch/glaze/internal/core/ports"
	"go.trai.ch/glaze/internal/core/ports/mocks"
	"go.trai.ch/glaze/internal/engine/pipeline"
	"go.trai.ch/glaze/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockInputResolver
	watcher  *mocks.MockWatcher
	logger   *mocks.MockLogger
}

func newTestProvider(t *testing.T) (*testDeps, ComponentProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockInputResolver(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	runner := pipeline.NewRunner(
		deps.resolver,
		mocks.NewMockFileSystem(ctrl),
		mocks.NewMockStyleCompiler(ctrl),
		mocks.NewMockScriptMinifier(ctrl),
		telemetry.NewNoOpTracer(),
		deps.logger,
	)
	sched := scheduler.NewScheduler(runner, deps.watcher, deps.resolver, deps.logger)
	// A nil renderer keeps the tests off the global tracer provider.
	application := app.New(deps.loader, runner, sched, nil, deps.logger).WithWorkingDir("/project")

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: deps.logger,
		}, func() {}, nil
	}
	return deps, provider
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	_, provider := newTestProvider(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that a startup failure is logged and exits 1.
func TestRun_ExecutionError(t *testing.T) {
	deps, provider := newTestProvider(t)

	deps.loader.EXPECT().Load("/project").Return(nil, errors.New("load failed"))
	deps.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"watch"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_BuildFailure verifies that a failed build exits 1 without logging
// the aggregated error a second time.
func TestRun_BuildFailure(t *testing.T) {
	deps, provider := newTestProvider(t)

	deps.loader.EXPECT().Load("/project").Return(domain.DefaultPipeline("/project"), nil)
	deps.resolver.EXPECT().Resolve(gomock.Any(), "/project").
		Return(nil, domain.ErrInvalidPattern).Times(2)
	// One log line per task that could not run, none for the summary error.
	deps.logger.EXPECT().Error(gomock.Any()).Times(2)

	exitCode := run(context.Background(), []string{"build"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that cancelling the context ends a watch with exit code 0.
func TestRun_Signal(t *testing.T) {
	deps, provider := newTestProvider(t)

	deps.loader.EXPECT().Load("/project").Return(domain.DefaultPipeline("/project"), nil)
	deps.resolver.EXPECT().WatchRoots(gomock.Any(), "/project").Return([]string{"/project"}).AnyTimes()
	deps.logger.EXPECT().Info(gomock.Any())

	var watchCtx context.Context
	deps.watcher.EXPECT().Start(gomock.Any(), []string{"/project"}).DoAndReturn(func(ctx context.Context, _ []string) error {
		watchCtx = ctx
		return nil
	})
	deps.watcher.EXPECT().Events().DoAndReturn(func() iter.Seq[ports.WatchEvent] {
		return func(func(ports.WatchEvent) bool) {
			<-watchCtx.Done()
		}
	})
	deps.watcher.EXPECT().Stop().Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	exitCh := make(chan int)

	go func() {
		exitCh <- run(ctx, []string{"watch", "--no-initial"}, new(bytes.Buffer), provider)
	}()

	// Wait a bit to ensure run() reaches the event loop
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case ret := <-exitCh:
		assert.Equal(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
