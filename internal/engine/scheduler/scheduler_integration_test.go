package scheduler_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glaze/internal/adapters/fs"
	"go.trai.ch/glaze/internal/adapters/watcher"
	"go.trai.ch/glaze/internal/core/domain"
	"go.trai.ch/glaze/internal/core/ports/mocks"
	"go.trai.ch/glaze/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

const (
	integrationDelay = 100 * time.Millisecond
	eventTimeout     = 5 * time.Second
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestScheduler_RealWatcher(t *testing.T) {
	root := t.TempDir()
	scssDir := filepath.Join(root, "Resources", "Public", "Scss")
	writeFile(t, filepath.Join(scssDir, "main.scss"), "a { color: red; }")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)

	runner := newFakeRunner(10 * time.Millisecond)
	s := scheduler.NewScheduler(runner, w, fs.NewResolver(), log)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- s.Watch(ctx, domain.DefaultPipeline(root), scheduler.Options{
			Delay:     integrationDelay,
			Immediate: true,
		})
	}()

	require.Eventually(t, func() bool {
		return runner.runs("styles", domain.TriggerInitial) == 1 &&
			runner.runs("scripts", domain.TriggerInitial) == 1
	}, eventTimeout, 10*time.Millisecond, "initial runs")

	// One save re-runs the owning task exactly once.
	writeFile(t, filepath.Join(scssDir, "main.scss"), "a { color: blue; }")
	require.Eventually(t, func() bool {
		return runner.runs("styles", domain.TriggerChange) == 1
	}, eventTimeout, 10*time.Millisecond, "change run after save")

	time.Sleep(5 * integrationDelay)
	assert.Equal(t, 1, runner.runs("styles", domain.TriggerChange), "one save, one run")

	// A file in a directory created after startup is picked up too.
	writeFile(t, filepath.Join(scssDir, "pages", "home-final.scss"), ".home { padding: 4px; }")
	require.Eventually(t, func() bool {
		return runner.runs("styles", domain.TriggerChange) == 2
	}, eventTimeout, 10*time.Millisecond, "change run after new directory")

	time.Sleep(5 * integrationDelay)
	assert.Equal(t, 2, runner.runs("styles", domain.TriggerChange))
	assert.Equal(t, 0, runner.runs("scripts", domain.TriggerChange), "script task is not triggered by styles")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(eventTimeout):
		t.Fatal("watch did not return after cancellation")
	}
}
