package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("could not find glaze config file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidTaskName is returned when a task name contains invalid characters.
	ErrInvalidTaskName = zerr.New("invalid task name")

	// ErrInvalidTaskKind is returned when a task kind is neither styles nor scripts.
	ErrInvalidTaskKind = zerr.New("invalid task kind, expected 'styles' or 'scripts'")

	// ErrMissingSources is returned when a task declares no source patterns.
	ErrMissingSources = zerr.New("task has no source patterns")

	// ErrMissingDestination is returned when a task declares no destination directory.
	ErrMissingDestination = zerr.New("task has no destination directory")

	// ErrInvalidDelay is returned when the watch delay cannot be parsed as a duration.
	ErrInvalidDelay = zerr.New("invalid watch delay")

	// ErrNoTasks is returned when the pipeline contains no tasks.
	ErrNoTasks = zerr.New("no tasks configured")

	// ErrTaskNotFound is returned when a requested task is not part of the pipeline.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrInvalidPattern is returned when a glob pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrInputResolutionFailed is returned when source patterns cannot be resolved.
	ErrInputResolutionFailed = zerr.New("failed to resolve inputs")

	// ErrFileReadFailed is returned when a source file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read source file")

	// ErrStyleCompileFailed is returned when a style sheet fails to compile.
	ErrStyleCompileFailed = zerr.New("failed to compile style sheet")

	// ErrScriptMinifyFailed is returned when a script fails to minify.
	ErrScriptMinifyFailed = zerr.New("failed to minify script")

	// ErrOutputWriteFailed is returned when an output file cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output file")

	// ErrPrecompressFailed is returned when the brotli sidecar cannot be produced.
	ErrPrecompressFailed = zerr.New("failed to precompress output file")

	// ErrRunFailed is returned when one or more files in a task run failed.
	ErrRunFailed = zerr.New("task run failed")

	// ErrBuildFailed is returned by the build command when any task run failed.
	ErrBuildFailed = zerr.New("build failed")

	// ErrWatcherStartFailed is returned when the file system watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
