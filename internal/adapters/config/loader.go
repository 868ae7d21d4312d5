// Package config provides the glaze.yaml configuration loader.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/glaze/internal/core/domain"
	"go.trai.ch/glaze/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load walks up from cwd looking for glaze.yaml. Without one, the default
// pipeline rooted at cwd is returned.
func (l *Loader) Load(cwd string) (*domain.Pipeline, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		l.Logger.Debug(fmt.Sprintf("no %s found above %s, using defaults", domain.ConfigFileName, cwd))
		return domain.DefaultPipeline(filepath.Clean(cwd)), nil
	}

	return l.LoadFile(configPath)
}

// LoadFile reads the pipeline from an explicit config file.
func (l *Loader) LoadFile(configPath string) (*domain.Pipeline, error) {
	var glazefile Glazefile
	if err := readAndUnmarshalYAML(configPath, &glazefile); err != nil {
		return nil, err
	}

	l.Logger.Debug("loaded config " + configPath)

	pipeline := &domain.Pipeline{
		Root:  resolveRoot(configPath, glazefile.Root),
		Delay: domain.DefaultDelay,
	}

	if glazefile.Delay != "" {
		delay, err := time.ParseDuration(glazefile.Delay)
		if err != nil || delay < 0 {
			return nil, zerr.With(domain.ErrInvalidDelay, "delay", glazefile.Delay)
		}
		pipeline.Delay = delay
	}

	if glazefile.Tasks == nil {
		pipeline.Tasks = domain.DefaultPipeline(pipeline.Root).Tasks
		return pipeline, nil
	}

	if len(glazefile.Tasks) == 0 {
		return nil, zerr.With(domain.ErrNoTasks, "config", configPath)
	}

	// Sort names so runs and logs are deterministic.
	names := make([]string, 0, len(glazefile.Tasks))
	for name := range glazefile.Tasks {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		task, err := buildTask(name, glazefile.Tasks[name])
		if err != nil {
			return nil, zerr.With(err, "config", configPath)
		}
		pipeline.Tasks = append(pipeline.Tasks, task)
	}

	return pipeline, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// resolveRoot resolves the project root relative to the config file directory.
func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from discovery or an explicit flag
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return zerr.With(domain.ErrConfigNotFound, "path", configPath)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return nil
}

// validateTaskName rejects empty names and names containing ':'.
func validateTaskName(name string) error {
	if strings.TrimSpace(name) == "" {
		return zerr.With(domain.ErrInvalidTaskName, "task_name", name)
	}
	if strings.Contains(name, ":") {
		err := zerr.With(domain.ErrInvalidTaskName, "invalid_character", ":")
		return zerr.With(err, "task_name", name)
	}
	return nil
}

// buildTask validates a TaskDTO and converts it into a domain.TransformTask.
// An omitted kind is taken from the task name when the name is a kind.
func buildTask(name string, dto *TaskDTO) (*domain.TransformTask, error) {
	if err := validateTaskName(name); err != nil {
		return nil, err
	}
	if dto == nil {
		dto = &TaskDTO{}
	}

	kind := domain.TaskKind(dto.Kind)
	if kind == "" {
		kind = domain.TaskKind(name)
	}
	if !kind.Valid() {
		err := zerr.With(domain.ErrInvalidTaskKind, "kind", dto.Kind)
		return nil, zerr.With(err, "task", name)
	}

	src := slices.DeleteFunc(slices.Clone(dto.Src), func(s string) bool {
		return strings.TrimSpace(s) == ""
	})
	if len(src) == 0 {
		return nil, zerr.With(domain.ErrMissingSources, "task", name)
	}

	if strings.TrimSpace(dto.Dest) == "" {
		return nil, zerr.With(domain.ErrMissingDestination, "task", name)
	}

	task := &domain.TransformTask{
		Name:        name,
		Kind:        kind,
		Patterns:    domain.NewPatternSet(src...),
		Dest:        filepath.Clean(dto.Dest),
		Precompress: dto.Precompress,
	}

	switch {
	case dto.Rename != nil:
		task.Rename = domain.Rename{
			Dirname:  dto.Rename.Dirname,
			Prefix:   dto.Rename.Prefix,
			Basename: dto.Rename.Basename,
			Suffix:   dto.Rename.Suffix,
			Extname:  dto.Rename.Extname,
		}
	case kind == domain.KindScripts:
		task.Rename = domain.Rename{Extname: domain.MinifiedScriptExt}
	}

	return task, nil
}
