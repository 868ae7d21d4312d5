package domain

import "time"

// TaskKind selects the transform chain of a task.
type TaskKind string

const (
	// KindStyles compiles style sheets to compressed CSS.
	KindStyles TaskKind = "styles"
	// KindScripts minifies scripts and renames them.
	KindScripts TaskKind = "scripts"
)

// Valid reports whether k is a known task kind.
func (k TaskKind) Valid() bool {
	return k == KindStyles || k == KindScripts
}

// TransformTask turns the files selected by Patterns into outputs under Dest.
// It carries no state between runs.
type TransformTask struct {
	Name        string
	Kind        TaskKind
	Patterns    PatternSet
	Dest        string
	Rename      Rename
	Precompress bool
}

// WatchRegistration binds a task to the watch driver.
type WatchRegistration struct {
	Task *TransformTask
	// Immediate runs the task once at startup, before any file system event.
	Immediate bool
}

// Pipeline is the loaded configuration: a project root and its tasks.
type Pipeline struct {
	Root  string
	Delay time.Duration
	Tasks []*TransformTask
}

// Task returns the task with the given name.
func (p *Pipeline) Task(name string) (*TransformTask, bool) {
	for _, t := range p.Tasks {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// DefaultPipeline returns the built-in pipeline rooted at root: one style
// task and one script task over the conventional extension resource paths.
func DefaultPipeline(root string) *Pipeline {
	return &Pipeline{
		Root:  root,
		Delay: DefaultDelay,
		Tasks: []*TransformTask{
			{
				Name:     DefaultStyleTaskName,
				Kind:     KindStyles,
				Patterns: NewPatternSet(DefaultStyleSource, DefaultStyleFinal),
				Dest:     DefaultStyleDest,
			},
			{
				Name:     DefaultScriptTask,
				Kind:     KindScripts,
				Patterns: NewPatternSet(DefaultScriptSource),
				Dest:     DefaultScriptDest,
				Rename:   Rename{Extname: MinifiedScriptExt},
			},
		},
	}
}
