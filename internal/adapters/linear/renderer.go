// Package linear provides a line-oriented renderer for task runs.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/glaze/internal/core/ports"
	"go.trai.ch/glaze/internal/ui/output"
	"go.trai.ch/glaze/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer. It prints one line when a run starts
// and one when it ends, prefixed with the task name.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu   sync.Mutex
	runs map[string]*runState // spanID -> run state
}

type runState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a Renderer writing to w (stderr when nil).
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		w:      w,
		output: output.New(w),
		runs:   make(map[string]*runState),
	}
}

// OnRunStart prints a run start message.
func (r *Renderer) OnRunStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs[spanID] = &runState{name: name, startTime: startTime}

	_, _ = fmt.Fprintf(r.w, "%s Starting...\n", r.prefix(name))
}

// OnRunComplete prints the run outcome with its duration and summary.
func (r *Renderer) OnRunComplete(spanID string, endTime time.Time, summary string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.runs[spanID]
	if !ok {
		return
	}
	delete(r.runs, spanID)

	duration := endTime.Sub(run.startTime).Round(time.Millisecond)
	detail := ""
	if summary != "" {
		detail = " (" + summary + ")"
	}

	if err != nil {
		symbol := output.Paint(r.output, style.Foreground(style.Red), style.Cross)
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v%s\n", r.prefix(run.name), symbol, duration, detail)
		return
	}

	symbol := output.Paint(r.output, style.Foreground(style.Green), style.Check)
	_, _ = fmt.Fprintf(r.w, "%s %s Completed in %v%s\n", r.prefix(run.name), symbol, duration, detail)
}

func (r *Renderer) prefix(name string) string {
	return r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
}
