// Package output builds termenv outputs that honour NO_COLOR.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	// NoColorEnv is the environment variable that disables colour output.
	NoColorEnv = "NO_COLOR"
	// CIEnv marks a CI environment, where output is never coloured.
	CIEnv = "CI"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected terminal
// profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv(NoColorEnv) != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Interactive reports whether w is a terminal and the process is not running in CI.
func Interactive(w io.Writer) bool {
	if ci := os.Getenv(CIEnv); ci == "true" || ci == "1" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// New creates a termenv.Output for w. A nil writer means stderr. Writers
// that are not interactive get plain output.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	profile := ColorProfile()
	if !Interactive(w) {
		profile = termenv.Ascii
	}

	opts = append(opts,
		termenv.WithProfile(profile),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Paint renders s in the given hex colour using out's profile.
func Paint(out *termenv.Output, hex, s string) string {
	return out.String(s).Foreground(out.Color(hex)).String()
}
