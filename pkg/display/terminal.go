// pkg/display/terminal.go

// Package display shows a running timer on a terminal.
package display

import (
	"fmt"
	"io"
	"time"

	"termkit/pkg/duration"
	"termkit/pkg/tracker"
)

const (
	// cursorPrevLine moves to the start of the previous line (ANSI CPL).
	cursorPrevLine = "\033[F"

	interruptedMsg = "Interrupted, exiting"
)

// Options for a Terminal.
type Options struct {
	Template string
	// FinalOnly keeps the terminal silent until the run ends.
	FinalOnly bool
	// Plain writes one line per update without escape sequences, for output
	// that is not a terminal.
	Plain bool
}

// Terminal rewrites a single line with the elapsed time on every update.
//
// Each update is printed at the start of the previous line and ends with a
// newline, so that the shell's "stopped" message on suspension lands on a
// fresh line.
type Terminal struct {
	out  io.Writer
	tmpl *duration.Template
	opts Options
}

var _ tracker.Presenter = (*Terminal)(nil)

func NewTerminal(out io.Writer, opts Options) (*Terminal, error) {
	if opts.Template == "" {
		opts.Template = duration.DefaultTemplate
	}
	tmpl, err := duration.ParseTemplate(opts.Template)
	if err != nil {
		return nil, err
	}
	return &Terminal{out: out, tmpl: tmpl, opts: opts}, nil
}

func (t *Terminal) Start() {
	if t.opts.FinalOnly || t.opts.Plain {
		return
	}
	// a blank line for the first update to overwrite
	fmt.Fprintln(t.out)
}

func (t *Terminal) Update(tick tracker.Tick) {
	if t.opts.FinalOnly {
		return
	}
	if tick.Gap && !t.opts.Plain {
		// keep the shell's resume message
		fmt.Fprintln(t.out)
	}
	t.show(tick.Elapsed)
}

func (t *Terminal) Final(elapsed time.Duration) {
	if t.opts.FinalOnly && !t.opts.Plain {
		fmt.Fprintln(t.out)
	}
	// overwrites the ^C echoed by the terminal
	t.show(elapsed)
	if !t.opts.FinalOnly {
		fmt.Fprintln(t.out, interruptedMsg)
	}
}

func (t *Terminal) show(elapsed time.Duration) {
	line := t.tmpl.Render(duration.FromStd(elapsed))
	if t.opts.Plain {
		fmt.Fprintln(t.out, line)
		return
	}
	fmt.Fprintln(t.out, cursorPrevLine+line)
}
