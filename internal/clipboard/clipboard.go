// Package clipboard provides the write-text capability behind the copy
// buttons of the custom domain dialog.
package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// System writes to the local OS clipboard.
type System struct{}

func (System) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// OSC52 asks the terminal on the other end of w to set its clipboard.
// It is the only option for sessions served over SSH.
type OSC52 struct {
	w    io.Writer
	mode string
}

// NewOSC52 wraps the sequence for tmux or screen when term says so.
func NewOSC52(w io.Writer, term string) *OSC52 {
	mode := ""
	switch {
	case os.Getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		mode = "tmux"
	case strings.HasPrefix(term, "screen"):
		mode = "screen"
	}
	return &OSC52{w: w, mode: mode}
}

func (o *OSC52) WriteText(text string) error {
	seq := osc52.New(text)
	switch o.mode {
	case "tmux":
		seq = seq.Tmux()
	case "screen":
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(o.w)
	return err
}

// Func adapts a plain function.
type Func func(text string) error

func (f Func) WriteText(text string) error { return f(text) }

type Writer interface {
	WriteText(text string) error
}

// Chain tries each writer in order and stops at the first success.
type Chain []Writer

func (c Chain) WriteText(text string) error {
	var errs []error
	for _, w := range c {
		err := w.WriteText(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return errors.New("no clipboard available")
	}
	return errors.Join(errs...)
}
