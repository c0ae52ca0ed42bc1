// Package ui implements terminal prompts and the views commands write to.
package ui

import (
	"errors"
	"io"
)

// ErrPrompt indicates that we're not running in interactive mode.
var ErrPrompt = errors.New("not allowed to prompt for input")

// View is where commands post messages for the user.
// Messages go to stderr so that stdout can be piped.
type View interface {
	io.Writer
}

// InteractiveView is a [View] that can also prompt the user.
type InteractiveView interface {
	View

	// Prompt presents the fields in order
	// and returns after all of them are accepted.
	Prompt(...Field) error
}

// Interactive reports whether the given view can prompt.
func Interactive(v View) bool {
	_, ok := v.(InteractiveView)
	return ok
}

// Run prompts for the given fields.
// It returns [ErrPrompt] if the view is not interactive.
func Run(v View, fs ...Field) error {
	iv, ok := v.(InteractiveView)
	if !ok {
		return ErrPrompt
	}
	return iv.Prompt(fs...)
}

// FileView is a non-interactive view.
type FileView struct {
	W io.Writer // required
}

var _ View = (*FileView)(nil)

func (fv *FileView) Write(p []byte) (int, error) {
	return fv.W.Write(p)
}

// TerminalView posts messages to a terminal and prompts on it.
type TerminalView struct {
	R io.Reader // required
	W io.Writer // required
}

var _ InteractiveView = (*TerminalView)(nil)

func (tv *TerminalView) Write(p []byte) (int, error) {
	return tv.W.Write(p)
}

// Prompt runs a form with the given fields on the terminal.
func (tv *TerminalView) Prompt(fields ...Field) error {
	return NewForm(fields...).Run(&FormRunOptions{
		Input:  tv.R,
		Output: tv.W,
	})
}
