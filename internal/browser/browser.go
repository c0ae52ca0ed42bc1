// Package browser opens pull requests in a web browser.
package browser

import (
	"fmt"
	"io"

	"github.com/cli/browser"
)

// Launcher opens URLs.
type Launcher interface {
	OpenURL(url string) error
}

// System opens URLs with the operating system's default browser.
// Its zero value is ready to use.
type System struct {
	open func(string) error // stubbed in tests
}

var _ Launcher = (*System)(nil)

// OpenURL opens url in the default browser.
func (s *System) OpenURL(url string) error {
	open := browser.OpenURL
	if s.open != nil {
		open = s.open
	}
	if err := open(url); err != nil {
		return fmt.Errorf("open %v: %w", url, err)
	}
	return nil
}

// Printer writes URLs to W instead of opening them.
// It serves environments without a display.
type Printer struct {
	W io.Writer // required
}

var _ Launcher = (*Printer)(nil)

// OpenURL prints url on its own line.
func (p *Printer) OpenURL(url string) error {
	_, err := fmt.Fprintln(p.W, url)
	return err
}
