// Package browsertest records URLs opened during tests.
package browsertest

import (
	"fmt"
	"os"
	"sync"

	"github.com/SarthakJariwala/panqake/internal/browser"
)

// Recorder appends every URL it is asked to open to a file,
// one per line, so that test scripts can inspect them.
type Recorder struct {
	mu   sync.Mutex
	path string
}

var _ browser.Launcher = (*Recorder)(nil)

// NewRecorder builds a Recorder writing to path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// OpenURL records url.
func (r *Recorder) OpenURL(url string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("record url: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = fmt.Fprintln(f, url)
	return err
}
