// Package logtest builds loggers that write into test output.
package logtest

import (
	"github.com/SarthakJariwala/panqake/internal/silog"
	"go.abhg.dev/io/ioutil"
)

// New returns a debug-level logger attached to t.
// Messages show up only when the test fails or runs with -v.
func New(t ioutil.TestLogger) *silog.Logger {
	return silog.New(ioutil.TestLogWriter(t, ""), &silog.Options{
		Level: silog.LevelDebug,
	})
}
