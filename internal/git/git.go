// Package git provides access to the Git CLI with a Git library-like
// interface.
//
// All shell-to-Git interactions in pq go through this package.
package git

import (
	"bytes"
	"context"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/xec"
)

// execer controls actual execution of Git commands.
type execer = xec.Execer

var _realExec = xec.DefaultExecer

// newGitCmd builds a git command with the given arguments.
//
// At debug level, stderr of the command is logged with a "git <subcommand>"
// prefix. Otherwise it's captured and reported only if the command fails,
// which keeps expected failures quiet.
func newGitCmd(ctx context.Context, log *silog.Logger, exec execer, args ...string) *xec.Cmd {
	prefix := "git"
	for _, arg := range args {
		if arg == "-c" || strings.Contains(arg, "=") {
			continue
		}
		if !strings.HasPrefix(arg, "-") {
			prefix += " " + arg
			break
		}
	}

	return xec.Command(ctx, log, "git", args...).
		WithExecer(exec).
		WithLogPrefix(prefix)
}

// scanNullDelimited is a bufio.SplitFunc that splits on null bytes.
func scanNullDelimited(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil // request more data
}
