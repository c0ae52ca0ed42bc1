// Package xec wraps os/exec so that every external command
// pq runs goes through one place.
//
// Stderr of a command is handled as follows:
//
//   - if the logger is at debug level,
//     each line is logged with the prefix "$name: " (e.g. "git rebase: ")
//   - otherwise it is buffered and joined into the returned error
//     if the command fails
package xec

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"os/exec"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/silog"
	"go.abhg.dev/io/ioutil"
)

var _osEnviron = os.Environ

// Cmd is an external command being prepared or run.
type Cmd struct {
	cmd     *exec.Cmd
	log     *silog.Logger
	prefix  string
	_execer Execer

	// Wraps an error with captured output.
	wrap func(error) error
}

// Command builds a Cmd that runs name with args.
//
// ctx controls the lifetime of the process.
// log receives stderr at debug level; it may be nil.
func Command(ctx context.Context, log *silog.Logger, name string, args ...string) *Cmd {
	if log == nil {
		log = silog.Nop()
	}
	c := &Cmd{
		cmd:     exec.CommandContext(ctx, name, args...),
		log:     log,
		prefix:  name,
		_execer: DefaultExecer,
	}
	c.cmd.Env = _osEnviron()

	var stderr io.Writer
	stderr, c.wrap = c.outputWriter("stderr")
	c.cmd.Stderr = stderr
	return c
}

// WithExecer sets the Execer used to run the command.
func (c *Cmd) WithExecer(execer Execer) *Cmd {
	c._execer = execer
	return c
}

func (c *Cmd) execer() Execer {
	if c._execer != nil {
		return c._execer
	}
	return DefaultExecer
}

// Args returns the arguments passed to the command,
// not including the command name itself.
func (c *Cmd) Args() []string {
	return c.cmd.Args[1:]
}

// WithArgs replaces the arguments passed to the command.
func (c *Cmd) WithArgs(args ...string) *Cmd {
	c.cmd.Args = append([]string{c.cmd.Args[0]}, args...)
	return c
}

// WithLogPrefix changes the prefix used for log messages from this command.
func (c *Cmd) WithLogPrefix(prefix string) *Cmd {
	c.prefix = prefix
	return c
}

// WithDir sets the working directory for the command.
func (c *Cmd) WithDir(dir string) *Cmd {
	c.cmd.Dir = dir
	return c
}

// Dir reports the working directory of the command.
func (c *Cmd) Dir() string {
	return c.cmd.Dir
}

// WithStdout redirects the command's stdout to the given writer.
func (c *Cmd) WithStdout(w io.Writer) *Cmd {
	c.cmd.Stdout = w
	return c
}

// WithStderr sends stderr to w instead of the logger or the error.
func (c *Cmd) WithStderr(w io.Writer) *Cmd {
	c.cmd.Stderr = w
	c.wrap = func(err error) error { return err }
	return c
}

// WithStdin supplies the command's stdin from the given reader.
func (c *Cmd) WithStdin(r io.Reader) *Cmd {
	c.cmd.Stdin = r
	return c
}

// WithStdinString supplies the command's stdin from the given string.
func (c *Cmd) WithStdinString(s string) *Cmd {
	return c.WithStdin(strings.NewReader(s))
}

// CaptureStdout treats stdout like stderr:
// it's logged at debug level or surfaced in the error.
func (c *Cmd) CaptureStdout() *Cmd {
	stdout, wrap := c.outputWriter("stdout")
	c.cmd.Stdout = stdout
	oldWrap := c.wrap
	c.wrap = func(err error) error {
		return wrap(oldWrap(err))
	}
	return c
}

// AppendEnv adds KEY=VALUE pairs to the command's environment.
func (c *Cmd) AppendEnv(env ...string) *Cmd {
	c.cmd.Env = append(c.cmd.Env, env...)
	return c
}

// Run runs the command and waits for it to finish.
func (c *Cmd) Run() error {
	return c.wrap(c.execer().Run(c.cmd))
}

// Start starts the command without waiting for it.
func (c *Cmd) Start() error {
	return c.wrap(c.execer().Start(c.cmd))
}

// Wait waits for a command started with Start.
func (c *Cmd) Wait() error {
	return c.wrap(c.execer().Wait(c.cmd))
}

// Kill kills a command started with Start.
func (c *Cmd) Kill() error {
	return c.execer().Kill(c.cmd)
}

// Output runs the command and returns its stdout.
func (c *Cmd) Output() ([]byte, error) {
	out, err := c.execer().Output(c.cmd)
	return out, c.wrap(err)
}

// OutputChomp is like Output but drops a single trailing newline.
func (c *Cmd) OutputChomp() (string, error) {
	out, err := c.Output()
	out, _ = bytes.CutSuffix(out, []byte{'\n'})
	return string(out), err
}

// Lines runs the command and yields its stdout line by line.
func (c *Cmd) Lines() iter.Seq2[[]byte, error] {
	return c.Scan(bufio.ScanLines)
}

// Scan runs the command and yields stdout split by split.
//
// The yielded slice is reused between iterations.
// If iteration stops early, the process is killed.
// A non-zero exit is reported as the final error.
func (c *Cmd) Scan(split bufio.SplitFunc) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		out, err := c.cmd.StdoutPipe()
		if err != nil {
			yield(nil, fmt.Errorf("pipe stdout: %w", err))
			return
		}

		if err := c.Start(); err != nil {
			yield(nil, fmt.Errorf("start: %w", err))
			return
		}

		var finished bool
		defer func() {
			if !finished {
				_ = c.Kill()
				_ = c.execer().Wait(c.cmd)
			}
		}()

		scanner := bufio.NewScanner(out)
		scanner.Split(split)
		for scanner.Scan() {
			if !yield(scanner.Bytes(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, fmt.Errorf("scan: %w", err))
			return
		}

		finished = true
		if err := c.Wait(); err != nil {
			yield(nil, fmt.Errorf("wait: %w", err))
		}
	}
}

// outputWriter returns a writer for one output stream of the command,
// and a function that attaches what was written to a returned error.
func (c *Cmd) outputWriter(stream string) (io.Writer, func(error) error) {
	if c.log.Level() <= silog.LevelDebug {
		w, flush := ioutil.LineWriter(func(line []byte) {
			c.log.Debug(c.prefix + ": " + string(line))
		})
		return w, func(err error) error {
			flush()
			return err
		}
	}

	var buf bytes.Buffer
	return &buf, func(err error) error {
		if err == nil {
			return nil
		}

		output := bytes.TrimSpace(buf.Bytes())
		if len(output) == 0 {
			return err
		}
		return errors.Join(err, fmt.Errorf("%s:\n%s", stream, output))
	}
}
