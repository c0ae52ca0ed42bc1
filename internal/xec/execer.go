package xec

import "os/exec"

// ExitError reports a command that exited with a non-zero status.
type ExitError = exec.ExitError

//go:generate mockgen -destination=mocks_test.go -package=xec . Execer

// Execer performs the process operations of a [Cmd].
// Tests replace it to avoid spawning processes.
type Execer interface {
	Output(*exec.Cmd) ([]byte, error)
	Run(*exec.Cmd) error
	Start(*exec.Cmd) error
	Wait(*exec.Cmd) error
	Kill(*exec.Cmd) error
}

// DefaultExecer is the Execer used by new commands.
var DefaultExecer Execer = osExecer{}

type osExecer struct{}

func (osExecer) Output(cmd *exec.Cmd) ([]byte, error) {
	return cmd.Output()
}

func (osExecer) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

func (osExecer) Start(cmd *exec.Cmd) error {
	return cmd.Start()
}

func (osExecer) Wait(cmd *exec.Cmd) error {
	return cmd.Wait()
}

func (osExecer) Kill(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
