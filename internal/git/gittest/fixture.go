package gittest

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// LoadFixtureScript runs a testscript that sets up a Git repository
// and returns the directory it ran in.
// The directory is removed when the test finishes.
//
// The script has access to [CmdGit], [CmdAs] and [CmdAt]
// in addition to the testscript builtins:
//
//	git init
//	git add feature.txt
//	git commit -m 'Add feature'
//
//	-- feature.txt --
//	feature
func LoadFixtureScript(t testing.TB, script string) string {
	t.Helper()

	scriptDir := t.TempDir()
	scriptFile := filepath.Join(scriptDir, "fixture.txt")
	if err := os.WriteFile(scriptFile, []byte(script), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var (
		ft   fakeT
		dir  string
		done = make(chan struct{})
	)

	// FailNow and Skip call runtime.Goexit,
	// so the script must not run on the test goroutine.
	go func() {
		defer close(done)

		testscript.RunT(&ft, testscript.Params{
			Files:    []string{scriptFile},
			TestWork: true, // keep WorkDir for the caller
			Setup: func(e *testscript.Env) error {
				for k, v := range DefaultEnv() {
					e.Setenv(k, v)
				}
				e.Setenv("HOME", e.WorkDir)
				dir = e.WorkDir
				return nil
			},
			Cmds: map[string]func(*testscript.TestScript, bool, []string){
				"git": CmdGit,
				"as":  CmdAs,
				"at":  CmdAt,
			},
		})
	}()
	<-done

	if ft.failed || ft.skipped {
		t.Fatalf("fixture script failed:\n%s", ft.msgs.String())
	}
	if dir == "" {
		t.Fatalf("fixture script did not run")
	}

	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

// fakeT runs a testscript without creating subtests.
type fakeT struct {
	failed  bool
	skipped bool
	msgs    strings.Builder
}

var _ testscript.T = (*fakeT)(nil)

func (*fakeT) Parallel()                              {}
func (f *fakeT) Run(_ string, run func(testscript.T)) { run(f) }
func (f *fakeT) Verbose() bool                        { return false }

func (f *fakeT) FailNow() {
	f.failed = true
	runtime.Goexit()
}

func (f *fakeT) Fatal(args ...any) {
	fmt.Fprintln(&f.msgs, args...)
	f.FailNow()
}

func (f *fakeT) Log(args ...any) {
	fmt.Fprintln(&f.msgs, args...)
}

func (f *fakeT) Skip(args ...any) {
	f.skipped = true
	fmt.Fprintln(&f.msgs, args...)
	runtime.Goexit()
}
