// Package gittest builds throwaway Git repositories for tests.
package gittest

import (
	"maps"
	"os/exec"
	"slices"
	"strconv"
	"strings"
	"testing"
)

// DefaultConfig is the Git configuration applied to every test repository.
func DefaultConfig() Config {
	return Config{
		"init.defaultBranch":  "main",
		"core.autocrlf":       "false",
		"advice.detachedHead": "false",
		"commit.gpgSign":      "false",
	}
}

// Config is a set of Git configuration values.
type Config map[string]string

// EnvMap reports environment variables that apply these configuration
// values to any Git command, without touching the user's gitconfig.
func (c Config) EnvMap() map[string]string {
	env := make(map[string]string, 2*len(c)+1)
	for n, k := range slices.Sorted(maps.Keys(c)) {
		idx := strconv.Itoa(n)
		env["GIT_CONFIG_KEY_"+idx] = k
		env["GIT_CONFIG_VALUE_"+idx] = c[k]
	}
	env["GIT_CONFIG_COUNT"] = strconv.Itoa(len(c))
	return env
}

// DefaultEnv is the environment used for Git commands run by tests:
// the default configuration and a fixed identity.
func DefaultEnv() map[string]string {
	env := DefaultConfig().EnvMap()
	env["GIT_CONFIG_NOSYSTEM"] = "1"
	env["GIT_AUTHOR_NAME"] = "Test"
	env["GIT_AUTHOR_EMAIL"] = "test@example.com"
	env["GIT_COMMITTER_NAME"] = "Test"
	env["GIT_COMMITTER_EMAIL"] = "test@example.com"
	return env
}

// Setenv applies [DefaultEnv] to the current test.
// HOME is pointed at a temporary directory
// so the user's global configuration never leaks in.
func Setenv(t testing.TB) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	for k, v := range DefaultEnv() {
		t.Setenv(k, v)
	}
}

// Git runs a git command in dir and returns its trimmed stdout.
// The test fails if the command fails.
//
// Call [Setenv] first to get a deterministic environment.
func Git(t testing.TB, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = string(exitErr.Stderr)
		}
		t.Fatalf("git %v: %v\n%s", strings.Join(args, " "), err, stderr)
	}
	return strings.TrimSpace(string(out))
}
