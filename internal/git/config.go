package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/xec"
)

// Config provides access to Git configuration.
type Config struct {
	log  *silog.Logger
	dir  string
	env  []string
	exec execer
}

// ConfigOptions configures a [Config].
type ConfigOptions struct {
	// Dir to run git config in.
	// Defaults to the current working directory.
	Dir string

	// Env holds extra environment variables for git.
	Env []string

	Log *silog.Logger

	exec execer
}

// NewConfig builds a [Config].
func NewConfig(opts ConfigOptions) *Config {
	if opts.exec == nil {
		opts.exec = _realExec
	}
	if opts.Log == nil {
		opts.Log = silog.Nop()
	}
	return &Config{
		log:  opts.Log,
		dir:  opts.Dir,
		env:  opts.Env,
		exec: opts.exec,
	}
}

// ConfigKey is a configuration key of the form
//
//	section.subsection.name
//
// subsection may be absent or contain dots.
// section and name are case-insensitive; subsection is not.
type ConfigKey string

// Split splits the key into section, subsection, and name.
func (k ConfigKey) Split() (section, subsection, name string) {
	idx := strings.LastIndex(string(k), ".")
	if idx == -1 {
		return "", "", string(k)
	}

	name = string(k[idx+1:])
	k = k[:idx]

	section, subsection, _ = strings.Cut(string(k), ".")
	return section, subsection, name
}

// Canonical lowercases the section and name of the key.
func (k ConfigKey) Canonical() ConfigKey {
	section, subsection, name := k.Split()

	var buf strings.Builder
	if section != "" {
		buf.WriteString(strings.ToLower(section))
		buf.WriteByte('.')
	}
	if subsection != "" {
		buf.WriteString(subsection)
		buf.WriteByte('.')
	}
	buf.WriteString(strings.ToLower(name))
	return ConfigKey(buf.String())
}

// ConfigEntry is a single key-value pair in Git configuration.
type ConfigEntry struct {
	Key   ConfigKey
	Value string
}

// ListRegexp lists configuration entries whose keys match any of the patterns.
// With no patterns, all entries are listed.
func (cfg *Config) ListRegexp(ctx context.Context, patterns ...string) iter.Seq2[ConfigEntry, error] {
	pattern := "."
	if len(patterns) > 0 {
		pattern = strings.Join(patterns, "|")
	}

	return func(yield func(ConfigEntry, error) bool) {
		cmd := newGitCmd(ctx, cfg.log, cfg.exec, "config", "--null", "--get-regexp", pattern).
			WithDir(cfg.dir).
			AppendEnv(cfg.env...)

		// With --null, entries are "key\nvalue\x00".
		for entry, err := range cmd.Scan(scanNullDelimited) {
			if err != nil {
				// git config exits 1 when nothing matched.
				if exitErr := new(xec.ExitError); errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
					return
				}
				yield(ConfigEntry{}, fmt.Errorf("git config: %w", err))
				return
			}

			key, value, ok := bytes.Cut(entry, []byte("\n"))
			if !ok {
				cfg.log.Warnf("skipping invalid config entry: %q", entry)
				continue
			}

			if !yield(ConfigEntry{Key: ConfigKey(key), Value: string(value)}, nil) {
				return
			}
		}
	}
}
