// Package config reads pq settings from git-config.
//
// Settings live under the "pq" section and may be set at any level
// git-config supports: system, user, repository, or worktree.
//
//	[pq]
//	remote = upstream
//	trunk = main
//	trunk = develop
//	[pq "shorthand"]
//	sm = submit --draft
package config

import (
	"context"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/git"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/alecthomas/kong"
	"github.com/buildkite/shellwords"
)

const (
	_configTag           = "config"
	_section             = "pq"
	_shorthandSubsection = "shorthand"
)

// GitConfigLister provides access to git-config output.
type GitConfigLister interface {
	ListRegexp(context.Context, ...string) iter.Seq2[git.ConfigEntry, error]
}

var _ GitConfigLister = (*git.Config)(nil)

// Config is the pq configuration.
// It implements [kong.Resolver] to fill flags tagged with `config:"key"`
// from the git-config key "pq.<key>".
//
//	type submitCmd struct {
//		Draft bool `config:"submit.draft"`
//	}
//
// Flags passed on the command line take precedence.
// For single-valued flags, the last configured value wins.
// Slice flags receive every configured value.
type Config struct {
	items      map[git.ConfigKey][]string
	shorthands map[string][]string
}

var _ kong.Resolver = (*Config)(nil)

// Options specifies options for [Load].
type Options struct {
	Log *silog.Logger
}

// Load reads the pq section from git-config.
func Load(ctx context.Context, lister GitConfigLister, opts Options) (*Config, error) {
	if opts.Log == nil {
		opts.Log = silog.Nop()
	}

	items := make(map[git.ConfigKey][]string)
	shorthands := make(map[string][]string)
	for entry, err := range lister.ListRegexp(ctx, `^`+_section+`\.`) {
		if err != nil {
			return nil, fmt.Errorf("list configuration: %w", err)
		}

		key := entry.Key.Canonical()
		section, subsection, name := key.Split()
		if section != _section {
			continue
		}

		if subsection == _shorthandSubsection {
			longform, err := shellwords.SplitPosix(entry.Value)
			if err != nil {
				opts.Log.Warn("Skipping shorthand with invalid value",
					"shorthand", name,
					"value", entry.Value,
					"error", err)
				continue
			}
			shorthands[name] = longform
			continue
		}

		items[key] = append(items[key], entry.Value)
	}

	return &Config{
		items:      items,
		shorthands: shorthands,
	}, nil
}

// Values returns all configured values for "pq.<key>".
func (c *Config) Values(key string) []string {
	return c.items[git.ConfigKey(_section+"."+key).Canonical()]
}

// ExpandShorthand returns the long form of a user-defined shorthand.
func (c *Config) ExpandShorthand(name string) ([]string, bool) {
	args, ok := c.shorthands[name]
	return args, ok
}

// Shorthands returns the sorted names of user-defined shorthands.
func (c *Config) Shorthands() []string {
	return slices.Sorted(maps.Keys(c.shorthands))
}

// Validate implements kong.Resolver.
// Unknown keys are allowed.
func (*Config) Validate(*kong.Application) error { return nil }

// Resolve implements kong.Resolver.
func (c *Config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	k := flag.Tag.Get(_configTag)
	if k == "" {
		return nil, nil
	}

	key := git.ConfigKey(_section + "." + k).Canonical()
	values := c.items[key]
	switch len(values) {
	case 0:
		return nil, nil

	case 1:
		return values[0], nil

	default:
		if flag.IsSlice() {
			if flag.Tag.Sep == -1 {
				return nil, fmt.Errorf("key %q has multiple values but no separator is defined", key)
			}
			return kong.JoinEscaped(values, flag.Tag.Sep), nil
		}
		return values[len(values)-1], nil
	}
}

// AliasShorthands builds a shorthand for every nested command
// whose ancestors all have aliases, by joining their first aliases.
// For example, "store (st) show (s)" yields "sts".
func AliasShorthands(app *kong.Application) (map[string][]string, error) {
	shorthands := make(map[string][]string)
	for _, n := range app.Leaves(false) {
		if n.Type != kong.CommandNode {
			continue
		}

		var fragments []string
		for c := n; c != nil && c.Type == kong.CommandNode; c = c.Parent {
			if len(c.Aliases) == 0 {
				fragments = nil
				break
			}
			fragments = append(fragments, c.Aliases[0])
		}
		if len(fragments) < 2 {
			continue
		}

		slices.Reverse(fragments)
		short := strings.Join(fragments, "")
		if other, ok := shorthands[short]; ok {
			return nil, fmt.Errorf("shorthand %q for %v is already used by %v", short, n.Path(), other)
		}
		shorthands[short] = fragments
	}
	return shorthands, nil
}

// ExpandArgs replaces a leading shorthand in args.
// User-defined shorthands take precedence over builtin.
func (c *Config) ExpandArgs(args []string, builtin map[string][]string) []string {
	if len(args) == 0 {
		return args
	}

	long, ok := c.ExpandShorthand(args[0])
	if !ok {
		long, ok = builtin[args[0]]
	}
	if !ok {
		return args
	}
	return slices.Replace(slices.Clone(args), 0, 1, long...)
}
