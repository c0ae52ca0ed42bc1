package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

type storeCmd struct {
	Show storeShowCmd `cmd:"" aliases:"s" help:"Show where branch metadata is kept and what it holds"`
}

type storeShowCmd struct {
	Format string `short:"f" enum:"text,json,yaml" default:"text" help:"Output format: text, json, or yaml"`
}

// storeSummary is the output of 'pq store show'.
type storeSummary struct {
	Path     string                    `json:"path" yaml:"path"`
	Exists   bool                      `json:"exists" yaml:"exists"`
	Size     int64                     `json:"size" yaml:"size"`
	Modified time.Time                 `json:"modified,omitzero" yaml:"modified,omitempty"`
	Repo     string                    `json:"repo" yaml:"repo"`
	Branches map[string]map[string]any `json:"branches" yaml:"branches"`
}

func (cmd *storeShowCmd) Run(kctx *kong.Context, s *session) error {
	summary, err := readStoreSummary(s.storePath, s.store.RepoID())
	if err != nil {
		return err
	}

	switch cmd.Format {
	case "json":
		enc := json.NewEncoder(kctx.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case "yaml":
		enc := yaml.NewEncoder(kctx.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			return err
		}
		return enc.Close()
	default:
		return summary.writeText(kctx.Stdout, time.Now())
	}
}

// readStoreSummary reads the records for repoID straight from the file,
// keeping fields this version of pq does not know about.
func readStoreSummary(path, repoID string) (*storeSummary, error) {
	summary := storeSummary{
		Path:     path,
		Repo:     repoID,
		Branches: make(map[string]map[string]any),
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &summary, nil
		}
		return nil, fmt.Errorf("stat store: %w", err)
	}
	summary.Exists = true
	summary.Size = info.Size()
	summary.Modified = info.ModTime()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%v: not valid JSON", path)
	}

	gjson.ParseBytes(data).ForEach(func(key, repo gjson.Result) bool {
		if key.String() != repoID {
			return true
		}
		repo.ForEach(func(branch, record gjson.Result) bool {
			fields, ok := record.Value().(map[string]any)
			if !ok {
				fields = map[string]any{"invalid": record.Raw}
			}
			summary.Branches[branch.String()] = fields
			return true
		})
		return false
	})
	return &summary, nil
}

func (s *storeSummary) writeText(w io.Writer, now time.Time) error {
	if !s.Exists {
		_, err := fmt.Fprintf(w, "Store: %v (not created yet)\nRepository: %v\n", s.Path, s.Repo)
		return err
	}

	_, _ = fmt.Fprintf(w, "Store: %v\n", s.Path)
	_, _ = fmt.Fprintf(w, "Size: %v\n", humanize.Bytes(uint64(s.Size)))
	_, _ = fmt.Fprintf(w, "Modified: %v\n", humanize.RelTime(s.Modified, now, "ago", "from now"))
	_, _ = fmt.Fprintf(w, "Repository: %v\n", s.Repo)

	if len(s.Branches) == 0 {
		_, err := fmt.Fprintln(w, "No tracked branches")
		return err
	}

	_, _ = fmt.Fprintf(w, "Branches (%v):\n", humanize.Comma(int64(len(s.Branches))))
	for _, name := range slices.Sorted(maps.Keys(s.Branches)) {
		parent, _ := s.Branches[name]["parent"].(string)
		if parent == "" {
			parent = "(none)"
		}
		if _, err := fmt.Fprintf(w, "  %v -> %v\n", name, parent); err != nil {
			return err
		}
	}
	return nil
}
