package main

import (
	"context"
	"strings"
	"time"

	"github.com/SarthakJariwala/panqake/internal/git"
	"github.com/SarthakJariwala/panqake/internal/state"
	"github.com/SarthakJariwala/panqake/internal/state/storage"
	"github.com/SarthakJariwala/panqake/internal/text"
	"go.abhg.dev/komplete"
)

type shellCmd struct {
	Completion shellCompletionCmd `cmd:"" help:"Generate shell completion script"`
}

type shellCompletionCmd struct {
	*komplete.Command `embed:""`
}

func (*shellCompletionCmd) Help() string {
	return text.Dedent(`
		To set up shell completion, eval the output of this command
		from your shell's rc file.
		For example:

			# bash
			eval "$(pq shell completion bash)"

			# zsh
			eval "$(pq shell completion zsh)"

			# fish
			eval "$(pq shell completion fish)"

		If shell name is not provided, the current shell is guessed
		using a heuristic.
	`)
}

func predictBranches(args komplete.Args) []string {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	repo, err := git.Open(ctx, "", git.OpenOptions{})
	if err != nil {
		return nil
	}

	branches, err := repo.ListBranches(ctx)
	if err != nil {
		return nil
	}
	return filterPrefix(branches, args.Last)
}

func predictTrackedBranches(args komplete.Args) []string {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	repo, err := git.Open(ctx, "", git.OpenOptions{})
	if err != nil {
		return nil
	}

	path, err := storage.DefaultFilePath()
	if err != nil {
		return nil
	}

	records, err := state.NewStore(storage.NewFileBackend(storage.FileConfig{Path: path}), nil).
		Load(ctx, repo.RepoID())
	if err != nil {
		return nil
	}
	return filterPrefix(records.Names(), args.Last)
}

func filterPrefix(names []string, prefix string) []string {
	var out []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
