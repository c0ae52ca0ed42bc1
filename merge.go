package main

import (
	"context"

	"github.com/SarthakJariwala/panqake/internal/forge"
	"github.com/SarthakJariwala/panqake/internal/handler/merge"
	"github.com/SarthakJariwala/panqake/internal/secret"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/text"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

type mergeCmd struct {
	Method         forge.MergeStrategy `config:"mergeMethod" default:"squash" placeholder:"squash|merge|rebase" help:"How to merge the pull request"`
	Force          bool                `short:"f" help:"Merge even if checks failed or are still running"`
	NoDeleteBranch bool                `help:"Keep the branch on the remote"`
	NoUpdate       bool                `help:"Don't rebase the branch's children onto its parent"`
	NoPush         bool                `help:"Don't push rebased children"`

	Branch string `arg:"" optional:"" predictor:"trackedBranches" help:"Branch to merge. Defaults to the current branch."`
}

func (*mergeCmd) Help() string {
	return text.Dedent(`
		Merges the branch's pull request into its parent.
		Pull requests for its children are pointed at the parent first
		so that they stay open.

		Afterwards, the parent is pulled, the branch is deleted,
		and its children are rebased onto the parent.
	`)
}

func (cmd *mergeCmd) Run(
	ctx context.Context,
	log *silog.Logger,
	view ui.View,
	stash secret.Stash,
	s *session,
) error {
	branch, err := s.currentBranch(ctx, cmd.Branch)
	if err != nil {
		return err
	}

	repo, err := s.openForge(ctx, stash)
	if err != nil {
		return err
	}

	handler := &merge.Handler{
		Log:      log,
		View:     view,
		Repo:     s.repo,
		Worktree: s.wt,
		Mutator:  s.mutator,
		Forge:    repo,
		Pull:     s.syncer(view),
		Updater:  s.updater(view),
		Remote:   s.remote,
	}
	_, err = handler.Merge(ctx, &merge.Request{
		Branch:         branch,
		Strategy:       cmd.Method,
		Force:          cmd.Force,
		NoDeleteBranch: cmd.NoDeleteBranch,
		NoUpdate:       cmd.NoUpdate,
		NoPush:         cmd.NoPush,
	})
	return err
}
