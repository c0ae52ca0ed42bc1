package main

import (
	"context"
	"fmt"

	"github.com/SarthakJariwala/panqake/internal/handler/update"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

type reparentCmd struct {
	Branch string `short:"b" placeholder:"NAME" predictor:"trackedBranches" help:"Branch to move. Defaults to the current branch."`
	NoPush bool   `help:"Don't push rebased branches"`
	Parent string `arg:"" predictor:"branches" help:"New parent of the branch"`
}

func (cmd *reparentCmd) Run(ctx context.Context, log *silog.Logger, view ui.View, s *session) error {
	branch, err := s.currentBranch(ctx, cmd.Branch)
	if err != nil {
		return err
	}

	oldParent, err := s.mutator.Reparent(ctx, branch, cmd.Parent)
	if err != nil {
		return fmt.Errorf("reparent %v: %w", branch, err)
	}
	log.Infof("%v: moved from %v onto %v", branch, oldParent, cmd.Parent)

	_, err = s.updater(view).Update(ctx, &update.Request{
		Branch: branch,
		Push:   !cmd.NoPush,
		Yes:    true,
	})
	return err
}
