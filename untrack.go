package main

import (
	"context"
	"fmt"

	"github.com/SarthakJariwala/panqake/internal/silog"
)

type untrackCmd struct {
	Branch string `arg:"" optional:"" predictor:"trackedBranches" help:"Branch to stop tracking. Defaults to the current branch."`
}

func (cmd *untrackCmd) Run(ctx context.Context, log *silog.Logger, s *session) error {
	branch, err := s.currentBranch(ctx, cmd.Branch)
	if err != nil {
		return err
	}

	g, err := s.mutator.Graph(ctx)
	if err != nil {
		return err
	}
	parent, _ := g.ParentOf(branch)

	relinked, err := s.mutator.Untrack(ctx, branch)
	if err != nil {
		return fmt.Errorf("untrack %v: %w", branch, err)
	}

	log.Infof("%v: no longer tracked", branch)
	if len(relinked) > 0 {
		log.Infof("Moved %v onto %v", relinked, parent)
	}
	return nil
}
