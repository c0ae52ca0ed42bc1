package main

import (
	"context"
	"fmt"

	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/text"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

type trackCmd struct {
	Parent string `short:"p" placeholder:"BRANCH" predictor:"branches" help:"Parent of the branch"`
	Branch string `arg:"" optional:"" predictor:"branches" help:"Branch to track. Defaults to the current branch."`
}

func (*trackCmd) Help() string {
	return text.Dedent(`
		Without --parent, the branch is stacked on
		one of the branches whose tip it already contains.
		You'll be asked to pick one if there are several.
	`)
}

func (cmd *trackCmd) Run(ctx context.Context, log *silog.Logger, view ui.View, s *session) error {
	branch, err := s.currentBranch(ctx, cmd.Branch)
	if err != nil {
		return err
	}

	parent := cmd.Parent
	if parent == "" {
		parent, err = cmd.pickParent(ctx, view, s, branch)
		if err != nil {
			return err
		}
	}

	if err := s.mutator.Track(ctx, branch, parent); err != nil {
		return fmt.Errorf("track %v: %w", branch, err)
	}
	log.Infof("%v: tracked with parent %v", branch, parent)
	return nil
}

func (cmd *trackCmd) pickParent(ctx context.Context, view ui.View, s *session, branch string) (string, error) {
	candidates, err := s.mutator.PotentialParents(ctx, branch)
	if err != nil {
		return "", fmt.Errorf("find parents of %v: %w", branch, err)
	}

	switch {
	case len(candidates) == 0:
		return "", fmt.Errorf("%v does not contain any other branch: use --parent", branch)
	case len(candidates) == 1:
		return candidates[0], nil
	case !ui.Interactive(view):
		return "", fmt.Errorf("%v could be stacked on any of %v: use --parent", branch, candidates)
	}

	parent := candidates[0]
	prompt := ui.NewSelect().
		WithTitle("Parent branch").
		WithDescription(fmt.Sprintf("Select the branch %v is stacked on", branch)).
		WithOptions(candidates...).
		WithValue(&parent)
	if err := ui.Run(view, prompt); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return parent, nil
}
