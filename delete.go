package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/SarthakJariwala/panqake/internal/mutate"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

type deleteCmd struct {
	Force  bool   `short:"f" help:"Delete the branch even if it has unmerged commits"`
	Yes    bool   `short:"y" help:"Don't ask for confirmation"`
	Branch string `arg:"" predictor:"trackedBranches" help:"Branch to delete"`
}

func (cmd *deleteCmd) Run(ctx context.Context, log *silog.Logger, view ui.View, s *session) error {
	g, err := s.mutator.Graph(ctx)
	if err != nil {
		return err
	}
	children := g.ChildrenOf(cmd.Branch)

	if ui.Interactive(view) && !cmd.Yes {
		desc := "This cannot be undone"
		if len(children) > 0 {
			desc = fmt.Sprintf("%v will be moved onto its parent", children)
		}
		confirm := true
		prompt := ui.NewConfirm().
			WithTitle(fmt.Sprintf("Delete %v?", cmd.Branch)).
			WithDescription(desc).
			WithValue(&confirm)
		if err := ui.Run(view, prompt); err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		if !confirm {
			return errors.New("delete aborted")
		}
	}

	resp, err := s.mutator.Delete(ctx, mutate.DeleteRequest{
		Branch: cmd.Branch,
		Force:  cmd.Force,
	})
	if err != nil {
		return fmt.Errorf("delete %v: %w", cmd.Branch, err)
	}

	if resp.CheckedOut != "" {
		log.Infof("Switched to %v", resp.CheckedOut)
	}
	log.Infof("%v: deleted", cmd.Branch)
	if len(resp.Relinked) > 0 {
		log.Infof("Moved %v onto %v: run 'pq update %v' to rebase them", resp.Relinked, resp.Parent, resp.Parent)
	}
	return nil
}
