package main

import (
	"context"
	"fmt"

	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

type switchCmd struct {
	Branch string `arg:"" optional:"" predictor:"trackedBranches" help:"Branch to check out. You'll be asked to pick one if omitted."`
}

func (cmd *switchCmd) Run(ctx context.Context, log *silog.Logger, view ui.View, s *session) error {
	current, _ := s.wt.CurrentBranch(ctx)

	branch := cmd.Branch
	if branch == "" {
		g, err := s.mutator.Graph(ctx)
		if err != nil {
			return err
		}

		var options []string
		for _, trunk := range g.Trunks() {
			if s.repo.BranchExists(ctx, trunk) {
				options = append(options, trunk)
			}
		}
		options = append(options, g.Branches()...)

		branch, err = pickBranch(view, "Switch to", "Type to filter tracked branches", options, current)
		if err != nil {
			return err
		}
	}

	if branch == current {
		log.Infof("Already on %v", branch)
		return nil
	}
	if err := s.wt.Checkout(ctx, branch); err != nil {
		return fmt.Errorf("checkout %v: %w", branch, err)
	}
	log.Infof("Switched to %v", branch)
	return nil
}

// pickBranch asks the user to choose one of options.
func pickBranch(view ui.View, title, desc string, options []string, selected string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no branches to choose from")
	}
	if !ui.Interactive(view) {
		return "", fmt.Errorf("cannot choose between %v: %w", options, ui.ErrPrompt)
	}

	prompt := ui.NewSelect().
		WithTitle(title).
		WithDescription(desc).
		WithOptions(options...).
		WithValue(&selected)
	if err := ui.Run(view, prompt); err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return selected, nil
}
