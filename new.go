package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

type newCmd struct {
	Parent string `short:"p" placeholder:"BRANCH" predictor:"branches" help:"Branch to stack it on. Defaults to the current branch."`
	Name   string `arg:"" optional:"" help:"Name of the new branch"`
}

func (cmd *newCmd) Run(ctx context.Context, log *silog.Logger, view ui.View, s *session) error {
	parent, err := s.currentBranch(ctx, cmd.Parent)
	if err != nil {
		return err
	}

	if cmd.Name == "" {
		if !ui.Interactive(view) {
			return fmt.Errorf("cannot create a branch without a name: %w", ui.ErrPrompt)
		}
		prompt := ui.NewInput().
			WithTitle("Branch name").
			WithDescription(fmt.Sprintf("It will be stacked on %v", parent)).
			WithValue(&cmd.Name).
			WithValidate(func(name string) error {
				if strings.TrimSpace(name) == "" {
					return errors.New("branch name cannot be empty")
				}
				return nil
			})
		if err := ui.Run(view, prompt); err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		cmd.Name = strings.TrimSpace(cmd.Name)
	}

	if err := s.mutator.Create(ctx, cmd.Name, parent); err != nil {
		return fmt.Errorf("create %v: %w", cmd.Name, err)
	}
	log.Infof("%v: created on %v", cmd.Name, parent)
	return nil
}
