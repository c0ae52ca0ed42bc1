package main

import (
	"context"
	"fmt"

	"github.com/SarthakJariwala/panqake/internal/mutate"
	"github.com/SarthakJariwala/panqake/internal/silog"
)

type downCmd struct{}

func (*downCmd) Run(ctx context.Context, log *silog.Logger, s *session) error {
	current, err := s.currentBranch(ctx, "")
	if err != nil {
		return err
	}

	g, err := s.mutator.Graph(ctx)
	if err != nil {
		return err
	}
	if g.IsTrunk(current) {
		return fmt.Errorf("%v is a trunk branch: there is nothing below it", current)
	}
	if !g.IsTracked(current) {
		return &mutate.NotTrackedError{Branch: current}
	}
	parent, ok := g.ParentOf(current)
	if !ok {
		return fmt.Errorf("%v has no parent", current)
	}

	if err := s.wt.Checkout(ctx, parent); err != nil {
		return fmt.Errorf("checkout %v: %w", parent, err)
	}
	log.Infof("Switched to %v", parent)
	return nil
}
