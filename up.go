package main

import (
	"context"
	"fmt"

	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

type upCmd struct{}

func (*upCmd) Run(ctx context.Context, log *silog.Logger, view ui.View, s *session) error {
	current, err := s.currentBranch(ctx, "")
	if err != nil {
		return err
	}

	children, err := s.mutator.Children(ctx, current)
	if err != nil {
		return err
	}

	var target string
	switch len(children) {
	case 0:
		return fmt.Errorf("%v: no branches are stacked on it", current)
	case 1:
		target = children[0]
	default:
		target, err = pickBranch(view, "Move up to", fmt.Sprintf("%v has several children", current), children, children[0])
		if err != nil {
			return err
		}
	}

	if err := s.wt.Checkout(ctx, target); err != nil {
		return fmt.Errorf("checkout %v: %w", target, err)
	}
	log.Infof("Switched to %v", target)
	return nil
}
