package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/SarthakJariwala/panqake/internal/browser"
	"github.com/SarthakJariwala/panqake/internal/forge"
	"github.com/SarthakJariwala/panqake/internal/secret"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/alecthomas/kong"
)

type prCmd struct {
	Open prOpenCmd `cmd:"" aliases:"o" help:"Open a branch's pull request in a browser"`
}

type prOpenCmd struct {
	Print  bool   `help:"Print the URL instead of opening it"`
	Branch string `arg:"" optional:"" predictor:"trackedBranches" help:"Branch whose pull request to open. Defaults to the current branch."`
}

func (cmd *prOpenCmd) Run(
	ctx context.Context,
	kctx *kong.Context,
	log *silog.Logger,
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

	pr, err := repo.FindPullRequest(ctx, branch)
	if err != nil {
		if errors.Is(err, forge.ErrNotFound) {
			return fmt.Errorf("%v has no open pull request: submit it with 'pq submit %v'", branch, branch)
		}
		return fmt.Errorf("find pull request: %w", err)
	}

	launcher := _browserLauncher
	if cmd.Print {
		launcher = &browser.Printer{W: kctx.Stdout}
	}
	log.Debug("Opening pull request", "branch", branch, "pr", pr.String(), "url", pr.URL)
	return launcher.OpenURL(pr.URL)
}
