package main

import (
	"context"

	"github.com/SarthakJariwala/panqake/internal/handler/update"
	"github.com/SarthakJariwala/panqake/internal/text"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

type updateCmd struct {
	NoPush  bool     `help:"Don't push rebased branches"`
	Publish []string `placeholder:"NAME" predictor:"trackedBranches" help:"Push these branches even if the remote doesn't have them yet"`
	Yes     bool     `short:"y" help:"Don't ask for confirmation"`
	Branch  string   `arg:"" optional:"" predictor:"trackedBranches" help:"Branch whose descendants to update. Defaults to the current branch."`
}

func (*updateCmd) Help() string {
	return text.Dedent(`
		Rebases every branch stacked on top of the given branch
		onto its parent, starting closest to the branch.
		The branch itself is rebased too if it has a parent.

		A branch that cannot be rebased is left alone,
		and so is everything stacked on it.
		Other stacks are still updated.

		Branches that were updated and exist on the remote
		are pushed with --force-with-lease.
		Use --publish to push branches the remote doesn't have yet.
	`)
}

func (cmd *updateCmd) Run(ctx context.Context, view ui.View, s *session) error {
	branch, err := s.currentBranch(ctx, cmd.Branch)
	if err != nil {
		return err
	}

	_, err = s.updater(view).Update(ctx, &update.Request{
		Branch:      branch,
		Push:        !cmd.NoPush,
		NewBranches: cmd.Publish,
		Yes:         cmd.Yes,
	})
	return err
}
