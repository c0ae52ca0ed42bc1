package main

import (
	"context"

	"github.com/SarthakJariwala/panqake/internal/handler/sync"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/text"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

type syncCmd struct {
	NoPush bool `help:"Don't push rebased branches"`
	Yes    bool `short:"y" help:"Delete merged branches without asking"`
}

func (*syncCmd) Help() string {
	return text.Dedent(`
		Pulls the latest changes into the trunk branches,
		deletes tracked branches that were merged into them,
		and rebases the remaining stacks on top.

		Children of a deleted branch are moved onto the trunk.
		When not running interactively,
		merged branches are only deleted with --yes.
	`)
}

func (cmd *syncCmd) Run(ctx context.Context, log *silog.Logger, view ui.View, s *session) error {
	res, err := s.syncer(view).Sync(ctx, &sync.Options{
		NoPush: cmd.NoPush,
		Yes:    cmd.Yes,
	})
	if res != nil && len(res.Removed) > 0 {
		log.Infof("Deleted %d merged branches", len(res.Removed))
	}
	return err
}
