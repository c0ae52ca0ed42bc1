package main

import (
	"context"
	"fmt"
	"os"

	"github.com/SarthakJariwala/panqake/internal/graph"
	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
)

type listCmd struct {
	All    bool   `short:"a" help:"Show every stack, not just the one containing the branch"`
	Branch string `arg:"" optional:"" predictor:"trackedBranches" help:"Branch whose stack to show. Defaults to the current branch."`
}

func (cmd *listCmd) Run(ctx context.Context, kctx *kong.Context, s *session) error {
	g, err := s.mutator.Graph(ctx)
	if err != nil {
		return err
	}

	// A detached HEAD has no current branch to mark.
	current, _ := s.wt.CurrentBranch(ctx)
	branch := cmd.Branch
	if branch == "" {
		branch = current
	}

	opts := graph.RenderOptions{Style: graphStyle()}
	if !cmd.All && branch != "" {
		if !g.IsTracked(branch) && !g.IsTrunk(branch) {
			return fmt.Errorf("%v is not tracked: use --all to show every stack", branch)
		}
		opts.Roots = []string{g.RootOf(branch)}
	}

	_, err = fmt.Fprint(kctx.Stdout, g.Render(current, opts))
	return err
}

func graphStyle() *graph.Style {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return graph.DefaultStyle()
	}
	return graph.PlainStyle()
}
