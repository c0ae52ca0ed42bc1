package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/git"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/text"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

type modifyCmd struct {
	Message string `short:"m" placeholder:"MSG" help:"Commit message"`
	Amend   bool   `help:"Amend the last commit instead of adding one"`
	All     bool   `short:"a" help:"Stage changes to tracked files first"`
}

func (*modifyCmd) Help() string {
	return text.Dedent(`
		Commits staged changes to the current branch.
		With --amend, the last commit is rewritten instead,
		keeping its message unless -m is given.

		Branches stacked on top are not rebased:
		run 'pq update' afterwards.
	`)
}

func (cmd *modifyCmd) Run(ctx context.Context, log *silog.Logger, view ui.View, s *session) error {
	branch, err := s.currentBranch(ctx, "")
	if err != nil {
		return err
	}

	if !cmd.All {
		staged, err := s.wt.HasStagedChanges(ctx)
		if err != nil {
			return err
		}
		if !staged && !cmd.Amend {
			return errors.New("no staged changes: stage them with 'git add' or use --all")
		}
	}

	if cmd.Message == "" && !cmd.Amend {
		if !ui.Interactive(view) {
			return fmt.Errorf("cannot commit without a message: %w", ui.ErrPrompt)
		}
		prompt := ui.NewInput().
			WithTitle("Commit message").
			WithValue(&cmd.Message).
			WithValidate(func(msg string) error {
				if strings.TrimSpace(msg) == "" {
					return errors.New("commit message cannot be empty")
				}
				return nil
			})
		if err := ui.Run(view, prompt); err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
	}

	if err := s.wt.Commit(ctx, git.CommitRequest{
		Message: cmd.Message,
		Amend:   cmd.Amend,
		NoEdit:  cmd.Amend && cmd.Message == "",
		All:     cmd.All,
	}); err != nil {
		return err
	}

	if cmd.Amend {
		log.Infof("%v: amended last commit", branch)
		cmd.warnForcePush(ctx, log, s, branch)
	} else {
		log.Infof("%v: committed", branch)
	}

	children, err := s.mutator.Children(ctx, branch)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		log.Infof("%v: run 'pq update' to rebase %v onto it", branch, strings.Join(children, ", "))
	}
	return nil
}

// warnForcePush warns if the remote copy of branch
// can only be replaced with a force push.
func (*modifyCmd) warnForcePush(ctx context.Context, log *silog.Logger, s *session, branch string) {
	amended, err := s.wt.DetectAmended(ctx)
	if err != nil || !amended {
		return
	}
	if _, err := s.repo.RemoteBranchHash(ctx, s.remote, branch); err != nil {
		return
	}

	rejected, err := s.repo.DetectNonFastForward(ctx, s.remote, branch)
	if err != nil {
		log.Debug("Could not check for a forced push", "error", err)
		return
	}
	if rejected {
		log.Warnf("%v: the amended commit was already pushed: 'pq submit' will force-push it", branch)
	}
}
