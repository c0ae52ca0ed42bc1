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

type renameCmd struct {
	NoPush bool `help:"Rename the branch locally only"`

	OldName string `arg:"" optional:"" predictor:"trackedBranches" help:"Branch to rename"`
	NewName string `arg:"" optional:"" help:"New name of the branch"`
}

func (*renameCmd) Help() string {
	return text.Dedent(`
		The following forms are supported:

			# Rename <old> to <new>
			pq rename <old> <new>

			# Rename the current branch to <new>
			pq rename <new>

			# Rename the current branch, asking for the new name
			pq rename

		If the branch was pushed, the new name is pushed
		and the old name is deleted from the remote.
	`)
}

func (cmd *renameCmd) Run(ctx context.Context, log *silog.Logger, view ui.View, s *session) (err error) {
	oldName, newName := cmd.OldName, cmd.NewName
	// "pq rename <new>" fills in OldName only.
	if oldName != "" && newName == "" {
		oldName, newName = "", oldName
	}

	oldName, err = s.currentBranch(ctx, oldName)
	if err != nil {
		return err
	}

	if newName == "" {
		if !ui.Interactive(view) {
			return fmt.Errorf("cannot rename without a new name: %w", ui.ErrPrompt)
		}
		prompt := ui.NewInput().
			WithTitle("New branch name").
			WithDescription(fmt.Sprintf("Renaming %v", oldName)).
			WithValue(&newName).
			WithValidate(func(name string) error {
				if strings.TrimSpace(name) == "" {
					return errors.New("branch name cannot be empty")
				}
				return nil
			})
		if err := ui.Run(view, prompt); err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		newName = strings.TrimSpace(newName)
	}

	if err := s.mutator.Rename(ctx, oldName, newName); err != nil {
		return fmt.Errorf("rename %v: %w", oldName, err)
	}
	log.Infof("%v: renamed to %v", oldName, newName)

	if cmd.NoPush {
		return nil
	}
	return renameRemote(ctx, log, s, oldName, newName)
}

func renameRemote(ctx context.Context, log *silog.Logger, s *session, oldName, newName string) error {
	if _, err := s.repo.RemoteBranchHash(ctx, s.remote, oldName); err != nil {
		if errors.Is(err, git.ErrNotExist) {
			log.Debug("Branch was never pushed", "branch", oldName)
			return nil
		}
		log.Warnf("%v: could not check %v: %v", oldName, s.remote, err)
		return nil
	}

	if err := s.repo.Push(ctx, git.PushOptions{
		Remote:      s.remote,
		Refspec:     newName,
		SetUpstream: true,
	}); err != nil {
		return fmt.Errorf("push %v: %w", newName, err)
	}
	log.Infof("%v: pushed to %v", newName, s.remote)

	if err := s.repo.DeleteRemoteBranch(ctx, s.remote, oldName); err != nil {
		log.Warnf("%v: could not delete from %v: %v", oldName, s.remote, err)
	}
	return nil
}
