package main

import (
	"context"

	"github.com/SarthakJariwala/panqake/internal/handler/submit"
	"github.com/SarthakJariwala/panqake/internal/secret"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/text"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

type submitCmd struct {
	Draft     bool     `config:"submit.draft" negatable:"" help:"Open the pull request as a draft"`
	Title     string   `short:"t" help:"Title of a new pull request. Defaults to the last commit's subject."`
	Body      string   `short:"b" help:"Body of a new pull request"`
	Reviewers []string `name:"reviewer" short:"r" placeholder:"LOGIN" help:"Request a review from this user. Can be repeated."`

	Branch string `arg:"" optional:"" predictor:"trackedBranches" help:"Branch to submit. Defaults to the current branch."`
}

func (*submitCmd) Help() string {
	return text.Dedent(`
		Pushes the branch and opens a pull request for it
		against its parent.
		A parent that was never pushed is pushed first.

		If the branch already has a pull request,
		it's pushed and its base is corrected if the branch
		was moved onto a different parent.
	`)
}

func (cmd *submitCmd) Run(
	ctx context.Context,
	log *silog.Logger,
	view ui.View,
	stash secret.Stash,
	s *session,
) error {
	branch, err := s.currentBranch(ctx, cmd.Branch)
	if err != nil {
		return err
	}

	forge, err := s.openForge(ctx, stash)
	if err != nil {
		return err
	}

	handler := &submit.Handler{
		Log:    log,
		View:   view,
		Repo:   s.repo,
		Graph:  s.mutator,
		Forge:  forge,
		Remote: s.remote,
	}
	_, err = handler.Submit(ctx, &submit.Request{
		Branch:    branch,
		Title:     cmd.Title,
		Body:      cmd.Body,
		Draft:     cmd.Draft,
		Reviewers: cmd.Reviewers,
	})
	return err
}
