// Package submit pushes branches and opens pull requests for them.
package submit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/forge"
	"github.com/SarthakJariwala/panqake/internal/git"
	"github.com/SarthakJariwala/panqake/internal/graph"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

//go:generate mockgen -destination=mocks_test.go -package=submit . GitRepository,GraphLoader

// GitRepository is the subset of the git.Repository API used here.
type GitRepository interface {
	PeelToCommit(ctx context.Context, ref string) (git.Hash, error)
	RemoteBranchHash(ctx context.Context, remote, branch string) (git.Hash, error)
	Push(ctx context.Context, opts git.PushOptions) error
	CommitSubject(ctx context.Context, ref string) (string, error)
}

var _ GitRepository = (*git.Repository)(nil)

// GraphLoader loads the branch graph.
type GraphLoader interface {
	Graph(ctx context.Context) (*graph.Graph, error)
}

// Handler submits branches.
type Handler struct {
	Log   *silog.Logger    // required
	View  ui.View          // required
	Repo  GitRepository    // required
	Graph GraphLoader      // required
	Forge forge.Repository // required

	// Remote to push to. Defaults to "origin".
	Remote string
}

func (h *Handler) remote() string {
	if h.Remote == "" {
		return "origin"
	}
	return h.Remote
}

// Request is a request to submit a branch.
type Request struct {
	Branch string // required

	// Title and Body of a new pull request.
	// The user is asked for them if they're empty
	// and prompts are allowed.
	Title string
	Body  string

	Draft bool

	// Reviewers for a new pull request.
	// If empty, the user may pick them from the repository's collaborators.
	Reviewers []string
}

// Result reports what a submit did.
type Result struct {
	PR *forge.PullRequest

	// Pushed is set if the branch was pushed.
	Pushed bool

	// Created is set if the pull request was opened by this submit.
	Created bool

	// Skipped is set if the user chose not to open a pull request.
	Skipped bool
}

// Submit pushes a branch and makes sure it has a pull request
// against its parent.
//
// An unpushed parent is pushed first.
// An existing pull request with a stale base is retargeted to the parent.
func (h *Handler) Submit(ctx context.Context, req *Request) (*Result, error) {
	g, err := h.Graph.Graph(ctx)
	if err != nil {
		return nil, err
	}

	branch := req.Branch
	if g.IsTrunk(branch) {
		return nil, &graph.ProtectedBranchError{Branch: branch, Op: "submit"}
	}
	if !g.IsTracked(branch) {
		return nil, fmt.Errorf("%v is not tracked: track it with 'pq track %v'", branch, branch)
	}
	parent, ok := g.ParentOf(branch)
	if !ok {
		return nil, fmt.Errorf("%v has no parent to open a pull request against", branch)
	}

	if !g.IsTrunk(parent) {
		if _, err := h.push(ctx, parent); err != nil {
			return nil, fmt.Errorf("push parent %v: %w", parent, err)
		}
	}

	var res Result
	res.Pushed, err = h.push(ctx, branch)
	if err != nil {
		return nil, err
	}

	pr, err := h.Forge.FindPullRequest(ctx, branch)
	switch {
	case err == nil:
		res.PR = pr
		if pr.Base != parent {
			if err := h.Forge.UpdateBase(ctx, pr, parent); err != nil {
				return &res, err
			}
			h.Log.Infof("%v: changed base of %v from %v to %v", branch, pr, pr.Base, parent)
			pr.Base = parent
		}
		if res.Pushed {
			h.Log.Infof("%v: updated %v (%v)", branch, pr, pr.URL)
		} else {
			h.Log.Infof("%v: %v is up to date (%v)", branch, pr, pr.URL)
		}
		return &res, nil

	case errors.Is(err, forge.ErrNotFound):
		// Open a new one below.

	default:
		return &res, err
	}

	create, err := h.prepare(ctx, req, parent)
	if err != nil {
		return &res, err
	}
	if create == nil {
		res.Skipped = true
		h.Log.Infof("%v: pull request not created", branch)
		return &res, nil
	}

	pr, err = h.Forge.CreatePullRequest(ctx, *create)
	if err != nil {
		if errors.Is(err, forge.ErrUnsubmittedBase) {
			return &res, fmt.Errorf("%v: base %v is not on %v: %w", branch, parent, h.remote(), err)
		}
		if pr == nil {
			return &res, err
		}
		// The pull request exists but a follow-up step failed.
		h.Log.Warnf("%v: %v", branch, err)
	}

	res.PR = pr
	res.Created = true
	h.Log.Infof("%v: created %v (%v)", branch, pr, pr.URL)
	return &res, nil
}

// prepare builds the request to open a pull request,
// asking the user for anything missing.
// It returns nil if the user decides against opening one.
func (h *Handler) prepare(ctx context.Context, req *Request, parent string) (*forge.CreateRequest, error) {
	create := forge.CreateRequest{
		Head:      req.Branch,
		Base:      parent,
		Title:     req.Title,
		Body:      req.Body,
		Draft:     req.Draft,
		Reviewers: req.Reviewers,
	}
	if create.Title == "" {
		create.Title = h.defaultTitle(ctx, req.Branch)
	}

	if !ui.Interactive(h.View) {
		return &create, nil
	}

	var fields []ui.Field
	if req.Title == "" {
		fields = append(fields, ui.NewInput().
			WithTitle("Title").
			WithDescription("Short summary of the pull request").
			WithValue(&create.Title).
			WithValidate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("title cannot be blank")
				}
				return nil
			}))
	}
	if req.Body == "" {
		fields = append(fields, ui.NewInput().
			WithTitle("Body").
			WithDescription("Optional description").
			WithValue(&create.Body))
	}
	if len(req.Reviewers) == 0 {
		if collaborators, err := h.Forge.Collaborators(ctx); err != nil {
			h.Log.Warn("Could not list collaborators", "error", err)
		} else if len(collaborators) > 0 {
			fields = append(fields, ui.NewMultiSelect().
				WithTitle("Reviewers").
				WithDescription("Space to select, enter to accept").
				WithOptions(collaborators...).
				WithValue(&create.Reviewers))
		}
	}

	confirmed := true
	fields = append(fields, ui.NewConfirm().
		WithTitle("Create pull request?").
		WithDescription(fmt.Sprintf("%v into %v", req.Branch, parent)).
		WithValue(&confirmed))

	if err := ui.Run(h.View, fields...); err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	if !confirmed {
		return nil, nil
	}
	return &create, nil
}

func (h *Handler) defaultTitle(ctx context.Context, branch string) string {
	subject, err := h.Repo.CommitSubject(ctx, branch)
	if err != nil || subject == "" {
		h.Log.Debug("Could not read commit subject", "branch", branch, "error", err)
		return branch
	}
	return subject
}

// push pushes branch if the remote doesn't have its tip.
// A branch the remote has never seen is pushed with upstream tracking.
// It reports whether anything was pushed.
func (h *Handler) push(ctx context.Context, branch string) (bool, error) {
	local, err := h.Repo.PeelToCommit(ctx, branch)
	if err != nil {
		return false, err
	}

	remote, err := h.Repo.RemoteBranchHash(ctx, h.remote(), branch)
	isNew := errors.Is(err, git.ErrNotExist)
	if err != nil && !isNew {
		return false, err
	}
	if !isNew && remote == local {
		h.Log.Debug("Branch is up to date on remote", "branch", branch, "hash", local.Short())
		return false, nil
	}

	if err := h.Repo.Push(ctx, git.PushOptions{
		Remote:         h.remote(),
		Refspec:        branch,
		ForceWithLease: !isNew,
		SetUpstream:    isNew,
	}); err != nil {
		return false, err
	}

	h.Log.Infof("%v: pushed to %v", branch, h.remote())
	return true, nil
}
