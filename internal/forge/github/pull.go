package github

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/forge"
	"github.com/SarthakJariwala/panqake/internal/graphqlutil"
	"github.com/shurcooL/githubv4"
)

type pullRequestNode struct {
	ID          githubv4.ID               `graphql:"id"`
	Number      githubv4.Int              `graphql:"number"`
	URL         githubv4.URI              `graphql:"url"`
	Title       githubv4.String           `graphql:"title"`
	HeadRefName githubv4.String           `graphql:"headRefName"`
	BaseRefName githubv4.String           `graphql:"baseRefName"`
	State       githubv4.PullRequestState `graphql:"state"`
	IsDraft     githubv4.Boolean          `graphql:"isDraft"`
}

func (n *pullRequestNode) toForge() *forge.PullRequest {
	pr := &forge.PullRequest{
		Number: int(n.Number),
		Title:  string(n.Title),
		Head:   string(n.HeadRefName),
		Base:   string(n.BaseRefName),
		State:  forgePRState(n.State),
		Draft:  bool(n.IsDraft),
	}
	if n.URL.URL != nil {
		pr.URL = n.URL.String()
	}
	if id, ok := n.ID.(string); ok {
		pr.NodeID = id
	}
	return pr
}

func forgePRState(s githubv4.PullRequestState) forge.PRState {
	switch s {
	case githubv4.PullRequestStateMerged:
		return forge.PRMerged
	case githubv4.PullRequestStateClosed:
		return forge.PRClosed
	default:
		return forge.PROpen
	}
}

// FindPullRequest returns the open pull request with the given head branch.
func (r *Repository) FindPullRequest(ctx context.Context, branch string) (*forge.PullRequest, error) {
	var q struct {
		Repository struct {
			PullRequests struct {
				Nodes []pullRequestNode `graphql:"nodes"`
			} `graphql:"pullRequests(headRefName: $head, states: [OPEN], first: 1)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	if err := r.client.Query(ctx, &q, r.vars(map[string]any{
		"head": githubv4.String(branch),
	})); err != nil {
		return nil, fmt.Errorf("find pull request for %v: %w", branch, err)
	}

	nodes := q.Repository.PullRequests.Nodes
	if len(nodes) == 0 {
		return nil, forge.ErrNotFound
	}
	return nodes[0].toForge(), nil
}

// CreatePullRequest opens a pull request and requests reviews on it.
func (r *Repository) CreatePullRequest(ctx context.Context, req forge.CreateRequest) (*forge.PullRequest, error) {
	var m struct {
		CreatePullRequest struct {
			PullRequest pullRequestNode `graphql:"pullRequest"`
		} `graphql:"createPullRequest(input: $input)"`
	}

	input := githubv4.CreatePullRequestInput{
		RepositoryID: r.repoID,
		Title:        githubv4.String(req.Title),
		BaseRefName:  githubv4.String(req.Base),
		HeadRefName:  githubv4.String(req.Head),
	}
	if req.Body != "" {
		input.Body = githubv4.NewString(githubv4.String(req.Body))
	}
	if req.Draft {
		input.Draft = githubv4.NewBoolean(true)
	}

	if err := r.client.Mutate(ctx, &m, input, nil); err != nil {
		// GitHub reports a missing base as an unprocessable entity
		// with a message about commits, so check the base ourselves.
		if errors.Is(err, graphqlutil.ErrUnprocessable) {
			if exists, existsErr := r.RefExists(ctx, "refs/heads/"+req.Base); existsErr == nil && !exists {
				return nil, errors.Join(forge.ErrUnsubmittedBase, err)
			}
		}
		return nil, fmt.Errorf("create pull request: %w", err)
	}

	node := &m.CreatePullRequest.PullRequest
	pr := node.toForge()
	r.log.Debug("Created pull request", "pr", pr.Number, "url", pr.URL)

	if err := r.requestReviews(ctx, node.ID, req.Reviewers); err != nil {
		return pr, fmt.Errorf("request reviews on %v: %w", pr, err)
	}

	return pr, nil
}

// UpdateBase changes the base branch of a pull request.
func (r *Repository) UpdateBase(ctx context.Context, pr *forge.PullRequest, base string) error {
	id, err := r.nodeID(ctx, pr)
	if err != nil {
		return err
	}

	var m struct {
		UpdatePullRequest struct {
			PullRequest struct {
				ID githubv4.ID `graphql:"id"`
			} `graphql:"pullRequest"`
		} `graphql:"updatePullRequest(input: $input)"`
	}

	input := githubv4.UpdatePullRequestInput{
		PullRequestID: id,
		BaseRefName:   githubv4.NewString(githubv4.String(base)),
	}
	if err := r.client.Mutate(ctx, &m, input, nil); err != nil {
		return fmt.Errorf("update base of %v: %w", pr, err)
	}

	r.log.Debug("Updated pull request base", "pr", pr.Number, "base", base)
	return nil
}

// MergePullRequest merges a pull request with the given strategy.
func (r *Repository) MergePullRequest(ctx context.Context, pr *forge.PullRequest, strategy forge.MergeStrategy) error {
	id, err := r.nodeID(ctx, pr)
	if err != nil {
		return err
	}

	var method githubv4.PullRequestMergeMethod
	switch strategy {
	case forge.MergeSquash:
		method = githubv4.PullRequestMergeMethodSquash
	case forge.MergeCommit:
		method = githubv4.PullRequestMergeMethodMerge
	case forge.MergeRebase:
		method = githubv4.PullRequestMergeMethodRebase
	default:
		return fmt.Errorf("unsupported merge strategy: %v", strategy)
	}

	var m struct {
		MergePullRequest struct {
			PullRequest struct {
				State githubv4.PullRequestState `graphql:"state"`
			} `graphql:"pullRequest"`
		} `graphql:"mergePullRequest(input: $input)"`
	}

	input := githubv4.MergePullRequestInput{
		PullRequestID: id,
		MergeMethod:   &method,
	}
	if err := r.client.Mutate(ctx, &m, input, nil); err != nil {
		return fmt.Errorf("merge %v: %w", pr, err)
	}

	r.log.Debug("Merged pull request", "pr", pr.Number, "method", strategy)
	return nil
}

// nodeID returns the GraphQL ID of a pull request,
// looking it up by number if necessary.
func (r *Repository) nodeID(ctx context.Context, pr *forge.PullRequest) (githubv4.ID, error) {
	if pr.NodeID != "" {
		return githubv4.ID(pr.NodeID), nil
	}

	var q struct {
		Repository struct {
			PullRequest struct {
				ID githubv4.ID `graphql:"id"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}
	if err := r.client.Query(ctx, &q, r.vars(map[string]any{
		"number": githubv4.Int(pr.Number),
	})); err != nil {
		if errors.Is(err, graphqlutil.ErrNotFound) {
			return nil, fmt.Errorf("pull request %v: %w", pr, forge.ErrNotFound)
		}
		return nil, fmt.Errorf("get pull request ID: %w", err)
	}

	return q.Repository.PullRequest.ID, nil
}

// requestReviews requests reviews from users or teams ("org/team").
func (r *Repository) requestReviews(ctx context.Context, prID githubv4.ID, reviewers []string) error {
	var (
		userIDs, teamIDs []githubv4.ID
		errs             []error
	)
	for _, reviewer := range reviewers {
		reviewer = strings.TrimSpace(reviewer)
		if reviewer == "" {
			continue
		}

		if org, slug, ok := strings.Cut(reviewer, "/"); ok {
			id, err := r.teamID(ctx, org, slug)
			if err != nil {
				errs = append(errs, fmt.Errorf("lookup team %q: %w", reviewer, err))
				continue
			}
			teamIDs = append(teamIDs, id)
		} else {
			id, err := r.userID(ctx, reviewer)
			if err != nil {
				errs = append(errs, fmt.Errorf("lookup user %q: %w", reviewer, err))
				continue
			}
			userIDs = append(userIDs, id)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	if len(userIDs) == 0 && len(teamIDs) == 0 {
		return nil
	}

	var m struct {
		RequestReviews struct {
			ClientMutationID githubv4.String `graphql:"clientMutationId"`
		} `graphql:"requestReviews(input: $input)"`
	}

	input := githubv4.RequestReviewsInput{
		PullRequestID: prID,
		Union:         githubv4.NewBoolean(true),
	}
	if len(userIDs) > 0 {
		input.UserIDs = &userIDs
	}
	if len(teamIDs) > 0 {
		input.TeamIDs = &teamIDs
	}

	if err := r.client.Mutate(ctx, &m, input, nil); err != nil {
		return fmt.Errorf("request reviews: %w", err)
	}
	return nil
}
