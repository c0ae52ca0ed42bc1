package github

import (
	"context"
	"fmt"

	"github.com/SarthakJariwala/panqake/internal/forge"
	"github.com/shurcooL/githubv4"
)

type checkContextNode struct {
	Typename githubv4.String `graphql:"__typename"`

	CheckRun struct {
		Name       githubv4.String               `graphql:"name"`
		Status     githubv4.CheckStatusState     `graphql:"status"`
		Conclusion githubv4.CheckConclusionState `graphql:"conclusion"`
		DetailsURL githubv4.String               `graphql:"detailsUrl"`
	} `graphql:"... on CheckRun"`

	StatusContext struct {
		Context   githubv4.String      `graphql:"context"`
		State     githubv4.StatusState `graphql:"state"`
		TargetURL githubv4.String      `graphql:"targetUrl"`
	} `graphql:"... on StatusContext"`
}

func (n *checkContextNode) toForge() (forge.CheckDetail, bool) {
	switch n.Typename {
	case "CheckRun":
		return forge.CheckDetail{
			Name:  string(n.CheckRun.Name),
			State: checkRunState(n.CheckRun.Status, n.CheckRun.Conclusion),
			URL:   string(n.CheckRun.DetailsURL),
		}, true
	case "StatusContext":
		return forge.CheckDetail{
			Name:  string(n.StatusContext.Context),
			State: statusContextState(n.StatusContext.State),
			URL:   string(n.StatusContext.TargetURL),
		}, true
	default:
		return forge.CheckDetail{}, false
	}
}

func checkRunState(status githubv4.CheckStatusState, conclusion githubv4.CheckConclusionState) forge.ChecksState {
	if status != githubv4.CheckStatusStateCompleted {
		return forge.ChecksPending
	}

	switch conclusion {
	case githubv4.CheckConclusionStateSuccess,
		githubv4.CheckConclusionStateNeutral,
		githubv4.CheckConclusionStateSkipped:
		return forge.ChecksPassed
	default:
		return forge.ChecksFailed
	}
}

func statusContextState(state githubv4.StatusState) forge.ChecksState {
	switch state {
	case githubv4.StatusStateSuccess:
		return forge.ChecksPassed
	case githubv4.StatusStatePending, githubv4.StatusStateExpected:
		return forge.ChecksPending
	default:
		return forge.ChecksFailed
	}
}

// ChecksStatus reports the CI status of the last commit of a pull request.
// A pull request with no checks is reported as passed.
func (r *Repository) ChecksStatus(ctx context.Context, pr *forge.PullRequest) (*forge.ChecksReport, error) {
	var q struct {
		Repository struct {
			PullRequest struct {
				Commits struct {
					Nodes []struct {
						Commit struct {
							StatusCheckRollup *struct {
								Contexts struct {
									Nodes []checkContextNode `graphql:"nodes"`
								} `graphql:"contexts(first: 100)"`
							} `graphql:"statusCheckRollup"`
						} `graphql:"commit"`
					} `graphql:"nodes"`
				} `graphql:"commits(last: 1)"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	if err := r.client.Query(ctx, &q, r.vars(map[string]any{
		"number": githubv4.Int(pr.Number),
	})); err != nil {
		return nil, fmt.Errorf("get checks for %v: %w", pr, err)
	}

	var details []forge.CheckDetail
	for _, commit := range q.Repository.PullRequest.Commits.Nodes {
		rollup := commit.Commit.StatusCheckRollup
		if rollup == nil {
			continue
		}
		for _, node := range rollup.Contexts.Nodes {
			if d, ok := node.toForge(); ok {
				details = append(details, d)
			}
		}
	}

	return &forge.ChecksReport{
		State:   forge.Combine(details),
		Details: details,
	}, nil
}

// Collaborators lists users that pull requests can be assigned to.
func (r *Repository) Collaborators(ctx context.Context) ([]string, error) {
	var q struct {
		Repository struct {
			AssignableUsers struct {
				Nodes []struct {
					Login githubv4.String `graphql:"login"`
				} `graphql:"nodes"`
				PageInfo struct {
					EndCursor   githubv4.String  `graphql:"endCursor"`
					HasNextPage githubv4.Boolean `graphql:"hasNextPage"`
				} `graphql:"pageInfo"`
			} `graphql:"assignableUsers(first: 100, after: $after)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	var (
		logins []string
		after  *githubv4.String
	)
	for {
		q.Repository.AssignableUsers.Nodes = nil
		if err := r.client.Query(ctx, &q, r.vars(map[string]any{
			"after": after,
		})); err != nil {
			return nil, fmt.Errorf("list collaborators: %w", err)
		}

		users := q.Repository.AssignableUsers
		for _, u := range users.Nodes {
			logins = append(logins, string(u.Login))
		}
		if !users.PageInfo.HasNextPage {
			break
		}
		after = githubv4.NewString(users.PageInfo.EndCursor)
	}

	return logins, nil
}
