package github

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SarthakJariwala/panqake/internal/forge"
	"github.com/SarthakJariwala/panqake/internal/graphqlutil"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// Repository is a GitHub repository.
type Repository struct {
	id     RepositoryID
	repoID githubv4.ID
	log    *silog.Logger
	client *githubv4.Client
}

var _ forge.Repository = (*Repository)(nil)

// OpenOptions specifies how to connect to a GitHub repository.
type OpenOptions struct {
	Log *silog.Logger // required

	Options Options

	// RemoteURL is the URL of the Git remote for the repository.
	RemoteURL string // required

	TokenSource oauth2.TokenSource // required

	// HTTPClient sends requests before authentication is added.
	// Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Open connects to the GitHub repository that RemoteURL points to.
func Open(ctx context.Context, opts OpenOptions) (*Repository, error) {
	id, err := ParseRemoteURL(opts.Options.WebURL(), opts.RemoteURL)
	if err != nil {
		return nil, err
	}

	graphQLURL, err := url.JoinPath(opts.Options.APIBaseURL(), "graphql")
	if err != nil {
		return nil, fmt.Errorf("build GraphQL API URL: %w", err)
	}

	baseClient := cmp.Or(opts.HTTPClient, http.DefaultClient)
	ctx = context.WithValue(ctx, oauth2.HTTPClient, baseClient)
	httpClient := oauth2.NewClient(ctx, oauth2.ReuseTokenSource(nil, opts.TokenSource))
	httpClient.Transport = graphqlutil.WrapTransport(httpClient.Transport)

	return newRepository(ctx, id, opts.Log, githubv4.NewEnterpriseClient(graphQLURL, httpClient))
}

func newRepository(
	ctx context.Context,
	id RepositoryID,
	log *silog.Logger,
	client *githubv4.Client,
) (*Repository, error) {
	var q struct {
		Repository struct {
			ID githubv4.ID `graphql:"id"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}
	if err := client.Query(ctx, &q, map[string]any{
		"owner": githubv4.String(id.Owner),
		"repo":  githubv4.String(id.Name),
	}); err != nil {
		if errors.Is(err, graphqlutil.ErrNotFound) {
			return nil, fmt.Errorf("repository %v: %w", id, forge.ErrNotFound)
		}
		return nil, fmt.Errorf("get repository ID: %w", err)
	}

	return &Repository{
		id:     id,
		repoID: q.Repository.ID,
		log:    log.With("repo", id.String()),
		client: client,
	}, nil
}

// ID reports the owner and name of the repository.
func (r *Repository) ID() RepositoryID { return r.id }

func (r *Repository) vars(extra map[string]any) map[string]any {
	vars := map[string]any{
		"owner": githubv4.String(r.id.Owner),
		"repo":  githubv4.String(r.id.Name),
	}
	for k, v := range extra {
		vars[k] = v
	}
	return vars
}

// RefExists reports whether a fully qualified reference
// (e.g. refs/heads/main) exists in the repository.
func (r *Repository) RefExists(ctx context.Context, ref string) (bool, error) {
	var q struct {
		Repository struct {
			Ref *struct {
				Name githubv4.String `graphql:"name"`
			} `graphql:"ref(qualifiedName: $ref)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	if err := r.client.Query(ctx, &q, r.vars(map[string]any{
		"ref": githubv4.String(ref),
	})); err != nil {
		return false, fmt.Errorf("check ref existence: %w", err)
	}

	return q.Repository.Ref != nil && q.Repository.Ref.Name != "", nil
}

// userID looks up a user's GraphQL ID by login.
func (r *Repository) userID(ctx context.Context, login string) (githubv4.ID, error) {
	var q struct {
		User *struct {
			ID githubv4.ID `graphql:"id"`
		} `graphql:"user(login: $login)"`
	}

	if err := r.client.Query(ctx, &q, map[string]any{
		"login": githubv4.String(login),
	}); err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	if q.User == nil || q.User.ID == nil || q.User.ID == "" {
		return nil, fmt.Errorf("user not found: %q", login)
	}
	return q.User.ID, nil
}

// teamID looks up a team's GraphQL ID by organization and team slug.
func (r *Repository) teamID(ctx context.Context, org, slug string) (githubv4.ID, error) {
	var q struct {
		Organization *struct {
			Team *struct {
				ID githubv4.ID `graphql:"id"`
			} `graphql:"team(slug: $slug)"`
		} `graphql:"organization(login: $org)"`
	}

	if err := r.client.Query(ctx, &q, map[string]any{
		"org":  githubv4.String(org),
		"slug": githubv4.String(slug),
	}); err != nil {
		return nil, fmt.Errorf("query team: %w", err)
	}

	if q.Organization == nil || q.Organization.Team == nil ||
		q.Organization.Team.ID == nil || q.Organization.Team.ID == "" {
		return nil, fmt.Errorf("team not found: %q/%q", org, slug)
	}
	return q.Organization.Team.ID, nil
}
