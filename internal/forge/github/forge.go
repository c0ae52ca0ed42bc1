// Package github implements [forge.Repository] on top of
// the GitHub GraphQL API.
package github

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultURL is the base URL for GitHub.
	DefaultURL = "https://github.com"

	// DefaultAPIURL is the base URL for GitHub's API.
	DefaultAPIURL = "https://api.github.com"
)

// Options are the GitHub connection options.
// The struct tags make it usable as a kong flag group.
type Options struct {
	URL    string `name:"github-url" hidden:"" config:"github.url" env:"GITHUB_URL" help:"Base URL for GitHub web requests"`
	APIURL string `name:"github-api-url" hidden:"" config:"github.apiUrl" env:"GITHUB_API_URL" help:"Base URL for GitHub API requests"`
}

// WebURL returns the web URL for GitHub.
func (o *Options) WebURL() string {
	if o.URL == "" {
		return DefaultURL
	}
	return o.URL
}

// APIBaseURL returns the base API URL for GitHub.
//
// GitHub Enterprise serves its API under /api on the web host.
func (o *Options) APIBaseURL() string {
	if o.APIURL != "" {
		return o.APIURL
	}

	webURL := o.WebURL()
	if webURL == DefaultURL {
		return DefaultAPIURL
	}

	apiURL, err := url.JoinPath(webURL, "api")
	if err != nil {
		return DefaultAPIURL
	}
	return apiURL
}

// Host returns the host name that tokens are stored under.
func (o *Options) Host() string {
	u, err := url.Parse(o.WebURL())
	if err != nil || u.Hostname() == "" {
		return "github.com"
	}
	return u.Hostname()
}

// RepositoryID identifies a repository on GitHub.
type RepositoryID struct {
	Owner string
	Name  string
}

func (id RepositoryID) String() string {
	return id.Owner + "/" + id.Name
}

// ParseRemoteURL extracts the repository owner and name
// from a Git remote URL for a GitHub instance at githubURL.
//
// HTTPS, ssh://, and scp-style (git@host:owner/repo) URLs are accepted.
func ParseRemoteURL(githubURL, remoteURL string) (RepositoryID, error) {
	base, err := url.Parse(githubURL)
	if err != nil {
		return RepositoryID{}, fmt.Errorf("bad base URL: %w", err)
	}

	u, err := parseRemote(remoteURL)
	if err != nil {
		return RepositoryID{}, fmt.Errorf("parse remote URL: %w", err)
	}

	if canonicalHost(u) != canonicalHost(base) {
		return RepositoryID{}, fmt.Errorf("%v is not a GitHub URL: expected host %q", remoteURL, base.Hostname())
	}

	path := strings.Trim(u.Path, "/")
	path = strings.TrimSuffix(path, ".git")
	owner, name, ok := strings.Cut(path, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepositoryID{}, fmt.Errorf("path %q does not contain a GitHub repository", u.Path)
	}

	return RepositoryID{Owner: owner, Name: name}, nil
}

func parseRemote(remoteURL string) (*url.URL, error) {
	// scp-style: [user@]host:path
	if !strings.Contains(remoteURL, "://") {
		if host, path, ok := strings.Cut(remoteURL, ":"); ok && !strings.Contains(host, "/") {
			remoteURL = "ssh://" + host + "/" + path
		}
	}
	return url.Parse(remoteURL)
}

// canonicalHost drops the port and the "ssh." prefix
// that GitHub uses for SSH over port 443.
func canonicalHost(u *url.URL) string {
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "ssh.")
}
