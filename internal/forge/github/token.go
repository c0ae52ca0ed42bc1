package github

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/secret"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"golang.org/x/oauth2"
)

// ErrNoToken indicates that no GitHub token could be found.
var ErrNoToken = errors.New("no GitHub token found: set GITHUB_TOKEN, run 'pq auth login', or log in with 'gh auth login'")

// TokenOrigin records where a token came from.
type TokenOrigin int

const (
	// TokenFromEnv is a token from the GITHUB_TOKEN environment variable.
	TokenFromEnv TokenOrigin = iota + 1

	// TokenFromStash is a token saved with 'pq auth login'.
	TokenFromStash

	// TokenFromCLI is a token reported by 'gh auth token'.
	TokenFromCLI
)

func (o TokenOrigin) String() string {
	switch o {
	case TokenFromEnv:
		return "GITHUB_TOKEN"
	case TokenFromStash:
		return "keyring"
	case TokenFromCLI:
		return "gh CLI"
	default:
		return fmt.Sprintf("TokenOrigin(%d)", int(o))
	}
}

// TokenSource finds a GitHub token for a host.
// It tries, in order: EnvToken, the Stash, and the GitHub CLI.
type TokenSource struct {
	Log *silog.Logger // required

	Host     string // required
	EnvToken string
	Stash    secret.Stash

	// CLI is consulted last. If nil, the GitHub CLI is not used.
	CLI oauth2.TokenSource
}

var _ oauth2.TokenSource = (*TokenSource)(nil)

// Token implements oauth2.TokenSource.
func (ts *TokenSource) Token() (*oauth2.Token, error) {
	tok, _, err := ts.Resolve()
	if err != nil {
		return nil, err
	}
	return tok, nil
}

// Resolve finds a token and reports where it came from.
// It returns ErrNoToken if no source has one.
func (ts *TokenSource) Resolve() (*oauth2.Token, TokenOrigin, error) {
	if ts.EnvToken != "" {
		return &oauth2.Token{AccessToken: ts.EnvToken}, TokenFromEnv, nil
	}

	var errs []error
	if ts.Stash != nil {
		tok, err := ts.Stash.LoadToken(ts.Host)
		switch {
		case err == nil:
			return &oauth2.Token{AccessToken: tok}, TokenFromStash, nil
		case !errors.Is(err, secret.ErrNotFound):
			errs = append(errs, fmt.Errorf("load token: %w", err))
		}
	}

	if ts.CLI != nil {
		tok, err := ts.CLI.Token()
		if err == nil && tok.AccessToken != "" {
			return tok, TokenFromCLI, nil
		}
		ts.Log.Debug("GitHub CLI did not provide a token", "error", err)
	}

	return nil, 0, errors.Join(append([]error{ErrNoToken}, errs...)...)
}

// CLITokenSource is an oauth2 token source
// that asks the GitHub CLI for its token.
type CLITokenSource struct {
	// Host is passed to 'gh auth token --hostname'.
	Host string

	cmdOutput func(*exec.Cmd) ([]byte, error) // for testing
}

// Token returns an oauth2 token using the GitHub CLI.
func (ts *CLITokenSource) Token() (*oauth2.Token, error) {
	cmdOutput := (*exec.Cmd).Output
	if ts.cmdOutput != nil {
		cmdOutput = ts.cmdOutput
	}

	args := []string{"auth", "token"}
	if ts.Host != "" {
		args = append(args, "--hostname", ts.Host)
	}

	bs, err := cmdOutput(exec.Command("gh", args...))
	if err != nil {
		return nil, fmt.Errorf("get token from gh CLI: %w", err)
	}
	return &oauth2.Token{
		AccessToken: strings.TrimSpace(string(bs)),
	}, nil
}
