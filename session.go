package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/forge/github"
	"github.com/SarthakJariwala/panqake/internal/git"
	"github.com/SarthakJariwala/panqake/internal/handler/sync"
	"github.com/SarthakJariwala/panqake/internal/handler/update"
	"github.com/SarthakJariwala/panqake/internal/mutate"
	"github.com/SarthakJariwala/panqake/internal/restack"
	"github.com/SarthakJariwala/panqake/internal/secret"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/state"
	"github.com/SarthakJariwala/panqake/internal/state/storage"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

// session holds everything a command needs
// to operate on the repository in the current directory.
type session struct {
	log *silog.Logger

	repo      *git.Repository
	wt        *git.Worktree
	store     *state.RepoStore
	storePath string
	mutator   *mutate.Mutator

	trunks []string
	remote string
	github github.Options
}

func newSession(ctx context.Context, log *silog.Logger, opts *globalOptions) (*session, error) {
	repo, err := git.Open(ctx, "", git.OpenOptions{Log: log})
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	path, err := storage.DefaultFilePath()
	if err != nil {
		return nil, err
	}
	store, err := state.Open(ctx, state.OpenOptions{
		Backend: storage.NewFileBackend(storage.FileConfig{Path: path, Log: log}),
		RepoID:  repo.RepoID(),
		Legacy:  repo.LegacyRepoIDs(),
		Log:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	trunks := trunkList(opts.Trunk)
	if len(trunks) == 0 {
		return nil, fmt.Errorf("no trunk branches configured: set --trunk or pq.trunk")
	}

	wt := repo.Worktree()
	return &session{
		log:       log,
		repo:      repo,
		wt:        wt,
		store:     store,
		storePath: path,
		mutator: &mutate.Mutator{
			Log:      log,
			Repo:     repo,
			Worktree: wt,
			Store:    store,
			Trunks:   trunks,
		},
		trunks: trunks,
		remote: opts.Remote,
		github: opts.GitHub,
	}, nil
}

// trunkList cleans up the --trunk values.
// Values from git-config may hold several comma-separated names.
func trunkList(values []string) []string {
	var trunks []string
	for _, v := range values {
		for name := range strings.SplitSeq(v, ",") {
			name = strings.TrimSpace(name)
			if name != "" && !slices.Contains(trunks, name) {
				trunks = append(trunks, name)
			}
		}
	}
	return trunks
}

// currentBranch returns branch if it is set,
// and the checked out branch otherwise.
func (s *session) currentBranch(ctx context.Context, branch string) (string, error) {
	if branch != "" {
		return branch, nil
	}
	current, err := s.wt.CurrentBranch(ctx)
	if err != nil {
		return "", fmt.Errorf("get current branch: %w", err)
	}
	return current, nil
}

func (s *session) engine() *restack.Engine {
	return &restack.Engine{
		Log:      s.log,
		Repo:     s.repo,
		Worktree: s.wt,
		OpenWorktree: func(ctx context.Context, dir string) (restack.GitWorktree, error) {
			wt, err := s.repo.OpenWorktree(ctx, dir)
			if err != nil {
				return nil, err
			}
			return wt, nil
		},
		Remote: s.remote,
	}
}

func (s *session) updater(view ui.View) *update.Handler {
	return &update.Handler{
		Log:    s.log,
		View:   view,
		Graph:  s.mutator,
		Engine: s.engine(),
	}
}

func (s *session) syncer(view ui.View) *sync.Handler {
	return &sync.Handler{
		Log:      s.log,
		View:     view,
		Repo:     s.repo,
		Worktree: s.wt,
		Mutator:  s.mutator,
		Updater:  s.updater(view),
		OpenWorktree: func(ctx context.Context, dir string) (sync.GitWorktree, error) {
			wt, err := s.repo.OpenWorktree(ctx, dir)
			if err != nil {
				return nil, err
			}
			return wt, nil
		},
		Remote: s.remote,
	}
}

// openForge connects to the GitHub repository behind the remote.
func (s *session) openForge(ctx context.Context, stash secret.Stash) (*github.Repository, error) {
	remoteURL, err := s.repo.RemoteURL(ctx, s.remote)
	if err != nil {
		return nil, err
	}

	repo, err := github.Open(ctx, github.OpenOptions{
		Log:         s.log,
		Options:     s.github,
		RemoteURL:   remoteURL,
		TokenSource: tokenSource(s.log, &s.github, stash),
	})
	if err != nil {
		return nil, fmt.Errorf("open GitHub repository: %w", err)
	}
	return repo, nil
}

func tokenSource(log *silog.Logger, opts *github.Options, stash secret.Stash) *github.TokenSource {
	host := opts.Host()
	return &github.TokenSource{
		Log:      log,
		Host:     host,
		EnvToken: os.Getenv("GITHUB_TOKEN"),
		Stash:    stash,
		CLI:      &github.CLITokenSource{Host: host},
	}
}

// defaultStash keeps tokens in the system keychain,
// or in a file next to the store where there is none.
func defaultStash(log *silog.Logger) secret.Stash {
	path, err := storage.DefaultFilePath()
	if err != nil {
		log.Debug("No fallback for the keychain", "error", err)
		return new(secret.Keyring)
	}
	return &secret.FallbackStash{
		Primary: new(secret.Keyring),
		Secondary: &secret.FileStash{
			Path: filepath.Join(filepath.Dir(path), "secrets.json"),
			Log:  log,
		},
	}
}
