package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/forge/github"
	"github.com/SarthakJariwala/panqake/internal/secret"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/text"
	"github.com/SarthakJariwala/panqake/internal/ui"
	"github.com/alecthomas/kong"
)

type authCmd struct {
	Login  authLoginCmd  `cmd:"" aliases:"in" help:"Save a GitHub token"`
	Status authStatusCmd `cmd:"" aliases:"st" help:"Show which GitHub token is in use"`
	Logout authLogoutCmd `cmd:"" aliases:"out" help:"Forget the saved GitHub token"`
}

type authLoginCmd struct {
	WithToken bool `help:"Read the token from standard input"`
}

func (*authLoginCmd) Help() string {
	return text.Dedent(`
		Saves a GitHub personal access token in the system keychain.
		The token needs the 'repo' scope.

		A token in GITHUB_TOKEN always takes precedence.
		Without a saved token, pq falls back to 'gh auth token'.
	`)
}

func (cmd *authLoginCmd) Run(
	log *silog.Logger,
	view ui.View,
	stash secret.Stash,
	opts *globalOptions,
) error {
	host := opts.GitHub.Host()

	var token string
	if cmd.WithToken {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read token: %w", err)
		}
		token = strings.TrimSpace(line)
	} else {
		if !ui.Interactive(view) {
			return fmt.Errorf("use --with-token to read the token from stdin: %w", ui.ErrPrompt)
		}
		prompt := ui.NewInput().
			WithTitle("GitHub token").
			WithDescription(fmt.Sprintf("Personal access token for %v", host)).
			WithSecret().
			WithValue(&token).
			WithValidate(validateToken)
		if err := ui.Run(view, prompt); err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		token = strings.TrimSpace(token)
	}
	if err := validateToken(token); err != nil {
		return err
	}

	if err := stash.SaveToken(host, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	log.Infof("%v: logged in", host)
	if os.Getenv("GITHUB_TOKEN") != "" {
		log.Warnf("GITHUB_TOKEN is set and will be used instead of the saved token")
	}
	return nil
}

func validateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token cannot be empty")
	}
	return nil
}

type authStatusCmd struct{}

func (*authStatusCmd) Run(kctx *kong.Context, log *silog.Logger, stash secret.Stash, opts *globalOptions) error {
	ts := tokenSource(log, &opts.GitHub, stash)
	_, origin, err := ts.Resolve()
	if err != nil {
		return fmt.Errorf("%v: not logged in: %w", ts.Host, err)
	}
	_, err = fmt.Fprintf(kctx.Stdout, "%v: logged in (token from %v)\n", ts.Host, origin)
	return err
}

type authLogoutCmd struct{}

func (*authLogoutCmd) Run(log *silog.Logger, stash secret.Stash, opts *globalOptions) error {
	host := opts.GitHub.Host()
	if err := stash.DeleteToken(host); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	log.Infof("%v: logged out", host)

	switch {
	case os.Getenv("GITHUB_TOKEN") != "":
		log.Warnf("GITHUB_TOKEN is still set")
	default:
		if _, err := (&github.CLITokenSource{Host: host}).Token(); err == nil {
			log.Warnf("The GitHub CLI is still logged in: pq will keep using its token")
		}
	}
	return nil
}
