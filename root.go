package main

import (
	"context"
	"os"
	"sync"

	"github.com/SarthakJariwala/panqake/internal/forge/github"
	"github.com/SarthakJariwala/panqake/internal/secret"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/ui"
	"github.com/alecthomas/kong"
)

type globalOptions struct {
	NonInteractive bool `name:"non-interactive" short:"I" default:"${nonInteractive}" help:"Disable interactive prompts"`

	Trunk  []string `name:"trunk" config:"trunk" default:"${defaultTrunks}" placeholder:"BRANCH" help:"Branches that stacks are based on"`
	Remote string   `name:"remote" config:"remote" default:"${defaultRemote}" placeholder:"NAME" help:"Remote to push to and pull from"`

	GitHub github.Options `embed:""`
}

type mainCmd struct {
	globalOptions

	// Flags with side effects whose values are never accessed directly.
	Verbose bool               `short:"v" env:"PQ_VERBOSE" help:"Enable verbose output"`
	Dir     kong.ChangeDirFlag `short:"C" placeholder:"DIR" help:"Change to DIR before doing anything"`
	Version versionFlag        `help:"Print version information and quit"`

	// Stack
	List     listCmd     `cmd:"" aliases:"ls" group:"Stack" help:"Show the stack around a branch"`
	New      newCmd      `cmd:"" aliases:"n" group:"Stack" help:"Create a branch on top of another"`
	Track    trackCmd    `cmd:"" aliases:"tr" group:"Stack" help:"Start tracking an existing branch"`
	Untrack  untrackCmd  `cmd:"" aliases:"utr" group:"Stack" help:"Stop tracking a branch"`
	Rename   renameCmd   `cmd:"" aliases:"rn" group:"Stack" help:"Rename a branch"`
	Delete   deleteCmd   `cmd:"" aliases:"rm" group:"Stack" help:"Delete a branch, keeping its children"`
	Reparent reparentCmd `cmd:"" aliases:"rp" group:"Stack" help:"Move a branch onto a different parent"`
	Modify   modifyCmd   `cmd:"" aliases:"m" group:"Stack" help:"Commit staged changes to the current branch"`

	// Remote
	Update updateCmd `cmd:"" aliases:"u" group:"Remote" help:"Rebase a branch's descendants onto it"`
	Sync   syncCmd   `cmd:"" aliases:"sy" group:"Remote" help:"Pull the trunk and clean up merged branches"`
	Submit submitCmd `cmd:"" aliases:"s" group:"Remote" help:"Push a branch and open a pull request for it"`
	Merge  mergeCmd  `cmd:"" aliases:"mg" group:"Remote" help:"Merge a branch's pull request"`
	PR     prCmd     `cmd:"" name:"pr" aliases:"p" group:"Remote" help:"Work with pull requests"`

	// Navigation
	Switch switchCmd `cmd:"" aliases:"co" group:"Navigation" help:"Check out a tracked branch"`
	Up     upCmd     `cmd:"" group:"Navigation" help:"Check out a child of the current branch"`
	Down   downCmd   `cmd:"" group:"Navigation" help:"Check out the parent of the current branch"`

	// Administration
	Store storeCmd `cmd:"" aliases:"st" group:"Administration" help:"Inspect branch metadata"`
	Auth  authCmd  `cmd:"" aliases:"a" group:"Administration" help:"Manage GitHub authentication"`
	Shell shellCmd `cmd:"" group:"Administration" help:"Manage shell integration"`

	VersionCmd versionCmd `cmd:"" name:"version" group:"Administration" help:"Print version information"`
}

func (cmd *mainCmd) AfterApply(ctx context.Context, kctx *kong.Context, log *silog.Logger) error {
	if cmd.Verbose {
		log.SetLevel(silog.LevelDebug)
	}

	view, err := _buildView(os.Stdin, kctx.Stderr, !cmd.NonInteractive)
	if err != nil {
		return err
	}
	kctx.BindTo(view, (*ui.View)(nil))

	stash := _secretStash
	if stash == nil {
		stash = defaultStash(log)
	}
	kctx.BindTo(stash, (*secret.Stash)(nil))

	// Commands that never touch the repository
	// (version, auth, shell completion) never open it.
	openSession := sync.OnceValues(func() (*session, error) {
		return newSession(ctx, log, &cmd.globalOptions)
	})
	return kctx.BindToProvider(openSession)
}
