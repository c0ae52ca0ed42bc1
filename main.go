// pq is a command line tool to manage stacks of dependent Git branches
// and their GitHub pull requests.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/browser"
	"github.com/SarthakJariwala/panqake/internal/config"
	"github.com/SarthakJariwala/panqake/internal/git"
	"github.com/SarthakJariwala/panqake/internal/secret"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/ui"
	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"go.abhg.dev/komplete"
)

var (
	// Overridden in tests.
	_secretStash     secret.Stash
	_browserLauncher browser.Launcher = new(browser.System)
	_buildView                        = buildView
)

func buildView(stdin io.Reader, stderr io.Writer, interactive bool) (ui.View, error) {
	if !interactive {
		return &ui.FileView{W: stderr}, nil
	}
	return &ui.TerminalView{R: stdin, W: stderr}, nil
}

func main() {
	logger := silog.New(os.Stderr, &silog.Options{
		Level: silog.LevelInfo,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load(ctx,
		git.NewConfig(git.ConfigOptions{Log: logger}),
		config.Options{Log: logger})
	if err != nil {
		logger.Warn("Could not load configuration", "error", err)
		cfg = new(config.Config)
	}

	isTerminal := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	var cmd mainCmd
	parser, err := kong.New(&cmd,
		kong.Name("pq"),
		kong.Description("pq manages stacks of dependent Git branches and their pull requests."),
		kong.Resolvers(cfg),
		kong.Bind(logger, &cmd.globalOptions),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Vars{
			// Default to non-interactive mode if we're not in a terminal.
			"nonInteractive": strconv.FormatBool(!isTerminal),
			"defaultTrunks":  "main,master",
			"defaultRemote":  "origin",
		},
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Help(helpPrinter(cfg)),
	)
	if err != nil {
		panic(err)
	}

	komplete.Run(parser,
		komplete.WithPredictor("branches", komplete.PredictFunc(predictBranches)),
		komplete.WithPredictor("trackedBranches", komplete.PredictFunc(predictTrackedBranches)),
	)

	builtin, err := config.AliasShorthands(parser.Model)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(cfg.ExpandArgs(os.Args[1:], builtin))
	if err != nil {
		logger.Fatalf("pq: %v", err)
	}

	if err := kctx.Run(); err != nil {
		logger.Fatalf("pq: %v", err)
	}
}

func helpPrinter(cfg *config.Config) kong.HelpPrinter {
	return func(options kong.HelpOptions, ctx *kong.Context) error {
		if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
			return err
		}
		if ctx.Selected() != nil {
			return nil
		}

		fmt.Fprint(ctx.Stdout,
			"\n",
			"Aliases can be combined to form shorthands for commands. For example:\n",
			"  pq sts => pq store show\n",
			"  pq ain => pq auth login\n",
		)
		if names := cfg.Shorthands(); len(names) > 0 {
			fmt.Fprintln(ctx.Stdout, "\nShorthands from git-config:")
			for _, name := range names {
				long, _ := cfg.ExpandShorthand(name)
				fmt.Fprintf(ctx.Stdout, "  pq %v => pq %v\n", name, strings.Join(long, " "))
			}
		}
		return nil
	}
}
