package main

import (
	"fmt"
	"runtime/debug"

	"github.com/alecthomas/kong"
)

var _version = "dev"

type versionCmd struct {
	Short bool `help:"Print only the version number"`
}

func (cmd *versionCmd) Run(app *kong.Kong) error {
	fmt.Fprintln(app.Stdout, "pq", version())
	if cmd.Short {
		return nil
	}

	fmt.Fprintln(app.Stdout, "Manage stacks of dependent Git branches and their pull requests.")
	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintln(app.Stdout, "Built with", info.GoVersion)
	}
	return nil
}

// version reports the release version,
// or the module version for 'go install' builds.
func version() string {
	if _version != "dev" {
		return _version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return _version
}

type versionFlag bool

func (v versionFlag) BeforeReset(app *kong.Kong) error {
	if err := (&versionCmd{Short: true}).Run(app); err != nil {
		return err
	}
	app.Exit(0)
	return nil
}
