package main

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/testing/stub"
)

func TestVersionCmd(t *testing.T) {
	defer stub.Value(&_version, "1.2.3")()

	t.Run("Short", func(t *testing.T) {
		var stdout bytes.Buffer
		app := &kong.Kong{Stdout: &stdout}

		require.NoError(t, (&versionCmd{Short: true}).Run(app))
		assert.Equal(t, "pq 1.2.3\n", stdout.String())
	})

	t.Run("Long", func(t *testing.T) {
		var stdout bytes.Buffer
		app := &kong.Kong{Stdout: &stdout}

		require.NoError(t, new(versionCmd).Run(app))
		assert.Contains(t, stdout.String(), "pq 1.2.3\n")
		assert.Contains(t, stdout.String(), "Manage stacks of dependent Git branches")
	})
}

func TestVersionFlag(t *testing.T) {
	defer stub.Value(&_version, "0.4.0")()

	var (
		stdout   bytes.Buffer
		exitCode = -1
	)
	var cmd struct {
		Version versionFlag `help:"Print version information and quit"`
	}
	parser, err := kong.New(&cmd,
		kong.Name("pq"),
		kong.Writers(&stdout, new(bytes.Buffer)),
		kong.Exit(func(code int) { exitCode = code }),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--version"})
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "pq 0.4.0\n", stdout.String())
}
