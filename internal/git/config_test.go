package git

import (
	"testing"

	"github.com/SarthakJariwala/panqake/internal/git/gittest"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigKeySplit(t *testing.T) {
	tests := []struct {
		give ConfigKey

		section    string
		subsection string
		name       string
	}{
		{give: "name", name: "name"},
		{give: "pq.trunk", section: "pq", name: "trunk"},
		{give: "pq.shorthand.up", section: "pq", subsection: "shorthand", name: "up"},
		{give: "pq.a.b.c", section: "pq", subsection: "a.b", name: "c"},
	}

	for _, tt := range tests {
		t.Run(string(tt.give), func(t *testing.T) {
			section, subsection, name := tt.give.Split()
			assert.Equal(t, tt.section, section, "section")
			assert.Equal(t, tt.subsection, subsection, "subsection")
			assert.Equal(t, tt.name, name, "name")
		})
	}
}

func TestConfigKeyCanonical(t *testing.T) {
	tests := []struct {
		give ConfigKey
		want ConfigKey
	}{
		{give: "PQ.Trunk", want: "pq.trunk"},
		{give: "pq.shorthand.UpStack", want: "pq.shorthand.upstack"},
		{give: "PQ.Sub.Section.Name", want: "pq.Sub.Section.name"},
	}

	for _, tt := range tests {
		t.Run(string(tt.give), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.give.Canonical())
		})
	}
}

func TestConfigListRegexp(t *testing.T) {
	gittest.Setenv(t)
	dir := t.TempDir()
	gittest.Git(t, dir, "init")
	gittest.Git(t, dir, "config", "pq.trunk", "main")
	gittest.Git(t, dir, "config", "--add", "pq.trunk", "develop")
	gittest.Git(t, dir, "config", "pq.shorthand.sy", "sync --no-push")

	cfg := NewConfig(ConfigOptions{Dir: dir, Log: silog.Nop()})

	var got []ConfigEntry
	for entry, err := range cfg.ListRegexp(t.Context(), `^pq\.`) {
		require.NoError(t, err)
		got = append(got, entry)
	}

	assert.Equal(t, []ConfigEntry{
		{Key: "pq.trunk", Value: "main"},
		{Key: "pq.trunk", Value: "develop"},
		{Key: "pq.shorthand.sy", Value: "sync --no-push"},
	}, got)

	t.Run("NoMatches", func(t *testing.T) {
		for _, err := range cfg.ListRegexp(t.Context(), `^nothing\.`) {
			require.NoError(t, err)
			t.Fatal("unexpected entry")
		}
	})
}
