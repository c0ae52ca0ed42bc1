package browsertest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SarthakJariwala/panqake/internal/browser/browsertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opened")
	rec := browsertest.NewRecorder(path)

	require.NoError(t, rec.OpenURL("https://github.com/o/r/pull/1"))
	require.NoError(t, rec.OpenURL("https://github.com/o/r/pull/2"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/o/r/pull/1\nhttps://github.com/o/r/pull/2\n", string(got))
}

func TestRecorder_missingDir(t *testing.T) {
	rec := browsertest.NewRecorder(filepath.Join(t.TempDir(), "missing", "opened"))
	assert.ErrorContains(t, rec.OpenURL("https://github.com/o/r/pull/1"), "record url")
}
