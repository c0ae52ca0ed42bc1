package must

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBef(t *testing.T) {
	assert.PanicsWithError(t, "parent of feat is missing", func() {
		Bef(false, "parent of %v is missing", "feat")
	})
	assert.NotPanics(t, func() {
		Bef(true, "unreachable")
	})
}

func TestBeEqualf(t *testing.T) {
	assert.PanicsWithError(t, "store version: got 1, want 2", func() {
		BeEqualf(1, 2, "store version")
	})
	assert.NotPanics(t, func() {
		BeEqualf("main", "main", "trunk")
	})
}

func TestNotBeBlankf(t *testing.T) {
	for _, give := range []string{"", " ", "\t\n"} {
		assert.Panics(t, func() {
			NotBeBlankf(give, "empty branch name")
		}, "%q", give)
	}
	assert.NotPanics(t, func() {
		NotBeBlankf("feat", "empty branch name")
	})
}
