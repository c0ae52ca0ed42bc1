package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeStrategy_text(t *testing.T) {
	for _, want := range []MergeStrategy{MergeSquash, MergeCommit, MergeRebase} {
		t.Run(want.String(), func(t *testing.T) {
			text, err := want.MarshalText()
			require.NoError(t, err)

			var got MergeStrategy
			require.NoError(t, got.UnmarshalText(text))
			assert.Equal(t, want, got)
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		var s MergeStrategy
		err := s.UnmarshalText([]byte("octopus"))
		assert.ErrorContains(t, err, `unknown merge strategy "octopus"`)

		_, err = MergeStrategy(42).MarshalText()
		assert.Error(t, err)
		assert.Equal(t, "MergeStrategy(42)", MergeStrategy(42).String())
	})
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name string
		give []ChecksState
		want ChecksState
	}{
		{name: "Empty", want: ChecksPassed},
		{name: "AllPassed", give: []ChecksState{ChecksPassed, ChecksPassed}, want: ChecksPassed},
		{name: "Pending", give: []ChecksState{ChecksPassed, ChecksPending}, want: ChecksPending},
		{name: "FailedWins", give: []ChecksState{ChecksPending, ChecksFailed, ChecksPassed}, want: ChecksFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := make([]CheckDetail, len(tt.give))
			for i, s := range tt.give {
				details[i] = CheckDetail{Name: "check", State: s}
			}
			assert.Equal(t, tt.want, Combine(details))
		})
	}
}
