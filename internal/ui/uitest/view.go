// Package uitest provides a scripted [ui.InteractiveView] for tests.
package uitest

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/SarthakJariwala/panqake/internal/ui"
	"gopkg.in/yaml.v3"
)

// Answer is the scripted answer to a single prompt field.
type Answer struct {
	// Title, if set, must match the field's title.
	Title string

	// Value is decoded into the field:
	// bool for Confirm, string for Select and Input,
	// []string for MultiSelect.
	Value any
}

// View is an interactive view that answers prompts from a script.
// Messages written to it are collected in Buffer.
type View struct {
	T interface {
		Helper()
		Errorf(string, ...any)
	} // required

	Answers []Answer

	mu      sync.Mutex
	Buffer  bytes.Buffer
	prompts []string
}

var _ ui.InteractiveView = (*View)(nil)

func (v *View) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Buffer.Write(p)
}

// Prompts lists the titles of all fields prompted so far.
func (v *View) Prompts() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.prompts...)
}

// Prompt answers each field with the next scripted answer.
func (v *View) Prompt(fields ...ui.Field) error {
	v.T.Helper()

	v.mu.Lock()
	defer v.mu.Unlock()

	for _, f := range fields {
		v.prompts = append(v.prompts, f.Title())
		if len(v.Answers) == 0 {
			v.T.Errorf("unexpected prompt: %q", f.Title())
			return fmt.Errorf("no answer for %q", f.Title())
		}

		ans := v.Answers[0]
		v.Answers = v.Answers[1:]
		if ans.Title != "" && ans.Title != f.Title() {
			v.T.Errorf("prompt %q: expected %q", f.Title(), ans.Title)
		}

		raw, err := yaml.Marshal(ans.Value)
		if err != nil {
			return fmt.Errorf("encode answer for %q: %w", f.Title(), err)
		}
		if err := f.UnmarshalValue(func(dst any) error {
			return yaml.Unmarshal(raw, dst)
		}); err != nil {
			return fmt.Errorf("answer %q: %w", f.Title(), err)
		}
	}
	return nil
}

// Done reports an error if scripted answers were left unused.
func (v *View) Done() {
	v.T.Helper()

	v.mu.Lock()
	defer v.mu.Unlock()
	for _, ans := range v.Answers {
		v.T.Errorf("unused answer: %+v", ans)
	}
}
