package update

import (
	"fmt"
	"io"

	"github.com/SarthakJariwala/panqake/internal/restack"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

var (
	_okStyle   = ui.NewStyle().Foreground(ui.Green)
	_failStyle = ui.NewStyle().Foreground(ui.Red)
	_skipStyle = ui.NewStyle().Foreground(ui.Yellow)
	_hintStyle = ui.NewStyle().Foreground(ui.Gray)
)

// PrintReport writes one line per branch in the report,
// followed by guidance for branches that conflicted.
func PrintReport(w io.Writer, report *restack.Report) {
	var conflicts []string
	for _, e := range report.Entries {
		var mark string
		switch {
		case e.Outcome.Succeeded():
			mark = _okStyle.Render("✓")
		case e.Outcome == restack.Skipped:
			mark = _skipStyle.Render("-")
		default:
			mark = _failStyle.Render("✗")
		}

		fmt.Fprintf(w, "%s %s: %s", mark, e.Branch, describe(e))
		if e.Pushed {
			fmt.Fprint(w, " (pushed)")
		}
		fmt.Fprintln(w)

		if e.PushErr != nil {
			fmt.Fprintf(w, "  %s\n", _failStyle.Render("push failed: "+e.PushErr.Error()))
		}
		if e.Outcome == restack.Conflict {
			conflicts = append(conflicts, e.Branch)
		}
	}

	for _, b := range conflicts {
		fmt.Fprintln(w, _hintStyle.Render(fmt.Sprintf(
			"%v: resolve the conflict with its parent, then run 'pq update %v'", b, b)))
	}
}

func describe(e *restack.Entry) string {
	switch e.Outcome {
	case restack.Updated:
		return "updated onto " + e.Parent
	case restack.AlreadyUpToDate:
		return "already up to date"
	case restack.Conflict:
		return "conflict with " + e.Parent
	case restack.Skipped:
		return "skipped because " + e.Cause + " was not updated"
	case restack.AdapterError:
		if e.Err != nil {
			return "failed: " + e.Err.Error()
		}
		return "failed"
	default:
		return e.Outcome.String()
	}
}
