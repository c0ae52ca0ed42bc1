// Package update restacks the branches above a branch
// and reports the outcome to the user.
package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SarthakJariwala/panqake/internal/graph"
	"github.com/SarthakJariwala/panqake/internal/restack"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/ui"
)

//go:generate mockgen -destination=mocks_test.go -package=update . Engine,GraphLoader

// ErrIncomplete indicates that some branches could not be updated.
// The report printed to the user names them.
var ErrIncomplete = errors.New("some branches were not updated")

// Engine restacks branches.
type Engine interface {
	Run(ctx context.Context, g *graph.Graph, req restack.Request) (*restack.Report, error)
}

var _ Engine = (*restack.Engine)(nil)

// GraphLoader loads the branch graph.
type GraphLoader interface {
	Graph(ctx context.Context) (*graph.Graph, error)
}

// Handler updates stacks.
type Handler struct {
	Log    *silog.Logger // required
	View   ui.View       // required
	Graph  GraphLoader   // required
	Engine Engine        // required
}

// Request is a request to update a branch and its descendants.
type Request struct {
	// Branch whose descendants are updated.
	// Branch itself is updated too if it has a parent.
	Branch string // required

	Push bool

	// NewBranches are pushed even if the remote doesn't have them.
	NewBranches []string

	// Yes skips the confirmation prompt.
	Yes bool
}

// Update restacks req.Branch and the branches above it,
// and prints a report of the outcome.
//
// It returns ErrIncomplete if some branches failed
// and a [*restack.FailedError] if all of them did.
func (h *Handler) Update(ctx context.Context, req *Request) (*restack.Report, error) {
	g, err := h.Graph.Graph(ctx)
	if err != nil {
		return nil, err
	}

	var affected []string
	if _, ok := g.ParentOf(req.Branch); ok {
		affected = append(affected, req.Branch)
	}
	affected = append(affected, g.DescendantsOf(req.Branch)...)
	if len(affected) == 0 {
		h.Log.Infof("%v: no branches to update", req.Branch)
		return new(restack.Report), nil
	}

	if !req.Yes && ui.Interactive(h.View) {
		ok := true
		prompt := ui.NewConfirm().
			WithTitle(fmt.Sprintf("Update %d branches?", len(affected))).
			WithDescription(strings.Join(affected, ", ")).
			WithValue(&ok)
		if err := ui.Run(h.View, prompt); err != nil {
			return nil, fmt.Errorf("prompt: %w", err)
		}
		if !ok {
			return nil, errors.New("update aborted")
		}
	}

	report, runErr := h.Engine.Run(ctx, g, restack.Request{
		Start:       req.Branch,
		Push:        req.Push,
		NewBranches: req.NewBranches,
	})
	if report != nil {
		PrintReport(h.View, report)
	}
	if runErr != nil {
		return report, runErr
	}

	if err := report.Err(); err != nil {
		return report, err
	}
	if !report.OK() {
		return report, ErrIncomplete
	}
	return report, nil
}
