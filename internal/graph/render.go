package graph

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style configures the visual appearance of a rendered graph.
type Style struct {
	// Connector styles the box-drawing characters between branches.
	Connector lipgloss.Style

	// Current styles the current branch and its marker.
	Current lipgloss.Style

	// Trunk styles trunk branches.
	Trunk lipgloss.Style

	// Untracked styles roots that are neither tracked nor trunk.
	Untracked lipgloss.Style
}

// DefaultStyle returns the style used to render graphs in the terminal.
func DefaultStyle() *Style {
	return &Style{
		Connector: lipgloss.NewStyle().Faint(true),
		Current: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}).
			Bold(true),
		Trunk:     lipgloss.NewStyle().Bold(true),
		Untracked: lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyle returns a style that adds no formatting.
func PlainStyle() *Style {
	return &Style{
		Connector: lipgloss.NewStyle(),
		Current:   lipgloss.NewStyle(),
		Trunk:     lipgloss.NewStyle(),
		Untracked: lipgloss.NewStyle(),
	}
}

// RenderOptions configures Render.
type RenderOptions struct {
	// Roots are the branches to render trees for.
	// Defaults to [Graph.Roots].
	Roots []string

	// Style defaults to [DefaultStyle].
	Style *Style
}

const (
	_currentMarker = "* "
	_noMarker      = "  "

	_branchJoint = "├── "
	_lastJoint   = "└── "
	_pipeIndent  = "│   "
	_blankIndent = "    "
)

// Render draws the trees rooted at the requested roots, one line per branch.
// Children are listed in sorted order beneath their parent,
// and the line for current is marked with a '*'.
//
//	  main
//	  ├── feat1
//	* │   └── feat1.1
//	  └── feat2
func (g *Graph) Render(current string, opts RenderOptions) string {
	roots := opts.Roots
	if roots == nil {
		roots = g.Roots()
	}
	style := opts.Style
	if style == nil {
		style = DefaultStyle()
	}

	type frame struct {
		branch string
		indent string // inherited from ancestors
		joint  string // empty for roots
	}

	var (
		sb    strings.Builder
		seen  = make(map[string]struct{})
		stack []frame
	)
	for _, root := range roots {
		stack = append(stack[:0], frame{branch: root})
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, ok := seen[f.branch]; ok {
				continue
			}
			seen[f.branch] = struct{}{}

			if f.branch == current {
				sb.WriteString(style.Current.Render(_currentMarker))
			} else {
				sb.WriteString(_noMarker)
			}
			if f.indent != "" || f.joint != "" {
				sb.WriteString(style.Connector.Render(f.indent + f.joint))
			}
			sb.WriteString(g.styleName(style, f.branch, current))
			sb.WriteByte('\n')

			childIndent := f.indent
			switch f.joint {
			case _branchJoint:
				childIndent += _pipeIndent
			case _lastJoint:
				childIndent += _blankIndent
			}

			// Push in reverse so the first child pops first.
			children := g.children[f.branch]
			for i, child := range slices.Backward(children) {
				joint := _branchJoint
				if i == len(children)-1 {
					joint = _lastJoint
				}
				stack = append(stack, frame{
					branch: child,
					indent: childIndent,
					joint:  joint,
				})
			}
		}
	}

	return sb.String()
}

func (g *Graph) styleName(style *Style, branch, current string) string {
	switch {
	case branch == current:
		return style.Current.Render(branch)
	case g.IsTrunk(branch):
		return style.Trunk.Render(branch)
	case !g.IsTracked(branch):
		return style.Untracked.Render(branch)
	default:
		return branch
	}
}
