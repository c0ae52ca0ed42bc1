// Package forge describes the code hosting service
// that pull requests for stacked branches are opened against.
package forge

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnsubmittedBase indicates that a pull request cannot be opened
// because its base branch has not been pushed yet.
var ErrUnsubmittedBase = errors.New("base branch has not been pushed yet")

//go:generate mockgen -destination=forgetest/mocks.go -package forgetest . Repository

// Repository is a repository hosted on the forge.
type Repository interface {
	// FindPullRequest returns the open pull request for branch.
	// It returns [ErrNotFound] if there isn't one.
	FindPullRequest(ctx context.Context, branch string) (*PullRequest, error)

	// CreatePullRequest opens a new pull request.
	//
	// It returns [ErrUnsubmittedBase] if the base branch
	// does not exist on the forge.
	CreatePullRequest(ctx context.Context, req CreateRequest) (*PullRequest, error)

	// UpdateBase changes the branch a pull request merges into.
	UpdateBase(ctx context.Context, pr *PullRequest, base string) error

	// ChecksStatus reports the combined status of CI checks
	// on the head commit of a pull request.
	ChecksStatus(ctx context.Context, pr *PullRequest) (*ChecksReport, error)

	// MergePullRequest merges a pull request.
	MergePullRequest(ctx context.Context, pr *PullRequest, strategy MergeStrategy) error

	// Collaborators lists the logins of users
	// who can be asked to review pull requests.
	Collaborators(ctx context.Context) ([]string, error)
}

// PullRequest is a pull request on the forge.
type PullRequest struct {
	Number int
	URL    string
	Title  string

	// Head is the branch with the changes.
	Head string

	// Base is the branch the changes will be merged into.
	Base string

	State PRState
	Draft bool

	// NodeID is the forge's internal identifier.
	// It may be empty.
	NodeID string
}

func (pr *PullRequest) String() string {
	return fmt.Sprintf("#%d", pr.Number)
}

// CreateRequest is a request to open a pull request.
type CreateRequest struct {
	Head  string // required
	Base  string // required
	Title string // required
	Body  string
	Draft bool

	// Reviewers are logins to request reviews from.
	Reviewers []string
}

// PRState is the state of a pull request.
type PRState int

const (
	// PROpen is an open pull request.
	PROpen PRState = iota + 1

	// PRMerged is a merged pull request.
	PRMerged

	// PRClosed is a pull request closed without merging.
	PRClosed
)

func (s PRState) String() string {
	switch s {
	case PROpen:
		return "open"
	case PRMerged:
		return "merged"
	case PRClosed:
		return "closed"
	default:
		return fmt.Sprintf("PRState(%d)", int(s))
	}
}

// ChecksState summarizes the CI checks on a pull request.
type ChecksState int

const (
	// ChecksPassed means every check succeeded,
	// or there are no checks.
	ChecksPassed ChecksState = iota + 1

	// ChecksPending means some checks have not finished
	// and none have failed.
	ChecksPending

	// ChecksFailed means at least one check failed.
	ChecksFailed
)

func (s ChecksState) String() string {
	switch s {
	case ChecksPassed:
		return "passed"
	case ChecksPending:
		return "pending"
	case ChecksFailed:
		return "failed"
	default:
		return fmt.Sprintf("ChecksState(%d)", int(s))
	}
}

// CheckDetail is the state of a single check.
type CheckDetail struct {
	Name  string
	State ChecksState
	URL   string
}

// ChecksReport is the combined status of a pull request's checks.
type ChecksReport struct {
	State   ChecksState
	Details []CheckDetail
}

// Combine returns the overall state of the given checks:
// failed if any failed, pending if any are pending, passed otherwise.
func Combine(details []CheckDetail) ChecksState {
	state := ChecksPassed
	for _, d := range details {
		switch d.State {
		case ChecksFailed:
			return ChecksFailed
		case ChecksPending:
			state = ChecksPending
		}
	}
	return state
}

// MergeStrategy is the way a pull request is merged.
type MergeStrategy int

const (
	// MergeSquash squashes the changes into a single commit.
	MergeSquash MergeStrategy = iota + 1

	// MergeCommit creates a merge commit.
	MergeCommit

	// MergeRebase rebases the commits onto the base branch.
	MergeRebase
)

func (s MergeStrategy) String() string {
	b, err := s.MarshalText()
	if err != nil {
		return fmt.Sprintf("MergeStrategy(%d)", int(s))
	}
	return string(b)
}

// MarshalText implements encoding.TextMarshaler.
func (s MergeStrategy) MarshalText() ([]byte, error) {
	switch s {
	case MergeSquash:
		return []byte("squash"), nil
	case MergeCommit:
		return []byte("merge"), nil
	case MergeRebase:
		return []byte("rebase"), nil
	default:
		return nil, fmt.Errorf("unknown merge strategy: %d", int(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *MergeStrategy) UnmarshalText(b []byte) error {
	switch string(b) {
	case "squash":
		*s = MergeSquash
	case "merge":
		*s = MergeCommit
	case "rebase":
		*s = MergeRebase
	default:
		return fmt.Errorf("unknown merge strategy %q: expected squash, merge, or rebase", b)
	}
	return nil
}
