package mutate

import "fmt"

// AlreadyTrackedError indicates that a branch is already tracked.
type AlreadyTrackedError struct {
	Branch string
	Parent string // current parent, may be empty
}

func (e *AlreadyTrackedError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("branch %v is already tracked", e.Branch)
	}
	return fmt.Sprintf("branch %v is already tracked with parent %v", e.Branch, e.Parent)
}

// NotTrackedError indicates that an operation needs a tracked branch.
type NotTrackedError struct {
	Branch string
}

func (e *NotTrackedError) Error() string {
	return fmt.Sprintf("branch %v is not tracked", e.Branch)
}

// BranchNotFoundError indicates that a branch does not exist
// in the repository.
type BranchNotFoundError struct {
	Branch string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %v does not exist", e.Branch)
}

// BranchExistsError indicates that a branch name is already taken.
type BranchExistsError struct {
	Branch string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("branch %v already exists", e.Branch)
}

// UnmergedError indicates that deleting a branch would lose commits
// that are not in its base.
type UnmergedError struct {
	Branch string
	Base   string
}

func (e *UnmergedError) Error() string {
	return fmt.Sprintf("branch %v is not merged into %v (use --force to delete anyway)",
		e.Branch, e.Base)
}
