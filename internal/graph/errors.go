package graph

import "fmt"

// CycleError indicates that giving Branch the parent Parent
// would make a branch its own ancestor.
type CycleError struct {
	Branch string
	Parent string
}

func (e *CycleError) Error() string {
	if e.Branch == e.Parent {
		return fmt.Sprintf("branch %v cannot be its own parent", e.Branch)
	}
	return fmt.Sprintf("cannot use %v as the parent of %v: %v is a descendant of %v",
		e.Parent, e.Branch, e.Parent, e.Branch)
}

// ProtectedBranchError indicates an attempt to modify a trunk branch
// in a way that is not allowed.
type ProtectedBranchError struct {
	Branch string

	// Op is the attempted operation, e.g. "delete".
	Op string
}

func (e *ProtectedBranchError) Error() string {
	return fmt.Sprintf("cannot %v %v: it is a trunk branch", e.Op, e.Branch)
}
