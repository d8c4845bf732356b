package mustache

import "errors"

// Invariant violations. These are raised with panic, never returned: they
// indicate a bug in the engine or in a Helper, not bad template data.
var (
	// ErrEmptyStack is raised when Pop is called on an empty Context.
	ErrEmptyStack = errors.New("mustache: pop on empty context stack")

	// ErrUnbalancedStack is raised when a render leaves the Context at a
	// different depth than it found it.
	ErrUnbalancedStack = errors.New("mustache: unbalanced context stack")

	// ErrSectionReleased is raised when a Helper uses its Section handle
	// after RenderSection has returned.
	ErrSectionReleased = errors.New("mustache: section handle used after helper returned")
)
