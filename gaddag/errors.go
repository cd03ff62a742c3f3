package gaddag

import "fmt"

// ForceArcError is returned when the force_arc rule is violated during
// construction: an arc already exists for the given letter but points to a
// different node than the one construction is trying to share. This is a
// fatal invariant violation — construction cannot recover from it.
type ForceArcError struct {
	Letter          byte
	ExistingTarget  NodeRef
	RequestedTarget NodeRef
}

func (e *ForceArcError) Error() string {
	return fmt.Sprintf(
		"gaddag: force_arc contradiction on letter %q: existing target %d, requested target %d",
		e.Letter, e.ExistingTarget, e.RequestedTarget)
}
