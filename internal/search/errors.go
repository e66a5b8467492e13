package search

import "fmt"

// UnknownObjectError reports an object name absent from the registry.
// The searcher returns it before any oracle call is made.
type UnknownObjectError struct {
	Object string
}

func (e *UnknownObjectError) Error() string {
	return fmt.Sprintf("unknown object %q", e.Object)
}
