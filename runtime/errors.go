package runtime

import (
	"fmt"

	"github.com/vcrobe/treedom/rendertree"
)

// ElementNotFoundError is returned by AttachRoot when the selector matches no
// element in the document.
type ElementNotFoundError struct {
	Selector string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("no element matches selector %q", e.Selector)
}

// UnknownComponentError is returned by Render or Detach for a component
// identity that has no recorded container.
type UnknownComponentError struct {
	ComponentID string
}

func (e *UnknownComponentError) Error() string {
	return fmt.Sprintf("no container attached for component %q", e.ComponentID)
}

// MalformedTreeError indicates the host produced a render tree violating the
// flattening contract, such as an attribute node outside the leading prefix
// of an element's descendant range. Not locally recoverable.
type MalformedTreeError struct {
	Index  int
	Reason string
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed render tree at index %d: %s", e.Index, e.Reason)
}

// UnhandledNodeKindError indicates a node kind the insertion dispatch does
// not know. A programming error, not a runtime condition to recover from.
type UnhandledNodeKindError struct {
	Kind rendertree.Kind
}

func (e *UnhandledNodeKindError) Error() string {
	return fmt.Sprintf("unhandled render tree node kind %d (%s)", int(e.Kind), e.Kind)
}
