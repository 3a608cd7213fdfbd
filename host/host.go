// Package host declares the two contracts the renderer consumes from the
// component runtime that produces render trees: fetching render info for a
// nested child component, and raising UI events back to the host.
//
// Both collaborators are injected into the renderer at construction; the
// renderer never resolves them lazily or holds them in package state.
package host

import "github.com/vcrobe/treedom/rendertree"

// ChildRenderInfo is the host's answer for a nested component: the child's
// own identity and its flat render tree.
type ChildRenderInfo struct {
	ComponentID string
	Tree        []rendertree.Node
	TreeLength  int
}

// RenderInfoProvider resolves a component node encountered during insertion
// into the child component's identity and render tree. nodeIndex is the
// component node's index within the parent's flat array. The call is
// synchronous; the renderer recurses into the returned tree before resuming
// the parent's insertion.
type RenderInfoProvider interface {
	ChildRenderInfo(parentComponentID string, nodeIndex int) (ChildRenderInfo, error)
}

// EventSink receives UI events raised by DOM listeners the renderer attached.
// nodeIndex is the flat-array index of the attribute node that registered the
// listener, rendered as a decimal string per the interop contract.
// Delivery is fire-and-forget: the renderer logs a returned error and
// otherwise ignores it.
type EventSink interface {
	DispatchEvent(componentID, nodeIndex, eventCategory, eventPayloadJSON string) error
}
