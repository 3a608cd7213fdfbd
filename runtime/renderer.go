// Package runtime materializes flat render trees into live DOM.
//
// The host component runtime attaches a component identity to a container
// element once, then hands the renderer a flat, pre-order render tree per
// render pass. Each pass fully clears the container and re-inserts the whole
// tree; nested components are resolved synchronously through the injected
// host.RenderInfoProvider, and event listeners raise structured payloads back
// through the injected host.EventSink.
package runtime

import "github.com/vcrobe/treedom/rendertree"

// Renderer is the surface the host embedding layer drives.
type Renderer interface {
	// AttachRoot binds a component identity to the first element matching
	// the CSS selector. It performs no DOM mutation beyond the lookup and
	// overwrites any prior binding for the same identity.
	AttachRoot(selector, componentID string) error

	// Render replaces the bound container's children with the DOM produced
	// from tree[0:treeLength]. Always a full clear and rebuild; a failed
	// render leaves the DOM as mutated up to the error, with no rollback.
	Render(componentID string, tree []rendertree.Node, treeLength int) error

	// Detach forgets a component: its container binding is removed, its
	// listeners are released and any nested components it registered are
	// detached recursively. The container's children are left in place.
	Detach(componentID string) error
}
