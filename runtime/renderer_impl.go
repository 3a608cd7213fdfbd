package runtime

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vcrobe/treedom/console"
	"github.com/vcrobe/treedom/dom"
	"github.com/vcrobe/treedom/events"
	"github.com/vcrobe/treedom/host"
	"github.com/vcrobe/treedom/rendertree"
)

// componentContainerTag is the neutral wrapper element created for nested
// components, keeping a child's subtree isolated from its parent's container.
const componentContainerTag = "tree-component"

// Compile-time assertion to ensure the concrete RendererImpl implements the
// Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the concrete implementation of the Renderer interface.
// It owns the component identity map (component identity to container
// element) along with the listener and child bookkeeping needed to tear a
// component's output down again.
//
// All methods must be called from the single UI thread; the renderer performs
// no synchronization of its own.
type RendererImpl struct {
	doc      dom.Document
	provider host.RenderInfoProvider
	sink     host.EventSink
	bindings events.Registry

	wrapperTag string

	// containers is the component identity map: exactly one live container
	// per component identity.
	containers map[string]dom.Element

	// releases holds, per component, the release funcs of every DOM listener
	// attached during its last render.
	releases map[string][]func()

	// children holds, per component, the identities of nested components
	// registered during its last render, so re-render and Detach can tear
	// them down recursively instead of leaking stale identity-map entries.
	children map[string][]string
}

// Option configures a renderer at construction.
type Option func(*RendererImpl)

// WithEventBindings replaces the default event registry (onclick and
// onkeypress) with a custom one.
func WithEventBindings(reg events.Registry) Option {
	return func(r *RendererImpl) {
		r.bindings = reg
	}
}

// WithComponentContainerTag overrides the wrapper tag created for nested
// components.
func WithComponentContainerTag(tag string) Option {
	return func(r *RendererImpl) {
		r.wrapperTag = tag
	}
}

// NewRenderer creates a renderer over the given document with its host
// collaborators. Every collaborator is required; there is no lazy resolution.
func NewRenderer(doc dom.Document, provider host.RenderInfoProvider, sink host.EventSink, opts ...Option) *RendererImpl {
	r := &RendererImpl{
		doc:        doc,
		provider:   provider,
		sink:       sink,
		bindings:   events.Default(),
		wrapperTag: componentContainerTag,
		containers: make(map[string]dom.Element),
		releases:   make(map[string][]func()),
		children:   make(map[string][]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AttachRoot resolves the selector against the document and records the
// component identity against the matched element, overwriting any prior
// binding for that identity.
func (r *RendererImpl) AttachRoot(selector, componentID string) error {
	el, ok := r.doc.QuerySelector(selector)
	if !ok {
		return &ElementNotFoundError{Selector: selector}
	}
	r.containers[componentID] = el
	return nil
}

// Render clears the component's container and inserts tree[0:treeLength]
// into it. Nested components are rendered recursively under the same
// full-rebuild policy.
func (r *RendererImpl) Render(componentID string, tree []rendertree.Node, treeLength int) error {
	container, ok := r.containers[componentID]
	if !ok {
		return &UnknownComponentError{ComponentID: componentID}
	}

	// The previous render of this component is discarded wholesale: nested
	// components it registered, listeners it attached, then the DOM itself.
	r.forgetChildren(componentID)
	r.releaseListeners(componentID)
	container.ClearChildren()

	if treeLength <= 0 {
		return nil
	}
	return r.insertRange(componentID, container, tree, 0, treeLength-1)
}

// Detach removes the component's identity-map entry, releases its listeners
// and recursively detaches nested components it registered. The DOM under
// the container is not modified.
func (r *RendererImpl) Detach(componentID string) error {
	if _, ok := r.containers[componentID]; !ok {
		return &UnknownComponentError{ComponentID: componentID}
	}
	r.forgetChildren(componentID)
	r.releaseListeners(componentID)
	delete(r.containers, componentID)
	return nil
}

// forgetChildren recursively unregisters every nested component recorded
// under componentID during its last render.
func (r *RendererImpl) forgetChildren(componentID string) {
	for _, childID := range r.children[componentID] {
		r.forgetChildren(childID)
		r.releaseListeners(childID)
		delete(r.containers, childID)
	}
	delete(r.children, componentID)
}

// releaseListeners detaches every DOM listener attached for componentID.
func (r *RendererImpl) releaseListeners(componentID string) {
	for _, release := range r.releases[componentID] {
		release()
	}
	delete(r.releases, componentID)
}

// insertRange walks the flat array from start to end inclusive at sibling
// level, inserting each node under domParent. An element's descendants are
// handled inside insertNode; the sibling loop jumps over them using the
// element's descendants-end index.
func (r *RendererImpl) insertRange(componentID string, domParent dom.Element, tree []rendertree.Node, start, end int) error {
	i := start
	for i <= end {
		node := tree[i]
		if err := r.insertNode(componentID, domParent, tree, node, i); err != nil {
			return err
		}
		if skip := node.DescendantsEndIndex(); skip > 0 {
			i = skip
		}
		i++
	}
	return nil
}

func (r *RendererImpl) insertNode(componentID string, domParent dom.Element, tree []rendertree.Node, node rendertree.Node, index int) error {
	switch node.Kind() {
	case rendertree.KindText:
		domParent.AppendChild(r.doc.CreateTextNode(node.TextContent()))
		return nil
	case rendertree.KindElement:
		return r.insertElement(componentID, domParent, tree, node, index)
	case rendertree.KindAttribute:
		// Attributes are consumed by the owning element's prefix scan in
		// insertElement; reaching one here means the host emitted it after a
		// non-attribute sibling.
		return &MalformedTreeError{
			Index:  index,
			Reason: "attribute nodes must only appear as leading children of an element",
		}
	case rendertree.KindComponent:
		return r.insertComponent(componentID, domParent, index)
	default:
		return &UnhandledNodeKindError{Kind: node.Kind()}
	}
}

// insertElement creates the element, applies the contiguous attribute prefix
// of its descendant range, then recursively inserts the remaining descendants
// as its children.
func (r *RendererImpl) insertElement(componentID string, domParent dom.Element, tree []rendertree.Node, node rendertree.Node, index int) error {
	el := r.doc.CreateElement(node.ElementName())
	domParent.AppendChild(el)

	descendantsEnd := node.DescendantsEndIndex()
	i := index + 1
	for i <= descendantsEnd && tree[i].Kind() == rendertree.KindAttribute {
		r.applyAttribute(componentID, el, tree[i], i)
		i++
	}
	if i <= descendantsEnd {
		return r.insertRange(componentID, el, tree, i, descendantsEnd)
	}
	return nil
}

// insertComponent bootstraps a nested component: a neutral wrapper element is
// appended to the parent, the host is asked for the child's identity and
// render tree, the identity map gains the child's entry, and the child's tree
// is inserted into the wrapper.
func (r *RendererImpl) insertComponent(parentComponentID string, domParent dom.Element, index int) error {
	wrapper := r.doc.CreateElement(r.wrapperTag)
	domParent.AppendChild(wrapper)

	info, err := r.provider.ChildRenderInfo(parentComponentID, index)
	if err != nil {
		return fmt.Errorf("resolving child component at node %d of %q: %w", index, parentComponentID, err)
	}

	r.containers[info.ComponentID] = wrapper
	r.children[parentComponentID] = append(r.children[parentComponentID], info.ComponentID)

	if info.TreeLength <= 0 {
		return nil
	}
	return r.insertRange(info.ComponentID, wrapper, info.Tree, 0, info.TreeLength-1)
}

// applyAttribute applies one attribute node to el: registered event
// attributes become listeners that raise events tagged with the owning
// component identity and this node's flat-array index; anything else is a
// literal DOM attribute.
func (r *RendererImpl) applyAttribute(componentID string, el dom.Element, node rendertree.Node, index int) {
	name := node.AttributeName()
	binding, ok := r.bindings.Lookup(name)
	if !ok {
		el.SetAttribute(name, node.AttributeValue())
		return
	}

	release := el.AddEventListener(binding.DOMEvent, func(evt dom.Event) {
		r.raiseEvent(componentID, index, binding.Category, binding.Payload(evt))
	})
	r.releases[componentID] = append(r.releases[componentID], release)
}

// raiseEvent serializes the payload and forwards it to the host event sink.
// Fire-and-forget: delivery failures are logged, never propagated.
func (r *RendererImpl) raiseEvent(componentID string, nodeIndex int, category string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		console.Error("treedom: marshaling", category, "event payload:", err.Error())
		return
	}
	if err := r.sink.DispatchEvent(componentID, strconv.Itoa(nodeIndex), category, string(data)); err != nil {
		console.Warn("treedom: delivering", category, "event:", err.Error())
	}
}
