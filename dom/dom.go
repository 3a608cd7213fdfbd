// Package dom abstracts the small slice of the document object model the
// renderer touches: selector lookup, element and text-node creation, child
// append/clear, attribute assignment and event-listener registration.
//
// Two backends implement it: dom/jsdom drives a real browser document through
// syscall/js, and dom/memdom keeps an in-memory document so the renderer can
// run and be tested without a browser.
package dom

// Node is a handle to a live node owned by a Document. Handles are only
// meaningful within the Document that created them.
type Node interface {
	// NodeName reports the DOM node name: the uppercase tag name for
	// elements, "#text" for text nodes.
	NodeName() string
}

// Element is a handle to a live element.
type Element interface {
	Node

	// SetAttribute sets a literal attribute on the element, replacing any
	// existing value.
	SetAttribute(name, value string)

	// AppendChild appends child as the element's last child. The child must
	// originate from the same Document.
	AppendChild(child Node)

	// ClearChildren removes all of the element's children.
	ClearChildren()

	// AddEventListener registers a handler for the named DOM event and
	// returns a release function that detaches the handler and frees any
	// backend resources held for it. Release is idempotent.
	AddEventListener(event string, handler func(Event)) (release func())
}

// Document creates nodes and resolves selectors against a live document.
type Document interface {
	// QuerySelector returns the first element matching the CSS selector, or
	// false if nothing matches (or the selector is invalid).
	QuerySelector(selector string) (Element, bool)

	// CreateElement creates a detached element with the given tag.
	CreateElement(tag string) Element

	// CreateTextNode creates a detached text node.
	CreateTextNode(text string) Node
}

// Event is the renderer-facing view of a fired DOM event.
type Event interface {
	// Type reports the DOM event type, such as "click" or "keypress".
	Type() string

	// Key reports the key value for keyboard events, empty otherwise.
	Key() string
}
