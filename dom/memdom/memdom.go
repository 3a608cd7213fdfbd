// Package memdom is an in-memory dom.Document built on golang.org/x/net/html.
//
// It exists so the renderer can run natively: tests construct a document,
// render into it, inspect the resulting markup and dispatch synthetic events,
// all without a browser or WASM toolchain. Selector lookup uses cascadia,
// which implements standard CSS selector matching over x/net/html trees.
package memdom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/vcrobe/treedom/dom"
)

// Document is an in-memory DOM document.
type Document struct {
	root      *html.Node
	listeners map[*html.Node]map[string][]*listener
}

type listener struct {
	handler func(dom.Event)
}

// Compile-time assertion that Document implements the dom.Document interface.
var _ dom.Document = (*Document)(nil)

// New returns an empty document: <html><head></head><body></body></html>.
func New() *Document {
	root := &html.Node{Type: html.DocumentNode}
	htmlEl := &html.Node{Type: html.ElementNode, Data: "html"}
	head := &html.Node{Type: html.ElementNode, Data: "head"}
	body := &html.Node{Type: html.ElementNode, Data: "body"}
	root.AppendChild(htmlEl)
	htmlEl.AppendChild(head)
	htmlEl.AppendChild(body)
	return newDocument(root)
}

// Parse builds a document from an HTML source string using the standard
// parsing rules of golang.org/x/net/html (a full document is synthesized
// around fragments).
func Parse(src string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return newDocument(root), nil
}

func newDocument(root *html.Node) *Document {
	return &Document{
		root:      root,
		listeners: make(map[*html.Node]map[string][]*listener),
	}
}

// QuerySelector returns the first element matching the CSS selector. An
// invalid selector behaves like a selector that matches nothing.
func (d *Document) QuerySelector(selector string) (dom.Element, bool) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, false
	}
	node := cascadia.Query(d.root, sel)
	if node == nil {
		return nil, false
	}
	return d.wrap(node), true
}

// CreateElement creates a detached element with the given tag.
func (d *Document) CreateElement(tag string) dom.Element {
	return d.wrap(&html.Node{Type: html.ElementNode, Data: strings.ToLower(tag)})
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) dom.Node {
	return &Text{node: &html.Node{Type: html.TextNode, Data: text}}
}

// Body returns the document's <body> element.
func (d *Document) Body() (*Element, bool) {
	el, ok := d.QuerySelector("body")
	if !ok {
		return nil, false
	}
	return el.(*Element), true
}

func (d *Document) wrap(node *html.Node) *Element {
	return &Element{doc: d, node: node}
}

// dropListeners forgets all listeners registered on the node and its subtree.
// Mirrors the browser, where listeners die with the removed nodes.
func (d *Document) dropListeners(node *html.Node) {
	delete(d.listeners, node)
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		d.dropListeners(c)
	}
}

// Element wraps one element node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

var _ dom.Element = (*Element)(nil)

// NodeName reports the uppercase tag name.
func (e *Element) NodeName() string { return strings.ToUpper(e.node.Data) }

// SetAttribute sets an attribute, replacing any existing value.
func (e *Element) SetAttribute(name, value string) {
	for i, attr := range e.node.Attr {
		if attr.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// AppendChild appends a child created by the same Document. Nodes from a
// different backend are ignored.
func (e *Element) AppendChild(child dom.Node) {
	var node *html.Node
	switch c := child.(type) {
	case *Element:
		node = c.node
	case *Text:
		node = c.node
	default:
		return
	}
	if node.Parent != nil {
		node.Parent.RemoveChild(node)
	}
	e.node.AppendChild(node)
}

// ClearChildren removes all children, dropping any listeners registered on
// the removed subtree.
func (e *Element) ClearChildren() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.doc.dropListeners(c)
		e.node.RemoveChild(c)
		c = next
	}
}

// AddEventListener registers a handler for the named event. The returned
// release function detaches it; calling release more than once is harmless.
func (e *Element) AddEventListener(event string, handler func(dom.Event)) func() {
	byEvent := e.doc.listeners[e.node]
	if byEvent == nil {
		byEvent = make(map[string][]*listener)
		e.doc.listeners[e.node] = byEvent
	}
	entry := &listener{handler: handler}
	byEvent[event] = append(byEvent[event], entry)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		current := e.doc.listeners[e.node][event]
		for i, l := range current {
			if l == entry {
				e.doc.listeners[e.node][event] = append(current[:i:i], current[i+1:]...)
				break
			}
		}
	}
}

// Dispatch synchronously invokes every listener registered on this element
// for the event's type. There is no bubbling; the renderer attaches listeners
// directly to the elements it creates.
func (e *Element) Dispatch(evt dom.Event) {
	registered := e.doc.listeners[e.node][evt.Type()]
	invoked := make([]*listener, len(registered))
	copy(invoked, registered)
	for _, l := range invoked {
		l.handler(evt)
	}
}

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return ""
		}
	}
	return sb.String()
}

// OuterHTML serializes the element itself including its children.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	if err := html.Render(&sb, e.node); err != nil {
		return ""
	}
	return sb.String()
}

// HTMLNode exposes the underlying x/net/html node for direct inspection.
func (e *Element) HTMLNode() *html.Node { return e.node }

// Text wraps one text node of a Document.
type Text struct {
	node *html.Node
}

var _ dom.Node = (*Text)(nil)

// NodeName reports "#text".
func (t *Text) NodeName() string { return "#text" }

// Event is a synthetic DOM event for tests and native embedders.
type Event struct {
	eventType string
	key       string
}

var _ dom.Event = Event{}

// NewEvent builds a synthetic event. key may be empty for non-keyboard events.
func NewEvent(eventType, key string) Event {
	return Event{eventType: eventType, key: key}
}

// Type reports the event type.
func (e Event) Type() string { return e.eventType }

// Key reports the key value, empty for non-keyboard events.
func (e Event) Key() string { return e.key }
