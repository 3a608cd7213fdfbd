//go:build js || wasm
// +build js wasm

// Package jsdom is the browser dom.Document backend, driving the real
// document through syscall/js.
package jsdom

import (
	"syscall/js"

	"github.com/vcrobe/treedom/dom"
)

// Document wraps the browser's global document object.
type Document struct {
	value js.Value
}

// Compile-time assertion that Document implements the dom.Document interface.
var _ dom.Document = (*Document)(nil)

// Global returns the browser document, or false when no document is available
// (for example when running outside a browser host).
func Global() (*Document, bool) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, false
	}
	return &Document{value: doc}, true
}

// QuerySelector returns the first element matching the CSS selector.
func (d *Document) QuerySelector(selector string) (dom.Element, bool) {
	el := d.value.Call("querySelector", selector)
	if !el.Truthy() {
		return nil, false
	}
	return &Element{value: el}, true
}

// CreateElement creates a detached element with the given tag.
func (d *Document) CreateElement(tag string) dom.Element {
	return &Element{value: d.value.Call("createElement", tag)}
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) dom.Node {
	return &Text{value: d.value.Call("createTextNode", text)}
}

// jsValuer lets Element and Text hand their underlying js.Value to appendChild
// without widening the dom interfaces.
type jsValuer interface {
	jsValue() js.Value
}

// Element wraps a browser element.
type Element struct {
	value js.Value
}

var _ dom.Element = (*Element)(nil)

func (e *Element) jsValue() js.Value { return e.value }

// NodeName reports the element's nodeName (uppercase tag name).
func (e *Element) NodeName() string {
	return e.value.Get("nodeName").String()
}

// SetAttribute sets a literal attribute on the element.
func (e *Element) SetAttribute(name, value string) {
	e.value.Call("setAttribute", name, value)
}

// AppendChild appends a child created by this backend. Nodes from a different
// backend are ignored.
func (e *Element) AppendChild(child dom.Node) {
	jv, ok := child.(jsValuer)
	if !ok {
		return
	}
	e.value.Call("appendChild", jv.jsValue())
}

// ClearChildren removes all children by resetting innerHTML.
func (e *Element) ClearChildren() {
	e.value.Set("innerHTML", "")
}

// AddEventListener registers a handler for the named event. The returned
// release function removes the listener and releases the underlying js.Func;
// callers must invoke it when the element's subtree is discarded, or the
// callback leaks on the JS side.
func (e *Element) AddEventListener(event string, handler func(dom.Event)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		var evt js.Value
		if len(args) > 0 {
			evt = args[0]
		}
		handler(Event{value: evt})
		return nil
	})
	e.value.Call("addEventListener", event, cb)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		e.value.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

// Text wraps a browser text node.
type Text struct {
	value js.Value
}

var _ dom.Node = (*Text)(nil)

func (t *Text) jsValue() js.Value { return t.value }

// NodeName reports "#text".
func (t *Text) NodeName() string { return "#text" }

// Event wraps a fired browser event.
type Event struct {
	value js.Value
}

var _ dom.Event = Event{}

// Type reports the DOM event type.
func (e Event) Type() string {
	if !e.value.Truthy() {
		return ""
	}
	return e.value.Get("type").String()
}

// Key reports the key value for keyboard events, empty otherwise.
func (e Event) Key() string {
	if !e.value.Truthy() {
		return ""
	}
	key := e.value.Get("key")
	if key.Type() != js.TypeString {
		return ""
	}
	return key.String()
}
