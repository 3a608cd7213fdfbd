// Package events defines the outbound UI event payload shapes and the table
// mapping render-tree event attributes to DOM listeners.
package events

import "github.com/vcrobe/treedom/dom"

// Event categories tagged onto outbound dispatches so the host can decode the
// payload without inspecting it.
const (
	CategoryMouse    = "mouse"
	CategoryKeyboard = "keyboard"
)

// MouseEventArgs is the payload raised for mouse events.
type MouseEventArgs struct {
	Type string
}

// KeyboardEventArgs is the payload raised for keyboard events.
type KeyboardEventArgs struct {
	Type string
	Key  string
}

// Binding describes how one event attribute on a render-tree node becomes a
// live DOM listener: which DOM event to subscribe to, the category tag for
// the outbound dispatch, and how to build the payload from the fired event.
type Binding struct {
	DOMEvent string
	Category string
	Payload  func(dom.Event) any
}

// Registry maps render-tree attribute names (such as "onclick") to bindings.
// Attribute names absent from the registry are applied as literal DOM
// attributes. Supporting a new event kind is a new table entry, not a new
// code path.
type Registry map[string]Binding

// Lookup reports the binding for an attribute name, if one is registered.
func (r Registry) Lookup(attributeName string) (Binding, bool) {
	b, ok := r[attributeName]
	return b, ok
}

// Default returns the standard registry: onclick and onkeypress.
func Default() Registry {
	return Registry{
		"onclick": {
			DOMEvent: "click",
			Category: CategoryMouse,
			Payload: func(dom.Event) any {
				return MouseEventArgs{Type: "click"}
			},
		},
		"onkeypress": {
			DOMEvent: "keypress",
			Category: CategoryKeyboard,
			Payload: func(evt dom.Event) any {
				return KeyboardEventArgs{Type: evt.Type(), Key: evt.Key()}
			},
		},
	}
}
