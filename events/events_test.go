package events

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vcrobe/treedom/dom"
	"github.com/vcrobe/treedom/dom/memdom"
)

// TestDefault_RegistersClosedEventSet verifies the standard registry binds
// exactly onclick and onkeypress and leaves everything else unbound.
func TestDefault_RegistersClosedEventSet(t *testing.T) {
	reg := Default()

	click, ok := reg.Lookup("onclick")
	if !ok {
		t.Fatal("Expected onclick to be registered")
	}
	if click.DOMEvent != "click" {
		t.Errorf("Expected DOM event 'click', got %q", click.DOMEvent)
	}
	if click.Category != CategoryMouse {
		t.Errorf("Expected category %q, got %q", CategoryMouse, click.Category)
	}

	keypress, ok := reg.Lookup("onkeypress")
	if !ok {
		t.Fatal("Expected onkeypress to be registered")
	}
	if keypress.DOMEvent != "keypress" {
		t.Errorf("Expected DOM event 'keypress', got %q", keypress.DOMEvent)
	}
	if keypress.Category != CategoryKeyboard {
		t.Errorf("Expected category %q, got %q", CategoryKeyboard, keypress.Category)
	}

	if _, ok := reg.Lookup("onmouseover"); ok {
		t.Error("Expected onmouseover to be unregistered")
	}
	if _, ok := reg.Lookup("class"); ok {
		t.Error("Expected plain attributes to be unregistered")
	}
}

// TestDefault_MousePayloadShape verifies the fixed click payload.
func TestDefault_MousePayloadShape(t *testing.T) {
	binding, _ := Default().Lookup("onclick")

	payload := binding.Payload(memdom.NewEvent("click", ""))

	want := MouseEventArgs{Type: "click"}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("Mouse payload mismatch (-want +got):\n%s", diff)
	}
}

// TestDefault_KeyboardPayloadCapturesEvent verifies the keyboard payload is
// built from the fired event rather than being fixed.
func TestDefault_KeyboardPayloadCapturesEvent(t *testing.T) {
	binding, _ := Default().Lookup("onkeypress")

	payload := binding.Payload(memdom.NewEvent("keypress", "Enter"))

	want := KeyboardEventArgs{Type: "keypress", Key: "Enter"}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("Keyboard payload mismatch (-want +got):\n%s", diff)
	}
}

// TestRegistry_CustomEntry verifies event kinds can be added as data.
func TestRegistry_CustomEntry(t *testing.T) {
	reg := Default()
	reg["onmousedown"] = Binding{
		DOMEvent: "mousedown",
		Category: CategoryMouse,
		Payload: func(evt dom.Event) any {
			return MouseEventArgs{Type: evt.Type()}
		},
	}

	binding, ok := reg.Lookup("onmousedown")
	if !ok {
		t.Fatal("Expected onmousedown to be registered after insertion")
	}
	payload := binding.Payload(memdom.NewEvent("mousedown", ""))
	want := MouseEventArgs{Type: "mousedown"}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("Custom payload mismatch (-want +got):\n%s", diff)
	}
}
