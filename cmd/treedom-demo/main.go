//go:build js || wasm
// +build js wasm

// Command treedom-demo mounts the renderer in a browser page with a small
// in-Go host: a parent component containing a nested child, with click and
// keypress events logged to the browser console. The page needs a
// <div id="app"> container.
package main

import (
	"github.com/vcrobe/treedom/console"
	"github.com/vcrobe/treedom/dom/jsdom"
	"github.com/vcrobe/treedom/host"
	"github.com/vcrobe/treedom/rendertree"
	"github.com/vcrobe/treedom/runtime"
)

// demoHost is a static stand-in for the component runtime: it serves one
// fixed child tree and logs every event the renderer raises.
type demoHost struct{}

func (demoHost) ChildRenderInfo(parentComponentID string, nodeIndex int) (host.ChildRenderInfo, error) {
	return host.ChildRenderInfo{
		ComponentID: "greeting-child",
		Tree: []rendertree.Node{
			rendertree.Element("p", 1),
			rendertree.Text("Hello from a nested component."),
		},
		TreeLength: 2,
	}, nil
}

func (demoHost) DispatchEvent(componentID, nodeIndex, eventCategory, eventPayloadJSON string) error {
	console.Log("event from", componentID, "node", nodeIndex, eventCategory, eventPayloadJSON)
	return nil
}

func main() {
	// 1. Grab the browser document.
	doc, ok := jsdom.Global()
	if !ok {
		panic("no browser document available")
	}

	// 2. Create the renderer with the demo host as both collaborators.
	h := demoHost{}
	renderer := runtime.NewRenderer(doc, h, h)

	// 3. Attach the root component to the page's mount element.
	if err := renderer.AttachRoot("#app", "demo-root"); err != nil {
		panic("attaching root: " + err.Error())
	}

	// 4. Render the root tree: a heading, a clickable button, a text input
	// and a nested component.
	tree := []rendertree.Node{
		rendertree.Element("h1", 1),                      // 0
		rendertree.Text("treedom demo"),                  // 1
		rendertree.Element("button", 4),                  // 2
		rendertree.Attribute("onclick", ""),              // 3
		rendertree.Text("Click me"),                      // 4
		rendertree.Element("input", 7),                   // 5
		rendertree.Attribute("onkeypress", ""),           // 6
		rendertree.Attribute("placeholder", "Type here"), // 7
		rendertree.Component(),                           // 8
	}
	if err := renderer.Render("demo-root", tree, len(tree)); err != nil {
		panic("rendering: " + err.Error())
	}

	// Keep the Go program running so event callbacks stay alive.
	select {}
}
