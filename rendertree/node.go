// Package rendertree defines the flat render-tree representation produced by a
// host component runtime for one render pass.
//
// A render tree is a pre-order flattening of a logical UI tree into a
// contiguous []Node: every node is immediately followed by all of its
// descendants (attributes first, then child content), up to and including the
// index reported by DescendantsEndIndex. The host owns the array; this package
// is a read-only projection over it.
package rendertree

// Kind discriminates the variants of a render tree node.
//
// The zero value is deliberately not a valid kind, so an uninitialized record
// is caught by the renderer's dispatch instead of silently rendering as
// something else.
type Kind int

const (
	// KindElement is a DOM element with a tag name and a descendant range.
	KindElement Kind = iota + 1
	// KindText is a text node.
	KindText
	// KindAttribute is an attribute applied to the nearest preceding element.
	// Attribute nodes only appear as a contiguous leading prefix of an
	// element's descendant range.
	KindAttribute
	// KindComponent is a nested component. It is a leaf in the parent's flat
	// array; the child's own subtree lives in a separate array fetched from
	// the host on demand.
	KindComponent
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindAttribute:
		return "attribute"
	case KindComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Node is one fixed-layout record in a flat render tree.
//
// Only the fields matching the node's kind carry meaning; the accessors
// perform no validation, mirroring the interop layout where every record has
// every slot. Reading a field through a kind-inappropriate accessor is
// undefined by contract. Use the per-kind constructors to build nodes.
type Node struct {
	kind                Kind
	elementName         string
	attributeName       string
	attributeValue      string
	textContent         string
	descendantsEndIndex int
}

// Element returns an element node. descendantsEndIndex is the inclusive index
// of the element's last descendant within the same flat array; zero or a
// negative value means the element has no descendants.
func Element(name string, descendantsEndIndex int) Node {
	return Node{kind: KindElement, elementName: name, descendantsEndIndex: descendantsEndIndex}
}

// Text returns a text node.
func Text(content string) Node {
	return Node{kind: KindText, textContent: content}
}

// Attribute returns an attribute node.
func Attribute(name, value string) Node {
	return Node{kind: KindAttribute, attributeName: name, attributeValue: value}
}

// Component returns a nested-component marker node. The child component's
// identity and subtree are not stored here; the renderer fetches both from
// the host using the node's position in the parent's array.
func Component() Node {
	return Node{kind: KindComponent}
}

// Kind reports the node's discriminator.
func (n Node) Kind() Kind { return n.kind }

// ElementName reports the tag name. Valid only for KindElement.
func (n Node) ElementName() string { return n.elementName }

// AttributeName reports the attribute name. Valid only for KindAttribute.
func (n Node) AttributeName() string { return n.attributeName }

// AttributeValue reports the attribute value. Valid only for KindAttribute.
func (n Node) AttributeValue() string { return n.attributeValue }

// TextContent reports the text content. Valid only for KindText.
func (n Node) TextContent() string { return n.textContent }

// DescendantsEndIndex reports the inclusive index of the node's last
// descendant in the flat array, or zero/negative if it has none. Valid only
// for KindElement.
func (n Node) DescendantsEndIndex() int { return n.descendantsEndIndex }
