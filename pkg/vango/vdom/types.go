package vdom

// VKind represents the type of virtual node
type VKind uint8

const (
	// KindElement represents an HTML or SVG element node
	KindElement VKind = iota
	// KindText represents a text node
	KindText
	// KindFragment represents a fragment (multiple children without parent)
	KindFragment
)

// String returns the kind name, mostly for test failures
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindFragment:
		return "fragment"
	}
	return "unknown"
}

// Props represents the attributes of a VNode.
// Values are rendered with fmt's %v except for bools, which are treated as
// boolean attributes.
type Props map[string]any

// VNode represents a node in the markup tree.
// Once built, a VNode is treated as immutable by every renderer.
type VNode struct {
	// Kind determines the type of this node
	Kind VKind

	// Tag is the element tag name (e.g., "div", "svg")
	// Only used when Kind == KindElement
	Tag string

	// Props contains the attributes for this node
	Props Props

	// Kids contains child nodes
	Kids []VNode

	// Key identifies a node among its siblings
	Key string

	// Text content (only used when Kind == KindText)
	Text string
}

// NewElement creates a new element VNode. Nil children are skipped.
func NewElement(tag string, props Props, children ...*VNode) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: props,
		Kids:  collect(children),
	}
	if props != nil {
		if key, ok := props["key"].(string); ok {
			node.Key = key
		}
	}
	return node
}

// NewText creates a new text VNode
func NewText(text string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: text,
	}
}

// NewFragment creates a new fragment VNode
func NewFragment(children ...*VNode) *VNode {
	return &VNode{
		Kind: KindFragment,
		Kids: collect(children),
	}
}

func collect(children []*VNode) []VNode {
	kids := make([]VNode, 0, len(children))
	for _, child := range children {
		if child != nil {
			kids = append(kids, *child)
		}
	}
	return kids
}

// IsElement returns true if this is an element node
func (v VNode) IsElement() bool {
	return v.Kind == KindElement
}

// IsText returns true if this is a text node
func (v VNode) IsText() bool {
	return v.Kind == KindText
}

// IsFragment returns true if this is a fragment node
func (v VNode) IsFragment() bool {
	return v.Kind == KindFragment
}

// GetKey returns the key of this node, preferring the "key" prop
func (v VNode) GetKey() string {
	if v.Props != nil {
		if key, ok := v.Props["key"].(string); ok {
			return key
		}
	}
	return v.Key
}

// Attr returns the string form of a prop, or "" if absent.
func (v VNode) Attr(name string) string {
	if v.Props == nil {
		return ""
	}
	switch val := v.Props[name].(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return ""
	}
}

// TextContent concatenates the text of every descendant text node.
func (v VNode) TextContent() string {
	if v.Kind == KindText {
		return v.Text
	}
	var out string
	for i := range v.Kids {
		out += v.Kids[i].TextContent()
	}
	return out
}

// Walk visits v and its descendants depth-first, in document order.
// Returning false from fn skips the node's children.
func (v *VNode) Walk(fn func(n *VNode) bool) {
	if v == nil || !fn(v) {
		return
	}
	for i := range v.Kids {
		v.Kids[i].Walk(fn)
	}
}

// FindAll returns every element in the subtree with the given tag.
func (v *VNode) FindAll(tag string) []*VNode {
	var out []*VNode
	v.Walk(func(n *VNode) bool {
		if n.Kind == KindElement && n.Tag == tag {
			out = append(out, n)
		}
		return true
	})
	return out
}
