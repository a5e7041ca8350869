// Package builder provides a fluent API for constructing vdom trees.
//
//	builder.A().Href("/blog").Class("text-sm").Text("Read Blog").Build()
package builder

import (
	"maps"
	"strings"

	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
)

// ElementBuilder accumulates the tag, props and children of one element
type ElementBuilder struct {
	tag      string
	props    vdom.Props
	children []*vdom.VNode
}

// El starts a builder for an arbitrary tag
func El(tag string) *ElementBuilder {
	return &ElementBuilder{
		tag:   tag,
		props: make(vdom.Props),
	}
}

// Build produces the element VNode. The node owns a copy of the props, so
// later calls on b do not reach nodes already built.
func (b *ElementBuilder) Build() *vdom.VNode {
	var props vdom.Props
	if len(b.props) > 0 {
		props = maps.Clone(b.props)
	}
	return vdom.NewElement(b.tag, props, b.children...)
}

// Children appends child nodes. Nil children are ignored.
func (b *ElementBuilder) Children(children ...*vdom.VNode) *ElementBuilder {
	b.children = append(b.children, children...)
	return b
}

// Child appends the result of another builder
func (b *ElementBuilder) Child(child *ElementBuilder) *ElementBuilder {
	if child != nil {
		b.children = append(b.children, child.Build())
	}
	return b
}

// Text appends a text child
func (b *ElementBuilder) Text(text string) *ElementBuilder {
	b.children = append(b.children, vdom.NewText(text))
	return b
}

// === Global Attributes ===

// Class appends to the class attribute. Empty values are ignored.
func (b *ElementBuilder) Class(class string) *ElementBuilder {
	class = strings.TrimSpace(class)
	if class == "" {
		return b
	}
	if existing, ok := b.props["class"].(string); ok && existing != "" {
		b.props["class"] = existing + " " + class
	} else {
		b.props["class"] = class
	}
	return b
}

// ID sets the id attribute
func (b *ElementBuilder) ID(id string) *ElementBuilder {
	b.props["id"] = id
	return b
}

// Title sets the title attribute
func (b *ElementBuilder) Title(title string) *ElementBuilder {
	b.props["title"] = title
	return b
}

// Role sets the role attribute
func (b *ElementBuilder) Role(role string) *ElementBuilder {
	b.props["role"] = role
	return b
}

// Lang sets the lang attribute
func (b *ElementBuilder) Lang(lang string) *ElementBuilder {
	b.props["lang"] = lang
	return b
}

// Aria sets an aria-* attribute
func (b *ElementBuilder) Aria(key, value string) *ElementBuilder {
	b.props["aria-"+key] = value
	return b
}

// Key sets the sibling key, which is never rendered
func (b *ElementBuilder) Key(key string) *ElementBuilder {
	b.props["key"] = key
	return b
}

// === Tags ===

func Html() *ElementBuilder     { return El("html") }
func Head() *ElementBuilder     { return El("head") }
func Body() *ElementBuilder     { return El("body") }
func TitleEl() *ElementBuilder  { return El("title") }
func Meta() *ElementBuilder     { return El("meta") }
func Link() *ElementBuilder     { return El("link") }
func Script() *ElementBuilder   { return El("script") }
func StyleEl() *ElementBuilder  { return El("style") }
func Div() *ElementBuilder      { return El("div") }
func Section() *ElementBuilder  { return El("section") }
func Header() *ElementBuilder   { return El("header") }
func Footer() *ElementBuilder   { return El("footer") }
func Nav() *ElementBuilder      { return El("nav") }
func Main() *ElementBuilder     { return El("main") }
func Article() *ElementBuilder  { return El("article") }
func P() *ElementBuilder        { return El("p") }
func Span() *ElementBuilder     { return El("span") }
func Strong() *ElementBuilder   { return El("strong") }
func H1() *ElementBuilder       { return El("h1") }
func H2() *ElementBuilder       { return El("h2") }
func H3() *ElementBuilder       { return El("h3") }
func A() *ElementBuilder        { return El("a") }
func Button() *ElementBuilder   { return El("button") }
func Img() *ElementBuilder      { return El("img") }
func Ul() *ElementBuilder       { return El("ul") }
func Li() *ElementBuilder       { return El("li") }
func Svg() *ElementBuilder      { return El("svg") }
func Path() *ElementBuilder     { return El("path") }
func Circle() *ElementBuilder   { return El("circle") }
func Ellipse() *ElementBuilder  { return El("ellipse") }
func Rect() *ElementBuilder     { return El("rect") }
func Line() *ElementBuilder     { return El("line") }
func Polyline() *ElementBuilder { return El("polyline") }
