package html

import (
	"errors"
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
)

// ErrIncremental is returned when Apply is given a previous tree
var ErrIncremental = errors.New("html applier does not support incremental updates")

// voidElements are HTML elements that cannot have children
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// booleanAttributes are HTML attributes that are boolean flags
var booleanAttributes = map[string]bool{
	"checked":   true,
	"disabled":  true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
	"defer":     true,
	"async":     true,
	"multiple":  true,
	"autofocus": true,
	"hidden":    true,
}

// HTMLApplier renders VNodes to HTML.
// Attributes are written in sorted order so equal trees produce equal bytes.
type HTMLApplier struct {
	w   io.Writer
	err error
}

// NewHTMLApplier creates a new HTML applier
func NewHTMLApplier(w io.Writer) *HTMLApplier {
	return &HTMLApplier{w: w}
}

// Apply renders a VNode tree to HTML
func (a *HTMLApplier) Apply(prev, next *vdom.VNode) error {
	if prev != nil {
		return ErrIncremental
	}
	if next == nil {
		return nil
	}

	a.renderNode(next)
	return a.err
}

// write helper that tracks errors
func (a *HTMLApplier) write(s string) {
	if a.err != nil {
		return
	}
	_, a.err = io.WriteString(a.w, s)
}

func (a *HTMLApplier) renderNode(node *vdom.VNode) {
	if node == nil || a.err != nil {
		return
	}

	switch node.Kind {
	case vdom.KindText:
		a.write(html.EscapeString(node.Text))

	case vdom.KindElement:
		a.renderElement(node)

	case vdom.KindFragment:
		for i := range node.Kids {
			a.renderNode(&node.Kids[i])
		}
	}
}

func (a *HTMLApplier) renderElement(node *vdom.VNode) {
	a.write("<")
	a.write(node.Tag)
	a.renderAttributes(node.Props)
	a.write(">")

	if voidElements[node.Tag] {
		return
	}

	// script and style content is written verbatim
	raw := node.Tag == "script" || node.Tag == "style"
	for i := range node.Kids {
		if raw {
			a.renderRawNode(&node.Kids[i])
		} else {
			a.renderNode(&node.Kids[i])
		}
	}

	a.write("</")
	a.write(node.Tag)
	a.write(">")
}

func (a *HTMLApplier) renderAttributes(props vdom.Props) {
	if len(props) == 0 {
		return
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		if skipAttribute(key) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]

		if b, ok := value.(bool); ok || booleanAttributes[key] {
			if ok && b {
				a.write(" ")
				a.write(key)
			}
			continue
		}
		if value == nil {
			continue
		}

		valueStr := fmt.Sprintf("%v", value)

		// Never emit script URLs into navigable attributes
		if (key == "href" || key == "src") && strings.HasPrefix(strings.ToLower(strings.TrimSpace(valueStr)), "javascript:") {
			valueStr = "#"
		}

		a.write(" ")
		a.write(key)
		a.write(`="`)
		a.write(html.EscapeString(valueStr))
		a.write(`"`)
	}
}

// skipAttribute reports props that never reach the markup
func skipAttribute(key string) bool {
	if key == "key" || key == "ref" {
		return true
	}
	return len(key) > 2 && (key[0] == 'o' || key[0] == 'O') && (key[1] == 'n' || key[1] == 'N')
}

// renderRawNode renders a node without HTML escaping (for script/style content)
func (a *HTMLApplier) renderRawNode(node *vdom.VNode) {
	if node == nil || a.err != nil {
		return
	}

	switch node.Kind {
	case vdom.KindText:
		a.write(node.Text)
	case vdom.KindElement:
		a.renderElement(node)
	case vdom.KindFragment:
		for i := range node.Kids {
			a.renderRawNode(&node.Kids[i])
		}
	}
}

// RenderToString is a convenience function to render a VNode to a string
func RenderToString(node *vdom.VNode) (string, error) {
	var buf strings.Builder
	if err := NewHTMLApplier(&buf).Apply(nil, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}
