package html

import (
	"io"
	"strings"

	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
)

const doctype = "<!DOCTYPE html>"

// RenderDocument writes a full HTML document: the doctype followed by root.
func RenderDocument(w io.Writer, root *vdom.VNode) error {
	if _, err := io.WriteString(w, doctype); err != nil {
		return err
	}
	return NewHTMLApplier(w).Apply(nil, root)
}

// RenderDocumentBytes renders a document to a byte slice
func RenderDocumentBytes(root *vdom.VNode) ([]byte, error) {
	var buf strings.Builder
	if err := RenderDocument(&buf, root); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
