package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
)

func TestHTMLApplier_TextNodes(t *testing.T) {
	tests := []struct {
		name     string
		node     *vdom.VNode
		expected string
	}{
		{
			name:     "simple text",
			node:     vdom.NewText("Hello World"),
			expected: "Hello World",
		},
		{
			name:     "text with HTML entities",
			node:     vdom.NewText("<script>alert('xss')</script>"),
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name:     "text with quotes",
			node:     vdom.NewText(`"Hello" & 'World'`),
			expected: "&#34;Hello&#34; &amp; &#39;World&#39;",
		},
		{
			name:     "unicode arrow",
			node:     vdom.NewText("Read Blog →"),
			expected: "Read Blog →",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("RenderToString() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestHTMLApplier_Elements(t *testing.T) {
	tests := []struct {
		name     string
		node     *vdom.VNode
		expected string
	}{
		{
			name:     "empty div",
			node:     vdom.NewElement("div", nil),
			expected: "<div></div>",
		},
		{
			name:     "div with text",
			node:     vdom.NewElement("div", nil, vdom.NewText("Hello")),
			expected: "<div>Hello</div>",
		},
		{
			name: "attributes are sorted",
			node: vdom.NewElement("a", vdom.Props{
				"target": "_blank",
				"href":   "https://mdxjs.com/",
				"rel":    "noreferrer",
				"class":  "text-sm",
			}, vdom.NewText("MDX")),
			expected: `<a class="text-sm" href="https://mdxjs.com/" rel="noreferrer" target="_blank">MDX</a>`,
		},
		{
			name: "nested elements",
			node: vdom.NewElement("div", nil,
				vdom.NewElement("p", nil, vdom.NewText("Paragraph 1")),
				vdom.NewElement("p", nil, vdom.NewText("Paragraph 2")),
			),
			expected: "<div><p>Paragraph 1</p><p>Paragraph 2</p></div>",
		},
		{
			name: "void element",
			node: vdom.NewElement("img", vdom.Props{
				"src": "image.jpg",
				"alt": "Test Image",
			}),
			expected: `<img alt="Test Image" src="image.jpg">`,
		},
		{
			name: "boolean attributes",
			node: vdom.NewElement("input", vdom.Props{
				"type":     "checkbox",
				"checked":  true,
				"disabled": false,
			}),
			expected: `<input checked type="checkbox">`,
		},
		{
			name: "non-string values",
			node: vdom.NewElement("svg", vdom.Props{
				"width":  16,
				"height": 16,
			}),
			expected: `<svg height="16" width="16"></svg>`,
		},
		{
			name: "key, ref and handlers are dropped",
			node: vdom.NewElement("button", vdom.Props{
				"key":     "k",
				"ref":     "r",
				"onClick": "handle",
				"type":    "button",
			}),
			expected: `<button type="button"></button>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("RenderToString() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestHTMLApplier_Fragments(t *testing.T) {
	node := vdom.NewFragment(
		vdom.NewElement("h1", nil, vdom.NewText("Title")),
		vdom.NewElement("p", nil, vdom.NewText("Content")),
	)

	expected := "<h1>Title</h1><p>Content</p>"
	result, err := RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != expected {
		t.Errorf("RenderToString() = %q, want %q", result, expected)
	}
}

func TestHTMLApplier_RawText(t *testing.T) {
	node := vdom.NewElement("style", nil, vdom.NewText(":root{--x:1}a>b{}"))

	result, err := RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "<style>:root{--x:1}a>b{}</style>" {
		t.Errorf("style content should not be escaped: %q", result)
	}
}

func TestHTMLApplier_XSSPrevention(t *testing.T) {
	tests := []struct {
		name    string
		node    *vdom.VNode
		notWant string
	}{
		{
			name: "script in text",
			node: vdom.NewElement("div", nil,
				vdom.NewText("<script>alert('xss')</script>"),
			),
			notWant: "<script>",
		},
		{
			name: "script in attribute",
			node: vdom.NewElement("div", vdom.Props{
				"title": `<script>alert('xss')</script>`,
			}),
			notWant: "<script>",
		},
		{
			name: "javascript URL",
			node: vdom.NewElement("a", vdom.Props{
				"href": " JavaScript:alert('xss')",
			}, vdom.NewText("Link")),
			notWant: "alert",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.Contains(result, tt.notWant) {
				t.Errorf("Result should not contain %q, got: %q", tt.notWant, result)
			}
		})
	}
}

func TestHTMLApplier_Deterministic(t *testing.T) {
	build := func() *vdom.VNode {
		props := vdom.Props{}
		for _, k := range []string{"z", "y", "x", "w", "v", "u", "t", "s"} {
			props["data-"+k] = k
		}
		return vdom.NewElement("div", props, vdom.NewText("same"))
	}

	first, err := RenderToString(build())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := RenderToString(build())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("render %d differs:\n%s\n%s", i, first, again)
		}
	}
}

func TestHTMLApplier_Incremental(t *testing.T) {
	var buf strings.Builder
	err := NewHTMLApplier(&buf).Apply(vdom.NewText("a"), vdom.NewText("b"))
	if !errors.Is(err, ErrIncremental) {
		t.Errorf("expected ErrIncremental, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestHTMLApplier_WriteError(t *testing.T) {
	err := NewHTMLApplier(failingWriter{}).Apply(nil, vdom.NewElement("p", nil, vdom.NewText("x")))
	if err == nil {
		t.Fatal("expected write error")
	}
}

func TestRenderDocument(t *testing.T) {
	root := vdom.NewElement("html", vdom.Props{"lang": "en"},
		vdom.NewElement("head", nil,
			vdom.NewElement("meta", vdom.Props{"charset": "utf-8"}),
			vdom.NewElement("title", nil, vdom.NewText("Test Page")),
		),
		vdom.NewElement("body", nil, vdom.NewText("© 2025")),
	)

	out, err := RenderDocumentBytes(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Test Page</title></head><body>© 2025</body></html>`
	if string(out) != expected {
		t.Errorf("RenderDocumentBytes() = %q, want %q", out, expected)
	}
}
