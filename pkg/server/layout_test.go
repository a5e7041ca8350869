package server

import (
	"testing"

	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
)

func wrapIn(tag string) func(*vdom.VNode) *vdom.VNode {
	return func(child *vdom.VNode) *vdom.VNode {
		return vdom.NewElement(tag, nil, child)
	}
}

func TestLayoutRegistry_GetLayout(t *testing.T) {
	reg := NewLayoutRegistry()
	reg.RegisterFunc("/", wrapIn("root"))
	reg.RegisterFunc("/blog/*", wrapIn("blog"))
	reg.RegisterFunc("/blog/drafts/", wrapIn("drafts"))
	reg.RegisterFunc("/about", wrapIn("about"))

	tests := []struct {
		path string
		want string
	}{
		{"/", "root"},
		{"/about", "about"},
		{"/blog/post", "blog"},
		{"/blog/drafts/x", "drafts"},
		{"/contact", "root"},
	}
	for _, tt := range tests {
		got := reg.ApplyLayout(tt.path, vdom.NewText("x"))
		if got.Tag != tt.want {
			t.Errorf("ApplyLayout(%q) wrapped in %q, want %q", tt.path, got.Tag, tt.want)
		}
	}
}

func TestLayoutRegistry_Empty(t *testing.T) {
	content := vdom.NewText("x")
	if got := NewLayoutRegistry().ApplyLayout("/", content); got != content {
		t.Error("empty registry should return content unchanged")
	}

	var nilReg *LayoutRegistry
	if nilReg.GetLayout("/") != nil {
		t.Error("nil registry should have no layouts")
	}
}
