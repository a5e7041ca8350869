package vdom

import "testing"

func TestNewElement_SkipsNilChildren(t *testing.T) {
	node := NewElement("div", nil, NewText("a"), nil, NewText("b"))

	if node.Kind != KindElement {
		t.Fatalf("Kind = %v, want element", node.Kind)
	}
	if len(node.Kids) != 2 {
		t.Fatalf("expected 2 children, got %d", len(node.Kids))
	}
	if got := node.TextContent(); got != "ab" {
		t.Errorf("TextContent() = %q, want %q", got, "ab")
	}
}

func TestNewElement_Key(t *testing.T) {
	node := NewElement("li", Props{"key": "remix"})
	if node.Key != "remix" {
		t.Errorf("Key = %q, want remix", node.Key)
	}
	if node.GetKey() != "remix" {
		t.Errorf("GetKey() = %q, want remix", node.GetKey())
	}
}

func TestVNode_Predicates(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want VKind
	}{
		{"element", NewElement("p", nil), KindElement},
		{"text", NewText("x"), KindText},
		{"fragment", NewFragment(NewText("x")), KindFragment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.Kind != tt.want {
				t.Fatalf("Kind = %v, want %v", tt.node.Kind, tt.want)
			}
			if tt.node.IsElement() != (tt.want == KindElement) {
				t.Error("IsElement mismatch")
			}
			if tt.node.IsText() != (tt.want == KindText) {
				t.Error("IsText mismatch")
			}
			if tt.node.IsFragment() != (tt.want == KindFragment) {
				t.Error("IsFragment mismatch")
			}
		})
	}
}

func TestVNode_FindAllAndAttr(t *testing.T) {
	tree := NewElement("nav", nil,
		NewElement("a", Props{"href": "/blog"}, NewText("Blog")),
		NewFragment(
			NewElement("a", Props{"href": "/projects"}, NewText("Projects")),
		),
	)

	links := tree.FindAll("a")
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Attr("href") != "/blog" || links[1].Attr("href") != "/projects" {
		t.Errorf("unexpected hrefs: %q, %q", links[0].Attr("href"), links[1].Attr("href"))
	}
	if links[0].Attr("missing") != "" {
		t.Error("missing attribute should be empty")
	}
}

func TestVNode_WalkSkipsChildren(t *testing.T) {
	tree := NewElement("div", nil,
		NewElement("section", nil, NewElement("p", nil)),
		NewElement("p", nil),
	)

	var seen []string
	tree.Walk(func(n *VNode) bool {
		seen = append(seen, n.Tag)
		return n.Tag != "section"
	})

	want := []string{"div", "section", "p"}
	if len(seen) != len(want) {
		t.Fatalf("visited %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("visited %v, want %v", seen, want)
		}
	}
}
