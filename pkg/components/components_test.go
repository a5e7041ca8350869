package components

import (
	"strings"
	"testing"

	"github.com/loke-dev/mdx-blog/pkg/renderer/html"
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
)

func render(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	out, err := html.RenderToString(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func TestCn(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"a", "", "b"}, "a b"},
		{[]string{"  a  b ", "c"}, "a b c"},
		{[]string{"", ""}, ""},
	}
	for _, tt := range tests {
		if got := Cn(tt.in...); got != tt.want {
			t.Errorf("Cn(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestButton_Link(t *testing.T) {
	node := Button(ButtonProps{
		Href:     "/blog",
		Size:     ButtonLarge,
		Children: []*vdom.VNode{vdom.NewText("View Demo Blog")},
	})

	if node.Tag != "a" {
		t.Fatalf("Tag = %q, want a", node.Tag)
	}
	if node.Attr("href") != "/blog" {
		t.Errorf("href = %q", node.Attr("href"))
	}
	class := node.Attr("class")
	for _, want := range []string{"bg-primary", "h-10", "px-8", "inline-flex"} {
		if !strings.Contains(class, want) {
			t.Errorf("class %q missing %q", class, want)
		}
	}
	if _, ok := node.Props["target"]; ok {
		t.Error("internal link should not open a new tab")
	}
}

func TestButton_ExternalOutline(t *testing.T) {
	node := Button(ButtonProps{
		Href:     "https://github.com/x/y",
		External: true,
		Variant:  ButtonOutline,
	})

	if node.Attr("target") != "_blank" || node.Attr("rel") != "noreferrer" {
		t.Errorf("external link attrs missing: %v", node.Props)
	}
	if !strings.Contains(node.Attr("class"), "border-input") {
		t.Errorf("outline class missing: %q", node.Attr("class"))
	}
}

func TestButton_PlainButton(t *testing.T) {
	out := render(t, Button(ButtonProps{Disabled: true, ID: "go", Children: []*vdom.VNode{vdom.NewText("Go")}}))

	if !strings.HasPrefix(out, "<button ") {
		t.Fatalf("expected a button element, got %q", out)
	}
	if !strings.Contains(out, " disabled") || !strings.Contains(out, `type="button"`) || !strings.Contains(out, `id="go"`) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestButtonClass_Fallback(t *testing.T) {
	got := ButtonClass("nope", "huge", "")
	want := ButtonClass(ButtonDefault, ButtonSizeDefault, "")
	if got != want {
		t.Errorf("fallback class = %q, want %q", got, want)
	}
}

func TestBadge(t *testing.T) {
	tests := []struct {
		variant BadgeVariant
		want    string
	}{
		{BadgeSecondary, "bg-secondary"},
		{BadgeOutline, "text-foreground"},
		{"", "bg-primary"},
	}

	for _, tt := range tests {
		node := Badge(BadgeProps{Text: "Modern", Variant: tt.variant, Class: "mb-4"})
		class := node.Attr("class")
		if !strings.Contains(class, tt.want) || !strings.HasSuffix(class, "mb-4") {
			t.Errorf("variant %q: class = %q", tt.variant, class)
		}
		if node.TextContent() != "Modern" {
			t.Errorf("text = %q", node.TextContent())
		}
	}
}

func TestTextCard(t *testing.T) {
	card := TextCard{
		Icon:        Icon(IconZap, IconProps{Class: "text-primary mb-2"}),
		Title:       "Lightning Fast",
		Description: "desc",
		Body:        "body",
	}.Render()

	out := render(t, card)
	for _, want := range []string{
		`class="rounded-xl border bg-card text-card-foreground shadow"`,
		`<div class="font-semibold leading-none tracking-tight">Lightning Fast</div>`,
		`<div class="text-sm text-muted-foreground">desc</div>`,
		`<div class="p-6 pt-0">body</div>`,
		"lucide-zap text-primary mb-2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("card output missing %q:\n%s", want, out)
		}
	}
}

func TestIcon(t *testing.T) {
	node := Icon(IconSparkles, IconProps{Size: 16})
	if node.Tag != "svg" {
		t.Fatalf("Tag = %q", node.Tag)
	}
	if node.Attr("width") != "16" || node.Attr("height") != "16" {
		t.Errorf("size = %s x %s", node.Attr("width"), node.Attr("height"))
	}
	if len(node.Kids) != 5 {
		t.Errorf("sparkles should have 5 shapes, got %d", len(node.Kids))
	}

	def := Icon(IconMoon, IconProps{})
	if def.Attr("width") != "24" {
		t.Errorf("default size = %s", def.Attr("width"))
	}
}

func TestIcon_Unknown(t *testing.T) {
	if _, ok := iconShapes["nope"]; ok {
		t.Fatal("unexpected icon")
	}
	node := Icon("nope", IconProps{})
	if len(node.Kids) != 0 {
		t.Errorf("unknown icon should be empty, got %d shapes", len(node.Kids))
	}
}

func TestIcon_AllKnownHaveShapes(t *testing.T) {
	for name, shapes := range iconShapes {
		if len(shapes) == 0 {
			t.Errorf("icon %s has no shapes", name)
		}
	}
}
