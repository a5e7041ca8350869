package styling

import (
	"strings"
	"testing"
)

func TestStyle(t *testing.T) {
	css := `:root { --background: 0 0% 100%; }`

	style := Style("theme", css)

	if !strings.HasPrefix(style.Hash, "_") || len(style.Hash) != 7 {
		t.Errorf("unexpected hash %q", style.Hash)
	}
	if style.CSS != css || style.Name != "theme" {
		t.Errorf("unexpected style %+v", style)
	}
}

func TestStyle_SameCSSSameHash(t *testing.T) {
	a := Style("a", ".x{}")
	b := Style("b", ".x{}")
	if a.Hash != b.Hash {
		t.Errorf("hash mismatch: %s vs %s", a.Hash, b.Hash)
	}
	if c := Style("c", ".y{}"); c.Hash == a.Hash {
		t.Errorf("different CSS should hash differently: %s", c.Hash)
	}
}

func TestStyleRegistry(t *testing.T) {
	reg := NewRegistry()

	reg.Register(Style("one", `.test1 { color: red; }`))
	reg.Register(Style("two", `.test2 { color: blue; }`))
	reg.Register(Style("dup", `.test1 { color: red; }`))
	reg.Register(Style("empty", ""))
	reg.Register(nil)

	css := reg.CSS()
	if n := strings.Count(css, "color: red"); n != 1 {
		t.Errorf("duplicate style emitted %d times: %q", n, css)
	}
	red := strings.Index(css, "color: red")
	blue := strings.Index(css, "color: blue")
	if red < 0 || blue < 0 || red > blue {
		t.Errorf("styles should be emitted in registration order: %q", css)
	}
	if want := ".test1 { color: red; }\n.test2 { color: blue; }\n"; css != want {
		t.Errorf("CSS() = %q, want %q", css, want)
	}
}

func TestStyleRegistry_Empty(t *testing.T) {
	if css := NewRegistry().CSS(); css != "" {
		t.Errorf("empty registry CSS = %q", css)
	}
}
