package server

import (
	"strings"
	"sync"

	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
)

// Layout is the interface that all layout components must implement
type Layout interface {
	// Wrap wraps the given page content with the layout
	Wrap(child *vdom.VNode) *vdom.VNode
}

// LayoutFunc is a function type that implements the Layout interface
type LayoutFunc func(child *vdom.VNode) *vdom.VNode

// Wrap implements the Layout interface for LayoutFunc
func (f LayoutFunc) Wrap(child *vdom.VNode) *vdom.VNode {
	return f(child)
}

// LayoutRegistry manages layouts for different routes
type LayoutRegistry struct {
	mu      sync.RWMutex
	layouts map[string]Layout
}

// NewLayoutRegistry creates a new layout registry
func NewLayoutRegistry() *LayoutRegistry {
	return &LayoutRegistry{
		layouts: make(map[string]Layout),
	}
}

// Register registers a layout for a path pattern.
// Patterns are exact ("/about"), prefixes ("/blog/*" or "/blog/") or the root "/".
func (r *LayoutRegistry) Register(pattern string, layout Layout) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layouts[pattern] = layout
}

// RegisterFunc registers a layout function for a path pattern
func (r *LayoutRegistry) RegisterFunc(pattern string, layoutFunc func(child *vdom.VNode) *vdom.VNode) {
	r.Register(pattern, LayoutFunc(layoutFunc))
}

// GetLayout returns the layout for a path: an exact match first, then the
// longest matching prefix pattern, then the root layout.
func (r *LayoutRegistry) GetLayout(path string) Layout {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if layout, ok := r.layouts[path]; ok {
		return layout
	}

	var best Layout
	bestLen := -1
	for pattern, layout := range r.layouts {
		prefix, ok := prefixOf(pattern)
		if !ok || !strings.HasPrefix(path, prefix) {
			continue
		}
		if len(prefix) > bestLen {
			best, bestLen = layout, len(prefix)
		}
	}
	if best != nil {
		return best
	}

	return r.layouts["/"]
}

// ApplyLayout applies the appropriate layout to a VNode
func (r *LayoutRegistry) ApplyLayout(path string, content *vdom.VNode) *vdom.VNode {
	if layout := r.GetLayout(path); layout != nil {
		return layout.Wrap(content)
	}
	return content
}

// prefixOf returns the prefix a directory pattern matches
func prefixOf(pattern string) (string, bool) {
	switch {
	case strings.HasSuffix(pattern, "*"):
		return strings.TrimSuffix(pattern, "*"), true
	case len(pattern) > 1 && strings.HasSuffix(pattern, "/"):
		return pattern, true
	}
	return "", false
}
