package styling

import (
	"strings"
	"sync"
)

// StyleRegistry collects stylesheets for injection into the document head.
// Styles are emitted in registration order; a style registered twice
// (same hash) is kept once.
type StyleRegistry struct {
	mu     sync.RWMutex
	order  []string
	styles map[string]*ComponentStyle
}

// NewRegistry creates an empty registry
func NewRegistry() *StyleRegistry {
	return &StyleRegistry{
		styles: make(map[string]*ComponentStyle),
	}
}

// Register adds a style to the registry
func (r *StyleRegistry) Register(style *ComponentStyle) {
	if style == nil || style.CSS == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.styles[style.Hash]; ok {
		return
	}
	r.order = append(r.order, style.Hash)
	r.styles[style.Hash] = style
}

// CSS returns all registered CSS as a single string
func (r *StyleRegistry) CSS() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	for _, hash := range r.order {
		b.WriteString(r.styles[hash].CSS)
		b.WriteString("\n")
	}
	return b.String()
}
