package styling

import (
	"crypto/sha256"
	"encoding/hex"
)

// ComponentStyle is a stylesheet fragment owned by a component or layout
type ComponentStyle struct {
	// Name identifies the owner, e.g. "theme"
	Name string

	// Hash is derived from the CSS content and used for de-duplication
	Hash string

	// CSS contains the stylesheet text
	CSS string
}

// Style creates a ComponentStyle for the given CSS
func Style(name, css string) *ComponentStyle {
	sum := sha256.Sum256([]byte(css))

	return &ComponentStyle{
		Name: name,
		Hash: "_" + hex.EncodeToString(sum[:])[:6],
		CSS:  css,
	}
}
