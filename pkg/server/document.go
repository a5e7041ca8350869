package server

import (
	"github.com/loke-dev/mdx-blog/pkg/styling"
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// MetaDescriptor is one entry of a page's head metadata. Exactly one of
// Title, Name or Property is expected to be set.
type MetaDescriptor struct {
	Title    string
	Name     string
	Property string
	Content  string
}

// MetaFunc returns the head metadata for a page
type MetaFunc func(ctx Ctx) []MetaDescriptor

// Shell renders the document around a laid-out page
type Shell struct {
	Lang        string
	Stylesheets []string
	Styles      *styling.StyleRegistry
	BodyClass   string

	// Head holds extra nodes appended to <head>
	Head []*vdom.VNode
}

// DefaultShell returns an English shell with no assets
func DefaultShell() *Shell {
	return &Shell{Lang: "en"}
}

// Document builds the <html> tree for a page
func (s *Shell) Document(meta []MetaDescriptor, body *vdom.VNode) *vdom.VNode {
	if s == nil {
		s = DefaultShell()
	}

	head := builder.Head().Children(
		builder.Meta().Charset("utf-8").Build(),
		builder.Meta().Name("viewport").Content("width=device-width, initial-scale=1").Build(),
	)

	for _, m := range meta {
		switch {
		case m.Title != "":
			head.Child(builder.TitleEl().Text(m.Title))
		case m.Name != "":
			head.Child(builder.Meta().Name(m.Name).Content(m.Content))
		case m.Property != "":
			head.Child(builder.Meta().Property(m.Property).Content(m.Content))
		}
	}

	for _, href := range s.Stylesheets {
		head.Child(builder.Link().Rel("stylesheet").Href(href))
	}
	if s.Styles != nil {
		if css := s.Styles.CSS(); css != "" {
			head.Child(builder.StyleEl().Text(css))
		}
	}
	head.Children(s.Head...)

	bodyEl := builder.Body().Class(s.BodyClass).Children(body)

	lang := s.Lang
	if lang == "" {
		lang = "en"
	}
	return builder.Html().Lang(lang).Children(head.Build(), bodyEl.Build()).Build()
}

// Title returns the first title descriptor, or ""
func Title(meta []MetaDescriptor) string {
	for _, m := range meta {
		if m.Title != "" {
			return m.Title
		}
	}
	return ""
}
