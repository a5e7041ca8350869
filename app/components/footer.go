// Package components contains the site-level presentation components.
package components

import (
	"github.com/loke-dev/mdx-blog/internal/config"
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// FooterProps configures the footer
type FooterProps struct {
	// RepositoryURL is linked from the attribution sentence
	RepositoryURL string

	// Links form the right-hand link group
	Links []config.Link
}

const footerLinkClass = "text-sm font-medium text-muted-foreground transition-colors hover:text-primary"

// Footer renders the site footer. Empty props fall back to the template
// repository and the default link group.
func Footer(props FooterProps) *vdom.VNode {
	repo := props.RepositoryURL
	if repo == "" {
		repo = config.DefaultRepositoryURL
	}
	links := props.Links
	if links == nil {
		links = config.DefaultLinks()
	}

	group := builder.Div().Class("flex items-center gap-8")
	for _, link := range links {
		group.Child(builder.A().
			Href(link.URL).
			External().
			Class(footerLinkClass).
			Text(link.Label))
	}

	return builder.Footer().
		Class("w-full border-t bg-background/95 backdrop-blur supports-[backdrop-filter]:bg-background/60").
		Children(
			builder.Div().
				Class("container mx-auto flex h-16 items-center justify-between px-4 md:px-8").
				Children(
					builder.Div().
						Class("flex items-center").
						Children(
							builder.P().
								Class("text-sm text-muted-foreground").
								Text("Built with Remix MDX Blog Template. The source code is available on ").
								Child(builder.A().
									Href(repo).
									External().
									Class("font-medium underline underline-offset-4 hover:text-primary").
									Text("GitHub")).
								Text(".").
								Build(),
						).Build(),
					group.Build(),
				).Build(),
		).Build()
}
