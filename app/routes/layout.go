package routes

import (
	"github.com/loke-dev/mdx-blog/app/components"
	"github.com/loke-dev/mdx-blog/pkg/server"
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// RootLayout wraps every page in the main column and appends the footer
func RootLayout(footer components.FooterProps) server.Layout {
	return server.LayoutFunc(func(child *vdom.VNode) *vdom.VNode {
		return builder.Div().
			Class("flex min-h-screen flex-col").
			Children(
				builder.Main().Class("flex-1").Children(child).Build(),
				components.Footer(footer),
			).Build()
	})
}
