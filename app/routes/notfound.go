package routes

import (
	"github.com/loke-dev/mdx-blog/app/content"
	ui "github.com/loke-dev/mdx-blog/pkg/components"
	"github.com/loke-dev/mdx-blog/pkg/server"
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// NotFoundTitle is the document title of the 404 page
const NotFoundTitle = "Page Not Found - " + content.SiteName

// NotFoundMeta returns the head metadata of the 404 page
func NotFoundMeta(server.Ctx) []server.MetaDescriptor {
	return []server.MetaDescriptor{{Title: NotFoundTitle}}
}

// NotFound renders the 404 page. suggest maps the requested path to a
// nearby route, or "" when there is none; it may be nil.
func NotFound(suggest func(path string) string) server.HandlerFunc {
	return func(ctx server.Ctx) (*vdom.VNode, error) {
		var hint *vdom.VNode
		if suggest != nil {
			if target := suggest(ctx.Path()); target != "" {
				hint = builder.P().
					Class("mt-4 text-muted-foreground").
					Text("Did you mean ").
					Child(builder.A().Href(target).Class("font-medium underline underline-offset-4 hover:text-primary").Text(target)).
					Text("?").
					Build()
			}
		}

		return builder.Section().
			Class("mx-auto max-w-3xl py-24 px-6 text-center").
			Children(
				builder.P().Class("text-sm font-semibold text-primary").Text("404").Build(),
				builder.H1().Class("mt-4 text-3xl font-bold tracking-tight sm:text-5xl").Text("Page not found").Build(),
				builder.P().Class("mt-6 text-lg leading-7 text-muted-foreground").Text("Sorry, we couldn't find the page you're looking for.").Build(),
				hint,
				builder.Div().
					Class("mt-10 flex items-center justify-center gap-x-6").
					Children(ui.Button(ui.ButtonProps{Href: "/", Children: []*vdom.VNode{vdom.NewText("Go back home")}})).
					Build(),
			).Build(), nil
	}
}

// ErrorPage renders the page shown when a handler fails. Error details are
// logged, never shown.
func ErrorPage(ctx server.Ctx, err error) *vdom.VNode {
	return builder.Section().
		Class("mx-auto max-w-3xl py-24 px-6 text-center").
		Children(
			builder.P().Class("text-sm font-semibold text-destructive").Text("500").Build(),
			builder.H1().Class("mt-4 text-3xl font-bold tracking-tight").Text("Something went wrong").Build(),
			builder.P().Class("mt-6 text-lg text-muted-foreground").Text("Please try again in a moment.").Build(),
		).Build()
}
