package components

import (
	"github.com/loke-dev/mdx-blog/app/content"
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// Hero renders the standalone welcome banner linking to projects and the blog
func Hero() *vdom.VNode {
	return builder.Div().
		Class("relative isolate px-6 lg:px-8").
		Children(
			builder.Div().
				Class("mx-auto max-w-3xl py-32 sm:py-48 lg:py-32").
				Children(
					builder.Div().
						Class("text-center").
						Children(
							builder.H1().
								Class("text-4xl font-bold tracking-tight sm:text-6xl").
								Text("Welcome to Remix MDX Blog").
								Build(),
							builder.P().
								Class("mt-6 text-lg leading-8").
								Text("A modern blog template built with Remix, MDX, and Tailwind CSS. Perfect for developers and content creators.").
								Build(),
							builder.Div().
								Class("mt-10 flex items-center justify-center gap-x-6").
								Children(
									builder.A().
										Href(content.ProjectsPath).
										Class("rounded-md bg-blue-600 px-3.5 py-2.5 text-sm font-semibold text-white shadow-sm hover:bg-blue-500 focus-visible:outline focus-visible:outline-offset-2 focus-visible:outline-blue-600").
										Text("View Projects").
										Build(),
									builder.A().
										Href(content.BlogPath).
										Class("text-sm font-semibold leading-6").
										Text("Read Blog ").
										Child(builder.Span().Aria("hidden", "true").Text("→")).
										Build(),
								).Build(),
						).Build(),
				).Build(),
		).Build()
}
