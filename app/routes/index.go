package routes

import (
	"github.com/loke-dev/mdx-blog/app/components"
	"github.com/loke-dev/mdx-blog/app/content"
	"github.com/loke-dev/mdx-blog/internal/config"
	ui "github.com/loke-dev/mdx-blog/pkg/components"
	"github.com/loke-dev/mdx-blog/pkg/server"
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
	"github.com/loke-dev/mdx-blog/pkg/vex/builder"
)

// IndexProps configures the landing page
type IndexProps struct {
	// RepositoryURL backs the "GitHub" and "Get Started Today" buttons
	RepositoryURL string
}

// IndexMeta returns the head metadata of the landing page
func IndexMeta(server.Ctx) []server.MetaDescriptor {
	return []server.MetaDescriptor{
		{Title: content.PageTitle},
		{Name: "description", Content: content.PageDescription},
	}
}

// Index renders the landing page: hero, features, tech stack and CTA
func Index(props IndexProps) *vdom.VNode {
	repo := props.RepositoryURL
	if repo == "" {
		repo = config.DefaultRepositoryURL
	}

	return builder.Div().
		Class("flex flex-col min-h-screen").
		Children(
			heroSection(repo),
			featuresSection(),
			techSection(),
			ctaSection(repo),
		).Build()
}

// IndexPage adapts Index to the router
func IndexPage(props IndexProps) server.HandlerFunc {
	return func(ctx server.Ctx) (*vdom.VNode, error) {
		return Index(props), nil
	}
}

func heroSection(repo string) *vdom.VNode {
	badges := builder.Div().Class("flex gap-2 justify-center")
	for _, label := range content.Badges {
		badges.Children(ui.Badge(ui.BadgeProps{Text: label, Variant: ui.BadgeSecondary, Class: "mb-4"}))
	}

	return builder.Section().
		Class("relative isolate px-6 lg:px-8").
		Children(
			builder.Div().
				Class("mx-auto max-w-4xl py-24 sm:py-32 lg:py-32").
				Children(
					builder.Div().
						Class("text-center").
						Children(
							badges.Build(),
							builder.H1().
								Class("text-4xl font-bold tracking-tight sm:text-6xl mb-6").
								Text(content.HeroHeading).
								Build(),
							builder.P().
								Class("mt-6 text-xl leading-8 text-muted-foreground max-w-2xl mx-auto").
								Text(content.HeroLead).
								Build(),
							builder.Div().
								Class("mt-10 flex items-center justify-center gap-6 flex-wrap").
								Children(
									ui.Button(ui.ButtonProps{
										Href: content.BlogPath,
										Size: ui.ButtonLarge,
										Children: []*vdom.VNode{
											vdom.NewText("View Demo Blog "),
											ui.Icon(ui.IconArrowRight, ui.IconProps{Class: "ml-2"}),
										},
									}),
									ui.Button(ui.ButtonProps{
										Href:    repo,
										Variant: ui.ButtonOutline,
										Size:    ui.ButtonLarge,
										Children: []*vdom.VNode{
											ui.Icon(ui.IconGithub, ui.IconProps{Class: "mr-2"}),
											vdom.NewText(" GitHub"),
										},
									}),
								).Build(),
						).Build(),
				).Build(),
		).Build()
}

func featuresSection() *vdom.VNode {
	cards := make([]*vdom.VNode, 0, len(content.Features))
	for _, f := range content.Features {
		cards = append(cards, ui.TextCard{
			Icon:        ui.Icon(f.Icon, ui.IconProps{Class: "text-primary mb-2"}),
			Title:       f.Title,
			Description: f.Description,
			Body:        f.Body,
		}.Render())
	}

	return builder.Section().
		Class("py-16 px-6 lg:px-8 bg-muted/50").
		Children(
			builder.Div().
				Class("mx-auto max-w-5xl").
				Children(
					builder.H2().
						Class("text-3xl font-bold text-center mb-12").
						Text(content.FeaturesHeading).
						Build(),
					ui.CardGrid(ui.CardGridProps{
						Cards: cards,
						Class: "grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8",
					}),
				).Build(),
		).Build()
}

func techSection() *vdom.VNode {
	grid := builder.Div().Class("grid grid-cols-2 sm:grid-cols-3 md:grid-cols-4 lg:grid-cols-6 gap-6")
	for _, tech := range content.TechStack {
		grid.Children(components.TechItem(components.TechItemProps{
			Icon:        tech.Icon,
			Name:        tech.Name,
			Description: tech.Description,
		}))
	}

	return builder.Section().
		Class("py-16 px-6 lg:px-8").
		Children(
			builder.Div().
				Class("mx-auto max-w-5xl").
				Children(
					builder.H2().
						Class("text-3xl font-bold text-center mb-3").
						Text(content.TechHeading).
						Build(),
					builder.P().
						Class("text-muted-foreground text-center mb-12 max-w-3xl mx-auto").
						Text(content.TechLead).
						Build(),
					grid.Build(),
				).Build(),
		).Build()
}

func ctaSection(repo string) *vdom.VNode {
	return builder.Section().
		Class("py-24 px-6 lg:px-8").
		Children(
			builder.Div().
				Class("mx-auto max-w-3xl text-center").
				Children(
					builder.H2().Class("text-3xl font-bold mb-6").Text(content.CTAHeading).Build(),
					builder.P().Class("text-xl text-muted-foreground mb-10").Text(content.CTALead).Build(),
					ui.Button(ui.ButtonProps{
						Href:     repo,
						Size:     ui.ButtonLarge,
						Children: []*vdom.VNode{vdom.NewText(content.CTAButton)},
					}),
				).Build(),
		).Build()
}
