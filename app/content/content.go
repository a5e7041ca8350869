// Package content holds the literal copy of the landing page.
package content

import "github.com/loke-dev/mdx-blog/pkg/components"

// Feature is one card of the features grid
type Feature struct {
	Icon        components.IconName
	Title       string
	Description string
	Body        string
}

// Tech is one entry of the tech-stack grid
type Tech struct {
	Icon        components.IconName
	Name        string
	Description string
}

const (
	SiteName = "Remix MDX Blog Template"

	PageTitle       = "Remix MDX Blog Template - Modern Web Development"
	PageDescription = "A modern blog template built with Remix, MDX, and Tailwind CSS. Perfect for developers and content creators."

	HeroHeading = "Remix MDX Blog Template"
	HeroLead    = "A powerful, modern blog template built with Remix, Vite, and Tailwind. Perfect for developers and content creators who want to share their ideas beautifully."

	FeaturesHeading = "Why Choose This Template?"

	TechHeading = "Powered By Modern Tech"
	TechLead    = "This template combines the best tools in the React ecosystem to provide a solid foundation for your blog"

	CTAHeading = "Ready to Start Your Blog?"
	CTALead    = "Get started in minutes with this production-ready template."
	CTAButton  = "Get Started Today"

	BlogPath     = "/blog"
	ProjectsPath = "/projects"
)

// Badges are the labels above the hero heading
var Badges = []string{"Modern", "Blazing Fast", "Developer Friendly"}

// Features are the cards of the features grid, in display order
var Features = []Feature{
	{
		Icon:        components.IconZap,
		Title:       "Lightning Fast",
		Description: "Built with Remix v2 and Vite for incredible performance and DX",
		Body:        "Experience near-instant page loads, responsive content, and the speed that modern websites demand.",
	},
	{
		Icon:        components.IconFileText,
		Title:       "MDX Powered",
		Description: "Write in Markdown, embed components",
		Body:        "Author content in Markdown with the power to include React components directly in your posts.",
	},
	{
		Icon:        components.IconCode,
		Title:       "Developer Ready",
		Description: "Modern tech stack with best practices",
		Body:        "TypeScript, Tailwind CSS v4, shadcn/ui components, and a well-organized project structure.",
	},
	{
		Icon:        components.IconDatabase,
		Title:       "Type-Safe Content",
		Description: "Using content-collections for structured data",
		Body:        "Manage blog posts with type safety using content-collections. Define schemas with Zod validation and get auto-generated TypeScript types.",
	},
	{
		Icon:        components.IconSearch,
		Title:       "SEO Optimized",
		Description: "Built-in meta tags and optimizations",
		Body:        "Comes with pre-configured meta tags, Open Graph support, and other SEO best practices to help your content rank better.",
	},
	{
		Icon:        components.IconMoon,
		Title:       "Dark Mode Built-in",
		Description: "Automatic theme detection and toggling",
		Body:        "Support for both light and dark mode with system preference detection and a toggle to let your readers choose.",
	},
}

// TechStack lists the tools shown in the tech grid, in display order
var TechStack = []Tech{
	{components.IconSparkles, "Remix", "React-based web framework"},
	{components.IconRocket, "Vite", "Lightning fast build tool"},
	{components.IconPalette, "Tailwind CSS v4", "Utility-first styling"},
	{components.IconComponent, "shadcn/ui", "Accessible UI components"},
	{components.IconBlocks, "Content Collections", "Type-safe content management"},
	{components.IconType, "TypeScript", "Enhanced type safety"},
	{components.IconFileCode, "MDX", "Markdown + JSX components"},
	{components.IconCheck, "Zod", "Schema validation"},
	{components.IconAlertTriangle, "ESLint", "Code linting"},
	{components.IconFlower, "Prettier", "Code formatting"},
	{components.IconBell, "Sonner", "Toast notifications"},
	{components.IconGitBranch, "Husky", "Git hooks automation"},
}
