// Package routes defines the pages of the site and registers them on a router.
package routes

import (
	"github.com/loke-dev/mdx-blog/app/components"
	"github.com/loke-dev/mdx-blog/internal/config"
	"github.com/loke-dev/mdx-blog/pkg/server"
)

// Register adds every page, the root layout and the 404/500 pages to r
func Register(r *server.Router, site config.SiteConfig) {
	r.Layouts().Register("/", RootLayout(components.FooterProps{
		RepositoryURL: site.RepositoryURL,
		Links:         site.Links,
	}))

	r.AddRoute("/", IndexPage(IndexProps{RepositoryURL: site.RepositoryURL}), server.WithMeta(IndexMeta))

	r.SetNotFound(NotFound(r.Closest), server.WithMeta(NotFoundMeta))
	r.SetErrorPage(ErrorPage)
}
