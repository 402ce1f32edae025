package handlers

import (
	"securiwisetraining.co.uk/web/internal/nav"
	"securiwisetraining.co.uk/web/internal/seo"
)

// PageData is the view model for pages using the shared layout.
type PageData struct {
	Title     string
	Lang      string
	Theme     string
	CSRFToken string
	SEO       seo.Meta
	Analytics Analytics
	Year      int

	Path string
	Nav  []nav.RenderedItem

	Home *HomeData
}
