package nav

import "strings"

// Item is a top-level navigation entry. Anchors point at sections of the one-page site.
type Item struct {
	Anchor   string // e.g. "#courses"
	LabelKey string // i18n key, e.g. "nav.courses"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Anchor: "#courses", LabelKey: "nav.courses"},
	{Anchor: "#elearning", LabelKey: "nav.cpd"},
	{Anchor: "#coverage", LabelKey: "nav.coverage"},
	{Anchor: "#contact", LabelKey: "nav.contact"},
}

// SectionFor maps the active course chip to the section the page should land on: CPD filters
// jump to the e-learning block, everything else to the course grid.
func SectionFor(courseTag string) string {
	if courseTag == "cpd" {
		return "#elearning"
	}
	return "#courses"
}

// Build renders navigation items, marking the one matching active. active may be given with or
// without the leading '#'.
func Build(active string) []RenderedItem {
	if active != "" && !strings.HasPrefix(active, "#") {
		active = "#" + active
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Anchor,
			LabelKey: it.LabelKey,
			Active:   it.Anchor == active,
		})
	}
	return items
}
