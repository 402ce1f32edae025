package handlers

import (
	"securiwisetraining.co.uk/web/internal/catalog"
	"securiwisetraining.co.uk/web/internal/coverage"
	"securiwisetraining.co.uk/web/internal/detail"
	"securiwisetraining.co.uk/web/internal/filter"
)

// Chip is one category trigger.
type Chip struct {
	Value  string
	Label  string
	Active bool
}

// CardView pairs a card with its computed visibility.
type CardView struct {
	catalog.Card
	Visible bool
}

// SectionView is a filtered catalog section ready to render.
type SectionView struct {
	Group   catalog.Group
	Active  string
	Query   string
	Chips   []Chip
	Cards   []CardView
	Shown   int
	Total   int
	Visible bool
}

// BuildSection renders sec under st. vis must come from the engine built over sec.Cards.
func BuildSection(g catalog.Group, sec catalog.Section, st filter.State, vis filter.Visibility) SectionView {
	v := SectionView{
		Group:   g,
		Active:  string(st.Active),
		Query:   st.Query,
		Chips:   make([]Chip, 0, len(sec.Categories)),
		Cards:   make([]CardView, 0, len(sec.Cards)),
		Shown:   vis.Count(),
		Total:   len(sec.Cards),
		Visible: true,
	}
	for _, c := range sec.Categories {
		v.Chips = append(v.Chips, Chip{Value: c.Value, Label: c.Label, Active: c.Value == string(st.Active)})
	}
	for i, card := range sec.Cards {
		v.Cards = append(v.Cards, CardView{Card: card, Visible: vis.Visible(i)})
	}
	return v
}

// ShowsCPD reports whether the CPD section is on screen for the active course chip. CPD is its
// own course category, so it only appears under "all" and "cpd".
func ShowsCPD(courseTag filter.Category) bool {
	return courseTag == filter.All || courseTag == filter.Category(catalog.GroupCPD)
}

// DetailView is the modal's content. A zero value renders a closed dialog.
type DetailView struct {
	Open     bool
	Key      string
	Title    string
	Bullets  []string
	CTALabel string
	CTAHref  string
}

// BuildDetail reads the presenter's current record.
func BuildDetail(p *detail.Presenter) DetailView {
	rec, ok := p.Current()
	if !ok {
		return DetailView{}
	}
	return DetailView{
		Open:     true,
		Key:      string(p.State().Key()),
		Title:    rec.Title,
		Bullets:  rec.Bullets,
		CTALabel: rec.CTALabel,
		CTAHref:  rec.CTAHref,
	}
}

// Stat is a headline number in the trust strip.
type Stat struct {
	Value    int
	LabelKey string
}

// HomeData is the view model for the landing page.
type HomeData struct {
	Courses   SectionView
	CPD       SectionView
	Detail    DetailView
	Coverage  *coverage.Result
	Prefixes  []string
	Stats     []Stat
	EnquiryTo string
}

// BuildStats derives the trust strip from the loaded content.
func BuildStats(cat *catalog.Catalog, prefixes []string) []Stat {
	return []Stat{
		{Value: len(cat.Courses.Cards), LabelKey: "stats.courses"},
		{Value: len(cat.CPD.Cards), LabelKey: "stats.cpd"},
		{Value: len(detail.Keys()), LabelKey: "stats.outlines"},
		{Value: len(prefixes), LabelKey: "stats.areas"},
	}
}
