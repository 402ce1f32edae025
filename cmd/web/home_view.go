package main

import (
	"net/http"
	"strings"
	"time"

	"securiwisetraining.co.uk/web/internal/catalog"
	"securiwisetraining.co.uk/web/internal/detail"
	"securiwisetraining.co.uk/web/internal/filter"
	"securiwisetraining.co.uk/web/internal/format"
	handlersPkg "securiwisetraining.co.uk/web/internal/handlers"
	"securiwisetraining.co.uk/web/internal/markup"
	mw "securiwisetraining.co.uk/web/internal/middleware"
	"securiwisetraining.co.uk/web/internal/nav"
	"securiwisetraining.co.uk/web/internal/observability"
	"securiwisetraining.co.uk/web/internal/seo"
)

// visitor is one request's view of the session: both filter engines and the detail presenter,
// rebuilt from the stored selections. Setters apply one event and record the result.
type visitor struct {
	sd      *mw.SessionData
	courses *filter.Engine[catalog.Card]
	cpd     *filter.Engine[catalog.Card]
	detail  *detail.Presenter
}

func (a *app) restore(r *http.Request) *visitor {
	sd := mw.GetSession(r)
	return &visitor{
		sd: sd,
		courses: filter.New(a.catalog.Courses.Cards, filter.ByCategory,
			filter.WithMatcher(a.match),
			filter.WithState(filter.State{Active: filter.ParseCategory(sd.CourseTag)}),
			filter.WithSink(a.observeFilter(catalog.GroupCourses)),
		),
		cpd: filter.New(a.catalog.CPD.Cards, filter.ByCategoryAndText,
			filter.WithMatcher(a.match),
			filter.WithState(filter.State{Active: filter.ParseCategory(sd.CPDTag), Query: sd.CPDQuery}),
			filter.WithSink(a.observeFilter(catalog.GroupCPD)),
		),
		detail: detail.Restore(sd.OpenDetail, detailMetrics{a.metrics}),
	}
}

func (v *visitor) setCourseTag(raw string) {
	tag := filter.ParseCategory(raw)
	v.courses.SetActiveCategory(tag)
	v.sd.CourseTag = string(tag)
	v.sd.MarkDirty()
}

func (v *visitor) setCPDTag(raw string) {
	tag := filter.ParseCategory(raw)
	v.cpd.SetActiveCategory(tag)
	v.sd.CPDTag = string(tag)
	v.sd.MarkDirty()
}

// maxQueryRunes bounds the stored search text so the session cookie stays under the browser's
// 4096 byte limit. The search input carries the same maxlength.
const maxQueryRunes = 200

func (v *visitor) setCPDQuery(raw string) {
	raw = strings.TrimSpace(raw)
	if r := []rune(raw); len(r) > maxQueryRunes {
		raw = strings.TrimSpace(string(r[:maxQueryRunes]))
	}
	v.cpd.SetQuery(raw)
	v.sd.CPDQuery = raw
	v.sd.MarkDirty()
}

func (v *visitor) open(raw string) error {
	if err := v.detail.Open(raw); err != nil {
		return err
	}
	v.sd.OpenDetail = string(v.detail.State().Key())
	v.sd.MarkDirty()
	return nil
}

func (v *visitor) close() {
	wasOpen := v.detail.State().IsOpen()
	v.detail.Close()
	if wasOpen || v.sd.OpenDetail != "" {
		v.sd.OpenDetail = ""
		v.sd.MarkDirty()
	}
}

func (a *app) coursesView(v *visitor) handlersPkg.SectionView {
	return handlersPkg.BuildSection(catalog.GroupCourses, a.catalog.Courses, v.courses.State(), v.courses.Visibility())
}

func (a *app) cpdView(v *visitor) handlersPkg.SectionView {
	sec := handlersPkg.BuildSection(catalog.GroupCPD, a.catalog.CPD, v.cpd.State(), v.cpd.Visibility())
	// show what the visitor typed, not the folded form
	sec.Query = v.sd.CPDQuery
	sec.Visible = handlersPkg.ShowsCPD(v.courses.State().Active)
	return sec
}

// observeFilter records every recomputed visibility set.
func (a *app) observeFilter(g catalog.Group) filter.Sink {
	return func(vis filter.Visibility) {
		a.metrics.FilterApplications.WithLabelValues(string(g)).Inc()
		a.metrics.VisibleCards.WithLabelValues(string(g)).Set(float64(vis.Count()))
	}
}

// detailMetrics counts what the presenter shows and dismisses.
type detailMetrics struct{ m *observability.Metrics }

func (d detailMetrics) Show(detail.Key, detail.Record) {
	d.m.DetailLookups.WithLabelValues("hit").Inc()
}

func (d detailMetrics) Dismiss() {
	d.m.DetailLookups.WithLabelValues("close").Inc()
}

// lang picks the copy language for r.
func (a *app) lang(r *http.Request) string {
	return a.i18n.Resolve(r.Header.Get("Accept-Language"))
}

// buildPage fills the shared layout fields and the home payload.
func (a *app) buildPage(r *http.Request, v *visitor, home *handlersPkg.HomeData) handlersPkg.PageData {
	lang := a.lang(r)
	brand := a.i18n.T(lang, "site.name")
	vm := handlersPkg.PageData{
		Title:     brand,
		Lang:      lang,
		Theme:     string(mw.ThemeOf(r.Context())),
		CSRFToken: mw.CSRFToken(r),
		Analytics: handlersPkg.AnalyticsFrom(a.cfg),
		Year:      format.Year(time.Now()),
		Path:      r.URL.Path,
		Nav:       nav.Build(nav.SectionFor(v.sd.CourseTag)),
		Home:      home,
	}
	canonical := strings.TrimRight(a.cfg.BaseURL, "/") + "/"
	vm.SEO.Title = brand + " | " + a.i18n.T(lang, "hero.title")
	vm.SEO.Description = a.i18n.T(lang, "site.description")
	vm.SEO.Canonical = canonical
	vm.SEO.Robots = "index,follow"
	vm.SEO.OG.URL = canonical
	vm.SEO.OG.SiteName = brand
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description
	vm.SEO.OG.Type = "website"
	vm.SEO.Twitter.Card = "summary"
	vm.SEO.JSONLD = a.jsonLD(brand)
	return vm
}

func (a *app) jsonLD(brand string) []string {
	items := make([]seo.CourseItem, 0, len(a.catalog.Courses.Cards))
	for _, c := range a.catalog.Courses.Cards {
		items = append(items, seo.CourseItem{
			ID:          c.ID,
			Name:        c.Title,
			Description: markup.PlainText(string(c.HTML)),
		})
	}
	return []string{
		seo.JSON(seo.Organization(brand, a.cfg.BaseURL, a.cfg.EnquiryTo)),
		seo.JSON(seo.WebSite(brand, a.cfg.BaseURL, "")),
		seo.JSON(seo.CourseList(items, a.cfg.BaseURL, brand)),
	}
}
