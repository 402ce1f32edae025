package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"securiwisetraining.co.uk/web/internal/detail"
	handlersPkg "securiwisetraining.co.uk/web/internal/handlers"
	"securiwisetraining.co.uk/web/internal/observability"
)

// HomeHandler renders the landing page. Query parameters let links and no-JS chip clicks
// select filters and open a detail directly: tag, cpd, q, open, postcode.
func (a *app) HomeHandler(w http.ResponseWriter, r *http.Request) {
	v := a.restore(r)
	q := r.URL.Query()
	if q.Has("tag") {
		v.setCourseTag(q.Get("tag"))
	}
	if q.Has("cpd") {
		v.setCPDTag(q.Get("cpd"))
	}
	if q.Has("q") {
		v.setCPDQuery(q.Get("q"))
	}
	if key := q.Get("open"); key != "" {
		if err := v.open(key); errors.Is(err, detail.ErrNotFound) {
			a.metrics.DetailLookups.WithLabelValues("miss").Inc()
			observability.FromContext(r.Context()).Debug("detail miss", zap.String("key", key))
		}
	}

	home := &handlersPkg.HomeData{
		Courses:   a.coursesView(v),
		CPD:       a.cpdView(v),
		Detail:    handlersPkg.BuildDetail(v.detail),
		Prefixes:  a.coverage.Prefixes(),
		Stats:     handlersPkg.BuildStats(a.catalog, a.coverage.Prefixes()),
		EnquiryTo: a.cfg.EnquiryTo,
	}
	if q.Has("postcode") {
		res := a.coverage.Check(q.Get("postcode"))
		home.Coverage = &res
	}
	a.render(w, r, "home", a.buildPage(r, v, home))
}
