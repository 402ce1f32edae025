package main

import (
	"net/http"
	"net/url"

	mw "securiwisetraining.co.uk/web/internal/middleware"
	"securiwisetraining.co.uk/web/internal/nav"
)

// CoursesFrag applies a course chip and swaps the course grid. The CPD section rides along
// out-of-band since its visibility follows the course chip.
func (a *app) CoursesFrag(w http.ResponseWriter, r *http.Request) {
	v := a.restore(r)
	v.setCourseTag(r.URL.Query().Get("tag"))
	section := nav.SectionFor(v.sd.CourseTag)
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/"+section, http.StatusSeeOther)
		return
	}
	w.Header().Set("HX-Push-Url", "/?"+url.Values{"tag": {v.sd.CourseTag}}.Encode()+section)
	data := map[string]any{
		"Lang":    a.lang(r),
		"Courses": a.coursesView(v),
		"CPD":     a.cpdView(v),
		"OOB":     true,
	}
	a.render(w, r, "frag_courses", data)
}

// CPDFrag applies a CPD chip and/or search text and swaps the CPD grid. Parameters that are
// absent keep their stored value.
func (a *app) CPDFrag(w http.ResponseWriter, r *http.Request) {
	v := a.restore(r)
	q := r.URL.Query()
	if q.Has("tag") {
		v.setCPDTag(q.Get("tag"))
	}
	if q.Has("q") {
		v.setCPDQuery(q.Get("q"))
	}
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/#elearning", http.StatusSeeOther)
		return
	}
	push := url.Values{"cpd": {v.sd.CPDTag}}
	if v.sd.CPDQuery != "" {
		push.Set("q", v.sd.CPDQuery)
	}
	w.Header().Set("HX-Push-Url", "/?"+push.Encode()+"#elearning")
	data := map[string]any{
		"Lang": a.lang(r),
		"CPD":  a.cpdView(v),
	}
	a.render(w, r, "frag_cpd", data)
}
