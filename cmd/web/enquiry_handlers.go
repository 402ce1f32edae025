package main

import (
	"net/http"

	"go.uber.org/zap"

	"securiwisetraining.co.uk/web/internal/enquiry"
	mw "securiwisetraining.co.uk/web/internal/middleware"
	"securiwisetraining.co.uk/web/internal/observability"
)

// EnquiryHandler turns a quick or contact form post into a mailto: draft and sends the
// browser to it. Nothing is stored or sent by the server.
func (a *app) EnquiryHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	form, err := enquiry.ParseForm(r.PostFormValue("form"))
	if err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "unknown form")
		return
	}
	d := enquiry.Draft{
		Form:     form,
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Phone:    r.PostFormValue("phone"),
		Topic:    r.PostFormValue("topic"),
		Interest: r.PostFormValue("interest"),
		Message:  r.PostFormValue("message"),
	}.Clean()

	lang := a.lang(r)
	status := map[string]any{
		"Lang": lang,
		"Form": string(form),
	}
	if err := d.Validate(); err != nil {
		observability.FromContext(r.Context()).Debug("enquiry rejected", zap.Error(err))
		if !mw.IsHTMX(r.Context()) {
			mw.WriteError(w, r, http.StatusBadRequest, a.i18n.T(lang, "form.invalid_email"))
			return
		}
		status["Error"] = a.i18n.T(lang, "form.invalid_email")
		a.render(w, r, "frag_enquiry_status", status)
		return
	}

	href := d.MailtoURL(a.cfg.EnquiryTo)
	a.metrics.Enquiries.WithLabelValues(string(form)).Inc()
	observability.FromContext(r.Context()).Info("enquiry draft", zap.String("form", string(form)))
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, href, http.StatusSeeOther)
		return
	}
	w.Header().Set("HX-Redirect", href)
	status["Sent"] = true
	a.render(w, r, "frag_enquiry_status", status)
}
