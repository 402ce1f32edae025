// Package enquiry turns contact form submissions into mail drafts.
package enquiry

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"securiwisetraining.co.uk/web/internal/markup"
)

// Form identifies which page form produced a draft.
type Form string

const (
	FormQuick   Form = "quick"
	FormContact Form = "contact"
)

// ParseForm validates a form name.
func ParseForm(raw string) (Form, error) {
	switch Form(strings.ToLower(strings.TrimSpace(raw))) {
	case FormQuick:
		return FormQuick, nil
	case FormContact:
		return FormContact, nil
	default:
		return "", fmt.Errorf("enquiry: unknown form %q", raw)
	}
}

// ErrInvalidEmail is returned when a supplied reply address cannot be parsed.
var ErrInvalidEmail = errors.New("enquiry: invalid email address")

// Draft is a visitor's enquiry.
type Draft struct {
	Form     Form
	Name     string
	Email    string
	Phone    string
	Topic    string
	Interest string
	Message  string
}

// Clean strips markup and surrounding space from every field. Phone is only kept for the
// contact form and Topic only for the quick form, matching the fields each form renders.
func (d Draft) Clean() Draft {
	out := Draft{
		Form:     d.Form,
		Name:     markup.StripTags(d.Name),
		Email:    markup.StripTags(d.Email),
		Phone:    markup.StripTags(d.Phone),
		Topic:    markup.StripTags(d.Topic),
		Interest: markup.StripTags(d.Interest),
		Message:  strings.TrimSpace(markup.StripTags(d.Message)),
	}
	switch d.Form {
	case FormQuick:
		out.Phone = ""
		out.Interest = ""
	case FormContact:
		out.Topic = ""
	}
	return out
}

// Validate checks the reply address when one was given.
func (d Draft) Validate() error {
	if d.Email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(d.Email); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, d.Email)
	}
	return nil
}

// Subject builds the mail subject line.
func (d Draft) Subject() string {
	return fmt.Sprintf("Enquiry — %s (%s)", firstNonEmpty(d.Topic, d.Interest, "Training"), firstNonEmpty(d.Name, "No name"))
}

// Body builds the plain-text mail body. Blank lines are dropped, so the body reads as a compact
// list of the supplied fields.
func (d Draft) Body() string {
	lines := []string{
		"Name: " + d.Name,
		"Email: " + d.Email,
		"",
		"",
		"Interest: " + firstNonEmpty(d.Topic, d.Interest),
		"",
		"Message:",
		d.Message,
	}
	if d.Phone != "" {
		lines[2] = "Phone: " + d.Phone
	}
	kept := lines[:0]
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

// MailtoURL returns a mailto: link addressed to to carrying the subject and body.
func (d Draft) MailtoURL(to string) string {
	return "mailto:" + encodeComponent(to) +
		"?subject=" + encodeComponent(d.Subject()) +
		"&body=" + encodeComponent(d.Body())
}

// componentUnescape undoes the escapes url.QueryEscape applies but encodeURIComponent does not.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent percent-encodes s the way browsers encode URI components.
func encodeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
