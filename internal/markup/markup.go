// Package markup renders catalogue markdown to safe HTML and flattens HTML to plain text.
package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

var (
	md = goldmark.New()

	// copyPolicy allows the small subset of markup card copy uses.
	copyPolicy = bluemonday.UGCPolicy()
	// strictPolicy drops every tag; used on visitor-supplied text.
	strictPolicy = bluemonday.StrictPolicy()
)

// Render converts markdown card copy to sanitized HTML.
func Render(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markup: render markdown: %w", err)
	}
	return template.HTML(copyPolicy.SanitizeBytes(buf.Bytes())), nil
}

// PlainText flattens an HTML fragment into its visible text, collapsing whitespace.
// It mirrors what a browser reports as the element's text content.
func PlainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return collapseSpace(b.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				skip++
			case "br", "p", "li", "ul", "ol", "h1", "h2", "h3", "h4", "div":
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				if skip > 0 {
					skip--
				}
			case "p", "li", "h1", "h2", "h3", "h4", "div":
				b.WriteByte(' ')
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// StripTags removes all markup from untrusted input and trims it.
func StripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
