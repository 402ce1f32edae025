package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BritishEnglish)

// Number formats n with thousands separators, e.g. 12345 => "12,345".
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// Count formats n with the singular or plural noun, e.g. Count(1, "course", "courses") => "1 course".
func Count(n int, singular, plural string) string {
	if n == 1 {
		return Number(n) + " " + singular
	}
	return Number(n) + " " + plural
}

// Year returns the calendar year of t in UK local time, falling back to UTC when the zone
// database is unavailable.
func Year(t time.Time) int {
	if loc, err := time.LoadLocation("Europe/London"); err == nil {
		return t.In(loc).Year()
	}
	return t.UTC().Year()
}
