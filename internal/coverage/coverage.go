// Package coverage answers whether a postcode falls inside the advertised training areas.
package coverage

import (
	"strings"
	"unicode"
)

// Outcome classifies a check.
type Outcome string

const (
	OutcomeEmpty   Outcome = "empty"
	OutcomeCovered Outcome = "covered"
	OutcomeOutside Outcome = "outside"
)

// Result is the outcome of a check and the message shown to the visitor.
type Result struct {
	Postcode string
	Outcome  Outcome
	Message  string
}

const (
	msgEmpty   = "Enter a postcode to check."
	msgCovered = "✅ Yes — that’s within our stated coverage areas."
	msgOutside = "ℹ️ Outside listed areas — still enquire, we may be able to help."
)

// DefaultPrefixes are the outward codes listed on the site.
var DefaultPrefixes = []string{"CB24", "PE29"}

// Checker matches normalised postcodes against prefixes.
type Checker struct {
	prefixes []string
}

// NewChecker returns a Checker for prefixes, or DefaultPrefixes when none are given.
func NewChecker(prefixes ...string) *Checker {
	c := &Checker{}
	for _, p := range prefixes {
		if p = Normalize(p); p != "" {
			c.prefixes = append(c.prefixes, p)
		}
	}
	if len(c.prefixes) == 0 {
		c.prefixes = append(c.prefixes, DefaultPrefixes...)
	}
	return c
}

// ParsePrefixes splits a comma separated prefix list.
func ParsePrefixes(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = Normalize(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Prefixes returns the configured prefixes.
func (c *Checker) Prefixes() []string { return append([]string(nil), c.prefixes...) }

// Check evaluates postcode.
func (c *Checker) Check(postcode string) Result {
	v := Normalize(postcode)
	res := Result{Postcode: v}
	switch {
	case v == "":
		res.Outcome, res.Message = OutcomeEmpty, msgEmpty
	case c.covered(v):
		res.Outcome, res.Message = OutcomeCovered, msgCovered
	default:
		res.Outcome, res.Message = OutcomeOutside, msgOutside
	}
	return res
}

func (c *Checker) covered(v string) bool {
	for _, p := range c.prefixes {
		if strings.HasPrefix(v, p) {
			return true
		}
	}
	return false
}

// Normalize upper-cases s and removes all whitespace.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}
