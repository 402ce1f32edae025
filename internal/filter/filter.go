// Package filter decides which content cards are visible for a category selection and an
// optional free-text query. Visibility is always recomputed from scratch so it never depends on
// what was visible before.
package filter

import (
	"fmt"
	"slices"
	"strings"
)

// Category is a label cards can be filtered by.
type Category string

// All is the sentinel category that matches every card.
const All Category = "all"

// ParseCategory maps raw input to a Category. Blank input selects All.
func ParseCategory(raw string) Category {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return All
	}
	return Category(raw)
}

// Item is the view of a card the engine needs.
type Item interface {
	// Labels returns the card's category tags as stored.
	Labels() []string
	// Text returns the card's flattened, case-folded text.
	Text() string
}

// Mode selects which predicates apply to a catalog group.
type Mode int

const (
	// ByCategory filters the primary catalog on category alone.
	ByCategory Mode = iota
	// ByCategoryAndText filters the searchable catalog on category and query.
	ByCategoryAndText
)

func (m Mode) String() string {
	switch m {
	case ByCategory:
		return "category"
	case ByCategoryAndText:
		return "category+text"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Matcher reports whether a card's labels select tag.
type Matcher func(labels []string, tag string) bool

// ExactMatch requires tag to be one of the labels.
func ExactMatch(labels []string, tag string) bool {
	return slices.Contains(labels, tag)
}

// ContainsMatch accepts tag as a substring of the space-joined labels. A tag "cpd" therefore
// also matches a label "cpd2".
func ContainsMatch(labels []string, tag string) bool {
	if tag == "" {
		return false
	}
	return strings.Contains(strings.Join(labels, " "), tag)
}

// MatcherByName resolves a configured matcher name ("exact" or "contains").
func MatcherByName(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "exact":
		return ExactMatch, nil
	case "contains":
		return ContainsMatch, nil
	default:
		return nil, fmt.Errorf("filter: unknown tag matcher %q", name)
	}
}

// State is the selection for one catalog group.
type State struct {
	Active Category
	Query  string
}

// Visibility holds one flag per card, indexed by the card's position in its catalog.
type Visibility []bool

// Visible reports whether the card at position i is shown.
func (v Visibility) Visible(i int) bool {
	return i >= 0 && i < len(v) && v[i]
}

// Count returns the number of visible cards.
func (v Visibility) Count() int {
	n := 0
	for _, ok := range v {
		if ok {
			n++
		}
	}
	return n
}

// Apply evaluates st against every item. It is a pure function of its inputs.
func Apply[T Item](items []T, st State, mode Mode, match Matcher) Visibility {
	if match == nil {
		match = ExactMatch
	}
	active := st.Active
	if active == "" {
		active = All
	}
	query := ""
	if mode == ByCategoryAndText {
		query = Fold(st.Query)
	}

	out := make(Visibility, len(items))
	for i, it := range items {
		out[i] = matchCategory(it, active, mode, match) && matchQuery(it, query)
	}
	return out
}

func matchCategory(it Item, active Category, mode Mode, match Matcher) bool {
	if active == All {
		return true
	}
	if mode == ByCategoryAndText {
		// searchable cards compare tags without regard to case
		labels := it.Labels()
		folded := make([]string, len(labels))
		for i, l := range labels {
			folded[i] = Fold(l)
		}
		return match(folded, Fold(string(active)))
	}
	return match(it.Labels(), string(active))
}

func matchQuery(it Item, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(it.Text(), query)
}
