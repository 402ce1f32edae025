// Package catalog loads the static content cards shown on the home page.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"securiwisetraining.co.uk/web/internal/filter"
	"securiwisetraining.co.uk/web/internal/markup"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Group names a catalog section.
type Group string

const (
	GroupCourses Group = "courses"
	GroupCPD     Group = "cpd"
)

// Category is a selectable filter chip.
type Category struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Card is one content card. HTML and SearchText are derived at load time.
type Card struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Badge     string   `yaml:"badge"`
	Duration  string   `yaml:"duration"`
	Tags      []string `yaml:"tags"`
	DetailKey string   `yaml:"detail"`
	Summary   string   `yaml:"summary"`

	Group      Group         `yaml:"-"`
	Position   int           `yaml:"-"`
	HTML       template.HTML `yaml:"-"`
	SearchText string        `yaml:"-"`
}

// Labels implements filter.Item.
func (c Card) Labels() []string { return c.Tags }

// Text implements filter.Item.
func (c Card) Text() string { return c.SearchText }

// TagList joins the card's tags for data attributes.
func (c Card) TagList() string { return strings.Join(c.Tags, " ") }

// Section is an ordered list of cards with its filter chips.
type Section struct {
	Categories []Category `yaml:"categories"`
	Cards      []Card     `yaml:"cards"`
}

// Known reports whether value is a declared category (All included).
func (s Section) Known(value string) bool {
	for _, c := range s.Categories {
		if c.Value == value {
			return true
		}
	}
	return false
}

// Catalog is the full, read-only card set.
type Catalog struct {
	Courses Section `yaml:"courses"`
	CPD     Section `yaml:"cpd"`
}

// Section returns the section for g.
func (c *Catalog) Section(g Group) Section {
	if g == GroupCPD {
		return c.CPD
	}
	return c.Courses
}

// Find returns the card with id in either section.
func (c *Catalog) Find(id string) (Card, bool) {
	for _, s := range []Section{c.Courses, c.CPD} {
		for _, card := range s.Cards {
			if card.ID == id {
				return card, true
			}
		}
	}
	return Card{}, false
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// LoadFile parses the catalog at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return cat, nil
}

// Load parses a YAML catalog and derives each card's HTML and search text.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cat Catalog
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := prepare(&cat.Courses, GroupCourses); err != nil {
		return nil, err
	}
	if err := prepare(&cat.CPD, GroupCPD); err != nil {
		return nil, err
	}
	return &cat, nil
}

func prepare(s *Section, g Group) error {
	if !s.Known(string(filter.All)) {
		s.Categories = append([]Category{{Value: string(filter.All), Label: "All"}}, s.Categories...)
	}
	for i := range s.Cards {
		card := &s.Cards[i]
		card.ID = strings.TrimSpace(card.ID)
		card.Title = strings.TrimSpace(card.Title)
		card.Group = g
		card.Position = i
		html, err := markup.Render(card.Summary)
		if err != nil {
			return fmt.Errorf("catalog: card %q: %w", card.ID, err)
		}
		card.HTML = html
		card.SearchText = filter.Fold(markup.PlainText(strings.Join([]string{
			template.HTMLEscapeString(card.Title),
			template.HTMLEscapeString(card.Badge),
			template.HTMLEscapeString(card.Duration),
			string(html),
		}, "\n")))
	}
	return nil
}

// Validate checks identifiers, tags and detail keys. resolve reports whether a detail key
// exists; it may be nil to skip that check.
func (c *Catalog) Validate(resolve func(string) bool) error {
	var errs []error
	seen := map[string]Group{}
	for _, s := range []struct {
		group   Group
		section Section
	}{{GroupCourses, c.Courses}, {GroupCPD, c.CPD}} {
		labels := map[string]bool{}
		for _, cat := range s.section.Categories {
			if strings.TrimSpace(cat.Label) == "" {
				errs = append(errs, fmt.Errorf("catalog: %s category %q has no label", s.group, cat.Value))
			}
			if labels[cat.Value] {
				errs = append(errs, fmt.Errorf("catalog: %s category %q declared twice", s.group, cat.Value))
			}
			labels[cat.Value] = true
		}
		for _, card := range s.section.Cards {
			if card.ID == "" {
				errs = append(errs, fmt.Errorf("catalog: %s card %d has no id", s.group, card.Position))
				continue
			}
			if g, dup := seen[card.ID]; dup {
				errs = append(errs, fmt.Errorf("catalog: card %q appears in %s and %s", card.ID, g, s.group))
			}
			seen[card.ID] = s.group
			if card.Title == "" {
				errs = append(errs, fmt.Errorf("catalog: card %q has no title", card.ID))
			}
			for _, tag := range card.Tags {
				if tag == string(filter.All) || !s.section.Known(tag) {
					errs = append(errs, fmt.Errorf("catalog: card %q tag %q is not a %s category", card.ID, tag, s.group))
				}
			}
			if card.DetailKey != "" && resolve != nil && !resolve(card.DetailKey) {
				errs = append(errs, fmt.Errorf("catalog: card %q references unknown detail %q", card.ID, card.DetailKey))
			}
		}
	}
	return errors.Join(errs...)
}
