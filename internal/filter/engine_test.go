package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type card struct {
	id   string
	tags []string
	text string
}

func (c card) Labels() []string { return c.tags }
func (c card) Text() string     { return Fold(c.text) }

var courses = []card{
	{id: "efaw", tags: []string{"first-aid"}},
	{id: "l2", tags: []string{"first-aid"}},
	{id: "act-awareness", tags: []string{"act"}},
	{id: "act-security", tags: []string{"act", "security"}},
	{id: "untagged"},
}

var cpd = []card{
	{id: "cpd-lone", tags: []string{"lone"}, text: "CPD: Lone Working. Risk awareness and check-in routines."},
	{id: "cpd-conflict", tags: []string{"conflict", "lone"}, text: "De-escalation refresher for staff working alone."},
	{id: "cpd-reporting", tags: []string{"reporting"}, text: "Reduce the RISK of reporting pitfalls."},
	{id: "cpd-ethics", tags: []string{"Ethics"}, text: "Professional boundaries."},
}

func ids(items []card) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.id)
	}
	return out
}

func TestInitialStateShowsEverything(t *testing.T) {
	e := New(courses, ByCategory)
	assert.Equal(t, All, e.State().Active)
	assert.Equal(t, len(courses), e.Visibility().Count())
}

func TestSetActiveCategoryIsIdempotent(t *testing.T) {
	once := New(courses, ByCategory)
	once.SetActiveCategory("act")

	twice := New(courses, ByCategory)
	twice.SetActiveCategory("act")
	twice.SetActiveCategory("act")

	assert.Equal(t, once.Visibility(), twice.Visibility())
	assert.Equal(t, []string{"act-awareness", "act-security"}, ids(twice.Visible()))
}

func TestAllShowsEveryPrimaryCard(t *testing.T) {
	e := New(courses, ByCategory)
	e.SetActiveCategory("first-aid")
	require.Equal(t, 2, e.Visibility().Count())

	e.SetActiveCategory(All)
	assert.Equal(t, len(courses), e.Visibility().Count())
	assert.Contains(t, ids(e.Visible()), "untagged")
}

func TestSingleSelectReplacesPreviousCategory(t *testing.T) {
	e := New(courses, ByCategory)
	e.SetActiveCategory("first-aid")
	e.SetActiveCategory("security")
	assert.Equal(t, Category("security"), e.State().Active)
	assert.Equal(t, []string{"act-security"}, ids(e.Visible()))
}

func TestUnknownCategoryMatchesNothing(t *testing.T) {
	e := New(courses, ByCategory)
	e.SetActiveCategory("underwater-basket-weaving")
	assert.Zero(t, e.Visibility().Count())
}

func TestPrimaryMatchIsCaseSensitive(t *testing.T) {
	e := New(courses, ByCategory)
	e.SetActiveCategory("ACT")
	assert.Zero(t, e.Visibility().Count())
}

func TestPrimaryIgnoresQuery(t *testing.T) {
	e := New(courses, ByCategory)
	e.SetQuery("nothing matches this")
	assert.Equal(t, len(courses), e.Visibility().Count())
	assert.Equal(t, "nothing matches this", e.State().Query)
}

func TestConjunctiveSearchIsOrderIndependent(t *testing.T) {
	a := New(cpd, ByCategoryAndText)
	a.SetActiveCategory("lone")
	a.SetQuery("risk")

	b := New(cpd, ByCategoryAndText)
	b.SetQuery("risk")
	b.SetActiveCategory("lone")

	assert.Equal(t, a.Visibility(), b.Visibility())
	assert.Equal(t, []string{"cpd-lone"}, ids(a.Visible()))
}

func TestQueryIsTrimmedAndCaseFolded(t *testing.T) {
	e := New(cpd, ByCategoryAndText)
	e.SetQuery("  RiSk ")
	assert.Equal(t, "risk", e.State().Query)
	assert.Equal(t, []string{"cpd-lone", "cpd-reporting"}, ids(e.Visible()))
}

func TestEmptyQueryClearsTextFilter(t *testing.T) {
	e := New(cpd, ByCategoryAndText)
	e.SetQuery("risk")
	e.SetQuery("   ")
	assert.Equal(t, len(cpd), e.Visibility().Count())
}

func TestSearchableTagsCompareWithoutCase(t *testing.T) {
	e := New(cpd, ByCategoryAndText)
	e.SetActiveCategory("ethics")
	assert.Equal(t, []string{"cpd-ethics"}, ids(e.Visible()))
}

func TestSinkReceivesEveryRecompute(t *testing.T) {
	var got []Visibility
	e := New(cpd, ByCategoryAndText, WithSink(func(v Visibility) { got = append(got, v) }))
	e.SetActiveCategory("lone")
	e.SetQuery("risk")
	require.Len(t, got, 2)
	assert.Equal(t, Visibility{true, true, false, false}, got[0])
	assert.Equal(t, Visibility{true, false, false, false}, got[1])
}

func TestWithStateRestoresSelection(t *testing.T) {
	e := New(cpd, ByCategoryAndText, WithState(State{Active: "lone", Query: " RISK"}))
	assert.Equal(t, State{Active: "lone", Query: "risk"}, e.State())
	assert.Equal(t, []string{"cpd-lone"}, ids(e.Visible()))
}

func TestContainsMatcherKeepsSubstringSemantics(t *testing.T) {
	items := []card{{id: "a", tags: []string{"cpd2"}}, {id: "b", tags: []string{"first-aid"}}}

	exact := New(items, ByCategory)
	exact.SetActiveCategory("cpd")
	assert.Zero(t, exact.Visibility().Count())

	loose := New(items, ByCategory, WithMatcher(ContainsMatch))
	loose.SetActiveCategory("cpd")
	assert.Equal(t, []string{"a"}, ids(loose.Visible()))
}

func TestApplyIsPure(t *testing.T) {
	st := State{Active: "lone", Query: "alone"}
	first := Apply(cpd, st, ByCategoryAndText, nil)
	second := Apply(cpd, st, ByCategoryAndText, nil)
	assert.Equal(t, first, second)
	assert.Equal(t, Visibility{false, true, false, false}, first)
}

func TestMatcherByName(t *testing.T) {
	for _, name := range []string{"", "exact", "contains", " Contains "} {
		m, err := MatcherByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, m)
	}
	_, err := MatcherByName("fuzzy")
	assert.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, All, ParseCategory("  "))
	assert.Equal(t, Category("lone"), ParseCategory(" lone "))
}
