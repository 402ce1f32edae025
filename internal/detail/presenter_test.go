package detail

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	shown     []Key
	dismissed int
}

func (s *recordingSink) Show(k Key, _ Record) { s.shown = append(s.shown, k) }
func (s *recordingSink) Dismiss()             { s.dismissed++ }

func TestOpenKnownKey(t *testing.T) {
	p := NewPresenter(nil)
	require.NoError(t, p.Open("l2"))

	assert.Equal(t, OpenOn(KeyLevel2), p.State())
	rec, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "Level 2 First Aid", rec.Title)
	assert.Len(t, rec.Bullets, 4)
	assert.Equal(t, "Enquire about Level 2", rec.CTALabel)
	assert.Equal(t, "#contact", rec.CTAHref)
}

func TestOpenUnknownKeyFromClosed(t *testing.T) {
	p := NewPresenter(nil)
	err := p.Open("nonexistent-key")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, Closed, p.State())
	_, ok := p.Current()
	assert.False(t, ok)
}

func TestOpenUnknownKeyKeepsOpenOverlay(t *testing.T) {
	sink := &recordingSink{}
	p := NewPresenter(sink)
	require.NoError(t, p.Open("cpd-lone"))

	err := p.Open("cpd-underwater")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, OpenOn(KeyCPDLone), p.State())
	rec, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "CPD: Lone Working", rec.Title)
	assert.Equal(t, []Key{KeyCPDLone}, sink.shown)
	assert.Zero(t, sink.dismissed)
}

func TestOpenReplacesWithoutClose(t *testing.T) {
	sink := &recordingSink{}
	p := NewPresenter(sink)
	require.NoError(t, p.Open("l2"))
	require.NoError(t, p.Open("l3"))

	assert.Equal(t, OpenOn(KeyLevel3), p.State())
	rec, _ := p.Current()
	assert.Equal(t, "Level 3 First Aid", rec.Title)
	assert.Equal(t, []Key{KeyLevel2, KeyLevel3}, sink.shown)
	assert.Zero(t, sink.dismissed)
}

func TestCloseIsIdempotent(t *testing.T) {
	sink := &recordingSink{}
	p := NewPresenter(sink)
	p.Close()
	p.Close()
	assert.Equal(t, Closed, p.State())
	assert.Zero(t, sink.dismissed)

	require.NoError(t, p.Open("act-security"))
	p.Close()
	p.Close()
	assert.Equal(t, Closed, p.State())
	assert.Equal(t, 1, sink.dismissed)
}

func TestRestore(t *testing.T) {
	p := Restore("cpd-ethics", nil)
	assert.Equal(t, OpenOn(KeyCPDEthics), p.State())

	assert.Equal(t, Closed, Restore("", nil).State())
	assert.Equal(t, Closed, Restore("bogus", nil).State())
}

func TestCurrentReturnsCopy(t *testing.T) {
	p := NewPresenter(nil)
	require.NoError(t, p.Open("l2"))
	rec, _ := p.Current()
	rec.Bullets[0] = "mutated"

	again, _ := p.Current()
	assert.Equal(t, "Life-saving actions and prioritising response", again.Bullets[0])
	fresh, err := Lookup(KeyLevel2)
	require.NoError(t, err)
	assert.Equal(t, "Life-saving actions and prioritising response", fresh.Bullets[0])
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Closed", Closed.String())
	assert.Equal(t, "Open(l3)", OpenOn(KeyLevel3).String())
}
