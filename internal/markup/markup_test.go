package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSanitizesScript(t *testing.T) {
	out, err := Render("Hello **world**\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<strong>world</strong>")
	assert.NotContains(t, string(out), "<script")
}

func TestPlainTextFlattensLists(t *testing.T) {
	got := PlainText("<p>Overview:</p><ul><li>Risk awareness</li><li>Check-in   routines</li></ul>")
	assert.Equal(t, "Overview: Risk awareness Check-in routines", got)
}

func TestPlainTextSkipsScripts(t *testing.T) {
	got := PlainText("<p>visible</p><script>var hidden = 1;</script>")
	assert.Equal(t, "visible", got)
}

func TestPlainTextDecodesEntities(t *testing.T) {
	got := PlainText("<p>Safeguarding &amp; Duty of Care</p>")
	assert.Equal(t, "Safeguarding & Duty of Care", got)
}

func TestStripTags(t *testing.T) {
	got := StripTags("  <b>Jane</b> <img src=x onerror=alert(1)>Doe ")
	assert.Equal(t, "Jane Doe", strings.TrimSpace(got))
}
