package enquiry

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectFallbacks(t *testing.T) {
	assert.Equal(t, "Enquiry — Training (No name)", Draft{}.Subject())
	assert.Equal(t, "Enquiry — ACT Security (Sam)", Draft{Name: "Sam", Interest: "ACT Security"}.Subject())
	assert.Equal(t, "Enquiry — Level 2 (Sam)", Draft{Name: "Sam", Topic: "Level 2", Interest: "ignored"}.Subject())
}

func TestBodyDropsBlankLines(t *testing.T) {
	d := Draft{Name: "Sam", Email: "sam@example.com", Interest: "Level 3", Message: "Two staff, March."}
	want := "Name: Sam\nEmail: sam@example.com\nInterest: Level 3\nMessage:\nTwo staff, March."
	assert.Equal(t, want, d.Body())
}

func TestBodyIncludesPhoneWhenGiven(t *testing.T) {
	d := Draft{Name: "Sam", Phone: "01234 567890"}
	assert.Contains(t, d.Body(), "Email: \nPhone: 01234 567890\nInterest: \nMessage:")
}

func TestMailtoURLRoundTrips(t *testing.T) {
	d := Draft{Name: "Sam & Co", Email: "sam@example.com", Topic: "CPD", Message: "Hello there"}
	link := d.MailtoURL("info@securiwisetraining.co.uk")

	require.True(t, strings.HasPrefix(link, "mailto:info%40securiwisetraining.co.uk?subject="))
	assert.NotContains(t, link, "+")

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, d.Subject(), q.Get("subject"))
	assert.Equal(t, d.Body(), q.Get("body"))
}

func TestCleanStripsMarkupAndFormFields(t *testing.T) {
	quick := Draft{Form: FormQuick, Name: " <b>Sam</b> ", Phone: "0123", Interest: "x", Topic: "CPD"}.Clean()
	assert.Equal(t, "Sam", quick.Name)
	assert.Empty(t, quick.Phone)
	assert.Empty(t, quick.Interest)
	assert.Equal(t, "CPD", quick.Topic)

	contact := Draft{Form: FormContact, Topic: "x", Phone: "0123", Message: "<script>x()</script>hi"}.Clean()
	assert.Empty(t, contact.Topic)
	assert.Equal(t, "0123", contact.Phone)
	assert.Equal(t, "hi", contact.Message)
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, Draft{}.Validate())
	assert.NoError(t, Draft{Email: "sam@example.com"}.Validate())
	assert.ErrorIs(t, Draft{Email: "not an address"}.Validate(), ErrInvalidEmail)
}

func TestParseForm(t *testing.T) {
	f, err := ParseForm(" Contact ")
	require.NoError(t, err)
	assert.Equal(t, FormContact, f)
	_, err = ParseForm("newsletter")
	assert.Error(t, err)
}

func TestMailtoURLMatchesBrowserEncoding(t *testing.T) {
	d := Draft{Name: "Sam O'Neil", Topic: "Level 2 (Fri)*!"}
	link := d.MailtoURL("info@securiwisetraining.co.uk")
	assert.Contains(t, link, "subject=Enquiry%20%E2%80%94%20Level%202%20(Fri)*!%20(Sam%20O'Neil)")
}
