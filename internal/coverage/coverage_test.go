package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	c := NewChecker()
	cases := []struct {
		in   string
		want Outcome
	}{
		{"", OutcomeEmpty},
		{"   ", OutcomeEmpty},
		{"cb24 6ab", OutcomeCovered},
		{" PE29\t1AA", OutcomeCovered},
		{"CB2 1TN", OutcomeOutside},
		{"SW1A 1AA", OutcomeOutside},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := c.Check(tc.in)
			assert.Equal(t, tc.want, got.Outcome)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestCheckNormalizesPostcode(t *testing.T) {
	got := NewChecker().Check(" cb24 6ab ")
	assert.Equal(t, "CB246AB", got.Postcode)
	assert.Contains(t, got.Message, "within our stated coverage")
}

func TestCustomPrefixes(t *testing.T) {
	c := NewChecker(ParsePrefixes("cb1, ,pe27")...)
	assert.Equal(t, []string{"CB1", "PE27"}, c.Prefixes())
	assert.Equal(t, OutcomeCovered, c.Check("PE27 5AA").Outcome)
	assert.Equal(t, OutcomeOutside, c.Check("PE29 1AA").Outcome)
}
