package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection_StopsAtRule(t *testing.T) {
	text := "NEXT STEPS\n1. One\n2. Two\n=====\nFooter"

	got, ok := Section(text, HeaderNextSteps)

	require.True(t, ok)
	assert.Equal(t, "1. One\n2. Two\n", got)
}

func TestSection_SkipsHeaderDecoration(t *testing.T) {
	text := "🚀 NEXT STEPS (do these first)\n==========\n\n1. Go\n"

	got, ok := Section(text, HeaderNextSteps)

	require.True(t, ok)
	assert.Equal(t, "1. Go\n", got)
}

func TestSection_PrefersLineStartHeader(t *testing.T) {
	text := "See the next steps below.\nNEXT STEPS\n1. Real\n"

	got, ok := Section(text, HeaderNextSteps)

	require.True(t, ok)
	assert.Equal(t, "1. Real\n", got)
}

func TestSection_StopHeaderMustOpenLine(t *testing.T) {
	text := "HIGH PRIORITY\n1. Fix before medium priority work\nMEDIUM PRIORITY\n1. Later\n"

	got, ok := Section(text, HeaderHighPriority, HeaderMediumPriority)

	require.True(t, ok)
	assert.Equal(t, "1. Fix before medium priority work\n", got)
}

func TestSection_Missing(t *testing.T) {
	_, ok := Section("nothing here", HeaderBudgetPlanning)
	assert.False(t, ok)
}

func TestField(t *testing.T) {
	text := "🏢 Industry:   Health Care  \ncompany   size: 11-50\nEmpty:\nNext: line"

	v, ok := Field(text, "Industry")
	require.True(t, ok)
	assert.Equal(t, "Health Care", v)

	v, ok = Field(text, "Company Size")
	require.True(t, ok)
	assert.Equal(t, "11-50", v)

	_, ok = Field(text, "Empty")
	assert.False(t, ok)

	_, ok = Field(text, "Missing")
	assert.False(t, ok)
}

func TestIntField(t *testing.T) {
	n, ok := IntField("Match Score: about 87 of 100", "Match Score")
	require.True(t, ok)
	assert.Equal(t, 87, n)

	_, ok = IntField("Match Score: n/a\n42", "Match Score")
	assert.False(t, ok)
}

func TestCurrencyField(t *testing.T) {
	tests := map[string]string{
		"Budget: Medium ($1,000 - $5,000/month)": "Medium",
		"Budget: High – $10k+":                   "High",
		"Budget: Low: $0-$100":                   "Low",
		"Budget: Flexible":                       "Flexible",
	}
	for in, want := range tests {
		got, ok := currencyField(in, "Budget")
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := currencyField("Budget: $500", "Budget")
	assert.False(t, ok)
}

func TestNumberedLines(t *testing.T) {
	got := NumberedLines("intro\n1. First\n  2. Second\n3.\n10. Tenth\nnot 4. this")
	assert.Equal(t, []string{"First", "Second", "Tenth"}, got)

	assert.Equal(t, []string{}, NumberedLines(""))
}
