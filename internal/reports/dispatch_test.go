package reports

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"", KindAuto},
		{"auto", KindAuto},
		{"Readiness", KindReadiness},
		{" toolbox ", KindToolbox},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseKind_Unsupported(t *testing.T) {
	_, err := ParseKind("invoice")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedKind))
	assert.Contains(t, err.Error(), "invoice")
}

func TestParse_UnsupportedKind(t *testing.T) {
	rec, err := Parse("anything", Kind("invoice"))

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Kind
	}{
		{"assessment banner", "AI Readiness Assessment Report\n", KindReadiness},
		{"toolbox banner", "MESH AI Toolbox Recommendations\n", KindToolbox},
		{"tools header", "RECOMMENDED TOOLS\n1. X\n", KindToolbox},
		{"overall score only", "Overall AI Readiness Score: 10\n", KindReadiness},
		{"maturity only", "maturity level: Exploring\n", KindReadiness},
		{"unknown", "hello world", KindToolbox},
		{"empty", "", KindToolbox},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestParse_AutoDetectsReadiness(t *testing.T) {
	text := "AI READINESS ASSESSMENT\nOverall AI Readiness Score: 73/100\nMaturity Level: Scaling\n"

	rec, err := Parse(text, KindAuto)

	require.NoError(t, err)
	require.Equal(t, KindReadiness, rec.Kind())
	readiness, ok := rec.(ReadinessRecord)
	require.True(t, ok)
	assert.Equal(t, 73, readiness.OverallScore)
	assert.Equal(t, "Scaling", readiness.MaturityLevel)
}

func TestParse_EmptyKindDetectsToolbox(t *testing.T) {
	rec, err := Parse(readFixture(t, "toolbox_report.txt"), "")

	require.NoError(t, err)
	toolbox, ok := rec.(ToolboxRecord)
	require.True(t, ok)
	assert.Len(t, toolbox.RecommendedTools, 3)
}

func TestParse_ExplicitKindSkipsDetection(t *testing.T) {
	rec, err := Parse("AI READINESS ASSESSMENT\nIndustry: Health\n", KindToolbox)

	require.NoError(t, err)
	toolbox, ok := rec.(ToolboxRecord)
	require.True(t, ok)
	assert.Equal(t, "Health", toolbox.Industry)
}
