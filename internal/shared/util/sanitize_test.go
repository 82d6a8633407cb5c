package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	got, err := SanitizeFileName("  reports/readiness\\final.pdf ")
	require.NoError(t, err)
	assert.Equal(t, "reports_readiness_final.pdf", got)

	for _, bad := range []string{"../etc/passwd", "   ", ""} {
		_, err := SanitizeFileName(bad)
		assert.True(t, errors.Is(err, ErrInvalidFileName), bad)
	}
}

func TestDownloadName(t *testing.T) {
	tests := []struct {
		company string
		want    string
	}{
		{"Acme Corp", "Acme_Corp_AI_Playbook.docx"},
		{"  ", "Your_Company_AI_Playbook.docx"},
		{`Smith "and" Sons/Co`, "Smith_and_SonsCo_AI_Playbook.docx"},
		{"Café Nord", "Café_Nord_AI_Playbook.docx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DownloadName(tt.company), tt.company)
	}
}
