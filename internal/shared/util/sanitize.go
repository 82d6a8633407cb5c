package util

import (
	"strings"

	"github.com/rotisserie/eris"
)

// ErrInvalidFileName is returned for names that are empty or try to escape a
// directory.
var ErrInvalidFileName = eris.New("invalid file name")

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", eris.Wrapf(ErrInvalidFileName, "%q", name)
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}

// DownloadName builds the attachment name for a company's playbook, e.g.
// "Acme_Corp_AI_Playbook.docx". Characters unsafe in a Content-Disposition
// filename are dropped.
func DownloadName(company string) string {
	company = strings.TrimSpace(company)
	if company == "" {
		company = "Your Company"
	}
	var b strings.Builder
	for _, r := range company {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r == '"' || r == '/' || r == '\\' || r == ';' || r < 0x20 || r == 0x7f:
		default:
			b.WriteRune(r)
		}
	}
	return b.String() + "_AI_Playbook.docx"
}
