// Package reports turns the plain-text AI readiness assessment and AI toolbox
// recommendation reports into structured records.
//
// Every rule is best effort: a missing field, section or numbered marker
// leaves the documented default in place and never aborts a parse. The only
// error the package returns is ErrUnsupportedKind. Parsing keeps no state
// between calls, so all functions are safe for concurrent use.
package reports

import (
	"strings"

	"github.com/rotisserie/eris"
)

// ParseKind maps a requested kind to a Kind. An empty string means auto.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindAuto:
		return KindAuto, nil
	case KindReadiness:
		return KindReadiness, nil
	case KindToolbox:
		return KindToolbox, nil
	default:
		return "", eris.Wrapf(ErrUnsupportedKind, "reports: kind %q", s)
	}
}

// Detect classifies text by content signature. It never returns KindAuto.
func Detect(text string) Kind {
	upper := strings.ToUpper(normalizeText(text))
	switch {
	case strings.Contains(upper, "AI READINESS ASSESSMENT"):
		return KindReadiness
	case strings.Contains(upper, "MESH AI TOOLBOX"), strings.Contains(upper, "RECOMMENDED TOOLS"):
		return KindToolbox
	case strings.Contains(upper, "OVERALL AI READINESS SCORE"), strings.Contains(upper, "MATURITY LEVEL"):
		return KindReadiness
	default:
		return KindToolbox
	}
}

// Parse resolves kind (detecting it when auto or empty) and runs the matching
// parser.
func Parse(text string, kind Kind) (Record, error) {
	if kind == "" || kind == KindAuto {
		kind = Detect(text)
	}
	switch kind {
	case KindReadiness:
		return ParseReadiness(text), nil
	case KindToolbox:
		return ParseToolbox(text), nil
	default:
		return nil, eris.Wrapf(ErrUnsupportedKind, "reports: kind %q", kind)
	}
}
