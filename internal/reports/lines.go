package reports

import (
	"regexp"
	"strings"
	"unicode"
)

var numberedRe = regexp.MustCompile(`^([ \t]*)(\d+)\.(?:[ \t]+(.*))?$`)

// numberedLine is a line of the form "<integer>. <text>".
type numberedLine struct {
	indent int
	number int
	text   string
}

func parseNumbered(line string) (numberedLine, bool) {
	m := numberedRe.FindStringSubmatch(line)
	if m == nil {
		return numberedLine{}, false
	}
	n, ok := atoi(m[2])
	if !ok {
		return numberedLine{}, false
	}
	return numberedLine{
		indent: len(m[1]),
		number: n,
		text:   strings.TrimSpace(m[3]),
	}, true
}

// itemIndent is the shallowest indentation of any numbered line. Only numbered
// lines at this depth can open a new item; deeper ones belong to the item
// above them. It returns -1 when section has no numbered line.
func itemIndent(lines []string) int {
	base := -1
	for _, line := range lines {
		if n, ok := parseNumbered(line); ok && (base < 0 || n.indent < base) {
			base = n.indent
		}
	}
	return base
}

// NumberedLines returns the text of every "<integer>. <text>" line of section,
// in order of appearance. Lines with no text after the marker are skipped.
func NumberedLines(section string) []string {
	out := []string{}
	for _, line := range strings.Split(section, "\n") {
		n, ok := parseNumbered(line)
		if !ok || n.text == "" {
			continue
		}
		out = append(out, n.text)
	}
	return out
}

// bulletGlyphs are the list markers accepted in front of sub-list lines.
const bulletGlyphs = "•◦▪▫‣●○·∙*-–"

// stripBullet removes a leading bullet glyph. The second result is false when
// line does not start with one.
func stripBullet(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, g := range bulletGlyphs {
		if rest, ok := strings.CutPrefix(trimmed, string(g)); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

// stripDecoration removes icons and other non-alphanumeric glyphs that some
// reports put in front of labels.
func stripDecoration(line string) string {
	return strings.TrimLeftFunc(strings.TrimSpace(line), isDecoration)
}

func isDecoration(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
