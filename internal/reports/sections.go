package reports

import (
	"regexp"
	"strings"
)

// Section headers recognized in both report kinds.
const (
	HeaderHighPriority           = "HIGH PRIORITY"
	HeaderMediumPriority         = "MEDIUM PRIORITY"
	HeaderLowPriority            = "LOW PRIORITY"
	HeaderRecommendedTools       = "RECOMMENDED TOOLS"
	HeaderBudgetPlanning         = "BUDGET PLANNING"
	HeaderNextSteps              = "NEXT STEPS"
	HeaderImplementationGuidance = "IMPLEMENTATION GUIDANCE"
)

var ruleRe = regexp.MustCompile(`={3,}`)

// keywordPattern matches a header keyword case-insensitively with any blank
// run between its words.
func keywordPattern(keyword string) string {
	words := strings.Fields(keyword)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, `[ \t]+`)
}

// lineStartPattern matches keyword at the start of a line, after optional
// decoration such as icons, bullets or rules.
func lineStartPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[^\pL\pN\n]*` + keywordPattern(keyword))
}

// Section returns the text that follows header up to the nearest boundary:
// a line starting with one of stops, a run of three or more '=' characters,
// or the end of text. The rest of the header line and any separator-only
// lines right after it are not part of the section. The second result is
// false when header does not occur in text.
func Section(text, header string, stops ...string) (string, bool) {
	start, ok := headerEnd(text, header)
	if !ok {
		return "", false
	}
	body := skipSeparatorLines(text[start:])

	end := len(body)
	if loc := ruleRe.FindStringIndex(body); loc != nil && loc[0] < end {
		end = loc[0]
	}
	for _, stop := range stops {
		if loc := lineStartPattern(stop).FindStringIndex(body); loc != nil && loc[0] < end {
			end = loc[0]
		}
	}
	return body[:end], true
}

// headerEnd locates header and returns the offset of the line after it. A
// header that opens a line wins over one embedded in running text.
func headerEnd(text, header string) (int, bool) {
	loc := lineStartPattern(header).FindStringIndex(text)
	if loc == nil {
		loc = regexp.MustCompile(`(?i)` + keywordPattern(header)).FindStringIndex(text)
	}
	if loc == nil {
		return 0, false
	}
	nl := strings.IndexByte(text[loc[1]:], '\n')
	if nl < 0 {
		return len(text), true
	}
	return loc[1] + nl + 1, true
}

// skipSeparatorLines drops leading blank lines and lines made only of rule
// characters.
func skipSeparatorLines(s string) string {
	for s != "" {
		line, rest, found := strings.Cut(s, "\n")
		if strings.TrimSpace(line) != "" && !isSeparatorLine(line) {
			return s
		}
		if !found {
			return ""
		}
		s = rest
	}
	return s
}

func isSeparatorLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return strings.Trim(trimmed, "-=_~*─━═—– \t") == ""
}
