package reports

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var digitsRe = regexp.MustCompile(`\d+`)

// normalizeText prepares raw report text for matching: BOM removal, LF line
// endings and NFC composition.
func normalizeText(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return norm.NFC.String(text)
}

// labelPattern turns a label such as "Company Size" into a case-insensitive
// pattern that tolerates any run of blanks between its words.
func labelPattern(label string) string {
	words := strings.Fields(label)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return `(?i)` + strings.Join(words, `[ \t]+`) + `[ \t]*:[ \t]*`
}

// Field returns the trimmed value of the first "<label>: <value>" line in
// text. Anything before the label on that line (an icon, a bullet) is
// ignored. The second result is false when the label is missing or its value
// is blank.
func Field(text, label string) (string, bool) {
	re := regexp.MustCompile(labelPattern(label) + `([^\n]*)`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	value := strings.TrimSpace(m[1])
	if value == "" {
		return "", false
	}
	return value, true
}

// IntField returns the first run of digits following "<label>:" on the same line.
func IntField(text, label string) (int, bool) {
	re := regexp.MustCompile(labelPattern(label) + `[^\d\n]*(\d+)`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return atoi(m[1])
}

// currencyField reads a labeled value up to the first "$" on its line, so
// "Budget: Medium ($1,000 - $5,000/month)" yields "Medium".
func currencyField(text, label string) (string, bool) {
	value, ok := Field(text, label)
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(value, '$'); i >= 0 {
		value = value[:i]
	}
	value = strings.TrimRightFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune("([{-–—:,;/|", r)
	})
	if value == "" {
		return "", false
	}
	return value, true
}

// firstInt returns the first run of digits in s.
func firstInt(s string) (int, bool) {
	m := digitsRe.FindString(s)
	if m == "" {
		return 0, false
	}
	return atoi(m)
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func clampScore(n int) int {
	switch {
	case n < 0:
		return 0
	case n > 100:
		return 100
	default:
		return n
	}
}
