package reports

import (
	"regexp"
	"strings"
)

const actionItemsMarker = "Action Items:"

var (
	// "Title (Dimension)" with the parenthesized part closing the line.
	trailingDimensionRe = regexp.MustCompile(`^(.+?)\s*\(([^()]+)\)\s*$`)
	// "Title (Dimension) trailing words": first parenthesized part wins.
	leadingDimensionRe = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)`)
)

// ParseRecommendations splits a priority section into numbered items. Text
// before the first numbered line is preamble and is dropped, as are items
// whose header yields an empty title.
func ParseRecommendations(section string) []RecommendationItem {
	lines := strings.Split(normalizeText(section), "\n")
	base := itemIndent(lines)
	out := []RecommendationItem{}

	var cur *recommendationBlock
	flush := func() {
		if cur == nil {
			return
		}
		if item, ok := cur.item(); ok {
			out = append(out, item)
		}
	}

	prevBlank := false
	for _, line := range lines {
		n, numbered := parseNumbered(line)
		if numbered && n.indent == base && cur.opensItem(n, prevBlank) {
			flush()
			cur = &recommendationBlock{number: n.number, header: n.text}
		} else if cur != nil {
			cur.add(line)
		}
		prevBlank = strings.TrimSpace(line) == ""
	}
	flush()
	return out
}

// recommendationBlock accumulates the lines of one numbered recommendation.
type recommendationBlock struct {
	number      int
	header      string
	description []string
	actions     []string
	inActions   bool
	lastAction  int
}

// opensItem reports whether numbered line n starts the next recommendation
// rather than continuing the action list of the current one. Action lists
// restart their numbering at 1, so a number that does not continue the list
// opens a new item, as does the next item number after a blank line.
func (b *recommendationBlock) opensItem(n numberedLine, prevBlank bool) bool {
	if b == nil || !b.inActions {
		return true
	}
	if len(b.actions) == 0 {
		return false
	}
	if n.number != b.lastAction+1 {
		return true
	}
	return prevBlank && n.number == b.number+1
}

func (b *recommendationBlock) add(line string) {
	trimmed := strings.TrimSpace(line)
	if !b.inActions && strings.Contains(trimmed, actionItemsMarker) {
		b.inActions = true
		return
	}
	if b.inActions {
		n, ok := parseNumbered(line)
		if !ok {
			return
		}
		b.lastAction = n.number
		if n.text != "" {
			b.actions = append(b.actions, n.text)
		}
		return
	}
	if trimmed != "" {
		b.description = append(b.description, trimmed)
	}
}

func (b *recommendationBlock) item() (RecommendationItem, bool) {
	title, dimension := splitTitle(b.header)
	if title == "" {
		return RecommendationItem{}, false
	}
	actions := b.actions
	if actions == nil {
		actions = []string{}
	}
	return RecommendationItem{
		Title:       title,
		Dimension:   dimension,
		Description: strings.Join(b.description, " "),
		ActionItems: actions,
	}, true
}

// splitTitle separates "Title (Dimension)" into its parts. A header without a
// parenthesized part is all title.
func splitTitle(header string) (string, string) {
	header = strings.TrimSpace(header)
	for _, re := range []*regexp.Regexp{trailingDimensionRe, leadingDimensionRe} {
		if m := re.FindStringSubmatch(header); m != nil {
			return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		}
	}
	return header, ""
}
