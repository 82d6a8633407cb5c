package reports

import (
	"regexp"
	"strings"
)

var priorityTagRe = regexp.MustCompile(`^(.*?)\s*\[([^\]]+)\]`)

type toolList int

const (
	listNone toolList = iota
	listWhy
	listFeatures
	listPricing
)

// Tool block labels, matched case-insensitively after any leading icon.
const (
	labelMatchScore   = "match score:"
	labelCategory     = "category:"
	labelWebsite      = "website:"
	labelWhyRecommend = "why we recommend:"
	labelKeyFeatures  = "key features:"
	labelPricing      = "pricing:"
)

// ParseTools splits a tools section into numbered entries and parses each one.
// Entries without a name are dropped; the rest keep their order.
func ParseTools(section string) []ToolEntry {
	lines := strings.Split(normalizeText(section), "\n")
	base := itemIndent(lines)
	out := []ToolEntry{}

	var block []string
	flush := func() {
		if block == nil {
			return
		}
		if tool, ok := parseToolLines(block); ok {
			out = append(out, tool)
		}
	}
	for _, line := range lines {
		if n, ok := parseNumbered(line); ok && n.indent == base {
			flush()
			block = []string{n.text}
			continue
		}
		if block != nil {
			block = append(block, line)
		}
	}
	flush()
	return out
}

// ParseTool parses a single tool block whose numeric marker has already been
// removed. The second result is false when the block yields no name.
func ParseTool(block string) (ToolEntry, bool) {
	return parseToolLines(strings.Split(normalizeText(block), "\n"))
}

func parseToolLines(lines []string) (ToolEntry, bool) {
	tool := newToolEntry()
	if len(lines) == 0 {
		return tool, false
	}

	first := strings.TrimSpace(lines[0])
	if m := priorityTagRe.FindStringSubmatch(first); m != nil {
		tool.Name = strings.TrimSpace(m[1])
		tool.Priority = strings.TrimSpace(m[2])
	} else {
		tool.Name = first
	}
	if tool.Name == "" {
		return tool, false
	}

	current := listNone
	for _, raw := range lines[1:] {
		line := strings.TrimSpace(raw)
		if line == "" || isSeparatorLine(line) {
			continue
		}
		if item, ok := stripBullet(line); ok {
			if item != "" {
				tool.appendTo(current, item)
			}
			continue
		}

		label := stripDecoration(line)
		if rest, ok := cutLabel(label, labelMatchScore); ok {
			if n, ok := firstInt(rest); ok {
				tool.MatchScore = n
			}
			current = listNone
		} else if rest, ok := cutLabel(label, labelCategory); ok {
			tool.Category = rest
			current = listNone
		} else if rest, ok := cutLabel(label, labelWebsite); ok {
			tool.Website = rest
			current = listNone
		} else if rest, ok := cutLabel(label, labelWhyRecommend); ok {
			current = listWhy
			tool.appendTo(current, rest)
		} else if rest, ok := cutLabel(label, labelKeyFeatures); ok {
			current = listFeatures
			tool.appendTo(current, rest)
		} else if rest, ok := cutLabel(label, labelPricing); ok {
			current = listPricing
			tool.appendTo(current, rest)
		} else if current == listPricing && strings.Contains(line, ":") {
			// tier lines such as "Pro: $20/user/month" come without a bullet
			tool.Pricing = append(tool.Pricing, line)
		}
	}
	return tool, true
}

// cutLabel reports whether s starts with label, ignoring case, and returns the
// trimmed remainder.
func cutLabel(s, label string) (string, bool) {
	if len(s) < len(label) || !strings.EqualFold(s[:len(label)], label) {
		return "", false
	}
	return strings.TrimSpace(s[len(label):]), true
}

func (t *ToolEntry) appendTo(list toolList, item string) {
	if item == "" {
		return
	}
	switch list {
	case listWhy:
		t.WhyRecommend = append(t.WhyRecommend, item)
	case listFeatures:
		t.KeyFeatures = append(t.KeyFeatures, item)
	case listPricing:
		t.Pricing = append(t.Pricing, item)
	}
}
