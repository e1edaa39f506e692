// ABOUTME: Semantic mapper infers HTML tags and accessibility attributes from design nodes
// ABOUTME: Container tags come from node names, text tags from typographic style

package semantic

import (
	"regexp"
	"strings"
	"unicode"

	"codegen-app-api/core/domain"
)

// Heading thresholds in px. MapTextToTag walks them in order, so larger
// fonts always resolve to lower heading numbers.
const (
	H1MinFontSize   = 48
	H2MinFontSize   = 36
	H3MinFontSize   = 28
	H4MinFontSize   = 24
	H5MinFontSize   = 20
	BodyMinFontSize = 16

	// BoldWeight upgrades body-size text to emphasis semantics.
	BoldWeight = 700
)

// tagRule pairs a name pattern with the tag it resolves to. Rules are kept
// in an explicit ordered slice because patterns overlap: "Header Button"
// must resolve to button, so button patterns are checked first.
type tagRule struct {
	pattern *regexp.Regexp
	tag     string
}

// tagRules is the ordered, first-match-wins rule table for container names.
var tagRules = []tagRule{
	{regexp.MustCompile(`(?i)\b(button|btn)\b`), "button"},
	{regexp.MustCompile(`(?i)\bform\b`), "form"},
	{regexp.MustCompile(`(?i)\b(nav|navigation)\b`), "nav"},
	{regexp.MustCompile(`(?i)\bheader\b`), "header"},
	{regexp.MustCompile(`(?i)\bfooter\b`), "footer"},
	{regexp.MustCompile(`(?i)\bmain\b`), "main"},
	{regexp.MustCompile(`(?i)\b(aside|sidebar)\b`), "aside"},
	{regexp.MustCompile(`(?i)\b(article|card)\b`), "article"},
	{regexp.MustCompile(`(?i)\bsection\b`), "section"},
	{regexp.MustCompile(`(?i)\b(list|items)\b`), "ul"},
}

// defaultLabels supplies an aria-label when the node name is unusable.
var defaultLabels = map[string]string{
	"nav":    "Main navigation",
	"header": "Page header",
	"footer": "Page footer",
	"main":   "Main content",
	"aside":  "Sidebar",
	"button": "Button",
	"form":   "Form",
}

// ariaRoles maps tags to their landmark or widget role.
var ariaRoles = map[string]string{
	"nav":    "navigation",
	"header": "banner",
	"footer": "contentinfo",
	"main":   "main",
	"aside":  "complementary",
	"button": "button",
	"form":   "form",
}

// Mapper infers semantic HTML from design nodes. Cheap value type, no state.
type Mapper struct{}

// NewMapper creates a semantic mapper.
func NewMapper() Mapper {
	return Mapper{}
}

// MapToTag resolves a container node name to an HTML tag. Total function:
// names matching no rule fall back to div.
func (Mapper) MapToTag(name string) string {
	for _, rule := range tagRules {
		if rule.pattern.MatchString(name) {
			return rule.tag
		}
	}
	return "div"
}

// MapTextToTag resolves a text node to a heading, paragraph, or emphasis tag
// from its typographic style alone.
func (Mapper) MapTextToTag(node *domain.DesignNode) string {
	if node.Style == nil {
		return "p"
	}

	size := node.Style.FontSize
	switch {
	case size >= H1MinFontSize:
		return "h1"
	case size >= H2MinFontSize:
		return "h2"
	case size >= H3MinFontSize:
		return "h3"
	case size >= H4MinFontSize:
		return "h4"
	case size >= H5MinFontSize:
		return "h5"
	case size >= BodyMinFontSize:
		return "h6"
	}

	if node.Style.FontWeight >= BoldWeight {
		return "strong"
	}
	return "p"
}

// A11yAttributes returns the ARIA attributes for a tag. Only landmark and
// widget tags get attributes; everything else returns an empty map.
// The label is the node's own name unless it is empty or the literal
// word "frame".
func (Mapper) A11yAttributes(tag, name string) map[string]string {
	role, ok := ariaRoles[tag]
	if !ok {
		return map[string]string{}
	}

	label := strings.TrimSpace(name)
	if label == "" || strings.EqualFold(label, "frame") {
		label = defaultLabels[tag]
	}

	return map[string]string{
		"role":       role,
		"aria-label": label,
	}
}

// IsSemanticName reports whether a node name maps to a non-generic tag.
func (m Mapper) IsSemanticName(name string) bool {
	return m.MapToTag(name) != "div"
}

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// ComponentName converts a node name into a PascalCase identifier for
// component-based output frameworks. Names that would start with a digit
// get a fixed prefix so the identifier stays valid.
func (Mapper) ComponentName(name string) string {
	cleaned := nonWordPattern.ReplaceAllString(name, " ")

	var b strings.Builder
	for _, word := range strings.Fields(cleaned) {
		runes := []rune(word)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(strings.ToLower(string(runes[1:])))
	}

	result := b.String()
	if result == "" {
		return "Component"
	}
	if unicode.IsDigit(rune(result[0])) {
		result = "Component" + result
	}
	return result
}
