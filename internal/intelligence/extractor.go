package intelligence

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Extractor applies the pattern library against raw text and produces a
// sparse field map.
type Extractor struct {
	rules []ExtractionRule
}

// NewExtractor returns an extractor over the default pattern library.
func NewExtractor() *Extractor {
	return &Extractor{rules: DefaultRules()}
}

// NewExtractorWithRules returns an extractor over a custom rule table.
// Field names must be unique; a duplicate never overwrites an earlier hit.
func NewExtractorWithRules(rules []ExtractionRule) *Extractor {
	return &Extractor{rules: rules}
}

// Extract runs every rule against the full text. A rule that matches stores
// its capture group, trimmed and whitespace-collapsed, under the rule's field
// name. A rule that does not match contributes nothing; that is not an error.
// The returned map never contains empty values: "not found" is always an
// absent key, so callers can distinguish it from "found but empty".
func (e *Extractor) Extract(text string) map[string]string {
	fields := make(map[string]string)
	if text == "" {
		return fields
	}

	for _, rule := range e.rules {
		if _, taken := fields[rule.Field]; taken {
			continue
		}
		m := rule.Pattern.FindStringSubmatch(text)
		if m == nil || rule.Group >= len(m) {
			continue
		}
		value := CollapseWhitespace(m[rule.Group])
		if value == "" {
			continue
		}
		fields[rule.Field] = value
	}

	return fields
}

// CollapseWhitespace trims a captured value and squeezes internal whitespace
// runs to a single space. OCR output spaces erratically around line wraps.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
