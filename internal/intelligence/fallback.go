package intelligence

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/docformai/mcp-docform/internal/catalog"
)

var mainArticlePattern = regexp.MustCompile(
	`(?i)article\s+(?:premier|1er|1)\s*[:.\-]?\s+([^\n]{5,300})`)

// FallbackResolver fills gaps the rule-based pass left, by scanning the text
// line by line with per-class heuristics.
type FallbackResolver struct {
	legalKeywords []string
}

// NewFallbackResolver builds a resolver over the injected keyword catalog.
func NewFallbackResolver(cat *catalog.Catalog) *FallbackResolver {
	return &FallbackResolver{legalKeywords: cat.LegalKeywords}
}

// FillGaps returns an enriched copy of partial; the input map is never
// mutated. Only fields still missing are considered. When a heuristic finds
// nothing, the field stays absent: in particular no title is ever synthesized
// from nothing, and the caller must treat such a schema as incomplete.
func (r *FallbackResolver) FillGaps(text string, partial map[string]string, class DocumentClass) map[string]string {
	fields := make(map[string]string, len(partial)+3)
	for k, v := range partial {
		fields[k] = v
	}

	lines := substantialLines(text)

	titleKey := "titre"
	if class == DocumentClassProcedure {
		titleKey = "nom_procedure"
	}
	if _, ok := fields[titleKey]; !ok {
		if title := r.guessTitle(lines, class); title != "" {
			fields[titleKey] = title
		}
	}

	if class == DocumentClassProcedure {
		if _, ok := fields["etapes"]; !ok {
			if steps := collectSteps(lines); steps != "" {
				fields["etapes"] = steps
			}
		}
	}

	if class == DocumentClassLegal {
		if _, ok := fields["article_principal"]; !ok {
			if m := mainArticlePattern.FindStringSubmatch(text); m != nil {
				fields["article_principal"] = CollapseWhitespace(m[1])
			}
		}
	}

	return fields
}

// guessTitle picks the first plausible title line for the class.
//
// Legal texts open with header boilerplate before the act's own heading, so
// the heuristic requires a legal keyword in the line. Procedure texts have the
// opposite problem: their header lines name the republic and the ministry, so
// those are skipped.
func (r *FallbackResolver) guessTitle(lines []string, class DocumentClass) string {
	for _, line := range lines {
		length := utf8.RuneCountInString(line)
		lower := strings.ToLower(line)

		switch class {
		case DocumentClassLegal:
			if length >= 15 && length <= 150 && containsAny(lower, r.legalKeywords) {
				return line
			}
		case DocumentClassProcedure:
			if length >= 10 && length <= 100 &&
				!strings.Contains(lower, "république") &&
				!strings.Contains(lower, "ministère") {
				return line
			}
		}
	}
	return ""
}

// collectSteps gathers every line that looks like a procedure step and joins
// them with " | ". Returns "" when no line qualifies.
func collectSteps(lines []string) string {
	var steps []string
	for _, line := range lines {
		if isStepLine(line) {
			steps = append(steps, line)
		}
	}
	return strings.Join(steps, " | ")
}

func isStepLine(line string) bool {
	first, _ := utf8.DecodeRuneInString(line)
	if first >= '0' && first <= '9' {
		return true
	}
	switch first {
	case '-', '*', '•':
		return true
	}
	lower := strings.ToLower(line)
	return strings.Contains(lower, "étape") || strings.Contains(lower, "phase")
}

// substantialLines splits text into trimmed non-empty lines longer than five
// runes. Shorter fragments are OCR noise.
func substantialLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) > 5 {
			lines = append(lines, line)
		}
	}
	return lines
}
