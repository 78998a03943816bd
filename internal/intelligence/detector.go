package intelligence

import (
	"strings"

	"github.com/docformai/mcp-docform/internal/catalog"
)

// Detector guesses a domain category, an issuing organization and a target
// audience from text, using the injected ordered keyword tables.
//
// The policy is first-match-wins over the fixed table order, not best-score:
// several keyword sets can match the same text simultaneously, and the one
// earliest in the table always wins. Keeping that order stable is what makes
// the detector deterministic and reproducible.
type Detector struct {
	categories    []catalog.KeywordSet
	organizations []catalog.KeywordSet
	audiences     []catalog.KeywordSet
}

// NewDetector builds a detector over the catalog's detection tables.
func NewDetector(cat *catalog.Catalog) *Detector {
	return &Detector{
		categories:    cat.Categories,
		organizations: cat.Organizations,
		audiences:     cat.Audiences,
	}
}

// DetectCategory returns the first category whose keywords appear in the
// text. The boolean is false when no catalog entry matches; "no match" is a
// valid outcome, never substituted with a guessed default.
func (d *Detector) DetectCategory(text string) (string, bool) {
	return firstMatch(text, d.categories)
}

// DetectOrganization returns the first matching issuing organization.
func (d *Detector) DetectOrganization(text string) (string, bool) {
	return firstMatch(text, d.organizations)
}

// DetectAudience returns the first matching target audience.
func (d *Detector) DetectAudience(text string) (string, bool) {
	return firstMatch(text, d.audiences)
}

func firstMatch(text string, table []catalog.KeywordSet) (string, bool) {
	lower := strings.ToLower(text)
	for _, set := range table {
		if containsAny(lower, set.Keywords) {
			return set.Label, true
		}
	}
	return "", false
}
