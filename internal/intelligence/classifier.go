package intelligence

import (
	"strings"

	"github.com/docformai/mcp-docform/internal/catalog"
)

// Classifier assigns a DocumentClass to raw text by keyword presence.
//
// The policy is deliberately not a scored model: legal keywords are checked
// first and any hit wins, so a text mentioning both a decree and a procedure
// classifies as legal. When neither list matches, the class defaults to
// procedure. Exact tie-break behavior is part of the external contract.
type Classifier struct {
	legalKeywords     []string
	procedureKeywords []string
}

// NewClassifier builds a classifier over the injected keyword catalog.
func NewClassifier(cat *catalog.Catalog) *Classifier {
	return &Classifier{
		legalKeywords:     cat.LegalKeywords,
		procedureKeywords: cat.ProcedureKeywords,
	}
}

// Classify returns the document class for the given text. It is pure and
// total: any input, including the empty string, yields a valid class.
func (c *Classifier) Classify(text string) DocumentClass {
	lower := strings.ToLower(text)

	if containsAny(lower, c.legalKeywords) {
		return DocumentClassLegal
	}
	if containsAny(lower, c.procedureKeywords) {
		return DocumentClassProcedure
	}

	// Documented default: unrecognized text is treated as a procedure.
	return DocumentClassProcedure
}

// containsAny reports whether text contains at least one of the keywords.
// Keywords are stored lower-case in the catalog; text must be lowered once
// by the caller.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
