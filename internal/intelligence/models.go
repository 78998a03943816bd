// Package intelligence implements the heuristic pipeline that turns raw OCR
// text of French administrative documents into a classified, sparse set of
// named field values. Everything here is pure computation over an in-memory
// string: no I/O, no shared state, deterministic for identical input.
package intelligence

// DocumentClass is the document kind the classifier assigns.
type DocumentClass string

const (
	// DocumentClassLegal marks legal/regulatory acts: decrees, orders, laws.
	DocumentClassLegal DocumentClass = "juridique"
	// DocumentClassProcedure marks administrative procedure descriptions.
	// It is also the documented default when no keyword matches.
	DocumentClassProcedure DocumentClass = "procedure"
)

// DisplayName returns a human-readable name for the document class.
func (dc DocumentClass) DisplayName() string {
	switch dc {
	case DocumentClassLegal:
		return "Texte juridique"
	case DocumentClassProcedure:
		return "Procédure administrative"
	default:
		return string(dc)
	}
}

// IsValid reports whether the class is one of the closed set.
func (dc DocumentClass) IsValid() bool {
	return dc == DocumentClassLegal || dc == DocumentClassProcedure
}

// ExtractionResult is the combined output of one pipeline run over a text.
// Fields is sparse: a missing key means the field was not found, and values
// are never empty strings. Category, Organization and Audience carry catalog
// labels, or "" when no catalog entry matched (labels are never empty, so the
// empty string is unambiguous).
type ExtractionResult struct {
	Class        DocumentClass     `json:"document_class"`
	Fields       map[string]string `json:"fields"`
	Category     string            `json:"category,omitempty"`
	Organization string            `json:"organization,omitempty"`
	Audience     string            `json:"audience,omitempty"`
}
