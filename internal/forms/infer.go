package forms

import (
	"strings"
	"unicode"

	"github.com/docformai/mcp-docform/internal/catalog"
)

// Inferrer derives a field's UI metadata from its name alone: data type,
// required flag, description and, for organization fields, the option list.
// Inference is substring-based on the name, never on the value.
type Inferrer struct {
	cat *catalog.Catalog
}

// NewInferrer builds an inferrer over the injected catalog.
func NewInferrer(cat *catalog.Catalog) *Inferrer {
	return &Inferrer{cat: cat}
}

// InferType maps a field name to its UI data type. The checks run in a fixed
// order; the first matching rule wins and everything else is plain text.
func (i *Inferrer) InferType(name string) FieldType {
	switch {
	case strings.Contains(name, "date"):
		return FieldTypeDate
	case strings.Contains(name, "numero"),
		strings.Contains(name, "cout"),
		strings.Contains(name, "capital"):
		return FieldTypeNumber
	case strings.Contains(name, "contenu"),
		strings.Contains(name, "description"),
		strings.Contains(name, "observations"):
		return FieldTypeTextarea
	case strings.Contains(name, "email"):
		return FieldTypeEmail
	case strings.Contains(name, "tel"), strings.Contains(name, "phone"):
		return FieldTypeTel
	case strings.Contains(name, "url"), strings.Contains(name, "site"):
		return FieldTypeURL
	case name == "organisation",
		strings.Contains(name, "ministere"),
		strings.Contains(name, "ministeres"):
		return FieldTypeSelect
	default:
		return FieldTypeText
	}
}

// IsRequired reports whether a field is mandatory. Only a short fixed list of
// name fragments makes a field required; everything else is optional.
func (i *Inferrer) IsRequired(name string) bool {
	for _, part := range i.cat.RequiredNameParts {
		if strings.Contains(name, part) {
			return true
		}
	}
	return false
}

// Describe returns the human-readable description of a field. Unmapped names
// get the generic fallback with underscores spelled out; every field the
// pattern library does not know depends on that exact behavior.
func (i *Inferrer) Describe(name string) string {
	if desc, ok := i.cat.FieldDescriptions[name]; ok {
		return desc
	}
	return "Information relative à " + strings.ReplaceAll(name, "_", " ")
}

// Options returns the option list for enumerable fields: organization-typed
// selects enumerate the organization catalog in its fixed order. Other fields
// have no options.
func (i *Inferrer) Options(name string) []string {
	if i.InferType(name) == FieldTypeSelect {
		return i.cat.OrganizationNames()
	}
	return nil
}

// Label turns a field name into its display label: underscores become spaces
// and the first letter is capitalized.
func Label(name string) string {
	label := strings.ReplaceAll(name, "_", " ")
	runes := []rune(label)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
