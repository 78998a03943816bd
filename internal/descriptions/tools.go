package descriptions

// Comprehensive tool descriptions with practical examples and use cases

const (
	DocumentClassifyDescription = `Classify OCR text of a French administrative document as a legal act or an administrative procedure.

**When to use:** First step after OCR, before extracting fields, to know which field set and template family applies.

**Why it's useful:** Legal acts (décrets, arrêtés, lois) and procedure descriptions carry different fields; classifying first keeps downstream extraction focused.

**Examples:**
• Route a scanned decree: "Classify the text of decret-24-101.pdf before building its entry form"
• Triage a batch: "Classify each OCR output and send legal texts to the legal review queue"

**Behavior:** Presence-based keyword classification, legal keywords first. Text matching neither keyword set classifies as procedure; that is the documented default, not a failure.`

	DocumentExtractDescription = `Extract named field values from OCR text using the pattern rule library, with line-based fallbacks for fields the rules miss.

**When to use:** After classification, to pull reference numbers, dates, ministries, required documents, delays and the other catalog fields out of free text.

**Why it's useful:** Turns unstructured administrative prose into a sparse field map ready for form prefill, tolerating the irregular spacing and connecting words OCR produces.

**Examples:**
• "Extract numero, date_promulgation and ministere from this decree text"
• "Pull documents_requis and delai_traitement from a procedure description"

**Behavior:** A field the rules and fallbacks cannot find stays absent: never an empty placeholder and never a guessed title. An empty extraction is a valid outcome.`

	FormSchemaFromTextDescription = `Run the full pipeline on OCR text and build a typed, ordered form schema with prefilled values.

**When to use:** The one-call path from raw OCR output to a renderable data-entry form.

**Why it's useful:** Combines classification, extraction, fallback resolution, category/organization/audience detection and type inference; the result is a generic schema any form renderer can display.

**Examples:**
• "Build the entry form for this scanned arrêté"
• "Generate a prefilled procedure form from the text of guide-permis.pdf"

**Behavior:** Adds the detected category, organization and target audience as extra fields, stamps the extraction time and an OCR-origin marker, and injects the per-class defaults (legal domain and status for legal texts, procedure type and status for procedures).`

	FormSchemaFromTemplateDescription = `Build an empty typed form schema from a named template of the closed template catalog.

**When to use:** Manual data entry without any source document, or rendering a blank form for a known document type.

**Why it's useful:** Template order is the schema order and every field gets its inferred type, required flag, description and options, the same metadata the OCR path produces.

**Examples:**
• "Give me the 'decret' form for document type 'juridique'"
• "Render the standard procedure form"

**Behavior:** An unknown document type or template key is a hard error; templates are a closed catalog.`

	FormFieldsFromLinesDescription = `Convert line-oriented text directly into a list of generic form fields, one per line, without classification.

**When to use:** Ad-hoc field lists: a user pastes the lines they want as form fields, or a simple document needs a form without any document-kind semantics.

**Why it's useful:** The simplest text-to-form path: line order becomes field order, types come from local keyword checks on each line.

**Examples:**
• "Make a form from: Nom complet / Date de naissance / Téléphone"

**Behavior:** Every generated field is optional; the source line is kept verbatim as label and placeholder.`

	ServerInfoDescription = `Report the catalogs this server was configured with: document classes, categories, organizations, audiences and the template catalog.

**When to use:** Discovering which categories, organizations and templates are available before calling the other tools.

**Why it's useful:** The catalogs are injected configuration; clients should enumerate them rather than hard-code the lists.`
)

// ToolDescriptions maps tool names to their comprehensive descriptions
var ToolDescriptions = map[string]string{
	"document_classify":         DocumentClassifyDescription,
	"document_extract":          DocumentExtractDescription,
	"form_schema_from_text":     FormSchemaFromTextDescription,
	"form_schema_from_template": FormSchemaFromTemplateDescription,
	"form_fields_from_lines":    FormFieldsFromLinesDescription,
	"docform_server_info":       ServerInfoDescription,
}

// GetToolDescription returns the comprehensive description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns a list of all available tool names
func GetAllToolNames() []string {
	var names []string
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	return names
}
