package forms

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/docformai/mcp-docform/internal/catalog"
	"github.com/docformai/mcp-docform/internal/intelligence"
)

// Template-path contract violations. The template catalog is a closed, known
// set, so an unknown reference is a genuine input error, unlike everything
// else in this pipeline.
var (
	ErrUnknownDocumentType = errors.New("unknown document type")
	ErrUnknownTemplate     = errors.New("unknown template")
)

// Extra fields the OCR path attaches alongside the extracted ones, in their
// schema order: detections first, then the per-class defaults, then the
// bookkeeping pair.
var extraFieldOrder = []string{
	"categorie", "organisation", "public_cible",
	"domaine_juridique", "type_procedure", "statut",
	"date_extraction", "source_ocr",
}

// Builder assembles form schemas from templates or extraction results.
type Builder struct {
	cat *catalog.Catalog
	inf *Inferrer

	// now is the schema timestamp source; replaceable in tests.
	now func() time.Time
}

// NewBuilder creates a builder over the injected catalog.
func NewBuilder(cat *catalog.Catalog) *Builder {
	return &Builder{
		cat: cat,
		inf: NewInferrer(cat),
		now: time.Now,
	}
}

// FromTemplate builds a schema from a named template. This path never
// inspects any OCR text: the template's declared field order is the schema
// order, and every descriptor is derived from the field name alone.
func (b *Builder) FromTemplate(docType, templateKey string) (*FormSchema, error) {
	if _, ok := b.cat.Templates[docType]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, docType)
	}
	tpl, ok := b.cat.FindTemplate(docType, templateKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q for document type %q", ErrUnknownTemplate, templateKey, docType)
	}

	fields := make([]FieldDescriptor, 0, len(tpl.Fields))
	for _, name := range tpl.Fields {
		fields = append(fields, b.buildField(name))
	}

	return &FormSchema{
		DocumentClass: docType,
		Fields:        fields,
		GeneratedAt:   b.now(),
	}, nil
}

// FromExtraction builds a schema from a pipeline result. Descriptors are
// created only for fields that were actually extracted (the schema is as
// sparse as the extraction), enriched with the detected category,
// organization and audience, two bookkeeping fields (extraction timestamp and
// an OCR-origin marker), and the per-class defaults.
//
// The defaults here are genuine injection rules (a Legal document without a
// legal domain gets "Droit administratif") and are distinct from the title
// policy: a missing title stays missing, always.
func (b *Builder) FromExtraction(result intelligence.ExtractionResult) *FormSchema {
	now := b.now()

	values := make(map[string]string, len(result.Fields)+8)
	for k, v := range result.Fields {
		values[k] = v
	}

	if result.Category != "" {
		values["categorie"] = result.Category
	}
	if result.Organization != "" {
		values["organisation"] = result.Organization
	}
	if result.Audience != "" {
		values["public_cible"] = result.Audience
	}

	switch result.Class {
	case intelligence.DocumentClassLegal:
		if _, ok := values["domaine_juridique"]; !ok {
			values["domaine_juridique"] = "Droit administratif"
		}
		if _, ok := values["statut"]; !ok {
			values["statut"] = "Publié"
		}
	case intelligence.DocumentClassProcedure:
		if _, ok := values["type_procedure"]; !ok {
			values["type_procedure"] = "Administrative"
		}
		if _, ok := values["statut"]; !ok {
			values["statut"] = "Active"
		}
	}

	values["date_extraction"] = now.Format("2006-01-02 15:04")
	values["source_ocr"] = "true"

	fields := make([]FieldDescriptor, 0, len(values))
	emitted := make(map[string]bool, len(values))
	for _, name := range schemaFieldOrder() {
		if _, ok := values[name]; ok && !emitted[name] {
			fields = append(fields, b.buildField(name))
			emitted[name] = true
		}
	}
	// Custom rule tables can introduce names outside the canonical order;
	// append those sorted so the schema stays deterministic.
	var rest []string
	for name := range values {
		if !emitted[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		fields = append(fields, b.buildField(name))
	}

	return &FormSchema{
		DocumentClass: string(result.Class),
		Fields:        fields,
		Values:        values,
		GeneratedAt:   now,
	}
}

// buildField derives one descriptor from a field name. Shared by both
// construction paths.
func (b *Builder) buildField(name string) FieldDescriptor {
	label := Label(name)
	return FieldDescriptor{
		ID:          name,
		Name:        name,
		Label:       label,
		Type:        b.inf.InferType(name),
		Required:    b.inf.IsRequired(name),
		Placeholder: "Saisir " + label,
		Description: b.inf.Describe(name),
		Options:     b.inf.Options(name),
	}
}

// schemaFieldOrder is the canonical field order of OCR-built schemas: the
// pattern library order, the fallback-only field, then the attached extras.
func schemaFieldOrder() []string {
	rules := intelligence.DefaultRules()
	order := make([]string, 0, len(rules)+1+len(extraFieldOrder))
	for _, rule := range rules {
		order = append(order, rule.Field)
	}
	order = append(order, "article_principal")
	order = append(order, extraFieldOrder...)
	return order
}
