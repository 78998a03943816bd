// Package docform is the boundary surface of the extraction core: one
// Service orchestrating classification, field extraction, gap filling,
// category detection and schema building behind request/result pairs.
package docform

import (
	"fmt"

	"github.com/docformai/mcp-docform/internal/catalog"
	"github.com/docformai/mcp-docform/internal/forms"
	"github.com/docformai/mcp-docform/internal/intelligence"
	"github.com/docformai/mcp-docform/internal/pdf"
)

// Service wires the pipeline components over one injected catalog. All text
// operations are pure and safe to call concurrently; only the file-based
// entry points touch the filesystem.
type Service struct {
	cat        *catalog.Catalog
	classifier *intelligence.Classifier
	extractor  *intelligence.Extractor
	resolver   *intelligence.FallbackResolver
	detector   *intelligence.Detector
	builder    *forms.Builder
	reader     *pdf.Reader
	validator  *pdf.Validator
}

// NewService creates a service over the given catalog.
func NewService(cat *catalog.Catalog, maxFileSize int64) *Service {
	return &Service{
		cat:        cat,
		classifier: intelligence.NewClassifier(cat),
		extractor:  intelligence.NewExtractor(),
		resolver:   intelligence.NewFallbackResolver(cat),
		detector:   intelligence.NewDetector(cat),
		builder:    forms.NewBuilder(cat),
		reader:     pdf.NewReader(maxFileSize),
		validator:  pdf.NewValidator(maxFileSize),
	}
}

// Classify returns the document class for raw text.
func (s *Service) Classify(text string) intelligence.DocumentClass {
	return s.classifier.Classify(text)
}

// AnalyzeTextRequest carries raw OCR text into the pipeline.
type AnalyzeTextRequest struct {
	Text string `json:"text"`
}

// AnalyzeTextResult is the full pipeline output for one text. FormData is
// sparse (absent key = not found); Schema orders and types the same fields
// for the rendering layer.
type AnalyzeTextResult struct {
	DocumentClass     string            `json:"document_class"`
	DocumentClassName string            `json:"document_class_name"`
	FormData          map[string]string `json:"form_data"`
	Schema            *forms.FormSchema `json:"schema"`
	Category          string            `json:"category,omitempty"`
	Organization      string            `json:"organization,omitempty"`
	Audience          string            `json:"audience,omitempty"`
}

// AnalyzeText runs the whole pipeline: classify, extract, fill gaps, detect
// category/organization/audience, build the schema. It is total: any input,
// including the empty string, yields a valid (possibly empty) result. A
// low-confidence or empty extraction is a reportable outcome, not an error.
func (s *Service) AnalyzeText(req AnalyzeTextRequest) *AnalyzeTextResult {
	class := s.classifier.Classify(req.Text)

	fields := s.extractor.Extract(req.Text)
	fields = s.resolver.FillGaps(req.Text, fields, class)

	result := intelligence.ExtractionResult{
		Class:  class,
		Fields: fields,
	}
	if category, ok := s.detector.DetectCategory(req.Text); ok {
		result.Category = category
	}
	if org, ok := s.detector.DetectOrganization(req.Text); ok {
		result.Organization = org
	}
	if audience, ok := s.detector.DetectAudience(req.Text); ok {
		result.Audience = audience
	}

	schema := s.builder.FromExtraction(result)

	return &AnalyzeTextResult{
		DocumentClass:     string(class),
		DocumentClassName: class.DisplayName(),
		FormData:          schema.Values,
		Schema:            schema,
		Category:          result.Category,
		Organization:      result.Organization,
		Audience:          result.Audience,
	}
}

// ExtractFieldsResult is the raw extraction output: the class and the sparse
// field map after the fallback pass, before any schema defaults are injected.
type ExtractFieldsResult struct {
	DocumentClass string            `json:"document_class"`
	Fields        map[string]string `json:"fields"`
}

// ExtractFields classifies the text and runs extraction plus gap filling,
// without building a schema. Absent keys mean "not found".
func (s *Service) ExtractFields(text string) *ExtractFieldsResult {
	class := s.classifier.Classify(text)
	fields := s.extractor.Extract(text)
	fields = s.resolver.FillGaps(text, fields, class)
	return &ExtractFieldsResult{
		DocumentClass: string(class),
		Fields:        fields,
	}
}

// AnalyzeFileRequest names a PDF file whose text layer feeds the pipeline.
type AnalyzeFileRequest struct {
	Path string `json:"path"`
}

// AnalyzeFileResult wraps the text analysis with file-level information.
type AnalyzeFileResult struct {
	Path     string             `json:"path"`
	Pages    int                `json:"pages"`
	Size     int64              `json:"size"`
	Analysis *AnalyzeTextResult `json:"analysis"`
}

// AnalyzeFile validates the file, harvests its text layer and analyzes it.
func (s *Service) AnalyzeFile(req AnalyzeFileRequest) (*AnalyzeFileResult, error) {
	validation, err := s.validator.ValidateFile(req.Path)
	if err != nil {
		return nil, err
	}
	if !validation.Valid {
		return nil, fmt.Errorf("validation failed for %s: %s", req.Path, validation.Message)
	}

	read, err := s.reader.ReadFile(req.Path)
	if err != nil {
		return nil, err
	}

	return &AnalyzeFileResult{
		Path:     read.Path,
		Pages:    read.Pages,
		Size:     read.Size,
		Analysis: s.AnalyzeText(AnalyzeTextRequest{Text: read.Text}),
	}, nil
}

// SchemaFromTemplateRequest names a template of the closed catalog.
type SchemaFromTemplateRequest struct {
	DocumentType string `json:"document_type"`
	TemplateKey  string `json:"template_key"`
}

// SchemaFromTemplate builds a schema from a named template. An unknown
// document type or template key is the one genuine input-contract violation
// of this core and fails with an explicit error.
func (s *Service) SchemaFromTemplate(req SchemaFromTemplateRequest) (*forms.FormSchema, error) {
	return s.builder.FromTemplate(req.DocumentType, req.TemplateKey)
}

// FieldsFromLinesRequest carries line-oriented text for the generic path.
type FieldsFromLinesRequest struct {
	Text string `json:"text"`
}

// FieldsFromLines converts line-oriented text into generic field
// descriptors, preserving line order, without any classification step.
func (s *Service) FieldsFromLines(req FieldsFromLinesRequest) []forms.FieldDescriptor {
	return forms.LinesToFields(req.Text)
}

// ServerInfoResult describes the catalogs and templates this server was
// configured with.
type ServerInfoResult struct {
	ServerName      string              `json:"server_name"`
	Version         string              `json:"version"`
	DocumentClasses []string            `json:"document_classes"`
	Categories      []string            `json:"categories"`
	Organizations   []string            `json:"organizations"`
	Audiences       []string            `json:"audiences"`
	Templates       map[string][]string `json:"templates"`
}

// ServerInfo reports the injected catalog contents in their fixed order.
func (s *Service) ServerInfo(serverName, version string) *ServerInfoResult {
	categories := make([]string, 0, len(s.cat.Categories))
	for _, c := range s.cat.Categories {
		categories = append(categories, c.Label)
	}
	audiences := make([]string, 0, len(s.cat.Audiences))
	for _, a := range s.cat.Audiences {
		audiences = append(audiences, a.Label)
	}
	templates := make(map[string][]string, len(s.cat.Templates))
	for docType, tpls := range s.cat.Templates {
		keys := make([]string, 0, len(tpls))
		for _, tpl := range tpls {
			keys = append(keys, tpl.Key)
		}
		templates[docType] = keys
	}

	return &ServerInfoResult{
		ServerName: serverName,
		Version:    version,
		DocumentClasses: []string{
			string(intelligence.DocumentClassLegal),
			string(intelligence.DocumentClassProcedure),
		},
		Categories:    categories,
		Organizations: s.cat.OrganizationNames(),
		Audiences:     audiences,
		Templates:     templates,
	}
}
