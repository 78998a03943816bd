package mcp

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/docformai/mcp-docform/internal/config"
	"github.com/docformai/mcp-docform/internal/descriptions"
	"github.com/docformai/mcp-docform/internal/docform"
	"github.com/docformai/mcp-docform/internal/forms"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	service   *docform.Service
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, service *docform.Service) (*Server, error) {
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:    cfg,
		service:   service,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	classifyTool := mcp.NewTool(
		"document_classify",
		mcp.WithDescription(descriptions.GetToolDescription("document_classify")),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("OCR text of the document"),
		),
	)
	s.mcpServer.AddTool(classifyTool, s.handleDocumentClassify)

	extractTool := mcp.NewTool(
		"document_extract",
		mcp.WithDescription(descriptions.GetToolDescription("document_extract")),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("OCR text of the document"),
		),
	)
	s.mcpServer.AddTool(extractTool, s.handleDocumentExtract)

	schemaFromTextTool := mcp.NewTool(
		"form_schema_from_text",
		mcp.WithDescription(descriptions.GetToolDescription("form_schema_from_text")),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("OCR text of the document"),
		),
	)
	s.mcpServer.AddTool(schemaFromTextTool, s.handleFormSchemaFromText)

	schemaFromTemplateTool := mcp.NewTool(
		"form_schema_from_template",
		mcp.WithDescription(descriptions.GetToolDescription("form_schema_from_template")),
		mcp.WithString("document_type",
			mcp.Required(),
			mcp.Description("Document type key, e.g. 'juridique' or 'procedure'"),
		),
		mcp.WithString("template_key",
			mcp.Required(),
			mcp.Description("Template key within the document type, e.g. 'decret' or 'standard'"),
		),
	)
	s.mcpServer.AddTool(schemaFromTemplateTool, s.handleFormSchemaFromTemplate)

	fieldsFromLinesTool := mcp.NewTool(
		"form_fields_from_lines",
		mcp.WithDescription(descriptions.GetToolDescription("form_fields_from_lines")),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Line-oriented text; each non-empty line becomes a field"),
		),
	)
	s.mcpServer.AddTool(fieldsFromLinesTool, s.handleFormFieldsFromLines)

	serverInfoTool := mcp.NewTool(
		"docform_server_info",
		mcp.WithDescription(descriptions.GetToolDescription("docform_server_info")),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions

func (s *Server) handleDocumentClassify(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	class := s.service.Classify(text)
	responseText := fmt.Sprintf("Document class: %s (%s)\n", class, class.DisplayName())

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleDocumentExtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.service.ExtractFields(text)
	return mcp.NewToolResultText(s.formatExtractResult(result)), nil
}

func (s *Server) handleFormSchemaFromText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.service.AnalyzeText(docform.AnalyzeTextRequest{Text: text})
	return mcp.NewToolResultText(s.formatAnalyzeResult(result)), nil
}

func (s *Server) handleFormSchemaFromTemplate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docType, err := request.RequireString("document_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	templateKey, err := request.RequireString("template_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	schema, err := s.service.SchemaFromTemplate(docform.SchemaFromTemplateRequest{
		DocumentType: docType,
		TemplateKey:  templateKey,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Form schema for template %s/%s\n\n", docType, templateKey)
	responseText += s.formatSchemaFields(schema.Fields)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleFormFieldsFromLines(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fields := s.service.FieldsFromLines(docform.FieldsFromLinesRequest{Text: text})

	responseText := fmt.Sprintf("Generated %d field(s) from input lines\n\n", len(fields))
	responseText += s.formatSchemaFields(fields)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := s.service.ServerInfo(s.config.ServerName, s.config.Version)
	return mcp.NewToolResultText(s.formatServerInfo(info)), nil
}

// Formatting methods

func (s *Server) formatExtractResult(result *docform.ExtractFieldsResult) string {
	text := fmt.Sprintf("Document class: %s\n", result.DocumentClass)
	text += fmt.Sprintf("Extracted fields: %d\n", len(result.Fields))

	if len(result.Fields) == 0 {
		text += "\nNo field matched; the text may be too degraded or off-catalog. This is a valid (empty) extraction.\n"
		return text
	}

	names := make([]string, 0, len(result.Fields))
	for name := range result.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	text += "\nFields:\n"
	for _, name := range names {
		text += fmt.Sprintf("  %s: %s\n", name, result.Fields[name])
	}
	return text
}

func (s *Server) formatAnalyzeResult(result *docform.AnalyzeTextResult) string {
	text := fmt.Sprintf("Document class: %s (%s)\n", result.DocumentClass, result.DocumentClassName)
	if result.Category != "" {
		text += fmt.Sprintf("Category: %s\n", result.Category)
	}
	if result.Organization != "" {
		text += fmt.Sprintf("Organization: %s\n", result.Organization)
	}
	if result.Audience != "" {
		text += fmt.Sprintf("Audience: %s\n", result.Audience)
	}

	text += fmt.Sprintf("\nSchema (%d fields):\n", len(result.Schema.Fields))
	for i, field := range result.Schema.Fields {
		text += fmt.Sprintf("%d. %s (%s)", i+1, field.Name, field.Type)
		if field.Required {
			text += " [required]"
		}
		if value, ok := result.FormData[field.Name]; ok {
			text += fmt.Sprintf(" = %s", value)
		}
		text += "\n"
	}
	return text
}

func (s *Server) formatSchemaFields(fields []forms.FieldDescriptor) string {
	if len(fields) == 0 {
		return "No fields.\n"
	}

	var b strings.Builder
	for i, field := range fields {
		fmt.Fprintf(&b, "%d. %s\n", i+1, field.Name)
		fmt.Fprintf(&b, "   Label: %s\n", field.Label)
		fmt.Fprintf(&b, "   Type: %s\n", field.Type)
		if field.Required {
			b.WriteString("   Required: true\n")
		}
		if field.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", field.Description)
		}
		if len(field.Options) > 0 {
			fmt.Fprintf(&b, "   Options: %s\n", strings.Join(field.Options, ", "))
		}
		if i < len(fields)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *Server) formatServerInfo(info *docform.ServerInfoResult) string {
	text := fmt.Sprintf("%s v%s - Server Information\n\n", info.ServerName, info.Version)
	text += fmt.Sprintf("Document classes: %s\n", strings.Join(info.DocumentClasses, ", "))
	text += fmt.Sprintf("Categories: %s\n", strings.Join(info.Categories, ", "))
	text += fmt.Sprintf("Organizations: %s\n", strings.Join(info.Organizations, ", "))
	text += fmt.Sprintf("Audiences: %s\n", strings.Join(info.Audiences, ", "))

	text += "\nTemplates:\n"
	docTypes := make([]string, 0, len(info.Templates))
	for docType := range info.Templates {
		docTypes = append(docTypes, docType)
	}
	sort.Strings(docTypes)
	for _, docType := range docTypes {
		text += fmt.Sprintf("  %s: %s\n", docType, strings.Join(info.Templates[docType], ", "))
	}

	text += "\nAvailable tools:\n"
	names := descriptions.GetAllToolNames()
	sort.Strings(names)
	for _, name := range names {
		text += fmt.Sprintf("  • %s\n", name)
	}
	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting docform MCP server in stdio mode")
		log.Printf("Catalog: %s", s.catalogSource())
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// The mark3labs transport only speaks stdio here; keep the flag for
	// forward compatibility and fall back.
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}

func (s *Server) catalogSource() string {
	if s.config.CatalogPath == "" {
		return "built-in"
	}
	return s.config.CatalogPath
}
