package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docformai/mcp-docform/internal/catalog"
	"github.com/docformai/mcp-docform/internal/config"
	"github.com/docformai/mcp-docform/internal/docform"
)

var (
	outputFormat = flag.String("format", "text", "Output format: text, json")
	catalogPath  = flag.String("catalog", "", "Path to a JSON catalog file (default: built-in catalog)")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: input file path required\n\n")
		printUsage()
		os.Exit(1)
	}

	inputPath := flag.Arg(0)
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: File not found: %s\n", inputPath)
		os.Exit(1)
	}

	cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	service := docform.NewService(cat, config.DefaultMaxFileSize)

	result, err := analyze(service, inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing document: %v\n", err)
		os.Exit(1)
	}

	if err := outputResults(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error outputting results: %v\n", err)
		os.Exit(1)
	}
}

func loadCatalog() (*catalog.Catalog, error) {
	if *catalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(*catalogPath)
}

// analyze runs the pipeline on a PDF (text layer harvested first) or on a
// plain text file.
func analyze(service *docform.Service, inputPath string) (*docform.AnalyzeFileResult, error) {
	absPath, err := filepath.Abs(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	if strings.HasSuffix(strings.ToLower(absPath), ".pdf") {
		if *verbose {
			fmt.Fprintf(os.Stderr, "Reading PDF text layer: %s\n", absPath)
		}
		return service.AnalyzeFile(docform.AnalyzeFileRequest{Path: absPath})
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return &docform.AnalyzeFileResult{
		Path:     absPath,
		Size:     int64(len(data)),
		Analysis: service.AnalyzeText(docform.AnalyzeTextRequest{Text: string(data)}),
	}, nil
}

func outputResults(result *docform.AnalyzeFileResult) error {
	switch *outputFormat {
	case "json":
		return outputJSON(result)
	case "text":
		return outputText(result)
	default:
		return fmt.Errorf("unsupported output format: %s", *outputFormat)
	}
}

func outputJSON(result *docform.AnalyzeFileResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result *docform.AnalyzeFileResult) error {
	analysis := result.Analysis

	fmt.Printf("Document Analysis\n")
	fmt.Printf("=================\n\n")
	fmt.Printf("File: %s\n", result.Path)
	if result.Pages > 0 {
		fmt.Printf("Pages: %d\n", result.Pages)
	}
	fmt.Printf("Size: %d bytes\n", result.Size)
	fmt.Printf("Class: %s (%s)\n", analysis.DocumentClass, analysis.DocumentClassName)
	if analysis.Category != "" {
		fmt.Printf("Category: %s\n", analysis.Category)
	}
	if analysis.Organization != "" {
		fmt.Printf("Organization: %s\n", analysis.Organization)
	}
	if analysis.Audience != "" {
		fmt.Printf("Audience: %s\n", analysis.Audience)
	}

	fmt.Printf("\nForm schema (%d fields):\n\n", len(analysis.Schema.Fields))
	for i, field := range analysis.Schema.Fields {
		fmt.Printf("%d. %s\n", i+1, field.Name)
		fmt.Printf("   Label: %s\n", field.Label)
		fmt.Printf("   Type: %s\n", field.Type)
		if field.Required {
			fmt.Printf("   Required: true\n")
		}
		if value, ok := analysis.FormData[field.Name]; ok {
			fmt.Printf("   Value: %s\n", value)
		}
		if *verbose && field.Description != "" {
			fmt.Printf("   Description: %s\n", field.Description)
		}
		if i < len(analysis.Schema.Fields)-1 {
			fmt.Println()
		}
	}

	return nil
}

func printHelp() {
	fmt.Println("DocForm Analyze - build a typed form schema from an administrative document")
	fmt.Println()
	fmt.Println("Runs the full pipeline on a PDF text layer or a plain text file:")
	fmt.Println("classification, field extraction, fallback resolution, category and")
	fmt.Println("organization detection, and form schema construction.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -format        Output format: text (default), json")
	fmt.Println("  -catalog       Path to a JSON catalog file (default: built-in catalog)")
	fmt.Println("  -verbose       Enable verbose output")
	fmt.Println("  -help          Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  docform-analyze decret-2024-101.pdf")
	fmt.Println("  docform-analyze -format json ocr-output.txt")
	fmt.Println("  docform-analyze -catalog /etc/docform/catalog.json procedure.pdf")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  docform-analyze [OPTIONS] <pdf_or_text_file>")
}
