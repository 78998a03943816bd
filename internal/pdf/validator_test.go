package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewValidator(t *testing.T) {
	validator := NewValidator(1024 * 1024)
	if validator == nil {
		t.Fatal("Expected validator to be created, got nil")
	}
	if validator.conf == nil {
		t.Error("Expected a pdfcpu configuration")
	}
}

func TestValidateFileReportsFailuresInResult(t *testing.T) {
	validator := NewValidator(1024 * 1024)

	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		message string
	}{
		{
			name:    "empty path",
			setup:   func(t *testing.T) string { return "" },
			message: "path cannot be empty",
		},
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.pdf")
			},
			message: "does not exist",
		},
		{
			name: "directory",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			message: "directory",
		},
		{
			name: "wrong extension",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "document.docx")
				if err := os.WriteFile(path, []byte("contenu"), 0o644); err != nil {
					t.Fatalf("failed to create file: %v", err)
				}
				return path
			},
			message: "not a PDF",
		},
		{
			name: "empty file",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "empty.pdf")
				if err := os.WriteFile(path, nil, 0o644); err != nil {
					t.Fatalf("failed to create file: %v", err)
				}
				return path
			},
			message: "empty",
		},
		{
			name: "corrupt content",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "broken.pdf")
				if err := os.WriteFile(path, []byte("pas un pdf"), 0o644); err != nil {
					t.Fatalf("failed to create file: %v", err)
				}
				return path
			},
			message: "invalid PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t)

			result, err := validator.ValidateFile(path)
			if err != nil {
				t.Fatalf("ValidateFile returned a processing error: %v", err)
			}
			if result.Valid {
				t.Fatal("Expected validation to fail")
			}
			if !strings.Contains(result.Message, tt.message) {
				t.Errorf("Message = %q, want it to contain %q", result.Message, tt.message)
			}
		})
	}
}

func TestValidateFileTooLarge(t *testing.T) {
	validator := NewValidator(10)

	path := filepath.Join(t.TempDir(), "big.pdf")
	if err := os.WriteFile(path, make([]byte, 100), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	result, err := validator.ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile returned a processing error: %v", err)
	}
	if result.Valid {
		t.Fatal("Expected validation to fail")
	}
	if !strings.Contains(result.Message, "too large") {
		t.Errorf("Message = %q, want it to mention the size limit", result.Message)
	}
}

func TestIsValidPDF(t *testing.T) {
	validator := NewValidator(1024 * 1024)

	if validator.IsValidPDF("") {
		t.Error("Expected empty path to be invalid")
	}

	path := filepath.Join(t.TempDir(), "fake.pdf")
	if err := os.WriteFile(path, []byte("pas un pdf"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if validator.IsValidPDF(path) {
		t.Error("Expected corrupt file to be invalid")
	}
}
