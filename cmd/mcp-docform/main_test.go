package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/docformai/mcp-docform/internal/config"
)

func TestLoadCatalogBuiltIn(t *testing.T) {
	cfg := config.DefaultConfig()

	cat, err := loadCatalog(cfg)
	if err != nil {
		t.Fatalf("loadCatalog failed: %v", err)
	}
	if cat == nil {
		t.Fatal("Expected the built-in catalog, got nil")
	}
	if len(cat.LegalKeywords) == 0 {
		t.Error("Expected the built-in catalog to carry legal keywords")
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	content := `{
		"legal_keywords": ["décret"],
		"procedure_keywords": ["procédure"],
		"categories": [{"label": "Commerce", "keywords": ["commerce"]}],
		"organizations": [{"label": "Wilaya", "keywords": ["wilaya"]}],
		"audiences": [{"label": "Citoyen", "keywords": ["citoyen"]}],
		"templates": {}
	}`
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.CatalogPath = path

	cat, err := loadCatalog(cfg)
	if err != nil {
		t.Fatalf("loadCatalog failed: %v", err)
	}
	if len(cat.LegalKeywords) != 1 || cat.LegalKeywords[0] != "décret" {
		t.Errorf("LegalKeywords = %v", cat.LegalKeywords)
	}
}

func TestLoadCatalogRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.CatalogPath = path

	if _, err := loadCatalog(cfg); err == nil {
		t.Error("Expected error for a catalog without keywords")
	}
}
