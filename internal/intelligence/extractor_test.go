package intelligence

import (
	"reflect"
	"regexp"
	"testing"
)

func TestDefaultRulesFieldsAreUnique(t *testing.T) {
	rules := DefaultRules()
	if len(rules) == 0 {
		t.Fatal("Expected the default rule table to be non-empty")
	}

	seen := make(map[string]bool)
	for _, rule := range rules {
		if rule.Field == "" {
			t.Error("Rule with empty field name")
		}
		if seen[rule.Field] {
			t.Errorf("Duplicate field name in rule table: %s", rule.Field)
		}
		seen[rule.Field] = true
		if rule.Pattern == nil {
			t.Errorf("Rule %s has no pattern", rule.Field)
		}
	}
}

func TestExtractDecreeText(t *testing.T) {
	extractor := NewExtractor()

	text := `Décret exécutif n° 24-123 du 15 janvier 2024 portant organisation du ministère de la santé
Publié au Journal Officiel n° 05
Signé par : Ahmed Benali`

	fields := extractor.Extract(text)

	if got := fields["numero"]; got != "24-123" {
		t.Errorf("numero = %q, want %q", got, "24-123")
	}
	if got := fields["date_promulgation"]; got != "15 janvier 2024" {
		t.Errorf("date_promulgation = %q, want %q", got, "15 janvier 2024")
	}
	if got := fields["ministere"]; got != "santé" {
		t.Errorf("ministere = %q, want %q", got, "santé")
	}
	if got := fields["signataire"]; got != "Ahmed Benali" {
		t.Errorf("signataire = %q, want %q", got, "Ahmed Benali")
	}
	if _, ok := fields["titre"]; !ok {
		t.Error("Expected titre to be extracted from the decree heading")
	}
	if _, ok := fields["journal_officiel"]; !ok {
		t.Error("Expected journal_officiel to be extracted")
	}
}

func TestExtractProcedureText(t *testing.T) {
	extractor := NewExtractor()

	text := `Procédure de délivrance du permis de construire.
Documents à fournir : plan, acte de propriété.
Délai : 30 jours.
Coût : 2000 DA
Lieu de dépôt : la mairie de la commune
Conditions : être propriétaire du terrain
Étapes : dépôt, instruction, délivrance`

	fields := extractor.Extract(text)

	want := map[string]string{
		"nom_procedure":    "délivrance du permis de construire",
		"documents_requis": "plan, acte de propriété",
		"delai_traitement": "30 jours",
		"cout":             "2000 DA",
		"lieu_depot":       "mairie de la commune",
		"conditions":       "être propriétaire du terrain",
		"etapes":           "dépôt, instruction, délivrance",
	}
	for field, expected := range want {
		if got := fields[field]; got != expected {
			t.Errorf("%s = %q, want %q", field, got, expected)
		}
	}
}

func TestExtractToleratesIrregularWhitespace(t *testing.T) {
	extractor := NewExtractor()

	fields := extractor.Extract("Arrêté numéro : 45 du 10 / 01 / 2024")

	if got := fields["numero"]; got != "45" {
		t.Errorf("numero = %q, want %q", got, "45")
	}
	if got := fields["date_promulgation"]; got != "10 / 01 / 2024" {
		t.Errorf("date_promulgation = %q, want %q", got, "10 / 01 / 2024")
	}
}

func TestExtractMissingFieldsStayAbsent(t *testing.T) {
	extractor := NewExtractor()

	fields := extractor.Extract("Décret numéro : 12")

	if got := fields["numero"]; got != "12" {
		t.Errorf("numero = %q, want %q", got, "12")
	}
	for _, absent := range []string{"date_promulgation", "cout", "delai_traitement", "signataire"} {
		if v, ok := fields[absent]; ok {
			t.Errorf("Expected %s to be absent, got %q", absent, v)
		}
	}
}

func TestExtractEmptyText(t *testing.T) {
	extractor := NewExtractor()

	fields := extractor.Extract("")
	if fields == nil {
		t.Fatal("Expected an empty map, got nil")
	}
	if len(fields) != 0 {
		t.Errorf("Expected no fields for empty text, got %v", fields)
	}
}

func TestExtractNeverStoresEmptyValues(t *testing.T) {
	extractor := NewExtractor()

	texts := []string{
		"Texte sans aucun champ reconnaissable",
		"Procédure de délivrance du permis de construire.",
		"Décret exécutif n° 24-123 du 15 janvier 2024",
	}
	for _, text := range texts {
		for field, value := range extractor.Extract(text) {
			if value == "" {
				t.Errorf("Extract(%q) stored empty value for %s", text, field)
			}
		}
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	extractor := NewExtractor()
	text := "Décret n° 24-123 du 15 janvier 2024\nDélai : 15 jours"

	first := extractor.Extract(text)
	second := extractor.Extract(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract not deterministic: %v vs %v", first, second)
	}
}

func TestExtractFirstRuleWinsOnDuplicateField(t *testing.T) {
	rules := []ExtractionRule{
		{Field: "code", Pattern: regexp.MustCompile(`première\s+(\w+)`), Group: 1},
		{Field: "code", Pattern: regexp.MustCompile(`seconde\s+(\w+)`), Group: 1},
	}
	extractor := NewExtractorWithRules(rules)

	fields := extractor.Extract("seconde valeur et première cible")
	if got := fields["code"]; got != "cible" {
		t.Errorf("code = %q, want the first rule's capture %q", got, "cible")
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  a\n b\tc ", "a b c"},
		{"une    valeur", "une valeur"},
		{"", ""},
		{"   ", ""},
		{"déjà propre", "déjà propre"},
	}
	for _, tt := range tests {
		if got := CollapseWhitespace(tt.in); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
