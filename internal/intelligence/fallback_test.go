package intelligence

import (
	"testing"

	"github.com/docformai/mcp-docform/internal/catalog"
)

func TestFillGapsDoesNotMutateInput(t *testing.T) {
	resolver := NewFallbackResolver(catalog.Default())

	partial := map[string]string{"numero": "24-123"}
	text := "Arrêté fixant les modalités d'application du dispositif"

	enriched := resolver.FillGaps(text, partial, DocumentClassLegal)

	if len(partial) != 1 {
		t.Errorf("Input map was mutated: %v", partial)
	}
	if enriched["numero"] != "24-123" {
		t.Error("Expected existing fields to be carried over")
	}
}

func TestFillGapsLegalTitleFromKeywordLine(t *testing.T) {
	resolver := NewFallbackResolver(catalog.Default())

	text := "2024\nArrêté fixant les modalités d'application du dispositif\nArticle 2 : abrogé"

	fields := resolver.FillGaps(text, map[string]string{}, DocumentClassLegal)

	want := "Arrêté fixant les modalités d'application du dispositif"
	if got := fields["titre"]; got != want {
		t.Errorf("titre = %q, want %q", got, want)
	}
}

func TestFillGapsNeverSynthesizesTitle(t *testing.T) {
	resolver := NewFallbackResolver(catalog.Default())

	// No line qualifies as a title: the field must stay absent rather than
	// being invented.
	fields := resolver.FillGaps("x\nyz\nab", map[string]string{}, DocumentClassLegal)
	if v, ok := fields["titre"]; ok {
		t.Errorf("Expected titre to stay absent, got %q", v)
	}

	fields = resolver.FillGaps("", map[string]string{}, DocumentClassProcedure)
	if v, ok := fields["nom_procedure"]; ok {
		t.Errorf("Expected nom_procedure to stay absent, got %q", v)
	}
}

func TestFillGapsKeepsExistingTitle(t *testing.T) {
	resolver := NewFallbackResolver(catalog.Default())

	partial := map[string]string{"titre": "Décret déjà extrait"}
	text := "Arrêté fixant les modalités d'application du dispositif"

	fields := resolver.FillGaps(text, partial, DocumentClassLegal)
	if got := fields["titre"]; got != "Décret déjà extrait" {
		t.Errorf("titre = %q, want the already extracted value", got)
	}
}

func TestFillGapsProcedureTitleSkipsHeaderLines(t *testing.T) {
	resolver := NewFallbackResolver(catalog.Default())

	text := `RÉPUBLIQUE ALGÉRIENNE DÉMOCRATIQUE ET POPULAIRE
Ministère de l'Intérieur et des Collectivités locales
Demande de carte d'identité biométrique
Pièces à joindre au dossier`

	fields := resolver.FillGaps(text, map[string]string{}, DocumentClassProcedure)

	want := "Demande de carte d'identité biométrique"
	if got := fields["nom_procedure"]; got != want {
		t.Errorf("nom_procedure = %q, want %q", got, want)
	}
}

func TestFillGapsCollectsProcedureSteps(t *testing.T) {
	resolver := NewFallbackResolver(catalog.Default())

	text := `Demande de carte d'identité biométrique
1. Retirer le formulaire
2. Constituer le dossier
- Déposer auprès de la commune
Une ligne descriptive sans rapport`

	fields := resolver.FillGaps(text, map[string]string{}, DocumentClassProcedure)

	want := "1. Retirer le formulaire | 2. Constituer le dossier | - Déposer auprès de la commune"
	if got := fields["etapes"]; got != want {
		t.Errorf("etapes = %q, want %q", got, want)
	}
}

func TestFillGapsNoStepsLeavesEtapesAbsent(t *testing.T) {
	resolver := NewFallbackResolver(catalog.Default())

	fields := resolver.FillGaps("Demande de carte d'identité", map[string]string{}, DocumentClassProcedure)
	if v, ok := fields["etapes"]; ok {
		t.Errorf("Expected etapes to stay absent, got %q", v)
	}
}

func TestFillGapsMainArticleForLegalText(t *testing.T) {
	resolver := NewFallbackResolver(catalog.Default())

	text := "Décret portant création d'un observatoire\nArticle 1er : Il est créé un observatoire national"

	fields := resolver.FillGaps(text, map[string]string{}, DocumentClassLegal)

	want := "Il est créé un observatoire national"
	if got := fields["article_principal"]; got != want {
		t.Errorf("article_principal = %q, want %q", got, want)
	}
}

func TestFillGapsMainArticleVariants(t *testing.T) {
	resolver := NewFallbackResolver(catalog.Default())

	texts := []string{
		"Article premier : Les dispositions suivantes sont applicables",
		"ARTICLE 1. Les dispositions suivantes sont applicables",
	}
	for _, text := range texts {
		fields := resolver.FillGaps(text, map[string]string{}, DocumentClassLegal)
		if _, ok := fields["article_principal"]; !ok {
			t.Errorf("Expected article_principal for %q", text)
		}
	}
}

func TestFillGapsArticleOnlyForLegalClass(t *testing.T) {
	resolver := NewFallbackResolver(catalog.Default())

	text := "Article 1er : Il est créé un observatoire national"
	fields := resolver.FillGaps(text, map[string]string{}, DocumentClassProcedure)
	if v, ok := fields["article_principal"]; ok {
		t.Errorf("Expected no article_principal for procedure class, got %q", v)
	}
}
