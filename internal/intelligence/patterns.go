package intelligence

import "regexp"

// ExtractionRule ties a field name to the pattern that captures its value.
// Rules run independently against the full text; Group selects the capture
// group stored under Field. Field names are unique across the library.
type ExtractionRule struct {
	Field   string
	Pattern *regexp.Regexp
	Group   int
}

// DefaultRules returns the pattern library in its canonical order. The order
// is also the field order of schemas built from OCR output.
//
// The patterns target French administrative prose as produced by OCR, so they
// tolerate connecting words ("n°", "numéro", "du", "de") and irregular
// whitespace. That tolerance is a functional requirement, not a nicety:
// scanned documents rarely keep their original spacing.
func DefaultRules() []ExtractionRule {
	return []ExtractionRule{
		{
			Field: "titre",
			Pattern: regexp.MustCompile(
				`(?i)((?:décret|arrêté|loi|ordonnance|circulaire|instruction)[^\n]{10,150})`),
			Group: 1,
		},
		{
			Field: "numero",
			Pattern: regexp.MustCompile(
				`(?i)(?:num[ée]ro|n\s*[°ºo]\.?)\s*:?\s*(\d{1,4}(?:[-/]\d{1,4}){0,2})`),
			Group: 1,
		},
		{
			Field: "date_promulgation",
			Pattern: regexp.MustCompile(
				`(?i)(?:en\s+date\s+du|sign[ée]e?\s+le|du|le)\s+` +
					`(\d{1,2}\s*[/.-]\s*\d{1,2}\s*[/.-]\s*\d{2,4}` +
					`|\d{1,2}(?:er)?\s+(?:janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre)\s+\d{4})`),
			Group: 1,
		},
		{
			Field: "journal_officiel",
			Pattern: regexp.MustCompile(
				`(?i)journal\s+officiel\s*(?:de\s+la\s+r[ée]publique[^\n,;]*?)?\s*n\s*[°ºo]?\s*:?\s*(\d+[^\n,;.]*)`),
			Group: 1,
		},
		{
			Field: "signataire",
			Pattern: regexp.MustCompile(
				`(?i)sign[ée]e?\s*(?:par)?\s*:\s*([^\n,;.]{3,80})`),
			Group: 1,
		},
		{
			Field: "ministere",
			Pattern: regexp.MustCompile(
				`(?i)minist[èe]re\s+(?:de\s+la\s+|de\s+l['’]\s*|du\s+|des\s+|de\s+)?([^\n,.;]{2,80})`),
			Group: 1,
		},
		{
			Field: "autorite",
			Pattern: regexp.MustCompile(
				`(?i)autorit[ée]\s*(?:comp[ée]tente)?\s*:?\s*([^\n,;.]{3,80})`),
			Group: 1,
		},
		{
			Field: "domaine_juridique",
			Pattern: regexp.MustCompile(
				`(?i)domaine\s*(?:juridique)?\s*:\s*([^\n,;.]{3,60})`),
			Group: 1,
		},
		{
			Field: "nom_procedure",
			Pattern: regexp.MustCompile(
				`(?i)proc[ée]dure\s+(?:de\s+la\s+|de\s+l['’]|d['’]|de\s+|du\s+|des\s+)?([^\n.]{5,100})`),
			Group: 1,
		},
		{
			Field: "documents_requis",
			Pattern: regexp.MustCompile(
				`(?i)documents?\s+(?:requis|à\s+fournir|n[ée]cessaires)\s*:?\s*([^.\n]{3,300})`),
			Group: 1,
		},
		{
			Field: "delai_traitement",
			Pattern: regexp.MustCompile(
				`(?i)d[ée]lai\s*(?:de\s+traitement|de\s+r[ée]ponse)?\s*:?\s*(?:de\s+)?(\d+\s*(?:jours?|mois|semaines?|ans?)[^\n.]*)`),
			Group: 1,
		},
		{
			Field: "cout",
			Pattern: regexp.MustCompile(
				`(?i)(?:co[ûu]t|frais|tarif|montant)\s*:?\s*(?:de\s+)?(\d[\d\s.,]*\s*(?:da|dinars?|dzd|euros?|€)?)`),
			Group: 1,
		},
		{
			Field: "lieu_depot",
			Pattern: regexp.MustCompile(
				`(?i)(?:lieu\s+de\s+d[ée]p[ôo]t|d[ée]poser\s+(?:le\s+dossier\s+)?aupr[èe]s)\s*:?\s*` +
					`(?:de\s+la\s+|de\s+l['’]|du\s+|de\s+|la\s+|le\s+)?([^\n,;.]{3,100})`),
			Group: 1,
		},
		{
			Field: "conditions",
			Pattern: regexp.MustCompile(
				`(?i)conditions?\s*(?:requises|d['’]\s*[ée]ligibilit[ée])?\s*:\s*([^\n]{3,300})`),
			Group: 1,
		},
		{
			Field: "etapes",
			Pattern: regexp.MustCompile(
				`(?i)[ée]tapes?\s*(?:à\s+suivre)?\s*:\s*([^\n]{3,300})`),
			Group: 1,
		},
		{
			Field: "observations",
			Pattern: regexp.MustCompile(
				`(?i)(?:observations?|remarques?)\s*:\s*([^\n]{3,300})`),
			Group: 1,
		},
	}
}
