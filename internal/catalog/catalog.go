// Package catalog holds the closed enumerations the extraction pipeline and the
// form layer share: classification keywords, category/organization/audience
// tables, field descriptions and form templates. The application injects one
// Catalog everywhere so the lists stay consistent with the UI dropdowns.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// KeywordSet associates a catalog label with the keywords that select it.
// Tables of KeywordSet are ordered: evaluation is first-match-wins.
type KeywordSet struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// Template names an ordered list of field names for a document type.
type Template struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Fields []string `json:"fields"`
}

// Catalog is the full configuration surface of the pipeline.
type Catalog struct {
	// Classification keyword lists. Legal keywords take priority.
	LegalKeywords     []string `json:"legal_keywords"`
	ProcedureKeywords []string `json:"procedure_keywords"`

	// Ordered detection tables. Order encodes priority.
	Categories    []KeywordSet `json:"categories"`
	Organizations []KeywordSet `json:"organizations"`
	Audiences     []KeywordSet `json:"audiences"`

	// Field metadata.
	FieldDescriptions map[string]string `json:"field_descriptions"`
	RequiredNameParts []string          `json:"required_name_parts"`

	// Form templates keyed by document type.
	Templates map[string][]Template `json:"templates"`
}

// Default returns the built-in catalog. The lists mirror the dropdown catalogs
// of the data-entry UI and must be kept in sync with them.
func Default() *Catalog {
	return &Catalog{
		LegalKeywords: []string{
			"décret", "arrêté", "loi", "ordonnance", "journal officiel",
			"promulgation", "république algérienne", "ministère",
		},
		ProcedureKeywords: []string{
			"procédure", "demande", "dossier", "formulaire", "pièces jointes",
			"délai", "documents requis", "étapes",
		},
		Categories: []KeywordSet{
			{Label: "Commerce", Keywords: []string{
				"commerce", "commercial", "registre de commerce", "import", "export", "commerçant",
			}},
			{Label: "Urbanisme", Keywords: []string{
				"urbanisme", "permis de construire", "construction", "lotissement", "foncier", "cadastre",
			}},
			{Label: "État civil", Keywords: []string{
				"état civil", "acte de naissance", "naissance", "mariage", "décès", "livret de famille",
			}},
			{Label: "Fiscalité", Keywords: []string{
				"impôt", "fiscal", "taxe", "tva", "redevance", "douane",
			}},
			{Label: "Santé", Keywords: []string{
				"santé", "médical", "hôpital", "pharmacie", "sanitaire",
			}},
			{Label: "Éducation", Keywords: []string{
				"éducation", "école", "université", "scolaire", "enseignement", "diplôme",
			}},
			{Label: "Transport", Keywords: []string{
				"transport", "permis de conduire", "véhicule", "immatriculation", "circulation",
			}},
			{Label: "Environnement", Keywords: []string{
				"environnement", "pollution", "déchets", "écologie",
			}},
			{Label: "Agriculture", Keywords: []string{
				"agriculture", "agricole", "élevage", "irrigation", "forêt",
			}},
		},
		Organizations: []KeywordSet{
			{Label: "Ministère de l'Intérieur", Keywords: []string{
				"ministère de l'intérieur", "intérieur", "collectivités locales",
			}},
			{Label: "Ministère de la Justice", Keywords: []string{
				"ministère de la justice", "justice", "garde des sceaux",
			}},
			{Label: "Ministère des Finances", Keywords: []string{
				"ministère des finances", "finances", "budget", "trésor",
			}},
			{Label: "Ministère du Commerce", Keywords: []string{
				"ministère du commerce", "commerce",
			}},
			{Label: "Ministère de la Santé", Keywords: []string{
				"ministère de la santé", "santé",
			}},
			{Label: "Ministère de l'Éducation nationale", Keywords: []string{
				"ministère de l'éducation", "éducation nationale",
			}},
			{Label: "Ministère des Transports", Keywords: []string{
				"ministère des transports", "transports",
			}},
			{Label: "Ministère de l'Habitat et de l'Urbanisme", Keywords: []string{
				"ministère de l'habitat", "habitat", "urbanisme",
			}},
			{Label: "Ministère de l'Agriculture", Keywords: []string{
				"ministère de l'agriculture", "agriculture",
			}},
			{Label: "Direction générale des impôts", Keywords: []string{
				"direction des impôts", "impôts",
			}},
			{Label: "Wilaya", Keywords: []string{
				"wilaya", "wali",
			}},
			{Label: "Commune", Keywords: []string{
				"commune", "assemblée populaire communale", "mairie",
			}},
		},
		Audiences: []KeywordSet{
			{Label: "Citoyen", Keywords: []string{
				"citoyen", "particulier", "personne physique",
			}},
			{Label: "Entreprise", Keywords: []string{
				"entreprise", "société", "commerçant", "personne morale",
			}},
			{Label: "Investisseur", Keywords: []string{
				"investisseur", "investissement",
			}},
			{Label: "Association", Keywords: []string{
				"association", "ong",
			}},
			{Label: "Administration", Keywords: []string{
				"administration", "fonctionnaire", "service public",
			}},
		},
		FieldDescriptions: map[string]string{
			"titre":             "Titre officiel du document",
			"numero":            "Numéro de référence du document",
			"date_promulgation": "Date de promulgation ou de signature",
			"journal_officiel":  "Référence de publication au journal officiel",
			"signataire":        "Autorité signataire du document",
			"ministere":         "Ministère émetteur",
			"autorite":          "Autorité compétente",
			"domaine_juridique": "Domaine juridique concerné",
			"nom_procedure":     "Nom de la procédure administrative",
			"documents_requis":  "Liste des documents à fournir",
			"delai_traitement":  "Délai de traitement du dossier",
			"cout":              "Coût de la procédure",
			"lieu_depot":        "Lieu de dépôt du dossier",
			"conditions":        "Conditions d'éligibilité",
			"etapes":            "Étapes de la procédure",
			"observations":      "Observations complémentaires",
			"article_principal": "Article principal du texte",
			"organisation":      "Organisation concernée",
			"categorie":         "Catégorie du document",
			"public_cible":      "Public concerné par la procédure",
			"statut":            "Statut du document",
			"contenu":           "Contenu intégral du texte",
		},
		RequiredNameParts: []string{"titre", "nom_procedure", "numero", "date"},
		Templates: map[string][]Template{
			"juridique": {
				{
					Key:   "decret",
					Label: "Décret",
					Fields: []string{
						"titre", "numero", "date_promulgation", "journal_officiel",
						"ministere", "signataire", "domaine_juridique", "contenu",
						"observations",
					},
				},
				{
					Key:   "arrete",
					Label: "Arrêté",
					Fields: []string{
						"titre", "numero", "date_promulgation", "autorite",
						"ministere", "domaine_juridique", "contenu",
					},
				},
				{
					Key:   "loi",
					Label: "Loi",
					Fields: []string{
						"titre", "numero", "date_promulgation", "journal_officiel",
						"domaine_juridique", "contenu", "observations",
					},
				},
			},
			"procedure": {
				{
					Key:   "standard",
					Label: "Procédure standard",
					Fields: []string{
						"nom_procedure", "organisation", "categorie",
						"documents_requis", "delai_traitement", "cout",
						"lieu_depot", "conditions", "etapes", "public_cible",
						"observations",
					},
				},
				{
					Key:   "simplifiee",
					Label: "Procédure simplifiée",
					Fields: []string{
						"nom_procedure", "organisation", "documents_requis",
						"delai_traitement", "lieu_depot",
					},
				},
			},
		},
	}
}

// LoadFile replaces the catalog with the contents of a JSON file. The file
// format is the JSON form of Catalog itself, so an application can export,
// edit and re-inject the lists it shows in its dropdowns.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}

	return &c, nil
}

// Validate checks the catalog for the structural properties the pipeline
// relies on.
func (c *Catalog) Validate() error {
	if len(c.LegalKeywords) == 0 {
		return fmt.Errorf("legal keyword list cannot be empty")
	}
	if len(c.ProcedureKeywords) == 0 {
		return fmt.Errorf("procedure keyword list cannot be empty")
	}
	for _, table := range [][]KeywordSet{c.Categories, c.Organizations, c.Audiences} {
		seen := make(map[string]bool, len(table))
		for _, set := range table {
			if set.Label == "" {
				return fmt.Errorf("keyword set with empty label")
			}
			if seen[set.Label] {
				return fmt.Errorf("duplicate label in keyword table: %s", set.Label)
			}
			seen[set.Label] = true
			if len(set.Keywords) == 0 {
				return fmt.Errorf("keyword set %q has no keywords", set.Label)
			}
		}
	}
	for docType, templates := range c.Templates {
		for _, tpl := range templates {
			if tpl.Key == "" {
				return fmt.Errorf("template with empty key under document type %q", docType)
			}
			if len(tpl.Fields) == 0 {
				return fmt.Errorf("template %s/%s has no fields", docType, tpl.Key)
			}
		}
	}
	return nil
}

// OrganizationNames returns the organization labels in catalog order. This is
// the option list of organization-typed select fields.
func (c *Catalog) OrganizationNames() []string {
	names := make([]string, 0, len(c.Organizations))
	for _, org := range c.Organizations {
		names = append(names, org.Label)
	}
	return names
}

// FindTemplate looks up a template by document type and key.
func (c *Catalog) FindTemplate(docType, key string) (Template, bool) {
	templates, ok := c.Templates[docType]
	if !ok {
		return Template{}, false
	}
	for _, tpl := range templates {
		if tpl.Key == key {
			return tpl, true
		}
	}
	return Template{}, false
}
