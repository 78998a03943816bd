package forms

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LinesToFields converts arbitrary line-oriented text directly into a list of
// generic field descriptors, one per non-empty line, preserving line order.
// This is the simple entry point used when no document-type classification is
// wanted: every field is optional and the type comes from local keyword
// checks on the line content itself.
func LinesToFields(text string) []FieldDescriptor {
	var fields []FieldDescriptor
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name := fieldNameFromLine(line)
		fields = append(fields, FieldDescriptor{
			ID:          name,
			Name:        name,
			Label:       line,
			Type:        lineFieldType(line),
			Required:    false,
			Placeholder: line,
			Description: fmt.Sprintf("Champ généré à partir de la ligne « %s »", line),
		})
	}
	return fields
}

// fieldNameFromLine derives a field name: lower-case, every non-alphanumeric
// character replaced by an underscore.
func fieldNameFromLine(line string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(line) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// lineFieldType infers a type from the line content. Long free-form lines
// become textareas; everything unrecognized is plain text.
func lineFieldType(line string) FieldType {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "date"):
		return FieldTypeDate
	case strings.Contains(lower, "email"), strings.Contains(lower, "e-mail"),
		strings.Contains(lower, "@"):
		return FieldTypeEmail
	case strings.Contains(lower, "téléphone"), strings.Contains(lower, "telephone"),
		strings.Contains(lower, "tél"), strings.Contains(lower, "phone"):
		return FieldTypeTel
	case isNumericLine(line), strings.Contains(lower, "montant"),
		strings.Contains(lower, "nombre"), strings.Contains(lower, "numéro"):
		return FieldTypeNumber
	case utf8.RuneCountInString(line) > 50:
		return FieldTypeTextarea
	default:
		return FieldTypeText
	}
}

// isNumericLine reports whether the line is made of digits and numeric
// punctuation only.
func isNumericLine(line string) bool {
	hasDigit := false
	for _, r := range line {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == ' ' || r == '.' || r == ',' || r == '-' || r == '/':
		default:
			return false
		}
	}
	return hasDigit
}
