// Package forms derives typed form schemas from extracted field values,
// named templates or raw line-oriented text. A schema is an ordered list of
// field descriptors that a rendering layer can display generically; this
// package hands the schema to the caller and retains nothing.
package forms

import "time"

// FieldType is the UI data type of a form field.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeDate     FieldType = "date"
	FieldTypeNumber   FieldType = "number"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTel      FieldType = "tel"
	FieldTypeURL      FieldType = "url"
	FieldTypeSelect   FieldType = "select"
)

// FieldDescriptor is the externally visible unit of a form schema.
type FieldDescriptor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Description string    `json:"description,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Repeatable  bool      `json:"repeatable,omitempty"`
}

// FormSchema is an ordered schema together with the values that were
// extracted for it. Values is sparse: a missing key means the field has no
// prefilled value.
type FormSchema struct {
	DocumentClass string            `json:"document_class,omitempty"`
	Fields        []FieldDescriptor `json:"fields"`
	Values        map[string]string `json:"values,omitempty"`
	GeneratedAt   time.Time         `json:"generated_at"`
}
