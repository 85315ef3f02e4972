package jsonschema

// Dialect is the meta-schema URI written into exported documents.
const Dialect = "https://json-schema.org/draft/2020-12/schema"

// Schema is the JSON Schema representation used for export.
// Field order is the order keywords appear in marshaled documents.
type Schema struct {
	// Document
	SchemaURI string `json:"$schema,omitempty"`
	ID        string `json:"$id,omitempty"`
	Ref       string `json:"$ref,omitempty"`
	Comment   string `json:"$comment,omitempty"`

	// Annotations
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`

	// Core
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`
	Const  any    `json:"const,omitempty"`
	Enum   []any  `json:"enum,omitempty"`

	// Number
	Minimum          *float64 `json:"minimum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`

	// String
	MinLength *int `json:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`

	// ErrorMessage is the ajv-errors vendor keyword: either a string applying
	// to every failure of the node, or a map from keyword to message.
	ErrorMessage any `json:"errorMessage,omitempty"`

	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// SetErrorMessage records msg for keyword under errorMessage. An empty
// keyword sets the string form, which replaces any per-keyword messages.
func (s *Schema) SetErrorMessage(keyword, msg string) {
	if keyword == "" {
		s.ErrorMessage = msg
		return
	}
	m, ok := s.ErrorMessage.(map[string]string)
	if !ok {
		if _, isString := s.ErrorMessage.(string); isString {
			return
		}
		m = map[string]string{}
	}
	m[keyword] = msg
	s.ErrorMessage = m
}

// Ptr returns a pointer to v, for the optional numeric keywords.
func Ptr[T int | float64](v T) *T { return &v }
