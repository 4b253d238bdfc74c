// Package jsonschema holds a minimal JSON Schema representation used for
// exporting record schemas. Only the vocabulary the engine can express is
// modeled: primitive types, arrays, objects, defaults, and enums.
package jsonschema

// Schema is the exported JSON Schema node.
type Schema struct {
	// Core
	Type    string `json:"type,omitempty"`
	Default any    `json:"default,omitempty"`
	Enum    []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`
}
