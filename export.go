package yamlrec

import (
	"sort"

	js "github.com/reoring/yamlrec/jsonschema"
)

// JSONSchema projects the record type into a JSON Schema representation.
// Properties are keyed by the external input key (the alias), enums come
// from allow-lists, and additionalProperties reflects the unknown-key
// policy. Map key descriptors have no JSON Schema counterpart and are not
// exported.
func (s *Schema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(s.fields))
	var req []string
	for _, f := range s.fields {
		ps, err := descriptorJSONSchema(f.Type)
		if err != nil {
			return nil, err
		}
		if f.Default != nil {
			ps.Default = f.Default
		}
		if len(f.Options) > 0 {
			ps.Enum = append([]any(nil), f.Options...)
		}
		props[f.Alias] = ps
		if f.Required() {
			req = append(req, f.Alias)
		}
	}
	sort.Strings(req)
	var additional any
	switch s.unknown {
	case UnknownStrict:
		additional = false
	case UnknownStrip:
		// Runtime accepts then discards unknown keys, so JSON Schema should
		// mark them as accepted (true).
		additional = true
	}
	return &js.Schema{Type: "object", Properties: props, Required: req, AdditionalProperties: additional}, nil
}

func descriptorJSONSchema(d Descriptor) (*js.Schema, error) {
	switch d.Kind {
	case KindInt:
		return &js.Schema{Type: "integer"}, nil
	case KindFloat:
		return &js.Schema{Type: "number"}, nil
	case KindString:
		return &js.Schema{Type: "string"}, nil
	case KindBool:
		return &js.Schema{Type: "boolean"}, nil
	case KindAny:
		return &js.Schema{}, nil
	case KindList:
		if d.Elem == nil {
			return nil, singleIssue("/", CodeUntypedContainer, "list element type missing", nil)
		}
		items, err := descriptorJSONSchema(*d.Elem)
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "array", Items: items}, nil
	case KindMap:
		if d.Value == nil {
			return nil, singleIssue("/", CodeUntypedContainer, "map value type missing", nil)
		}
		vs, err := descriptorJSONSchema(*d.Value)
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "object", AdditionalProperties: vs}, nil
	case KindNested:
		if d.Record == nil {
			return nil, singleIssue("/", CodeUnsupportedType, "nested schema missing", nil)
		}
		return d.Record.JSONSchema()
	default:
		return nil, singleIssue("/", CodeUnsupportedType, "unknown descriptor kind", map[string]string{"kind": d.Kind.String()})
	}
}
