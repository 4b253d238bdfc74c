package yamlrec

import (
	"context"
)

// Arg is one discrete field argument for the keyword-style entry point.
type Arg struct {
	Name  string
	Value any
}

// entry is a unified (external key, raw value) input pair.
type entry struct {
	key   string
	value any
}

// Construct builds an instance from a single input mapping. Passing both a
// mapping and discrete args in the same call is ambiguous and rejected.
// Construction is fail-fast: the first issue aborts the call and no partial
// instance is returned.
func (s *Schema) Construct(ctx context.Context, doc map[string]any, args ...Arg) (*Instance, error) {
	if doc != nil && len(args) > 0 {
		return nil, singleIssue("/", CodeUsageError, "construct from either a mapping or discrete args, not both", map[string]string{"record": s.name})
	}
	if doc != nil {
		return s.constructMap(ctx, doc, 0)
	}
	return s.constructArgs(ctx, args, 0)
}

// ConstructArgs builds an instance from discrete field arguments.
func (s *Schema) ConstructArgs(ctx context.Context, args ...Arg) (*Instance, error) {
	return s.constructArgs(ctx, args, 0)
}

func (s *Schema) constructMap(ctx context.Context, doc map[string]any, depth int) (*Instance, error) {
	entries := make([]entry, 0, len(doc))
	for _, k := range sortedStringKeys(doc) {
		entries = append(entries, entry{key: k, value: doc[k]})
	}
	return s.constructEntries(ctx, entries, depth)
}

func (s *Schema) constructArgs(ctx context.Context, args []Arg, depth int) (*Instance, error) {
	entries := make([]entry, 0, len(args))
	for _, a := range args {
		for _, prev := range entries {
			if prev.key == a.Name {
				return nil, singleIssue("/"+a.Name, CodeUsageError, "duplicate arg", map[string]string{"record": s.name})
			}
		}
		entries = append(entries, entry{key: a.Name, value: a.Value})
	}
	return s.constructEntries(ctx, entries, depth)
}

// constructEntries runs the construction protocol against one input: alias
// translation, unknown-key policy, raw-kind gate, allow-list enforcement,
// type resolution, then the required check and default resolution. Each
// field ends the call either seen or defaulted; no field regresses.
func (s *Schema) constructEntries(ctx context.Context, entries []entry, depth int) (*Instance, error) {
	if depth > maxResolveDepth {
		return nil, singleIssue("/", CodeMaxDepth, "record nesting too deep", nil)
	}

	seen := make(map[string]bool, len(s.fields))
	values := make(map[string]any, len(s.fields))

	for _, e := range entries {
		internal, ok := s.alias[e.key]
		if !ok {
			if s.unknown == UnknownStrip {
				continue
			}
			return nil, singleIssue("/"+e.key, CodeUnknownKey, "no such field on "+s.name, map[string]string{
				"key":   e.key,
				"value": valueText(e.value),
			})
		}
		f := s.fields[s.index[internal]]
		seen[internal] = true

		if nativeKindOf(e.value) == KindInvalid {
			return nil, singleIssue("/"+e.key, CodeUnsupportedType, "value kind not accepted from documents", map[string]string{
				"got":   typeName(e.value),
				"value": valueText(e.value),
			})
		}
		// Allow-list membership is checked on the raw value, before type
		// resolution.
		if len(f.Options) > 0 && !containsValue(f.Options, e.value) {
			return nil, singleIssue("/"+e.key, CodeNotAnOption, "choose one of the declared options", map[string]string{
				"value": valueText(e.value),
				"got":   typeName(e.value),
			})
		}
		rv, iss := resolveValue(ctx, "/"+e.key, e.value, f.Type, depth)
		if len(iss) > 0 {
			return nil, iss
		}
		values[internal] = rv
	}

	for _, f := range s.fields {
		if !f.Required() || seen[f.Name] {
			continue
		}
		if s.missing == MissingAllow {
			continue
		}
		return nil, singleIssue("/"+f.Name, CodeRequired, "required field missing on "+s.name, map[string]string{
			"record": s.name,
			"field":  f.Name,
		})
	}

	for _, f := range s.fields {
		if f.Required() || seen[f.Name] {
			continue
		}
		if f.Factory == nil {
			// Literal defaults were validated at build time and are scalars,
			// so storing them directly never aliases mutable state.
			values[f.Name] = f.Default
			continue
		}
		dv := f.Factory()
		rv, iss := resolveValue(ctx, "/"+f.Name, dv, f.Type, depth)
		if len(iss) > 0 {
			return nil, iss
		}
		values[f.Name] = rv
	}

	return &Instance{schema: s, values: values}, nil
}
