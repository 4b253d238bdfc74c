package yamlrec

import (
	"context"
	"reflect"
)

// UnknownPolicy decides what happens to input keys no field claims.
type UnknownPolicy int

const (
	// UnknownStrict fails construction on unmapped input keys.
	UnknownStrict UnknownPolicy = iota
	// UnknownStrip silently drops unmapped input keys.
	UnknownStrip
)

// MissingPolicy decides what happens when a required field is absent.
type MissingPolicy int

const (
	// MissingStrict fails construction when a required field is absent.
	MissingStrict MissingPolicy = iota
	// MissingAllow leaves absent required fields unset on the instance.
	MissingAllow
)

// FieldSpec is one field's declaration: type, default, alias, allow-list.
// A field with neither Default nor Factory is required.
type FieldSpec struct {
	Name string
	Type Descriptor
	// Alias is the external input key accepted for this field. It defaults
	// to Name; an explicit alias replaces the name, which then no longer
	// matches input keys.
	Alias string
	// Default is a literal default value. Literal defaults are limited to
	// scalars; use Factory for container defaults.
	Default any
	// Factory produces a default lazily at construction time. The produced
	// value is checked against Type only when invoked.
	Factory func() any
	// Options restricts the raw input to the listed values, compared by
	// exact equality before type resolution.
	Options []any
}

// Required reports whether the field has no default.
func (f FieldSpec) Required() bool { return f.Default == nil && f.Factory == nil }

// Schema is an immutable record type: ordered field specifications plus the
// alias and options tables derived from them. Built once via NewSchema;
// safe for concurrent construction calls afterwards.
type Schema struct {
	name    string
	fields  []FieldSpec
	index   map[string]int    // internal name -> fields index
	alias   map[string]string // external input key -> internal name
	unknown UnknownPolicy
	missing MissingPolicy
}

// Name returns the record type name.
func (s *Schema) Name() string { return s.name }

// Fields returns the field specifications in declaration order.
func (s *Schema) Fields() []FieldSpec { return append([]FieldSpec(nil), s.fields...) }

// Field looks up a field specification by internal name.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// Builder assembles a Schema. Obtain one via NewSchema.
type Builder struct {
	name    string
	fields  []FieldSpec
	unknown UnknownPolicy
	missing MissingPolicy
}

// fieldStep scopes chained options (Default, Alias, Options) to the field
// registered last.
type fieldStep struct {
	b   *Builder
	idx int
}

// NewSchema creates a schema builder with strict defaults: unknown input
// keys and missing required fields both fail construction.
func NewSchema(name string) *Builder {
	return &Builder{name: name}
}

// Field declares a field with its type descriptor. With no chained Default
// or DefaultFactory the field is required.
func (b *Builder) Field(name string, d Descriptor) *fieldStep {
	b.fields = append(b.fields, FieldSpec{Name: name, Type: d, Alias: name})
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

// Default sets a literal default, making the field optional.
func (f *fieldStep) Default(v any) *fieldStep {
	f.b.fields[f.idx].Default = v
	return f
}

// DefaultFactory sets a lazy default, making the field optional. The factory
// is never invoked at build time; its produced value is validated per call.
func (f *fieldStep) DefaultFactory(fn func() any) *fieldStep {
	f.b.fields[f.idx].Factory = fn
	return f
}

// Alias sets the external input key for the field, replacing its own name.
func (f *fieldStep) Alias(external string) *fieldStep {
	f.b.fields[f.idx].Alias = external
	return f
}

// Options restricts the raw input for the field to the given values.
func (f *fieldStep) Options(vs ...any) *fieldStep {
	f.b.fields[f.idx].Options = append([]any(nil), vs...)
	return f
}

func (f *fieldStep) Field(name string, d Descriptor) *fieldStep { return f.b.Field(name, d) }
func (f *fieldStep) UnknownStrict() *Builder                    { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownStrip() *Builder                     { return f.b.UnknownStrip() }
func (f *fieldStep) RequireAll() *Builder                       { return f.b.RequireAll() }
func (f *fieldStep) AllowMissing() *Builder                     { return f.b.AllowMissing() }
func (f *fieldStep) Build() (*Schema, error)                    { return f.b.Build() }
func (f *fieldStep) MustBuild() *Schema                         { return f.b.MustBuild() }

// UnknownStrict makes unmapped input keys fail construction (default).
func (b *Builder) UnknownStrict() *Builder {
	b.unknown = UnknownStrict
	return b
}

// UnknownStrip makes unmapped input keys silently dropped.
func (b *Builder) UnknownStrip() *Builder {
	b.unknown = UnknownStrip
	return b
}

// RequireAll makes absent required fields fail construction (default).
func (b *Builder) RequireAll() *Builder {
	b.missing = MissingStrict
	return b
}

// AllowMissing leaves absent required fields unset instead of failing.
func (b *Builder) AllowMissing() *Builder {
	b.missing = MissingAllow
	return b
}

// Build validates every field declaration and returns the immutable Schema.
// A rejection here is fatal to defining the record type, never a per-call
// construction error.
func (b *Builder) Build() (*Schema, error) {
	s := &Schema{
		name:    b.name,
		fields:  append([]FieldSpec(nil), b.fields...),
		index:   make(map[string]int, len(b.fields)),
		alias:   make(map[string]string, len(b.fields)),
		unknown: b.unknown,
		missing: b.missing,
	}
	ctx := context.Background()
	for i, f := range s.fields {
		path := "/" + f.Name
		if _, dup := s.index[f.Name]; dup {
			return nil, singleIssue(path, CodeUsageError, "duplicate field name", nil)
		}
		s.index[f.Name] = i
		s.alias[f.Alias] = f.Name

		if iss := checkDescriptor(path, f.Type); len(iss) > 0 {
			return nil, iss
		}
		if iss := checkFieldDefault(ctx, path, f); len(iss) > 0 {
			return nil, iss
		}
		if iss := checkFieldOptions(ctx, path, f); len(iss) > 0 {
			return nil, iss
		}
	}
	return s, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// checkFieldDefault validates a literal default at build time. Factories are
// deliberately not invoked here; their produced values are checked at
// construction time instead.
func checkFieldDefault(ctx context.Context, path string, f FieldSpec) Issues {
	if f.Default == nil {
		return nil
	}
	if f.Factory != nil {
		return singleIssue(path, CodeInvalidDefault, "declare either a literal default or a factory, not both", nil)
	}
	switch nativeKindOf(f.Default) {
	case KindString, KindInt, KindFloat, KindBool:
		// literal defaults are limited to scalars
	default:
		return singleIssue(path, CodeInvalidDefault, "literal defaults must be scalars; use DefaultFactory for containers", map[string]string{
			"got": typeName(f.Default),
		})
	}
	if _, iss := resolveValue(ctx, path, f.Default, f.Type, 0); len(iss) > 0 {
		return AppendIssues(singleIssue(path, CodeInvalidDefault, "default does not match the field type", map[string]string{
			"value":    valueText(f.Default),
			"expected": f.Type.String(),
		}), iss...)
	}
	return nil
}

// checkFieldOptions validates the allow-list at build time: every option
// must match the field type, and a literal default must be a member.
func checkFieldOptions(ctx context.Context, path string, f FieldSpec) Issues {
	if len(f.Options) == 0 {
		return nil
	}
	for _, opt := range f.Options {
		if _, iss := resolveValue(ctx, path, opt, f.Type, 0); len(iss) > 0 {
			return AppendIssues(singleIssue(path, CodeInvalidDefault, "option does not match the field type", map[string]string{
				"value":    valueText(opt),
				"expected": f.Type.String(),
			}), iss...)
		}
	}
	if f.Default != nil && !containsValue(f.Options, f.Default) {
		return singleIssue(path, CodeDefaultNotInOptions, "default must be one of the declared options", map[string]string{
			"value": valueText(f.Default),
		})
	}
	return nil
}

// containsValue reports allow-list membership using exact equality on the
// raw representation, before any type resolution.
func containsValue(opts []any, v any) bool {
	for _, o := range opts {
		if reflect.DeepEqual(o, v) {
			return true
		}
	}
	return false
}
