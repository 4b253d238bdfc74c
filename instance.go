package yamlrec

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Instance is one constructed record. It owns its field values exclusively:
// containers and nested records are freshly built during resolution, never
// aliased from the input mapping.
type Instance struct {
	schema *Schema
	values map[string]any
}

// Schema returns the record type this instance was constructed from.
func (in *Instance) Schema() *Schema { return in.schema }

// Get returns a field value by internal name. The second result is false
// when the field was left unset (missing-field tolerance).
func (in *Instance) Get(name string) (any, bool) {
	v, ok := in.values[name]
	return v, ok
}

// Has reports whether the field is set on this instance.
func (in *Instance) Has(name string) bool {
	_, ok := in.values[name]
	return ok
}

// AsMap flattens the instance into a plain mapping of field name to value.
// Only top-level fields are flattened; nested instances are kept as-is.
func (in *Instance) AsMap() map[string]any {
	out := make(map[string]any, len(in.values))
	for _, f := range in.schema.fields {
		if v, ok := in.values[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out
}

// String renders a debug form, e.g. Server(host=localhost, port=8080),
// listing set fields in declaration order.
func (in *Instance) String() string {
	b := &strings.Builder{}
	b.WriteString(in.schema.name)
	b.WriteByte('(')
	first := true
	for _, f := range in.schema.fields {
		v, ok := in.values[f.Name]
		if !ok {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(b, "%s=%v", f.Name, v)
	}
	b.WriteByte(')')
	return b.String()
}

// Dump renders a verbose multi-line view of the instance values, useful in
// test failures and debugging sessions.
func (in *Instance) Dump() string {
	return in.schema.name + " " + spew.Sdump(in.AsMap())
}
