package yamlrec

// Kind enumerates the closed set of value shapes a Descriptor can expect.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindAny
	KindList
	KindMap
	KindNested

	// kindTotal is the number of kinds defined above.
	kindTotal = int(iota)
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindAny:
		return "any"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindNested:
		return "record"
	default:
		return "invalid"
	}
}

// Descriptor is an immutable, tree-shaped description of the value shape a
// field expects. Containers carry fully parameterized element descriptors;
// a container with missing parameters is rejected at schema build time.
//
// Prefer the constructors (Int, ListOf, MapOf, ...) over struct literals.
type Descriptor struct {
	Kind Kind

	// Elem is the element descriptor for KindList.
	Elem *Descriptor
	// Key and Value parameterize KindMap.
	Key   *Descriptor
	Value *Descriptor
	// Record references an already-built schema for KindNested.
	Record *Schema
}

// Int expects a native integer value.
func Int() Descriptor { return Descriptor{Kind: KindInt} }

// Float expects a native float value. Integers are not widened.
func Float() Descriptor { return Descriptor{Kind: KindFloat} }

// String expects a native string value.
func String() Descriptor { return Descriptor{Kind: KindString} }

// Bool expects a native bool value.
func Bool() Descriptor { return Descriptor{Kind: KindBool} }

// Any accepts any value unchanged, without recursion.
func Any() Descriptor { return Descriptor{Kind: KindAny} }

// ListOf expects a sequence whose every element matches elem.
func ListOf(elem Descriptor) Descriptor {
	e := elem
	return Descriptor{Kind: KindList, Elem: &e}
}

// MapOf expects a mapping whose keys match key and values match value.
// The key descriptor must resolve to int, float, string, or Any.
func MapOf(key, value Descriptor) Descriptor {
	k, v := key, value
	return Descriptor{Kind: KindMap, Key: &k, Value: &v}
}

// NestedOf expects a sub-mapping and constructs an instance of s from it.
func NestedOf(s *Schema) Descriptor { return Descriptor{Kind: KindNested, Record: s} }

// String renders the expected shape for error messages, e.g.
// "list[map[string]int]" or "record[Server]".
func (d Descriptor) String() string {
	switch d.Kind {
	case KindList:
		if d.Elem == nil {
			return "list[?]"
		}
		return "list[" + d.Elem.String() + "]"
	case KindMap:
		ks, vs := "?", "?"
		if d.Key != nil {
			ks = d.Key.String()
		}
		if d.Value != nil {
			vs = d.Value.String()
		}
		return "map[" + ks + "]" + vs
	case KindNested:
		if d.Record == nil {
			return "record[?]"
		}
		return "record[" + d.Record.Name() + "]"
	default:
		return d.Kind.String()
	}
}
