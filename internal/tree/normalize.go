// Package tree canonicalizes decoded YAML/JSON values into the untyped tree
// shape the engine consumes: string/int/float64/bool scalars, []any
// sequences, and map[string]any mappings (map[any]any only when a document
// really uses non-string keys).
package tree

import (
	"encoding/json"
	"math"
)

// maxDepth bounds normalization recursion for pathological documents.
const maxDepth = 256

// Normalize canonicalizes a decoded document value. Integer-valued numbers
// become int, other numbers float64, and map[any]any collapses to
// map[string]any whenever every key is a string.
func Normalize(v any) any {
	return normalize(v, 0)
}

func normalize(v any, depth int) any {
	if depth > maxDepth {
		return v
	}
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalize(vv, depth+1)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		allString := true
		for k, vv := range t {
			nk := normalize(k, depth+1)
			if _, ok := nk.(string); !ok {
				allString = false
			}
			out[nk] = normalize(vv, depth+1)
		}
		if !allString {
			return out
		}
		sm := make(map[string]any, len(out))
		for k, vv := range out {
			sm[k.(string)] = vv
		}
		return sm
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = normalize(t[i], depth+1)
		}
		return out
	default:
		return normalizeScalar(v)
	}
}

func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint:
		return fromUint64(uint64(n))
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return fromUint64(n)
	case float32:
		return float64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	default:
		return v
	}
}

func fromUint64(n uint64) any {
	if n <= math.MaxInt {
		return int(n)
	}
	return float64(n)
}

// StringKeyed projects a map[any]any onto string keys. It reports false when
// any key is not a string.
func StringKeyed(m map[any]any) (map[string]any, bool) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		ks, ok := k.(string)
		if !ok {
			return nil, false
		}
		out[ks] = v
	}
	return out, true
}
