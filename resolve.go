package yamlrec

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/reoring/yamlrec/internal/tree"
)

// nativeKindOf classifies a decoded document value into the closed kind set.
// KindInvalid marks values the engine does not accept from a document tree.
func nativeKindOf(v any) Kind {
	switch v.(type) {
	case string:
		return KindString
	case bool:
		return KindBool
	case int, int64:
		return KindInt
	case float64:
		return KindFloat
	case []any:
		return KindList
	case map[string]any, map[any]any:
		return KindMap
	default:
		return KindInvalid
	}
}

func typeName(v any) string { return fmt.Sprintf("%T", v) }

func valueText(v any) string { return fmt.Sprint(v) }

func wrongType(path string, v any, d Descriptor) Issues {
	return singleIssue(path, CodeInvalidType, "expected "+d.String(), map[string]string{
		"expected": d.String(),
		"got":      typeName(v),
		"value":    valueText(v),
	})
}

// resolveValue validates and coerces one value against a descriptor,
// recursing through containers and nested records. It is the single
// recursive core of the engine; dispatch order matters because the rules
// are not mutually exclusive for nil and Any.
func resolveValue(ctx context.Context, path string, v any, d Descriptor, depth int) (any, Issues) {
	if depth > maxResolveDepth {
		return nil, singleIssue(path, CodeMaxDepth, "value tree too deep", nil)
	}

	// Absent markers pass through; whether nil is acceptable for a field is
	// the construction layer's call.
	if v == nil {
		return nil, nil
	}

	switch d.Kind {
	case KindAny:
		return v, nil

	case KindInt:
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return n, nil
		}
		return nil, wrongType(path, v, d)

	case KindFloat:
		// No implicit widening: an int is never accepted where a float is
		// expected.
		if f, ok := v.(float64); ok {
			return f, nil
		}
		return nil, wrongType(path, v, d)

	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return nil, wrongType(path, v, d)

	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return nil, wrongType(path, v, d)

	case KindNested:
		m, ok := asStringMap(v)
		if !ok {
			return nil, wrongType(path, v, d)
		}
		inst, err := d.Record.constructMap(ctx, m, depth+1)
		if err != nil {
			return nil, rebaseIssues(path, issuesFromErr(path, err))
		}
		return inst, nil

	case KindList:
		src, ok := v.([]any)
		if !ok {
			return nil, wrongType(path, v, d)
		}
		out := make([]any, len(src))
		for i, el := range src {
			rv, iss := resolveValue(ctx, path+"/"+strconv.Itoa(i), el, *d.Elem, depth+1)
			if len(iss) > 0 {
				return nil, iss
			}
			out[i] = rv
		}
		return out, nil

	case KindMap:
		switch src := v.(type) {
		case map[string]any:
			out := make(map[string]any, len(src))
			for _, k := range sortedStringKeys(src) {
				if iss := resolveMapEntry(ctx, path, k, src[k], d, depth, func(rv any) { out[k] = rv }); len(iss) > 0 {
					return nil, iss
				}
			}
			return out, nil
		case map[any]any:
			out := make(map[any]any, len(src))
			for _, k := range sortedAnyKeys(src) {
				if iss := resolveMapEntry(ctx, path, k, src[k], d, depth, func(rv any) { out[k] = rv }); len(iss) > 0 {
					return nil, iss
				}
			}
			return out, nil
		}
		return nil, wrongType(path, v, d)
	}

	return nil, wrongType(path, v, d)
}

// resolveMapEntry validates one map entry: the key's native kind must be one
// of the restricted key kinds, the key must resolve against the key
// descriptor (validation only; the original key is retained), and the value
// must resolve against the value descriptor.
func resolveMapEntry(ctx context.Context, path string, k, v any, d Descriptor, depth int, store func(any)) Issues {
	kp := path + "/" + valueText(k)
	switch nativeKindOf(k) {
	case KindString, KindInt, KindFloat:
		// allowed key kinds
	default:
		return singleIssue(kp, CodeInvalidMapKey, "map keys must be int, float, or string", map[string]string{
			"got":   typeName(k),
			"value": valueText(k),
		})
	}
	if _, iss := resolveValue(ctx, kp, k, *d.Key, depth+1); len(iss) > 0 {
		return iss
	}
	rv, iss := resolveValue(ctx, kp, v, *d.Value, depth+1)
	if len(iss) > 0 {
		return iss
	}
	store(rv)
	return nil
}

// asStringMap accepts the mapping flavors a YAML/JSON tree can produce and
// projects them onto string keys for record construction.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		return tree.StringKeyed(m)
	default:
		return nil, false
	}
}

// sorted key iteration keeps error selection deterministic; Go map order is
// otherwise unspecified.
func sortedStringKeys(m map[string]any) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

func sortedAnyKeys(m map[any]any) []any {
	ks := make([]any, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Slice(ks, func(i, j int) bool { return valueText(ks[i]) < valueText(ks[j]) })
	return ks
}
