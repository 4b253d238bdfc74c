package yamlrec

// maxResolveDepth bounds descriptor recursion. Descriptors form finite trees
// by construction; the guard protects against hand-built pathological inputs.
const maxResolveDepth = 64

// checkDescriptor validates one field's descriptor at schema build time.
// It rejects shapes the resolver cannot safely check: unparameterized
// containers, disallowed map-key kinds, and kinds outside the closed set.
func checkDescriptor(path string, d Descriptor) Issues {
	return checkDescriptorDepth(path, d, 0)
}

func checkDescriptorDepth(path string, d Descriptor, depth int) Issues {
	if depth > maxResolveDepth {
		return singleIssue(path, CodeMaxDepth, "descriptor tree too deep", nil)
	}
	switch d.Kind {
	case KindInt, KindFloat, KindString, KindBool, KindAny:
		return nil
	case KindList:
		if d.Elem == nil {
			return singleIssue(path, CodeUntypedContainer, "list element type missing", nil)
		}
		return checkDescriptorDepth(path, *d.Elem, depth+1)
	case KindMap:
		if d.Key == nil || d.Value == nil {
			return singleIssue(path, CodeUntypedContainer, "map key/value types missing", nil)
		}
		switch d.Key.Kind {
		case KindInt, KindFloat, KindString, KindAny:
			// allowed key kinds
		default:
			return singleIssue(path, CodeInvalidMapKey, "map keys must be int, float, or string", map[string]string{"key": d.Key.String()})
		}
		return checkDescriptorDepth(path, *d.Value, depth+1)
	case KindNested:
		// The referenced schema has already passed its own Build.
		if d.Record == nil {
			return singleIssue(path, CodeUnsupportedType, "nested schema missing", nil)
		}
		return nil
	default:
		return singleIssue(path, CodeUnsupportedType, "unknown descriptor kind", map[string]string{"kind": d.Kind.String()})
	}
}
