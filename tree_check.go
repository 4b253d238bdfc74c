package yamlrec

// CheckTree verifies that a decoded document conforms to the untyped tree
// shape the engine accepts: string/int/float/bool scalars, sequences, and
// mappings with int, float, or string keys. It reports every offending node,
// unlike construction which is fail-fast.
func CheckTree(v any) Issues {
	return checkTree("/", v, 0)
}

func checkTree(path string, v any, depth int) Issues {
	if depth > maxResolveDepth {
		return singleIssue(path, CodeMaxDepth, "value tree too deep", nil)
	}
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string, bool, int, int64, float64:
		return nil
	case []any:
		var iss Issues
		for i, el := range t {
			iss = AppendIssues(iss, checkTree(path+"/"+valueText(i), el, depth+1)...)
		}
		if len(iss) > 0 {
			return iss
		}
		return nil
	case map[string]any:
		var iss Issues
		for _, k := range sortedStringKeys(t) {
			iss = AppendIssues(iss, checkTree(path+"/"+k, t[k], depth+1)...)
		}
		if len(iss) > 0 {
			return iss
		}
		return nil
	case map[any]any:
		var iss Issues
		for _, k := range sortedAnyKeys(t) {
			kp := path + "/" + valueText(k)
			switch nativeKindOf(k) {
			case KindString, KindInt, KindFloat:
			default:
				iss = AppendIssues(iss, singleIssue(kp, CodeInvalidMapKey, "map keys must be int, float, or string", map[string]string{
					"got": typeName(k),
				})...)
				continue
			}
			iss = AppendIssues(iss, checkTree(kp, t[k], depth+1)...)
		}
		if len(iss) > 0 {
			return iss
		}
		return nil
	default:
		return singleIssue(path, CodeUnsupportedType, "value kind not accepted from documents", map[string]string{
			"got": typeName(v),
		})
	}
}
