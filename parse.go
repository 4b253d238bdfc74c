package yamlrec

import (
	"context"

	"github.com/reoring/yamlrec/source"
)

// ParseYAML decodes a YAML document and constructs an instance of s from it.
// The document root must be a mapping.
func ParseYAML(ctx context.Context, s *Schema, data []byte) (*Instance, error) {
	v, err := source.YAML(data)
	if err != nil {
		return nil, issuesFromErr("/", err)
	}
	return constructRoot(ctx, s, v)
}

// ParseJSON decodes a JSON document and constructs an instance of s from it.
// The document root must be an object.
func ParseJSON(ctx context.Context, s *Schema, data []byte) (*Instance, error) {
	v, err := source.JSON(data)
	if err != nil {
		return nil, issuesFromErr("/", err)
	}
	return constructRoot(ctx, s, v)
}

func constructRoot(ctx context.Context, s *Schema, v any) (*Instance, error) {
	m, ok := asStringMap(v)
	if !ok {
		return nil, singleIssue("/", CodeInvalidType, "document root must be a mapping", map[string]string{
			"got": typeName(v),
		})
	}
	return s.Construct(ctx, m)
}
