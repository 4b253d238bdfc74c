package source

import (
	"bytes"

	j "github.com/goccy/go-json"

	"github.com/reoring/yamlrec/internal/tree"
)

// JSON decodes a JSON document into the canonical untyped tree. Numbers are
// decoded via json.Number and canonicalized to int or float64.
func JSON(data []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return tree.Normalize(v), nil
}
