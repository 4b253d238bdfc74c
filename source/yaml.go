// Package source turns raw YAML/JSON documents into the untyped tree the
// engine consumes. The engine itself never sees document text.
package source

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/reoring/yamlrec/internal/tree"
)

// YAML decodes a single YAML document into the canonical untyped tree.
func YAML(data []byte) (any, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return tree.Normalize(node), nil
}

// YAMLDocuments decodes a multi-document YAML stream into one tree per
// document.
func YAMLDocuments(data []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []any
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		out = append(out, tree.Normalize(node))
	}
	return out, nil
}
