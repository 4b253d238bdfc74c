package yamlrec_test

import (
	"reflect"
	"testing"

	yamlrec "github.com/reoring/yamlrec"
	js "github.com/reoring/yamlrec/jsonschema"
)

func TestJSONSchema_Projection(t *testing.T) {
	tls := yamlrec.NewSchema("TLS").Field("cert", yamlrec.String()).MustBuild()
	s := yamlrec.NewSchema("Server").
		Field("host", yamlrec.String()).Alias("host-name").
		Field("port", yamlrec.Int()).Default(8080).
		Field("mode", yamlrec.String()).Default("dev").Options("dev", "prod").
		Field("weights", yamlrec.MapOf(yamlrec.String(), yamlrec.Float())).
		Field("tags", yamlrec.ListOf(yamlrec.String())).DefaultFactory(func() any { return []any{} }).
		Field("tls", yamlrec.NestedOf(tls)).
		MustBuild()

	out, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Type != "object" {
		t.Fatalf("type = %q", out.Type)
	}
	if !reflect.DeepEqual(out.Required, []string{"host-name", "tls", "weights"}) {
		t.Fatalf("required = %v", out.Required)
	}
	if out.AdditionalProperties != false {
		t.Fatalf("additionalProperties = %v", out.AdditionalProperties)
	}

	host := out.Properties["host-name"]
	if host == nil || host.Type != "string" {
		t.Fatalf("host-name schema = %+v", host)
	}
	port := out.Properties["port"]
	if port == nil || port.Type != "integer" || port.Default != 8080 {
		t.Fatalf("port schema = %+v", port)
	}
	mode := out.Properties["mode"]
	if mode == nil || !reflect.DeepEqual(mode.Enum, []any{"dev", "prod"}) {
		t.Fatalf("mode schema = %+v", mode)
	}
	weights := out.Properties["weights"]
	if weights == nil || weights.Type != "object" {
		t.Fatalf("weights schema = %+v", weights)
	}
	if vs, ok := weights.AdditionalProperties.(*js.Schema); !ok || vs.Type != "number" {
		t.Fatalf("weights additionalProperties = %+v", weights.AdditionalProperties)
	}
	tags := out.Properties["tags"]
	if tags == nil || tags.Type != "array" || tags.Items == nil || tags.Items.Type != "string" {
		t.Fatalf("tags schema = %+v", tags)
	}
	nested := out.Properties["tls"]
	if nested == nil || nested.Type != "object" || nested.Properties["cert"] == nil {
		t.Fatalf("tls schema = %+v", nested)
	}
}

func TestJSONSchema_UnknownStripAllowsAdditional(t *testing.T) {
	s := yamlrec.NewSchema("Loose").
		Field("a", yamlrec.Any()).Default(0).
		UnknownStrip().
		MustBuild()
	out, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.AdditionalProperties != true {
		t.Fatalf("additionalProperties = %v", out.AdditionalProperties)
	}
	if len(out.Required) != 0 {
		t.Fatalf("required = %v", out.Required)
	}
}
