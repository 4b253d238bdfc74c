package yamlrec_test

import (
	"testing"

	yamlrec "github.com/reoring/yamlrec"
)

func firstCode(t *testing.T, err error) string {
	t.Helper()
	iss, ok := yamlrec.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %v", err)
	}
	return iss[0].Code
}

func TestBuild_RejectsUntypedContainers(t *testing.T) {
	// Hand-built descriptors can model the unparameterized shapes the
	// constructors make impossible.
	_, err := yamlrec.NewSchema("Bad").
		Field("xs", yamlrec.Descriptor{Kind: yamlrec.KindList}).
		Build()
	if got := firstCode(t, err); got != yamlrec.CodeUntypedContainer {
		t.Fatalf("expected untyped_container, got %s (%v)", got, err)
	}

	_, err = yamlrec.NewSchema("Bad").
		Field("m", yamlrec.Descriptor{Kind: yamlrec.KindMap}).
		Build()
	if got := firstCode(t, err); got != yamlrec.CodeUntypedContainer {
		t.Fatalf("expected untyped_container, got %s (%v)", got, err)
	}

	// Nesting does not hide the hole.
	inner := yamlrec.Descriptor{Kind: yamlrec.KindList}
	_, err = yamlrec.NewSchema("Bad").
		Field("xs", yamlrec.ListOf(inner)).
		Build()
	if got := firstCode(t, err); got != yamlrec.CodeUntypedContainer {
		t.Fatalf("expected untyped_container, got %s (%v)", got, err)
	}
}

func TestBuild_RejectsBadMapKeys(t *testing.T) {
	cases := []yamlrec.Descriptor{
		yamlrec.MapOf(yamlrec.Bool(), yamlrec.Int()),
		yamlrec.MapOf(yamlrec.ListOf(yamlrec.Int()), yamlrec.Int()),
		yamlrec.MapOf(yamlrec.MapOf(yamlrec.String(), yamlrec.Int()), yamlrec.Int()),
	}
	for _, d := range cases {
		_, err := yamlrec.NewSchema("Bad").Field("m", d).Build()
		if got := firstCode(t, err); got != yamlrec.CodeInvalidMapKey {
			t.Fatalf("descriptor %s: expected invalid_map_key, got %s", d, got)
		}
	}

	// int, float, string, and Any keys are fine.
	ok := []yamlrec.Descriptor{
		yamlrec.MapOf(yamlrec.Int(), yamlrec.Int()),
		yamlrec.MapOf(yamlrec.Float(), yamlrec.Int()),
		yamlrec.MapOf(yamlrec.String(), yamlrec.ListOf(yamlrec.Bool())),
		yamlrec.MapOf(yamlrec.Any(), yamlrec.Any()),
	}
	for _, d := range ok {
		if _, err := yamlrec.NewSchema("OK").Field("m", d).Build(); err != nil {
			t.Fatalf("descriptor %s: unexpected err %v", d, err)
		}
	}
}

func TestBuild_LiteralDefaultChecked(t *testing.T) {
	// wrong type
	_, err := yamlrec.NewSchema("Srv").
		Field("port", yamlrec.Int()).Default("8080").
		Build()
	if got := firstCode(t, err); got != yamlrec.CodeInvalidDefault {
		t.Fatalf("expected invalid_default, got %s (%v)", got, err)
	}

	// container literals need a factory
	_, err = yamlrec.NewSchema("Srv").
		Field("tags", yamlrec.ListOf(yamlrec.String())).Default([]any{"a"}).
		Build()
	if got := firstCode(t, err); got != yamlrec.CodeInvalidDefault {
		t.Fatalf("expected invalid_default for container literal, got %s (%v)", got, err)
	}

	// factory defaults are not invoked at build time
	s, err := yamlrec.NewSchema("Srv").
		Field("tags", yamlrec.ListOf(yamlrec.String())).DefaultFactory(func() any {
		panic("factory must not run during registration")
	}).
		Build()
	if err != nil || s == nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestBuild_OptionsChecked(t *testing.T) {
	// options must match the field type
	_, err := yamlrec.NewSchema("Srv").
		Field("mode", yamlrec.String()).Options("dev", 1).
		Build()
	if got := firstCode(t, err); got != yamlrec.CodeInvalidDefault {
		t.Fatalf("expected invalid_default for bad option, got %s (%v)", got, err)
	}

	// a literal default must be one of the options
	_, err = yamlrec.NewSchema("Srv").
		Field("mode", yamlrec.String()).Default("test").Options("dev", "prod").
		Build()
	if got := firstCode(t, err); got != yamlrec.CodeDefaultNotInOptions {
		t.Fatalf("expected default_not_in_options, got %s (%v)", got, err)
	}

	if _, err := yamlrec.NewSchema("Srv").
		Field("mode", yamlrec.String()).Default("dev").Options("dev", "prod").
		Build(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestBuild_DuplicateFieldRejected(t *testing.T) {
	_, err := yamlrec.NewSchema("Srv").
		Field("host", yamlrec.String()).
		Field("host", yamlrec.Int()).
		Build()
	if got := firstCode(t, err); got != yamlrec.CodeUsageError {
		t.Fatalf("expected usage_error, got %s (%v)", got, err)
	}
}

func TestMustBuild_PanicsOnRegistrationError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic from MustBuild")
		}
	}()
	yamlrec.NewSchema("Bad").
		Field("m", yamlrec.MapOf(yamlrec.Bool(), yamlrec.Int())).
		MustBuild()
}

func TestDescriptor_String(t *testing.T) {
	nested := yamlrec.NewSchema("Server").Field("host", yamlrec.String()).MustBuild()
	cases := map[string]yamlrec.Descriptor{
		"int":                     yamlrec.Int(),
		"list[int]":               yamlrec.ListOf(yamlrec.Int()),
		"map[string]list[float]":  yamlrec.MapOf(yamlrec.String(), yamlrec.ListOf(yamlrec.Float())),
		"record[Server]":          yamlrec.NestedOf(nested),
		"list[map[any]any]":       yamlrec.ListOf(yamlrec.MapOf(yamlrec.Any(), yamlrec.Any())),
	}
	for want, d := range cases {
		if got := d.String(); got != want {
			t.Fatalf("descriptor renders %q, want %q", got, want)
		}
	}
}
