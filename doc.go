package yamlrec

// Package yamlrec constructs typed records from untyped YAML/JSON document
// trees, driven by declarative field schemas:
//
// - A closed, recursive Descriptor set (primitives, any, list, map, nested record)
// - Build-time schema validation (untyped containers and bad map keys are rejected once)
// - A recursive resolver validating and freshly rebuilding every container
// - A construction protocol with aliases, allow-lists, literal and factory defaults
// - A stable error model via Issues (field path, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put tree plumbing under internal/.
// - Place document decoding under source/ and the CLI under cmd/yamlrec.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	server := yamlrec.NewSchema("Server").
//		Field("host", yamlrec.String()).
//		Field("port", yamlrec.Int()).Default(8080).
//		MustBuild()
//
//	inst, err := yamlrec.ParseYAML(ctx, server, data)
//	inst, err = server.Construct(ctx, map[string]any{"host": "localhost"})
