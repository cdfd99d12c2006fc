package jsontree

// Package jsontree provides:
//
// - Parsing of JSON text into an immutable Value tree with positioned errors
// - Canonical compact serialization (Parse(Serialize(v)) equals v at value level)
// - Schema-based validation and transformation via chainable dsl builders
// - A stable error model via Issues (field path, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; the lexer lives under internal/.
// - Place builders under dsl/, YAML schema loading under schemadef/, and the
//   CLI under cmd/jsontree.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := jsontree.Parse(data)
//	name, _ := v.MustGet("name").AsString()
//
//	s := jsontree.NewSchema(
//		jsontree.F("name", dsl.String().Trim().MinLength(3).Build()),
//		jsontree.F("age", dsl.Number().Gt(18).Lt(100).Build()),
//	)
//	out, err := s.Validate(v)
