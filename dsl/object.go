package dsl

import jsontree "github.com/reoring/jsontree"

// ObjectBuilder wraps a nested Schema as a field validator.
type ObjectBuilder struct {
	schema *jsontree.Schema
}

// Object starts an object validator builder over a nested Schema. Issues from
// nested fields carry prefixed paths such as address.city.
func Object(s *jsontree.Schema) *ObjectBuilder { return &ObjectBuilder{schema: s} }

// Build erases the builder behind the Validator interface.
func (b *ObjectBuilder) Build() jsontree.Validator {
	return objectValidator{schema: b.schema}
}

type objectValidator struct {
	schema *jsontree.Schema
}

func (v objectValidator) Validate(path string, val jsontree.Value) (jsontree.Value, jsontree.Issues) {
	return v.schema.ValidateAt(path, val)
}
