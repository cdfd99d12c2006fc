package dsl

import jsontree "github.com/reoring/jsontree"

// NilBuilder builds a validator that requires the JSON null literal.
type NilBuilder struct{}

// Nil starts a null validator builder.
func Nil() *NilBuilder { return &NilBuilder{} }

// Build erases the builder behind the Validator interface.
func (b *NilBuilder) Build() jsontree.Validator { return nullValidator{} }

type nullValidator struct{}

func (nullValidator) Validate(path string, val jsontree.Value) (jsontree.Value, jsontree.Issues) {
	if !val.IsNull() {
		return val, typeMismatch(path, "null", val)
	}
	return val, nil
}
