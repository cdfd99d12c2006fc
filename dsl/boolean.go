package dsl

import jsontree "github.com/reoring/jsontree"

type boolStep struct {
	rule      string
	transform func(bool) bool
	check     func(bool) *jsontree.Issue
}

// BooleanBuilder accumulates steps for a boolean validator.
type BooleanBuilder struct {
	steps []boolStep
}

// Boolean starts a boolean validator builder.
func Boolean() *BooleanBuilder { return &BooleanBuilder{} }

// Truthy requires the literal true.
func (b *BooleanBuilder) Truthy() *BooleanBuilder { return b.expect("truthy", true) }

// Falsy requires the literal false.
func (b *BooleanBuilder) Falsy() *BooleanBuilder { return b.expect("falsy", false) }

func (b *BooleanBuilder) expect(rule string, want bool) *BooleanBuilder {
	b.steps = append(b.steps, boolStep{rule: rule, check: func(v bool) *jsontree.Issue {
		if v != want {
			iss := violation("", jsontree.CodeUnexpectedValue, rule, want, v)
			return &iss
		}
		return nil
	}})
	return b
}

// Map applies a custom transform.
func (b *BooleanBuilder) Map(fn func(bool) bool) *BooleanBuilder {
	if fn == nil {
		return b
	}
	b.steps = append(b.steps, boolStep{rule: "map", transform: fn})
	return b
}

// Build freezes the step list into an immutable Validator.
func (b *BooleanBuilder) Build() jsontree.Validator {
	steps := make([]boolStep, len(b.steps))
	copy(steps, b.steps)
	return boolValidator{steps: steps}
}

type boolValidator struct {
	steps []boolStep
}

func (v boolValidator) Validate(path string, val jsontree.Value) (jsontree.Value, jsontree.Issues) {
	b, ok := val.AsBool()
	if !ok {
		return val, typeMismatch(path, "boolean", val)
	}
	for _, st := range v.steps {
		if st.transform != nil {
			b = st.transform(b)
			continue
		}
		if iss := st.check(b); iss != nil {
			iss.Path = path
			return jsontree.Bool(b), jsontree.Issues{*iss}
		}
	}
	return jsontree.Bool(b), nil
}
