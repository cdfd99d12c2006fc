package dsl

import (
	"math"

	jsontree "github.com/reoring/jsontree"
)

type numberStep struct {
	rule      string
	transform func(float64) float64
	check     func(float64) *jsontree.Issue
}

// NumberBuilder accumulates steps for a number validator. JSON numbers are
// uniformly float64 in the value model.
type NumberBuilder struct {
	steps []numberStep
}

// Number starts a number validator builder.
func Number() *NumberBuilder { return &NumberBuilder{} }

// Gt requires the value to be strictly greater than bound.
func (b *NumberBuilder) Gt(bound float64) *NumberBuilder {
	b.steps = append(b.steps, numberStep{rule: "gt", check: func(n float64) *jsontree.Issue {
		if !(n > bound) {
			iss := violation("", jsontree.CodeTooSmall, "gt", bound, n)
			return &iss
		}
		return nil
	}})
	return b
}

// Lt requires the value to be strictly less than bound.
func (b *NumberBuilder) Lt(bound float64) *NumberBuilder {
	b.steps = append(b.steps, numberStep{rule: "lt", check: func(n float64) *jsontree.Issue {
		if !(n < bound) {
			iss := violation("", jsontree.CodeTooBig, "lt", bound, n)
			return &iss
		}
		return nil
	}})
	return b
}

// Minimum requires the value to be at least bound (inclusive).
func (b *NumberBuilder) Minimum(bound float64) *NumberBuilder {
	b.steps = append(b.steps, numberStep{rule: "minimum", check: func(n float64) *jsontree.Issue {
		if n < bound {
			iss := violation("", jsontree.CodeTooSmall, "minimum", bound, n)
			return &iss
		}
		return nil
	}})
	return b
}

// Maximum requires the value to be at most bound (inclusive).
func (b *NumberBuilder) Maximum(bound float64) *NumberBuilder {
	b.steps = append(b.steps, numberStep{rule: "maximum", check: func(n float64) *jsontree.Issue {
		if n > bound {
			iss := violation("", jsontree.CodeTooBig, "maximum", bound, n)
			return &iss
		}
		return nil
	}})
	return b
}

// MultipleOf requires the value to be an exact multiple of m.
func (b *NumberBuilder) MultipleOf(m float64) *NumberBuilder {
	b.steps = append(b.steps, numberStep{rule: "multiple_of", check: func(n float64) *jsontree.Issue {
		if m == 0 || math.Mod(n, m) != 0 {
			iss := violation("", jsontree.CodeNotMultiple, "multiple_of", m, n)
			return &iss
		}
		return nil
	}})
	return b
}

// Integer requires the value to have no fractional part.
func (b *NumberBuilder) Integer() *NumberBuilder {
	b.steps = append(b.steps, numberStep{rule: "integer", check: func(n float64) *jsontree.Issue {
		if math.Trunc(n) != n {
			iss := violation("", jsontree.CodeNotInteger, "integer", nil, n)
			return &iss
		}
		return nil
	}})
	return b
}

// Floor rounds the value down before later steps see it.
func (b *NumberBuilder) Floor() *NumberBuilder {
	b.steps = append(b.steps, numberStep{rule: "floor", transform: math.Floor})
	return b
}

// Ceil rounds the value up.
func (b *NumberBuilder) Ceil() *NumberBuilder {
	b.steps = append(b.steps, numberStep{rule: "ceil", transform: math.Ceil})
	return b
}

// Round rounds the value to the nearest integer.
func (b *NumberBuilder) Round() *NumberBuilder {
	b.steps = append(b.steps, numberStep{rule: "round", transform: math.Round})
	return b
}

// Map applies a custom transform.
func (b *NumberBuilder) Map(fn func(float64) float64) *NumberBuilder {
	if fn == nil {
		return b
	}
	b.steps = append(b.steps, numberStep{rule: "map", transform: fn})
	return b
}

// Build freezes the step list into an immutable Validator.
func (b *NumberBuilder) Build() jsontree.Validator {
	steps := make([]numberStep, len(b.steps))
	copy(steps, b.steps)
	return numberValidator{steps: steps}
}

type numberValidator struct {
	steps []numberStep
}

func (v numberValidator) Validate(path string, val jsontree.Value) (jsontree.Value, jsontree.Issues) {
	n, ok := val.AsNumber()
	if !ok {
		return val, typeMismatch(path, "number", val)
	}
	for _, st := range v.steps {
		if st.transform != nil {
			n = st.transform(n)
			continue
		}
		if iss := st.check(n); iss != nil {
			iss.Path = path
			return jsontree.Number(n), jsontree.Issues{*iss}
		}
	}
	return jsontree.Number(n), nil
}
