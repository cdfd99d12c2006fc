package dsl

import jsontree "github.com/reoring/jsontree"

// arrayStep is one builder step over the element slice. apply returns the
// (possibly rewritten) elements plus any issues; non-empty issues stop the
// remaining steps for the field.
type arrayStep struct {
	rule  string
	apply func(path string, items []jsontree.Value) ([]jsontree.Value, jsontree.Issues)
}

// ArrayBuilder accumulates steps for an array validator.
type ArrayBuilder struct {
	steps []arrayStep
}

// Array starts an array validator builder.
func Array() *ArrayBuilder { return &ArrayBuilder{} }

// Of validates every element with elem, reporting issues at items[i] paths.
// All element issues are collected before the step stops the chain.
func (b *ArrayBuilder) Of(elem jsontree.Validator) *ArrayBuilder {
	b.steps = append(b.steps, arrayStep{rule: "every", apply: func(path string, items []jsontree.Value) ([]jsontree.Value, jsontree.Issues) {
		var iss jsontree.Issues
		out := make([]jsontree.Value, len(items))
		for i, it := range items {
			nv, eiss := elem.Validate(jsontree.JoinIndex(path, i), it)
			iss = append(iss, eiss...)
			out[i] = nv
		}
		return out, iss
	}})
	return b
}

// MinItems requires at least n elements.
func (b *ArrayBuilder) MinItems(n int) *ArrayBuilder {
	b.steps = append(b.steps, b.boundStep("min_items", func(path string, items []jsontree.Value) *jsontree.Issue {
		if len(items) < n {
			iss := violation(path, jsontree.CodeTooShort, "min_items", n, len(items))
			return &iss
		}
		return nil
	}))
	return b
}

// MaxItems requires at most n elements.
func (b *ArrayBuilder) MaxItems(n int) *ArrayBuilder {
	b.steps = append(b.steps, b.boundStep("max_items", func(path string, items []jsontree.Value) *jsontree.Issue {
		if len(items) > n {
			iss := violation(path, jsontree.CodeTooLong, "max_items", n, len(items))
			return &iss
		}
		return nil
	}))
	return b
}

// Length requires exactly n elements.
func (b *ArrayBuilder) Length(n int) *ArrayBuilder {
	b.steps = append(b.steps, b.boundStep("length", func(path string, items []jsontree.Value) *jsontree.Issue {
		if len(items) != n {
			iss := violation(path, jsontree.CodeWrongLength, "length", n, len(items))
			return &iss
		}
		return nil
	}))
	return b
}

// NonEmpty requires at least one element.
func (b *ArrayBuilder) NonEmpty() *ArrayBuilder {
	b.steps = append(b.steps, b.boundStep("non_empty", func(path string, items []jsontree.Value) *jsontree.Issue {
		if len(items) == 0 {
			iss := violation(path, jsontree.CodeEmpty, "non_empty", 1, 0)
			return &iss
		}
		return nil
	}))
	return b
}

// Some requires at least one element to satisfy rule. Element-level issues
// from non-matching candidates are discarded.
func (b *ArrayBuilder) Some(rule jsontree.Validator) *ArrayBuilder {
	b.steps = append(b.steps, arrayStep{rule: "some", apply: func(path string, items []jsontree.Value) ([]jsontree.Value, jsontree.Issues) {
		for i, it := range items {
			if _, eiss := rule.Validate(jsontree.JoinIndex(path, i), it); len(eiss) == 0 {
				return items, nil
			}
		}
		iss := violation(path, jsontree.CodeNoMatch, "some", nil, len(items))
		return items, jsontree.Issues{iss}
	}})
	return b
}

// At validates the element at index i with rule; a missing index is an error.
func (b *ArrayBuilder) At(i int, rule jsontree.Validator) *ArrayBuilder {
	b.steps = append(b.steps, arrayStep{rule: "at", apply: func(path string, items []jsontree.Value) ([]jsontree.Value, jsontree.Issues) {
		if i < 0 || i >= len(items) {
			iss := violation(path, jsontree.CodeIndexMissing, "at", i, len(items))
			return items, jsontree.Issues{iss}
		}
		nv, eiss := rule.Validate(jsontree.JoinIndex(path, i), items[i])
		if len(eiss) > 0 {
			return items, eiss
		}
		out := make([]jsontree.Value, len(items))
		copy(out, items)
		out[i] = nv
		return out, nil
	}})
	return b
}

// Truncate drops elements beyond n before later steps see the array.
func (b *ArrayBuilder) Truncate(n int) *ArrayBuilder {
	b.steps = append(b.steps, arrayStep{rule: "truncate", apply: func(path string, items []jsontree.Value) ([]jsontree.Value, jsontree.Issues) {
		if n >= 0 && len(items) > n {
			return items[:n], nil
		}
		return items, nil
	}})
	return b
}

func (b *ArrayBuilder) boundStep(rule string, check func(string, []jsontree.Value) *jsontree.Issue) arrayStep {
	return arrayStep{rule: rule, apply: func(path string, items []jsontree.Value) ([]jsontree.Value, jsontree.Issues) {
		if iss := check(path, items); iss != nil {
			return items, jsontree.Issues{*iss}
		}
		return items, nil
	}}
}

// Build freezes the step list into an immutable Validator.
func (b *ArrayBuilder) Build() jsontree.Validator {
	steps := make([]arrayStep, len(b.steps))
	copy(steps, b.steps)
	return arrayValidator{steps: steps}
}

type arrayValidator struct {
	steps []arrayStep
}

func (v arrayValidator) Validate(path string, val jsontree.Value) (jsontree.Value, jsontree.Issues) {
	items, ok := val.AsArray()
	if !ok {
		return val, typeMismatch(path, "array", val)
	}
	cur := items
	for _, st := range v.steps {
		next, iss := st.apply(path, cur)
		cur = next
		if len(iss) > 0 {
			return jsontree.Array(cur...), iss
		}
	}
	return jsontree.Array(cur...), nil
}
