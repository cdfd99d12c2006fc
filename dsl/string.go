package dsl

import (
	"strings"
	"unicode/utf8"

	jsontree "github.com/reoring/jsontree"
)

// stringStep is one builder step over the string payload. Exactly one of
// transform and check is set.
type stringStep struct {
	rule      string
	transform func(string) string
	check     func(string) *jsontree.Issue
}

// StringBuilder accumulates steps for a string validator.
type StringBuilder struct {
	steps []stringStep
}

// String starts a string validator builder.
func String() *StringBuilder { return &StringBuilder{} }

// Lengths are measured in Unicode code points, matching the value model's
// definition of a string.
func strLen(s string) int { return utf8.RuneCountInString(s) }

// MinLength requires at least n code points.
func (b *StringBuilder) MinLength(n int) *StringBuilder {
	b.steps = append(b.steps, stringStep{rule: "min_length", check: func(s string) *jsontree.Issue {
		if got := strLen(s); got < n {
			iss := violation("", jsontree.CodeTooShort, "min_length", n, got)
			return &iss
		}
		return nil
	}})
	return b
}

// MaxLength requires at most n code points.
func (b *StringBuilder) MaxLength(n int) *StringBuilder {
	b.steps = append(b.steps, stringStep{rule: "max_length", check: func(s string) *jsontree.Issue {
		if got := strLen(s); got > n {
			iss := violation("", jsontree.CodeTooLong, "max_length", n, got)
			return &iss
		}
		return nil
	}})
	return b
}

// Length requires exactly n code points.
func (b *StringBuilder) Length(n int) *StringBuilder {
	b.steps = append(b.steps, stringStep{rule: "length", check: func(s string) *jsontree.Issue {
		if got := strLen(s); got != n {
			iss := violation("", jsontree.CodeWrongLength, "length", n, got)
			return &iss
		}
		return nil
	}})
	return b
}

// StartsWith requires the given prefix.
func (b *StringBuilder) StartsWith(prefix string) *StringBuilder {
	b.steps = append(b.steps, stringStep{rule: "starts_with", check: func(s string) *jsontree.Issue {
		if !strings.HasPrefix(s, prefix) {
			iss := violation("", jsontree.CodePrefixMismatch, "starts_with", prefix, s)
			return &iss
		}
		return nil
	}})
	return b
}

// EndsWith requires the given suffix.
func (b *StringBuilder) EndsWith(suffix string) *StringBuilder {
	b.steps = append(b.steps, stringStep{rule: "ends_with", check: func(s string) *jsontree.Issue {
		if !strings.HasSuffix(s, suffix) {
			iss := violation("", jsontree.CodeSuffixMismatch, "ends_with", suffix, s)
			return &iss
		}
		return nil
	}})
	return b
}

// Includes requires the given substring.
func (b *StringBuilder) Includes(sub string) *StringBuilder {
	b.steps = append(b.steps, stringStep{rule: "includes", check: func(s string) *jsontree.Issue {
		if !strings.Contains(s, sub) {
			iss := violation("", jsontree.CodeNotIncluded, "includes", sub, s)
			return &iss
		}
		return nil
	}})
	return b
}

// Trim strips leading and trailing whitespace before any later step sees the
// string.
func (b *StringBuilder) Trim() *StringBuilder {
	b.steps = append(b.steps, stringStep{rule: "trim", transform: strings.TrimSpace})
	return b
}

// TrimStart strips leading whitespace.
func (b *StringBuilder) TrimStart() *StringBuilder {
	b.steps = append(b.steps, stringStep{rule: "trim_start", transform: func(s string) string {
		return strings.TrimLeft(s, " \t\n\r")
	}})
	return b
}

// TrimEnd strips trailing whitespace.
func (b *StringBuilder) TrimEnd() *StringBuilder {
	b.steps = append(b.steps, stringStep{rule: "trim_end", transform: func(s string) string {
		return strings.TrimRight(s, " \t\n\r")
	}})
	return b
}

// Lowercase lowercases the string.
func (b *StringBuilder) Lowercase() *StringBuilder {
	b.steps = append(b.steps, stringStep{rule: "lowercase", transform: strings.ToLower})
	return b
}

// Uppercase uppercases the string.
func (b *StringBuilder) Uppercase() *StringBuilder {
	b.steps = append(b.steps, stringStep{rule: "uppercase", transform: strings.ToUpper})
	return b
}

// Map applies a custom transform.
func (b *StringBuilder) Map(fn func(string) string) *StringBuilder {
	if fn == nil {
		return b
	}
	b.steps = append(b.steps, stringStep{rule: "map", transform: fn})
	return b
}

// Build freezes the step list into an immutable Validator.
func (b *StringBuilder) Build() jsontree.Validator {
	steps := make([]stringStep, len(b.steps))
	copy(steps, b.steps)
	return stringValidator{steps: steps}
}

type stringValidator struct {
	steps []stringStep
}

func (v stringValidator) Validate(path string, val jsontree.Value) (jsontree.Value, jsontree.Issues) {
	s, ok := val.AsString()
	if !ok {
		return val, typeMismatch(path, "string", val)
	}
	for _, st := range v.steps {
		if st.transform != nil {
			s = st.transform(s)
			continue
		}
		if iss := st.check(s); iss != nil {
			iss.Path = path
			return jsontree.String(s), jsontree.Issues{*iss}
		}
	}
	return jsontree.String(s), nil
}
