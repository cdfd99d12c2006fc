// Package dsl provides the chainable builders that produce jsontree
// Validators. Every builder accumulates an ordered list of steps; a step is
// either a transform (rewrites the candidate value, e.g. Trim) or a predicate
// (checks a condition, e.g. MinLength). Steps run strictly in the order they
// were appended, so String().Trim().MinLength(3) measures the trimmed string.
// A failing predicate stops the remaining steps for that field only.
//
// The terminal Build() call freezes the step list and erases the concrete
// builder behind the jsontree.Validator interface, so heterogeneous field
// types can sit in one Schema:
//
//	s := jsontree.NewSchema(
//		jsontree.F("name", dsl.String().Trim().MinLength(3).Build()),
//		jsontree.F("age", dsl.Number().Gt(18).Lt(100).Build()),
//		jsontree.F("is_student", dsl.Boolean().Falsy().Build()),
//	)
package dsl

import (
	jsontree "github.com/reoring/jsontree"
	"github.com/reoring/jsontree/i18n"
)

func typeMismatch(path, expected string, v jsontree.Value) jsontree.Issues {
	return jsontree.Issues{{
		Path:    path,
		Code:    jsontree.CodeInvalidType,
		Message: i18n.T(jsontree.CodeInvalidType, map[string]string{"expected": expected}),
		Params:  map[string]any{"expected": expected, "actual": v.Kind().String()},
	}}
}

func violation(path, code, rule string, bound, actual any) jsontree.Issue {
	return jsontree.Issue{
		Path:    path,
		Code:    code,
		Rule:    rule,
		Message: i18n.T(code, nil),
		Params:  map[string]any{"bound": bound, "actual": actual},
	}
}
