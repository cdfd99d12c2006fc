package jsontree_test

import (
	"testing"

	jsontree "github.com/reoring/jsontree"
	"github.com/reoring/jsontree/dsl"
)

func personSchema() *jsontree.Schema {
	return jsontree.NewSchema(
		jsontree.F("name", dsl.String().Trim().MinLength(3).Build()),
		jsontree.F("age", dsl.Number().Gt(18).Build()),
		jsontree.F("is_student", dsl.Boolean().Build()),
	)
}

func TestSchemaValidateSuccess(t *testing.T) {
	v, err := jsontree.ParseString(`{"name":"  John Doe  ","age":30,"is_student":false}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := personSchema().Validate(v)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got, _ := out.MustGet("name").AsString(); got != "John Doe" {
		t.Fatalf("name=%q, want trimmed", got)
	}
	if got, _ := out.MustGet("age").AsNumber(); got != 30 {
		t.Fatalf("age=%v", got)
	}
}

func TestSchemaValidateConstraintViolation(t *testing.T) {
	v, err := jsontree.ParseString(`{"name":"John","age":15,"is_student":true}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = personSchema().Validate(v)
	iss, ok := jsontree.AsIssues(err)
	if !ok {
		t.Fatalf("err=%v, want Issues", err)
	}
	if len(iss) != 1 {
		t.Fatalf("len(iss)=%d, want 1: %v", len(iss), iss)
	}
	it := iss[0]
	if it.Path != "age" || it.Code != jsontree.CodeTooSmall || it.Rule != "gt" {
		t.Fatalf("issue=%+v", it)
	}
	if it.Params["bound"].(float64) != 18 || it.Params["actual"].(float64) != 15 {
		t.Fatalf("params=%v", it.Params)
	}
}

func TestSchemaTransformBeforePredicate(t *testing.T) {
	// " Jo " trims to "Jo", two code points, under the minimum of three.
	v, _ := jsontree.ParseString(`{"name":" Jo ","age":30,"is_student":false}`)
	_, err := personSchema().Validate(v)
	iss, ok := jsontree.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("err=%v", err)
	}
	if iss[0].Path != "name" || iss[0].Code != jsontree.CodeTooShort {
		t.Fatalf("issue=%+v", iss[0])
	}
	if iss[0].Params["actual"].(int) != 2 {
		t.Fatalf("params=%v", iss[0].Params)
	}
}

func TestSchemaFailSoftAggregation(t *testing.T) {
	v, _ := jsontree.ParseString(`{"name":"Jo","age":15}`)
	_, err := personSchema().Validate(v)
	iss, ok := jsontree.AsIssues(err)
	if !ok {
		t.Fatalf("err=%v, want Issues", err)
	}
	if len(iss) != 3 {
		t.Fatalf("len(iss)=%d, want 3: %v", len(iss), iss)
	}
	// Issues follow field declaration order.
	if iss[0].Path != "name" || iss[1].Path != "age" || iss[2].Path != "is_student" {
		t.Fatalf("paths=%v,%v,%v", iss[0].Path, iss[1].Path, iss[2].Path)
	}
	if iss[2].Code != jsontree.CodeRequired {
		t.Fatalf("is_student code=%s", iss[2].Code)
	}
}

func TestSchemaNestedObjectPath(t *testing.T) {
	s := jsontree.NewSchema(
		jsontree.F("address", dsl.Object(jsontree.NewSchema(
			jsontree.F("city", dsl.String().MinLength(1).Build()),
		)).Build()),
	)
	v, _ := jsontree.ParseString(`{"address":{"city":""}}`)
	_, err := s.Validate(v)
	iss, ok := jsontree.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("err=%v", err)
	}
	if iss[0].Path != "address.city" {
		t.Fatalf("path=%q, want address.city", iss[0].Path)
	}
}

func TestSchemaArrayElementPath(t *testing.T) {
	s := jsontree.NewSchema(
		jsontree.F("items", dsl.Array().Of(dsl.Number().Minimum(0).Build()).Build()),
	)
	v, _ := jsontree.ParseString(`{"items":[1,-2,3,-4]}`)
	_, err := s.Validate(v)
	iss, ok := jsontree.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("err=%v", err)
	}
	if iss[0].Path != "items[1]" || iss[1].Path != "items[3]" {
		t.Fatalf("paths=%q,%q", iss[0].Path, iss[1].Path)
	}
}

func TestSchemaUnknownFieldsPassThrough(t *testing.T) {
	s := jsontree.NewSchema(jsontree.F("a", dsl.Number().Build()))
	v, _ := jsontree.ParseString(`{"a":1,"extra":"kept"}`)
	out, err := s.Validate(v)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got, _ := out.MustGet("extra").AsString(); got != "kept" {
		t.Fatalf("extra=%q", got)
	}
	// Original member order is preserved in the output.
	if got := out.Serialize(); got != `{"a":1,"extra":"kept"}` {
		t.Fatalf("Serialize()=%s", got)
	}
}

func TestSchemaRootNotObject(t *testing.T) {
	_, err := personSchema().Validate(jsontree.Array())
	iss, ok := jsontree.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("err=%v", err)
	}
	if iss[0].Code != jsontree.CodeInvalidType || iss[0].Path != "" {
		t.Fatalf("issue=%+v", iss[0])
	}
	if iss[0].Params["actual"] != "array" {
		t.Fatalf("params=%v", iss[0].Params)
	}
}

func TestIssuesErrorSummary(t *testing.T) {
	v, _ := jsontree.ParseString(`{}`)
	_, err := personSchema().Validate(v)
	iss, _ := jsontree.AsIssues(err)
	if len(iss) != 3 {
		t.Fatalf("len(iss)=%d", len(iss))
	}
	want := "required at name; required at age; required at is_student"
	if got := iss.Error(); got != want {
		t.Fatalf("Error()=%q, want %q", got, want)
	}
}
