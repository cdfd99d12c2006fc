package jsontree_test

import (
	"math"
	"testing"

	jsontree "github.com/reoring/jsontree"
)

func TestSerializeCanonical(t *testing.T) {
	v, err := jsontree.ParseString("{ \"name\" : \"John Doe\",\n  \"age\" : 30,\n  \"is_student\" : false }")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := `{"name":"John Doe","age":30,"is_student":false}`
	if got := v.Serialize(); got != want {
		t.Fatalf("Serialize()=%s, want %s", got, want)
	}
}

func TestSerializeNumbers(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{30, "30"},
		{0, "0"},
		{0.5, "0.5"},
		{-12.75, "-12.75"},
		{0.001, "0.001"},
		{1e21, "1e+21"},
	}
	for _, tc := range cases {
		if got := jsontree.Number(tc.in).Serialize(); got != tc.want {
			t.Fatalf("Number(%v).Serialize()=%q, want %q", tc.in, got, tc.want)
		}
	}
	if got := jsontree.Number(math.NaN()).Serialize(); got != "null" {
		t.Fatalf("NaN serialized as %q", got)
	}
	if got := jsontree.Number(math.Inf(1)).Serialize(); got != "null" {
		t.Fatalf("+Inf serialized as %q", got)
	}
}

func TestSerializeStringEscapes(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"tab\there", `"tab\there"`},
		{"line\nbreak", `"line\nbreak"`},
		{"bell\x07", `"bell"`},
		{"smile 😀", `"smile 😀"`},
	}
	for _, tc := range cases {
		if got := jsontree.String(tc.in).Serialize(); got != tc.want {
			t.Fatalf("String(%q).Serialize()=%s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		`{"a":[1,2,{"b":null}],"c":"x"}`,
		`[true,false,null,0.5,"s"]`,
		`{"nested":{"deep":{"deeper":[]}}}`,
	}
	for _, in := range inputs {
		v, err := jsontree.ParseString(in)
		if err != nil {
			t.Fatalf("Parse(%s): %v", in, err)
		}
		out := v.Serialize()
		v2, err := jsontree.ParseString(out)
		if err != nil {
			t.Fatalf("reparse(%s): %v", out, err)
		}
		if !jsontree.Equal(v, v2) {
			t.Fatalf("round trip changed value: %s -> %s", in, out)
		}
		// Canonical form is a fixed point.
		if out2 := v2.Serialize(); out2 != out {
			t.Fatalf("second pass differs: %s vs %s", out, out2)
		}
	}
}

func TestSerializeNormalizesDuplicates(t *testing.T) {
	v, err := jsontree.ParseString(`{"a":1,"a":2}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := v.Serialize(); got != `{"a":2}` {
		t.Fatalf("Serialize()=%s, want {\"a\":2}", got)
	}
}
