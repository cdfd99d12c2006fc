package jsontree_test

import (
	"testing"

	jsontree "github.com/reoring/jsontree"
)

func TestValueAccessorsNoCoercion(t *testing.T) {
	s := jsontree.String("true")
	if _, ok := s.AsBool(); ok {
		t.Fatalf("AsBool on string succeeded")
	}
	if _, ok := s.AsNumber(); ok {
		t.Fatalf("AsNumber on string succeeded")
	}
	n := jsontree.Number(1)
	if _, ok := n.AsString(); ok {
		t.Fatalf("AsString on number succeeded")
	}
	if _, ok := n.AsArray(); ok {
		t.Fatalf("AsArray on number succeeded")
	}
	if _, ok := n.AsObject(); ok {
		t.Fatalf("AsObject on number succeeded")
	}
}

func TestValueZeroIsNull(t *testing.T) {
	var v jsontree.Value
	if !v.IsNull() {
		t.Fatalf("zero Value is not null")
	}
	if v.Kind() != jsontree.KindNull {
		t.Fatalf("Kind=%v", v.Kind())
	}
}

func TestObjectOfLastWins(t *testing.T) {
	v := jsontree.ObjectOf(
		jsontree.Member{Key: "a", Value: jsontree.Number(1)},
		jsontree.Member{Key: "b", Value: jsontree.Number(2)},
		jsontree.Member{Key: "a", Value: jsontree.Number(3)},
	)
	obj, _ := v.AsObject()
	if obj.Len() != 2 {
		t.Fatalf("Len=%d, want 2", obj.Len())
	}
	if got, _ := v.MustGet("a").AsNumber(); got != 3 {
		t.Fatalf("a=%v, want 3", got)
	}
	keys := obj.Keys()
	if keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys=%v", keys)
	}
}

func TestMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustGet on missing key did not panic")
		}
	}()
	jsontree.ObjectOf().MustGet("missing")
}

func TestMustAtPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustAt out of range did not panic")
		}
	}()
	jsontree.Array(jsontree.Number(1)).MustAt(5)
}

func TestEqual(t *testing.T) {
	a, _ := jsontree.ParseString(`{"x":1,"y":[true,null]}`)
	b, _ := jsontree.ParseString(`{"x":1,"y":[true,null]}`)
	if !jsontree.Equal(a, b) {
		t.Fatalf("identical documents not Equal")
	}
	// Member order is significant.
	c, _ := jsontree.ParseString(`{"y":[true,null],"x":1}`)
	if jsontree.Equal(a, c) {
		t.Fatalf("reordered members compare Equal")
	}
	if jsontree.Equal(jsontree.Number(1), jsontree.String("1")) {
		t.Fatalf("number equals string")
	}
}

func TestObjectEachStops(t *testing.T) {
	v := jsontree.ObjectOf(
		jsontree.Member{Key: "a", Value: jsontree.Number(1)},
		jsontree.Member{Key: "b", Value: jsontree.Number(2)},
		jsontree.Member{Key: "c", Value: jsontree.Number(3)},
	)
	obj, _ := v.AsObject()
	var visited []string
	obj.Each(func(k string, _ jsontree.Value) bool {
		visited = append(visited, k)
		return k != "b"
	})
	if len(visited) != 2 || visited[0] != "a" || visited[1] != "b" {
		t.Fatalf("visited=%v", visited)
	}
}
