package jsontree

import "fmt"

// Kind identifies the variant stored in a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is one node of a parsed JSON document: a tagged union over null,
// boolean, number (float64), string, array, and object. The zero Value is
// null. A Value is immutable once constructed, so it may be read concurrently
// without coordination.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  *Object
}

// Member is one key/value entry used to construct objects.
type Member struct {
	Key   string
	Value Value
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric Value. JSON numbers are uniformly float64.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns an array Value owning the given elements.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: elems}
}

// ObjectOf returns an object Value with the given members in order. A
// repeated key overwrites the earlier entry while keeping its original
// position (last occurrence wins, same as the parser).
func ObjectOf(members ...Member) Value {
	o := newObject()
	for _, m := range members {
		o.set(m.Key, m.Value)
	}
	return Value{kind: KindObject, obj: o}
}

// Kind reports which variant the Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the Value is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload. No coercion: a string "true" yields
// false, false.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the numeric payload without coercion.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsString returns the string payload without coercion.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsArray returns the element slice. Callers must not modify it.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the ordered object payload.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Get looks up key in an object Value. It returns false when the Value is not
// an object or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	return v.obj.Get(key)
}

// At returns the i-th element of an array Value. It returns false when the
// Value is not an array or the index is out of range.
func (v Value) At(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// MustGet is indexing sugar over Get: it panics when the key is absent or the
// Value is not an object. Do not use it on untrusted input; prefer Get.
func (v Value) MustGet(key string) Value {
	got, ok := v.Get(key)
	if !ok {
		panic(fmt.Sprintf("jsontree: key %q not found in %s value", key, v.kind))
	}
	return got
}

// MustAt is indexing sugar over At: it panics on variant mismatch or an
// out-of-range index. Do not use it on untrusted input; prefer At.
func (v Value) MustAt(i int) Value {
	got, ok := v.At(i)
	if !ok {
		panic(fmt.Sprintf("jsontree: index %d not found in %s value", i, v.kind))
	}
	return got
}

// Equal reports deep structural equality of two Values. Object comparison is
// order-sensitive, matching canonical serialization.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		ak, bk := a.obj.keys, b.obj.keys
		for i := range ak {
			if ak[i] != bk[i] {
				return false
			}
			av, _ := a.obj.Get(ak[i])
			bv, _ := b.obj.Get(bk[i])
			if !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Object is an ordered string-to-Value mapping with unique keys. Insertion
// order is preserved; inserting an existing key replaces its value in place.
type Object struct {
	keys  []string
	items map[string]Value
}

func newObject() *Object {
	return &Object{items: map[string]Value{}}
}

func (o *Object) set(key string, v Value) {
	if _, ok := o.items[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.items[key] = v
}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.keys) }

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.items[key]
	return ok
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.items[key]
	return v, ok
}

// Keys returns the member keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Each calls fn for every member in insertion order until fn returns false.
func (o *Object) Each(fn func(key string, v Value) bool) {
	for _, k := range o.keys {
		if !fn(k, o.items[k]) {
			return
		}
	}
}
