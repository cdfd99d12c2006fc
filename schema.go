package jsontree

import "github.com/reoring/jsontree/i18n"

// Validator validates (and optionally transforms) one Value. Implementations
// are immutable once built; path is the dotted/bracketed location of v in the
// document and prefixes every reported issue. The returned Value carries any
// transforms applied before the first failure.
type Validator interface {
	Validate(path string, v Value) (Value, Issues)
}

// Field pairs a declared object member with its Validator.
type Field struct {
	Name      string
	Validator Validator
}

// F is shorthand for constructing a Field.
func F(name string, v Validator) Field { return Field{Name: name, Validator: v} }

// Schema is an ordered list of (name, Validator) pairs describing the
// expected shape of an object Value. Build it once and reuse it; it holds no
// per-call state, so concurrent Validate calls are safe.
type Schema struct {
	fields []Field
}

// NewSchema builds a Schema from fields, preserving declaration order.
func NewSchema(fields ...Field) *Schema {
	fs := make([]Field, len(fields))
	copy(fs, fields)
	return &Schema{fields: fs}
}

// Fields returns the declared fields in order. The slice is a copy.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Validate checks v against the schema. Validation is fail-soft per field:
// every declared field is checked and all issues are returned together in
// declaration order, so the caller gets complete feedback in one pass. Fields
// not declared in the schema pass through untouched. On success the returned
// Value is the transformed tree; err is nil, or an Issues value.
func (s *Schema) Validate(v Value) (Value, error) {
	out, iss := s.ValidateAt("", v)
	if len(iss) > 0 {
		return out, iss
	}
	return out, nil
}

// ValidateAt is Validate with an explicit path prefix. It is used by nested
// object validators to report issues like address.city.
func (s *Schema) ValidateAt(path string, v Value) (Value, Issues) {
	obj, ok := v.AsObject()
	if !ok {
		return v, Issues{{
			Path:    path,
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, map[string]string{"expected": "object"}),
			Params:  map[string]any{"expected": "object", "actual": v.Kind().String()},
		}}
	}
	transformed := map[string]Value{}
	var iss Issues
	for _, f := range s.fields {
		fpath := JoinPath(path, f.Name)
		fv, present := obj.Get(f.Name)
		if !present {
			iss = AppendIssues(iss, Issue{
				Path:    fpath,
				Code:    CodeRequired,
				Message: i18n.T(CodeRequired, map[string]string{"key": f.Name}),
			})
			continue
		}
		nv, fiss := f.Validator.Validate(fpath, fv)
		iss = append(iss, fiss...)
		transformed[f.Name] = nv
	}
	// Rebuild the object in its original member order, swapping in the
	// transformed values for declared fields.
	out := newObject()
	obj.Each(func(k string, ov Value) bool {
		if nv, ok := transformed[k]; ok {
			out.set(k, nv)
		} else {
			out.set(k, ov)
		}
		return true
	})
	return Value{kind: KindObject, obj: out}, iss
}
