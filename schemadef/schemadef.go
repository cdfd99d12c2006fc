// Package schemadef compiles YAML schema documents into runtime schemas.
//
// A document lists object fields with a type and optional constraints:
//
//	fields:
//	  - name: name
//	    type: string
//	    trim: true
//	    minLength: 3
//	  - name: age
//	    type: number
//	    gt: 18
//	  - name: address
//	    type: object
//	    fields:
//	      - name: city
//	        type: string
//	        minLength: 1
//
// YAML mappings carry no key order, so the compiled step order is fixed:
// transforms first (trim, trimStart, trimEnd, lowercase, uppercase for
// strings; truncate for arrays; floor, ceil, round for numbers), then
// predicates in the order they are documented on FieldDef.
package schemadef

import (
	"fmt"

	jsontree "github.com/reoring/jsontree"
	"github.com/reoring/jsontree/dsl"
	"gopkg.in/yaml.v3"
)

// Document is the root of a YAML schema definition.
type Document struct {
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef describes one object field. Type selects which constraint groups
// apply; constraints from other groups are ignored.
type FieldDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// string transforms
	Trim      bool `yaml:"trim"`
	TrimStart bool `yaml:"trimStart"`
	TrimEnd   bool `yaml:"trimEnd"`
	Lowercase bool `yaml:"lowercase"`
	Uppercase bool `yaml:"uppercase"`

	// string predicates
	MinLength  *int    `yaml:"minLength"`
	MaxLength  *int    `yaml:"maxLength"`
	Length     *int    `yaml:"length"`
	StartsWith *string `yaml:"startsWith"`
	EndsWith   *string `yaml:"endsWith"`
	Includes   *string `yaml:"includes"`

	// number transforms
	Floor bool `yaml:"floor"`
	Ceil  bool `yaml:"ceil"`
	Round bool `yaml:"round"`

	// number predicates
	Gt         *float64 `yaml:"gt"`
	Lt         *float64 `yaml:"lt"`
	Minimum    *float64 `yaml:"minimum"`
	Maximum    *float64 `yaml:"maximum"`
	MultipleOf *float64 `yaml:"multipleOf"`
	Integer    bool     `yaml:"integer"`

	// boolean predicates
	Truthy bool `yaml:"truthy"`
	Falsy  bool `yaml:"falsy"`

	// array
	Truncate *int      `yaml:"truncate"`
	Items    *FieldDef `yaml:"items"`
	MinItems *int      `yaml:"minItems"`
	MaxItems *int      `yaml:"maxItems"`
	NonEmpty bool      `yaml:"nonEmpty"`

	// object
	Fields []FieldDef `yaml:"fields"`
}

// Compile parses a YAML schema document and builds the runtime Schema.
func Compile(data []byte) (*jsontree.Schema, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemadef: %w", err)
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("schemadef: document has no fields")
	}
	return compileSchema(doc.Fields)
}

func compileSchema(defs []FieldDef) (*jsontree.Schema, error) {
	fields := make([]jsontree.Field, 0, len(defs))
	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("schemadef: field with empty name")
		}
		v, err := compileValidator(d)
		if err != nil {
			return nil, fmt.Errorf("schemadef: field %q: %w", d.Name, err)
		}
		fields = append(fields, jsontree.F(d.Name, v))
	}
	return jsontree.NewSchema(fields...), nil
}

func compileValidator(d FieldDef) (jsontree.Validator, error) {
	switch d.Type {
	case "string":
		return compileString(d), nil
	case "number":
		return compileNumber(d), nil
	case "boolean":
		return compileBoolean(d), nil
	case "array":
		return compileArray(d)
	case "object":
		if len(d.Fields) == 0 {
			return nil, fmt.Errorf("object type requires fields")
		}
		s, err := compileSchema(d.Fields)
		if err != nil {
			return nil, err
		}
		return dsl.Object(s).Build(), nil
	case "null":
		return dsl.Nil().Build(), nil
	case "":
		return nil, fmt.Errorf("missing type")
	default:
		return nil, fmt.Errorf("unknown type %q", d.Type)
	}
}

func compileString(d FieldDef) jsontree.Validator {
	b := dsl.String()
	if d.Trim {
		b.Trim()
	}
	if d.TrimStart {
		b.TrimStart()
	}
	if d.TrimEnd {
		b.TrimEnd()
	}
	if d.Lowercase {
		b.Lowercase()
	}
	if d.Uppercase {
		b.Uppercase()
	}
	if d.MinLength != nil {
		b.MinLength(*d.MinLength)
	}
	if d.MaxLength != nil {
		b.MaxLength(*d.MaxLength)
	}
	if d.Length != nil {
		b.Length(*d.Length)
	}
	if d.StartsWith != nil {
		b.StartsWith(*d.StartsWith)
	}
	if d.EndsWith != nil {
		b.EndsWith(*d.EndsWith)
	}
	if d.Includes != nil {
		b.Includes(*d.Includes)
	}
	return b.Build()
}

func compileNumber(d FieldDef) jsontree.Validator {
	b := dsl.Number()
	if d.Floor {
		b.Floor()
	}
	if d.Ceil {
		b.Ceil()
	}
	if d.Round {
		b.Round()
	}
	if d.Gt != nil {
		b.Gt(*d.Gt)
	}
	if d.Lt != nil {
		b.Lt(*d.Lt)
	}
	if d.Minimum != nil {
		b.Minimum(*d.Minimum)
	}
	if d.Maximum != nil {
		b.Maximum(*d.Maximum)
	}
	if d.MultipleOf != nil {
		b.MultipleOf(*d.MultipleOf)
	}
	if d.Integer {
		b.Integer()
	}
	return b.Build()
}

func compileBoolean(d FieldDef) jsontree.Validator {
	b := dsl.Boolean()
	if d.Truthy {
		b.Truthy()
	}
	if d.Falsy {
		b.Falsy()
	}
	return b.Build()
}

func compileArray(d FieldDef) (jsontree.Validator, error) {
	b := dsl.Array()
	if d.Truncate != nil {
		b.Truncate(*d.Truncate)
	}
	if d.Items != nil {
		ev, err := compileValidator(*d.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		b.Of(ev)
	}
	if d.MinItems != nil {
		b.MinItems(*d.MinItems)
	}
	if d.MaxItems != nil {
		b.MaxItems(*d.MaxItems)
	}
	if d.Length != nil {
		b.Length(*d.Length)
	}
	if d.NonEmpty {
		b.NonEmpty()
	}
	return b.Build(), nil
}
