// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package compile

import (
	"fmt"
	"strings"

	"github.com/dacolabs/protogen/internal/tschema"
	"github.com/jinzhu/inflection"
)

// fieldDef describes one output field before number assignment: leading
// modifier tokens ("repeated", "optional"), the type token, and the field
// name.
type fieldDef struct {
	modifiers []string
	typeName  string
	name      string
}

// typeString joins modifiers and type token with spaces.
func (f fieldDef) typeString() string {
	if len(f.modifiers) == 0 {
		return f.typeName
	}
	return strings.Join(f.modifiers, " ") + " " + f.typeName
}

// render produces the field's declaration line with its assigned number.
func (f fieldDef) render(number int) string {
	return fmt.Sprintf("%s %s = %d;", f.typeString(), f.name, number)
}

// compileField resolves one named schema node to its output field
// descriptors, hoisting composite types into the registries as it recurses.
// key is the field name in the enclosing message; path is the full dotted
// ancestry used for generated type names; optional and inArray carry the
// modifier state established by enclosing wrappers.
func (c *compiler) compileField(key string, node *tschema.Node, path string, optional, inArray bool) ([]fieldDef, error) {
	if node == nil {
		return nil, &UnsupportedTypeError{Kind: "nil"}
	}

	switch node.Kind() {
	case tschema.KindOptional, tschema.KindNullable:
		// Wrappers are transparent and never produce a field themselves.
		return c.compileField(key, node.Unwrap(), path, true, inArray)

	case tschema.KindArray, tschema.KindSet:
		if c.visiting[node] {
			return nil, &CyclicSchemaError{Path: path}
		}
		c.visiting[node] = true
		defer delete(c.visiting, node)

		// Elements compile under the singular key and are forced
		// non-optional regardless of inner wrappers.
		singular := inflection.Singular(key)
		defs, err := c.compileField(singular, node.Elem(), replaceLast(path, singular), false, true)
		if err != nil {
			return nil, err
		}
		for i := range defs {
			defs[i].modifiers = append([]string{"repeated"}, defs[i].modifiers...)
			defs[i].name = strings.Replace(defs[i].name, singular, key, 1)
		}
		return defs, nil

	case tschema.KindMap:
		if c.visiting[node] {
			return nil, &CyclicSchemaError{Path: path}
		}
		c.visiting[node] = true
		defer delete(c.visiting, node)

		keyDef, err := c.compileSingle(key+"Key", node.KeyType(), replaceLast(path, key+"Key"))
		if err != nil {
			return nil, err
		}
		valueDef, err := c.compileSingle(key+"Value", node.ValueType(), replaceLast(path, key+"Value"))
		if err != nil {
			return nil, err
		}
		mapType := fmt.Sprintf("map<%s, %s>", keyDef.typeString(), valueDef.typeString())
		return []fieldDef{{modifiers: optionalModifier(optional, inArray), typeName: mapType, name: key}}, nil

	case tschema.KindObject:
		if c.visiting[node] {
			return nil, &CyclicSchemaError{Path: path}
		}
		c.visiting[node] = true
		defer delete(c.visiting, node)

		name := c.typeName(path)
		fields, err := c.compileFields(node, path)
		if err != nil {
			return nil, err
		}
		c.messages.set(name, fields)
		return []fieldDef{{modifiers: optionalModifier(optional, inArray), typeName: name, name: key}}, nil

	case tschema.KindEnum:
		name := c.typeName(path)
		c.enums.set(name, renderEnumBody(node.Options()))
		return []fieldDef{{modifiers: optionalModifier(optional, inArray), typeName: name, name: key}}, nil

	case tschema.KindTuple:
		if c.visiting[node] {
			return nil, &CyclicSchemaError{Path: path}
		}
		c.visiting[node] = true
		defer delete(c.visiting, node)

		// Each position becomes a field of a hoisted wrapper message,
		// numbered by position. inArray is inherited, unlike arrays.
		var fields []fieldDef
		for i, elem := range node.Elems() {
			elemKey := fmt.Sprintf("%s_%d", key, i)
			defs, err := c.compileField(elemKey, elem, replaceLast(path, elemKey), false, inArray)
			if err != nil {
				return nil, err
			}
			fields = append(fields, defs...)
		}
		name := c.typeName(path)
		c.messages.set(name, fields)
		return []fieldDef{{modifiers: optionalModifier(optional, inArray), typeName: name, name: key}}, nil

	case tschema.KindString, tschema.KindNumber, tschema.KindBoolean, tschema.KindDate, tschema.KindBigInt:
		token, err := scalarType(node)
		if err != nil {
			return nil, err
		}
		return []fieldDef{{modifiers: optionalModifier(optional, inArray), typeName: token, name: key}}, nil

	default:
		return nil, &UnsupportedTypeError{Kind: node.Kind().String()}
	}
}

// compileSingle compiles a map key or value slot, which must resolve to
// exactly one descriptor.
func (c *compiler) compileSingle(key string, node *tschema.Node, path string) (fieldDef, error) {
	defs, err := c.compileField(key, node, path, false, false)
	if err != nil {
		return fieldDef{}, err
	}
	if len(defs) != 1 {
		return fieldDef{}, &UnsupportedTypeError{Kind: node.Kind().String()}
	}
	return defs[0], nil
}

// optionalModifier returns the modifier tokens for a field that was wrapped
// in Optional or Nullable. Array elements are never individually optional.
func optionalModifier(optional, inArray bool) []string {
	if optional && !inArray {
		return []string{"optional"}
	}
	return nil
}

// renderEnumBody renders enum options in declaration order with indices
// assigned from 0.
func renderEnumBody(options []any) string {
	lines := make([]string, len(options))
	for i, option := range options {
		lines[i] = fmt.Sprintf("%s%v = %d;", indent, option, i)
	}
	return strings.Join(lines, "\n")
}
