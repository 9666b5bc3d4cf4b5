// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tschema

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/valyala/fastjson"
)

// Parse builds a schema tree from its JSON description. Object member order
// in the document is preserved.
//
// Every node is an object with a "type" key naming the kind. Composite kinds
// carry their payload under "fields" (object), "of" (array, set), "items"
// (tuple), "key"/"value" (map), or "options" (enum, union). The booleans
// "optional" and "nullable" wrap any node.
func Parse(data []byte) (*Node, error) {
	v, err := fastjson.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}
	return parseValue(v)
}

// Loader loads schema files from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema file.
func (l *Loader) LoadFile(filePath string) (*Node, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

func parseValue(v *fastjson.Value) (*Node, error) {
	if v == nil || v.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("schema node must be a JSON object")
	}

	kind := string(v.GetStringBytes("type"))

	var node *Node
	switch kind {
	case "object":
		fields, err := parseFields(v)
		if err != nil {
			return nil, err
		}
		node = Object(fields...)
	case "string":
		node = String()
	case "number":
		node = Number()
	case "integer":
		node = Integer()
	case "boolean":
		node = Boolean()
	case "date":
		node = Date()
	case "bigint":
		node = BigInt()
	case "enum":
		options, err := parseEnumOptions(v)
		if err != nil {
			return nil, err
		}
		node = Enum(options...)
	case "array", "set":
		elem, err := parseValue(v.Get("of"))
		if err != nil {
			return nil, fmt.Errorf("%s element: %w", kind, err)
		}
		if kind == "array" {
			node = Array(elem)
		} else {
			node = Set(elem)
		}
	case "tuple":
		items := v.GetArray("items")
		if items == nil {
			return nil, fmt.Errorf(`tuple schema missing "items"`)
		}
		elems := make([]*Node, 0, len(items))
		for i, item := range items {
			elem, err := parseValue(item)
			if err != nil {
				return nil, fmt.Errorf("tuple element %d: %w", i, err)
			}
			elems = append(elems, elem)
		}
		node = Tuple(elems...)
	case "map":
		key, err := parseValue(v.Get("key"))
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		value, err := parseValue(v.Get("value"))
		if err != nil {
			return nil, fmt.Errorf("map value: %w", err)
		}
		node = Map(key, value)
	case "any":
		node = Any()
	case "union":
		options := v.GetArray("options")
		if options == nil {
			return nil, fmt.Errorf(`union schema missing "options"`)
		}
		elems := make([]*Node, 0, len(options))
		for i, option := range options {
			elem, err := parseValue(option)
			if err != nil {
				return nil, fmt.Errorf("union option %d: %w", i, err)
			}
			elems = append(elems, elem)
		}
		node = Union(elems...)
	case "":
		return nil, fmt.Errorf(`schema node missing "type"`)
	default:
		return nil, fmt.Errorf("unknown schema type %q", kind)
	}

	if v.GetBool("optional") {
		node = Optional(node)
	}
	if v.GetBool("nullable") {
		node = Nullable(node)
	}
	return node, nil
}

func parseFields(v *fastjson.Value) ([]Field, error) {
	obj := v.GetObject("fields")
	if obj == nil {
		return nil, fmt.Errorf(`object schema missing "fields"`)
	}

	var fields []Field
	var visitErr error
	// Visit iterates members in document order.
	obj.Visit(func(key []byte, fv *fastjson.Value) {
		if visitErr != nil {
			return
		}
		child, err := parseValue(fv)
		if err != nil {
			visitErr = fmt.Errorf("field %q: %w", key, err)
			return
		}
		fields = append(fields, Field{Name: string(key), Schema: child})
	})
	if visitErr != nil {
		return nil, visitErr
	}
	return fields, nil
}

func parseEnumOptions(v *fastjson.Value) ([]any, error) {
	values := v.GetArray("options")
	if values == nil {
		return nil, fmt.Errorf(`enum schema missing "options"`)
	}

	options := make([]any, 0, len(values))
	for _, value := range values {
		switch value.Type() {
		case fastjson.TypeString:
			options = append(options, string(value.GetStringBytes()))
		case fastjson.TypeNumber:
			options = append(options, value.GetFloat64())
		default:
			return nil, fmt.Errorf("enum options must be strings or numbers, got %s", value.Type())
		}
	}
	return options, nil
}
