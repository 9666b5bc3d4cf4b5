// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// FromJSONSchema converts a JSON Schema document into a schema tree.
// Property order from the raw document is preserved; properties not listed
// in "required" become Optional. Only the structural subset of JSON Schema
// is supported: object, array, string (with date formats), integer, number,
// boolean, and enum.
func FromJSONSchema(data []byte) (*Node, error) {
	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse JSON Schema: %w", err)
	}

	keyOrder := extractKeyOrder(data)

	return fromSchema(&schema, "", keyOrder)
}

func fromSchema(s *jsonschema.Schema, path string, keyOrder map[string][]string) (*Node, error) {
	if s == nil {
		return nil, fmt.Errorf("missing schema at %q", path)
	}

	if len(s.Enum) > 0 {
		return Enum(s.Enum...), nil
	}

	switch s.Type {
	case "object":
		orderPath := "properties"
		if path != "" {
			orderPath = path + ".properties"
		}
		fields := make([]Field, 0, len(s.Properties))
		for _, name := range orderedPropertyNames(s, keyOrder[orderPath]) {
			child, err := fromSchema(s.Properties[name], orderPath+"."+name, keyOrder)
			if err != nil {
				return nil, err
			}
			if !slices.Contains(s.Required, name) {
				child = Optional(child)
			}
			fields = append(fields, Field{Name: name, Schema: child})
		}
		return Object(fields...), nil
	case "array":
		if s.Items == nil {
			return nil, fmt.Errorf(`array schema at %q missing "items"`, path)
		}
		elem, err := fromSchema(s.Items, path+".items", keyOrder)
		if err != nil {
			return nil, err
		}
		return Array(elem), nil
	case "string":
		if s.Format == "date" || s.Format == "date-time" {
			return Date(), nil
		}
		return String(), nil
	case "integer":
		return Integer(), nil
	case "number":
		return Number(), nil
	case "boolean":
		return Boolean(), nil
	default:
		return nil, fmt.Errorf("unsupported JSON Schema type %q at %q", s.Type, path)
	}
}

// orderedPropertyNames returns property names in their original document
// order, falling back to sorted order when the raw order is unknown.
func orderedPropertyNames(s *jsonschema.Schema, order []string) []string {
	if len(order) > 0 {
		names := make([]string, 0, len(order))
		for _, name := range order {
			if _, ok := s.Properties[name]; ok {
				names = append(names, name)
			}
		}
		return names
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// extractKeyOrder walks raw JSON tokens and records the member order of every
// "properties" object, keyed by its dotted path.
func extractKeyOrder(data []byte) map[string][]string {
	result := make(map[string][]string)

	var extract func(dec *json.Decoder, path string)
	extract = func(dec *json.Decoder, path string) {
		token, err := dec.Token()
		if err != nil {
			return
		}
		delim, ok := token.(json.Delim)
		if !ok {
			return
		}
		switch delim {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return
				}
				key, ok := keyToken.(string)
				if !ok {
					continue
				}
				keys = append(keys, key)

				newPath := key
				if path != "" {
					newPath = path + "." + key
				}
				extract(dec, newPath)
			}
			_, _ = dec.Token()
			if path == "properties" || strings.HasSuffix(path, ".properties") {
				result[path] = keys
			}
		case '[':
			for dec.More() {
				extract(dec, path)
			}
			_, _ = dec.Token()
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	extract(dec, "")
	return result
}
