// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSONSchema_Object(t *testing.T) {
	doc := `{
		"type": "object",
		"required": ["id"],
		"properties": {
			"id": {"type": "integer"},
			"name": {"type": "string"},
			"score": {"type": "number"},
			"active": {"type": "boolean"}
		}
	}`

	node, err := FromJSONSchema([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, KindObject, node.Kind())
	require.Len(t, node.Fields(), 4)

	// Document order preserved.
	assert.Equal(t, "id", node.Fields()[0].Name)
	assert.Equal(t, "name", node.Fields()[1].Name)

	// Required stays bare, everything else is wrapped Optional.
	assert.Equal(t, KindNumber, node.Fields()[0].Schema.Kind())
	assert.Equal(t, KindOptional, node.Fields()[1].Schema.Kind())
	assert.Equal(t, KindString, node.Fields()[1].Schema.Unwrap().Kind())
}

func TestFromJSONSchema_DateFormats(t *testing.T) {
	doc := `{
		"type": "object",
		"required": ["created_at", "birth_date", "note"],
		"properties": {
			"created_at": {"type": "string", "format": "date-time"},
			"birth_date": {"type": "string", "format": "date"},
			"note": {"type": "string", "format": "uuid"}
		}
	}`

	node, err := FromJSONSchema([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, KindDate, node.Fields()[0].Schema.Kind())
	assert.Equal(t, KindDate, node.Fields()[1].Schema.Kind())
	assert.Equal(t, KindString, node.Fields()[2].Schema.Kind())
}

func TestFromJSONSchema_Enum(t *testing.T) {
	doc := `{
		"type": "object",
		"required": ["status"],
		"properties": {
			"status": {"enum": ["ACTIVE", "INACTIVE"]}
		}
	}`

	node, err := FromJSONSchema([]byte(doc))
	require.NoError(t, err)

	status := node.Fields()[0].Schema
	require.Equal(t, KindEnum, status.Kind())
	assert.Equal(t, []any{"ACTIVE", "INACTIVE"}, status.Options())
}

func TestFromJSONSchema_Array(t *testing.T) {
	doc := `{
		"type": "object",
		"required": ["tags"],
		"properties": {
			"tags": {"type": "array", "items": {"type": "string"}}
		}
	}`

	node, err := FromJSONSchema([]byte(doc))
	require.NoError(t, err)

	tags := node.Fields()[0].Schema
	require.Equal(t, KindArray, tags.Kind())
	assert.Equal(t, KindString, tags.Elem().Kind())
}

func TestFromJSONSchema_NestedObjectOrder(t *testing.T) {
	doc := `{
		"type": "object",
		"required": ["address"],
		"properties": {
			"address": {
				"type": "object",
				"required": ["street", "city"],
				"properties": {
					"street": {"type": "string"},
					"city": {"type": "string"}
				}
			}
		}
	}`

	node, err := FromJSONSchema([]byte(doc))
	require.NoError(t, err)

	address := node.Fields()[0].Schema
	require.Equal(t, KindObject, address.Kind())
	require.Len(t, address.Fields(), 2)
	assert.Equal(t, "street", address.Fields()[0].Name)
	assert.Equal(t, "city", address.Fields()[1].Name)
}

func TestFromJSONSchema_Errors(t *testing.T) {
	_, err := FromJSONSchema([]byte(`{`))
	assert.ErrorContains(t, err, "failed to parse JSON Schema")

	_, err = FromJSONSchema([]byte(`{"type": "null"}`))
	assert.ErrorContains(t, err, `unsupported JSON Schema type "null"`)

	_, err = FromJSONSchema([]byte(`{"type": "array"}`))
	assert.ErrorContains(t, err, `missing "items"`)
}
