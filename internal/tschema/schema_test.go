// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors_Kinds(t *testing.T) {
	tests := []struct {
		node *Node
		want Kind
	}{
		{Object(), KindObject},
		{String(), KindString},
		{Number(), KindNumber},
		{Integer(), KindNumber},
		{Boolean(), KindBoolean},
		{Date(), KindDate},
		{BigInt(), KindBigInt},
		{Enum("A"), KindEnum},
		{Array(String()), KindArray},
		{Set(String()), KindSet},
		{Tuple(String(), Number()), KindTuple},
		{Map(String(), String()), KindMap},
		{Optional(String()), KindOptional},
		{Nullable(String()), KindNullable},
		{Any(), KindAny},
		{Union(String(), Number()), KindUnion},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Kind())
		})
	}
}

func TestNumber_IsInteger(t *testing.T) {
	assert.False(t, Number().IsInteger())
	assert.True(t, Integer().IsInteger())
}

func TestUnwrap(t *testing.T) {
	inner := String()

	assert.Same(t, inner, Optional(inner).Unwrap())
	assert.Same(t, inner, Nullable(inner).Unwrap())

	// One layer at a time.
	double := Optional(Nullable(inner))
	assert.Equal(t, KindNullable, double.Unwrap().Kind())

	// Non-wrappers unwrap to themselves.
	assert.Same(t, inner, inner.Unwrap())
}

func TestObject_FieldOrder(t *testing.T) {
	obj := Object(
		Field{Name: "z", Schema: String()},
		Field{Name: "a", Schema: Integer()},
		Field{Name: "m", Schema: Boolean()},
	)

	names := make([]string, 0, len(obj.Fields()))
	for _, f := range obj.Fields() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"z", "a", "m"}, names)
}

func TestSetField(t *testing.T) {
	obj := Object(Field{Name: "a", Schema: String()})

	obj.SetField("b", Integer())
	assert.Len(t, obj.Fields(), 2)
	assert.Equal(t, "b", obj.Fields()[1].Name)

	// Replacing keeps the position.
	obj.SetField("a", Boolean())
	assert.Len(t, obj.Fields(), 2)
	assert.Equal(t, KindBoolean, obj.Fields()[0].Schema.Kind())

	// Self-reference is representable; the compiler rejects it.
	obj.SetField("self", obj)
	assert.Same(t, obj, obj.Fields()[2].Schema)
}

func TestSetField_NonObjectPanics(t *testing.T) {
	assert.Panics(t, func() {
		String().SetField("x", String())
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "bigint", KindBigInt.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
