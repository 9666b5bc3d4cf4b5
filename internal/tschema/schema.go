// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package tschema models in-memory typed-schema trees, the input to the
// proto3 compiler. A tree is built from a closed set of node kinds via the
// constructor functions in this package or loaded from a file with Loader.
package tschema

// Kind discriminates the variant of a schema node.
type Kind int

// The closed set of schema node kinds.
const (
	KindObject Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindDate
	KindBigInt
	KindEnum
	KindArray
	KindSet
	KindTuple
	KindMap
	KindOptional
	KindNullable
	KindAny
	KindUnion
)

var kindNames = map[Kind]string{
	KindObject:   "object",
	KindString:   "string",
	KindNumber:   "number",
	KindBoolean:  "boolean",
	KindDate:     "date",
	KindBigInt:   "bigint",
	KindEnum:     "enum",
	KindArray:    "array",
	KindSet:      "set",
	KindTuple:    "tuple",
	KindMap:      "map",
	KindOptional: "optional",
	KindNullable: "nullable",
	KindAny:      "any",
	KindUnion:    "union",
}

// String returns the kind's name as used in schema files and error messages.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Field is one named member of an object schema. Field order is significant
// and preserved everywhere.
type Field struct {
	Name   string
	Schema *Node
}

// Node is one node of a schema tree, tagged by Kind. Nodes are created via
// the constructor functions and are read-only apart from SetField.
type Node struct {
	kind      Kind
	fields    []Field // object
	isInteger bool    // number
	options   []any   // enum: string or float64 members
	elem      *Node   // array, set, optional, nullable
	elems     []*Node // tuple, union
	mapKey    *Node   // map
	mapValue  *Node   // map
}

// Object returns an object schema with the given members, in order.
func Object(fields ...Field) *Node {
	return &Node{kind: KindObject, fields: fields}
}

// String returns a string schema.
func String() *Node { return &Node{kind: KindString} }

// Number returns a floating-point number schema.
func Number() *Node { return &Node{kind: KindNumber} }

// Integer returns an integer number schema.
func Integer() *Node { return &Node{kind: KindNumber, isInteger: true} }

// Boolean returns a boolean schema.
func Boolean() *Node { return &Node{kind: KindBoolean} }

// Date returns a date schema. Dates serialize as opaque strings.
func Date() *Node { return &Node{kind: KindDate} }

// BigInt returns an arbitrary-precision integer schema.
func BigInt() *Node { return &Node{kind: KindBigInt} }

// Enum returns an enum schema over the given options, in declaration order.
// Options must be strings or numbers.
func Enum(options ...any) *Node {
	return &Node{kind: KindEnum, options: options}
}

// Array returns an array schema with the given element type.
func Array(elem *Node) *Node { return &Node{kind: KindArray, elem: elem} }

// Set returns a set schema with the given element type.
func Set(elem *Node) *Node { return &Node{kind: KindSet, elem: elem} }

// Tuple returns a fixed-length tuple schema over the given element types.
func Tuple(elems ...*Node) *Node {
	return &Node{kind: KindTuple, elems: elems}
}

// Map returns a map schema with the given key and value types.
func Map(key, value *Node) *Node {
	return &Node{kind: KindMap, mapKey: key, mapValue: value}
}

// Optional wraps a schema to mark the field as possibly absent.
func Optional(inner *Node) *Node { return &Node{kind: KindOptional, elem: inner} }

// Nullable wraps a schema to mark the field as possibly null. The compiler
// treats it the same as Optional.
func Nullable(inner *Node) *Node { return &Node{kind: KindNullable, elem: inner} }

// Any returns a schema matching any value. It cannot be compiled.
func Any() *Node { return &Node{kind: KindAny} }

// Union returns a schema matching any of the given alternatives. It cannot
// be compiled.
func Union(options ...*Node) *Node {
	return &Node{kind: KindUnion, elems: options}
}

// Kind returns the node's variant tag.
func (n *Node) Kind() Kind { return n.kind }

// Fields returns an object schema's members in declaration order.
func (n *Node) Fields() []Field { return n.fields }

// IsInteger reports whether a number schema is integer-valued.
func (n *Node) IsInteger() bool { return n.isInteger }

// Options returns an enum schema's members in declaration order.
func (n *Node) Options() []any { return n.options }

// Elem returns the element type of an array or set schema.
func (n *Node) Elem() *Node { return n.elem }

// Elems returns the element types of a tuple or union schema.
func (n *Node) Elems() []*Node { return n.elems }

// KeyType returns the key type of a map schema.
func (n *Node) KeyType() *Node { return n.mapKey }

// ValueType returns the value type of a map schema.
func (n *Node) ValueType() *Node { return n.mapValue }

// Unwrap strips one Optional or Nullable layer. For any other kind it
// returns the node unchanged.
func (n *Node) Unwrap() *Node {
	if n.kind == KindOptional || n.kind == KindNullable {
		return n.elem
	}
	return n
}

// SetField adds or replaces a member of an object schema. Attaching a field
// after construction is the only way to express a self-referential schema.
// It panics if the node is not an object.
func (n *Node) SetField(name string, schema *Node) {
	if n.kind != KindObject {
		panic("tschema: SetField on non-object schema")
	}
	for i := range n.fields {
		if n.fields[i].Name == name {
			n.fields[i].Schema = schema
			return
		}
	}
	n.fields = append(n.fields, Field{Name: name, Schema: schema})
}
