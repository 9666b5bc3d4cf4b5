// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package compile

import "github.com/dacolabs/protogen/internal/tschema"

// scalarType maps a leaf schema node to its proto3 scalar type token.
// Dates serialize as opaque strings; there is no structured timestamp type.
func scalarType(node *tschema.Node) (string, error) {
	switch node.Kind() {
	case tschema.KindString:
		return "string", nil
	case tschema.KindNumber:
		if node.IsInteger() {
			return "int32", nil
		}
		return "double", nil
	case tschema.KindBoolean:
		return "bool", nil
	case tschema.KindDate:
		return "string", nil
	case tschema.KindBigInt:
		return "int64", nil
	default:
		return "", &UnsupportedTypeError{Kind: node.Kind().String()}
	}
}
