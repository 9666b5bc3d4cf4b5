// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package compile

import "strings"

// ToTypeName converts a dotted field path to a PascalCase type identifier,
// e.g. "user.address" becomes "UserAddress".
func ToTypeName(path string) string {
	var sb strings.Builder
	for _, part := range strings.Split(path, ".") {
		if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return sb.String()
}

// typeName generates the registered name for a hoisted type, qualified by
// the field's full dotted path and carrying the configured prefix.
func (c *compiler) typeName(path string) string {
	return c.prefix + ToTypeName(path)
}

// childPath extends a dotted field path by one key.
func childPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// replaceLast swaps the final segment of a dotted field path, used when a
// recursive call renames the field it compiles (array elements, map key and
// value slots, tuple positions).
func replaceLast(path, segment string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return segment
	}
	return path[:i+1] + segment
}
