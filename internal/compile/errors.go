// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package compile

// UnsupportedTypeError reports a schema node the compiler cannot express in
// proto3. Compilation aborts without partial output.
type UnsupportedTypeError struct {
	Kind string
}

func (e *UnsupportedTypeError) Error() string {
	return "unsupported schema type: " + e.Kind
}

// CyclicSchemaError reports a schema tree that contains itself.
type CyclicSchemaError struct {
	Path string
}

func (e *CyclicSchemaError) Error() string {
	return "cyclic schema detected at " + e.Path
}
