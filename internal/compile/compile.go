// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package compile turns a typed schema tree into a proto3 definition file.
//
// The compiler walks the tree once, depth first. Scalar leaves resolve to
// proto3 scalar tokens; composite nodes (objects, enums, tuples, map values
// that are objects) are hoisted into named top-level definitions collected
// in two insertion-ordered registries, which the emitter renders after the
// walk. Hoisted definitions always precede the messages that reference them
// because registration happens bottom-up; the root message is registered
// last.
package compile

import (
	"github.com/dacolabs/protogen/internal/tschema"
)

// Defaults applied when an Options field is empty.
const (
	DefaultPackageName     = "default"
	DefaultRootMessageName = "Message"
)

// Options configure a Compile call.
type Options struct {
	// PackageName is the value of the package declaration.
	PackageName string
	// RootMessageName is the base name of the outermost message.
	RootMessageName string
	// TypePrefix is prepended to every generated message and enum name,
	// including the root. Field names are never prefixed.
	TypePrefix string
}

// compiler holds the state of one compile invocation. The registries are
// owned exclusively by this invocation and discarded afterwards.
type compiler struct {
	prefix   string
	messages *registry[[]fieldDef]
	enums    *registry[string]
	visiting map[*tschema.Node]bool
}

// Compile renders the schema as a complete proto3 document. The schema must
// resolve, after stripping Optional and Nullable wrappers, to an object.
// Compilation is deterministic: the same schema and options always produce
// byte-identical output.
func Compile(schema *tschema.Node, opts Options) (string, error) {
	if opts.PackageName == "" {
		opts.PackageName = DefaultPackageName
	}
	if opts.RootMessageName == "" {
		opts.RootMessageName = DefaultRootMessageName
	}

	root := schema
	for root != nil && root != root.Unwrap() {
		root = root.Unwrap()
	}
	if root == nil {
		return "", &UnsupportedTypeError{Kind: "nil"}
	}
	if root.Kind() != tschema.KindObject {
		return "", &UnsupportedTypeError{Kind: root.Kind().String()}
	}

	c := &compiler{
		prefix:   opts.TypePrefix,
		messages: newRegistry[[]fieldDef](),
		enums:    newRegistry[string](),
		visiting: make(map[*tschema.Node]bool),
	}

	c.visiting[root] = true
	fields, err := c.compileFields(root, "")
	if err != nil {
		return "", err
	}

	// The root goes in last, after every type discovered while compiling it.
	c.messages.set(opts.TypePrefix+opts.RootMessageName, fields)

	return c.emit(opts.PackageName)
}

// compileFields compiles an object's members in declaration order into a
// flat descriptor list. Field numbers are assigned per message at render
// time, restarting at 1 for every message scope.
func (c *compiler) compileFields(obj *tschema.Node, path string) ([]fieldDef, error) {
	var fields []fieldDef
	for _, member := range obj.Fields() {
		defs, err := c.compileField(member.Name, member.Schema, childPath(path, member.Name), false, false)
		if err != nil {
			return nil, err
		}
		fields = append(fields, defs...)
	}
	return fields, nil
}
