// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package compile

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed proto.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "proto.tmpl"))

// indent is the body indentation of message and enum blocks.
const indent = "    "

// document is the data rendered by proto.tmpl.
type document struct {
	Package  string
	Enums    []definition
	Messages []definition
}

// definition is one named block with its fully rendered body.
type definition struct {
	Name string
	Body string
}

// emit renders both registries in insertion order into the final document.
func (c *compiler) emit(packageName string) (string, error) {
	doc := document{
		Package:  packageName,
		Enums:    make([]definition, 0, c.enums.len()),
		Messages: make([]definition, 0, c.messages.len()),
	}

	for name, body := range c.enums.entries() {
		doc.Enums = append(doc.Enums, definition{Name: name, Body: body})
	}
	for name, fields := range c.messages.entries() {
		doc.Messages = append(doc.Messages, definition{Name: name, Body: renderFields(fields)})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "proto.tmpl", doc); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// renderFields assigns sequential field numbers starting at 1, scoped to
// this message, and renders the indented declaration lines.
func renderFields(fields []fieldDef) string {
	lines := make([]string, len(fields))
	for i, field := range fields {
		lines[i] = indent + field.render(i+1)
	}
	return strings.Join(lines, "\n")
}
