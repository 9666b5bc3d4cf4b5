// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeSchemaFile(t *testing.T, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestGenerate_ToStdout(t *testing.T) {
	path := writeSchemaFile(t, `{"type": "object", "fields": {"name": {"type": "string"}}}`)

	output, err := runCommand(t, "generate", "--schema", path)
	require.NoError(t, err)

	assert.Contains(t, output, `syntax = "proto3";`)
	assert.Contains(t, output, "package default;")
	assert.Contains(t, output, "string name = 1;")
}

func TestGenerate_ToFile(t *testing.T) {
	path := writeSchemaFile(t, `{"type": "object", "fields": {"name": {"type": "string"}}}`)
	outPath := filepath.Join(t.TempDir(), "out", "schema.proto")

	_, err := runCommand(t, "generate", "--schema", path, "-o", outPath)
	require.NoError(t, err)

	content, err := os.ReadFile(outPath) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(content), "message Message {")
}

func TestGenerate_NamingFlags(t *testing.T) {
	path := writeSchemaFile(t, `{"type": "object", "fields": {"name": {"type": "string"}}}`)

	output, err := runCommand(t, "generate", "--schema", path,
		"--package", "users", "--root", "User", "--prefix", "Api")
	require.NoError(t, err)

	assert.Contains(t, output, "package users;")
	assert.Contains(t, output, "message ApiUser {")
}

func TestGenerate_ConfigDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	require.NoError(t, os.WriteFile("protogen.yaml", []byte("version: 1\npackage: users\nroot_message: User\n"), 0o600))
	require.NoError(t, os.WriteFile("schema.json", []byte(`{"type": "object", "fields": {"name": {"type": "string"}}}`), 0o600))

	output, err := runCommand(t, "generate", "--schema", "schema.json")
	require.NoError(t, err)

	assert.Contains(t, output, "package users;")
	assert.Contains(t, output, "message User {")
}

func TestGenerate_FlagsOverrideConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	require.NoError(t, os.WriteFile("protogen.yaml", []byte("version: 1\npackage: users\n"), 0o600))
	require.NoError(t, os.WriteFile("schema.json", []byte(`{"type": "object", "fields": {"name": {"type": "string"}}}`), 0o600))

	output, err := runCommand(t, "generate", "--schema", "schema.json", "--package", "accounts")
	require.NoError(t, err)

	assert.Contains(t, output, "package accounts;")
}

func TestGenerate_UnsupportedConfigVersion(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	require.NoError(t, os.WriteFile("protogen.yaml", []byte("version: 99\n"), 0o600))

	_, err := runCommand(t, "generate", "--schema", "schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config version")
}

func TestGenerate_JSONSchemaInput(t *testing.T) {
	path := writeSchemaFile(t, `{
		"type": "object",
		"required": ["id"],
		"properties": {
			"id": {"type": "integer"},
			"name": {"type": "string"}
		}
	}`)

	output, err := runCommand(t, "generate", "--schema", path, "--json-schema")
	require.NoError(t, err)

	assert.Contains(t, output, "int32 id = 1;")
	assert.Contains(t, output, "optional string name = 2;")
}

func TestGenerate_SchemaFileNotFound(t *testing.T) {
	_, err := runCommand(t, "generate", "--schema", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}

func TestGenerate_UnsupportedSchemaKind(t *testing.T) {
	path := writeSchemaFile(t, `{"type": "object", "fields": {"blob": {"type": "any"}}}`)

	_, err := runCommand(t, "generate", "--schema", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema type: any")
}

func TestVersionCommand(t *testing.T) {
	output, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "protogen version")
}
