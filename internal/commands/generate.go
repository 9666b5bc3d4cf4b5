// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/protogen/internal/compile"
	"github.com/dacolabs/protogen/internal/config"
	"github.com/dacolabs/protogen/internal/prompts"
	"github.com/dacolabs/protogen/internal/tschema"
)

type generateOptions struct {
	schema      string
	packageName string
	rootMessage string
	typePrefix  string
	output      string
	jsonSchema  bool
	interactive bool
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a proto3 definition from a schema file",
		Long: `Generate a proto3 definition from a typed schema file.

Defaults for package, root message, type prefix, and output can be set in
` + config.DefaultFileName + `; flags take precedence.`,
		Example: `  # Interactive mode
  protogen generate

  # Compile a schema to stdout
  protogen generate --schema schemas/user.json

  # Compile to a file with explicit naming
  protogen generate --schema schemas/user.json --package users --root User -o schemas/user.proto

  # Treat the input as a JSON Schema document
  protogen generate --schema schemas/user.schema.json --json-schema`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Schema file to compile")
	cmd.Flags().StringVar(&opts.packageName, "package", "", `Package name (default "default")`)
	cmd.Flags().StringVar(&opts.rootMessage, "root", "", `Root message name (default "Message")`)
	cmd.Flags().StringVar(&opts.typePrefix, "prefix", "", "Prefix for every generated message and enum name")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.jsonSchema, "json-schema", false, "Treat the input as a JSON Schema document")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	if err := applyConfigDefaults(opts); err != nil {
		return err
	}

	// No schema flag means interactive mode.
	if opts.schema == "" {
		opts.interactive = true
		if err := prompts.RunGenerateForm(&opts.schema, &opts.packageName, &opts.rootMessage, &opts.output); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(opts.schema) //nolint:gosec // path is provided by caller
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	var schema *tschema.Node
	if opts.jsonSchema {
		schema, err = tschema.FromJSONSchema(data)
	} else {
		schema, err = tschema.Parse(data)
	}
	if err != nil {
		return err
	}

	output, err := compile.Compile(schema, compile.Options{
		PackageName:     opts.packageName,
		RootMessageName: opts.rootMessage,
		TypePrefix:      opts.typePrefix,
	})
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(opts.output, []byte(output+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if opts.interactive {
		prompts.PrintResult([]prompts.ResultField{
			{Label: "Schema", Value: opts.schema},
			{Label: "Output", Value: opts.output},
		}, "Generated proto3 definition")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", opts.output)
	}

	return nil
}

// applyConfigDefaults fills unset options from protogen.yaml when present.
// A missing config file is not an error.
func applyConfigDefaults(opts *generateOptions) error {
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", config.DefaultFileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid %s: %w", config.DefaultFileName, err)
	}

	if opts.packageName == "" {
		opts.packageName = cfg.Package
	}
	if opts.rootMessage == "" {
		opts.rootMessage = cfg.RootMessage
	}
	if opts.typePrefix == "" {
		opts.typePrefix = cfg.TypePrefix
	}
	if opts.output == "" {
		opts.output = cfg.Output
	}
	return nil
}
