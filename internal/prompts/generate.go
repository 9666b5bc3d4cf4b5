// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunGenerateForm runs the interactive form for the generate command. It
// asks only for values not already set; empty package and root message fall
// back to the compiler defaults.
func RunGenerateForm(schemaPath, packageName, rootMessage, output *string) error {
	var fields []huh.Field

	if *schemaPath == "" {
		fields = append(fields, huh.NewInput().
			Title("Schema file").
			Placeholder("e.g., ./schemas/user.json").
			Value(schemaPath).
			Validate(requiredValidator("schema file")))
	}
	if *packageName == "" {
		fields = append(fields, huh.NewInput().
			Title("Package name (optional)").
			Placeholder("default").
			Value(packageName))
	}
	if *rootMessage == "" {
		fields = append(fields, huh.NewInput().
			Title("Root message name (optional)").
			Placeholder("Message").
			Value(rootMessage))
	}
	if *output == "" {
		fields = append(fields, huh.NewInput().
			Title("Output file (optional, stdout if empty)").
			Placeholder("e.g., ./schemas/user.proto").
			Value(output))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
