package main

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-modeldoc/pkg/generator"
)

// pickModule resolves the module to document when --module is omitted. A
// single registered module is used as-is; multiple modules prompt a picker.
func pickModule(ctx context.Context, gen *generator.Generator) (string, error) {
	modules, err := gen.Modules(ctx)
	if err != nil {
		return "", err
	}
	switch len(modules) {
	case 0:
		return "", fmt.Errorf("no modules registered")
	case 1:
		return modules[0], nil
	}

	prompt := &survey.Select{
		Message: "Module to document:",
		Options: modules,
	}
	var picked string
	if err := survey.AskOne(prompt, &picked); err != nil {
		return "", fmt.Errorf("select module: %w", err)
	}
	return picked, nil
}
