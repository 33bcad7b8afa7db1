package main

import (
	"fmt"
	"strings"
)

// tool is an executable the development workflow relies on
type tool struct {
	name     string
	args     []string
	install  string
	required bool
}

var devTools = []tool{
	{"go", []string{"version"}, "https://go.dev/dl/", true},
	{"make", []string{"--version"}, "sudo apt install make", false},
	{"swag", []string{"--version"}, "go install github.com/swaggo/swag/cmd/swag@latest", false},
	{"mockery", []string{"--version"}, "go install github.com/vektra/mockery/v2@latest", false},
	{"golangci-lint", []string{"--version"}, "go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest", false},
	{"benchstat", []string{"-h"}, "go install golang.org/x/perf/cmd/benchstat@latest", false},
}

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check that development tools are installed"
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	var missing []string
	for _, t := range devTools {
		out, err := getCommandOutput(t.name, t.args...)
		if err == nil {
			first, _, _ := strings.Cut(out, "\n")
			PrintSuccess("%s: %s", t.name, first)
			continue
		}
		if t.required {
			PrintError("%s not found. Install: %s", t.name, t.install)
			missing = append(missing, t.name)
		} else {
			PrintWarning("%s not found (optional). Install: %s", t.name, t.install)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
	}
	PrintSuccess("Environment check complete")
	return nil
}
