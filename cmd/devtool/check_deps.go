package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required local tooling"
}

// tool describes one binary the dev workflow expects. field selects the
// whitespace separated word of the first output line holding the version.
type tool struct {
	label    string
	argv     []string
	field    int
	required bool
	hint     string
}

var devTools = []tool{
	{"Go", []string{"go", "version"}, 2, true, "Install from: https://go.dev/dl/"},
	{"Docker", []string{"docker", "--version"}, 2, true, "Install from: https://docs.docker.com/get-docker/"},
	{"Docker Compose", []string{"docker", "compose", "version"}, 3, false, "Bundled with recent Docker releases"},
	{"Make", []string{"make", "--version"}, 2, true, "Install via your package manager"},
	{"Goose", []string{"goose", "--version"}, -1, false, "go install github.com/pressly/goose/v3/cmd/goose@latest"},
}

// versionWord picks the version out of a tool's output; -1 means the last word
func versionWord(out string, field int) string {
	first, _, _ := strings.Cut(out, "\n")
	words := strings.Fields(first)
	if len(words) == 0 {
		return out
	}
	if field < 0 || field >= len(words) {
		field = len(words) - 1
	}
	v := strings.TrimRight(words[field], ",")
	return strings.TrimPrefix(v, "version:")
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	var missing []string
	for _, t := range devTools {
		out, err := getCommandOutput(t.argv[0], t.argv[1:]...)
		if err != nil && t.argv[0] == "goose" {
			if home, herr := os.UserHomeDir(); herr == nil {
				out, err = getCommandOutput(filepath.Join(home, "go", "bin", "goose"), t.argv[1:]...)
			}
		}

		switch {
		case err == nil:
			PrintSuccess("%s installed: %s", t.label, versionWord(out, t.field))
		case t.required:
			PrintError("%s not found. %s", t.label, t.hint)
			missing = append(missing, t.label)
		default:
			PrintWarning("%s not found (optional). %s", t.label, t.hint)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errToolingMissing, strings.Join(missing, ", "))
	}
	PrintSuccess("Environment check complete")
	return nil
}

var errToolingMissing = errors.New("required tooling missing")
