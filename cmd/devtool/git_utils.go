package main

import (
	"fmt"
	"path"
	"slices"
	"strings"
)

// getChangedPackages lists the packages touched by uncommitted changes, or by
// the index when stagedOnly is set
func getChangedPackages(stagedOnly bool) ([]string, error) {
	args := []string{"diff", "HEAD", "--name-only", "--diff-filter=ACMR"}
	if stagedOnly {
		args = []string{"diff", "--cached", "--name-only", "--diff-filter=ACMR"}
	}
	out, err := getCommandOutput("git", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get changed files: %w", err)
	}
	return packagesFromFiles(strings.Split(out, "\n")), nil
}

// packagesFromFiles maps changed paths to ./pkg patterns. A module file change
// selects every package.
func packagesFromFiles(files []string) []string {
	var pkgs []string
	for _, f := range files {
		f = strings.TrimSpace(f)
		switch {
		case f == "go.mod" || f == "go.sum":
			return []string{"./..."}
		case strings.HasSuffix(f, ".go"):
			dir := path.Dir(strings.ReplaceAll(f, "\\", "/"))
			if dir == "." {
				pkgs = append(pkgs, "./")
			} else {
				pkgs = append(pkgs, "./"+strings.TrimPrefix(dir, "./"))
			}
		}
	}
	slices.Sort(pkgs)
	return slices.Compact(pkgs)
}
