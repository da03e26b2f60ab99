package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// defaultCoverageThreshold applies when no threshold argument is given
const defaultCoverageThreshold = 80.0

const defaultCoverageFile = "logs/coverage.out"

var errCoverageBelowThreshold = errors.New("coverage below threshold")

type CheckCoverageCommand struct{}

func (c *CheckCoverageCommand) Name() string {
	return "check-coverage"
}

func (c *CheckCoverageCommand) Description() string {
	return "Run tests with coverage and check against threshold"
}

type coverageOptions struct {
	file      string
	threshold float64
	run       bool
	html      bool
	smart     bool
	packages  []string
}

// parseCoverageArgs reads flags then [file] [threshold] [packages...]
func parseCoverageArgs(args []string) (coverageOptions, error) {
	opts := coverageOptions{file: defaultCoverageFile, threshold: defaultCoverageThreshold}

	fs := flag.NewFlagSet("check-coverage", flag.ContinueOnError)
	fs.BoolVar(&opts.run, "run", false, "Run tests before checking coverage")
	fs.BoolVar(&opts.html, "html", false, "Write an HTML report next to the profile")
	fs.BoolVar(&opts.smart, "smart", false, "Only test packages with local changes")
	pkgs := fs.String("pkgs", "", "Comma-separated packages to test")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	rest := fs.Args()
	if len(rest) > 0 {
		opts.file = filepath.Clean(rest[0])
	}
	if len(rest) > 1 {
		t, err := strconv.ParseFloat(rest[1], 64)
		if err != nil {
			return opts, fmt.Errorf("invalid threshold %q", rest[1])
		}
		opts.threshold = t
	}
	if len(rest) > 2 {
		opts.packages = append(opts.packages, rest[2:]...)
	}
	for _, p := range strings.Split(*pkgs, ",") {
		if p = strings.TrimSpace(p); p != "" {
			opts.packages = append(opts.packages, p)
		}
	}

	if strings.Contains(opts.file, "..") || filepath.IsAbs(opts.file) {
		return opts, fmt.Errorf("invalid path %q: must be relative and within the project", opts.file)
	}
	return opts, nil
}

func (c *CheckCoverageCommand) Run(args []string) error {
	opts, err := parseCoverageArgs(args)
	if err != nil {
		return err
	}

	if opts.smart {
		changed, err := getChangedPackages(false)
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			PrintInfo("Smart mode: no changed packages, skipping tests")
			return nil
		}
		PrintInfo("Smart mode: testing %v", changed)
		opts.packages = append(opts.packages, changed...)
	}
	slices.Sort(opts.packages)
	opts.packages = slices.Compact(opts.packages)

	PrintHeader(fmt.Sprintf("Checking coverage threshold (%.1f%%)", opts.threshold))

	// A profile on disk may cover a different package set than requested
	_, statErr := os.Stat(opts.file)
	if opts.run || len(opts.packages) > 0 || os.IsNotExist(statErr) {
		if err := runCoverageTests(opts.file, opts.packages); err != nil {
			return err
		}
	}

	out, err := getCommandOutput("go", "tool", "cover", "-func="+opts.file)
	if err != nil {
		return fmt.Errorf("go tool cover: %w", err)
	}
	total, err := parseCoverageTotal(out)
	if err != nil {
		return err
	}
	PrintInfo("Total coverage: %.1f%%", total)

	if opts.html {
		report := strings.TrimSuffix(opts.file, ".out") + ".html"
		if err := runCommand("go", "tool", "cover", "-html="+opts.file, "-o", report); err != nil {
			PrintWarning("Failed to generate HTML report: %v", err)
		} else {
			PrintSuccess("HTML report written to %s", report)
		}
	}

	if total < opts.threshold {
		PrintError("Coverage %.1f%% is below %.1f%%", total, opts.threshold)
		return errCoverageBelowThreshold
	}
	PrintSuccess("Coverage meets threshold")
	return nil
}

func runCoverageTests(file string, packages []string) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("create coverage directory: %w", err)
	}
	if len(packages) == 0 {
		packages = []string{"./..."}
	}

	PrintInfo("Running tests with coverage...")
	args := append([]string{"test"}, packages...)
	args = append(args, "-coverprofile="+file, "-covermode=atomic", "-race")
	if err := runCommandVerbose("go", args...); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	return nil
}

// parseCoverageTotal extracts the percentage from the "total:" line of
// go tool cover -func output
func parseCoverageTotal(out string) (float64, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "total:") {
			continue
		}
		fields := strings.Fields(line)
		pct := strings.TrimSuffix(fields[len(fields)-1], "%")
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse coverage percentage %q", pct)
		}
		return v, nil
	}
	return 0, errors.New("no total line in coverage output")
}
