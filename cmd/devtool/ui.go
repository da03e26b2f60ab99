package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

func say(color, icon, format string, a ...any) {
	fmt.Printf("%s%s %s%s\n", color, icon, fmt.Sprintf(format, a...), colorReset)
}

func PrintInfo(format string, a ...any)    { say(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...any) { say(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...any) { say(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...any)   { say(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Printf("\n%s=== %s ===%s\n", colorYellow, title, colorReset)
}

// hostilePatterns are shell metacharacters rejected in command arguments even
// though exec.Command does not use a shell. '&' and ';' stay allowed for URLs.
var hostilePatterns = []string{"|", "`", "$(", "&&", "||", ">", "<", "\n", "\r", "\x00"}

func checkHostile(inputs ...string) error {
	for _, s := range inputs {
		for _, p := range hostilePatterns {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

func command(name string, args ...string) (*exec.Cmd, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return nil, err
	}
	return exec.Command(name, args...), nil // #nosec G204 -- arguments pass checkHostile
}

// getCommandOutput runs a command and returns its trimmed stdout
func getCommandOutput(name string, args ...string) (string, error) {
	cmd, err := command(name, args...)
	if err != nil {
		return "", err
	}
	out, err := cmd.Output()
	return strings.TrimSpace(string(out)), err
}

// runCommand runs a command discarding its output
func runCommand(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// runCommandVerbose runs a command attached to this process's stdout and stderr
func runCommandVerbose(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// retry calls fn up to attempts times, sleeping interval between failures,
// and returns the last error
func retry(attempts int, interval time.Duration, fn func(attempt int) error) error {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(i); err == nil {
			return nil
		}
		if i < attempts {
			fmt.Printf("  not ready (%d/%d): %v\n", i, attempts, err)
			time.Sleep(interval)
		}
	}
	return err
}
