package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/osse101/BrandishRPG_Go/internal/setbonus"
)

// LoadSetTables returns the operator's set bonus tables, or the built-in
// tables when no path is configured or the file does not exist. A file that
// exists but fails schema or semantic validation is an error.
func LoadSetTables(path string) (*setbonus.Tables, error) {
	if path == "" {
		slog.Info(LogMsgUsingBuiltInTables)
		return setbonus.Default(), nil
	}

	tables, err := setbonus.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			slog.Warn(LogMsgSetTablesUnreadable, "path", path, "error", err)
			return setbonus.Default(), nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadSetTables, err)
	}

	slog.Info(LogMsgSetTablesLoaded, "path", path, "sets", len(tables.SetNames()))
	return tables, nil
}
