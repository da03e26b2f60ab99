package setbonus

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/osse101/BrandishRPG_Go/internal/validation"
)

//go:embed tables.schema.json
var tablesSchema []byte

// TablesSchemaName is the name the table schema is registered under
const TablesSchemaName = "set-bonus-tables.schema.json"

// LoadFile reads an operator supplied table document, checks it against the
// table schema, then parses and validates it like the built-in tables.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTablesFailed, path, err)
	}

	v := validation.NewSchemaValidator()
	if err := v.Register(TablesSchemaName, tablesSchema); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTables, err)
	}
	if err := v.ValidateYAML(data, TablesSchemaName); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTables, path, err)
	}

	return Load(data)
}
