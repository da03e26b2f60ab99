// Package validation checks configuration documents against JSON schemas
// before they are decoded into typed tables. YAML documents are normalized
// to their JSON form first so one schema serves both encodings.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// ErrUnknownSchema is returned when validating against a name never registered
var ErrUnknownSchema = errors.New("unknown schema")

// SchemaValidator validates JSON or YAML data against named JSON schemas
type SchemaValidator interface {
	Register(name string, schema []byte) error
	ValidateJSON(data []byte, name string) error
	ValidateYAML(data []byte, name string) error
	ValidateFile(dataPath, name string) error
}

type validator struct {
	mu       sync.RWMutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// Register compiles schema and stores it under name
func (v *validator) Register(name string, schema []byte) error {
	var schemaJSON any
	if err := json.Unmarshal(schema, &schemaJSON); err != nil {
		return fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.compiler.AddResource(name, schemaJSON); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}
	v.schemas[name] = compiled
	return nil
}

// ValidateFile validates a JSON or YAML file, chosen by extension
func (v *validator) ValidateFile(dataPath, name string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	switch strings.ToLower(filepath.Ext(dataPath)) {
	case ".yaml", ".yml":
		return v.ValidateYAML(data, name)
	default:
		return v.ValidateJSON(data, name)
	}
}

// ValidateJSON validates JSON data bytes against a registered schema
func (v *validator) ValidateJSON(data []byte, name string) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	return v.validate(doc, name)
}

// ValidateYAML validates YAML data bytes against a registered schema.
// Mapping keys are stringified, so a tier table keyed by 2 matches "2".
func (v *validator) ValidateYAML(data []byte, name string) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse YAML data: %w", err)
	}

	// Round trip through encoding/json so numbers take the same shape as ValidateJSON
	encoded, err := json.Marshal(normalize(raw))
	if err != nil {
		return fmt.Errorf("failed to convert YAML data: %w", err)
	}
	return v.ValidateJSON(encoded, name)
}

func (v *validator) validate(doc any, name string) error {
	v.mu.RLock()
	schema, ok := v.schemas[name]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	if err := schema.Validate(doc); err != nil {
		return newValidationError(name, err)
	}
	return nil
}

// normalize converts yaml.v3 generic values into JSON-encodable ones
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return val
	}
}

// Violation is one failed keyword at one location of the document
type Violation struct {
	Path    string
	Keyword string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.Path, v.Message, v.Keyword)
}

// ValidationError lists every leaf violation found in a document
type ValidationError struct {
	Schema     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Violations)+1)
	lines = append(lines, fmt.Sprintf("document does not match schema %s", e.Schema))
	for _, v := range e.Violations {
		lines = append(lines, "  - "+v.String())
	}
	return strings.Join(lines, "\n")
}

var printer = message.NewPrinter(language.English)

func newValidationError(name string, err error) error {
	var schemaErr *jsonschema.ValidationError
	if !errors.As(err, &schemaErr) {
		return fmt.Errorf("validate against %s: %w", name, err)
	}
	out := &ValidationError{Schema: name}
	collect(schemaErr, &out.Violations)
	return out
}

// collect keeps leaves only; parents just summarize their causes
func collect(err *jsonschema.ValidationError, into *[]Violation) {
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			collect(cause, into)
		}
		return
	}

	v := Violation{Path: "/" + strings.Join(err.InstanceLocation, "/")}
	if err.ErrorKind != nil {
		v.Keyword = strings.Join(err.ErrorKind.KeywordPath(), "/")
		v.Message = err.ErrorKind.LocalizedString(printer)
	}
	*into = append(*into, v)
}
