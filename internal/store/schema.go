package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaURL identifies the bundled schema inside the compiler.
const schemaURL = "data.schema.json"

// bundledSchema describes the data file.
const bundledSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "projman data file",
  "type": "array",
  "items": { "$ref": "#/$defs/user" },
  "$defs": {
    "user": {
      "type": "object",
      "required": ["name", "projects"],
      "properties": {
        "name": { "type": "string" },
        "projects": { "type": "array", "items": { "$ref": "#/$defs/project" } }
      }
    },
    "project": {
      "type": "object",
      "required": ["name", "tasks"],
      "properties": {
        "name": { "type": "string" },
        "tasks": { "type": "array", "items": { "$ref": "#/$defs/task" } }
      }
    },
    "task": {
      "type": "object",
      "required": ["title", "completed"],
      "properties": {
        "title": { "type": "string" },
        "completed": { "type": "boolean" }
      }
    }
  }
}`

// BundledSchema returns the JSON Schema the data file is validated against.
func BundledSchema() []byte {
	return []byte(bundledSchema)
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(bundledSchema)); err != nil {
		return nil, fmt.Errorf("add bundled schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// ValidationError represents a schema violation with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid    bool
	Exists   bool
	Errors   []error
	Warnings []string
}

// validateValue checks a decoded JSON value against the bundled schema.
func validateValue(v any) (*ValidationResult, error) {
	result := &ValidationResult{Valid: true, Exists: true}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
	return result, nil
}

func appendSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath turns "/0/projects/1" into "[0].projects[1]".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var path strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&path, "[%d]", idx)
			continue
		}
		if path.Len() > 0 {
			path.WriteByte('.')
		}
		path.WriteString(part)
	}
	return path.String()
}
