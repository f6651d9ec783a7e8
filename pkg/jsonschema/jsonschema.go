// Package jsonschema validates JSON documents against JSON Schemas and
// infers a draft-07 schema from a sample document.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError describes one failed schema constraint.
type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// Validate checks document against schema. It returns the list of
// constraint violations; an empty list means the document conforms.
func Validate(schema, document []byte) ([]ValidationError, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:       e.Field(),
			Description: e.Description(),
		})
	}
	return errs, nil
}

// Infer derives a draft-07 JSON Schema from a sample document. Object
// properties become typed entries with all observed keys required; array
// item schemas are inferred from the first element.
func Infer(document []byte, title string) ([]byte, error) {
	var v any
	if err := json.Unmarshal(document, &v); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	schema := inferValue(v)
	schema["$schema"] = "http://json-schema.org/draft-07/schema#"
	if title != "" {
		schema["title"] = title
	}
	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}
	return out, nil
}

func inferValue(v any) map[string]any {
	switch v := v.(type) {
	case map[string]any:
		props := make(map[string]any, len(v))
		required := make([]string, 0, len(v))
		for k, val := range v {
			props[k] = inferValue(val)
			required = append(required, k)
		}
		sort.Strings(required)
		schema := map[string]any{"type": "object", "properties": props}
		if len(required) > 0 {
			schema["required"] = required
		}
		return schema
	case []any:
		schema := map[string]any{"type": "array"}
		if len(v) > 0 {
			schema["items"] = inferValue(v[0])
		}
		return schema
	case string:
		return map[string]any{"type": "string"}
	case bool:
		return map[string]any{"type": "boolean"}
	case float64:
		if v == math.Trunc(v) {
			return map[string]any{"type": "integer"}
		}
		return map[string]any{"type": "number"}
	case nil:
		return map[string]any{"type": "null"}
	}
	return map[string]any{}
}
