// Package convert provides conversions and pretty-printing between JSON,
// YAML and XML documents.
package convert

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatJSON pretty-prints a JSON document with the given indent string.
func FormatJSON(data []byte, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(data), "", indent); err != nil {
		return nil, fmt.Errorf("format json: %w", err)
	}
	return buf.Bytes(), nil
}

// MinifyJSON removes insignificant whitespace from a JSON document.
func MinifyJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, bytes.TrimSpace(data)); err != nil {
		return nil, fmt.Errorf("minify json: %w", err)
	}
	return buf.Bytes(), nil
}

// ValidateJSON checks a JSON document and reports the byte offset of the
// first syntax error, if any.
func ValidateJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			return fmt.Errorf("invalid json at offset %d: %w", syn.Offset, err)
		}
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// JSONToYAML converts a JSON document to YAML.
func JSONToYAML(data []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}

// YAMLToJSON converts a YAML document to indented JSON. Map keys are
// stringified so the result is always valid JSON.
func YAMLToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out, err := json.MarshalIndent(jsonify(v), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return out, nil
}

// jsonify rewrites YAML-decoded values into JSON-encodable ones.
func jsonify(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = jsonify(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = jsonify(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = jsonify(val)
		}
		return out
	default:
		return v
	}
}

// FormatXML pretty-prints an XML document by re-encoding its token
// stream with the given indent string. Comments, directives and
// processing instructions are preserved.
func FormatXML(data []byte, indent string) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", indent)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}
		if cd, ok := tok.(xml.CharData); ok {
			// Drop pure-whitespace text so the encoder controls layout.
			if len(strings.TrimSpace(string(cd))) == 0 {
				continue
			}
		}
		if err := enc.EncodeToken(tok); err != nil {
			return nil, fmt.Errorf("encode xml: %w", err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("flush xml: %w", err)
	}
	return buf.Bytes(), nil
}

// ValidateXML checks that an XML document is well-formed.
func ValidateXML(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("invalid xml: %w", err)
		}
	}
}
