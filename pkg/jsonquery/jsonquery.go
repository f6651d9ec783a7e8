// Package jsonquery evaluates path queries over JSON documents.
package jsonquery

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Get evaluates a gjson path ("user.name", "items.#", "items.0.id", ...)
// against the document and returns the raw JSON of the match.
func Get(document []byte, path string) (string, error) {
	if !gjson.ValidBytes(document) {
		return "", fmt.Errorf("invalid json document")
	}
	res := gjson.GetBytes(document, path)
	if !res.Exists() {
		return "", fmt.Errorf("path %q not found", path)
	}
	return res.Raw, nil
}

// GetPretty is Get with the result re-indented when it is an object or
// array; scalar results come back unchanged.
func GetPretty(document []byte, path string) (string, error) {
	raw, err := Get(document, path)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 || (raw[0] != '{' && raw[0] != '[') {
		return raw, nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw, nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return raw, nil
	}
	return string(out), nil
}

// Exists reports whether the path matches anything in the document.
func Exists(document []byte, path string) bool {
	return gjson.ValidBytes(document) && gjson.GetBytes(document, path).Exists()
}
