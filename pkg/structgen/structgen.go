// Package structgen generates Go struct declarations from sample JSON
// documents.
package structgen

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

// Common initialisms kept fully uppercased in generated field names.
var initialisms = map[string]bool{
	"id": true, "url": true, "uri": true, "api": true, "http": true,
	"https": true, "ip": true, "json": true, "xml": true, "sql": true,
	"html": true, "uuid": true, "ttl": true, "cpu": true, "ram": true,
}

// Generate emits Go type declarations describing the sample document.
// Nested objects become their own named structs, emitted after the root.
// The document must be a JSON object or an array of objects.
func Generate(document []byte, typeName string) (string, error) {
	if typeName == "" {
		typeName = "Generated"
	}
	var v any
	if err := json.Unmarshal(document, &v); err != nil {
		return "", fmt.Errorf("parse json: %w", err)
	}
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("cannot infer a type from an empty array")
		}
		v = arr[0]
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return "", fmt.Errorf("top-level value must be an object or array of objects")
	}

	g := &generator{seen: map[string]bool{}}
	g.emitStruct(typeName, obj)
	return strings.Join(g.decls, "\n"), nil
}

type generator struct {
	decls []string
	seen  map[string]bool
}

// emitStruct appends a struct declaration for obj, queueing nested object
// types behind it.
func (g *generator) emitStruct(name string, obj map[string]any) {
	if g.seen[name] {
		return
	}
	g.seen[name] = true

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "type %s struct {\n", name)
	var nested []struct {
		name string
		obj  map[string]any
	}
	for _, k := range keys {
		field := fieldName(k)
		typ := g.goType(obj[k], field, &nested)
		fmt.Fprintf(&sb, "\t%s %s `json:%q`\n", field, typ, k)
	}
	sb.WriteString("}\n")
	g.decls = append(g.decls, sb.String())

	for _, n := range nested {
		g.emitStruct(n.name, n.obj)
	}
}

func (g *generator) goType(v any, hint string, nested *[]struct {
	name string
	obj  map[string]any
}) string {
	switch v := v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case float64:
		if v == math.Trunc(v) {
			return "int"
		}
		return "float64"
	case map[string]any:
		*nested = append(*nested, struct {
			name string
			obj  map[string]any
		}{hint, v})
		return hint
	case []any:
		if len(v) == 0 {
			return "[]any"
		}
		return "[]" + g.goType(v[0], singular(hint), nested)
	case nil:
		return "any"
	}
	return "any"
}

// fieldName converts snake_case, kebab-case or camelCase keys into
// exported Go field names, uppercasing known initialisms.
func fieldName(key string) string {
	parts := splitWords(key)
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		lower := strings.ToLower(p)
		if initialisms[lower] {
			sb.WriteString(strings.ToUpper(p))
			continue
		}
		r := []rune(lower)
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}
	name := sb.String()
	if name == "" || !unicode.IsLetter([]rune(name)[0]) {
		name = "Field" + name
	}
	return name
}

func splitWords(key string) []string {
	var parts []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	for i, r := range key {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r) && i > 0:
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	if len(parts) == 0 {
		parts = []string{key}
	}
	return parts
}

// singular trims a plural hint for element type names: Items -> Item.
func singular(hint string) string {
	switch {
	case strings.HasSuffix(hint, "ies"):
		return hint[:len(hint)-3] + "y"
	case strings.HasSuffix(hint, "ses"):
		return hint[:len(hint)-2]
	case strings.HasSuffix(hint, "s") && !strings.HasSuffix(hint, "ss"):
		return hint[:len(hint)-1]
	}
	return hint
}
