// Package sqlfmt formats SQL statements: one clause per line, uppercased
// keywords, and one select-list item per line.
package sqlfmt

import "strings"

// Options controls formatting.
type Options struct {
	Indent    string `json:"indent" yaml:"indent"`
	Uppercase bool   `json:"uppercase" yaml:"uppercase"`
}

// DefaultOptions returns the standard two-space, uppercase style.
func DefaultOptions() Options {
	return Options{Indent: "  ", Uppercase: true}
}

// Clause keywords that start a new line at the left margin. Two-word
// clauses are matched before their single-word prefixes.
var clausePairs = [][2]string{
	{"GROUP", "BY"}, {"ORDER", "BY"}, {"INSERT", "INTO"}, {"DELETE", "FROM"},
	{"LEFT", "JOIN"}, {"RIGHT", "JOIN"}, {"INNER", "JOIN"}, {"OUTER", "JOIN"},
	{"FULL", "JOIN"}, {"CROSS", "JOIN"}, {"UNION", "ALL"},
}

var clauseWords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "HAVING": true,
	"JOIN": true, "LIMIT": true, "OFFSET": true, "VALUES": true,
	"SET": true, "UPDATE": true, "UNION": true, "RETURNING": true,
}

// Clauses whose items are laid out one per line.
var listClauses = map[string]bool{
	"SELECT": true, "SET": true, "GROUP BY": true, "ORDER BY": true,
}

var keywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "GROUP": true, "BY": true,
	"ORDER": true, "HAVING": true, "LIMIT": true, "OFFSET": true,
	"INSERT": true, "INTO": true, "VALUES": true, "UPDATE": true, "SET": true,
	"DELETE": true, "JOIN": true, "LEFT": true, "RIGHT": true, "INNER": true,
	"OUTER": true, "FULL": true, "CROSS": true, "ON": true, "AS": true,
	"AND": true, "OR": true, "NOT": true, "NULL": true, "IS": true, "IN": true,
	"LIKE": true, "BETWEEN": true, "EXISTS": true, "UNION": true, "ALL": true,
	"DISTINCT": true, "CASE": true, "WHEN": true, "THEN": true, "ELSE": true,
	"END": true, "ASC": true, "DESC": true, "RETURNING": true, "CREATE": true,
	"TABLE": true, "PRIMARY": true, "KEY": true, "DEFAULT": true,
}

type tokenKind int

const (
	tokWord tokenKind = iota
	tokString
	tokComment
	tokPunct
)

type token struct {
	kind tokenKind
	text string
}

// Format rewrites query in the configured style. Subquery and function
// contents (anything inside parentheses) stay on one line.
func Format(query string, opts Options) string {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	toks := tokenize(query)
	if len(toks) == 0 {
		return ""
	}

	var sb strings.Builder
	depth := 0
	listMode := false
	atLineStart := true
	needSpace := false

	newline := func(indent int) {
		sb.WriteByte('\n')
		for i := 0; i < indent; i++ {
			sb.WriteString(opts.Indent)
		}
		atLineStart = true
		needSpace = false
	}
	write := func(s string, spaceBefore bool) {
		if !atLineStart && spaceBefore && needSpace {
			sb.WriteByte(' ')
		}
		sb.WriteString(s)
		atLineStart = false
		needSpace = true
	}

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch {
		case t.kind == tokPunct && t.text == "(":
			// Calls like count(...) attach to the word before them; after
			// a keyword (IN, VALUES, ...) the paren stands off by a space.
			afterKeyword := i > 0 && toks[i-1].kind == tokWord && keywords[strings.ToUpper(toks[i-1].text)]
			if !afterKeyword {
				needSpace = false
			}
			write("(", afterKeyword)
			needSpace = false
			depth++
		case t.kind == tokPunct && t.text == ")":
			needSpace = false
			write(")", false)
			if depth > 0 {
				depth--
			}
		case t.kind == tokPunct && t.text == ",":
			needSpace = false
			write(",", false)
			if depth == 0 && listMode {
				newline(1)
			}
		case t.kind == tokPunct && t.text == ";":
			needSpace = false
			write(";", false)
			if i < len(toks)-1 {
				newline(0)
				listMode = false
			}
		case t.kind == tokString || t.kind == tokComment || t.kind == tokPunct:
			write(t.text, true)
		default:
			upper := strings.ToUpper(t.text)
			clause, width := clauseAt(toks, i)
			if clause != "" && depth == 0 {
				if sb.Len() > 0 {
					newline(0)
				}
				write(casing(clause, opts.Uppercase), true)
				i += width - 1
				listMode = listClauses[clause]
				if listMode {
					newline(1)
				}
				continue
			}
			if depth == 0 && (upper == "AND" || upper == "OR") {
				newline(1)
			}
			if keywords[upper] {
				write(casing(upper, opts.Uppercase), true)
			} else {
				write(t.text, true)
			}
		}
	}
	return sb.String()
}

// clauseAt reports the clause starting at toks[i] and how many tokens it
// spans, or "" when toks[i] does not start a clause.
func clauseAt(toks []token, i int) (string, int) {
	if toks[i].kind != tokWord {
		return "", 0
	}
	first := strings.ToUpper(toks[i].text)
	if i+1 < len(toks) && toks[i+1].kind == tokWord {
		second := strings.ToUpper(toks[i+1].text)
		for _, p := range clausePairs {
			if first == p[0] && second == p[1] {
				return first + " " + second, 2
			}
		}
	}
	if clauseWords[first] {
		return first, 1
	}
	return "", 0
}

func casing(kw string, uppercase bool) string {
	if uppercase {
		return kw
	}
	return strings.ToLower(kw)
}

func tokenize(query string) []token {
	var toks []token
	i := 0
	for i < len(query) {
		c := query[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '\'' || c == '"' || c == '`':
			j := i + 1
			for j < len(query) {
				if query[j] == c {
					// Doubled quote is an escape inside the literal.
					if j+1 < len(query) && query[j+1] == c {
						j += 2
						continue
					}
					j++
					break
				}
				j++
			}
			toks = append(toks, token{tokString, query[i:j]})
			i = j
		case c == '-' && i+1 < len(query) && query[i+1] == '-':
			j := strings.IndexByte(query[i:], '\n')
			if j < 0 {
				j = len(query) - i
			}
			toks = append(toks, token{tokComment, strings.TrimRight(query[i:i+j], "\r")})
			i += j
		case c == '/' && i+1 < len(query) && query[i+1] == '*':
			j := strings.Index(query[i+2:], "*/")
			if j < 0 {
				toks = append(toks, token{tokComment, query[i:]})
				i = len(query)
			} else {
				toks = append(toks, token{tokComment, query[i : i+j+4]})
				i += j + 4
			}
		case c == '(' || c == ')' || c == ',' || c == ';':
			toks = append(toks, token{tokPunct, string(c)})
			i++
		case isOperator(c):
			j := i
			for j < len(query) && isOperator(query[j]) {
				j++
			}
			toks = append(toks, token{tokPunct, query[i:j]})
			i = j
		default:
			j := i
			for j < len(query) && !isBoundary(query[j]) {
				j++
			}
			toks = append(toks, token{tokWord, query[i:j]})
			i = j
		}
	}
	return toks
}

func isOperator(c byte) bool {
	switch c {
	case '=', '<', '>', '!', '+', '-', '*', '/', '%', '|':
		return true
	}
	return false
}

func isBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', ',', ';', '\'', '"', '`':
		return true
	}
	return isOperator(c)
}
