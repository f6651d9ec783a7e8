package diffview

import (
	"fmt"
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// tokenClass maps chroma token categories to the CSS classes emitted by
// HTML. Unlisted types render as plain text.
var tokenClass = map[chroma.TokenType]string{
	chroma.Keyword:       "hl-kw",
	chroma.KeywordType:   "hl-kw",
	chroma.NameBuiltin:   "hl-bi",
	chroma.NameClass:     "hl-kw",
	chroma.NameTag:       "hl-kw",
	chroma.LiteralString: "hl-str",
	chroma.LiteralNumber: "hl-num",
	chroma.OperatorWord:  "hl-kw",
	chroma.Comment:       "hl-cmt",
}

var kindClass = map[Kind]string{
	Unchanged: "diff-ctx",
	Added:     "diff-add",
	Removed:   "diff-del",
}

// HTML renders the diff as an HTML table with per-kind row classes and
// syntax-highlighted content. lang selects the lexer by name ("go",
// "json", ...); an empty or unknown name falls back to plain text.
func (r Result) HTML(lang string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	var sb strings.Builder
	sb.WriteString("<table class=\"diff\">\n")
	for _, l := range r.Lines {
		content, err := highlightLine(lexer, l.Content)
		if err != nil {
			return "", fmt.Errorf("highlight line: %w", err)
		}
		sb.WriteString("<tr class=\"" + kindClass[l.Kind] + "\">")
		sb.WriteString("<td class=\"lineno\">" + lineno(l.OldLine) + "</td>")
		sb.WriteString("<td class=\"lineno\">" + lineno(l.NewLine) + "</td>")
		sb.WriteString("<td class=\"content\">" + content + "</td>")
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>\n")
	return sb.String(), nil
}

func lineno(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

func highlightLine(lexer chroma.Lexer, line string) (string, error) {
	it, err := lexer.Tokenise(nil, line)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, token := range it.Tokens() {
		class := classFor(token.Type)
		if class != "" {
			sb.WriteString("<span class=\"" + class + "\">")
		}
		sb.WriteString(html.EscapeString(token.Value))
		if class != "" {
			sb.WriteString("</span>")
		}
	}
	return sb.String(), nil
}

func classFor(t chroma.TokenType) string {
	if s, ok := tokenClass[t]; ok {
		return s
	}
	if s, ok := tokenClass[t.SubCategory()]; ok {
		return s
	}
	if s, ok := tokenClass[t.Category()]; ok {
		return s
	}
	return ""
}
