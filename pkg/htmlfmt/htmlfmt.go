// Package htmlfmt pretty-prints HTML documents and extracts readable text
// from them.
package htmlfmt

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Void elements never take a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Elements whose text content is rendered verbatim, without re-indenting.
var preformatted = map[string]bool{
	"pre": true, "textarea": true, "script": true, "style": true,
}

// Format re-renders an HTML document with one element per line and the
// given indent string. The parser is lenient the way browsers are, so
// malformed input is normalized rather than rejected.
func Format(src string, indent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			render(&sb, c, 0, indent)
		}
	}
	return sb.String(), nil
}

func render(sb *strings.Builder, n *html.Node, depth int, indent string) {
	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return
		}
		writeIndent(sb, depth, indent)
		sb.WriteString(html.EscapeString(text))
		sb.WriteByte('\n')
	case html.CommentNode:
		writeIndent(sb, depth, indent)
		sb.WriteString("<!--" + n.Data + "-->\n")
	case html.ElementNode:
		writeIndent(sb, depth, indent)
		sb.WriteString(openTag(n))
		if voidElements[n.Data] {
			sb.WriteByte('\n')
			return
		}
		if preformatted[n.Data] {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			sb.WriteString("</" + n.Data + ">\n")
			return
		}
		// Short text-only elements stay on one line.
		if text, ok := onlyText(n); ok && len(text)+len(n.Data) < 60 {
			sb.WriteString(html.EscapeString(text))
			sb.WriteString("</" + n.Data + ">\n")
			return
		}
		sb.WriteByte('\n')
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			render(sb, c, depth+1, indent)
		}
		writeIndent(sb, depth, indent)
		sb.WriteString("</" + n.Data + ">\n")
	}
}

func openTag(n *html.Node) string {
	var sb strings.Builder
	sb.WriteString("<" + n.Data)
	for _, a := range n.Attr {
		sb.WriteString(" " + a.Key + `="` + html.EscapeString(a.Val) + `"`)
	}
	sb.WriteString(">")
	return sb.String()
}

// onlyText reports the trimmed text content when n has no element
// children.
func onlyText(n *html.Node) (string, bool) {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			return "", false
		}
		sb.WriteString(c.Data)
	}
	return strings.TrimSpace(sb.String()), true
}

func writeIndent(sb *strings.Builder, depth int, indent string) {
	for i := 0; i < depth; i++ {
		sb.WriteString(indent)
	}
}

// Title returns the content of the document's <title> element.
func Title(src string) string {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return ""
	}
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}

// ExtractText flattens a document to readable text, skipping scripts,
// styles and navigation chrome, with light markdown-ish structure for
// headings and list items.
func ExtractText(src string) string {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return src
	}
	skip := map[string]bool{
		"script": true, "style": true, "nav": true, "footer": true,
		"noscript": true, "svg": true, "iframe": true,
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skip[n.Data] {
				return
			}
			switch n.Data {
			case "h1":
				sb.WriteString("\n# ")
			case "h2":
				sb.WriteString("\n## ")
			case "h3", "h4", "h5", "h6":
				sb.WriteString("\n### ")
			case "li":
				sb.WriteString("\n- ")
			case "p", "div", "section", "article", "tr", "br":
				sb.WriteString("\n")
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				sb.WriteString(text)
				sb.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(sb.String())
}
