package htmlfmt

import (
	"strings"
	"testing"
)

const page = `<html><head><title> Toolbox </title></head><body><h1>Hello</h1><nav>skip me</nav><p>First para.</p><ul><li>one</li><li>two</li></ul><script>var x = 1;</script></body></html>`

func TestFormat(t *testing.T) {
	out, err := Format(`<div class="box"><p>hi</p><img src="a.png"></div>`, "  ")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>\n") {
		t.Fatalf("missing doctype:\n%s", out)
	}
	if !strings.Contains(out, `<div class="box">`) {
		t.Fatalf("attributes lost:\n%s", out)
	}
	if !strings.Contains(out, "<p>hi</p>") {
		t.Fatalf("short text element should stay inline:\n%s", out)
	}
	if strings.Contains(out, "</img>") {
		t.Fatalf("void element must not be closed:\n%s", out)
	}
}

func TestFormat_Indents(t *testing.T) {
	out, err := Format("<div><div><span>deep</span></div></div>", "\t")
	if err != nil {
		t.Fatal(err)
	}
	// html > body > div > div > span.
	if !strings.Contains(out, "\t\t\t\t<span>deep</span>") {
		t.Fatalf("expected nested indentation:\n%s", out)
	}
}

func TestFormat_PreservesScriptBody(t *testing.T) {
	out, err := Format(`<body><script>if (a < b) { go() }</script></body>`, "  ")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "if (a < b) { go() }") {
		t.Fatalf("script body mangled:\n%s", out)
	}
}

func TestTitle(t *testing.T) {
	if got := Title(page); got != "Toolbox" {
		t.Fatalf("title: %q", got)
	}
	if got := Title("<p>no title</p>"); got != "" {
		t.Fatalf("expected empty title, got %q", got)
	}
}

func TestExtractText(t *testing.T) {
	got := ExtractText(page)
	if !strings.Contains(got, "# Hello") {
		t.Fatalf("heading missing:\n%s", got)
	}
	if !strings.Contains(got, "- one") || !strings.Contains(got, "- two") {
		t.Fatalf("list items missing:\n%s", got)
	}
	if strings.Contains(got, "skip me") {
		t.Fatalf("nav content should be skipped:\n%s", got)
	}
	if strings.Contains(got, "var x") {
		t.Fatalf("script content should be skipped:\n%s", got)
	}
}
