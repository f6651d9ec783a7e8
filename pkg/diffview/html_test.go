package diffview

import (
	"strings"
	"testing"
)

func TestHTML_RowClasses(t *testing.T) {
	out, err := Compute("a", "b", Options{}).HTML("")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `class="diff-del"`) {
		t.Fatal("expected removed row class")
	}
	if !strings.Contains(out, `class="diff-add"`) {
		t.Fatal("expected added row class")
	}
}

func TestHTML_EscapesContent(t *testing.T) {
	out, err := Compute("<script>", "<script>", Options{}).HTML("")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatal("content not escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped content, got:\n%s", out)
	}
}

func TestHTML_Highlights(t *testing.T) {
	out, err := Compute(`{"a": 1}`, `{"a": 2}`, Options{}).HTML("json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<span class=") {
		t.Fatalf("expected highlighted spans, got:\n%s", out)
	}
}
