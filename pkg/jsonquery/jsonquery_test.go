package jsonquery

import (
	"strings"
	"testing"
)

const doc = `{"user": {"name": "ada", "langs": ["go", "ml"]}, "count": 2}`

func TestGet(t *testing.T) {
	got, err := Get([]byte(doc), "user.name")
	if err != nil {
		t.Fatal(err)
	}
	if got != `"ada"` {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestGet_ArrayIndex(t *testing.T) {
	got, err := Get([]byte(doc), "user.langs.1")
	if err != nil {
		t.Fatal(err)
	}
	if got != `"ml"` {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestGet_Missing(t *testing.T) {
	if _, err := Get([]byte(doc), "user.email"); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestGet_InvalidDocument(t *testing.T) {
	if _, err := Get([]byte(`{oops`), "a"); err == nil {
		t.Fatal("expected error for invalid document")
	}
}

func TestGetPretty(t *testing.T) {
	got, err := GetPretty([]byte(doc), "user")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\n  \"name\": \"ada\"") {
		t.Fatalf("expected indented object, got:\n%s", got)
	}
}

func TestExists(t *testing.T) {
	if !Exists([]byte(doc), "count") {
		t.Fatal("count should exist")
	}
	if Exists([]byte(doc), "missing") {
		t.Fatal("missing should not exist")
	}
}
