package history

import (
	"context"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	for _, e := range []struct{ tool, summary string }{
		{"diff", "2 files, 3 additions"},
		{"uuid", "generated 1 v4"},
		{"diff", "stdin, no changes"},
	} {
		if err := s.Record(ctx, e.tool, e.summary); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := s.Recent(ctx, "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Summary != "stdin, no changes" {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

func TestRecent_ToolFilterAndLimit(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := s.Record(ctx, "qr", "png written"); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Record(ctx, "json", "formatted"); err != nil {
		t.Fatal(err)
	}

	entries, err := s.Recent(ctx, "qr", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("limit not applied: %d", len(entries))
	}
	for _, e := range entries {
		if e.Tool != "qr" {
			t.Fatalf("filter not applied: %+v", e)
		}
	}
}

func TestCountAndClear(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	if err := s.Record(ctx, "sql", "formatted"); err != nil {
		t.Fatal(err)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 entry, got %d", n)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	n, err = s.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
}
