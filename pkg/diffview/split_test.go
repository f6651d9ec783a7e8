package diffview

import "testing"

func TestSplit_EqualLength(t *testing.T) {
	cases := []struct{ a, b string }{
		{"a\nb\nc", "a\nb\nc"},
		{"a\nb", "a\nc"},
		{"a", "x\ny\nz"},
		{"x\ny\nz", "a"},
		{"", "only\nnew"},
		{"a\nb\nc\nd", "b\nd\ne"},
	}
	for _, tc := range cases {
		cols := Compute(tc.a, tc.b, Options{}).Split()
		if len(cols.Left) != len(cols.Right) {
			t.Fatalf("diff(%q, %q): left %d != right %d", tc.a, tc.b, len(cols.Left), len(cols.Right))
		}
	}
}

func TestSplit_UnchangedRowsAligned(t *testing.T) {
	cols := Compute("keep\nold1\nold2\nkeep2", "keep\nnew1\nkeep2", Options{}).Split()
	for i := range cols.Left {
		l, r := cols.Left[i], cols.Right[i]
		if l != nil && l.Kind == Unchanged {
			if r == nil || r != l {
				t.Fatalf("row %d: unchanged line not mirrored on the right", i)
			}
		}
		if r != nil && r.Kind == Unchanged {
			if l == nil || l != r {
				t.Fatalf("row %d: unchanged line not mirrored on the left", i)
			}
		}
	}
}

func TestSplit_Padding(t *testing.T) {
	// Two removals against one addition before a shared line: the right
	// column needs one padding slot so "keep" lands on the same row.
	cols := Compute("old1\nold2\nkeep", "new1\nkeep", Options{}).Split()
	if len(cols.Left) != 3 || len(cols.Right) != 3 {
		t.Fatalf("expected 3 rows, got %d/%d", len(cols.Left), len(cols.Right))
	}
	if cols.Right[1] != nil {
		t.Fatalf("expected padding at right row 1, got %+v", cols.Right[1])
	}
	if cols.Left[2] == nil || cols.Left[2].Content != "keep" {
		t.Fatalf("expected shared line at row 2, got %+v", cols.Left[2])
	}
	if cols.Left[2] != cols.Right[2] {
		t.Fatal("unchanged row should reference the same line on both sides")
	}
}

func TestSplit_TrailingPadding(t *testing.T) {
	cols := Compute("a", "a\nb\nc", Options{}).Split()
	last := len(cols.Left) - 1
	if cols.Left[last] != nil {
		t.Fatalf("expected trailing padding on the left, got %+v", cols.Left[last])
	}
	if cols.Right[last] == nil {
		t.Fatal("expected trailing added line on the right")
	}
}
