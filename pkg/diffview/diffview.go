// Package diffview computes line-based diffs between two texts using a
// longest-common-subsequence alignment, with unified and split renderings.
package diffview

import (
	"fmt"
	"strings"
)

// Kind classifies a single diff output line.
type Kind int

const (
	Unchanged Kind = iota
	Added
	Removed
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON encodes the kind as its string name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Line is one output unit of the diff.
//
// Content is always the original (non-normalized) line text. OldLine and
// NewLine are 1-based; 0 means the line has no counterpart on that side.
// Unchanged lines carry both numbers.
type Line struct {
	Kind    Kind   `json:"kind"`
	Content string `json:"content"`
	OldLine int    `json:"old_line,omitempty"`
	NewLine int    `json:"new_line,omitempty"`
}

// Options controls how lines are compared. Normalization applies only to
// the equality check; output lines always show the original text.
type Options struct {
	IgnoreWhitespace bool `json:"ignore_whitespace" yaml:"ignore_whitespace"`
	IgnoreCase       bool `json:"ignore_case" yaml:"ignore_case"`
}

// Stats holds aggregate counts over a diff.
type Stats struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Unchanged int `json:"unchanged"`
	Total     int `json:"total"`
}

// Result holds the computed diff.
type Result struct {
	HasChanges bool   `json:"has_changes"`
	Lines      []Line `json:"lines"`
	Stats      Stats  `json:"stats"`
}

// Summary returns a human-readable summary of the diff.
func (r Result) Summary() string {
	if !r.HasChanges {
		return "No changes detected"
	}
	return fmt.Sprintf("%d additions, %d deletions, %d unchanged", r.Stats.Added, r.Stats.Removed, r.Stats.Unchanged)
}

// Compute diffs original against modified line by line.
//
// The whole pipeline is a pure function of its inputs: tokenize, build the
// LCS table, backtrack to matched pairs, then merge pairs and gaps into a
// flat tagged list. Both inputs empty short-circuits to an empty result.
func Compute(original, modified string, opts Options) Result {
	if original == "" && modified == "" {
		return Result{}
	}

	origLines := strings.Split(original, "\n")
	modLines := strings.Split(modified, "\n")
	procOrig := normalize(origLines, opts)
	procMod := normalize(modLines, opts)

	dp := lcsTable(procOrig, procMod)
	pairs := backtrack(dp, procOrig, procMod)
	lines := assemble(origLines, modLines, pairs)

	var stats Stats
	for _, l := range lines {
		switch l.Kind {
		case Added:
			stats.Added++
		case Removed:
			stats.Removed++
		case Unchanged:
			stats.Unchanged++
		}
	}
	stats.Total = len(lines)

	return Result{
		HasChanges: stats.Added > 0 || stats.Removed > 0,
		Lines:      lines,
		Stats:      stats,
	}
}

// normalize produces the comparison form of each line. The originals are
// left untouched for display.
func normalize(lines []string, opts Options) []string {
	if !opts.IgnoreWhitespace && !opts.IgnoreCase {
		return lines
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if opts.IgnoreWhitespace {
			l = strings.TrimSpace(l)
		}
		if opts.IgnoreCase {
			l = strings.ToLower(l)
		}
		out[i] = l
	}
	return out
}

// matrix is a dense (m+1) x (n+1) table backed by a single allocation.
type matrix struct {
	cells []int
	cols  int
}

func newMatrix(rows, cols int) matrix {
	return matrix{cells: make([]int, rows*cols), cols: cols}
}

func (t matrix) at(i, j int) int { return t.cells[i*t.cols+j] }
func (t matrix) set(i, j, v int) { t.cells[i*t.cols+j] = v }

// lcsTable fills the classic bottom-up LCS length table: dp[i][j] is the
// LCS length of a[:i] and b[:j]. Row and column zero stay at zero.
func lcsTable(a, b []string) matrix {
	m, n := len(a), len(b)
	dp := newMatrix(m+1, n+1)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp.set(i, j, dp.at(i-1, j-1)+1)
			} else if up, left := dp.at(i-1, j), dp.at(i, j-1); up > left {
				dp.set(i, j, up)
			} else {
				dp.set(i, j, left)
			}
		}
	}
	return dp
}

// pair is one matched line: 0-based indices into the original and modified
// sequences. Pairs are strictly increasing in both components.
type pair struct {
	orig, mod int
}

// backtrack walks the filled table from (m, n) back to an edge, collecting
// matched pairs. Iterative on purpose: recursion depth would equal the LCS
// length. On a tie between the two predecessors it steps in the column
// direction, which fixes the alignment deterministically.
func backtrack(dp matrix, a, b []string) []pair {
	i, j := len(a), len(b)
	var rev []pair
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			rev = append(rev, pair{i - 1, j - 1})
			i--
			j--
		case dp.at(i-1, j) > dp.at(i, j-1):
			i--
		default:
			j--
		}
	}
	// Collected back to front; reverse into left-to-right order.
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}
	return rev
}

// assemble merges matched pairs with the gaps between them into the flat
// tagged line list, preserving 1-based line numbers from both sides.
func assemble(origLines, modLines []string, pairs []pair) []Line {
	lines := make([]Line, 0, len(origLines)+len(modLines))
	origCursor, modCursor := 0, 0

	for _, p := range pairs {
		for ; origCursor < p.orig; origCursor++ {
			lines = append(lines, Line{Kind: Removed, Content: origLines[origCursor], OldLine: origCursor + 1})
		}
		for ; modCursor < p.mod; modCursor++ {
			lines = append(lines, Line{Kind: Added, Content: modLines[modCursor], NewLine: modCursor + 1})
		}
		lines = append(lines, Line{
			Kind:    Unchanged,
			Content: origLines[p.orig],
			OldLine: p.orig + 1,
			NewLine: p.mod + 1,
		})
		origCursor = p.orig + 1
		modCursor = p.mod + 1
	}

	for ; origCursor < len(origLines); origCursor++ {
		lines = append(lines, Line{Kind: Removed, Content: origLines[origCursor], OldLine: origCursor + 1})
	}
	for ; modCursor < len(modLines); modCursor++ {
		lines = append(lines, Line{Kind: Added, Content: modLines[modCursor], NewLine: modCursor + 1})
	}
	return lines
}

// Unified serializes the diff in a unified-style plain-text form with
// "+ ", "- " and "  " prefixes, one output line per diff line.
func (r Result) Unified() string {
	var sb strings.Builder
	for _, l := range r.Lines {
		switch l.Kind {
		case Added:
			sb.WriteString("+ ")
		case Removed:
			sb.WriteString("- ")
		default:
			sb.WriteString("  ")
		}
		sb.WriteString(l.Content)
		sb.WriteByte('\n')
	}
	return sb.String()
}
