package diffview

// SplitColumns holds the two-column form of a diff. Left and Right always
// have equal length; a nil entry is a padding slot with no corresponding
// line on that side.
type SplitColumns struct {
	Left  []*Line `json:"left"`
	Right []*Line `json:"right"`
}

// Split aligns the flat diff into two columns: removed lines fill the left
// column, added lines the right, and each unchanged line occupies the same
// row in both. Before an unchanged line is placed, the shorter column is
// padded so the row indexes match.
func (r Result) Split() SplitColumns {
	var cols SplitColumns
	for i := range r.Lines {
		l := &r.Lines[i]
		switch l.Kind {
		case Removed:
			cols.Left = append(cols.Left, l)
		case Added:
			cols.Right = append(cols.Right, l)
		case Unchanged:
			for len(cols.Left) < len(cols.Right) {
				cols.Left = append(cols.Left, nil)
			}
			for len(cols.Right) < len(cols.Left) {
				cols.Right = append(cols.Right, nil)
			}
			cols.Left = append(cols.Left, l)
			cols.Right = append(cols.Right, l)
		}
	}
	for len(cols.Left) < len(cols.Right) {
		cols.Left = append(cols.Left, nil)
	}
	for len(cols.Right) < len(cols.Left) {
		cols.Right = append(cols.Right, nil)
	}
	return cols
}
