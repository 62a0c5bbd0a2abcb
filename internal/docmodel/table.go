package docmodel

// Table is an ordered set of rows; each cell is itself a sequence of
// structural elements that must end in a paragraph (spec.md §3, invariant
// 6). Merged cells are represented by physical placeholder cells plus
// ColumnSpan/RowSpan on the origin cell (invariant 7).
type Table struct {
	StartIndex int64
	EndIndex   int64
	Rows       []*TableRow
}

// TableRow is one physical row. Every physical row has the same number of
// cell slots regardless of merges (invariant 7).
type TableRow struct {
	StartIndex int64
	EndIndex   int64
	Cells      []*TableCell
}

// TableCell holds structural content plus span/style metadata. ColumnSpan
// and RowSpan default to 1 and are omitted on serialize (spec.md §4.A
// "Transparent normalizations").
type TableCell struct {
	StartIndex int64
	EndIndex   int64
	ColumnSpan int64
	RowSpan    int64
	Content    []*StructuralElement

	// Placeholder marks a physical cell slot absorbed by a merge — it has
	// no content of its own and is skipped by the diff (invariant 7).
	Placeholder bool
}

func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{StartIndex: t.StartIndex, EndIndex: t.EndIndex}
	out.Rows = make([]*TableRow, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = r.Clone()
	}
	return out
}

func (r *TableRow) Clone() *TableRow {
	if r == nil {
		return nil
	}
	out := &TableRow{StartIndex: r.StartIndex, EndIndex: r.EndIndex}
	out.Cells = make([]*TableCell, len(r.Cells))
	for i, c := range r.Cells {
		out.Cells[i] = c.Clone()
	}
	return out
}

func (c *TableCell) Clone() *TableCell {
	if c == nil {
		return nil
	}
	out := &TableCell{
		StartIndex:  c.StartIndex,
		EndIndex:    c.EndIndex,
		ColumnSpan:  c.ColumnSpan,
		RowSpan:     c.RowSpan,
		Placeholder: c.Placeholder,
	}
	out.Content = make([]*StructuralElement, len(c.Content))
	for i, e := range c.Content {
		out.Content[i] = e.Clone()
	}
	return out
}

// NumColumns returns the number of cell slots in the table's first row, or 0
// for an empty table.
func (t *Table) NumColumns() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Cells)
}
