package reconcile

import (
	"strings"

	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// diffTableEqual handles a table matched by the block-level fingerprint
// diff (same row/column count, spec.md §8 S4's "edit a cell" shape): each
// non-placeholder cell's content is diffed independently as its own
// contiguous element sequence. A shape change (row/column count, merges)
// is not reconcilable by cell-wise diffing and is reported via
// CannotReconcileError — spec.md scopes table restructuring out of the
// text-edit reconciler.
func diffTableEqual(base, desired *docmodel.Table, netShift int64) ([]*docs.Request, error) {
	if len(base.Rows) != len(desired.Rows) || base.NumColumns() != desired.NumColumns() {
		return nil, &CannotReconcileError{Reason: "table row or column count changed; table restructuring is not reconcilable"}
	}
	var requests []*docs.Request
	for ri, baseRow := range base.Rows {
		desiredRow := desired.Rows[ri]
		if len(baseRow.Cells) != len(desiredRow.Cells) {
			return nil, &CannotReconcileError{Reason: "table row cell count changed; table restructuring is not reconcilable"}
		}
		for ci, baseCell := range baseRow.Cells {
			desiredCell := desiredRow.Cells[ci]
			if baseCell.Placeholder != desiredCell.Placeholder ||
				baseCell.ColumnSpan != desiredCell.ColumnSpan || baseCell.RowSpan != desiredCell.RowSpan {
				return nil, &CannotReconcileError{Reason: "table cell merge changed; table restructuring is not reconcilable"}
			}
			if baseCell.Placeholder {
				continue
			}
			reqs, _, err := diffElements(baseCell.Content, desiredCell.Content)
			if err != nil {
				return nil, err
			}
			requests = append(requests, reqs...)
		}
	}
	return requests, nil
}

// insertTableRequests builds the request sequence for a brand-new table
// inserted at pos: one insertTable sized to the desired table's shape, then
// one insertText per non-empty cell populated in row-major order (spec.md
// §8 S4). insertTable always creates single-paragraph empty cells, so every
// cell's text is appended via a single insertText at the cell's own empty
// paragraph — no deletes are ever needed for a brand-new table.
func insertTableRequests(t *docmodel.Table, pos int64) ([]*docs.Request, int64) {
	requests := []*docs.Request{{
		InsertTable: &docs.InsertTableRequest{
			Location: &docs.Location{Index: pos},
			Rows:     int64(len(t.Rows)),
			Columns:  int64(t.NumColumns()),
		},
	}}

	// Layout counted here for a freshly inserted table: 1 table-start
	// marker; per row 1 row-start and 1 row-end marker; per cell 1
	// cell-start marker, one empty paragraph (1 unit: its own newline) and 1
	// cell-end marker; then 1 table-end marker. Cell text is inserted at the
	// offset of that paragraph, computed left to right, top to bottom.
	cursor := pos + 1 // past the table-start marker, onto the first row
	for _, row := range t.Rows {
		cursor++ // row-start marker
		for _, cell := range row.Cells {
			cursor++ // cell-start marker
			// insertTable pre-populates every cell with one empty paragraph
			// (a single trailing '\n'); new text is spliced in before that
			// mark, so the paragraph's own Text() newline is trimmed here to
			// avoid doubling it.
			text := strings.TrimSuffix(cellText(cell), "\n")
			if text != "" {
				requests = append(requests, &docs.Request{
					InsertText: &docs.InsertTextRequest{
						Location: &docs.Location{Index: cursor},
						Text:     text,
					},
				})
			}
			cursor += int64(docmodel.UTF16Len(text)) + 1 // inserted text, then the cell's existing paragraph newline
			cursor++                                     // cell-end marker
		}
		cursor++ // row-end marker
	}
	cursor++ // table-end marker

	n := cursor - pos
	return requests, n
}

func cellText(cell *docmodel.TableCell) string {
	var out string
	for _, se := range cell.Content {
		if se.Paragraph != nil {
			out += se.Paragraph.Text()
		}
	}
	return out
}
