package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

func cellWithText(text string) *docmodel.TableCell {
	return &docmodel.TableCell{ColumnSpan: 1, RowSpan: 1, Content: []*docmodel.StructuralElement{paragraphElement(text)}}
}

func oneByOneTable(text string) *docmodel.Table {
	return &docmodel.Table{Rows: []*docmodel.TableRow{{Cells: []*docmodel.TableCell{cellWithText(text)}}}}
}

func TestDiffTableEqualSameShapeDiffsCellContent(t *testing.T) {
	base := oneByOneTable("old\n")
	desired := oneByOneTable("new\n")
	tab := &docmodel.Tab{Body: &docmodel.Segment{Kind: docmodel.SegmentBody, Content: []*docmodel.StructuralElement{{Table: base}}}}
	docmodel.Reindex(tab)
	tab2 := &docmodel.Tab{Body: &docmodel.Segment{Kind: docmodel.SegmentBody, Content: []*docmodel.StructuralElement{{Table: desired}}}}
	docmodel.Reindex(tab2)

	reqs, err := diffTableEqual(base, desired, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, reqs)
}

func TestDiffTableEqualShapeMismatchIsCannotReconcile(t *testing.T) {
	base := oneByOneTable("a\n")
	desired := &docmodel.Table{Rows: []*docmodel.TableRow{
		{Cells: []*docmodel.TableCell{cellWithText("a\n"), cellWithText("b\n")}},
	}}
	_, err := diffTableEqual(base, desired, 0)
	require.Error(t, err)
	_, ok := err.(*CannotReconcileError)
	assert.True(t, ok)
}

func TestDiffTableEqualSkipsPlaceholderCells(t *testing.T) {
	base := &docmodel.Table{Rows: []*docmodel.TableRow{{Cells: []*docmodel.TableCell{
		cellWithText("a\n"), {Placeholder: true},
	}}}}
	desired := &docmodel.Table{Rows: []*docmodel.TableRow{{Cells: []*docmodel.TableCell{
		cellWithText("a\n"), {Placeholder: true},
	}}}}
	reqs, err := diffTableEqual(base, desired, 0)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestInsertTableRequestsSizesMatchShape(t *testing.T) {
	table := &docmodel.Table{Rows: []*docmodel.TableRow{
		{Cells: []*docmodel.TableCell{cellWithText("a\n"), cellWithText("b\n")}},
	}}
	reqs, n := insertTableRequests(table, 5)
	require.NotEmpty(t, reqs)
	require.NotNil(t, reqs[0].InsertTable)
	assert.Equal(t, int64(1), reqs[0].InsertTable.Rows)
	assert.Equal(t, int64(2), reqs[0].InsertTable.Columns)
	assert.Greater(t, n, int64(0))
}

func TestInsertTableRequestsSkipsEmptyCellText(t *testing.T) {
	table := &docmodel.Table{Rows: []*docmodel.TableRow{
		{Cells: []*docmodel.TableCell{{Content: []*docmodel.StructuralElement{paragraphElement("\n")}}}},
	}}
	reqs, _ := insertTableRequests(table, 0)
	for _, r := range reqs {
		assert.Nil(t, r.InsertText, "an empty cell must not get a redundant insertText")
	}
}
