package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

func twoByTwoTableTab(t *testing.T) *docmodel.Tab {
	t.Helper()
	tab := &docmodel.Tab{Body: &docmodel.Segment{Kind: docmodel.SegmentBody, Content: []*docmodel.StructuralElement{
		{Paragraph: &docmodel.Paragraph{
			Style:    &docs.ParagraphStyle{},
			Elements: []*docmodel.ParagraphElement{{TextRun: &docmodel.TextRun{Content: "\n", Style: &docmodel.TextStyle{}}}},
		}},
	}}}
	docmodel.Reindex(tab)
	_, err := handleInsertTable(tab, &docs.InsertTableRequest{
		Location: &docs.Location{Index: 1},
		Rows:     2,
		Columns:  2,
	})
	require.NoError(t, err)
	docmodel.Reindex(tab)
	return tab
}

func tableOf(tab *docmodel.Tab) *docmodel.Table {
	for _, se := range tab.Body.Content {
		if se.Table != nil {
			return se.Table
		}
	}
	return nil
}

func TestHandleInsertTableRowAddsRowAtIndex(t *testing.T) {
	tab := twoByTwoTableTab(t)
	table := tableOf(tab)
	require.Len(t, table.Rows, 2)

	_, err := handleInsertTableRow(tab, &docs.InsertTableRowRequest{
		TableCellLocation: &docs.TableCellLocation{TableStartLocation: &docs.Location{Index: table.StartIndex}, RowIndex: 0},
		InsertBelow:       false,
	})
	require.NoError(t, err)
	docmodel.Reindex(tab)

	table = tableOf(tab)
	require.Len(t, table.Rows, 3)
	assert.Len(t, table.Rows[0].Cells, 2)
	for _, cell := range table.Rows[0].Cells {
		assert.Equal(t, "\n", cell.Content[0].Paragraph.Text())
	}
}

func TestHandleInsertTableRowInsertBelow(t *testing.T) {
	tab := twoByTwoTableTab(t)
	table := tableOf(tab)

	_, err := handleInsertTableRow(tab, &docs.InsertTableRowRequest{
		TableCellLocation: &docs.TableCellLocation{TableStartLocation: &docs.Location{Index: table.StartIndex}, RowIndex: 0},
		InsertBelow:       true,
	})
	require.NoError(t, err)
	docmodel.Reindex(tab)

	table = tableOf(tab)
	require.Len(t, table.Rows, 3)
}

func TestHandleInsertTableColumnAddsColumnToEveryRow(t *testing.T) {
	tab := twoByTwoTableTab(t)
	table := tableOf(tab)

	_, err := handleInsertTableColumn(tab, &docs.InsertTableColumnRequest{
		TableCellLocation: &docs.TableCellLocation{TableStartLocation: &docs.Location{Index: table.StartIndex}, ColumnIndex: 1},
		InsertRight:       true,
	})
	require.NoError(t, err)
	docmodel.Reindex(tab)

	table = tableOf(tab)
	for _, row := range table.Rows {
		assert.Len(t, row.Cells, 3)
	}
}

func TestHandleDeleteTableRowRemovesRow(t *testing.T) {
	tab := twoByTwoTableTab(t)
	table := tableOf(tab)

	_, err := handleDeleteTableRow(tab, &docs.DeleteTableRowRequest{
		TableCellLocation: &docs.TableCellLocation{TableStartLocation: &docs.Location{Index: table.StartIndex}, RowIndex: 0},
	})
	require.NoError(t, err)
	docmodel.Reindex(tab)

	table = tableOf(tab)
	require.Len(t, table.Rows, 1)
}

func TestHandleDeleteTableColumnRemovesColumnFromEveryRow(t *testing.T) {
	tab := twoByTwoTableTab(t)
	table := tableOf(tab)

	_, err := handleDeleteTableColumn(tab, &docs.DeleteTableColumnRequest{
		TableCellLocation: &docs.TableCellLocation{TableStartLocation: &docs.Location{Index: table.StartIndex}, ColumnIndex: 0},
	})
	require.NoError(t, err)
	docmodel.Reindex(tab)

	table = tableOf(tab)
	for _, row := range table.Rows {
		assert.Len(t, row.Cells, 1)
	}
}

func TestHandleDeleteTableRowRejectsOutOfRangeIndex(t *testing.T) {
	tab := twoByTwoTableTab(t)
	table := tableOf(tab)

	_, err := handleDeleteTableRow(tab, &docs.DeleteTableRowRequest{
		TableCellLocation: &docs.TableCellLocation{TableStartLocation: &docs.Location{Index: table.StartIndex}, RowIndex: 5},
	})
	assert.Error(t, err)
}
