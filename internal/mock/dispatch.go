package mock

import (
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// dispatch routes a single-tab request to its handler. Request kinds the
// mock has no handler for (mergeTableCells, inline image insertion, and
// similar operations spec.md scopes out of the reconciler's emissions)
// return an empty reply rather than an error — spec.md §4.D: "so they
// don't poison test runs".
func dispatch(tab *docmodel.Tab, req *docs.Request) (*docs.Reply, error) {
	switch {
	case req.InsertText != nil:
		return handleInsertText(tab, req.InsertText)
	case req.DeleteContentRange != nil:
		return handleDeleteContentRange(tab, req.DeleteContentRange)
	case req.UpdateTextStyle != nil:
		return handleUpdateTextStyle(tab, req.UpdateTextStyle)
	case req.UpdateParagraphStyle != nil:
		return handleUpdateParagraphStyle(tab, req.UpdateParagraphStyle)
	case req.CreateParagraphBullets != nil:
		return handleCreateParagraphBullets(tab, req.CreateParagraphBullets)
	case req.DeleteParagraphBullets != nil:
		return handleDeleteParagraphBullets(tab, req.DeleteParagraphBullets)
	case req.InsertTable != nil:
		return handleInsertTable(tab, req.InsertTable)
	case req.InsertTableRow != nil:
		return handleInsertTableRow(tab, req.InsertTableRow)
	case req.InsertTableColumn != nil:
		return handleInsertTableColumn(tab, req.InsertTableColumn)
	case req.DeleteTableRow != nil:
		return handleDeleteTableRow(tab, req.DeleteTableRow)
	case req.DeleteTableColumn != nil:
		return handleDeleteTableColumn(tab, req.DeleteTableColumn)
	case req.CreateHeader != nil:
		return handleCreateHeader(tab, req.CreateHeader)
	case req.CreateFooter != nil:
		return handleCreateFooter(tab, req.CreateFooter)
	case req.CreateFootnote != nil:
		return handleCreateFootnote(tab, req.CreateFootnote)
	default:
		return &docs.Reply{}, nil
	}
}
